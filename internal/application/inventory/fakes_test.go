package inventory_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso del kardex. El store simula el
// comportamiento transaccional: los cambios solo se aplican en Commit.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	movements []*entity.StockMovement
}

func newMemStore(products ...*entity.Product) *memStore {
	s := &memStore{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

func (s *memStore) product(id string) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.products[id]; ok {
		cp := *p
		return &cp
	}
	return nil
}

func (s *memStore) movementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movements)
}

// memTxRunner serializa las transacciones con un mutex (equivalente en memoria
// del bloqueo de fila) y aplica los cambios solo si fn no devuelve error.
type memTxRunner struct {
	store *memStore
	txMu  sync.Mutex
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.txMu.Lock()
	defer r.txMu.Unlock()

	tx := &memTx{store: r.store, stocks: make(map[string]int)}
	if err := fn(&memMovementRepo{tx: tx}, &memProductRepo{tx: tx}); err != nil {
		return err // rollback: nada de tx se aplica al store
	}
	tx.commit()
	return nil
}

type memTx struct {
	store     *memStore
	pending   []*entity.StockMovement
	stocks    map[string]int // productID -> nuevo stock pendiente
}

func (tx *memTx) commit() {
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	tx.store.movements = append(tx.store.movements, tx.pending...)
	for id, stock := range tx.stocks {
		if p, ok := tx.store.products[id]; ok {
			p.Stock = stock
			p.UpdatedAt = time.Now()
		}
	}
}

type memProductRepo struct{ tx *memTx }

func (r *memProductRepo) Create(p *entity.Product) error  { panic("no usado en tests del ledger") }
func (r *memProductRepo) Update(p *entity.Product) error  { panic("no usado en tests del ledger") }
func (r *memProductRepo) Deactivate(id string) error      { panic("no usado en tests del ledger") }
func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	panic("no usado en tests del ledger")
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.tx.store.product(id), nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.tx.store.product(id), nil
}

func (r *memProductRepo) UpdateStock(productID string, newStock int) error {
	r.tx.stocks[productID] = newStock
	return nil
}

func (r *memProductRepo) ListActive(search string, limit, offset int) ([]*entity.Product, error) {
	r.tx.store.mu.Lock()
	defer r.tx.store.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.tx.store.products {
		if p.IsActive {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return pageSlice(out, limit, offset), nil
}

// pageSlice aplica limit/offset como lo haría LIMIT/OFFSET en SQL.
func pageSlice[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

type memMovementRepo struct{ tx *memTx }

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.tx.pending = append(r.tx.pending, &cp)
	return nil
}

func (r *memMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	r.tx.store.mu.Lock()
	defer r.tx.store.mu.Unlock()
	for _, m := range r.tx.store.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	r.tx.store.mu.Lock()
	defer r.tx.store.mu.Unlock()
	var out []*entity.StockMovement
	for _, m := range r.tx.store.movements {
		if m.ProductID == productID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memMovementRepo) ListRecent(since time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	r.tx.store.mu.Lock()
	defer r.tx.store.mu.Unlock()
	var out []*entity.StockMovement
	for _, m := range r.tx.store.movements {
		// borde inclusive, como el created_at >= de la consulta SQL
		if !m.CreatedAt.Before(since) {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return pageSlice(out, limit, offset), nil
}

func (r *memMovementRepo) CountSince(since time.Time) (int, error) {
	list, _ := r.ListRecent(since, 0, 0)
	return len(list), nil
}

func (r *memMovementRepo) LastMovementByProduct() (map[string]time.Time, error) {
	r.tx.store.mu.Lock()
	defer r.tx.store.mu.Unlock()
	out := make(map[string]time.Time)
	for _, m := range r.tx.store.movements {
		if ts, ok := out[m.ProductID]; !ok || m.CreatedAt.After(ts) {
			out[m.ProductID] = m.CreatedAt
		}
	}
	return out, nil
}

// repos de solo lectura atados directamente al store (fuera de tx), para los
// casos de uso de alertas, stats e historial.
func (s *memStore) readRepos() (*memMovementRepo, *memProductRepo) {
	tx := &memTx{store: s, stocks: make(map[string]int)}
	return &memMovementRepo{tx: tx}, &memProductRepo{tx: tx}
}
