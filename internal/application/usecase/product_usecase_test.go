package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de repositorio en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byID   map[string]*entity.Product
	bySKU  map[string]*entity.Product
	listed []string // términos de búsqueda recibidos por ListActive
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		byID:  make(map[string]*entity.Product),
		bySKU: make(map[string]*entity.Product),
	}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if _, ok := r.bySKU[p.SKU]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.byID[p.ID] = &cp
	r.bySKU[p.SKU] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.byID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	if p, ok := r.bySKU[sku]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

func (r *fakeProductRepo) Update(p *entity.Product) error {
	stored, ok := r.byID[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stock := stored.Stock // Update nunca toca stock
	cp := *p
	cp.Stock = stock
	r.byID[p.ID] = &cp
	r.bySKU[cp.SKU] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(productID string, newStock int) error {
	if p, ok := r.byID[productID]; ok {
		p.Stock = newStock
		return nil
	}
	return domain.ErrNotFound
}

func (r *fakeProductRepo) ListActive(search string, limit, offset int) ([]*entity.Product, error) {
	r.listed = append(r.listed, search)
	var out []*entity.Product
	for _, p := range r.byID {
		if p.IsActive {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Deactivate(id string) error {
	if p, ok := r.byID[id]; ok {
		p.IsActive = false
		return nil
	}
	return domain.ErrNotFound
}

func validCreateRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:      "CAFE-500G",
		Name:     "Café de grano 500g",
		Category: "alimentos",
		Price:    decimal.NewFromInt(25000),
		Cost:     decimal.NewFromInt(18000),
		Stock:    10,
		MinStock: 5,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_Valido_DevuelveClasificacion(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())

	resp, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID, "debe asignarse un ID")
	assert.Equal(t, 10, resp.Stock)
	assert.True(t, resp.IsActive)
	assert.Equal(t, entity.StockStatusInStock, resp.StockStatus,
		"stock 10 con mínimo 5 debe clasificar IN_STOCK")
}

func TestProductCreate_PrecioNoMayorQueCosto_Rechazado(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())

	in := validCreateRequest()
	in.Price = decimal.NewFromInt(18000) // igual al costo: inválido

	_, err := uc.Create(in)
	bre, ok := domain.AsBusinessRule(err)
	require.True(t, ok, "debe ser violación de regla de negocio")
	assert.Equal(t, domain.CodePriceCostValidation, bre.Code)
}

func TestProductCreate_SKUDuplicado_Rechazado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo)

	_, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	_, err = uc.Create(validCreateRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el mismo SKU no puede crearse dos veces")
}

func TestProductCreate_SKUInvalido_Rechazado(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())

	in := validCreateRequest()
	in.SKU = "a!" // corto y con carácter ilegal

	_, err := uc.Create(in)
	bre, ok := domain.AsBusinessRule(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeInvalidSKUFormat, bre.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_NoPuedeTocarStock(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo)

	created, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	nuevoNombre := "Café premium 500g"
	resp, err := uc.Update(created.ID, dto.UpdateProductRequest{Name: &nuevoNombre})
	require.NoError(t, err)

	assert.Equal(t, nuevoNombre, resp.Name)
	assert.Equal(t, 10, resp.Stock, "el update de atributos no cambia el stock materializado")
}

func TestProductUpdate_RevalidaReglas(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo)

	created, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	// Bajar el precio por debajo del costo debe violar la regla sobre el
	// estado resultante, aunque el costo no se toque.
	precio := decimal.NewFromInt(10000)
	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Price: &precio})
	bre, ok := domain.AsBusinessRule(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodePriceCostValidation, bre.Code)
}

func TestProductUpdate_NoExiste_NotFound(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())

	nombre := "x"
	_, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List / NormalizeSearch
// ──────────────────────────────────────────────────────────────────────────────

func TestProductList_NormalizaBusqueda(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo)

	_, err := uc.List("  CAFÉ  ", 20, 0)
	require.NoError(t, err)

	require.Len(t, repo.listed, 1)
	assert.Equal(t, "cafe", repo.listed[0],
		"la búsqueda llega al repo en minúsculas y sin acentos")
}

func TestNormalizeSearch(t *testing.T) {
	casos := map[string]string{
		"Café":        "cafe",
		"  AZÚCAR  ":  "azucar",
		"ñandú":       "nandu",
		"sin-acentos": "sin-acentos",
		"":            "",
		"   ":         "",
	}
	for entrada, esperado := range casos {
		assert.Equal(t, esperado, NormalizeSearch(entrada), "entrada: %q", entrada)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Deactivate
// ──────────────────────────────────────────────────────────────────────────────

func TestProductDeactivate_BajaLogica(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo)

	created, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(created.ID))

	stored, _ := repo.GetByID(created.ID)
	require.NotNil(t, stored, "la baja es lógica: el producto sigue existiendo")
	assert.False(t, stored.IsActive)
}

func TestProductDeactivate_NoExiste_NotFound(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())
	assert.ErrorIs(t, uc.Deactivate("no-existe"), domain.ErrNotFound)
}
