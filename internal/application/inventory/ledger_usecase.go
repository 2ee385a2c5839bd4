// Package inventory contiene los casos de uso del kardex: registro
// transaccional de movimientos, alertas de reposición y estadísticas.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	domaininv "github.com/jhoicas/kardex-api/internal/domain/inventory"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// DefaultTxTimeout acota cada ApplyMovement a una transacción única.
const DefaultTxTimeout = 10 * time.Second

// LedgerUseCase registra movimientos de stock de forma transaccional.
// Es la ÚNICA ruta de escritura que cambia Product.Stock: bloquea la fila del
// producto (SELECT FOR UPDATE), valida las reglas de negocio y persiste el
// movimiento inmutable junto con el nuevo stock en la misma transacción.
type LedgerUseCase struct {
	txRunner  TxRunner
	metrics   domaininv.RuleMetrics
	txTimeout time.Duration
}

// NewLedgerUseCase construye el caso de uso. metrics puede ser nil (NopRuleMetrics).
func NewLedgerUseCase(txRunner TxRunner, metrics domaininv.RuleMetrics) *LedgerUseCase {
	if metrics == nil {
		metrics = domaininv.NopRuleMetrics{}
	}
	return &LedgerUseCase{txRunner: txRunner, metrics: metrics, txTimeout: DefaultTxTimeout}
}

// WithTxTimeout ajusta el timeout de transacción (por defecto 10s).
func (uc *LedgerUseCase) WithTxTimeout(d time.Duration) *LedgerUseCase {
	if d > 0 {
		uc.txTimeout = d
	}
	return uc
}

// ApplyMovementInput entrada para registrar un movimiento del kardex.
type ApplyMovementInput struct {
	ProductID string
	Type      string
	Quantity  int
	Reason    string
	Reference string
	UserID    string // actor autenticado
}

// ApplyMovement aplica un movimiento: lee el stock bloqueando la fila, valida,
// calcula el nuevo stock y persiste movimiento + stock atómicamente.
// En cualquier rechazo no queda ningún efecto: ni fila en el kardex ni cambio
// de stock. TRANSFER se rechaza con código estable mientras no exista un
// modelo de ubicaciones que le dé semántica.
func (uc *LedgerUseCase) ApplyMovement(ctx context.Context, in ApplyMovementInput) (*entity.StockMovement, error) {
	if in.ProductID == "" || in.UserID == "" || !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Type == entity.MovementTypeTRANSFER {
		err := domain.NewBusinessRuleError(domain.CodeTransferNotSupported,
			"TRANSFER está reservado: no hay modelo de ubicaciones que defina su efecto")
		uc.metrics.RecordValidation(in.Type, err)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.txTimeout)
	defer cancel()

	ruleInput := domaininv.MovementInput{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		Reference: in.Reference,
	}

	var movement *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto: serializa movimientos concurrentes
		// sobre el mismo producto sin frenar a los demás.
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		if err := domaininv.ValidateMovement(ruleInput, product.Stock); err != nil {
			uc.metrics.RecordValidation(in.Type, err)
			return err
		}
		newStock := domaininv.ResultingStock(ruleInput, product.Stock)

		now := time.Now()
		mov := &entity.StockMovement{
			ID:            uuid.New().String(),
			ProductID:     product.ID,
			Type:          in.Type,
			Quantity:      in.Quantity,
			PreviousStock: product.Stock,
			NewStock:      newStock,
			Reason:        in.Reason,
			Reference:     in.Reference,
			CreatedBy:     in.UserID,
			CreatedAt:     now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
			return err
		}
		movement = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.RecordValidation(in.Type, nil)
	return movement, nil
}

// HistoryUseCase consultas de solo lectura sobre el kardex.
type HistoryUseCase struct {
	movRepo repository.StockMovementRepository
}

// NewHistoryUseCase construye el caso de uso de consulta.
func NewHistoryUseCase(movRepo repository.StockMovementRepository) *HistoryUseCase {
	return &HistoryUseCase{movRepo: movRepo}
}

// ListByProduct lista los movimientos de un producto, más reciente primero.
func (uc *HistoryUseCase) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.movRepo.ListByProduct(productID, limit, offset)
}

// ListRecent lista los movimientos desde una fecha, más reciente primero.
func (uc *HistoryUseCase) ListRecent(since time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return uc.movRepo.ListRecent(since, limit, offset)
}
