package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el kardex: el
// movimiento y la actualización de stock se confirman juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// RestockReportGenerator genera el PDF del reporte de reposición a partir de
// las alertas ya priorizadas.
type RestockReportGenerator interface {
	GenerateRestockReport(ctx context.Context, alerts []entity.StockAlert, generatedAt time.Time) ([]byte, error)
}
