package repository

import (
	"time"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia del kardex.
// La tabla es append-only: no hay Update ni Delete de movimientos.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
	ListRecent(since time.Time, limit, offset int) ([]*entity.StockMovement, error)
	CountSince(since time.Time) (int, error)
	// LastMovementByProduct devuelve el CreatedAt más reciente por producto.
	LastMovementByProduct() (map[string]time.Time, error)
}
