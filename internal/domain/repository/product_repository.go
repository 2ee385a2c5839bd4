package repository

import "github.com/jhoicas/kardex-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// UpdateStock existe solo para el ledger: cualquier otro escritor que toque
// el stock fuera de un movimiento rompe la pista de auditoría.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate lee el producto bloqueando su fila (SELECT FOR UPDATE).
	// Serializa lecturas-modificaciones concurrentes por producto dentro de una tx.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, newStock int) error
	ListActive(search string, limit, offset int) ([]*entity.Product, error)
	Deactivate(id string) error
}
