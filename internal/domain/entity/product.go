package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo administrado.
// Stock es la cantidad materializada actual y SOLO se modifica a través del
// libro de movimientos (LedgerUseCase); Price y Cost se editan por CRUD.
type Product struct {
	ID          string
	SKU         string // código único, formato [A-Za-z0-9_-]{3,}
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal // precio de venta (debe ser > Cost)
	Cost        decimal.Decimal // costo unitario
	Stock       int             // cantidad actual, nunca negativa
	MinStock    int             // nivel mínimo deseado
	MaxStock    *int            // nivel máximo opcional
	Images      []string
	Tags        []string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
