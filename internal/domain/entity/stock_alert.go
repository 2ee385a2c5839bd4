package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de salud de stock de un producto.
const (
	StockStatusOutOfStock = "OUT_OF_STOCK"
	StockStatusCritical   = "CRITICAL_STOCK"
	StockStatusLow        = "LOW_STOCK"
	StockStatusInStock    = "IN_STOCK"
)

// Prioridades de alerta de reposición.
const (
	AlertPriorityLow    = 1
	AlertPriorityMedium = 2
	AlertPriorityHigh   = 3
)

// StockAlert es una alerta de reposición derivada; no se persiste,
// se regenera bajo demanda desde productos + movimientos.
type StockAlert struct {
	ProductID    string
	ProductName  string
	ProductSKU   string
	CurrentStock int
	MinStock     int
	Status       string
	Category     string
	LastMovement *time.Time // nil si el producto no tiene movimientos
	UrgencyScore int
	Priority     int
}

// InventoryStats agrega totales del inventario activo. Derivado, no se persiste.
type InventoryStats struct {
	TotalProducts      int             `json:"total_products"`
	TotalValue         decimal.Decimal `json:"total_value"`        // Σ cost * stock
	TotalRetailValue   decimal.Decimal `json:"total_retail_value"` // Σ price * stock
	LowStockProducts   int             `json:"low_stock_products"` // stock <= min_stock
	OutOfStockProducts int             `json:"out_of_stock_products"`
	RecentMovements    int             `json:"recent_movements"` // últimas 24h
}

// TrendDelta compara un campo de stats contra un snapshot anterior.
type TrendDelta struct {
	Value         decimal.Decimal `json:"value"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"change_percent"` // 0 si el valor previo era <= 0
}
