package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Stock es el saldo
// inicial materializado; después de la creación solo cambia vía movimientos.
type CreateProductRequest struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
	MaxStock    *int            `json:"max_stock,omitempty"`
	Images      []string        `json:"images,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock: el
// stock se maneja vía movimientos).
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Cost        *decimal.Decimal `json:"cost"`
	MinStock    *int             `json:"min_stock"`
	MaxStock    *int             `json:"max_stock"`
	Images      []string         `json:"images"`
	Tags        []string         `json:"tags"`
	IsActive    *bool            `json:"is_active"`
}

// ProductResponse salida de un producto, con la clasificación de stock derivada.
type ProductResponse struct {
	ID              string          `json:"id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Price           decimal.Decimal `json:"price"`
	Cost            decimal.Decimal `json:"cost"`
	Stock           int             `json:"stock"`
	MinStock        int             `json:"min_stock"`
	MaxStock        *int            `json:"max_stock,omitempty"`
	Images          []string        `json:"images,omitempty"`
	Tags            []string        `json:"tags,omitempty"`
	IsActive        bool            `json:"is_active"`
	StockStatus     string          `json:"stock_status"`
	StockPercentage float64         `json:"stock_percentage"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
