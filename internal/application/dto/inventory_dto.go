package dto

import (
	"time"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// CreateStockMovementRequest body para POST /api/inventory/movements.
// Única forma de escritura aceptada por el kardex; el actor sale del token.
type CreateStockMovementRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"` // IN, OUT, ADJUSTMENT
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
	Reference string `json:"reference,omitempty"`
}

// StockMovementResponse salida de un movimiento persistido.
type StockMovementResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	PreviousStock int       `json:"previous_stock"`
	NewStock      int       `json:"new_stock"`
	Reason        string    `json:"reason"`
	Reference     string    `json:"reference,omitempty"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToMovementResponse convierte la entidad al DTO de salida.
func ToMovementResponse(m *entity.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		Reason:        m.Reason,
		Reference:     m.Reference,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
	}
}

// StockAlertDTO alerta de reposición para el panel de administración.
type StockAlertDTO struct {
	ProductID    string     `json:"product_id"`
	ProductName  string     `json:"product_name"`
	ProductSKU   string     `json:"product_sku"`
	CurrentStock int        `json:"current_stock"`
	MinStock     int        `json:"min_stock"`
	Status       string     `json:"status"`
	Category     string     `json:"category"`
	LastMovement *time.Time `json:"last_movement,omitempty"`
	UrgencyScore int        `json:"urgency_score"`
	Priority     int        `json:"priority"` // 3 alta, 2 media, 1 baja
}

// ToAlertDTO convierte la alerta derivada al DTO de salida.
func ToAlertDTO(a entity.StockAlert) StockAlertDTO {
	return StockAlertDTO{
		ProductID:    a.ProductID,
		ProductName:  a.ProductName,
		ProductSKU:   a.ProductSKU,
		CurrentStock: a.CurrentStock,
		MinStock:     a.MinStock,
		Status:       a.Status,
		Category:     a.Category,
		LastMovement: a.LastMovement,
		UrgencyScore: a.UrgencyScore,
		Priority:     a.Priority,
	}
}

// StatsWithTrendResponse stats actuales emparejadas con la tendencia contra
// un snapshot anterior suministrado por el caller.
type StatsWithTrendResponse struct {
	Stats entity.InventoryStats        `json:"stats"`
	Trend map[string]entity.TrendDelta `json:"trend"`
}
