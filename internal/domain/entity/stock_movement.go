package entity

import "time"

// Tipos de movimiento del kardex.
const (
	MovementTypeIN         = "IN"         // entrada (compra, recepción)
	MovementTypeOUT        = "OUT"        // salida (venta, consumo)
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste con delta firmado
	MovementTypeTRANSFER   = "TRANSFER"   // reservado: sin modelo de ubicaciones aún
)

// ValidMovementType indica si el tipo está declarado en el kardex.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeIN, MovementTypeOUT, MovementTypeADJUSTMENT, MovementTypeTRANSFER:
		return true
	}
	return false
}

// StockMovement es un registro inmutable del kardex (append-only).
// PreviousStock y NewStock dejan constancia del saldo antes y después;
// el stock actual del producto es la vista materializada de esta historia.
// Una vez creado, un movimiento nunca se actualiza ni se borra.
type StockMovement struct {
	ID            string
	ProductID     string
	Type          string // IN, OUT, ADJUSTMENT
	Quantity      int    // magnitud positiva en IN/OUT; delta firmado en ADJUSTMENT
	PreviousStock int
	NewStock      int
	Reason        string // obligatoria y ≥10 caracteres para ADJUSTMENT
	Reference     string // factura, orden, nota, etc. (opcional)
	CreatedBy     string // UserID del actor
	CreatedAt     time.Time
}
