package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// Códigos estables de regla de negocio. El caller puede mapearlos a mensajes
// accionables; nunca cambian aunque cambie el texto del error.
const (
	CodeInsufficientStock          = "INSUFFICIENT_STOCK"
	CodeNegativeStock              = "NEGATIVE_STOCK"
	CodeNegativeAdjustment         = "NEGATIVE_ADJUSTMENT"
	CodeMinMaxStockValidation      = "MIN_MAX_STOCK_VALIDATION"
	CodePriceCostValidation        = "PRICE_COST_VALIDATION"
	CodeInsufficientAdjustReason   = "INSUFFICIENT_ADJUSTMENT_REASON"
	CodeInvalidSKUFormat           = "INVALID_SKU_FORMAT"
	CodeImageLimitExceeded         = "IMAGE_LIMIT_EXCEEDED"
	CodeTagLimitExceeded           = "TAG_LIMIT_EXCEEDED"
	CodeTransferNotSupported       = "TRANSFER_NOT_SUPPORTED"
	CodeInvalidMovementQuantity    = "INVALID_MOVEMENT_QUANTITY"
)

// BusinessRuleError es una violación de invariante de negocio con código estable.
// Se resuelve siempre antes de cualquier mutación: una operación rechazada por
// regla de negocio nunca deja estado parcial.
type BusinessRuleError struct {
	Code    string
	Message string
}

func (e *BusinessRuleError) Error() string {
	return e.Code + ": " + e.Message
}

// NewBusinessRuleError construye el error con código estable y mensaje legible.
func NewBusinessRuleError(code, message string) *BusinessRuleError {
	return &BusinessRuleError{Code: code, Message: message}
}

// AsBusinessRule extrae el *BusinessRuleError de una cadena de errores, si existe.
func AsBusinessRule(err error) (*BusinessRuleError, bool) {
	var bre *BusinessRuleError
	if errors.As(err, &bre) {
		return bre, true
	}
	return nil, false
}
