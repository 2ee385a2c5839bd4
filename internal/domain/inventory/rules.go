// Package inventory contiene los servicios de dominio puros del kardex:
// reglas de negocio de movimientos y productos, y la clasificación de salud
// de stock. Sin I/O; todo lo transaccional vive en application/inventory.
package inventory

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// Límites de atributos de producto.
const (
	MaxProductImages    = 10
	MaxProductTags      = 20
	MinAdjustmentReason = 10 // caracteres mínimos de la razón en ADJUSTMENT
)

var skuPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,}$`)

// MovementInput es un movimiento propuesto, todavía sin aplicar.
type MovementInput struct {
	ProductID string
	Type      string
	Quantity  int    // magnitud positiva en IN/OUT; delta firmado en ADJUSTMENT
	Reason    string
	Reference string
}

// ValidateMovement verifica las precondiciones de un movimiento contra el stock
// actual. Devuelve *domain.BusinessRuleError con código estable en la primera
// violación; no toca estado. TRANSFER se acepta en forma (tipo declarado) pero
// su efecto lo rechaza el ledger mientras no exista modelo de ubicaciones.
func ValidateMovement(in MovementInput, currentStock int) error {
	switch in.Type {
	case entity.MovementTypeIN:
		if in.Quantity <= 0 {
			return domain.NewBusinessRuleError(domain.CodeInvalidMovementQuantity,
				"la cantidad de una entrada debe ser mayor que cero")
		}
	case entity.MovementTypeOUT:
		if in.Quantity <= 0 {
			return domain.NewBusinessRuleError(domain.CodeInvalidMovementQuantity,
				"la cantidad de una salida debe ser mayor que cero")
		}
		if in.Quantity > currentStock {
			return domain.NewBusinessRuleError(domain.CodeInsufficientStock,
				fmt.Sprintf("stock insuficiente: disponible %d, solicitado %d", currentStock, in.Quantity))
		}
	case entity.MovementTypeADJUSTMENT:
		if len(strings.TrimSpace(in.Reason)) < MinAdjustmentReason {
			return domain.NewBusinessRuleError(domain.CodeInsufficientAdjustReason,
				fmt.Sprintf("un ajuste requiere una razón de al menos %d caracteres", MinAdjustmentReason))
		}
		if currentStock+in.Quantity < 0 {
			return domain.NewBusinessRuleError(domain.CodeNegativeAdjustment,
				fmt.Sprintf("el ajuste dejaría el stock en %d", currentStock+in.Quantity))
		}
	case entity.MovementTypeTRANSFER:
		// Forma aceptada; el efecto sobre stock no está definido todavía.
		if in.Quantity <= 0 {
			return domain.NewBusinessRuleError(domain.CodeInvalidMovementQuantity,
				"la cantidad de un traslado debe ser mayor que cero")
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

// ResultingStock calcula el stock resultante de un movimiento ya validado.
// TRANSFER no tiene transformación definida y devuelve el stock sin cambios.
func ResultingStock(in MovementInput, currentStock int) int {
	switch in.Type {
	case entity.MovementTypeIN:
		return currentStock + in.Quantity
	case entity.MovementTypeOUT:
		return currentStock - in.Quantity
	case entity.MovementTypeADJUSTMENT:
		return currentStock + in.Quantity
	}
	return currentStock
}

// ProductRuleInput son los atributos de producto sujetos a reglas de negocio,
// verificados antes de crear o actualizar (fuera de la ruta del ledger).
type ProductRuleInput struct {
	SKU      string
	Price    decimal.Decimal
	Cost     decimal.Decimal
	Stock    int
	MinStock int
	MaxStock *int
	Images   []string
	Tags     []string
}

// ValidateProductRules verifica los invariantes de atributos de producto.
// Todas las comprobaciones corren antes de cualquier mutación; la primera
// violación corta y nada parcial se escribe.
func ValidateProductRules(in ProductRuleInput) error {
	if !in.Price.GreaterThan(in.Cost) {
		return domain.NewBusinessRuleError(domain.CodePriceCostValidation,
			"el precio de venta debe ser mayor que el costo")
	}
	if in.Stock < 0 {
		return domain.NewBusinessRuleError(domain.CodeNegativeStock,
			"el stock no puede ser negativo")
	}
	if in.MaxStock != nil && in.MinStock > *in.MaxStock {
		return domain.NewBusinessRuleError(domain.CodeMinMaxStockValidation,
			"el stock mínimo no puede superar al máximo")
	}
	if !skuPattern.MatchString(in.SKU) {
		return domain.NewBusinessRuleError(domain.CodeInvalidSKUFormat,
			"el SKU debe tener al menos 3 caracteres alfanuméricos, guion o guion bajo")
	}
	if len(in.Images) > MaxProductImages {
		return domain.NewBusinessRuleError(domain.CodeImageLimitExceeded,
			fmt.Sprintf("máximo %d imágenes por producto", MaxProductImages))
	}
	if len(in.Tags) > MaxProductTags {
		return domain.NewBusinessRuleError(domain.CodeTagLimitExceeded,
			fmt.Sprintf("máximo %d tags por producto", MaxProductTags))
	}
	return nil
}
