package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	domaininv "github.com/jhoicas/kardex-api/internal/domain/inventory"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// Puntaje base de urgencia por estado y bonos por antigüedad del último movimiento.
const (
	urgencyOutOfStock = 10
	urgencyCritical   = 8
	urgencyLow        = 5

	staleBonusDays     = 7 // sin movimientos hace más de 7 días: +2
	staleBonus         = 2
	veryStaleBonusDays = 30 // hace más de 30 días: +3 adicional (acumulativo)
	veryStaleBonus     = 3
)

// activeProductsPageSize es el tamaño de página al recorrer el catálogo activo.
const activeProductsPageSize = 500

// listAllActive recorre TODAS las páginas de productos activos. Alertas y
// stats son vistas sobre el inventario completo: cortar en una sola página
// truncaría totales y alertas en catálogos grandes.
func listAllActive(productRepo repository.ProductRepository) ([]*entity.Product, error) {
	var all []*entity.Product
	for offset := 0; ; offset += activeProductsPageSize {
		page, err := productRepo.ListActive("", activeProductsPageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < activeProductsPageSize {
			return all, nil
		}
	}
}

// AlertsUseCase genera la lista priorizada de alertas de reposición.
// Lectura sin bloqueos: puede observar un snapshot levemente desfasado
// respecto a escrituras en vuelo del ledger.
type AlertsUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
}

// NewAlertsUseCase construye el caso de uso.
func NewAlertsUseCase(productRepo repository.ProductRepository, movRepo repository.StockMovementRepository) *AlertsUseCase {
	return &AlertsUseCase{productRepo: productRepo, movRepo: movRepo}
}

// GetAlerts carga productos activos + fecha de último movimiento y deriva las alertas.
func (uc *AlertsUseCase) GetAlerts(ctx context.Context) ([]dto.StockAlertDTO, error) {
	alerts, err := uc.GetAlertEntities(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockAlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.ToAlertDTO(a))
	}
	return out, nil
}

// GetAlertEntities devuelve las alertas como entidades, para el reporte PDF.
func (uc *AlertsUseCase) GetAlertEntities(ctx context.Context) ([]entity.StockAlert, error) {
	products, err := listAllActive(uc.productRepo)
	if err != nil {
		return nil, err
	}
	lastMovement, err := uc.movRepo.LastMovementByProduct()
	if err != nil {
		return nil, err
	}
	return BuildAlerts(products, lastMovement, time.Now()), nil
}

// BuildAlerts deriva y prioriza las alertas de reposición (función pura).
// Solo considera productos activos; los IN_STOCK no generan alerta.
// Orden: urgencia descendente, desempate por stock ascendente; el orden es
// estable (claves iguales conservan el orden de entrada).
func BuildAlerts(products []*entity.Product, lastMovement map[string]time.Time, now time.Time) []entity.StockAlert {
	alerts := make([]entity.StockAlert, 0)
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		status := domaininv.Classify(p.Stock, p.MinStock)
		if status == entity.StockStatusInStock {
			continue
		}

		score := urgencyBase(status)
		var last *time.Time
		if ts, ok := lastMovement[p.ID]; ok {
			t := ts
			last = &t
			days := now.Sub(ts).Hours() / 24
			if days > staleBonusDays {
				score += staleBonus
			}
			if days > veryStaleBonusDays {
				score += veryStaleBonus
			}
		}

		alerts = append(alerts, entity.StockAlert{
			ProductID:    p.ID,
			ProductName:  p.Name,
			ProductSKU:   p.SKU,
			CurrentStock: p.Stock,
			MinStock:     p.MinStock,
			Status:       status,
			Category:     p.Category,
			LastMovement: last,
			UrgencyScore: score,
			Priority:     alertPriority(status),
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].UrgencyScore != alerts[j].UrgencyScore {
			return alerts[i].UrgencyScore > alerts[j].UrgencyScore
		}
		return alerts[i].CurrentStock < alerts[j].CurrentStock
	})
	return alerts
}

func urgencyBase(status string) int {
	switch status {
	case entity.StockStatusOutOfStock:
		return urgencyOutOfStock
	case entity.StockStatusCritical:
		return urgencyCritical
	case entity.StockStatusLow:
		return urgencyLow
	}
	return 0
}

func alertPriority(status string) int {
	switch status {
	case entity.StockStatusOutOfStock, entity.StockStatusCritical:
		return entity.AlertPriorityHigh
	case entity.StockStatusLow:
		return entity.AlertPriorityMedium
	}
	return entity.AlertPriorityLow
}
