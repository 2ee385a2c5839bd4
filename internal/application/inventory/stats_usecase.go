package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// recentWindow define "movimientos recientes": las últimas 24 horas.
const recentWindow = 24 * time.Hour

// StatsUseCase calcula los totales del inventario activo y la tendencia
// contra un snapshot anterior suministrado por el caller.
// Lectura sin bloqueos, igual que las alertas.
type StatsUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(productRepo repository.ProductRepository, movRepo repository.StockMovementRepository) *StatsUseCase {
	return &StatsUseCase{productRepo: productRepo, movRepo: movRepo}
}

// GetStats carga productos activos y cuenta movimientos recientes en paralelo.
func (uc *StatsUseCase) GetStats(ctx context.Context) (entity.InventoryStats, error) {
	type productsResult struct {
		products []*entity.Product
		err      error
	}
	type countResult struct {
		count int
		err   error
	}

	productsCh := make(chan productsResult, 1)
	countCh := make(chan countResult, 1)
	now := time.Now()

	go func() {
		products, err := listAllActive(uc.productRepo)
		productsCh <- productsResult{products, err}
	}()
	go func() {
		count, err := uc.movRepo.CountSince(now.Add(-recentWindow))
		countCh <- countResult{count, err}
	}()

	products := <-productsCh
	count := <-countCh

	if products.err != nil {
		return entity.InventoryStats{}, fmt.Errorf("stats: productos activos: %w", products.err)
	}
	if count.err != nil {
		return entity.InventoryStats{}, fmt.Errorf("stats: movimientos recientes: %w", count.err)
	}

	stats := ComputeStats(products.products, nil, now)
	stats.RecentMovements = count.count
	return stats, nil
}

// GetStatsWithTrend calcula las stats actuales y su tendencia contra previous.
func (uc *StatsUseCase) GetStatsWithTrend(ctx context.Context, previous entity.InventoryStats) (*dto.StatsWithTrendResponse, error) {
	current, err := uc.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StatsWithTrendResponse{
		Stats: current,
		Trend: ComputeTrend(current, previous),
	}, nil
}

// ComputeStats agrega los totales del inventario (función pura).
// movements puede ser nil; RecentMovements cuenta los CreatedAt dentro de la
// ventana de 24h anterior a now, corte inclusive (CreatedAt >= now-24h), el
// mismo borde que usa la consulta SQL de CountSince.
func ComputeStats(products []*entity.Product, movements []*entity.StockMovement, now time.Time) entity.InventoryStats {
	stats := entity.InventoryStats{
		TotalValue:       decimal.Zero,
		TotalRetailValue: decimal.Zero,
	}
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		stats.TotalProducts++
		qty := decimal.NewFromInt(int64(p.Stock))
		stats.TotalValue = stats.TotalValue.Add(p.Cost.Mul(qty))
		stats.TotalRetailValue = stats.TotalRetailValue.Add(p.Price.Mul(qty))
		if p.Stock == 0 {
			stats.OutOfStockProducts++
		}
		if p.Stock <= p.MinStock {
			stats.LowStockProducts++
		}
	}
	cutoff := now.Add(-recentWindow)
	for _, m := range movements {
		if !m.CreatedAt.Before(cutoff) && !m.CreatedAt.After(now) {
			stats.RecentMovements++
		}
	}
	return stats
}

// ComputeTrend compara cada campo numérico contra el snapshot anterior:
// change = actual - anterior; change_percent = round2(change/anterior*100)
// cuando el anterior es > 0, si no 0.
func ComputeTrend(current, previous entity.InventoryStats) map[string]entity.TrendDelta {
	return map[string]entity.TrendDelta{
		"total_products": trendDelta(
			decimal.NewFromInt(int64(current.TotalProducts)),
			decimal.NewFromInt(int64(previous.TotalProducts))),
		"total_value":        trendDelta(current.TotalValue, previous.TotalValue),
		"total_retail_value": trendDelta(current.TotalRetailValue, previous.TotalRetailValue),
		"low_stock_products": trendDelta(
			decimal.NewFromInt(int64(current.LowStockProducts)),
			decimal.NewFromInt(int64(previous.LowStockProducts))),
		"out_of_stock_products": trendDelta(
			decimal.NewFromInt(int64(current.OutOfStockProducts)),
			decimal.NewFromInt(int64(previous.OutOfStockProducts))),
		"recent_movements": trendDelta(
			decimal.NewFromInt(int64(current.RecentMovements)),
			decimal.NewFromInt(int64(previous.RecentMovements))),
	}
}

func trendDelta(current, previous decimal.Decimal) entity.TrendDelta {
	change := current.Sub(previous)
	changePct := decimal.Zero
	if previous.GreaterThan(decimal.Zero) {
		changePct = change.Div(previous).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return entity.TrendDelta{Value: current, Change: change, ChangePercent: changePct}
}
