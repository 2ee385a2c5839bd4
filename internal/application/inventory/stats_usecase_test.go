package inventory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/jhoicas/kardex-api/internal/application/inventory"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

func statsProduct(id string, cost, price int64, stock, minStock int) *entity.Product {
	return &entity.Product{
		ID:       id,
		SKU:      "SKU-" + id,
		Price:    decimal.NewFromInt(price),
		Cost:     decimal.NewFromInt(cost),
		Stock:    stock,
		MinStock: minStock,
		IsActive: true,
	}
}

func TestComputeStats_Totales(t *testing.T) {
	now := time.Now()
	products := []*entity.Product{
		statsProduct("a", 10, 20, 5, 2),
		statsProduct("b", 5, 8, 0, 2),
	}

	stats := appinv.ComputeStats(products, nil, now)

	assert.Equal(t, 2, stats.TotalProducts)
	assert.True(t, stats.TotalValue.Equal(decimal.NewFromInt(50)),
		"totalValue = Σ cost*stock = 10*5 + 5*0 = 50, fue %s", stats.TotalValue)
	assert.True(t, stats.TotalRetailValue.Equal(decimal.NewFromInt(100)),
		"totalRetailValue = Σ price*stock = 20*5 + 8*0 = 100, fue %s", stats.TotalRetailValue)
	assert.Equal(t, 1, stats.OutOfStockProducts)
	assert.Equal(t, 1, stats.LowStockProducts, "stock 0 <= min 2 cuenta como low")
}

func TestComputeStats_IgnoraInactivos(t *testing.T) {
	inactive := statsProduct("x", 10, 20, 5, 2)
	inactive.IsActive = false
	stats := appinv.ComputeStats([]*entity.Product{inactive}, nil, time.Now())
	assert.Zero(t, stats.TotalProducts)
	assert.True(t, stats.TotalValue.IsZero())
}

func TestComputeStats_MovimientosRecientes24h(t *testing.T) {
	now := time.Now()
	movements := []*entity.StockMovement{
		{ID: "m1", CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "m2", CreatedAt: now.Add(-23 * time.Hour)},
		{ID: "m3", CreatedAt: now.Add(-25 * time.Hour)}, // fuera de la ventana
	}
	stats := appinv.ComputeStats(nil, movements, now)
	assert.Equal(t, 2, stats.RecentMovements, "solo cuentan las últimas 24 horas")
}

// El movimiento cuyo CreatedAt cae exactamente en now-24h pertenece a la
// ventana: el corte es inclusive, igual que el created_at >= de CountSince.
func TestComputeStats_BordeInclusiveDeVentana(t *testing.T) {
	now := time.Now()
	movements := []*entity.StockMovement{
		{ID: "m1", CreatedAt: now.Add(-24 * time.Hour)},
	}
	stats := appinv.ComputeStats(nil, movements, now)
	assert.Equal(t, 1, stats.RecentMovements,
		"el borde exacto de la ventana de 24h cuenta como reciente")
}

// Los totales agregan el catálogo completo aunque supere una página del
// repositorio de productos.
func TestGetStats_CatalogoMayorQueUnaPagina(t *testing.T) {
	const total = 750
	products := make([]*entity.Product, 0, total)
	for i := 0; i < total; i++ {
		products = append(products, statsProduct(fmt.Sprintf("p%04d", i), 10, 20, 1, 0))
	}
	store := newMemStore(products...)
	movRepo, productRepo := store.readRepos()
	uc := appinv.NewStatsUseCase(productRepo, movRepo)

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, total, stats.TotalProducts,
		"los totales no se truncan en la primera página del catálogo")
	assert.True(t, stats.TotalValue.Equal(decimal.NewFromInt(7500)),
		"totalValue = 750 * cost 10 * stock 1 = 7500, fue %s", stats.TotalValue)
	assert.True(t, stats.TotalRetailValue.Equal(decimal.NewFromInt(15000)),
		"totalRetailValue = 750 * price 20 * stock 1 = 15000, fue %s", stats.TotalRetailValue)
}

func TestComputeTrend_VectorDeReferencia(t *testing.T) {
	current := entity.InventoryStats{TotalProducts: 120}
	previous := entity.InventoryStats{TotalProducts: 100}

	trend := appinv.ComputeTrend(current, previous)
	delta, ok := trend["total_products"]
	require.True(t, ok)
	assert.True(t, delta.Change.Equal(decimal.NewFromInt(20)))
	assert.True(t, delta.ChangePercent.Equal(decimal.NewFromFloat(20)),
		"changePercent = round2(20/100*100) = 20.00, fue %s", delta.ChangePercent)
}

func TestComputeTrend_PrevioCeroSinPorcentaje(t *testing.T) {
	current := entity.InventoryStats{OutOfStockProducts: 3}
	trend := appinv.ComputeTrend(current, entity.InventoryStats{})
	delta := trend["out_of_stock_products"]
	assert.True(t, delta.Change.Equal(decimal.NewFromInt(3)))
	assert.True(t, delta.ChangePercent.IsZero(),
		"con previo 0 el porcentaje es 0, no división por cero")
}

func TestComputeTrend_Redondeo(t *testing.T) {
	current := entity.InventoryStats{TotalValue: decimal.NewFromInt(100)}
	previous := entity.InventoryStats{TotalValue: decimal.NewFromInt(3)}
	delta := appinv.ComputeTrend(current, previous)["total_value"]
	// (97/3)*100 = 3233.33...
	assert.True(t, delta.ChangePercent.Equal(decimal.NewFromFloat(3233.33)),
		"changePercent se redondea a 2 decimales, fue %s", delta.ChangePercent)
}

func TestComputeTrend_CubreTodosLosCampos(t *testing.T) {
	trend := appinv.ComputeTrend(entity.InventoryStats{}, entity.InventoryStats{})
	for _, field := range []string{
		"total_products", "total_value", "total_retail_value",
		"low_stock_products", "out_of_stock_products", "recent_movements",
	} {
		_, ok := trend[field]
		assert.True(t, ok, "falta el campo %s en la tendencia", field)
	}
}
