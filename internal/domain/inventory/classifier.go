package inventory

import "github.com/jhoicas/kardex-api/internal/domain/entity"

// DefaultCriticalThreshold es el umbral por debajo del cual (exclusive cero)
// un producto se considera en stock crítico.
const DefaultCriticalThreshold = 2

// Classify clasifica la salud de stock de un producto con el umbral por defecto.
func Classify(stock, minStock int) string {
	return ClassifyWithThreshold(stock, minStock, DefaultCriticalThreshold)
}

// ClassifyWithThreshold clasifica con umbral crítico configurable:
// 0 → OUT_OF_STOCK; (0, critical] → CRITICAL_STOCK; (critical, minStock] → LOW_STOCK;
// el resto → IN_STOCK.
func ClassifyWithThreshold(stock, minStock, criticalThreshold int) string {
	switch {
	case stock == 0:
		return entity.StockStatusOutOfStock
	case stock <= criticalThreshold:
		return entity.StockStatusCritical
	case stock <= minStock:
		return entity.StockStatusLow
	default:
		return entity.StockStatusInStock
	}
}

// StockPercentage devuelve el porcentaje de llenado respecto a MaxStock, o
// respecto a MinStock*4 como techo de referencia cuando no hay máximo definido.
// Siempre acotado a [0, 100].
func StockPercentage(stock, minStock int, maxStock *int) float64 {
	ceiling := minStock * 4
	if maxStock != nil {
		ceiling = *maxStock
	}
	if ceiling <= 0 {
		return 0
	}
	pct := float64(stock) / float64(ceiling) * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
