package inventory

import (
	"sync"

	"github.com/jhoicas/kardex-api/internal/domain"
)

// RuleMetrics recibe el resultado de cada validación de movimiento.
// El ciclo de vida del acumulador lo posee quien lo inyecta (main, tests),
// no este paquete: no hay estado global.
type RuleMetrics interface {
	RecordValidation(movementType string, err error)
}

// NopRuleMetrics descarta todas las mediciones.
type NopRuleMetrics struct{}

func (NopRuleMetrics) RecordValidation(string, error) {}

// RuleCounters acumula validaciones por resultado y por código de regla.
// Seguro para uso concurrente.
type RuleCounters struct {
	mu       sync.Mutex
	total    int
	rejected int
	byCode   map[string]int
}

// NewRuleCounters construye el acumulador.
func NewRuleCounters() *RuleCounters {
	return &RuleCounters{byCode: make(map[string]int)}
}

// RecordValidation implementa RuleMetrics.
func (c *RuleCounters) RecordValidation(_ string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.total++
	if err == nil {
		return
	}
	c.rejected++
	if bre, ok := domain.AsBusinessRule(err); ok {
		c.byCode[bre.Code]++
	}
}

// RuleCountersSnapshot es una copia inmutable de los contadores.
type RuleCountersSnapshot struct {
	Total    int            `json:"total"`
	Rejected int            `json:"rejected"`
	ByCode   map[string]int `json:"by_code"`
}

// Snapshot devuelve una copia de los contadores actuales.
func (c *RuleCounters) Snapshot() RuleCountersSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	byCode := make(map[string]int, len(c.byCode))
	for k, v := range c.byCode {
		byCode[k] = v
	}
	return RuleCountersSnapshot{Total: c.total, Rejected: c.rejected, ByCode: byCode}
}
