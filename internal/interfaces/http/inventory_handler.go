package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/application/inventory"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	domaininv "github.com/jhoicas/kardex-api/internal/domain/inventory"
)

// InventoryHandler maneja el kardex: movimientos, alertas, stats y métricas.
type InventoryHandler struct {
	ledger  *inventory.LedgerUseCase
	history *inventory.HistoryUseCase
	alerts  *inventory.AlertsUseCase
	stats   *inventory.StatsUseCase
	report  inventory.RestockReportGenerator
	rules   *domaininv.RuleCounters
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	ledger *inventory.LedgerUseCase,
	history *inventory.HistoryUseCase,
	alerts *inventory.AlertsUseCase,
	stats *inventory.StatsUseCase,
	report inventory.RestockReportGenerator,
	rules *domaininv.RuleCounters,
) *InventoryHandler {
	return &InventoryHandler{
		ledger:  ledger,
		history: history,
		alerts:  alerts,
		stats:   stats,
		report:  report,
		rules:   rules,
	}
}

// CreateMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  Única ruta de escritura del stock: valida reglas de negocio y
// @Description  persiste movimiento + nuevo stock de forma atómica.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockMovementRequest  true  "product_id, type (IN/OUT/ADJUSTMENT), quantity, reason"
// @Success      201   {object}  dto.ActionResult
// @Failure      400   {object}  dto.ActionResult
// @Failure      404   {object}  dto.ActionResult
// @Failure      409   {object}  dto.ActionResult
// @Failure      422   {object}  dto.ActionResult
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) CreateMovement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("UNAUTHORIZED", "token inválido"))
	}
	var in dto.CreateStockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	movement, err := h.ledger.ApplyMovement(c.Context(), inventory.ApplyMovementInput{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		Reference: in.Reference,
		UserID:    userID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(dto.ToMovementResponse(movement)))
}

// ListProductMovements godoc
// @Summary      Historial de movimientos de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        limit   query  int     false  "Máximo de resultados (default 20, tope 100)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ActionResult
// @Router       /api/products/{id}/movements [get]
func (h *InventoryHandler) ListProductMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "paginación inválida"))
	}
	page.DefaultPage()
	list, err := h.history.ListByProduct(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(toMovementResponses(list)))
}

// ListRecentMovements godoc
// @Summary      Movimientos recientes
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        since   query  string  false  "Desde (RFC3339). Default: últimas 24h"
// @Param        limit   query  int     false  "Máximo de resultados (default 20, tope 100)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ActionResult
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListRecentMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "paginación inválida"))
	}
	page.DefaultPage()

	since := time.Now().Add(-24 * time.Hour)
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "since debe ser RFC3339"))
		}
		since = parsed
	}
	list, err := h.history.ListRecent(since, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(toMovementResponses(list)))
}

// GetAlerts godoc
// @Summary      Alertas de reposición priorizadas
// @Description  Productos activos bajo stock mínimo, ordenados por urgencia
// @Description  descendente con desempate por stock ascendente.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ActionResult
// @Router       /api/inventory/alerts [get]
func (h *InventoryHandler) GetAlerts(c *fiber.Ctx) error {
	alerts, err := h.alerts.GetAlerts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(fiber.Map{"total": len(alerts), "alerts": alerts}))
}

// GetRestockReport godoc
// @Summary      Reporte de reposición en PDF
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/inventory/alerts/report [get]
func (h *InventoryHandler) GetRestockReport(c *fiber.Ctx) error {
	alerts, err := h.alerts.GetAlertEntities(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	pdfBytes, err := h.report.GenerateRestockReport(c.Context(), alerts, time.Now())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-reposicion.pdf"`)
	return c.Send(pdfBytes)
}

// GetStats godoc
// @Summary      Estadísticas del inventario activo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ActionResult
// @Router       /api/inventory/stats [get]
func (h *InventoryHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.stats.GetStats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(stats))
}

// GetStatsWithTrend godoc
// @Summary      Estadísticas con tendencia
// @Description  Compara las stats actuales contra un snapshot anterior que el
// @Description  cliente envía en el body (el módulo no persiste históricos).
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.InventoryStats  true  "snapshot anterior"
// @Success      200   {object}  dto.ActionResult
// @Router       /api/inventory/stats/trend [post]
func (h *InventoryHandler) GetStatsWithTrend(c *fiber.Ctx) error {
	var previous entity.InventoryStats
	if err := c.BodyParser(&previous); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.stats.GetStatsWithTrend(c.Context(), previous)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetRuleMetrics godoc
// @Summary      Contadores de validación de reglas de negocio
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ActionResult
// @Router       /api/inventory/metrics [get]
func (h *InventoryHandler) GetRuleMetrics(c *fiber.Ctx) error {
	return c.JSON(dto.OK(h.rules.Snapshot()))
}

func toMovementResponses(list []*entity.StockMovement) []dto.StockMovementResponse {
	out := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.ToMovementResponse(m))
	}
	return out
}
