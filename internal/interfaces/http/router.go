package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-api/internal/application/auth"
	"github.com/jhoicas/kardex-api/internal/application/inventory"
	"github.com/jhoicas/kardex-api/internal/application/usecase"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	domaininv "github.com/jhoicas/kardex-api/internal/domain/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	ProductUC    *usecase.ProductUseCase
	Ledger       *inventory.LedgerUseCase
	History      *inventory.HistoryUseCase
	Alerts       *inventory.AlertsUseCase
	Stats        *inventory.StatsUseCase
	Report       inventory.RestockReportGenerator
	RuleCounters *domaininv.RuleCounters
	JWTSecret    string
}

// Router registra las rutas de la API.
// Escrituras de inventario: admin y bodeguero. Administración de usuarios:
// solo admin. Lecturas: cualquier rol autenticado.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)
	canMoveStock := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)

	// Users (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)

	// Products (lectura para todos; escritura admin/bodeguero)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", canMoveStock, productHandler.Create)
	products.Put("/:id", canMoveStock, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Deactivate)

	// Inventory: kardex, alertas, stats (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(
		deps.Ledger, deps.History, deps.Alerts, deps.Stats, deps.Report, deps.RuleCounters)
	invGroup.Post("/movements", canMoveStock, inventoryHandler.CreateMovement)
	invGroup.Get("/movements", inventoryHandler.ListRecentMovements)
	products.Get("/:id/movements", inventoryHandler.ListProductMovements)
	invGroup.Get("/alerts", inventoryHandler.GetAlerts)
	invGroup.Get("/alerts/report", inventoryHandler.GetRestockReport)
	invGroup.Get("/stats", inventoryHandler.GetStats)
	invGroup.Post("/stats/trend", inventoryHandler.GetStatsWithTrend)
	invGroup.Get("/metrics", adminOnly, inventoryHandler.GetRuleMetrics)
}
