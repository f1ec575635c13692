package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/inventory"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/pkg/jwt"
	"github.com/jhoicas/backoffice-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *inventory.InventoryUseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	SupplierUC  *usecase.SupplierUseCase
	CampaignUC  *usecase.CampaignUseCase
	JWTSecret   string
	Log         *logger.Logger
}

// Router registra las rutas de la API. Todas requieren Bearer Token; los borrados de
// catálogo, proveedores y campañas quedan para admin.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("http")

	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(jwt.RoleAdmin)

	// Inventory: rutas fijas antes de /:id.
	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, log)
	inv.Get("/alerts", inventoryHandler.Alerts)
	inv.Get("/alerts/report", inventoryHandler.AlertsReport)
	inv.Get("/statistics", inventoryHandler.Statistics)
	inv.Post("/", inventoryHandler.Create)
	inv.Get("/", inventoryHandler.List)
	inv.Get("/:id", inventoryHandler.GetByID)
	inv.Put("/:id", inventoryHandler.Update)
	inv.Delete("/:id", inventoryHandler.Delete)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, log)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, log)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, log)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/store/:storeId", supplierHandler.ListByStore)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	campaigns := api.Group("/campaigns")
	campaignHandler := NewCampaignHandler(deps.CampaignUC, log)
	campaigns.Post("/", campaignHandler.Create)
	campaigns.Get("/", campaignHandler.List)
	campaigns.Get("/:id", campaignHandler.GetByID)
	campaigns.Put("/:id", campaignHandler.Update)
	campaigns.Patch("/:id/status", campaignHandler.ChangeStatus)
	campaigns.Delete("/:id", adminOnly, campaignHandler.Delete)

	api.Get("/statistics/home", campaignHandler.HomeStatistics)
}
