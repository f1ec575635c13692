package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/backoffice-api/internal/application/inventory"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/backoffice-api/internal/infrastructure/pdf"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/backoffice-api/internal/interfaces/http"
	"github.com/jhoicas/backoffice-api/pkg/config"
	"github.com/jhoicas/backoffice-api/pkg/logger"
)

// repositories puertos de persistencia ya construidos para el driver elegido.
type repositories struct {
	inventory repository.InventoryRepository
	products  repository.ProductRepository
	category  repository.CategoryRepository
	suppliers repository.SupplierRepository
	campaigns repository.CampaignRepository
	close     func()
}

// @title                       Back-office API
// @version                     1.0
// @description                 Monitoreo de inventario, estadísticas, catálogo, proveedores y campañas del back-office.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.App.StoreDriver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer repos.close()

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	inventoryUC := inventory.NewInventoryUseCase(repos.inventory, repos.products, pdfGenerator, time.Now)
	productUC := usecase.NewProductUseCase(repos.products)
	categoryUC := usecase.NewCategoryUseCase(repos.category)
	supplierUC := usecase.NewSupplierUseCase(repos.suppliers)
	campaignUC := usecase.NewCampaignUseCase(repos.campaigns)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Back-office API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC: inventoryUC,
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		SupplierUC:  supplierUC,
		CampaignUC:  campaignUC,
		JWTSecret:   cfg.JWT.Secret,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func openRepositories(ctx context.Context, cfg *config.Config, log *logger.Logger) (*repositories, error) {
	if cfg.App.StoreDriver == config.StoreDriverMemory {
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		store := memory.NewStore()
		return &repositories{
			inventory: memory.NewInventoryRepository(store),
			products:  memory.NewProductRepository(store),
			category:  memory.NewCategoryRepository(store),
			suppliers: memory.NewSupplierRepository(store),
			campaigns: memory.NewCampaignRepository(store),
			close:     func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("esquema aplicado")
	}
	return &repositories{
		inventory: postgres.NewInventoryRepository(pool),
		products:  postgres.NewProductRepository(pool),
		category:  postgres.NewCategoryRepository(pool),
		suppliers: postgres.NewSupplierRepository(pool),
		campaigns: postgres.NewCampaignRepository(pool),
		close:     pool.Close,
	}, nil
}
