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
	"github.com/tu-usuario/almacen-pro/internal/application/auth"
	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/almacen-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/almacen-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/almacen-pro/internal/interfaces/http"
	"github.com/tu-usuario/almacen-pro/pkg/config"
	"github.com/tu-usuario/almacen-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	ruleRepo := postgres.NewConversionRuleRepository(pool)
	addressingRepo := postgres.NewAddressingRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Motor de inventario: escritura transaccional, consulta proyectada
	// desde el libro y reconciliación CAS del saldo cacheado.
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo, supplierRepo, ruleRepo)
	reconciler := inventory.NewReconciler(productRepo, movementRepo, log, cfg.Inventory.ReconcileWorkers)
	consultUC := inventory.NewConsultUseCase(productRepo, movementRepo, addressingRepo, catalogRepo, reconciler, log)
	relinkUC := inventory.NewRelinkUseCase(productRepo, movementRepo, movementRepo, log)

	productUC := usecase.NewProductUseCase(productRepo)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	ruleUC := usecase.NewConversionRuleUseCase(ruleRepo)
	addressingUC := usecase.NewAddressingUseCase(addressingRepo)

	// PDF: reporte de valorización de stock
	reportGen := infrapdf.NewMarotoReportGenerator()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ProductUC:        productUC,
		CatalogUC:        catalogUC,
		SupplierUC:       supplierUC,
		ConversionRuleUC: ruleUC,
		AddressingUC:     addressingUC,
		RegisterMovement: registerMovementUC,
		ConsultUC:        consultUC,
		RelinkUC:         relinkUC,
		ReportGen:        reportGen,
		JWTSecret:        cfg.JWT.Secret,
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
