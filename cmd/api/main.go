package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/obratex/deposito-api/internal/application/catalog"
	"github.com/obratex/deposito-api/internal/application/lists"
	"github.com/obratex/deposito-api/internal/application/separation"
	"github.com/obratex/deposito-api/internal/application/stock"
	"github.com/obratex/deposito-api/internal/infrastructure/postgres"
	httpRouter "github.com/obratex/deposito-api/internal/interfaces/http"
	"github.com/obratex/deposito-api/pkg/config"
	"github.com/obratex/deposito-api/pkg/logger"
)

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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	floorRepo := postgres.NewFloorStockRepository(pool)
	slotRepo := postgres.NewSlotRepository(pool)
	listRepo := postgres.NewListRepository(pool)
	buildingRepo := postgres.NewBuildingRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	computeUC := stock.NewComputeStockUseCase(productRepo, floorRepo, slotRepo)
	movementUC := stock.NewMovementUseCase(txRunner, productRepo)
	listUC := lists.NewListUseCase(txRunner, listRepo, slotRepo)
	slotUC := lists.NewSlotUseCase(txRunner, slotRepo, productRepo, buildingRepo, listRepo)
	plannerUC := separation.NewPlannerUseCase(productRepo, floorRepo, slotRepo)
	productUC := catalog.NewProductUseCase(productRepo, supplierRepo)
	directoryUC := catalog.NewDirectoryUseCase(buildingRepo, supplierRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ComputeStock: computeUC,
		Movement:     movementUC,
		Lists:        listUC,
		Slots:        slotUC,
		Planner:      plannerUC,
		Products:     productUC,
		Directory:    directoryUC,
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
