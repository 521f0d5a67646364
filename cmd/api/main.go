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
	"github.com/jhoicas/ordenes-api/internal/application/inventory"
	"github.com/jhoicas/ordenes-api/internal/application/orders"
	"github.com/jhoicas/ordenes-api/internal/application/replenishment"
	"github.com/jhoicas/ordenes-api/internal/application/usecase"
	"github.com/jhoicas/ordenes-api/internal/infrastructure/mailer"
	"github.com/jhoicas/ordenes-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/ordenes-api/internal/interfaces/http"
	"github.com/jhoicas/ordenes-api/pkg/config"
	"github.com/jhoicas/ordenes-api/pkg/logger"
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

	productRepo := postgres.NewProductRepository(pool)
	trxRepo := postgres.NewInventoryTransactionRepository(pool)
	poRepo := postgres.NewPurchaseOrderRepository(pool)
	poItemRepo := postgres.NewPurchaseOrderItemRepository(pool)
	soRepo := postgres.NewSalesOrderRepository(pool)
	soItemRepo := postgres.NewSalesOrderItemRepository(pool)
	taxRepo := postgres.NewTaxRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	purchaseTotals := orders.NewPurchaseTotalsUseCase(poRepo, poItemRepo, taxRepo)
	salesTotals := orders.NewSalesTotalsUseCase(soRepo, soItemRepo, taxRepo)
	purchaseOrderUC := orders.NewPurchaseOrderUseCase(poRepo, purchaseTotals)
	purchaseItemUC := orders.NewPurchaseItemUseCase(poItemRepo, poRepo, purchaseTotals)
	salesOrderUC := orders.NewSalesOrderUseCase(soRepo, salesTotals)
	salesItemUC := orders.NewSalesItemUseCase(soItemRepo, soRepo, salesTotals)
	productUC := usecase.NewProductUseCase(productRepo)
	movementUC := inventory.NewMovementUseCase(trxRepo, productRepo, warehouseRepo)

	lowStockUC := replenishment.NewLowStockUseCase(trxRepo)

	// Notificación por correo solo si hay servidor SMTP configurado.
	var notifier replenishment.Mailer
	if cfg.SMTP.Host != "" {
		notifier = mailer.NewSMTPMailer(
			cfg.SMTP.Host, cfg.SMTP.Port,
			cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From,
		)
	}

	replenishUC := replenishment.NewReplenishUseCase(
		lowStockUC, productRepo, poRepo, txRunner, purchaseTotals,
		notifier, cfg.Replenish.NotifyEmail, log.Zerolog(),
	)
	scheduler := replenishment.NewScheduler(
		replenishUC,
		time.Duration(cfg.Replenish.IntervalHours)*time.Hour,
		log.Zerolog(),
	)

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
		Title:    "Ordenes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:       productUC,
		MovementUC:      movementUC,
		PurchaseOrderUC: purchaseOrderUC,
		PurchaseItemUC:  purchaseItemUC,
		SalesOrderUC:    salesOrderUC,
		SalesItemUC:     salesItemUC,
		LowStockUC:      lowStockUC,
		Scheduler:       scheduler,
	})

	schedulerCtx, stopScheduler := context.WithCancel(ctx)
	defer stopScheduler()
	if cfg.Replenish.Enabled {
		scheduler.Start(schedulerCtx)
		log.Info().
			Int("interval_hours", cfg.Replenish.IntervalHours).
			Msg("motor de reposición automática iniciado")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	if cfg.Replenish.Enabled {
		scheduler.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
