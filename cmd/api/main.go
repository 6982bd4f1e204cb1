package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/store-management-api/internal/application/stock"
	"github.com/jhoicas/store-management-api/internal/application/usecase"
	"github.com/jhoicas/store-management-api/internal/infrastructure/mongodb"
	httpRouter "github.com/jhoicas/store-management-api/internal/interfaces/http"
	"github.com/jhoicas/store-management-api/pkg/config"
	"github.com/jhoicas/store-management-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	connectCtx, cancelConnect := context.WithTimeout(ctx, cfg.Mongo.Timeout())
	client, err := mongodb.NewClient(connectCtx, cfg.Mongo)
	cancelConnect()
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	db := client.Database(cfg.Mongo.Database)
	userRepo := mongodb.NewUserRepository(db)
	genericRepo := mongodb.NewGenericRepository(db)
	companyRepo := mongodb.NewCompanyRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	purchaseInvoiceRepo := mongodb.NewInvoiceRepository(db, "purchaseInvoices")
	soldInvoiceRepo := mongodb.NewInvoiceRepository(db, "soldInvoices")

	userUC := usecase.NewUserUseCase(userRepo)
	genericUC := usecase.NewGenericUseCase(genericRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	purchaseInvoiceUC := usecase.NewInvoiceUseCase(purchaseInvoiceRepo)
	soldInvoiceUC := usecase.NewInvoiceUseCase(soldInvoiceRepo)
	stockUC := stock.NewAdjustStockUseCase(productRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Store Management server is running")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:            userUC,
		GenericUC:         genericUC,
		CompanyUC:         companyUC,
		CategoryUC:        categoryUC,
		ProductUC:         productUC,
		PurchaseInvoiceUC: purchaseInvoiceUC,
		SoldInvoiceUC:     soldInvoiceUC,
		StockUC:           stockUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("http server stopped")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("http server listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
