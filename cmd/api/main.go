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

	"github.com/serviza/dotaciones-api/internal/application/supplies"
	"github.com/serviza/dotaciones-api/internal/application/usecase"
	infrapdf "github.com/serviza/dotaciones-api/internal/infrastructure/pdf"
	"github.com/serviza/dotaciones-api/internal/infrastructure/postgres"
	httpRouter "github.com/serviza/dotaciones-api/internal/interfaces/http"
	"github.com/serviza/dotaciones-api/pkg/config"
	"github.com/serviza/dotaciones-api/pkg/logger"
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

	// Repositorios atados al pool (las escrituras del ledger usan los atados a tx vía TxRunner)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	postRepo := postgres.NewPostRepository(pool)
	viewsRepo := postgres.NewViewsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerMovementUC := supplies.NewRegisterMovementUseCase(txRunner, productRepo, employeeRepo, postRepo)
	deleteMovementUC := supplies.NewDeleteMovementUseCase(txRunner)
	viewsUC := supplies.NewViewsUseCase(viewsRepo, movementRepo)
	productUC := usecase.NewProductUseCase(productRepo, txRunner)

	// PDF: acta de entrega de dotación
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.CompanyName)
	receiptUC := supplies.NewReceiptUseCase(movementRepo, productRepo, employeeRepo, postRepo, receiptGenerator)

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
		Title:    "Dotaciones API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		RegisterMovement: registerMovementUC,
		DeleteMovement:   deleteMovementUC,
		Views:            viewsUC,
		Receipt:          receiptUC,
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
