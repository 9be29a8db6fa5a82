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

	"github.com/jhoicas/invoices-dashboard/internal/application/auth"
	"github.com/jhoicas/invoices-dashboard/internal/application/billing"
	"github.com/jhoicas/invoices-dashboard/internal/application/validation"
	infrapdf "github.com/jhoicas/invoices-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/invoices-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/invoices-dashboard/internal/infrastructure/viewcache"
	httpRouter "github.com/jhoicas/invoices-dashboard/internal/interfaces/http"
	"github.com/jhoicas/invoices-dashboard/pkg/config"
	"github.com/jhoicas/invoices-dashboard/pkg/logger"
	"github.com/jhoicas/invoices-dashboard/pkg/password"
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
	if cfg.DB.MigrationsDir != "" {
		if err := postgres.Migrate(cfg.DB.MigrationsDir, cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.DB, postgres.DefaultPoolOptions, log.Component("postgres"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	invoiceRepo := postgres.NewInvoiceRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	views := viewcache.NewRegistry()
	v := validation.New()

	invoiceActions := billing.NewInvoiceActions(invoiceRepo, views, v, time.Now, log)
	invoiceQuery := billing.NewInvoiceQueryUseCase(invoiceRepo, customerRepo)
	invoicePDF := billing.NewPDFUseCase(invoiceRepo, infrapdf.NewMarotoPDFGenerator(cfg.App.Name))
	authUC := auth.NewAuthUseCase(userRepo, password.Bcrypt{}, v, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "Invoices Dashboard API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceActions: invoiceActions,
		InvoiceQuery:   invoiceQuery,
		InvoicePDF:     invoicePDF,
		AuthUC:         authUC,
		Views:          views,
		JWTSecret:      cfg.JWT.Secret,
		SessionTTL:     time.Duration(cfg.JWT.Expiration) * time.Minute,
		SecureCookie:   cfg.App.IsProduction(),
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
