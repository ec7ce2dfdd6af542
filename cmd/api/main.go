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
	"github.com/jhoicas/Farmaventa-api/internal/application/access"
	appanalytics "github.com/jhoicas/Farmaventa-api/internal/application/analytics"
	"github.com/jhoicas/Farmaventa-api/internal/application/auth"
	"github.com/jhoicas/Farmaventa-api/internal/application/cart"
	"github.com/jhoicas/Farmaventa-api/internal/application/orders"
	"github.com/jhoicas/Farmaventa-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Farmaventa-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Farmaventa-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Farmaventa-api/internal/interfaces/http"
	"github.com/jhoicas/Farmaventa-api/pkg/config"
	"github.com/jhoicas/Farmaventa-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
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

	medicineRepo := postgres.NewMedicineRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	buyerRepo := postgres.NewBuyerRepository(pool)
	adminRepo := postgres.NewAdminRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := access.NewResolver(adminRepo, cfg.Admin.SuperAdminEmail)

	authUC := auth.NewUseCase(buyerRepo, adminRepo, resolver, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	medicineUC := usecase.NewMedicineUseCase(medicineRepo)
	cartUC := cart.NewUseCase(txRunner, cartRepo, orderRepo, buyerRepo)
	orderUC := orders.NewUseCase(orderRepo)
	buyerUC := usecase.NewBuyerUseCase(buyerRepo)
	adminUC := usecase.NewAdminUseCase(adminRepo, resolver)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, buyerRepo, settingsRepo)

	// PDF: comprobante de pedido descargable desde el panel
	pdfGenerator := infrapdf.NewMarotoOrderGenerator()
	orderPDFUC := orders.NewPDFUseCase(orderRepo, buyerRepo, settingsRepo, pdfGenerator)

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
		Title:    "Farmaventa API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		MedicineUC:  medicineUC,
		CartUC:      cartUC,
		OrderUC:     orderUC,
		OrderPDFUC:  orderPDFUC,
		BuyerUC:     buyerUC,
		AdminUC:     adminUC,
		SettingsUC:  settingsUC,
		DashboardUC: dashboardUC,
		Resolver:    resolver,
		JWTSecret:   cfg.JWT.Secret,
		Session: httpRouter.SessionConfig{
			CookieName: cfg.Session.CookieName,
			TTLHours:   cfg.Session.TTLHours,
			Secure:     cfg.App.Env != "development",
		},
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
