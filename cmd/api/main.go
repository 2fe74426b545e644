package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dynastyos/dynasty-ops-api/internal/application/auth"
	appinv "github.com/dynastyos/dynasty-ops-api/internal/application/inventory"
	approuting "github.com/dynastyos/dynasty-ops-api/internal/application/routing"
	"github.com/dynastyos/dynasty-ops-api/internal/application/usecase"
	domrouting "github.com/dynastyos/dynasty-ops-api/internal/domain/routing"
	infraai "github.com/dynastyos/dynasty-ops-api/internal/infrastructure/ai"
	infraexport "github.com/dynastyos/dynasty-ops-api/internal/infrastructure/export"
	infrapdf "github.com/dynastyos/dynasty-ops-api/internal/infrastructure/pdf"
	"github.com/dynastyos/dynasty-ops-api/internal/infrastructure/postgres"
	httpRouter "github.com/dynastyos/dynasty-ops-api/internal/interfaces/http"
	"github.com/dynastyos/dynasty-ops-api/internal/metrics"
	"github.com/dynastyos/dynasty-ops-api/pkg/config"
	"github.com/dynastyos/dynasty-ops-api/pkg/logger"
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

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	workerRepo := postgres.NewWorkerRepository(pool)
	stopRepo := postgres.NewStopRepository(pool)
	routeRepo := postgres.NewRouteRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	policyRepo := postgres.NewReorderPolicyRepository(pool)
	poRepo := postgres.NewPurchaseOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Optimizador de rutas: los parámetros operativos vienen de entorno,
	// los pesos del ranking son los de operación.
	routingPolicy := approuting.DefaultRoutingPolicy()
	routingPolicy.MinStopsPerRoute = cfg.Routing.MinStopsPerRoute
	routingPolicy.MaxStopsPerRoute = cfg.Routing.MaxStopsPerRoute
	routingPolicy.AvgSpeedKmh = cfg.Routing.AvgSpeedKmh
	routingPolicy.ServiceMinPerStop = cfg.Routing.ServiceMinPerStop

	routingUC := approuting.NewOptimizeRoutesUseCase(
		stopRepo, workerRepo, routeRepo,
		domrouting.NewNearestNeighbor(),
		routingPolicy,
		approuting.DefaultRankingPolicy(),
	)

	reorderUC := appinv.NewReorderUseCase(stockRepo, productRepo, policyRepo)
	poUC := appinv.NewPurchaseOrderUseCase(reorderUC, txRunner)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	cxmlBuilder := infraexport.NewCXMLBuilderService()
	docUC := appinv.NewDocumentUseCase(
		poRepo, productRepo, companyRepo, warehouseRepo, pdfGenerator, cxmlBuilder,
	)

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.APIKey, cfg.AI.Model, cfg.AI.BaseURL)
	aiUC := usecase.NewAIUseCase(anthropicSvc)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
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
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Dynasty Ops API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	metrics.RegisterDefault()
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		RoutingUC: routingUC,
		ReorderUC: reorderUC,
		POUC:      poUC,
		DocUC:     docUC,
		AIUC:      aiUC,
		JWTSecret: cfg.JWT.Secret,
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
