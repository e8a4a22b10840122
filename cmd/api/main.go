package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Restaurante-api/internal/application/auth"
	"github.com/jhoicas/Restaurante-api/internal/application/reportes"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	infraexcel "github.com/jhoicas/Restaurante-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/Restaurante-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Restaurante-api/internal/interfaces/http"
	"github.com/jhoicas/Restaurante-api/pkg/config"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
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

	if err := postgres.RunMigrations(cfg.DB.ConnectionString(), "migrations"); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	distritoRepo := postgres.NewDistritoRepository(pool)
	tipoDocumentoRepo := postgres.NewTipoDocumentoRepository(pool)
	rolRepo := postgres.NewRolRepository(pool)
	tipoPlatoRepo := postgres.NewTipoPlatoRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	empleadoRepo := postgres.NewEmpleadoRepository(pool)
	platoRepo := postgres.NewPlatoRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	distritoUC := usecase.NewCatalogoUseCase(distritoRepo)
	tipoDocumentoUC := usecase.NewCatalogoUseCase(tipoDocumentoRepo)
	rolUC := usecase.NewCatalogoUseCase(rolRepo)
	tipoPlatoUC := usecase.NewCatalogoUseCase(tipoPlatoRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	empleadoUC := usecase.NewEmpleadoUseCase(empleadoRepo, rolRepo, distritoRepo)
	platoUC := usecase.NewPlatoUseCase(platoRepo, tipoPlatoRepo)
	pedidoUC := usecase.NewPedidoUseCase(pedidoRepo, platoRepo)
	dashboardUC := usecase.NewDashboardUseCase(analyticsRepo)

	boletaGen := infrapdf.NewMarotoBoletaGenerator(cfg.App.Name)
	boletaUC := reportes.NewBoletaUseCase(pedidoRepo, clienteRepo, empleadoRepo, boletaGen)
	exportUC := reportes.NewExportUseCase(pedidoRepo, infraexcel.NewPedidoExporter())

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
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
		Title:    "Restaurante API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DistritoUC:      distritoUC,
		TipoDocumentoUC: tipoDocumentoUC,
		RolUC:           rolUC,
		TipoPlatoUC:     tipoPlatoUC,
		ClienteUC:       clienteUC,
		EmpleadoUC:      empleadoUC,
		PlatoUC:         platoUC,
		PedidoUC:        pedidoUC,
		DashboardUC:     dashboardUC,
		BoletaUC:        boletaUC,
		ExportUC:        exportUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	var metricsSrv *http.Server
	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsSrv = &http.Server{Addr: cfg.Metrics.Addr, Handler: mux}
		go func() {
			log.Info().Str("addr", cfg.Metrics.Addr).Msg("listener de métricas iniciado")
			if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("listener de métricas finalizado")
			}
		}()
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("apagado del listener de métricas")
		}
	}

	log.Info().Msg("aplicación detenida")
}
