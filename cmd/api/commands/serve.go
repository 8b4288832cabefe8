package commands

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Inventario-tiendas/docs"
	"github.com/jhoicas/Inventario-tiendas/internal/application/auth"
	"github.com/jhoicas/Inventario-tiendas/internal/application/usecase"
	"github.com/jhoicas/Inventario-tiendas/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Inventario-tiendas/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-tiendas/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Inventario-tiendas/internal/interfaces/http"
	"github.com/jhoicas/Inventario-tiendas/pkg/config"
	"github.com/jhoicas/Inventario-tiendas/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia el servidor HTTP",
	Long: `Inicia la API HTTP. Con STORAGE_DRIVER=postgres aplica las migraciones
pendientes antes de aceptar tráfico; con memory los datos se pierden al apagar.

Variables principales: HTTP_HOST, HTTP_PORT, JWT_SECRET, DATABASE_URL | DB_*,
STORAGE_DRIVER, LOGIN_RATE_LIMIT, BCRYPT_COST, LOG_LEVEL, APP_ENV.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(parent context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, closeStorage, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := httpRouter.NewMetrics(registry, "inventario")

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:       cfg.App.Name,
		Production: cfg.App.Env == "production",
		Log:        log,
		Metrics:    metrics,
	})

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "Inventario Tiendas API",
	}))

	httpRouter.Router(app, httpRouter.NewRouterDeps(storage, httpRouter.ServiceConfig{
		JWT: auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		BcryptCost:     cfg.Auth.BcryptCost,
		Reports:        infrapdf.NewStockReportGenerator(),
		Metrics:        metrics,
		LoginRateLimit: cfg.Auth.LoginRateLimit,
	}))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		return app.Listen(cfg.HTTP.Addr())
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("señal de apagado recibida, cerrando servidor...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("servidor HTTP finalizado con error")
		return err
	}
	log.Info().Msg("aplicación detenida")
	return nil
}

// openStorage abre el backend configurado. Para postgres aplica migraciones.
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (usecase.Storage, func(), error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		log.Warn().Msg("almacenamiento en memoria: los datos no se persisten")
		return memory.New(), func() {}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	for _, name := range applied {
		log.Info().Str("migration", name).Msg("migración aplicada")
	}
	return postgres.NewStorage(pool), pool.Close, nil
}
