// Package app assembles the HTTP application: configuration, logging,
// tracing, metrics, storage and the route table.
package app

import (
	contextPkg "context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cotishq/cloudnest/pkg/configs"
	"github.com/cotishq/cloudnest/pkg/internal/router"
	"github.com/cotishq/cloudnest/pkg/internal/storage"
	"github.com/cotishq/cloudnest/pkg/log"
	"github.com/cotishq/cloudnest/pkg/metrics"
	"github.com/cotishq/cloudnest/pkg/middleware"
	"github.com/cotishq/cloudnest/pkg/tracing"
)

const shareCacheTTL = 60 * time.Second

// App is the assembled HTTP application.
type App struct {
	Engine  *gin.Engine
	config  *configs.AppConfig
	manager *storage.Manager
}

// NewApp builds the application from the configuration at configPath.
func NewApp(configPath string) *App {
	ctx := contextPkg.Background()

	if err := configs.InitConfig(configPath); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	config := configs.GetConfig()

	log.Init()

	if err := tracing.InitTracer(config.Tracing); err != nil {
		fmt.Printf("Error initializing tracing: %v\n", err)
		os.Exit(1)
	}

	if err := metrics.InitMetrics(config.Metrics); err != nil {
		fmt.Printf("Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	manager, err := storage.Init(ctx)
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	l := log.Logger()
	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	engine := gin.New()

	engine.Use(
		gin.Recovery(),
		middleware.GinLoggerMiddleware(),
		middleware.CORSMiddleware(config.Server),
		middleware.GzipMiddleware(),
		middleware.StorageMiddleware(manager),
		middleware.RateLimitMiddleware(config.RateLimit),
		middleware.CircuitBreakerMiddleware(config.CircuitBreaker),
	)

	if config.Tracing.Enabled {
		engine.Use(middleware.TracingMiddleware())
	}

	if config.Metrics.Enabled {
		engine.Use(middleware.PrometheusMiddleware())

		_ = metrics.StartMetricsServer(config.Metrics, engine)
	}

	registerRoutes(engine, config, manager)

	return &App{
		Engine:  engine,
		config:  config,
		manager: manager,
	}
}

func registerRoutes(engine *gin.Engine, config *configs.AppConfig, manager *storage.Manager) {
	// Public surface: share links (cached, the same token is fetched
	// repeatedly) and the health probe.
	public := engine.Group("")
	public.Use(middleware.CacheMiddleware(middleware.CacheConfig{
		Store: manager.KV,
		TTL:   shareCacheTTL,
	}))
	router.RegisterShareRoutes(public)

	api := engine.Group("/api/v1")
	router.RegisterHealthCheckRoute(api)

	// Authenticated surface.
	api.Use(middleware.AuthMiddleware(config.Auth))
	router.RegisterAPIRoutes(api)
}

// Run serves HTTP until the listener fails or the process stops.
func (a *App) Run() error {
	return a.Engine.Run(fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port))
}

// Shutdown releases the app's backends.
func (a *App) Shutdown(ctx contextPkg.Context) error {
	var err error

	if e := tracing.ShutdownTracer(ctx); e != nil {
		err = e
	}

	if a.manager != nil {
		if e := a.manager.Close(); e != nil {
			err = e
		}
	}

	return err
}
