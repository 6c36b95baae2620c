package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/pokemon-world/pokemon-service/internal/adapters/http/handlers"
	"github.com/pokemon-world/pokemon-service/internal/adapters/http/middleware"
	"github.com/pokemon-world/pokemon-service/internal/platform/config"
	"github.com/pokemon-world/pokemon-service/internal/platform/telemetry"
)

// RouterConfig contains the dependencies the router mounts.
type RouterConfig struct {
	// Logger is the base logger for recovery and request logging.
	Logger *slog.Logger

	// AppConfig names the service for server spans.
	AppConfig *config.AppConfig

	// HealthHandler serves the /-/ probes.
	HealthHandler *handlers.HealthHandler

	// PokemonHandler serves the lookup endpoints.
	PokemonHandler *handlers.PokemonHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery
//  2. Request ID
//  3. Correlation ID
//  4. OpenTelemetry server span
//  5. HTTP server metrics and trace header
//  6. Request logging
//
// Route groups:
//   - /-/ probes, build info and metrics
//   - /pokemon/ species lookups
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.AppConfig.Name),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	if cfg.PokemonHandler != nil {
		cfg.PokemonHandler.RegisterRoutes(engine.Group("/pokemon"))
	}

	engine.NoRoute(notFound)
}

// NewDefaultRouterConfig creates a RouterConfig from its parts.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	healthHandler *handlers.HealthHandler,
	pokemonHandler *handlers.PokemonHandler,
) RouterConfig {
	return RouterConfig{
		Logger:         logger,
		AppConfig:      appCfg,
		HealthHandler:  healthHandler,
		PokemonHandler: pokemonHandler,
	}
}
