// Package main runs the pokemon lookup service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pokemon-world/pokemon-service/internal/adapters/clients"
	"github.com/pokemon-world/pokemon-service/internal/adapters/clients/acl"
	"github.com/pokemon-world/pokemon-service/internal/adapters/http"
	"github.com/pokemon-world/pokemon-service/internal/adapters/http/handlers"
	"github.com/pokemon-world/pokemon-service/internal/app"
	"github.com/pokemon-world/pokemon-service/internal/domain"
	"github.com/pokemon-world/pokemon-service/internal/platform/config"
	"github.com/pokemon-world/pokemon-service/internal/platform/logging"
	"github.com/pokemon-world/pokemon-service/internal/platform/telemetry"
	"github.com/pokemon-world/pokemon-service/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 6. Create the upstream adapters (ACL pattern)
	speciesClient, translationClient, err := newUpstreams(cfg, logger)
	if err != nil {
		return err
	}

	for _, checker := range []ports.HealthChecker{speciesClient, translationClient} {
		if err := healthRegistry.Register(checker); err != nil {
			return fmt.Errorf("registering %s health check: %w", checker.Name(), err)
		}
	}

	// 7. Create pokemon service (application layer)
	pokemonService := app.NewPokemonService(app.PokemonServiceConfig{
		SpeciesClient:     speciesClient,
		TranslationClient: translationClient,
		Logger:            logger,
	})

	// 8. Create handlers
	buildInfo := handlers.NewBuildInfo(cfg.App.Name, Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	pokemonHandler := handlers.NewPokemonHandler(pokemonService)

	// 9. Create HTTP server and mount routes
	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.NewDefaultRouterConfig(logger, &cfg.App, healthHandler, pokemonHandler))

	// 10. Start server (non-blocking)
	serverErr := server.Start()

	// 11. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// newUpstreams builds one instrumented HTTP client per upstream and wraps
// each in its anti-corruption adapter.
func newUpstreams(cfg *config.Config, logger *slog.Logger) (*acl.SpeciesClient, *acl.TranslationClient, error) {
	speciesHTTP, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Species.BaseURL,
		ServiceName: cfg.Services.Species.Name,
		Timeout:     cfg.Client.Timeout,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating species HTTP client: %w", err)
	}

	translationHTTP, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Translation.BaseURL,
		ServiceName: cfg.Services.Translation.Name,
		Timeout:     cfg.Client.Timeout,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating translation HTTP client: %w", err)
	}

	paths := acl.TranslationPaths{
		domain.DialectYoda:        cfg.Services.Translation.YodaPath,
		domain.DialectShakespeare: cfg.Services.Translation.ShakespearePath,
	}

	return acl.NewSpeciesClient(speciesHTTP, logger),
		acl.NewTranslationClient(translationHTTP, paths, logger),
		nil
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	// Listen for OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		// Server error during startup or runtime
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	// Graceful shutdown sequence
	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
