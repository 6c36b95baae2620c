package benchmark

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	httpadapter "github.com/pokemon-world/pokemon-service/internal/adapters/http"
	"github.com/pokemon-world/pokemon-service/internal/adapters/http/handlers"
	"github.com/pokemon-world/pokemon-service/internal/app"
	"github.com/pokemon-world/pokemon-service/internal/domain"
	"github.com/pokemon-world/pokemon-service/internal/platform/config"
	"github.com/pokemon-world/pokemon-service/internal/ports"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// staticSpecies answers every lookup from memory; "missingno" is unknown.
type staticSpecies struct{}

func (staticSpecies) FetchSpecies(_ context.Context, name string) (domain.SpeciesInfo, error) {
	if name == "missingno" {
		return domain.SpeciesInfo{}, domain.NewNormalizedError(domain.CodeNotFound, "")
	}

	return domain.SpeciesInfo{
		Name:        name,
		Description: "It was created by a scientist after years of horrific gene splicing.",
		Habitat:     "rare",
		IsLegendary: true,
	}, nil
}

type echoTranslation struct{}

func (echoTranslation) FetchTranslation(_ context.Context, dialect domain.Dialect, text string) (string, error) {
	return dialect.String() + ": " + text, nil
}

type staticChecker struct {
	name string
}

func (s staticChecker) Name() string {
	return s.name
}

func (staticChecker) Check(context.Context) error {
	return nil
}

// setupRouter builds the full router and middleware chain over in-memory upstreams.
func setupRouter(b *testing.B) *gin.Engine {
	b.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	registry := ports.NewHealthRegistry()
	_ = registry.Register(staticChecker{name: "species-service"})
	_ = registry.Register(staticChecker{name: "translation-service"})

	svc := app.NewPokemonService(app.PokemonServiceConfig{
		SpeciesClient:     staticSpecies{},
		TranslationClient: echoTranslation{},
		Logger:            logger,
	})

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.NewDefaultRouterConfig(
		logger,
		&config.AppConfig{Name: "pokemon-service", Version: "bench", Environment: "test"},
		handlers.NewHealthHandler(registry, handlers.NewBuildInfo("pokemon-service", "1.0.0", "abc123", "2024-01-01T00:00:00Z")),
		handlers.NewPokemonHandler(svc),
	))

	return engine
}

func benchmarkPath(b *testing.B, path string) {
	router := setupRouter(b)
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}

// BenchmarkBasicLookup measures a basic lookup through the full middleware chain.
func BenchmarkBasicLookup(b *testing.B) {
	benchmarkPath(b, "/pokemon/mewtwo")
}

// BenchmarkTranslatedLookup measures a translated lookup through the full middleware chain.
func BenchmarkTranslatedLookup(b *testing.B) {
	benchmarkPath(b, "/pokemon/translated/mewtwo")
}

// BenchmarkLookupError measures the normalized error path.
func BenchmarkLookupError(b *testing.B) {
	benchmarkPath(b, "/pokemon/missingno")
}

// BenchmarkLivenessHandler measures the liveness probe.
func BenchmarkLivenessHandler(b *testing.B) {
	benchmarkPath(b, "/-/live")
}

// BenchmarkReadinessHandler measures readiness with both upstream checks registered.
func BenchmarkReadinessHandler(b *testing.B) {
	benchmarkPath(b, "/-/ready")
}

// BenchmarkNewNormalizedError measures bucket classification.
func BenchmarkNewNormalizedError(b *testing.B) {
	statuses := []string{"404 Not Found", "503 Service Unavailable", "429 Too Many Requests"}

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = domain.NewNormalizedError(statuses[i%len(statuses)], "")
	}
}

// BenchmarkSelectDialect measures dialect routing.
func BenchmarkSelectDialect(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = domain.SelectDialect("Cave", i%2 == 0)
	}
}
