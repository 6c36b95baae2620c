// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"

	"github.com/pokemon-world/pokemon-service/internal/domain"
	"github.com/pokemon-world/pokemon-service/internal/platform/logging"
	"github.com/pokemon-world/pokemon-service/internal/ports"
)

// PokemonService answers basic and translated pokemon lookups by composing
// the species and translation upstreams. It holds no per-request state and
// is safe for concurrent use.
type PokemonService struct {
	species     ports.SpeciesClient
	translation ports.TranslationClient
	logger      *slog.Logger
}

// PokemonServiceConfig contains the dependencies of PokemonService.
type PokemonServiceConfig struct {
	SpeciesClient     ports.SpeciesClient
	TranslationClient ports.TranslationClient
	Logger            *slog.Logger
}

// NewPokemonService creates the service. Panics if a client is missing.
// Defaults logger to slog.Default() if nil.
func NewPokemonService(cfg PokemonServiceConfig) *PokemonService {
	if cfg.SpeciesClient == nil {
		panic("PokemonService: SpeciesClient is required")
	}

	if cfg.TranslationClient == nil {
		panic("PokemonService: TranslationClient is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &PokemonService{
		species:     cfg.SpeciesClient,
		translation: cfg.TranslationClient,
		logger:      logger,
	}
}

// GetBasicInfo returns the species info for name. Upstream errors are
// returned unchanged.
func (s *PokemonService) GetBasicInfo(ctx context.Context, name string) (domain.SpeciesInfo, error) {
	l := newLookup(s.loggerFor(ctx), "basic_info", name)

	l.enter(ctx, StageFetchingSpecies)

	info, err := s.species.FetchSpecies(ctx, name)
	if err != nil {
		return domain.SpeciesInfo{}, l.fail(ctx, err)
	}

	l.done(ctx)

	return info, nil
}

// GetTranslatedInfo returns the species info for name with its description
// translated into the dialect chosen from habitat and legendary status.
// The two upstream calls run strictly in sequence and the first error is
// returned unchanged.
func (s *PokemonService) GetTranslatedInfo(ctx context.Context, name string) (domain.SpeciesInfo, error) {
	l := newLookup(s.loggerFor(ctx), "translated_info", name)

	l.enter(ctx, StageFetchingSpecies)

	info, err := s.species.FetchSpecies(ctx, name)
	if err != nil {
		return domain.SpeciesInfo{}, l.fail(ctx, err)
	}

	l.enter(ctx, StageSelectingDialect)

	dialect := domain.SelectDialect(info.Habitat, info.IsLegendary)

	l.enter(ctx, StageFetchingTranslation)

	translated, err := s.translation.FetchTranslation(ctx, dialect, info.Description)
	if err != nil {
		return domain.SpeciesInfo{}, l.fail(ctx, err)
	}

	l.done(ctx, slog.String("dialect", dialect.String()))

	return info.WithDescription(translated), nil
}

// loggerFor prefers the request-scoped logger so request IDs are kept.
func (s *PokemonService) loggerFor(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}
