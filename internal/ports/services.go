// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Every upstream port reports failures as *domain.NormalizedError; callers
// forward those values without rewriting them.
package ports

import (
	"context"

	"github.com/pokemon-world/pokemon-service/internal/domain"
)

// SpeciesClient fetches species metadata from the species-info upstream.
type SpeciesClient interface {
	// FetchSpecies retrieves the species with the given name.
	// Transport, status and decode failures are returned as
	// *domain.NormalizedError.
	FetchSpecies(ctx context.Context, name string) (domain.SpeciesInfo, error)
}

// TranslationClient rewrites text in one of the supported dialects.
type TranslationClient interface {
	// FetchTranslation returns text translated into dialect.
	// Failures are returned as *domain.NormalizedError.
	FetchTranslation(ctx context.Context, dialect domain.Dialect, text string) (string, error)
}
