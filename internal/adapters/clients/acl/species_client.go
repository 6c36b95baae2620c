package acl

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/pokemon-world/pokemon-service/internal/adapters/clients"
	"github.com/pokemon-world/pokemon-service/internal/domain"
)

// SpeciesClient implements ports.SpeciesClient against the PokeAPI
// pokemon-species endpoint.
type SpeciesClient struct {
	BaseAdapter
}

// NewSpeciesClient creates a species adapter. The client's BaseURL is the
// species endpoint; the name is appended as the final path segment.
func NewSpeciesClient(client *clients.Client, logger *slog.Logger) *SpeciesClient {
	return &SpeciesClient{BaseAdapter: NewBaseAdapter(client, logger)}
}

// speciesResponse is the subset of the PokeAPI species document we read.
type speciesResponse struct {
	Name              *string           `json:"name"                validate:"required"`
	FlavorTextEntries []flavorTextEntry `json:"flavor_text_entries" validate:"required,min=1"`
	Habitat           *namedResource    `json:"habitat"             validate:"required"`
	IsLegendary       *bool             `json:"is_legendary"        validate:"required"`
}

type flavorTextEntry struct {
	FlavorText *string `json:"flavor_text" validate:"required"`
}

type namedResource struct {
	Name *string `json:"name" validate:"required"`
}

// FetchSpecies fetches one species by name and translates it to the domain.
// Implements ports.SpeciesClient.
func (c *SpeciesClient) FetchSpecies(ctx context.Context, name string) (domain.SpeciesInfo, error) {
	body, err := c.Get(ctx, "/"+url.PathEscape(name))
	if err != nil {
		return domain.SpeciesInfo{}, err
	}

	ext, err := DecodeStrict[speciesResponse](c.validate, body)
	if err != nil {
		return domain.SpeciesInfo{}, MapDecodeError(err)
	}

	// Only the first flavor text is read, so only it must be well-formed.
	if err := c.validate.Struct(&ext.FlavorTextEntries[0]); err != nil {
		return domain.SpeciesInfo{}, MapDecodeError(describeValidation(err))
	}

	return translateSpecies(ext), nil
}

func translateSpecies(ext *speciesResponse) domain.SpeciesInfo {
	return domain.SpeciesInfo{
		Name:        *ext.Name,
		Description: *ext.FlavorTextEntries[0].FlavorText,
		Habitat:     *ext.Habitat.Name,
		IsLegendary: *ext.IsLegendary,
	}
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *SpeciesClient) Name() string {
	return c.ServiceName()
}

// Check verifies the species API is reachable.
// Implements ports.HealthChecker.
func (c *SpeciesClient) Check(ctx context.Context) error {
	return c.CheckReachable(ctx)
}
