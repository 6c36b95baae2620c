package dto

import "github.com/pokemon-world/pokemon-service/internal/domain"

// PokemonResponse is the body of a successful lookup.
type PokemonResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Habitat     string `json:"habitat"`
	IsLegendary bool   `json:"isLegendary"`
}

// NewPokemonResponse converts domain species info to the wire shape.
func NewPokemonResponse(info domain.SpeciesInfo) *PokemonResponse {
	return &PokemonResponse{
		Name:        info.Name,
		Description: info.Description,
		Habitat:     info.Habitat,
		IsLegendary: info.IsLegendary,
	}
}
