package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pokemon-world/pokemon-service/internal/adapters/http/dto"
	"github.com/pokemon-world/pokemon-service/internal/app"
	"github.com/pokemon-world/pokemon-service/internal/domain"
	"github.com/pokemon-world/pokemon-service/internal/platform/logging"
)

// PokemonHandler handles the species lookup endpoints.
type PokemonHandler struct {
	service *app.PokemonService
}

// NewPokemonHandler creates a new pokemon handler.
func NewPokemonHandler(service *app.PokemonService) *PokemonHandler {
	return &PokemonHandler{
		service: service,
	}
}

// GetPokemon handles GET /pokemon/:name
// Returns the species description exactly as the species API reports it.
//
// @Summary Get basic pokemon info
// @Tags pokemon
// @Produce json
// @Param name path string true "Species name"
// @Success 200 {object} dto.PokemonResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /pokemon/{name} [get]
func (h *PokemonHandler) GetPokemon(c *gin.Context) {
	h.serve(c, h.service.GetBasicInfo)
}

// GetTranslatedPokemon handles GET /pokemon/translated/:name
// Returns the species info with its description translated to Yoda for cave
// dwellers and legendaries, Shakespeare otherwise.
//
// @Summary Get translated pokemon info
// @Tags pokemon
// @Produce json
// @Param name path string true "Species name"
// @Success 200 {object} dto.PokemonResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /pokemon/translated/{name} [get]
func (h *PokemonHandler) GetTranslatedPokemon(c *gin.Context) {
	h.serve(c, h.service.GetTranslatedInfo)
}

// RegisterRoutes registers the lookup routes on the given router group.
func (h *PokemonHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:name", h.GetPokemon)
	rg.GET("/translated/:name", h.GetTranslatedPokemon)
}

type lookupFunc func(ctx context.Context, name string) (domain.SpeciesInfo, error)

func (h *PokemonHandler) serve(c *gin.Context, lookup lookupFunc) {
	name := c.Param("name")

	ctx := logging.WithPokemon(c.Request.Context(), name)
	c.Request = c.Request.WithContext(ctx)

	info, err := lookup(ctx, name)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPokemonResponse(info))
}
