package http

import (
	"github.com/gin-gonic/gin"

	"github.com/pokemon-world/pokemon-service/internal/adapters/http/dto"
	"github.com/pokemon-world/pokemon-service/internal/domain"
)

// notFound answers unknown routes with the normalized not-found body.
func notFound(c *gin.Context) {
	dto.AbortWithError(c, domain.NewNormalizedError(domain.CodeNotFound, ""))
}
