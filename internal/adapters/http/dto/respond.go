package dto

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/pokemon-world/pokemon-service/internal/domain"
	"github.com/pokemon-world/pokemon-service/internal/platform/logging"
	"github.com/pokemon-world/pokemon-service/internal/platform/telemetry"
)

// HandleError writes the normalized body for err with the status derived
// from its error code. Errors that are not normalized are reported as the
// catch-all bucket.
func HandleError(c *gin.Context, err error) {
	status, resp := respond(c, err)
	c.JSON(status, resp)
}

// AbortWithError stops the handler chain and writes the normalized body for err.
func AbortWithError(c *gin.Context, err error) {
	status, resp := respond(c, err)
	c.AbortWithStatusJSON(status, resp)
}

func respond(c *gin.Context, err error) (int, *ErrorResponse) {
	normalized := domain.AsNormalized(err)
	status := normalized.StatusCode()

	c.Set(telemetry.ErrorCodeKey, normalized.Code)

	logger := logging.FromContext(c.Request.Context())
	attrs := []any{
		slog.String("error_code", normalized.Code),
		slog.Int("status", status),
	}

	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	if domain.IsInternal(normalized) {
		logger.Error("request failed", attrs...)
	} else {
		logger.Warn("request failed", attrs...)
	}

	return status, NewErrorResponse(normalized)
}
