package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/pokemon-world/pokemon-service/internal/adapters/http/dto"
	"github.com/pokemon-world/pokemon-service/internal/platform/logging"
)

// Recovery returns middleware that turns a panic into the catch-all error
// body, so callers always receive well-formed JSON. The panic and stack are
// logged at ERROR level. Mount it first.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			ctx := c.Request.Context()

			attrs := []any{
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
				slog.String("path", c.Request.URL.Path),
				slog.String("method", c.Request.Method),
			}
			if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
				attrs = append(attrs, slog.String("trace_id", sc.TraceID().String()))
			}

			logging.FromContextOr(ctx, logger).ErrorContext(ctx, "panic recovered", attrs...)

			if c.Writer.Written() {
				c.Abort()
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.InternalErrorResponse())
		}()

		c.Next()
	}
}
