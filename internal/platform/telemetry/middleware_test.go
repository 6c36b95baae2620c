package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/pokemon-world/pokemon-service/internal/platform/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMiddleware_SetsTraceHeaderAndLoggerField(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), base))
		c.Next()
	})
	router.Use(TracingMiddleware("pokemon-service", otelgin.WithTracerProvider(tp)))
	router.Use(Middleware())
	router.GET("/pokemon/:name", func(c *gin.Context) {
		logging.FromContext(c.Request.Context()).Info("handled")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pokemon/pikachu", nil))

	traceID := w.Header().Get(TraceIDHeader)
	require.Len(t, traceID, 32)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, traceID, entry["trace_id"])
}

func TestMiddleware_WithoutSpanHasNoTraceHeader(t *testing.T) {
	router := gin.New()
	router.Use(Middleware())
	router.GET("/pokemon/:name", func(c *gin.Context) {
		c.Set(ErrorCodeKey, "404 Not Found")
		c.Status(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pokemon/missingno", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Header().Get(TraceIDHeader))
}

func TestNewMetrics(t *testing.T) {
	mp := sdkmetric.NewMeterProvider()
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	metrics, err := NewMetrics(mp)
	require.NoError(t, err)
	assert.NotNil(t, metrics.requestDuration)
	assert.NotNil(t, metrics.requestTotal)
	assert.NotNil(t, metrics.activeRequests)
}

func TestNew_DisabledIsNoop(t *testing.T) {
	p, err := New(context.Background(), &Config{Enabled: false})
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
}
