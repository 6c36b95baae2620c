package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const (
	ctxKeyRequestID     contextKey = "request_id"
	ctxKeyCorrelationID contextKey = "correlation_id"
)

// propagated lists the IDs forwarded to upstream APIs, by header.
var propagated = []struct {
	header string
	key    contextKey
}{
	{HeaderRequestID, ctxKeyRequestID},
	{HeaderCorrelationID, ctxKeyCorrelationID},
}

// RequestIDFromContext returns the request ID stored by RequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	return idFromContext(ctx, ctxKeyRequestID)
}

// CorrelationIDFromContext returns the correlation ID stored by CorrelationID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	return idFromContext(ctx, ctxKeyCorrelationID)
}

// ContextWithRequestID stores a request ID in the context.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// ContextWithCorrelationID stores a correlation ID in the context.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyCorrelationID, id)
}

// SetPropagationHeaders copies the IDs found in ctx onto an outbound
// upstream request. IDs that are not set are left off.
func SetPropagationHeaders(ctx context.Context, h http.Header) {
	for _, p := range propagated {
		if id := idFromContext(ctx, p.key); id != "" {
			h.Set(p.header, id)
		}
	}
}

func idFromContext(ctx context.Context, key contextKey) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(key).(string)

	return id
}
