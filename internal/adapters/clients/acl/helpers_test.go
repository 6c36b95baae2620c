package acl

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pokemon-world/pokemon-service/internal/adapters/clients"
)

func newTestClient(t *testing.T, baseURL string) *clients.Client {
	t.Helper()

	client, err := clients.New(&clients.Config{
		ServiceName: "test-service",
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
	})
	require.NoError(t, err)

	return client
}

// jsonServer answers every request with status and body.
func jsonServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

// deadURL returns the URL of a server that is no longer listening.
func deadURL() string {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	return url
}
