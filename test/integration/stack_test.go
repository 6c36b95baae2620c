//go:build integration

package integration

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pokemon-world/pokemon-service/internal/adapters/clients"
	"github.com/pokemon-world/pokemon-service/internal/adapters/clients/acl"
	httpadapter "github.com/pokemon-world/pokemon-service/internal/adapters/http"
	"github.com/pokemon-world/pokemon-service/internal/adapters/http/handlers"
	"github.com/pokemon-world/pokemon-service/internal/app"
	"github.com/pokemon-world/pokemon-service/internal/domain"
	"github.com/pokemon-world/pokemon-service/internal/platform/config"
	"github.com/pokemon-world/pokemon-service/internal/ports"
)

const (
	yodaPath        = "/yoda.json"
	shakespearePath = "/shakespeare.json"
)

// species is one entry the fake species API knows about.
type species struct {
	Name        string
	Description string
	Habitat     string
	IsLegendary bool
}

func (s species) document() string {
	doc := map[string]any{
		"name":                s.Name,
		"flavor_text_entries": []map[string]any{{"flavor_text": s.Description}},
		"habitat":             map[string]any{"name": s.Habitat},
		"is_legendary":        s.IsLegendary,
	}

	body, _ := json.Marshal(doc)

	return string(body)
}

// fakeSpeciesAPI answers GET /{name} from its known species, 404 otherwise.
// A non-zero status overrides every answer.
type fakeSpeciesAPI struct {
	mu      sync.Mutex
	known   map[string]species
	status  int
	headers []http.Header
	server  *httptest.Server
}

func newFakeSpeciesAPI() *fakeSpeciesAPI {
	f := &fakeSpeciesAPI{known: make(map[string]species)}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))

	return f
}

func (f *fakeSpeciesAPI) add(s species) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.known[s.Name] = s
}

func (f *fakeSpeciesAPI) failWith(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.status = status
}

func (f *fakeSpeciesAPI) lastHeaders() http.Header {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.headers) == 0 {
		return nil
	}

	return f.headers[len(f.headers)-1]
}

func (f *fakeSpeciesAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.headers)
}

func (f *fakeSpeciesAPI) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.headers = append(f.headers, r.Header.Clone())
	status := f.status
	s, ok := f.known[strings.TrimPrefix(r.URL.Path, "/")]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	switch {
	case status != 0:
		w.WriteHeader(status)
	case !ok:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Not Found"))
	default:
		_, _ = w.Write([]byte(s.document()))
	}
}

// fakeTranslationAPI prefixes the posted text with the dialect it was asked
// for. A non-zero status overrides every answer.
type fakeTranslationAPI struct {
	mu       sync.Mutex
	status   int
	dialects []string
	server   *httptest.Server
}

func newFakeTranslationAPI() *fakeTranslationAPI {
	f := &fakeTranslationAPI{}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))

	return f
}

func (f *fakeTranslationAPI) failWith(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.status = status
}

func (f *fakeTranslationAPI) requestedDialects() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.dialects...)
}

func (f *fakeTranslationAPI) serve(w http.ResponseWriter, r *http.Request) {
	var dialect string

	switch r.URL.Path {
	case yodaPath:
		dialect = "yoda"
	case shakespearePath:
		dialect = "shakespeare"
	default:
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.dialects = append(f.dialects, dialect)
	status := f.status
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if status != 0 {
		w.WriteHeader(status)
		return
	}

	_, _ = fmt.Fprintf(w, `{"success":{"total":1},"contents":{"translated":%q,"text":%q,"translation":%q}}`,
		dialect+": "+req.Text, req.Text, dialect)
}

// stack is the whole service wired against fake upstreams.
type stack struct {
	species     *fakeSpeciesAPI
	translation *fakeTranslationAPI
	service     *httptest.Server
}

type stackOptions struct {
	speciesURL string
	timeout    time.Duration
}

// newStack builds the service exactly as main does, but against fakes.
func newStack(opts stackOptions) (*stack, error) {
	gin.SetMode(gin.TestMode)

	st := &stack{
		species:     newFakeSpeciesAPI(),
		translation: newFakeTranslationAPI(),
	}

	speciesURL := opts.speciesURL
	if speciesURL == "" {
		speciesURL = st.species.server.URL
	}

	timeout := opts.timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	transport := config.TransportConfig{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     30 * time.Second,
	}

	speciesHTTP, err := clients.New(&clients.Config{
		BaseURL:     speciesURL,
		ServiceName: "species-service",
		Timeout:     timeout,
		Transport:   transport,
		Logger:      logger,
	})
	if err != nil {
		return nil, err
	}

	translationHTTP, err := clients.New(&clients.Config{
		BaseURL:     st.translation.server.URL,
		ServiceName: "translation-service",
		Timeout:     timeout,
		Transport:   transport,
		Logger:      logger,
	})
	if err != nil {
		return nil, err
	}

	speciesClient := acl.NewSpeciesClient(speciesHTTP, logger)
	translationClient := acl.NewTranslationClient(translationHTTP, acl.TranslationPaths{
		domain.DialectYoda:        yodaPath,
		domain.DialectShakespeare: shakespearePath,
	}, logger)

	registry := ports.NewHealthRegistry()
	if err := registry.Register(speciesClient); err != nil {
		return nil, err
	}

	if err := registry.Register(translationClient); err != nil {
		return nil, err
	}

	svc := app.NewPokemonService(app.PokemonServiceConfig{
		SpeciesClient:     speciesClient,
		TranslationClient: translationClient,
		Logger:            logger,
	})

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.NewDefaultRouterConfig(
		logger,
		&config.AppConfig{Name: "pokemon-service", Version: "test", Environment: "test"},
		handlers.NewHealthHandler(registry, handlers.NewBuildInfo("pokemon-service", "test", "none", "now")),
		handlers.NewPokemonHandler(svc),
	))

	st.service = httptest.NewServer(engine)

	return st, nil
}

func (st *stack) close() {
	st.service.Close()
	st.species.server.Close()
	st.translation.server.Close()
}

// deadURL returns the URL of a server that is no longer listening.
func deadURL() string {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	return url
}
