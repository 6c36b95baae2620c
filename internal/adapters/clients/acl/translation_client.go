package acl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pokemon-world/pokemon-service/internal/adapters/clients"
	"github.com/pokemon-world/pokemon-service/internal/domain"
)

// TranslationPaths maps each dialect to its endpoint path under the
// translation API base URL.
type TranslationPaths map[domain.Dialect]string

// TranslationClient implements ports.TranslationClient against the
// funtranslations API.
type TranslationClient struct {
	BaseAdapter
	paths TranslationPaths
}

// NewTranslationClient creates a translation adapter.
func NewTranslationClient(client *clients.Client, paths TranslationPaths, logger *slog.Logger) *TranslationClient {
	return &TranslationClient{
		BaseAdapter: NewBaseAdapter(client, logger),
		paths:       paths,
	}
}

type translationRequest struct {
	Text string `json:"text"`
}

type translationResponse struct {
	Contents *translationContents `json:"contents" validate:"required"`
}

type translationContents struct {
	Translated *string `json:"translated" validate:"required"`
}

// FetchTranslation translates text into dialect. The text is sent verbatim.
// Implements ports.TranslationClient.
func (c *TranslationClient) FetchTranslation(ctx context.Context, dialect domain.Dialect, text string) (string, error) {
	path, ok := c.paths[dialect]
	if !ok {
		return "", domain.NewInternalError(fmt.Sprintf("no endpoint configured for dialect %s", dialect))
	}

	body, err := c.PostJSON(ctx, path, translationRequest{Text: text})
	if err != nil {
		return "", err
	}

	ext, err := DecodeStrict[translationResponse](c.validate, body)
	if err != nil {
		return "", MapDecodeError(err)
	}

	return *ext.Contents.Translated, nil
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *TranslationClient) Name() string {
	return c.ServiceName()
}

// Check verifies the translation API is reachable without spending a
// translation from its rate limit.
// Implements ports.HealthChecker.
func (c *TranslationClient) Check(ctx context.Context) error {
	return c.CheckReachable(ctx)
}
