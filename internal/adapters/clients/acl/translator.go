package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pokemon-world/pokemon-service/internal/adapters/clients"
	"github.com/pokemon-world/pokemon-service/internal/domain"
	"github.com/pokemon-world/pokemon-service/internal/platform/logging"
)

// errNilBody is returned by DecodeStrict when there is nothing to read.
var errNilBody = errors.New("response body is nil")

// BaseAdapter performs one upstream exchange and converts every failure into
// a *domain.NormalizedError. Embed it in service-specific adapters.
type BaseAdapter struct {
	client   *clients.Client
	validate *validator.Validate
	logger   *slog.Logger
}

// NewBaseAdapter creates a base adapter around client.
func NewBaseAdapter(client *clients.Client, logger *slog.Logger) BaseAdapter {
	if logger == nil {
		logger = slog.Default()
	}

	return BaseAdapter{
		client:   client,
		validate: newResponseValidator(),
		logger:   logger.With(slog.String("downstream", client.ServiceName())),
	}
}

// ServiceName returns the name of the upstream service.
func (a *BaseAdapter) ServiceName() string {
	return a.client.ServiceName()
}

// Get performs a GET and returns the body of a 2xx response.
func (a *BaseAdapter) Get(ctx context.Context, path string) ([]byte, error) {
	return a.fetch(ctx, path, func() (*http.Response, error) {
		return a.client.Get(ctx, path)
	})
}

// PostJSON encodes payload as JSON, POSTs it and returns the body of a 2xx
// response.
func (a *BaseAdapter) PostJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("encoding request body: %v", err))
	}

	return a.fetch(ctx, path, func() (*http.Response, error) {
		return a.client.Post(ctx, path, bytes.NewReader(encoded))
	})
}

// fetch runs do once and applies the three-way failure taxonomy: transport
// failure, non-2xx status, unreadable body.
func (a *BaseAdapter) fetch(ctx context.Context, path string, do func() (*http.Response, error)) ([]byte, error) {
	logger := a.logger.With(slog.String("path", path))
	logger.Log(ctx, logging.LevelTrace, "starting request")

	resp, err := do()
	if err != nil {
		logger.ErrorContext(ctx, "upstream call failed", slog.Any("error", err))
		return nil, MapTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	logger.Log(ctx, logging.LevelTrace, "request complete", slog.Int("status", resp.StatusCode))

	if !isSuccess(resp.StatusCode) {
		logger.DebugContext(ctx, "upstream returned error status", slog.Int("status", resp.StatusCode))
		return nil, MapStatus(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.ErrorContext(ctx, "reading upstream body failed", slog.Any("error", err))
		return nil, MapDecodeError(fmt.Errorf("error reading response body: %w", err))
	}

	return body, nil
}

// DecodeStrict unmarshals body into T and checks its `validate` tags.
// Bad JSON, a wrong type, a missing field and an explicit null are all
// errors. DTO fields use pointers so absence and null are detectable.
func DecodeStrict[T any](v *validator.Validate, body []byte) (*T, error) {
	if body == nil {
		return nil, errNilBody
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("error decoding response body: %w", err)
	}

	if err := v.Struct(&result); err != nil {
		return nil, describeValidation(err)
	}

	return &result, nil
}

// newResponseValidator reports field errors by their JSON names.
func newResponseValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// describeValidation turns validator output into one decode message.
func describeValidation(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("error decoding response body: %w", err)
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		switch fe.Tag() {
		case "required":
			fields = append(fields, fmt.Sprintf("missing field `%s`", fieldPath(fe)))
		case "min":
			fields = append(fields, fmt.Sprintf("field `%s` must have at least %s entries", fieldPath(fe), fe.Param()))
		default:
			fields = append(fields, fmt.Sprintf("invalid field `%s`", fieldPath(fe)))
		}
	}

	return fmt.Errorf("error decoding response body: %s", strings.Join(fields, "; "))
}

// fieldPath strips the root struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return ns
}

// CheckReachable issues a GET on the base URL. Any answer below 500 counts as
// reachable; the endpoints themselves may reject a bare GET.
func (a *BaseAdapter) CheckReachable(ctx context.Context) error {
	resp, err := a.client.Get(ctx, "")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%s returned %s", a.ServiceName(), StatusLine(resp.StatusCode))
	}

	return nil
}
