package acl

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pokemon-world/pokemon-service/internal/domain"
)

// StatusLine renders a status code as "<code> <reason>", e.g. "404 Not Found".
// Codes without a registered reason render as the bare number.
func StatusLine(code int) string {
	return strings.TrimSpace(fmt.Sprintf("%d %s", code, http.StatusText(code)))
}

// MapTransportError reports a failure to complete the exchange (connect,
// TLS, timeout, cancellation) in the catch-all bucket, keeping the
// transport message as the detail.
func MapTransportError(err error) *domain.NormalizedError {
	return domain.NewNormalizedError(StatusLine(http.StatusInternalServerError), err.Error())
}

// MapStatus reports a non-success upstream status by its status line with no
// detail, so the bucket default applies.
func MapStatus(code int) *domain.NormalizedError {
	return domain.NewNormalizedError(StatusLine(code), "")
}

// MapDecodeError reports an unreadable or malformed success body in the
// catch-all bucket with the decode message as detail.
func MapDecodeError(err error) *domain.NormalizedError {
	return domain.NewInternalError(err.Error())
}

// isSuccess reports whether code is a 2xx status.
func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
