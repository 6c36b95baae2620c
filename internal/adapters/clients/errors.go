// Package clients provides the instrumented HTTP client shared by upstream adapters.
package clients

import "errors"

// Construction errors. Request failures are returned as-is from the
// transport so adapters can report the original message.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrServiceNameRequired = errors.New("service name is required")
	ErrBaseURLRequired     = errors.New("base URL is required")
)
