// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"net/http"
	"strconv"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested species does not exist upstream.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable indicates an upstream reported itself unavailable.
	ErrUnavailable = errors.New("unavailable")

	// ErrInternal covers every other failure: transport, decode and
	// unrecognized upstream statuses.
	ErrInternal = errors.New("internal error")
)

// Error codes and default details for the three buckets.
const (
	// CodeNotFound is the error code for the not-found bucket.
	CodeNotFound = "404 Not Found"

	// CodeUnavailable is the error code for the unavailable bucket.
	CodeUnavailable = "503 Service Unavailable"

	// CodeInternal is the error code for the catch-all bucket.
	CodeInternal = "500"

	// DetailNotFound is the default detail for the not-found bucket.
	DetailNotFound = "Unable to find the details of requested pokemon"

	// DetailUnavailable is the default detail for the unavailable bucket.
	DetailUnavailable = "Service Unavailable"

	// DetailInternal is the default detail for the catch-all bucket.
	DetailInternal = "Internal Server Error"
)

// statusPrefixLen is the length of the numeric status prefix of an error code.
const statusPrefixLen = 3

// NormalizedError is the uniform failure value returned by every upstream call.
// It is built once at the point of failure and never mutated afterwards.
type NormalizedError struct {
	Code   string
	Detail string
	bucket error
}

// Error implements the error interface.
func (e *NormalizedError) Error() string {
	return e.Code + ": " + e.Detail
}

// Unwrap returns the bucket sentinel for errors.Is() support.
func (e *NormalizedError) Unwrap() error {
	return e.bucket
}

// StatusCode returns the HTTP status derived from the error code.
func (e *NormalizedError) StatusCode() int {
	return StatusCode(e.Code)
}

// NewNormalizedError maps a raw status line and optional detail onto one of
// the three buckets. The match is an exact string comparison; any status
// other than "404 Not Found" or "503 Service Unavailable" collapses to "500".
// An empty detail selects the bucket default; a non-empty one always wins.
func NewNormalizedError(status, detail string) *NormalizedError {
	var e NormalizedError

	switch status {
	case CodeNotFound:
		e = NormalizedError{Code: CodeNotFound, Detail: DetailNotFound, bucket: ErrNotFound}
	case CodeUnavailable:
		e = NormalizedError{Code: CodeUnavailable, Detail: DetailUnavailable, bucket: ErrUnavailable}
	default:
		e = NormalizedError{Code: CodeInternal, Detail: DetailInternal, bucket: ErrInternal}
	}

	if detail != "" {
		e.Detail = detail
	}

	return &e
}

// NewInternalError returns a catch-all bucket error with the given detail.
func NewInternalError(detail string) *NormalizedError {
	return NewNormalizedError(CodeInternal, detail)
}

// AsNormalized extracts a NormalizedError from err.
// Errors of any other kind are reported as the catch-all bucket with its
// default detail so internals never leak to callers.
func AsNormalized(err error) *NormalizedError {
	var normalized *NormalizedError
	if errors.As(err, &normalized) {
		return normalized
	}

	return NewInternalError("")
}

// StatusCode parses the first three characters of an error code as an HTTP
// status. Codes that are too short, not numeric, or outside 100-599 yield 500.
func StatusCode(code string) int {
	if len(code) < statusPrefixLen {
		return http.StatusInternalServerError
	}

	status, err := strconv.Atoi(code[:statusPrefixLen])
	if err != nil || status < http.StatusContinue || status > 599 {
		return http.StatusInternalServerError
	}

	return status
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsInternal checks if an error belongs to the catch-all bucket.
func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}
