// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import "github.com/pokemon-world/pokemon-service/internal/domain"

// ErrorResponse is the body of every failed response.
type ErrorResponse struct {
	ErrorCode   string `json:"error_code"`
	ErrorDetail string `json:"error_detail"`
}

// NewErrorResponse serializes a normalized error.
func NewErrorResponse(err *domain.NormalizedError) *ErrorResponse {
	return &ErrorResponse{
		ErrorCode:   err.Code,
		ErrorDetail: err.Detail,
	}
}

// InternalErrorResponse is the catch-all body with its default detail, used
// when nothing more specific can be said (panics, unexpected errors).
func InternalErrorResponse() *ErrorResponse {
	return NewErrorResponse(domain.NewInternalError(""))
}

// NotFoundResponse is the not-found body with its default detail.
func NotFoundResponse() *ErrorResponse {
	return NewErrorResponse(domain.NewNormalizedError(domain.CodeNotFound, ""))
}
