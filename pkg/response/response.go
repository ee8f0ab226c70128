package response

import (
	"net/http"
)

// ErrorResponse is the error payload shared by every report endpoint.
// Success payloads are endpoint-specific and returned as-is; only errors
// share a common shape.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// --- Error summaries ---

// Common error summaries surfaced in the "error" field
const (
	ErrBadRequest   = "Invalid request"
	ErrUnauthorized = "Unauthorized"
	ErrNotFound     = "Not found"
	ErrInternal     = "Internal server error"
)

// ErrorToHTTPStatus maps error summaries to HTTP status codes
var ErrorToHTTPStatus = map[string]int{
	ErrBadRequest:   http.StatusBadRequest,
	ErrUnauthorized: http.StatusUnauthorized,
	ErrNotFound:     http.StatusNotFound,
	ErrInternal:     http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error summary
func GetHTTPStatus(summary string) int {
	if status, ok := ErrorToHTTPStatus[summary]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// --- Response builders ---

// NewError creates an error response with an explicit summary and detail
func NewError(summary, message string) *ErrorResponse {
	return &ErrorResponse{
		Error:   summary,
		Message: message,
	}
}

// BadRequest creates a 400 error response
func BadRequest(message string) *ErrorResponse {
	return NewError(ErrBadRequest, message)
}

// Unauthorized creates a 401 error response
func Unauthorized(message string) *ErrorResponse {
	if message == "" {
		message = "Authentication required"
	}
	return NewError(ErrUnauthorized, message)
}

// NotFound creates a 404 error response
func NotFound(message string) *ErrorResponse {
	if message == "" {
		message = "Resource not found"
	}
	return NewError(ErrNotFound, message)
}

// InternalError creates a 500 error response. The summary names the report
// that failed; the message carries the underlying error text.
func InternalError(summary string, err error) *ErrorResponse {
	if summary == "" {
		summary = ErrInternal
	}
	message := ""
	if err != nil {
		message = err.Error()
	}
	return NewError(summary, message)
}
