// Package apierror defines the error envelopes every 4xx/5xx response uses.
// Handlers never hand raw error strings to clients; whatever went wrong
// internally, the wire shape is one of these two structs.
package apierror

// APIError is the single-message envelope: {"detail": "..."}.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError carries the per-field failures of a rejected request body.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Validation error", Fields: fields}
}
