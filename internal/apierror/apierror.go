// Package apierror defines the error envelope shared by every 4xx/5xx
// response of the backend. Handlers wrap a user-facing detail here instead
// of surfacing raw GORM or driver errors to the SPA.
package apierror

// APIError is the single-message envelope.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError carries per-field messages from binding validation so the
// forms can highlight each input.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
