// Package errors defines the client-side error taxonomy for calls against
// the growvy backend. Every failure a user can see is an *ApiError with a
// Category; the category decides the message shown and whether the session
// is torn down.
package errors

import (
	"fmt"
	"net/http"
)

type Category string

const (
	// CategoryNetwork covers transport failures where no response arrived,
	// including the client-side request timeout.
	CategoryNetwork Category = "NETWORK"
	// CategoryAuth is any 401/403. The session credential is cleared.
	CategoryAuth Category = "AUTH"
	// CategoryValidation is a 4xx carrying a structured field-error list.
	CategoryValidation Category = "VALIDATION"
	// CategoryPayload is 413/415 from upload endpoints.
	CategoryPayload Category = "PAYLOAD"
	CategoryRateLimit Category = "RATE_LIMIT"
	CategoryServer    Category = "SERVER"
	// CategoryLocal is a pre-submission check that failed before any
	// network call (file too large, wrong extension, missing field).
	CategoryLocal Category = "LOCAL"
)

// FieldError is one entry of a backend validation error list.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ApiError struct {
	Category  Category     `json:"category"`
	Code      int          `json:"code,omitempty"` // HTTP status, 0 when no response
	Detail    string       `json:"detail,omitempty"`
	Fields    []FieldError `json:"fields,omitempty"`
	RequestID string       `json:"request_id,omitempty"`
	Err       error        `json:"-"`
}

func New(cat Category, code int, detail string) *ApiError {
	return &ApiError{Category: cat, Code: code, Detail: detail}
}

func Network(detail string, err error) *ApiError {
	return &ApiError{Category: CategoryNetwork, Detail: detail, Err: err}
}

func Timeout(err error) *ApiError {
	return &ApiError{Category: CategoryNetwork, Detail: "request timed out", Err: err}
}

func Auth(code int, detail string) *ApiError {
	return &ApiError{Category: CategoryAuth, Code: code, Detail: detail}
}

func Validation(code int, detail string, fields []FieldError) *ApiError {
	return &ApiError{Category: CategoryValidation, Code: code, Detail: detail, Fields: fields}
}

func Local(detail string) *ApiError {
	return &ApiError{Category: CategoryLocal, Detail: detail}
}

// FromStatus classifies a non-2xx backend response.
func FromStatus(code int, detail string, fields []FieldError) *ApiError {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return Auth(code, detail)
	case code == http.StatusRequestEntityTooLarge || code == http.StatusUnsupportedMediaType:
		return &ApiError{Category: CategoryPayload, Code: code, Detail: detail}
	case code == http.StatusTooManyRequests:
		return &ApiError{Category: CategoryRateLimit, Code: code, Detail: detail}
	case code >= 500:
		return &ApiError{Category: CategoryServer, Code: code, Detail: detail}
	case len(fields) > 0:
		return Validation(code, detail, fields)
	default:
		return &ApiError{Category: CategoryValidation, Code: code, Detail: detail}
	}
}

func (e *ApiError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Category, e.Detail)
	}
	return string(e.Category)
}

func (e *ApiError) Unwrap() error { return e.Err }

func (e *ApiError) WithRequestID(requestID string) *ApiError {
	e.RequestID = requestID
	return e
}

func (e *ApiError) StatusCode() int { return e.Code }

// UserMessage is the inline notification text shown for this error.
// Network and server failures get distinct wording; neither is retried
// automatically.
func (e *ApiError) UserMessage() string {
	switch e.Category {
	case CategoryNetwork:
		return "Could not reach the server. Check your connection and try again."
	case CategoryAuth:
		return "Session expired. Please log in again."
	case CategoryValidation:
		if e.Detail != "" {
			return e.Detail
		}
		return "Some of the submitted values were rejected."
	case CategoryPayload:
		return "The uploaded file was rejected by the server."
	case CategoryRateLimit:
		return "Too many requests. Wait a moment before retrying."
	case CategoryServer:
		return "The server ran into a problem. Try again later."
	default:
		return e.Detail
	}
}

// IsAuth reports whether err is an authentication failure that must clear
// the stored credential.
func IsAuth(err error) bool {
	apiErr, ok := err.(*ApiError)
	return ok && apiErr.Category == CategoryAuth
}
