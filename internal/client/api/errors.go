package api

import "fmt"

// APIError is the normalized form of a non-2xx backend response. Message
// prefers the server-supplied "message" field and falls back to
// "HTTP <status>". Payload keeps the full decoded body for caller
// inspection.
type APIError struct {
	Status  int
	Message string
	Payload map[string]any
}

func (e *APIError) Error() string { return e.Message }

// NewAPIError builds an APIError for the given status and decoded body.
// payload may be nil when the body decoded to a non-object value.
func NewAPIError(status int, payload map[string]any) *APIError {
	e := &APIError{
		Status:  status,
		Message: fmt.Sprintf("HTTP %d", status),
		Payload: payload,
	}
	if msg, ok := payload["message"].(string); ok && msg != "" {
		e.Message = msg
	}
	return e
}
