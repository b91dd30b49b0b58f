package rentalapi

import (
	"fmt"
	"net/http"
	"okbikes_admin/internal/usecase/interfaces"
)

var (
	ErrUnauthorized = interfaces.ErrUpstreamUnauthorized
	ErrBadRequest   = interfaces.ErrUpstreamBadRequest
	ErrUnavailable  = interfaces.ErrUpstreamUnavailable
)

// APIError is a non-2xx answer of the rental API.
type APIError struct {
	Status  int
	Message string
	Path    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("rental api %s: status %d", e.Path, e.Status)
	}
	return fmt.Sprintf("rental api %s: status %d: %s", e.Path, e.Status, e.Message)
}

func (e *APIError) ServerMessage() string {
	return e.Message
}

// Unwrap lets callers match 401 and 400 with errors.Is.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusBadRequest:
		return ErrBadRequest
	}
	return nil
}
