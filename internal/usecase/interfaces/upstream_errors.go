package interfaces

import "errors"

// Gateway failures the use cases branch on. Gateway implementations wrap
// their own error values so these match through errors.Is.
var (
	ErrUpstreamUnauthorized = errors.New("rental api: unauthorized")
	ErrUpstreamBadRequest   = errors.New("rental api: bad request")
	ErrUpstreamUnavailable  = errors.New("rental api: unavailable")
)

// ServerMessenger is implemented by gateway errors that carry the message the
// rental API put in its error payload.
type ServerMessenger interface {
	ServerMessage() string
}

// ServerMessage extracts the upstream error message, or "" when there is none.
func ServerMessage(err error) string {
	var sm ServerMessenger
	if errors.As(err, &sm) {
		return sm.ServerMessage()
	}
	return ""
}
