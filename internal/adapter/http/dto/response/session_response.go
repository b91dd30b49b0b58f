package response

import (
	"okbikes_admin/internal/domain/entities"
	"time"
)

// SessionResponse never carries the bearer token.
type SessionResponse struct {
	SessionID string     `json:"session_id"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func FromSession(s entities.Session) SessionResponse {
	res := SessionResponse{SessionID: s.ID, CreatedAt: s.CreatedAt}
	if !s.ExpiresAt.IsZero() {
		exp := s.ExpiresAt
		res.ExpiresAt = &exp
	}
	return res
}
