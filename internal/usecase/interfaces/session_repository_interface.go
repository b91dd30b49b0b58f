package interfaces

import (
	"context"
	"okbikes_admin/internal/domain/entities"
)

// ISessionRepository persists the manager sessions. Get returns a zero Session
// (empty ID) when nothing is stored under id.
type ISessionRepository interface {
	Save(ctx context.Context, s entities.Session) error
	Get(ctx context.Context, id string) (entities.Session, error)
	Delete(ctx context.Context, id string) error
}
