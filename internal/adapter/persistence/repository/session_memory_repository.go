package repository

import (
	"context"
	"log"
	"sync"
	"time"

	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase/interfaces"
)

// SessionMemoryRepository keeps sessions in process memory. Sessions are lost
// on restart and not shared between replicas.
type SessionMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]entities.Session
}

var _ interfaces.ISessionRepository = (*SessionMemoryRepository)(nil)

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{sessions: make(map[string]entities.Session)}
}

func (r *SessionMemoryRepository) Save(_ context.Context, s entities.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
	return nil
}

func (r *SessionMemoryRepository) Get(_ context.Context, id string) (entities.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id], nil
}

func (r *SessionMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// Purge drops every session expired at now and returns their ids.
func (r *SessionMemoryRepository) Purge(now time.Time) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []string
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			ids = append(ids, id)
		}
	}
	return ids
}

// RunJanitor purges expired sessions every interval until ctx is done. Each
// purged id is handed to onPurge.
func (r *SessionMemoryRepository) RunJanitor(ctx context.Context, interval time.Duration, onPurge func(sessionID string)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			ids := r.Purge(now)
			if len(ids) > 0 {
				log.Printf("[session][memory] purged expired sessions count=%d", len(ids))
			}
			if onPurge != nil {
				for _, id := range ids {
					onPurge(id)
				}
			}
		}
	}
}
