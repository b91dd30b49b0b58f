package interfaces

import "okbikes_admin/internal/domain/entities"

// INotifier pushes transient notices to the dashboard clients of a session.
type INotifier interface {
	Publish(sessionID string, n entities.Notice)
	CloseSession(sessionID string)
}
