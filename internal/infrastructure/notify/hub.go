// Package notify pushes dashboard notices to the browser tabs of a session.
package notify

import (
	"log"
	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase/interfaces"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var _ interfaces.INotifier = (*Hub)(nil)

const writeWait = 5 * time.Second

// client serialises writes; a websocket.Conn allows one concurrent writer.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(v)
}

func (c *client) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// Hub keeps the open connections of every session. A session may have
// several tabs open; each receives every notice.
type Hub struct {
	mutex    sync.RWMutex
	sessions map[string]map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{sessions: make(map[string]map[*client]struct{})}
}

// Register adds conn to the session. unregister removes and closes it; ping
// sends a keep-alive frame through the same writer lock as notices.
func (h *Hub) Register(sessionID string, conn *websocket.Conn) (unregister func(), ping func() error) {
	c := &client{conn: conn}

	h.mutex.Lock()
	set, ok := h.sessions[sessionID]
	if !ok {
		set = make(map[*client]struct{})
		h.sessions[sessionID] = set
	}
	set[c] = struct{}{}
	h.mutex.Unlock()

	var once sync.Once
	unregister = func() {
		once.Do(func() {
			h.remove(sessionID, c)
			_ = conn.Close()
		})
	}
	return unregister, c.ping
}

func (h *Hub) remove(sessionID string, c *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	set, ok := h.sessions[sessionID]
	if !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.sessions, sessionID)
	}
}

func (h *Hub) snapshot(sessionID string) []*client {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	set := h.sessions[sessionID]
	out := make([]*client, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	return out
}

// Publish delivers the notice to every tab of the session. Connections that
// fail the write are dropped.
func (h *Hub) Publish(sessionID string, notice entities.Notice) {
	clients := h.snapshot(sessionID)
	if len(clients) == 0 {
		return
	}
	for _, c := range clients {
		if err := c.writeJSON(notice); err != nil {
			log.Printf("[notify][hub] write failed session_id=%s err=%v", sessionID, err)
			h.remove(sessionID, c)
			_ = c.conn.Close()
		}
	}
}

// CloseSession sends a close frame to every tab of the session and forgets them.
func (h *Hub) CloseSession(sessionID string) {
	h.mutex.Lock()
	set := h.sessions[sessionID]
	delete(h.sessions, sessionID)
	h.mutex.Unlock()

	for c := range set {
		c.mu.Lock()
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session ended"),
			time.Now().Add(writeWait))
		c.mu.Unlock()
		_ = c.conn.Close()
	}
	if len(set) > 0 {
		log.Printf("[notify][hub] session closed session_id=%s connections=%d", sessionID, len(set))
	}
}

func (h *Hub) Connections(sessionID string) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.sessions[sessionID])
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, set := range h.sessions {
		for c := range set {
			_ = c.conn.Close()
		}
		delete(h.sessions, id)
	}
}
