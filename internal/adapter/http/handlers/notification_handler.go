package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// NoticeHub keeps the notice sockets of each session.
type NoticeHub interface {
	Register(sessionID string, conn *websocket.Conn) (unregister func(), ping func() error)
}

type NotificationHandler struct {
	hub      NoticeHub
	upgrader websocket.Upgrader
}

// NewNotificationHandler accepts sockets from allowedOrigins only; an empty
// list allows any origin.
func NewNotificationHandler(hub NoticeHub, allowedOrigins []string) *NotificationHandler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return &NotificationHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(allowed) == 0 {
					return true
				}
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				_, ok := allowed[origin]
				return ok
			},
		},
	}
}

// Stream godoc
// @Summary      Notice stream
// @Description  WebSocket carrying the success and error notices of the session.
// @Tags         notifications
// @Router       /notifications/ws [get]
func (h *NotificationHandler) Stream(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[notify][handler] upgrade failed session_id=%s err=%v", s.ID, err)
		return
	}
	unregister, ping := h.hub.Register(s.ID, conn)
	defer unregister()

	done := make(chan struct{})
	defer close(done)
	go pingLoop(ping, done)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	// The client never sends anything; reading only drives control frames.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[notify][handler] socket closed session_id=%s err=%v", s.ID, err)
			}
			return
		}
	}
}

func pingLoop(ping func() error, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := ping(); err != nil {
				return
			}
		}
	}
}
