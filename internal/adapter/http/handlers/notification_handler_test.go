package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"okbikes_admin/internal/adapter/http/middleware"
	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/infrastructure/notify"

	"github.com/gorilla/websocket"
	"go.uber.org/mock/gomock"
)

func TestNotificationHandler_Stream(t *testing.T) {
	setup := func(t *testing.T, origins []string) (*httptest.Server, *notify.Hub) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		r, v1, _ := guardedRouter(t, ctrl)
		hub := notify.NewHub()
		t.Cleanup(hub.Close)
		v1.GET("/notifications/ws", NewNotificationHandler(hub, origins).Stream)
		srv := httptest.NewServer(r)
		t.Cleanup(srv.Close)
		return srv, hub
	}
	dial := func(srv *httptest.Server, origin string) (*websocket.Conn, *http.Response, error) {
		h := http.Header{}
		h.Set(middleware.SessionHeader, testSession.ID)
		if origin != "" {
			h.Set("Origin", origin)
		}
		return websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/v1/notifications/ws", h)
	}

	t.Run("receives the session notices", func(t *testing.T) {
		srv, hub := setup(t, nil)
		conn, _, err := dial(srv, "")
		if err != nil {
			t.Fatalf("dial: %v", err)
		}
		defer conn.Close()

		deadline := time.Now().Add(2 * time.Second)
		for hub.Connections(testSession.ID) == 0 {
			if time.Now().After(deadline) {
				t.Fatalf("socket never registered")
			}
			time.Sleep(10 * time.Millisecond)
		}

		hub.Publish(testSession.ID, entities.Notice{Level: entities.NoticeSuccess, Message: "Charges saved successfully", BookingID: 7})
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var got entities.Notice
		if err := conn.ReadJSON(&got); err != nil {
			t.Fatalf("read: %v", err)
		}
		if got.Message != "Charges saved successfully" || got.BookingID != 7 {
			t.Fatalf("unexpected notice: %+v", got)
		}
	})

	t.Run("foreign origin is refused", func(t *testing.T) {
		srv, _ := setup(t, []string{"https://admin.okbikes.in"})
		_, resp, err := dial(srv, "https://evil.example")
		if err == nil {
			t.Fatalf("expected the handshake to fail")
		}
		if resp == nil || resp.StatusCode != http.StatusForbidden {
			t.Fatalf("expected 403, got %+v", resp)
		}
	})
}
