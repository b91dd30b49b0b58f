package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"okbikes_admin/internal/adapter/http/handlers/mocks"
	"okbikes_admin/internal/adapter/http/middleware"
	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase"
	"okbikes_admin/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSessionHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc usecase.ISessionUseCase) *gin.Engine {
		h := NewSessionHandler(uc, middleware.NewSessionGuard(uc, false))
		r := gin.New()
		r.POST("/v1/auth/login", h.Login)
		r.POST("/v1/auth/logout", h.Logout)
		return r
	}
	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		w := post(build(mocks.NewMockISessionUseCase(ctrl)), "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		w := post(build(mocks.NewMockISessionUseCase(ctrl)), `{"email":"   ","password":"pw"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("server message is shown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		uc.EXPECT().Login(gomock.Any(), "m@okbikes.in", "bad").Return(entities.Session{}, &usecase.LoginError{Message: "Invalid credentials", Err: interfaces.ErrUpstreamUnauthorized})

		w := post(build(uc), `{"email":" m@okbikes.in ","password":"bad"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Invalid credentials") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unreachable rental api", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		uc.EXPECT().Login(gomock.Any(), "m@okbikes.in", "pw").Return(entities.Session{}, &usecase.LoginError{Message: usecase.MsgLoginFailed, Err: interfaces.ErrUpstreamUnavailable})

		w := post(build(uc), `{"email":"m@okbikes.in","password":"pw"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success sets the cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		uc.EXPECT().Login(gomock.Any(), "m@okbikes.in", "pw").Return(entities.Session{ID: "s-9", Token: "tok", CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour)}, nil)

		w := post(build(uc), `{"email":"m@okbikes.in","password":"pw"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Header().Get("Set-Cookie"), middleware.SessionCookie+"=s-9") {
			t.Fatalf("expected session cookie, got %q", w.Header().Get("Set-Cookie"))
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["session_id"] != "s-9" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if strings.Contains(w.Body.String(), "tok") {
			t.Fatalf("token leaked: %s", w.Body.String())
		}
	})

	t.Run("logout clears even when upstream fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		uc.EXPECT().Logout(gomock.Any(), "s-1").Return(errors.New("boom"))

		r := build(uc)
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "s-1"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if !strings.Contains(w.Header().Get("Set-Cookie"), "Max-Age=0") {
			t.Fatalf("expected cookie removal, got %q", w.Header().Get("Set-Cookie"))
		}
	})
}
