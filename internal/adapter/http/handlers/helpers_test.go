package handlers

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"okbikes_admin/internal/adapter/http/handlers/mocks"
	"okbikes_admin/internal/adapter/http/middleware"
	"okbikes_admin/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var testSession = entities.Session{ID: "s-1", Token: "tok"}

// guardedRouter returns an engine whose group "/v1" requires the test session.
func guardedRouter(t *testing.T, ctrl *gomock.Controller) (*gin.Engine, *gin.RouterGroup, *mocks.MockISessionUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	sessions := mocks.NewMockISessionUseCase(ctrl)
	sessions.EXPECT().Resolve(gomock.Any(), testSession.ID).Return(testSession, nil).AnyTimes()

	r := gin.New()
	v1 := r.Group("/v1", middleware.NewSessionGuard(sessions, false).Require())
	return r, v1, sessions
}

func do(r http.Handler, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set(middleware.SessionHeader, testSession.ID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	return do(r, method, path, rd, "application/json")
}
