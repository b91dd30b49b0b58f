package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase"
	"okbikes_admin/pkg"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "okb_session"
	SessionHeader = "X-Session-ID"

	ctxSession       = "session"
	ctxSessionExpire = "session_expire"

	// LoginPath is where the dashboard sends the manager after a 401.
	LoginPath = "/"
)

// SessionExpiredResponse is the 401 body; the client reloads Redirect.
type SessionExpiredResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

func sessionExpiredBody() SessionExpiredResponse {
	return SessionExpiredResponse{Code: "SESSION_EXPIRED", Message: usecase.MsgSessionExpired, Redirect: LoginPath}
}

var errSessionStoreUnavailable = pkg.NewDomainErrorSimple("SESSION_STORE_UNAVAILABLE", "Session store is unavailable. Please try again.", http.StatusServiceUnavailable)

// SessionGuard resolves the manager session of each request.
type SessionGuard struct {
	sessions usecase.ISessionUseCase
	secure   bool
}

func NewSessionGuard(sessions usecase.ISessionUseCase, secureCookie bool) *SessionGuard {
	return &SessionGuard{sessions: sessions, secure: secureCookie}
}

// SessionID reads the session id from the cookie, then the header.
func SessionID(c *gin.Context) string {
	if v, err := c.Cookie(SessionCookie); err == nil && v != "" {
		return v
	}
	return c.GetHeader(SessionHeader)
}

// Require aborts with 401 unless the request carries a live session. A
// failing session store answers 503 and keeps the cookie. The session is
// stored on the context for CurrentSession.
func (g *SessionGuard) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := SessionID(c)
		s, err := g.sessions.Resolve(c.Request.Context(), id)
		if errors.Is(err, usecase.ErrSessionExpired) {
			log.Printf("[session][middleware] rejected path=%s request_id=%s err=%v", c.FullPath(), GetRequestID(c), err)
			g.ClearCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, sessionExpiredBody())
			return
		}
		if err != nil {
			log.Printf("[session][middleware] session lookup failed path=%s request_id=%s err=%v", c.FullPath(), GetRequestID(c), err)
			c.AbortWithStatusJSON(errSessionStoreUnavailable.HTTPStatus, errSessionStoreUnavailable.ToHTTPError())
			return
		}
		c.Set(ctxSession, s)
		c.Set(ctxSessionExpire, func() {
			// The request context may already be done when the upstream
			// answered 401 late.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := g.sessions.Invalidate(ctx, s.ID); err != nil {
				log.Printf("[session][middleware] invalidate failed session_id=%s err=%v", s.ID, err)
			}
			g.ClearCookie(c)
		})
		c.Next()
	}
}

// SetCookie hands the session id to the browser.
func (g *SessionGuard) SetCookie(c *gin.Context, s entities.Session) {
	maxAge := 0
	if !s.ExpiresAt.IsZero() {
		maxAge = int(time.Until(s.ExpiresAt).Seconds())
		if maxAge <= 0 {
			maxAge = -1
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, s.ID, maxAge, "/", "", g.secure, true)
}

func (g *SessionGuard) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", g.secure, true)
}

// CurrentSession returns the session stored by Require.
func CurrentSession(c *gin.Context) (entities.Session, bool) {
	v, ok := c.Get(ctxSession)
	if !ok {
		return entities.Session{}, false
	}
	s, ok := v.(entities.Session)
	return s, ok
}

// ExpireSession ends the current session after the rental API refused its
// token, and answers 401 with the login redirect.
func ExpireSession(c *gin.Context) {
	if v, ok := c.Get(ctxSessionExpire); ok {
		if expire, ok := v.(func()); ok {
			expire()
		}
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, sessionExpiredBody())
}
