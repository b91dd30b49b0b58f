package usecase

import (
	"context"
	"errors"
	"log"
	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase/interfaces"
	"okbikes_admin/pkg/token"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionExpired     = errors.New("session expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const (
	MsgSessionExpired = "Session expired. Please login again."
	MsgLoginFailed    = "Login failed. Please try again."
)

// LoginError carries the message the login form shows.
type LoginError struct {
	Message string
	Err     error
}

func (e *LoginError) Error() string { return e.Message }

func (e *LoginError) Unwrap() error { return e.Err }

// ISessionUseCase owns the manager session: the single bearer token kept per
// logged-in dashboard.
type ISessionUseCase interface {
	Login(ctx context.Context, email, password string) (entities.Session, error)
	Resolve(ctx context.Context, sessionID string) (entities.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Invalidate(ctx context.Context, sessionID string) error
}

type SessionUseCase struct {
	repo  interfaces.ISessionRepository
	auth  interfaces.IAuthGateway
	ttl   time.Duration
	onEnd []func(sessionID string)
	now   func() time.Time
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

// NewSessionUseCase builds the session use case. ttl is the lifetime used when
// the token carries no exp claim. onEnd callbacks run whenever a session is
// cleared, so session-scoped state (open views, sockets) goes with it.
func NewSessionUseCase(repo interfaces.ISessionRepository, auth interfaces.IAuthGateway, ttl time.Duration, onEnd ...func(sessionID string)) *SessionUseCase {
	return &SessionUseCase{repo: repo, auth: auth, ttl: ttl, onEnd: onEnd, now: time.Now}
}

func (u *SessionUseCase) Login(ctx context.Context, email, password string) (entities.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return entities.Session{}, ErrInvalidCredentials
	}

	log.Printf("[session][usecase] login start email=%s", email)
	raw, err := u.auth.Login(ctx, email, password)
	if err != nil {
		log.Printf("[session][usecase] login failed email=%s err=%v", email, err)
		return entities.Session{}, &LoginError{Message: loginMessage(err), Err: err}
	}
	if raw == "" {
		log.Printf("[session][usecase] login returned no token email=%s", email)
		return entities.Session{}, &LoginError{Message: MsgLoginFailed, Err: ErrInvalidCredentials}
	}

	now := u.now().UTC()
	expiresAt := now.Add(u.ttl)
	if exp, ok := token.Expiry(raw); ok {
		expiresAt = exp.UTC()
	}
	s := entities.Session{
		ID:        uuid.NewString(),
		Token:     raw,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}
	if err := u.repo.Save(ctx, s); err != nil {
		log.Printf("[session][usecase] save failed session_id=%s err=%v", s.ID, err)
		return entities.Session{}, err
	}
	log.Printf("[session][usecase] login success session_id=%s expires_at=%s", s.ID, s.ExpiresAt.Format(time.RFC3339))
	return s, nil
}

func loginMessage(err error) string {
	if errors.Is(err, interfaces.ErrUpstreamUnavailable) {
		return MsgLoginFailed
	}
	msg := interfaces.ServerMessage(err)
	switch {
	case strings.Contains(msg, "JWT expired"):
		return MsgSessionExpired
	case msg != "":
		return msg
	default:
		return MsgLoginFailed
	}
}

func (u *SessionUseCase) Resolve(ctx context.Context, sessionID string) (entities.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Session{}, ErrSessionExpired
	}

	s, err := u.repo.Get(ctx, sessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if s.ID == "" {
		return entities.Session{}, ErrSessionExpired
	}

	now := u.now()
	if s.Expired(now) || token.Expired(s.Token, now) {
		log.Printf("[session][usecase] session expired session_id=%s", s.ID)
		if err := u.clear(ctx, s.ID); err != nil {
			return entities.Session{}, err
		}
		return entities.Session{}, ErrSessionExpired
	}
	return s, nil
}

// Logout tells the rental API and clears the session whatever it answers.
func (u *SessionUseCase) Logout(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}

	s, err := u.repo.Get(ctx, sessionID)
	if err != nil {
		log.Printf("[session][usecase] logout lookup failed session_id=%s err=%v", sessionID, err)
	} else if s.Token != "" {
		if err := u.auth.Logout(ctx, s.Token); err != nil {
			log.Printf("[session][usecase] upstream logout failed session_id=%s err=%v", sessionID, err)
		}
	}

	log.Printf("[session][usecase] logout session_id=%s", sessionID)
	return u.clear(ctx, sessionID)
}

// Invalidate drops a session whose token the rental API refused.
func (u *SessionUseCase) Invalidate(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}
	log.Printf("[session][usecase] invalidate session_id=%s", sessionID)
	return u.clear(ctx, sessionID)
}

func (u *SessionUseCase) clear(ctx context.Context, sessionID string) error {
	for _, fn := range u.onEnd {
		fn(sessionID)
	}
	if err := u.repo.Delete(ctx, sessionID); err != nil {
		log.Printf("[session][usecase] delete failed session_id=%s err=%v", sessionID, err)
		return err
	}
	return nil
}
