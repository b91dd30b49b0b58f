package handlers

import (
	"errors"
	"log"
	"net/http"
	request "okbikes_admin/internal/adapter/http/dto/request"
	response "okbikes_admin/internal/adapter/http/dto/response"
	"okbikes_admin/internal/adapter/http/middleware"
	"okbikes_admin/internal/usecase"
	"okbikes_admin/internal/usecase/interfaces"
	"okbikes_admin/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Email and password are required", http.StatusBadRequest)

type SessionHandler struct {
	usecase usecase.ISessionUseCase
	guard   *middleware.SessionGuard
}

func NewSessionHandler(uc usecase.ISessionUseCase, guard *middleware.SessionGuard) *SessionHandler {
	return &SessionHandler{usecase: uc, guard: guard}
}

// Login godoc
// @Summary      Log in a store manager
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.LoginRequest  true  "credentials"
// @Success      200   {object}  response.SessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}
	payload = payload.Normalize()
	if err := request.Validate.Struct(payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapLoginError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.guard.SetCookie(c, s)
	c.JSON(http.StatusOK, response.FromSession(s))
}

// Logout godoc
// @Summary      Log out and clear the session
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *SessionHandler) Logout(c *gin.Context) {
	id := middleware.SessionID(c)
	if id != "" {
		if err := h.usecase.Logout(c.Request.Context(), id); err != nil {
			log.Printf("[session][handler] logout failed err=%v", err)
		}
	}
	h.guard.ClearCookie(c)
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.SessionResponse
// @Failure      401  {object}  middleware.SessionExpiredResponse
// @Router       /auth/session [get]
func (h *SessionHandler) Me(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

func mapLoginError(err error) *pkg.AppError {
	var loginErr *usecase.LoginError
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials) && !errors.As(err, &loginErr):
		return errInvalidLoginPayload
	case errors.As(err, &loginErr) && errors.Is(err, interfaces.ErrUpstreamUnavailable):
		return pkg.NewDomainError("UPSTREAM_UNAVAILABLE", loginErr.Message, err, http.StatusBadGateway)
	case errors.As(err, &loginErr):
		return pkg.NewDomainError("LOGIN_FAILED", loginErr.Message, err, http.StatusUnauthorized)
	default:
		return internalError(err)
	}
}
