package handlers

import (
	"errors"
	"net/http"
	"okbikes_admin/internal/adapter/http/middleware"
	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase"
	"okbikes_admin/internal/usecase/interfaces"
	"okbikes_admin/pkg"
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUpstreamUnavailable = pkg.NewDomainErrorSimple("UPSTREAM_UNAVAILABLE", "Rental service is unreachable. Please try again.", http.StatusBadGateway)
	errBookingNotFound     = pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found for this store", http.StatusNotFound)
)

// respondError answers err. Session expiry and an unreachable rental API are
// handled the same way for every handler; the rest goes through mapErr.
func respondError(c *gin.Context, err error, mapErr func(error) *pkg.AppError) {
	switch {
	case errors.Is(err, interfaces.ErrUpstreamUnauthorized), errors.Is(err, usecase.ErrSessionExpired):
		middleware.ExpireSession(c)
	case errors.Is(err, interfaces.ErrUpstreamUnavailable):
		c.JSON(errUpstreamUnavailable.HTTPStatus, errUpstreamUnavailable.ToHTTPError())
	default:
		appErr := mapErr(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// currentSession returns the session put on the context by the session guard.
func currentSession(c *gin.Context) (entities.Session, bool) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		middleware.ExpireSession(c)
	}
	return s, ok
}

func positiveIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func intQuery(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
