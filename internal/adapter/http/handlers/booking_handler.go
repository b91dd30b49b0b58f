package handlers

import (
	"errors"
	"net/http"
	response "okbikes_admin/internal/adapter/http/dto/response"
	"okbikes_admin/internal/usecase"
	"okbikes_admin/pkg"
	"strings"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the manager booking list.
type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// ListBookings godoc
// @Summary      List the store bookings
// @Tags         bookings
// @Produce      json
// @Param        search  query     string  false  "vehicle model filter"
// @Param        page    query     int     false  "1-based page"
// @Success      200     {object}  response.BookingListResponse
// @Router       /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	page, ok := intQuery(c, "page", 1)
	if !ok {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	list, err := h.usecase.ListBookings(c.Request.Context(), s, usecase.BookingQuery{
		Search: strings.TrimSpace(c.Query("search")),
		Page:   page,
	})
	if err != nil {
		respondError(c, err, mapBookingError)
		return
	}
	c.JSON(http.StatusOK, response.FromBookingList(list))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := positiveIDParam(c, "id")
	if !ok {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	b, err := h.usecase.GetBooking(c.Request.Context(), s, id)
	if err != nil {
		respondError(c, err, mapBookingError)
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrBookingNotFound):
		return errBookingNotFound
	default:
		return internalError(err)
	}
}
