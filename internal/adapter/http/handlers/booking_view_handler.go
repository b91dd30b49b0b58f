package handlers

import (
	"errors"
	"net/http"
	request "okbikes_admin/internal/adapter/http/dto/request"
	response "okbikes_admin/internal/adapter/http/dto/response"
	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase"
	"okbikes_admin/internal/usecase/interfaces"
	"okbikes_admin/pkg"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidChargePayload   = pkg.NewDomainErrorSimple("INVALID_CHARGE_INPUT", "Invalid charge line", http.StatusBadRequest)
	errInvalidDecisionPayload = pkg.NewDomainErrorSimple("INVALID_DOCUMENT_DECISION", "Decision must be APPROVED or REJECTED", http.StatusBadRequest)
	errInvalidStatusPayload   = pkg.NewDomainErrorSimple("INVALID_STATUS", "Status cannot be set", http.StatusBadRequest)
)

// BookingViewHandler drives an open booking detail view: charge lines,
// document verification and status changes.
type BookingViewHandler struct {
	usecase usecase.IBookingWorkflowUseCase
	now     func() time.Time
}

func NewBookingViewHandler(uc usecase.IBookingWorkflowUseCase) *BookingViewHandler {
	return &BookingViewHandler{usecase: uc, now: time.Now}
}

// viewTarget reads the session and the :id param; it answers the request
// itself when either is missing.
func (h *BookingViewHandler) viewTarget(c *gin.Context) (entities.Session, int64, bool) {
	s, ok := currentSession(c)
	if !ok {
		return entities.Session{}, 0, false
	}
	id, ok := positiveIDParam(c, "id")
	if !ok {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return entities.Session{}, 0, false
	}
	return s, id, true
}

// OpenBooking godoc
// @Summary      Open the booking detail view
// @Description  Loads the booking and its renter and resets the charge lines.
// @Tags         booking-view
// @Produce      json
// @Param        id   path      int  true  "booking id"
// @Success      200  {object}  response.BookingViewResponse
// @Failure      401  {object}  middleware.SessionExpiredResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /bookings/{id}/view [post]
func (h *BookingViewHandler) OpenBooking(c *gin.Context) {
	s, id, ok := h.viewTarget(c)
	if !ok {
		return
	}
	view, err := h.usecase.OpenBooking(c.Request.Context(), s, id)
	h.respondView(c, view, err)
}

func (h *BookingViewHandler) GetView(c *gin.Context) {
	s, id, ok := h.viewTarget(c)
	if !ok {
		return
	}
	view, err := h.usecase.View(s, id)
	h.respondView(c, view, err)
}

func (h *BookingViewHandler) CloseBooking(c *gin.Context) {
	s, id, ok := h.viewTarget(c)
	if !ok {
		return
	}
	h.usecase.CloseBooking(s, id)
	c.Status(http.StatusNoContent)
}

func (h *BookingViewHandler) AddChargeLine(c *gin.Context) {
	s, id, ok := h.viewTarget(c)
	if !ok {
		return
	}
	view, err := h.usecase.AddChargeLine(s, id)
	h.respondView(c, view, err)
}

// PatchChargeLine sets the type and/or the amount of one line.
func (h *BookingViewHandler) PatchChargeLine(c *gin.Context) {
	s, id, ok := h.viewTarget(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return
	}
	var payload request.ChargeLinePatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return
	}

	var view usecase.ViewState
	if t, ok := payload.ChargeType(); ok {
		if view, err = h.usecase.SetChargeType(s, id, index, t); err != nil {
			h.respondView(c, view, err)
			return
		}
	}
	if payload.Amount != nil {
		view, err = h.usecase.SetChargeAmount(s, id, index, *payload.Amount)
	}
	h.respondView(c, view, err)
}

func (h *BookingViewHandler) RemoveChargeLine(c *gin.Context) {
	s, id, ok := h.viewTarget(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return
	}
	view, err := h.usecase.RemoveChargeLine(s, id, index)
	h.respondView(c, view, err)
}

func (h *BookingViewHandler) ChargeTotals(c *gin.Context) {
	s, id, ok := h.viewTarget(c)
	if !ok {
		return
	}
	total, err := h.usecase.TotalAdditionalCharges(s, id)
	if err != nil {
		respondError(c, err, mapBookingViewError)
		return
	}
	late, err := h.usecase.LateCharges(s, id, h.now())
	if err != nil {
		respondError(c, err, mapBookingViewError)
		return
	}
	c.JSON(http.StatusOK, response.ChargeTotalsResponse{TotalAdditionalCharges: total, LateCharges: late})
}

// SaveCharges godoc
// @Summary      Save the charge lines to the booking
// @Tags         booking-view
// @Produce      json
// @Param        id   path      int  true  "booking id"
// @Success      200  {object}  response.OutcomeResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /bookings/{id}/view/charges [put]
func (h *BookingViewHandler) SaveCharges(c *gin.Context) {
	s, id, ok := h.viewTarget(c)
	if !ok {
		return
	}
	out, err := h.usecase.SaveCharges(c.Request.Context(), s, id)
	h.respondOutcome(c, out, err)
}

// VerifyDocument godoc
// @Summary      Approve or reject one renter document
// @Tags         booking-view
// @Accept       json
// @Produce      json
// @Param        id    path      int                              true  "booking id"
// @Param        kind  path      string                           true  "aadharFrontSide, aadharBackSide or drivingLicense"
// @Param        body  body      request.DocumentDecisionRequest  true  "decision"
// @Success      200   {object}  response.OutcomeResponse
// @Router       /bookings/{id}/view/documents/{kind} [put]
func (h *BookingViewHandler) VerifyDocument(c *gin.Context) {
	s, id, ok := h.viewTarget(c)
	if !ok {
		return
	}
	kind := entities.DocumentKind(c.Param("kind"))
	if !kind.Valid() {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_DOCUMENT_KIND", "Unknown document", http.StatusBadRequest).ToHTTPError())
		return
	}
	var payload request.DocumentDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDecisionPayload.HTTPStatus, errInvalidDecisionPayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errInvalidDecisionPayload.HTTPStatus, errInvalidDecisionPayload.ToHTTPError())
		return
	}

	out, err := h.usecase.VerifyDocument(c.Request.Context(), s, id, kind, payload.Status())
	h.respondOutcome(c, out, err)
}

// ChangeStatus only selects the status; SubmitStatus sends it.
func (h *BookingViewHandler) ChangeStatus(c *gin.Context) {
	s, id, ok := h.viewTarget(c)
	if !ok {
		return
	}
	var payload request.StatusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}
	view, err := h.usecase.ChangeStatus(s, id, payload.BookingStatus())
	h.respondView(c, view, err)
}

// SubmitStatus godoc
// @Summary      Send the selected status to the rental API
// @Tags         booking-view
// @Produce      json
// @Param        id   path      int  true  "booking id"
// @Success      200  {object}  response.OutcomeResponse
// @Router       /bookings/{id}/view/status/submit [post]
func (h *BookingViewHandler) SubmitStatus(c *gin.Context) {
	s, id, ok := h.viewTarget(c)
	if !ok {
		return
	}
	out, err := h.usecase.SubmitStatusChange(c.Request.Context(), s, id)
	h.respondOutcome(c, out, err)
}

func (h *BookingViewHandler) respondView(c *gin.Context, view usecase.ViewState, err error) {
	if err != nil {
		respondError(c, err, mapBookingViewError)
		return
	}
	c.JSON(http.StatusOK, response.FromViewState(view))
}

// respondOutcome answers 200 for both accepted and refused actions. An
// unreachable rental API is a 502 that still carries the notice and the view.
func (h *BookingViewHandler) respondOutcome(c *gin.Context, out usecase.Outcome, err error) {
	if err != nil {
		if errors.Is(err, interfaces.ErrUpstreamUnavailable) {
			appErr := errUpstreamUnavailable.WithDetails(response.FromOutcome(out))
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		respondError(c, err, mapBookingViewError)
		return
	}
	c.JSON(http.StatusOK, response.FromOutcome(out))
}

func mapBookingViewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrBookingNotFound):
		return errBookingNotFound
	case errors.Is(err, usecase.ErrViewNotOpen):
		return pkg.NewDomainErrorSimple("VIEW_NOT_OPEN", "Booking view is not open", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChargesLocked):
		return pkg.NewDomainErrorSimple("CHARGES_LOCKED", "Charges can no longer be edited", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidChargeIndex):
		return pkg.NewDomainErrorSimple("INVALID_CHARGE_INDEX", "Charge line not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidChargeType):
		return errInvalidChargePayload
	case errors.Is(err, usecase.ErrInvalidDocumentKind):
		return pkg.NewDomainErrorSimple("INVALID_DOCUMENT_KIND", "Unknown document", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDecision):
		return errInvalidDecisionPayload
	case errors.Is(err, usecase.ErrStatusNotSettable):
		return errInvalidStatusPayload
	default:
		return internalError(err)
	}
}
