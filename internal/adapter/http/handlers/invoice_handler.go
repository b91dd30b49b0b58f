package handlers

import (
	"errors"
	"fmt"
	"net/http"
	response "okbikes_admin/internal/adapter/http/dto/response"
	"okbikes_admin/internal/usecase"
	"okbikes_admin/pkg"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// Invoice godoc
// @Summary      Invoice of a completed booking
// @Tags         booking-view
// @Produce      json
// @Param        id   path      int  true  "booking id"
// @Success      200  {object}  response.InvoiceResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /bookings/{id}/view/invoice [get]
func (h *InvoiceHandler) Invoice(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := positiveIDParam(c, "id")
	if !ok {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	inv, err := h.usecase.Invoice(s, id)
	if err != nil {
		respondError(c, err, mapInvoiceError)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// InvoicePDF godoc
// @Summary      Printable invoice
// @Tags         booking-view
// @Produce      application/pdf
// @Param        id   path  int  true  "booking id"
// @Success      200  {file}  file
// @Router       /bookings/{id}/view/invoice.pdf [get]
func (h *InvoiceHandler) InvoicePDF(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := positiveIDParam(c, "id")
	if !ok {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	pdf, inv, err := h.usecase.InvoicePDF(s, id)
	if err != nil {
		respondError(c, err, mapInvoiceError)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="invoice-%s.pdf"`, inv.Number))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvoiceUnavailable):
		return pkg.NewDomainErrorSimple("INVOICE_UNAVAILABLE", "Invoice is available only for completed bookings", http.StatusConflict)
	default:
		return mapBookingViewError(err)
	}
}
