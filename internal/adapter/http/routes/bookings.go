package routes

import (
	"okbikes_admin/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBookings      = "/bookings"
	PathDashboard     = "/dashboard"
	PathNotifications = "/notifications/ws"
)

func addBookingRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler, viewHandler *handlers.BookingViewHandler, invoiceHandler *handlers.InvoiceHandler) {
	bookings := rg.Group(PathBookings)
	{
		bookings.GET("", bookingHandler.ListBookings)
		bookings.GET("/:id", bookingHandler.GetBooking)
	}

	// One open detail view per session and booking.
	view := bookings.Group("/:id/view")
	{
		view.POST("", viewHandler.OpenBooking)
		view.GET("", viewHandler.GetView)
		view.DELETE("", viewHandler.CloseBooking)

		view.POST("/charges", viewHandler.AddChargeLine)
		view.PUT("/charges", viewHandler.SaveCharges)
		view.GET("/charges/total", viewHandler.ChargeTotals)
		view.PATCH("/charges/:index", viewHandler.PatchChargeLine)
		view.DELETE("/charges/:index", viewHandler.RemoveChargeLine)

		view.PUT("/documents/:kind", viewHandler.VerifyDocument)
		view.PUT("/status", viewHandler.ChangeStatus)
		view.POST("/status/submit", viewHandler.SubmitStatus)

		view.GET("/invoice", invoiceHandler.Invoice)
		view.GET("/invoice.pdf", invoiceHandler.InvoicePDF)
	}
}
