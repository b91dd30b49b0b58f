package rentalapi

import (
	"context"
	"net/http"
	"net/url"
	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase/interfaces"
)

var _ interfaces.IBookingGateway = (*Client)(nil)

func (c *Client) ListManagerBookings(ctx context.Context, token string) ([]entities.Booking, error) {
	var out []entities.Booking
	err := c.do(ctx, request{method: http.MethodGet, path: "/store-manager/bookings", token: token}, &out)
	return out, err
}

func (c *Client) ListAllBookings(ctx context.Context, token string) ([]entities.Booking, error) {
	var out []entities.Booking
	err := c.do(ctx, request{method: http.MethodGet, path: "/booking/all", token: token}, &out)
	return out, err
}

func (c *Client) GetCombined(ctx context.Context, token string, bookingID int64) (entities.BookingDetail, error) {
	var out entities.BookingDetail
	err := c.do(ctx, request{method: http.MethodGet, path: idPath("/booking/combined/%d", bookingID), token: token}, &out)
	return out, err
}

func (c *Client) CancelBooking(ctx context.Context, token string, bookingID int64) error {
	return c.do(ctx, request{method: http.MethodPut, path: idPath("/booking/cancel/%d", bookingID), token: token}, nil)
}

func (c *Client) AcceptBooking(ctx context.Context, token string, bookingID int64) error {
	return c.do(ctx, request{method: http.MethodPut, path: idPath("/booking/admin/accept/%d", bookingID), token: token}, nil)
}

func (c *Client) CompleteTrip(ctx context.Context, token string, bookingID int64) error {
	return c.do(ctx, request{method: http.MethodPut, path: idPath("/booking/admin/complete-trip/%d", bookingID), token: token}, nil)
}

func (c *Client) UpdateStatus(ctx context.Context, token string, bookingID int64, status entities.BookingStatus) error {
	body, err := jsonBody(map[string]entities.BookingStatus{"status": status})
	if err != nil {
		return err
	}
	return c.do(ctx, request{method: http.MethodPut, path: idPath("/booking/update/%d", bookingID), token: token, body: body}, nil)
}

func (c *Client) UpdateBooking(ctx context.Context, token string, bookingID int64, update entities.BookingUpdate) error {
	body, err := jsonBody(update)
	if err != nil {
		return err
	}
	return c.do(ctx, request{method: http.MethodPut, path: idPath("/booking/%d", bookingID), token: token, body: body}, nil)
}

func (c *Client) VerifyDocument(ctx context.Context, token string, userID int64, kind entities.DocumentKind, status entities.DocumentStatus) error {
	q := url.Values{}
	q.Set("status", string(status))
	q.Set("docType", string(kind))
	return c.do(ctx, request{method: http.MethodPut, path: idPath("/booking/verify-documents/%d", userID), query: q, token: token}, nil)
}
