package usecase

import (
	"context"
	"errors"
	"log"
	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

var ErrBookingNotFound = errors.New("booking not found in the store bookings")

// loadStoreBooking returns the store list entry of bookingID merged with its
// combined detail. Status, renter, window, totals and address come from the
// list entry; the combined detail only adds charges, vehicle and package.
func loadStoreBooking(ctx context.Context, bookings interfaces.IBookingGateway, token string, bookingID int64) (entities.Booking, error) {
	var (
		list   []entities.Booking
		detail entities.BookingDetail
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = bookings.ListManagerBookings(gctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		detail, err = bookings.GetCombined(gctx, token, bookingID)
		return err
	})
	if err := g.Wait(); err != nil {
		return entities.Booking{}, err
	}

	for _, b := range list {
		if b.ID == bookingID {
			return b.WithDetail(detail), nil
		}
	}
	log.Printf("[booking][usecase] booking not in store list booking_id=%d listed=%d", bookingID, len(list))
	return entities.Booking{}, ErrBookingNotFound
}
