package usecase

import (
	"context"
	"log"
	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase/interfaces"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

const recentBookingsCount = 10

// DashboardStats backs the home page counters.
type DashboardStats struct {
	Users           []entities.User
	TotalUsers      int
	VerifiedUsers   int
	UnverifiedUsers int
	TotalBookings   int
	RecentBookings  []entities.Booking
	TodaysBookings  []entities.Booking
	OngoingBookings []entities.Booking
	TotalBikes      int
	TotalStores     int
}

type IDashboardUseCase interface {
	Stats(ctx context.Context, s entities.Session, now time.Time) (DashboardStats, error)
}

type DashboardUseCase struct {
	bookings interfaces.IBookingGateway
	users    interfaces.IUserGateway
	fleet    interfaces.IFleetGateway
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(bookings interfaces.IBookingGateway, users interfaces.IUserGateway, fleet interfaces.IFleetGateway) *DashboardUseCase {
	return &DashboardUseCase{bookings: bookings, users: users, fleet: fleet}
}

func (u *DashboardUseCase) Stats(ctx context.Context, s entities.Session, now time.Time) (DashboardStats, error) {
	var (
		users    entities.Page[entities.User]
		bookings []entities.Booking
		vehicles entities.Page[entities.Vehicle]
		stores   []entities.CatalogEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = u.users.ListUsers(gctx, s.Token, entities.PageQuery{Page: 0, Size: 10, SortBy: "id", SortDirection: "asc"})
		return err
	})
	g.Go(func() (err error) {
		bookings, err = u.bookings.ListAllBookings(gctx, s.Token)
		return err
	})
	g.Go(func() (err error) {
		vehicles, err = u.fleet.ListVehicles(gctx, s.Token)
		return err
	})
	g.Go(func() (err error) {
		stores, err = u.fleet.ListStores(gctx, s.Token)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[dashboard][usecase] stats failed err=%v", err)
		return DashboardStats{}, err
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].StartDate.After(bookings[j].StartDate.Time)
	})

	stats := DashboardStats{
		Users:         users.Content,
		TotalUsers:    len(users.Content),
		TotalBookings: len(bookings),
		TotalBikes:    len(vehicles.Content),
		TotalStores:   len(stores),
	}
	if users.TotalElements > 0 {
		stats.TotalUsers = int(users.TotalElements)
	}
	if vehicles.TotalElements > 0 {
		stats.TotalBikes = int(vehicles.TotalElements)
	}
	for _, usr := range users.Content {
		if usr.IsVerified {
			stats.VerifiedUsers++
		} else {
			stats.UnverifiedUsers++
		}
	}

	today := now.UTC().Format("2006-01-02")
	for _, b := range bookings {
		if !b.StartDate.IsZero() && b.StartDate.UTC().Format("2006-01-02") == today {
			stats.TodaysBookings = append(stats.TodaysBookings, b)
		}
		if isOngoing(b, now) {
			stats.OngoingBookings = append(stats.OngoingBookings, b)
		}
	}

	recent := bookings
	if len(recent) > recentBookingsCount {
		recent = recent[:recentBookingsCount]
	}
	named, err := u.withUserNames(ctx, s, recent)
	if err != nil {
		log.Printf("[dashboard][usecase] user names failed err=%v", err)
		return DashboardStats{}, err
	}
	stats.RecentBookings = named

	log.Printf("[dashboard][usecase] stats bookings=%d today=%d ongoing=%d", stats.TotalBookings, len(stats.TodaysBookings), len(stats.OngoingBookings))
	return stats, nil
}

// isOngoing: the rental window contains now and the trip is still open.
func isOngoing(b entities.Booking, now time.Time) bool {
	if b.Status == entities.BookingStatusCompleted || b.Status == entities.BookingStatusCancelled {
		return false
	}
	if b.StartDate.IsZero() || b.EndDate.IsZero() {
		return false
	}
	return !now.Before(b.StartDate.Time) && !now.After(b.EndDate.Time)
}

func (u *DashboardUseCase) withUserNames(ctx context.Context, s entities.Session, list []entities.Booking) ([]entities.Booking, error) {
	out := make([]entities.Booking, len(list))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichWorkers)
	for i, b := range list {
		i, b := i, b
		g.Go(func() error {
			usr, err := u.users.GetUser(gctx, s.Token, b.UserID)
			if err != nil {
				return err
			}
			out[i] = b.WithUser(usr)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
