package usecase

import (
	"context"
	"log"
	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase/interfaces"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	BookingsPageSize = 10
	enrichWorkers    = 8
)

// BookingQuery filters the manager booking list. Page is 1-based.
type BookingQuery struct {
	Search string
	Page   int
}

type BookingList struct {
	Bookings   []entities.Booking
	Page       int
	PageSize   int
	TotalPages int
	Total      int
}

// IBookingUseCase lists the bookings of the manager's store.
type IBookingUseCase interface {
	ListBookings(ctx context.Context, s entities.Session, q BookingQuery) (BookingList, error)
	GetBooking(ctx context.Context, s entities.Session, bookingID int64) (entities.Booking, error)
}

type BookingUseCase struct {
	bookings interfaces.IBookingGateway
	users    interfaces.IUserGateway
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(bookings interfaces.IBookingGateway, users interfaces.IUserGateway) *BookingUseCase {
	return &BookingUseCase{bookings: bookings, users: users}
}

func (u *BookingUseCase) ListBookings(ctx context.Context, s entities.Session, q BookingQuery) (BookingList, error) {
	if q.Page < 1 {
		q.Page = 1
	}

	list, err := u.bookings.ListManagerBookings(ctx, s.Token)
	if err != nil {
		log.Printf("[booking][usecase] list failed err=%v", err)
		return BookingList{}, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].ID > list[j].ID })

	enriched, err := u.enrich(ctx, s, list)
	if err != nil {
		log.Printf("[booking][usecase] enrich failed count=%d err=%v", len(list), err)
		return BookingList{}, err
	}

	filtered := filterByVehicleModel(enriched, q.Search)
	total := len(filtered)
	totalPages := (total + BookingsPageSize - 1) / BookingsPageSize

	from := (q.Page - 1) * BookingsPageSize
	to := from + BookingsPageSize
	if from > total {
		from = total
	}
	if to > total {
		to = total
	}

	log.Printf("[booking][usecase] list page=%d search=%q total=%d", q.Page, q.Search, total)
	return BookingList{
		Bookings:   filtered[from:to],
		Page:       q.Page,
		PageSize:   BookingsPageSize,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}

func (u *BookingUseCase) GetBooking(ctx context.Context, s entities.Session, bookingID int64) (entities.Booking, error) {
	if bookingID <= 0 {
		return entities.Booking{}, ErrInvalidBookingID
	}
	b, err := loadStoreBooking(ctx, u.bookings, s.Token, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	user, err := u.users.GetUser(ctx, s.Token, b.UserID)
	if err != nil {
		return entities.Booking{}, err
	}
	return b.WithUser(user), nil
}

// enrich fetches the combined detail and the user of every booking, at most
// enrichWorkers at a time. Order is preserved.
func (u *BookingUseCase) enrich(ctx context.Context, s entities.Session, list []entities.Booking) ([]entities.Booking, error) {
	out := make([]entities.Booking, len(list))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichWorkers)
	for i, b := range list {
		i, b := i, b
		g.Go(func() error {
			detail, err := u.bookings.GetCombined(gctx, s.Token, b.ID)
			if err != nil {
				return err
			}
			user, err := u.users.GetUser(gctx, s.Token, b.UserID)
			if err != nil {
				return err
			}
			out[i] = b.WithDetail(detail).WithUser(user)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func filterByVehicleModel(list []entities.Booking, search string) []entities.Booking {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return list
	}
	out := make([]entities.Booking, 0, len(list))
	for _, b := range list {
		if strings.Contains(strings.ToLower(b.VehicleModel()), search) {
			out = append(out, b)
		}
	}
	return out
}
