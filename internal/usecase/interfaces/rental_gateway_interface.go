package interfaces

import (
	"context"
	"okbikes_admin/internal/domain/entities"
)

// The rental REST API is split by concern. Every authenticated call takes the
// bearer token of the caller's session; there is no process-wide token.

// IAuthGateway covers manager login and logout.
type IAuthGateway interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
}

// IBookingGateway covers booking reads and the workflow mutations.
type IBookingGateway interface {
	ListManagerBookings(ctx context.Context, token string) ([]entities.Booking, error)
	ListAllBookings(ctx context.Context, token string) ([]entities.Booking, error)
	GetCombined(ctx context.Context, token string, bookingID int64) (entities.BookingDetail, error)
	CancelBooking(ctx context.Context, token string, bookingID int64) error
	AcceptBooking(ctx context.Context, token string, bookingID int64) error
	CompleteTrip(ctx context.Context, token string, bookingID int64) error
	UpdateStatus(ctx context.Context, token string, bookingID int64, status entities.BookingStatus) error
	UpdateBooking(ctx context.Context, token string, bookingID int64, update entities.BookingUpdate) error
	VerifyDocument(ctx context.Context, token string, userID int64, kind entities.DocumentKind, status entities.DocumentStatus) error
}

type IUserGateway interface {
	GetUser(ctx context.Context, token string, userID int64) (entities.User, error)
	ListUsers(ctx context.Context, token string, q entities.PageQuery) (entities.Page[entities.User], error)
}

// IFleetGateway covers the store vehicles and the vehicle form catalog.
type IFleetGateway interface {
	ListStoreVehicles(ctx context.Context, token string, q entities.PageQuery) (entities.Page[entities.Vehicle], error)
	ListVehicles(ctx context.Context, token string) (entities.Page[entities.Vehicle], error)
	CreateVehicle(ctx context.Context, token string, form entities.VehicleForm) error
	UpdateVehicle(ctx context.Context, token string, vehicleID int64, form entities.VehicleForm) error
	DeleteVehicle(ctx context.Context, token string, vehicleID int64) error
	SetVehicleStatus(ctx context.Context, token string, vehicleID int64, status entities.VehicleStatus) error
	ListBrands(ctx context.Context, token string) ([]entities.CatalogEntry, error)
	ListModelsByBrand(ctx context.Context, token string, brandID int64) ([]entities.CatalogEntry, error)
	ListCategories(ctx context.Context, token string) ([]entities.CatalogEntry, error)
	ListStores(ctx context.Context, token string) ([]entities.CatalogEntry, error)
}
