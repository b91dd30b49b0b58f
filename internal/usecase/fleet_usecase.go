package usecase

import (
	"context"
	"errors"
	"log"
	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase/interfaces"
	"strings"
)

var (
	ErrVehicleBooked      = errors.New("bike is booked, you are not able to disable the bike")
	ErrFileTooLarge       = errors.New("file exceeds 3 MB")
	ErrInvalidVehicleID   = errors.New("invalid vehicle id")
	ErrInvalidBrandID     = errors.New("invalid brand id")
	ErrInvalidVehiclePage = errors.New("invalid page")
)

const VehiclesPageSize = 7

// VehicleQuery pages the store vehicles. Page is 1-based; Search matches the
// brand name on the returned page.
type VehicleQuery struct {
	Page   int
	Size   int
	Search string
}

type IFleetUseCase interface {
	ListVehicles(ctx context.Context, s entities.Session, q VehicleQuery) (entities.Page[entities.Vehicle], error)
	CreateVehicle(ctx context.Context, s entities.Session, form entities.VehicleForm) error
	UpdateVehicle(ctx context.Context, s entities.Session, vehicleID int64, form entities.VehicleForm) error
	DeleteVehicle(ctx context.Context, s entities.Session, vehicleID int64) error
	ToggleVehicleStatus(ctx context.Context, s entities.Session, vehicleID int64, current entities.VehicleStatus) (entities.VehicleStatus, error)

	Brands(ctx context.Context, s entities.Session) ([]entities.CatalogEntry, error)
	ModelsByBrand(ctx context.Context, s entities.Session, brandID int64) ([]entities.CatalogEntry, error)
	Categories(ctx context.Context, s entities.Session) ([]entities.CatalogEntry, error)
	Stores(ctx context.Context, s entities.Session) ([]entities.CatalogEntry, error)
}

type FleetUseCase struct {
	fleet interfaces.IFleetGateway
}

var _ IFleetUseCase = (*FleetUseCase)(nil)

func NewFleetUseCase(fleet interfaces.IFleetGateway) *FleetUseCase {
	return &FleetUseCase{fleet: fleet}
}

func (u *FleetUseCase) ListVehicles(ctx context.Context, s entities.Session, q VehicleQuery) (entities.Page[entities.Vehicle], error) {
	if q.Page < 1 {
		return entities.Page[entities.Vehicle]{}, ErrInvalidVehiclePage
	}
	if q.Size <= 0 {
		q.Size = VehiclesPageSize
	}
	page, err := u.fleet.ListStoreVehicles(ctx, s.Token, entities.PageQuery{Page: q.Page - 1, Size: q.Size})
	if err != nil {
		log.Printf("[fleet][usecase] list failed page=%d err=%v", q.Page, err)
		return entities.Page[entities.Vehicle]{}, err
	}
	if search := strings.ToLower(strings.TrimSpace(q.Search)); search != "" {
		filtered := make([]entities.Vehicle, 0, len(page.Content))
		for _, v := range page.Content {
			if v.Brand != "" && strings.Contains(strings.ToLower(v.Brand), search) {
				filtered = append(filtered, v)
			}
		}
		page.Content = filtered
	}
	return page, nil
}

func (u *FleetUseCase) CreateVehicle(ctx context.Context, s entities.Session, form entities.VehicleForm) error {
	if err := checkFileSizes(form); err != nil {
		return err
	}
	log.Printf("[fleet][usecase] create registration=%s files=%d", form.VehicleRegistrationNumber, len(form.Files))
	return u.fleet.CreateVehicle(ctx, s.Token, form)
}

func (u *FleetUseCase) UpdateVehicle(ctx context.Context, s entities.Session, vehicleID int64, form entities.VehicleForm) error {
	if vehicleID <= 0 {
		return ErrInvalidVehicleID
	}
	if err := checkFileSizes(form); err != nil {
		return err
	}
	log.Printf("[fleet][usecase] update vehicle_id=%d files=%d", vehicleID, len(form.Files))
	return u.fleet.UpdateVehicle(ctx, s.Token, vehicleID, form)
}

func checkFileSizes(form entities.VehicleForm) error {
	for field, f := range form.Files {
		if len(f.Content) > entities.MaxVehicleFileSize {
			log.Printf("[fleet][usecase] file too large field=%s size=%d", field, len(f.Content))
			return ErrFileTooLarge
		}
	}
	return nil
}

func (u *FleetUseCase) DeleteVehicle(ctx context.Context, s entities.Session, vehicleID int64) error {
	if vehicleID <= 0 {
		return ErrInvalidVehicleID
	}
	log.Printf("[fleet][usecase] delete vehicle_id=%d", vehicleID)
	return u.fleet.DeleteVehicle(ctx, s.Token, vehicleID)
}

// ToggleVehicleStatus flips AVAILABLE and DISABLED. A booked bike is refused
// here and the API's 400 for a bike booked meanwhile means the same.
func (u *FleetUseCase) ToggleVehicleStatus(ctx context.Context, s entities.Session, vehicleID int64, current entities.VehicleStatus) (entities.VehicleStatus, error) {
	if vehicleID <= 0 {
		return "", ErrInvalidVehicleID
	}
	next, ok := current.Toggled()
	if !ok {
		return current, ErrVehicleBooked
	}
	if err := u.fleet.SetVehicleStatus(ctx, s.Token, vehicleID, next); err != nil {
		log.Printf("[fleet][usecase] status toggle failed vehicle_id=%d to=%s err=%v", vehicleID, next, err)
		if errors.Is(err, interfaces.ErrUpstreamBadRequest) {
			return current, ErrVehicleBooked
		}
		return current, err
	}
	log.Printf("[fleet][usecase] status toggled vehicle_id=%d from=%s to=%s", vehicleID, current, next)
	return next, nil
}

func (u *FleetUseCase) Brands(ctx context.Context, s entities.Session) ([]entities.CatalogEntry, error) {
	return u.fleet.ListBrands(ctx, s.Token)
}

func (u *FleetUseCase) ModelsByBrand(ctx context.Context, s entities.Session, brandID int64) ([]entities.CatalogEntry, error) {
	if brandID <= 0 {
		return nil, ErrInvalidBrandID
	}
	return u.fleet.ListModelsByBrand(ctx, s.Token, brandID)
}

func (u *FleetUseCase) Categories(ctx context.Context, s entities.Session) ([]entities.CatalogEntry, error) {
	return u.fleet.ListCategories(ctx, s.Token)
}

func (u *FleetUseCase) Stores(ctx context.Context, s entities.Session) ([]entities.CatalogEntry, error) {
	return u.fleet.ListStores(ctx, s.Token)
}
