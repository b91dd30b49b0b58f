package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase/interfaces"
	mock_interfaces "okbikes_admin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestFleetUseCase_ListVehicles(t *testing.T) {
	t.Run("invalid page", func(t *testing.T) {
		_, err := NewFleetUseCase(nil).ListVehicles(context.Background(), testSession, VehicleQuery{Page: 0})
		if !errors.Is(err, ErrInvalidVehiclePage) {
			t.Fatalf("expected ErrInvalidVehiclePage, got %v", err)
		}
	})

	t.Run("zero-based upstream page and brand search", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fleet := mock_interfaces.NewMockIFleetGateway(ctrl)
		fleet.EXPECT().ListStoreVehicles(gomock.Any(), "tok", entities.PageQuery{Page: 1, Size: 7}).Return(entities.Page[entities.Vehicle]{
			Content:    []entities.Vehicle{{ID: 1, Brand: "Honda"}, {ID: 2, Brand: "Bajaj"}, {ID: 3}},
			TotalPages: 4,
		}, nil)

		page, err := NewFleetUseCase(fleet).ListVehicles(context.Background(), testSession, VehicleQuery{Page: 2, Search: "hon"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page.Content) != 1 || page.Content[0].ID != 1 || page.TotalPages != 4 {
			t.Fatalf("unexpected page %+v", page)
		}
	})
}

func TestFleetUseCase_CreateUpdate(t *testing.T) {
	big := entities.FileUpload{Filename: "puc.pdf", Content: bytes.Repeat([]byte("a"), entities.MaxVehicleFileSize+1)}

	t.Run("file too large", func(t *testing.T) {
		form := entities.VehicleForm{Files: map[entities.VehicleFileField]entities.FileUpload{entities.VehicleFilePuc: big}}
		if err := NewFleetUseCase(nil).CreateVehicle(context.Background(), testSession, form); !errors.Is(err, ErrFileTooLarge) {
			t.Fatalf("expected ErrFileTooLarge, got %v", err)
		}
		if err := NewFleetUseCase(nil).UpdateVehicle(context.Background(), testSession, 3, form); !errors.Is(err, ErrFileTooLarge) {
			t.Fatalf("expected ErrFileTooLarge, got %v", err)
		}
	})

	t.Run("forwards form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fleet := mock_interfaces.NewMockIFleetGateway(ctrl)
		form := entities.VehicleForm{VehicleRegistrationNumber: "KA01AB1234"}
		fleet.EXPECT().CreateVehicle(gomock.Any(), "tok", form).Return(nil)
		fleet.EXPECT().UpdateVehicle(gomock.Any(), "tok", int64(3), form).Return(nil)

		uc := NewFleetUseCase(fleet)
		if err := uc.CreateVehicle(context.Background(), testSession, form); err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := uc.UpdateVehicle(context.Background(), testSession, 3, form); err != nil {
			t.Fatalf("update: %v", err)
		}
		if err := uc.UpdateVehicle(context.Background(), testSession, 0, form); !errors.Is(err, ErrInvalidVehicleID) {
			t.Fatalf("expected ErrInvalidVehicleID, got %v", err)
		}
	})
}

func TestFleetUseCase_ToggleVehicleStatus(t *testing.T) {
	t.Run("booked refused locally", func(t *testing.T) {
		_, err := NewFleetUseCase(nil).ToggleVehicleStatus(context.Background(), testSession, 3, entities.VehicleBooked)
		if !errors.Is(err, ErrVehicleBooked) {
			t.Fatalf("expected ErrVehicleBooked, got %v", err)
		}
	})

	cases := []struct {
		from, to entities.VehicleStatus
	}{
		{entities.VehicleAvailable, entities.VehicleDisabled},
		{entities.VehicleDisabled, entities.VehicleAvailable},
		{"AVILABLE", entities.VehicleAvailable},
	}
	for _, tc := range cases {
		t.Run(string(tc.from), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fleet := mock_interfaces.NewMockIFleetGateway(ctrl)
			fleet.EXPECT().SetVehicleStatus(gomock.Any(), "tok", int64(3), tc.to).Return(nil)

			got, err := NewFleetUseCase(fleet).ToggleVehicleStatus(context.Background(), testSession, 3, tc.from)
			if err != nil || got != tc.to {
				t.Fatalf("expected %s, got %s %v", tc.to, got, err)
			}
		})
	}

	t.Run("upstream 400 means booked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fleet := mock_interfaces.NewMockIFleetGateway(ctrl)
		fleet.EXPECT().SetVehicleStatus(gomock.Any(), "tok", int64(3), entities.VehicleDisabled).Return(interfaces.ErrUpstreamBadRequest)

		got, err := NewFleetUseCase(fleet).ToggleVehicleStatus(context.Background(), testSession, 3, entities.VehicleAvailable)
		if !errors.Is(err, ErrVehicleBooked) || got != entities.VehicleAvailable {
			t.Fatalf("expected ErrVehicleBooked keeping AVAILABLE, got %s %v", got, err)
		}
	})
}

func TestFleetUseCase_Catalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	fleet := mock_interfaces.NewMockIFleetGateway(ctrl)
	uc := NewFleetUseCase(fleet)

	if _, err := uc.ModelsByBrand(context.Background(), testSession, 0); !errors.Is(err, ErrInvalidBrandID) {
		t.Fatalf("expected ErrInvalidBrandID, got %v", err)
	}

	fleet.EXPECT().ListModelsByBrand(gomock.Any(), "tok", int64(4)).Return([]entities.CatalogEntry{{ID: 1, ModelName: "Classic 350"}}, nil)
	models, err := uc.ModelsByBrand(context.Background(), testSession, 4)
	if err != nil || len(models) != 1 || models[0].ModelName != "Classic 350" {
		t.Fatalf("unexpected models %+v %v", models, err)
	}

	fleet.EXPECT().DeleteVehicle(gomock.Any(), "tok", int64(9)).Return(nil)
	if err := uc.DeleteVehicle(context.Background(), testSession, 9); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
