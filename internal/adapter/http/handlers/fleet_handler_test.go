package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"okbikes_admin/internal/adapter/http/handlers/mocks"
	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase"
	"okbikes_admin/internal/usecase/interfaces"

	"go.uber.org/mock/gomock"
)

func TestFleetHandler(t *testing.T) {
	setup := func(t *testing.T) (http.Handler, *mocks.MockIFleetUseCase) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		r, v1, _ := guardedRouter(t, ctrl)
		uc := mocks.NewMockIFleetUseCase(ctrl)
		h := NewFleetHandler(uc)
		v1.GET("/vehicles", h.ListVehicles)
		v1.POST("/vehicles", h.CreateVehicle)
		v1.PATCH("/vehicles/:id/status", h.ToggleVehicleStatus)
		v1.GET("/catalog/brands", h.Brands)
		v1.GET("/catalog/brands/:id/models", h.ModelsByBrand)
		return r, uc
	}

	t.Run("list passes page and search", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().ListVehicles(gomock.Any(), testSession, usecase.VehicleQuery{Page: 2, Size: usecase.VehiclesPageSize, Search: "honda"}).
			Return(entities.Page[entities.Vehicle]{Content: []entities.Vehicle{{ID: 1, Brand: "Honda"}}, TotalPages: 3, Number: 1}, nil)

		w := doJSON(r, http.MethodGet, "/v1/vehicles?page=2&search=%20honda%20", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"page":2`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("list with a bad page", func(t *testing.T) {
		r, _ := setup(t)
		w := doJSON(r, http.MethodGet, "/v1/vehicles?page=x", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("toggle booked bike", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().ToggleVehicleStatus(gomock.Any(), testSession, int64(4), entities.VehicleBooked).Return(entities.VehicleBooked, usecase.ErrVehicleBooked)

		w := doJSON(r, http.MethodPatch, "/v1/vehicles/4/status", `{"current_status":"BOOKED"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("toggle", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().ToggleVehicleStatus(gomock.Any(), testSession, int64(4), entities.VehicleAvailable).Return(entities.VehicleDisabled, nil)

		w := doJSON(r, http.MethodPatch, "/v1/vehicles/4/status", `{"current_status":"AVAILABLE"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"DISABLED"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("toggle with unknown status", func(t *testing.T) {
		r, _ := setup(t)
		w := doJSON(r, http.MethodPatch, "/v1/vehicles/4/status", `{"current_status":"LOST"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("brands unreachable", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Brands(gomock.Any(), testSession).Return(nil, interfaces.ErrUpstreamUnavailable)

		w := doJSON(r, http.MethodGet, "/v1/catalog/brands", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("models by brand", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().ModelsByBrand(gomock.Any(), testSession, int64(2)).Return([]entities.CatalogEntry{{ID: 9, Name: "Activa"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/catalog/brands/2/models", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Activa") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("create with an oversized file", func(t *testing.T) {
		r, _ := setup(t)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		_ = mw.WriteField("vehicleRegistrationNumber", "KA01AB1234")
		fw, _ := mw.CreateFormFile(string(entities.VehicleFileFields()[0]), "rc.jpg")
		_, _ = fw.Write(bytes.Repeat([]byte{'x'}, entities.MaxVehicleFileSize+1))
		_ = mw.Close()

		w := do(r, http.MethodPost, "/v1/vehicles", &buf, mw.FormDataContentType())
		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d: %s", w.Code, w.Body.String())
		}
	})
}
