package response

import (
	"okbikes_admin/internal/domain/entities"
)

type VehicleResponse struct {
	ID                 int64  `json:"id"`
	Model              string `json:"model"`
	Brand              string `json:"brand"`
	Category           string `json:"category"`
	Image              string `json:"image,omitempty"`
	BrandID            int64  `json:"brand_id,omitempty"`
	CategoryID         int64  `json:"category_id,omitempty"`
	ModelID            int64  `json:"model_id,omitempty"`
	StoreID            int64  `json:"store_id,omitempty"`
	RegistrationNumber string `json:"registration_number"`
	RegistrationYear   string `json:"registration_year,omitempty"`
	ChassisNumber      string `json:"chassis_number,omitempty"`
	EngineNumber       string `json:"engine_number,omitempty"`
	FuelType           string `json:"fuel_type,omitempty"`
	Status             string `json:"status"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:                 v.ID,
		Model:              v.Model,
		Brand:              v.Brand,
		Category:           v.CategoryName,
		Image:              v.Image,
		BrandID:            v.VehicleBrandID,
		CategoryID:         v.CategoryID,
		ModelID:            v.VehicleModelID,
		StoreID:            v.StoreID,
		RegistrationNumber: v.VehicleRegistrationNumber,
		RegistrationYear:   v.RegistrationYear.String(),
		ChassisNumber:      v.ChassisNumber,
		EngineNumber:       v.EngineNumber,
		FuelType:           v.FuelType,
		Status:             string(v.VehicleStatus),
	}
}

type VehiclePageResponse struct {
	Vehicles      []VehicleResponse `json:"vehicles"`
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	TotalPages    int               `json:"total_pages"`
	TotalElements int64             `json:"total_elements"`
}

// FromVehiclePage reports the page 1-based, as it was requested.
func FromVehiclePage(p entities.Page[entities.Vehicle]) VehiclePageResponse {
	res := VehiclePageResponse{
		Vehicles:      make([]VehicleResponse, 0, len(p.Content)),
		Page:          p.Number + 1,
		Size:          p.Size,
		TotalPages:    p.TotalPages,
		TotalElements: p.TotalElements,
	}
	for _, v := range p.Content {
		res.Vehicles = append(res.Vehicles, FromVehicle(v))
	}
	return res
}

type VehicleStatusResponse struct {
	VehicleID int64  `json:"vehicle_id"`
	Status    string `json:"status"`
}

type CatalogEntryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FromCatalog names each entry by Name, falling back to ModelName for models.
func FromCatalog(entries []entities.CatalogEntry) []CatalogEntryResponse {
	out := make([]CatalogEntryResponse, 0, len(entries))
	for _, e := range entries {
		name := e.Name
		if name == "" {
			name = e.ModelName
		}
		out = append(out, CatalogEntryResponse{ID: e.ID, Name: name})
	}
	return out
}
