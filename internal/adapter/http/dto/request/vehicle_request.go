package request

import (
	"okbikes_admin/internal/domain/entities"
	"strings"
)

// VehicleFormRequest is the non-file part of the vehicle multipart form.
// Files are read by the handler.
type VehicleFormRequest struct {
	VehicleBrandID            string `form:"vehicleBrandId" validate:"omitempty,numeric"`
	VehicleCategoryID         string `form:"vehicleCategoryId" validate:"omitempty,numeric"`
	VehicleModelID            string `form:"vehicleModelId" validate:"omitempty,numeric"`
	StoreID                   string `form:"storeId" validate:"omitempty,numeric"`
	VehicleRegistrationNumber string `form:"vehicleRegistrationNumber"`
	RegistrationYear          string `form:"registrationYear" validate:"omitempty,numeric,len=4"`
	ChassisNumber             string `form:"chassisNumber"`
	EngineNumber              string `form:"engineNumber"`
	FuelType                  string `form:"fuelType"`
	VehicleStatus             string `form:"vehicleStatus" validate:"omitempty,vehicle_status"`
}

func (r VehicleFormRequest) Validate() error {
	return Validate.Struct(r)
}

func (r VehicleFormRequest) ToForm() entities.VehicleForm {
	return entities.VehicleForm{
		VehicleBrandID:            strings.TrimSpace(r.VehicleBrandID),
		VehicleCategoryID:         strings.TrimSpace(r.VehicleCategoryID),
		VehicleModelID:            strings.TrimSpace(r.VehicleModelID),
		StoreID:                   strings.TrimSpace(r.StoreID),
		VehicleRegistrationNumber: strings.TrimSpace(r.VehicleRegistrationNumber),
		RegistrationYear:          strings.TrimSpace(r.RegistrationYear),
		ChassisNumber:             strings.TrimSpace(r.ChassisNumber),
		EngineNumber:              strings.TrimSpace(r.EngineNumber),
		FuelType:                  strings.TrimSpace(r.FuelType),
		VehicleStatus:             entities.VehicleStatus(strings.TrimSpace(r.VehicleStatus)),
		Files:                     map[entities.VehicleFileField]entities.FileUpload{},
	}
}

type ToggleVehicleStatusRequest struct {
	CurrentStatus string `json:"current_status" binding:"required" validate:"required,vehicle_status"`
}

func (r ToggleVehicleStatusRequest) Validate() error {
	return Validate.Struct(r)
}
