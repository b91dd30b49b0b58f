package entities

import "encoding/json"

type VehicleStatus string

const (
	VehicleAvailable VehicleStatus = "AVAILABLE"
	VehicleDisabled  VehicleStatus = "DISABLED"
	VehicleBooked    VehicleStatus = "BOOKED"
)

// Toggled returns the status a manager toggle moves to. BOOKED has no toggle.
func (s VehicleStatus) Toggled() (VehicleStatus, bool) {
	switch s {
	case VehicleBooked:
		return s, false
	case VehicleAvailable:
		return VehicleDisabled, true
	default:
		return VehicleAvailable, true
	}
}

// Vehicle is a bike in the store fleet. The combined booking payload only
// fills id, model, image and registration number.
type Vehicle struct {
	ID                        int64         `json:"id"`
	Model                     string        `json:"model,omitempty"`
	Brand                     string        `json:"brand,omitempty"`
	CategoryName              string        `json:"categoryName,omitempty"`
	Image                     string        `json:"image,omitempty"`
	VehicleBrandID            int64         `json:"vehicleBrandId,omitempty"`
	CategoryID                int64         `json:"categoryId,omitempty"`
	VehicleModelID            int64         `json:"vehicleModelId,omitempty"`
	StoreID                   int64         `json:"storeId,omitempty"`
	VehicleRegistrationNumber string        `json:"vehicleRegistrationNumber,omitempty"`
	RegistrationYear          json.Number   `json:"registrationYear,omitempty"`
	ChassisNumber             string        `json:"chassisNumber,omitempty"`
	EngineNumber              string        `json:"engineNumber,omitempty"`
	FuelType                  string        `json:"fuelType,omitempty"`
	VehicleStatus             VehicleStatus `json:"vehicleStatus,omitempty"`

	// Document files come back in whatever shape the API stores them.
	PucPdfFile       json.RawMessage `json:"pucPdfFile,omitempty"`
	InsurancePdfFile json.RawMessage `json:"insurancePdfFile,omitempty"`
	DocumentPdfFile  json.RawMessage `json:"documentPdfFile,omitempty"`
}

// VehicleFileField names the multipart parts that carry files.
type VehicleFileField string

const (
	VehicleFileImage     VehicleFileField = "image"
	VehicleFilePuc       VehicleFileField = "pucPdfFile"
	VehicleFileInsurance VehicleFileField = "insurancePdfFile"
	VehicleFileDocument  VehicleFileField = "documentPdfFile"
)

func VehicleFileFields() []VehicleFileField {
	return []VehicleFileField{VehicleFileImage, VehicleFilePuc, VehicleFileInsurance, VehicleFileDocument}
}

// MaxVehicleFileSize is the per-file upload cap (3 MB).
const MaxVehicleFileSize = 3 * 1024 * 1024

type FileUpload struct {
	Filename    string
	ContentType string
	Content     []byte
}

// VehicleForm is a create or update submission, sent upstream as multipart.
type VehicleForm struct {
	VehicleBrandID            string
	VehicleCategoryID         string
	VehicleModelID            string
	StoreID                   string
	VehicleRegistrationNumber string
	RegistrationYear          string
	ChassisNumber             string
	EngineNumber              string
	FuelType                  string
	VehicleStatus             VehicleStatus

	Files map[VehicleFileField]FileUpload
}

// Fields returns the non-file parts in a stable order.
func (f VehicleForm) Fields() [][2]string {
	return [][2]string{
		{"vehicleBrandId", f.VehicleBrandID},
		{"vehicleCategoryId", f.VehicleCategoryID},
		{"vehicleModelId", f.VehicleModelID},
		{"storeId", f.StoreID},
		{"vehicleRegistrationNumber", f.VehicleRegistrationNumber},
		{"registrationYear", f.RegistrationYear},
		{"chassisNumber", f.ChassisNumber},
		{"engineNumber", f.EngineNumber},
		{"fuelType", f.FuelType},
		{"vehicleStatus", string(f.VehicleStatus)},
	}
}

// CatalogEntry is a brand, model, category or store option of the vehicle form.
type CatalogEntry struct {
	ID        int64  `json:"id"`
	Name      string `json:"name,omitempty"`
	ModelName string `json:"modelName,omitempty"`
}
