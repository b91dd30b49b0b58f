package request

import (
	"okbikes_admin/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

// Validate checks request payloads after binding.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("charge_type", func(fl validator.FieldLevel) bool {
		return entities.ChargeType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("doc_decision", func(fl validator.FieldLevel) bool {
		return entities.DocumentStatus(fl.Field().String()).IsDecision()
	})
	_ = v.RegisterValidation("settable_status", func(fl validator.FieldLevel) bool {
		return entities.BookingStatus(fl.Field().String()).Settable()
	})
	_ = v.RegisterValidation("vehicle_status", func(fl validator.FieldLevel) bool {
		switch entities.VehicleStatus(fl.Field().String()) {
		case entities.VehicleAvailable, entities.VehicleDisabled, entities.VehicleBooked:
			return true
		}
		return false
	})
	return v
}
