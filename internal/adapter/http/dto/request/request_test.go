package request

import (
	"errors"
	"okbikes_admin/internal/domain/entities"
	"testing"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestChargeLinePatchRequest_Validate(t *testing.T) {
	if err := (ChargeLinePatchRequest{}).Validate(); !errors.Is(err, ErrEmptyChargePatch) {
		t.Fatalf("expected ErrEmptyChargePatch, got %v", err)
	}
	if err := (ChargeLinePatchRequest{Amount: floatPtr(0)}).Validate(); err != nil {
		t.Fatalf("zero amount must be accepted: %v", err)
	}
	if err := (ChargeLinePatchRequest{Type: strPtr("Damage")}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (ChargeLinePatchRequest{Type: strPtr("Parking")}).Validate(); err == nil {
		t.Fatalf("expected unknown charge type to fail")
	}

	ct, ok := ChargeLinePatchRequest{Type: strPtr("Challan")}.ChargeType()
	if !ok || ct != entities.ChargeTypeChallan {
		t.Fatalf("unexpected charge type %q %v", ct, ok)
	}
}

func TestDocumentDecisionRequest(t *testing.T) {
	r := DocumentDecisionRequest{Decision: " approved "}
	if err := r.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Status() != entities.DocumentApproved {
		t.Fatalf("expected APPROVED, got %q", r.Status())
	}
	if err := (DocumentDecisionRequest{Decision: "PENDING"}).Validate(); err == nil {
		t.Fatalf("PENDING is not a decision")
	}
}

func TestStatusChangeRequest_Validate(t *testing.T) {
	for _, s := range []string{"CONFIRMED", "BOOKING_ACCEPTED", "COMPLETED", "CANCELLED"} {
		if err := (StatusChangeRequest{Status: s}).Validate(); err != nil {
			t.Fatalf("%s should be settable: %v", s, err)
		}
	}
	if err := (StatusChangeRequest{Status: "PENDING"}).Validate(); err == nil {
		t.Fatalf("PENDING should not be settable")
	}
}

func TestVehicleFormRequest(t *testing.T) {
	r := VehicleFormRequest{VehicleBrandID: "3", RegistrationYear: "2022", VehicleStatus: "AVAILABLE", ChassisNumber: " CH1 "}
	if err := r.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	form := r.ToForm()
	if form.ChassisNumber != "CH1" || form.VehicleStatus != entities.VehicleAvailable || form.Files == nil {
		t.Fatalf("unexpected form: %+v", form)
	}

	if err := (VehicleFormRequest{RegistrationYear: "22"}).Validate(); err == nil {
		t.Fatalf("expected short year to fail")
	}
	if err := (VehicleFormRequest{VehicleBrandID: "honda"}).Validate(); err == nil {
		t.Fatalf("expected non-numeric brand id to fail")
	}
	if err := (VehicleFormRequest{VehicleStatus: "PARKED"}).Validate(); err == nil {
		t.Fatalf("expected unknown status to fail")
	}
}

func TestLoginRequest_Normalize(t *testing.T) {
	r := LoginRequest{Email: "  manager@okbikes.in ", Password: " pw "}.Normalize()
	if r.Email != "manager@okbikes.in" || r.Password != " pw " {
		t.Fatalf("unexpected normalize result: %+v", r)
	}
}
