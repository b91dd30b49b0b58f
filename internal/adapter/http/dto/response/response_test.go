package response

import (
	"encoding/json"
	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase"
	"testing"
	"time"
)

func TestFromViewState(t *testing.T) {
	v := usecase.ViewState{
		Booking: entities.Booking{ID: 12, Status: entities.BookingStatusCompleted},
		User:    entities.User{ID: 7, Name: "Asha", AadharFrontSide: "data:image/png;base64,AAA"},
		ChargeLines: []entities.ChargeLine{
			{Type: entities.ChargeTypeDamage, Amount: 150},
			{Type: entities.ChargeTypeChallan, Amount: 0},
		},
		DocumentStatuses: entities.DocumentStatuses{
			entities.DocumentAadharFront:    entities.DocumentApproved,
			entities.DocumentAadharBack:     entities.DocumentPending,
			entities.DocumentDrivingLicense: entities.DocumentRejected,
		},
		SelectedStatus: entities.BookingStatusCompleted,
		Epoch:          3,
	}

	res := FromViewState(v)
	if !res.InvoiceAvailable || res.Booking.BookingID != 12 || res.User.Name != "Asha" {
		t.Fatalf("unexpected view: %+v", res)
	}
	if len(res.ChargeLines) != 2 || res.ChargeLines[1].Index != 1 || res.ChargeLines[0].Type != "Damage" {
		t.Fatalf("unexpected charge lines: %+v", res.ChargeLines)
	}
	if len(res.Documents) != 3 || res.Documents[0].Kind != "aadharFrontSide" || res.Documents[0].Status != "APPROVED" || res.Documents[0].Image == "" {
		t.Fatalf("unexpected documents: %+v", res.Documents)
	}
	if len(res.SettableStatuses) != 4 {
		t.Fatalf("expected 4 settable statuses, got %v", res.SettableStatuses)
	}
}

func TestFromOutcome_NoticeOnlyWhenPresent(t *testing.T) {
	res := FromOutcome(usecase.Outcome{OK: true})
	if res.Notice != nil {
		t.Fatalf("expected no notice, got %+v", res.Notice)
	}

	res = FromOutcome(usecase.Outcome{Notice: entities.ErrorNotice(12, "Failed to save charges")})
	if res.OK || res.Notice == nil || res.Notice.Level != entities.NoticeError {
		t.Fatalf("unexpected outcome: %+v", res)
	}
}

func TestFromBooking_JSONShape(t *testing.T) {
	start, _ := entities.ParseTimestamp("2024-01-01T10:00:00")
	b := entities.Booking{
		ID:             12,
		StartDate:      start,
		Vehicle:        &entities.Vehicle{ID: 3, Model: "Activa 6G", VehicleRegistrationNumber: "KA01AB1234"},
		VehiclePackage: &entities.VehiclePackage{ID: 9, Name: "Daily", Price: 500},
	}

	raw, err := json.Marshal(FromBooking(b))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	if body["start_date"] != "2024-01-01T10:00:00Z" {
		t.Fatalf("unexpected start_date: %v", body["start_date"])
	}
	if body["end_date"] != nil {
		t.Fatalf("expected null end_date, got %v", body["end_date"])
	}
	if _, ok := body["challans"].([]any); !ok {
		t.Fatalf("expected challans array, got %v", body["challans"])
	}
	vehicle := body["vehicle"].(map[string]any)
	if vehicle["registration_number"] != "KA01AB1234" {
		t.Fatalf("unexpected vehicle: %v", vehicle)
	}
}

func TestFromInvoice_RoundsForDisplay(t *testing.T) {
	inv := entities.Invoice{Totals: entities.InvoiceTotals{GST: 90.0000001, GrandTotal: 617.499}}
	res := FromInvoice(inv)
	if res.Totals.GST != 90 || res.Totals.GrandTotal != 617.5 {
		t.Fatalf("unexpected totals: %+v", res.Totals)
	}
}

func TestFromVehiclePage(t *testing.T) {
	p := entities.Page[entities.Vehicle]{
		Content:    []entities.Vehicle{{ID: 1, Model: "Activa", RegistrationYear: json.Number("2022"), VehicleStatus: entities.VehicleBooked}},
		Number:     1,
		Size:       7,
		TotalPages: 3,
	}
	res := FromVehiclePage(p)
	if res.Page != 2 || res.Vehicles[0].RegistrationYear != "2022" || res.Vehicles[0].Status != "BOOKED" {
		t.Fatalf("unexpected page: %+v", res)
	}
}

func TestFromCatalog(t *testing.T) {
	out := FromCatalog([]entities.CatalogEntry{{ID: 1, Name: "Honda"}, {ID: 5, ModelName: "Activa"}})
	if out[0].Name != "Honda" || out[1].Name != "Activa" {
		t.Fatalf("unexpected catalog: %+v", out)
	}
}

func TestFromSession_HidesToken(t *testing.T) {
	s := entities.Session{ID: "s-1", Token: "secret", CreatedAt: time.Now()}
	raw, _ := json.Marshal(FromSession(s))
	if !json.Valid(raw) {
		t.Fatalf("invalid json")
	}
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	if _, ok := body["token"]; ok {
		t.Fatalf("token must not be serialised")
	}
	if _, ok := body["expires_at"]; ok {
		t.Fatalf("expires_at must be omitted when unknown")
	}
}
