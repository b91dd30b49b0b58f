package response

import (
	"math"
	"okbikes_admin/internal/domain/entities"
	"time"
)

type InvoiceTotalsResponse struct {
	PackagePrice     float64 `json:"package_price"`
	GST              float64 `json:"gst"`
	ConvenienceFee   float64 `json:"convenience_fee"`
	ChargeLinesTotal float64 `json:"charge_lines_total"`
	LateCharges      float64 `json:"late_charges"`
	ChallansTotal    float64 `json:"challans_total"`
	DamagesTotal     float64 `json:"damages_total"`
	Subtotal         float64 `json:"subtotal"`
	GrandTotal       float64 `json:"grand_total"`
}

type InvoiceResponse struct {
	Number        string                 `json:"number"`
	Date          time.Time              `json:"date"`
	BookingID     int64                  `json:"booking_id"`
	BilledTo      string                 `json:"billed_to"`
	Email         string                 `json:"email"`
	Phone         string                 `json:"phone"`
	PaymentMode   string                 `json:"payment_mode"`
	Deposit       float64                `json:"deposit"`
	VehicleModel  string                 `json:"vehicle_model"`
	VehicleNumber string                 `json:"vehicle_number"`
	PackageName   string                 `json:"package_name"`
	Start         time.Time              `json:"start"`
	End           time.Time              `json:"end"`
	Duration      string                 `json:"duration"`
	ChargeLines   []ChargeLineResponse   `json:"charge_lines"`
	Challans      []ChargeRecordResponse `json:"challans"`
	Damages       []ChargeRecordResponse `json:"damages"`
	Totals        InvoiceTotalsResponse  `json:"totals"`
	Terms         []string               `json:"terms"`
}

// FromInvoice rounds the money fields to paise for display. The invoice
// itself keeps full precision.
func FromInvoice(inv entities.Invoice) InvoiceResponse {
	t := inv.Totals
	res := InvoiceResponse{
		Number:        inv.Number,
		Date:          inv.Date,
		BookingID:     inv.BookingID,
		BilledTo:      inv.BilledTo,
		Email:         inv.Email,
		Phone:         inv.Phone,
		PaymentMode:   inv.PaymentMode,
		Deposit:       round2(inv.Deposit),
		VehicleModel:  inv.VehicleModel,
		VehicleNumber: inv.VehicleNumber,
		PackageName:   inv.PackageName,
		Start:         inv.Start,
		End:           inv.End,
		Duration:      inv.Duration,
		ChargeLines:   make([]ChargeLineResponse, 0, len(inv.ChargeLines)),
		Challans:      fromRecords(inv.Challans),
		Damages:       fromRecords(inv.Damages),
		Totals: InvoiceTotalsResponse{
			PackagePrice:     round2(t.PackagePrice),
			GST:              round2(t.GST),
			ConvenienceFee:   round2(t.ConvenienceFee),
			ChargeLinesTotal: round2(t.ChargeLinesTotal),
			LateCharges:      round2(t.LateCharges),
			ChallansTotal:    round2(t.ChallansTotal),
			DamagesTotal:     round2(t.DamagesTotal),
			Subtotal:         round2(t.Subtotal),
			GrandTotal:       round2(t.GrandTotal),
		},
		Terms: inv.Terms,
	}
	for i, l := range inv.ChargeLines {
		res.ChargeLines = append(res.ChargeLines, ChargeLineResponse{Index: i, Type: string(l.Type), Amount: l.Amount})
	}
	return res
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
