package entities

import "time"

// InvoiceTotals keeps full precision; rounding is a display concern.
type InvoiceTotals struct {
	PackagePrice     float64
	GST              float64
	ConvenienceFee   float64
	ChargeLinesTotal float64
	LateCharges      float64
	ChallansTotal    float64
	DamagesTotal     float64
	Subtotal         float64
	GrandTotal       float64
}

// Invoice is the printable bill of a completed booking.
type Invoice struct {
	Number        string
	Date          time.Time
	BookingID     int64
	BilledTo      string
	Email         string
	Phone         string
	PaymentMode   string
	Deposit       float64
	VehicleModel  string
	VehicleNumber string
	PackageName   string
	Start         time.Time
	End           time.Time
	Duration      string

	ChargeLines []ChargeLine
	Challans    []ChargeRecord
	Damages     []ChargeRecord
	Totals      InvoiceTotals
	Terms       []string
}
