package usecase

import (
	"errors"
	"fmt"
	"log"
	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase/interfaces"
	"strings"
	"time"
)

var ErrInvoiceUnavailable = errors.New("invoice available only for completed bookings")

const (
	GSTRate        = 0.18
	ConvenienceFee = 2.00

	DefaultPhone         = "+91 XXXXX-XXXXX"
	DefaultPaymentMode   = "Cash On Center"
	DefaultVehicleNumber = "Not assigned"
	DefaultPackageName   = "Standard Package"
)

var invoiceTerms = []string{
	"Security deposit will be refunded after the bike is returned in good condition.",
	"Late returns will incur additional charges as per rental agreement.",
	"Fuel charges are not included in the package price.",
	"The renter is responsible for any traffic violations during the rental period.",
	"Damages to the vehicle will be charged as per assessment.",
}

// InvoiceInput is everything an invoice is computed from.
type InvoiceInput struct {
	Booking     entities.Booking
	ChargeLines []entities.ChargeLine
	LateCharges float64
	Challans    []entities.ChargeRecord
	Damages     []entities.ChargeRecord
	IssuedAt    time.Time
}

// ComputeTotals adds up an invoice at full precision.
func ComputeTotals(packagePrice float64, lines []entities.ChargeLine, late float64, challans, damages []entities.ChargeRecord) entities.InvoiceTotals {
	t := entities.InvoiceTotals{
		PackagePrice:     packagePrice,
		GST:              packagePrice * GSTRate,
		ConvenienceFee:   ConvenienceFee,
		ChargeLinesTotal: entities.SumCharges(lines),
		LateCharges:      late,
		ChallansTotal:    entities.SumRecords(challans),
		DamagesTotal:     entities.SumRecords(damages),
	}
	t.Subtotal = t.PackagePrice + t.GST + t.ConvenienceFee
	t.GrandTotal = t.Subtotal + t.ChargeLinesTotal + t.LateCharges + t.ChallansTotal + t.DamagesTotal
	return t
}

// BuildInvoice is a pure function of its input.
func BuildInvoice(in InvoiceInput) entities.Invoice {
	b := in.Booking
	pkgName := ""
	deposit := 0.0
	if b.VehiclePackage != nil {
		pkgName = b.VehiclePackage.Name
		deposit = b.VehiclePackage.Deposit
	}

	lines := make([]entities.ChargeLine, len(in.ChargeLines))
	copy(lines, in.ChargeLines)

	return entities.Invoice{
		Number:        fmt.Sprintf("OKB-%d", b.ID),
		Date:          in.IssuedAt,
		BookingID:     b.ID,
		BilledTo:      b.UserName,
		Email:         b.UserEmail,
		Phone:         orDefault(b.UserPhone, DefaultPhone),
		PaymentMode:   orDefault(b.PaymentMode, DefaultPaymentMode),
		Deposit:       deposit,
		VehicleModel:  b.VehicleModel(),
		VehicleNumber: orDefault(b.VehicleNumber(), DefaultVehicleNumber),
		PackageName:   orDefault(pkgName, DefaultPackageName),
		Start:         b.StartDate.Time,
		End:           b.EndDate.Time,
		Duration:      DurationText(b.StartDate.Time, b.EndDate.Time),
		ChargeLines:   lines,
		Challans:      in.Challans,
		Damages:       in.Damages,
		Totals:        ComputeTotals(b.PackagePrice(), in.ChargeLines, in.LateCharges, in.Challans, in.Damages),
		Terms:         append([]string(nil), invoiceTerms...),
	}
}

// DurationText renders the rental length as "1 day 4 hours 30 minutes". A unit
// is shown when it, or any larger unit, is non-zero.
func DurationText(start, end time.Time) string {
	d := end.Sub(start)
	if d < 0 {
		d = -d
	}
	days := int64(d / (24 * time.Hour))
	hours := int64(d%(24*time.Hour)) / int64(time.Hour)
	minutes := int64(d%time.Hour) / int64(time.Minute)

	var parts []string
	if days > 0 {
		parts = append(parts, plural(days, "day"))
	}
	if hours > 0 || days > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if minutes > 0 || hours > 0 || days > 0 {
		parts = append(parts, plural(minutes, "minute"))
	}
	return strings.Join(parts, " ")
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// IInvoiceUseCase bills the booking of an open view.
type IInvoiceUseCase interface {
	Invoice(s entities.Session, bookingID int64) (entities.Invoice, error)
	InvoicePDF(s entities.Session, bookingID int64) ([]byte, entities.Invoice, error)
}

type InvoiceUseCase struct {
	workflow IBookingWorkflowUseCase
	renderer interfaces.IInvoiceRenderer
	now      func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(workflow IBookingWorkflowUseCase, renderer interfaces.IInvoiceRenderer) *InvoiceUseCase {
	return &InvoiceUseCase{workflow: workflow, renderer: renderer, now: time.Now}
}

func (u *InvoiceUseCase) Invoice(s entities.Session, bookingID int64) (entities.Invoice, error) {
	state, err := u.workflow.View(s, bookingID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if !state.InvoiceAvailable() {
		return entities.Invoice{}, ErrInvoiceUnavailable
	}
	return BuildInvoice(InvoiceInput{
		Booking:     state.Booking,
		ChargeLines: state.ChargeLines,
		LateCharges: state.LateCharges,
		Challans:    state.Booking.Challans,
		Damages:     state.Booking.Damages,
		IssuedAt:    u.now().UTC(),
	}), nil
}

func (u *InvoiceUseCase) InvoicePDF(s entities.Session, bookingID int64) ([]byte, entities.Invoice, error) {
	inv, err := u.Invoice(s, bookingID)
	if err != nil {
		return nil, entities.Invoice{}, err
	}
	pdf, err := u.renderer.RenderPDF(inv)
	if err != nil {
		log.Printf("[invoice][usecase] render failed booking_id=%d err=%v", bookingID, err)
		return nil, entities.Invoice{}, err
	}
	log.Printf("[invoice][usecase] rendered booking_id=%d bytes=%d", bookingID, len(pdf))
	return pdf, inv, nil
}
