// Package documents renders printable documents.
package documents

import (
	"bytes"
	"fmt"
	"log"
	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
)

var _ interfaces.IInvoiceRenderer = (*InvoiceRenderer)(nil)

const (
	company        = "OkBikes"
	companyAddress = "Bengaluru, Karnataka, India"
	companyEmail   = "support@okbikes.in"
	dateLayout     = "02 Jan 2006"
	dateTimeLayout = "02 Jan 2006, 03:04 PM"
)

// InvoiceRenderer lays out an invoice on one A4 page. The core fonts have no
// rupee glyph, so amounts are printed as "Rs.".
type InvoiceRenderer struct {
	loc *time.Location
}

// NewInvoiceRenderer prints dates in loc (UTC when nil).
func NewInvoiceRenderer(loc *time.Location) *InvoiceRenderer {
	if loc == nil {
		loc = time.UTC
	}
	return &InvoiceRenderer{loc: loc}
}

func (r *InvoiceRenderer) RenderPDF(inv entities.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+inv.Number, false)
	pdf.SetAuthor(company, false)
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	r.header(pdf, inv)
	r.parties(pdf, inv)
	r.rental(pdf, inv)
	r.charges(pdf, inv)
	r.totals(pdf, inv.Totals)
	r.terms(pdf, inv.Terms)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("[invoice][pdf] render failed booking_id=%d err=%v", inv.BookingID, err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *InvoiceRenderer) header(pdf *gofpdf.Fpdf, inv entities.Invoice) {
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(100, 10, company, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "INVOICE", "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(100, 5, companyAddress, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, "No: "+inv.Number, "", 1, "R", false, 0, "")
	pdf.CellFormat(100, 5, companyEmail, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Date: "+r.date(inv.Date, dateLayout), "", 1, "R", false, 0, "")
	pdf.Ln(6)
}

func (r *InvoiceRenderer) parties(pdf *gofpdf.Fpdf, inv entities.Invoice) {
	section(pdf, "Billed To")
	pdf.SetFont("Helvetica", "", 11)
	line(pdf, "Name", inv.BilledTo)
	line(pdf, "Email", inv.Email)
	line(pdf, "Phone", inv.Phone)
	line(pdf, "Payment Mode", inv.PaymentMode)
	line(pdf, "Deposit", money(inv.Deposit))
	pdf.Ln(4)
}

func (r *InvoiceRenderer) rental(pdf *gofpdf.Fpdf, inv entities.Invoice) {
	section(pdf, "Rental Details")
	pdf.SetFont("Helvetica", "", 11)
	line(pdf, "Booking", fmt.Sprintf("#%d", inv.BookingID))
	line(pdf, "Vehicle", inv.VehicleModel)
	line(pdf, "Vehicle Number", inv.VehicleNumber)
	line(pdf, "Package", inv.PackageName)
	line(pdf, "Start", r.date(inv.Start, dateTimeLayout))
	line(pdf, "End", r.date(inv.End, dateTimeLayout))
	line(pdf, "Duration", inv.Duration)
	pdf.Ln(4)
}

func (r *InvoiceRenderer) charges(pdf *gofpdf.Fpdf, inv entities.Invoice) {
	section(pdf, "Charges")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(130, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(0, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	row(pdf, inv.PackageName, inv.Totals.PackagePrice)
	row(pdf, "GST (18%)", inv.Totals.GST)
	row(pdf, "Convenience Fee", inv.Totals.ConvenienceFee)
	for _, l := range inv.ChargeLines {
		row(pdf, chargeLabel(l.Type), l.Amount)
	}
	if inv.Totals.LateCharges != 0 {
		row(pdf, "Late Charges", inv.Totals.LateCharges)
	}
	for _, c := range inv.Challans {
		row(pdf, "Challan: "+orDash(c.Description), c.Amount)
	}
	for _, d := range inv.Damages {
		row(pdf, "Damage: "+orDash(d.Description), d.Amount)
	}
	pdf.Ln(2)
}

func (r *InvoiceRenderer) totals(pdf *gofpdf.Fpdf, t entities.InvoiceTotals) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(130, 7, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(0, 7, money(t.Subtotal), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(130, 8, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(0, 8, money(t.GrandTotal), "T", 1, "R", false, 0, "")
	pdf.Ln(6)
}

func (r *InvoiceRenderer) terms(pdf *gofpdf.Fpdf, terms []string) {
	if len(terms) == 0 {
		return
	}
	section(pdf, "Terms & Conditions")
	pdf.SetFont("Helvetica", "", 9)
	for i, t := range terms {
		pdf.MultiCell(0, 5, fmt.Sprintf("%d. %s", i+1, t), "", "L", false)
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 5, "Thank you for riding with "+company+".", "", 1, "C", false, 0, "")
}

func (r *InvoiceRenderer) date(t time.Time, layout string) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(r.loc).Format(layout)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func line(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(40, 6, label+":", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, orDash(value), "", 1, "L", false, 0, "")
}

func row(pdf *gofpdf.Fpdf, label string, amount float64) {
	pdf.CellFormat(130, 7, label, "1", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, money(amount), "1", 1, "R", false, 0, "")
}

func chargeLabel(t entities.ChargeType) string {
	s := string(t)
	if s == "" {
		return "Additional Charge"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func money(v float64) string {
	return fmt.Sprintf("Rs. %.2f", v)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
