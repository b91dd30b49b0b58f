package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"okbikes_admin/internal/domain/entities"
	mock_interfaces "okbikes_admin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func sum(vals ...float64) float64 {
	total := 0.0
	for _, v := range vals {
		total += v
	}
	return total
}

func TestComputeTotals(t *testing.T) {
	t.Run("package only", func(t *testing.T) {
		got := ComputeTotals(500, nil, 0, nil, nil)
		if fmt.Sprintf("%.2f", got.GST) != "90.00" || fmt.Sprintf("%.2f", got.ConvenienceFee) != "2.00" || fmt.Sprintf("%.2f", got.Subtotal) != "592.00" {
			t.Fatalf("unexpected totals %+v", got)
		}
		if got.GrandTotal != got.Subtotal {
			t.Fatalf("expected grand total = subtotal, got %+v", got)
		}
	})

	t.Run("every component", func(t *testing.T) {
		lines := []entities.ChargeLine{{Type: entities.ChargeTypeDamage, Amount: 10.005}, {Type: entities.ChargeTypeChallan, Amount: 0.335}}
		challans := []entities.ChargeRecord{{Description: "Signal jump", Amount: 500}}
		damages := []entities.ChargeRecord{{Description: "Mirror", Amount: 120.5}, {Description: "Scratch", Amount: 0.125}}
		got := ComputeTotals(333.33, lines, 0, challans, damages)

		p := 333.33
		sub := p + p*0.18 + 2.00
		want := sub + sum(10.005, 0.335) + 0 + sum(500) + sum(120.5, 0.125)
		if got.GrandTotal != want {
			t.Fatalf("expected %v got %v", want, got.GrandTotal)
		}
		if got.Subtotal != sub {
			t.Fatalf("expected subtotal %v got %v", sub, got.Subtotal)
		}
	})
}

func TestDurationText(t *testing.T) {
	at := func(s string) time.Time {
		ts, err := entities.ParseTimestamp(s)
		if err != nil {
			t.Fatalf("parse %s: %v", s, err)
		}
		return ts.Time
	}
	cases := []struct {
		start, end string
		want       string
	}{
		{"2024-01-01T10:00:00", "2024-01-02T14:30:00", "1 day 4 hours 30 minutes"},
		{"2024-01-01T10:00:00", "2024-01-03T10:00:00", "2 days 0 hours 0 minutes"},
		{"2024-01-01T10:00:00", "2024-01-01T11:01:00", "1 hour 1 minute"},
		{"2024-01-01T10:00:00", "2024-01-01T10:45:00", "45 minutes"},
		{"2024-01-01T10:00:00", "2024-01-01T10:00:30", ""},
		{"2024-01-02T14:30:00", "2024-01-01T10:00:00", "1 day 4 hours 30 minutes"},
		{"2024-01-01T10:00:00.123", "2024-01-02T14:30:00", "1 day 4 hours 29 minutes"},
	}
	for _, tc := range cases {
		t.Run(tc.start+" "+tc.end, func(t *testing.T) {
			if got := DurationText(at(tc.start), at(tc.end)); got != tc.want {
				t.Fatalf("expected %q got %q", tc.want, got)
			}
		})
	}
}

func TestBuildInvoice(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		inv := BuildInvoice(InvoiceInput{Booking: entities.Booking{ID: 42, UserName: "Asha"}})
		if inv.Number != "OKB-42" || inv.Phone != DefaultPhone || inv.PaymentMode != DefaultPaymentMode ||
			inv.VehicleNumber != DefaultVehicleNumber || inv.PackageName != DefaultPackageName {
			t.Fatalf("unexpected defaults %+v", inv)
		}
		if len(inv.Terms) != 5 {
			t.Fatalf("expected 5 terms, got %d", len(inv.Terms))
		}
	})

	t.Run("from booking", func(t *testing.T) {
		b := sampleListEntry(entities.BookingStatusCompleted, sampleStart).
			WithDetail(sampleDetail()).
			WithUser(entities.User{Name: "Asha", PhoneNumber: "+91 90000-00000"})
		inv := BuildInvoice(InvoiceInput{
			Booking:     b,
			ChargeLines: []entities.ChargeLine{{Type: entities.ChargeTypeDamage, Amount: 150}},
			Challans:    b.Challans,
		})
		if inv.Phone != "+91 90000-00000" || inv.VehicleNumber != "KA01AB1234" || inv.PackageName != "Daily" || inv.Deposit != 1000 {
			t.Fatalf("unexpected invoice %+v", inv)
		}
		if inv.Duration != "1 day 4 hours 30 minutes" {
			t.Fatalf("unexpected duration %q", inv.Duration)
		}
		if fmt.Sprintf("%.2f", inv.Totals.GrandTotal) != "1242.00" {
			t.Fatalf("unexpected total %v", inv.Totals.GrandTotal)
		}
	})
}

func TestInvoiceUseCase(t *testing.T) {
	t.Run("not completed", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.open(t, entities.BookingStatusConfirmed, entities.User{ID: 7})
		uc := NewInvoiceUseCase(f.uc, nil)
		if _, err := uc.Invoice(testSession, 12); !errors.Is(err, ErrInvoiceUnavailable) {
			t.Fatalf("expected ErrInvoiceUnavailable, got %v", err)
		}
	})

	t.Run("view not open", func(t *testing.T) {
		uc := NewInvoiceUseCase(NewBookingWorkflowUseCase(nil, nil, nil), nil)
		if _, err := uc.Invoice(testSession, 12); !errors.Is(err, ErrViewNotOpen) {
			t.Fatalf("expected ErrViewNotOpen, got %v", err)
		}
	})

	t.Run("after completion uses current lines", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.open(t, entities.BookingStatusAccepted, entities.User{ID: 7, Name: "Asha"})
		f.uc.SetChargeAmount(testSession, 12, 1, 60)
		f.uc.ChangeStatus(testSession, 12, entities.BookingStatusCompleted)
		f.bookings.EXPECT().CompleteTrip(gomock.Any(), "tok", int64(12)).Return(nil)
		f.notifier.EXPECT().Publish("s-1", gomock.Any())
		if _, err := f.uc.SubmitStatusChange(context.Background(), testSession, 12); err != nil {
			t.Fatalf("submit: %v", err)
		}

		renderer := mock_interfaces.NewMockIInvoiceRenderer(gomock.NewController(t))
		uc := NewInvoiceUseCase(f.uc, renderer)
		uc.now = func() time.Time { return time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC) }
		renderer.EXPECT().RenderPDF(gomock.Any()).DoAndReturn(func(inv entities.Invoice) ([]byte, error) {
			if inv.Number != "OKB-12" || inv.BilledTo != "Asha" {
				t.Fatalf("unexpected invoice %+v", inv)
			}
			return []byte("%PDF-1.3"), nil
		})

		pdf, inv, err := uc.InvoicePDF(testSession, 12)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(pdf) != "%PDF-1.3" {
			t.Fatalf("unexpected pdf bytes")
		}
		// 592 + lines (150 + 60 + 25.5) + challan 500
		if want := sum(150, 60, 25.5); inv.Totals.ChargeLinesTotal != want || inv.Totals.ChallansTotal != 500 {
			t.Fatalf("unexpected totals %+v", inv.Totals)
		}
	})
}
