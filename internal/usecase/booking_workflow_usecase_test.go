package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase/interfaces"
	mock_interfaces "okbikes_admin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testSession = entities.Session{ID: "s-1", Token: "tok"}

type workflowFixture struct {
	uc       *BookingWorkflowUseCase
	bookings *mock_interfaces.MockIBookingGateway
	users    *mock_interfaces.MockIUserGateway
	notifier *mock_interfaces.MockINotifier
}

func newWorkflowFixture(t *testing.T) workflowFixture {
	ctrl := gomock.NewController(t)
	f := workflowFixture{
		bookings: mock_interfaces.NewMockIBookingGateway(ctrl),
		users:    mock_interfaces.NewMockIUserGateway(ctrl),
		notifier: mock_interfaces.NewMockINotifier(ctrl),
	}
	f.uc = NewBookingWorkflowUseCase(f.bookings, f.users, f.notifier)
	return f
}

const sampleStart = "2024-01-01T10:00:00"

// sampleListEntry is booking 12 as the store manager list reports it.
func sampleListEntry(status entities.BookingStatus, startAt string) entities.Booking {
	start, _ := entities.ParseTimestamp(startAt)
	end, _ := entities.ParseTimestamp("2024-01-02T14:30:00")
	return entities.Booking{
		ID:               12,
		UserID:           7,
		StartDate:        start,
		EndDate:          end,
		TotalAmount:      650,
		AddressType:      "HOME",
		Address:          "12 MG Road",
		DeliverySelected: true,
		Status:           status,
	}
}

// sampleDetail is the combined payload of booking 12. Its booking part only
// carries the charge fields.
func sampleDetail() entities.BookingDetail {
	return entities.BookingDetail{
		Booking: entities.Booking{
			Damage:            150,
			Challan:           0,
			AdditionalCharges: 25.5,
			Challans:          []entities.ChargeRecord{{Description: "Signal jump", Amount: 500}},
		},
		Vehicle:        entities.Vehicle{ID: 3, Model: "Activa 6G", VehicleRegistrationNumber: "KA01AB1234"},
		VehiclePackage: entities.VehiclePackage{ID: 9, Name: "Daily", Price: 500, Deposit: 1000},
	}
}

func sampleStoreList(entry entities.Booking) []entities.Booking {
	return []entities.Booking{{ID: 11, UserID: 99, Status: entities.BookingStatusCompleted}, entry}
}

func (f workflowFixture) open(t *testing.T, status entities.BookingStatus, user entities.User) ViewState {
	t.Helper()
	return f.openEntry(t, sampleListEntry(status, sampleStart), user)
}

func (f workflowFixture) openEntry(t *testing.T, entry entities.Booking, user entities.User) ViewState {
	t.Helper()
	f.bookings.EXPECT().ListManagerBookings(gomock.Any(), "tok").Return(sampleStoreList(entry), nil)
	f.bookings.EXPECT().GetCombined(gomock.Any(), "tok", int64(12)).Return(sampleDetail(), nil)
	f.users.EXPECT().GetUser(gomock.Any(), "tok", int64(7)).Return(user, nil)
	state, err := f.uc.OpenBooking(context.Background(), testSession, 12)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return state
}

func TestBookingWorkflow_OpenBooking(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewBookingWorkflowUseCase(nil, nil, nil)
		_, err := uc.OpenBooking(context.Background(), testSession, 0)
		if !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
	})

	t.Run("seeds charges documents and status", func(t *testing.T) {
		f := newWorkflowFixture(t)
		state := f.open(t, entities.BookingStatusConfirmed, entities.User{ID: 7, Name: "Asha", AadharFrontStatus: entities.DocumentApproved})

		want := []entities.ChargeLine{
			{Type: entities.ChargeTypeDamage, Amount: 150},
			{Type: entities.ChargeTypeChallan, Amount: 0},
			{Type: entities.ChargeTypeAdditional, Amount: 25.5},
		}
		if len(state.ChargeLines) != len(want) {
			t.Fatalf("expected 3 lines, got %+v", state.ChargeLines)
		}
		for i := range want {
			if state.ChargeLines[i] != want[i] {
				t.Fatalf("line %d: expected %+v got %+v", i, want[i], state.ChargeLines[i])
			}
		}
		if state.DocumentStatuses[entities.DocumentAadharFront] != entities.DocumentApproved ||
			state.DocumentStatuses[entities.DocumentAadharBack] != entities.DocumentPending ||
			state.DocumentStatuses[entities.DocumentDrivingLicense] != entities.DocumentPending {
			t.Fatalf("unexpected document statuses %+v", state.DocumentStatuses)
		}
		if state.SelectedStatus != entities.BookingStatusConfirmed || !state.ChargesEditable {
			t.Fatalf("unexpected status/editable %s %v", state.SelectedStatus, state.ChargesEditable)
		}
		if state.Booking.UserName != "Asha" || state.Booking.VehicleNumber() != "KA01AB1234" {
			t.Fatalf("expected enriched booking, got %+v", state.Booking)
		}
	})

	t.Run("missing status defaults to confirmed", func(t *testing.T) {
		f := newWorkflowFixture(t)
		state := f.open(t, "", entities.User{ID: 7})
		if state.SelectedStatus != entities.BookingStatusConfirmed {
			t.Fatalf("expected CONFIRMED, got %s", state.SelectedStatus)
		}
	})

	t.Run("completed booking is read-only", func(t *testing.T) {
		f := newWorkflowFixture(t)
		state := f.open(t, entities.BookingStatusCompleted, entities.User{ID: 7})
		if state.ChargesEditable {
			t.Fatalf("expected locked charges")
		}
		if _, err := f.uc.AddChargeLine(testSession, 12); !errors.Is(err, ErrChargesLocked) {
			t.Fatalf("expected ErrChargesLocked, got %v", err)
		}
	})

	t.Run("combined detail carries only charges", func(t *testing.T) {
		f := newWorkflowFixture(t)
		state := f.open(t, entities.BookingStatusCompleted, entities.User{ID: 7, Name: "Asha"})

		b := state.Booking
		if b.ID != 12 || b.UserID != 7 || b.Status != entities.BookingStatusCompleted {
			t.Fatalf("expected list entry identity, got %+v", b)
		}
		if b.StartDate.Wire() != sampleStart || b.TotalAmount != 650 || b.Address != "12 MG Road" {
			t.Fatalf("expected list entry window and totals, got %+v", b)
		}
		if state.SelectedStatus != entities.BookingStatusCompleted || state.ChargesEditable {
			t.Fatalf("expected completed read-only view, got %s %v", state.SelectedStatus, state.ChargesEditable)
		}
		if b.Damage != 150 || b.AdditionalCharges != 25.5 || b.VehiclePackage == nil || b.VehiclePackage.ID != 9 {
			t.Fatalf("expected charges and package from combined detail, got %+v", b)
		}
	})

	t.Run("booking missing from store list", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.bookings.EXPECT().ListManagerBookings(gomock.Any(), "tok").Return([]entities.Booking{{ID: 11}}, nil)
		f.bookings.EXPECT().GetCombined(gomock.Any(), "tok", int64(12)).Return(sampleDetail(), nil)
		_, err := f.uc.OpenBooking(context.Background(), testSession, 12)
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("upstream error", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.bookings.EXPECT().ListManagerBookings(gomock.Any(), "tok").Return(sampleStoreList(sampleListEntry(entities.BookingStatusConfirmed, sampleStart)), nil).AnyTimes()
		f.bookings.EXPECT().GetCombined(gomock.Any(), "tok", int64(12)).Return(entities.BookingDetail{}, interfaces.ErrUpstreamUnavailable)
		_, err := f.uc.OpenBooking(context.Background(), testSession, 12)
		if !errors.Is(err, interfaces.ErrUpstreamUnavailable) {
			t.Fatalf("expected unavailable, got %v", err)
		}
		if _, err := f.uc.View(testSession, 12); !errors.Is(err, ErrViewNotOpen) {
			t.Fatalf("expected ErrViewNotOpen, got %v", err)
		}
	})
}

func TestBookingWorkflow_ChargeLines(t *testing.T) {
	t.Run("not open", func(t *testing.T) {
		uc := NewBookingWorkflowUseCase(nil, nil, nil)
		if _, err := uc.AddChargeLine(testSession, 12); !errors.Is(err, ErrViewNotOpen) {
			t.Fatalf("expected ErrViewNotOpen, got %v", err)
		}
	})

	t.Run("add set and total", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.open(t, entities.BookingStatusConfirmed, entities.User{ID: 7})

		state, err := f.uc.AddChargeLine(testSession, 12)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if len(state.ChargeLines) != 4 || state.ChargeLines[3] != (entities.ChargeLine{Type: entities.ChargeTypeChallan}) {
			t.Fatalf("expected appended challan line, got %+v", state.ChargeLines)
		}
		if _, err := f.uc.SetChargeType(testSession, 12, 3, entities.ChargeTypeDamage); err != nil {
			t.Fatalf("set type: %v", err)
		}
		if _, err := f.uc.SetChargeAmount(testSession, 12, 3, 0.1); err != nil {
			t.Fatalf("set amount: %v", err)
		}
		state, err = f.uc.SetChargeAmount(testSession, 12, 1, -20)
		if err != nil {
			t.Fatalf("set amount: %v", err)
		}
		if state.ChargeLines[1].Amount != -20 {
			t.Fatalf("expected amount stored as entered, got %v", state.ChargeLines[1].Amount)
		}

		total, err := f.uc.TotalAdditionalCharges(testSession, 12)
		if err != nil {
			t.Fatalf("total: %v", err)
		}
		want := 0.0
		for _, a := range []float64{150, -20, 25.5, 0.1} {
			want += a
		}
		if total != want {
			t.Fatalf("expected %v got %v", want, total)
		}
		state, _ = f.uc.View(testSession, 12)
		if state.TotalAdditionalCharges != want {
			t.Fatalf("snapshot total mismatch %v", state.TotalAdditionalCharges)
		}
	})

	t.Run("invalid index and type", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.open(t, entities.BookingStatusConfirmed, entities.User{ID: 7})

		if _, err := f.uc.SetChargeAmount(testSession, 12, 3, 1); !errors.Is(err, ErrInvalidChargeIndex) {
			t.Fatalf("expected ErrInvalidChargeIndex, got %v", err)
		}
		if _, err := f.uc.RemoveChargeLine(testSession, 12, -1); !errors.Is(err, ErrInvalidChargeIndex) {
			t.Fatalf("expected ErrInvalidChargeIndex, got %v", err)
		}
		if _, err := f.uc.SetChargeType(testSession, 12, 0, "Fuel"); !errors.Is(err, ErrInvalidChargeType) {
			t.Fatalf("expected ErrInvalidChargeType, got %v", err)
		}
	})

	t.Run("remove keeps the last line", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.open(t, entities.BookingStatusConfirmed, entities.User{ID: 7})

		state, _ := f.uc.RemoveChargeLine(testSession, 12, 0)
		state, _ = f.uc.RemoveChargeLine(testSession, 12, 0)
		if len(state.ChargeLines) != 1 || state.ChargeLines[0].Type != entities.ChargeTypeAdditional {
			t.Fatalf("unexpected lines %+v", state.ChargeLines)
		}
		state, err := f.uc.RemoveChargeLine(testSession, 12, 0)
		if err != nil {
			t.Fatalf("remove: %v", err)
		}
		if len(state.ChargeLines) != 1 {
			t.Fatalf("expected no-op on last line, got %+v", state.ChargeLines)
		}
	})

	t.Run("late charges stay zero when overdue", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.open(t, entities.BookingStatusConfirmed, entities.User{ID: 7})
		late, err := f.uc.LateCharges(testSession, 12, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
		if err != nil || late != 0 {
			t.Fatalf("expected 0, got %v %v", late, err)
		}
	})

	t.Run("close discards edits", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.open(t, entities.BookingStatusConfirmed, entities.User{ID: 7})
		f.uc.CloseBooking(testSession, 12)
		if _, err := f.uc.View(testSession, 12); !errors.Is(err, ErrViewNotOpen) {
			t.Fatalf("expected ErrViewNotOpen, got %v", err)
		}
	})

	t.Run("views are per session", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.open(t, entities.BookingStatusConfirmed, entities.User{ID: 7})
		other := entities.Session{ID: "s-2", Token: "tok2"}
		if _, err := f.uc.View(other, 12); !errors.Is(err, ErrViewNotOpen) {
			t.Fatalf("expected ErrViewNotOpen, got %v", err)
		}
		f.uc.DropSession("s-1")
		if _, err := f.uc.View(testSession, 12); !errors.Is(err, ErrViewNotOpen) {
			t.Fatalf("expected view dropped with session, got %v", err)
		}
	})
}

func TestBookingWorkflow_VerifyDocument(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewBookingWorkflowUseCase(nil, nil, nil)
		if _, err := uc.VerifyDocument(context.Background(), testSession, 12, "passport", entities.DocumentApproved); !errors.Is(err, ErrInvalidDocumentKind) {
			t.Fatalf("expected ErrInvalidDocumentKind, got %v", err)
		}
		if _, err := uc.VerifyDocument(context.Background(), testSession, 12, entities.DocumentAadharFront, entities.DocumentPending); !errors.Is(err, ErrInvalidDecision) {
			t.Fatalf("expected ErrInvalidDecision, got %v", err)
		}
	})

	t.Run("approve changes only that kind", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.open(t, entities.BookingStatusConfirmed, entities.User{ID: 7, DrivingLicenseStatus: entities.DocumentRejected})

		f.bookings.EXPECT().VerifyDocument(gomock.Any(), "tok", int64(7), entities.DocumentAadharFront, entities.DocumentApproved).Return(nil)
		f.notifier.EXPECT().Publish("s-1", gomock.Any()).Do(func(_ string, n entities.Notice) {
			if n.Level != entities.NoticeSuccess || n.Message != "Document aadharFrontSide approved successfully!" {
				t.Fatalf("unexpected notice %+v", n)
			}
		})

		out, err := f.uc.VerifyDocument(context.Background(), testSession, 12, entities.DocumentAadharFront, entities.DocumentApproved)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		docs := out.View.DocumentStatuses
		if !out.OK || docs[entities.DocumentAadharFront] != entities.DocumentApproved ||
			docs[entities.DocumentAadharBack] != entities.DocumentPending ||
			docs[entities.DocumentDrivingLicense] != entities.DocumentRejected {
			t.Fatalf("unexpected documents %+v", docs)
		}
	})

	t.Run("rejection leaves status unchanged", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.open(t, entities.BookingStatusConfirmed, entities.User{ID: 7})

		f.bookings.EXPECT().VerifyDocument(gomock.Any(), "tok", int64(7), entities.DocumentAadharBack, entities.DocumentRejected).Return(interfaces.ErrUpstreamBadRequest)
		f.notifier.EXPECT().Publish("s-1", gomock.Any())

		out, err := f.uc.VerifyDocument(context.Background(), testSession, 12, entities.DocumentAadharBack, entities.DocumentRejected)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.OK || out.Notice.Message != "Failed to update document status." {
			t.Fatalf("unexpected outcome %+v", out)
		}
		if out.View.DocumentStatuses[entities.DocumentAadharBack] != entities.DocumentPending {
			t.Fatalf("expected PENDING to stay")
		}
	})

	t.Run("unauthorized is returned without a notice", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.open(t, entities.BookingStatusConfirmed, entities.User{ID: 7})
		f.bookings.EXPECT().VerifyDocument(gomock.Any(), "tok", int64(7), entities.DocumentDrivingLicense, entities.DocumentApproved).Return(interfaces.ErrUpstreamUnauthorized)

		_, err := f.uc.VerifyDocument(context.Background(), testSession, 12, entities.DocumentDrivingLicense, entities.DocumentApproved)
		if !errors.Is(err, interfaces.ErrUpstreamUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("response after reopen is discarded", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.open(t, entities.BookingStatusConfirmed, entities.User{ID: 7})

		f.bookings.EXPECT().VerifyDocument(gomock.Any(), "tok", int64(7), entities.DocumentAadharFront, entities.DocumentApproved).DoAndReturn(
			func(context.Context, string, int64, entities.DocumentKind, entities.DocumentStatus) error {
				f.open(t, entities.BookingStatusConfirmed, entities.User{ID: 7})
				return nil
			},
		)

		out, err := f.uc.VerifyDocument(context.Background(), testSession, 12, entities.DocumentAadharFront, entities.DocumentApproved)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Stale {
			t.Fatalf("expected stale outcome")
		}
		if out.View.DocumentStatuses[entities.DocumentAadharFront] != entities.DocumentPending {
			t.Fatalf("stale response must not change the reopened view")
		}
	})
}

func TestBookingWorkflow_ChangeStatus(t *testing.T) {
	f := newWorkflowFixture(t)
	f.open(t, entities.BookingStatusConfirmed, entities.User{ID: 7})

	if _, err := f.uc.ChangeStatus(testSession, 12, entities.BookingStatusPending); !errors.Is(err, ErrStatusNotSettable) {
		t.Fatalf("expected ErrStatusNotSettable, got %v", err)
	}
	state, err := f.uc.ChangeStatus(testSession, 12, entities.BookingStatusCancelled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.SelectedStatus != entities.BookingStatusCancelled || state.Booking.Status != entities.BookingStatusConfirmed {
		t.Fatalf("selection must stay local, got %+v", state)
	}
}

func TestBookingWorkflow_SubmitStatusChange(t *testing.T) {
	cases := []struct {
		name    string
		status  entities.BookingStatus
		expect  func(m *mock_interfaces.MockIBookingGatewayMockRecorder, err error)
		success string
		failure string
		message string
	}{
		{
			name:   "cancel",
			status: entities.BookingStatusCancelled,
			expect: func(m *mock_interfaces.MockIBookingGatewayMockRecorder, err error) {
				m.CancelBooking(gomock.Any(), "tok", int64(12)).Return(err)
			},
			success: "Booking canceled successfully!",
			failure: "Failed to cancel booking.",
			message: "Failed to cancel booking.",
		},
		{
			name:   "accept",
			status: entities.BookingStatusAccepted,
			expect: func(m *mock_interfaces.MockIBookingGatewayMockRecorder, err error) {
				m.AcceptBooking(gomock.Any(), "tok", int64(12)).Return(err)
			},
			success: "Booking accepted successfully!",
			failure: "Failed to accept booking, Due to documents not verified.",
			message: "Failed to accept booking.",
		},
		{
			name:   "complete",
			status: entities.BookingStatusCompleted,
			expect: func(m *mock_interfaces.MockIBookingGatewayMockRecorder, err error) {
				m.CompleteTrip(gomock.Any(), "tok", int64(12)).Return(err)
			},
			success: "Trip marked as COMPLETED.",
			failure: "Failed to mark trip as COMPLETED.",
			message: "Failed to mark trip as COMPLETED.",
		},
		{
			name:   "generic update",
			status: entities.BookingStatusConfirmed,
			expect: func(m *mock_interfaces.MockIBookingGatewayMockRecorder, err error) {
				m.UpdateStatus(gomock.Any(), "tok", int64(12), entities.BookingStatusConfirmed).Return(err)
			},
			success: "Booking status updated to: CONFIRMED",
			failure: "Failed to update booking status.",
			message: "Failed to update booking status.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name+" success", func(t *testing.T) {
			f := newWorkflowFixture(t)
			f.open(t, entities.BookingStatusAccepted, entities.User{ID: 7})
			if _, err := f.uc.ChangeStatus(testSession, 12, tc.status); err != nil {
				t.Fatalf("change: %v", err)
			}
			tc.expect(f.bookings.EXPECT(), nil)
			f.notifier.EXPECT().Publish("s-1", gomock.Any())

			out, err := f.uc.SubmitStatusChange(context.Background(), testSession, 12)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !out.OK || out.Notice.Message != tc.success || out.View.StatusMessage != tc.success {
				t.Fatalf("unexpected outcome %+v", out)
			}
			if out.View.Booking.Status != tc.status {
				t.Fatalf("expected booking status %s got %s", tc.status, out.View.Booking.Status)
			}
			wantEditable := tc.status != entities.BookingStatusCompleted
			if out.View.ChargesEditable != wantEditable {
				t.Fatalf("expected editable=%v", wantEditable)
			}
		})

		t.Run(tc.name+" failure", func(t *testing.T) {
			f := newWorkflowFixture(t)
			f.open(t, entities.BookingStatusAccepted, entities.User{ID: 7})
			if _, err := f.uc.ChangeStatus(testSession, 12, tc.status); err != nil {
				t.Fatalf("change: %v", err)
			}
			tc.expect(f.bookings.EXPECT(), interfaces.ErrUpstreamBadRequest)
			f.notifier.EXPECT().Publish("s-1", gomock.Any())

			out, err := f.uc.SubmitStatusChange(context.Background(), testSession, 12)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.OK || out.Notice.Message != tc.failure || out.Notice.Level != entities.NoticeError {
				t.Fatalf("unexpected outcome %+v", out)
			}
			if out.View.StatusMessage != tc.message {
				t.Fatalf("expected status message %q got %q", tc.message, out.View.StatusMessage)
			}
			if out.View.Booking.Status != entities.BookingStatusAccepted || !out.View.ChargesEditable {
				t.Fatalf("failed submission must keep the confirmed state")
			}
		})
	}

	t.Run("completion locks charges", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.open(t, entities.BookingStatusAccepted, entities.User{ID: 7})
		f.uc.ChangeStatus(testSession, 12, entities.BookingStatusCompleted)
		f.bookings.EXPECT().CompleteTrip(gomock.Any(), "tok", int64(12)).Return(nil)
		f.notifier.EXPECT().Publish("s-1", gomock.Any())

		if _, err := f.uc.SubmitStatusChange(context.Background(), testSession, 12); err != nil {
			t.Fatalf("submit: %v", err)
		}
		if _, err := f.uc.AddChargeLine(testSession, 12); !errors.Is(err, ErrChargesLocked) {
			t.Fatalf("expected ErrChargesLocked, got %v", err)
		}
		if _, err := f.uc.SetChargeAmount(testSession, 12, 0, 10); !errors.Is(err, ErrChargesLocked) {
			t.Fatalf("expected ErrChargesLocked, got %v", err)
		}
		if _, err := f.uc.RemoveChargeLine(testSession, 12, 0); !errors.Is(err, ErrChargesLocked) {
			t.Fatalf("expected ErrChargesLocked, got %v", err)
		}
		if _, err := f.uc.SetChargeType(testSession, 12, 0, entities.ChargeTypeDamage); !errors.Is(err, ErrChargesLocked) {
			t.Fatalf("expected ErrChargesLocked, got %v", err)
		}
	})

	t.Run("transport failure is returned with a notice", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.open(t, entities.BookingStatusAccepted, entities.User{ID: 7})
		f.uc.ChangeStatus(testSession, 12, entities.BookingStatusCancelled)
		f.bookings.EXPECT().CancelBooking(gomock.Any(), "tok", int64(12)).Return(interfaces.ErrUpstreamUnavailable)
		f.notifier.EXPECT().Publish("s-1", gomock.Any())

		out, err := f.uc.SubmitStatusChange(context.Background(), testSession, 12)
		if !errors.Is(err, interfaces.ErrUpstreamUnavailable) {
			t.Fatalf("expected unavailable, got %v", err)
		}
		if out.Notice.Message != "Failed to cancel booking." {
			t.Fatalf("expected failure notice, got %+v", out.Notice)
		}
	})
}

func TestBookingWorkflow_SaveCharges(t *testing.T) {
	t.Run("first line of each type wins", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.openEntry(t, sampleListEntry(entities.BookingStatusConfirmed, "2024-01-01T10:00:00.123"), entities.User{ID: 7})

		// lines: Damage 150, Challan 0, Additional 25.5, Challan 40, Damage 99
		f.uc.AddChargeLine(testSession, 12)
		f.uc.SetChargeAmount(testSession, 12, 3, 40)
		f.uc.AddChargeLine(testSession, 12)
		f.uc.SetChargeType(testSession, 12, 4, entities.ChargeTypeDamage)
		f.uc.SetChargeAmount(testSession, 12, 4, 99)
		f.uc.SetChargeType(testSession, 12, 2, entities.ChargeTypeChallan)

		f.bookings.EXPECT().UpdateBooking(gomock.Any(), "tok", int64(12), gomock.AssignableToTypeOf(entities.BookingUpdate{})).DoAndReturn(
			func(_ context.Context, _ string, _ int64, u entities.BookingUpdate) error {
				want := entities.BookingUpdate{
					VehicleID:         3,
					UserID:            7,
					PackageID:         9,
					TotalAmount:       650,
					AddressType:       "HOME",
					DeliveryLocation:  "12 MG Road",
					DeliverySelected:  true,
					StartTime:         "2024-01-01T10:00:00",
					EndTime:           "2024-01-02T14:30:00",
					Damage:            150,
					Challan:           0,
					AdditionalCharges: 0,
				}
				if u != want {
					t.Fatalf("unexpected payload\n got %+v\nwant %+v", u, want)
				}
				return nil
			},
		)
		f.notifier.EXPECT().Publish("s-1", gomock.Any())

		out, err := f.uc.SaveCharges(context.Background(), testSession, 12)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.OK || out.View.ChargesEditable || out.Notice.Message != "Booking updated successfully!" {
			t.Fatalf("unexpected outcome %+v", out)
		}
		if _, err := f.uc.AddChargeLine(testSession, 12); !errors.Is(err, ErrChargesLocked) {
			t.Fatalf("expected locked after save, got %v", err)
		}
	})

	t.Run("failure keeps lines editable", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.open(t, entities.BookingStatusConfirmed, entities.User{ID: 7})
		f.bookings.EXPECT().UpdateBooking(gomock.Any(), "tok", int64(12), gomock.Any()).Return(interfaces.ErrUpstreamBadRequest)
		f.notifier.EXPECT().Publish("s-1", gomock.Any())

		out, err := f.uc.SaveCharges(context.Background(), testSession, 12)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.OK || !out.View.ChargesEditable || out.Notice.Message != "Failed to update booking." {
			t.Fatalf("unexpected outcome %+v", out)
		}
	})

	t.Run("locked view", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.open(t, entities.BookingStatusCompleted, entities.User{ID: 7})
		if _, err := f.uc.SaveCharges(context.Background(), testSession, 12); !errors.Is(err, ErrChargesLocked) {
			t.Fatalf("expected ErrChargesLocked, got %v", err)
		}
	})

	t.Run("missing types default to zero", func(t *testing.T) {
		b := sampleListEntry(entities.BookingStatusConfirmed, sampleStart)
		u := buildBookingUpdate(b, []entities.ChargeLine{{Type: entities.ChargeTypeAdditional, Amount: 12.75}})
		if u.Damage != 0 || u.Challan != 0 || u.AdditionalCharges != 12.75 {
			t.Fatalf("unexpected amounts %+v", u)
		}
		if u.VehicleID != 0 || u.PackageID != 0 {
			t.Fatalf("expected zero ids without vehicle/package, got %+v", u)
		}
	})
}
