package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase/interfaces"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrInvalidBookingID    = errors.New("invalid booking id")
	ErrViewNotOpen         = errors.New("booking view not open")
	ErrChargesLocked       = errors.New("charges are locked")
	ErrInvalidChargeIndex  = errors.New("invalid charge index")
	ErrInvalidChargeType   = errors.New("invalid charge type")
	ErrInvalidDocumentKind = errors.New("invalid document kind")
	ErrInvalidDecision     = errors.New("invalid document decision")
	ErrStatusNotSettable   = errors.New("status cannot be set")
)

// ViewState is a snapshot of one open booking view.
type ViewState struct {
	Booking                entities.Booking
	User                   entities.User
	ChargeLines            []entities.ChargeLine
	TotalAdditionalCharges float64
	LateCharges            float64
	DocumentStatuses       entities.DocumentStatuses
	SelectedStatus         entities.BookingStatus
	ChargesEditable        bool
	StatusMessage          string
	Epoch                  uint64
}

// InvoiceAvailable reports whether the booking can be billed.
func (v ViewState) InvoiceAvailable() bool {
	return v.Booking.Status == entities.BookingStatusCompleted
}

// Outcome is the result of a remote workflow action. OK is false when the
// rental API rejected the action; the view stays usable either way.
type Outcome struct {
	View   ViewState
	Notice entities.Notice
	OK     bool
	Stale  bool
}

// IBookingWorkflowUseCase drives the booking detail screen: charge lines,
// document verification, status changes and the charge save.
type IBookingWorkflowUseCase interface {
	OpenBooking(ctx context.Context, s entities.Session, bookingID int64) (ViewState, error)
	View(s entities.Session, bookingID int64) (ViewState, error)
	CloseBooking(s entities.Session, bookingID int64)

	AddChargeLine(s entities.Session, bookingID int64) (ViewState, error)
	RemoveChargeLine(s entities.Session, bookingID int64, index int) (ViewState, error)
	SetChargeType(s entities.Session, bookingID int64, index int, t entities.ChargeType) (ViewState, error)
	SetChargeAmount(s entities.Session, bookingID int64, index int, amount float64) (ViewState, error)
	TotalAdditionalCharges(s entities.Session, bookingID int64) (float64, error)
	LateCharges(s entities.Session, bookingID int64, now time.Time) (float64, error)

	VerifyDocument(ctx context.Context, s entities.Session, bookingID int64, kind entities.DocumentKind, decision entities.DocumentStatus) (Outcome, error)
	ChangeStatus(s entities.Session, bookingID int64, status entities.BookingStatus) (ViewState, error)
	SubmitStatusChange(ctx context.Context, s entities.Session, bookingID int64) (Outcome, error)
	SaveCharges(ctx context.Context, s entities.Session, bookingID int64) (Outcome, error)

	DropSession(sessionID string)
}

type viewKey struct {
	sessionID string
	bookingID int64
}

// bookingView holds the local edits of one view. mu guards every field and is
// never held while the rental API is being called.
type bookingView struct {
	mu sync.Mutex

	epoch    uint64
	booking  entities.Booking
	user     entities.User
	charges  []entities.ChargeLine
	docs     entities.DocumentStatuses
	selected entities.BookingStatus
	editable bool
	message  string

	docSeq    map[entities.DocumentKind]uint64
	actionSeq uint64
}

func (v *bookingView) snapshot() ViewState {
	lines := make([]entities.ChargeLine, len(v.charges))
	copy(lines, v.charges)
	return ViewState{
		Booking:                v.booking,
		User:                   v.user,
		ChargeLines:            lines,
		TotalAdditionalCharges: entities.SumCharges(v.charges),
		LateCharges:            lateCharges(v.booking, time.Now()),
		DocumentStatuses:       v.docs.Clone(),
		SelectedStatus:         v.selected,
		ChargesEditable:        v.editable,
		StatusMessage:          v.message,
		Epoch:                  v.epoch,
	}
}

// ticket identifies the request a remote response belongs to.
type ticket struct {
	epoch uint64
	seq   uint64
}

type BookingWorkflowUseCase struct {
	bookings interfaces.IBookingGateway
	users    interfaces.IUserGateway
	notifier interfaces.INotifier

	mu     sync.Mutex
	views  map[viewKey]*bookingView
	epochs atomic.Uint64
}

var _ IBookingWorkflowUseCase = (*BookingWorkflowUseCase)(nil)

func NewBookingWorkflowUseCase(bookings interfaces.IBookingGateway, users interfaces.IUserGateway, notifier interfaces.INotifier) *BookingWorkflowUseCase {
	return &BookingWorkflowUseCase{
		bookings: bookings,
		users:    users,
		notifier: notifier,
		views:    make(map[viewKey]*bookingView),
	}
}

func (u *BookingWorkflowUseCase) OpenBooking(ctx context.Context, s entities.Session, bookingID int64) (ViewState, error) {
	if bookingID <= 0 {
		return ViewState{}, ErrInvalidBookingID
	}
	key := viewKey{sessionID: s.ID, bookingID: bookingID}
	epoch := u.epochs.Add(1)
	log.Printf("[booking][workflow] open booking_id=%d epoch=%d", bookingID, epoch)

	booking, err := loadStoreBooking(ctx, u.bookings, s.Token, bookingID)
	if err != nil {
		log.Printf("[booking][workflow] open failed loading booking booking_id=%d err=%v", bookingID, err)
		return ViewState{}, err
	}
	if booking.Status == "" {
		booking.Status = entities.BookingStatusConfirmed
	}

	user, err := u.users.GetUser(ctx, s.Token, booking.UserID)
	if err != nil {
		log.Printf("[booking][workflow] open failed loading user booking_id=%d user_id=%d err=%v", bookingID, booking.UserID, err)
		return ViewState{}, err
	}
	booking = booking.WithUser(user)

	v := &bookingView{
		epoch:   epoch,
		booking: booking,
		user:    user,
		charges: []entities.ChargeLine{
			{Type: entities.ChargeTypeDamage, Amount: booking.Damage},
			{Type: entities.ChargeTypeChallan, Amount: booking.Challan},
			{Type: entities.ChargeTypeAdditional, Amount: booking.AdditionalCharges},
		},
		docs:     user.DocumentStatuses(),
		selected: booking.Status,
		editable: booking.Status != entities.BookingStatusCompleted,
		docSeq:   make(map[entities.DocumentKind]uint64),
	}

	u.mu.Lock()
	if cur, ok := u.views[key]; ok && cur.epoch > epoch {
		u.mu.Unlock()
		log.Printf("[booking][workflow] open discarded stale booking_id=%d epoch=%d current=%d", bookingID, epoch, cur.epoch)
		return u.View(s, bookingID)
	}
	u.views[key] = v
	u.mu.Unlock()

	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot(), nil
}

func (u *BookingWorkflowUseCase) View(s entities.Session, bookingID int64) (ViewState, error) {
	v, err := u.view(s, bookingID)
	if err != nil {
		return ViewState{}, err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot(), nil
}

func (u *BookingWorkflowUseCase) CloseBooking(s entities.Session, bookingID int64) {
	u.mu.Lock()
	delete(u.views, viewKey{sessionID: s.ID, bookingID: bookingID})
	u.mu.Unlock()
	log.Printf("[booking][workflow] close booking_id=%d", bookingID)
}

// DropSession discards every view the session has open.
func (u *BookingWorkflowUseCase) DropSession(sessionID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for k := range u.views {
		if k.sessionID == sessionID {
			delete(u.views, k)
		}
	}
}

func (u *BookingWorkflowUseCase) view(s entities.Session, bookingID int64) (*bookingView, error) {
	if bookingID <= 0 {
		return nil, ErrInvalidBookingID
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	v, ok := u.views[viewKey{sessionID: s.ID, bookingID: bookingID}]
	if !ok {
		return nil, ErrViewNotOpen
	}
	return v, nil
}

// current returns the installed view only if it is still the one a ticket was
// issued from.
func (u *BookingWorkflowUseCase) current(s entities.Session, bookingID int64, epoch uint64) (*bookingView, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	v, ok := u.views[viewKey{sessionID: s.ID, bookingID: bookingID}]
	if !ok || v.epoch != epoch {
		return nil, false
	}
	return v, true
}

func (u *BookingWorkflowUseCase) mutateCharges(s entities.Session, bookingID int64, fn func(v *bookingView) error) (ViewState, error) {
	v, err := u.view(s, bookingID)
	if err != nil {
		return ViewState{}, err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.editable {
		return ViewState{}, ErrChargesLocked
	}
	if err := fn(v); err != nil {
		return ViewState{}, err
	}
	return v.snapshot(), nil
}

func (u *BookingWorkflowUseCase) AddChargeLine(s entities.Session, bookingID int64) (ViewState, error) {
	return u.mutateCharges(s, bookingID, func(v *bookingView) error {
		v.charges = append(v.charges, entities.ChargeLine{Type: entities.ChargeTypeChallan, Amount: 0})
		return nil
	})
}

// RemoveChargeLine keeps at least one line: removing the last one is a no-op.
func (u *BookingWorkflowUseCase) RemoveChargeLine(s entities.Session, bookingID int64, index int) (ViewState, error) {
	return u.mutateCharges(s, bookingID, func(v *bookingView) error {
		if index < 0 || index >= len(v.charges) {
			return ErrInvalidChargeIndex
		}
		if len(v.charges) == 1 {
			return nil
		}
		v.charges = append(v.charges[:index:index], v.charges[index+1:]...)
		return nil
	})
}

func (u *BookingWorkflowUseCase) SetChargeType(s entities.Session, bookingID int64, index int, t entities.ChargeType) (ViewState, error) {
	if !t.Valid() {
		return ViewState{}, ErrInvalidChargeType
	}
	return u.mutateCharges(s, bookingID, func(v *bookingView) error {
		if index < 0 || index >= len(v.charges) {
			return ErrInvalidChargeIndex
		}
		v.charges[index].Type = t
		return nil
	})
}

// SetChargeAmount stores the amount as entered. The rental API is the only
// validator of amounts.
func (u *BookingWorkflowUseCase) SetChargeAmount(s entities.Session, bookingID int64, index int, amount float64) (ViewState, error) {
	return u.mutateCharges(s, bookingID, func(v *bookingView) error {
		if index < 0 || index >= len(v.charges) {
			return ErrInvalidChargeIndex
		}
		v.charges[index].Amount = amount
		return nil
	})
}

func (u *BookingWorkflowUseCase) TotalAdditionalCharges(s entities.Session, bookingID int64) (float64, error) {
	v, err := u.view(s, bookingID)
	if err != nil {
		return 0, err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return entities.SumCharges(v.charges), nil
}

func (u *BookingWorkflowUseCase) LateCharges(s entities.Session, bookingID int64, now time.Time) (float64, error) {
	v, err := u.view(s, bookingID)
	if err != nil {
		return 0, err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return lateCharges(v.booking, now), nil
}

// lateCharges is zero for every booking, overdue or not.
// TODO: bill overdue returns once the per-hour late tariff is published with the package data.
func lateCharges(_ entities.Booking, _ time.Time) float64 {
	return 0
}

func (u *BookingWorkflowUseCase) ChangeStatus(s entities.Session, bookingID int64, status entities.BookingStatus) (ViewState, error) {
	if !status.Settable() {
		return ViewState{}, ErrStatusNotSettable
	}
	v, err := u.view(s, bookingID)
	if err != nil {
		return ViewState{}, err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selected = status
	return v.snapshot(), nil
}

func (u *BookingWorkflowUseCase) VerifyDocument(ctx context.Context, s entities.Session, bookingID int64, kind entities.DocumentKind, decision entities.DocumentStatus) (Outcome, error) {
	if !kind.Valid() {
		return Outcome{}, ErrInvalidDocumentKind
	}
	if !decision.IsDecision() {
		return Outcome{}, ErrInvalidDecision
	}
	v, err := u.view(s, bookingID)
	if err != nil {
		return Outcome{}, err
	}

	v.mu.Lock()
	v.docSeq[kind]++
	tk := ticket{epoch: v.epoch, seq: v.docSeq[kind]}
	userID := v.user.ID
	v.mu.Unlock()

	log.Printf("[booking][workflow] verify-document booking_id=%d user_id=%d kind=%s decision=%s", bookingID, userID, kind, decision)
	callErr := u.bookings.VerifyDocument(ctx, s.Token, userID, kind, decision)

	cur, ok := u.current(s, bookingID, tk.epoch)
	if !ok {
		log.Printf("[booking][workflow] verify-document response discarded, view gone booking_id=%d kind=%s", bookingID, kind)
		return u.staleOutcome(s, bookingID)
	}
	cur.mu.Lock()
	if cur.docSeq[kind] != tk.seq {
		state := cur.snapshot()
		cur.mu.Unlock()
		log.Printf("[booking][workflow] verify-document response discarded, superseded booking_id=%d kind=%s", bookingID, kind)
		return Outcome{View: state, Stale: true}, nil
	}
	var notice entities.Notice
	if callErr == nil {
		cur.docs[kind] = decision
		notice = entities.SuccessNotice(bookingID, fmt.Sprintf("Document %s %s successfully!", kind, strings.ToLower(string(decision))))
	} else {
		notice = entities.ErrorNotice(bookingID, "Failed to update document status.")
	}
	state := cur.snapshot()
	cur.mu.Unlock()

	return u.finish(s, bookingID, "verify-document", state, notice, callErr)
}

type statusSubmission struct {
	call    func(ctx context.Context, gw interfaces.IBookingGateway, token string, bookingID int64, status entities.BookingStatus) error
	success func(status entities.BookingStatus) string
	failure string
	// failureNotice is the notice text on failure when it differs from the
	// status message.
	failureNotice string
	locksCharges  bool
}

func (s statusSubmission) failureNoticeText() string {
	if s.failureNotice != "" {
		return s.failureNotice
	}
	return s.failure
}

// statusSubmissions maps the selected status to its endpoint. Statuses not
// listed go through defaultStatusSubmission.
var statusSubmissions = map[entities.BookingStatus]statusSubmission{
	entities.BookingStatusCancelled: {
		call: func(ctx context.Context, gw interfaces.IBookingGateway, token string, id int64, _ entities.BookingStatus) error {
			return gw.CancelBooking(ctx, token, id)
		},
		success: func(entities.BookingStatus) string { return "Booking canceled successfully!" },
		failure: "Failed to cancel booking.",
	},
	entities.BookingStatusAccepted: {
		call: func(ctx context.Context, gw interfaces.IBookingGateway, token string, id int64, _ entities.BookingStatus) error {
			return gw.AcceptBooking(ctx, token, id)
		},
		success:       func(entities.BookingStatus) string { return "Booking accepted successfully!" },
		failure:       "Failed to accept booking.",
		failureNotice: "Failed to accept booking, Due to documents not verified.",
	},
	entities.BookingStatusCompleted: {
		call: func(ctx context.Context, gw interfaces.IBookingGateway, token string, id int64, _ entities.BookingStatus) error {
			return gw.CompleteTrip(ctx, token, id)
		},
		success:      func(entities.BookingStatus) string { return "Trip marked as COMPLETED." },
		failure:      "Failed to mark trip as COMPLETED.",
		locksCharges: true,
	},
}

var defaultStatusSubmission = statusSubmission{
	call: func(ctx context.Context, gw interfaces.IBookingGateway, token string, id int64, status entities.BookingStatus) error {
		return gw.UpdateStatus(ctx, token, id, status)
	},
	success: func(status entities.BookingStatus) string { return "Booking status updated to: " + string(status) },
	failure: "Failed to update booking status.",
}

func (u *BookingWorkflowUseCase) SubmitStatusChange(ctx context.Context, s entities.Session, bookingID int64) (Outcome, error) {
	v, err := u.view(s, bookingID)
	if err != nil {
		return Outcome{}, err
	}

	v.mu.Lock()
	v.actionSeq++
	tk := ticket{epoch: v.epoch, seq: v.actionSeq}
	status := v.selected
	v.mu.Unlock()

	sub, ok := statusSubmissions[status]
	if !ok {
		sub = defaultStatusSubmission
	}
	log.Printf("[booking][workflow] submit-status booking_id=%d status=%s", bookingID, status)
	callErr := sub.call(ctx, u.bookings, s.Token, bookingID, status)

	cur, live := u.current(s, bookingID, tk.epoch)
	if !live {
		log.Printf("[booking][workflow] submit-status response discarded, view gone booking_id=%d", bookingID)
		return u.staleOutcome(s, bookingID)
	}
	cur.mu.Lock()
	if cur.actionSeq != tk.seq {
		state := cur.snapshot()
		cur.mu.Unlock()
		log.Printf("[booking][workflow] submit-status response discarded, superseded booking_id=%d", bookingID)
		return Outcome{View: state, Stale: true}, nil
	}
	var notice entities.Notice
	if callErr == nil {
		cur.booking.Status = status
		if sub.locksCharges {
			cur.editable = false
		}
		notice = entities.SuccessNotice(bookingID, sub.success(status))
		cur.message = notice.Message
	} else {
		notice = entities.ErrorNotice(bookingID, sub.failureNoticeText())
		cur.message = sub.failure
	}
	state := cur.snapshot()
	cur.mu.Unlock()

	return u.finish(s, bookingID, "submit-status", state, notice, callErr)
}

func (u *BookingWorkflowUseCase) SaveCharges(ctx context.Context, s entities.Session, bookingID int64) (Outcome, error) {
	v, err := u.view(s, bookingID)
	if err != nil {
		return Outcome{}, err
	}

	v.mu.Lock()
	if !v.editable {
		v.mu.Unlock()
		return Outcome{}, ErrChargesLocked
	}
	v.actionSeq++
	tk := ticket{epoch: v.epoch, seq: v.actionSeq}
	update := buildBookingUpdate(v.booking, v.charges)
	v.mu.Unlock()

	log.Printf("[booking][workflow] save-charges booking_id=%d damage=%.2f challan=%.2f additional=%.2f", bookingID, update.Damage, update.Challan, update.AdditionalCharges)
	callErr := u.bookings.UpdateBooking(ctx, s.Token, bookingID, update)

	cur, live := u.current(s, bookingID, tk.epoch)
	if !live {
		log.Printf("[booking][workflow] save-charges response discarded, view gone booking_id=%d", bookingID)
		return u.staleOutcome(s, bookingID)
	}
	cur.mu.Lock()
	if cur.actionSeq != tk.seq {
		state := cur.snapshot()
		cur.mu.Unlock()
		log.Printf("[booking][workflow] save-charges response discarded, superseded booking_id=%d", bookingID)
		return Outcome{View: state, Stale: true}, nil
	}
	var notice entities.Notice
	if callErr == nil {
		cur.editable = false
		cur.booking.Damage = update.Damage
		cur.booking.Challan = update.Challan
		cur.booking.AdditionalCharges = update.AdditionalCharges
		notice = entities.SuccessNotice(bookingID, "Booking updated successfully!")
	} else {
		notice = entities.ErrorNotice(bookingID, "Failed to update booking.")
	}
	cur.message = notice.Message
	state := cur.snapshot()
	cur.mu.Unlock()

	return u.finish(s, bookingID, "save-charges", state, notice, callErr)
}

// buildBookingUpdate assembles the full update payload. Each stored charge
// takes the first line of its type, 0 when there is none.
func buildBookingUpdate(b entities.Booking, lines []entities.ChargeLine) entities.BookingUpdate {
	update := entities.BookingUpdate{
		UserID:            b.UserID,
		VehicleID:         b.VehicleID,
		TotalAmount:       b.TotalAmount,
		AddressType:       b.AddressType,
		DeliveryLocation:  b.Address,
		DeliverySelected:  b.DeliverySelected,
		StartTime:         b.StartDate.Wire(),
		EndTime:           b.EndDate.Wire(),
		Damage:            entities.FirstAmount(lines, entities.ChargeTypeDamage),
		Challan:           entities.FirstAmount(lines, entities.ChargeTypeChallan),
		AdditionalCharges: entities.FirstAmount(lines, entities.ChargeTypeAdditional),
	}
	if b.Vehicle != nil {
		update.VehicleID = b.Vehicle.ID
	}
	if b.VehiclePackage != nil {
		update.PackageID = b.VehiclePackage.ID
	}
	return update
}

// finish publishes the notice and splits remote failures: an expired session
// or an unreachable API is returned as an error, anything else is a rejected
// action reported through the outcome.
func (u *BookingWorkflowUseCase) finish(s entities.Session, bookingID int64, action string, state ViewState, notice entities.Notice, callErr error) (Outcome, error) {
	out := Outcome{View: state, Notice: notice, OK: callErr == nil}
	if callErr != nil {
		log.Printf("[booking][workflow] %s failed booking_id=%d err=%v", action, bookingID, callErr)
	} else {
		log.Printf("[booking][workflow] %s success booking_id=%d", action, bookingID)
	}
	if errors.Is(callErr, interfaces.ErrUpstreamUnauthorized) {
		return out, callErr
	}
	if u.notifier != nil {
		u.notifier.Publish(s.ID, notice)
	}
	if errors.Is(callErr, interfaces.ErrUpstreamUnavailable) {
		return out, callErr
	}
	return out, nil
}

func (u *BookingWorkflowUseCase) staleOutcome(s entities.Session, bookingID int64) (Outcome, error) {
	state, err := u.View(s, bookingID)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{View: state, Stale: true}, nil
}
