package response

import (
	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase"
)

type ChargeLineResponse struct {
	Index  int     `json:"index"`
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

type DocumentResponse struct {
	Kind   string `json:"kind"`
	Status string `json:"status"`
	Image  string `json:"image,omitempty"`
}

type RenterResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	IsVerified  bool   `json:"is_verified"`
}

type BookingViewResponse struct {
	Booking                BookingResponse      `json:"booking"`
	User                   RenterResponse       `json:"user"`
	ChargeLines            []ChargeLineResponse `json:"charge_lines"`
	TotalAdditionalCharges float64              `json:"total_additional_charges"`
	LateCharges            float64              `json:"late_charges"`
	Documents              []DocumentResponse   `json:"documents"`
	SelectedStatus         string               `json:"selected_status"`
	SettableStatuses       []string             `json:"settable_statuses"`
	ChargesEditable        bool                 `json:"charges_editable"`
	StatusMessage          string               `json:"status_message,omitempty"`
	InvoiceAvailable       bool                 `json:"invoice_available"`
	Epoch                  uint64               `json:"epoch"`
}

func FromViewState(v usecase.ViewState) BookingViewResponse {
	res := BookingViewResponse{
		Booking: FromBooking(v.Booking),
		User: RenterResponse{
			ID:          v.User.ID,
			Name:        v.User.Name,
			Email:       v.User.Email,
			PhoneNumber: v.User.PhoneNumber,
			IsVerified:  v.User.IsVerified,
		},
		ChargeLines:            make([]ChargeLineResponse, 0, len(v.ChargeLines)),
		TotalAdditionalCharges: v.TotalAdditionalCharges,
		LateCharges:            v.LateCharges,
		SelectedStatus:         string(v.SelectedStatus),
		ChargesEditable:        v.ChargesEditable,
		StatusMessage:          v.StatusMessage,
		InvoiceAvailable:       v.InvoiceAvailable(),
		Epoch:                  v.Epoch,
	}
	for i, l := range v.ChargeLines {
		res.ChargeLines = append(res.ChargeLines, ChargeLineResponse{Index: i, Type: string(l.Type), Amount: l.Amount})
	}
	for _, kind := range entities.DocumentKinds() {
		res.Documents = append(res.Documents, DocumentResponse{
			Kind:   string(kind),
			Status: string(v.DocumentStatuses[kind]),
			Image:  v.User.DocumentImage(kind),
		})
	}
	for _, s := range entities.SettableStatuses() {
		res.SettableStatuses = append(res.SettableStatuses, string(s))
	}
	return res
}

// OutcomeResponse answers the remote workflow actions. OK false means the
// rental API refused the action; Notice tells the user why.
type OutcomeResponse struct {
	OK     bool                `json:"ok"`
	Stale  bool                `json:"stale,omitempty"`
	Notice *entities.Notice    `json:"notice,omitempty"`
	View   BookingViewResponse `json:"view"`
}

func FromOutcome(o usecase.Outcome) OutcomeResponse {
	res := OutcomeResponse{OK: o.OK, Stale: o.Stale, View: FromViewState(o.View)}
	if o.Notice.Message != "" {
		n := o.Notice
		res.Notice = &n
	}
	return res
}

type ChargeTotalsResponse struct {
	TotalAdditionalCharges float64 `json:"total_additional_charges"`
	LateCharges            float64 `json:"late_charges"`
}
