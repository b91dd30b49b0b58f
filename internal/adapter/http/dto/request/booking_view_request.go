package request

import (
	"errors"
	"okbikes_admin/internal/domain/entities"
	"strings"
)

var ErrEmptyChargePatch = errors.New("type or amount is required")

// ChargeLinePatchRequest edits one charge line. Either field may be sent.
type ChargeLinePatchRequest struct {
	Type   *string  `json:"type" validate:"omitempty,charge_type"`
	Amount *float64 `json:"amount"`
}

func (r ChargeLinePatchRequest) Validate() error {
	if r.Type == nil && r.Amount == nil {
		return ErrEmptyChargePatch
	}
	return Validate.Struct(r)
}

func (r ChargeLinePatchRequest) ChargeType() (entities.ChargeType, bool) {
	if r.Type == nil {
		return "", false
	}
	return entities.ChargeType(*r.Type), true
}

type DocumentDecisionRequest struct {
	Decision string `json:"decision" binding:"required" validate:"required,doc_decision"`
}

func (r DocumentDecisionRequest) Status() entities.DocumentStatus {
	return entities.DocumentStatus(strings.ToUpper(strings.TrimSpace(r.Decision)))
}

func (r DocumentDecisionRequest) Validate() error {
	r.Decision = string(r.Status())
	return Validate.Struct(r)
}

type StatusChangeRequest struct {
	Status string `json:"status" binding:"required" validate:"required,settable_status"`
}

func (r StatusChangeRequest) Validate() error {
	return Validate.Struct(r)
}

func (r StatusChangeRequest) BookingStatus() entities.BookingStatus {
	return entities.BookingStatus(r.Status)
}
