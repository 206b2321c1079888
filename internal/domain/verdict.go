package domain

import "errors"

type VerdictState string

const (
	VerdictPending   VerdictState = "pending"
	VerdictConfirmed VerdictState = "confirmed"
	VerdictRejected  VerdictState = "rejected"
)

var ErrVerdictSettled = errors.New("verdict already settled")

// LocationVerdict is the outcome of one geofence confirmation cycle.
// It transitions exactly once from pending to confirmed or rejected;
// a new location fix must start a brand-new verdict.
type LocationVerdict struct {
	State   VerdictState `json:"state"`
	Address string       `json:"address,omitempty"`
	MapLink string       `json:"map_link,omitempty"`
	Reason  string       `json:"reason,omitempty"`
}

func NewPendingVerdict() *LocationVerdict {
	return &LocationVerdict{State: VerdictPending}
}

func (v *LocationVerdict) Confirm(address, mapLink string) error {
	if v.State != VerdictPending {
		return ErrVerdictSettled
	}
	v.State = VerdictConfirmed
	v.Address = address
	v.MapLink = mapLink
	return nil
}

func (v *LocationVerdict) Reject(reason string) error {
	if v.State != VerdictPending {
		return ErrVerdictSettled
	}
	v.State = VerdictRejected
	v.Reason = reason
	return nil
}

func (v *LocationVerdict) Confirmed() bool {
	return v.State == VerdictConfirmed
}
