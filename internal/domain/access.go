package domain

import "time"

type AccessMethod string

const (
	AccessMethodToken AccessMethod = "token"
	AccessMethodCode  AccessMethod = "code"
)

type DenyReason string

const (
	DenyReasonNoReservation DenyReason = "no_reservation"
	DenyReasonNotYetStarted DenyReason = "not_yet_started"
	DenyReasonExpired       DenyReason = "expired"
	DenyReasonWrongLocker   DenyReason = "wrong_locker"
)

// AccessDecision is the outcome of an access attempt. A denial is a
// decision, not an error. Opened reflects the actuator outcome and is
// meaningful only when Granted is true: an actuator failure does not
// revoke a correct grant.
type AccessDecision struct {
	Granted       bool         `json:"granted"`
	Reason        DenyReason   `json:"reason,omitempty"`
	ReservationID string       `json:"reservation_id,omitempty"`
	LockerID      string       `json:"locker_id,omitempty"`
	Method        AccessMethod `json:"method"`
	Opened        bool         `json:"opened"`
}

// AccessEvent is the audit record of a granted access. Its existence
// during the window is what distinguishes completed from expired.
type AccessEvent struct {
	ID            string       `json:"id"`
	ReservationID string       `json:"reservation_id"`
	LockerID      string       `json:"locker_id"`
	UserID        string       `json:"user_id"`
	Method        AccessMethod `json:"method"`
	OccurredAt    time.Time    `json:"occurred_at"`
}
