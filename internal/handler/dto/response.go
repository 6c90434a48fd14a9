package dto

import (
	"time"

	"github.com/ezores/smart-locker-project-sub001/internal/domain"
)

type ReservationResponse struct {
	ID              string  `json:"id"`
	ReservationCode string  `json:"reservation_code"`
	AccessCode      string  `json:"access_code"`
	UserID          string  `json:"user_id"`
	LockerID        string  `json:"locker_id"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Status          string  `json:"status"`
	Notes           string  `json:"notes,omitempty"`
	CreatedAt       string  `json:"created_at"`
	CancelledAt     *string `json:"cancelled_at,omitempty"`
	CancelledBy     *string `json:"cancelled_by,omitempty"`
	ModifiedAt      *string `json:"modified_at,omitempty"`
	ModifiedBy      *string `json:"modified_by,omitempty"`
}

type AccessDecisionResponse struct {
	Granted       bool   `json:"granted"`
	Reason        string `json:"reason,omitempty"`
	ReservationID string `json:"reservation_id,omitempty"`
	LockerID      string `json:"locker_id,omitempty"`
	Method        string `json:"method"`
	Opened        bool   `json:"opened"`
}

type AccessEventResponse struct {
	ID            string `json:"id"`
	ReservationID string `json:"reservation_id"`
	LockerID      string `json:"locker_id"`
	UserID        string `json:"user_id"`
	Method        string `json:"method"`
	OccurredAt    string `json:"occurred_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:              r.ID,
		ReservationCode: r.ReservationCode,
		AccessCode:      r.AccessCode,
		UserID:          r.UserID,
		LockerID:        r.LockerID,
		StartTime:       r.StartTime.Format(time.RFC3339),
		EndTime:         r.EndTime.Format(time.RFC3339),
		Status:          string(r.Status),
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
	resp.CancelledAt = formatOptional(r.CancelledAt)
	resp.CancelledBy = r.CancelledBy
	resp.ModifiedAt = formatOptional(r.ModifiedAt)
	resp.ModifiedBy = r.ModifiedBy
	return resp
}

func ToAccessDecisionResponse(d *domain.AccessDecision) AccessDecisionResponse {
	return AccessDecisionResponse{
		Granted:       d.Granted,
		Reason:        string(d.Reason),
		ReservationID: d.ReservationID,
		LockerID:      d.LockerID,
		Method:        string(d.Method),
		Opened:        d.Opened,
	}
}

func ToAccessEventResponse(e *domain.AccessEvent) AccessEventResponse {
	return AccessEventResponse{
		ID:            e.ID,
		ReservationID: e.ReservationID,
		LockerID:      e.LockerID,
		UserID:        e.UserID,
		Method:        string(e.Method),
		OccurredAt:    e.OccurredAt.Format(time.RFC3339),
	}
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
