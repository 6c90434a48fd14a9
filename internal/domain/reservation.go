package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "active"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusExpired   ReservationStatus = "expired"
)

const (
	MinReservationDuration = 30 * time.Minute
	MaxReservationDuration = 24 * time.Hour
)

// Reservation allocates one locker to one user for the half-open
// window [StartTime, EndTime). Terminal rows are kept for audit.
type Reservation struct {
	ID              string            `json:"id"`
	ReservationCode string            `json:"reservation_code"`
	AccessCode      string            `json:"access_code"`
	UserID          string            `json:"user_id"`
	LockerID        string            `json:"locker_id"`
	StartTime       time.Time         `json:"start_time"`
	EndTime         time.Time         `json:"end_time"`
	Status          ReservationStatus `json:"status"`
	Notes           string            `json:"notes"`
	Accessed        bool              `json:"accessed"`
	CreatedAt       time.Time         `json:"created_at"`
	CancelledAt     *time.Time        `json:"cancelled_at,omitempty"`
	CancelledBy     *string           `json:"cancelled_by,omitempty"`
	ModifiedAt      *time.Time        `json:"modified_at,omitempty"`
	ModifiedBy      *string           `json:"modified_by,omitempty"`
}

// OverlapsWindow reports whether [start, end) intersects the
// reservation's window. Touching windows do not overlap.
func (r *Reservation) OverlapsWindow(start, end time.Time) bool {
	return r.StartTime.Before(end) && start.Before(r.EndTime)
}

// DueAt reports whether the reservation is past its window but has not
// been transitioned to a terminal state yet.
func (r *Reservation) DueAt(now time.Time) bool {
	return r.Status == ReservationStatusActive && !now.Before(r.EndTime)
}

type CreateReservationInput struct {
	UserID    string
	LockerID  string
	StartTime time.Time
	EndTime   time.Time
	Notes     string
}

// ReservationChange is a partial edit. Nil fields are left untouched.
// StartTime and EndTime must be set together.
type ReservationChange struct {
	StartTime *time.Time
	EndTime   *time.Time
	Notes     *string
	Actor     string
}

type ReservationFilter struct {
	LockerID string
	UserID   string
	Status   ReservationStatus
}
