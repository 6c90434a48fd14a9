package ports

import (
	"context"
	"time"

	"github.com/ezores/smart-locker-project-sub001/internal/domain"
)

// ReservationRepo is the persistence contract of the engine. Create,
// Update, Cancel and SetAccessCode must serialize against concurrent
// writers on the same locker: no two callers may both observe "no
// conflict" and both commit overlapping windows. RecordAccess and the
// sweep methods must share that same atomicity unit so a last-second
// access cannot race the completed/expired classification.
type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByCode(ctx context.Context, reservationCode string) (*domain.Reservation, error)
	FindActiveByAccessCode(ctx context.Context, accessCode string) (*domain.Reservation, error)
	ListActiveByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	Update(ctx context.Context, id string, change domain.ReservationChange, now time.Time) (*domain.Reservation, error)
	Cancel(ctx context.Context, id, actor string, now time.Time) (*domain.Reservation, error)
	SetAccessCode(ctx context.Context, id, accessCode, actor string, now time.Time) (*domain.Reservation, error)
	RecordAccess(ctx context.Context, event *domain.AccessEvent) error
	ListAccessEvents(ctx context.Context, reservationID string) ([]*domain.AccessEvent, error)
	TransitionDue(ctx context.Context, id string, now time.Time, completeOnAccess bool) (*domain.Reservation, error)
	SweepDue(ctx context.Context, now time.Time, completeOnAccess bool) ([]*domain.Reservation, error)
}
