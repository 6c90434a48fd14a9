package ports

import (
	"context"

	"github.com/ezores/smart-locker-project-sub001/internal/domain"
)

type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, r *domain.Reservation)
	NotifyReservationCancelled(ctx context.Context, r *domain.Reservation)
	NotifyReservationExpired(ctx context.Context, r *domain.Reservation)
}
