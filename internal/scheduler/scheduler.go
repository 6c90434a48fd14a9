package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/ezores/smart-locker-project-sub001/internal/domain"
)

type reservationSweeper interface {
	SweepDue(ctx context.Context) ([]*domain.Reservation, error)
}

// Sweeper periodically transitions past-due reservations so that list
// queries stay accurate between individual reads.
type Sweeper struct {
	reservationService reservationSweeper
	interval           time.Duration
	logger             logger.Logger
}

func New(
	reservationService reservationSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Sweeper {
	return &Sweeper{
		reservationService: reservationService,
		interval:           interval,
		logger:             logger,
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Sweeper) tick(ctx context.Context) {
	swept, err := s.reservationService.SweepDue(ctx)
	if err != nil {
		s.logger.Error("failed to sweep due reservations",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range swept {
		s.logger.Info("reservation closed",
			logger.String("reservation_id", r.ID),
			logger.String("locker_id", r.LockerID),
			logger.String("status", string(r.Status)),
		)
	}
}
