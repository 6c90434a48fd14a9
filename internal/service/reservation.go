package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/ezores/smart-locker-project-sub001/internal/clock"
	"github.com/ezores/smart-locker-project-sub001/internal/codes"
	"github.com/ezores/smart-locker-project-sub001/internal/domain"
	"github.com/ezores/smart-locker-project-sub001/internal/service/ports"
)

// codeAttempts bounds the mint-and-commit loop for credential
// collisions. The code spaces are large enough that more than one
// retry is already exceptional.
const codeAttempts = 5

// SweepPolicy controls what happens to an active reservation once its
// window has passed. With CompleteOnAccess set, a reservation with at
// least one recorded access becomes completed and an untouched one
// expires; without it every past-due reservation expires.
type SweepPolicy struct {
	CompleteOnAccess bool
}

type ReservationService struct {
	repo     ports.ReservationRepo
	notifier ports.ReservationNotifier
	clock    clock.Clock
	policy   SweepPolicy
	logger   logger.Logger
}

func NewReservationService(
	repo ports.ReservationRepo,
	notifier ports.ReservationNotifier,
	clk clock.Clock,
	policy SweepPolicy,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		repo:     repo,
		notifier: notifier,
		clock:    clk,
		policy:   policy,
		logger:   logger,
	}
}

func (s *ReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	now := s.clock.Now()
	if err := validateWindow(input.StartTime, input.EndTime, now); err != nil {
		return nil, err
	}
	if input.UserID == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrValidation)
	}
	if input.LockerID == "" {
		return nil, fmt.Errorf("%w: locker_id is required", domain.ErrValidation)
	}

	for attempt := 0; attempt < codeAttempts; attempt++ {
		reservationCode, err := codes.ReservationCode()
		if err != nil {
			return nil, err
		}
		accessCode, err := codes.AccessCode()
		if err != nil {
			return nil, err
		}

		res := &domain.Reservation{
			ID:              uuid.New().String(),
			ReservationCode: reservationCode,
			AccessCode:      accessCode,
			UserID:          input.UserID,
			LockerID:        input.LockerID,
			StartTime:       input.StartTime.UTC(),
			EndTime:         input.EndTime.UTC(),
			Status:          domain.ReservationStatusActive,
			Notes:           input.Notes,
			CreatedAt:       now,
		}

		err = s.repo.Create(ctx, res)
		if errors.Is(err, domain.ErrReservationCodeTaken) || errors.Is(err, domain.ErrAccessCodeTaken) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("create reservation: %w", err)
		}

		s.logger.Info("reservation created",
			logger.String("reservation_id", res.ID),
			logger.String("reservation_code", res.ReservationCode),
			logger.String("locker_id", res.LockerID),
			logger.String("user_id", res.UserID),
		)

		go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), res)

		return res, nil
	}

	return nil, fmt.Errorf("create reservation: could not mint unique codes after %d attempts", codeAttempts)
}

func (s *ReservationService) Edit(ctx context.Context, reservationCode string, change domain.ReservationChange) (*domain.Reservation, error) {
	if (change.StartTime == nil) != (change.EndTime == nil) {
		return nil, fmt.Errorf("%w: start_time and end_time must be changed together", domain.ErrValidation)
	}
	if change.StartTime == nil && change.Notes == nil {
		return nil, fmt.Errorf("%w: nothing to change", domain.ErrValidation)
	}
	if change.Actor == "" {
		return nil, fmt.Errorf("%w: actor is required", domain.ErrValidation)
	}

	now := s.clock.Now()
	if change.StartTime != nil {
		if err := validateWindow(*change.StartTime, *change.EndTime, now); err != nil {
			return nil, err
		}
	}

	current, err := s.getFresh(ctx, reservationCode, now)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, current.ID, change, now)
	if err != nil {
		return nil, fmt.Errorf("edit reservation: %w", err)
	}

	s.logger.Info("reservation edited",
		logger.String("reservation_id", updated.ID),
		logger.String("actor", change.Actor),
	)

	return updated, nil
}

func (s *ReservationService) Cancel(ctx context.Context, reservationCode, actor string) (*domain.Reservation, error) {
	if actor == "" {
		return nil, fmt.Errorf("%w: actor is required", domain.ErrValidation)
	}

	now := s.clock.Now()
	current, err := s.getFresh(ctx, reservationCode, now)
	if err != nil {
		return nil, err
	}

	cancelled, err := s.repo.Cancel(ctx, current.ID, actor, now)
	if err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", cancelled.ID),
		logger.String("locker_id", cancelled.LockerID),
		logger.String("actor", actor),
	)

	go s.notifier.NotifyReservationCancelled(context.WithoutCancel(ctx), cancelled)

	return cancelled, nil
}

// Get returns the reservation, transitioning it first when its window
// has passed. This is the lazy half of the sweep; the scheduler's
// periodic pass is the other caller of the same transition rule.
func (s *ReservationService) Get(ctx context.Context, reservationCode string) (*domain.Reservation, error) {
	return s.getFresh(ctx, reservationCode, s.clock.Now())
}

func (s *ReservationService) getFresh(ctx context.Context, reservationCode string, now time.Time) (*domain.Reservation, error) {
	res, err := s.repo.GetByCode(ctx, reservationCode)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if !res.DueAt(now) {
		return res, nil
	}

	transitioned, err := s.repo.TransitionDue(ctx, res.ID, now, s.policy.CompleteOnAccess)
	if err != nil {
		return nil, fmt.Errorf("transition reservation: %w", err)
	}
	return transitioned, nil
}

func (s *ReservationService) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	return s.repo.List(ctx, filter)
}

func (s *ReservationService) ListAccessEvents(ctx context.Context, reservationCode string) ([]*domain.AccessEvent, error) {
	res, err := s.repo.GetByCode(ctx, reservationCode)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return s.repo.ListAccessEvents(ctx, res.ID)
}

// RegenerateAccessCode replaces the numeric secret of an active
// reservation, e.g. after a suspected leak. The store swaps the code
// in a single statement so the old value never validates alongside the
// new one.
func (s *ReservationService) RegenerateAccessCode(ctx context.Context, reservationCode, actor string) (*domain.Reservation, error) {
	if actor == "" {
		return nil, fmt.Errorf("%w: actor is required", domain.ErrValidation)
	}

	now := s.clock.Now()
	current, err := s.getFresh(ctx, reservationCode, now)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.ReservationStatusActive {
		return nil, fmt.Errorf("regenerate access code: %w", domain.ErrInvalidState)
	}

	for attempt := 0; attempt < codeAttempts; attempt++ {
		accessCode, err := codes.AccessCode()
		if err != nil {
			return nil, err
		}

		updated, err := s.repo.SetAccessCode(ctx, current.ID, accessCode, actor, now)
		if errors.Is(err, domain.ErrAccessCodeTaken) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("regenerate access code: %w", err)
		}

		s.logger.Info("access code regenerated",
			logger.String("reservation_id", updated.ID),
			logger.String("actor", actor),
		)

		return updated, nil
	}

	return nil, fmt.Errorf("regenerate access code: could not mint unique code after %d attempts", codeAttempts)
}

// SweepDue transitions every past-due active reservation. Called by
// the scheduler so that list queries stay accurate without each row
// being read individually.
func (s *ReservationService) SweepDue(ctx context.Context) ([]*domain.Reservation, error) {
	swept, err := s.repo.SweepDue(ctx, s.clock.Now(), s.policy.CompleteOnAccess)
	if err != nil {
		return nil, fmt.Errorf("sweep due reservations: %w", err)
	}

	if len(swept) > 0 {
		s.logger.Info("due reservations swept",
			logger.Int("count", len(swept)),
		)

		go s.notifyExpired(context.WithoutCancel(ctx), swept)
	}

	return swept, nil
}

func (s *ReservationService) notifyExpired(ctx context.Context, swept []*domain.Reservation) {
	for _, r := range swept {
		if r.Status != domain.ReservationStatusExpired {
			continue
		}
		s.notifier.NotifyReservationExpired(ctx, r)
	}
}

func validateWindow(start, end, now time.Time) error {
	if !end.After(start) {
		return fmt.Errorf("%w: end_time must be after start_time", domain.ErrValidation)
	}
	duration := end.Sub(start)
	if duration < domain.MinReservationDuration {
		return fmt.Errorf("%w: duration must be at least %s", domain.ErrValidation, domain.MinReservationDuration)
	}
	if duration > domain.MaxReservationDuration {
		return fmt.Errorf("%w: duration must not exceed %s", domain.ErrValidation, domain.MaxReservationDuration)
	}
	if !start.After(now) {
		return fmt.Errorf("%w: start_time must be in the future", domain.ErrValidation)
	}
	return nil
}
