package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/ezores/smart-locker-project-sub001/internal/clock"
	"github.com/ezores/smart-locker-project-sub001/internal/domain"
	"github.com/ezores/smart-locker-project-sub001/internal/service/ports"
)

// AccessService decides whether an access attempt opens a locker. The
// two credential paths resolve to a candidate reservation through
// different lookups and then share one window/state check, so the
// authorization rule cannot diverge between them.
type AccessService struct {
	repo     ports.ReservationRepo
	tokens   ports.TokenRepo
	actuator ports.LockerActuator
	clock    clock.Clock
	logger   logger.Logger
}

func NewAccessService(
	repo ports.ReservationRepo,
	tokens ports.TokenRepo,
	actuator ports.LockerActuator,
	clk clock.Clock,
	logger logger.Logger,
) *AccessService {
	return &AccessService{
		repo:     repo,
		tokens:   tokens,
		actuator: actuator,
		clock:    clk,
		logger:   logger,
	}
}

// ValidateByToken handles the hardware-token path. lockerID identifies
// the reader the token was presented at; a reservation on a different
// locker is denied as wrong_locker.
func (s *AccessService) ValidateByToken(ctx context.Context, tokenID, lockerID string) (*domain.AccessDecision, error) {
	now := s.clock.Now()

	userID, err := s.tokens.ResolveUser(ctx, tokenID)
	if errors.Is(err, domain.ErrTokenNotFound) {
		return s.deny(domain.AccessMethodToken, domain.DenyReasonNoReservation, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve token: %w", err)
	}

	candidate, err := s.resolveByUser(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	if candidate != nil && candidate.LockerID != lockerID {
		return s.deny(domain.AccessMethodToken, domain.DenyReasonWrongLocker, candidate), nil
	}

	return s.decide(ctx, domain.AccessMethodToken, candidate, now)
}

// ValidateByCode handles manual entry of the numeric secret. The code
// itself identifies the reservation and therefore the locker.
func (s *AccessService) ValidateByCode(ctx context.Context, accessCode string) (*domain.AccessDecision, error) {
	now := s.clock.Now()

	candidate, err := s.repo.FindActiveByAccessCode(ctx, accessCode)
	if errors.Is(err, domain.ErrReservationNotFound) {
		candidate = nil
	} else if err != nil {
		return nil, fmt.Errorf("resolve access code: %w", err)
	}

	return s.decide(ctx, domain.AccessMethodCode, candidate, now)
}

// resolveByUser picks the user's reservation most relevant at now: one
// whose window contains now if it exists, otherwise the nearest
// upcoming one, otherwise the most recently ended still-active one
// (pending sweep). A nil candidate means the user has no active
// reservation at all.
func (s *AccessService) resolveByUser(ctx context.Context, userID string, now time.Time) (*domain.Reservation, error) {
	active, err := s.repo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list active reservations: %w", err)
	}

	var upcoming, past *domain.Reservation
	for _, r := range active {
		switch {
		case !now.Before(r.StartTime) && now.Before(r.EndTime):
			return r, nil
		case now.Before(r.StartTime):
			if upcoming == nil || r.StartTime.Before(upcoming.StartTime) {
				upcoming = r
			}
		default:
			if past == nil || r.EndTime.After(past.EndTime) {
				past = r
			}
		}
	}

	if upcoming != nil {
		return upcoming, nil
	}
	return past, nil
}

// decide is the single authorization rule both paths converge on:
// grant iff a candidate exists, is active and now lies in
// [StartTime, EndTime).
func (s *AccessService) decide(ctx context.Context, method domain.AccessMethod, candidate *domain.Reservation, now time.Time) (*domain.AccessDecision, error) {
	switch {
	case candidate == nil || candidate.Status != domain.ReservationStatusActive:
		return s.deny(method, domain.DenyReasonNoReservation, nil), nil
	case now.Before(candidate.StartTime):
		return s.deny(method, domain.DenyReasonNotYetStarted, candidate), nil
	case !now.Before(candidate.EndTime):
		return s.deny(method, domain.DenyReasonExpired, candidate), nil
	}

	event := &domain.AccessEvent{
		ID:            uuid.New().String(),
		ReservationID: candidate.ID,
		LockerID:      candidate.LockerID,
		UserID:        candidate.UserID,
		Method:        method,
		OccurredAt:    now,
	}
	if err := s.repo.RecordAccess(ctx, event); err != nil {
		// The sweep won the race and closed the reservation.
		if errors.Is(err, domain.ErrInvalidState) {
			return s.deny(method, domain.DenyReasonExpired, candidate), nil
		}
		return nil, fmt.Errorf("record access: %w", err)
	}

	decision := &domain.AccessDecision{
		Granted:       true,
		ReservationID: candidate.ID,
		LockerID:      candidate.LockerID,
		Method:        method,
		Opened:        true,
	}

	if err := s.actuator.Open(ctx, candidate.LockerID); err != nil {
		// Authorization stands; only the hardware failed.
		decision.Opened = false
		s.logger.Error("locker actuator failed after grant",
			logger.String("reservation_id", candidate.ID),
			logger.String("locker_id", candidate.LockerID),
			logger.String("error", err.Error()),
		)
		return decision, nil
	}

	s.logger.Info("access granted",
		logger.String("reservation_id", candidate.ID),
		logger.String("locker_id", candidate.LockerID),
		logger.String("method", string(method)),
	)

	return decision, nil
}

func (s *AccessService) deny(method domain.AccessMethod, reason domain.DenyReason, candidate *domain.Reservation) *domain.AccessDecision {
	decision := &domain.AccessDecision{
		Granted: false,
		Reason:  reason,
		Method:  method,
	}
	if candidate != nil {
		decision.ReservationID = candidate.ID
		decision.LockerID = candidate.LockerID
	}

	s.logger.Info("access denied",
		logger.String("method", string(method)),
		logger.String("reason", string(reason)),
	)

	return decision
}
