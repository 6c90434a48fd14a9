package repository

import (
	"context"
	"sync"
	"time"

	"github.com/ezores/smart-locker-project-sub001/internal/domain"
)

// MemoryStore is the single-writer in-memory variant of the
// persistence contract. One mutex held across every check-then-act
// sequence gives the same guarantee the Postgres store gets from its
// per-locker row locks.
type MemoryStore struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Reservation
	byCode  map[string]string // reservation_code -> id
	lockers map[string]struct{}
	events  map[string][]*domain.AccessEvent // reservation_id -> events
}

func NewMemoryStore(lockerIDs []string) *MemoryStore {
	lockers := make(map[string]struct{}, len(lockerIDs))
	for _, id := range lockerIDs {
		lockers[id] = struct{}{}
	}
	return &MemoryStore{
		byID:    make(map[string]*domain.Reservation),
		byCode:  make(map[string]string),
		lockers: lockers,
		events:  make(map[string][]*domain.AccessEvent),
	}
}

func (m *MemoryStore) Create(_ context.Context, res *domain.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.lockers[res.LockerID]; !ok {
		return domain.ErrLockerNotFound
	}
	if _, ok := m.byCode[res.ReservationCode]; ok {
		return domain.ErrReservationCodeTaken
	}
	for _, existing := range m.byID {
		if existing.Status == domain.ReservationStatusActive && existing.AccessCode == res.AccessCode {
			return domain.ErrAccessCodeTaken
		}
	}
	for _, existing := range m.byID {
		if existing.LockerID != res.LockerID || existing.Status != domain.ReservationStatusActive {
			continue
		}
		if existing.OverlapsWindow(res.StartTime, res.EndTime) {
			return domain.ErrConflict
		}
	}

	stored := *res
	m.byID[stored.ID] = &stored
	m.byCode[stored.ReservationCode] = stored.ID

	return nil
}

func (m *MemoryStore) GetByCode(_ context.Context, reservationCode string) (*domain.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byCode[reservationCode]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	return cloneReservation(m.byID[id]), nil
}

func (m *MemoryStore) FindActiveByAccessCode(_ context.Context, accessCode string) (*domain.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.byID {
		if r.Status == domain.ReservationStatusActive && r.AccessCode == accessCode {
			return cloneReservation(r), nil
		}
	}
	return nil, domain.ErrReservationNotFound
}

func (m *MemoryStore) ListActiveByUser(_ context.Context, userID string) ([]*domain.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var res []*domain.Reservation
	for _, r := range m.byID {
		if r.UserID == userID && r.Status == domain.ReservationStatusActive {
			res = append(res, cloneReservation(r))
		}
	}
	return res, nil
}

func (m *MemoryStore) List(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var res []*domain.Reservation
	for _, r := range m.byID {
		if filter.LockerID != "" && r.LockerID != filter.LockerID {
			continue
		}
		if filter.UserID != "" && r.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		res = append(res, cloneReservation(r))
	}
	return res, nil
}

func (m *MemoryStore) Update(_ context.Context, id string, change domain.ReservationChange, now time.Time) (*domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	if r.Status != domain.ReservationStatusActive {
		return nil, domain.ErrInvalidState
	}
	if !r.StartTime.After(now) {
		return nil, domain.ErrAlreadyStarted
	}

	if change.StartTime != nil {
		start, end := change.StartTime.UTC(), change.EndTime.UTC()
		for _, existing := range m.byID {
			if existing.ID == id || existing.LockerID != r.LockerID ||
				existing.Status != domain.ReservationStatusActive {
				continue
			}
			if existing.OverlapsWindow(start, end) {
				return nil, domain.ErrConflict
			}
		}
		r.StartTime = start
		r.EndTime = end
	}
	if change.Notes != nil {
		r.Notes = *change.Notes
	}
	modifiedAt := now
	actor := change.Actor
	r.ModifiedAt = &modifiedAt
	r.ModifiedBy = &actor

	return cloneReservation(r), nil
}

func (m *MemoryStore) Cancel(_ context.Context, id, actor string, now time.Time) (*domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	if r.Status != domain.ReservationStatusActive || !r.EndTime.After(now) {
		return nil, domain.ErrInvalidState
	}

	cancelledAt := now
	r.Status = domain.ReservationStatusCancelled
	r.CancelledAt = &cancelledAt
	r.CancelledBy = &actor

	return cloneReservation(r), nil
}

func (m *MemoryStore) SetAccessCode(_ context.Context, id, accessCode, actor string, now time.Time) (*domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	if r.Status != domain.ReservationStatusActive {
		return nil, domain.ErrInvalidState
	}
	for _, existing := range m.byID {
		if existing.ID != id && existing.Status == domain.ReservationStatusActive &&
			existing.AccessCode == accessCode {
			return nil, domain.ErrAccessCodeTaken
		}
	}

	modifiedAt := now
	r.AccessCode = accessCode
	r.ModifiedAt = &modifiedAt
	r.ModifiedBy = &actor

	return cloneReservation(r), nil
}

func (m *MemoryStore) RecordAccess(_ context.Context, event *domain.AccessEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.byID[event.ReservationID]
	if !ok || r.Status != domain.ReservationStatusActive {
		return domain.ErrInvalidState
	}

	r.Accessed = true
	stored := *event
	m.events[event.ReservationID] = append(m.events[event.ReservationID], &stored)

	return nil
}

func (m *MemoryStore) ListAccessEvents(_ context.Context, reservationID string) ([]*domain.AccessEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events := m.events[reservationID]
	out := make([]*domain.AccessEvent, 0, len(events))
	for _, e := range events {
		copied := *e
		out = append(out, &copied)
	}
	return out, nil
}

func (m *MemoryStore) TransitionDue(_ context.Context, id string, now time.Time, completeOnAccess bool) (*domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	transitionDue(r, now, completeOnAccess)
	return cloneReservation(r), nil
}

func (m *MemoryStore) SweepDue(_ context.Context, now time.Time, completeOnAccess bool) ([]*domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var swept []*domain.Reservation
	for _, r := range m.byID {
		if transitionDue(r, now, completeOnAccess) {
			swept = append(swept, cloneReservation(r))
		}
	}
	return swept, nil
}

func transitionDue(r *domain.Reservation, now time.Time, completeOnAccess bool) bool {
	if !r.DueAt(now) {
		return false
	}
	if completeOnAccess && r.Accessed {
		r.Status = domain.ReservationStatusCompleted
	} else {
		r.Status = domain.ReservationStatusExpired
	}
	return true
}

func cloneReservation(r *domain.Reservation) *domain.Reservation {
	copied := *r
	return &copied
}
