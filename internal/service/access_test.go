package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ezores/smart-locker-project-sub001/internal/domain"
	"github.com/ezores/smart-locker-project-sub001/internal/service/ports/mocks"
)

func activeReservation(start, end time.Time) *domain.Reservation {
	return &domain.Reservation{
		ID:        "r1",
		UserID:    "u1",
		LockerID:  "L1",
		StartTime: start,
		EndTime:   end,
		Status:    domain.ReservationStatusActive,
	}
}

func TestAccessService_ValidateByCode_Granted(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	tokens := mocks.NewMockTokenRepo(t)
	actuator := mocks.NewMockLockerActuator(t)
	log := newTestLogger(t)

	svc := NewAccessService(repo, tokens, actuator, fakeClock{testNow}, log)

	res := activeReservation(testNow.Add(-time.Hour), testNow.Add(time.Hour))

	var recorded *domain.AccessEvent
	repo.EXPECT().FindActiveByAccessCode(mock.Anything, "00112233").Return(res, nil)
	repo.EXPECT().RecordAccess(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *domain.AccessEvent) {
			recorded = event
		}).
		Return(nil)
	actuator.EXPECT().Open(mock.Anything, "L1").Return(nil)

	decision, err := svc.ValidateByCode(context.Background(), "00112233")

	require.NoError(t, err)
	assert.True(t, decision.Granted)
	assert.True(t, decision.Opened)
	assert.Equal(t, domain.AccessMethodCode, decision.Method)
	assert.Equal(t, "r1", decision.ReservationID)

	require.NotNil(t, recorded)
	assert.Equal(t, "r1", recorded.ReservationID)
	assert.Equal(t, "L1", recorded.LockerID)
	assert.Equal(t, "u1", recorded.UserID)
	assert.Equal(t, domain.AccessMethodCode, recorded.Method)
	assert.Equal(t, testNow, recorded.OccurredAt)
}

func TestAccessService_ValidateByCode_WindowEdge(t *testing.T) {
	end := testNow.Add(time.Hour)

	cases := []struct {
		name        string
		now         time.Time
		wantGranted bool
		wantReason  domain.DenyReason
	}{
		{"one second before end", end.Add(-time.Second), true, ""},
		{"exactly at end", end, false, domain.DenyReasonExpired},
		{"before start", testNow.Add(-time.Minute), false, domain.DenyReasonNotYetStarted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockReservationRepo(t)
			tokens := mocks.NewMockTokenRepo(t)
			actuator := mocks.NewMockLockerActuator(t)
			log := newTestLogger(t)

			svc := NewAccessService(repo, tokens, actuator, fakeClock{tc.now}, log)

			res := activeReservation(testNow, end)
			repo.EXPECT().FindActiveByAccessCode(mock.Anything, "00112233").Return(res, nil)
			if tc.wantGranted {
				repo.EXPECT().RecordAccess(mock.Anything, mock.Anything).Return(nil)
				actuator.EXPECT().Open(mock.Anything, "L1").Return(nil)
			}

			decision, err := svc.ValidateByCode(context.Background(), "00112233")

			require.NoError(t, err)
			assert.Equal(t, tc.wantGranted, decision.Granted)
			if !tc.wantGranted {
				assert.Equal(t, tc.wantReason, decision.Reason)
			}
		})
	}
}

func TestAccessService_ValidateByCode_UnknownCode(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	tokens := mocks.NewMockTokenRepo(t)
	actuator := mocks.NewMockLockerActuator(t)
	log := newTestLogger(t)

	svc := NewAccessService(repo, tokens, actuator, fakeClock{testNow}, log)

	repo.EXPECT().FindActiveByAccessCode(mock.Anything, "99999999").Return(nil, domain.ErrReservationNotFound)

	decision, err := svc.ValidateByCode(context.Background(), "99999999")

	require.NoError(t, err)
	assert.False(t, decision.Granted)
	assert.Equal(t, domain.DenyReasonNoReservation, decision.Reason)
}

func TestAccessService_ValidateByToken_Granted(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	tokens := mocks.NewMockTokenRepo(t)
	actuator := mocks.NewMockLockerActuator(t)
	log := newTestLogger(t)

	svc := NewAccessService(repo, tokens, actuator, fakeClock{testNow}, log)

	res := activeReservation(testNow.Add(-time.Hour), testNow.Add(time.Hour))

	tokens.EXPECT().ResolveUser(mock.Anything, "tok-1").Return("u1", nil)
	repo.EXPECT().ListActiveByUser(mock.Anything, "u1").Return([]*domain.Reservation{res}, nil)
	repo.EXPECT().RecordAccess(mock.Anything, mock.Anything).Return(nil)
	actuator.EXPECT().Open(mock.Anything, "L1").Return(nil)

	decision, err := svc.ValidateByToken(context.Background(), "tok-1", "L1")

	require.NoError(t, err)
	assert.True(t, decision.Granted)
	assert.Equal(t, domain.AccessMethodToken, decision.Method)
}

func TestAccessService_ValidateByToken_UnknownToken(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	tokens := mocks.NewMockTokenRepo(t)
	actuator := mocks.NewMockLockerActuator(t)
	log := newTestLogger(t)

	svc := NewAccessService(repo, tokens, actuator, fakeClock{testNow}, log)

	tokens.EXPECT().ResolveUser(mock.Anything, "tok-x").Return("", domain.ErrTokenNotFound)

	decision, err := svc.ValidateByToken(context.Background(), "tok-x", "L1")

	require.NoError(t, err)
	assert.False(t, decision.Granted)
	assert.Equal(t, domain.DenyReasonNoReservation, decision.Reason)
}

func TestAccessService_ValidateByToken_WrongLocker(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	tokens := mocks.NewMockTokenRepo(t)
	actuator := mocks.NewMockLockerActuator(t)
	log := newTestLogger(t)

	svc := NewAccessService(repo, tokens, actuator, fakeClock{testNow}, log)

	res := activeReservation(testNow.Add(-time.Hour), testNow.Add(time.Hour))

	tokens.EXPECT().ResolveUser(mock.Anything, "tok-1").Return("u1", nil)
	repo.EXPECT().ListActiveByUser(mock.Anything, "u1").Return([]*domain.Reservation{res}, nil)

	decision, err := svc.ValidateByToken(context.Background(), "tok-1", "L2")

	require.NoError(t, err)
	assert.False(t, decision.Granted)
	assert.Equal(t, domain.DenyReasonWrongLocker, decision.Reason)
	assert.Equal(t, "r1", decision.ReservationID)
}

func TestAccessService_ValidateByToken_PicksContainingWindow(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	tokens := mocks.NewMockTokenRepo(t)
	actuator := mocks.NewMockLockerActuator(t)
	log := newTestLogger(t)

	svc := NewAccessService(repo, tokens, actuator, fakeClock{testNow}, log)

	current := activeReservation(testNow.Add(-time.Hour), testNow.Add(time.Hour))
	upcoming := activeReservation(testNow.Add(2*time.Hour), testNow.Add(3*time.Hour))
	upcoming.ID = "r2"

	tokens.EXPECT().ResolveUser(mock.Anything, "tok-1").Return("u1", nil)
	repo.EXPECT().ListActiveByUser(mock.Anything, "u1").Return([]*domain.Reservation{upcoming, current}, nil)
	repo.EXPECT().RecordAccess(mock.Anything, mock.Anything).Return(nil)
	actuator.EXPECT().Open(mock.Anything, "L1").Return(nil)

	decision, err := svc.ValidateByToken(context.Background(), "tok-1", "L1")

	require.NoError(t, err)
	assert.True(t, decision.Granted)
	assert.Equal(t, "r1", decision.ReservationID)
}

func TestAccessService_ValidateByToken_UpcomingOnly_NotYetStarted(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	tokens := mocks.NewMockTokenRepo(t)
	actuator := mocks.NewMockLockerActuator(t)
	log := newTestLogger(t)

	svc := NewAccessService(repo, tokens, actuator, fakeClock{testNow}, log)

	upcoming := activeReservation(testNow.Add(time.Hour), testNow.Add(2*time.Hour))

	tokens.EXPECT().ResolveUser(mock.Anything, "tok-1").Return("u1", nil)
	repo.EXPECT().ListActiveByUser(mock.Anything, "u1").Return([]*domain.Reservation{upcoming}, nil)

	decision, err := svc.ValidateByToken(context.Background(), "tok-1", "L1")

	require.NoError(t, err)
	assert.False(t, decision.Granted)
	assert.Equal(t, domain.DenyReasonNotYetStarted, decision.Reason)
}

func TestAccessService_ActuatorFailure_GrantStands(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	tokens := mocks.NewMockTokenRepo(t)
	actuator := mocks.NewMockLockerActuator(t)
	log := newTestLogger(t)

	svc := NewAccessService(repo, tokens, actuator, fakeClock{testNow}, log)

	res := activeReservation(testNow.Add(-time.Hour), testNow.Add(time.Hour))

	repo.EXPECT().FindActiveByAccessCode(mock.Anything, "00112233").Return(res, nil)
	repo.EXPECT().RecordAccess(mock.Anything, mock.Anything).Return(nil)
	actuator.EXPECT().Open(mock.Anything, "L1").Return(errors.New("relay stuck"))

	decision, err := svc.ValidateByCode(context.Background(), "00112233")

	require.NoError(t, err)
	assert.True(t, decision.Granted)
	assert.False(t, decision.Opened)
}

func TestAccessService_SweepWinsRace_DeniedExpired(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	tokens := mocks.NewMockTokenRepo(t)
	actuator := mocks.NewMockLockerActuator(t)
	log := newTestLogger(t)

	svc := NewAccessService(repo, tokens, actuator, fakeClock{testNow}, log)

	res := activeReservation(testNow.Add(-time.Hour), testNow.Add(time.Hour))

	repo.EXPECT().FindActiveByAccessCode(mock.Anything, "00112233").Return(res, nil)
	repo.EXPECT().RecordAccess(mock.Anything, mock.Anything).Return(domain.ErrInvalidState)

	decision, err := svc.ValidateByCode(context.Background(), "00112233")

	require.NoError(t, err)
	assert.False(t, decision.Granted)
	assert.Equal(t, domain.DenyReasonExpired, decision.Reason)
}
