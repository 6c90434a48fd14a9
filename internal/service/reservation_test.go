package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/ezores/smart-locker-project-sub001/internal/domain"
	"github.com/ezores/smart-locker-project-sub001/internal/repository"
	"github.com/ezores/smart-locker-project-sub001/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time {
	return f.now
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestReservationService_Create_Success(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, notifier, fakeClock{testNow}, SweepPolicy{CompleteOnAccess: true}, log)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything).Return()

	res, err := svc.Create(context.Background(), domain.CreateReservationInput{
		UserID:    "u1",
		LockerID:  "L1",
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(3 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusActive, res.Status)
	assert.NotEmpty(t, res.ID)
	assert.Len(t, res.ReservationCode, 8)
	assert.Len(t, res.AccessCode, 8)
	assert.Equal(t, "u1", res.UserID)
	assert.Equal(t, "L1", res.LockerID)
	assert.Equal(t, testNow, res.CreatedAt)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Create_DurationBounds(t *testing.T) {
	cases := []struct {
		name     string
		duration time.Duration
		wantErr  bool
	}{
		{"exactly 30 minutes", 30 * time.Minute, false},
		{"just under 30 minutes", 30*time.Minute - time.Second, true},
		{"exactly 24 hours", 24 * time.Hour, false},
		{"just over 24 hours", 24*time.Hour + time.Second, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockReservationRepo(t)
			notifier := mocks.NewMockReservationNotifier(t)
			log := newTestLogger(t)

			svc := NewReservationService(repo, notifier, fakeClock{testNow}, SweepPolicy{CompleteOnAccess: true}, log)

			if !tc.wantErr {
				repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
				notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything).Return()
			}

			start := testNow.Add(time.Hour)
			_, err := svc.Create(context.Background(), domain.CreateReservationInput{
				UserID:    "u1",
				LockerID:  "L1",
				StartTime: start,
				EndTime:   start.Add(tc.duration),
			})

			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
			} else {
				assert.NoError(t, err)
				time.Sleep(50 * time.Millisecond)
			}
		})
	}
}

func TestReservationService_Create_StartNotInFuture(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, notifier, fakeClock{testNow}, SweepPolicy{CompleteOnAccess: true}, log)

	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		UserID:    "u1",
		LockerID:  "L1",
		StartTime: testNow, // not strictly in the future
		EndTime:   testNow.Add(time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Create_Conflict(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, notifier, fakeClock{testNow}, SweepPolicy{CompleteOnAccess: true}, log)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrConflict)

	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		UserID:    "u1",
		LockerID:  "L1",
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(2 * time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestReservationService_Create_RetriesOnCodeCollision(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, notifier, fakeClock{testNow}, SweepPolicy{CompleteOnAccess: true}, log)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAccessCodeTaken).Once()
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything).Return()

	res, err := svc.Create(context.Background(), domain.CreateReservationInput{
		UserID:    "u1",
		LockerID:  "L1",
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(2 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusActive, res.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Edit_TimesChangeTogether(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, notifier, fakeClock{testNow}, SweepPolicy{CompleteOnAccess: true}, log)

	start := testNow.Add(2 * time.Hour)
	_, err := svc.Edit(context.Background(), "ABCD1234", domain.ReservationChange{
		StartTime: &start,
		Actor:     "u1",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Edit_NotesOnly(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, notifier, fakeClock{testNow}, SweepPolicy{CompleteOnAccess: true}, log)

	current := &domain.Reservation{
		ID:        "r1",
		Status:    domain.ReservationStatusActive,
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(2 * time.Hour),
	}
	notes := "leave at the back"
	updated := &domain.Reservation{ID: "r1", Status: domain.ReservationStatusActive, Notes: notes}

	repo.EXPECT().GetByCode(mock.Anything, "ABCD1234").Return(current, nil)
	repo.EXPECT().Update(mock.Anything, "r1", mock.Anything, testNow).Return(updated, nil)

	res, err := svc.Edit(context.Background(), "ABCD1234", domain.ReservationChange{
		Notes: &notes,
		Actor: "u1",
	})

	require.NoError(t, err)
	assert.Equal(t, notes, res.Notes)
}

func TestReservationService_Edit_AlreadyStarted(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, notifier, fakeClock{testNow}, SweepPolicy{CompleteOnAccess: true}, log)

	current := &domain.Reservation{
		ID:        "r1",
		Status:    domain.ReservationStatusActive,
		StartTime: testNow.Add(-time.Hour),
		EndTime:   testNow.Add(time.Hour),
	}
	notes := "too late"

	repo.EXPECT().GetByCode(mock.Anything, "ABCD1234").Return(current, nil)
	repo.EXPECT().Update(mock.Anything, "r1", mock.Anything, testNow).Return(nil, domain.ErrAlreadyStarted)

	_, err := svc.Edit(context.Background(), "ABCD1234", domain.ReservationChange{
		Notes: &notes,
		Actor: "u1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyStarted)
}

func TestReservationService_Cancel_Success(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, notifier, fakeClock{testNow}, SweepPolicy{CompleteOnAccess: true}, log)

	current := &domain.Reservation{
		ID:        "r1",
		Status:    domain.ReservationStatusActive,
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(2 * time.Hour),
	}
	cancelled := &domain.Reservation{ID: "r1", Status: domain.ReservationStatusCancelled}

	repo.EXPECT().GetByCode(mock.Anything, "ABCD1234").Return(current, nil)
	repo.EXPECT().Cancel(mock.Anything, "r1", "u1", testNow).Return(cancelled, nil)
	notifier.EXPECT().NotifyReservationCancelled(mock.Anything, cancelled).Return()

	res, err := svc.Cancel(context.Background(), "ABCD1234", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCancelled, res.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_NotCancellable(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, notifier, fakeClock{testNow}, SweepPolicy{CompleteOnAccess: true}, log)

	current := &domain.Reservation{
		ID:        "r1",
		Status:    domain.ReservationStatusCancelled,
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(2 * time.Hour),
	}

	repo.EXPECT().GetByCode(mock.Anything, "ABCD1234").Return(current, nil)
	repo.EXPECT().Cancel(mock.Anything, "r1", "u1", testNow).Return(nil, domain.ErrInvalidState)

	_, err := svc.Cancel(context.Background(), "ABCD1234", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestReservationService_Get_TransitionsDue(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, notifier, fakeClock{testNow}, SweepPolicy{CompleteOnAccess: true}, log)

	due := &domain.Reservation{
		ID:        "r1",
		Status:    domain.ReservationStatusActive,
		StartTime: testNow.Add(-2 * time.Hour),
		EndTime:   testNow.Add(-time.Hour),
	}
	expired := &domain.Reservation{ID: "r1", Status: domain.ReservationStatusExpired}

	repo.EXPECT().GetByCode(mock.Anything, "ABCD1234").Return(due, nil)
	repo.EXPECT().TransitionDue(mock.Anything, "r1", testNow, true).Return(expired, nil)

	res, err := svc.Get(context.Background(), "ABCD1234")

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusExpired, res.Status)
}

func TestReservationService_Get_NotFound(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, notifier, fakeClock{testNow}, SweepPolicy{CompleteOnAccess: true}, log)

	repo.EXPECT().GetByCode(mock.Anything, "MISSING1").Return(nil, domain.ErrReservationNotFound)

	_, err := svc.Get(context.Background(), "MISSING1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_RegenerateAccessCode_Success(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, notifier, fakeClock{testNow}, SweepPolicy{CompleteOnAccess: true}, log)

	current := &domain.Reservation{
		ID:        "r1",
		Status:    domain.ReservationStatusActive,
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(2 * time.Hour),
	}
	updated := &domain.Reservation{ID: "r1", Status: domain.ReservationStatusActive, AccessCode: "00112233"}

	repo.EXPECT().GetByCode(mock.Anything, "ABCD1234").Return(current, nil)
	repo.EXPECT().SetAccessCode(mock.Anything, "r1", mock.Anything, "admin", testNow).Return(updated, nil)

	res, err := svc.RegenerateAccessCode(context.Background(), "ABCD1234", "admin")

	require.NoError(t, err)
	assert.Equal(t, "00112233", res.AccessCode)
}

func TestReservationService_RegenerateAccessCode_NotActive(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, notifier, fakeClock{testNow}, SweepPolicy{CompleteOnAccess: true}, log)

	current := &domain.Reservation{
		ID:        "r1",
		Status:    domain.ReservationStatusCancelled,
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(2 * time.Hour),
	}

	repo.EXPECT().GetByCode(mock.Anything, "ABCD1234").Return(current, nil)

	_, err := svc.RegenerateAccessCode(context.Background(), "ABCD1234", "admin")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestReservationService_SweepDue_NotifiesExpiredOnly(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, notifier, fakeClock{testNow}, SweepPolicy{CompleteOnAccess: true}, log)

	expired := &domain.Reservation{ID: "r1", Status: domain.ReservationStatusExpired}
	completed := &domain.Reservation{ID: "r2", Status: domain.ReservationStatusCompleted}

	repo.EXPECT().SweepDue(mock.Anything, testNow, true).Return([]*domain.Reservation{expired, completed}, nil)
	notifier.EXPECT().NotifyReservationExpired(mock.Anything, expired).Return()

	swept, err := svc.SweepDue(context.Background())

	require.NoError(t, err)
	assert.Len(t, swept, 2)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

// Lifecycle scenario against the in-memory store: a conflicting window
// is rejected while the first reservation holds the locker, and
// accepted again once it is cancelled.
func TestReservationService_Lifecycle_CancelFreesWindow(t *testing.T) {
	store := repository.NewMemoryStore([]string{"L1"})
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything).Return()
	notifier.EXPECT().NotifyReservationCancelled(mock.Anything, mock.Anything).Return()

	svc := NewReservationService(store, notifier, fakeClock{testNow}, SweepPolicy{CompleteOnAccess: true}, log)

	ctx := context.Background()
	input := domain.CreateReservationInput{
		UserID:    "u1",
		LockerID:  "L1",
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(3 * time.Hour),
	}

	first, err := svc.Create(ctx, input)
	require.NoError(t, err)

	// Overlapping window on the same locker.
	input.UserID = "u2"
	input.StartTime = testNow.Add(2 * time.Hour)
	input.EndTime = testNow.Add(4 * time.Hour)
	_, err = svc.Create(ctx, input)
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = svc.Cancel(ctx, first.ReservationCode, "u1")
	require.NoError(t, err)

	second, err := svc.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusActive, second.Status)
	assert.NotEqual(t, first.ReservationCode, second.ReservationCode)

	time.Sleep(50 * time.Millisecond)
}
