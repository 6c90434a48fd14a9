package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/ezores/smart-locker-project-sub001/internal/domain"
)

const (
	// Every storage call is bounded; a stuck database surfaces as
	// ErrStorageUnavailable instead of a hung request.
	opTimeout = 5 * time.Second

	reservationColumns = `id, reservation_code, access_code, user_id, locker_id,
       start_time, end_time, status, notes, accessed, created_at,
       cancelled_at, cancelled_by, modified_at, modified_by`
)

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts a reservation after an overlap check performed under
// a lock on the locker row. Concurrent creates on the same locker
// serialize on that row; creates on different lockers proceed in
// parallel.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin tx", err)
	}
	defer tx.Rollback()

	if err = lockLocker(ctx, tx, res.LockerID); err != nil {
		return err
	}

	conflict, err := hasOverlap(ctx, tx, res.LockerID, res.ID, res.StartTime, res.EndTime)
	if err != nil {
		return err
	}
	if conflict {
		return domain.ErrConflict
	}

	query := `INSERT INTO reservations
			  (id, reservation_code, access_code, user_id, locker_id,
			   start_time, end_time, status, notes, accessed, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.ExecContext(
		ctx, query,
		res.ID, res.ReservationCode, res.AccessCode, res.UserID, res.LockerID,
		res.StartTime, res.EndTime, res.Status, res.Notes, res.Accessed, res.CreatedAt,
	)
	if err != nil {
		if taken := codeTaken(err); taken != nil {
			return taken
		}
		return storageErr("insert reservation", err)
	}

	if err = tx.Commit(); err != nil {
		return storageErr("commit reservation", err)
	}

	return nil
}

func (r *ReservationRepository) GetByCode(ctx context.Context, reservationCode string) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE reservation_code = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, reservationCode)
	if err != nil {
		return nil, storageErr("get reservation", err)
	}

	res, err := scanReservation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReservationNotFound
	}
	if err != nil {
		return nil, storageErr("scan reservation", err)
	}

	return res, nil
}

func (r *ReservationRepository) FindActiveByAccessCode(ctx context.Context, accessCode string) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE access_code = $1 AND status = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, accessCode, domain.ReservationStatusActive)
	if err != nil {
		return nil, storageErr("find by access code", err)
	}

	res, err := scanReservation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReservationNotFound
	}
	if err != nil {
		return nil, storageErr("scan reservation", err)
	}

	return res, nil
}

func (r *ReservationRepository) ListActiveByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE user_id = $1 AND status = $2
			  ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID, domain.ReservationStatusActive)
	if err != nil {
		return nil, storageErr("list active by user", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := `SELECT ` + reservationColumns + ` FROM reservations`

	var conds []string
	var args []interface{}
	if filter.LockerID != "" {
		args = append(args, filter.LockerID)
		conds = append(conds, "locker_id = $"+strconv.Itoa(len(args)))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conds = append(conds, "user_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY start_time DESC"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, storageErr("list reservations", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

// Update applies an edit. A window change re-runs the overlap check
// (excluding the reservation itself) under the locker lock. The UPDATE
// itself carries the state guards; when no row matches, the reason is
// read back afterwards, so the guard and the write stay atomic.
func (r *ReservationRepository) Update(ctx context.Context, id string, change domain.ReservationChange, now time.Time) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storageErr("begin tx", err)
	}
	defer tx.Rollback()

	var lockerID string
	err = tx.QueryRowContext(ctx, `SELECT locker_id FROM reservations WHERE id = $1`, id).Scan(&lockerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReservationNotFound
	}
	if err != nil {
		return nil, storageErr("get reservation locker", err)
	}

	if change.StartTime != nil {
		if err = lockLocker(ctx, tx, lockerID); err != nil {
			return nil, err
		}
		conflict, overlapErr := hasOverlap(ctx, tx, lockerID, id, change.StartTime.UTC(), change.EndTime.UTC())
		if overlapErr != nil {
			return nil, overlapErr
		}
		if conflict {
			return nil, domain.ErrConflict
		}
	}

	query := `UPDATE reservations
			  SET start_time = COALESCE($3, start_time),
			      end_time = COALESCE($4, end_time),
			      notes = COALESCE($5, notes),
			      modified_at = $6,
			      modified_by = $7
			  WHERE id = $1
			    AND status = $2
			    AND start_time > $6
			  RETURNING ` + reservationColumns

	var start, end *time.Time
	if change.StartTime != nil {
		s, e := change.StartTime.UTC(), change.EndTime.UTC()
		start, end = &s, &e
	}

	res, err := scanReservation(tx.QueryRowContext(
		ctx, query,
		id, domain.ReservationStatusActive, start, end, change.Notes, now, change.Actor,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, r.editFailureReason(ctx, tx, id, now)
	}
	if err != nil {
		return nil, storageErr("update reservation", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, storageErr("commit update", err)
	}

	return res, nil
}

// editFailureReason distinguishes why a guarded edit matched no row.
func (r *ReservationRepository) editFailureReason(ctx context.Context, tx *sql.Tx, id string, now time.Time) error {
	var status domain.ReservationStatus
	var start time.Time
	err := tx.QueryRowContext(ctx,
		`SELECT status, start_time FROM reservations WHERE id = $1`, id,
	).Scan(&status, &start)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrReservationNotFound
	}
	if err != nil {
		return storageErr("inspect reservation", err)
	}

	if status != domain.ReservationStatusActive {
		return domain.ErrInvalidState
	}
	if !start.After(now) {
		return domain.ErrAlreadyStarted
	}
	return domain.ErrReservationNotFound
}

func (r *ReservationRepository) Cancel(ctx context.Context, id, actor string, now time.Time) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := `UPDATE reservations
			  SET status = $2, cancelled_at = $3, cancelled_by = $4
			  WHERE id = $1
			    AND status = $5
			    AND end_time > $3
			  RETURNING ` + reservationColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		id, domain.ReservationStatusCancelled, now, actor, domain.ReservationStatusActive,
	)
	if err != nil {
		return nil, storageErr("cancel reservation", err)
	}

	res, err := scanReservation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, r.cancelFailureReason(ctx, id)
	}
	if err != nil {
		return nil, storageErr("scan cancelled reservation", err)
	}

	return res, nil
}

func (r *ReservationRepository) cancelFailureReason(ctx context.Context, id string) error {
	var status domain.ReservationStatus
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT status FROM reservations WHERE id = $1`, id,
	)
	if err != nil {
		return storageErr("inspect reservation", err)
	}
	if err = row.Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReservationNotFound
		}
		return storageErr("inspect reservation", err)
	}
	// Still active means the window already ended and the row is
	// waiting for the sweep; cancelling is no longer legal either way.
	return domain.ErrInvalidState
}

// SetAccessCode swaps the numeric secret in one statement: at no
// instant do the old and the new code both validate.
func (r *ReservationRepository) SetAccessCode(ctx context.Context, id, accessCode, actor string, now time.Time) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := `UPDATE reservations
			  SET access_code = $2, modified_at = $3, modified_by = $4
			  WHERE id = $1 AND status = $5
			  RETURNING ` + reservationColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		id, accessCode, now, actor, domain.ReservationStatusActive,
	)
	if err != nil {
		if taken := codeTaken(err); taken != nil {
			return nil, taken
		}
		return nil, storageErr("set access code", err)
	}

	res, err := scanReservation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrInvalidState
	}
	if err != nil {
		if taken := codeTaken(err); taken != nil {
			return nil, taken
		}
		return nil, storageErr("scan reservation", err)
	}

	return res, nil
}

// RecordAccess stores the access event and marks the reservation row
// in the same transaction, so the sweep's completed/expired
// classification observes the access atomically.
func (r *ReservationRepository) RecordAccess(ctx context.Context, event *domain.AccessEvent) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin tx", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE reservations SET accessed = TRUE WHERE id = $1 AND status = $2`,
		event.ReservationID, domain.ReservationStatusActive,
	)
	if err != nil {
		return storageErr("mark reservation accessed", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storageErr("mark reservation accessed", err)
	}
	if affected == 0 {
		return domain.ErrInvalidState
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO access_events (id, reservation_id, locker_id, user_id, method, occurred_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		event.ID, event.ReservationID, event.LockerID, event.UserID, event.Method, event.OccurredAt,
	)
	if err != nil {
		return storageErr("insert access event", err)
	}

	if err = tx.Commit(); err != nil {
		return storageErr("commit access event", err)
	}

	return nil
}

func (r *ReservationRepository) ListAccessEvents(ctx context.Context, reservationID string) ([]*domain.AccessEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := `SELECT id, reservation_id, locker_id, user_id, method, occurred_at
			  FROM access_events
			  WHERE reservation_id = $1
			  ORDER BY occurred_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, reservationID)
	if err != nil {
		return nil, storageErr("list access events", err)
	}
	defer rows.Close()

	var events []*domain.AccessEvent
	for rows.Next() {
		var e domain.AccessEvent
		if err = rows.Scan(&e.ID, &e.ReservationID, &e.LockerID, &e.UserID, &e.Method, &e.OccurredAt); err != nil {
			return nil, storageErr("scan access event", err)
		}
		events = append(events, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, storageErr("list access events", err)
	}

	return events, nil
}

// TransitionDue closes one past-due active reservation. The row lock
// taken by the UPDATE serializes this against RecordAccess.
func (r *ReservationRepository) TransitionDue(ctx context.Context, id string, now time.Time, completeOnAccess bool) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := `UPDATE reservations
			  SET status = CASE WHEN $3 AND accessed THEN $4::text ELSE $5::text END
			  WHERE id = $1 AND status = $6 AND end_time <= $2
			  RETURNING ` + reservationColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		id, now, completeOnAccess,
		domain.ReservationStatusCompleted, domain.ReservationStatusExpired,
		domain.ReservationStatusActive,
	)
	if err != nil {
		return nil, storageErr("transition reservation", err)
	}

	res, err := scanReservation(row)
	if errors.Is(err, sql.ErrNoRows) {
		// Another caller transitioned it first; return the current row.
		return r.getByID(ctx, id)
	}
	if err != nil {
		return nil, storageErr("scan transitioned reservation", err)
	}

	return res, nil
}

func (r *ReservationRepository) getByID(ctx context.Context, id string) (*domain.Reservation, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id,
	)
	if err != nil {
		return nil, storageErr("get reservation", err)
	}

	res, err := scanReservation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReservationNotFound
	}
	if err != nil {
		return nil, storageErr("scan reservation", err)
	}

	return res, nil
}

func (r *ReservationRepository) SweepDue(ctx context.Context, now time.Time, completeOnAccess bool) ([]*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := `UPDATE reservations
			  SET status = CASE WHEN $2 AND accessed THEN $3::text ELSE $4::text END
			  WHERE status = $5 AND end_time <= $1
			  RETURNING ` + reservationColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		now, completeOnAccess,
		domain.ReservationStatusCompleted, domain.ReservationStatusExpired,
		domain.ReservationStatusActive,
	)
	if err != nil {
		return nil, storageErr("sweep due reservations", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func lockLocker(ctx context.Context, tx *sql.Tx, lockerID string) error {
	var one int
	err := tx.QueryRowContext(ctx, `SELECT 1 FROM lockers WHERE id = $1 FOR UPDATE`, lockerID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrLockerNotFound
	}
	if err != nil {
		return storageErr("lock locker", err)
	}
	return nil
}

func hasOverlap(ctx context.Context, tx *sql.Tx, lockerID, excludeID string, start, end time.Time) (bool, error) {
	// Half-open windows: [s1,e1) and [s2,e2) overlap iff s1 < e2 and s2 < e1.
	query := `SELECT EXISTS (
				SELECT 1 FROM reservations
				WHERE locker_id = $1 AND status = $2 AND id <> $3
				  AND start_time < $5 AND $4 < end_time
			  )`
	var conflict bool
	err := tx.QueryRowContext(ctx, query, lockerID, domain.ReservationStatusActive, excludeID, start, end).Scan(&conflict)
	if err != nil {
		return false, storageErr("check overlap", err)
	}
	return conflict, nil
}

func codeTaken(err error) error {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch pgErr.Constraint {
	case "reservations_reservation_code_key":
		return domain.ErrReservationCodeTaken
	case "reservations_active_access_code_idx":
		return domain.ErrAccessCodeTaken
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var notes sql.NullString
	var cancelledAt, modifiedAt sql.NullTime
	var cancelledBy, modifiedBy sql.NullString

	err := row.Scan(
		&res.ID, &res.ReservationCode, &res.AccessCode, &res.UserID, &res.LockerID,
		&res.StartTime, &res.EndTime, &res.Status, &notes, &res.Accessed, &res.CreatedAt,
		&cancelledAt, &cancelledBy, &modifiedAt, &modifiedBy,
	)
	if err != nil {
		return nil, err
	}

	res.Notes = notes.String
	if cancelledAt.Valid {
		t := cancelledAt.Time
		res.CancelledAt = &t
	}
	if cancelledBy.Valid {
		v := cancelledBy.String
		res.CancelledBy = &v
	}
	if modifiedAt.Valid {
		t := modifiedAt.Time
		res.ModifiedAt = &t
	}
	if modifiedBy.Valid {
		v := modifiedBy.String
		res.ModifiedBy = &v
	}

	return &res, nil
}

func collectReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	var res []*domain.Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, storageErr("scan reservation", err)
		}
		res = append(res, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate reservations", err)
	}
	return res, nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domain.ErrStorageUnavailable, err)
}
