package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/JamilPr1/whatsapp-booking-system/internal/domain"
)

type ScheduleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewScheduleRepo(db *dbpg.DB) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Admit runs the full admission as a single transaction. The day row is
// taken with an upsert whose no-op update acquires a row lock, so two
// concurrent admissions for the same date serialize here and the loser
// observes the winner's district lock.
func (r *ScheduleRepository) Admit(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	day := domain.Day(b.BookingDate)

	upsert := `INSERT INTO schedules (id, date, district, is_locked, created_at, updated_at)
			   VALUES ($1, $2, $3, TRUE, now(), now())
			   ON CONFLICT (date) DO UPDATE SET updated_at = now()
			   RETURNING id, district, is_locked`
	var (
		scheduleID string
		district   string
		isLocked   bool
	)
	if err = tx.QueryRowContext(ctx, upsert, uuid.New().String(), day, b.Location.District).
		Scan(&scheduleID, &district, &isLocked); err != nil {
		return fmt.Errorf("take day row: %w", err)
	}

	switch {
	case isLocked && district != b.Location.District:
		return &domain.DayLockedError{Date: day, District: district}
	case !isLocked:
		// Admin-unlocked day: the first new booking re-locks it.
		relock := `UPDATE schedules SET district = $2, is_locked = TRUE, updated_at = now() WHERE id = $1`
		if _, err = tx.ExecContext(ctx, relock, scheduleID, b.Location.District); err != nil {
			return fmt.Errorf("relock day: %w", err)
		}
	}

	insert := `INSERT INTO bookings (
				   id, client_id, service_id, provider_id, driver_id,
				   booking_date, booking_time, latitude, longitude, address, district,
				   status, payment_method, payment_status, amount, deposit_amount,
				   transaction_id, payment_intent_id, notes, conversation_id,
				   created_at, updated_at)
			   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
					   $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err = tx.ExecContext(ctx, insert,
		b.ID, b.ClientID, b.ServiceID, b.ProviderID, b.DriverID,
		day, b.BookingTime,
		b.Location.Latitude, b.Location.Longitude, b.Location.Address, b.Location.District,
		b.Status, b.Payment.Method, b.Payment.Status, b.Payment.Amount, b.Payment.DepositAmount,
		b.Payment.TransactionID, b.Payment.PaymentIntentID, b.Notes, b.ConversationID,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: unknown client or service", domain.ErrValidation)
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	link := `INSERT INTO schedule_bookings (schedule_id, booking_id) VALUES ($1, $2)`
	if _, err = tx.ExecContext(ctx, link, scheduleID, b.ID); err != nil {
		return fmt.Errorf("link booking to schedule: %w", err)
	}

	return tx.Commit()
}

const scheduleColumns = `
	s.id, s.date, s.district, s.provider_id, s.driver_id, s.is_locked, s.notified_at,
	s.created_at, s.updated_at,
	COALESCE(array_agg(sb.booking_id) FILTER (WHERE sb.booking_id IS NOT NULL), '{}')`

const scheduleJoin = `
	FROM schedules s
	LEFT JOIN schedule_bookings sb ON sb.schedule_id = s.id`

func scanSchedule(row interface{ Scan(...any) error }) (*domain.Schedule, error) {
	var (
		s   domain.Schedule
		ids pq.StringArray
	)
	if err := row.Scan(
		&s.ID, &s.Date, &s.District, &s.ProviderID, &s.DriverID, &s.IsLocked, &s.NotifiedAt,
		&s.CreatedAt, &s.UpdatedAt, &ids,
	); err != nil {
		return nil, err
	}
	s.BookingIDs = ids
	return &s, nil
}

func (r *ScheduleRepository) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	query := `SELECT` + scheduleColumns + scheduleJoin + `
			  WHERE s.id = $1
			  GROUP BY s.id`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	s, err := scanSchedule(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("scan schedule: %w", err)
	}

	return s, nil
}

func (r *ScheduleRepository) GetByDate(ctx context.Context, date time.Time) (*domain.Schedule, error) {
	query := `SELECT` + scheduleColumns + scheduleJoin + `
			  WHERE s.date = $1
			  GROUP BY s.id`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, domain.Day(date))
	if err != nil {
		return nil, fmt.Errorf("get schedule by date: %w", err)
	}

	s, err := scanSchedule(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("scan schedule: %w", err)
	}

	return s, nil
}

func (r *ScheduleRepository) GetByDateAndDistrict(ctx context.Context, date time.Time, district string) (*domain.Schedule, error) {
	query := `SELECT` + scheduleColumns + scheduleJoin + `
			  WHERE s.date = $1 AND s.district = $2
			  GROUP BY s.id`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, domain.Day(date), district)
	if err != nil {
		return nil, fmt.Errorf("get schedule by date and district: %w", err)
	}

	s, err := scanSchedule(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("scan schedule: %w", err)
	}

	return s, nil
}

func (r *ScheduleRepository) List(ctx context.Context) ([]*domain.Schedule, error) {
	query := `SELECT` + scheduleColumns + scheduleJoin + `
			  GROUP BY s.id
			  ORDER BY s.date`
	return r.queryMany(ctx, query)
}

func (r *ScheduleRepository) ListLockedFrom(ctx context.Context, from time.Time) ([]*domain.Schedule, error) {
	query := `SELECT` + scheduleColumns + scheduleJoin + `
			  WHERE s.is_locked AND s.date >= $1
			  GROUP BY s.id
			  ORDER BY s.date`
	return r.queryMany(ctx, query, domain.Day(from))
}

func (r *ScheduleRepository) queryMany(ctx context.Context, query string, args ...any) ([]*domain.Schedule, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()

	var res []*domain.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func (r *ScheduleRepository) LockedDatesIn(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	query := `SELECT date FROM schedules
			  WHERE is_locked AND date >= $1 AND date <= $2
			  ORDER BY date`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.Day(from), domain.Day(to))
	if err != nil {
		return nil, fmt.Errorf("locked dates: %w", err)
	}
	defer rows.Close()

	var res []time.Time
	for rows.Next() {
		var d time.Time
		if err = rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan date: %w", err)
		}
		res = append(res, d)
	}

	return res, rows.Err()
}

func (r *ScheduleRepository) Unlock(ctx context.Context, id string) (*domain.Schedule, error) {
	query := `UPDATE schedules SET is_locked = FALSE, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("unlock schedule: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, domain.ErrScheduleNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *ScheduleRepository) SetDistrict(ctx context.Context, id, district string) (*domain.Schedule, error) {
	query := `UPDATE schedules SET district = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, district)
	if err != nil {
		return nil, fmt.Errorf("set district: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, domain.ErrScheduleNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *ScheduleRepository) ClaimNotification(ctx context.Context, date time.Time) (bool, error) {
	query := `UPDATE schedules SET notified_at = now(), updated_at = now()
			  WHERE date = $1 AND notified_at IS NULL`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, domain.Day(date))
	if err != nil {
		return false, fmt.Errorf("claim notification: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("claim rows affected: %w", err)
	}

	return n == 1, nil
}
