package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/JamilPr1/whatsapp-booking-system/internal/domain"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const bookingColumns = `
	id, client_id, service_id, provider_id, driver_id,
	booking_date, booking_time, latitude, longitude, address, district,
	status, payment_method, payment_status, amount, deposit_amount,
	transaction_id, payment_intent_id, notes, conversation_id,
	created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.ClientID, &b.ServiceID, &b.ProviderID, &b.DriverID,
		&b.BookingDate, &b.BookingTime,
		&b.Location.Latitude, &b.Location.Longitude, &b.Location.Address, &b.Location.District,
		&b.Status, &b.Payment.Method, &b.Payment.Status, &b.Payment.Amount, &b.Payment.DepositAmount,
		&b.Payment.TransactionID, &b.Payment.PaymentIntentID, &b.Notes, &b.ConversationID,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	query := `SELECT` + bookingColumns + `
			  FROM bookings
			  WHERE ($1 = '' OR client_id = $1)
			    AND ($2::date IS NULL OR booking_date = $2)
			    AND ($3 = '' OR status = $3)
			  ORDER BY booking_date DESC, booking_time DESC`

	var date any
	if filter.Date != nil {
		date = domain.Day(*filter.Date)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, filter.ClientID, date, string(filter.Status))
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListBySchedule(ctx context.Context, scheduleID string) ([]*domain.Booking, error) {
	query := `SELECT` + bookingColumns + `
			  FROM bookings
			  WHERE id IN (SELECT booking_id FROM schedule_bookings WHERE schedule_id = $1)
			  ORDER BY booking_time`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by schedule: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	query := `UPDATE bookings SET status = $2, updated_at = now()
			  WHERE id = $1
			  RETURNING` + bookingColumns
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) SetPaymentIntent(ctx context.Context, id, intentID string) error {
	query := `UPDATE bookings SET payment_intent_id = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, intentID)
	if err != nil {
		return fmt.Errorf("set payment intent: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

// MarkPaidByIntent finalizes a confirmed online payment: payment goes to
// paid with the intent as transaction reference, and a pending booking is
// promoted to confirmed.
func (r *BookingRepository) MarkPaidByIntent(ctx context.Context, intentID string) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET payment_status = $2,
			      transaction_id = payment_intent_id,
			      status = CASE WHEN status = $3 THEN $4 ELSE status END,
			      updated_at = now()
			  WHERE payment_intent_id = $1
			  RETURNING` + bookingColumns
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query,
		intentID, domain.PaymentStatusPaid, domain.BookingStatusPending, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("mark paid: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}
