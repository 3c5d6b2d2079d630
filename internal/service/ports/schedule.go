package ports

import (
	"context"
	"time"

	"github.com/JamilPr1/whatsapp-booking-system/internal/domain"
)

type ScheduleRepo interface {
	// Admit performs the whole admission as one transaction: it takes the
	// day row (creating and locking it when absent), verifies the district
	// lock, persists the booking and links it to the schedule. A day held
	// by another district surfaces as *domain.DayLockedError.
	Admit(ctx context.Context, b *domain.Booking) error

	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	GetByDate(ctx context.Context, date time.Time) (*domain.Schedule, error)
	GetByDateAndDistrict(ctx context.Context, date time.Time, district string) (*domain.Schedule, error)
	List(ctx context.Context) ([]*domain.Schedule, error)
	ListLockedFrom(ctx context.Context, from time.Time) ([]*domain.Schedule, error)
	LockedDatesIn(ctx context.Context, from, to time.Time) ([]time.Time, error)
	Unlock(ctx context.Context, id string) (*domain.Schedule, error)
	SetDistrict(ctx context.Context, id, district string) (*domain.Schedule, error)

	// ClaimNotification atomically marks date's schedule as notified and
	// reports whether this caller won the claim.
	ClaimNotification(ctx context.Context, date time.Time) (bool, error)
}
