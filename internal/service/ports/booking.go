package ports

import (
	"context"

	"github.com/JamilPr1/whatsapp-booking-system/internal/domain"
)

type BookingRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	ListBySchedule(ctx context.Context, scheduleID string) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	SetPaymentIntent(ctx context.Context, id, intentID string) error
	MarkPaidByIntent(ctx context.Context, intentID string) (*domain.Booking, error)
}
