package ports

import (
	"context"

	"github.com/JamilPr1/whatsapp-booking-system/internal/domain"
)

type Notifier interface {
	NotifyBookingCreated(ctx context.Context, client *domain.User, b *domain.Booking, svc *domain.Service)
	NotifyBookingCancelled(ctx context.Context, client *domain.User, b *domain.Booking)
	NotifyDailySchedule(ctx context.Context, recipients []*domain.User, s *domain.Schedule, bookings []*domain.Booking)
}
