package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/JamilPr1/whatsapp-booking-system/internal/domain"
	"github.com/JamilPr1/whatsapp-booking-system/internal/observability"
	"github.com/JamilPr1/whatsapp-booking-system/internal/service/ports"
)

// ScheduleService covers the admin side of the calendar: listing day
// records, the unlock escape hatch, district overrides, and the next-day
// summary dispatch.
type ScheduleService struct {
	scheduleRepo ports.ScheduleRepo
	bookingRepo  ports.BookingRepo
	userRepo     ports.UserRepo
	notifier     ports.Notifier
	logger       logger.Logger
	loc          *time.Location
	now          func() time.Time
}

func NewScheduleService(
	scheduleRepo ports.ScheduleRepo,
	bookingRepo ports.BookingRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	log logger.Logger,
	loc *time.Location,
) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		logger:       log,
		loc:          loc,
		now:          time.Now,
	}
}

func (s *ScheduleService) List(ctx context.Context) ([]*domain.Schedule, error) {
	return s.scheduleRepo.List(ctx)
}

func (s *ScheduleService) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	return s.scheduleRepo.GetByID(ctx, id)
}

// Unlock clears a day's lock, reopening it to any district. The next
// admitted booking re-locks the day to its own district.
func (s *ScheduleService) Unlock(ctx context.Context, id string) (*domain.Schedule, error) {
	sched, err := s.scheduleRepo.Unlock(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("schedule unlocked",
		logger.String("schedule_id", id),
		logger.String("date", domain.DayKey(sched.Date)),
		logger.String("district", sched.District),
	)

	return sched, nil
}

func (s *ScheduleService) SetDistrict(ctx context.Context, id, district string) (*domain.Schedule, error) {
	if district == "" {
		return nil, fmt.Errorf("%w: district is required", domain.ErrValidation)
	}

	sched, err := s.scheduleRepo.SetDistrict(ctx, id, district)
	if err != nil {
		return nil, err
	}

	s.logger.Info("schedule district overridden",
		logger.String("schedule_id", id),
		logger.String("district", district),
	)

	return sched, nil
}

// SendDailySummaries pushes tomorrow's schedule to the active provider
// and driver. The claim on the schedule row makes the send idempotent
// across ticks, restarts and replicas.
func (s *ScheduleService) SendDailySummaries(ctx context.Context) error {
	tomorrow := domain.Day(s.now().In(s.loc)).AddDate(0, 0, 1)

	claimed, err := s.scheduleRepo.ClaimNotification(ctx, tomorrow)
	if err != nil {
		return fmt.Errorf("claim notification: %w", err)
	}
	if !claimed {
		return nil
	}

	sched, err := s.scheduleRepo.GetByDate(ctx, tomorrow)
	if err != nil {
		return fmt.Errorf("get tomorrow's schedule: %w", err)
	}

	bookings, err := s.bookingRepo.ListBySchedule(ctx, sched.ID)
	if err != nil {
		return fmt.Errorf("list tomorrow's bookings: %w", err)
	}

	active := bookings[:0:0]
	for _, b := range bookings {
		if b.Status != domain.BookingStatusCancelled {
			active = append(active, b)
		}
	}
	if len(active) == 0 {
		s.logger.Info("no bookings for tomorrow, summary skipped",
			logger.String("date", domain.DayKey(tomorrow)),
		)
		return nil
	}

	var recipients []*domain.User
	for _, role := range []domain.Role{domain.RoleProvider, domain.RoleDriver} {
		users, err := s.userRepo.ListActiveByRole(ctx, role)
		if err != nil {
			return fmt.Errorf("list %s users: %w", role, err)
		}
		recipients = append(recipients, users...)
	}

	s.notifier.NotifyDailySchedule(ctx, recipients, sched, active)
	observability.DailySummariesSent.Inc()

	s.logger.Info("daily summary sent",
		logger.String("date", domain.DayKey(tomorrow)),
		logger.Int("bookings", len(active)),
		logger.Int("recipients", len(recipients)),
	)

	return nil
}
