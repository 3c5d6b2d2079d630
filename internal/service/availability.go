package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JamilPr1/whatsapp-booking-system/internal/domain"
	"github.com/JamilPr1/whatsapp-booking-system/internal/service/ports"
)

const (
	dayStartHour = 9  // first bookable slot
	dayEndHour   = 18 // exclusive
)

// AvailabilityService answers read-only questions about the calendar:
// which days a district can book, which hourly slots a day still has, and
// where the next fully open day is. It never writes.
type AvailabilityService struct {
	scheduleRepo ports.ScheduleRepo
	bookingRepo  ports.BookingRepo
	windowDays   int
	loc          *time.Location
	now          func() time.Time
}

func NewAvailabilityService(
	scheduleRepo ports.ScheduleRepo,
	bookingRepo ports.BookingRepo,
	windowDays int,
	loc *time.Location,
) *AvailabilityService {
	return &AvailabilityService{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		windowDays:   windowDays,
		loc:          loc,
		now:          time.Now,
	}
}

func (s *AvailabilityService) today() time.Time {
	return domain.Day(s.now().In(s.loc))
}

// AvailableDates partitions upcoming locked days for a district: days
// locked to it are available, days locked to anyone else are not. Days
// with no schedule at all appear in neither list and are open to all.
func (s *AvailabilityService) AvailableDates(ctx context.Context, district string) (*domain.DateAvailability, error) {
	if district == "" {
		return nil, fmt.Errorf("%w: district is required", domain.ErrValidation)
	}

	locked, err := s.scheduleRepo.ListLockedFrom(ctx, s.today())
	if err != nil {
		return nil, fmt.Errorf("list locked schedules: %w", err)
	}

	res := &domain.DateAvailability{
		Available:   []time.Time{},
		Unavailable: []string{},
	}
	for _, sched := range locked {
		if sched.District == district {
			res.Available = append(res.Available, sched.Date)
		} else {
			res.Unavailable = append(res.Unavailable, domain.DayKey(sched.Date))
		}
	}

	return res, nil
}

// TimeSlots lists the day's hourly slots for a district. A slot is taken
// when any non-cancelled booking on that day's schedule starts in the
// same hour; minutes do not matter.
func (s *AvailabilityService) TimeSlots(ctx context.Context, date time.Time, district string) ([]domain.TimeSlot, error) {
	if district == "" {
		return nil, fmt.Errorf("%w: district is required", domain.ErrValidation)
	}

	taken := make(map[int]bool)

	sched, err := s.scheduleRepo.GetByDateAndDistrict(ctx, date, district)
	switch {
	case errors.Is(err, domain.ErrScheduleNotFound):
		// no schedule for this date+district, every slot is open
	case err != nil:
		return nil, fmt.Errorf("get schedule: %w", err)
	default:
		bookings, err := s.bookingRepo.ListBySchedule(ctx, sched.ID)
		if err != nil {
			return nil, fmt.Errorf("list schedule bookings: %w", err)
		}
		for _, b := range bookings {
			if b.Status == domain.BookingStatusCancelled {
				continue
			}
			hour, err := b.Hour()
			if err != nil {
				continue
			}
			taken[hour] = true
		}
	}

	slots := make([]domain.TimeSlot, 0, dayEndHour-dayStartHour)
	for hour := dayStartHour; hour < dayEndHour; hour++ {
		slots = append(slots, domain.TimeSlot{
			Time:      fmt.Sprintf("%02d:00", hour),
			Available: !taken[hour],
		})
	}

	return slots, nil
}

// FindNextAvailableDay scans forward from today through the booking
// window for the first day with no lock at all. Unlocked schedule rows
// count as open days. Returns nil when the window is exhausted.
func (s *AvailabilityService) FindNextAvailableDay(ctx context.Context) (*time.Time, error) {
	start := s.today()
	end := start.AddDate(0, 0, s.windowDays)

	lockedDates, err := s.scheduleRepo.LockedDatesIn(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("locked dates in window: %w", err)
	}

	locked := make(map[string]struct{}, len(lockedDates))
	for _, d := range lockedDates {
		locked[domain.DayKey(d)] = struct{}{}
	}

	for i := 0; i < s.windowDays; i++ {
		day := start.AddDate(0, 0, i)
		if _, ok := locked[domain.DayKey(day)]; !ok {
			return &day, nil
		}
	}

	return nil, nil
}
