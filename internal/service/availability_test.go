package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JamilPr1/whatsapp-booking-system/internal/domain"
	"github.com/JamilPr1/whatsapp-booking-system/internal/service/ports/mocks"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newAvailabilityFixture(t *testing.T, windowDays int) (*mocks.MockScheduleRepo, *mocks.MockBookingRepo, *AvailabilityService) {
	t.Helper()
	scheduleRepo := mocks.NewMockScheduleRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewAvailabilityService(scheduleRepo, bookingRepo, windowDays, time.UTC)
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }
	return scheduleRepo, bookingRepo, svc
}

func TestAvailabilityService_AvailableDates_Partitions(t *testing.T) {
	scheduleRepo, _, svc := newAvailabilityFixture(t, 30)

	scheduleRepo.EXPECT().ListLockedFrom(mock.Anything, day(2026, 9, 1)).Return([]*domain.Schedule{
		{ID: "d1", Date: day(2026, 9, 3), District: "Olaya"},
		{ID: "d2", Date: day(2026, 9, 4), District: "Malaz"},
		{ID: "d3", Date: day(2026, 9, 5), District: "Olaya"},
	}, nil)

	got, err := svc.AvailableDates(context.Background(), "Olaya")

	require.NoError(t, err)
	assert.Equal(t, []time.Time{day(2026, 9, 3), day(2026, 9, 5)}, got.Available)
	assert.Equal(t, []string{"2026-09-04"}, got.Unavailable)
}

func TestAvailabilityService_AvailableDates_RequiresDistrict(t *testing.T) {
	_, _, svc := newAvailabilityFixture(t, 30)

	_, err := svc.AvailableDates(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAvailabilityService_AvailableDates_NoLocks(t *testing.T) {
	scheduleRepo, _, svc := newAvailabilityFixture(t, 30)

	scheduleRepo.EXPECT().ListLockedFrom(mock.Anything, mock.Anything).Return(nil, nil)

	got, err := svc.AvailableDates(context.Background(), "Olaya")

	require.NoError(t, err)
	assert.Empty(t, got.Available)
	assert.Empty(t, got.Unavailable)
}

func TestAvailabilityService_TimeSlots_BlocksBookedHours(t *testing.T) {
	scheduleRepo, bookingRepo, svc := newAvailabilityFixture(t, 30)

	date := day(2026, 9, 3)
	scheduleRepo.EXPECT().GetByDateAndDistrict(mock.Anything, date, "Olaya").
		Return(&domain.Schedule{ID: "d1", Date: date, District: "Olaya"}, nil)
	bookingRepo.EXPECT().ListBySchedule(mock.Anything, "d1").Return([]*domain.Booking{
		// a 10:30 visit blocks the whole 10:00 hour
		{ID: "b1", BookingTime: "10:30", Status: domain.BookingStatusConfirmed},
		{ID: "b2", BookingTime: "13:00", Status: domain.BookingStatusCancelled},
		{ID: "b3", BookingTime: "17:00", Status: domain.BookingStatusPending},
	}, nil)

	slots, err := svc.TimeSlots(context.Background(), date, "Olaya")

	require.NoError(t, err)
	require.Len(t, slots, 9)

	byTime := make(map[string]bool, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}

	assert.False(t, byTime["10:00"], "10:30 booking must block the 10:00 slot")
	assert.True(t, byTime["11:00"])
	assert.True(t, byTime["13:00"], "cancelled bookings must not block slots")
	assert.False(t, byTime["17:00"])
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "17:00", slots[len(slots)-1].Time)
}

func TestAvailabilityService_TimeSlots_NoScheduleAllOpen(t *testing.T) {
	scheduleRepo, _, svc := newAvailabilityFixture(t, 30)

	date := day(2026, 9, 3)
	scheduleRepo.EXPECT().GetByDateAndDistrict(mock.Anything, date, "Olaya").
		Return(nil, domain.ErrScheduleNotFound)

	slots, err := svc.TimeSlots(context.Background(), date, "Olaya")

	require.NoError(t, err)
	require.Len(t, slots, 9)
	for _, s := range slots {
		assert.True(t, s.Available, "slot %s should be open", s.Time)
	}
}

func TestAvailabilityService_TimeSlots_RequiresDistrict(t *testing.T) {
	_, _, svc := newAvailabilityFixture(t, 30)

	_, err := svc.TimeSlots(context.Background(), day(2026, 9, 3), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAvailabilityService_FindNextAvailableDay_SkipsLocked(t *testing.T) {
	scheduleRepo, _, svc := newAvailabilityFixture(t, 30)

	start := day(2026, 9, 1)
	scheduleRepo.EXPECT().LockedDatesIn(mock.Anything, start, start.AddDate(0, 0, 30)).
		Return([]time.Time{day(2026, 9, 1), day(2026, 9, 2)}, nil)

	got, err := svc.FindNextAvailableDay(context.Background())

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, day(2026, 9, 3), *got)
}

func TestAvailabilityService_FindNextAvailableDay_TodayOpen(t *testing.T) {
	scheduleRepo, _, svc := newAvailabilityFixture(t, 30)

	scheduleRepo.EXPECT().LockedDatesIn(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	got, err := svc.FindNextAvailableDay(context.Background())

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, day(2026, 9, 1), *got)
}

func TestAvailabilityService_FindNextAvailableDay_WindowExhausted(t *testing.T) {
	scheduleRepo, _, svc := newAvailabilityFixture(t, 3)

	locked := []time.Time{day(2026, 9, 1), day(2026, 9, 2), day(2026, 9, 3)}
	scheduleRepo.EXPECT().LockedDatesIn(mock.Anything, mock.Anything, mock.Anything).Return(locked, nil)

	got, err := svc.FindNextAvailableDay(context.Background())

	require.NoError(t, err)
	assert.Nil(t, got)
}
