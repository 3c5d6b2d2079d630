package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JamilPr1/whatsapp-booking-system/internal/domain"
	"github.com/JamilPr1/whatsapp-booking-system/internal/service/ports/mocks"
)

type scheduleFixture struct {
	scheduleRepo *mocks.MockScheduleRepo
	bookingRepo  *mocks.MockBookingRepo
	userRepo     *mocks.MockUserRepo
	notifier     *mocks.MockNotifier
	svc          *ScheduleService
}

func newScheduleFixture(t *testing.T) *scheduleFixture {
	t.Helper()
	f := &scheduleFixture{
		scheduleRepo: mocks.NewMockScheduleRepo(t),
		bookingRepo:  mocks.NewMockBookingRepo(t),
		userRepo:     mocks.NewMockUserRepo(t),
		notifier:     mocks.NewMockNotifier(t),
	}
	f.svc = NewScheduleService(f.scheduleRepo, f.bookingRepo, f.userRepo, f.notifier, newTestLogger(t), time.UTC)
	f.svc.now = func() time.Time { return time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC) }
	return f
}

func TestScheduleService_Unlock(t *testing.T) {
	f := newScheduleFixture(t)

	unlocked := &domain.Schedule{ID: "d1", Date: day(2026, 9, 3), District: "Olaya", IsLocked: false}
	f.scheduleRepo.EXPECT().Unlock(mock.Anything, "d1").Return(unlocked, nil)

	got, err := f.svc.Unlock(context.Background(), "d1")

	require.NoError(t, err)
	assert.False(t, got.IsLocked)
}

func TestScheduleService_Unlock_NotFound(t *testing.T) {
	f := newScheduleFixture(t)

	f.scheduleRepo.EXPECT().Unlock(mock.Anything, "missing").Return(nil, domain.ErrScheduleNotFound)

	_, err := f.svc.Unlock(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScheduleNotFound)
}

func TestScheduleService_SetDistrict(t *testing.T) {
	f := newScheduleFixture(t)

	updated := &domain.Schedule{ID: "d1", Date: day(2026, 9, 3), District: "Malaz", IsLocked: true}
	f.scheduleRepo.EXPECT().SetDistrict(mock.Anything, "d1", "Malaz").Return(updated, nil)

	got, err := f.svc.SetDistrict(context.Background(), "d1", "Malaz")

	require.NoError(t, err)
	assert.Equal(t, "Malaz", got.District)
}

func TestScheduleService_SetDistrict_RequiresDistrict(t *testing.T) {
	f := newScheduleFixture(t)

	_, err := f.svc.SetDistrict(context.Background(), "d1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestScheduleService_SendDailySummaries(t *testing.T) {
	f := newScheduleFixture(t)

	tomorrow := day(2026, 9, 2)
	sched := &domain.Schedule{ID: "d1", Date: tomorrow, District: "Olaya"}
	bookings := []*domain.Booking{
		{ID: "b1", BookingTime: "09:00", Status: domain.BookingStatusConfirmed},
		{ID: "b2", BookingTime: "11:00", Status: domain.BookingStatusCancelled},
		{ID: "b3", BookingTime: "14:00", Status: domain.BookingStatusPending},
	}
	provider := &domain.User{ID: "p1", Role: domain.RoleProvider}
	driver := &domain.User{ID: "dr1", Role: domain.RoleDriver}

	f.scheduleRepo.EXPECT().ClaimNotification(mock.Anything, tomorrow).Return(true, nil)
	f.scheduleRepo.EXPECT().GetByDate(mock.Anything, tomorrow).Return(sched, nil)
	f.bookingRepo.EXPECT().ListBySchedule(mock.Anything, "d1").Return(bookings, nil)
	f.userRepo.EXPECT().ListActiveByRole(mock.Anything, domain.RoleProvider).Return([]*domain.User{provider}, nil)
	f.userRepo.EXPECT().ListActiveByRole(mock.Anything, domain.RoleDriver).Return([]*domain.User{driver}, nil)

	var notified []*domain.Booking
	f.notifier.EXPECT().NotifyDailySchedule(mock.Anything, []*domain.User{provider, driver}, sched, mock.Anything).
		Run(func(ctx context.Context, recipients []*domain.User, s *domain.Schedule, bs []*domain.Booking) {
			notified = bs
		}).
		Return()

	err := f.svc.SendDailySummaries(context.Background())

	require.NoError(t, err)
	require.Len(t, notified, 2, "cancelled bookings are left out of the summary")
	assert.Equal(t, "b1", notified[0].ID)
	assert.Equal(t, "b3", notified[1].ID)
}

func TestScheduleService_SendDailySummaries_AlreadyClaimed(t *testing.T) {
	f := newScheduleFixture(t)

	f.scheduleRepo.EXPECT().ClaimNotification(mock.Anything, day(2026, 9, 2)).Return(false, nil)

	err := f.svc.SendDailySummaries(context.Background())

	require.NoError(t, err)
}

func TestScheduleService_SendDailySummaries_AllCancelled(t *testing.T) {
	f := newScheduleFixture(t)

	tomorrow := day(2026, 9, 2)
	sched := &domain.Schedule{ID: "d1", Date: tomorrow, District: "Olaya"}

	f.scheduleRepo.EXPECT().ClaimNotification(mock.Anything, tomorrow).Return(true, nil)
	f.scheduleRepo.EXPECT().GetByDate(mock.Anything, tomorrow).Return(sched, nil)
	f.bookingRepo.EXPECT().ListBySchedule(mock.Anything, "d1").Return([]*domain.Booking{
		{ID: "b1", Status: domain.BookingStatusCancelled},
	}, nil)

	err := f.svc.SendDailySummaries(context.Background())

	require.NoError(t, err)
}

func TestScheduleService_SendDailySummaries_ClaimError(t *testing.T) {
	f := newScheduleFixture(t)

	f.scheduleRepo.EXPECT().ClaimNotification(mock.Anything, mock.Anything).Return(false, errors.New("db down"))

	err := f.svc.SendDailySummaries(context.Background())

	require.Error(t, err)
}
