package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/JamilPr1/whatsapp-booking-system/internal/domain"
	svcmocks "github.com/JamilPr1/whatsapp-booking-system/internal/service/mocks"
	"github.com/JamilPr1/whatsapp-booking-system/internal/service/ports"
	"github.com/JamilPr1/whatsapp-booking-system/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingFixture struct {
	bookingRepo  *mocks.MockBookingRepo
	scheduleRepo *mocks.MockScheduleRepo
	serviceRepo  *mocks.MockServiceRepo
	userRepo     *mocks.MockUserRepo
	fallback     *svcmocks.MockFallbackLocator
	geocoder     *mocks.MockGeocoder
	payments     *mocks.MockPaymentProvider
	notifier     *mocks.MockNotifier
	svc          *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	f := &bookingFixture{
		bookingRepo:  mocks.NewMockBookingRepo(t),
		scheduleRepo: mocks.NewMockScheduleRepo(t),
		serviceRepo:  mocks.NewMockServiceRepo(t),
		userRepo:     mocks.NewMockUserRepo(t),
		fallback:     svcmocks.NewMockFallbackLocator(t),
		geocoder:     mocks.NewMockGeocoder(t),
		payments:     mocks.NewMockPaymentProvider(t),
		notifier:     mocks.NewMockNotifier(t),
	}
	f.svc = NewBookingService(
		f.bookingRepo, f.scheduleRepo, f.serviceRepo, f.userRepo,
		f.fallback, f.geocoder, f.payments, f.notifier,
		newTestLogger(t), time.UTC, 48*time.Hour,
	)
	return f
}

func validBookingInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		ClientID:    "c1",
		ServiceID:   "s1",
		BookingDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		BookingTime: "10:00",
		Location: domain.Location{
			Latitude:  24.7136,
			Longitude: 46.6753,
			Address:   "King Fahd Rd",
			District:  "Olaya",
		},
		Method: domain.PaymentMethodOnline,
	}
}

func activeService() *domain.Service {
	return &domain.Service{
		ID:            "s1",
		Name:          "Home Cleaning",
		Price:         250,
		DepositAmount: 50,
		IsActive:      true,
	}
}

func TestBookingService_CreateBooking_Admits(t *testing.T) {
	f := newBookingFixture(t)

	svc := activeService()
	client := &domain.User{ID: "c1", Name: "Sara"}

	f.serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(svc, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "c1").Return(client, nil)
	f.scheduleRepo.EXPECT().Admit(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyBookingCreated(mock.Anything, client, mock.Anything, svc).Return()

	booking, err := f.svc.CreateBooking(context.Background(), validBookingInput())

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "Olaya", booking.Location.District)
	assert.Equal(t, 250.0, booking.Payment.Amount)
	assert.Equal(t, 50.0, booking.Payment.DepositAmount)
	assert.Equal(t, domain.PaymentStatusPending, booking.Payment.Status)
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), booking.BookingDate)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_CreateBooking_DistrictConflict(t *testing.T) {
	f := newBookingFixture(t)

	input := validBookingInput()
	suggested := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	f.serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(activeService(), nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.User{ID: "c1"}, nil)
	f.scheduleRepo.EXPECT().Admit(mock.Anything, mock.Anything).
		Return(&domain.DayLockedError{Date: input.BookingDate, District: "Malaz"})
	f.fallback.EXPECT().FindNextAvailableDay(mock.Anything).Return(&suggested, nil)

	_, err := f.svc.CreateBooking(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDistrictConflict)

	var conflict *domain.DistrictConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Malaz", conflict.LockedDistrict)
	require.NotNil(t, conflict.SuggestedDate)
	assert.Equal(t, suggested, *conflict.SuggestedDate)
}

func TestBookingService_CreateBooking_ConflictWindowExhausted(t *testing.T) {
	f := newBookingFixture(t)

	input := validBookingInput()

	f.serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(activeService(), nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.User{ID: "c1"}, nil)
	f.scheduleRepo.EXPECT().Admit(mock.Anything, mock.Anything).
		Return(&domain.DayLockedError{Date: input.BookingDate, District: "Malaz"})
	f.fallback.EXPECT().FindNextAvailableDay(mock.Anything).Return(nil, nil)

	_, err := f.svc.CreateBooking(context.Background(), input)

	require.Error(t, err)
	var conflict *domain.DistrictConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Nil(t, conflict.SuggestedDate)
	assert.Contains(t, err.Error(), "no available days found")
}

func TestBookingService_CreateBooking_ConflictFallbackFailure(t *testing.T) {
	f := newBookingFixture(t)

	input := validBookingInput()

	f.serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(activeService(), nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.User{ID: "c1"}, nil)
	f.scheduleRepo.EXPECT().Admit(mock.Anything, mock.Anything).
		Return(&domain.DayLockedError{Date: input.BookingDate, District: "Malaz"})
	f.fallback.EXPECT().FindNextAvailableDay(mock.Anything).Return(nil, errors.New("db down"))

	_, err := f.svc.CreateBooking(context.Background(), input)

	// the conflict is still reported, just without a suggestion
	require.Error(t, err)
	var conflict *domain.DistrictConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Nil(t, conflict.SuggestedDate)
}

func TestBookingService_CreateBooking_GeocodesMissingDistrict(t *testing.T) {
	f := newBookingFixture(t)

	input := validBookingInput()
	input.Location.District = ""
	input.Location.Address = ""

	client := &domain.User{ID: "c1"}
	svc := activeService()

	f.serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(svc, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "c1").Return(client, nil)
	f.geocoder.EXPECT().ReverseGeocode(mock.Anything, input.Location.Latitude, input.Location.Longitude).
		Return(&ports.ResolvedLocation{Address: "Olaya St 12", District: "Olaya"}, nil)

	var admitted *domain.Booking
	f.scheduleRepo.EXPECT().Admit(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, b *domain.Booking) {
			admitted = b
		}).
		Return(nil)
	f.notifier.EXPECT().NotifyBookingCreated(mock.Anything, client, mock.Anything, svc).Return()

	booking, err := f.svc.CreateBooking(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "Olaya", booking.Location.District)
	assert.Equal(t, "Olaya St 12", booking.Location.Address)
	require.NotNil(t, admitted)
	assert.Equal(t, "Olaya", admitted.Location.District)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_CreateBooking_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CreateBookingInput)
	}{
		{"missing client", func(in *domain.CreateBookingInput) { in.ClientID = "" }},
		{"missing service", func(in *domain.CreateBookingInput) { in.ServiceID = "" }},
		{"zero date", func(in *domain.CreateBookingInput) { in.BookingDate = time.Time{} }},
		{"bad time format", func(in *domain.CreateBookingInput) { in.BookingTime = "9:00" }},
		{"out of range hour", func(in *domain.CreateBookingInput) { in.BookingTime = "25:00" }},
		{"no location", func(in *domain.CreateBookingInput) {
			in.Location = domain.Location{}
		}},
		{"bad payment method", func(in *domain.CreateBookingInput) { in.Method = "cheque" }},
		{"bad status", func(in *domain.CreateBookingInput) { in.Status = "parked" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)

			input := validBookingInput()
			tt.mutate(&input)

			_, err := f.svc.CreateBooking(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_CreateBooking_InactiveService(t *testing.T) {
	f := newBookingFixture(t)

	svc := activeService()
	svc.IsActive = false
	f.serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(svc, nil)

	_, err := f.svc.CreateBooking(context.Background(), validBookingInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_CreateBooking_UnknownService(t *testing.T) {
	f := newBookingFixture(t)

	f.serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(nil, domain.ErrServiceNotFound)

	_, err := f.svc.CreateBooking(context.Background(), validBookingInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
}

func upcomingBooking() *domain.Booking {
	return &domain.Booking{
		ID:          "b1",
		ClientID:    "c1",
		ServiceID:   "s1",
		BookingDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		BookingTime: "10:00",
		Status:      domain.BookingStatusConfirmed,
		Location:    domain.Location{District: "Olaya"},
	}
}

func TestBookingService_CancelBooking_ExactlyAtWindow(t *testing.T) {
	f := newBookingFixture(t)

	booking := upcomingBooking()
	cancelled := *booking
	cancelled.Status = domain.BookingStatusCancelled

	// exactly 48 hours before the start: still allowed
	f.svc.now = func() time.Time { return time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC) }

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusCancelled).Return(&cancelled, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.User{ID: "c1"}, nil)
	f.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything, &cancelled).Return()

	got, err := f.svc.CancelBooking(context.Background(), "b1", domain.Requester{UserID: "c1", Role: domain.RoleClient})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_CancelBooking_InsideWindow(t *testing.T) {
	f := newBookingFixture(t)

	booking := upcomingBooking()

	// one minute short of the 48-hour minimum
	f.svc.now = func() time.Time { return time.Date(2026, 9, 8, 10, 1, 0, 0, time.UTC) }

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := f.svc.CancelBooking(context.Background(), "b1", domain.Requester{UserID: "c1", Role: domain.RoleClient})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCancellationWindow)

	var window *domain.CancellationWindowError
	require.ErrorAs(t, err, &window)
	assert.Equal(t, 48.0, window.MinimumHours)
	assert.Less(t, window.HoursRemaining, 48.0)
}

func TestBookingService_CancelBooking_WellOutsideWindow(t *testing.T) {
	f := newBookingFixture(t)

	booking := upcomingBooking()
	cancelled := *booking
	cancelled.Status = domain.BookingStatusCancelled

	// 72 hours before the start
	f.svc.now = func() time.Time { return time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC) }

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusCancelled).Return(&cancelled, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.User{ID: "c1"}, nil)
	f.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything, &cancelled).Return()

	_, err := f.svc.CancelBooking(context.Background(), "b1", domain.Requester{UserID: "admin", Role: domain.RoleAdmin})

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_CancelBooking_Forbidden(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(upcomingBooking(), nil)

	_, err := f.svc.CancelBooking(context.Background(), "b1", domain.Requester{UserID: "someone-else", Role: domain.RoleClient})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_CancelBooking_AlreadyCancelled(t *testing.T) {
	f := newBookingFixture(t)

	booking := upcomingBooking()
	booking.Status = domain.BookingStatusCancelled

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	got, err := f.svc.CancelBooking(context.Background(), "b1", domain.Requester{UserID: "c1", Role: domain.RoleClient})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)
}

func TestBookingService_UpdateStatus_UnknownStatus(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.UpdateStatus(context.Background(), "b1", "parked")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_UpdateStatus_CancelledIsTerminal(t *testing.T) {
	f := newBookingFixture(t)

	booking := upcomingBooking()
	booking.Status = domain.BookingStatusCancelled

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := f.svc.UpdateStatus(context.Background(), "b1", domain.BookingStatusConfirmed)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_UpdateStatus_Progression(t *testing.T) {
	f := newBookingFixture(t)

	booking := upcomingBooking()
	booking.Status = domain.BookingStatusPending
	updated := *booking
	updated.Status = domain.BookingStatusInProgress

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusInProgress).Return(&updated, nil)

	got, err := f.svc.UpdateStatus(context.Background(), "b1", domain.BookingStatusInProgress)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusInProgress, got.Status)
}

func TestBookingService_UpdateStatus_CancelGatedByWindow(t *testing.T) {
	f := newBookingFixture(t)

	booking := upcomingBooking()

	// inside the window even for an admin-driven status change
	f.svc.now = func() time.Time { return time.Date(2026, 9, 9, 10, 0, 0, 0, time.UTC) }

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := f.svc.UpdateStatus(context.Background(), "b1", domain.BookingStatusCancelled)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCancellationWindow)
}

func TestBookingService_CreatePaymentIntent(t *testing.T) {
	f := newBookingFixture(t)

	booking := upcomingBooking()
	intent := &domain.PaymentIntent{ID: "pi_123", ClientSecret: "secret"}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(activeService(), nil)
	f.payments.EXPECT().CreateIntent(mock.Anything, "b1", "c1", 250.0).Return(intent, nil)
	f.bookingRepo.EXPECT().SetPaymentIntent(mock.Anything, "b1", "pi_123").Return(nil)

	got, err := f.svc.CreatePaymentIntent(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, "pi_123", got.ID)
	assert.Equal(t, "secret", got.ClientSecret)
}

func TestBookingService_ConfirmPayment_NotSucceeded(t *testing.T) {
	f := newBookingFixture(t)

	f.payments.EXPECT().IntentSucceeded(mock.Anything, "pi_123").Return(false, nil)

	_, err := f.svc.ConfirmPayment(context.Background(), "pi_123")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_ConfirmPayment_Succeeded(t *testing.T) {
	f := newBookingFixture(t)

	paid := upcomingBooking()
	paid.Payment.Status = domain.PaymentStatusPaid

	f.payments.EXPECT().IntentSucceeded(mock.Anything, "pi_123").Return(true, nil)
	f.bookingRepo.EXPECT().MarkPaidByIntent(mock.Anything, "pi_123").Return(paid, nil)

	got, err := f.svc.ConfirmPayment(context.Background(), "pi_123")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, got.Payment.Status)
}

func TestBookingService_List_ScopesToClient(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().List(mock.Anything, domain.BookingFilter{ClientID: "c1"}).
		Return([]*domain.Booking{upcomingBooking()}, nil)

	got, err := f.svc.List(context.Background(), domain.Requester{UserID: "c1", Role: domain.RoleClient}, domain.BookingFilter{})

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestBookingService_List_AdminSeesAll(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().List(mock.Anything, domain.BookingFilter{}).
		Return([]*domain.Booking{upcomingBooking()}, nil)

	_, err := f.svc.List(context.Background(), domain.Requester{UserID: "a1", Role: domain.RoleAdmin}, domain.BookingFilter{})

	require.NoError(t, err)
}
