package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/JamilPr1/whatsapp-booking-system/internal/domain"
	"github.com/JamilPr1/whatsapp-booking-system/internal/observability"
	"github.com/JamilPr1/whatsapp-booking-system/internal/service/ports"
)

var bookingTimeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type fallbackLocator interface {
	FindNextAvailableDay(ctx context.Context) (*time.Time, error)
}

// BookingService is the admission write-path: it decides whether a
// booking may enter a day, and owns status updates, cancellation and the
// payment-intent flow.
type BookingService struct {
	bookingRepo  ports.BookingRepo
	scheduleRepo ports.ScheduleRepo
	serviceRepo  ports.ServiceRepo
	userRepo     ports.UserRepo
	fallback     fallbackLocator
	geocoder     ports.Geocoder
	payments     ports.PaymentProvider
	notifier     ports.Notifier
	logger       logger.Logger

	loc          *time.Location
	cancelWindow time.Duration
	now          func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	scheduleRepo ports.ScheduleRepo,
	serviceRepo ports.ServiceRepo,
	userRepo ports.UserRepo,
	fallback fallbackLocator,
	geocoder ports.Geocoder,
	payments ports.PaymentProvider,
	notifier ports.Notifier,
	log logger.Logger,
	loc *time.Location,
	cancelWindow time.Duration,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		serviceRepo:  serviceRepo,
		userRepo:     userRepo,
		fallback:     fallback,
		geocoder:     geocoder,
		payments:     payments,
		notifier:     notifier,
		logger:       log,
		loc:          loc,
		cancelWindow: cancelWindow,
		now:          time.Now,
	}
}

// CreateBooking validates and admits a booking request. The day lock is
// checked and taken inside a single store transaction; on a district
// conflict the caller gets the locked district plus a suggested open day
// from the booking window, when one exists.
func (s *BookingService) CreateBooking(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	svc, err := s.serviceRepo.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("check service: %w", err)
	}
	if !svc.IsActive {
		return nil, fmt.Errorf("%w: service %s is not active", domain.ErrValidation, svc.Name)
	}

	client, err := s.userRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("check client: %w", err)
	}

	if input.Location.District == "" {
		resolved, err := s.geocoder.ReverseGeocode(ctx, input.Location.Latitude, input.Location.Longitude)
		if err != nil {
			return nil, fmt.Errorf("resolve district: %w", err)
		}
		input.Location.District = resolved.District
		if input.Location.Address == "" {
			input.Location.Address = resolved.Address
		}
	}

	status := input.Status
	if status == "" {
		status = domain.BookingStatusPending
	}

	now := s.now().UTC()
	booking := &domain.Booking{
		ID:          uuid.New().String(),
		ClientID:    input.ClientID,
		ServiceID:   input.ServiceID,
		BookingDate: domain.Day(input.BookingDate),
		BookingTime: input.BookingTime,
		Location:    input.Location,
		Status:      status,
		Payment: domain.Payment{
			Method:        input.Method,
			Status:        domain.PaymentStatusPending,
			Amount:        svc.Price,
			DepositAmount: svc.DepositAmount,
		},
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = s.scheduleRepo.Admit(ctx, booking); err != nil {
		var locked *domain.DayLockedError
		if errors.As(err, &locked) {
			observability.DistrictConflicts.Inc()
			return nil, s.conflict(ctx, locked)
		}
		return nil, fmt.Errorf("admit booking: %w", err)
	}

	observability.BookingsAdmitted.Inc()
	s.logger.Info("booking admitted",
		logger.String("booking_id", booking.ID),
		logger.String("district", booking.Location.District),
		logger.String("date", domain.DayKey(booking.BookingDate)),
		logger.String("time", booking.BookingTime),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), client, booking, svc)

	return booking, nil
}

func (s *BookingService) conflict(ctx context.Context, locked *domain.DayLockedError) error {
	suggested, err := s.fallback.FindNextAvailableDay(ctx)
	if err != nil {
		s.logger.Error("fallback day search failed",
			logger.String("error", err.Error()),
		)
		// the conflict still stands, just without a suggestion
		suggested = nil
	}

	return &domain.DistrictConflictError{
		LockedDistrict: locked.District,
		SuggestedDate:  suggested,
	}
}

func (s *BookingService) validate(input *domain.CreateBookingInput) error {
	switch {
	case input.ClientID == "":
		return fmt.Errorf("%w: client id is required", domain.ErrValidation)
	case input.ServiceID == "":
		return fmt.Errorf("%w: service id is required", domain.ErrValidation)
	case input.BookingDate.IsZero():
		return fmt.Errorf("%w: booking date is required", domain.ErrValidation)
	case !bookingTimeRe.MatchString(input.BookingTime):
		return fmt.Errorf("%w: booking time must be HH:MM", domain.ErrValidation)
	case input.Location.Latitude == 0 && input.Location.Longitude == 0 && input.Location.District == "":
		return fmt.Errorf("%w: location coordinates or district are required", domain.ErrValidation)
	case input.Method != domain.PaymentMethodOnline && input.Method != domain.PaymentMethodInPerson:
		return fmt.Errorf("%w: payment method must be online or in-person", domain.ErrValidation)
	case input.Status != "" && !input.Status.Valid():
		return fmt.Errorf("%w: unknown booking status %q", domain.ErrValidation, input.Status)
	}
	return nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

// List scopes results to the requester: clients only ever see their own
// bookings, admins see everything the filter allows.
func (s *BookingService) List(ctx context.Context, requester domain.Requester, filter domain.BookingFilter) ([]*domain.Booking, error) {
	if !requester.IsAdmin() {
		filter.ClientID = requester.UserID
	}
	return s.bookingRepo.List(ctx, filter)
}

// UpdateStatus applies an admin status change. Transitions between the
// live statuses are deliberately unconstrained; cancelled is terminal and
// entering it is gated by the cancellation window for every caller.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown booking status %q", domain.ErrValidation, status)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.Status == domain.BookingStatusCancelled && status != domain.BookingStatusCancelled {
		return nil, fmt.Errorf("%w: cancelled bookings cannot change status", domain.ErrValidation)
	}

	if status == domain.BookingStatusCancelled && booking.Status != domain.BookingStatusCancelled {
		if err = s.checkCancellationWindow(booking); err != nil {
			return nil, err
		}
		observability.BookingsCancelled.Inc()
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.logger.Info("booking status updated",
		logger.String("booking_id", id),
		logger.String("from", string(booking.Status)),
		logger.String("to", string(status)),
	)

	return updated, nil
}

// CancelBooking cancels on behalf of a requester: the booking's own
// client or an admin. The cancellation window applies to both; refunds
// remain a manual admin follow-up.
func (s *BookingService) CancelBooking(ctx context.Context, id string, requester domain.Requester) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !requester.IsAdmin() && booking.ClientID != requester.UserID {
		return nil, fmt.Errorf("%w: not authorized to cancel this booking", domain.ErrForbidden)
	}

	if booking.Status == domain.BookingStatusCancelled {
		return booking, nil
	}

	if err = s.checkCancellationWindow(booking); err != nil {
		return nil, err
	}

	cancelled, err := s.bookingRepo.UpdateStatus(ctx, id, domain.BookingStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	observability.BookingsCancelled.Inc()
	s.logger.Info("booking cancelled",
		logger.String("booking_id", id),
		logger.String("by", requester.UserID),
	)

	if client, err := s.userRepo.GetByID(ctx, cancelled.ClientID); err == nil {
		go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), client, cancelled)
	}

	return cancelled, nil
}

func (s *BookingService) checkCancellationWindow(b *domain.Booking) error {
	startsAt, err := b.StartsAt(s.loc)
	if err != nil {
		return err
	}

	hoursUntil := startsAt.Sub(s.now().In(s.loc)).Hours()
	minimum := s.cancelWindow.Hours()
	if hoursUntil < minimum {
		return &domain.CancellationWindowError{
			HoursRemaining: hoursUntil,
			MinimumHours:   minimum,
		}
	}

	return nil
}

// CreatePaymentIntent asks the payment gateway for an intent over the
// service's full price and records its id on the booking.
func (s *BookingService) CreatePaymentIntent(ctx context.Context, bookingID string) (*domain.PaymentIntent, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	svc, err := s.serviceRepo.GetByID(ctx, booking.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}

	intent, err := s.payments.CreateIntent(ctx, booking.ID, booking.ClientID, svc.Price)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	if err = s.bookingRepo.SetPaymentIntent(ctx, booking.ID, intent.ID); err != nil {
		return nil, fmt.Errorf("store payment intent: %w", err)
	}

	return intent, nil
}

// ConfirmPayment checks the intent at the gateway and, when it has
// succeeded, marks the booking paid and promotes pending to confirmed.
func (s *BookingService) ConfirmPayment(ctx context.Context, intentID string) (*domain.Booking, error) {
	succeeded, err := s.payments.IntentSucceeded(ctx, intentID)
	if err != nil {
		return nil, fmt.Errorf("check payment intent: %w", err)
	}
	if !succeeded {
		return nil, fmt.Errorf("%w: payment has not succeeded", domain.ErrValidation)
	}

	booking, err := s.bookingRepo.MarkPaidByIntent(ctx, intentID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment confirmed",
		logger.String("booking_id", booking.ID),
		logger.String("payment_intent_id", intentID),
	)

	return booking, nil
}
