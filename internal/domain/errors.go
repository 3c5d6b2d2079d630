package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrUserNotFound     = errors.New("user not found")
)

var (
	ErrDayLocked          = errors.New("date is locked to another district")
	ErrDistrictConflict   = errors.New("district conflict")
	ErrCancellationWindow = errors.New("cancellation window violation")
)

var (
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation error")
	ErrPhoneTaken = errors.New("phone number is already registered")
)

// DayLockedError is returned by the schedule store when an admission hits a
// day locked to a different district.
type DayLockedError struct {
	Date     time.Time
	District string
}

func (e *DayLockedError) Error() string {
	return fmt.Sprintf("date %s is locked to %s district", DayKey(e.Date), e.District)
}

func (e *DayLockedError) Unwrap() error { return ErrDayLocked }

// DistrictConflictError carries the rejected admission's context back to the
// caller: which district owns the day and, when the booking window has one,
// a suggested alternative day with no lock at all.
type DistrictConflictError struct {
	LockedDistrict string
	SuggestedDate  *time.Time
}

func (e *DistrictConflictError) Error() string {
	if e.SuggestedDate != nil {
		return fmt.Sprintf(
			"this date is locked to %s district, next available day: %s, please choose another date",
			e.LockedDistrict, e.SuggestedDate.Format("02 Jan 2006"),
		)
	}
	return fmt.Sprintf(
		"this date is locked to %s district, no available days found in the booking window, please contact admin",
		e.LockedDistrict,
	)
}

func (e *DistrictConflictError) Unwrap() error { return ErrDistrictConflict }

// CancellationWindowError reports a cancellation attempted inside the
// minimum lead time. HoursRemaining is fractional; messages round it.
type CancellationWindowError struct {
	HoursRemaining float64
	MinimumHours   float64
}

func (e *CancellationWindowError) Error() string {
	return fmt.Sprintf(
		"cancellation must be at least %.0f hours before the booking time, booking is in %d hours",
		e.MinimumHours, int(math.Round(e.HoursRemaining)),
	)
}

func (e *CancellationWindowError) Unwrap() error { return ErrCancellationWindow }
