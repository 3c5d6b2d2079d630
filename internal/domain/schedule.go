package domain

import "time"

// Schedule is the per-date record holding the district lock. At most one
// schedule exists per calendar date; once locked, every booking admitted
// for that date must be in the same district.
type Schedule struct {
	ID         string     `json:"id"`
	Date       time.Time  `json:"date"` // day granularity, unique
	District   string     `json:"district"`
	ProviderID *string    `json:"provider_id"`
	DriverID   *string    `json:"driver_id"`
	IsLocked   bool       `json:"is_locked"`
	BookingIDs []string   `json:"bookings"`
	NotifiedAt *time.Time `json:"notified_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// DayKey formats a date the way schedules are keyed and compared.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Day truncates t to its calendar day in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
