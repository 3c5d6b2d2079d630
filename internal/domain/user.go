package domain

import "time"

type Role string

const (
	RoleClient   Role = "client"
	RoleAdmin    Role = "admin"
	RoleProvider Role = "provider"
	RoleDriver   Role = "driver"
)

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleAdmin, RoleProvider, RoleDriver:
		return true
	}
	return false
}

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	PhoneNumber    string    `json:"phone_number"`
	Role           Role      `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Name           string
	PhoneNumber    string
	Role           Role
	TelegramChatID *int64
}

// Requester identifies the authenticated caller as resolved by the
// upstream gateway. Authentication itself is outside this service.
type Requester struct {
	UserID string
	Role   Role
}

func (r Requester) IsAdmin() bool { return r.Role == RoleAdmin }
