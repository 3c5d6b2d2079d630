package domain

import "time"

type ServiceCategory string

const (
	ServiceCategoryMain ServiceCategory = "main"
	ServiceCategorySub  ServiceCategory = "sub"
)

// Service is a bookable catalog entry, e.g. "Home Cleaning".
type Service struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Category      ServiceCategory `json:"category"`
	ParentID      *string         `json:"parent_id"`
	DurationMin   int             `json:"duration_minutes"`
	Price         float64         `json:"price"`
	DepositAmount float64         `json:"deposit_amount"`
	IsActive      bool            `json:"is_active"`
	ProviderID    *string         `json:"provider_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CreateServiceInput struct {
	Name          string
	Description   string
	Category      ServiceCategory
	ParentID      *string
	DurationMin   int
	Price         float64
	DepositAmount float64
}
