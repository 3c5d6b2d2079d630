package ports

import (
	"context"

	"github.com/JamilPr1/whatsapp-booking-system/internal/domain"
)

type ServiceRepo interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Service, error)
	// UpsertByName inserts s unless a service with the same name exists.
	// Used by idempotent catalog seeding.
	UpsertByName(ctx context.Context, s *domain.Service) error
}
