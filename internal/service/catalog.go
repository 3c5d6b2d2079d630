package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JamilPr1/whatsapp-booking-system/internal/domain"
	"github.com/JamilPr1/whatsapp-booking-system/internal/service/ports"
)

const defaultDurationMin = 60

type CatalogService struct {
	repo ports.ServiceRepo
}

func NewCatalogService(repo ports.ServiceRepo) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Create(ctx context.Context, input domain.CreateServiceInput) (*domain.Service, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Price < 0 || input.DepositAmount < 0 {
		return nil, fmt.Errorf("%w: price and deposit must not be negative", domain.ErrValidation)
	}

	category := input.Category
	if category == "" {
		category = domain.ServiceCategoryMain
	}
	duration := input.DurationMin
	if duration == 0 {
		duration = defaultDurationMin
	}

	now := time.Now().UTC()
	svc := &domain.Service{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Description:   input.Description,
		Category:      category,
		ParentID:      input.ParentID,
		DurationMin:   duration,
		Price:         input.Price,
		DepositAmount: input.DepositAmount,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	return svc, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CatalogService) List(ctx context.Context, activeOnly bool) ([]*domain.Service, error) {
	return s.repo.List(ctx, activeOnly)
}

// Seed upserts the default catalog by name. Safe to run on every start;
// rows that already exist are left alone.
func (s *CatalogService) Seed(ctx context.Context) error {
	defaults := []domain.CreateServiceInput{
		{Name: "Home Cleaning", Description: "Standard home cleaning visit", Price: 250, DepositAmount: 50},
		{Name: "Deep Cleaning", Description: "Full deep clean including kitchen and bathrooms", Price: 450, DepositAmount: 100, DurationMin: 180},
		{Name: "Sofa Cleaning", Description: "Upholstery steam cleaning", Price: 150, DepositAmount: 30, Category: domain.ServiceCategorySub},
	}

	now := time.Now().UTC()
	for _, d := range defaults {
		duration := d.DurationMin
		if duration == 0 {
			duration = defaultDurationMin
		}
		category := d.Category
		if category == "" {
			category = domain.ServiceCategoryMain
		}
		svc := &domain.Service{
			ID:            uuid.New().String(),
			Name:          d.Name,
			Description:   d.Description,
			Category:      category,
			DurationMin:   duration,
			Price:         d.Price,
			DepositAmount: d.DepositAmount,
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := s.repo.UpsertByName(ctx, svc); err != nil {
			return fmt.Errorf("seed service %s: %w", d.Name, err)
		}
	}

	return nil
}
