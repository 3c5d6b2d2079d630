package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/JamilPr1/whatsapp-booking-system/internal/domain"
)

type ServiceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewServiceRepo(db *dbpg.DB) *ServiceRepository {
	return &ServiceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const serviceColumns = `
	id, name, description, category, parent_id, duration_minutes,
	price, deposit_amount, is_active, provider_id, created_at, updated_at`

func scanService(row interface{ Scan(...any) error }) (*domain.Service, error) {
	var s domain.Service
	err := row.Scan(
		&s.ID, &s.Name, &s.Description, &s.Category, &s.ParentID, &s.DurationMin,
		&s.Price, &s.DepositAmount, &s.IsActive, &s.ProviderID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	query := `INSERT INTO services (` + serviceColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		s.ID, s.Name, s.Description, s.Category, s.ParentID, s.DurationMin,
		s.Price, s.DepositAmount, s.IsActive, s.ProviderID, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}

	return nil
}

// UpsertByName is the seeding path: existing names are left untouched so
// repeated startups never duplicate or overwrite the catalog.
func (r *ServiceRepository) UpsertByName(ctx context.Context, s *domain.Service) error {
	query := `INSERT INTO services (` + serviceColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  ON CONFLICT (name) DO NOTHING`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		s.ID, s.Name, s.Description, s.Category, s.ParentID, s.DurationMin,
		s.Price, s.DepositAmount, s.IsActive, s.ProviderID, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert service: %w", err)
	}

	return nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	query := `SELECT` + serviceColumns + `
			  FROM services
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}

	s, err := scanService(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("scan service: %w", err)
	}

	return s, nil
}

func (r *ServiceRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Service, error) {
	query := `SELECT` + serviceColumns + `
			  FROM services
			  WHERE NOT $1 OR is_active
			  ORDER BY name`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var res []*domain.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}
