package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JamilPr1/whatsapp-booking-system/internal/domain"
	"github.com/JamilPr1/whatsapp-booking-system/internal/service/ports/mocks"
)

func TestCatalogService_Create_Defaults(t *testing.T) {
	repo := mocks.NewMockServiceRepo(t)
	svc := NewCatalogService(repo)

	var created *domain.Service
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, s *domain.Service) {
			created = s
		}).
		Return(nil)

	got, err := svc.Create(context.Background(), domain.CreateServiceInput{
		Name:  "Window Cleaning",
		Price: 120,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, domain.ServiceCategoryMain, got.Category)
	assert.Equal(t, defaultDurationMin, got.DurationMin)
	assert.True(t, got.IsActive)
	require.NotNil(t, created)
	assert.Equal(t, "Window Cleaning", created.Name)
}

func TestCatalogService_Create_Validation(t *testing.T) {
	repo := mocks.NewMockServiceRepo(t)
	svc := NewCatalogService(repo)

	_, err := svc.Create(context.Background(), domain.CreateServiceInput{Price: 100})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), domain.CreateServiceInput{Name: "X", Price: -5})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_Seed_Idempotent(t *testing.T) {
	repo := mocks.NewMockServiceRepo(t)
	svc := NewCatalogService(repo)

	var names []string
	repo.EXPECT().UpsertByName(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, s *domain.Service) {
			names = append(names, s.Name)
		}).
		Return(nil).
		Times(3)

	err := svc.Seed(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Home Cleaning", "Deep Cleaning", "Sofa Cleaning"}, names)
}

func TestUserService_Create(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name:        "Sara",
		PhoneNumber: "+966500000001",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.RoleClient, user.Role)
	assert.True(t, user.IsActive)
}

func TestUserService_Create_RequiresPhone(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Name: "Sara"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_UnknownRole(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		PhoneNumber: "+966500000001",
		Role:        "janitor",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_PhoneTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrPhoneTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		PhoneNumber: "+966500000001",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPhoneTaken)
}
