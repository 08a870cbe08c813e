package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/WambuiJane/visit-stamp-rewards/internal/application/services"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
	apperrors "github.com/WambuiJane/visit-stamp-rewards/pkg/errors"
)

type stubCustomerRepo struct {
	byPhone map[string]*entities.Customer
	byID    map[string]*entities.Customer

	// raceWinner, when set, simulates another request inserting the
	// same phone between the lookup and our insert.
	raceWinner *entities.Customer

	creates int
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{
		byPhone: map[string]*entities.Customer{},
		byID:    map[string]*entities.Customer{},
	}
}

func (r *stubCustomerRepo) Create(ctx context.Context, customer *entities.Customer) error {
	r.creates++
	if r.raceWinner != nil && r.raceWinner.Phone == customer.Phone {
		r.byPhone[r.raceWinner.Phone] = r.raceWinner
		r.byID[r.raceWinner.ID] = r.raceWinner
		return apperrors.NewConflictError("customer with phone " + customer.Phone + " already exists")
	}
	if _, ok := r.byPhone[customer.Phone]; ok {
		return apperrors.NewConflictError("customer with phone " + customer.Phone + " already exists")
	}
	r.byPhone[customer.Phone] = customer
	r.byID[customer.ID] = customer
	return nil
}

func (r *stubCustomerRepo) GetByID(ctx context.Context, id string) (*entities.Customer, error) {
	customer, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("customer not found")
	}
	return customer, nil
}

func (r *stubCustomerRepo) GetByPhone(ctx context.Context, phone string) (*entities.Customer, error) {
	customer, ok := r.byPhone[phone]
	if !ok {
		return nil, apperrors.NewNotFoundError("customer not found")
	}
	return customer, nil
}

func TestCustomerService_FindOrCreate_New(t *testing.T) {
	repo := newStubCustomerRepo()
	service := services.NewCustomerService(repo)

	customer, err := service.FindOrCreate(context.Background(), " +254711000001 ", " Wanjiku ")
	require.NoError(t, err)

	assert.Equal(t, "+254711000001", customer.Phone)
	assert.Equal(t, "Wanjiku", customer.Name)
	assert.NotEmpty(t, customer.ID)
	assert.Equal(t, 1, repo.creates)
}

func TestCustomerService_FindOrCreate_ExistingPhone(t *testing.T) {
	repo := newStubCustomerRepo()
	service := services.NewCustomerService(repo)

	first, err := service.FindOrCreate(context.Background(), "+254711000001", "Wanjiku")
	require.NoError(t, err)

	second, err := service.FindOrCreate(context.Background(), "+254711000001", "Someone Else")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Wanjiku", second.Name)
	assert.Equal(t, 1, repo.creates)
}

func TestCustomerService_FindOrCreate_EmptyPhone(t *testing.T) {
	service := services.NewCustomerService(newStubCustomerRepo())

	_, err := service.FindOrCreate(context.Background(), "   ", "Wanjiku")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestCustomerService_FindOrCreate_LostRaceReturnsWinner(t *testing.T) {
	repo := newStubCustomerRepo()
	repo.raceWinner = &entities.Customer{ID: "winner-id", Phone: "+254711000001", Name: "First"}
	service := services.NewCustomerService(repo)

	customer, err := service.FindOrCreate(context.Background(), "+254711000001", "Second")
	require.NoError(t, err)

	assert.Equal(t, "winner-id", customer.ID)
	assert.Equal(t, "First", customer.Name)
}

func TestCustomerService_GetByPhone(t *testing.T) {
	repo := newStubCustomerRepo()
	service := services.NewCustomerService(repo)

	created, err := service.FindOrCreate(context.Background(), "+254711000001", "")
	require.NoError(t, err)

	found, err := service.GetByPhone(context.Background(), "+254711000001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = service.GetByPhone(context.Background(), "+254799999999")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}
