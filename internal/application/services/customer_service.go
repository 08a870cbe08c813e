package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/repositories"
	"github.com/WambuiJane/visit-stamp-rewards/internal/infrastructure/observability"
	apperrors "github.com/WambuiJane/visit-stamp-rewards/pkg/errors"
)

// CustomerService handles customer registration by phone number.
type CustomerService struct {
	repo repositories.CustomerRepository
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// FindOrCreate looks a customer up by exact phone match and registers a
// new one only when none exists. The lookup and insert are two separate
// calls; the storage-level unique index on phone closes the race, and a
// conflict on insert means another request registered the same phone
// first, so the winner's row is fetched and returned.
func (s *CustomerService) FindOrCreate(ctx context.Context, phone, name string) (*entities.Customer, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, apperrors.NewValidationError("phone number is required")
	}

	existing, err := s.repo.GetByPhone(ctx, phone)
	if err == nil {
		return existing, nil
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		return nil, err
	}

	customer := &entities.Customer{
		ID:        uuid.New().String(),
		Phone:     phone,
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeConflict) {
			observability.LoggerFromContext(ctx).Debug().
				Str("phone", phone).
				Msg("lost find-or-create race, fetching existing customer")
			return s.repo.GetByPhone(ctx, phone)
		}
		return nil, err
	}

	return customer, nil
}

// GetByPhone resolves a customer by phone number.
func (s *CustomerService) GetByPhone(ctx context.Context, phone string) (*entities.Customer, error) {
	return s.repo.GetByPhone(ctx, strings.TrimSpace(phone))
}
