package repositories

import (
	"context"

	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
)

// CustomerRepository defines the interface for customer data operations.
type CustomerRepository interface {
	// Create inserts a new customer row. The customers table carries a
	// uniqueness constraint on phone; a concurrent insert for the same
	// phone surfaces as a conflict error.
	Create(ctx context.Context, customer *entities.Customer) error

	// GetByID retrieves a customer by ID
	GetByID(ctx context.Context, id string) (*entities.Customer, error)

	// GetByPhone retrieves a customer by exact phone match
	GetByPhone(ctx context.Context, phone string) (*entities.Customer, error)
}
