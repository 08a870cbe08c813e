package repositories

import (
	"context"

	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
)

// AccountRepository defines the interface for account data operations.
type AccountRepository interface {
	// Create creates a new account
	Create(ctx context.Context, account *entities.Account) error

	// GetByID retrieves an account by ID
	GetByID(ctx context.Context, id string) (*entities.Account, error)

	// GetByEmail retrieves an account by email
	GetByEmail(ctx context.Context, email string) (*entities.Account, error)
}
