package repositories

import (
	"context"

	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
)

// BusinessFilter holds filters for listing businesses.
type BusinessFilter struct {
	// Search is matched case-insensitively as a substring of the
	// business name when non-empty.
	Search string
	Limit  int
	Offset int
}

// BusinessRepository defines the interface for business data operations.
type BusinessRepository interface {
	// Create creates a new business profile
	Create(ctx context.Context, business *entities.Business) error

	// GetByID retrieves a business by ID
	GetByID(ctx context.Context, id string) (*entities.Business, error)

	// GetByAccount retrieves the business owned by an account
	GetByAccount(ctx context.Context, accountID string) (*entities.Business, error)

	// List retrieves businesses ordered by name, optionally filtered
	List(ctx context.Context, filter BusinessFilter) ([]*entities.Business, error)

	// Update updates a business profile
	Update(ctx context.Context, business *entities.Business) error
}
