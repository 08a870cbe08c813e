package repositories

import (
	"context"

	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
)

// ReviewRepository defines the interface for review operations. Reviews
// are append-only: the application never updates or deletes them.
type ReviewRepository interface {
	// Create creates a new review
	Create(ctx context.Context, review *entities.Review) error

	// ListByBusiness retrieves a business's reviews newest-first,
	// with customer name and phone joined in
	ListByBusiness(ctx context.Context, businessID string) ([]*entities.Review, error)

	// ListByCustomer retrieves a customer's reviews newest-first,
	// with business name and type joined in
	ListByCustomer(ctx context.Context, customerID string) ([]*entities.Review, error)
}
