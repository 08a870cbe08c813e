package repositories

import (
	"context"

	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
)

// VisitRepository defines read-only access to visit rows.
type VisitRepository interface {
	// ListByBusiness retrieves all visits recorded at a business
	ListByBusiness(ctx context.Context, businessID string) ([]*entities.Visit, error)
}
