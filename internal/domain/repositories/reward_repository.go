package repositories

import (
	"context"

	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
)

// RewardRepository defines read-only access to reward rows.
type RewardRepository interface {
	// ListByBusiness retrieves all rewards earned at a business
	ListByBusiness(ctx context.Context, businessID string) ([]*entities.Reward, error)
}
