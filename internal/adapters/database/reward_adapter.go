package database

import (
	"context"
	"database/sql"

	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/repositories"
	"github.com/WambuiJane/visit-stamp-rewards/internal/infrastructure/clients/postgres"
	apperrors "github.com/WambuiJane/visit-stamp-rewards/pkg/errors"
)

// RewardAdapter implements read-only reward access in Postgres.
type RewardAdapter struct {
	client *postgres.Client
}

// NewRewardAdapter creates a new reward adapter.
func NewRewardAdapter(client *postgres.Client) repositories.RewardRepository {
	return &RewardAdapter{client: client}
}

// ListByBusiness retrieves all rewards earned at a business.
func (a *RewardAdapter) ListByBusiness(ctx context.Context, businessID string) ([]*entities.Reward, error) {
	query := `
		SELECT id, business_id, customer_id, earned_date, is_redeemed, redeemed_date
		FROM rewards
		WHERE business_id = $1
		ORDER BY earned_date DESC
	`

	rows, err := a.client.DB().QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list rewards", err)
	}
	defer rows.Close()

	rewards := []*entities.Reward{}
	for rows.Next() {
		reward := &entities.Reward{}
		var redeemedAt sql.NullTime

		err := rows.Scan(
			&reward.ID,
			&reward.BusinessID,
			&reward.CustomerID,
			&reward.EarnedDate,
			&reward.IsRedeemed,
			&redeemedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan reward", err)
		}

		if redeemedAt.Valid {
			reward.RedeemedAt = &redeemedAt.Time
		}
		rewards = append(rewards, reward)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate rewards", err)
	}

	return rewards, nil
}
