package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/repositories"
	"github.com/WambuiJane/visit-stamp-rewards/internal/infrastructure/clients/postgres"
	apperrors "github.com/WambuiJane/visit-stamp-rewards/pkg/errors"
)

// BusinessAdapter implements the BusinessRepository interface.
type BusinessAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewBusinessAdapter creates a new business adapter.
func NewBusinessAdapter(client *postgres.Client) repositories.BusinessRepository {
	return &BusinessAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new business profile.
func (a *BusinessAdapter) Create(ctx context.Context, business *entities.Business) error {
	record := goqu.Record{
		"id":                         business.ID,
		"account_id":                 business.AccountID,
		"business_name":              business.BusinessName,
		"business_type":              sql.NullString{String: business.BusinessType, Valid: business.BusinessType != ""},
		"phone":                      sql.NullString{String: business.Phone, Valid: business.Phone != ""},
		"address":                    sql.NullString{String: business.Address, Valid: business.Address != ""},
		"reward_description":         sql.NullString{String: business.RewardDescription, Valid: business.RewardDescription != ""},
		"visits_required_for_reward": business.VisitsRequiredForReward,
		"created_at":                 business.CreatedAt,
		"updated_at":                 business.UpdatedAt,
	}

	query, args, err := a.db.Insert("businesses").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build business insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create business", err)
	}

	return nil
}

const businessColumns = `
	id, account_id, business_name, business_type, phone, address,
	reward_description, visits_required_for_reward, created_at, updated_at
`

// GetByID retrieves a business by ID.
func (a *BusinessAdapter) GetByID(ctx context.Context, id string) (*entities.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`

	business, err := a.scanBusiness(a.client.DB().QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("business with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get business", err)
	}

	return business, nil
}

// GetByAccount retrieves the business owned by an account.
func (a *BusinessAdapter) GetByAccount(ctx context.Context, accountID string) (*entities.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE account_id = $1`

	business, err := a.scanBusiness(a.client.DB().QueryRowContext(ctx, query, accountID))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no business profile for account %s", accountID))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get business", err)
	}

	return business, nil
}

// List retrieves businesses ordered by name, optionally filtered by a
// case-insensitive name substring.
func (a *BusinessAdapter) List(ctx context.Context, filter repositories.BusinessFilter) ([]*entities.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE 1=1`

	args := []interface{}{}
	argCount := 1

	if filter.Search != "" {
		query += fmt.Sprintf(" AND business_name ILIKE $%d", argCount)
		args = append(args, "%"+filter.Search+"%")
		argCount++
	}

	query += " ORDER BY business_name"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argCount)
		args = append(args, filter.Limit)
		argCount++
	}

	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argCount)
		args = append(args, filter.Offset)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list businesses", err)
	}
	defer rows.Close()

	businesses := []*entities.Business{}
	for rows.Next() {
		business, err := a.scanBusiness(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan business", err)
		}
		businesses = append(businesses, business)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate businesses", err)
	}

	return businesses, nil
}

// Update updates a business profile.
func (a *BusinessAdapter) Update(ctx context.Context, business *entities.Business) error {
	business.UpdatedAt = time.Now()

	query := `
		UPDATE businesses SET
			business_name = $2, business_type = $3, phone = $4, address = $5,
			reward_description = $6, visits_required_for_reward = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := a.client.DB().ExecContext(ctx, query,
		business.ID,
		business.BusinessName,
		sql.NullString{String: business.BusinessType, Valid: business.BusinessType != ""},
		sql.NullString{String: business.Phone, Valid: business.Phone != ""},
		sql.NullString{String: business.Address, Valid: business.Address != ""},
		sql.NullString{String: business.RewardDescription, Valid: business.RewardDescription != ""},
		business.VisitsRequiredForReward,
		business.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewInternalError("failed to update business", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("business with id %s not found", business.ID))
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (a *BusinessAdapter) scanBusiness(row rowScanner) (*entities.Business, error) {
	business := &entities.Business{}
	var businessType, phone, address, rewardDescription sql.NullString
	var visitsRequired sql.NullInt64

	err := row.Scan(
		&business.ID,
		&business.AccountID,
		&business.BusinessName,
		&businessType,
		&phone,
		&address,
		&rewardDescription,
		&visitsRequired,
		&business.CreatedAt,
		&business.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	business.BusinessType = businessType.String
	business.Phone = phone.String
	business.Address = address.String
	business.RewardDescription = rewardDescription.String
	business.VisitsRequiredForReward = int(visitsRequired.Int64)

	return business, nil
}
