package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/repositories"
	"github.com/WambuiJane/visit-stamp-rewards/internal/infrastructure/clients/postgres"
	apperrors "github.com/WambuiJane/visit-stamp-rewards/pkg/errors"
)

// ReviewAdapter implements review persistence in Postgres.
type ReviewAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewReviewAdapter creates a new review adapter.
func NewReviewAdapter(client *postgres.Client) repositories.ReviewRepository {
	return &ReviewAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a review record.
func (a *ReviewAdapter) Create(ctx context.Context, review *entities.Review) error {
	var rating interface{}
	if review.Rating != nil {
		rating = *review.Rating
	}

	record := goqu.Record{
		"id":          review.ID,
		"business_id": review.BusinessID,
		"customer_id": review.CustomerID,
		"rating":      rating,
		"comment":     sql.NullString{String: review.Comment, Valid: review.Comment != ""},
		"created_at":  review.CreatedAt,
	}

	query, args, err := a.db.Insert("reviews").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build review insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create review", err)
	}

	return nil
}

// ListByBusiness retrieves a business's reviews newest-first with the
// reviewing customer's name and phone joined in.
func (a *ReviewAdapter) ListByBusiness(ctx context.Context, businessID string) ([]*entities.Review, error) {
	query := `
		SELECT
			r.id, r.business_id, r.customer_id, r.rating, r.comment, r.created_at,
			c.name, c.phone
		FROM reviews r
		JOIN customers c ON c.id = r.customer_id
		WHERE r.business_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := a.client.DB().QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list business reviews", err)
	}
	defer rows.Close()

	reviews := []*entities.Review{}
	for rows.Next() {
		review := &entities.Review{}
		var rating sql.NullInt64
		var comment, customerName sql.NullString

		err := rows.Scan(
			&review.ID,
			&review.BusinessID,
			&review.CustomerID,
			&rating,
			&comment,
			&review.CreatedAt,
			&customerName,
			&review.CustomerPhone,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan review", err)
		}

		if rating.Valid {
			value := int(rating.Int64)
			review.Rating = &value
		}
		review.Comment = comment.String
		review.CustomerName = customerName.String

		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate reviews", err)
	}

	return reviews, nil
}

// ListByCustomer retrieves a customer's reviews newest-first with the
// reviewed business's name and type joined in.
func (a *ReviewAdapter) ListByCustomer(ctx context.Context, customerID string) ([]*entities.Review, error) {
	query := `
		SELECT
			r.id, r.business_id, r.customer_id, r.rating, r.comment, r.created_at,
			b.business_name, b.business_type
		FROM reviews r
		JOIN businesses b ON b.id = r.business_id
		WHERE r.customer_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := a.client.DB().QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list customer reviews", err)
	}
	defer rows.Close()

	reviews := []*entities.Review{}
	for rows.Next() {
		review := &entities.Review{}
		var rating sql.NullInt64
		var comment, businessType sql.NullString

		err := rows.Scan(
			&review.ID,
			&review.BusinessID,
			&review.CustomerID,
			&rating,
			&comment,
			&review.CreatedAt,
			&review.BusinessName,
			&businessType,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan review", err)
		}

		if rating.Valid {
			value := int(rating.Int64)
			review.Rating = &value
		}
		review.Comment = comment.String
		review.BusinessType = businessType.String

		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate reviews", err)
	}

	return reviews, nil
}
