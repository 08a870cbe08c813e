package database

import (
	"context"
	"database/sql"

	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/repositories"
	"github.com/WambuiJane/visit-stamp-rewards/internal/infrastructure/clients/postgres"
	apperrors "github.com/WambuiJane/visit-stamp-rewards/pkg/errors"
)

// VisitAdapter implements read-only visit access in Postgres. Visit rows
// are written by the stamping flow, not by this service.
type VisitAdapter struct {
	client *postgres.Client
}

// NewVisitAdapter creates a new visit adapter.
func NewVisitAdapter(client *postgres.Client) repositories.VisitRepository {
	return &VisitAdapter{client: client}
}

// ListByBusiness retrieves all visits recorded at a business.
func (a *VisitAdapter) ListByBusiness(ctx context.Context, businessID string) ([]*entities.Visit, error) {
	query := `
		SELECT id, business_id, customer_id, visit_date, notes
		FROM visits
		WHERE business_id = $1
		ORDER BY visit_date DESC
	`

	rows, err := a.client.DB().QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list visits", err)
	}
	defer rows.Close()

	visits := []*entities.Visit{}
	for rows.Next() {
		visit := &entities.Visit{}
		var notes sql.NullString

		err := rows.Scan(
			&visit.ID,
			&visit.BusinessID,
			&visit.CustomerID,
			&visit.VisitDate,
			&notes,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan visit", err)
		}

		visit.Notes = notes.String
		visits = append(visits, visit)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate visits", err)
	}

	return visits, nil
}
