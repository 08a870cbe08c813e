package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/repositories"
	"github.com/WambuiJane/visit-stamp-rewards/internal/infrastructure/clients/postgres"
	apperrors "github.com/WambuiJane/visit-stamp-rewards/pkg/errors"
)

// CustomerAdapter implements customer persistence in Postgres.
type CustomerAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewCustomerAdapter creates a new customer adapter.
func NewCustomerAdapter(client *postgres.Client) repositories.CustomerRepository {
	return &CustomerAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a customer record. The unique index on phone turns a
// concurrent duplicate insert into a CONFLICT error the caller can
// recover from by refetching.
func (a *CustomerAdapter) Create(ctx context.Context, customer *entities.Customer) error {
	record := goqu.Record{
		"id":         customer.ID,
		"phone":      customer.Phone,
		"name":       sql.NullString{String: customer.Name, Valid: customer.Name != ""},
		"created_at": customer.CreatedAt,
	}

	query, args, err := a.db.Insert("customers").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build customer insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError(fmt.Sprintf("customer with phone %s already exists", customer.Phone))
		}
		return apperrors.NewInternalError("failed to create customer", err)
	}

	return nil
}

// GetByID retrieves a customer by ID.
func (a *CustomerAdapter) GetByID(ctx context.Context, id string) (*entities.Customer, error) {
	return a.getByColumn(ctx, "id", id)
}

// GetByPhone retrieves a customer by exact phone match.
func (a *CustomerAdapter) GetByPhone(ctx context.Context, phone string) (*entities.Customer, error) {
	return a.getByColumn(ctx, "phone", phone)
}

func (a *CustomerAdapter) getByColumn(ctx context.Context, column, value string) (*entities.Customer, error) {
	query := fmt.Sprintf(`
		SELECT id, phone, name, created_at
		FROM customers
		WHERE %s = $1
	`, column)

	customer := &entities.Customer{}
	var name sql.NullString
	err := a.client.DB().QueryRowContext(ctx, query, value).Scan(
		&customer.ID,
		&customer.Phone,
		&name,
		&customer.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("customer with %s %s not found", column, value))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get customer", err)
	}

	customer.Name = name.String
	return customer, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
