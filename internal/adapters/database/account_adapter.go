package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/repositories"
	"github.com/WambuiJane/visit-stamp-rewards/internal/infrastructure/clients/postgres"
	apperrors "github.com/WambuiJane/visit-stamp-rewards/pkg/errors"
)

// AccountAdapter implements account persistence in Postgres.
type AccountAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewAccountAdapter creates a new account adapter.
func NewAccountAdapter(client *postgres.Client) repositories.AccountRepository {
	return &AccountAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts an account record.
func (a *AccountAdapter) Create(ctx context.Context, account *entities.Account) error {
	record := goqu.Record{
		"id":            account.ID,
		"email":         account.Email,
		"password_hash": account.PasswordHash,
		"role":          string(account.Role),
		"created_at":    account.CreatedAt,
		"updated_at":    account.UpdatedAt,
	}

	query, args, err := a.db.Insert("accounts").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build account insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError(fmt.Sprintf("account with email %s already exists", account.Email))
		}
		return apperrors.NewInternalError("failed to create account", err)
	}

	return nil
}

// GetByID retrieves an account by ID.
func (a *AccountAdapter) GetByID(ctx context.Context, id string) (*entities.Account, error) {
	query := `
		SELECT id, email, password_hash, role, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	account := &entities.Account{}
	err := a.client.DB().QueryRowContext(ctx, query, id).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.Role,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("account with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get account", err)
	}

	return account, nil
}

// GetByEmail retrieves an account by email.
func (a *AccountAdapter) GetByEmail(ctx context.Context, email string) (*entities.Account, error) {
	query := `
		SELECT id, email, password_hash, role, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`

	account := &entities.Account{}
	err := a.client.DB().QueryRowContext(ctx, query, email).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.Role,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("account with email %s not found", email))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get account", err)
	}

	return account, nil
}
