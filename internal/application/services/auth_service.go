package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/repositories"
	apperrors "github.com/WambuiJane/visit-stamp-rewards/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// SessionClaims are the JWT claims carried by a session token. Identity
// and role travel together so callers never have to resolve the role
// from a second source.
type SessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService handles account sign-up, sign-in and session lookup.
type AuthService struct {
	repo      repositories.AccountRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new auth service.
func NewAuthService(repo repositories.AccountRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// SignUp creates a business account and returns it with a session token.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*entities.Account, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, "", apperrors.NewValidationError("email is required")
	}
	if len(password) < 8 {
		return nil, "", apperrors.NewValidationError("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperrors.NewInternalError("failed to hash password", err)
	}

	now := time.Now().UTC()
	account := &entities.Account{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         entities.RoleBusiness,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(account)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// SignIn verifies credentials and returns the account with a fresh
// session token.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*entities.Account, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			return nil, "", apperrors.NewUnauthorizedError("invalid email or password")
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.NewUnauthorizedError("invalid email or password")
	}

	token, err := s.issueToken(account)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// Session validates a session token and returns the account it belongs
// to. Role comes from the token claims, so the caller learns identity
// and role in one resolution.
func (s *AuthService) Session(ctx context.Context, token string) (*entities.Account, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.NewUnauthorizedError("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, apperrors.NewUnauthorizedError("invalid session token")
	}

	account, err := s.repo.GetByID(ctx, claims.Subject)
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			return nil, apperrors.NewUnauthorizedError("session account no longer exists")
		}
		return nil, err
	}

	return account, nil
}

func (s *AuthService) issueToken(account *entities.Account) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Email: account.Email,
		Role:  string(account.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", apperrors.NewInternalError("failed to sign session token", err)
	}
	return signed, nil
}
