package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/repositories"
	"github.com/WambuiJane/visit-stamp-rewards/internal/infrastructure/observability"
	apperrors "github.com/WambuiJane/visit-stamp-rewards/pkg/errors"
)

// ReviewService handles review submission and the review list
// projections shown on both dashboards.
type ReviewService struct {
	repo         repositories.ReviewRepository
	customerRepo repositories.CustomerRepository
	metrics      *observability.Metrics
}

// NewReviewService creates a new review service.
func NewReviewService(repo repositories.ReviewRepository, customerRepo repositories.CustomerRepository) *ReviewService {
	return &ReviewService{
		repo:         repo,
		customerRepo: customerRepo,
	}
}

// SetMetrics enables submission counters.
func (s *ReviewService) SetMetrics(metrics *observability.Metrics) {
	s.metrics = metrics
}

// Submit records a review for a business on behalf of the customer
// registered under the given phone number. The phone must resolve to an
// existing customer; otherwise nothing is written. A customer may
// review the same business any number of times.
func (s *ReviewService) Submit(ctx context.Context, businessID, phone string, rating int, comment string) (*entities.Review, error) {
	if strings.TrimSpace(businessID) == "" {
		return nil, apperrors.NewValidationError("business id is required")
	}
	if rating < 1 || rating > 5 {
		return nil, apperrors.NewValidationError("rating must be between 1 and 5")
	}

	customer, err := s.customerRepo.GetByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			return nil, apperrors.NewNotFoundError("customer not found")
		}
		return nil, err
	}

	review := &entities.Review{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		CustomerID: customer.ID,
		Rating:     &rating,
		Comment:    strings.TrimSpace(comment),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Info().
		Str("business_id", businessID).
		Str("customer_id", customer.ID).
		Int("rating", rating).
		Msg("review submitted")

	if s.metrics != nil {
		observability.RecordReviewSubmitted(ctx, s.metrics, businessID)
	}

	return review, nil
}

// ListForBusiness returns a business's reviews newest-first.
func (s *ReviewService) ListForBusiness(ctx context.Context, businessID string) ([]*entities.Review, error) {
	return s.repo.ListByBusiness(ctx, businessID)
}

// ListForCustomer returns a customer's reviews newest-first.
func (s *ReviewService) ListForCustomer(ctx context.Context, customerID string) ([]*entities.Review, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

// ListForPhone returns the reviews of the customer registered under the
// given phone number. An unregistered phone yields an empty list rather
// than an error; the dashboard shows "no reviews yet" either way.
func (s *ReviewService) ListForPhone(ctx context.Context, phone string) ([]*entities.Review, error) {
	customer, err := s.customerRepo.GetByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			return []*entities.Review{}, nil
		}
		return nil, err
	}

	return s.repo.ListByCustomer(ctx, customer.ID)
}
