package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/repositories"
	apperrors "github.com/WambuiJane/visit-stamp-rewards/pkg/errors"
)

// BusinessInput carries the profile fields collected at registration.
// Only the name is required.
type BusinessInput struct {
	BusinessName            string `json:"business_name"`
	BusinessType            string `json:"business_type"`
	Phone                   string `json:"phone"`
	Address                 string `json:"address"`
	RewardDescription       string `json:"reward_description"`
	VisitsRequiredForReward int    `json:"visits_required_for_reward"`
}

// BusinessService handles business profiles and dashboard statistics.
type BusinessService struct {
	repo       repositories.BusinessRepository
	visitRepo  repositories.VisitRepository
	rewardRepo repositories.RewardRepository
	reviewRepo repositories.ReviewRepository
}

// NewBusinessService creates a new business service.
func NewBusinessService(
	repo repositories.BusinessRepository,
	visitRepo repositories.VisitRepository,
	rewardRepo repositories.RewardRepository,
	reviewRepo repositories.ReviewRepository,
) *BusinessService {
	return &BusinessService{
		repo:       repo,
		visitRepo:  visitRepo,
		rewardRepo: rewardRepo,
		reviewRepo: reviewRepo,
	}
}

// Register creates the business profile for a freshly created account.
// Exactly one profile row is inserted. When this fails the error is
// surfaced to the caller and the account is left in place; recovering
// the orphaned account is the caller's problem, not silently ours.
func (s *BusinessService) Register(ctx context.Context, accountID string, input BusinessInput) (*entities.Business, error) {
	name := strings.TrimSpace(input.BusinessName)
	if name == "" {
		return nil, apperrors.NewValidationError("business name is required")
	}

	now := time.Now().UTC()
	business := &entities.Business{
		ID:                      uuid.New().String(),
		AccountID:               accountID,
		BusinessName:            name,
		BusinessType:            strings.TrimSpace(input.BusinessType),
		Phone:                   strings.TrimSpace(input.Phone),
		Address:                 strings.TrimSpace(input.Address),
		RewardDescription:       strings.TrimSpace(input.RewardDescription),
		VisitsRequiredForReward: input.VisitsRequiredForReward,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	if err := s.repo.Create(ctx, business); err != nil {
		return nil, err
	}

	return business, nil
}

// GetByID retrieves a business by ID.
func (s *BusinessService) GetByID(ctx context.Context, id string) (*entities.Business, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByAccount retrieves the business owned by an account.
func (s *BusinessService) GetByAccount(ctx context.Context, accountID string) (*entities.Business, error) {
	return s.repo.GetByAccount(ctx, accountID)
}

// List retrieves businesses ordered by name, optionally filtered by a
// name search term.
func (s *BusinessService) List(ctx context.Context, filter repositories.BusinessFilter) ([]*entities.Business, error) {
	return s.repo.List(ctx, filter)
}

// Update updates a business profile.
func (s *BusinessService) Update(ctx context.Context, business *entities.Business) error {
	if strings.TrimSpace(business.BusinessName) == "" {
		return apperrors.NewValidationError("business name is required")
	}
	return s.repo.Update(ctx, business)
}

// Stats assembles the dashboard aggregates for a business: visit,
// distinct-customer and reward counts plus the average review rating.
func (s *BusinessService) Stats(ctx context.Context, businessID string) (*entities.BusinessStats, error) {
	visits, err := s.visitRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	rewards, err := s.rewardRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	stats := BusinessStats(visits, rewards)
	stats.AverageRating = AverageRating(reviews)

	return &stats, nil
}
