package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/WambuiJane/visit-stamp-rewards/internal/application/services"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/repositories"
	apperrors "github.com/WambuiJane/visit-stamp-rewards/pkg/errors"
)

type stubBusinessRepo struct {
	byID      map[string]*entities.Business
	byAccount map[string]*entities.Business

	createErr error
}

func newStubBusinessRepo() *stubBusinessRepo {
	return &stubBusinessRepo{
		byID:      map[string]*entities.Business{},
		byAccount: map[string]*entities.Business{},
	}
}

func (r *stubBusinessRepo) Create(ctx context.Context, business *entities.Business) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.byID[business.ID] = business
	r.byAccount[business.AccountID] = business
	return nil
}

func (r *stubBusinessRepo) GetByID(ctx context.Context, id string) (*entities.Business, error) {
	business, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("business not found")
	}
	return business, nil
}

func (r *stubBusinessRepo) GetByAccount(ctx context.Context, accountID string) (*entities.Business, error) {
	business, ok := r.byAccount[accountID]
	if !ok {
		return nil, apperrors.NewNotFoundError("business not found")
	}
	return business, nil
}

func (r *stubBusinessRepo) List(ctx context.Context, filter repositories.BusinessFilter) ([]*entities.Business, error) {
	businesses := []*entities.Business{}
	for _, business := range r.byID {
		businesses = append(businesses, business)
	}
	return businesses, nil
}

func (r *stubBusinessRepo) Update(ctx context.Context, business *entities.Business) error {
	if _, ok := r.byID[business.ID]; !ok {
		return apperrors.NewNotFoundError("business not found")
	}
	r.byID[business.ID] = business
	return nil
}

type stubVisitRepo struct {
	visits []*entities.Visit
}

func (r *stubVisitRepo) ListByBusiness(ctx context.Context, businessID string) ([]*entities.Visit, error) {
	return r.visits, nil
}

type stubRewardRepo struct {
	rewards []*entities.Reward
}

func (r *stubRewardRepo) ListByBusiness(ctx context.Context, businessID string) ([]*entities.Reward, error) {
	return r.rewards, nil
}

func TestBusinessService_Register_TrimsAndPersists(t *testing.T) {
	repo := newStubBusinessRepo()
	service := services.NewBusinessService(repo, &stubVisitRepo{}, &stubRewardRepo{}, newStubReviewRepo())

	business, err := service.Register(context.Background(), "acc-1", services.BusinessInput{
		BusinessName:            "  Mama Njeri's Cafe  ",
		BusinessType:            "cafe",
		RewardDescription:       "Free coffee after 10 visits",
		VisitsRequiredForReward: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, "Mama Njeri's Cafe", business.BusinessName)
	assert.Equal(t, "acc-1", business.AccountID)
	assert.NotEmpty(t, business.ID)

	stored, err := service.GetByAccount(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, business.ID, stored.ID)
}

func TestBusinessService_Register_RequiresName(t *testing.T) {
	service := services.NewBusinessService(newStubBusinessRepo(), &stubVisitRepo{}, &stubRewardRepo{}, newStubReviewRepo())

	_, err := service.Register(context.Background(), "acc-1", services.BusinessInput{BusinessName: "   "})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestBusinessService_Update_RequiresName(t *testing.T) {
	service := services.NewBusinessService(newStubBusinessRepo(), &stubVisitRepo{}, &stubRewardRepo{}, newStubReviewRepo())

	err := service.Update(context.Background(), &entities.Business{ID: "biz-1", BusinessName: ""})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestBusinessService_Stats_Composition(t *testing.T) {
	visitRepo := &stubVisitRepo{visits: []*entities.Visit{
		{ID: "v1", CustomerID: "cust-1"},
		{ID: "v2", CustomerID: "cust-1"},
		{ID: "v3", CustomerID: "cust-2"},
	}}
	rewardRepo := &stubRewardRepo{rewards: []*entities.Reward{
		{ID: "r1", CustomerID: "cust-1"},
	}}
	reviewRepo := newStubReviewRepo()
	reviewRepo.byBusiness["biz-1"] = []*entities.Review{
		{ID: "rev-1", BusinessID: "biz-1", Rating: intPtr(5)},
		{ID: "rev-2", BusinessID: "biz-1", Rating: nil},
	}

	service := services.NewBusinessService(newStubBusinessRepo(), visitRepo, rewardRepo, reviewRepo)

	stats, err := service.Stats(context.Background(), "biz-1")
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalVisits)
	assert.Equal(t, 2, stats.TotalCustomers)
	assert.Equal(t, 1, stats.TotalRewards)
	// A nil rating counts as 0 but stays in the denominator.
	assert.Equal(t, "2.5", stats.AverageRating)
}

func TestBusinessService_Stats_EmptyBusiness(t *testing.T) {
	service := services.NewBusinessService(newStubBusinessRepo(), &stubVisitRepo{}, &stubRewardRepo{}, newStubReviewRepo())

	stats, err := service.Stats(context.Background(), "biz-1")
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalVisits)
	assert.Equal(t, 0, stats.TotalCustomers)
	assert.Equal(t, 0, stats.TotalRewards)
	assert.Equal(t, "0.0", stats.AverageRating)
}
