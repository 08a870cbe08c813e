package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/WambuiJane/visit-stamp-rewards/internal/application/services"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
	apperrors "github.com/WambuiJane/visit-stamp-rewards/pkg/errors"
)

type stubReviewRepo struct {
	created    []*entities.Review
	byBusiness map[string][]*entities.Review
	byCustomer map[string][]*entities.Review
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{
		byBusiness: map[string][]*entities.Review{},
		byCustomer: map[string][]*entities.Review{},
	}
}

func (r *stubReviewRepo) Create(ctx context.Context, review *entities.Review) error {
	r.created = append(r.created, review)
	r.byBusiness[review.BusinessID] = append([]*entities.Review{review}, r.byBusiness[review.BusinessID]...)
	r.byCustomer[review.CustomerID] = append([]*entities.Review{review}, r.byCustomer[review.CustomerID]...)
	return nil
}

func (r *stubReviewRepo) ListByBusiness(ctx context.Context, businessID string) ([]*entities.Review, error) {
	reviews := r.byBusiness[businessID]
	if reviews == nil {
		reviews = []*entities.Review{}
	}
	return reviews, nil
}

func (r *stubReviewRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entities.Review, error) {
	reviews := r.byCustomer[customerID]
	if reviews == nil {
		reviews = []*entities.Review{}
	}
	return reviews, nil
}

func reviewFixtures(t *testing.T) (*services.ReviewService, *stubReviewRepo, *stubCustomerRepo) {
	t.Helper()
	reviewRepo := newStubReviewRepo()
	customerRepo := newStubCustomerRepo()
	customerRepo.byPhone["+254711000001"] = &entities.Customer{ID: "cust-1", Phone: "+254711000001", Name: "Wanjiku"}
	return services.NewReviewService(reviewRepo, customerRepo), reviewRepo, customerRepo
}

func TestReviewService_Submit_Success(t *testing.T) {
	service, repo, _ := reviewFixtures(t)

	review, err := service.Submit(context.Background(), "biz-1", "+254711000001", 5, "  Great coffee  ")
	require.NoError(t, err)

	assert.Equal(t, "biz-1", review.BusinessID)
	assert.Equal(t, "cust-1", review.CustomerID)
	assert.Equal(t, 5, review.RatingValue())
	assert.Equal(t, "Great coffee", review.Comment)
	assert.Len(t, repo.created, 1)
}

func TestReviewService_Submit_RatingOutOfRange(t *testing.T) {
	service, repo, _ := reviewFixtures(t)

	for _, rating := range []int{0, 6, -3} {
		_, err := service.Submit(context.Background(), "biz-1", "+254711000001", rating, "")
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	}
	assert.Empty(t, repo.created)
}

func TestReviewService_Submit_UnknownPhoneWritesNothing(t *testing.T) {
	service, repo, _ := reviewFixtures(t)

	_, err := service.Submit(context.Background(), "biz-1", "+254799999999", 4, "nice")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	assert.Empty(t, repo.created)
}

func TestReviewService_Submit_MissingBusinessID(t *testing.T) {
	service, repo, _ := reviewFixtures(t)

	_, err := service.Submit(context.Background(), " ", "+254711000001", 4, "")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	assert.Empty(t, repo.created)
}

func TestReviewService_Submit_RepeatReviewsAllowed(t *testing.T) {
	service, repo, _ := reviewFixtures(t)

	for i := 0; i < 3; i++ {
		_, err := service.Submit(context.Background(), "biz-1", "+254711000001", 4, "")
		require.NoError(t, err)
	}
	assert.Len(t, repo.created, 3)
}

func TestReviewService_ListForPhone_UnknownPhoneIsEmpty(t *testing.T) {
	service, _, _ := reviewFixtures(t)

	reviews, err := service.ListForPhone(context.Background(), "+254799999999")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestReviewService_ListForPhone_ReturnsCustomerReviews(t *testing.T) {
	service, _, _ := reviewFixtures(t)

	_, err := service.Submit(context.Background(), "biz-1", "+254711000001", 5, "first")
	require.NoError(t, err)
	_, err = service.Submit(context.Background(), "biz-2", "+254711000001", 3, "second")
	require.NoError(t, err)

	reviews, err := service.ListForPhone(context.Background(), "+254711000001")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	// Newest first.
	assert.Equal(t, "biz-2", reviews[0].BusinessID)
}
