package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/WambuiJane/visit-stamp-rewards/internal/application/services"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
)

func intPtr(v int) *int {
	return &v
}

func TestAverageRating_EmptySet(t *testing.T) {
	assert.Equal(t, "0.0", services.AverageRating(nil))
	assert.Equal(t, "0.0", services.AverageRating([]*entities.Review{}))
}

func TestAverageRating_RoundsToOneDecimal(t *testing.T) {
	reviews := []*entities.Review{
		{Rating: intPtr(5)},
		{Rating: intPtr(4)},
		{Rating: intPtr(4)},
	}

	// 13/3 = 4.333...
	assert.Equal(t, "4.3", services.AverageRating(reviews))
}

func TestAverageRating_NilRatingCountsAsZero(t *testing.T) {
	reviews := []*entities.Review{
		{Rating: intPtr(5)},
		{Rating: nil},
	}

	// Unrated reviews stay in the denominator.
	assert.Equal(t, "2.5", services.AverageRating(reviews))
}

func TestAverageRating_StableUnderReordering(t *testing.T) {
	forward := []*entities.Review{
		{Rating: intPtr(1)},
		{Rating: intPtr(3)},
		{Rating: intPtr(5)},
	}
	backward := []*entities.Review{
		{Rating: intPtr(5)},
		{Rating: intPtr(3)},
		{Rating: intPtr(1)},
	}

	assert.Equal(t, services.AverageRating(forward), services.AverageRating(backward))
	assert.Equal(t, "3.0", services.AverageRating(forward))
}

func TestBusinessStats_CountsDistinctCustomers(t *testing.T) {
	visits := []*entities.Visit{
		{CustomerID: "cust-a"},
		{CustomerID: "cust-a"},
		{CustomerID: "cust-b"},
	}
	rewards := []*entities.Reward{
		{CustomerID: "cust-a"},
	}

	stats := services.BusinessStats(visits, rewards)

	assert.Equal(t, 3, stats.TotalVisits)
	assert.Equal(t, 2, stats.TotalCustomers)
	assert.Equal(t, 1, stats.TotalRewards)
}

func TestBusinessStats_EmptyInput(t *testing.T) {
	stats := services.BusinessStats(nil, nil)

	assert.Equal(t, 0, stats.TotalVisits)
	assert.Equal(t, 0, stats.TotalCustomers)
	assert.Equal(t, 0, stats.TotalRewards)
}
