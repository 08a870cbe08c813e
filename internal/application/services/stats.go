package services

import (
	"fmt"

	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
)

// AverageRating computes the mean rating over a review set, formatted
// with one decimal place for display. A review without a rating
// contributes 0 to the sum but still counts in the denominator, so a
// [5, nil] set averages to 2.5, not 5.0. An empty set yields "0.0".
func AverageRating(reviews []*entities.Review) string {
	if len(reviews) == 0 {
		return "0.0"
	}

	sum := 0
	for _, review := range reviews {
		sum += review.RatingValue()
	}

	return fmt.Sprintf("%.1f", float64(sum)/float64(len(reviews)))
}

// BusinessStats computes the dashboard counters from raw visit and
// reward rows: total visits, distinct visiting customers, and total
// rewards. All counts are zero-valued on empty input and independent of
// row order.
func BusinessStats(visits []*entities.Visit, rewards []*entities.Reward) entities.BusinessStats {
	customers := make(map[string]struct{}, len(visits))
	for _, visit := range visits {
		customers[visit.CustomerID] = struct{}{}
	}

	return entities.BusinessStats{
		TotalVisits:    len(visits),
		TotalCustomers: len(customers),
		TotalRewards:   len(rewards),
	}
}
