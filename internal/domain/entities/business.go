package entities

import (
	"time"
)

// Business represents a registered business profile.
type Business struct {
	ID                      string    `json:"id" db:"id"`
	AccountID               string    `json:"account_id" db:"account_id"`
	BusinessName            string    `json:"business_name" db:"business_name"`
	BusinessType            string    `json:"business_type" db:"business_type"`
	Phone                   string    `json:"phone" db:"phone"`
	Address                 string    `json:"address" db:"address"`
	RewardDescription       string    `json:"reward_description" db:"reward_description"`
	VisitsRequiredForReward int       `json:"visits_required_for_reward" db:"visits_required_for_reward"`
	CreatedAt               time.Time `json:"created_at" db:"created_at"`
	UpdatedAt               time.Time `json:"updated_at" db:"updated_at"`
}

// BusinessStats holds the aggregate counters shown on the business dashboard.
type BusinessStats struct {
	TotalVisits    int    `json:"total_visits"`
	TotalCustomers int    `json:"total_customers"`
	TotalRewards   int    `json:"total_rewards"`
	AverageRating  string `json:"average_rating"`
}
