package entities

import (
	"time"
)

// Reward records a reward a customer earned at a business. Rewards are
// only counted by this service, never mutated.
type Reward struct {
	ID         string     `json:"id" db:"id"`
	BusinessID string     `json:"business_id" db:"business_id"`
	CustomerID string     `json:"customer_id" db:"customer_id"`
	EarnedDate time.Time  `json:"earned_date" db:"earned_date"`
	IsRedeemed bool       `json:"is_redeemed" db:"is_redeemed"`
	RedeemedAt *time.Time `json:"redeemed_date,omitempty" db:"redeemed_date"`
}
