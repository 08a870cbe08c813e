package entities

import (
	"time"
)

// Review represents a star rating with an optional comment that a
// customer left for a business. Rating is a pointer because legacy rows
// may carry no rating at all; aggregation treats a missing rating as 0
// while still counting the row.
type Review struct {
	ID         string    `json:"id" db:"id"`
	BusinessID string    `json:"business_id" db:"business_id"`
	CustomerID string    `json:"customer_id" db:"customer_id"`
	Rating     *int      `json:"rating" db:"rating"`
	Comment    string    `json:"comment,omitempty" db:"comment"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`

	// Joined display fields, populated by list queries.
	CustomerName  string `json:"customer_name,omitempty" db:"customer_name"`
	CustomerPhone string `json:"customer_phone,omitempty" db:"customer_phone"`
	BusinessName  string `json:"business_name,omitempty" db:"business_name"`
	BusinessType  string `json:"business_type,omitempty" db:"business_type"`
}

// RatingValue returns the rating, or 0 when none was recorded.
func (r *Review) RatingValue() int {
	if r.Rating == nil {
		return 0
	}
	return *r.Rating
}
