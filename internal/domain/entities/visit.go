package entities

import (
	"time"
)

// Visit records a single customer visit to a business. Visits are
// produced by the stamping flow outside this service and consumed
// read-only for dashboard aggregation.
type Visit struct {
	ID         string    `json:"id" db:"id"`
	BusinessID string    `json:"business_id" db:"business_id"`
	CustomerID string    `json:"customer_id" db:"customer_id"`
	VisitDate  time.Time `json:"visit_date" db:"visit_date"`
	Notes      string    `json:"notes,omitempty" db:"notes"`
}
