package entities

import (
	"time"
)

// Customer represents a loyalty customer identified by phone number.
// Name is optional; an empty string is persisted as NULL.
type Customer struct {
	ID        string    `json:"id" db:"id"`
	Phone     string    `json:"phone" db:"phone"`
	Name      string    `json:"name,omitempty" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
