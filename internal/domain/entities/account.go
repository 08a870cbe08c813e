package entities

import (
	"time"
)

// Role identifies which side of the product an account belongs to.
type Role string

const (
	RoleBusiness Role = "business"
	RoleCustomer Role = "customer"
)

// Account represents an authenticated identity in the system.
// Customers identify by phone alone and normally never carry an
// account; the role is kept on the account so the caller never has
// to track it separately from the session.
type Account struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
