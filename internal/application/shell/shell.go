// Package shell models the client navigation flow as an explicit state
// machine: which of the five screens is active, and which role the
// visitor picked. Keeping it here makes the transition rules testable
// independently of any frontend.
package shell

import (
	"fmt"

	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
)

// State identifies one of the five screens.
type State string

const (
	StateLanding           State = "landing"
	StateBusinessAuth      State = "business_auth"
	StateCustomerAuth      State = "customer_auth"
	StateBusinessDashboard State = "business_dashboard"
	StateCustomerDashboard State = "customer_dashboard"
)

// Shell tracks the active screen and the selected role. Role is only
// meaningful between role selection and sign-out; authentication state
// itself lives in the session token, not here.
type Shell struct {
	state State
	role  entities.Role
}

// New returns a shell at the landing screen.
func New() *Shell {
	return &Shell{state: StateLanding}
}

// Resume returns a shell positioned on the dashboard matching the
// account's role, for visitors arriving with a live session.
func Resume(account *entities.Account) *Shell {
	if account == nil {
		return New()
	}
	s := &Shell{role: account.Role}
	switch account.Role {
	case entities.RoleCustomer:
		s.state = StateCustomerDashboard
	default:
		s.state = StateBusinessDashboard
	}
	return s
}

// State returns the active screen.
func (s *Shell) State() State {
	return s.state
}

// Role returns the selected role, empty at the landing screen.
func (s *Shell) Role() entities.Role {
	return s.role
}

// SelectRole moves from the landing screen to the matching auth screen.
func (s *Shell) SelectRole(role entities.Role) error {
	if s.state != StateLanding {
		return fmt.Errorf("cannot select role from %s", s.state)
	}

	switch role {
	case entities.RoleBusiness:
		s.state = StateBusinessAuth
	case entities.RoleCustomer:
		s.state = StateCustomerAuth
	default:
		return fmt.Errorf("unknown role %q", role)
	}

	s.role = role
	return nil
}

// AuthSuccess moves from an auth screen to the matching dashboard.
func (s *Shell) AuthSuccess() error {
	switch s.state {
	case StateBusinessAuth:
		s.state = StateBusinessDashboard
	case StateCustomerAuth:
		s.state = StateCustomerDashboard
	default:
		return fmt.Errorf("cannot complete auth from %s", s.state)
	}
	return nil
}

// Back returns from an auth screen to the landing screen, clearing the
// role selection.
func (s *Shell) Back() error {
	switch s.state {
	case StateBusinessAuth, StateCustomerAuth:
		s.state = StateLanding
		s.role = ""
		return nil
	default:
		return fmt.Errorf("cannot go back from %s", s.state)
	}
}

// SignOut returns to the landing screen from either dashboard, clearing
// the role selection. The session token is discarded by the caller.
func (s *Shell) SignOut() error {
	switch s.state {
	case StateBusinessDashboard, StateCustomerDashboard:
		s.state = StateLanding
		s.role = ""
		return nil
	default:
		return fmt.Errorf("cannot sign out from %s", s.state)
	}
}
