package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/WambuiJane/visit-stamp-rewards/internal/application/shell"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
)

func TestShell_BusinessFlow(t *testing.T) {
	s := shell.New()
	assert.Equal(t, shell.StateLanding, s.State())

	require.NoError(t, s.SelectRole(entities.RoleBusiness))
	assert.Equal(t, shell.StateBusinessAuth, s.State())
	assert.Equal(t, entities.RoleBusiness, s.Role())

	require.NoError(t, s.AuthSuccess())
	assert.Equal(t, shell.StateBusinessDashboard, s.State())

	require.NoError(t, s.SignOut())
	assert.Equal(t, shell.StateLanding, s.State())
	assert.Empty(t, s.Role())
}

func TestShell_CustomerFlow(t *testing.T) {
	s := shell.New()

	require.NoError(t, s.SelectRole(entities.RoleCustomer))
	assert.Equal(t, shell.StateCustomerAuth, s.State())

	require.NoError(t, s.AuthSuccess())
	assert.Equal(t, shell.StateCustomerDashboard, s.State())

	require.NoError(t, s.SignOut())
	assert.Equal(t, shell.StateLanding, s.State())
	assert.Empty(t, s.Role())
}

func TestShell_BackClearsRole(t *testing.T) {
	s := shell.New()

	require.NoError(t, s.SelectRole(entities.RoleCustomer))
	require.NoError(t, s.Back())

	assert.Equal(t, shell.StateLanding, s.State())
	assert.Empty(t, s.Role())
}

func TestShell_InvalidTransitions(t *testing.T) {
	s := shell.New()

	assert.Error(t, s.AuthSuccess())
	assert.Error(t, s.Back())
	assert.Error(t, s.SignOut())
	assert.Error(t, s.SelectRole(entities.Role("admin")))

	require.NoError(t, s.SelectRole(entities.RoleBusiness))
	assert.Error(t, s.SelectRole(entities.RoleCustomer))
	assert.Error(t, s.SignOut())
}

func TestResume_PicksDashboardByRole(t *testing.T) {
	business := shell.Resume(&entities.Account{Role: entities.RoleBusiness})
	assert.Equal(t, shell.StateBusinessDashboard, business.State())

	customer := shell.Resume(&entities.Account{Role: entities.RoleCustomer})
	assert.Equal(t, shell.StateCustomerDashboard, customer.State())

	anonymous := shell.Resume(nil)
	assert.Equal(t, shell.StateLanding, anonymous.State())
}
