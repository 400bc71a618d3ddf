package commands_test

import (
	"testing"

	"mealdash/internal/core/application/usecases/commands"
	"mealdash/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomerConfirmCommand_Success(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	cmd, err := commands.NewCustomerConfirmCommand(orderID, customerID)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.True(t, cmd.CustomerID().IsEqual(customerID))
}

func TestNewCustomerConfirmCommand_InvalidInputs(t *testing.T) {
	_, err := commands.NewCustomerConfirmCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = commands.NewCustomerConfirmCommand(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}

func TestCustomerConfirmCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CustomerConfirmCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCustomerConfirmCommandIsNotConstructed)
}
