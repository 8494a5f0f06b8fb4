package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Confirmed)
	require.NoError(t, err)

	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, order.Confirmed, cmd.Status())
	assert.NoError(t, cmd.Validate())
}

func TestNewChangeOrderStatusCommand_AcceptsEveryDefinedStatus(t *testing.T) {
	statuses := []order.Status{
		order.Pending, order.Confirmed, order.Preparing,
		order.OutForDelivery, order.Delivered, order.Cancelled,
	}

	for _, status := range statuses {
		cmd, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), status)
		require.NoError(t, err, "status %s should be accepted", status)
		assert.Equal(t, status, cmd.Status())
	}
}

func TestNewChangeOrderStatusCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, order.Confirmed)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewChangeOrderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Unknown)
	require.Error(t, err)
}

func TestNewChangeOrderStatusCommand_OutOfRangeStatus(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Status(99))
	require.Error(t, err)
}

func TestChangeOrderStatusCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.ChangeOrderStatusCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrChangeOrderStatusCommandIsNotConstructed)
}
