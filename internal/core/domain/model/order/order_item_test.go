package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderItem(t *testing.T) {
	validID := kernel.NewUUID()
	validPrice := decimal.RequireFromString("9.50")

	t.Run("should create valid item with all valid parameters", func(t *testing.T) {
		item, err := order.NewOrderItem(validID, "Margherita", validPrice, 2, "extra basil")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.MenuItemID().IsEqual(validID))
		assert.Equal(t, "Margherita", item.Name())
		assert.True(t, item.Price().Equal(validPrice))
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, "extra basil", item.SpecialInstructions())
	})

	t.Run("should allow empty special instructions", func(t *testing.T) {
		item, err := order.NewOrderItem(validID, "Margherita", validPrice, 1, "")

		require.NoError(t, err)
		assert.Empty(t, item.SpecialInstructions())
	})

	t.Run("should allow zero price", func(t *testing.T) {
		item, err := order.NewOrderItem(validID, "Free sauce", decimal.Zero, 1, "")

		require.NoError(t, err)
		assert.True(t, item.Price().IsZero())
	})

	t.Run("should fail with invalid menu item id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewOrderItem(invalidID, "Margherita", validPrice, 1, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := order.NewOrderItem(validID, "", validPrice, 1, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "menu item name")
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		_, err := order.NewOrderItem(validID, "Margherita", decimal.RequireFromString("-0.01"), 1, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "price")
		assert.Contains(t, err.Error(), "is negative")
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewOrderItem(validID, "Margherita", validPrice, 0, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		_, err := order.NewOrderItem(validID, "Margherita", validPrice, -3, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "-3 is not greater than 0")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewOrderItem(invalidID, "", validPrice, 0, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "menu item name")
		assert.Contains(t, err.Error(), "quantity")
	})
}

func TestOrderItem_Validate(t *testing.T) {
	t.Run("should pass validation for properly constructed item", func(t *testing.T) {
		item, _ := order.NewOrderItem(kernel.NewUUID(), "Margherita", decimal.NewFromInt(10), 1, "")

		require.NoError(t, item.Validate())
	})

	t.Run("should fail validation for zero value item", func(t *testing.T) {
		var item order.OrderItem

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderItemIsNotConstructed, err)
	})
}

func TestOrderItem_Subtotal(t *testing.T) {
	t.Run("should multiply unit price by quantity", func(t *testing.T) {
		item, _ := order.NewOrderItem(kernel.NewUUID(), "Margherita",
			decimal.RequireFromString("9.50"), 2, "")

		assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("19.00")),
			"expected 19.00, got %s", item.Subtotal())
	})

	t.Run("should equal unit price for quantity of one", func(t *testing.T) {
		price := decimal.RequireFromString("4.00")
		item, _ := order.NewOrderItem(kernel.NewUUID(), "Garlic bread", price, 1, "")

		assert.True(t, item.Subtotal().Equal(price))
	})

	t.Run("should keep exact decimal arithmetic", func(t *testing.T) {
		item, _ := order.NewOrderItem(kernel.NewUUID(), "Espresso",
			decimal.RequireFromString("2.10"), 3, "")

		assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("6.30")),
			"expected 6.30, got %s", item.Subtotal())
	})
}
