package services_test

import (
	"context"
	"errors"
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMenuItemSource struct{ mock.Mock }

func (m *MockMenuItemSource) GetMenuItem(
	ctx context.Context,
	restaurantID, itemID kernel.UUID,
) (ports.MenuItem, error) {
	args := m.Called(ctx, restaurantID, itemID)
	return args.Get(0).(ports.MenuItem), args.Error(1)
}

func availableItem(id kernel.UUID, name, price string) ports.MenuItem {
	return ports.MenuItem{
		ID:     id,
		Name:   name,
		Price:  decimal.RequireFromString(price),
		Status: ports.MenuItemAvailable,
	}
}

func TestOrderPricer_BuildItems(t *testing.T) {
	restaurantID := kernel.NewUUID()

	t.Run("should snapshot id, name and price from the catalog", func(t *testing.T) {
		ctx := t.Context()
		pizzaID := kernel.NewUUID()

		catalog := new(MockMenuItemSource)
		catalog.On("GetMenuItem", ctx, restaurantID, pizzaID).
			Return(availableItem(pizzaID, "Margherita", "9.50"), nil).Once()

		pricer := services.NewOrderPricer(catalog)
		items, err := pricer.BuildItems(ctx, restaurantID, []services.ItemRequest{
			{MenuItemID: pizzaID, Quantity: 2, SpecialInstructions: "extra basil"},
		})

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.True(t, items[0].MenuItemID().IsEqual(pizzaID))
		assert.Equal(t, "Margherita", items[0].Name())
		assert.True(t, items[0].Price().Equal(decimal.RequireFromString("9.50")))
		assert.Equal(t, 2, items[0].Quantity())
		assert.Equal(t, "extra basil", items[0].SpecialInstructions())
		catalog.AssertExpectations(t)
	})

	t.Run("should preserve request order across multiple items", func(t *testing.T) {
		ctx := t.Context()
		pizzaID := kernel.NewUUID()
		breadID := kernel.NewUUID()

		catalog := new(MockMenuItemSource)
		catalog.On("GetMenuItem", ctx, restaurantID, pizzaID).
			Return(availableItem(pizzaID, "Margherita", "9.50"), nil).Once()
		catalog.On("GetMenuItem", ctx, restaurantID, breadID).
			Return(availableItem(breadID, "Garlic bread", "4.00"), nil).Once()

		pricer := services.NewOrderPricer(catalog)
		items, err := pricer.BuildItems(ctx, restaurantID, []services.ItemRequest{
			{MenuItemID: pizzaID, Quantity: 2},
			{MenuItemID: breadID, Quantity: 1},
		})

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Margherita", items[0].Name())
		assert.Equal(t, "Garlic bread", items[1].Name())
		catalog.AssertExpectations(t)
	})

	t.Run("should fail when a catalog lookup fails", func(t *testing.T) {
		ctx := t.Context()
		missingID := kernel.NewUUID()

		catalog := new(MockMenuItemSource)
		catalog.On("GetMenuItem", ctx, restaurantID, missingID).
			Return(ports.MenuItem{}, errors.New("not found")).Once()

		pricer := services.NewOrderPricer(catalog)
		items, err := pricer.BuildItems(ctx, restaurantID, []services.ItemRequest{
			{MenuItemID: missingID, Quantity: 1},
		})

		require.Error(t, err)
		assert.Nil(t, items)
		assert.Contains(t, err.Error(), "unable to validate menu item")
		catalog.AssertExpectations(t)
	})

	t.Run("should fail when an item is not available", func(t *testing.T) {
		ctx := t.Context()
		itemID := kernel.NewUUID()
		unavailable := ports.MenuItem{
			ID:     itemID,
			Name:   "Seasonal soup",
			Price:  decimal.RequireFromString("6.00"),
			Status: ports.MenuItemOutOfStock,
		}

		catalog := new(MockMenuItemSource)
		catalog.On("GetMenuItem", ctx, restaurantID, itemID).
			Return(unavailable, nil).Once()

		pricer := services.NewOrderPricer(catalog)
		items, err := pricer.BuildItems(ctx, restaurantID, []services.ItemRequest{
			{MenuItemID: itemID, Quantity: 1},
		})

		require.Error(t, err)
		assert.Nil(t, items)
		require.ErrorIs(t, err, services.ErrMenuItemNotAvailable)
		assert.Contains(t, err.Error(), "Seasonal soup")
		catalog.AssertExpectations(t)
	})

	t.Run("should discard the whole list when one item fails", func(t *testing.T) {
		ctx := t.Context()
		pizzaID := kernel.NewUUID()
		badID := kernel.NewUUID()

		catalog := new(MockMenuItemSource)
		catalog.On("GetMenuItem", ctx, restaurantID, pizzaID).
			Return(availableItem(pizzaID, "Margherita", "9.50"), nil).Once()
		catalog.On("GetMenuItem", ctx, restaurantID, badID).
			Return(ports.MenuItem{}, errors.New("catalog unreachable")).Once()

		pricer := services.NewOrderPricer(catalog)
		items, err := pricer.BuildItems(ctx, restaurantID, []services.ItemRequest{
			{MenuItemID: pizzaID, Quantity: 1},
			{MenuItemID: badID, Quantity: 1},
		})

		require.Error(t, err)
		assert.Nil(t, items)
		catalog.AssertExpectations(t)
	})

	t.Run("should fail on non-positive quantity", func(t *testing.T) {
		ctx := t.Context()
		itemID := kernel.NewUUID()

		catalog := new(MockMenuItemSource)
		catalog.On("GetMenuItem", ctx, restaurantID, itemID).
			Return(availableItem(itemID, "Margherita", "9.50"), nil).Once()

		pricer := services.NewOrderPricer(catalog)
		items, err := pricer.BuildItems(ctx, restaurantID, []services.ItemRequest{
			{MenuItemID: itemID, Quantity: 0},
		})

		require.Error(t, err)
		assert.Nil(t, items)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should return empty list for empty request", func(t *testing.T) {
		catalog := new(MockMenuItemSource)
		pricer := services.NewOrderPricer(catalog)

		items, err := pricer.BuildItems(t.Context(), restaurantID, nil)

		require.NoError(t, err)
		assert.Empty(t, items)
	})
}
