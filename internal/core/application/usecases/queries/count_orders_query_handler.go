package queries

import (
	"context"

	"gorm.io/gorm"
)

// CountOrdersQueryHandler counts orders for a user or a restaurant.
type CountOrdersQueryHandler struct {
	db *gorm.DB
}

// NewCountOrdersQueryHandler creates a handler for order counts.
func NewCountOrdersQueryHandler(db *gorm.DB) CountOrdersQueryHandler {
	return CountOrdersQueryHandler{db: db}
}

// Handle executes the count for the query's scope.
func (h CountOrdersQueryHandler) Handle(ctx context.Context, query CountOrdersQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	tx := h.db.WithContext(ctx).Table("orders")
	if query.UserID() != nil {
		tx = tx.Where("user_id = ?", query.UserID().Bytes())
	}
	if query.RestaurantID() != nil {
		tx = tx.Where("restaurant_id = ?", query.RestaurantID().Bytes())
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
