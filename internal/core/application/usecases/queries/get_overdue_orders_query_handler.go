package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueOrdersQueryHandler retrieves in-flight orders past their delivery
// estimate. Terminal orders are excluded: a delivered or cancelled order can
// no longer be late.
type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueOrdersQueryHandler creates a handler for overdue order queries.
// Requires a GORM database connection for query execution.
func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by delivery estimate so the
// longest-overdue orders come first.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
) ([]GetOverdueOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	overdue := make([]GetOverdueOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			restaurant_id,
			status,
			estimated_delivery_time
		FROM orders
		WHERE status NOT IN (?, ?)
		  AND estimated_delivery_time < ?
		ORDER BY estimated_delivery_time
	`, int(order.Delivered), int(order.Cancelled), time.Now().UTC()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, userID, restaurantID uuid.UUID
		var status int
		var eta time.Time

		if err = rows.Scan(&id, &userID, &restaurantID, &status, &eta); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderUserID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderRestaurantID, idErr := kernel.UUIDFromBytes(restaurantID[:])
		if idErr != nil {
			return nil, idErr
		}

		overdue = append(overdue, GetOverdueOrdersQueryResponse{
			ID:                    orderID,
			UserID:                orderUserID,
			RestaurantID:          orderRestaurantID,
			Status:                order.Status(status),
			EstimatedDeliveryTime: eta,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
