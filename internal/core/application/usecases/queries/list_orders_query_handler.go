package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves orders matching a filter from the database.
// This is a pass-through filtered read: no aggregation or joining logic beyond
// the store's native filtering.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for filtered order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the filtered listing. Results are ordered by creation time,
// each with its line items in insertion order.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows := make([]orderRow, 0)
	if err := h.applyFilter(ctx, query.Filter()).Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return []OrderResponse{}, nil
	}

	orderIDs := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		orderIDs[i] = row.ID
	}

	var itemRows []orderItemRow
	err := h.db.WithContext(ctx).
		Table("order_items").
		Where("order_id IN ?", orderIDs).
		Order("order_id").
		Order("position").
		Find(&itemRows).Error
	if err != nil {
		return nil, err
	}

	itemsByOrder := make(map[uuid.UUID][]orderItemRow, len(rows))
	for _, itemRow := range itemRows {
		itemsByOrder[itemRow.OrderID] = append(itemsByOrder[itemRow.OrderID], itemRow)
	}

	responses := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		response, respErr := toOrderResponse(row, itemsByOrder[row.ID])
		if respErr != nil {
			return nil, respErr
		}
		responses = append(responses, response)
	}

	return responses, nil
}

func (h ListOrdersQueryHandler) applyFilter(ctx context.Context, filter ListOrdersFilter) *gorm.DB {
	tx := h.db.WithContext(ctx).Table("orders")

	if filter.UserID != nil {
		tx = tx.Where("user_id = ?", filter.UserID.Bytes())
	}
	if filter.RestaurantID != nil {
		tx = tx.Where("restaurant_id = ?", filter.RestaurantID.Bytes())
	}
	if filter.Status != nil {
		tx = tx.Where("status = ?", int(*filter.Status))
	}
	if filter.CreatedFrom != nil {
		tx = tx.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		tx = tx.Where("created_at <= ?", *filter.CreatedTo)
	}

	return tx
}
