// Package http exposes the order application over a REST API using echo.
// Handlers translate between JSON payloads and application commands/queries
// and map domain errors to HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler    queries.GetOrderQueryHandler
	listOrdersHandler  queries.ListOrdersQueryHandler
	countOrdersHandler queries.CountOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	countOrdersHandler queries.CountOrdersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		countOrdersHandler:       countOrdersHandler,
	}
}

// RegisterRoutes attaches all order endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/orders")

	api.POST("", s.PlaceOrder)
	api.GET("", s.ListOrders)
	api.GET("/date-range", s.ListOrdersByDateRange)
	api.GET("/status/:status", s.ListOrdersByStatus)
	api.GET("/user/:userId", s.ListOrdersByUser)
	api.GET("/user/:userId/count", s.CountOrdersByUser)
	api.GET("/user/:userId/status/:status", s.ListOrdersByUserAndStatus)
	api.GET("/restaurant/:restaurantId", s.ListOrdersByRestaurant)
	api.GET("/restaurant/:restaurantId/count", s.CountOrdersByRestaurant)
	api.GET("/restaurant/:restaurantId/status/:status", s.ListOrdersByRestaurantAndStatus)
	api.GET("/:id", s.GetOrder)
	api.PATCH("/:id/status", s.ChangeOrderStatus)
	api.DELETE("/:id", s.CancelOrder)
}

// Error is the JSON error body returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderItemRequest is one requested order line in a placement request.
type PlaceOrderItemRequest struct {
	MenuItemID          string `json:"menuItemId"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// PlaceOrderRequest is the JSON body of POST /api/orders.
type PlaceOrderRequest struct {
	UserID              string                  `json:"userId"`
	RestaurantID        string                  `json:"restaurantId"`
	Items               []PlaceOrderItemRequest `json:"items"`
	DeliveryAddress     string                  `json:"deliveryAddress,omitempty"`
	SpecialInstructions string                  `json:"specialInstructions,omitempty"`
}

// ChangeOrderStatusRequest is the JSON body of PATCH /api/orders/:id/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse is one order line in an order response.
type OrderItemResponse struct {
	MenuItemID          string          `json:"menuItemId"`
	Name                string          `json:"name"`
	Price               decimal.Decimal `json:"price"`
	Quantity            int             `json:"quantity"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
}

// OrderResponse is the JSON representation of a stored order.
type OrderResponse struct {
	ID                    string              `json:"id"`
	UserID                string              `json:"userId"`
	RestaurantID          string              `json:"restaurantId"`
	Items                 []OrderItemResponse `json:"items"`
	DeliveryAddress       string              `json:"deliveryAddress,omitempty"`
	SpecialInstructions   string              `json:"specialInstructions,omitempty"`
	Status                string              `json:"status"`
	TotalAmount           decimal.Decimal     `json:"totalAmount"`
	EstimatedDeliveryTime time.Time           `json:"estimatedDeliveryTime"`
	CreatedAt             time.Time           `json:"createdAt"`
	UpdatedAt             time.Time           `json:"updatedAt"`
}

// CountResponse is the JSON body of the count endpoints.
type CountResponse struct {
	Count int64 `json:"count"`
}

// PlaceOrder handles POST /api/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+req.UserID)
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id: "+req.RestaurantID)
	}

	items := make([]commands.OrderItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, itemErr := kernel.UUIDFromString(item.MenuItemID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid menu item id: "+item.MenuItemID)
		}
		items = append(items, commands.OrderItemRequest{
			MenuItemID:          menuItemID,
			Quantity:            item.Quantity,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(userID, restaurantID, items,
		req.DeliveryAddress, req.SpecialInstructions)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderJSON(placed))
}

// GetOrder handles GET /api/orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponseJSON(resp))
}

// ListOrders handles GET /api/orders - retrieves all orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	return s.listWithFilter(ctx, queries.ListOrdersFilter{})
}

// ListOrdersByUser handles GET /api/orders/user/:userId.
func (s *Server) ListOrdersByUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+ctx.Param("userId"))
	}

	return s.listWithFilter(ctx, queries.ListOrdersFilter{UserID: &userID})
}

// ListOrdersByRestaurant handles GET /api/orders/restaurant/:restaurantId.
func (s *Server) ListOrdersByRestaurant(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id: "+ctx.Param("restaurantId"))
	}

	return s.listWithFilter(ctx, queries.ListOrdersFilter{RestaurantID: &restaurantID})
}

// ListOrdersByStatus handles GET /api/orders/status/:status.
func (s *Server) ListOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.Param("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+ctx.Param("status"))
	}

	return s.listWithFilter(ctx, queries.ListOrdersFilter{Status: &status})
}

// ListOrdersByUserAndStatus handles GET /api/orders/user/:userId/status/:status.
func (s *Server) ListOrdersByUserAndStatus(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+ctx.Param("userId"))
	}

	status, err := order.StatusFromString(ctx.Param("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+ctx.Param("status"))
	}

	return s.listWithFilter(ctx, queries.ListOrdersFilter{UserID: &userID, Status: &status})
}

// ListOrdersByRestaurantAndStatus handles GET /api/orders/restaurant/:restaurantId/status/:status.
func (s *Server) ListOrdersByRestaurantAndStatus(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id: "+ctx.Param("restaurantId"))
	}

	status, err := order.StatusFromString(ctx.Param("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+ctx.Param("status"))
	}

	return s.listWithFilter(ctx, queries.ListOrdersFilter{RestaurantID: &restaurantID, Status: &status})
}

// ListOrdersByDateRange handles GET /api/orders/date-range?start=...&end=...
// Timestamps use RFC 3339.
func (s *Server) ListOrdersByDateRange(ctx echo.Context) error {
	start, err := time.Parse(time.RFC3339, ctx.QueryParam("start"))
	if err != nil {
		return badRequest(ctx, "Invalid start time: "+ctx.QueryParam("start"))
	}

	end, err := time.Parse(time.RFC3339, ctx.QueryParam("end"))
	if err != nil {
		return badRequest(ctx, "Invalid end time: "+ctx.QueryParam("end"))
	}

	return s.listWithFilter(ctx, queries.ListOrdersFilter{CreatedFrom: &start, CreatedTo: &end})
}

// ChangeOrderStatus handles PATCH /api/orders/:id/status - transitions an order.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	// The target status comes as a query parameter; a JSON body works too.
	statusName := ctx.QueryParam("status")
	if statusName == "" {
		var req ChangeOrderStatusRequest
		if err = ctx.Bind(&req); err != nil {
			return badRequest(ctx, "Invalid request body")
		}
		statusName = req.Status
	}

	status, err := order.StatusFromString(statusName)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+statusName)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderJSON(updated))
}

// CancelOrder handles DELETE /api/orders/:id - cancels an order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CountOrdersByUser handles GET /api/orders/user/:userId/count.
func (s *Server) CountOrdersByUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+ctx.Param("userId"))
	}

	query, err := queries.NewCountUserOrdersQuery(userID)
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+ctx.Param("userId"))
	}

	count, err := s.countOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CountResponse{Count: count})
}

// CountOrdersByRestaurant handles GET /api/orders/restaurant/:restaurantId/count.
func (s *Server) CountOrdersByRestaurant(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id: "+ctx.Param("restaurantId"))
	}

	query, err := queries.NewCountRestaurantOrdersQuery(restaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id: "+ctx.Param("restaurantId"))
	}

	count, err := s.countOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CountResponse{Count: count})
}

func (s *Server) listWithFilter(ctx echo.Context, filter queries.ListOrdersFilter) error {
	query, err := queries.NewListOrdersQuery(filter)
	if err != nil {
		return badRequest(ctx, "Invalid filter: "+err.Error())
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponseJSON(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError translates application and domain errors to HTTP responses.
// Validation and transition failures are client errors; missing objects map
// to 404; everything else is an internal error with a generic message.
func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrInvalidOrder),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrCannotCancelDelivered),
		errors.Is(err, order.ErrAlreadyCancelled):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func toOrderJSON(aggregate *order.Order) OrderResponse {
	items := aggregate.Items()
	itemResponses := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, OrderItemResponse{
			MenuItemID:          item.MenuItemID().String(),
			Name:                item.Name(),
			Price:               item.Price(),
			Quantity:            item.Quantity(),
			SpecialInstructions: item.SpecialInstructions(),
		})
	}

	return OrderResponse{
		ID:                    aggregate.ID().String(),
		UserID:                aggregate.UserID().String(),
		RestaurantID:          aggregate.RestaurantID().String(),
		Items:                 itemResponses,
		DeliveryAddress:       aggregate.DeliveryAddress(),
		SpecialInstructions:   aggregate.SpecialInstructions(),
		Status:                aggregate.Status().String(),
		TotalAmount:           aggregate.TotalAmount(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
	}
}

func toOrderResponseJSON(resp queries.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, OrderItemResponse{
			MenuItemID:          item.MenuItemID.String(),
			Name:                item.Name,
			Price:               item.Price,
			Quantity:            item.Quantity,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	return OrderResponse{
		ID:                    resp.ID.String(),
		UserID:                resp.UserID.String(),
		RestaurantID:          resp.RestaurantID.String(),
		Items:                 items,
		DeliveryAddress:       resp.DeliveryAddress,
		SpecialInstructions:   resp.SpecialInstructions,
		Status:                resp.Status.String(),
		TotalAmount:           resp.TotalAmount,
		EstimatedDeliveryTime: resp.EstimatedDeliveryTime,
		CreatedAt:             resp.CreatedAt,
		UpdatedAt:             resp.UpdatedAt,
	}
}
