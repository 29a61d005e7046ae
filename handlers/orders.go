package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Madhav-Gupta-28/bazar-backend-go/database"
	"github.com/Madhav-Gupta-28/bazar-backend-go/middleware"
	"github.com/Madhav-Gupta-28/bazar-backend-go/models"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error)
}

type OrderHandler struct {
	Orders OrderStore
}

func currentUserID(c echo.Context) (primitive.ObjectID, bool) {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "User not authenticated"})
	}

	var order models.Order
	if err := c.Bind(&order); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request format"})
	}

	// Server-owned fields.
	order.ID = primitive.NilObjectID
	order.Invoice = 0
	order.User = &userID

	if order.Total == 0 {
		order.Total = order.ComputeTotal()
	} else if !order.TotalMatches() {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Order total does not match subTotal, shippingCost and discount"})
	}
	if err := order.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.Orders.Create(ctx, &order); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("user_id", userID.Hex()).Msg("failed to create order")
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to create order"})
	}

	return c.JSON(http.StatusCreated, order)
}

// GetOrder returns one of the caller's own orders.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "User not authenticated"})
	}

	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid order ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	order, err := h.Orders.FindByID(ctx, orderID)
	if errors.Is(err, database.ErrNotFound) || (err == nil && (order.User == nil || *order.User != userID)) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Order not found"})
	}
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to fetch order")
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch order"})
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "User not authenticated"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	orders, err := h.Orders.ListByUser(ctx, userID)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to list orders")
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch orders"})
	}
	return c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus is admin-only.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid order ID format"})
	}

	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request format"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	order, err := h.Orders.UpdateStatus(ctx, orderID, req.Status)
	switch {
	case errors.Is(err, models.ErrInvalidStatus):
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	case errors.Is(err, database.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Order not found"})
	case err != nil:
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to update order status")
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update order"})
	}

	return c.JSON(http.StatusOK, order)
}
