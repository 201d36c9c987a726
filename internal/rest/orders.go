package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"kiranaMarket/domain"
	"kiranaMarket/pkg/logger"
)

type OrdersService interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetAllOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID uint) (domain.Order, error)
	GetOrdersByUser(ctx context.Context, userID uint) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint, status string) error
	DeleteOrder(ctx context.Context, orderID uint) error
}

type OrdersHandler struct {
	ordersService OrdersService
	validator     *validator.Validate
	timeout       time.Duration
}

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		ordersService: ordersService,
		validator:     validator.New(),
		timeout:       10 * time.Second,
	}
}

type OrderItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type CreateOrderRequest struct {
	PaymentMethod string             `json:"payment_method" validate:"required"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	OrderStatus string `json:"order_status" validate:"required,oneof=PENDING PAID SHIPPED DELIVERED CANCELLED"`
}

func (h *OrdersHandler) CreateOrder(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate order request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order := &domain.Order{
		UserID:        userID,
		PaymentMethod: req.PaymentMethod,
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	newOrder, err := h.ordersService.CreateOrder(ctx, order)
	if err != nil {
		logger.Error("Failed to create order", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Order successfully created",
		"order":   newOrder,
	})
}

func (h *OrdersHandler) GetAllOrders(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orders, err := h.ordersService.GetAllOrders(ctx)
	if err != nil {
		logger.Error("Failed to find all orders", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get all orders",
		"orders":  orders,
	})
}

func (h *OrdersHandler) GetOrderByID(c echo.Context) error {
	orderIdStr := c.Param("id")

	orderId, err := strconv.ParseUint(orderIdStr, 10, 32)
	if err != nil {
		logger.Error("Invalid order id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.GetOrder(ctx, uint(orderId))
	if err != nil {
		if err.Error() == "order not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find order by id",
		"order":   order,
	})
}

func (h *OrdersHandler) GetMyOrders(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orders, err := h.ordersService.GetOrdersByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to find user orders", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get user orders",
		"orders":  orders,
	})
}

func (h *OrdersHandler) UpdateOrderStatus(c echo.Context) error {
	orderIdStr := c.Param("id")

	orderId, err := strconv.ParseUint(orderIdStr, 10, 32)
	if err != nil {
		logger.Error("Invalid order id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate order status request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.ordersService.UpdateOrderStatus(ctx, uint(orderId), req.OrderStatus); err != nil {
		logger.Error("Failed to update order status", err)
		if err.Error() == "order not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully update order status",
		"order_id": orderId,
		"status":   req.OrderStatus,
	})
}

func (h *OrdersHandler) DeleteOrder(c echo.Context) error {
	orderIdStr := c.Param("id")

	orderId, err := strconv.ParseUint(orderIdStr, 10, 32)
	if err != nil {
		logger.Error("Invalid order id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.ordersService.DeleteOrder(ctx, uint(orderId)); err != nil {
		logger.Error("Failed to delete order", err)
		if err.Error() == "order not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "order successfully deleted",
		"order_id": orderId,
	})
}
