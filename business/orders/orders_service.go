package orders

import (
	"context"
	"errors"
	"fmt"

	"kiranaMarket/business/product"
	"kiranaMarket/domain"
	"kiranaMarket/pkg/logger"
)

type OrdersRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetAllOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID uint) (domain.Order, error)
	GetOrdersByUser(ctx context.Context, userID uint) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint, status string) error
	DeleteOrder(ctx context.Context, orderID uint) error
	IncrementPurchaseCount(ctx context.Context, productID uint64, by int) error
}

type OrdersService struct {
	orderRepo    OrdersRepository
	productsRepo product.ProductRepository
}

func NewOrdersService(orderRepo OrdersRepository, productsRepo product.ProductRepository) *OrdersService {
	return &OrdersService{
		orderRepo:    orderRepo,
		productsRepo: productsRepo,
	}
}

// CreateOrder prices each line from the current catalog sale price,
// totals the order and records it as PENDING. Purchase counters feed
// the popularity signal of the recommendation engine.
func (s *OrdersService) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when creating order")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(order.Items) == 0 {
		logger.Error("Invalid order data: order has no items")
		return nil, errors.New("order must have at least one item")
	}

	var total float64
	for i := range order.Items {
		item := &order.Items[i]

		if item.Quantity <= 0 {
			logger.Error("Invalid order data: quantity must be greater than 0")
			return nil, errors.New("item quantity must be greater than 0")
		}

		p, err := s.productsRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			logger.Error("product not found for order item", err)
			return nil, fmt.Errorf("product %d not found", item.ProductID)
		}

		if !p.IsActive {
			logger.Error("Invalid order data: product is not active")
			return nil, fmt.Errorf("product %d is not available", item.ProductID)
		}

		item.PriceEach = p.SalePrice
		item.Subtotal = p.SalePrice * float64(item.Quantity)
		total += item.Subtotal
	}

	order.Total = total
	order.OrderStatus = "PENDING"

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		logger.Error("failed to create order", err)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for _, item := range order.Items {
		if err := s.orderRepo.IncrementPurchaseCount(ctx, item.ProductID, item.Quantity); err != nil {
			logger.Error("failed to increment purchase count", "product_id", item.ProductID, err)
		}
	}

	logger.Info("order created successfully", "order_id", order.ID, "total", order.Total)

	return order, nil
}

func (s *OrdersService) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all orders")
		return nil, fmt.Errorf("context error: %w", err)
	}
	return s.orderRepo.GetAllOrders(ctx)
}

func (s *OrdersService) GetOrder(ctx context.Context, orderID uint) (domain.Order, error) {
	if orderID == 0 {
		logger.Error("invalid order id")
		return domain.Order{}, errors.New("invalid order id")
	}
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get order")
		return domain.Order{}, fmt.Errorf("context error: %w", err)
	}
	return s.orderRepo.GetOrder(ctx, orderID)
}

func (s *OrdersService) GetOrdersByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get user orders")
		return nil, fmt.Errorf("context error: %w", err)
	}
	return s.orderRepo.GetOrdersByUser(ctx, userID)
}

func (s *OrdersService) UpdateOrderStatus(ctx context.Context, orderID uint, status string) error {
	if orderID == 0 {
		logger.Error("invalid order id when updating status")
		return errors.New("invalid order id")
	}

	switch status {
	case "PENDING", "PAID", "SHIPPED", "DELIVERED", "CANCELLED":
	default:
		logger.Error("invalid order status", "status", status)
		return errors.New("invalid order status")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating order status")
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		logger.Error("failed to update order status", err)
		return fmt.Errorf("failed to update order status: %w", err)
	}

	logger.Info("order status updated", "order_id", orderID, "status", status)
	return nil
}

func (s *OrdersService) DeleteOrder(ctx context.Context, orderID uint) error {
	if orderID == 0 {
		logger.Error("invalid order id when deleting order")
		return errors.New("invalid order id")
	}
	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting order")
		return fmt.Errorf("context error: %w", err)
	}
	return s.orderRepo.DeleteOrder(ctx, orderID)
}
