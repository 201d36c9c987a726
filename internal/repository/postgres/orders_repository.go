package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"kiranaMarket/business/recommend"
	"kiranaMarket/domain"
)

type OrdersRepository struct {
	DB *gorm.DB
}

var _ recommend.OrdersRepository = (*OrdersRepository)(nil)

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

func (r *OrdersRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func (r *OrdersRepository) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var orders []domain.Order
	err := r.DB.WithContext(ctx).Preload("Items").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, nil
}

func (r *OrdersRepository) GetOrder(ctx context.Context, orderID uint) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("context error: %w", err)
	}

	var order domain.Order
	err := r.DB.WithContext(ctx).Preload("Items").First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, errors.New("order not found")
		}
		return domain.Order{}, fmt.Errorf("failed to find order: %w", err)
	}

	return order, nil
}

func (r *OrdersRepository) GetOrdersByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var orders []domain.Order
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find user orders: %w", err)
	}

	return orders, nil
}

// FindOrdersForUser feeds the recommendation profile aggregator.
func (r *OrdersRepository) FindOrdersForUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	return r.GetOrdersByUser(ctx, userID)
}

func (r *OrdersRepository) UpdateOrderStatus(ctx context.Context, orderID uint, status string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", orderID).
		Update("order_status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("order not found")
	}

	return nil
}

func (r *OrdersRepository) DeleteOrder(ctx context.Context, orderID uint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Where("id = ?", orderID).Delete(&domain.Order{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("order not found")
	}

	return nil
}

// IncrementPurchaseCount bumps the product popularity counter used by
// the recommendation engine's popularity signal.
func (r *OrdersRepository) IncrementPurchaseCount(ctx context.Context, productID uint64, by int) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.DB.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", productID).
		Update("purchase_count", gorm.Expr("purchase_count + ?", by)).Error
}
