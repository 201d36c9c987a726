package domain

import "time"

type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	UserID        uint        `gorm:"column:user_id;not null" json:"user_id"`
	OrderStatus   string      `gorm:"column:order_status" json:"order_status"`
	PaymentMethod string      `gorm:"column:payment_method" json:"payment_method"`
	Total         float64     `gorm:"column:total;type:numeric" json:"total"`
	Items         []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"column:order_id;not null;index" json:"order_id"`
	ProductID uint64  `gorm:"column:product_id;not null" json:"product_id"`
	Quantity  int     `gorm:"column:quantity;not null" json:"quantity"`
	PriceEach float64 `gorm:"column:price_each;type:numeric" json:"price_each"`
	Subtotal  float64 `gorm:"column:subtotal;type:numeric" json:"subtotal"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
