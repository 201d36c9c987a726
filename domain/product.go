package domain

import (
	"time"
)

// CREATE TABLE public.products (
//     id               BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_skuid    BIGINT,
//     product_name     TEXT,
//     product_category TEXT,
//     brand            TEXT,
//     store_type       TEXT,
//     unit             TEXT,
//     normal_price     NUMERIC,
//     sale_price       NUMERIC,
//     discount         NUMERIC,
//     profit_margin    NUMERIC,
//     stock            NUMERIC,
//     view_count       BIGINT,
//     purchase_count   BIGINT,
//     rating_average   NUMERIC,
//     rating_count     BIGINT,
//     is_active        BOOLEAN,
//     created_at       TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductSKUID    uint64    `gorm:"column:product_skuid" json:"product_skuid"`
	ProductName     string    `gorm:"column:product_name;type:text" json:"product_name"`
	ProductCategory string    `gorm:"column:product_category;type:text" json:"product_category"`
	Brand           string    `gorm:"column:brand;type:text" json:"brand"`
	StoreType       string    `gorm:"column:store_type;type:text" json:"store_type"` // Supermarket / Convenience / Kiosk
	Unit            string    `gorm:"column:unit;type:text" json:"unit"`
	NormalPrice     float64   `gorm:"column:normal_price;type:numeric" json:"normal_price"`
	SalePrice       float64   `gorm:"column:sale_price;type:numeric" json:"sale_price"`
	Discount        float64   `gorm:"column:discount;type:numeric" json:"discount"`
	ProfitMargin    float64   `gorm:"column:profit_margin;type:numeric" json:"profit_margin"`
	Stock           float64   `gorm:"column:stock;type:numeric" json:"stock"`
	ViewCount       int64     `gorm:"column:view_count;default:0" json:"view_count"`
	PurchaseCount   int64     `gorm:"column:purchase_count;default:0" json:"purchase_count"`
	RatingAverage   float64   `gorm:"column:rating_average;type:numeric;default:0" json:"rating_average"`
	RatingCount     int64     `gorm:"column:rating_count;default:0" json:"rating_count"`
	IsActive        bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}
