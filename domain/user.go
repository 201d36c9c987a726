package domain

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	FullName   string  `gorm:"column:full_name;not null" json:"full_name"`
	StoreName  string  `gorm:"column:store_name" json:"store_name"`
	StoreType  string  `gorm:"column:store_type" json:"store_type"` // Supermarket / Convenience / Kiosk
	Email      string  `gorm:"column:email;unique;not null" json:"email"`
	IsVerified bool    `gorm:"column:is_verified;default:false" json:"is_verified"`
	Password   string  `gorm:"column:password;not null" json:"-"`
	Role       string  `gorm:"column:role;default:retailer" json:"role"`
	Wallet     float64 `gorm:"column:wallet;default:0" json:"wallet"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
