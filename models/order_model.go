package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusCreated   = "created"
	OrderStatusPreparing = "preparing"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null" json:"restaurant_id"`
	Status       string    `gorm:"size:20;not null;default:'created'" json:"status"`

	Subtotal    float64 `gorm:"type:numeric(10,2);not null" json:"subtotal"`
	DeliveryFee float64 `gorm:"type:numeric(10,2);not null" json:"delivery_fee"`
	Discount    float64 `gorm:"type:numeric(10,2);default:0" json:"discount"`
	Total       float64 `gorm:"type:numeric(10,2);not null" json:"total"`

	CouponCode      *string `gorm:"size:30" json:"coupon_code,omitempty"`
	DeliveryAddress string  `gorm:"type:text" json:"delivery_address"`

	DeliveredAt *time.Time `json:"delivered_at"`

	Items      []OrderItem `json:"items,omitempty"`
	User       User        `gorm:"foreignkey:UserID" json:"-"`
	Restaurant Restaurant  `gorm:"foreignkey:RestaurantID" json:"restaurant,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
