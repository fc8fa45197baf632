package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RewardTypeCoupon       = "coupon"
	RewardTypeDiscount     = "discount"
	RewardTypeFreeItem     = "free_item"
	RewardTypeFreeDelivery = "free_delivery"
)

type Reward struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	PointsCost  int       `gorm:"not null" json:"points_cost"`
	Type        string    `gorm:"size:20;not null" json:"type"`

	// Discount is a percentage, DiscountAmount a fixed sum; which one is
	// meaningful depends on Type. CouponCode is a static template reused
	// by free_item/free_delivery rewards; coupon/discount rewards get a
	// freshly minted code per redemption.
	Discount       *int     `json:"discount,omitempty"`
	DiscountAmount *float64 `gorm:"type:numeric(10,2)" json:"discount_amount,omitempty"`
	CouponCode     *string  `gorm:"size:30" json:"coupon_code,omitempty"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	// Stock is nil for unlimited rewards. RedeemedCount only grows and,
	// when Stock is set, never exceeds it.
	Stock         *int `json:"stock,omitempty"`
	RedeemedCount int  `gorm:"not null;default:0" json:"redeemed_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
