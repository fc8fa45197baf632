package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PromotionCategoryRestaurant = "restaurant"
	PromotionCategoryMarket     = "market"
	PromotionCategoryAll        = "all"
)

// Promotion is admin-created catalog data. Whether it is "active" is a
// computed view (see services.PromotionActiveAt); no row is mutated to
// rotate promotions in and out of the storefront.
type Promotion struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`

	// Exactly one discount shape is populated: a percentage, a fixed
	// amount, or free delivery.
	DiscountPercent *int     `json:"discount_percent,omitempty"`
	DiscountAmount  *float64 `gorm:"type:numeric(10,2)" json:"discount_amount,omitempty"`
	FreeDelivery    bool     `gorm:"default:false" json:"free_delivery"`

	MinOrder float64 `gorm:"type:numeric(10,2);default:0" json:"min_order"`
	Code     *string `gorm:"size:30;unique" json:"code,omitempty"`
	Category string  `gorm:"size:20;not null;default:'all'" json:"category"`

	// DayOfWeek is 0 (Sunday) through 6; nil means every day.
	DayOfWeek *int       `json:"day_of_week,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	IsActive  bool       `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
