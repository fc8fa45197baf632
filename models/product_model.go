package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Price        float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	ImageURL     *string   `gorm:"size:500" json:"image_url"`
	Category     string    `gorm:"size:50" json:"category"`
	IsAvailable  bool      `gorm:"default:true" json:"is_available"`

	Restaurant Restaurant `gorm:"foreignkey:RestaurantID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
