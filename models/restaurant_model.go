package models

import (
	"time"

	"github.com/google/uuid"
)

type Restaurant struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:20;not null;default:'restaurant'" json:"category"`
	ImageURL    *string   `gorm:"size:500" json:"image_url"`
	Rating      float64   `gorm:"type:numeric(3,2);default:0" json:"rating"`
	DeliveryFee float64   `gorm:"type:numeric(10,2);default:0" json:"delivery_fee"`
	MinOrder    float64   `gorm:"type:numeric(10,2);default:0" json:"min_order"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	Products []Product `json:"products,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
