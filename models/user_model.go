package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Phone    *string   `gorm:"size:30" json:"phone"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'customer'" json:"role"`

	// Points is the cached balance; every change to it is written in the
	// same transaction as a PointTransaction row, so Points always equals
	// the sum of this user's ledger entries.
	Points         int `gorm:"not null;default:0" json:"points"`
	PendingPenalty int `gorm:"not null;default:0" json:"pending_penalty"`

	ReferralCode   *string    `gorm:"size:10;unique" json:"referral_code"`
	ReferredBy     *uuid.UUID `gorm:"type:uuid" json:"referred_by"`
	ReferralsCount int        `gorm:"not null;default:0" json:"referrals_count"`

	ProfilePictureURL *string `gorm:"size:255" json:"profile_picture_url"`
	DeliveryAddress   *string `gorm:"type:text" json:"delivery_address"`

	ResetPasswordToken          *string    `gorm:"size:255;unique" json:"-"`
	ResetPasswordTokenExpiresAt *time.Time `json:"-"`
	IsActive                    bool       `gorm:"default:true" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
