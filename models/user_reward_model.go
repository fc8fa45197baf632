package models

import (
	"time"

	"github.com/google/uuid"
)

type UserReward struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	RewardID   uuid.UUID  `gorm:"type:uuid;not null" json:"reward_id"`
	CouponCode *string    `gorm:"size:30" json:"coupon_code"`
	UsedAt     *time.Time `json:"used_at"`
	RedeemedAt time.Time  `gorm:"not null" json:"redeemed_at"`

	User   User   `gorm:"foreignkey:UserID" json:"-"`
	Reward Reward `gorm:"foreignkey:RewardID" json:"reward"`

	CreatedAt time.Time `json:"created_at"`
}
