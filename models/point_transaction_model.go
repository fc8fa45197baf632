package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PointTypeEarn          = "earn"
	PointTypeRedeem        = "redeem"
	PointTypeReferralBonus = "referral_bonus"
	PointTypePenalty       = "penalty"
	PointTypeAdjustment    = "adjustment"
)

// PointTransaction is an append-only ledger entry. Rows are never updated
// or deleted; a user's balance is the sum of their entries.
type PointTransaction struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Points      int        `gorm:"not null" json:"points"`
	Type        string     `gorm:"size:30;not null" json:"type"`
	Description string     `gorm:"type:text" json:"description"`
	OrderID     *uuid.UUID `gorm:"type:uuid" json:"order_id,omitempty"`
	RewardID    *uuid.UUID `gorm:"type:uuid" json:"reward_id,omitempty"`

	User User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
