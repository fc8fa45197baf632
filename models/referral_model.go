package models

import (
	"time"

	"github.com/google/uuid"
)

type Referral struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ReferrerID     uuid.UUID `gorm:"type:uuid;not null" json:"referrer_id"`
	ReferredUserID uuid.UUID `gorm:"type:uuid;not null;unique" json:"referred_user_id"`
	Status         string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	RewardPoints   int       `gorm:"not null;default:0" json:"reward_points"`

	// RewardedAt is the idempotency guard: the referrer is credited only
	// while it is still null, so a retried completion cannot pay twice.
	CompletedAt *time.Time `json:"completed_at"`
	RewardedAt  *time.Time `json:"rewarded_at"`

	Referrer     User `gorm:"foreignkey:ReferrerID" json:"-"`
	ReferredUser User `gorm:"foreignkey:ReferredUserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
