package services

import (
	"errors"
	"fmt"
	"log"

	config "github.com/MateoDumas/ProntoClick-sub002/configs"
	"github.com/MateoDumas/ProntoClick-sub002/database"
	"github.com/MateoDumas/ProntoClick-sub002/models"
	"github.com/MateoDumas/ProntoClick-sub002/notifications"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrInvalidReferralCode = errors.New("invalid referral code")

const ReferralRewardPoints = 100

// ApplyReferralCode links a freshly registered user to the referrer owning
// the given code. Must run inside the registration transaction so a failed
// signup leaves no Referral row behind.
func ApplyReferralCode(tx *gorm.DB, newUser *models.User, code string) error {
	var referrer models.User
	if err := tx.Where("referral_code = ? AND is_active = ?", code, true).First(&referrer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidReferralCode
		}
		return err
	}

	if referrer.ID == newUser.ID {
		return ErrInvalidReferralCode
	}

	referral := models.Referral{
		ReferrerID:     referrer.ID,
		ReferredUserID: newUser.ID,
		Status:         "pending",
		RewardPoints:   ReferralRewardPoints,
	}
	if err := tx.Create(&referral).Error; err != nil {
		return err
	}

	newUser.ReferredBy = &referrer.ID
	if err := tx.Model(&models.User{}).Where("id = ?", newUser.ID).
		Update("referred_by", referrer.ID).Error; err != nil {
		return err
	}

	return tx.Model(&models.User{}).Where("id = ?", referrer.ID).
		Update("referrals_count", gorm.Expr("referrals_count + 1")).Error
}

// CompleteReferralIfApplicable is invoked when an order for the given user
// is delivered. When the completion policy is first_order it requires at
// least one delivered order on record; under any_order every delivery may
// complete a still-pending referral. Either way the referrer is credited at
// most once: the credit only happens while rewarded_at is still null, and
// the check and the write share one transaction.
func CompleteReferralIfApplicable(userID uuid.UUID) {
	err := database.WithRetry(func() error {
		return database.DB.Transaction(func(tx *gorm.DB) error {
			var referral models.Referral
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Preload("Referrer").
				Where("referred_user_id = ? AND status = ? AND rewarded_at IS NULL", userID, "pending").
				First(&referral).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil
				}
				return err
			}

			if completionPolicy() == "first_order" {
				var delivered int64
				if err := tx.Model(&models.Order{}).
					Where("user_id = ? AND status = ?", userID, models.OrderStatusDelivered).
					Count(&delivered).Error; err != nil {
					return err
				}
				// At least one, not exactly one: a completion that failed on
				// the first delivery can still happen on a later one.
				if delivered == 0 {
					return nil
				}
			}

			description := "Referral bonus: a user you invited completed their order"
			if err := CreditPoints(tx, referral.ReferrerID, referral.RewardPoints, models.PointTypeReferralBonus, description, nil, nil); err != nil {
				return err
			}

			now := tx.NowFunc()
			referral.Status = "completed"
			referral.CompletedAt = &now
			referral.RewardedAt = &now
			// Omit the preloaded Referrer so the save touches only referrals.
			if err := tx.Omit(clause.Associations).Save(&referral).Error; err != nil {
				return err
			}

			go notifications.SendEmail(
				referral.Referrer.FullName,
				referral.Referrer.Email,
				"You've Earned Referral Points!",
				fmt.Sprintf("<h1>Congratulations!</h1><p>Someone you referred has completed their order. %d points have been added to your account.</p>", referral.RewardPoints),
			)

			return nil
		})
	})

	if err != nil {
		log.Printf("🔥 Error processing referral for user %s: %v", userID, err)
	}
}

// first_order unless overridden; which order completes a referral is a
// deployment policy, not a fixed rule.
func completionPolicy() string {
	policy := config.Config("REFERRAL_COMPLETION_POLICY")
	if policy == "" {
		return "first_order"
	}
	return policy
}
