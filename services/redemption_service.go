package services

import (
	"errors"
	"fmt"

	"github.com/MateoDumas/ProntoClick-sub002/database"
	"github.com/MateoDumas/ProntoClick-sub002/models"
	"github.com/MateoDumas/ProntoClick-sub002/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRewardInactive = errors.New("reward is not active")
	ErrOutOfStock     = errors.New("reward is out of stock")
)

type RedemptionResult struct {
	UserReward      models.UserReward
	RemainingPoints int
}

// RedeemReward exchanges points for a reward. Everything happens inside one
// transaction under row locks: the stock check and counter increment on the
// reward, and the balance check and debit on the user. If any step fails
// nothing persists.
func RedeemReward(userID, rewardID uuid.UUID) (*RedemptionResult, error) {
	var result RedemptionResult

	err := database.WithRetry(func() error {
		return database.DB.Transaction(func(tx *gorm.DB) error {
			var reward models.Reward
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&reward, "id = ?", rewardID).Error; err != nil {
				return err
			}

			if !reward.IsActive {
				return ErrRewardInactive
			}
			if reward.Stock != nil && reward.RedeemedCount >= *reward.Stock {
				return ErrOutOfStock
			}

			description := fmt.Sprintf("Redeemed reward: %s", reward.Title)
			if err := DebitPoints(tx, userID, reward.PointsCost, models.PointTypeRedeem, description, nil, &reward.ID); err != nil {
				return err
			}

			reward.RedeemedCount++
			if err := tx.Save(&reward).Error; err != nil {
				return err
			}

			userReward := models.UserReward{
				UserID:     userID,
				RewardID:   reward.ID,
				CouponCode: couponCodeFor(reward),
				RedeemedAt: tx.NowFunc(),
			}
			if err := tx.Create(&userReward).Error; err != nil {
				return err
			}

			var user models.User
			if err := tx.First(&user, "id = ?", userID).Error; err != nil {
				return err
			}

			userReward.Reward = reward
			result = RedemptionResult{UserReward: userReward, RemainingPoints: user.Points}
			return nil
		})
	})

	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Discount-style rewards mint a fresh code per redemption; free item and
// free delivery rewards reuse the static code on the catalog entry when
// one is configured.
func couponCodeFor(reward models.Reward) *string {
	switch reward.Type {
	case models.RewardTypeFreeItem, models.RewardTypeFreeDelivery:
		if reward.CouponCode != nil {
			return reward.CouponCode
		}
	}
	code := utils.GenerateCouponCode()
	return &code
}
