package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/MateoDumas/ProntoClick-sub002/database"
	"github.com/MateoDumas/ProntoClick-sub002/models"
	"github.com/MateoDumas/ProntoClick-sub002/notifications"
)

// RemindUnusedCoupons mails users who redeemed a reward over a week ago but
// never spent the coupon on an order.
func RemindUnusedCoupons() {
	log.Println("Running job: RemindUnusedCoupons...")

	// Run daily; the one-day window means each coupon is reminded once.
	upperBound := time.Now().AddDate(0, 0, -7)
	lowerBound := upperBound.AddDate(0, 0, -1)

	var unused []models.UserReward
	err := database.DB.
		Preload("User").
		Preload("Reward").
		Where("used_at IS NULL AND redeemed_at BETWEEN ? AND ?", lowerBound, upperBound).
		Find(&unused).Error
	if err != nil {
		log.Printf("Error checking for unused coupons: %v", err)
		return
	}

	for _, userReward := range unused {
		if userReward.CouponCode == nil {
			continue
		}

		emailSubject := "Your ProntoClick Coupon Is Waiting!"
		emailBody := fmt.Sprintf(
			"<h1>Don't Forget Your Reward</h1><p>You redeemed <b>%s</b> but haven't used your coupon <b>%s</b> yet. Apply it at checkout on your next order!</p>",
			userReward.Reward.Title,
			*userReward.CouponCode,
		)

		go notifications.SendEmail(userReward.User.FullName, userReward.User.Email, emailSubject, emailBody)
	}
}
