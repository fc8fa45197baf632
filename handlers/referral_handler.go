package handlers

import (
	"github.com/MateoDumas/ProntoClick-sub002/database"
	"github.com/MateoDumas/ProntoClick-sub002/models"
	"github.com/MateoDumas/ProntoClick-sub002/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GetMyReferralInfo(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var completed int64
	database.DB.Model(&models.Referral{}).
		Where("referrer_id = ? AND status = ?", userID, "completed").
		Count(&completed)

	return c.JSON(fiber.Map{
		"referral_code":       user.ReferralCode,
		"referrals_count":     user.ReferralsCount,
		"completed_referrals": completed,
		"reward_points":       services.ReferralRewardPoints,
	})
}

// ValidateReferralCode lets the signup form check a code before the user
// submits registration.
func ValidateReferralCode(c *fiber.Ctx) error {
	code := c.Params("code")

	var referrer models.User
	if err := database.DB.Where("referral_code = ? AND is_active = ?", code, true).First(&referrer).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invalid referral code"})
	}

	return c.JSON(fiber.Map{
		"valid":         true,
		"referrer_name": referrer.FullName,
	})
}
