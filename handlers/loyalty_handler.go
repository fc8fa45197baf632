package handlers

import (
	"errors"

	"github.com/MateoDumas/ProntoClick-sub002/database"
	"github.com/MateoDumas/ProntoClick-sub002/models"
	"github.com/MateoDumas/ProntoClick-sub002/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func GetMyPoints(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{"points": user.Points})
}

func ListMyPointTransactions(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var transactions []models.PointTransaction
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&transactions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch point history"})
	}

	return c.JSON(transactions)
}

func ListRewards(c *fiber.Ctx) error {
	var rewards []models.Reward
	if err := database.DB.Where("is_active = ?", true).Order("points_cost asc").Find(&rewards).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch rewards"})
	}

	return c.JSON(rewards)
}

func RedeemReward(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	rewardID, err := uuid.Parse(c.Params("rewardId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid reward id"})
	}

	result, err := services.RedeemReward(userID, rewardID)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Reward not found"})
		case errors.Is(err, services.ErrRewardInactive):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "This reward is no longer available"})
		case errors.Is(err, services.ErrOutOfStock):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "This reward is out of stock"})
		case errors.Is(err, services.ErrInsufficientBalance):
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{"error": "You do not have enough points for this reward"})
		default:
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Could not process redemption, please try again"})
		}
	}

	reward := result.UserReward.Reward
	return c.JSON(fiber.Map{
		"success": true,
		"reward": fiber.Map{
			"id":          reward.ID,
			"title":       reward.Title,
			"description": reward.Description,
			"coupon_code": result.UserReward.CouponCode,
		},
		"remaining_points": result.RemainingPoints,
	})
}

func ListMyRewards(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var userRewards []models.UserReward
	if err := database.DB.
		Preload("Reward").
		Where("user_id = ?", userID).
		Order("redeemed_at desc").
		Find(&userRewards).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch redeemed rewards"})
	}

	return c.JSON(userRewards)
}
