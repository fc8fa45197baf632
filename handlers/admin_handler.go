package handlers

import (
	"errors"
	"time"

	"github.com/MateoDumas/ProntoClick-sub002/database"
	"github.com/MateoDumas/ProntoClick-sub002/models"
	"github.com/MateoDumas/ProntoClick-sub002/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RewardRequest struct {
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description"`
	PointsCost     int      `json:"points_cost" validate:"required,gt=0"`
	Type           string   `json:"type" validate:"required,oneof=coupon discount free_item free_delivery"`
	Discount       *int     `json:"discount,omitempty" validate:"omitempty,min=1,max=100"`
	DiscountAmount *float64 `json:"discount_amount,omitempty" validate:"omitempty,gt=0"`
	CouponCode     *string  `json:"coupon_code,omitempty"`
	IsActive       *bool    `json:"is_active,omitempty"`
	Stock          *int     `json:"stock,omitempty" validate:"omitempty,min=0"`
}

func CreateReward(c *fiber.Ctx) error {
	var req RewardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	reward := models.Reward{
		Title:          req.Title,
		Description:    req.Description,
		PointsCost:     req.PointsCost,
		Type:           req.Type,
		Discount:       req.Discount,
		DiscountAmount: req.DiscountAmount,
		CouponCode:     req.CouponCode,
		IsActive:       true,
		Stock:          req.Stock,
	}
	if req.IsActive != nil {
		reward.IsActive = *req.IsActive
	}

	if err := database.DB.Create(&reward).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create reward"})
	}

	return c.Status(fiber.StatusCreated).JSON(reward)
}

func ListAllRewards(c *fiber.Ctx) error {
	var rewards []models.Reward
	database.DB.Order("created_at asc").Find(&rewards)
	return c.JSON(rewards)
}

func UpdateReward(c *fiber.Ctx) error {
	rewardID := c.Params("rewardId")

	var reward models.Reward
	if err := database.DB.First(&reward, "id = ?", rewardID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Reward not found"})
	}

	var req RewardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	reward.Title = req.Title
	reward.Description = req.Description
	reward.PointsCost = req.PointsCost
	reward.Type = req.Type
	reward.Discount = req.Discount
	reward.DiscountAmount = req.DiscountAmount
	reward.CouponCode = req.CouponCode
	reward.Stock = req.Stock
	if req.IsActive != nil {
		reward.IsActive = *req.IsActive
	}
	database.DB.Save(&reward)

	return c.JSON(reward)
}

// DeactivateReward retires a catalog entry. Rewards are never hard-deleted
// because redeemed UserReward rows keep pointing at them.
func DeactivateReward(c *fiber.Ctx) error {
	rewardID := c.Params("rewardId")

	result := database.DB.Model(&models.Reward{}).Where("id = ?", rewardID).Update("is_active", false)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deactivate reward"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Reward not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

type PromotionRequest struct {
	Title           string     `json:"title" validate:"required"`
	Description     string     `json:"description"`
	DiscountPercent *int       `json:"discount_percent,omitempty" validate:"omitempty,min=1,max=100"`
	DiscountAmount  *float64   `json:"discount_amount,omitempty" validate:"omitempty,gt=0"`
	FreeDelivery    bool       `json:"free_delivery"`
	MinOrder        float64    `json:"min_order" validate:"gte=0"`
	Code            *string    `json:"code,omitempty"`
	Category        string     `json:"category" validate:"required,oneof=restaurant market all"`
	DayOfWeek       *int       `json:"day_of_week,omitempty" validate:"omitempty,min=0,max=6"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	IsActive        *bool      `json:"is_active,omitempty"`
}

// A promotion carries exactly one discount shape: percentage, fixed
// amount, or free delivery.
func (req PromotionRequest) discountShapeValid() bool {
	shapes := 0
	if req.DiscountPercent != nil {
		shapes++
	}
	if req.DiscountAmount != nil {
		shapes++
	}
	if req.FreeDelivery {
		shapes++
	}
	return shapes == 1
}

func CreatePromotion(c *fiber.Ctx) error {
	var req PromotionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !req.discountShapeValid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Exactly one of discount_percent, discount_amount or free_delivery must be set"})
	}

	promotion := models.Promotion{
		Title:           req.Title,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		DiscountAmount:  req.DiscountAmount,
		FreeDelivery:    req.FreeDelivery,
		MinOrder:        req.MinOrder,
		Code:            req.Code,
		Category:        req.Category,
		DayOfWeek:       req.DayOfWeek,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		IsActive:        true,
	}
	if req.IsActive != nil {
		promotion.IsActive = *req.IsActive
	}

	if err := database.DB.Create(&promotion).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A promotion with that code already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create promotion"})
	}

	return c.Status(fiber.StatusCreated).JSON(promotion)
}

func ListAllPromotions(c *fiber.Ctx) error {
	var promotions []models.Promotion
	database.DB.Order("created_at asc").Find(&promotions)
	return c.JSON(promotions)
}

func UpdatePromotion(c *fiber.Ctx) error {
	promotionID := c.Params("promotionId")

	var promotion models.Promotion
	if err := database.DB.First(&promotion, "id = ?", promotionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Promotion not found"})
	}

	var req PromotionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !req.discountShapeValid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Exactly one of discount_percent, discount_amount or free_delivery must be set"})
	}

	promotion.Title = req.Title
	promotion.Description = req.Description
	promotion.DiscountPercent = req.DiscountPercent
	promotion.DiscountAmount = req.DiscountAmount
	promotion.FreeDelivery = req.FreeDelivery
	promotion.MinOrder = req.MinOrder
	promotion.Code = req.Code
	promotion.Category = req.Category
	promotion.DayOfWeek = req.DayOfWeek
	promotion.StartDate = req.StartDate
	promotion.EndDate = req.EndDate
	if req.IsActive != nil {
		promotion.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&promotion).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A promotion with that code already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update promotion"})
	}

	return c.JSON(promotion)
}

func DeletePromotion(c *fiber.Ctx) error {
	promotionID := c.Params("promotionId")

	result := database.DB.Delete(&models.Promotion{}, "id = ?", promotionID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete promotion"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Promotion not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

type AdjustPointsRequest struct {
	Amount      int    `json:"amount" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// AdjustUserPoints lets support staff correct a balance. The adjustment
// goes through the ledger like every other mutation, so the audit trail
// stays complete.
func AdjustUserPoints(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var req AdjustPointsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	err = database.WithRetry(func() error {
		return database.DB.Transaction(func(tx *gorm.DB) error {
			if req.Amount > 0 {
				return services.CreditPoints(tx, userID, req.Amount, models.PointTypeAdjustment, req.Description, nil, nil)
			}
			return services.DebitPoints(tx, userID, -req.Amount, models.PointTypeAdjustment, req.Description, nil, nil)
		})
	})

	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		case errors.Is(err, services.ErrInsufficientBalance):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Adjustment would make the balance negative"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to adjust points"})
		}
	}

	return c.JSON(fiber.Map{"message": "Points adjusted successfully"})
}

func GetDashboardStats(c *fiber.Ctx) error {
	var userCount, orderCount, redemptionCount, pendingReferrals int64
	database.DB.Model(&models.User{}).Count(&userCount)
	database.DB.Model(&models.Order{}).Count(&orderCount)
	database.DB.Model(&models.UserReward{}).Count(&redemptionCount)
	database.DB.Model(&models.Referral{}).Where("status = ?", "pending").Count(&pendingReferrals)

	var pointsIssued, pointsRedeemed int64
	database.DB.Model(&models.PointTransaction{}).
		Where("points > 0").
		Select("COALESCE(SUM(points), 0)").
		Row().Scan(&pointsIssued)
	database.DB.Model(&models.PointTransaction{}).
		Where("points < 0").
		Select("COALESCE(-SUM(points), 0)").
		Row().Scan(&pointsRedeemed)

	return c.JSON(fiber.Map{
		"total_users":       userCount,
		"total_orders":      orderCount,
		"total_redemptions": redemptionCount,
		"pending_referrals": pendingReferrals,
		"points_issued":     pointsIssued,
		"points_redeemed":   pointsRedeemed,
	})
}
