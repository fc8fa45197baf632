package handlers

import (
	"errors"
	"time"

	"github.com/MateoDumas/ProntoClick-sub002/services"
	"github.com/gofiber/fiber/v2"
)

func ListActivePromotions(c *fiber.Ctx) error {
	promotions, err := services.ActivePromotions(time.Now(), c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch promotions"})
	}

	return c.JSON(promotions)
}

func ListFeaturedPromotions(c *fiber.Ctx) error {
	promotions, err := services.FeaturedPromotions(time.Now(), c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch promotions"})
	}

	return c.JSON(promotions)
}

type ValidatePromoRequest struct {
	Code     string  `json:"code" validate:"required"`
	Category string  `json:"category" validate:"omitempty,oneof=restaurant market all"`
	Subtotal float64 `json:"subtotal" validate:"gte=0"`
}

func ValidatePromoCode(c *fiber.Ctx) error {
	var req ValidatePromoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	promo, err := services.ValidatePromoCode(req.Code, req.Category, req.Subtotal, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrInvalidPromoCode) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invalid promotion code"})
		}
		if errors.Is(err, services.ErrPromoBelowMinOrder) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Order subtotal is below the promotion minimum"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to validate promotion code"})
	}

	return c.JSON(fiber.Map{
		"valid":     true,
		"promotion": promo,
		"discount":  services.PromotionDiscount(*promo, req.Subtotal),
	})
}
