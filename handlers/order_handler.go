package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/MateoDumas/ProntoClick-sub002/database"
	"github.com/MateoDumas/ProntoClick-sub002/models"
	"github.com/MateoDumas/ProntoClick-sub002/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	RestaurantID    string             `json:"restaurant_id" validate:"required,uuid"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	CouponCode      *string            `json:"coupon_code,omitempty"`
	DeliveryAddress string             `json:"delivery_address" validate:"required"`
}

func CreateOrder(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	restaurantID, _ := uuid.Parse(req.RestaurantID)

	var restaurant models.Restaurant
	if err := database.DB.First(&restaurant, "id = ? AND is_active = ?", restaurantID, true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Restaurant not found"})
	}

	var order models.Order
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var subtotal float64
		items := make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			productID, _ := uuid.Parse(item.ProductID)
			var product models.Product
			if err := tx.First(&product, "id = ? AND restaurant_id = ? AND is_available = ?", productID, restaurantID, true).Error; err != nil {
				return fmt.Errorf("product %s is not available at this restaurant", item.ProductID)
			}
			subtotal += product.Price * float64(item.Quantity)
			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price,
			})
		}

		if subtotal < restaurant.MinOrder {
			return fmt.Errorf("order subtotal is below the restaurant minimum of %.2f", restaurant.MinOrder)
		}

		deliveryFee := restaurant.DeliveryFee
		var discount float64
		if req.CouponCode != nil && *req.CouponCode != "" {
			d, f, err := applyCoupon(tx, userID, *req.CouponCode, restaurant.Category, subtotal, deliveryFee)
			if err != nil {
				return err
			}
			discount = d
			deliveryFee = f
		}

		order = models.Order{
			UserID:          userID,
			RestaurantID:    restaurantID,
			Status:          models.OrderStatusCreated,
			Subtotal:        subtotal,
			DeliveryFee:     deliveryFee,
			Discount:        discount,
			Total:           subtotal - discount + deliveryFee,
			CouponCode:      req.CouponCode,
			DeliveryAddress: req.DeliveryAddress,
			Items:           items,
		}
		return tx.Create(&order).Error
	})

	if err != nil {
		if errors.Is(err, services.ErrInvalidPromoCode) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid coupon code"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// applyCoupon resolves a checkout code against reward coupons first, then
// promotions. A reward coupon is consumed here: marking used_at in the
// order transaction keeps a coupon from being spent on two orders at once.
func applyCoupon(tx *gorm.DB, userID uuid.UUID, code, category string, subtotal, deliveryFee float64) (discount, newDeliveryFee float64, err error) {
	var userReward models.UserReward
	err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Reward").
		Where("user_id = ? AND coupon_code = ? AND used_at IS NULL", userID, code).
		First(&userReward).Error

	if err == nil {
		now := tx.NowFunc()
		userReward.UsedAt = &now
		// Omit the preloaded Reward so the save touches only user_rewards.
		if err := tx.Omit(clause.Associations).Save(&userReward).Error; err != nil {
			return 0, 0, err
		}

		reward := userReward.Reward
		switch reward.Type {
		case models.RewardTypeFreeDelivery:
			return 0, 0, nil
		case models.RewardTypeFreeItem:
			return 0, deliveryFee, nil
		default:
			if reward.Discount != nil {
				return subtotal * float64(*reward.Discount) / 100, deliveryFee, nil
			}
			if reward.DiscountAmount != nil {
				d := *reward.DiscountAmount
				if d > subtotal {
					d = subtotal
				}
				return d, deliveryFee, nil
			}
			return 0, deliveryFee, nil
		}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, 0, err
	}

	promo, err := services.ValidatePromoCode(code, category, subtotal, time.Now())
	if err != nil {
		return 0, 0, err
	}
	if promo.FreeDelivery {
		return 0, 0, nil
	}
	return services.PromotionDiscount(*promo, subtotal), deliveryFee, nil
}

func ListMyOrders(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var orders []models.Order
	if err := database.DB.
		Preload("Items").
		Preload("Restaurant").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch orders"})
	}

	return c.JSON(orders)
}

func GetOrder(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	orderID := c.Params("orderId")

	var order models.Order
	if err := database.DB.Preload("Items.Product").Preload("Restaurant").First(&order, "id = ?", orderID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}

	if order.UserID != userID && claims["role"].(string) != "admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have access to this order."})
	}

	return c.JSON(order)
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=created preparing delivered cancelled"`
}

// UpdateOrderStatus is the admin transition between order states. Marking
// an order delivered is what feeds the loyalty side: points accrue for the
// order total and a pending referral for the buyer may complete.
func UpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("orderId")

	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var order models.Order
	if err := database.DB.First(&order, "id = ?", orderID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}

	if order.Status == models.OrderStatusDelivered || order.Status == models.OrderStatusCancelled {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": fmt.Sprintf("Order is already %s", order.Status)})
	}

	order.Status = req.Status
	if req.Status == models.OrderStatusDelivered {
		now := time.Now()
		order.DeliveredAt = &now
	}
	if err := database.DB.Save(&order).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update order"})
	}

	if req.Status == models.OrderStatusDelivered {
		services.AwardOrderPoints(&order)
		services.CompleteReferralIfApplicable(order.UserID)
	}

	return c.JSON(order)
}
