package database

import (
	"log"
	"time"

	"github.com/MateoDumas/ProntoClick-sub002/models"
)

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

// SeedCatalog inserts a starter reward and promotion catalog on an empty
// database so a fresh deployment has something on the storefront.
func SeedCatalog() {
	var rewardCount int64
	if err := DB.Model(&models.Reward{}).Count(&rewardCount).Error; err != nil {
		log.Printf("🔥 Failed to check reward catalog: %v", err)
		return
	}

	if rewardCount == 0 {
		rewards := []models.Reward{
			{
				Title:       "10% Off Your Order",
				Description: "A one-time 10% discount coupon for any order.",
				PointsCost:  200,
				Type:        models.RewardTypeDiscount,
				Discount:    intPtr(10),
			},
			{
				Title:       "Free Delivery",
				Description: "Free delivery on your next order.",
				PointsCost:  150,
				Type:        models.RewardTypeFreeDelivery,
				CouponCode:  strPtr("ENVIOGRATIS"),
			},
			{
				Title:          "5 Off Coupon",
				Description:    "A fixed discount on orders above the minimum.",
				PointsCost:     400,
				Type:           models.RewardTypeCoupon,
				DiscountAmount: floatPtr(5.00),
			},
			{
				Title:       "Free Dessert",
				Description: "A free dessert with your order, while stock lasts.",
				PointsCost:  300,
				Type:        models.RewardTypeFreeItem,
				CouponCode:  strPtr("POSTREGRATIS"),
				Stock:       intPtr(100),
			},
		}
		if err := DB.Create(&rewards).Error; err != nil {
			log.Printf("🔥 Failed to seed reward catalog: %v", err)
		} else {
			log.Println("✅ Reward catalog seeded successfully")
		}
	}

	var promoCount int64
	if err := DB.Model(&models.Promotion{}).Count(&promoCount).Error; err != nil {
		log.Printf("🔥 Failed to check promotion catalog: %v", err)
		return
	}

	if promoCount == 0 {
		end := time.Now().AddDate(1, 0, 0)
		promotions := []models.Promotion{
			{
				Title:           "Monday Madness",
				Description:     "15% off all restaurant orders every Monday.",
				DiscountPercent: intPtr(15),
				MinOrder:        10,
				Code:            strPtr("LUNES15"),
				Category:        models.PromotionCategoryRestaurant,
				DayOfWeek:       intPtr(1),
			},
			{
				Title:        "Free Delivery Weekend",
				Description:  "Free delivery on market orders every Saturday.",
				FreeDelivery: true,
				MinOrder:     20,
				Category:     models.PromotionCategoryMarket,
				DayOfWeek:    intPtr(6),
			},
			{
				Title:          "Welcome Offer",
				Description:    "A flat discount for everyone, every day.",
				DiscountAmount: floatPtr(3.00),
				MinOrder:       15,
				Code:           strPtr("BIENVENIDO"),
				Category:       models.PromotionCategoryAll,
				EndDate:        &end,
			},
		}
		if err := DB.Create(&promotions).Error; err != nil {
			log.Printf("🔥 Failed to seed promotion catalog: %v", err)
		} else {
			log.Println("✅ Promotion catalog seeded successfully")
		}
	}
}
