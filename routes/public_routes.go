package routes

import (
	"github.com/MateoDumas/ProntoClick-sub002/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	restaurants := api.Group("/restaurants")
	restaurants.Get("", handlers.ListRestaurants)
	restaurants.Get("/:restaurantId", handlers.GetRestaurant)
	restaurants.Get("/:restaurantId/products", handlers.ListRestaurantProducts)

	promotions := api.Group("/promotions")
	promotions.Get("", handlers.ListActivePromotions)
	promotions.Get("/featured", handlers.ListFeaturedPromotions)
	promotions.Post("/validate", handlers.ValidatePromoCode)

	api.Get("/referrals/validate/:code", handlers.ValidateReferralCode)
}
