package routes

import (
	"github.com/MateoDumas/ProntoClick-sub002/handlers"
	"github.com/MateoDumas/ProntoClick-sub002/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/stats", handlers.GetDashboardStats)

	restaurants := admin.Group("/restaurants")
	restaurants.Post("", handlers.CreateRestaurant)
	restaurants.Put("/:restaurantId", handlers.UpdateRestaurant)
	restaurants.Delete("/:restaurantId", handlers.DeactivateRestaurant)
	restaurants.Post("/:restaurantId/image", handlers.UploadRestaurantImage)
	restaurants.Post("/:restaurantId/products", handlers.CreateProduct)

	products := admin.Group("/products")
	products.Put("/:productId", handlers.UpdateProduct)
	products.Delete("/:productId", handlers.DeleteProduct)
	products.Post("/:productId/image", handlers.UploadProductImage)

	rewards := admin.Group("/rewards")
	rewards.Post("", handlers.CreateReward)
	rewards.Get("", handlers.ListAllRewards)
	rewards.Put("/:rewardId", handlers.UpdateReward)
	rewards.Delete("/:rewardId", handlers.DeactivateReward)

	promotions := admin.Group("/promotions")
	promotions.Post("", handlers.CreatePromotion)
	promotions.Get("", handlers.ListAllPromotions)
	promotions.Put("/:promotionId", handlers.UpdatePromotion)
	promotions.Delete("/:promotionId", handlers.DeletePromotion)

	admin.Post("/users/:userId/points", handlers.AdjustUserPoints)
}
