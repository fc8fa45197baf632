package routes

import (
	"github.com/MateoDumas/ProntoClick-sub002/handlers"
	"github.com/MateoDumas/ProntoClick-sub002/middleware"
	"github.com/gofiber/fiber/v2"
)

func LoyaltyRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/rewards", handlers.ListRewards)

	loyalty := api.Group("/loyalty", middleware.Protected())
	loyalty.Get("/points", handlers.GetMyPoints)
	loyalty.Get("/transactions", handlers.ListMyPointTransactions)
	loyalty.Post("/rewards/:rewardId/redeem", handlers.RedeemReward)
	loyalty.Get("/rewards/me", handlers.ListMyRewards)

	referrals := api.Group("/referrals", middleware.Protected())
	referrals.Get("/me", handlers.GetMyReferralInfo)
}
