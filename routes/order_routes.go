package routes

import (
	"github.com/MateoDumas/ProntoClick-sub002/handlers"
	"github.com/MateoDumas/ProntoClick-sub002/middleware"
	"github.com/gofiber/fiber/v2"
)

func OrderRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	orders := api.Group("/orders", middleware.Protected())
	orders.Post("", handlers.CreateOrder)
	orders.Get("", handlers.ListMyOrders)
	orders.Get("/:orderId", handlers.GetOrder)

	adminOrders := api.Group("/admin/orders", middleware.Protected(), middleware.AdminRequired())
	adminOrders.Patch("/:orderId/status", handlers.UpdateOrderStatus)
}
