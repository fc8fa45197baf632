package routes

import (
	"github.com/MateoDumas/ProntoClick-sub002/handlers"
	"github.com/MateoDumas/ProntoClick-sub002/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func SupportRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	support := api.Group("/support", middleware.Protected())
	support.Post("/conversations", handlers.StartSupportConversation)
	support.Get("/conversations", handlers.GetMyConversations)
	support.Get("/conversations/:conversationId/messages", handlers.GetConversationMessages)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/support", websocket.New(handlers.ServeWs))
}
