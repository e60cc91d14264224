package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"public-chat-app/handler"
	"public-chat-app/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.AuthHandler
	*handler.MessageHandler
	*handler.ThemeHandler
	*handler.UserHandler
	*handler.PickerHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.GetPublicRoute()
	rc.GetProtectedRoute()
}

// Public routes serve the polling loops and the auth entry points; they
// must answer without a token.
func (rc *ConfigRoute) GetPublicRoute() {
	app := rc.App.Group("/api")
	app.Post("/auth/signup", rc.AuthHandler.SignUp)
	app.Post("/auth/signin", rc.AuthHandler.SignIn)

	app.Get("/messages", rc.MessageHandler.ListMessages)

	app.Get("/chat/theme", rc.ThemeHandler.GetActiveTheme)
	app.Get("/chat/themes", rc.ThemeHandler.ListThemes)

	app.Get("/users/count", rc.UserHandler.CountOnlineUsers)

	app.Get("/emojis", rc.PickerHandler.ListEmojis)
	app.Get("/gifs", rc.PickerHandler.SearchGifs)
	app.Post("/files/validate", rc.PickerHandler.ValidateFile)
}

func (rc *ConfigRoute) GetProtectedRoute() {
	app := rc.App.Group("/api")
	app.Use(rc.Middleware.JWTProtected, rc.Middleware.ExtractUserID)

	app.Post("/messages", rc.MessageHandler.SendMessage)
	app.Patch("/messages/:id", rc.MessageHandler.EditMessage)
	app.Put("/messages/:id", rc.MessageHandler.EditMessage)
	app.Delete("/messages/:id", rc.MessageHandler.DeleteMessage)

	app.Post("/chat/theme", rc.ThemeHandler.SetActiveTheme)
}

func (rc *ConfigRoute) GetWebSocketRoute(eventHandler *handler.EventHandler) {
	rc.App.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	rc.App.Get("/ws/events", websocket.New(eventHandler.HandleEvents))
}
