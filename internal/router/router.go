package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nexushq/nexus-chat-api/internal/config"
	"github.com/nexushq/nexus-chat-api/internal/handler"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	UserHandler    *handler.UserHandler
	ChannelHandler *handler.ChannelHandler
	MessageHandler *handler.MessageHandler
	GroupHandler   *handler.GroupHandler
	EmojiHandler   *handler.EmojiHandler
	ScreenHandler  *handler.ScreenHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	if deps.UserHandler != nil {
		deps.UserHandler.Register(api.Group("/users"))
	}
	if deps.ChannelHandler != nil {
		deps.ChannelHandler.Register(api.Group("/channels"))
	}
	if deps.MessageHandler != nil {
		deps.MessageHandler.Register(api.Group("/messages"))
	}
	if deps.GroupHandler != nil {
		deps.GroupHandler.Register(api.Group("/groups"))
	}
	if deps.EmojiHandler != nil {
		deps.EmojiHandler.Register(api.Group("/emojis"))
	}
	if deps.ScreenHandler != nil {
		deps.ScreenHandler.Register(api.Group("/screens"))
	}
}
