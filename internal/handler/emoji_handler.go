package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/nexushq/nexus-chat-api/internal/service"
	"github.com/nexushq/nexus-chat-api/internal/utils"
)

// EmojiHandler serves the quick-reaction catalog.
type EmojiHandler struct {
	emojis service.EmojiCatalogService
	logger zerolog.Logger
}

// NewEmojiHandler constructs an emoji catalog handler.
func NewEmojiHandler(emojis service.EmojiCatalogService, logger zerolog.Logger) *EmojiHandler {
	return &EmojiHandler{
		emojis: emojis,
		logger: logger.With().Str("component", "emoji_handler").Logger(),
	}
}

// Register wires emoji catalog routes.
func (h *EmojiHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/reactions/:messageId", h.reactionsByMessage)
}

func (h *EmojiHandler) list(c *fiber.Ctx) error {
	emojis, err := h.emojis.CommonEmojis(c.UserContext())
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to list emojis")
	}
	return utils.SendSuccess(c, "", emojis)
}

func (h *EmojiHandler) reactionsByMessage(c *fiber.Ctx) error {
	messageID, err := parseIDParam(c, "messageId")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	reactions, err := h.emojis.ReactionsByMessage(c.UserContext(), messageID)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to list reactions")
	}
	return utils.SendSuccess(c, "", reactions)
}
