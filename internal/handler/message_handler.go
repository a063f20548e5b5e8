package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/nexushq/nexus-chat-api/internal/dto"
	"github.com/nexushq/nexus-chat-api/internal/middleware"
	"github.com/nexushq/nexus-chat-api/internal/service"
	"github.com/nexushq/nexus-chat-api/internal/utils"
)

// MessageHandler exposes the message operations, including reaction toggles
// and search.
type MessageHandler struct {
	messages service.MessageService
	logger   zerolog.Logger
}

// NewMessageHandler constructs a message handler.
func NewMessageHandler(messages service.MessageService, logger zerolog.Logger) *MessageHandler {
	return &MessageHandler{
		messages: messages,
		logger:   logger.With().Str("component", "message_handler").Logger(),
	}
}

// Register wires message routes.
func (h *MessageHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Get("/search", h.search)
	router.Get("/:id", h.get)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.remove)
	router.Post("/:id/reactions", h.toggleReaction)
}

// list returns every message, or the subsequence for one conversation when
// the channel_id query is present. The discriminator may equally be a user
// or group identifier; direct and group views reuse this contract.
func (h *MessageHandler) list(c *fiber.Ctx) error {
	channelID, err := parseQueryInt(c, "channel_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if channelID != nil {
		result, err := h.messages.ListByChannel(c.UserContext(), *channelID)
		if err != nil {
			return sendServiceError(c, h.logger, err, "failed to list messages")
		}
		return utils.SendSuccess(c, "", dto.NewMessageResponseSlice(result))
	}

	result, err := h.messages.ListAll(c.UserContext())
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to list messages")
	}
	return utils.SendSuccess(c, "", dto.NewMessageResponseSlice(result))
}

func (h *MessageHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	message, err := h.messages.GetByID(c.UserContext(), id)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to fetch message")
	}
	return utils.SendSuccess(c, "", dto.NewMessageResponse(message))
}

func (h *MessageHandler) create(c *fiber.Ctx) error {
	var payload dto.MessageCreateRequest
	if err := parseStrict(c, &payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if payload.UserID == 0 {
		payload.UserID = middleware.SessionUserID(c)
	}

	message, err := h.messages.Create(c.UserContext(), payload)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to send message")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "message sent", dto.NewMessageResponse(message))
}

func (h *MessageHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var patch dto.MessagePatch
	if err := parseStrict(c, &patch); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	message, err := h.messages.Update(c.UserContext(), id, patch)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to update message")
	}
	return utils.SendSuccess(c, "message updated", dto.NewMessageResponse(message))
}

func (h *MessageHandler) remove(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	message, err := h.messages.Delete(c.UserContext(), id)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to delete message")
	}
	return utils.SendSuccess(c, "message deleted", dto.NewMessageResponse(message))
}

func (h *MessageHandler) toggleReaction(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.ReactionRequest
	if err := parseStrict(c, &payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if payload.UserID == 0 {
		payload.UserID = middleware.SessionUserID(c)
	}

	message, err := h.messages.ToggleReaction(c.UserContext(), id, payload)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to toggle reaction")
	}
	return utils.SendSuccess(c, "reaction toggled", dto.NewMessageResponse(message))
}

// search honours the empty-query passthrough: no q parameter means every
// (optionally conversation-filtered) message comes back.
func (h *MessageHandler) search(c *fiber.Ctx) error {
	channelID, err := parseQueryInt(c, "channel_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	results, err := h.messages.Search(c.UserContext(), c.Query("q"), channelID)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to search messages")
	}
	return utils.SendSuccess(c, "", dto.NewMessageResponseSlice(results))
}
