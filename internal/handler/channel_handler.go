package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/nexushq/nexus-chat-api/internal/dto"
	"github.com/nexushq/nexus-chat-api/internal/service"
	"github.com/nexushq/nexus-chat-api/internal/utils"
)

// ChannelHandler exposes the channel operations.
type ChannelHandler struct {
	channels service.ChannelService
	logger   zerolog.Logger
}

// NewChannelHandler constructs a channel handler.
func NewChannelHandler(channels service.ChannelService, logger zerolog.Logger) *ChannelHandler {
	return &ChannelHandler{
		channels: channels,
		logger:   logger.With().Str("component", "channel_handler").Logger(),
	}
}

// Register wires channel routes.
func (h *ChannelHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Get("/:id", h.get)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.remove)
	router.Patch("/:id/unread", h.updateUnread)
}

func (h *ChannelHandler) list(c *fiber.Ctx) error {
	channels, err := h.channels.ListAll(c.UserContext())
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to list channels")
	}
	return utils.SendSuccess(c, "", dto.NewChannelResponseSlice(channels))
}

func (h *ChannelHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	channel, err := h.channels.GetByID(c.UserContext(), id)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to fetch channel")
	}
	return utils.SendSuccess(c, "", dto.NewChannelResponse(channel))
}

func (h *ChannelHandler) create(c *fiber.Ctx) error {
	var payload dto.ChannelCreateRequest
	if err := parseStrict(c, &payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	channel, err := h.channels.Create(c.UserContext(), payload)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to create channel")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "channel created", dto.NewChannelResponse(channel))
}

func (h *ChannelHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var patch dto.ChannelPatch
	if err := parseStrict(c, &patch); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	channel, err := h.channels.Update(c.UserContext(), id, patch)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to update channel")
	}
	return utils.SendSuccess(c, "channel updated", dto.NewChannelResponse(channel))
}

func (h *ChannelHandler) remove(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	channel, err := h.channels.Delete(c.UserContext(), id)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to delete channel")
	}
	return utils.SendSuccess(c, "channel deleted", dto.NewChannelResponse(channel))
}

func (h *ChannelHandler) updateUnread(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.ChannelUnreadRequest
	if err := parseStrict(c, &payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	channel, err := h.channels.UpdateUnreadCount(c.UserContext(), id, payload.Count)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to update unread count")
	}
	return utils.SendSuccess(c, "unread count updated", dto.NewChannelResponse(channel))
}
