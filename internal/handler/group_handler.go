package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/nexushq/nexus-chat-api/internal/dto"
	"github.com/nexushq/nexus-chat-api/internal/middleware"
	"github.com/nexushq/nexus-chat-api/internal/service"
	"github.com/nexushq/nexus-chat-api/internal/utils"
)

// GroupHandler exposes the group conversation operations.
type GroupHandler struct {
	groups service.GroupConversationService
	logger zerolog.Logger
}

// NewGroupHandler constructs a group conversation handler.
func NewGroupHandler(groups service.GroupConversationService, logger zerolog.Logger) *GroupHandler {
	return &GroupHandler{
		groups: groups,
		logger: logger.With().Str("component", "group_handler").Logger(),
	}
}

// Register wires group conversation routes.
func (h *GroupHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Get("/:id", h.get)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.remove)
	router.Put("/:id/members/:userId", h.addMember)
	router.Delete("/:id/members/:userId", h.removeMember)
}

// list returns every group, or only those containing the member given in
// the member query parameter.
func (h *GroupHandler) list(c *fiber.Ctx) error {
	member, err := parseQueryInt(c, "member")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if member != nil {
		groups, err := h.groups.UserGroups(c.UserContext(), *member)
		if err != nil {
			return sendServiceError(c, h.logger, err, "failed to list groups")
		}
		return utils.SendSuccess(c, "", dto.NewGroupResponseSlice(groups))
	}

	groups, err := h.groups.ListAll(c.UserContext())
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to list groups")
	}
	return utils.SendSuccess(c, "", dto.NewGroupResponseSlice(groups))
}

func (h *GroupHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	group, err := h.groups.GetByID(c.UserContext(), id)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to fetch group")
	}
	return utils.SendSuccess(c, "", dto.NewGroupResponse(group))
}

func (h *GroupHandler) create(c *fiber.Ctx) error {
	var payload dto.GroupCreateRequest
	if err := parseStrict(c, &payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if payload.CreatedBy == 0 {
		payload.CreatedBy = middleware.SessionUserID(c)
	}

	group, err := h.groups.Create(c.UserContext(), payload)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to create group")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "group created", dto.NewGroupResponse(group))
}

func (h *GroupHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var patch dto.GroupPatch
	if err := parseStrict(c, &patch); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	group, err := h.groups.Update(c.UserContext(), id, patch)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to update group")
	}
	return utils.SendSuccess(c, "group updated", dto.NewGroupResponse(group))
}

func (h *GroupHandler) remove(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	group, err := h.groups.Delete(c.UserContext(), id)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to delete group")
	}
	return utils.SendSuccess(c, "group deleted", dto.NewGroupResponse(group))
}

func (h *GroupHandler) addMember(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	group, err := h.groups.AddMember(c.UserContext(), id, userID)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to add member")
	}
	return utils.SendSuccess(c, "member added", dto.NewGroupResponse(group))
}

func (h *GroupHandler) removeMember(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	group, err := h.groups.RemoveMember(c.UserContext(), id, userID)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to remove member")
	}
	return utils.SendSuccess(c, "member removed", dto.NewGroupResponse(group))
}
