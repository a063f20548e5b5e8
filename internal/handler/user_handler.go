package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/nexushq/nexus-chat-api/internal/dto"
	"github.com/nexushq/nexus-chat-api/internal/service"
	"github.com/nexushq/nexus-chat-api/internal/utils"
)

// UserHandler exposes the user operations.
type UserHandler struct {
	users  service.UserService
	groups service.GroupConversationService
	logger zerolog.Logger
}

// NewUserHandler constructs a user handler.
func NewUserHandler(users service.UserService, groups service.GroupConversationService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		groups: groups,
		logger: logger.With().Str("component", "user_handler").Logger(),
	}
}

// Register wires user routes.
func (h *UserHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Get("/:id", h.get)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.remove)
	router.Patch("/:id/status", h.updateStatus)
	router.Get("/:id/groups", h.listGroups)
}

func (h *UserHandler) list(c *fiber.Ctx) error {
	users, err := h.users.ListAll(c.UserContext())
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to list users")
	}
	return utils.SendSuccess(c, "", dto.NewUserResponseSlice(users))
}

func (h *UserHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := h.users.GetByID(c.UserContext(), id)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to fetch user")
	}
	return utils.SendSuccess(c, "", dto.NewUserResponse(user))
}

func (h *UserHandler) create(c *fiber.Ctx) error {
	var payload dto.UserCreateRequest
	if err := parseStrict(c, &payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.Create(c.UserContext(), payload)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to create user")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "user created", dto.NewUserResponse(user))
}

func (h *UserHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var patch dto.UserPatch
	if err := parseStrict(c, &patch); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.Update(c.UserContext(), id, patch)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to update user")
	}
	return utils.SendSuccess(c, "user updated", dto.NewUserResponse(user))
}

func (h *UserHandler) remove(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := h.users.Delete(c.UserContext(), id)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to delete user")
	}
	return utils.SendSuccess(c, "user deleted", dto.NewUserResponse(user))
}

func (h *UserHandler) updateStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.UserStatusRequest
	if err := parseStrict(c, &payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.UpdateStatus(c.UserContext(), id, payload.Status)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to update status")
	}
	return utils.SendSuccess(c, "status updated", dto.NewUserResponse(user))
}

func (h *UserHandler) listGroups(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	groups, err := h.groups.UserGroups(c.UserContext(), id)
	if err != nil {
		return sendServiceError(c, h.logger, err, "failed to list user groups")
	}
	return utils.SendSuccess(c, "", dto.NewGroupResponseSlice(groups))
}
