package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/nexushq/nexus-chat-api/internal/controller"
	"github.com/nexushq/nexus-chat-api/internal/dto"
	"github.com/nexushq/nexus-chat-api/internal/service"
	"github.com/nexushq/nexus-chat-api/internal/utils"
)

// ScreenHandler drives the view state controllers server-side and returns
// their reconciled snapshots. Each request mounts a fresh controller, loads
// it, and serializes whatever state it settled in, mirroring the path→view
// mapping of the client this API replaces.
type ScreenHandler struct {
	users    service.UserService
	channels service.ChannelService
	messages service.MessageService
	groups   service.GroupConversationService
	logger   zerolog.Logger
}

// NewScreenHandler constructs a screen handler.
func NewScreenHandler(users service.UserService, channels service.ChannelService, messages service.MessageService, groups service.GroupConversationService, logger zerolog.Logger) *ScreenHandler {
	return &ScreenHandler{
		users:    users,
		channels: channels,
		messages: messages,
		groups:   groups,
		logger:   logger.With().Str("component", "screen_handler").Logger(),
	}
}

// Register wires screen routes.
func (h *ScreenHandler) Register(router fiber.Router) {
	router.Get("/channels/:id", h.channelsScreen)
	router.Get("/direct", h.directScreen)
	router.Get("/direct/:userId", h.directThreadScreen)
	router.Get("/direct/group/:groupId", h.groupThreadScreen)
	router.Get("/search", h.searchScreen)
	router.Get("/profile", h.profileScreen)
	router.Get("/inbox", h.inboxScreen)
}

func (h *ScreenHandler) threadSnapshot(c *fiber.Ctx, conversation *int) dto.ThreadScreenResponse {
	thread := controller.NewMessageListController(h.messages, conversation, h.logger)
	defer thread.Close()
	_ = thread.Load(c.UserContext())

	return dto.ThreadScreenResponse{
		Phase:    string(thread.Phase()),
		Error:    thread.ErrMessage(),
		Messages: dto.NewMessageResponseSlice(thread.Messages()),
	}
}

func (h *ScreenHandler) channelsScreen(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	sidebar := controller.NewChannelListController(h.channels, h.logger)
	defer sidebar.Close()
	_ = sidebar.Load(c.UserContext())

	thread := h.threadSnapshot(c, &id)

	return utils.SendSuccess(c, "", dto.ChannelsScreenResponse{
		Phase:    string(sidebar.Phase()),
		Error:    sidebar.ErrMessage(),
		Channels: dto.NewChannelResponseSlice(sidebar.Channels()),
		Thread:   &thread,
	})
}

func (h *ScreenHandler) directScreen(c *fiber.Ctx) error {
	sidebar := controller.NewDirectListController(h.users, h.groups, h.logger)
	defer sidebar.Close()
	_ = sidebar.Load(c.UserContext())

	return utils.SendSuccess(c, "", dto.DirectScreenResponse{
		Phase:   string(sidebar.Phase()),
		Error:   sidebar.ErrMessage(),
		Members: dto.NewUserResponseSlice(sidebar.Members()),
		Groups:  dto.NewGroupResponseSlice(sidebar.Groups()),
	})
}

func (h *ScreenHandler) directThreadScreen(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.SendSuccess(c, "", h.threadSnapshot(c, &userID))
}

func (h *ScreenHandler) groupThreadScreen(c *fiber.Ctx) error {
	groupID, err := parseIDParam(c, "groupId")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.SendSuccess(c, "", h.threadSnapshot(c, &groupID))
}

func (h *ScreenHandler) searchScreen(c *fiber.Ctx) error {
	channelID, err := parseQueryInt(c, "channel_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	search := controller.NewSearchController(h.messages, h.logger)
	defer search.Close()
	_ = search.Search(c.UserContext(), c.Query("q"), channelID)

	return utils.SendSuccess(c, "", dto.SearchScreenResponse{
		Phase:   string(search.Phase()),
		Error:   search.ErrMessage(),
		Query:   search.Query(),
		Results: dto.NewMessageResponseSlice(search.Results()),
	})
}

func (h *ScreenHandler) profileScreen(c *fiber.Ctx) error {
	profile := controller.NewProfileController(h.users, h.logger)
	defer profile.Close()
	_ = profile.Load(c.UserContext())

	return utils.SendSuccess(c, "", dto.ProfileScreenResponse{
		Phase: string(profile.Phase()),
		Error: profile.ErrMessage(),
		User:  dto.NewUserResponse(profile.User()),
	})
}

func (h *ScreenHandler) inboxScreen(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "", h.threadSnapshot(c, nil))
}
