package controller

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/nexushq/nexus-chat-api/internal/dto"
	"github.com/nexushq/nexus-chat-api/internal/models"
	"github.com/nexushq/nexus-chat-api/internal/service"
	"github.com/nexushq/nexus-chat-api/internal/session"
)

// ErrTooFewMembers indicates a group creation attempt with fewer than two
// selected members besides the creator. This floor lives here, in the view
// layer; the group service itself does not re-check it.
var ErrTooFewMembers = errors.New("a group needs at least 2 other members")

// DirectListController drives the direct-messages sidebar: the workspace
// members plus the session user's group conversations.
type DirectListController struct {
	viewState
	users  service.UserService
	groups service.GroupConversationService
	logger zerolog.Logger

	members    []models.User
	userGroups []models.GroupConversation
}

// NewDirectListController constructs the direct-messages sidebar controller.
func NewDirectListController(users service.UserService, groups service.GroupConversationService, logger zerolog.Logger) *DirectListController {
	return &DirectListController{
		viewState: newViewState(),
		users:     users,
		groups:    groups,
		logger:    logger.With().Str("component", "direct_list_controller").Logger(),
	}
}

// Load fetches the member list and the session user's groups.
func (c *DirectListController) Load(ctx context.Context) error {
	gen, err := c.begin()
	if err != nil {
		return err
	}

	userID, _ := session.UserID(ctx)

	members, loadErr := c.users.ListAll(ctx)
	var loadedGroups []models.GroupConversation
	if loadErr == nil {
		loadedGroups, loadErr = c.groups.UserGroups(ctx, userID)
	}

	if loadErr != nil {
		c.logger.Warn().Err(loadErr).Msg("failed to load conversations")
		if err := c.complete(gen, "failed to load conversations", nil); err != nil {
			return err
		}
		return loadErr
	}

	return c.complete(gen, "", func() {
		c.members = members
		c.userGroups = loadedGroups
	})
}

// Members returns a copy of the locally held member list.
func (c *DirectListController) Members() []models.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.User, 0, len(c.members))
	for _, u := range c.members {
		out = append(out, u.Clone())
	}
	return out
}

// Groups returns a copy of the locally held group list.
func (c *DirectListController) Groups() []models.GroupConversation {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.GroupConversation, 0, len(c.userGroups))
	for _, g := range c.userGroups {
		out = append(out, g.Clone())
	}
	return out
}

// CreateGroup validates the member floor, then creates a group owned by the
// session user with the creator as the first member.
func (c *DirectListController) CreateGroup(ctx context.Context, name, description string, memberIDs []int) (models.GroupConversation, error) {
	creator, _ := session.UserID(ctx)

	selected := make([]int, 0, len(memberIDs))
	seen := map[int]bool{creator: true}
	for _, id := range memberIDs {
		if !seen[id] {
			seen[id] = true
			selected = append(selected, id)
		}
	}

	if len(selected) < 2 {
		return models.GroupConversation{}, ErrTooFewMembers
	}

	created, err := c.groups.Create(ctx, dto.GroupCreateRequest{
		Name:        name,
		Description: description,
		CreatedBy:   creator,
		Members:     append([]int{creator}, selected...),
	})
	if err != nil {
		return models.GroupConversation{}, err
	}

	if err := c.mutate(func() { c.userGroups = append(c.userGroups, created) }); err != nil {
		return models.GroupConversation{}, err
	}
	return created, nil
}
