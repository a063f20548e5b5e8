package controller

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nexushq/nexus-chat-api/internal/dto"
	"github.com/nexushq/nexus-chat-api/internal/models"
	"github.com/nexushq/nexus-chat-api/internal/service"
)

// NormalizeChannelName applies the display convention for channel names:
// lowercase with spaces replaced by hyphens. This is the caller's job; the
// channel service stores whatever it is given.
func NormalizeChannelName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// ChannelListController drives the channel sidebar.
type ChannelListController struct {
	viewState
	channels service.ChannelService
	logger   zerolog.Logger

	items []models.Channel
}

// NewChannelListController constructs the channel sidebar controller.
func NewChannelListController(channels service.ChannelService, logger zerolog.Logger) *ChannelListController {
	return &ChannelListController{
		viewState: newViewState(),
		channels:  channels,
		logger:    logger.With().Str("component", "channel_list_controller").Logger(),
	}
}

// Load fetches all channels.
func (c *ChannelListController) Load(ctx context.Context) error {
	gen, err := c.begin()
	if err != nil {
		return err
	}

	loaded, loadErr := c.channels.ListAll(ctx)
	if loadErr != nil {
		c.logger.Warn().Err(loadErr).Msg("failed to load channels")
		if err := c.complete(gen, "failed to load channels", nil); err != nil {
			return err
		}
		return loadErr
	}

	return c.complete(gen, "", func() { c.items = loaded })
}

// Channels returns a copy of the locally held channel list.
func (c *ChannelListController) Channels() []models.Channel {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Channel, 0, len(c.items))
	for _, ch := range c.items {
		out = append(out, ch.Clone())
	}
	return out
}

// Create normalizes the display name and creates the channel, appending it
// to the local list.
func (c *ChannelListController) Create(ctx context.Context, name, channelType string) (models.Channel, error) {
	created, err := c.channels.Create(ctx, dto.ChannelCreateRequest{
		Name: NormalizeChannelName(name),
		Type: channelType,
	})
	if err != nil {
		return models.Channel{}, err
	}

	if err := c.mutate(func() { c.items = append(c.items, created) }); err != nil {
		return models.Channel{}, err
	}
	return created, nil
}

// MarkRead zeroes a channel's unread count and merges the fresh snapshot.
func (c *ChannelListController) MarkRead(ctx context.Context, channelID int) (models.Channel, error) {
	updated, err := c.channels.UpdateUnreadCount(ctx, channelID, 0)
	if err != nil {
		return models.Channel{}, err
	}

	if err := c.mutate(func() {
		for i, ch := range c.items {
			if ch.ID == updated.ID {
				c.items[i] = updated
				return
			}
		}
	}); err != nil {
		return models.Channel{}, err
	}
	return updated, nil
}
