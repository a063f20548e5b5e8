package controller

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nexushq/nexus-chat-api/internal/dto"
	"github.com/nexushq/nexus-chat-api/internal/models"
	"github.com/nexushq/nexus-chat-api/internal/service"
	"github.com/nexushq/nexus-chat-api/internal/session"
)

// MessageListController drives a message thread view: one channel, one
// direct or group conversation (both reuse the channel discriminator), or
// the inbox, which shows every message.
type MessageListController struct {
	viewState
	messages service.MessageService
	logger   zerolog.Logger

	// conversation is nil in inbox mode.
	conversation *int
	items        []models.Message
}

// NewMessageListController constructs a thread controller for the given
// conversation discriminator; pass nil for inbox mode.
func NewMessageListController(messages service.MessageService, conversation *int, logger zerolog.Logger) *MessageListController {
	return &MessageListController{
		viewState:    newViewState(),
		messages:     messages,
		conversation: conversation,
		logger:       logger.With().Str("component", "message_list_controller").Logger(),
	}
}

// Load fetches the thread's messages, transitioning Loading → Ready or
// Loading → Failed. Calling it again from Failed is the retry trigger.
func (c *MessageListController) Load(ctx context.Context) error {
	gen, err := c.begin()
	if err != nil {
		return err
	}

	var loaded []models.Message
	var loadErr error
	if c.conversation == nil {
		loaded, loadErr = c.messages.ListAll(ctx)
	} else {
		loaded, loadErr = c.messages.ListByChannel(ctx, *c.conversation)
	}

	if loadErr != nil {
		c.logger.Warn().Err(loadErr).Msg("failed to load messages")
		if err := c.complete(gen, "failed to load messages", nil); err != nil {
			return err
		}
		return loadErr
	}

	return c.complete(gen, "", func() { c.items = loaded })
}

// Messages returns a copy of the locally held thread.
func (c *MessageListController) Messages() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Message, 0, len(c.items))
	for _, m := range c.items {
		out = append(out, m.Clone())
	}
	return out
}

// Send creates a message authored by the session user and appends it to the
// local list. A failure leaves the loaded thread untouched.
func (c *MessageListController) Send(ctx context.Context, content string) (models.Message, error) {
	userID, _ := session.UserID(ctx)

	created, err := c.messages.Create(ctx, dto.MessageCreateRequest{
		ChannelID: c.conversation,
		UserID:    userID,
		Content:   content,
	})
	if err != nil {
		return models.Message{}, err
	}

	if err := c.mutate(func() { c.items = append(c.items, created) }); err != nil {
		return models.Message{}, err
	}
	return created, nil
}

// Edit updates a message's content and merges the fresh snapshot into the
// local list by identifier.
func (c *MessageListController) Edit(ctx context.Context, id int, content string, expectedVersion int) (models.Message, error) {
	updated, err := c.messages.Update(ctx, id, dto.MessagePatch{Content: &content, ExpectedVersion: expectedVersion})
	if err != nil {
		return models.Message{}, err
	}

	if err := c.applyUpdate(updated); err != nil {
		return models.Message{}, err
	}
	return updated, nil
}

// Delete removes a message and drops it from the local list.
func (c *MessageListController) Delete(ctx context.Context, id int) error {
	if _, err := c.messages.Delete(ctx, id); err != nil {
		return err
	}

	return c.mutate(func() {
		for i, m := range c.items {
			if m.ID == id {
				c.items = append(c.items[:i], c.items[i+1:]...)
				return
			}
		}
	})
}

// ToggleReaction toggles the session user's reaction and merges the fresh
// message snapshot into the local list.
func (c *MessageListController) ToggleReaction(ctx context.Context, messageID int, emoji string) (models.Message, error) {
	userID, _ := session.UserID(ctx)

	updated, err := c.messages.ToggleReaction(ctx, messageID, dto.ReactionRequest{Emoji: emoji, UserID: userID})
	if err != nil {
		return models.Message{}, err
	}

	if err := c.applyUpdate(updated); err != nil {
		return models.Message{}, err
	}
	return updated, nil
}

func (c *MessageListController) applyUpdate(updated models.Message) error {
	return c.mutate(func() {
		for i, m := range c.items {
			if m.ID == updated.ID {
				c.items[i] = updated
				return
			}
		}
	})
}
