package dto

import (
	"time"

	"github.com/nexushq/nexus-chat-api/internal/models"
)

// MessageCreateRequest describes the payload to create a message. ChannelID
// is any conversation discriminator: a channel, user or group identifier,
// depending on which view is sending; nil means an inbox message. A zero
// UserID falls back to the session user at the handler boundary.
type MessageCreateRequest struct {
	ChannelID *int   `json:"channel_id" validate:"omitempty,min=1"`
	UserID    int    `json:"user_id" validate:"omitempty,min=1"`
	Content   string `json:"content" validate:"required"`
}

// MessagePatch enumerates the message fields a partial update may change.
// ExpectedVersion, when positive, makes the update fail on a version
// mismatch instead of blindly overwriting a concurrent mutation.
type MessagePatch struct {
	Content         *string `json:"content"`
	ExpectedVersion int     `json:"expected_version" validate:"omitempty,min=1"`
}

// ReactionRequest carries one reaction toggle. A zero UserID falls back to
// the session user at the handler boundary.
type ReactionRequest struct {
	Emoji           string `json:"emoji" validate:"required,max=32"`
	UserID          int    `json:"user_id" validate:"omitempty,min=1"`
	ExpectedVersion int    `json:"expected_version" validate:"omitempty,min=1"`
}

// ReactionResponse is the serialized representation of one emoji entry.
type ReactionResponse struct {
	Emoji string `json:"emoji"`
	Users []int  `json:"users"`
}

// MessageResponse is the serialized representation of a message.
type MessageResponse struct {
	ID        int                `json:"id"`
	ChannelID *int               `json:"channel_id,omitempty"`
	UserID    int                `json:"user_id"`
	Content   string             `json:"content"`
	Timestamp time.Time          `json:"timestamp"`
	Edited    bool               `json:"edited"`
	Version   int                `json:"version"`
	Reactions []ReactionResponse `json:"reactions"`
}

// NewMessageResponse converts a model into a DTO.
func NewMessageResponse(message models.Message) MessageResponse {
	reactions := make([]ReactionResponse, 0, len(message.Reactions))
	for _, r := range message.Reactions {
		reactions = append(reactions, ReactionResponse{Emoji: r.Emoji, Users: append([]int(nil), r.Users...)})
	}

	return MessageResponse{
		ID:        message.ID,
		ChannelID: message.ChannelID,
		UserID:    message.UserID,
		Content:   message.Content,
		Timestamp: message.Timestamp,
		Edited:    message.Edited,
		Version:   message.Version,
		Reactions: reactions,
	}
}

// NewMessageResponseSlice converts a slice of models into DTOs.
func NewMessageResponseSlice(messages []models.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, message := range messages {
		out = append(out, NewMessageResponse(message))
	}
	return out
}
