package dto

import (
	"time"

	"github.com/nexushq/nexus-chat-api/internal/models"
)

// ChannelCreateRequest describes the payload to create a channel. The name
// is stored exactly as provided; display-side normalization is the caller's
// responsibility.
type ChannelCreateRequest struct {
	Name string `json:"name" validate:"required,max=120"`
	Type string `json:"type" validate:"omitempty,oneof=public private"`
}

// ChannelPatch enumerates the channel fields a partial update may change.
type ChannelPatch struct {
	Name        *string `json:"name" validate:"omitempty,max=120"`
	Type        *string `json:"type" validate:"omitempty,oneof=public private"`
	UnreadCount *int    `json:"unread_count" validate:"omitempty,min=0"`
}

// ChannelUnreadRequest carries an unread-count update.
type ChannelUnreadRequest struct {
	Count int `json:"count" validate:"min=0"`
}

// ChannelResponse is the serialized representation of a channel.
type ChannelResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	UnreadCount int       `json:"unread_count"`
	LastMessage time.Time `json:"last_message"`
}

// NewChannelResponse converts a model into a DTO.
func NewChannelResponse(channel models.Channel) ChannelResponse {
	return ChannelResponse{
		ID:          channel.ID,
		Name:        channel.Name,
		Type:        channel.Type,
		UnreadCount: channel.UnreadCount,
		LastMessage: channel.LastMessage,
	}
}

// NewChannelResponseSlice converts a slice of models into DTOs.
func NewChannelResponseSlice(channels []models.Channel) []ChannelResponse {
	out := make([]ChannelResponse, 0, len(channels))
	for _, channel := range channels {
		out = append(out, NewChannelResponse(channel))
	}
	return out
}
