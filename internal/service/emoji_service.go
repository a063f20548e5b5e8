package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nexushq/nexus-chat-api/internal/latency"
	"github.com/nexushq/nexus-chat-api/internal/models"
)

// EmojiCatalogService serves the quick-reaction picker.
type EmojiCatalogService interface {
	CommonEmojis(ctx context.Context) ([]models.Emoji, error)
	ReactionsByMessage(ctx context.Context, messageID int) ([]models.Reaction, error)
}

type emojiService struct {
	delays *latency.Simulator
	logger zerolog.Logger
}

// NewEmojiCatalogService constructs the emoji catalog service.
func NewEmojiCatalogService(delays *latency.Simulator, logger zerolog.Logger) EmojiCatalogService {
	return &emojiService{
		delays: delays,
		logger: logger.With().Str("component", "emoji_service").Logger(),
	}
}

var commonEmojis = []models.Emoji{
	{Emoji: "👍", Name: "thumbs_up"},
	{Emoji: "❤️", Name: "heart"},
	{Emoji: "😂", Name: "laugh"},
	{Emoji: "😮", Name: "surprised"},
	{Emoji: "😢", Name: "sad"},
	{Emoji: "🎉", Name: "party"},
	{Emoji: "🔥", Name: "fire"},
	{Emoji: "✅", Name: "check"},
}

func (s *emojiService) CommonEmojis(ctx context.Context) ([]models.Emoji, error) {
	s.delays.Sleep(latency.KindCatalog)
	return append([]models.Emoji(nil), commonEmojis...), nil
}

// ReactionsByMessage would read from a dedicated reactions store; reactions
// live embedded in messages instead, so this always returns an empty list.
func (s *emojiService) ReactionsByMessage(ctx context.Context, messageID int) ([]models.Reaction, error) {
	s.delays.Sleep(latency.KindCatalog)
	return []models.Reaction{}, nil
}
