package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmojiCatalog(t *testing.T) {
	svc := NewEmojiCatalogService(instant(), testLogger())

	emojis, err := svc.CommonEmojis(context.Background())
	require.NoError(t, err)
	require.Len(t, emojis, 8)
	require.Equal(t, "thumbs_up", emojis[0].Name)
}

func TestEmojiReactionsByMessagePlaceholder(t *testing.T) {
	svc := NewEmojiCatalogService(instant(), testLogger())

	reactions, err := svc.ReactionsByMessage(context.Background(), 1)
	require.NoError(t, err)
	require.Empty(t, reactions)
}
