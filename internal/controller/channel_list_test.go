package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nexushq/nexus-chat-api/internal/dto"
	"github.com/nexushq/nexus-chat-api/internal/models"
)

func TestNormalizeChannelName(t *testing.T) {
	require.Equal(t, "dev-team", NormalizeChannelName("Dev Team"))
	require.Equal(t, "general", NormalizeChannelName("  General  "))
	require.Equal(t, "a-b-c", NormalizeChannelName("A B C"))
}

func TestChannelListLoad(t *testing.T) {
	svc := &stubChannelService{
		listAll: func(context.Context) ([]models.Channel, error) {
			return []models.Channel{{ID: 1, Name: "general"}, {ID: 2, Name: "dev-team"}}, nil
		},
	}
	c := NewChannelListController(svc, testLogger())

	require.NoError(t, c.Load(context.Background()))
	require.Equal(t, PhaseReady, c.Phase())
	require.Len(t, c.Channels(), 2)
}

func TestChannelListLoadFailure(t *testing.T) {
	boom := errors.New("store unavailable")
	svc := &stubChannelService{
		listAll: func(context.Context) ([]models.Channel, error) { return nil, boom },
	}
	c := NewChannelListController(svc, testLogger())

	require.ErrorIs(t, c.Load(context.Background()), boom)
	require.Equal(t, PhaseFailed, c.Phase())
	require.Equal(t, "failed to load channels", c.ErrMessage())
}

func TestChannelListCreateNormalizesName(t *testing.T) {
	svc := &stubChannelService{
		listAll: func(context.Context) ([]models.Channel, error) { return nil, nil },
		create: func(_ context.Context, input dto.ChannelCreateRequest) (models.Channel, error) {
			// the controller normalizes; the service stores what it gets
			require.Equal(t, "release-planning", input.Name)
			return models.Channel{ID: 4, Name: input.Name, Type: input.Type}, nil
		},
	}
	c := NewChannelListController(svc, testLogger())
	require.NoError(t, c.Load(context.Background()))

	created, err := c.Create(context.Background(), "Release Planning", models.ChannelPublic)
	require.NoError(t, err)
	require.Equal(t, "release-planning", created.Name)
	require.Len(t, c.Channels(), 1)
}

func TestChannelListMarkReadMergesSnapshot(t *testing.T) {
	svc := &stubChannelService{
		listAll: func(context.Context) ([]models.Channel, error) {
			return []models.Channel{{ID: 1, UnreadCount: 7}, {ID: 2, UnreadCount: 3}}, nil
		},
		updateUnreadCount: func(_ context.Context, id, count int) (models.Channel, error) {
			require.Zero(t, count)
			return models.Channel{ID: id, UnreadCount: count}, nil
		},
	}
	c := NewChannelListController(svc, testLogger())
	require.NoError(t, c.Load(context.Background()))

	updated, err := c.MarkRead(context.Background(), 1)
	require.NoError(t, err)
	require.Zero(t, updated.UnreadCount)

	items := c.Channels()
	require.Zero(t, items[0].UnreadCount)
	require.Equal(t, 3, items[1].UnreadCount)
}
