package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nexushq/nexus-chat-api/internal/dto"
	"github.com/nexushq/nexus-chat-api/internal/models"
)

func newChannelService() ChannelService {
	return NewChannelService(seededStore(), instant(), testValidator(), testLogger())
}

func TestChannelServiceCreateDefaults(t *testing.T) {
	svc := newChannelService()

	created, err := svc.Create(context.Background(), dto.ChannelCreateRequest{Name: "Dev Team"})
	require.NoError(t, err)
	require.Equal(t, 4, created.ID)
	// the service stores the name verbatim; normalization is the caller's job
	require.Equal(t, "Dev Team", created.Name)
	require.Equal(t, models.ChannelPublic, created.Type)
	require.Zero(t, created.UnreadCount)
	require.WithinDuration(t, time.Now(), created.LastMessage, time.Minute)
}

func TestChannelServiceCreateRejectsUnknownType(t *testing.T) {
	svc := newChannelService()

	_, err := svc.Create(context.Background(), dto.ChannelCreateRequest{Name: "ops", Type: "secret"})
	require.Error(t, err)
}

func TestChannelServiceUpdatePartialMerge(t *testing.T) {
	svc := newChannelService()
	ctx := context.Background()

	name := "announcements"
	updated, err := svc.Update(ctx, 1, dto.ChannelPatch{Name: &name})
	require.NoError(t, err)
	require.Equal(t, 1, updated.ID)
	require.Equal(t, "announcements", updated.Name)
	require.Equal(t, models.ChannelPublic, updated.Type)
}

func TestChannelServiceUpdateUnreadCount(t *testing.T) {
	svc := newChannelService()

	updated, err := svc.UpdateUnreadCount(context.Background(), 2, 0)
	require.NoError(t, err)
	require.Zero(t, updated.UnreadCount)
}

func TestChannelServiceDeleteThenGet(t *testing.T) {
	svc := newChannelService()
	ctx := context.Background()

	_, err := svc.Delete(ctx, 3)
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, 3)
	require.ErrorIs(t, err, ErrChannelNotFound)

	_, err = svc.Delete(ctx, 3)
	require.ErrorIs(t, err, ErrChannelNotFound)
}

func TestChannelServiceGetUnknown(t *testing.T) {
	svc := newChannelService()

	_, err := svc.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrChannelNotFound)
}
