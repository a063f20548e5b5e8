package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nexushq/nexus-chat-api/internal/dto"
	"github.com/nexushq/nexus-chat-api/internal/models"
)

func newUserService() UserService {
	return NewUserService(seededStore(), instant(), testValidator(), testLogger())
}

func TestUserServiceCreateDefaultsStatus(t *testing.T) {
	svc := newUserService()

	created, err := svc.Create(context.Background(), dto.UserCreateRequest{Name: "Taylor Fox", Email: "taylor@nexus.chat"})
	require.NoError(t, err)
	require.Equal(t, 7, created.ID)
	require.Equal(t, models.StatusOnline, created.Status)

	fetched, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created, fetched)
}

func TestUserServiceCreateValidation(t *testing.T) {
	svc := newUserService()

	_, err := svc.Create(context.Background(), dto.UserCreateRequest{Name: "No Email"})
	require.Error(t, err)

	_, err = svc.Create(context.Background(), dto.UserCreateRequest{Name: "Bad Status", Email: "x@y.dev", Status: "invisible"})
	require.Error(t, err)
}

func TestUserServiceUpdatePartialMerge(t *testing.T) {
	svc := newUserService()

	name := "Alexandra Rivera"
	updated, err := svc.Update(context.Background(), 1, dto.UserPatch{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Alexandra Rivera", updated.Name)
	require.Equal(t, "alex@nexus.chat", updated.Email)
	require.Equal(t, models.StatusOnline, updated.Status)
}

func TestUserServiceUpdateStatus(t *testing.T) {
	svc := newUserService()

	updated, err := svc.UpdateStatus(context.Background(), 1, models.StatusAway)
	require.NoError(t, err)
	require.Equal(t, models.StatusAway, updated.Status)

	_, err = svc.UpdateStatus(context.Background(), 1, "ghost")
	require.Error(t, err)
}

func TestUserServiceDeleteDoesNotCascade(t *testing.T) {
	st := seededStore()
	users := NewUserService(st, instant(), testValidator(), testLogger())
	messages := NewMessageService(st, instant(), testValidator(), nil, 0, testLogger())
	ctx := context.Background()

	_, err := users.Delete(ctx, 2)
	require.NoError(t, err)

	_, err = users.GetByID(ctx, 2)
	require.ErrorIs(t, err, ErrUserNotFound)

	// messages authored by the removed user survive untouched
	orphan, err := messages.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 2, orphan.UserID)
}

func TestUserServiceStripsMarkupFromName(t *testing.T) {
	svc := newUserService()

	created, err := svc.Create(context.Background(), dto.UserCreateRequest{
		Name:  "Taylor <b>Fox</b>",
		Email: "taylor@nexus.chat",
	})
	require.NoError(t, err)
	require.Equal(t, "Taylor Fox", created.Name)
}
