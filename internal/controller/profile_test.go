package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nexushq/nexus-chat-api/internal/dto"
	"github.com/nexushq/nexus-chat-api/internal/models"
	"github.com/nexushq/nexus-chat-api/internal/session"
)

func TestProfileLoadsSessionUser(t *testing.T) {
	svc := &stubUserService{
		getByID: func(_ context.Context, id int) (models.User, error) {
			require.Equal(t, 2, id)
			return models.User{ID: 2, Name: "Bob Smith"}, nil
		},
	}
	c := NewProfileController(svc, testLogger())

	require.NoError(t, c.Load(session.WithUser(context.Background(), 2)))
	require.Equal(t, PhaseReady, c.Phase())
	require.Equal(t, "Bob Smith", c.User().Name)
}

func TestProfileLoadFailure(t *testing.T) {
	boom := errors.New("user not found")
	svc := &stubUserService{
		getByID: func(context.Context, int) (models.User, error) { return models.User{}, boom },
	}
	c := NewProfileController(svc, testLogger())

	require.ErrorIs(t, c.Load(context.Background()), boom)
	require.Equal(t, PhaseFailed, c.Phase())
	require.Equal(t, "failed to load profile", c.ErrMessage())
}

func TestProfileUpdateMergesSnapshot(t *testing.T) {
	svc := &stubUserService{
		getByID: func(_ context.Context, id int) (models.User, error) {
			return models.User{ID: id, Name: "Bob Smith"}, nil
		},
		update: func(_ context.Context, id int, patch dto.UserPatch) (models.User, error) {
			return models.User{ID: id, Name: *patch.Name}, nil
		},
	}
	c := NewProfileController(svc, testLogger())
	ctx := session.WithUser(context.Background(), 2)
	require.NoError(t, c.Load(ctx))

	name := "Robert Smith"
	updated, err := c.Update(ctx, dto.UserPatch{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Robert Smith", updated.Name)
	require.Equal(t, "Robert Smith", c.User().Name)
}

func TestProfileSetStatus(t *testing.T) {
	svc := &stubUserService{
		getByID: func(_ context.Context, id int) (models.User, error) {
			return models.User{ID: id, Status: models.StatusOnline}, nil
		},
		updateStatus: func(_ context.Context, id int, status string) (models.User, error) {
			return models.User{ID: id, Status: status}, nil
		},
	}
	c := NewProfileController(svc, testLogger())
	ctx := session.WithUser(context.Background(), 2)
	require.NoError(t, c.Load(ctx))

	updated, err := c.SetStatus(ctx, models.StatusAway)
	require.NoError(t, err)
	require.Equal(t, models.StatusAway, updated.Status)
	require.Equal(t, models.StatusAway, c.User().Status)
}
