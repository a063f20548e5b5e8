package controller

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nexushq/nexus-chat-api/internal/dto"
	"github.com/nexushq/nexus-chat-api/internal/models"
	"github.com/nexushq/nexus-chat-api/internal/service"
	"github.com/nexushq/nexus-chat-api/internal/session"
)

// ProfileController drives the profile screen for the session user.
type ProfileController struct {
	viewState
	users  service.UserService
	logger zerolog.Logger

	user models.User
}

// NewProfileController constructs the profile screen controller.
func NewProfileController(users service.UserService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{
		viewState: newViewState(),
		users:     users,
		logger:    logger.With().Str("component", "profile_controller").Logger(),
	}
}

// Load fetches the session user's profile.
func (c *ProfileController) Load(ctx context.Context) error {
	gen, err := c.begin()
	if err != nil {
		return err
	}

	userID, _ := session.UserID(ctx)

	user, loadErr := c.users.GetByID(ctx, userID)
	if loadErr != nil {
		c.logger.Warn().Err(loadErr).Int("user_id", userID).Msg("failed to load profile")
		if err := c.complete(gen, "failed to load profile", nil); err != nil {
			return err
		}
		return loadErr
	}

	return c.complete(gen, "", func() { c.user = user })
}

// User returns a copy of the loaded profile.
func (c *ProfileController) User() models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user.Clone()
}

// Update applies a partial profile update for the session user and merges
// the fresh snapshot.
func (c *ProfileController) Update(ctx context.Context, patch dto.UserPatch) (models.User, error) {
	userID, _ := session.UserID(ctx)

	updated, err := c.users.Update(ctx, userID, patch)
	if err != nil {
		return models.User{}, err
	}

	if err := c.mutate(func() { c.user = updated }); err != nil {
		return models.User{}, err
	}
	return updated, nil
}

// SetStatus changes the session user's presence status.
func (c *ProfileController) SetStatus(ctx context.Context, status string) (models.User, error) {
	userID, _ := session.UserID(ctx)

	updated, err := c.users.UpdateStatus(ctx, userID, status)
	if err != nil {
		return models.User{}, err
	}

	if err := c.mutate(func() { c.user = updated }); err != nil {
		return models.User{}, err
	}
	return updated, nil
}
