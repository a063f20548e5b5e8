package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/nexushq/nexus-chat-api/internal/dto"
	"github.com/nexushq/nexus-chat-api/internal/latency"
	"github.com/nexushq/nexus-chat-api/internal/models"
	"github.com/nexushq/nexus-chat-api/internal/store"
)

// ErrUserNotFound indicates the user identifier does not resolve.
var ErrUserNotFound = errors.New("user not found")

// UserService exposes the validated operation surface over the user
// collection. Deleting a user does not cascade: messages keep referencing
// the removed author.
type UserService interface {
	ListAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int) (models.User, error)
	Create(ctx context.Context, input dto.UserCreateRequest) (models.User, error)
	Update(ctx context.Context, id int, patch dto.UserPatch) (models.User, error)
	Delete(ctx context.Context, id int) (models.User, error)
	UpdateStatus(ctx context.Context, id int, status string) (models.User, error)
}

type userService struct {
	store     *store.Store
	delays    *latency.Simulator
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewUserService constructs a user service over the given store.
func NewUserService(st *store.Store, delays *latency.Simulator, validate *validator.Validate, logger zerolog.Logger) UserService {
	return &userService{
		store:     st,
		delays:    delays,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "user_service").Logger(),
	}
}

// cleanProfileField strips any markup from a free-text profile value.
func (s *userService) cleanProfileField(value string) string {
	return strings.TrimSpace(s.sanitizer.Sanitize(value))
}

func (s *userService) ListAll(ctx context.Context) ([]models.User, error) {
	s.delays.Sleep(latency.KindList)
	return s.store.Users.FindAll(), nil
}

func (s *userService) GetByID(ctx context.Context, id int) (models.User, error) {
	s.delays.Sleep(latency.KindGet)

	user, err := s.store.Users.Find(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, input dto.UserCreateRequest) (models.User, error) {
	s.delays.Sleep(latency.KindCreate)

	if err := s.validator.Struct(input); err != nil {
		return models.User{}, err
	}

	status := input.Status
	if status == "" {
		status = models.StatusOnline
	}

	user := models.User{
		Name:   s.cleanProfileField(input.Name),
		Email:  input.Email,
		Avatar: input.Avatar,
		Status: status,
	}

	created := s.store.Users.Insert(user)
	s.logger.Debug().Int("user_id", created.ID).Msg("user created")

	return created, nil
}

func (s *userService) Update(ctx context.Context, id int, patch dto.UserPatch) (models.User, error) {
	s.delays.Sleep(latency.KindUpdate)

	if err := s.validator.Struct(patch); err != nil {
		return models.User{}, err
	}

	user, err := s.store.Users.Find(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	if patch.Name != nil {
		user.Name = s.cleanProfileField(*patch.Name)
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Avatar != nil {
		user.Avatar = *patch.Avatar
	}
	if patch.Status != nil {
		user.Status = *patch.Status
	}

	updated, err := s.store.Users.Replace(id, user)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	return updated, nil
}

func (s *userService) Delete(ctx context.Context, id int) (models.User, error) {
	s.delays.Sleep(latency.KindDelete)

	removed, err := s.store.Users.Remove(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	return removed, nil
}

// UpdateStatus is a thin wrapper over Update.
func (s *userService) UpdateStatus(ctx context.Context, id int, status string) (models.User, error) {
	s.delays.Sleep(latency.KindMembership)

	input := dto.UserStatusRequest{Status: status}
	if err := s.validator.Struct(input); err != nil {
		return models.User{}, err
	}

	return s.Update(ctx, id, dto.UserPatch{Status: &input.Status})
}
