package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/nexushq/nexus-chat-api/internal/dto"
	"github.com/nexushq/nexus-chat-api/internal/latency"
	"github.com/nexushq/nexus-chat-api/internal/models"
	"github.com/nexushq/nexus-chat-api/internal/store"
)

// ErrGroupNotFound indicates the group identifier does not resolve.
var ErrGroupNotFound = errors.New("group conversation not found")

// GroupConversationService exposes the validated operation surface over the
// group conversation collection. The minimum-member floor for group creation
// is enforced by the direct-messages controller, not here; direct service
// calls can create smaller groups.
type GroupConversationService interface {
	ListAll(ctx context.Context) ([]models.GroupConversation, error)
	GetByID(ctx context.Context, id int) (models.GroupConversation, error)
	UserGroups(ctx context.Context, userID int) ([]models.GroupConversation, error)
	Create(ctx context.Context, input dto.GroupCreateRequest) (models.GroupConversation, error)
	Update(ctx context.Context, id int, patch dto.GroupPatch) (models.GroupConversation, error)
	Delete(ctx context.Context, id int) (models.GroupConversation, error)
	AddMember(ctx context.Context, groupID, userID int) (models.GroupConversation, error)
	RemoveMember(ctx context.Context, groupID, userID int) (models.GroupConversation, error)
}

type groupService struct {
	store     *store.Store
	delays    *latency.Simulator
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewGroupConversationService constructs a group conversation service over
// the given store.
func NewGroupConversationService(st *store.Store, delays *latency.Simulator, validate *validator.Validate, logger zerolog.Logger) GroupConversationService {
	return &groupService{
		store:     st,
		delays:    delays,
		validator: validate,
		logger:    logger.With().Str("component", "group_service").Logger(),
		now:       time.Now,
	}
}

func (s *groupService) ListAll(ctx context.Context) ([]models.GroupConversation, error) {
	s.delays.Sleep(latency.KindList)
	return s.store.Groups.FindAll(), nil
}

func (s *groupService) GetByID(ctx context.Context, id int) (models.GroupConversation, error) {
	s.delays.Sleep(latency.KindGet)

	group, err := s.store.Groups.Find(id)
	if err != nil {
		return models.GroupConversation{}, ErrGroupNotFound
	}
	return group, nil
}

func (s *groupService) UserGroups(ctx context.Context, userID int) ([]models.GroupConversation, error) {
	s.delays.Sleep(latency.KindFilter)

	return s.store.Groups.Filter(func(g models.GroupConversation) bool {
		return g.HasMember(userID)
	}), nil
}

// Create assigns the identifier from the store's monotonic group counter, so
// deleted group ids are never handed out again.
func (s *groupService) Create(ctx context.Context, input dto.GroupCreateRequest) (models.GroupConversation, error) {
	s.delays.Sleep(latency.KindCreate)

	if err := s.validator.Struct(input); err != nil {
		return models.GroupConversation{}, err
	}

	now := s.now()
	group := models.GroupConversation{
		ID:          s.store.NextGroupID(),
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   input.CreatedBy,
		Members:     append([]int(nil), input.Members...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created := s.store.Groups.InsertWithID(group)
	s.logger.Debug().Int("group_id", created.ID).Int("members", len(created.Members)).Msg("group conversation created")

	return created, nil
}

func (s *groupService) Update(ctx context.Context, id int, patch dto.GroupPatch) (models.GroupConversation, error) {
	s.delays.Sleep(latency.KindUpdate)

	if err := s.validator.Struct(patch); err != nil {
		return models.GroupConversation{}, err
	}

	group, err := s.store.Groups.Find(id)
	if err != nil {
		return models.GroupConversation{}, ErrGroupNotFound
	}

	if patch.Name != nil {
		group.Name = *patch.Name
	}
	if patch.Description != nil {
		group.Description = *patch.Description
	}
	group.UpdatedAt = s.now()

	updated, err := s.store.Groups.Replace(id, group)
	if err != nil {
		return models.GroupConversation{}, ErrGroupNotFound
	}

	return updated, nil
}

func (s *groupService) Delete(ctx context.Context, id int) (models.GroupConversation, error) {
	s.delays.Sleep(latency.KindDelete)

	removed, err := s.store.Groups.Remove(id)
	if err != nil {
		return models.GroupConversation{}, ErrGroupNotFound
	}

	return removed, nil
}

// AddMember is idempotent: adding an existing member changes nothing, not
// even the updated timestamp.
func (s *groupService) AddMember(ctx context.Context, groupID, userID int) (models.GroupConversation, error) {
	s.delays.Sleep(latency.KindMembership)

	group, err := s.store.Groups.Find(groupID)
	if err != nil {
		return models.GroupConversation{}, ErrGroupNotFound
	}

	if !group.HasMember(userID) {
		group.Members = append(group.Members, userID)
		group.UpdatedAt = s.now()

		group, err = s.store.Groups.Replace(groupID, group)
		if err != nil {
			return models.GroupConversation{}, ErrGroupNotFound
		}
	}

	return group, nil
}

// RemoveMember filters the member out whether or not it was present, and
// always bumps the updated timestamp, unlike AddMember's conditional bump.
func (s *groupService) RemoveMember(ctx context.Context, groupID, userID int) (models.GroupConversation, error) {
	s.delays.Sleep(latency.KindMembership)

	group, err := s.store.Groups.Find(groupID)
	if err != nil {
		return models.GroupConversation{}, ErrGroupNotFound
	}

	members := make([]int, 0, len(group.Members))
	for _, id := range group.Members {
		if id != userID {
			members = append(members, id)
		}
	}
	group.Members = members
	group.UpdatedAt = s.now()

	updated, err := s.store.Groups.Replace(groupID, group)
	if err != nil {
		return models.GroupConversation{}, ErrGroupNotFound
	}

	return updated, nil
}
