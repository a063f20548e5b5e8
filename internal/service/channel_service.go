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

// ErrChannelNotFound indicates the channel identifier does not resolve.
var ErrChannelNotFound = errors.New("channel not found")

// ChannelService exposes the validated operation surface over the channel
// collection.
type ChannelService interface {
	ListAll(ctx context.Context) ([]models.Channel, error)
	GetByID(ctx context.Context, id int) (models.Channel, error)
	Create(ctx context.Context, input dto.ChannelCreateRequest) (models.Channel, error)
	Update(ctx context.Context, id int, patch dto.ChannelPatch) (models.Channel, error)
	Delete(ctx context.Context, id int) (models.Channel, error)
	UpdateUnreadCount(ctx context.Context, id, count int) (models.Channel, error)
}

type channelService struct {
	store     *store.Store
	delays    *latency.Simulator
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewChannelService constructs a channel service over the given store.
func NewChannelService(st *store.Store, delays *latency.Simulator, validate *validator.Validate, logger zerolog.Logger) ChannelService {
	return &channelService{
		store:     st,
		delays:    delays,
		validator: validate,
		logger:    logger.With().Str("component", "channel_service").Logger(),
		now:       time.Now,
	}
}

func (s *channelService) ListAll(ctx context.Context) ([]models.Channel, error) {
	s.delays.Sleep(latency.KindList)
	return s.store.Channels.FindAll(), nil
}

func (s *channelService) GetByID(ctx context.Context, id int) (models.Channel, error) {
	s.delays.Sleep(latency.KindGet)

	channel, err := s.store.Channels.Find(id)
	if err != nil {
		return models.Channel{}, ErrChannelNotFound
	}
	return channel, nil
}

// Create stores the name verbatim: lowercasing and hyphenation belong to the
// channel-list controller, not the service.
func (s *channelService) Create(ctx context.Context, input dto.ChannelCreateRequest) (models.Channel, error) {
	s.delays.Sleep(latency.KindCreate)

	if err := s.validator.Struct(input); err != nil {
		return models.Channel{}, err
	}

	channelType := input.Type
	if channelType == "" {
		channelType = models.ChannelPublic
	}

	channel := models.Channel{
		Name:        input.Name,
		Type:        channelType,
		UnreadCount: 0,
		LastMessage: s.now(),
	}

	created := s.store.Channels.Insert(channel)
	s.logger.Debug().Int("channel_id", created.ID).Str("type", created.Type).Msg("channel created")

	return created, nil
}

func (s *channelService) Update(ctx context.Context, id int, patch dto.ChannelPatch) (models.Channel, error) {
	s.delays.Sleep(latency.KindUpdate)

	if err := s.validator.Struct(patch); err != nil {
		return models.Channel{}, err
	}

	channel, err := s.store.Channels.Find(id)
	if err != nil {
		return models.Channel{}, ErrChannelNotFound
	}

	if patch.Name != nil {
		channel.Name = *patch.Name
	}
	if patch.Type != nil {
		channel.Type = *patch.Type
	}
	if patch.UnreadCount != nil {
		channel.UnreadCount = *patch.UnreadCount
	}

	updated, err := s.store.Channels.Replace(id, channel)
	if err != nil {
		return models.Channel{}, ErrChannelNotFound
	}

	return updated, nil
}

func (s *channelService) Delete(ctx context.Context, id int) (models.Channel, error) {
	s.delays.Sleep(latency.KindDelete)

	removed, err := s.store.Channels.Remove(id)
	if err != nil {
		return models.Channel{}, ErrChannelNotFound
	}

	return removed, nil
}

// UpdateUnreadCount is a thin wrapper over Update.
func (s *channelService) UpdateUnreadCount(ctx context.Context, id, count int) (models.Channel, error) {
	s.delays.Sleep(latency.KindMembership)
	return s.Update(ctx, id, dto.ChannelPatch{UnreadCount: &count})
}
