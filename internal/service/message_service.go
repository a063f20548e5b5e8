package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/nexushq/nexus-chat-api/internal/dto"
	"github.com/nexushq/nexus-chat-api/internal/latency"
	"github.com/nexushq/nexus-chat-api/internal/models"
	"github.com/nexushq/nexus-chat-api/internal/observability"
	"github.com/nexushq/nexus-chat-api/internal/store"
)

// ErrMessageNotFound indicates the message identifier does not resolve.
var ErrMessageNotFound = errors.New("message not found")

// ErrEmptyContent indicates the message body is empty after sanitization.
var ErrEmptyContent = errors.New("message content empty after sanitization")

// ErrVersionConflict indicates the caller's expected version no longer
// matches the stored message; the read-modify-write lost a race.
var ErrVersionConflict = errors.New("message version conflict")

// MessageService exposes the validated operation surface over the message
// collection, including reaction toggles and content search.
type MessageService interface {
	ListAll(ctx context.Context) ([]models.Message, error)
	GetByID(ctx context.Context, id int) (models.Message, error)
	ListByChannel(ctx context.Context, channelID int) ([]models.Message, error)
	Create(ctx context.Context, input dto.MessageCreateRequest) (models.Message, error)
	Update(ctx context.Context, id int, patch dto.MessagePatch) (models.Message, error)
	Delete(ctx context.Context, id int) (models.Message, error)
	ToggleReaction(ctx context.Context, messageID int, input dto.ReactionRequest) (models.Message, error)
	Search(ctx context.Context, query string, channelID *int) ([]models.Message, error)
}

type messageService struct {
	store     *store.Store
	delays    *latency.Simulator
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	redis     *redis.Client
	cacheTTL  time.Duration
	logger    zerolog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewMessageService constructs a message service over the given store.
// The redis client may be nil, which disables search result caching.
func NewMessageService(st *store.Store, delays *latency.Simulator, validate *validator.Validate, redisClient *redis.Client, cacheTTL time.Duration, logger zerolog.Logger) MessageService {
	sanitizer := bluemonday.UGCPolicy()
	sanitizer.AllowElements("br")

	return &messageService{
		store:     st,
		delays:    delays,
		validator: validate,
		sanitizer: sanitizer,
		redis:     redisClient,
		cacheTTL:  cacheTTL,
		logger:    logger.With().Str("component", "message_service").Logger(),
		tracer:    otel.Tracer("github.com/nexushq/nexus-chat-api/internal/service/message"),
		now:       time.Now,
	}
}

func (s *messageService) ListAll(ctx context.Context) ([]models.Message, error) {
	s.delays.Sleep(latency.KindList)
	return s.store.Messages.FindAll(), nil
}

func (s *messageService) GetByID(ctx context.Context, id int) (models.Message, error) {
	s.delays.Sleep(latency.KindGet)

	message, err := s.store.Messages.Find(id)
	if err != nil {
		return models.Message{}, ErrMessageNotFound
	}
	return message, nil
}

// ListByChannel treats the discriminator as an opaque conversation key: the
// direct-message and group views reuse the same contract by passing user or
// group identifiers here.
func (s *messageService) ListByChannel(ctx context.Context, channelID int) ([]models.Message, error) {
	s.delays.Sleep(latency.KindFilter)

	return s.store.Messages.Filter(func(m models.Message) bool {
		return m.ChannelID != nil && *m.ChannelID == channelID
	}), nil
}

func (s *messageService) Create(ctx context.Context, input dto.MessageCreateRequest) (models.Message, error) {
	s.delays.Sleep(latency.KindSend)

	if err := s.validator.Struct(input); err != nil {
		return models.Message{}, err
	}

	clean := strings.TrimSpace(s.sanitizer.Sanitize(input.Content))
	if clean == "" {
		return models.Message{}, ErrEmptyContent
	}

	destination := "inbox"
	attrs := []attribute.KeyValue{attribute.Int("message.user_id", input.UserID)}
	if input.ChannelID != nil {
		destination = "channel"
		attrs = append(attrs, attribute.Int("message.channel_id", *input.ChannelID))
	}

	_, span := s.tracer.Start(ctx, "message.create", trace.WithAttributes(attrs...))
	defer span.End()

	message := models.Message{
		ChannelID: input.ChannelID,
		UserID:    input.UserID,
		Content:   clean,
		Timestamp: s.now(),
		Edited:    false,
		Version:   1,
		Reactions: []models.Reaction{},
	}

	created := s.store.Messages.Insert(message)
	s.store.BumpRevision()

	observability.MessagesSent().WithLabelValues(destination).Inc()
	s.logger.Debug().Int("message_id", created.ID).Str("destination", destination).Msg("message created")

	return created, nil
}

// Update merges the patch over the stored message. The edited flag is forced
// true unconditionally, even for an empty patch: any update marks the
// message edited.
func (s *messageService) Update(ctx context.Context, id int, patch dto.MessagePatch) (models.Message, error) {
	s.delays.Sleep(latency.KindUpdate)

	if err := s.validator.Struct(patch); err != nil {
		return models.Message{}, err
	}

	message, err := s.store.Messages.Find(id)
	if err != nil {
		return models.Message{}, ErrMessageNotFound
	}

	if patch.ExpectedVersion > 0 && patch.ExpectedVersion != message.Version {
		return models.Message{}, ErrVersionConflict
	}

	if patch.Content != nil {
		clean := strings.TrimSpace(s.sanitizer.Sanitize(*patch.Content))
		if clean == "" {
			return models.Message{}, ErrEmptyContent
		}
		message.Content = clean
	}

	message.Edited = true
	message.Version++

	updated, err := s.store.Messages.Replace(id, message)
	if err != nil {
		return models.Message{}, ErrMessageNotFound
	}
	s.store.BumpRevision()

	return updated, nil
}

func (s *messageService) Delete(ctx context.Context, id int) (models.Message, error) {
	s.delays.Sleep(latency.KindDelete)

	removed, err := s.store.Messages.Remove(id)
	if err != nil {
		return models.Message{}, ErrMessageNotFound
	}
	s.store.BumpRevision()

	return removed, nil
}

// ToggleReaction applies toggle semantics: a user who already reacted with
// the emoji is removed (pruning the entry when its user set empties),
// otherwise the user is appended, creating the entry if the emoji is unseen.
func (s *messageService) ToggleReaction(ctx context.Context, messageID int, input dto.ReactionRequest) (models.Message, error) {
	s.delays.Sleep(latency.KindToggle)

	if err := s.validator.Struct(input); err != nil {
		return models.Message{}, err
	}

	message, err := s.store.Messages.Find(messageID)
	if err != nil {
		return models.Message{}, ErrMessageNotFound
	}

	if input.ExpectedVersion > 0 && input.ExpectedVersion != message.Version {
		return models.Message{}, ErrVersionConflict
	}

	_, span := s.tracer.Start(ctx, "message.toggle_reaction", trace.WithAttributes(
		attribute.Int("message.id", messageID),
		attribute.String("reaction.emoji", input.Emoji),
		attribute.Int("reaction.user_id", input.UserID),
	))
	defer span.End()

	idx := message.FindReaction(input.Emoji)
	if idx == -1 {
		message.Reactions = append(message.Reactions, models.Reaction{Emoji: input.Emoji, Users: []int{input.UserID}})
	} else {
		entry := message.Reactions[idx]
		userIdx := -1
		for i, id := range entry.Users {
			if id == input.UserID {
				userIdx = i
				break
			}
		}
		if userIdx == -1 {
			entry.Users = append(entry.Users, input.UserID)
			message.Reactions[idx] = entry
		} else {
			entry.Users = append(entry.Users[:userIdx], entry.Users[userIdx+1:]...)
			if len(entry.Users) == 0 {
				message.Reactions = append(message.Reactions[:idx], message.Reactions[idx+1:]...)
			} else {
				message.Reactions[idx] = entry
			}
		}
	}

	message.Version++

	updated, err := s.store.Messages.Replace(messageID, message)
	if err != nil {
		return models.Message{}, ErrMessageNotFound
	}
	s.store.BumpRevision()

	observability.ReactionsToggled().Inc()

	return updated, nil
}

// Search returns messages whose content case-insensitively contains the
// query, optionally pre-filtered to one conversation. An empty query is a
// passthrough: every (optionally filtered) message comes back unfiltered by
// content. Results are cached keyed by store revision, so any message
// mutation invalidates the cache without explicit eviction.
func (s *messageService) Search(ctx context.Context, query string, channelID *int) ([]models.Message, error) {
	s.delays.Sleep(latency.KindSearch)

	start := time.Now()
	defer func() {
		observability.SearchLatency().Observe(time.Since(start).Seconds())
	}()

	if cached, ok := s.cachedSearch(ctx, query, channelID); ok {
		return cached, nil
	}

	needle := strings.ToLower(query)
	results := s.store.Messages.Filter(func(m models.Message) bool {
		if channelID != nil && (m.ChannelID == nil || *m.ChannelID != *channelID) {
			return false
		}
		if query == "" {
			return true
		}
		return strings.Contains(strings.ToLower(m.Content), needle)
	})

	s.cacheSearch(ctx, query, channelID, results)

	return results, nil
}

func (s *messageService) searchKey(query string, channelID *int) string {
	channel := 0
	if channelID != nil {
		channel = *channelID
	}
	return fmt.Sprintf("search:%d:%d:%s", s.store.Revision(), channel, strings.ToLower(query))
}

func (s *messageService) cachedSearch(ctx context.Context, query string, channelID *int) ([]models.Message, bool) {
	if s.redis == nil {
		return nil, false
	}

	raw, err := s.redis.Get(ctx, s.searchKey(query, channelID)).Result()
	if err != nil {
		return nil, false
	}

	var results []models.Message
	if err := json.Unmarshal([]byte(raw), &results); err != nil {
		s.logger.Warn().Err(err).Msg("failed to unmarshal cached search results")
		return nil, false
	}

	return results, true
}

func (s *messageService) cacheSearch(ctx context.Context, query string, channelID *int, results []models.Message) {
	if s.redis == nil {
		return
	}

	payload, err := json.Marshal(results)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to marshal search results for cache")
		return
	}

	if err := s.redis.Set(ctx, s.searchKey(query, channelID), payload, s.cacheTTL).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache search results")
	}
}
