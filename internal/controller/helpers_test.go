package controller

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/nexushq/nexus-chat-api/internal/dto"
	"github.com/nexushq/nexus-chat-api/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// stubMessageService scripts each operation with a function field so tests
// control results and observe call counts without a live store.
type stubMessageService struct {
	listAll        func(ctx context.Context) ([]models.Message, error)
	listByChannel  func(ctx context.Context, channelID int) ([]models.Message, error)
	create         func(ctx context.Context, input dto.MessageCreateRequest) (models.Message, error)
	update         func(ctx context.Context, id int, patch dto.MessagePatch) (models.Message, error)
	remove         func(ctx context.Context, id int) (models.Message, error)
	toggleReaction func(ctx context.Context, messageID int, input dto.ReactionRequest) (models.Message, error)
	search         func(ctx context.Context, query string, channelID *int) ([]models.Message, error)

	searchCalls int
}

func (s *stubMessageService) ListAll(ctx context.Context) ([]models.Message, error) {
	return s.listAll(ctx)
}

func (s *stubMessageService) GetByID(ctx context.Context, id int) (models.Message, error) {
	return models.Message{}, nil
}

func (s *stubMessageService) ListByChannel(ctx context.Context, channelID int) ([]models.Message, error) {
	return s.listByChannel(ctx, channelID)
}

func (s *stubMessageService) Create(ctx context.Context, input dto.MessageCreateRequest) (models.Message, error) {
	return s.create(ctx, input)
}

func (s *stubMessageService) Update(ctx context.Context, id int, patch dto.MessagePatch) (models.Message, error) {
	return s.update(ctx, id, patch)
}

func (s *stubMessageService) Delete(ctx context.Context, id int) (models.Message, error) {
	return s.remove(ctx, id)
}

func (s *stubMessageService) ToggleReaction(ctx context.Context, messageID int, input dto.ReactionRequest) (models.Message, error) {
	return s.toggleReaction(ctx, messageID, input)
}

func (s *stubMessageService) Search(ctx context.Context, query string, channelID *int) ([]models.Message, error) {
	s.searchCalls++
	return s.search(ctx, query, channelID)
}

type stubUserService struct {
	listAll      func(ctx context.Context) ([]models.User, error)
	getByID      func(ctx context.Context, id int) (models.User, error)
	update       func(ctx context.Context, id int, patch dto.UserPatch) (models.User, error)
	updateStatus func(ctx context.Context, id int, status string) (models.User, error)
}

func (s *stubUserService) ListAll(ctx context.Context) ([]models.User, error) {
	return s.listAll(ctx)
}

func (s *stubUserService) GetByID(ctx context.Context, id int) (models.User, error) {
	return s.getByID(ctx, id)
}

func (s *stubUserService) Create(ctx context.Context, input dto.UserCreateRequest) (models.User, error) {
	return models.User{}, nil
}

func (s *stubUserService) Update(ctx context.Context, id int, patch dto.UserPatch) (models.User, error) {
	return s.update(ctx, id, patch)
}

func (s *stubUserService) Delete(ctx context.Context, id int) (models.User, error) {
	return models.User{}, nil
}

func (s *stubUserService) UpdateStatus(ctx context.Context, id int, status string) (models.User, error) {
	return s.updateStatus(ctx, id, status)
}

type stubGroupService struct {
	userGroups func(ctx context.Context, userID int) ([]models.GroupConversation, error)
	create     func(ctx context.Context, input dto.GroupCreateRequest) (models.GroupConversation, error)
}

func (s *stubGroupService) ListAll(ctx context.Context) ([]models.GroupConversation, error) {
	return nil, nil
}

func (s *stubGroupService) GetByID(ctx context.Context, id int) (models.GroupConversation, error) {
	return models.GroupConversation{}, nil
}

func (s *stubGroupService) UserGroups(ctx context.Context, userID int) ([]models.GroupConversation, error) {
	return s.userGroups(ctx, userID)
}

func (s *stubGroupService) Create(ctx context.Context, input dto.GroupCreateRequest) (models.GroupConversation, error) {
	return s.create(ctx, input)
}

func (s *stubGroupService) Update(ctx context.Context, id int, patch dto.GroupPatch) (models.GroupConversation, error) {
	return models.GroupConversation{}, nil
}

func (s *stubGroupService) Delete(ctx context.Context, id int) (models.GroupConversation, error) {
	return models.GroupConversation{}, nil
}

func (s *stubGroupService) AddMember(ctx context.Context, groupID, userID int) (models.GroupConversation, error) {
	return models.GroupConversation{}, nil
}

func (s *stubGroupService) RemoveMember(ctx context.Context, groupID, userID int) (models.GroupConversation, error) {
	return models.GroupConversation{}, nil
}

type stubChannelService struct {
	listAll           func(ctx context.Context) ([]models.Channel, error)
	create            func(ctx context.Context, input dto.ChannelCreateRequest) (models.Channel, error)
	updateUnreadCount func(ctx context.Context, id, count int) (models.Channel, error)
}

func (s *stubChannelService) ListAll(ctx context.Context) ([]models.Channel, error) {
	return s.listAll(ctx)
}

func (s *stubChannelService) GetByID(ctx context.Context, id int) (models.Channel, error) {
	return models.Channel{}, nil
}

func (s *stubChannelService) Create(ctx context.Context, input dto.ChannelCreateRequest) (models.Channel, error) {
	return s.create(ctx, input)
}

func (s *stubChannelService) Update(ctx context.Context, id int, patch dto.ChannelPatch) (models.Channel, error) {
	return models.Channel{}, nil
}

func (s *stubChannelService) Delete(ctx context.Context, id int) (models.Channel, error) {
	return models.Channel{}, nil
}

func (s *stubChannelService) UpdateUnreadCount(ctx context.Context, id, count int) (models.Channel, error) {
	return s.updateUnreadCount(ctx, id, count)
}
