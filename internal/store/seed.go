package store

import (
	"time"

	"github.com/nexushq/nexus-chat-api/internal/models"
)

func intPtr(v int) *int { return &v }

// SeedDemo loads the demo workspace dataset. Identifier assignment picks up
// from the highest seeded id in each collection.
func (s *Store) SeedDemo() {
	base := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)

	s.Users.Seed([]models.User{
		{ID: 1, Name: "Alex Rivera", Email: "alex@nexus.chat", Avatar: "alex.png", Status: models.StatusOnline},
		{ID: 2, Name: "Sam Chen", Email: "sam@nexus.chat", Avatar: "sam.png", Status: models.StatusAway},
		{ID: 3, Name: "Jordan Lee", Email: "jordan@nexus.chat", Status: models.StatusBusy},
		{ID: 4, Name: "Riley Patel", Email: "riley@nexus.chat", Status: models.StatusOffline},
		{ID: 5, Name: "Casey Kim", Email: "casey@nexus.chat", Status: models.StatusOnline},
		{ID: 6, Name: "Morgan Diaz", Email: "morgan@nexus.chat", Status: models.StatusOnline},
	})

	s.Channels.Seed([]models.Channel{
		{ID: 1, Name: "general", Type: models.ChannelPublic, UnreadCount: 0, LastMessage: base.Add(26 * time.Hour)},
		{ID: 2, Name: "dev-team", Type: models.ChannelPublic, UnreadCount: 3, LastMessage: base.Add(27 * time.Hour)},
		{ID: 3, Name: "design", Type: models.ChannelPrivate, UnreadCount: 0, LastMessage: base.Add(20 * time.Hour)},
	})

	s.Messages.Seed([]models.Message{
		{
			ID: 1, ChannelID: intPtr(1), UserID: 2, Version: 1,
			Content:   "Welcome to the general channel!",
			Timestamp: base.Add(1 * time.Hour),
			Reactions: []models.Reaction{{Emoji: "👍", Users: []int{1, 3}}},
		},
		{
			ID: 2, ChannelID: intPtr(2), UserID: 1, Version: 1,
			Content:   "The build is green again.",
			Timestamp: base.Add(2 * time.Hour),
			Reactions: []models.Reaction{{Emoji: "🎉", Users: []int{2}}},
		},
		{
			ID: 3, ChannelID: intPtr(2), UserID: 3, Version: 1,
			Content:   "Nice, deploying to staging now.",
			Timestamp: base.Add(3 * time.Hour),
			Reactions: []models.Reaction{},
		},
		{
			ID: 4, UserID: 5, Version: 1,
			Content:   "Reminder: standup moved to 10am.",
			Timestamp: base.Add(4 * time.Hour),
			Reactions: []models.Reaction{},
		},
	})

	s.SeedGroups([]models.GroupConversation{
		{
			ID: 1, Name: "Design Team", Description: "UI/UX design discussions",
			CreatedBy: 1, Members: []int{1, 2, 3, 5},
			CreatedAt: base, UpdatedAt: base,
		},
		{
			ID: 2, Name: "Project Alpha", Description: "Development coordination",
			CreatedBy: 2, Members: []int{1, 2, 4, 6},
			CreatedAt: base.Add(28*time.Hour + 30*time.Minute), UpdatedAt: base.Add(28*time.Hour + 30*time.Minute),
		},
	})
}
