package models

import "time"

// Channel visibility types.
const (
	ChannelPublic  = "public"
	ChannelPrivate = "private"
)

// Channel represents a named conversation stream.
type Channel struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	UnreadCount int       `json:"unread_count"`
	LastMessage time.Time `json:"last_message"`
}

// Clone returns an independent copy of the channel.
func (c Channel) Clone() Channel {
	return c
}

// Reaction groups the users who applied one emoji to a message.
// The user list preserves insertion order and never contains duplicates;
// an entry with no users is pruned from the message entirely.
type Reaction struct {
	Emoji string `json:"emoji"`
	Users []int  `json:"users"`
}

// Message represents a single chat message. ChannelID is nil for inbox
// messages that are not tied to a channel. Version is an optimistic
// concurrency token bumped on every mutation.
type Message struct {
	ID        int        `json:"id"`
	ChannelID *int       `json:"channel_id,omitempty"`
	UserID    int        `json:"user_id"`
	Content   string     `json:"content"`
	Timestamp time.Time  `json:"timestamp"`
	Edited    bool       `json:"edited"`
	Version   int        `json:"version"`
	Reactions []Reaction `json:"reactions"`
}

// Clone returns a deep copy of the message, including its reaction list.
func (m Message) Clone() Message {
	out := m
	if m.ChannelID != nil {
		id := *m.ChannelID
		out.ChannelID = &id
	}
	out.Reactions = make([]Reaction, len(m.Reactions))
	for i, r := range m.Reactions {
		out.Reactions[i] = Reaction{Emoji: r.Emoji, Users: append([]int(nil), r.Users...)}
	}
	return out
}

// FindReaction returns the index of the reaction entry for the given emoji,
// or -1 if the emoji has not been used on this message.
func (m Message) FindReaction(emoji string) int {
	for i, r := range m.Reactions {
		if r.Emoji == emoji {
			return i
		}
	}
	return -1
}
