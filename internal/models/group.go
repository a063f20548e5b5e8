package models

import "time"

// GroupConversation represents an ad-hoc multi-member conversation that is
// not backed by a channel.
type GroupConversation struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   int       `json:"created_by"`
	Members     []int     `json:"members"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the group, including its member list.
func (g GroupConversation) Clone() GroupConversation {
	out := g
	out.Members = append([]int(nil), g.Members...)
	return out
}

// HasMember reports whether the given user belongs to the group.
func (g GroupConversation) HasMember(userID int) bool {
	for _, id := range g.Members {
		if id == userID {
			return true
		}
	}
	return false
}

// Emoji describes one entry of the quick-reaction catalog.
type Emoji struct {
	Emoji string `json:"emoji"`
	Name  string `json:"name"`
}
