package models

// Presence statuses a user can advertise.
const (
	StatusOnline  = "online"
	StatusAway    = "away"
	StatusBusy    = "busy"
	StatusOffline = "offline"
)

// User represents a workspace member.
type User struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	Status string `json:"status"`
}

// Clone returns an independent copy of the user.
func (u User) Clone() User {
	return u
}
