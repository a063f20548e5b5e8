package dto

// ThreadScreenResponse is the reconciled state of a message thread view.
type ThreadScreenResponse struct {
	Phase    string            `json:"phase"`
	Error    string            `json:"error,omitempty"`
	Messages []MessageResponse `json:"messages"`
}

// ChannelsScreenResponse is the reconciled state of the channel sidebar
// plus the selected thread.
type ChannelsScreenResponse struct {
	Phase    string                `json:"phase"`
	Error    string                `json:"error,omitempty"`
	Channels []ChannelResponse     `json:"channels"`
	Thread   *ThreadScreenResponse `json:"thread,omitempty"`
}

// DirectScreenResponse is the reconciled state of the direct-messages
// sidebar.
type DirectScreenResponse struct {
	Phase   string          `json:"phase"`
	Error   string          `json:"error,omitempty"`
	Members []UserResponse  `json:"members"`
	Groups  []GroupResponse `json:"groups"`
}

// SearchScreenResponse is the reconciled state of the search screen.
type SearchScreenResponse struct {
	Phase   string            `json:"phase"`
	Error   string            `json:"error,omitempty"`
	Query   string            `json:"query"`
	Results []MessageResponse `json:"results"`
}

// ProfileScreenResponse is the reconciled state of the profile screen.
type ProfileScreenResponse struct {
	Phase string       `json:"phase"`
	Error string       `json:"error,omitempty"`
	User  UserResponse `json:"user"`
}
