package dto

import (
	"time"

	"github.com/nexushq/nexus-chat-api/internal/models"
)

// GroupCreateRequest describes the payload to create a group conversation.
// A zero CreatedBy falls back to the session user at the handler boundary.
// Note the member-count floor lives in the direct-messages controller, not
// here: direct service calls can create smaller groups.
type GroupCreateRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"omitempty,max=500"`
	CreatedBy   int    `json:"created_by" validate:"omitempty,min=1"`
	Members     []int  `json:"members" validate:"required,min=1,dive,min=1"`
}

// GroupPatch enumerates the group fields a partial update may change.
type GroupPatch struct {
	Name        *string `json:"name" validate:"omitempty,max=120"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// GroupResponse is the serialized representation of a group conversation.
type GroupResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   int       `json:"created_by"`
	Members     []int     `json:"members"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewGroupResponse converts a model into a DTO.
func NewGroupResponse(group models.GroupConversation) GroupResponse {
	return GroupResponse{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		CreatedBy:   group.CreatedBy,
		Members:     append([]int(nil), group.Members...),
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
}

// NewGroupResponseSlice converts a slice of models into DTOs.
func NewGroupResponseSlice(groups []models.GroupConversation) []GroupResponse {
	out := make([]GroupResponse, 0, len(groups))
	for _, group := range groups {
		out = append(out, NewGroupResponse(group))
	}
	return out
}
