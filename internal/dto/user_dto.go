package dto

import "github.com/nexushq/nexus-chat-api/internal/models"

// UserCreateRequest describes the payload to create a user.
type UserCreateRequest struct {
	Name   string `json:"name" validate:"required,max=120"`
	Email  string `json:"email" validate:"required,email,max=254"`
	Avatar string `json:"avatar" validate:"omitempty,max=254"`
	Status string `json:"status" validate:"omitempty,oneof=online away busy offline"`
}

// UserPatch enumerates the user fields a partial update may change. The
// identifier is deliberately absent: it is immutable, and unknown fields are
// rejected at the decoding boundary.
type UserPatch struct {
	Name   *string `json:"name" validate:"omitempty,max=120"`
	Email  *string `json:"email" validate:"omitempty,email,max=254"`
	Avatar *string `json:"avatar" validate:"omitempty,max=254"`
	Status *string `json:"status" validate:"omitempty,oneof=online away busy offline"`
}

// UserStatusRequest carries a bare presence status change.
type UserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=online away busy offline"`
}

// UserResponse is the serialized representation of a user.
type UserResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	Status string `json:"status"`
}

// NewUserResponse converts a model into a DTO.
func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.Avatar,
		Status: user.Status,
	}
}

// NewUserResponseSlice converts a slice of models into DTOs.
func NewUserResponseSlice(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, NewUserResponse(user))
	}
	return out
}
