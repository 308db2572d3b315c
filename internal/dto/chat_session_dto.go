package dto

import "time"

type CreateChatSessionRequest struct {
	Name   *string `json:"name"`
	UserId string  `json:"user_id" validate:"required"`
}

type UpdateChatSessionRequest struct {
	Name       *string `json:"name"`
	IsFavorite *bool   `json:"is_favorite"`
}

// ChatSessionResponse carries identifiers in canonical string form only.
type ChatSessionResponse struct {
	Id         string    `json:"id"`
	Name       *string   `json:"name"`
	UserId     string    `json:"user_id"`
	IsFavorite bool      `json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
