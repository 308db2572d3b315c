package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id         uuid.UUID
	Name       *string
	UserId     string
	IsFavorite bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
