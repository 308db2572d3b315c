package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Sender    string
	Content   string
	Context   map[string]interface{}
	Timestamp time.Time
}
