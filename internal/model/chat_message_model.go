package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatMessage struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Session   *ChatSession   `gorm:"foreignKey:SessionId;constraint:OnDelete:CASCADE"`
	Sender    string         `gorm:"type:text;not null"`
	Content   string         `gorm:"type:text;not null"`
	Context   datatypes.JSON `gorm:"type:jsonb"`
	Timestamp time.Time      `gorm:"autoCreateTime"`
}

func (ChatMessage) TableName() string {
	return "messages"
}
