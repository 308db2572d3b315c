package mapper

import (
	"encoding/json"

	"rag-chat-storage/internal/entity"
	"rag-chat-storage/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	return &entity.ChatSession{
		Id:         s.Id,
		Name:       s.Name,
		UserId:     s.UserId,
		IsFavorite: s.IsFavorite,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	return &model.ChatSession{
		Id:         s.Id,
		Name:       s.Name,
		UserId:     s.UserId,
		IsFavorite: s.IsFavorite,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// Message Mappers

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	var context map[string]interface{}
	if len(msg.Context) > 0 {
		// Context is stored opaquely; an unreadable payload maps to nil rather
		// than failing the whole read.
		_ = json.Unmarshal(msg.Context, &context)
	}

	return &entity.ChatMessage{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		Sender:    msg.Sender,
		Content:   msg.Content,
		Context:   context,
		Timestamp: msg.Timestamp,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}

	var context datatypes.JSON
	if msg.Context != nil {
		if raw, err := json.Marshal(msg.Context); err == nil {
			context = raw
		}
	}

	return &model.ChatMessage{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		Sender:    msg.Sender,
		Content:   msg.Content,
		Context:   context,
		Timestamp: msg.Timestamp,
	}
}
