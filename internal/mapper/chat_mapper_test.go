package mapper

import (
	"testing"
	"time"

	"rag-chat-storage/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestChatSessionRoundTrip(t *testing.T) {
	m := NewChatMapper()

	name := "project notes"
	session := &entity.ChatSession{
		Id:         uuid.New(),
		Name:       &name,
		UserId:     "u1",
		IsFavorite: true,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	got := m.ChatSessionToEntity(m.ChatSessionToModel(session))
	assert.Equal(t, session, got)
}

func TestChatSessionNilName(t *testing.T) {
	m := NewChatMapper()

	session := &entity.ChatSession{Id: uuid.New(), UserId: "u1"}
	got := m.ChatSessionToEntity(m.ChatSessionToModel(session))

	assert.Nil(t, got.Name)
	assert.False(t, got.IsFavorite)
}

func TestChatMessageRoundTripWithContext(t *testing.T) {
	m := NewChatMapper()

	message := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: uuid.New(),
		Sender:    "assistant",
		Content:   "hello",
		Context: map[string]interface{}{
			"sources": []interface{}{"doc-1", "doc-2"},
			"nested":  map[string]interface{}{"score": 0.92},
		},
		Timestamp: time.Now().UTC(),
	}

	got := m.ChatMessageToEntity(m.ChatMessageToModel(message))
	assert.Equal(t, message, got)
}

func TestChatMessageNilContext(t *testing.T) {
	m := NewChatMapper()

	message := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: uuid.New(),
		Sender:    "user",
		Content:   "hi",
	}

	model := m.ChatMessageToModel(message)
	assert.Empty(t, model.Context)

	got := m.ChatMessageToEntity(model)
	assert.Nil(t, got.Context)
}

func TestNilMappings(t *testing.T) {
	m := NewChatMapper()

	assert.Nil(t, m.ChatSessionToEntity(nil))
	assert.Nil(t, m.ChatSessionToModel(nil))
	assert.Nil(t, m.ChatMessageToEntity(nil))
	assert.Nil(t, m.ChatMessageToModel(nil))
}
