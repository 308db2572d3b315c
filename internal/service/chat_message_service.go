package service

import (
	"context"
	"time"

	"rag-chat-storage/internal/dto"
	"rag-chat-storage/internal/entity"
	"rag-chat-storage/internal/pkg/apperror"
	"rag-chat-storage/internal/pkg/logger"
	"rag-chat-storage/internal/repository/specification"
	"rag-chat-storage/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const moduleChatMessage = "chat_message_service"

type IChatMessageService interface {
	Create(ctx context.Context, sessionId string, req *dto.CreateChatMessageRequest) (*dto.ChatMessageResponse, error)
	ListBySession(ctx context.Context, sessionId string, page, pageSize int) (*dto.PaginatedChatMessagesResponse, error)
}

type chatMessageService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewChatMessageService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IChatMessageService {
	return &chatMessageService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *chatMessageService) Create(ctx context.Context, sessionId string, req *dto.CreateChatMessageRequest) (*dto.ChatMessageResponse, error) {
	parsedSessionId, err := parseSessionId(sessionId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	message := entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: parsedSessionId,
		Sender:    req.Sender,
		Content:   req.Content,
		Context:   req.Context,
		Timestamp: time.Now().UTC(),
	}

	// No existence pre-check on the session: a missing owner trips the foreign
	// key and surfaces as the generic failure below.
	if err := uow.ChatMessageRepository().Create(ctx, &message); err != nil {
		s.log.Error(moduleChatMessage, "Failed to create chat message", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return nil, apperror.NewInternal("Failed to create message", err)
	}

	return chatMessageToResponse(&message), nil
}

func (s *chatMessageService) ListBySession(ctx context.Context, sessionId string, page, pageSize int) (*dto.PaginatedChatMessagesResponse, error) {
	parsedSessionId, err := parseSessionId(sessionId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ChatMessageRepository()

	total, err := repo.Count(ctx, specification.BySessionID{SessionID: parsedSessionId})
	if err != nil {
		s.log.Error(moduleChatMessage, "Failed to count chat messages", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return nil, apperror.NewInternal("Failed to retrieve messages", err)
	}

	// Creation order with the id tiebreak keeps pages deterministic.
	messages, err := repo.FindAll(ctx,
		specification.BySessionID{SessionID: parsedSessionId},
		specification.OrderBy{Field: "timestamp"},
		specification.OrderBy{Field: "id"},
		specification.Pagination{Limit: pageSize, Offset: (page - 1) * pageSize},
	)
	if err != nil {
		s.log.Error(moduleChatMessage, "Failed to retrieve chat messages", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return nil, apperror.NewInternal("Failed to retrieve messages", err)
	}

	responses := make([]*dto.ChatMessageResponse, len(messages))
	for i, m := range messages {
		responses[i] = chatMessageToResponse(m)
	}

	return &dto.PaginatedChatMessagesResponse{
		Messages: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func chatMessageToResponse(m *entity.ChatMessage) *dto.ChatMessageResponse {
	return &dto.ChatMessageResponse{
		Id:        m.Id.String(),
		SessionId: m.SessionId.String(),
		Sender:    m.Sender,
		Content:   m.Content,
		Context:   m.Context,
		Timestamp: m.Timestamp,
	}
}
