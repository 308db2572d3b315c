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

const moduleChatSession = "chat_session_service"

type IChatSessionService interface {
	Create(ctx context.Context, req *dto.CreateChatSessionRequest) (*dto.ChatSessionResponse, error)
	Show(ctx context.Context, id string) (*dto.ChatSessionResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateChatSessionRequest) (*dto.ChatSessionResponse, error)
	Delete(ctx context.Context, id string) error
}

type chatSessionService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewChatSessionService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IChatSessionService {
	return &chatSessionService{
		uowFactory: uowFactory,
		log:        log,
	}
}

// parseSessionId is the single identifier-validation point: a string that does
// not parse as a UUID never reaches the store.
func parseSessionId(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperror.NewBadRequest("Invalid session ID")
	}
	return parsed, nil
}

func (s *chatSessionService) Create(ctx context.Context, req *dto.CreateChatSessionRequest) (*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now().UTC()
	session := entity.ChatSession{
		Id:         uuid.New(),
		Name:       req.Name,
		UserId:     req.UserId,
		IsFavorite: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uow.ChatSessionRepository().Create(ctx, &session); err != nil {
		s.log.Error(moduleChatSession, "Failed to create chat session", map[string]interface{}{
			"user_id": req.UserId,
			"error":   err.Error(),
		})
		return nil, apperror.NewInternal("Failed to create session", err)
	}

	return chatSessionToResponse(&session), nil
}

func (s *chatSessionService) Show(ctx context.Context, id string) (*dto.ChatSessionResponse, error) {
	sessionId, err := parseSessionId(id)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		s.log.Error(moduleChatSession, "Failed to retrieve chat session", map[string]interface{}{
			"session_id": id,
			"error":      err.Error(),
		})
		return nil, apperror.NewInternal("Failed to retrieve session", err)
	}
	if session == nil {
		return nil, apperror.NewNotFound("Chat session not found")
	}

	return chatSessionToResponse(session), nil
}

func (s *chatSessionService) Update(ctx context.Context, id string, req *dto.UpdateChatSessionRequest) (*dto.ChatSessionResponse, error) {
	sessionId, err := parseSessionId(id)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		s.log.Error(moduleChatSession, "Failed to begin transaction", map[string]interface{}{"error": err.Error()})
		return nil, apperror.NewInternal("Failed to update session", err)
	}

	repo := uow.ChatSessionRepository()
	session, err := repo.FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		uow.Rollback()
		s.log.Error(moduleChatSession, "Failed to load chat session for update", map[string]interface{}{
			"session_id": id,
			"error":      err.Error(),
		})
		return nil, apperror.NewInternal("Failed to update session", err)
	}
	if session == nil {
		uow.Rollback()
		return nil, apperror.NewNotFound("Chat session not found")
	}

	// Partial update: only fields present in the payload change.
	if req.Name != nil {
		session.Name = req.Name
	}
	if req.IsFavorite != nil {
		session.IsFavorite = *req.IsFavorite
	}
	session.UpdatedAt = time.Now().UTC()

	if err := repo.Save(ctx, session); err != nil {
		uow.Rollback()
		s.log.Error(moduleChatSession, "Failed to update chat session", map[string]interface{}{
			"session_id": id,
			"error":      err.Error(),
		})
		return nil, apperror.NewInternal("Failed to update session", err)
	}

	if err := uow.Commit(); err != nil {
		s.log.Error(moduleChatSession, "Failed to commit chat session update", map[string]interface{}{
			"session_id": id,
			"error":      err.Error(),
		})
		return nil, apperror.NewInternal("Failed to update session", err)
	}

	return chatSessionToResponse(session), nil
}

func (s *chatSessionService) Delete(ctx context.Context, id string) error {
	sessionId, err := parseSessionId(id)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		s.log.Error(moduleChatSession, "Failed to begin transaction", map[string]interface{}{"error": err.Error()})
		return apperror.NewInternal("Failed to delete session", err)
	}

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		uow.Rollback()
		s.log.Error(moduleChatSession, "Failed to load chat session for delete", map[string]interface{}{
			"session_id": id,
			"error":      err.Error(),
		})
		return apperror.NewInternal("Failed to delete session", err)
	}
	if session == nil {
		uow.Rollback()
		return apperror.NewNotFound("Chat session not found")
	}

	// Owned messages go in the same transaction; the schema-level cascade is
	// the backstop for writers outside this path.
	if err := uow.ChatMessageRepository().DeleteBySessionId(ctx, sessionId); err != nil {
		uow.Rollback()
		s.log.Error(moduleChatSession, "Failed to delete session messages", map[string]interface{}{
			"session_id": id,
			"error":      err.Error(),
		})
		return apperror.NewInternal("Failed to delete session", err)
	}

	if err := uow.ChatSessionRepository().Delete(ctx, sessionId); err != nil {
		uow.Rollback()
		s.log.Error(moduleChatSession, "Failed to delete chat session", map[string]interface{}{
			"session_id": id,
			"error":      err.Error(),
		})
		return apperror.NewInternal("Failed to delete session", err)
	}

	if err := uow.Commit(); err != nil {
		s.log.Error(moduleChatSession, "Failed to commit chat session delete", map[string]interface{}{
			"session_id": id,
			"error":      err.Error(),
		})
		return apperror.NewInternal("Failed to delete session", err)
	}

	return nil
}

func chatSessionToResponse(s *entity.ChatSession) *dto.ChatSessionResponse {
	return &dto.ChatSessionResponse{
		Id:         s.Id.String(),
		Name:       s.Name,
		UserId:     s.UserId,
		IsFavorite: s.IsFavorite,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
