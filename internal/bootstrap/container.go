package bootstrap

import (
	"rag-chat-storage/internal/config"
	"rag-chat-storage/internal/controller"
	"rag-chat-storage/internal/pkg/logger"
	"rag-chat-storage/internal/pkg/ratelimit"
	"rag-chat-storage/internal/repository/unitofwork"
	"rag-chat-storage/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatSessionController controller.IChatSessionController
	ChatMessageController controller.IChatMessageController

	// Shared infrastructure
	Logger         logger.ILogger
	LimiterStorage fiber.Storage
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Rate limiter storage (optional Redis, in-memory otherwise)
	var limiterStorage fiber.Storage
	if cfg.App.RedisURL != "" {
		storage, err := ratelimit.NewRedisStorage(cfg.App.RedisURL)
		if err != nil {
			sysLogger.Warn("bootstrap", "Redis unavailable, limiter falls back to in-memory storage", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			limiterStorage = storage
		}
	}

	// 3. Services
	chatSessionService := service.NewChatSessionService(uowFactory, sysLogger)
	chatMessageService := service.NewChatMessageService(uowFactory, sysLogger)

	// 4. Controllers
	return &Container{
		ChatSessionController: controller.NewChatSessionController(chatSessionService),
		ChatMessageController: controller.NewChatMessageController(chatMessageService),
		Logger:                sysLogger,
		LimiterStorage:        limiterStorage,
	}
}
