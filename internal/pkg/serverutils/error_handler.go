package serverutils

import (
	"errors"

	"rag-chat-storage/internal/pkg/apperror"
	"rag-chat-storage/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts classified errors into JSON responses.
// Anything unclassified is logged and masked as a generic 500 so store detail
// never reaches the client.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if appErr, ok := apperror.IsAppError(err); ok {
			return ctx.Status(appErr.Status).JSON(fiber.Map{"message": appErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}

		if log != nil {
			log.Error("http", "Unhandled request error", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err.Error(),
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
}
