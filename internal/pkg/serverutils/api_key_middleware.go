package serverutils

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// ApiKeyMiddleware guards a route group with the shared-secret header.
func ApiKeyMiddleware(apiKey string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		provided := ctx.Get("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid or missing API key"})
		}
		return ctx.Next()
	}
}
