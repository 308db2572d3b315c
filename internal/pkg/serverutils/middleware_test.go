package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"rag-chat-storage/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bodyJSON(t *testing.T, r io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(r).Decode(&out))
	return out
}

func TestApiKeyMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ApiKeyMiddleware("secret"))
	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})

	t.Run("missing key", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-API-Key", "nope")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("correct key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-API-Key", "secret")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestErrorHandlerClassifiedErrors(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(nil))
	app.Get("/notfound", func(ctx *fiber.Ctx) error {
		return apperror.NewNotFound("Chat session not found")
	})
	app.Get("/bad", func(ctx *fiber.Ctx) error {
		return apperror.NewBadRequest("Invalid session ID")
	})
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return apperror.NewInternal("Failed to retrieve session", errors.New("pq: connection refused"))
	})
	app.Get("/plain", func(ctx *fiber.Ctx) error {
		return errors.New("pq: duplicate key value")
	})

	t.Run("not found", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/notfound", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Chat session not found", bodyJSON(t, resp.Body)["message"])
	})

	t.Run("bad request", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/bad", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid session ID", bodyJSON(t, resp.Body)["message"])
	})

	t.Run("internal hides cause", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		msg := bodyJSON(t, resp.Body)["message"].(string)
		assert.Equal(t, "Failed to retrieve session", msg)
		assert.NotContains(t, msg, "pq:")
	})

	t.Run("unclassified becomes generic 500", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/plain", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		msg := bodyJSON(t, resp.Body)["message"].(string)
		assert.Equal(t, "Internal server error", msg)
	})
}

func TestValidateRequest(t *testing.T) {
	type payload struct {
		UserId string `validate:"required"`
	}

	err := ValidateRequest(payload{})
	appErr, ok := apperror.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, appErr.Status)
	assert.Contains(t, appErr.Message, "userid")

	assert.NoError(t, ValidateRequest(payload{UserId: "u1"}))
}
