package server

import (
	"log"
	"time"

	"rag-chat-storage/internal/bootstrap"
	"rag-chat-storage/internal/config"
	"rag-chat-storage/internal/pkg/apperror"
	"rag-chat-storage/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB, chat payloads are small
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.App.CorsAllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, X-API-Key",
		AllowMethods:  "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Type",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	// Health probe: no auth, no rate limit
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "healthy"})
	})

	registerRoutes(app, cfg, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	// One /chat group so the shared middleware runs exactly once per request,
	// auth first, then the limiter.
	auth := serverutils.ApiKeyMiddleware(cfg.Auth.ApiKey)
	limit := NewRateLimiter(cfg, c.LimiterStorage)
	chat := app.Group("/chat", auth, limit)

	c.ChatSessionController.RegisterRoutes(chat)
	c.ChatMessageController.RegisterRoutes(chat)
}

// NewRateLimiter builds the per-client-IP window limiter shared by every chat
// route. A nil storage falls back to fiber's in-memory counters.
func NewRateLimiter(cfg *config.Config, storage fiber.Storage) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        cfg.RateLimit.Max,
		Expiration: time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
		KeyGenerator: func(ctx *fiber.Ctx) string {
			return ctx.IP()
		},
		Storage: storage,
		LimitReached: func(ctx *fiber.Ctx) error {
			return apperror.NewRateLimited("Rate limit exceeded, try again later")
		},
	})
}
