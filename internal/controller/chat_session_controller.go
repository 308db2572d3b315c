package controller

import (
	"rag-chat-storage/internal/dto"
	"rag-chat-storage/internal/pkg/apperror"
	"rag-chat-storage/internal/pkg/serverutils"
	"rag-chat-storage/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatSessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type chatSessionController struct {
	service service.IChatSessionService
}

func NewChatSessionController(service service.IChatSessionService) IChatSessionController {
	return &chatSessionController{service: service}
}

func (c *chatSessionController) RegisterRoutes(r fiber.Router) {
	r.Post("/sessions", c.Create)
	r.Get("/sessions/:id", c.Show)
	r.Put("/sessions/:id", c.Update)
	r.Delete("/sessions/:id", c.Delete)
}

func (c *chatSessionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateChatSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewBadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatSessionController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Show(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatSessionController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateChatSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewBadRequest("Invalid request body")
	}

	res, err := c.service.Update(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatSessionController) Delete(ctx *fiber.Ctx) error {
	if err := c.service.Delete(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"message": "Chat session deleted successfully"})
}
