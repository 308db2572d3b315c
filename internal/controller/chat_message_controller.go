package controller

import (
	"rag-chat-storage/internal/dto"
	"rag-chat-storage/internal/pkg/apperror"
	"rag-chat-storage/internal/pkg/serverutils"
	"rag-chat-storage/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

type IChatMessageController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type chatMessageController struct {
	service service.IChatMessageService
}

func NewChatMessageController(service service.IChatMessageService) IChatMessageController {
	return &chatMessageController{service: service}
}

func (c *chatMessageController) RegisterRoutes(r fiber.Router) {
	r.Post("/sessions/:id/messages", c.Create)
	r.Get("/sessions/:id/messages", c.List)
}

func (c *chatMessageController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateChatMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewBadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	// session_id comes from the path, never from the body
	res, err := c.service.Create(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatMessageController) List(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", defaultPage)
	if page < 1 {
		page = defaultPage
	}
	pageSize := ctx.QueryInt("page_size", defaultPageSize)
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	res, err := c.service.ListBySession(ctx.Context(), ctx.Params("id"), page, pageSize)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
