package controller

import (
	"memory-vault-be/internal/dto"
	"memory-vault-be/internal/pkg/serverutils"
	"memory-vault-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type assistantController struct {
	service  service.IAssistantService
	activity service.IActivityService
}

func NewAssistantController(svc service.IAssistantService, activity service.IActivityService) IAssistantController {
	return &assistantController{service: svc, activity: activity}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ai", serverutils.JwtMiddleware)
	h.Post("/chat", c.Chat)
}

func (c *assistantController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}

	email := serverutils.LocalString(ctx, "email")
	res, err := c.service.Chat(ctx.Context(), email, &req)
	if err != nil {
		return respondError(ctx, err)
	}

	c.activity.Record("ai_chat", activityContext(ctx), map[string]interface{}{
		"source": res.Source,
	})

	return ctx.JSON(serverutils.SuccessResponse("Assistant response", res))
}
