package controller

import (
	"memory-vault-be/internal/dto"
	"memory-vault-be/internal/pkg/serverutils"
	"memory-vault-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMemoryController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type memoryController struct {
	service  service.IMemoryService
	pins     service.IPinService
	activity service.IActivityService
}

func NewMemoryController(svc service.IMemoryService, pins service.IPinService, activity service.IActivityService) IMemoryController {
	return &memoryController{service: svc, pins: pins, activity: activity}
}

func (c *memoryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/memories", serverutils.JwtMiddleware)
	h.Get("/", c.List)
	h.Post("/", c.Create)
	h.Patch("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *memoryController) unlocked(ctx *fiber.Ctx) bool {
	email := serverutils.LocalString(ctx, "email")
	return c.pins.Unlocked(email, ctx.Get(personalUnlockHeader))
}

func (c *memoryController) List(ctx *fiber.Ctx) error {
	email := serverutils.LocalString(ctx, "email")
	unlocked := c.unlocked(ctx)

	res, err := c.service.List(ctx.Context(), email, unlocked)
	if err != nil {
		return respondError(ctx, err)
	}

	c.activity.Record("memories_list", activityContext(ctx), map[string]interface{}{
		"total":            len(res.Memories),
		"personalUnlocked": unlocked,
	})

	return ctx.JSON(serverutils.SuccessResponse("Memories", res))
}

func (c *memoryController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateMemoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}

	email := serverutils.LocalString(ctx, "email")
	res, err := c.service.Create(ctx.Context(), email, &req, c.unlocked(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	c.activity.Record("memory_create", activityContext(ctx), map[string]interface{}{
		"vault_type":   res.VaultType,
		"is_important": res.IsImportant,
	})

	return ctx.JSON(serverutils.SuccessResponse("Memory created", res))
}

func (c *memoryController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateMemoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}

	email := serverutils.LocalString(ctx, "email")
	res, err := c.service.Update(ctx.Context(), email, ctx.Params("id"), &req, c.unlocked(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	c.activity.Record("memory_update", activityContext(ctx), map[string]interface{}{
		"id":         res.Id,
		"vault_type": res.VaultType,
	})

	return ctx.JSON(serverutils.SuccessResponse("Memory updated", res))
}

func (c *memoryController) Delete(ctx *fiber.Ctx) error {
	email := serverutils.LocalString(ctx, "email")
	removed, err := c.service.Delete(ctx.Context(), email, ctx.Params("id"), c.unlocked(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	c.activity.Record("memory_delete", activityContext(ctx), map[string]interface{}{
		"id":         removed.Id,
		"vault_type": removed.VaultType,
	})

	return ctx.JSON(serverutils.SuccessResponse[any]("Memory deleted", nil))
}
