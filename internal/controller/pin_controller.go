package controller

import (
	"memory-vault-be/internal/dto"
	"memory-vault-be/internal/pkg/serverutils"
	"memory-vault-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPinController interface {
	RegisterRoutes(r fiber.Router)
	Status(ctx *fiber.Ctx) error
	Setup(ctx *fiber.Ctx) error
	Verify(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
	Lock(ctx *fiber.Ctx) error
}

type pinController struct {
	service  service.IPinService
	activity service.IActivityService
}

func NewPinController(svc service.IPinService, activity service.IActivityService) IPinController {
	return &pinController{service: svc, activity: activity}
}

func (c *pinController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/personal/pin", serverutils.JwtMiddleware)
	h.Get("/status", c.Status)
	h.Post("/setup", c.Setup)
	h.Post("/verify", c.Verify)
	h.Post("/reset", c.Reset)
	h.Post("/lock", c.Lock)
}

func (c *pinController) Status(ctx *fiber.Ctx) error {
	email := serverutils.LocalString(ctx, "email")
	res, err := c.service.Status(ctx.Context(), email, ctx.Get(personalUnlockHeader))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Personal vault status", res))
}

func (c *pinController) Setup(ctx *fiber.Ctx) error {
	var req dto.PinSetupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}

	email := serverutils.LocalString(ctx, "email")
	if err := c.service.Setup(ctx.Context(), email, &req); err != nil {
		return respondError(ctx, err)
	}

	c.activity.Record("personal_pin_setup", activityContext(ctx), nil)
	return ctx.JSON(serverutils.SuccessResponse[any]("Personal vault PIN created", nil))
}

func (c *pinController) Verify(ctx *fiber.Ctx) error {
	var req dto.PinVerifyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}

	email := serverutils.LocalString(ctx, "email")
	res, err := c.service.Verify(ctx.Context(), email, &req)
	if err != nil {
		c.activity.Record("personal_pin_verify_failed", activityContext(ctx), nil)
		return respondError(ctx, err)
	}

	c.activity.Record("personal_pin_verified", activityContext(ctx), map[string]interface{}{
		"expiresAt": res.ExpiresAt,
	})
	return ctx.JSON(serverutils.SuccessResponse("Personal vault unlocked", res))
}

func (c *pinController) Reset(ctx *fiber.Ctx) error {
	var req dto.PinResetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}

	email := serverutils.LocalString(ctx, "email")
	res, err := c.service.Reset(ctx.Context(), email, &req)
	if err != nil {
		c.activity.Record("personal_pin_reset_failed", activityContext(ctx), nil)
		return respondError(ctx, err)
	}

	c.activity.Record("personal_pin_reset", activityContext(ctx), map[string]interface{}{
		"expiresAt": res.ExpiresAt,
	})
	return ctx.JSON(serverutils.SuccessResponse("Personal PIN reset successfully", res))
}

func (c *pinController) Lock(ctx *fiber.Ctx) error {
	email := serverutils.LocalString(ctx, "email")
	c.service.Lock(ctx.Context(), email)
	c.activity.Record("personal_pin_lock", activityContext(ctx), nil)
	return ctx.JSON(serverutils.SuccessResponse[any]("Personal vault locked", nil))
}
