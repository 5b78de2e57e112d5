package controller

import (
	"strconv"

	"memory-vault-be/internal/pkg/serverutils"
	"memory-vault-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const adminKeyHeader = "X-Admin-Key"

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Me(ctx *fiber.Ctx) error
	Activities(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type adminController struct {
	service  service.IAdminService
	activity service.IActivityService
}

func NewAdminController(svc service.IAdminService, activity service.IActivityService) IAdminController {
	return &adminController{service: svc, activity: activity}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin", serverutils.JwtMiddleware)
	h.Get("/me", c.Me)
	h.Get("/activities", c.verifyAccess, c.Activities)
	h.Get("/stats", c.verifyAccess, c.Stats)
}

func (c *adminController) verifyAccess(ctx *fiber.Ctx) error {
	email := serverutils.LocalString(ctx, "email")
	if svcErr := c.service.VerifyAccess(email, ctx.Get(adminKeyHeader)); svcErr != nil {
		return ctx.Status(svcErr.Code).JSON(serverutils.ErrorResponse(svcErr.Code, svcErr.Message))
	}
	return ctx.Next()
}

func (c *adminController) Me(ctx *fiber.Ctx) error {
	email := serverutils.LocalString(ctx, "email")
	return ctx.JSON(serverutils.SuccessResponse("Admin status", c.service.Me(email)))
}

func (c *adminController) Activities(ctx *fiber.Ctx) error {
	limit, err := strconv.Atoi(ctx.Query("limit", "100"))
	if err != nil {
		limit = 100
	}

	res, svcErr := c.service.Activities(ctx.Context(), limit)
	if svcErr != nil {
		return respondError(ctx, svcErr)
	}

	c.activity.Record("admin_activities_view", activityContext(ctx), map[string]interface{}{
		"limit": limit,
	})

	return ctx.JSON(serverutils.SuccessResponse("Admin activities", res))
}

func (c *adminController) Stats(ctx *fiber.Ctx) error {
	res, err := c.service.Stats(ctx.Context())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Admin stats", res))
}
