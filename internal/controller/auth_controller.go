package controller

import (
	"memory-vault-be/internal/dto"
	"memory-vault-be/internal/pkg/serverutils"
	"memory-vault-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Signup(ctx *fiber.Ctx) error
	Signin(ctx *fiber.Ctx) error
}

type authController struct {
	service  service.IAuthService
	activity service.IActivityService
}

func NewAuthController(svc service.IAuthService, activity service.IActivityService) IAuthController {
	return &authController{service: svc, activity: activity}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/signup", c.Signup)
	h.Post("/signin", c.Signin)
}

func (c *authController) Signup(ctx *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}

	res, err := c.service.Signup(ctx.Context(), &req)
	if err != nil {
		return respondError(ctx, err)
	}

	actx := activityContext(ctx)
	actx.Email = res.User.Email
	actx.UserId = res.User.Id
	c.activity.Record("auth_signup", actx, map[string]interface{}{
		"createdUserEmail": res.User.Email,
	})

	return ctx.JSON(serverutils.SuccessResponse("Signup successful", res))
}

func (c *authController) Signin(ctx *fiber.Ctx) error {
	var req dto.SigninRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}

	res, err := c.service.Signin(ctx.Context(), &req, ctx.IP())
	if err != nil {
		return respondError(ctx, err)
	}

	actx := activityContext(ctx)
	actx.Email = res.User.Email
	actx.UserId = res.User.Id
	c.activity.Record("auth_signin", actx, nil)

	return ctx.JSON(serverutils.SuccessResponse("Signin successful", res))
}
