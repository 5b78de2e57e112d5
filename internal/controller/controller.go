package controller

import (
	"errors"

	"memory-vault-be/internal/dto"
	"memory-vault-be/internal/pkg/serverutils"
	"memory-vault-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// personalUnlockHeader carries the short-lived vault unlock token.
const personalUnlockHeader = "X-Personal-Unlock-Token"

func respondError(ctx *fiber.Ctx, err error) error {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return ctx.Status(svcErr.Code).JSON(serverutils.ErrorResponse(svcErr.Code, svcErr.Message))
	}
	return ctx.Status(fiber.StatusInternalServerError).
		JSON(serverutils.ErrorResponse(fiber.StatusInternalServerError, err.Error()))
}

func activityContext(ctx *fiber.Ctx) dto.ActivityContext {
	return dto.ActivityContext{
		Email:  serverutils.LocalString(ctx, "email"),
		UserId: serverutils.LocalString(ctx, "user_id"),
		Method: ctx.Method(),
		Path:   ctx.Path(),
		Ip:     ctx.IP(),
	}
}
