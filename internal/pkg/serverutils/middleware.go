package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts unhandled errors into the standard
// error envelope and recovers panics so one bad request cannot take
// the process down.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = ctx.Status(fiber.StatusInternalServerError).
					JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
			}
		}()

		if err := ctx.Next(); err != nil {
			code := fiber.StatusInternalServerError
			message := "Internal server error"
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
				message = fe.Message
			}
			return ctx.Status(code).JSON(ErrorResponse(code, message))
		}
		return nil
	}
}

// SecurityHeadersMiddleware sets the baseline hardening headers on
// every response.
func SecurityHeadersMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Set("X-Content-Type-Options", "nosniff")
		ctx.Set("X-Frame-Options", "DENY")
		ctx.Set("Referrer-Policy", "same-origin")
		ctx.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		return ctx.Next()
	}
}
