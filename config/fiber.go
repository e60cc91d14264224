package config

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"public-chat-app/config/common"
	"public-chat-app/dto/res"
	"public-chat-app/exception"
)

func NewFiber(cfg *common.Config) *fiber.App {
	appName := cfg.GetAppConfig()
	return fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: false,
		AppName:       appName,
		ErrorHandler:  errorHandler,
	})
}

// errorHandler maps the error taxonomy onto status codes; every body
// carries a human-readable message shown to the user verbatim.
func errorHandler(ctx *fiber.Ctx, err error) error {
	var validationErr *exception.ValidationError
	if errors.As(err, &validationErr) {
		return ctx.Status(fiber.StatusBadRequest).JSON(res.ErrorResponse{
			Message: validationErr.Message,
			Errors:  validationErr.Fields,
		})
	}

	var authErr *exception.AuthError
	if errors.As(err, &authErr) {
		return ctx.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{Message: authErr.Message})
	}

	var forbiddenErr *exception.ForbiddenError
	if errors.As(err, &forbiddenErr) {
		return ctx.Status(fiber.StatusForbidden).JSON(res.ErrorResponse{Message: forbiddenErr.Message})
	}

	var notFoundErr *exception.NotFoundError
	if errors.As(err, &notFoundErr) {
		return ctx.Status(fiber.StatusNotFound).JSON(res.ErrorResponse{Message: notFoundErr.Message})
	}

	var conflictErr *exception.ConflictError
	if errors.As(err, &conflictErr) {
		return ctx.Status(fiber.StatusConflict).JSON(res.ErrorResponse{Message: conflictErr.Message})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(res.ErrorResponse{Message: fiberErr.Message})
	}

	return ctx.Status(fiber.StatusInternalServerError).JSON(res.ErrorResponse{
		Message: "Internal server error",
	})
}
