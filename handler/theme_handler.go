package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"public-chat-app/dto/req"
	"public-chat-app/usecase"
)

type ThemeHandler struct {
	usecase.ThemeUsecase
	*logrus.Logger
}

func NewThemeHandler(themeUsecase usecase.ThemeUsecase, logger *logrus.Logger) *ThemeHandler {
	return &ThemeHandler{ThemeUsecase: themeUsecase, Logger: logger}
}

func (handler *ThemeHandler) GetActiveTheme(ctx *fiber.Ctx) error {
	theme, err := handler.ThemeUsecase.GetActiveTheme(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(theme)
}

func (handler *ThemeHandler) SetActiveTheme(ctx *fiber.Ctx) error {
	payload := new(req.SetThemeRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}
	if payload.ThemeID == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "themeId is required")
	}

	theme, err := handler.ThemeUsecase.SetActiveTheme(ctx.Context(), payload.ThemeID)
	if err != nil {
		handler.Logger.WithError(err).Warn("failed to set active theme")
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(theme)
}

func (handler *ThemeHandler) ListThemes(ctx *fiber.Ctx) error {
	themes, err := handler.ThemeUsecase.ListThemes(ctx.Context())
	if err != nil {
		handler.Logger.WithError(err).Error("failed to list themes")
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(themes)
}
