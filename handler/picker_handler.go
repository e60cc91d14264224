package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"public-chat-app/dto/req"
	"public-chat-app/picker"
)

// PickerHandler serves the fixed picker catalogs and the attachment
// pre-flight check; none of these touch the database.
type PickerHandler struct {
	*logrus.Logger
}

func NewPickerHandler(logger *logrus.Logger) *PickerHandler {
	return &PickerHandler{Logger: logger}
}

func (handler *PickerHandler) ListEmojis(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"categories": picker.EmojiCategories,
		"order":      picker.CategoryOrder,
	})
}

func (handler *PickerHandler) SearchGifs(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	return ctx.Status(fiber.StatusOK).JSON(picker.SearchGifs(query))
}

func (handler *PickerHandler) ValidateFile(ctx *fiber.Ctx) error {
	payload := new(req.ValidateFileRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	if err := picker.ValidateFile(payload.Name, payload.Size, payload.Type); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "File is valid",
	})
}
