package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"public-chat-app/dto/req"
	"public-chat-app/usecase"
)

type MessageHandler struct {
	usecase.MessageUsecase
	Events *EventHandler
	*logrus.Logger
}

func NewMessageHandler(messageUsecase usecase.MessageUsecase, events *EventHandler, logger *logrus.Logger) *MessageHandler {
	return &MessageHandler{MessageUsecase: messageUsecase, Events: events, Logger: logger}
}

func (handler *MessageHandler) ListMessages(ctx *fiber.Ctx) error {
	messages, err := handler.MessageUsecase.ListMessages(ctx.Context())
	if err != nil {
		handler.Logger.WithError(err).Error("failed to list messages")
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(messages)
}

func (handler *MessageHandler) SendMessage(ctx *fiber.Ctx) error {
	payload := new(req.SendMessageRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	senderID := ctx.Locals("user_id").(uint)
	message, err := handler.MessageUsecase.SendMessage(ctx.Context(), senderID, payload)
	if err != nil {
		handler.Logger.WithError(err).Warn("failed to send message")
		return err
	}

	handler.Events.MessageCreated(message)
	return ctx.Status(fiber.StatusCreated).JSON(message)
}

// EditMessage serves both PATCH (content only) and PUT (content plus the
// caller's userId) since clients use either variant.
func (handler *MessageHandler) EditMessage(ctx *fiber.Ctx) error {
	messageID, err := ctx.ParamsInt("id")
	if err != nil || messageID < 1 {
		return fiber.ErrBadRequest
	}

	payload := new(req.UpdateMessageRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	editorID := ctx.Locals("user_id").(uint)
	message, err := handler.MessageUsecase.EditMessage(ctx.Context(), uint(messageID), editorID, payload)
	if err != nil {
		handler.Logger.WithError(err).Warn("failed to edit message")
		return err
	}

	handler.Events.MessageUpdated(message)
	return ctx.Status(fiber.StatusOK).JSON(message)
}

func (handler *MessageHandler) DeleteMessage(ctx *fiber.Ctx) error {
	messageID, err := ctx.ParamsInt("id")
	if err != nil || messageID < 1 {
		return fiber.ErrBadRequest
	}

	// the delete body is optional
	payload := new(req.DeleteMessageRequest)
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(payload); err != nil {
			return fiber.ErrBadRequest
		}
	}

	editorID := ctx.Locals("user_id").(uint)
	if err := handler.MessageUsecase.DeleteMessage(ctx.Context(), uint(messageID), editorID, payload); err != nil {
		handler.Logger.WithError(err).Warn("failed to delete message")
		return err
	}

	handler.Events.MessageDeleted(uint(messageID))
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Message deleted",
	})
}
