package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"public-chat-app/usecase"
)

type UserHandler struct {
	usecase.UserUsecase
	*logrus.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{UserUsecase: userUsecase, Logger: logger}
}

// CountOnlineUsers returns a bare JSON number, which is what the 10s
// polling loop expects.
func (handler *UserHandler) CountOnlineUsers(ctx *fiber.Ctx) error {
	count, err := handler.UserUsecase.CountOnlineUsers(ctx.Context())
	if err != nil {
		handler.Logger.WithError(err).Error("failed to count online users")
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(count)
}
