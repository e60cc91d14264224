package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"public-chat-app/dto/req"
	"public-chat-app/usecase"
)

type AuthHandler struct {
	usecase.AuthUsecase
	*logrus.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{AuthUsecase: authUsecase, Logger: logger}
}

func (handler *AuthHandler) SignUp(ctx *fiber.Ctx) error {
	payload := new(req.SignUpRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	authResponse, err := handler.AuthUsecase.SignUp(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Warn("sign-up failed")
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(authResponse)
}

func (handler *AuthHandler) SignIn(ctx *fiber.Ctx) error {
	payload := new(req.SignInRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	authResponse, err := handler.AuthUsecase.SignIn(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Warn("sign-in failed")
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(authResponse)
}
