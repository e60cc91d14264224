package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"public-chat-app/config/common"
	"public-chat-app/config/logger"
	"public-chat-app/handler"
	"public-chat-app/middleware"
	"public-chat-app/presence"
	"public-chat-app/repository"
	"public-chat-app/routes"
	"public-chat-app/security"
	"public-chat-app/usecase"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	AppLog *logger.AppLogger
	*DBConfig
	*security.JWT
	*middleware.Middleware
	Presence *presence.Tracker
}

func RunServer() {
	newConfig := common.NewViper()
	app := NewFiber(newConfig)
	appLog := logger.NewLogger()
	log := NewLog()
	newDB := NewDB(newConfig, appLog)
	newValidator := NewValidator()
	newJWT := security.NewJWT(newConfig)
	tracker := presence.NewTracker(newConfig.GetPresenceWindow())
	newMiddleware := middleware.NewMiddleware(newConfig, newJWT, tracker, log)

	app.Use(cors.New(cors.Config{
		AllowOrigins: newConfig.GetCorsOrigins(),
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	App(&AppConfig{
		App:        app,
		Validate:   newValidator,
		Logger:     log,
		AppLog:     appLog,
		DBConfig:   newDB,
		JWT:        newJWT,
		Middleware: newMiddleware,
		Presence:   tracker,
	})

	if err := app.Listen(":" + newConfig.GetServerPort()); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

func App(aC *AppConfig) {
	newUserRepository := repository.NewUserRepository()
	newMessageRepository := repository.NewMessageRepository()
	newThemeRepository := repository.NewThemeRepository()

	newAuthUsecase := usecase.NewAuthUsecase(newUserRepository, aC.Validate, aC.GetDB(), aC.Logger, aC.JWT)
	newMessageUsecase := usecase.NewMessageUsecase(newMessageRepository, newUserRepository, aC.Validate, aC.GetDB(), aC.Logger)
	newThemeUsecase := usecase.NewThemeUsecase(newThemeRepository, aC.GetDB(), aC.Logger)
	newUserUsecase := usecase.NewUserUsecase(newUserRepository, aC.GetDB(), aC.AppLog, aC.Presence)

	newEventHandler := handler.NewEventHandler(aC.AppLog)
	newAuthHandler := handler.NewAuthHandler(newAuthUsecase, aC.Logger)
	newMessageHandler := handler.NewMessageHandler(newMessageUsecase, newEventHandler, aC.Logger)
	newThemeHandler := handler.NewThemeHandler(newThemeUsecase, aC.Logger)
	newUserHandler := handler.NewUserHandler(newUserUsecase, aC.Logger)
	newPickerHandler := handler.NewPickerHandler(aC.Logger)

	route := routes.ConfigRoute{
		App:            aC.App,
		Middleware:     aC.Middleware,
		AuthHandler:    newAuthHandler,
		MessageHandler: newMessageHandler,
		ThemeHandler:   newThemeHandler,
		UserHandler:    newUserHandler,
		PickerHandler:  newPickerHandler,
	}
	route.GetRoute()
	route.GetWebSocketRoute(newEventHandler)
}
