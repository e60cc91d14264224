package middleware

import (
	"strings"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"public-chat-app/config/common"
	"public-chat-app/dto/res"
	"public-chat-app/presence"
	"public-chat-app/security"
)

type Middleware struct {
	*common.Config
	*security.JWT
	Presence *presence.Tracker
	Log      *logrus.Logger
}

func NewMiddleware(config *common.Config, jwt *security.JWT, tracker *presence.Tracker, logger *logrus.Logger) *Middleware {
	return &Middleware{Config: config, JWT: jwt, Presence: tracker, Log: logger}
}

func (middleware *Middleware) JWTProtected(c *fiber.Ctx) error {
	secretKey := middleware.GetJwtConfig()

	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: secretKey},
		ContextKey: "jwt",
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			middleware.Log.WithError(err).Warn("failed to validate JWT")
			return ctx.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
				Message: "Invalid or missing token",
			})
		},
	})(c)
}

// ExtractUserID resolves the token subject into locals and marks the user
// seen for the online counter.
func (middleware *Middleware) ExtractUserID(c *fiber.Ctx) error {
	auth := c.Get(fiber.HeaderAuthorization)
	token := strings.TrimPrefix(auth, "Bearer ")
	if token == "" || token == auth {
		return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
			Message: "Invalid or missing token",
		})
	}

	userID, err := middleware.JWT.GetUserIdFromToken(token)
	if err != nil {
		middleware.Log.WithError(err).Warn("failed to extract user ID from token")
		return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
			Message: "Invalid or missing token",
		})
	}

	c.Locals("user_id", userID)
	middleware.Presence.Touch(userID)
	return c.Next()
}
