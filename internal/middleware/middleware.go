package middleware

import (
	"daily-diet-api/domain"
	"daily-diet-api/internal/api/presenters"
	"daily-diet-api/pkg/user"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(userService user.UserService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	})
}

// AuthMiddleware resolves the session cookie to a user and stores its id in
// Locals("user_id") for the handlers.
func (m *middleware) AuthMiddleware(userService user.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(domain.SessionCookieName)
		if token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, domain.ErrTokenNotFound)
		}

		userID, err := userService.Authenticate(c.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrTokenExpired),
				errors.Is(err, domain.ErrTokenInvalid),
				errors.Is(err, domain.ErrTokenNotFound),
				errors.Is(err, domain.ErrSessionNotFound):
				return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, err)
			default:
				log.Errorf("authenticate session: %v", err)
				return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, nil)
			}
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
