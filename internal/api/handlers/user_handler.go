package handlers

import (
	"daily-diet-api/domain"
	"daily-diet-api/internal/api/presenters"
	"daily-diet-api/pkg/user"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		GetUsers(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
	}

	userHandler struct {
		userService  user.UserService
		validator    *validator.Validate
		cookieTTL    time.Duration
		cookieSecure bool
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate, cookieTTL time.Duration, cookieSecure bool) UserHandler {
	return &userHandler{
		userService:  userService,
		validator:    validator,
		cookieTTL:    cookieTTL,
		cookieSecure: cookieSecure,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterUserRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRegister, nil)
	}

	c.Cookie(&fiber.Cookie{
		Name:     domain.SessionCookieName,
		Value:    res.SessionToken,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return presenters.SuccessResponse(c, res.User, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *userHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetUsers(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetUsers, nil)
	}

	return presenters.SuccessResponse(c, fiber.Map{"users": users}, fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *userHandler) Me(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	me, err := h.userService.GetUserByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetMe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMe, nil)
	}

	return presenters.SuccessResponse(c, me, fiber.StatusOK, domain.MessageSuccessGetMe)
}
