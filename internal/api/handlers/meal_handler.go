package handlers

import (
	"daily-diet-api/domain"
	"daily-diet-api/internal/api/presenters"
	"daily-diet-api/pkg/meal"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealHandler interface {
		CreateMeal(c *fiber.Ctx) error
		GetMeals(c *fiber.Ctx) error
		GetMealDetails(c *fiber.Ctx) error
		UpdateMeal(c *fiber.Ctx) error
		DeleteMeal(c *fiber.Ctx) error
		GetSummary(c *fiber.Ctx) error
		GetBestDaySequence(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
		validator   *validator.Validate
		location    *time.Location
	}
)

// NewMealHandler builds the meal handlers. Dates in the best day sequence path
// are interpreted in location.
func NewMealHandler(mealService meal.MealService, validator *validator.Validate, location *time.Location) MealHandler {
	if location == nil {
		location = time.UTC
	}
	return &mealHandler{
		mealService: mealService,
		validator:   validator,
		location:    location,
	}
}

func (h *mealHandler) CreateMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.MealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMeal, err)
	}

	res, err := h.mealService.CreateMeal(c.Context(), *req, userID)
	if err != nil {
		return mealErrorResponse(c, domain.MessageFailedCreateMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMeal)
}

func (h *mealHandler) GetMeals(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	meals, err := h.mealService.GetMeals(c.Context(), userID)
	if err != nil {
		return mealErrorResponse(c, domain.MessageFailedGetMeals, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"meals": meals}, fiber.StatusOK, domain.MessageSuccessGetMeals)
}

func (h *mealHandler) GetMealDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	mealID := c.Params("mealId")

	res, err := h.mealService.GetMeal(c.Context(), mealID, userID)
	if err != nil {
		return mealErrorResponse(c, domain.MessageFailedGetMeal, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"meal": res}, fiber.StatusOK, domain.MessageSuccessGetMeal)
}

func (h *mealHandler) UpdateMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	mealID := c.Params("mealId")
	req := new(domain.MealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMeal, err)
	}

	if err := h.mealService.UpdateMeal(c.Context(), mealID, *req, userID); err != nil {
		return mealErrorResponse(c, domain.MessageFailedUpdateMeal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateMeal)
}

func (h *mealHandler) DeleteMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	mealID := c.Params("mealId")

	if err := h.mealService.DeleteMeal(c.Context(), mealID, userID); err != nil {
		return mealErrorResponse(c, domain.MessageFailedDeleteMeal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMeal)
}

func (h *mealHandler) GetSummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	summary, err := h.mealService.GetSummary(c.Context(), userID)
	if err != nil {
		return mealErrorResponse(c, domain.MessageFailedGetSummary, err)
	}

	return presenters.SuccessResponse(c, summary, fiber.StatusOK, domain.MessageSuccessGetSummary)
}

func (h *mealHandler) GetBestDaySequence(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	day, err := parseDay(c.Params("date"), h.location)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBestSequence, err)
	}

	res, err := h.mealService.GetBestDaySequence(c.Context(), day, userID)
	if err != nil {
		return mealErrorResponse(c, domain.MessageFailedGetBestSequence, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBestSequence)
}

// parseDay accepts YYYY-MM-DD, read as midnight in loc, or a full RFC3339
// timestamp, converted into loc.
func parseDay(raw string, loc *time.Location) (time.Time, error) {
	if day, err := time.ParseInLocation(time.DateOnly, raw, loc); err == nil {
		return day, nil
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts.In(loc), nil
	}
	return time.Time{}, domain.ErrInvalidDate
}

func mealErrorResponse(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrMealNotFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, message, err)
	case errors.Is(err, domain.ErrInvalidMealID), errors.Is(err, domain.ErrParseUUID):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	default:
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, message, nil)
	}
}
