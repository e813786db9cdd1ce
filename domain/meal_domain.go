package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateMeal      = "meal created successfully"
	MessageSuccessUpdateMeal      = "meal updated successfully"
	MessageSuccessDeleteMeal      = "meal deleted successfully"
	MessageSuccessGetMeals        = "meals retrieved successfully"
	MessageSuccessGetMeal         = "meal retrieved successfully"
	MessageSuccessGetSummary      = "meals summary retrieved successfully"
	MessageSuccessGetBestSequence = "best day sequence retrieved successfully"

	MessageFailedCreateMeal      = "failed to create meal"
	MessageFailedUpdateMeal      = "failed to update meal"
	MessageFailedDeleteMeal      = "failed to delete meal"
	MessageFailedGetMeals        = "failed to retrieve meals"
	MessageFailedGetMeal         = "failed to retrieve meal"
	MessageFailedGetSummary      = "failed to retrieve meals summary"
	MessageFailedGetBestSequence = "failed to retrieve best day sequence"

	ErrMealNotFound  = errors.New("meal not found")
	ErrInvalidMealID = errors.New("invalid meal id")
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
)

const (
	DayMatchDayOfMonth  = "day_of_month"
	DayMatchCalendarDay = "calendar_date"
)

type (
	// MealRequest is shared by create and update. IsOnDiet is a pointer so that
	// a missing flag fails validation instead of defaulting to false.
	MealRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		IsOnDiet    *bool  `json:"is_on_diet" validate:"required"`
	}

	MealResponse struct {
		ID          string    `json:"id"`
		UserID      string    `json:"user_id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		IsOnDiet    bool      `json:"is_on_diet"`
		CreatedAt   time.Time `json:"created_at"`
	}

	MealSummaryResponse struct {
		TotalRegisteredMeals int `json:"total_registered_meals"`
		TotalMealsWithinDiet int `json:"total_meals_within_diet"`
		TotalMealsOffDiet    int `json:"total_meals_off_diet"`
	}

	BestDaySequenceResponse struct {
		Date            string `json:"date"`
		BestDaySequence int    `json:"best_day_sequence"`
	}
)
