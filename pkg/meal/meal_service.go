package meal

import (
	"context"
	"daily-diet-api/domain"
	"daily-diet-api/entities"
	"daily-diet-api/pkg/analytics"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	MealService interface {
		CreateMeal(ctx context.Context, req domain.MealRequest, userID string) (*domain.MealResponse, error)
		GetMeals(ctx context.Context, userID string) ([]*domain.MealResponse, error)
		GetMeal(ctx context.Context, mealID string, userID string) (*domain.MealResponse, error)
		UpdateMeal(ctx context.Context, mealID string, req domain.MealRequest, userID string) error
		DeleteMeal(ctx context.Context, mealID string, userID string) error
		GetSummary(ctx context.Context, userID string) (*domain.MealSummaryResponse, error)
		GetBestDaySequence(ctx context.Context, day time.Time, userID string) (*domain.BestDaySequenceResponse, error)
	}

	mealService struct {
		mealRepository MealRepository
		matchDay       analytics.DayMatcher
	}
)

func NewMealService(mealRepository MealRepository, matchDay analytics.DayMatcher) MealService {
	if matchDay == nil {
		matchDay = analytics.SameDayOfMonth
	}
	return &mealService{
		mealRepository: mealRepository,
		matchDay:       matchDay,
	}
}

func (s *mealService) CreateMeal(ctx context.Context, req domain.MealRequest, userID string) (*domain.MealResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	meal := &entities.Meal{
		ID:          uuid.New(),
		UserID:      userUUID,
		Name:        req.Name,
		Description: req.Description,
		IsOnDiet:    req.IsOnDiet != nil && *req.IsOnDiet,
	}
	meal.CreatedAt = time.Now()
	meal.UpdatedAt = meal.CreatedAt

	if err := s.mealRepository.CreateMeal(ctx, meal); err != nil {
		log.Errorf("create meal for user %s: %v", userID, err)
		return nil, fmt.Errorf("create meal: %w", err)
	}

	res := toMealResponse(meal)
	return &res, nil
}

func (s *mealService) GetMeals(ctx context.Context, userID string) ([]*domain.MealResponse, error) {
	meals, err := s.mealRepository.GetMealsByUser(ctx, userID)
	if err != nil {
		log.Errorf("list meals for user %s: %v", userID, err)
		return nil, err
	}

	result := make([]*domain.MealResponse, 0, len(meals))
	for i := range meals {
		res := toMealResponse(&meals[i])
		result = append(result, &res)
	}
	return result, nil
}

func (s *mealService) GetMeal(ctx context.Context, mealID string, userID string) (*domain.MealResponse, error) {
	if _, err := uuid.Parse(mealID); err != nil {
		return nil, domain.ErrInvalidMealID
	}

	meal, err := s.mealRepository.GetMealByID(ctx, mealID, userID)
	if err != nil {
		return nil, err
	}

	res := toMealResponse(meal)
	return &res, nil
}

func (s *mealService) UpdateMeal(ctx context.Context, mealID string, req domain.MealRequest, userID string) error {
	id, err := uuid.Parse(mealID)
	if err != nil {
		return domain.ErrInvalidMealID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.mealRepository.UpdateMeal(ctx, &entities.Meal{
		ID:          id,
		UserID:      userUUID,
		Name:        req.Name,
		Description: req.Description,
		IsOnDiet:    req.IsOnDiet != nil && *req.IsOnDiet,
	})
}

func (s *mealService) DeleteMeal(ctx context.Context, mealID string, userID string) error {
	if _, err := uuid.Parse(mealID); err != nil {
		return domain.ErrInvalidMealID
	}
	return s.mealRepository.DeleteMeal(ctx, mealID, userID)
}

func (s *mealService) GetSummary(ctx context.Context, userID string) (*domain.MealSummaryResponse, error) {
	meals, err := s.mealRepository.GetMealsByUser(ctx, userID)
	if err != nil {
		log.Errorf("summary for user %s: %v", userID, err)
		return nil, err
	}

	summary := analytics.Summarize(meals)
	return &domain.MealSummaryResponse{
		TotalRegisteredMeals: summary.Total,
		TotalMealsWithinDiet: summary.OnDiet,
		TotalMealsOffDiet:    summary.OffDiet,
	}, nil
}

// GetBestDaySequence keeps the repository order (oldest first) when handing the
// day's meals to the streak calculation.
func (s *mealService) GetBestDaySequence(ctx context.Context, day time.Time, userID string) (*domain.BestDaySequenceResponse, error) {
	meals, err := s.mealRepository.GetMealsByUser(ctx, userID)
	if err != nil {
		log.Errorf("best day sequence for user %s: %v", userID, err)
		return nil, err
	}

	dayMeals := analytics.SelectDay(meals, day, s.matchDay)
	return &domain.BestDaySequenceResponse{
		Date:            day.Format("2006-01-02"),
		BestDaySequence: analytics.LongestOnDietStreak(dayMeals),
	}, nil
}

func toMealResponse(m *entities.Meal) domain.MealResponse {
	return domain.MealResponse{
		ID:          m.ID.String(),
		UserID:      m.UserID.String(),
		Name:        m.Name,
		Description: m.Description,
		IsOnDiet:    m.IsOnDiet,
		CreatedAt:   m.CreatedAt,
	}
}
