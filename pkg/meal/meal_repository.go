package meal

import (
	"context"
	"daily-diet-api/domain"
	"daily-diet-api/entities"
	"errors"

	"gorm.io/gorm"
)

type (
	// MealRepository scopes every query to the owning user.
	MealRepository interface {
		CreateMeal(ctx context.Context, meal *entities.Meal) error
		GetMealsByUser(ctx context.Context, userID string) ([]entities.Meal, error)
		GetMealByID(ctx context.Context, id string, userID string) (*entities.Meal, error)
		UpdateMeal(ctx context.Context, meal *entities.Meal) error
		DeleteMeal(ctx context.Context, id string, userID string) error
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) CreateMeal(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

// GetMealsByUser returns the user's meals oldest first.
func (r *mealRepository) GetMealsByUser(ctx context.Context, userID string) ([]entities.Meal, error) {
	var meals []entities.Meal
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *mealRepository) GetMealByID(ctx context.Context, id string, userID string) (*entities.Meal, error) {
	var meal entities.Meal
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// UpdateMeal writes name, description and the diet flag only; created_at and
// user_id are never part of the update.
func (r *mealRepository) UpdateMeal(ctx context.Context, meal *entities.Meal) error {
	res := r.db.WithContext(ctx).Model(&entities.Meal{}).
		Where("id = ? AND user_id = ?", meal.ID, meal.UserID).
		Updates(map[string]interface{}{
			"name":        meal.Name,
			"description": meal.Description,
			"is_on_diet":  meal.IsOnDiet,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrMealNotFound
	}
	return nil
}

func (r *mealRepository) DeleteMeal(ctx context.Context, id string, userID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Meal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrMealNotFound
	}
	return nil
}
