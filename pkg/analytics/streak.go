package analytics

import (
	"daily-diet-api/entities"
)

// LongestOnDietStreak returns the longest run of consecutive on-diet meals that
// was closed by an off-diet meal. A run still open when the slice ends is not
// counted, so [on, on, on] yields 0.
func LongestOnDietStreak(meals []entities.Meal) int {
	best, current := 0, 0

	for _, meal := range meals {
		if meal.IsOnDiet {
			current++
			continue
		}
		best = max(best, current)
		current = 0
	}

	return best
}
