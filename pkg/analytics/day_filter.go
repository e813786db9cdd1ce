// Package analytics holds the pure computations behind the meal summary and
// best day sequence endpoints. Nothing here touches storage or transport.
package analytics

import (
	"daily-diet-api/domain"
	"daily-diet-api/entities"
	"time"
)

// DayMatcher reports whether a meal created at createdAt belongs to the day
// represented by target.
type DayMatcher func(createdAt, target time.Time) bool

// SameDayOfMonth compares only the day-of-month number, so the 25th of April
// and the 25th of May match. Both instants are read in target's location.
func SameDayOfMonth(createdAt, target time.Time) bool {
	return createdAt.In(target.Location()).Day() == target.Day()
}

// SameCalendarDate requires year, month and day to be equal.
func SameCalendarDate(createdAt, target time.Time) bool {
	cy, cm, cd := createdAt.In(target.Location()).Date()
	ty, tm, td := target.Date()
	return cy == ty && cm == tm && cd == td
}

// MatcherFor maps a DAY_MATCH config value to its matcher. Unknown values fall
// back to SameDayOfMonth.
func MatcherFor(mode string) DayMatcher {
	if mode == domain.DayMatchCalendarDay {
		return SameCalendarDate
	}
	return SameDayOfMonth
}

// SelectDay returns the meals that match target, keeping their relative order.
// A nil match uses SameDayOfMonth.
func SelectDay(meals []entities.Meal, target time.Time, match DayMatcher) []entities.Meal {
	if match == nil {
		match = SameDayOfMonth
	}

	selected := make([]entities.Meal, 0, len(meals))
	for _, meal := range meals {
		if match(meal.CreatedAt, target) {
			selected = append(selected, meal)
		}
	}
	return selected
}
