package analytics

import (
	"daily-diet-api/entities"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mealsFromFlags(flags ...bool) []entities.Meal {
	base := time.Date(2023, time.April, 25, 8, 0, 0, 0, time.UTC)
	meals := make([]entities.Meal, 0, len(flags))
	for i, onDiet := range flags {
		m := entities.Meal{
			ID:       uuid.New(),
			Name:     "meal",
			IsOnDiet: onDiet,
		}
		m.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		meals = append(meals, m)
	}
	return meals
}

func mealAt(name string, onDiet bool, at time.Time) entities.Meal {
	m := entities.Meal{ID: uuid.New(), Name: name, IsOnDiet: onDiet}
	m.CreatedAt = at
	return m
}

func names(meals []entities.Meal) []string {
	out := make([]string, 0, len(meals))
	for _, m := range meals {
		out = append(out, m.Name)
	}
	return out
}

func TestLongestOnDietStreak(t *testing.T) {
	const on, off = true, false

	tests := []struct {
		name  string
		meals []entities.Meal
		want  int
	}{
		{"empty", nil, 0},
		{"only off diet", mealsFromFlags(off, off), 0},
		{"trailing run is not counted", mealsFromFlags(on, on, on), 0},
		{"single closed run", mealsFromFlags(on, off), 1},
		{"longest closed run in the middle", mealsFromFlags(off, on, on, off, on, on, on, off), 3},
		{"longer trailing run ignored", mealsFromFlags(on, off, on, on, on, off, on, on), 3},
		{"trailing run longer than closed one", mealsFromFlags(on, off, on, on, on, on), 1},
		{"first of equal runs", mealsFromFlags(on, on, off, on, on, off), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LongestOnDietStreak(tt.meals))
		})
	}
}

func TestLongestOnDietStreak_Idempotent(t *testing.T) {
	meals := mealsFromFlags(false, true, true, false, true)
	first := LongestOnDietStreak(meals)
	assert.Equal(t, first, LongestOnDietStreak(meals))
	assert.Equal(t, 2, first)
}

func TestSummarize(t *testing.T) {
	got := Summarize(mealsFromFlags(false, true, false, true))
	assert.Equal(t, Summary{Total: 4, OnDiet: 2, OffDiet: 2}, got)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestSummarize_TotalIsSumOfParts(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		flags := make([]bool, r.Intn(50))
		for j := range flags {
			flags[j] = r.Intn(2) == 1
		}
		meals := mealsFromFlags(flags...)

		s := Summarize(meals)
		require.Equal(t, len(meals), s.Total)
		require.Equal(t, s.Total, s.OnDiet+s.OffDiet)
		require.Equal(t, s, Summarize(meals))
	}
}

func TestSelectDay_DayOfMonth(t *testing.T) {
	meals := []entities.Meal{
		mealAt("breakfast", true, time.Date(2023, time.April, 25, 8, 0, 0, 0, time.UTC)),
		mealAt("snack", false, time.Date(2023, time.April, 26, 10, 0, 0, 0, time.UTC)),
		mealAt("lunch", true, time.Date(2023, time.April, 25, 12, 0, 0, 0, time.UTC)),
		mealAt("next month", false, time.Date(2023, time.May, 25, 19, 0, 0, 0, time.UTC)),
	}
	target := time.Date(2023, time.April, 25, 0, 0, 0, 0, time.UTC)

	got := SelectDay(meals, target, SameDayOfMonth)
	assert.Equal(t, []string{"breakfast", "lunch", "next month"}, names(got))

	got = SelectDay(meals, target, nil)
	assert.Equal(t, []string{"breakfast", "lunch", "next month"}, names(got))
}

func TestSelectDay_CalendarDate(t *testing.T) {
	meals := []entities.Meal{
		mealAt("breakfast", true, time.Date(2023, time.April, 25, 8, 0, 0, 0, time.UTC)),
		mealAt("lunch", true, time.Date(2023, time.April, 25, 12, 0, 0, 0, time.UTC)),
		mealAt("next month", false, time.Date(2023, time.May, 25, 19, 0, 0, 0, time.UTC)),
	}
	target := time.Date(2023, time.April, 25, 0, 0, 0, 0, time.UTC)

	got := SelectDay(meals, target, MatcherFor("calendar_date"))
	assert.Equal(t, []string{"breakfast", "lunch"}, names(got))
}

func TestSelectDay_NoMatches(t *testing.T) {
	meals := mealsFromFlags(true, false)
	target := time.Date(2023, time.April, 3, 0, 0, 0, 0, time.UTC)

	got := SelectDay(meals, target, SameDayOfMonth)
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = SelectDay(nil, target, SameDayOfMonth)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSelectDay_ComparesInTargetLocation(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	// 01:30 UTC on the 26th is still the 25th in UTC-3.
	late := mealAt("late dinner", true, time.Date(2023, time.April, 26, 1, 30, 0, 0, time.UTC))
	target := time.Date(2023, time.April, 25, 0, 0, 0, 0, saoPaulo)

	assert.True(t, SameDayOfMonth(late.CreatedAt, target))
	assert.True(t, SameCalendarDate(late.CreatedAt, target))
	assert.False(t, SameCalendarDate(late.CreatedAt, target.In(time.UTC)))
}

func TestMatcherFor_DefaultsToDayOfMonth(t *testing.T) {
	a := time.Date(2023, time.April, 25, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, time.June, 25, 0, 0, 0, 0, time.UTC)

	assert.True(t, MatcherFor("")(a, b))
	assert.True(t, MatcherFor("day_of_month")(a, b))
	assert.True(t, MatcherFor("bogus")(a, b))
	assert.False(t, MatcherFor("calendar_date")(a, b))
}

func TestBestDaySequence_Pipeline(t *testing.T) {
	day := time.Date(2023, time.April, 25, 0, 0, 0, 0, time.UTC)
	var meals []entities.Meal
	for i, onDiet := range []bool{false, true, true, true, false, true, true} {
		meals = append(meals, mealAt("m", onDiet, day.Add(time.Duration(8+i)*time.Hour)))
	}
	meals = append(meals, mealAt("other day", false, day.AddDate(0, 0, 1)))

	assert.Equal(t, 3, LongestOnDietStreak(SelectDay(meals, day, SameCalendarDate)))
}
