package analytics

import (
	"daily-diet-api/entities"
)

type Summary struct {
	Total   int
	OnDiet  int
	OffDiet int
}

func Summarize(meals []entities.Meal) Summary {
	var s Summary
	for _, meal := range meals {
		if meal.IsOnDiet {
			s.OnDiet++
		} else {
			s.OffDiet++
		}
	}
	s.Total = s.OnDiet + s.OffDiet
	return s
}
