package mealplan

import (
	"context"
	"fmt"

	"github.com/homeplanner/homeplanner/pkg/schedule"
)

// Service renders the meal plan view: it reuses the schedule pipeline on the
// meal calendar sources and runs the extractor over each bucketed event.
type Service struct {
	provider schedule.Provider
}

func NewService(provider schedule.Provider) *Service {
	return &Service{provider: provider}
}

// PlannedMeal is one meal placed on a day.
type PlannedMeal struct {
	EventID string
	Meal    Meal
}

func (s *Service) MealPlan(ctx context.Context, from, to schedule.Date) (map[schedule.Date][]PlannedMeal, error) {
	buckets, err := s.provider.Schedule(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to build meal schedule: %w", err)
	}

	plan := make(map[schedule.Date][]PlannedMeal, len(buckets))
	for day, events := range buckets {
		meals := make([]PlannedMeal, 0, len(events))
		for _, event := range events {
			meals = append(meals, PlannedMeal{
				EventID: event.ID,
				Meal:    Extract(event.Title, event.Notes),
			})
		}
		plan[day] = meals
	}
	return plan, nil
}
