package mealplan

import (
	"context"
	"errors"
	"testing"

	"github.com/homeplanner/homeplanner/pkg/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type providerStub struct {
	buckets map[schedule.Date][]schedule.Event
	err     error
}

func (p providerStub) Schedule(context.Context, schedule.Date, schedule.Date) (map[schedule.Date][]schedule.Event, error) {
	return p.buckets, p.err
}

func TestMealPlan_ExtractsMealsPerDay(t *testing.T) {
	day := schedule.NewDate(2026, 3, 2)
	service := NewService(providerStub{buckets: map[schedule.Date][]schedule.Event{
		day: {
			{ID: "evt-1", Title: "Dinner: Pierogi", Notes: "With fried onions"},
			{ID: "evt-2", Title: "Leftovers"},
		},
	}})

	plan, err := service.MealPlan(context.Background(), day, day)
	require.NoError(t, err)
	require.Len(t, plan, 1)

	meals := plan[day]
	require.Len(t, meals, 2)

	assert.Equal(t, "evt-1", meals[0].EventID)
	assert.Equal(t, SlotDinner, meals[0].Meal.Slot)
	assert.Equal(t, "Pierogi", meals[0].Meal.Name)
	assert.Equal(t, "With fried onions", meals[0].Meal.Description)
	assert.True(t, meals[0].Meal.HasDistinctDescription)

	assert.Equal(t, "evt-2", meals[1].EventID)
	assert.Equal(t, SlotUnlabeled, meals[1].Meal.Slot)
	assert.Equal(t, "Leftovers", meals[1].Meal.Name)
}

func TestMealPlan_KeepsEmptyDays(t *testing.T) {
	day := schedule.NewDate(2026, 3, 2)
	service := NewService(providerStub{buckets: map[schedule.Date][]schedule.Event{
		day: {},
	}})

	plan, err := service.MealPlan(context.Background(), day, day)
	require.NoError(t, err)
	meals, ok := plan[day]
	assert.True(t, ok)
	assert.Empty(t, meals)
}

func TestMealPlan_PropagatesProviderError(t *testing.T) {
	failure := errors.New("upstream down")
	service := NewService(providerStub{err: failure})

	day := schedule.NewDate(2026, 3, 2)
	_, err := service.MealPlan(context.Background(), day, day)
	assert.ErrorIs(t, err, failure)
}
