package mealplan

import (
	"encoding/json"
	"net/http"

	"github.com/homeplanner/homeplanner/pkg/schedule"
)

type MealDTO struct {
	EventID     string `json:"eventId"`
	Slot        string `json:"slot"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type DayDTO struct {
	Date  string    `json:"date"`
	Meals []MealDTO `json:"meals"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetMealPlan(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	from, to, ok := schedule.ParseWindow(w, r)
	if !ok {
		return
	}

	plan, err := h.service.MealPlan(r.Context(), from, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	days := make([]DayDTO, 0, len(plan))
	for _, day := range sortedDays(plan) {
		meals := make([]MealDTO, 0, len(plan[day]))
		for _, planned := range plan[day] {
			dto := MealDTO{
				EventID: planned.EventID,
				Slot:    string(planned.Meal.Slot),
				Name:    planned.Meal.Name,
			}
			// The description is suppressed when it only repeats the name.
			if planned.Meal.HasDistinctDescription {
				dto.Description = planned.Meal.Description
			}
			meals = append(meals, dto)
		}
		days = append(days, DayDTO{Date: day.String(), Meals: meals})
	}

	if err := json.NewEncoder(w).Encode(days); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func sortedDays(plan map[schedule.Date][]PlannedMeal) []schedule.Date {
	buckets := make(map[schedule.Date][]schedule.Event, len(plan))
	for day := range plan {
		buckets[day] = nil
	}
	return schedule.Days(buckets)
}
