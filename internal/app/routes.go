package app

import (
	"github.com/gorilla/mux"
	"github.com/homeplanner/homeplanner/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Schedule and meal plan
	r.HandleFunc("/api/schedule", deps.ScheduleHandler.GetSchedule).Queries("from", "{from}", "to", "{to}").Methods("GET")
	r.HandleFunc("/api/mealplan", deps.MealPlanHandler.GetMealPlan).Queries("from", "{from}", "to", "{to}").Methods("GET")

	// Notes
	r.HandleFunc("/api/notes", deps.NoteHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/notes", deps.NoteHandler.Create).Methods("POST")
	r.HandleFunc("/api/notes/{noteUid}", deps.NoteHandler.Update).Methods("PUT")
	r.HandleFunc("/api/notes/{noteUid}", deps.NoteHandler.Delete).Methods("DELETE")

	// Tasks
	r.HandleFunc("/api/tasks", deps.TaskHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/tasks", deps.TaskHandler.Create).Methods("POST")
	r.HandleFunc("/api/tasks/{taskUid}", deps.TaskHandler.Update).Methods("PUT")
	r.HandleFunc("/api/tasks/{taskUid}/done", deps.TaskHandler.SetDone).Methods("PUT")
	r.HandleFunc("/api/tasks/{taskUid}", deps.TaskHandler.Delete).Methods("DELETE")

	// Subscriptions
	r.HandleFunc("/api/subscriptions", deps.SubscriptionHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/subscriptions", deps.SubscriptionHandler.Create).Methods("POST")
	r.HandleFunc("/api/subscriptions/totals", deps.SubscriptionHandler.GetMonthlyTotals).Methods("GET")
	r.HandleFunc("/api/subscriptions/{subscriptionUid}", deps.SubscriptionHandler.Update).Methods("PUT")
	r.HandleFunc("/api/subscriptions/{subscriptionUid}", deps.SubscriptionHandler.Delete).Methods("DELETE")

	// Trackers (sports, school, house, car, health)
	r.HandleFunc("/api/tracker/{kind}", deps.TrackerHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/tracker/{kind}", deps.TrackerHandler.Create).Methods("POST")
	r.HandleFunc("/api/tracker/{kind}/{entryUid}", deps.TrackerHandler.Update).Methods("PUT")
	r.HandleFunc("/api/tracker/{kind}/{entryUid}", deps.TrackerHandler.Delete).Methods("DELETE")

	// iCalendar feeds
	r.HandleFunc("/api/feeds", deps.FeedHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/feeds", deps.FeedHandler.Create).Methods("POST")
	r.HandleFunc("/api/feeds/{feedUid}", deps.FeedHandler.Update).Methods("PUT")
	r.HandleFunc("/api/feeds/{feedUid}", deps.FeedHandler.Delete).Methods("DELETE")

	// User management
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user/current", deps.UserHandler.UpdateUser).Methods("PUT")
	r.HandleFunc("/api/user", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/user/name-availability", deps.UserHandler.IsUsernameAvailable).Methods("GET").Queries("username", "{username}")
	r.HandleFunc("/api/user", deps.UserHandler.GetAvailableUsers).Methods("GET")
	r.HandleFunc("/api/user/{userUid}", deps.UserHandler.DeleteUser).Methods("DELETE")

	// Google integration
	r.HandleFunc("/api/integrations/google/auth/login", deps.GoogleAuth.OAuthLogin).Methods("GET")
	r.HandleFunc("/api/integrations/google/auth/logout", deps.GoogleAuth.OAuthLogout).Methods("DELETE")
	r.HandleFunc("/api/integrations/google/auth/callback", deps.GoogleAuth.OAuthCallback).Methods("GET")
	r.HandleFunc("/api/integrations/google/auth", deps.GoogleAuth.IsAuthenticated).Methods("GET")
	r.HandleFunc("/api/integrations/google/calendars", deps.GoogleHandler.ListCalendars).Methods("GET")
	r.HandleFunc("/api/integrations/google/tasklists", deps.GoogleHandler.ListTaskLists).Methods("GET")
}
