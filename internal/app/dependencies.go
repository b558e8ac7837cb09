package app

import (
	"context"
	"database/sql"
	"errors"

	"github.com/homeplanner/homeplanner/internal/config"
	"github.com/homeplanner/homeplanner/internal/event_bus"
	"github.com/homeplanner/homeplanner/internal/utils"
	"github.com/homeplanner/homeplanner/pkg/feed"
	"github.com/homeplanner/homeplanner/pkg/google"
	"github.com/homeplanner/homeplanner/pkg/mealplan"
	"github.com/homeplanner/homeplanner/pkg/notes"
	"github.com/homeplanner/homeplanner/pkg/schedule"
	"github.com/homeplanner/homeplanner/pkg/subscription"
	"github.com/homeplanner/homeplanner/pkg/tasks"
	"github.com/homeplanner/homeplanner/pkg/tracker"
	"github.com/homeplanner/homeplanner/pkg/user"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus

	UserService user.Service
	UserHandler *user.Handler

	GoogleAuth    *google.GoogleAuth
	GoogleService google.Service
	GoogleHandler *google.Handler

	FeedRepo    feed.FeedRepo
	FeedService feed.FeedService
	FeedHandler *feed.FeedHandler

	ScheduleService *schedule.Service
	ScheduleHandler *schedule.Handler

	MealPlanService *mealplan.Service
	MealPlanHandler *mealplan.Handler

	NoteRepo    notes.NoteRepo
	NoteService notes.NoteService
	NoteHandler *notes.NoteHandler

	TaskRepo    tasks.TaskRepo
	TaskService tasks.TaskService
	TaskHandler *tasks.TaskHandler

	SubscriptionRepo    subscription.SubscriptionRepo
	SubscriptionService subscription.SubscriptionService
	SubscriptionHandler *subscription.SubscriptionHandler

	TrackerRepo    tracker.EntryRepo
	TrackerService tracker.EntryService
	TrackerHandler *tracker.EntryHandler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()

	deps.UserService = user.NewUserService(user.NewUserRepo(db), deps.EventBus)
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.GoogleAuth = google.NewGoogleAuth(db, deps.UserService, cfg)
	deps.GoogleService = google.NewService(deps.GoogleAuth)
	deps.GoogleHandler = google.NewHandler(deps.GoogleService)

	deps.FeedRepo = feed.NewFeedRepo(db)
	deps.FeedService = feed.NewFeedService(deps.FeedRepo)
	deps.FeedHandler = feed.NewFeedHandler(deps.FeedService)

	// The main schedule combines the user's Google calendar, their Google
	// task list and every subscribed iCalendar feed. The meal plan reads
	// only the dedicated meal calendar.
	deps.ScheduleService = schedule.NewService(
		google.NewCalendarSource(deps.GoogleService, "google-calendar", google.ScheduleCalendar),
		google.NewTasksSource(deps.GoogleService),
		feed.NewSource(deps.FeedRepo),
	)
	deps.ScheduleHandler = schedule.NewHandler(deps.ScheduleService)

	mealSchedule := schedule.NewService(
		google.NewCalendarSource(deps.GoogleService, "google-meal-calendar", google.MealCalendar),
	)
	deps.MealPlanService = mealplan.NewService(mealSchedule)
	deps.MealPlanHandler = mealplan.NewHandler(deps.MealPlanService)

	deps.Clock = &utils.SystemClock{}

	deps.NoteRepo = notes.NewNoteRepo(db)
	deps.NoteService = notes.NewNoteService(deps.NoteRepo, deps.Clock)
	deps.NoteHandler = notes.NewNoteHandler(deps.NoteService)

	deps.TaskRepo = tasks.NewTaskRepo(db)
	deps.TaskService = tasks.NewTaskService(deps.TaskRepo)
	deps.TaskHandler = tasks.NewTaskHandler(deps.TaskService)

	deps.SubscriptionRepo = subscription.NewSubscriptionRepo(db)
	deps.SubscriptionService = subscription.NewSubscriptionService(deps.SubscriptionRepo)
	deps.SubscriptionHandler = subscription.NewSubscriptionHandler(deps.SubscriptionService)

	deps.TrackerRepo = tracker.NewEntryRepo(db)
	deps.TrackerService = tracker.NewEntryService(deps.TrackerRepo)
	deps.TrackerHandler = tracker.NewEntryHandler(deps.TrackerService)

	// Deleting a user leaves rows behind in every feature table; the
	// cleanup is driven by the user-deleted event so pkg/user stays
	// unaware of the other features.
	event_bus.SubscribeTyped(deps.EventBus, event_bus.UserDeleted,
		func(ctx context.Context, data event_bus.UserDeletedData) error {
			return errors.Join(
				deps.GoogleAuth.DeleteCredentials(ctx, data.Uid),
				deps.FeedRepo.DeleteAllForUser(ctx, data.Uid),
				deps.NoteRepo.DeleteAllForUser(ctx, data.Uid),
				deps.TaskRepo.DeleteAllForUser(ctx, data.Uid),
				deps.SubscriptionRepo.DeleteAllForUser(ctx, data.Uid),
				deps.TrackerRepo.DeleteAllForUser(ctx, data.Uid),
			)
		})

	return deps
}
