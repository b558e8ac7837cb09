package google

import (
	"context"
	"errors"

	"github.com/homeplanner/homeplanner/pkg/schedule"
	"github.com/homeplanner/homeplanner/pkg/user"
	log "github.com/sirupsen/logrus"
)

// CalendarPicker selects which of the user's configured calendars a source
// reads from. The main schedule and the meal plan read different calendars
// but share all the fetch machinery.
type CalendarPicker func(settings user.Settings) string

// ScheduleCalendar picks the calendar shown on the main schedule.
func ScheduleCalendar(settings user.Settings) string {
	return settings.GoogleCalendarId
}

// MealCalendar picks the calendar the meal plan is derived from.
func MealCalendar(settings user.Settings) string {
	return settings.MealCalendarId
}

// CalendarSource feeds Google Calendar events into the schedule pipeline.
// A user who has not configured a calendar or not completed the OAuth dance
// simply contributes no events.
type CalendarSource struct {
	service Service
	name    string
	picker  CalendarPicker
}

func NewCalendarSource(service Service, name string, picker CalendarPicker) *CalendarSource {
	return &CalendarSource{service: service, name: name, picker: picker}
}

func (s *CalendarSource) Name() string {
	return s.name
}

func (s *CalendarSource) RawEvents(ctx context.Context, from, to schedule.Date) ([]schedule.RawEvent, error) {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	calendarId := s.picker(currentUser.Settings)
	if calendarId == "" {
		return nil, nil
	}

	loc := currentUser.Settings.Location()
	raw, err := s.service.Events(ctx, calendarId, from.Midnight(loc), to.AddDays(1).Midnight(loc))
	if errors.Is(err, ErrUnauthenticated) {
		log.Debugf("skipping %s: user %s has no Google credentials", s.name, currentUser.Uid)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// TasksSource feeds Google Tasks with due dates into the schedule pipeline
// as all-day events.
type TasksSource struct {
	service Service
}

func NewTasksSource(service Service) *TasksSource {
	return &TasksSource{service: service}
}

func (s *TasksSource) Name() string {
	return "google-tasks"
}

func (s *TasksSource) RawEvents(ctx context.Context, from, to schedule.Date) ([]schedule.RawEvent, error) {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	taskListId := currentUser.Settings.GoogleTaskListId
	if taskListId == "" {
		return nil, nil
	}

	loc := currentUser.Settings.Location()
	raw, err := s.service.TaskEvents(ctx, taskListId, from.Midnight(loc), to.AddDays(1).Midnight(loc))
	if errors.Is(err, ErrUnauthenticated) {
		log.Debugf("skipping google-tasks: user %s has no Google credentials", currentUser.Uid)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}
