package google

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/homeplanner/homeplanner/pkg/schedule"
	"github.com/homeplanner/homeplanner/pkg/user"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"
)

var ErrUnauthenticated = fmt.Errorf("user is unauthenticated, authentication is required")

type CalendarItem struct {
	ID      string
	Summary string
}

type TaskListItem struct {
	ID    string
	Title string
}

// Service is the proxy surface over the Google Calendar and Tasks APIs. It
// forwards authenticated requests and reshapes responses; it owns no state.
type Service interface {
	ListCalendars(ctx context.Context) ([]CalendarItem, error)
	Events(ctx context.Context, calendarId string, from, to time.Time) ([]schedule.RawEvent, error)
	ListTaskLists(ctx context.Context) ([]TaskListItem, error)
	TaskEvents(ctx context.Context, taskListId string, from, to time.Time) ([]schedule.RawEvent, error)
}

type ServiceImpl struct {
	auth *GoogleAuth
}

func NewService(auth *GoogleAuth) *ServiceImpl {
	return &ServiceImpl{
		auth: auth,
	}
}

func (s *ServiceImpl) ListCalendars(ctx context.Context) ([]CalendarItem, error) {
	calendarService, err := s.prepareCalendarService(ctx)
	if err != nil {
		return nil, err
	}
	calendars, err := calendarService.CalendarList.List().Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve calendars from Google Calendar: %v", err)
		log.Error(err)
		return nil, err
	}
	var items []CalendarItem
	for _, cal := range calendars.Items {
		items = append(items, CalendarItem{
			ID:      cal.Id,
			Summary: cal.Summary,
		})
	}
	return items, nil
}

func (s *ServiceImpl) Events(ctx context.Context, calendarId string, from, to time.Time) ([]schedule.RawEvent, error) {
	calendarService, err := s.prepareCalendarService(ctx)
	if err != nil {
		return nil, err
	}

	googleEvents, err := calendarService.Events.List(calendarId).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve events from Google Calendar: %v", err)
		log.Error(err)
		return nil, err
	}

	return googleEventsToRaw(calendarId, googleEvents.Items), nil
}

func (s *ServiceImpl) ListTaskLists(ctx context.Context) ([]TaskListItem, error) {
	tasksService, err := s.prepareTasksService(ctx)
	if err != nil {
		return nil, err
	}
	taskLists, err := tasksService.Tasklists.List().Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve task lists from Google Tasks: %v", err)
		log.Error(err)
		return nil, err
	}
	var items []TaskListItem
	for _, list := range taskLists.Items {
		items = append(items, TaskListItem{
			ID:    list.Id,
			Title: list.Title,
		})
	}
	return items, nil
}

func (s *ServiceImpl) TaskEvents(ctx context.Context, taskListId string, from, to time.Time) ([]schedule.RawEvent, error) {
	tasksService, err := s.prepareTasksService(ctx)
	if err != nil {
		return nil, err
	}

	googleTasks, err := tasksService.Tasks.List(taskListId).
		ShowCompleted(false).
		DueMin(from.Format(time.RFC3339)).
		DueMax(to.Format(time.RFC3339)).
		Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve tasks from Google Tasks: %v", err)
		log.Error(err)
		return nil, err
	}

	return googleTasksToRaw(taskListId, googleTasks.Items), nil
}

func (s *ServiceImpl) prepareCalendarService(ctx context.Context) (*calendar.Service, error) {
	client, err := s.prepareClient(ctx)
	if err != nil {
		return nil, err
	}
	service, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		err := fmt.Errorf("unable to create Calendar client: %v", err)
		log.Error(err)
		return nil, err
	}
	return service, nil
}

func (s *ServiceImpl) prepareTasksService(ctx context.Context) (*tasks.Service, error) {
	client, err := s.prepareClient(ctx)
	if err != nil {
		return nil, err
	}
	service, err := tasks.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		err := fmt.Errorf("unable to create Tasks client: %v", err)
		log.Error(err)
		return nil, err
	}
	return service, nil
}

func (s *ServiceImpl) prepareClient(ctx context.Context) (*http.Client, error) {
	userUid, err := user.CurrentUid(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	client, err := s.auth.getClient(ctx, userUid)
	if err != nil {
		err := fmt.Errorf("unable to retrieve Google auth client: %v", err)
		log.Error(err)
		return nil, err
	}
	if client == nil {
		log.Debug("user is unauthenticated, authentication is required")
		return nil, ErrUnauthenticated
	}
	return client, nil
}
