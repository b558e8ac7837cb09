package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/homeplanner/homeplanner/pkg/schedule"
	"github.com/homeplanner/homeplanner/pkg/user"
	log "github.com/sirupsen/logrus"
)

// Source feeds subscribed iCalendar URLs into the schedule pipeline. One
// broken feed only loses its own events; the rest of the user's feeds still
// contribute.
type Source struct {
	repo   FeedRepo
	client *http.Client
}

func NewSource(repo FeedRepo) *Source {
	return &Source{
		repo: repo,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (s *Source) Name() string {
	return "ical-feeds"
}

func (s *Source) RawEvents(ctx context.Context, from, to schedule.Date) ([]schedule.RawEvent, error) {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	feeds, err := s.repo.GetAll(ctx, currentUser.Uid)
	if err != nil {
		return nil, err
	}

	loc := currentUser.Settings.Location()
	windowStart := from.Midnight(loc)
	windowEnd := to.AddDays(1).Midnight(loc)

	var raw []schedule.RawEvent
	for _, f := range feeds {
		events, err := s.fetch(ctx, f)
		if err != nil {
			log.Warnf("skipping feed %q: %v", f.Name, err)
			continue
		}
		raw = append(raw, expandEvents(events, f.UID, windowStart, windowEnd)...)
	}
	return raw, nil
}

func (s *Source) fetch(ctx context.Context, f Feed) ([]parsedEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("could not build request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}
	return parseCalendar(resp.Body)
}
