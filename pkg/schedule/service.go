package schedule

import (
	"context"
	"fmt"

	"github.com/homeplanner/homeplanner/pkg/user"
	log "github.com/sirupsen/logrus"
)

// EventSource supplies upstream events overlapping an inclusive day window.
// Implementations exist for the Google Calendar proxy, the Google Tasks
// proxy and stored iCalendar feeds. A source that is not configured for the
// current user should return an empty list rather than an error.
type EventSource interface {
	Name() string
	RawEvents(ctx context.Context, from, to Date) ([]RawEvent, error)
}

type Service struct {
	sources []EventSource
}

func NewService(sources ...EventSource) *Service {
	return &Service{sources: sources}
}

// Schedule fetches events from every source, normalizes them, expands them
// across the days they touch and groups them into day buckets clipped to the
// inclusive [from, to] window. A failing source is logged and skipped so the
// remaining sources are still served.
func (s *Service) Schedule(ctx context.Context, from, to Date) (map[Date][]Event, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("invalid window: %s is after %s", from, to)
	}

	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	loc := currentUser.Settings.Location()

	var raws []RawEvent
	for _, source := range s.sources {
		sourceRaws, err := source.RawEvents(ctx, from, to)
		if err != nil {
			log.Warnf("event source %s failed, skipping: %v", source.Name(), err)
			continue
		}
		raws = append(raws, sourceRaws...)
	}

	var occurrences []Occurrence
	for _, event := range NormalizeAll(raws) {
		occurrences = append(occurrences, MaterializeWithin(event, from, to, loc)...)
	}

	return Bucket(occurrences), nil
}
