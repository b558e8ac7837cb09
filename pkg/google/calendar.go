package google

import (
	"github.com/homeplanner/homeplanner/pkg/schedule"
	"google.golang.org/api/calendar/v3"
)

// googleEventsToRaw reshapes Google Calendar events into the wire form the
// schedule normalizer consumes. Start and end stay as the verbatim date or
// dateTime strings so that normalization decides how to interpret them.
func googleEventsToRaw(calendarId string, items []*calendar.Event) []schedule.RawEvent {
	var raw []schedule.RawEvent
	for _, item := range items {
		if item == nil {
			continue
		}
		event := schedule.RawEvent{
			ID:          item.Id,
			Title:       item.Summary,
			Location:    item.Location,
			Description: item.Description,
			SourceID:    calendarId,
		}
		if item.Start != nil {
			event.Start = schedule.RawTime{
				Date:     item.Start.Date,
				DateTime: item.Start.DateTime,
			}
		}
		if item.End != nil {
			event.End = &schedule.RawTime{
				Date:     item.End.Date,
				DateTime: item.End.DateTime,
			}
		}
		raw = append(raw, event)
	}
	return raw
}
