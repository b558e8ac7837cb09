package schedule

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// NoTitlePlaceholder is substituted when an upstream event has no usable
// title.
const NoTitlePlaceholder = "No Title"

// RawEvent is the loosely-typed upstream representation, shaped after the
// Google Calendar event resource. Both the Google proxy and the ICS feed
// integration emit this type.
type RawEvent struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"summary,omitempty"`
	Start       RawTime  `json:"start"`
	End         *RawTime `json:"end,omitempty"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description,omitempty"`
	SourceID    string   `json:"-"`
}

// RawTime carries either a date or a dateTime, matching the upstream wire
// shape. A dateTime takes precedence when both are present.
type RawTime struct {
	Date     string `json:"date,omitempty"`
	DateTime string `json:"dateTime,omitempty"`
}

func (rt RawTime) isZero() bool {
	return rt.Date == "" && rt.DateTime == ""
}

// Normalize converts one upstream record into a canonical Event. It returns
// ok=false for records that cannot be placed on the calendar: no usable
// start, an unparseable start/end, or a start and end of mixed kinds. Such
// records are logged as data-quality warnings and skipped, never dropped
// fatally.
func Normalize(raw RawEvent) (Event, bool) {
	title := raw.Title
	if title == "" {
		title = NoTitlePlaceholder
	}

	start, ok := parseRawTime(raw.Start)
	if !ok {
		log.Warnf("skipping event %q: no usable start (%+v)", title, raw.Start)
		return Event{}, false
	}

	end := start
	if raw.End != nil && !raw.End.isZero() {
		parsedEnd, ok := parseRawTime(*raw.End)
		if !ok {
			log.Warnf("skipping event %q: unparseable end (%+v)", title, *raw.End)
			return Event{}, false
		}
		if parsedEnd.Kind != start.Kind {
			log.Warnf("skipping event %q: start and end use different representations", title)
			return Event{}, false
		}
		end = parsedEnd
	}

	id := raw.ID
	if id == "" {
		// Stable fallback for upstream sources without ids.
		id = start.sortKey() + "/" + title
	}

	return Event{
		ID:       id,
		Title:    title,
		Start:    start,
		End:      end,
		Location: raw.Location,
		Notes:    raw.Description,
		SourceID: raw.SourceID,
	}, true
}

// NormalizeAll normalizes a list of upstream records, skipping the
// malformed ones and preserving input order.
func NormalizeAll(raws []RawEvent) []Event {
	events := make([]Event, 0, len(raws))
	for _, raw := range raws {
		if event, ok := Normalize(raw); ok {
			events = append(events, event)
		}
	}
	return events
}

func parseRawTime(rt RawTime) (EventTime, bool) {
	if rt.DateTime != "" {
		instant, err := time.Parse(time.RFC3339, rt.DateTime)
		if err != nil {
			return EventTime{}, false
		}
		return InstantTime(instant), true
	}
	if rt.Date != "" {
		date, err := ParseDate(rt.Date)
		if err != nil {
			return EventTime{}, false
		}
		return DateTime(date), true
	}
	return EventTime{}, false
}
