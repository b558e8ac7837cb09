package feed

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/homeplanner/homeplanner/pkg/schedule"
	log "github.com/sirupsen/logrus"
	"github.com/teambition/rrule-go"
)

// maxOccurrencesPerEvent caps recurrence expansion so a malformed or hostile
// feed cannot blow up a schedule request.
const maxOccurrencesPerEvent = 1000

// parsedEvent is one VEVENT lifted out of the iCalendar component model.
// Recurrence is kept raw and expanded against the requested window.
type parsedEvent struct {
	UID         string
	Summary     string
	Description string
	Location    string
	AllDay      bool
	Start       time.Time
	End         time.Time
	RawRRule    string
	ExDates     []time.Time
}

func parseCalendar(r io.Reader) ([]parsedEvent, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("could not parse calendar: %w", err)
	}

	var events []parsedEvent
	for _, ve := range cal.Events() {
		ev, err := parseVEvent(ve)
		if err != nil {
			log.Warnf("skipping feed event: %v", err)
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseVEvent(ve *ics.VEvent) (parsedEvent, error) {
	var ev parsedEvent

	if p := ve.GetProperty(ics.ComponentPropertyUniqueId); p != nil {
		ev.UID = p.Value
	}
	if p := ve.GetProperty(ics.ComponentPropertySummary); p != nil {
		ev.Summary = p.Value
	}
	if p := ve.GetProperty(ics.ComponentPropertyDescription); p != nil {
		ev.Description = p.Value
	}
	if p := ve.GetProperty(ics.ComponentPropertyLocation); p != nil {
		ev.Location = p.Value
	}

	dtStart := ve.GetProperty(ics.ComponentPropertyDtStart)
	if dtStart == nil || dtStart.Value == "" {
		return ev, fmt.Errorf("event %q has no DTSTART", ev.UID)
	}
	ev.AllDay = isDateValue(dtStart)

	if ev.AllDay {
		start, err := ve.GetAllDayStartAt()
		if err != nil {
			return ev, fmt.Errorf("event %q has unparseable DTSTART: %w", ev.UID, err)
		}
		ev.Start = start
		if end, err := ve.GetAllDayEndAt(); err == nil {
			ev.End = end
		} else {
			// DTEND is exclusive; a missing one means a single day.
			ev.End = start.AddDate(0, 0, 1)
		}
	} else {
		start, err := ve.GetStartAt()
		if err != nil {
			return ev, fmt.Errorf("event %q has unparseable DTSTART: %w", ev.UID, err)
		}
		ev.Start = start
		if end, err := ve.GetEndAt(); err == nil {
			ev.End = end
		} else {
			ev.End = start
		}
	}

	if p := ve.GetProperty(ics.ComponentPropertyRrule); p != nil {
		ev.RawRRule = p.Value
	}
	for _, p := range ve.GetProperties(ics.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if t, err := parseICSTime(part); err == nil {
				ev.ExDates = append(ev.ExDates, t)
			}
		}
	}

	return ev, nil
}

// isDateValue reports whether a DTSTART carries a date without time-of-day,
// either via an explicit VALUE=DATE parameter or a value without a T part.
func isDateValue(p *ics.IANAProperty) bool {
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}

// parseICSTime handles the basic EXDATE forms: UTC, floating and date-only.
func parseICSTime(v string) (time.Time, error) {
	if strings.HasSuffix(v, "Z") {
		return time.Parse("20060102T150405Z", v)
	}
	if strings.Contains(v, "T") {
		return time.Parse("20060102T150405", v)
	}
	return time.Parse("20060102", v)
}

// expandEvents turns parsed VEVENTs into raw events overlapping the window
// [windowStart, windowEnd), expanding recurrence rules along the way. The
// window bounds come from the requested schedule range in the user's
// timezone.
func expandEvents(events []parsedEvent, sourceID string, windowStart, windowEnd time.Time) []schedule.RawEvent {
	var raw []schedule.RawEvent
	for _, ev := range events {
		if ev.RawRRule == "" {
			if overlaps(ev.Start, ev.End, windowStart, windowEnd) {
				raw = append(raw, rawOccurrence(ev, sourceID, ev.Start, ev.End, ""))
			}
			continue
		}
		raw = append(raw, expandRecurring(ev, sourceID, windowStart, windowEnd)...)
	}
	return raw
}

func expandRecurring(ev parsedEvent, sourceID string, windowStart, windowEnd time.Time) []schedule.RawEvent {
	r, err := rrule.StrToRRule(ev.RawRRule)
	if err != nil {
		log.Warnf("skipping event %q with unparseable RRULE %q: %v", ev.UID, ev.RawRRule, err)
		return nil
	}
	r.DTStart(ev.Start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range ev.ExDates {
		set.ExDate(ex.In(ev.Start.Location()))
	}

	duration := ev.End.Sub(ev.Start)
	if duration < 0 {
		duration = 0
	}

	// Start the search one duration early so an occurrence that begins
	// before the window but spills into it is still found.
	occTimes := set.Between(windowStart.Add(-duration).In(ev.Start.Location()), windowEnd.In(ev.Start.Location()), true)
	if len(occTimes) > maxOccurrencesPerEvent {
		log.Warnf("event %q expansion truncated at %d occurrences", ev.UID, maxOccurrencesPerEvent)
		occTimes = occTimes[:maxOccurrencesPerEvent]
	}

	var raw []schedule.RawEvent
	for _, occStart := range occTimes {
		occEnd := occStart.Add(duration)
		if ev.AllDay {
			occStart = time.Date(occStart.Year(), occStart.Month(), occStart.Day(), 0, 0, 0, 0, occStart.Location())
			occEnd = occStart.AddDate(0, 0, daysBetween(ev.Start, ev.End))
		}
		raw = append(raw, rawOccurrence(ev, sourceID, occStart, occEnd, occStart.Format(time.RFC3339)))
	}
	return raw
}

// rawOccurrence shapes one concrete occurrence the way an upstream calendar
// API would report it: date strings for all-day events with an exclusive
// end, RFC3339 strings for timed ones.
func rawOccurrence(ev parsedEvent, sourceID string, start, end time.Time, instanceKey string) schedule.RawEvent {
	id := ev.UID
	if instanceKey != "" {
		id = ev.UID + "/" + instanceKey
	}
	raw := schedule.RawEvent{
		ID:          id,
		Title:       ev.Summary,
		Location:    ev.Location,
		Description: ev.Description,
		SourceID:    sourceID,
	}
	if ev.AllDay {
		raw.Start = schedule.RawTime{Date: start.Format("2006-01-02")}
		if end.After(start) {
			raw.End = &schedule.RawTime{Date: end.Format("2006-01-02")}
		}
		return raw
	}
	raw.Start = schedule.RawTime{DateTime: start.Format(time.RFC3339)}
	if end.After(start) {
		raw.End = &schedule.RawTime{DateTime: end.Format(time.RFC3339)}
	}
	return raw
}

func daysBetween(start, end time.Time) int {
	days := int(end.Sub(start).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days
}

func overlaps(start, end, windowStart, windowEnd time.Time) bool {
	if end.Before(start) {
		end = start
	}
	if start.After(windowEnd) {
		return false
	}
	return !end.Before(windowStart)
}
