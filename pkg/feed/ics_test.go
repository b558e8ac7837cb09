package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/homeplanner/homeplanner/pkg/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//test//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:evt-timed\r\n" +
	"SUMMARY:Dentist\r\n" +
	"LOCATION:Clinic\r\n" +
	"DTSTART:20260302T100000Z\r\n" +
	"DTEND:20260302T110000Z\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:evt-allday\r\n" +
	"SUMMARY:Ski trip\r\n" +
	"DTSTART;VALUE=DATE:20260306\r\n" +
	"DTEND;VALUE=DATE:20260309\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:evt-daily\r\n" +
	"SUMMARY:Standup\r\n" +
	"DTSTART:20260301T080000Z\r\n" +
	"DTEND:20260301T083000Z\r\n" +
	"RRULE:FREQ=DAILY;COUNT=5\r\n" +
	"EXDATE:20260303T080000Z\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestParseCalendar(t *testing.T) {
	events, err := parseCalendar(strings.NewReader(fixtureICS))
	require.NoError(t, err)
	require.Len(t, events, 3)

	byUID := make(map[string]parsedEvent)
	for _, ev := range events {
		byUID[ev.UID] = ev
	}

	timed := byUID["evt-timed"]
	assert.False(t, timed.AllDay)
	assert.Equal(t, "Dentist", timed.Summary)
	assert.Equal(t, "Clinic", timed.Location)
	assert.Equal(t, time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC), timed.Start.UTC())

	allDay := byUID["evt-allday"]
	assert.True(t, allDay.AllDay)
	assert.Equal(t, "Ski trip", allDay.Summary)

	daily := byUID["evt-daily"]
	assert.Equal(t, "FREQ=DAILY;COUNT=5", daily.RawRRule)
	require.Len(t, daily.ExDates, 1)
	assert.Equal(t, time.Date(2026, time.March, 3, 8, 0, 0, 0, time.UTC), daily.ExDates[0].UTC())
}

func TestExpandEvents(t *testing.T) {
	events, err := parseCalendar(strings.NewReader(fixtureICS))
	require.NoError(t, err)

	windowStart := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)

	raw := expandEvents(events, "feed-1", windowStart, windowEnd)

	var timed, allDay []schedule.RawEvent
	var standups []schedule.RawEvent
	for _, r := range raw {
		switch {
		case r.ID == "evt-timed":
			timed = append(timed, r)
		case r.ID == "evt-allday":
			allDay = append(allDay, r)
		case strings.HasPrefix(r.ID, "evt-daily/"):
			standups = append(standups, r)
		default:
			t.Fatalf("unexpected raw event id %q", r.ID)
		}
	}

	require.Len(t, timed, 1)
	assert.Equal(t, "2026-03-02T10:00:00Z", timed[0].Start.DateTime)
	assert.Equal(t, "2026-03-02T11:00:00Z", timed[0].End.DateTime)
	assert.Equal(t, "feed-1", timed[0].SourceID)

	require.Len(t, allDay, 1)
	assert.Equal(t, "2026-03-06", allDay[0].Start.Date)
	assert.Equal(t, "2026-03-09", allDay[0].End.Date)
	assert.Empty(t, allDay[0].Start.DateTime)

	// COUNT=5 from Mar 1, minus the EXDATE on Mar 3, clipped to the
	// window leaves Mar 2, 4 and 5.
	require.Len(t, standups, 3)
	var starts []string
	for _, s := range standups {
		starts = append(starts, s.Start.DateTime)
	}
	assert.ElementsMatch(t, []string{
		"2026-03-02T08:00:00Z",
		"2026-03-04T08:00:00Z",
		"2026-03-05T08:00:00Z",
	}, starts)
	for _, s := range standups {
		assert.Equal(t, "Standup", s.Title)
	}
}

func TestExpandEvents_RecurringAllDay(t *testing.T) {
	ics := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//test//test//EN\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:evt-weekly\r\n" +
		"SUMMARY:Recycling day\r\n" +
		"DTSTART;VALUE=DATE:20260302\r\n" +
		"DTEND;VALUE=DATE:20260303\r\n" +
		"RRULE:FREQ=WEEKLY;COUNT=3\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	events, err := parseCalendar(strings.NewReader(ics))
	require.NoError(t, err)

	windowStart := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)

	raw := expandEvents(events, "feed-1", windowStart, windowEnd)
	require.Len(t, raw, 3)

	var dates []string
	for _, r := range raw {
		dates = append(dates, r.Start.Date)
		assert.Empty(t, r.Start.DateTime)
	}
	assert.ElementsMatch(t, []string{"2026-03-02", "2026-03-09", "2026-03-16"}, dates)
	// Single-day exclusive ends.
	assert.Equal(t, "2026-03-03", rawByDate(raw, "2026-03-02").End.Date)
}

func rawByDate(raw []schedule.RawEvent, date string) schedule.RawEvent {
	for _, r := range raw {
		if r.Start.Date == date {
			return r
		}
	}
	return schedule.RawEvent{}
}
