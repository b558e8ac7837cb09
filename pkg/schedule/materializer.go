package schedule

import (
	"time"
)

// Materialize expands one event into an Occurrence per calendar day it is
// visible on, in ascending day order, inclusive of both endpoints.
//
// All-day ends are exclusive by upstream convention (a one-day event ends on
// the following date), so one day is subtracted from a date-typed end. Timed
// events bucket by the calendar day of their start and end instants in the
// given view location. An end before the start clamps to a single day
// instead of dropping the event.
func Materialize(event Event, loc *time.Location) []Occurrence {
	startDay, endDay := eventDaySpan(event, loc)

	if endDay.Before(startDay) {
		endDay = startDay
	}

	var occurrences []Occurrence
	for day := startDay; !day.After(endDay); day = day.AddDays(1) {
		occurrences = append(occurrences, Occurrence{Day: day, Event: event})
	}
	return occurrences
}

// MaterializeWithin behaves like Materialize but keeps only days inside the
// inclusive [from, to] window.
func MaterializeWithin(event Event, from, to Date, loc *time.Location) []Occurrence {
	all := Materialize(event, loc)
	occurrences := make([]Occurrence, 0, len(all))
	for _, occ := range all {
		if occ.Day.Before(from) || occ.Day.After(to) {
			continue
		}
		occurrences = append(occurrences, occ)
	}
	return occurrences
}

func eventDaySpan(event Event, loc *time.Location) (Date, Date) {
	if event.Start.Kind == KindDate {
		startDay := event.Start.Date
		// The exclusive end date names the day after the last visible day.
		endDay := event.End.Date.AddDays(-1)
		return startDay, endDay
	}
	startDay := DateOf(event.Start.Instant.In(loc))
	endDay := DateOf(event.End.Instant.In(loc))
	return startDay, endDay
}
