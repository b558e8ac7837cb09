package schedule

import (
	"fmt"
	"time"
)

// Date is a calendar day without time-of-day or timezone. It is the key
// used to group events into day buckets.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates an instant to its calendar day in the instant's location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses a date in "2006-01-02" form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// AddDays returns the date n days later (or earlier for negative n),
// normalized across month and year boundaries.
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// Midnight returns the start of the day in the given location.
func (d Date) Midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

// TimeKind discriminates the two upstream time representations.
type TimeKind int

const (
	// KindDate is an all-day value: a calendar date with no time-of-day.
	KindDate TimeKind = iota
	// KindInstant is a timed value carrying the upstream timezone offset.
	KindInstant
)

// EventTime is a tagged union of a date-only or timed value. Exactly one of
// Date and Instant is meaningful, selected by Kind. The normalizer is the
// only producer, so downstream code can switch on Kind exhaustively.
type EventTime struct {
	Kind    TimeKind
	Date    Date
	Instant time.Time
}

func DateTime(d Date) EventTime {
	return EventTime{Kind: KindDate, Date: d}
}

func InstantTime(t time.Time) EventTime {
	return EventTime{Kind: KindInstant, Instant: t}
}

// sortKey returns an ISO-style string used to order events within a day
// bucket. All-day values key at their date's midnight so mixed buckets have
// a total, stable order; ISO-8601 strings compare correctly byte-wise.
func (et EventTime) sortKey() string {
	if et.Kind == KindDate {
		return et.Date.String() + "T00:00:00"
	}
	return et.Instant.Format("2006-01-02T15:04:05")
}

// Event is the canonical normalized event processed by the pipeline.
// Instances are derived from upstream responses on every fetch and never
// persisted.
type Event struct {
	ID       string
	Title    string
	Start    EventTime
	End      EventTime
	Location string
	Notes    string
	// SourceID identifies the owning calendar, task list or feed. It is
	// display metadata only and never affects materialization.
	SourceID string
}

// Occurrence is one (day, event) pairing; a multi-day event yields one
// Occurrence per day it touches.
type Occurrence struct {
	Day   Date
	Event Event
}
