package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseInstant(t *testing.T, value string) time.Time {
	t.Helper()
	instant, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return instant
}

func TestMaterialize_OneDayAllDayEvent(t *testing.T) {
	// Upstream all-day ends are exclusive: start 06-01, end 06-02 is a
	// single-day event.
	event := Event{
		Title: "Recycling day",
		Start: DateTime(NewDate(2024, time.June, 1)),
		End:   DateTime(NewDate(2024, time.June, 2)),
	}

	occurrences := Materialize(event, time.UTC)

	require.Len(t, occurrences, 1)
	assert.Equal(t, NewDate(2024, time.June, 1), occurrences[0].Day)
}

func TestMaterialize_MultiDayAllDayEvent(t *testing.T) {
	event := Event{
		Title: "Camping trip",
		Start: DateTime(NewDate(2024, time.June, 1)),
		End:   DateTime(NewDate(2024, time.June, 4)),
	}

	occurrences := Materialize(event, time.UTC)

	require.Len(t, occurrences, 3)
	assert.Equal(t, NewDate(2024, time.June, 1), occurrences[0].Day)
	assert.Equal(t, NewDate(2024, time.June, 2), occurrences[1].Day)
	assert.Equal(t, NewDate(2024, time.June, 3), occurrences[2].Day)
}

func TestMaterialize_AllDayEventWithoutDistinctEnd(t *testing.T) {
	// Normalizer sets end = start when the upstream record has no end; the
	// clamp keeps this a single-day occurrence.
	start := DateTime(NewDate(2024, time.June, 1))
	event := Event{Title: "Flag day", Start: start, End: start}

	occurrences := Materialize(event, time.UTC)

	require.Len(t, occurrences, 1)
	assert.Equal(t, NewDate(2024, time.June, 1), occurrences[0].Day)
}

func TestMaterialize_TimedEventCrossingMidnight(t *testing.T) {
	event := Event{
		Title: "Late movie",
		Start: InstantTime(mustParseInstant(t, "2024-06-01T23:00:00Z")),
		End:   InstantTime(mustParseInstant(t, "2024-06-02T01:00:00Z")),
	}

	occurrences := Materialize(event, time.UTC)

	require.Len(t, occurrences, 2)
	assert.Equal(t, NewDate(2024, time.June, 1), occurrences[0].Day)
	assert.Equal(t, NewDate(2024, time.June, 2), occurrences[1].Day)
}

func TestMaterialize_TimedEventWithoutEnd(t *testing.T) {
	start := InstantTime(mustParseInstant(t, "2024-06-01T23:00:00Z"))
	event := Event{Title: "Reminder", Start: start, End: start}

	occurrences := Materialize(event, time.UTC)

	require.Len(t, occurrences, 1)
	assert.Equal(t, NewDate(2024, time.June, 1), occurrences[0].Day)
}

func TestMaterialize_EndBeforeStartClampsToOneDay(t *testing.T) {
	event := Event{
		Title: "Corrupted range",
		Start: InstantTime(mustParseInstant(t, "2024-06-05T10:00:00Z")),
		End:   InstantTime(mustParseInstant(t, "2024-06-01T10:00:00Z")),
	}

	occurrences := Materialize(event, time.UTC)

	require.Len(t, occurrences, 1)
	assert.Equal(t, NewDate(2024, time.June, 5), occurrences[0].Day)
}

func TestMaterialize_TimedEventUsesViewTimezone(t *testing.T) {
	warsaw, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)

	// 23:30 UTC is already the next day in Warsaw (UTC+2 in June).
	event := Event{
		Title: "Night shift handover",
		Start: InstantTime(mustParseInstant(t, "2024-06-01T23:30:00Z")),
		End:   InstantTime(mustParseInstant(t, "2024-06-01T23:45:00Z")),
	}

	utcOccurrences := Materialize(event, time.UTC)
	warsawOccurrences := Materialize(event, warsaw)

	require.Len(t, utcOccurrences, 1)
	require.Len(t, warsawOccurrences, 1)
	assert.Equal(t, NewDate(2024, time.June, 1), utcOccurrences[0].Day)
	assert.Equal(t, NewDate(2024, time.June, 2), warsawOccurrences[0].Day)
}

func TestMaterialize_AllDaySpanningMonthBoundary(t *testing.T) {
	event := Event{
		Title: "Long visit",
		Start: DateTime(NewDate(2024, time.May, 30)),
		End:   DateTime(NewDate(2024, time.June, 2)),
	}

	occurrences := Materialize(event, time.UTC)

	require.Len(t, occurrences, 3)
	assert.Equal(t, NewDate(2024, time.May, 30), occurrences[0].Day)
	assert.Equal(t, NewDate(2024, time.May, 31), occurrences[1].Day)
	assert.Equal(t, NewDate(2024, time.June, 1), occurrences[2].Day)
}

func TestMaterializeWithin_ClipsToWindow(t *testing.T) {
	event := Event{
		Title: "Camping trip",
		Start: DateTime(NewDate(2024, time.June, 1)),
		End:   DateTime(NewDate(2024, time.June, 8)),
	}

	occurrences := MaterializeWithin(event, NewDate(2024, time.June, 3), NewDate(2024, time.June, 5), time.UTC)

	require.Len(t, occurrences, 3)
	assert.Equal(t, NewDate(2024, time.June, 3), occurrences[0].Day)
	assert.Equal(t, NewDate(2024, time.June, 5), occurrences[2].Day)
}
