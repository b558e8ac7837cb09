package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_TimedEvent(t *testing.T) {
	raw := RawEvent{
		ID:    "abc123",
		Title: "Dentist",
		Start: RawTime{DateTime: "2024-06-01T09:00:00+02:00"},
		End:   &RawTime{DateTime: "2024-06-01T09:30:00+02:00"},
	}

	event, ok := Normalize(raw)

	require.True(t, ok)
	assert.Equal(t, "abc123", event.ID)
	assert.Equal(t, "Dentist", event.Title)
	assert.Equal(t, KindInstant, event.Start.Kind)
	assert.Equal(t, KindInstant, event.End.Kind)
	assert.Equal(t, 30*time.Minute, event.End.Instant.Sub(event.Start.Instant))
}

func TestNormalize_AllDayEvent(t *testing.T) {
	raw := RawEvent{
		ID:    "abc123",
		Title: "School holiday",
		Start: RawTime{Date: "2024-06-01"},
		End:   &RawTime{Date: "2024-06-03"},
	}

	event, ok := Normalize(raw)

	require.True(t, ok)
	assert.Equal(t, KindDate, event.Start.Kind)
	assert.Equal(t, NewDate(2024, time.June, 1), event.Start.Date)
	assert.Equal(t, NewDate(2024, time.June, 3), event.End.Date)
}

func TestNormalize_TitleFallback(t *testing.T) {
	raw := RawEvent{Start: RawTime{Date: "2024-06-01"}}

	event, ok := Normalize(raw)

	require.True(t, ok)
	assert.Equal(t, NoTitlePlaceholder, event.Title)
}

func TestNormalize_IdFallbackIsStable(t *testing.T) {
	raw := RawEvent{
		Title: "Recycling",
		Start: RawTime{Date: "2024-06-01"},
	}

	first, ok := Normalize(raw)
	require.True(t, ok)
	second, ok := Normalize(raw)
	require.True(t, ok)

	assert.NotEmpty(t, first.ID)
	assert.Equal(t, first.ID, second.ID)
}

func TestNormalize_DateTimePreferredOverDate(t *testing.T) {
	raw := RawEvent{
		Title: "Swim practice",
		Start: RawTime{Date: "2024-06-01", DateTime: "2024-06-01T17:00:00Z"},
		End:   &RawTime{Date: "2024-06-02", DateTime: "2024-06-01T18:00:00Z"},
	}

	event, ok := Normalize(raw)

	require.True(t, ok)
	assert.Equal(t, KindInstant, event.Start.Kind)
	assert.Equal(t, KindInstant, event.End.Kind)
}

func TestNormalize_MissingEndDefaultsToStart(t *testing.T) {
	raw := RawEvent{
		Title: "Reminder",
		Start: RawTime{DateTime: "2024-06-01T08:00:00Z"},
	}

	event, ok := Normalize(raw)

	require.True(t, ok)
	assert.Equal(t, event.Start, event.End)
}

func TestNormalize_SkipsUnplaceableRecords(t *testing.T) {
	testCases := []struct {
		name string
		raw  RawEvent
	}{
		{
			name: "no start at all",
			raw:  RawEvent{Title: "Floating note"},
		},
		{
			name: "unparseable start",
			raw:  RawEvent{Title: "Bad", Start: RawTime{DateTime: "not-a-time"}},
		},
		{
			name: "unparseable end",
			raw: RawEvent{
				Title: "Bad",
				Start: RawTime{DateTime: "2024-06-01T08:00:00Z"},
				End:   &RawTime{DateTime: "tomorrow-ish"},
			},
		},
		{
			name: "timed start with date end",
			raw: RawEvent{
				Title: "Mixed",
				Start: RawTime{DateTime: "2024-06-01T08:00:00Z"},
				End:   &RawTime{Date: "2024-06-02"},
			},
		},
		{
			name: "date start with timed end",
			raw: RawEvent{
				Title: "Mixed",
				Start: RawTime{Date: "2024-06-01"},
				End:   &RawTime{DateTime: "2024-06-01T10:00:00Z"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := Normalize(tc.raw)
			assert.False(t, ok)
		})
	}
}

func TestNormalizeAll_SkipsOnlyMalformed(t *testing.T) {
	raws := []RawEvent{
		{Title: "First", Start: RawTime{Date: "2024-06-01"}},
		{Title: "Broken"},
		{Title: "Second", Start: RawTime{DateTime: "2024-06-01T10:00:00Z"}},
	}

	events := NormalizeAll(raws)

	require.Len(t, events, 2)
	assert.Equal(t, "First", events[0].Title)
	assert.Equal(t, "Second", events[1].Title)
}
