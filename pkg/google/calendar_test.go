package google

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/tasks/v1"
)

func TestGoogleEventsToRaw_PreservesWireStrings(t *testing.T) {
	items := []*calendar.Event{
		{
			Id:      "evt-1",
			Summary: "Dentist",
			Start:   &calendar.EventDateTime{DateTime: "2026-03-02T10:00:00+01:00"},
			End:     &calendar.EventDateTime{DateTime: "2026-03-02T11:00:00+01:00"},
		},
		{
			Id:          "evt-2",
			Summary:     "Ski trip",
			Location:    "Zakopane",
			Description: "Bring helmets",
			Start:       &calendar.EventDateTime{Date: "2026-03-06"},
			End:         &calendar.EventDateTime{Date: "2026-03-09"},
		},
	}

	raw := googleEventsToRaw("cal-123", items)

	assert.Len(t, raw, 2)
	assert.Equal(t, "evt-1", raw[0].ID)
	assert.Equal(t, "2026-03-02T10:00:00+01:00", raw[0].Start.DateTime)
	assert.Empty(t, raw[0].Start.Date)
	assert.Equal(t, "2026-03-02T11:00:00+01:00", raw[0].End.DateTime)
	assert.Equal(t, "cal-123", raw[0].SourceID)

	assert.Equal(t, "2026-03-06", raw[1].Start.Date)
	assert.Empty(t, raw[1].Start.DateTime)
	assert.Equal(t, "2026-03-09", raw[1].End.Date)
	assert.Equal(t, "Zakopane", raw[1].Location)
	assert.Equal(t, "Bring helmets", raw[1].Description)
}

func TestGoogleEventsToRaw_MissingStartOrEnd(t *testing.T) {
	items := []*calendar.Event{
		{Id: "no-times", Summary: "Broken"},
		{Id: "no-end", Summary: "Open ended", Start: &calendar.EventDateTime{Date: "2026-03-06"}},
	}

	raw := googleEventsToRaw("cal-123", items)

	assert.Len(t, raw, 2)
	assert.Empty(t, raw[0].Start.Date)
	assert.Empty(t, raw[0].Start.DateTime)
	assert.Nil(t, raw[0].End)
	assert.Equal(t, "2026-03-06", raw[1].Start.Date)
	assert.Nil(t, raw[1].End)
}

func TestGoogleTasksToRaw_DueDateBecomesAllDay(t *testing.T) {
	items := []*tasks.Task{
		{Id: "task-1", Title: "Pay rent", Notes: "transfer before noon", Due: "2026-03-01T00:00:00.000Z"},
		{Id: "task-2", Title: "No due date"},
	}

	raw := googleTasksToRaw("list-1", items)

	assert.Len(t, raw, 1)
	assert.Equal(t, "task-1", raw[0].ID)
	assert.Equal(t, "2026-03-01", raw[0].Start.Date)
	assert.Empty(t, raw[0].Start.DateTime)
	assert.Nil(t, raw[0].End)
	assert.Equal(t, "transfer before noon", raw[0].Description)
	assert.Equal(t, "list-1", raw[0].SourceID)
}
