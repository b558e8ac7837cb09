package google

import (
	"github.com/homeplanner/homeplanner/pkg/schedule"
	"google.golang.org/api/tasks/v1"
)

// googleTasksToRaw reshapes Google Tasks into all-day raw events on their due
// date. The Tasks API reports due as an RFC3339 timestamp whose time part
// carries no information, so only the date prefix is kept. Tasks without a
// due date cannot be placed on a day and are dropped.
func googleTasksToRaw(taskListId string, items []*tasks.Task) []schedule.RawEvent {
	var raw []schedule.RawEvent
	for _, item := range items {
		if item == nil || len(item.Due) < 10 {
			continue
		}
		raw = append(raw, schedule.RawEvent{
			ID:          item.Id,
			Title:       item.Title,
			Description: item.Notes,
			SourceID:    taskListId,
			Start: schedule.RawTime{
				Date: item.Due[:10],
			},
		})
	}
	return raw
}
