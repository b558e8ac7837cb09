package user

import "time"

type User struct {
	Uid         string
	Username    string
	DisplayName string
	Settings    Settings
}

// Settings holds per-user preferences. The Google ids select which upstream
// calendar feeds the schedule and meal plan views, and which task list the
// tasks proxy reads.
type Settings struct {
	Timezone         string
	WeekFirstDay     time.Weekday
	GoogleCalendarId string
	MealCalendarId   string
	GoogleTaskListId string
}

// Location resolves the configured timezone, falling back to UTC when unset
// or unknown to the host timezone database.
func (s Settings) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
