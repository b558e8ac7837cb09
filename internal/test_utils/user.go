package test_utils

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/homeplanner/homeplanner/pkg/user"
)

// TestUser is the fixture user shared by repository and handler tests.
var TestUser = user.User{
	Uid:         "11111111-1111-1111-1111-111111111111",
	Username:    "test_user",
	DisplayName: "Test User",
	Settings: user.Settings{
		Timezone:     "Europe/Warsaw",
		WeekFirstDay: time.Monday,
	},
}

// InsertTestUser stores the fixture user and returns its uid.
func InsertTestUser(t *testing.T, db *sql.DB) string {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO users (uid, username, display_name, timezone, week_first_day,
			google_calendar_id, meal_calendar_id, google_task_list_id)
		VALUES ($1, $2, $3, $4, $5, '', '', '')`,
		TestUser.Uid, TestUser.Username, TestUser.DisplayName,
		TestUser.Settings.Timezone, int(TestUser.Settings.WeekFirstDay),
	)
	if err != nil {
		t.Fatalf("Failed to insert test user: %v", err)
	}
	return TestUser.Uid
}

// ContextWithTestUser puts the fixture user into the context the way the
// HTTP middleware does.
func ContextWithTestUser(ctx context.Context) context.Context {
	return user.WithUser(ctx, TestUser)
}
