package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/homeplanner/homeplanner/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	name string
	raws []RawEvent
	err  error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) RawEvents(_ context.Context, _, _ Date) ([]RawEvent, error) {
	return s.raws, s.err
}

func contextWithTestUser() context.Context {
	return user.WithUser(context.Background(), user.User{
		Uid:      "test-user",
		Username: "test_user",
		Settings: user.Settings{Timezone: "UTC"},
	})
}

func TestSchedule_CombinesSources(t *testing.T) {
	calendarSource := &stubSource{name: "calendar", raws: []RawEvent{
		{ID: "c1", Title: "Dentist", Start: RawTime{DateTime: "2024-06-01T09:00:00Z"}, End: &RawTime{DateTime: "2024-06-01T10:00:00Z"}},
	}}
	feedSource := &stubSource{name: "feed", raws: []RawEvent{
		{ID: "f1", Title: "Match day", Start: RawTime{Date: "2024-06-01"}, End: &RawTime{Date: "2024-06-02"}},
	}}
	service := NewService(calendarSource, feedSource)

	buckets, err := service.Schedule(contextWithTestUser(), NewDate(2024, time.June, 1), NewDate(2024, time.June, 7))

	require.NoError(t, err)
	require.Len(t, buckets, 1)
	day := buckets[NewDate(2024, time.June, 1)]
	require.Len(t, day, 2)
	assert.Equal(t, "Match day", day[0].Title)
	assert.Equal(t, "Dentist", day[1].Title)
}

func TestSchedule_ClipsToWindow(t *testing.T) {
	source := &stubSource{name: "calendar", raws: []RawEvent{
		{ID: "c1", Title: "Long trip", Start: RawTime{Date: "2024-06-01"}, End: &RawTime{Date: "2024-06-20"}},
	}}
	service := NewService(source)

	buckets, err := service.Schedule(contextWithTestUser(), NewDate(2024, time.June, 3), NewDate(2024, time.June, 5))

	require.NoError(t, err)
	assert.Len(t, buckets, 3)
	assert.Contains(t, buckets, NewDate(2024, time.June, 3))
	assert.Contains(t, buckets, NewDate(2024, time.June, 5))
	assert.NotContains(t, buckets, NewDate(2024, time.June, 2))
	assert.NotContains(t, buckets, NewDate(2024, time.June, 6))
}

func TestSchedule_FailingSourceIsSkipped(t *testing.T) {
	broken := &stubSource{name: "broken", err: errors.New("upstream unavailable")}
	working := &stubSource{name: "calendar", raws: []RawEvent{
		{ID: "c1", Title: "Dentist", Start: RawTime{DateTime: "2024-06-01T09:00:00Z"}},
	}}
	service := NewService(broken, working)

	buckets, err := service.Schedule(contextWithTestUser(), NewDate(2024, time.June, 1), NewDate(2024, time.June, 7))

	require.NoError(t, err)
	require.Len(t, buckets[NewDate(2024, time.June, 1)], 1)
	assert.Equal(t, "Dentist", buckets[NewDate(2024, time.June, 1)][0].Title)
}

func TestSchedule_InvalidWindow(t *testing.T) {
	service := NewService()

	_, err := service.Schedule(contextWithTestUser(), NewDate(2024, time.June, 7), NewDate(2024, time.June, 1))

	assert.Error(t, err)
}

func TestSchedule_RequiresUser(t *testing.T) {
	service := NewService()

	_, err := service.Schedule(context.Background(), NewDate(2024, time.June, 1), NewDate(2024, time.June, 7))

	assert.ErrorIs(t, err, user.ErrNoUser)
}

func TestSchedule_IsIdempotent(t *testing.T) {
	source := &stubSource{name: "calendar", raws: []RawEvent{
		{ID: "c1", Title: "Dentist", Start: RawTime{DateTime: "2024-06-01T09:00:00Z"}, End: &RawTime{DateTime: "2024-06-01T10:00:00Z"}},
		{ID: "c2", Title: "Trip", Start: RawTime{Date: "2024-06-01"}, End: &RawTime{Date: "2024-06-04"}},
		{ID: "c3", Title: "Broken"},
	}}
	service := NewService(source)
	ctx := contextWithTestUser()
	from, to := NewDate(2024, time.June, 1), NewDate(2024, time.June, 7)

	first, err := service.Schedule(ctx, from, to)
	require.NoError(t, err)
	second, err := service.Schedule(ctx, from, to)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
