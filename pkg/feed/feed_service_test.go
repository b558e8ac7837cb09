package feed

import (
	"context"
	"testing"

	"github.com/homeplanner/homeplanner/internal/test_utils"
	"github.com/homeplanner/homeplanner/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedService_CreateAssignsUid(t *testing.T) {
	service := NewFeedService(NewFeedRepoStub())
	ctx := test_utils.ContextWithTestUser(context.Background())

	created, err := service.Create(ctx, Feed{Name: "School calendar", URL: "https://school.example.com/cal.ics"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.UID)

	feeds, err := service.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, feeds, 1)
	assert.Equal(t, "School calendar", feeds[0].Name)
}

func TestFeedService_CreateValidation(t *testing.T) {
	service := NewFeedService(NewFeedRepoStub())
	ctx := test_utils.ContextWithTestUser(context.Background())

	_, err := service.Create(ctx, Feed{URL: "https://school.example.com/cal.ics"})
	assert.Error(t, err, "name is required")

	_, err = service.Create(ctx, Feed{Name: "Bad scheme", URL: "ftp://school.example.com/cal.ics"})
	assert.Error(t, err)

	_, err = service.Create(ctx, Feed{Name: "No host", URL: "https://"})
	assert.Error(t, err)
}

func TestFeedService_UpdateValidatesAndReportsMissing(t *testing.T) {
	service := NewFeedService(NewFeedRepoStub())
	ctx := test_utils.ContextWithTestUser(context.Background())

	created, err := service.Create(ctx, Feed{Name: "School calendar", URL: "https://school.example.com/cal.ics"})
	require.NoError(t, err)

	_, err = service.Update(ctx, Feed{UID: created.UID, Name: "", URL: created.URL})
	assert.Error(t, err)

	ok, err := service.Update(ctx, Feed{UID: created.UID, Name: "Renamed", URL: created.URL})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = service.Update(ctx, Feed{UID: "missing", Name: "Renamed", URL: created.URL})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFeedService_ScopedToCurrentUser(t *testing.T) {
	service := NewFeedService(NewFeedRepoStub())
	annaCtx := test_utils.ContextWithTestUser(context.Background())
	bartCtx := user.WithUser(context.Background(), user.User{Uid: "22222222-2222-2222-2222-222222222222", Username: "bart"})

	created, err := service.Create(annaCtx, Feed{Name: "School calendar", URL: "https://school.example.com/cal.ics"})
	require.NoError(t, err)

	feeds, err := service.GetAll(bartCtx)
	require.NoError(t, err)
	assert.Empty(t, feeds)

	ok, err := service.Delete(bartCtx, created.UID)
	require.NoError(t, err)
	assert.False(t, ok, "deleting another user's feed is a no-op")
}

func TestFeedService_RequiresUserInContext(t *testing.T) {
	service := NewFeedService(NewFeedRepoStub())

	_, err := service.GetAll(context.Background())
	assert.ErrorIs(t, err, user.ErrNoUser)
}
