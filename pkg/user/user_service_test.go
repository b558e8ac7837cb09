package user

import (
	"context"
	"testing"
	"time"

	"github.com/homeplanner/homeplanner/internal/event_bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*ServiceImpl, *RepoStub, *event_bus.EventBus) {
	repo := NewRepoStub()
	bus := event_bus.NewEventBus()
	return NewUserService(repo, bus), repo, bus
}

func TestUserService_CreateAssignsUidAndDefaultTimezone(t *testing.T) {
	service, _, _ := newTestService()

	created, err := service.CreateUser(context.Background(), User{Username: "anna"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.Uid)
	assert.Equal(t, "UTC", created.Settings.Timezone)

	stored, err := service.GetUserByUid(context.Background(), created.Uid)
	require.NoError(t, err)
	assert.Equal(t, "anna", stored.Username)
}

func TestUserService_CreateKeepsExplicitTimezone(t *testing.T) {
	service, _, _ := newTestService()

	created, err := service.CreateUser(context.Background(), User{
		Username: "anna",
		Settings: Settings{Timezone: "Europe/Warsaw", WeekFirstDay: time.Monday},
	})
	require.NoError(t, err)
	assert.Equal(t, "Europe/Warsaw", created.Settings.Timezone)
}

func TestUserService_CreateRequiresUsername(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.CreateUser(context.Background(), User{})
	assert.Error(t, err)
}

func TestUserService_IsUsernameAvailable(t *testing.T) {
	service, _, _ := newTestService()

	available, err := service.IsUsernameAvailable(context.Background(), "anna")
	require.NoError(t, err)
	assert.True(t, available)

	_, err = service.CreateUser(context.Background(), User{Username: "anna"})
	require.NoError(t, err)

	available, err = service.IsUsernameAvailable(context.Background(), "anna")
	require.NoError(t, err)
	assert.False(t, available)
}

func TestUserService_UpdateUsesContextUser(t *testing.T) {
	service, _, _ := newTestService()

	created, err := service.CreateUser(context.Background(), User{Username: "anna"})
	require.NoError(t, err)
	ctx := WithUser(context.Background(), created)

	updated, err := service.UpdateUser(ctx, User{
		Uid:         "some-other-uid",
		DisplayName: "Anna",
		Settings:    created.Settings,
	})
	require.NoError(t, err)
	assert.Equal(t, created.Uid, updated.Uid, "update targets the context user")
	assert.Equal(t, "Anna", updated.DisplayName)
}

func TestUserService_GetCurrentUserRequiresContext(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.GetCurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrNoUser)
}

func TestUserService_DeleteUserPublishesDeletion(t *testing.T) {
	service, repo, bus := newTestService()

	created, err := service.CreateUser(context.Background(), User{Username: "anna"})
	require.NoError(t, err)

	var deletedUids []string
	event_bus.SubscribeTyped(bus, event_bus.UserDeleted,
		func(_ context.Context, data event_bus.UserDeletedData) error {
			deletedUids = append(deletedUids, data.Uid)
			return nil
		})

	require.NoError(t, service.DeleteUser(context.Background(), created.Uid))

	assert.Equal(t, []string{created.Uid}, deletedUids)
	_, err = repo.GetUserByUid(context.Background(), created.Uid)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
