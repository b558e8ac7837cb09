package notes

import (
	"context"
	"testing"
	"time"

	"github.com/homeplanner/homeplanner/internal/test_utils"
	"github.com/homeplanner/homeplanner/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteService_CreateStampsTimestamps(t *testing.T) {
	clock := &utils.MockClock{FixedNow: time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)}
	service := NewNoteService(NewNoteRepoStub(), clock)
	ctx := test_utils.ContextWithTestUser(context.Background())

	created, err := service.Create(ctx, Note{Title: "Groceries", Content: "Milk, bread"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.UID)
	assert.Equal(t, clock.FixedNow, created.CreatedAt)
	assert.Equal(t, clock.FixedNow, created.UpdatedAt)
}

func TestNoteService_UpdateRefreshesUpdatedAtOnly(t *testing.T) {
	clock := &utils.MockClock{FixedNow: time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)}
	service := NewNoteService(NewNoteRepoStub(), clock)
	ctx := test_utils.ContextWithTestUser(context.Background())

	created, err := service.Create(ctx, Note{Title: "Groceries", Content: "Milk"})
	require.NoError(t, err)

	clock.SetNow(time.Date(2026, time.March, 3, 18, 30, 0, 0, time.UTC))
	ok, err := service.Update(ctx, Note{UID: created.UID, Title: "Groceries", Content: "Milk, eggs"})
	require.NoError(t, err)
	assert.True(t, ok)

	notes, err := service.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, created.CreatedAt, notes[0].CreatedAt)
	assert.Equal(t, clock.FixedNow, notes[0].UpdatedAt)
	assert.Equal(t, "Milk, eggs", notes[0].Content)
}

func TestNoteService_CreateRequiresTitleOrContent(t *testing.T) {
	service := NewNoteService(NewNoteRepoStub(), &utils.MockClock{})
	ctx := test_utils.ContextWithTestUser(context.Background())

	_, err := service.Create(ctx, Note{})
	assert.Error(t, err)

	_, err = service.Create(ctx, Note{Content: "content only"})
	assert.NoError(t, err)
}
