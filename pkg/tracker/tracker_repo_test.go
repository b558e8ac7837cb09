package tracker

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/homeplanner/homeplanner/internal/test_utils"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

var pgContainer *postgres.PostgresContainer
var openDb func() *sql.DB

func TestMain(m *testing.M) {
	pgContainer, openDb = test_utils.TestWithDB()
	defer func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			log.Errorf("failed to terminate container: %s", err)
		}
	}()
	code := m.Run()
	os.Exit(code)
}

func setupTestRepository(t *testing.T) (context.Context, *EntryRepoImpl, string) {
	ctx := context.Background()
	db := openDb()
	repo := NewEntryRepo(db)
	t.Cleanup(func() {
		db.Close()
		err := pgContainer.Restore(ctx)
		require.NoError(t, err)
	})
	userUid := test_utils.InsertTestUser(t, db)
	return ctx, repo, userUid
}

func TestEntryRepo_StoreAndGetAll(t *testing.T) {
	ctx, repo, userUid := setupTestRepository(t)

	older := Entry{
		UID:     "e1111111-1111-1111-1111-111111111111",
		Kind:    KindSports,
		Title:   "Swimming lesson",
		Date:    time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		Details: "25m pool",
	}
	newer := Entry{
		UID:   "e2222222-2222-2222-2222-222222222222",
		Kind:  KindSports,
		Title: "Football practice",
		Date:  time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
	}
	other := Entry{
		UID:   "e3333333-3333-3333-3333-333333333333",
		Kind:  KindCar,
		Title: "Oil change",
		Date:  time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Store(ctx, userUid, older))
	require.NoError(t, repo.Store(ctx, userUid, newer))
	require.NoError(t, repo.Store(ctx, userUid, other))

	entries, err := repo.GetAll(ctx, userUid, KindSports)
	require.NoError(t, err)
	require.Len(t, entries, 2, "other kinds are filtered out")
	assert.Equal(t, newer, entries[0], "newest entry first")
	assert.Equal(t, older, entries[1])
}

func TestEntryRepo_Update(t *testing.T) {
	ctx, repo, userUid := setupTestRepository(t)

	entry := Entry{
		UID:   "e1111111-1111-1111-1111-111111111111",
		Kind:  KindHealth,
		Title: "Dentist",
		Date:  time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Store(ctx, userUid, entry))

	entry.Title = "Dentist checkup"
	entry.Details = "Dr. Kowalska"
	ok, err := repo.Update(ctx, userUid, entry)
	require.NoError(t, err)
	assert.True(t, ok)

	entries, err := repo.GetAll(ctx, userUid, KindHealth)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])

	ok, err = repo.Update(ctx, userUid, Entry{UID: "missing", Kind: KindHealth, Date: entry.Date})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEntryRepo_DeleteScopedToUser(t *testing.T) {
	ctx, repo, userUid := setupTestRepository(t)

	entry := Entry{
		UID:   "e1111111-1111-1111-1111-111111111111",
		Kind:  KindHouse,
		Title: "Replace furnace filter",
		Date:  time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Store(ctx, userUid, entry))

	ok, err := repo.Delete(ctx, "someone-else", entry.UID)
	require.NoError(t, err)
	assert.False(t, ok, "other users cannot delete the entry")

	ok, err = repo.Delete(ctx, userUid, entry.UID)
	require.NoError(t, err)
	assert.True(t, ok)

	entries, err := repo.GetAll(ctx, userUid, KindHouse)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntryRepo_DeleteAllForUser(t *testing.T) {
	ctx, repo, userUid := setupTestRepository(t)

	require.NoError(t, repo.Store(ctx, userUid, Entry{
		UID:  "e1111111-1111-1111-1111-111111111111",
		Kind: KindSchool,
		Date: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, repo.Store(ctx, userUid, Entry{
		UID:  "e2222222-2222-2222-2222-222222222222",
		Kind: KindSports,
		Date: time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC),
	}))

	require.NoError(t, repo.DeleteAllForUser(ctx, userUid))

	for _, kind := range []Kind{KindSchool, KindSports} {
		entries, err := repo.GetAll(ctx, userUid, kind)
		require.NoError(t, err)
		assert.Empty(t, entries)
	}
}
