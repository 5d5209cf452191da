package sqlite_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/burrow/internal/domain/entity"
	"github.com/bnema/burrow/internal/domain/repository"
	"github.com/bnema/burrow/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/burrow/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyTestCtx() context.Context {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel("debug")
	return logging.WithContext(context.Background(), logging.New(cfg))
}

func newHistoryRepo(t *testing.T) (context.Context, repository.HistoryRepository) {
	t.Helper()
	ctx := historyTestCtx()
	dbPath := filepath.Join(t.TempDir(), "data", "history.db")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	return ctx, sqlite.NewHistoryRepository(db)
}

func TestNewConnection_CreatesDirectoryAndSchema(t *testing.T) {
	ctx := historyTestCtx()
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "history.db")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	defer func() { _ = sqlite.Close(db) }()

	_, err = os.Stat(dbPath)
	require.NoError(t, err)

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestNewConnection_ReopenKeepsData(t *testing.T) {
	ctx := historyTestCtx()
	dbPath := filepath.Join(t.TempDir(), "history.db")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, sqlite.NewHistoryRepository(db).Save(ctx, entity.NewHistoryEntry("https://example.com/", "Example")))
	require.NoError(t, sqlite.Close(db))

	db, err = sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	defer func() { _ = sqlite.Close(db) }()

	entry, err := sqlite.NewHistoryRepository(db).FindByURL(ctx, "https://example.com/")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "Example", entry.Title)
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(historyTestCtx(), "")
	require.Error(t, err)
}

func TestHistoryRepository_SaveAndFind(t *testing.T) {
	ctx, repo := newHistoryRepo(t)

	entry := entity.NewHistoryEntry("https://example.com/", "Example")
	require.NoError(t, repo.Save(ctx, entry))
	assert.NotZero(t, entry.ID)

	found, err := repo.FindByURL(ctx, "https://example.com/")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, entry.ID, found.ID)
	assert.Equal(t, "Example", found.Title)
	assert.Equal(t, int64(1), found.VisitCount)
	assert.WithinDuration(t, entry.LastVisited, found.LastVisited, time.Millisecond)
}

func TestHistoryRepository_FindByURLMissing(t *testing.T) {
	ctx, repo := newHistoryRepo(t)

	found, err := repo.FindByURL(ctx, "https://nowhere.example/")

	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestHistoryRepository_SaveUpsertsVisitCount(t *testing.T) {
	ctx, repo := newHistoryRepo(t)

	entry := entity.NewHistoryEntry("https://example.com/", "Example")
	require.NoError(t, repo.Save(ctx, entry))
	firstID := entry.ID

	found, err := repo.FindByURL(ctx, "https://example.com/")
	require.NoError(t, err)
	found.IncrementVisit()
	found.Title = ""
	require.NoError(t, repo.Save(ctx, found))

	again, err := repo.FindByURL(ctx, "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, firstID, again.ID)
	assert.Equal(t, int64(2), again.VisitCount)
	assert.Equal(t, "Example", again.Title, "empty title keeps the stored one")
}

func TestHistoryRepository_UpdateTitle(t *testing.T) {
	ctx, repo := newHistoryRepo(t)
	require.NoError(t, repo.Save(ctx, entity.NewHistoryEntry("https://example.com/", "")))

	require.NoError(t, repo.UpdateTitle(ctx, "https://example.com/", "Example Domain"))
	require.NoError(t, repo.UpdateTitle(ctx, "https://unknown.example/", "Ignored"))

	found, err := repo.FindByURL(ctx, "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, "Example Domain", found.Title)

	missing, err := repo.FindByURL(ctx, "https://unknown.example/")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestHistoryRepository_GetRecentOrdersByLastVisit(t *testing.T) {
	ctx, repo := newHistoryRepo(t)
	base := time.Now().Add(-time.Hour)

	for i, u := range []string{"https://a.example/", "https://b.example/", "https://c.example/"} {
		entry := entity.NewHistoryEntry(u, "")
		entry.LastVisited = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Save(ctx, entry))
	}

	recent, err := repo.GetRecent(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "https://c.example/", recent[0].URL)
	assert.Equal(t, "https://b.example/", recent[1].URL)

	rest, err := repo.GetRecent(ctx, 10, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "https://a.example/", rest[0].URL)
}

func TestHistoryRepository_DeleteAll(t *testing.T) {
	ctx, repo := newHistoryRepo(t)
	require.NoError(t, repo.Save(ctx, entity.NewHistoryEntry("https://a.example/", "A")))
	require.NoError(t, repo.Save(ctx, entity.NewHistoryEntry("https://b.example/", "B")))

	require.NoError(t, repo.DeleteAll(ctx))

	recent, err := repo.GetRecent(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, recent)
}
