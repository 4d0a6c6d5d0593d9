package sqlite_test

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbtile/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_OpensOnFirstAccess(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "lazy.db"))
	assert.False(t, lazy.IsInitialized())

	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	require.NotNil(t, db)
	assert.True(t, lazy.IsInitialized())

	again, err := lazy.DB(ctx)
	require.NoError(t, err)
	assert.Same(t, db, again)

	require.NoError(t, lazy.Close())
}

func TestLazyDB_ConcurrentAccessSharesConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "lazy.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = map[any]struct{}{}
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := lazy.DB(ctx)
			assert.NoError(t, err)
			mu.Lock()
			seen[db] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 1)
}

func TestLazyDB_CloseBeforeInit(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "lazy.db"))
	assert.NoError(t, lazy.Close())
	assert.Equal(t, "lazy.db", filepath.Base(lazy.Path()))
}

func TestLazySnapshotRepository_DefersOpen(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "lazy.db"))
	t.Cleanup(func() { _ = lazy.Close() })
	repo := sqlite.NewLazySnapshotRepository(lazy)
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, repo.Save(ctx, snapshotAt("main", time.Now(), "a")))

	assert.True(t, lazy.IsInitialized())
	got, err := repo.Latest(ctx, "main")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Positions, 1)
}

func TestLazySnapshotRepository_PropagatesOpenError(t *testing.T) {
	repo := sqlite.NewLazySnapshotRepository(sqlite.NewLazyDB(""))

	_, err := repo.Latest(testCtx(), "main")

	assert.Error(t, err)
}

func TestLazyDB_ReopensAfterClose(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "lazy.db"))

	_, err := lazy.DB(ctx)
	require.NoError(t, err)
	require.NoError(t, lazy.Close())
	assert.False(t, lazy.IsInitialized())

	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	require.NoError(t, db.PingContext(ctx))
	require.NoError(t, lazy.Close())
}
