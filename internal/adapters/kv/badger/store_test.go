package badger

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/parentfeel/parentfeel-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()

	store, err := Open(InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := openInMemory(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "recent_ChildActions", []byte("[19,18,0]")))

	got, err := store.Get(ctx, "recent_ChildActions")
	require.NoError(t, err)
	assert.Equal(t, "[19,18,0]", string(got))
}

func TestStoreMissingKey(t *testing.T) {
	t.Parallel()

	store := openInMemory(t)

	_, err := store.Get(context.Background(), "recent_ParentActions")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStoreDelete(t *testing.T) {
	t.Parallel()

	store := openInMemory(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStoreRejectsEmptyKey(t *testing.T) {
	t.Parallel()

	store := openInMemory(t)
	assert.ErrorContains(t, store.Set(context.Background(), "", []byte("v")), "preference key is empty")
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := Open(Config{})
	assert.ErrorContains(t, err, "preferences path is required")
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "prefs.badger")
	cfg := DefaultConfig(dir)
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	first, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, first.Set(context.Background(), "recent_ChildActions", []byte("[4]")))
	require.NoError(t, first.Close())

	second, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	got, err := second.Get(context.Background(), "recent_ChildActions")
	require.NoError(t, err)
	assert.Equal(t, "[4]", string(got))
}

func TestOpenFailsWhileDirectoryLocked(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "prefs.badger")

	first, err := Open(DefaultConfig(dir))
	require.NoError(t, err)
	t.Cleanup(func() { _ = first.Close() })

	_, err = Open(DefaultConfig(dir))
	assert.Error(t, err)
}
