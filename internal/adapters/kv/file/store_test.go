package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/parentfeel/parentfeel-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "preference key is empty"},
		{name: "whitespace", key: "   ", wantErr: "preference key is empty"},
		{name: "absolute", key: "/absolute/path", wantErr: "invalid preference key"},
		{name: "traversal", key: "../escape", wantErr: "invalid preference key"},
		{name: "deep traversal", key: "../../recent", wantErr: "invalid preference key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Set(context.Background(), tc.key, []byte("[]"))
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStoreSetGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(filepath.Join(root, "preferences"))
	key := "recent_ChildActions"

	require.NoError(t, store.Set(context.Background(), key, []byte("[1,2]")))
	require.NoError(t, store.Set(context.Background(), key, []byte("[3,1,2]")))

	got, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "[3,1,2]", string(got))

	info, err := os.Stat(filepath.Join(root, "preferences", key+".json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(valueFileMode), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Join(root, "preferences"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestStoreGetMissingReturnsKeyNotFound(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	_, err := store.Get(context.Background(), "recent_ParentActions")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStoreDeleteIsIdempotentWhenValueMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	key := "recent_ChildActions"

	require.NoError(t, store.Set(context.Background(), key, []byte("[0]")))
	require.NoError(t, store.Delete(context.Background(), key))
	require.NoError(t, store.Delete(context.Background(), key))

	_, err := store.Get(context.Background(), key)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStoreHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewStore(t.TempDir())
	assert.ErrorIs(t, store.Set(ctx, "k", nil), context.Canceled)
	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
