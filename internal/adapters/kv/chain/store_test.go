package chain

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	badgerkv "github.com/parentfeel/parentfeel-cli/internal/adapters/kv/badger"
	filekv "github.com/parentfeel/parentfeel-cli/internal/adapters/kv/file"
	"github.com/parentfeel/parentfeel-cli/internal/domain"
	"github.com/parentfeel/parentfeel-cli/internal/ports/mocks"
	"github.com/parentfeel/parentfeel-cli/internal/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewStoreCheckedRejectsNilStores(t *testing.T) {
	t.Parallel()

	_, err := NewStoreChecked(nil, mocks.NewMockKeyValueStore(t))
	assert.ErrorIs(t, err, errNilPrimaryStore)

	_, err = NewStoreChecked(mocks.NewMockKeyValueStore(t), nil)
	assert.ErrorIs(t, err, errNilMirrorStore)

	assert.Panics(t, func() { NewStore(nil, nil) })
}

func TestGetPrefersPrimary(t *testing.T) {
	t.Parallel()

	primary := mocks.NewMockKeyValueStore(t)
	mirror := mocks.NewMockKeyValueStore(t)
	primary.EXPECT().Get(mock.Anything, "recent_ChildActions").Return([]byte("[1]"), nil)

	got, err := NewStore(primary, mirror).Get(context.Background(), "recent_ChildActions")
	require.NoError(t, err)
	assert.Equal(t, []byte("[1]"), got)
}

func TestGetTreatsPrimaryMissAsAuthoritative(t *testing.T) {
	t.Parallel()

	primary := mocks.NewMockKeyValueStore(t)
	mirror := mocks.NewMockKeyValueStore(t)
	primary.EXPECT().Get(mock.Anything, "k").Return(nil, domain.ErrKeyNotFound)

	_, err := NewStore(primary, mirror).Get(context.Background(), "k")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestGetReadsMirrorWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := mocks.NewMockKeyValueStore(t)
	mirror := mocks.NewMockKeyValueStore(t)
	primary.EXPECT().Get(mock.Anything, "k").Return(nil, errors.New("permission denied"))
	mirror.EXPECT().Get(mock.Anything, "k").Return([]byte("[2]"), nil)

	got, err := NewStore(primary, mirror).Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("[2]"), got)
}

func TestGetJoinsErrorsWhenBothFail(t *testing.T) {
	t.Parallel()

	primaryErr := errors.New("permission denied")
	mirrorErr := errors.New("badger closed")

	primary := mocks.NewMockKeyValueStore(t)
	mirror := mocks.NewMockKeyValueStore(t)
	primary.EXPECT().Get(mock.Anything, "k").Return(nil, primaryErr)
	mirror.EXPECT().Get(mock.Anything, "k").Return(nil, mirrorErr)

	_, err := NewStore(primary, mirror).Get(context.Background(), "k")
	assert.ErrorIs(t, err, primaryErr)
	assert.ErrorIs(t, err, mirrorErr)
}

func TestGetSkipsMirrorOnCancellation(t *testing.T) {
	t.Parallel()

	primary := mocks.NewMockKeyValueStore(t)
	mirror := mocks.NewMockKeyValueStore(t)
	primary.EXPECT().Get(mock.Anything, "k").Return(nil, context.Canceled)

	_, err := NewStore(primary, mirror).Get(context.Background(), "k")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSetWritesBothStores(t *testing.T) {
	t.Parallel()

	primary := mocks.NewMockKeyValueStore(t)
	mirror := mocks.NewMockKeyValueStore(t)
	primary.EXPECT().Set(mock.Anything, "k", []byte("v")).Return(nil)
	mirror.EXPECT().Set(mock.Anything, "k", []byte("v")).Return(nil)

	require.NoError(t, NewStore(primary, mirror).Set(context.Background(), "k", []byte("v")))
}

func TestSetIgnoresMirrorFailure(t *testing.T) {
	t.Parallel()

	primary := mocks.NewMockKeyValueStore(t)
	mirror := mocks.NewMockKeyValueStore(t)
	primary.EXPECT().Set(mock.Anything, "k", []byte("v")).Return(nil)
	mirror.EXPECT().Set(mock.Anything, "k", []byte("v")).Return(errors.New("read-only"))

	require.NoError(t, NewStore(primary, mirror).Set(context.Background(), "k", []byte("v")))
}

func TestSetLeavesMirrorAloneWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primaryErr := errors.New("disk full")

	primary := mocks.NewMockKeyValueStore(t)
	mirror := mocks.NewMockKeyValueStore(t)
	primary.EXPECT().Set(mock.Anything, "k", []byte("v")).Return(primaryErr)

	err := NewStore(primary, mirror).Set(context.Background(), "k", []byte("v"))
	assert.ErrorIs(t, err, primaryErr)
}

func TestDeleteClearsBothStores(t *testing.T) {
	t.Parallel()

	primary := mocks.NewMockKeyValueStore(t)
	mirror := mocks.NewMockKeyValueStore(t)
	primary.EXPECT().Delete(mock.Anything, "k").Return(nil)
	mirror.EXPECT().Delete(mock.Anything, "k").Return(errors.New("mirror unavailable"))

	require.NoError(t, NewStore(primary, mirror).Delete(context.Background(), "k"))
}

func TestDeleteFailsWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primaryErr := errors.New("permission denied")

	primary := mocks.NewMockKeyValueStore(t)
	mirror := mocks.NewMockKeyValueStore(t)
	primary.EXPECT().Delete(mock.Anything, "k").Return(primaryErr)

	err := NewStore(primary, mirror).Delete(context.Background(), "k")
	assert.ErrorIs(t, err, primaryErr)
}

// openPreferences mirrors the file store at root into badger, the way pf
// wires preferences when badger's directory is not locked.
func openPreferences(t *testing.T, root string) (*Store, func()) {
	t.Helper()

	badgerStore, err := badgerkv.Open(badgerkv.DefaultConfig(filepath.Join(root, "badger")))
	require.NoError(t, err)

	return NewStore(filekv.NewStore(root), badgerStore), func() {
		require.NoError(t, badgerStore.Close())
	}
}

func TestRecentWrittenWithoutMirrorSurvivesNextMirroredSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	root := t.TempDir()
	catalog := domain.ChildCatalog()

	store, closeStore := openPreferences(t, root)
	selection.NewState(ctx, catalog, store, nil).Insert(ctx, domain.ChildCrying)
	closeStore()

	// badger locked by another process: the file store serves alone.
	selection.NewState(ctx, catalog, filekv.NewStore(root), nil).Insert(ctx, domain.ChildLaughing)

	store, closeStore = openPreferences(t, root)
	defer closeStore()

	state := selection.NewState(ctx, catalog, store, nil)
	assert.Equal(t, []domain.ChildAction{domain.ChildLaughing, domain.ChildCrying}, state.Recent())
}

func TestRecentClearedWithoutMirrorStaysCleared(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	root := t.TempDir()
	catalog := domain.ChildCatalog()
	key := selection.RecentKey(domain.DomainChild)

	store, closeStore := openPreferences(t, root)
	selection.NewState(ctx, catalog, store, nil).Insert(ctx, domain.ChildCrying)
	closeStore()

	require.NoError(t, filekv.NewStore(root).Delete(ctx, key))

	store, closeStore = openPreferences(t, root)
	defer closeStore()

	_, err := store.Get(ctx, key)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	assert.Empty(t, selection.NewState(ctx, catalog, store, nil).Recent())
}
