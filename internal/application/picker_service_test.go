package application

import (
	"context"
	"errors"
	"testing"

	filekv "github.com/parentfeel/parentfeel-cli/internal/adapters/kv/file"
	"github.com/parentfeel/parentfeel-cli/internal/domain"
	"github.com/parentfeel/parentfeel-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestPickerServiceRecentSurvivesNewStates(t *testing.T) {
	t.Parallel()

	store := filekv.NewStore(t.TempDir())
	service := NewPickerService(store, nil, language.Und)
	ctx := context.Background()

	child := service.ChildState(ctx)
	child.Insert(ctx, domain.ChildLaughing)
	child.Insert(ctx, domain.ChildHelping)

	parent := service.ParentState(ctx)
	parent.Insert(ctx, domain.ParentHugging)

	assert.Equal(t, []domain.ChildAction{domain.ChildHelping, domain.ChildLaughing}, service.RecentChildActions(ctx))
	assert.Equal(t, []domain.ParentAction{domain.ParentHugging}, service.RecentParentActions(ctx))
}

func TestPickerServiceSeedsSelection(t *testing.T) {
	t.Parallel()

	service := NewPickerService(nil, nil, language.Und)
	state := service.ChildState(context.Background(), domain.ChildCrying, domain.ChildSharing)

	assert.Equal(t, []domain.ChildAction{domain.ChildCrying, domain.ChildSharing}, state.Selected())
	assert.Empty(t, state.Recent())
}

func TestPickerServiceAppliesLocaleToSearch(t *testing.T) {
	t.Parallel()

	service := NewPickerService(nil, nil, language.English)
	state := service.ParentState(context.Background())
	state.SetSearchText("HUG")

	assert.Equal(t, []domain.ParentAction{domain.ParentHugging}, state.FilteredActions())
}

func TestPickerServiceClearRecent(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockKeyValueStore(t)
	service := NewPickerService(store, nil, language.Und)

	store.EXPECT().Delete(mockAnyContext(), "recent_ChildActions").Return(nil)
	require.NoError(t, service.ClearRecent(context.Background(), domain.DomainChild))

	deleteErr := errors.New("locked")
	store.EXPECT().Delete(mockAnyContext(), "recent_ParentActions").Return(deleteErr)
	err := service.ClearRecent(context.Background(), domain.DomainParent)
	require.ErrorIs(t, err, deleteErr)

	require.NoError(t, NewPickerService(nil, nil, language.Und).ClearRecent(context.Background(), domain.DomainChild))
}
