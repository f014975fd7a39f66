package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogsPartitionEveryAction(t *testing.T) {
	t.Parallel()

	t.Run("child", func(t *testing.T) {
		t.Parallel()
		assertPartition(t, ChildCatalog())
	})
	t.Run("parent", func(t *testing.T) {
		t.Parallel()
		assertPartition(t, ParentCatalog())
	})
}

func assertPartition[T Action](t *testing.T, catalog Catalog[T]) {
	t.Helper()

	all := catalog.Actions()
	require.NotEmpty(t, all)

	seen := make(map[int]ActionCategory, len(all))
	for _, category := range []ActionCategory{ActionCategoryPositive, ActionCategoryNegative, ActionCategoryNeutral} {
		for _, action := range catalog.InCategory(category) {
			previous, dup := seen[action.Code()]
			assert.Falsef(t, dup, "%s is in both %s and %s", action.Slug(), previous, category)
			seen[action.Code()] = category
			assert.Equal(t, category, catalog.Category(action))
		}
	}

	assert.Len(t, seen, len(all))
}

func TestCatalogCodesFollowDeclarationOrder(t *testing.T) {
	t.Parallel()

	for i, action := range ChildCatalog().Actions() {
		assert.Equal(t, i, action.Code())
	}
	for i, action := range ParentCatalog().Actions() {
		assert.Equal(t, i, action.Code())
	}

	assert.Len(t, ChildCatalog().Actions(), 25)
	assert.Len(t, ParentCatalog().Actions(), 23)
}

func TestCatalogCategoryCuratedLists(t *testing.T) {
	t.Parallel()

	child := ChildCatalog()
	assert.Equal(t, ActionCategoryPositive, child.Category(ChildLaughing))
	assert.Equal(t, ActionCategoryNegative, child.Category(ChildCrying))
	assert.Equal(t, ActionCategoryNeutral, child.Category(ChildClinging))
	assert.Len(t, child.InCategory(ActionCategoryPositive), 7)
	assert.Len(t, child.InCategory(ActionCategoryNegative), 12)
	assert.Len(t, child.InCategory(ActionCategoryNeutral), 6)

	parent := ParentCatalog()
	assert.Equal(t, ActionCategoryPositive, parent.Category(ParentHugging))
	assert.Equal(t, ActionCategoryNegative, parent.Category(ParentIgnoring))
	assert.Equal(t, ActionCategoryNeutral, parent.Category(ParentExplaining))
	assert.Len(t, parent.InCategory(ActionCategoryPositive), 8)
	assert.Len(t, parent.InCategory(ActionCategoryNegative), 9)

	assert.Nil(t, child.InCategory(ActionCategoryRecent))
	assert.Len(t, child.InCategory(ActionCategoryAll), 25)
}

func TestCatalogActionsReturnsCopy(t *testing.T) {
	t.Parallel()

	actions := ChildCatalog().Actions()
	actions[0] = ChildComplimenting

	assert.Equal(t, ChildCrying, ChildCatalog().Actions()[0])
}

func TestCatalogByCode(t *testing.T) {
	t.Parallel()

	action, ok := ParentCatalog().ByCode(3)
	require.True(t, ok)
	assert.Equal(t, ParentHugging, action)

	_, ok = ParentCatalog().ByCode(99)
	assert.False(t, ok)
	_, ok = ParentCatalog().ByCode(-1)
	assert.False(t, ok)
}

func TestCatalogParseSlugs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     []string
		want    []ChildAction
		wantErr string
	}{
		{name: "empty", raw: nil, want: nil},
		{name: "single", raw: []string{"crying"}, want: []ChildAction{ChildCrying}},
		{
			name: "comma separated and deduplicated",
			raw:  []string{"laughing, crying", "LAUGHING", "throwing_things"},
			want: []ChildAction{ChildLaughing, ChildCrying, ChildThrowingThings},
		},
		{name: "blank entries ignored", raw: []string{" , "}, want: nil},
		{name: "unknown", raw: []string{"flying"}, wantErr: "unknown action"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ChildCatalog().ParseSlugs(tc.raw)
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				assert.ErrorIs(t, err, ErrUnknownAction)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCatalogParseSlugsKeepsGivenOrder(t *testing.T) {
	t.Parallel()

	got, err := ChildCatalog().ParseSlugs([]string{"helping,laughing", "helping", "crying"})
	require.NoError(t, err)
	assert.Equal(t, []ChildAction{ChildHelping, ChildLaughing, ChildCrying}, got)

	got, err = ChildCatalog().ParseSlugs(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParentCatalog().ParseSlugs([]string{"hugging,dancing"})
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestParseActionCategory(t *testing.T) {
	t.Parallel()

	got, err := ParseActionCategory("")
	require.NoError(t, err)
	assert.Equal(t, ActionCategoryAll, got)

	got, err = ParseActionCategory(" Recent ")
	require.NoError(t, err)
	assert.Equal(t, ActionCategoryRecent, got)
	assert.Equal(t, "Recent", got.Label())

	_, err = ParseActionCategory("sideways")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestParseDomain(t *testing.T) {
	t.Parallel()

	d, err := ParseDomain("Parent")
	require.NoError(t, err)
	assert.Equal(t, DomainParent, d)
	assert.Equal(t, "Parent", d.Name())

	_, err = ParseDomain("grandparent")
	assert.ErrorIs(t, err, ErrUnknownDomain)
}

func TestInvalidActionLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ChildAction(42)", ChildAction(42).Label())
	assert.Equal(t, "parent-99", ParentAction(99).Slug())
	assert.False(t, ChildAction(-1).Valid())
}

func TestJoinLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Crying, Laughing", JoinLabels([]ChildAction{ChildCrying, ChildLaughing}, ", "))
	assert.Equal(t, "", JoinLabels([]ParentAction(nil), ", "))
}
