// Package selection implements the action picker state: the working
// selection, category and search filtering over an action catalog, and the
// persisted most-recently-used list.
package selection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/parentfeel/parentfeel-cli/internal/domain"
	"github.com/parentfeel/parentfeel-cli/internal/ports"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxRecent bounds the recent list.
const MaxRecent = 5

// RecentKey is the key-value store key holding the recent list of a domain.
func RecentKey(d domain.Domain) string {
	return fmt.Sprintf("recent_%sActions", d.Name())
}

// State is confined to the goroutine driving the picker.
type State[T domain.Action] struct {
	catalog domain.Catalog[T]
	store   ports.KeyValueStore
	logger  *slog.Logger
	key     string
	fold    cases.Caser

	selected   map[T]struct{}
	searchText string
	category   domain.ActionCategory
	recent     []T
}

// NewState builds a picker state seeded with the caller's current selection
// and loads the persisted recent list. A nil store disables persistence.
func NewState[T domain.Action](ctx context.Context, catalog domain.Catalog[T], store ports.KeyValueStore, logger *slog.Logger, selected ...T) *State[T] {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &State[T]{
		catalog:  catalog,
		store:    store,
		logger:   logger.With("component", "selection", "domain", string(catalog.Domain())),
		key:      RecentKey(catalog.Domain()),
		fold:     cases.Lower(language.Und),
		selected: make(map[T]struct{}, len(selected)),
		category: domain.ActionCategoryAll,
	}
	for _, action := range selected {
		s.selected[action] = struct{}{}
	}

	s.recent = s.loadRecent(ctx)

	return s
}

func (s *State[T]) Domain() domain.Domain {
	return s.catalog.Domain()
}

// SetLocale switches the case folding used by search to tag's rules.
func (s *State[T]) SetLocale(tag language.Tag) {
	s.fold = cases.Lower(tag)
}

func (s *State[T]) Toggle(ctx context.Context, action T) {
	if s.Contains(action) {
		s.Remove(action)
		return
	}

	s.Insert(ctx, action)
}

func (s *State[T]) Insert(ctx context.Context, action T) {
	s.selected[action] = struct{}{}
	s.pushRecent(ctx, action)
}

func (s *State[T]) Remove(action T) {
	delete(s.selected, action)
}

func (s *State[T]) Contains(action T) bool {
	_, ok := s.selected[action]
	return ok
}

func (s *State[T]) SetCategory(category domain.ActionCategory) {
	s.category = category
}

func (s *State[T]) Category() domain.ActionCategory {
	return s.category
}

func (s *State[T]) SetSearchText(text string) {
	s.searchText = text
}

func (s *State[T]) SearchText() string {
	return s.searchText
}

// Selected returns the selection in catalog declaration order.
func (s *State[T]) Selected() []T {
	result := make([]T, 0, len(s.selected))
	for _, action := range s.catalog.Actions() {
		if s.Contains(action) {
			result = append(result, action)
		}
	}

	return result
}

// Recent returns the recent list, most recent first.
func (s *State[T]) Recent() []T {
	return slices.Clone(s.recent)
}

// FilteredActions applies the active category and then the search text.
// The result may be empty.
func (s *State[T]) FilteredActions() []T {
	var base []T
	if s.category == domain.ActionCategoryRecent {
		base = slices.Clone(s.recent)
	} else {
		base = s.catalog.InCategory(s.category)
	}

	if s.searchText == "" {
		return base
	}

	needle := s.fold.String(s.searchText)
	filtered := make([]T, 0, len(base))
	for _, action := range base {
		if strings.Contains(s.fold.String(action.Label()), needle) {
			filtered = append(filtered, action)
		}
	}

	return filtered
}

func (s *State[T]) pushRecent(ctx context.Context, action T) {
	recent := make([]T, 0, MaxRecent+1)
	recent = append(recent, action)
	for _, existing := range s.recent {
		if existing.Code() == action.Code() {
			continue
		}
		recent = append(recent, existing)
	}
	if len(recent) > MaxRecent {
		recent = recent[:MaxRecent]
	}

	s.recent = recent
	s.saveRecent(ctx)
}

// saveRecent never reports failures: the in-memory list stays correct for
// this session even when the write is lost.
func (s *State[T]) saveRecent(ctx context.Context) {
	if s.store == nil {
		return
	}

	codes := make([]int, 0, len(s.recent))
	for _, action := range s.recent {
		codes = append(codes, action.Code())
	}

	data, err := json.Marshal(codes)
	if err != nil {
		s.logger.Debug("encode recent actions", "error", err)
		return
	}

	if err := s.store.Set(ctx, s.key, data); err != nil {
		s.logger.Debug("write recent actions", "key", s.key, "error", err)
	}
}

func (s *State[T]) loadRecent(ctx context.Context) []T {
	if s.store == nil {
		return nil
	}

	data, err := s.store.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			s.logger.Debug("read recent actions", "key", s.key, "error", err)
		}
		return nil
	}

	return DecodeRecent(s.catalog, data)
}

// DecodeRecent maps a persisted code list back to catalog members. Codes no
// longer in the catalog and repeated codes are skipped; malformed data
// yields nil.
func DecodeRecent[T domain.Action](catalog domain.Catalog[T], data []byte) []T {
	var codes []int
	if err := json.Unmarshal(data, &codes); err != nil {
		return nil
	}

	recent := make([]T, 0, min(len(codes), MaxRecent))
	seen := make(map[int]struct{}, len(codes))
	for _, code := range codes {
		if len(recent) == MaxRecent {
			break
		}
		if _, ok := seen[code]; ok {
			continue
		}
		action, ok := catalog.ByCode(code)
		if !ok {
			continue
		}
		seen[code] = struct{}{}
		recent = append(recent, action)
	}

	if len(recent) == 0 {
		return nil
	}

	return recent
}
