package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/parentfeel/parentfeel-cli/internal/domain"
	"github.com/parentfeel/parentfeel-cli/internal/ports"
	"github.com/parentfeel/parentfeel-cli/internal/selection"
	"golang.org/x/text/language"
)

// PickerService opens selection states backed by the preference store.
type PickerService struct {
	store  ports.KeyValueStore
	logger *slog.Logger
	locale language.Tag
}

func NewPickerService(store ports.KeyValueStore, logger *slog.Logger, locale language.Tag) *PickerService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &PickerService{store: store, logger: logger, locale: locale}
}

func (s *PickerService) ChildState(ctx context.Context, selected ...domain.ChildAction) *selection.State[domain.ChildAction] {
	state := selection.NewState(ctx, domain.ChildCatalog(), s.store, s.logger, selected...)
	state.SetLocale(s.locale)
	return state
}

func (s *PickerService) ParentState(ctx context.Context, selected ...domain.ParentAction) *selection.State[domain.ParentAction] {
	state := selection.NewState(ctx, domain.ParentCatalog(), s.store, s.logger, selected...)
	state.SetLocale(s.locale)
	return state
}

func (s *PickerService) RecentChildActions(ctx context.Context) []domain.ChildAction {
	return s.ChildState(ctx).Recent()
}

func (s *PickerService) RecentParentActions(ctx context.Context) []domain.ParentAction {
	return s.ParentState(ctx).Recent()
}

// ClearRecent forgets the recent list of d.
func (s *PickerService) ClearRecent(ctx context.Context, d domain.Domain) error {
	if s.store == nil {
		return nil
	}

	if err := s.store.Delete(ctx, selection.RecentKey(d)); err != nil {
		return fmt.Errorf("clear recent %s actions: %w", d, err)
	}

	return nil
}
