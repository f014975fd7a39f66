package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/parentfeel/parentfeel-cli/internal/domain"
	"github.com/parentfeel/parentfeel-cli/internal/ports"
)

const topEmotionsLimit = 3

type JournalService struct {
	repo   ports.RecordRepository
	clock  ports.Clock
	logger *slog.Logger
	loc    *time.Location
	newID  func() domain.RecordID
}

type JournalOption func(*JournalService)

// WithLocation sets the zone used for day buckets and detail timestamps.
func WithLocation(loc *time.Location) JournalOption {
	return func(s *JournalService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithIDGenerator(newID func() domain.RecordID) JournalOption {
	return func(s *JournalService) {
		if newID != nil {
			s.newID = newID
		}
	}
}

func NewJournalService(repo ports.RecordRepository, clock ports.Clock, logger *slog.Logger, opts ...JournalOption) *JournalService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &JournalService{
		repo:   repo,
		clock:  clock,
		logger: logger.With("component", "journal"),
		loc:    time.Local,
		newID: func() domain.RecordID {
			return domain.RecordID(uuid.NewString())
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *JournalService) RecordEmotion(ctx context.Context, cmd RecordEmotionCommand) (domain.Record, error) {
	timestamp := cmd.Timestamp
	if timestamp.IsZero() {
		timestamp = s.clock.Now()
	}

	record := domain.Record{
		ID:            s.newID(),
		Emotion:       cmd.Emotion,
		ChildActions:  cmd.ChildActions,
		ParentActions: cmd.ParentActions,
		Notes:         strings.TrimSpace(cmd.Notes),
		Reflection:    trimReflection(cmd.Reflection),
		Timestamp:     timestamp,
	}
	record.NormalizeActions()

	if err := record.Validate(); err != nil {
		return domain.Record{}, fmt.Errorf("validate record: %w", err)
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return domain.Record{}, fmt.Errorf("save record: %w", err)
	}

	s.logger.Debug("recorded emotion", "id", record.ID, "emotion", record.Emotion.Slug())

	return record, nil
}

func (s *JournalService) UpdateEmotion(ctx context.Context, cmd UpdateEmotionCommand) (domain.Record, error) {
	if strings.TrimSpace(string(cmd.ID)) == "" {
		return domain.Record{}, domain.ErrRecordIDRequired
	}

	record, err := s.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return domain.Record{}, fmt.Errorf("get record by id: %w", err)
	}
	if cmd.Empty() {
		return record, nil
	}

	if cmd.Emotion != nil {
		record.Emotion = *cmd.Emotion
	}
	if cmd.ChildActions != nil {
		record.ChildActions = *cmd.ChildActions
	}
	if cmd.ParentActions != nil {
		record.ParentActions = *cmd.ParentActions
	}
	if cmd.Notes != nil {
		record.Notes = strings.TrimSpace(*cmd.Notes)
	}
	if cmd.Trigger != nil {
		record.Reflection.Trigger = strings.TrimSpace(*cmd.Trigger)
	}
	if cmd.Alternative != nil {
		record.Reflection.Alternative = strings.TrimSpace(*cmd.Alternative)
	}
	record.NormalizeActions()
	record.UpdatedAt = s.clock.Now()

	if err := record.Validate(); err != nil {
		return domain.Record{}, fmt.Errorf("validate record: %w", err)
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return domain.Record{}, fmt.Errorf("save record: %w", err)
	}

	s.logger.Debug("updated emotion", "id", record.ID)

	return record, nil
}

// DeleteRecords deletes every id it can and joins the failures.
func (s *JournalService) DeleteRecords(ctx context.Context, ids ...domain.RecordID) error {
	var errs error
	for _, id := range ids {
		if err := s.repo.Delete(ctx, id); err != nil {
			errs = errors.Join(errs, fmt.Errorf("delete record %s: %w", id, err))
			continue
		}
		s.logger.Debug("deleted record", "id", id)
	}

	return errs
}

// ResolveID expands a full id or a unique id prefix to a record id.
func (s *JournalService) ResolveID(ctx context.Context, raw string) (domain.RecordID, error) {
	prefix := strings.TrimSpace(raw)
	if prefix == "" {
		return "", domain.ErrRecordIDRequired
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list records: %w", err)
	}

	var matches []domain.RecordID
	for _, record := range records {
		if string(record.ID) == prefix {
			return record.ID, nil
		}
		if strings.HasPrefix(string(record.ID), prefix) {
			matches = append(matches, record.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", domain.ErrRecordNotFound, prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s matches %d records", domain.ErrAmbiguousRecordID, prefix, len(matches))
	}
}

func (s *JournalService) GetRecord(ctx context.Context, id domain.RecordID) (RecordDetail, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return RecordDetail{}, fmt.Errorf("get record by id: %w", err)
	}

	return NewRecordDetail(record, s.loc), nil
}

func (s *JournalService) ListRecords(ctx context.Context, query ListRecordsQuery) ([]domain.Record, error) {
	timeRange := query.Range
	if timeRange == "" {
		timeRange = domain.TimeRangeAll
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	records = timeRange.Filter(records, s.clock.Now())
	if query.Category != nil {
		filtered := make([]domain.Record, 0, len(records))
		for _, record := range records {
			if record.Category() == *query.Category {
				filtered = append(filtered, record)
			}
		}
		records = filtered
	}

	sortNewestFirst(records)

	if query.Limit > 0 && len(records) > query.Limit {
		records = records[:query.Limit]
	}

	return records, nil
}

func (s *JournalService) Trend(ctx context.Context, timeRange domain.TimeRange) (TrendReport, error) {
	if timeRange == "" {
		timeRange = domain.TimeRangeWeek
	}

	now := s.clock.Now()
	records, err := s.ListRecords(ctx, ListRecordsQuery{Range: timeRange})
	if err != nil {
		return TrendReport{}, err
	}

	report := TrendReport{
		Range: timeRange,
		Until: now,
		Total: len(records),
		Daily: domain.DailyCategoryCounts(records, s.loc),
	}
	if since, ok := timeRange.Since(now); ok {
		report.Since = since
	} else if len(records) > 0 {
		report.Since = records[len(records)-1].Timestamp
	}

	byCategory := domain.CountsByCategory(records)
	for _, category := range domain.EmotionCategories() {
		report.Categories = append(report.Categories, CategoryCount{Category: category, Count: byCategory[category]})
	}

	byType := domain.CountsByType(records)
	for _, emotion := range domain.EmotionTypes() {
		report.Emotions = append(report.Emotions, EmotionCount{Emotion: emotion, Count: byType[emotion]})
	}

	top := make([]EmotionCount, 0, len(report.Emotions))
	for _, count := range report.Emotions {
		if count.Count > 0 {
			top = append(top, count)
		}
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if len(top) > topEmotionsLimit {
		top = top[:topEmotionsLimit]
	}
	report.TopEmotions = top

	return report, nil
}

func sortNewestFirst(records []domain.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Timestamp.Equal(records[j].Timestamp) {
			return records[i].ID < records[j].ID
		}
		return records[i].Timestamp.After(records[j].Timestamp)
	})
}

func trimReflection(r domain.Reflection) domain.Reflection {
	return domain.Reflection{
		Trigger:     strings.TrimSpace(r.Trigger),
		Alternative: strings.TrimSpace(r.Alternative),
	}
}
