// Package sqlite stores journal records in a single SQLite database using
// the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/parentfeel/parentfeel-cli/internal/config"
	"github.com/parentfeel/parentfeel-cli/internal/domain"
	"github.com/parentfeel/parentfeel-cli/internal/ports"
	"github.com/spf13/viper"

	_ "modernc.org/sqlite"
)

const (
	recordsFileName = "records.db"
	recordsDirMode  = 0o700

	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	id TEXT PRIMARY KEY,
	emotion INTEGER NOT NULL,
	child_actions TEXT NOT NULL DEFAULT '[]',
	parent_actions TEXT NOT NULL DEFAULT '[]',
	notes TEXT NOT NULL DEFAULT '',
	trigger_text TEXT NOT NULL DEFAULT '',
	alternative_text TEXT NOT NULL DEFAULT '',
	timestamp TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_records_timestamp ON records(timestamp);
`

const selectColumns = `id, emotion, child_actions, parent_actions, notes, trigger_text, alternative_text, timestamp, updated_at`

type Repository struct {
	db *sql.DB
}

var _ ports.RecordRepository = (*Repository)(nil)

// NewRepository opens the database at records.path, or records.db in the
// application directory.
func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path, err := config.PathOrDefault(cfg, config.RecordsPathKey, recordsFileName)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), recordsDirMode); err != nil {
		return nil, fmt.Errorf("create records directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open records database: %w", err)
	}

	repo, err := New(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return repo, nil
}

// New wraps an open database and applies the schema.
func New(db *sql.DB) (*Repository, error) {
	if db == nil {
		return nil, errors.New("records database is nil")
	}

	// One connection keeps writes serialized and lets in-memory databases
	// survive across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create records schema: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) Save(ctx context.Context, record domain.Record) error {
	childActions, err := encodeCodes(record.ChildActions)
	if err != nil {
		return err
	}
	parentActions, err := encodeCodes(record.ParentActions)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO records (`+selectColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			emotion = excluded.emotion,
			child_actions = excluded.child_actions,
			parent_actions = excluded.parent_actions,
			notes = excluded.notes,
			trigger_text = excluded.trigger_text,
			alternative_text = excluded.alternative_text,
			timestamp = excluded.timestamp,
			updated_at = excluded.updated_at`,
		string(record.ID),
		int(record.Emotion),
		childActions,
		parentActions,
		record.Notes,
		record.Reflection.Trigger,
		record.Reflection.Alternative,
		formatTime(record.Timestamp),
		formatTime(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("save record %s: %w", record.ID, err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id domain.RecordID) (domain.Record, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM records WHERE id = ?`, string(id))

	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Record{}, domain.ErrRecordNotFound
		}
		return domain.Record{}, fmt.Errorf("get record %s: %w", id, err)
	}

	return record, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM records ORDER BY timestamp DESC`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]domain.Record, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	return records, nil
}

func (r *Repository) Delete(ctx context.Context, id domain.RecordID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (domain.Record, error) {
	var (
		id            string
		emotion       int
		childActions  string
		parentActions string
		notes         string
		trigger       string
		alternative   string
		timestamp     string
		updatedAt     string
	)
	if err := row.Scan(&id, &emotion, &childActions, &parentActions, &notes, &trigger, &alternative, &timestamp, &updatedAt); err != nil {
		return domain.Record{}, err
	}

	return domain.Record{
		ID:            domain.RecordID(id),
		Emotion:       domain.EmotionType(emotion),
		ChildActions:  decodeCodes(domain.ChildCatalog(), childActions),
		ParentActions: decodeCodes(domain.ParentCatalog(), parentActions),
		Notes:         notes,
		Reflection:    domain.Reflection{Trigger: trigger, Alternative: alternative},
		Timestamp:     parseTime(timestamp),
		UpdatedAt:     parseTime(updatedAt),
	}, nil
}

func encodeCodes[T domain.Action](actions []T) (string, error) {
	codes := make([]int, 0, len(actions))
	for _, action := range actions {
		codes = append(codes, action.Code())
	}

	data, err := json.Marshal(codes)
	if err != nil {
		return "", fmt.Errorf("encode action codes: %w", err)
	}

	return string(data), nil
}

func decodeCodes[T domain.Action](catalog domain.Catalog[T], raw string) []T {
	var codes []int
	if err := json.Unmarshal([]byte(raw), &codes); err != nil {
		return nil
	}

	var actions []T
	for _, code := range codes {
		if action, ok := catalog.ByCode(code); ok {
			actions = append(actions, action)
		}
	}

	return actions
}

// Timestamps are stored in UTC with fixed-width fractions so lexical order
// in SQL matches time order.
func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(timeLayout)
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}
