package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/parentfeel/parentfeel-cli/internal/config"
	"github.com/parentfeel/parentfeel-cli/internal/domain"
	"github.com/parentfeel/parentfeel-cli/internal/fsutil"
	"github.com/parentfeel/parentfeel-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	recordsFileMode = 0o600
	recordsDirMode  = 0o700
	recordsFileName = "records.toml"
)

type Repository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.RecordRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path, err := config.PathOrDefault(cfg, config.RecordsPathKey, recordsFileName)
	if err != nil {
		return nil, err
	}

	return &Repository{path: path, mu: lockForPath(path)}, nil
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) Save(ctx context.Context, record domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(record)
	updated := false
	for i := range file.Records {
		if file.Records[i].ID == encoded.ID {
			file.Records[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Records = append(file.Records, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) GetByID(ctx context.Context, id domain.RecordID) (domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return domain.Record{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Record{}, err
	}

	for _, entry := range file.Records {
		if entry.ID == string(id) {
			return fromSchema(entry), nil
		}
	}

	return domain.Record{}, domain.ErrRecordNotFound
}

func (r *Repository) List(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(file.Records))
	for _, entry := range file.Records {
		records = append(records, fromSchema(entry))
	}

	return records, nil
}

func (r *Repository) Delete(ctx context.Context, id domain.RecordID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Records[:0]
	found := false
	for _, entry := range file.Records {
		if entry.ID == string(id) {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return domain.ErrRecordNotFound
	}
	file.Records = kept

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read records file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode records file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode records file: %w", err)
	}

	if err := fsutil.WriteFileAtomic(r.path, data, recordsFileMode, recordsDirMode); err != nil {
		return fmt.Errorf("write records file: %w", err)
	}

	return nil
}

func toSchema(record domain.Record) recordSchema {
	return recordSchema{
		ID:            string(record.ID),
		Emotion:       int(record.Emotion),
		ChildActions:  actionCodes(record.ChildActions),
		ParentActions: actionCodes(record.ParentActions),
		Notes:         record.Notes,
		Reflection: reflectionSchema{
			Trigger:     record.Reflection.Trigger,
			Alternative: record.Reflection.Alternative,
		},
		Timestamp: formatTime(record.Timestamp),
		UpdatedAt: formatTime(record.UpdatedAt),
	}
}

func fromSchema(entry recordSchema) domain.Record {
	var childActions []domain.ChildAction
	for _, code := range entry.ChildActions {
		if action, ok := domain.ChildCatalog().ByCode(code); ok {
			childActions = append(childActions, action)
		}
	}

	var parentActions []domain.ParentAction
	for _, code := range entry.ParentActions {
		if action, ok := domain.ParentCatalog().ByCode(code); ok {
			parentActions = append(parentActions, action)
		}
	}

	return domain.Record{
		ID:            domain.RecordID(entry.ID),
		Emotion:       domain.EmotionType(entry.Emotion),
		ChildActions:  childActions,
		ParentActions: parentActions,
		Notes:         entry.Notes,
		Reflection: domain.Reflection{
			Trigger:     entry.Reflection.Trigger,
			Alternative: entry.Reflection.Alternative,
		},
		Timestamp: parseTime(entry.Timestamp),
		UpdatedAt: parseTime(entry.UpdatedAt),
	}
}

func actionCodes[T domain.Action](actions []T) []int {
	codes := make([]int, 0, len(actions))
	for _, action := range actions {
		codes = append(codes, action.Code())
	}

	return codes
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

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339Nano)
}
