// Package badger stores preferences in an embedded BadgerDB.
//
// Badger holds an exclusive lock on its directory, so a second pf process
// opening the same path fails at Open. Callers are expected to fall back to
// another store in that case.
package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/parentfeel/parentfeel-cli/internal/domain"
	"github.com/parentfeel/parentfeel-cli/internal/ports"
)

const (
	dirMode   = 0o700
	keyPrefix = "pref/"
)

type Config struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path string

	InMemory bool

	SyncWrites bool

	// Logger receives badger's internal logs. Nil silences them.
	Logger *slog.Logger
}

func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

func InMemoryConfig() Config {
	return Config{InMemory: true}
}

type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

type Store struct {
	db *badger.DB
}

var _ ports.KeyValueStore = (*Store)(nil)

func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("preferences path is required for persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, dirMode); err != nil {
			return nil, fmt.Errorf("create preferences directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}

	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger.With("component", "badger")})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open preferences database: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(prefixed(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, fmt.Errorf("preference %q: %w", key, domain.ErrKeyNotFound)
		}
		return nil, fmt.Errorf("read preference %q: %w", key, err)
	}

	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return errors.New("preference key is empty")
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(prefixed(key), value)
	})
	if err != nil {
		return fmt.Errorf("write preference %q: %w", key, err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(prefixed(key))
	})
	if err != nil {
		return fmt.Errorf("delete preference %q: %w", key, err)
	}

	return nil
}

func prefixed(key string) []byte {
	return []byte(keyPrefix + key)
}
