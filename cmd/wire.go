package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	badgerkv "github.com/parentfeel/parentfeel-cli/internal/adapters/kv/badger"
	chainkv "github.com/parentfeel/parentfeel-cli/internal/adapters/kv/chain"
	filekv "github.com/parentfeel/parentfeel-cli/internal/adapters/kv/file"
	journaladapter "github.com/parentfeel/parentfeel-cli/internal/adapters/render/journal"
	sqliterepo "github.com/parentfeel/parentfeel-cli/internal/adapters/repo/sqlite"
	tomlrepo "github.com/parentfeel/parentfeel-cli/internal/adapters/repo/toml"
	"github.com/parentfeel/parentfeel-cli/internal/application"
	"github.com/parentfeel/parentfeel-cli/internal/config"
	"github.com/parentfeel/parentfeel-cli/internal/ports"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const (
	preferencesDirName = "preferences"
	badgerDirName      = "badger"
)

type app struct {
	cfg      *viper.Viper
	logger   *slog.Logger
	journal  *application.JournalService
	locale   language.Tag
	location *time.Location
	render   journaladapter.RenderOptions
	closers  []io.Closer

	openPreferences func() (ports.KeyValueStore, func(), error)
}

func wireApp(stderr io.Writer) (*app, error) {
	cfg := viper.New()
	if err := config.Load(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level, err := config.LogLevel(cfg)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	locale, err := config.Locale(cfg)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:      cfg,
		logger:   logger,
		locale:   locale,
		location: time.Local,
		render:   journaladapter.RenderOptions{Location: time.Local},
	}

	repo, err := a.wireRecordRepository()
	if err != nil {
		return nil, fmt.Errorf("wire record repository: %w", err)
	}
	a.journal = application.NewJournalService(repo, ports.SystemClock{}, logger, application.WithLocation(a.location))
	a.openPreferences = a.wirePreferences

	return a, nil
}

func (a *app) wireRecordRepository() (ports.RecordRepository, error) {
	backend := a.cfg.GetString(config.RecordsBackendKey)
	switch backend {
	case config.RecordsBackendTOML, "":
		return tomlrepo.NewRepository(a.cfg)
	case config.RecordsBackendSQLite:
		repo, err := sqliterepo.NewRepository(a.cfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, repo)
		return repo, nil
	default:
		return nil, fmt.Errorf("unsupported %s %q", config.RecordsBackendKey, backend)
	}
}

// wirePreferences opens the preference store for one command. The file
// store is the authority and badger mirrors it; when badger's directory is
// locked by another pf process the file store serves alone.
func (a *app) wirePreferences() (ports.KeyValueStore, func(), error) {
	root, err := config.PathOrDefault(a.cfg, config.PreferencesPathKey, preferencesDirName)
	if err != nil {
		return nil, nil, err
	}
	fileStore := filekv.NewStore(root)

	backend := a.cfg.GetString(config.PreferencesBackendKey)
	switch backend {
	case config.PreferencesBackendFile:
		return fileStore, func() {}, nil
	case config.PreferencesBackendBadger, "":
	default:
		return nil, nil, fmt.Errorf("unsupported %s %q", config.PreferencesBackendKey, backend)
	}

	badgerCfg := badgerkv.DefaultConfig(filepath.Join(root, badgerDirName))
	badgerCfg.Logger = a.logger.With("component", "badger")
	badgerStore, err := badgerkv.Open(badgerCfg)
	if err != nil {
		a.logger.Debug("badger unavailable, using file preferences", "path", badgerCfg.Path, "error", err)
		return fileStore, func() {}, nil
	}

	closeStore := func() {
		if err := badgerStore.Close(); err != nil {
			a.logger.Debug("close badger", "error", err)
		}
	}

	return chainkv.NewStore(fileStore, badgerStore), closeStore, nil
}

// withPicker runs fn with a picker service over a freshly opened preference
// store and closes the store afterwards.
func (a *app) withPicker(fn func(*application.PickerService) error) error {
	store, closeStore, err := a.openPreferences()
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}
	defer closeStore()

	return fn(application.NewPickerService(store, a.logger, a.locale))
}

func (a *app) Close() error {
	var firstErr error
	for _, closer := range a.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil

	return firstErr
}
