// Package config loads pf settings from ~/.parentfeel/config.toml and PF_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const (
	AppDir = ".parentfeel"

	configName = "config"
	configType = "toml"
	envPrefix  = "PF"

	RecordsBackendKey     = "records.backend"
	RecordsPathKey        = "records.path"
	PreferencesBackendKey = "preferences.backend"
	PreferencesPathKey    = "preferences.path"
	LogLevelKey           = "log.level"
	LocaleKey             = "locale"

	RecordsBackendTOML   = "toml"
	RecordsBackendSQLite = "sqlite"

	PreferencesBackendBadger = "badger"
	PreferencesBackendFile   = "file"
)

// Load registers defaults and reads the config file into cfg. A missing
// config file is not an error.
func Load(cfg *viper.Viper) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	appDir, err := Dir()
	if err != nil {
		return err
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(appDir)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(RecordsBackendKey, RecordsBackendTOML)
	cfg.SetDefault(PreferencesBackendKey, PreferencesBackendBadger)
	cfg.SetDefault(LogLevelKey, "warn")
	cfg.SetDefault(LocaleKey, "und")

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return nil
}

// Dir is the application directory under the user's home.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, AppDir), nil
}

// PathOrDefault returns the configured path for key, or fileName inside the
// application directory, as a clean absolute path.
func PathOrDefault(cfg *viper.Viper, key string, fileName string) (string, error) {
	path := cfg.GetString(key)
	if path == "" {
		appDir, err := Dir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(appDir, fileName)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", key, err)
	}

	return filepath.Clean(absPath), nil
}

func LogLevel(cfg *viper.Viper) (slog.Level, error) {
	var level slog.Level
	raw := strings.TrimSpace(cfg.GetString(LogLevelKey))
	if raw == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return 0, fmt.Errorf("parse %s: %w", LogLevelKey, err)
	}

	return level, nil
}

func Locale(cfg *viper.Viper) (language.Tag, error) {
	raw := strings.TrimSpace(cfg.GetString(LocaleKey))
	if raw == "" {
		return language.Und, nil
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return language.Und, fmt.Errorf("parse %s: %w", LocaleKey, err)
	}

	return tag, nil
}
