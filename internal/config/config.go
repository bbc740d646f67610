// Package config loads layered settings: defaults, an optional YAML file,
// TASK_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendDocument = "document"
	BackendSQLite   = "sqlite"
)

// File names inside the data directory.
const (
	DocumentFile = "tasks.yaml"
	DatabaseFile = "task.db"
)

// Config represents the resolved configuration.
type Config struct {
	Backend string `mapstructure:"backend"`
	DataDir string `mapstructure:"data_dir"`
	NoColor bool   `mapstructure:"no_color"`
	Verbose bool   `mapstructure:"verbose"`
}

// ErrUnknownBackend is returned for a backend name other than document or sqlite.
var ErrUnknownBackend = errors.New("unknown storage backend")

// DocumentPath returns the location of the YAML document.
func (c *Config) DocumentPath() string {
	return filepath.Join(c.DataDir, DocumentFile)
}

// DatabasePath returns the location of the SQLite database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, DatabaseFile)
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("backend", BackendDocument)
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("TASK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags makes set flags override file and environment values. Flag
// names use dashes; keys use underscores.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, name := range []string{"backend", "data-dir", "no-color", "verbose"} {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(strings.ReplaceAll(name, "-", "_"), f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load merges the config file at path (if it exists) into v and decodes
// the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	switch cfg.Backend {
	case BackendDocument, BackendSQLite:
	default:
		return nil, fmt.Errorf("%w %q (want %s or %s)", ErrUnknownBackend, cfg.Backend, BackendDocument, BackendSQLite)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir()
	}

	return &cfg, nil
}

// DefaultDataDir returns $XDG_DATA_HOME/task, falling back to
// ~/.local/share/task.
func DefaultDataDir() string {
	return filepath.Join(xdgDir("XDG_DATA_HOME", ".local", "share"), "task")
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/task/config.yaml, falling back
// to ~/.config/task/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), "task", "config.yaml")
}

func xdgDir(env string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(fallback...)
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}
