// Package config loads the bizbook TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nikbrunner/bizbook/internal/logger"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Fields the quick search can copy to the clipboard.
const (
	CopyPhone = "phone"
	CopyEmail = "email"
)

// Config is the complete bizbook configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Log     logger.Config `toml:"log"`
	UI      UIConfig      `toml:"ui"`

	// Dir is the directory holding the config file. Not stored.
	Dir string `toml:"-"`
}

// StorageConfig selects where the address book lives.
type StorageConfig struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
}

// UIConfig tunes the terminal UI and quick search.
type UIConfig struct {
	SidebarWidthPercent int    `toml:"sidebar_width_percent"`
	CopyField           string `toml:"copy_field"`
}

// DefaultConfig returns defaults rooted at dir.
func DefaultConfig(dir string) *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendJSON,
			Path:    filepath.Join(dir, "addressbook.json"),
		},
		Log: logger.Config{
			Level:  "info",
			Output: filepath.Join(dir, "bizbook.log"),
		},
		UI: UIConfig{
			SidebarWidthPercent: 30,
			CopyField:           CopyPhone,
		},
		Dir: dir,
	}
}

// DefaultDir returns ~/.config/bizbook.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "bizbook"), nil
}

// DefaultFilePath returns ~/.config/bizbook/config.toml.
func DefaultFilePath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config at path. A missing file yields defaults, which are
// written back so the user has something to edit.
func Load(path string) (*Config, error) {
	dir := filepath.Dir(path)
	cfg := DefaultConfig(dir)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		// Non-fatal: defaults work even if the file cannot be written
		_ = cfg.Save(path)
		return cfg, nil
	}

	var fileCfg Config
	if _, err := toml.DecodeFile(path, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	fileCfg.Dir = dir
	fileCfg.ApplyDefaults()

	if err := fileCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &fileCfg, nil
}

// ApplyDefaults fills every missing value from DefaultConfig.
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig(c.Dir)

	if c.Storage.Backend == "" {
		c.Storage.Backend = defaults.Storage.Backend
	}
	if c.Storage.Path == "" {
		c.Storage.Path = filepath.Join(c.Dir, "addressbook"+extension(c.Storage.Backend))
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Output == "" {
		c.Log.Output = defaults.Log.Output
	}
	if c.UI.SidebarWidthPercent <= 0 {
		c.UI.SidebarWidthPercent = defaults.UI.SidebarWidthPercent
	}
	if c.UI.CopyField == "" {
		c.UI.CopyField = defaults.UI.CopyField
	}
}

// Validate rejects values bizbook cannot work with.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("storage.backend must be %q or %q, got %q", BackendJSON, BackendSQLite, c.Storage.Backend)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error, disabled", c.Log.Level)
	}
	if c.UI.SidebarWidthPercent < 10 || c.UI.SidebarWidthPercent > 60 {
		return fmt.Errorf("ui.sidebar_width_percent must be between 10 and 60")
	}
	switch c.UI.CopyField {
	case CopyPhone, CopyEmail:
	default:
		return fmt.Errorf("ui.copy_field must be %q or %q", CopyPhone, CopyEmail)
	}
	return nil
}

// Save writes the config as TOML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config as TOML: %w", err)
	}
	return nil
}

func extension(backend string) string {
	if backend == BackendSQLite {
		return ".db"
	}
	return ".json"
}

// SetDataPath points storage at path, picking the backend from the file
// extension.
func (c *Config) SetDataPath(path string) {
	c.Storage.Path = path
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		c.Storage.Backend = BackendSQLite
	default:
		c.Storage.Backend = BackendJSON
	}
}
