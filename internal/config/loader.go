package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Path returns ~/.config/utmtag/config.yaml.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "utmtag", "config.yaml"), nil
}

// Load loads configuration from ~/.config/utmtag/config.yaml.
func Load() Config {
	cfg := DefaultConfig()

	path, err := Path()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	var fromFile Config
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return cfg
	}
	return merge(cfg, fromFile)
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// ResolveDataDir returns the directory holding the storage database and logs:
// data_dir if set, else $XDG_DATA_HOME/utmtag, else ~/.local/share/utmtag.
func (c Config) ResolveDataDir() string {
	if c.DataDir != "" {
		return c.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "utmtag")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "utmtag")
}

// StoragePath returns the path of the key-value database.
func (c Config) StoragePath() string {
	return filepath.Join(c.ResolveDataDir(), "storage.db")
}

// merge overlays the non-empty fields of file onto base.
func merge(base, file Config) Config {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&base.Theme, file.Theme)
	set(&base.Variant, file.Variant)
	set(&base.DefaultSource, file.DefaultSource)
	set(&base.DefaultCampaign, file.DefaultCampaign)
	set(&base.FixedMedium, file.FixedMedium)
	set(&base.FixedContent, file.FixedContent)
	set(&base.StorageKey, file.StorageKey)
	set(&base.DataDir, file.DataDir)
	set(&base.ExportDir, file.ExportDir)
	set(&base.TimestampLayout, file.TimestampLayout)
	set(&base.IDScheme, file.IDScheme)
	set(&base.LogLevel, file.LogLevel)
	if len(file.Mediums) > 0 {
		base.Mediums = file.Mediums
	}
	return base
}
