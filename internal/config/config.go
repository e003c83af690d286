package config

import (
	"log/slog"
	"strings"

	"github.com/sadopc/utmtag/internal/core/history"
	"github.com/sadopc/utmtag/internal/core/linkbook"
	"github.com/sadopc/utmtag/internal/core/utm"
)

// Config holds the application configuration.
type Config struct {
	Theme           string   `yaml:"theme"`
	Variant         string   `yaml:"variant"`
	DefaultSource   string   `yaml:"default_source"`
	DefaultCampaign string   `yaml:"default_campaign"`
	FixedMedium     string   `yaml:"fixed_medium"`
	FixedContent    string   `yaml:"fixed_content"`
	Mediums         []string `yaml:"mediums"`
	StorageKey      string   `yaml:"storage_key"`
	DataDir         string   `yaml:"data_dir"`
	ExportDir       string   `yaml:"export_dir"`
	TimestampLayout string   `yaml:"timestamp_layout"`
	IDScheme        string   `yaml:"id_scheme"`
	LogLevel        string   `yaml:"log_level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:           "catppuccin-mocha",
		Variant:         string(utm.VariantOpen),
		DefaultSource:   "unknown",
		DefaultCampaign: "default",
		FixedMedium:     "referral",
		FixedContent:    "link",
		Mediums:         []string{"cpc", "email", "social", "banner", "referral"},
		StorageKey:      history.DefaultKey,
		DataDir:         "",
		ExportDir:       ".",
		TimestampLayout: linkbook.DefaultTimestampLayout,
		IDScheme:        string(history.IDTimestamp),
		LogLevel:        "info",
	}
}

// Policy builds the tagging policy described by the config.
func (c Config) Policy() (utm.Policy, error) {
	v, err := utm.ParseVariant(c.Variant)
	if err != nil {
		return utm.Policy{}, err
	}
	pol := utm.DefaultPolicy(v)
	if c.DefaultSource != "" {
		pol.DefaultSource = c.DefaultSource
	}
	if c.DefaultCampaign != "" {
		pol.DefaultCampaign = c.DefaultCampaign
	}
	pol.FixedMedium = c.FixedMedium
	pol.FixedContent = c.FixedContent
	return pol, nil
}

// BookOptions builds linkbook options from the config.
func (c Config) BookOptions() (linkbook.Options, error) {
	pol, err := c.Policy()
	if err != nil {
		return linkbook.Options{}, err
	}
	scheme, err := history.ParseIDScheme(c.IDScheme)
	if err != nil {
		return linkbook.Options{}, err
	}
	return linkbook.Options{
		Policy:          pol,
		IDScheme:        scheme,
		TimestampLayout: c.TimestampLayout,
	}, nil
}

// SlogLevel maps log_level to a slog level. Unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
