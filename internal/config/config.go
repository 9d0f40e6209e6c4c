package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"eventcal/internal/calendar"
	"eventcal/internal/model"
)

// Config is the top-level application configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// InstitutionalDomain is the email suffix every contact must carry.
	InstitutionalDomain string `yaml:"institutional_domain" json:"institutional_domain"`

	// HorizonMonths is how many calendar months ahead events may be booked.
	HorizonMonths int `yaml:"horizon_months" json:"horizon_months"`

	// MinDuration / MaxDuration bound event length in minutes.
	MinDuration int `yaml:"min_duration" json:"min_duration"`
	MaxDuration int `yaml:"max_duration" json:"max_duration"`

	// InitialCapacity is the registry's starting slot count and growth step.
	InitialCapacity int `yaml:"initial_capacity" json:"initial_capacity"`

	// ExportPath, if set, receives an iCalendar file of the registry when
	// the organizer stops.
	ExportPath string `yaml:"export_path,omitempty" json:"export_path,omitempty"`

	// SeedPath, if set, is an iCalendar file or http(s) feed whose events are admitted
	// before the first command is read.
	SeedPath string `yaml:"seed_path,omitempty" json:"seed_path,omitempty"`

	// CacheDir keeps the last good body of an http(s) seed feed. Empty
	// disables the cache.
	CacheDir string `yaml:"cache_dir,omitempty" json:"cache_dir,omitempty"`

	// MetricsPath, if set, receives a Prometheus textfile of command and
	// rejection counters when the organizer stops.
	MetricsPath string `yaml:"metrics_path,omitempty" json:"metrics_path,omitempty"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:            "info",
		InstitutionalDomain: model.InstitutionalDomain,
		HorizonMonths:       calendar.DefaultHorizonMonths,
		MinDuration:         calendar.DefaultMinDuration,
		MaxDuration:         calendar.DefaultMaxDuration,
		InitialCapacity:     calendar.DefaultCapacity,
	}
}

// Normalize fills in missing/zero values with defaults so that
// partially-filled configs still behave correctly.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.InstitutionalDomain == "" {
		c.InstitutionalDomain = def.InstitutionalDomain
	}
	if c.HorizonMonths <= 0 {
		c.HorizonMonths = def.HorizonMonths
	}
	if c.MinDuration <= 0 {
		c.MinDuration = def.MinDuration
	}
	if c.MaxDuration <= 0 {
		c.MaxDuration = def.MaxDuration
	}
	// An inverted range would reject everything; restore the defaults.
	if c.MinDuration > c.MaxDuration {
		c.MinDuration = def.MinDuration
		c.MaxDuration = def.MaxDuration
	}
	if c.InitialCapacity <= 0 {
		c.InitialCapacity = def.InitialCapacity
	}
}

// Rules projects the admission rules out of the configuration.
func (c *Config) Rules() calendar.Rules {
	return calendar.Rules{
		Domain:        c.InstitutionalDomain,
		HorizonMonths: c.HorizonMonths,
		MinDuration:   c.MinDuration,
		MaxDuration:   c.MaxDuration,
	}
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist, a default config is written with 0600
//     perms and returned.
//   - Otherwise the YAML is unmarshaled and normalized.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// First run: create default config file.
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Even if save fails, return cfg with error so caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes cfg to path atomically (temp file + rename) with 0600 perms,
// creating the parent directory if needed.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, data)
}

// Save is a convenience method that delegates to the package-level Save.
func (c *Config) Save(path string) error {
	return Save(path, c)
}

// WriteFileAtomic writes data next to path and renames it into place, so a
// reader never observes a partially written file.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".eventcal-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// Ensure we clean up temp file on error.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
