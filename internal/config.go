package internal

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/txtindex/internal/manifest"
)

// Log formats.
const (
	LogFormatAuto = "auto"
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Config represents the application configuration.
type Config struct {
	App   ApplicationConfig `yaml:"app"`
	Index IndexConfig       `yaml:"index"`
	Lock  LockConfig        `yaml:"lock"`
	Watch WatchConfig       `yaml:"watch"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Index.Validate(); err != nil {
		return err
	}
	return c.Watch.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel  slog.Level `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if c.LogFormat == "" {
		c.LogFormat = LogFormatAuto
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.LogFormat, validation.In(LogFormatAuto, LogFormatJSON, LogFormatText)),
	)
}

// IndexConfig describes where data files live and where documents go.
// Every path is relative to Root.
type IndexConfig struct {
	Root      string `yaml:"root"`
	DataDir   string `yaml:"data_dir"`
	Suffix    string `yaml:"suffix"`
	MetaFile  string `yaml:"meta_file"`
	IndexFile string `yaml:"index_file"`
}

// Validate validates the index configuration.
func (c *IndexConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.DataDir, validation.Required, validation.By(relativePath)),
		validation.Field(&c.Suffix, validation.Required, validation.By(dotSuffix)),
		validation.Field(&c.MetaFile, validation.Required, validation.By(relativePath)),
		validation.Field(&c.IndexFile, validation.Required, validation.By(relativePath)),
	); err != nil {
		return err
	}
	if filepath.Clean(c.MetaFile) == filepath.Clean(c.IndexFile) {
		return errors.New("index: meta_file and index_file must differ")
	}
	return nil
}

// Layout converts the configuration into a manifest.Layout.
func (c *IndexConfig) Layout() manifest.Layout {
	return manifest.Layout{
		DataDir:   c.DataDir,
		Suffix:    c.Suffix,
		MetaFile:  c.MetaFile,
		IndexFile: c.IndexFile,
	}
}

// LockConfig controls the single-run guard.
//
// Path defaults to a file in the OS temp dir derived from the root.
type LockConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// WatchConfig holds watch-mode tuning.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Validate validates the watch configuration.
func (c *WatchConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Debounce, validation.Required, validation.Min(time.Millisecond)),
	)
}

func relativePath(value any) error {
	s, _ := value.(string)
	if filepath.IsAbs(s) {
		return errors.New("must be relative to root")
	}
	if c := filepath.Clean(s); c == ".." || strings.HasPrefix(c, ".."+string(filepath.Separator)) {
		return errors.New("must stay inside root")
	}
	return nil
}

func dotSuffix(value any) error {
	s, _ := value.(string)
	if !strings.HasPrefix(s, ".") || len(s) < 2 {
		return errors.New("must start with a dot, e.g. .txt")
	}
	return nil
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	layout := manifest.DefaultLayout()
	return &Config{
		App: ApplicationConfig{
			LogLevel:  slog.LevelInfo,
			LogFormat: LogFormatAuto,
		},
		Index: IndexConfig{
			Root:      ".",
			DataDir:   layout.DataDir,
			Suffix:    layout.Suffix,
			MetaFile:  layout.MetaFile,
			IndexFile: layout.IndexFile,
		},
		Lock: LockConfig{
			Enabled: true,
		},
		Watch: WatchConfig{
			Debounce: 300 * time.Millisecond,
		},
	}
}
