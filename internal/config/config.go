package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the main configuration for dtc.
type Config struct {
	SourceDir      string         `toml:"source_dir"`
	LogDir         string         `toml:"log_dir"`
	PollIntervalMS int            `toml:"poll_interval_ms"`
	Extensions     []string       `toml:"extensions"`
	Tool           ToolConfig     `toml:"tool"`
	Presets        []PresetConfig `toml:"presets"`
}

// ToolConfig holds the external metadata tool settings.
type ToolConfig struct {
	// Binary is the tool command name, or an absolute path override.
	Binary string `toml:"binary"`
	// Installer selects the bootstrap used when the tool is absent:
	// "brew" (default) or "none".
	Installer string `toml:"installer"`
}

// PresetConfig is a named canned workflow. Fields left unset in the
// file are left untouched when the preset is applied, so a preset can
// flip a single switch (the preview-only preset does exactly that).
type PresetConfig struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	MatchMode   string   `toml:"match_mode,omitempty"`
	SetModified *bool    `toml:"set_modified,omitempty"`
	SetCreated  *bool    `toml:"set_created,omitempty"`
	DryRun      *bool    `toml:"dry_run,omitempty"`
	Extensions  []string `toml:"extensions,omitempty"`
}

// FindPreset returns the preset with the given name, or nil.
func (c *Config) FindPreset(name string) *PresetConfig {
	for i := range c.Presets {
		if c.Presets[i].Name == name {
			return &c.Presets[i]
		}
	}
	return nil
}

func boolPtr(b bool) *bool { return &b }

// NewConfig creates a Config with default values and the stock presets.
func NewConfig(baseDir string) *Config {
	return &Config{
		LogDir:         filepath.Join(baseDir, "log"),
		PollIntervalMS: 150,
		Extensions:     []string{"jpg", "jpeg", "heic"},
		Tool: ToolConfig{
			Binary:    "exiftool",
			Installer: "brew",
		},
		Presets: []PresetConfig{
			{
				Name:        "all-created-from-modified",
				Description: "All files, match by Modified, Created = Modified",
				MatchMode:   "modified",
				SetModified: boolPtr(false),
				SetCreated:  boolPtr(true),
				DryRun:      boolPtr(false),
				Extensions:  []string{"all"},
			},
			{
				Name:        "photos-retarget",
				Description: "Photos, match by embedded date, set Modified to Target, Created = Modified",
				MatchMode:   "embedded",
				SetModified: boolPtr(true),
				SetCreated:  boolPtr(true),
				DryRun:      boolPtr(false),
				Extensions:  []string{"jpg", "jpeg", "heic"},
			},
			{
				Name:        "photos-created-from-modified",
				Description: "Photos, match by embedded date, Created = Modified (no change to Modified)",
				MatchMode:   "embedded",
				SetModified: boolPtr(false),
				SetCreated:  boolPtr(true),
				DryRun:      boolPtr(false),
				Extensions:  []string{"jpg", "jpeg", "heic"},
			},
			{
				Name:        "all-retarget",
				Description: "All files, match by Modified, set Modified to Target",
				MatchMode:   "modified",
				SetModified: boolPtr(true),
				SetCreated:  boolPtr(false),
				DryRun:      boolPtr(false),
				Extensions:  []string{"all"},
			},
			{
				Name:        "preview-only",
				Description: "Preview only (no writes)",
				DryRun:      boolPtr(true),
			},
		},
	}
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// writeToFile writes a Config to the specified file path.
// This is an internal helper and should not be exported.
func writeToFile(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Init initializes a new config file at the specified path with the provided Config.
func Init(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
