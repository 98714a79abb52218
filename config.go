package touchmap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the startup configuration read once from YAML.
type Config struct {
	// DisableTouchToMove turns click-to-move off at startup. It can be
	// turned back on later with the enableTtm command.
	DisableTouchToMove bool `yaml:"disable_touch_to_move"`

	// Map is the TMX file to load, relative to the config file.
	Map string `yaml:"map"`

	// Triggers are scripted touch conditions attached to map events.
	Triggers []TriggerConfig `yaml:"triggers"`

	// WatchTriggers reloads trigger scripts when they change on disk.
	WatchTriggers bool `yaml:"watch_triggers"`

	// dir is the directory relative paths are resolved against.
	dir string
}

// TriggerConfig names one trigger script.
type TriggerConfig struct {
	Name   string `yaml:"name"`
	Event  int    `yaml:"event"`
	Script string `yaml:"script"`
}

// LoadConfig reads and parses the YAML config at path. Relative paths inside
// the file are resolved against the file's directory.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("touchmap: read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// ParseConfig parses YAML config data. Unknown keys are rejected. An empty
// document yields the zero Config.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("touchmap: parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	seen := make(map[string]bool, len(c.Triggers))
	for i, t := range c.Triggers {
		if t.Name == "" {
			return fmt.Errorf("touchmap: parse config: trigger %d has no name", i)
		}
		if t.Script == "" {
			return fmt.Errorf("touchmap: parse config: trigger %q has no script", t.Name)
		}
		if seen[t.Name] {
			return fmt.Errorf("touchmap: parse config: duplicate trigger %q", t.Name)
		}
		seen[t.Name] = true
	}
	return nil
}

// Resolve returns path relative to the config file's directory. Absolute
// paths are returned unchanged.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.dir == "" {
		return path
	}
	return filepath.Join(c.dir, path)
}

// Dir returns the directory the config was loaded from, or "" for configs
// built with ParseConfig.
func (c *Config) Dir() string {
	return c.dir
}
