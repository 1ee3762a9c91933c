package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/SanyaSinha11/CodeAlpha-Secure-Coding-Review/pkg/tools"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names a config file when --config is not given.
const EnvConfigPath = "CODECHECK_CONFIG"

// DefaultPath is read if present. Its absence is not an error.
const DefaultPath = ".codecheck.yaml"

// File mirrors the YAML document.
type File struct {
	// Timeout is a duration string like "90s" or "5m". Empty means no limit.
	Timeout string `yaml:"timeout"`

	// Tools maps a tool name (spotbugs, bandit, cppcheck, eslint) to the
	// executable to run instead of the one found on PATH.
	Tools map[string]string `yaml:"tools"`

	NoColor bool `yaml:"no_color"`
}

// Config holds resolved settings.
type Config struct {
	Timeout   time.Duration
	Overrides map[string]string
	NoColor   bool
}

func Default() *Config {
	return &Config{Overrides: map[string]string{}}
}

// Load reads the config file. An explicit path (argument or $CODECHECK_CONFIG)
// must exist; the default path is optional.
func Load(path string) (*Config, error) {
	explicit := true
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = DefaultPath
		explicit = false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (*Config, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return f.ToConfig()
}

func (f *File) ToConfig() (*Config, error) {
	cfg := Default()
	cfg.NoColor = f.NoColor

	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout: %w", err)
		}
		if d < 0 {
			return nil, fmt.Errorf("invalid timeout: %s is negative", f.Timeout)
		}
		cfg.Timeout = d
	}

	names := make([]string, 0, len(f.Tools))
	for name := range f.Tools {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !tools.IsKnownTool(name) {
			return nil, fmt.Errorf("unknown tool %q in tools", name)
		}
		if f.Tools[name] == "" {
			return nil, fmt.Errorf("empty executable for tool %q", name)
		}
		cfg.Overrides[name] = f.Tools[name]
	}

	return cfg, nil
}
