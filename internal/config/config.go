package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (ARTICLEGEN_*). A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// ARTICLEGEN_ALLOW_HTTP -> allow_http, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("addr is required")
	}
	if strings.TrimSpace(c.DefaultTemplate) == "" {
		return fmt.Errorf("default_template is required")
	}
	if c.Variant != "" && c.Variant != "light" && c.Variant != "dark" {
		return fmt.Errorf("invalid variant %q: must be light or dark", c.Variant)
	}
	if c.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("request_timeout_seconds must be non-negative")
	}
	if c.TemplatesDir != "" {
		info, err := os.Stat(c.TemplatesDir)
		if err != nil {
			return fmt.Errorf("templates_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("templates_dir %s is not a directory", c.TemplatesDir)
		}
	}
	if c.WrapperDir != "" {
		info, err := os.Stat(c.WrapperDir)
		if err != nil {
			return fmt.Errorf("wrapper_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("wrapper_dir %s is not a directory", c.WrapperDir)
		}
	}
	if c.Watch && c.TemplatesDir == "" {
		return fmt.Errorf("watch requires templates_dir")
	}
	return nil
}
