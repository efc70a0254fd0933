package config

import "time"

// DefaultPath is the configuration file read when no path is given.
const DefaultPath = ".articlegen.yml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ARTICLEGEN_"

// Config is the top-level articlegen configuration, corresponding to
// .articlegen.yml.
type Config struct {
	Addr                  string   `yaml:"addr" koanf:"addr"`
	TemplatesDir          string   `yaml:"templates_dir" koanf:"templates_dir"`
	RegistryFile          string   `yaml:"registry_file" koanf:"registry_file"`
	DefaultTemplate       string   `yaml:"default_template" koanf:"default_template"`
	AppTitle              string   `yaml:"app_title" koanf:"app_title"`
	Lang                  string   `yaml:"lang" koanf:"lang"`
	Variant               string   `yaml:"variant" koanf:"variant"`
	AllowHTTP             bool     `yaml:"allow_http" koanf:"allow_http"`
	RequestTimeoutSeconds int      `yaml:"request_timeout_seconds" koanf:"request_timeout_seconds"`
	Sanitize              bool     `yaml:"sanitize" koanf:"sanitize"`
	Watch                 bool     `yaml:"watch" koanf:"watch"`
	CORSOrigins           []string `yaml:"cors_origins" koanf:"cors_origins"`
	ExportDir             string   `yaml:"export_dir" koanf:"export_dir"`
	WrapperDir            string   `yaml:"wrapper_dir" koanf:"wrapper_dir"`
	WrapperExt            string   `yaml:"wrapper_ext" koanf:"wrapper_ext"`
}

// RequestTimeout converts RequestTimeoutSeconds to a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
