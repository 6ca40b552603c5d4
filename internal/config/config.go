package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory
const DefaultFileName = ".logscope.yaml"

// Config holds the audit settings. Precedence is defaults, then file, then
// environment, then command-line flags.
type Config struct {
	Root       string   `yaml:"root" toml:"root" validate:"required"`
	Format     string   `yaml:"format" toml:"format" validate:"oneof=text json yaml"`
	Strict     bool     `yaml:"strict" toml:"strict"`
	Check      bool     `yaml:"check" toml:"check"`
	SkipHidden bool     `yaml:"skip_hidden" toml:"skip_hidden"`
	Ignore     []string `yaml:"ignore" toml:"ignore" validate:"dive,required"`
	LogLevel   string   `yaml:"log_level" toml:"log_level" validate:"oneof=trace debug info warn warning error disabled"`
	LogFormat  string   `yaml:"log_format" toml:"log_format" validate:"oneof=console json"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Root:      ".",
		Format:    "text",
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

// Load reads a YAML or TOML config file. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	cfg.normalize()
	return cfg, nil
}

// ApplyEnv overrides settings from LOGSCOPE_* variables found by lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("LOGSCOPE_ROOT"); ok && v != "" {
		c.Root = v
	}
	if v, ok := lookup("LOGSCOPE_FORMAT"); ok && v != "" {
		c.Format = v
	}
	if v, ok := lookup("LOGSCOPE_LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup("LOGSCOPE_LOG_FORMAT"); ok && v != "" {
		c.LogFormat = v
	}

	bools := map[string]*bool{
		"LOGSCOPE_STRICT":      &c.Strict,
		"LOGSCOPE_CHECK":       &c.Check,
		"LOGSCOPE_SKIP_HIDDEN": &c.SkipHidden,
	}
	for key, dst := range bools {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %q", key, v)
		}
		*dst = b
	}

	c.normalize()
	return nil
}

// Validate normalizes and checks the settings
func (c *Config) Validate() error {
	c.normalize()
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// normalize trims values and fills empty fields with defaults
func (c *Config) normalize() {
	def := Default()

	c.Root = strings.TrimSpace(c.Root)
	if c.Root == "" {
		c.Root = def.Root
	}
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "" {
		c.Format = def.Format
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat == "" {
		c.LogFormat = def.LogFormat
	}

	// Validate and clean ignore entries
	cleaned := make([]string, 0, len(c.Ignore))
	for _, name := range c.Ignore {
		name = strings.TrimSpace(name)
		if name != "" {
			cleaned = append(cleaned, name)
		}
	}
	c.Ignore = cleaned
}
