// Package config loads the CLI and service configuration: defaults, then an
// optional YAML file, then GOVSN_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/reoring/govsn/convert"
	"github.com/reoring/govsn/i18n"
)

// Config is the full runtime configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
	Validation ValidationConfig `yaml:"validation"`
	Conversion ConversionConfig `yaml:"conversion"`
}

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	BodyLimit       string        `yaml:"bodyLimit"` // echo size syntax, e.g. "4M"
	Metrics         bool          `yaml:"metrics"`
}

// LogConfig configures internal/log.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ValidationConfig controls how results are reported.
type ValidationConfig struct {
	Language       string `yaml:"language"`
	FailOnWarnings bool   `yaml:"failOnWarnings"`
}

// ConversionConfig feeds convert options.
type ConversionConfig struct {
	DefaultItemDuration int    `yaml:"defaultItemDuration"` // milliseconds
	UnsupportedItems    string `yaml:"unsupportedItems"`    // "fail" or "skip"
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			BodyLimit:       "8M",
			Metrics:         true,
		},
		Log:        LogConfig{Level: "info", Format: "json"},
		Validation: ValidationConfig{Language: "en"},
		Conversion: ConversionConfig{
			DefaultItemDuration: convert.DefaultItemDuration,
			UnsupportedItems:    convert.FailUnsupported.String(),
		},
	}
}

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

// Load reads path (skipped when empty) over the defaults, then applies
// environment overrides from lookup (os.LookupEnv when nil).
func Load(path string, lookup LookupFunc) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decode rejects unknown keys so typos do not silently fall back to defaults.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is empty"))
	}
	if c.Conversion.DefaultItemDuration <= 0 {
		errs = append(errs, fmt.Errorf("conversion.defaultItemDuration must be positive, got %d", c.Conversion.DefaultItemDuration))
	}
	if _, ok := convert.ParseUnsupportedPolicy(c.Conversion.UnsupportedItems); !ok {
		errs = append(errs, fmt.Errorf("conversion.unsupportedItems must be fail or skip, got %q", c.Conversion.UnsupportedItems))
	}
	if !supportedLanguage(c.Validation.Language) {
		errs = append(errs, fmt.Errorf("validation.language %q is not one of %v", c.Validation.Language, i18n.Languages()))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func supportedLanguage(lang string) bool {
	for _, l := range i18n.Languages() {
		if l == lang {
			return true
		}
	}
	return false
}

// ConvertOptions returns the convert options the configuration implies.
func (c Config) ConvertOptions() []convert.Option {
	policy, _ := convert.ParseUnsupportedPolicy(c.Conversion.UnsupportedItems)
	return []convert.Option{
		convert.WithDefaultItemDuration(c.Conversion.DefaultItemDuration),
		convert.WithUnsupportedItems(policy),
		convert.WithTranslator(i18n.New(c.Validation.Language)),
	}
}
