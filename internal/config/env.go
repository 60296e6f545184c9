package config

import (
	"fmt"
	"strconv"
	"time"
)

// EnvPrefix prefixes every override variable.
const EnvPrefix = "GOVSN_"

type envBinder struct {
	lookup LookupFunc
	err    error
}

func (b *envBinder) str(key string, dst *string) {
	if v, ok := b.lookup(EnvPrefix + key); ok && v != "" {
		*dst = v
	}
}

func (b *envBinder) integer(key string, dst *int) {
	v, ok := b.lookup(EnvPrefix + key)
	if !ok || v == "" || b.err != nil {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		b.err = fmt.Errorf("config: %s%s: %w", EnvPrefix, key, err)
		return
	}
	*dst = n
}

func (b *envBinder) boolean(key string, dst *bool) {
	v, ok := b.lookup(EnvPrefix + key)
	if !ok || v == "" || b.err != nil {
		return
	}
	t, err := strconv.ParseBool(v)
	if err != nil {
		b.err = fmt.Errorf("config: %s%s: %w", EnvPrefix, key, err)
		return
	}
	*dst = t
}

func (b *envBinder) duration(key string, dst *time.Duration) {
	v, ok := b.lookup(EnvPrefix + key)
	if !ok || v == "" || b.err != nil {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		b.err = fmt.Errorf("config: %s%s: %w", EnvPrefix, key, err)
		return
	}
	*dst = d
}

// applyEnv overlays GOVSN_* variables. Environment wins over the file.
func applyEnv(cfg *Config, lookup LookupFunc) error {
	b := &envBinder{lookup: lookup}
	b.str("ADDR", &cfg.Server.Addr)
	b.duration("READ_TIMEOUT", &cfg.Server.ReadTimeout)
	b.duration("WRITE_TIMEOUT", &cfg.Server.WriteTimeout)
	b.duration("SHUTDOWN_TIMEOUT", &cfg.Server.ShutdownTimeout)
	b.str("BODY_LIMIT", &cfg.Server.BodyLimit)
	b.boolean("METRICS", &cfg.Server.Metrics)
	b.str("LOG_LEVEL", &cfg.Log.Level)
	b.str("LOG_FORMAT", &cfg.Log.Format)
	b.str("LANGUAGE", &cfg.Validation.Language)
	b.boolean("FAIL_ON_WARNINGS", &cfg.Validation.FailOnWarnings)
	b.integer("DEFAULT_ITEM_DURATION", &cfg.Conversion.DefaultItemDuration)
	b.str("UNSUPPORTED_ITEMS", &cfg.Conversion.UnsupportedItems)
	return b.err
}
