// Package config loads pagination settings with viper.
//
// Keys (all optional):
//
//	paging:
//	  default_size: 20
//	  max_size: 100
//	  include_total_count: false
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/nrfta/relay-paging"
)

const (
	keyDefaultSize       = "paging.default_size"
	keyMaxSize           = "paging.max_size"
	keyIncludeTotalCount = "paging.include_total_count"
)

// Load reads the paging section of v into a PageConfig, falling back to the
// library defaults for unset keys. Non-positive sizes are rejected.
func Load(v *viper.Viper) (*paging.PageConfig, error) {
	if v == nil {
		return paging.NewPageConfig(), nil
	}

	cfg := &paging.PageConfig{
		DefaultSize:       getIntOrDefault(v, keyDefaultSize, paging.DefaultPageSize),
		MaxSize:           getIntOrDefault(v, keyMaxSize, paging.DefaultMaxPageSize),
		IncludeTotalCount: getBoolOrDefault(v, keyIncludeTotalCount, false),
	}

	if cfg.DefaultSize <= 0 {
		return nil, fmt.Errorf("config: %s must be positive, got %d", keyDefaultSize, cfg.DefaultSize)
	}
	if cfg.MaxSize <= 0 {
		return nil, fmt.Errorf("config: %s must be positive, got %d", keyMaxSize, cfg.MaxSize)
	}
	if cfg.DefaultSize > cfg.MaxSize {
		return nil, fmt.Errorf("config: %s (%d) exceeds %s (%d)", keyDefaultSize, cfg.DefaultSize, keyMaxSize, cfg.MaxSize)
	}

	return cfg, nil
}

// LoadFile reads a config file (any format viper supports) and loads it.
// Environment variables override file values: PAGING_MAX_SIZE, etc.
func LoadFile(path string) (*paging.PageConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Load(v)
}
