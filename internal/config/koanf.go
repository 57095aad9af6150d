// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/propmatch/internal/recommend"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/propmatch/config.yaml",
	"/etc/propmatch/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		API: APIConfig{
			CORSOrigins:          []string{"*"},
			RateLimitReqs:        100,
			RateLimitWindow:      time.Minute,
			RateLimitDisabled:    false,
			CacheTTL:             5 * time.Minute,
			CacheMaxEntries:      10000,
			SwaggerEnabled:       true,
			SlowRequestThreshold: time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Catalog: CatalogConfig{
			Path:                    "data/properties.json",
			Watch:                   true,
			ReloadInterval:          0,
			MinReloadGap:            2 * time.Second,
			HTTPTimeout:             10 * time.Second,
			BreakerFailureThreshold: 5,
			BreakerTimeout:          30 * time.Second,
		},
		Recommend: *recommend.DefaultConfig(),
	}
}

// Load loads configuration with layered sources:
//
//  1. Defaults: built-in values
//  2. Config File: optional YAML config file (if exists)
//  3. Environment Variables: override any mapped setting
func Load() (*Config, error) {
	return load(FindConfigFile())
}

// LoadFile loads configuration using an explicit YAML file path.
// Environment variables still take precedence over the file.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return load(path)
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	// HTTP_PORT -> server.port, CATALOG_PATH -> catalog.path
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// FindConfigFile returns the config file Load would read: CONFIG_PATH if it
// exists, else the first of DefaultConfigPaths found, else "".
func FindConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"api.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_host":        "server.host",
	"http_port":        "server.port",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// API
	"cors_origins":           "api.cors_origins",
	"rate_limit_requests":    "api.rate_limit_reqs",
	"rate_limit_window":      "api.rate_limit_window",
	"disable_rate_limit":     "api.rate_limit_disabled",
	"cache_ttl":              "api.cache_ttl",
	"cache_max_entries":      "api.cache_max_entries",
	"swagger_enabled":        "api.swagger_enabled",
	"slow_request_threshold": "api.slow_request_threshold",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Catalog
	"catalog_path":                      "catalog.path",
	"catalog_url":                       "catalog.url",
	"catalog_watch":                     "catalog.watch",
	"catalog_reload_interval":           "catalog.reload_interval",
	"catalog_min_reload_gap":            "catalog.min_reload_gap",
	"catalog_http_timeout":              "catalog.http_timeout",
	"catalog_breaker_failure_threshold": "catalog.breaker_failure_threshold",
	"catalog_breaker_timeout":           "catalog.breaker_timeout",

	// Recommendation engine
	"recommend_default_k":       "recommend.limits.default_k",
	"recommend_max_k":           "recommend.limits.max_k",
	"recommend_weight_location": "recommend.weights.location",
	"recommend_weight_type":     "recommend.weights.type",
	"recommend_weight_price":    "recommend.weights.price",
	"recommend_weight_size":     "recommend.weights.size",
	"recommend_weight_rooms":    "recommend.weights.rooms",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped variables return an empty key so they are skipped.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - LOG_LEVEL -> logging.level
//   - CATALOG_URL -> catalog.url
//   - RECOMMEND_DEFAULT_K -> recommend.limits.default_k
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// WatchConfigFile invokes callback whenever the file at path changes.
// The caller is responsible for synchronising access to any configuration
// it reloads from the callback.
func WatchConfigFile(path string, callback func()) error {
	provider := file.Provider(path)

	return provider.Watch(func(_ interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}
