// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package config

import (
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/propmatch/internal/recommend"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	API       APIConfig        `koanf:"api"`
	Logging   LoggingConfig    `koanf:"logging"`
	Catalog   CatalogConfig    `koanf:"catalog"`
	Recommend recommend.Config `koanf:"recommend"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// APIConfig holds API behavior settings.
type APIConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// CacheTTL bounds how long a recommendation response is memoised.
	// Zero disables the cache.
	CacheTTL time.Duration `koanf:"cache_ttl"`

	// CacheMaxEntries caps the number of memoised responses. When full, the
	// entry closest to expiry is evicted.
	CacheMaxEntries int `koanf:"cache_max_entries"`

	// SwaggerEnabled mounts the interactive API docs under /swagger/.
	SwaggerEnabled bool `koanf:"swagger_enabled"`

	// SlowRequestThreshold is the latency above which a request is logged at warn.
	SlowRequestThreshold time.Duration `koanf:"slow_request_threshold"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// CatalogConfig describes where listings come from and how they are refreshed.
// URL takes precedence over Path when both are set.
type CatalogConfig struct {
	// Path is a local JSON file with the raw listing array.
	Path string `koanf:"path"`

	// URL is an HTTP endpoint serving the same JSON array.
	URL string `koanf:"url"`

	// Watch reloads the catalog when Path changes on disk.
	Watch bool `koanf:"watch"`

	// ReloadInterval triggers a periodic reload. Zero disables it.
	ReloadInterval time.Duration `koanf:"reload_interval"`

	// MinReloadGap is the minimum time between two reloads.
	MinReloadGap time.Duration `koanf:"min_reload_gap"`

	HTTPTimeout time.Duration `koanf:"http_timeout"`

	// Breaker settings apply to URL sources only.
	BreakerFailureThreshold uint32        `koanf:"breaker_failure_threshold"`
	BreakerTimeout          time.Duration `koanf:"breaker_timeout"`
}

// UsesURL reports whether the catalog is fetched over HTTP.
func (c *CatalogConfig) UsesURL() bool {
	return c.URL != ""
}

// Address returns the HTTP listen address.
func (s *ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
