// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/tomtom215/propmatch/internal/logging"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	return nil
}

// validEnvironments defines the allowed environment names
var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %v", c.Server.ShutdownTimeout)
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateAPI validates CORS, rate limiting and cache settings.
func (c *Config) validateAPI() error {
	if len(c.API.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must contain at least one origin")
	}
	if c.IsProduction() && c.hasWildcardCORS() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production. " +
			"Set specific origins: CORS_ORIGINS=https://yourdomain.com")
	}
	if c.API.CacheTTL < 0 {
		return fmt.Errorf("CACHE_TTL must not be negative, got %v", c.API.CacheTTL)
	}
	if c.API.CacheTTL > 0 && c.API.CacheMaxEntries < 1 {
		return fmt.Errorf("CACHE_MAX_ENTRIES must be at least 1 when the cache is enabled, got %d", c.API.CacheMaxEntries)
	}
	if c.API.SlowRequestThreshold < 0 {
		return fmt.Errorf("SLOW_REQUEST_THRESHOLD must not be negative, got %v", c.API.SlowRequestThreshold)
	}
	return c.validateRateLimits()
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.API.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.API.RateLimitDisabled {
		return nil
	}

	if c.API.RateLimitReqs < minRateLimitRequests || c.API.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.API.RateLimitWindow < minRateLimitWindow || c.API.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogFormats defines the allowed log output formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validateCatalog validates the listing source and reload settings.
func (c *Config) validateCatalog() error {
	cat := &c.Catalog
	if cat.Path == "" && cat.URL == "" {
		return fmt.Errorf("one of CATALOG_PATH or CATALOG_URL is required")
	}

	if cat.UsesURL() {
		u, err := url.Parse(cat.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("CATALOG_URL must be an absolute http(s) URL, got %q", cat.URL)
		}
		if cat.HTTPTimeout <= 0 {
			return fmt.Errorf("CATALOG_HTTP_TIMEOUT must be positive, got %v", cat.HTTPTimeout)
		}
		if cat.BreakerFailureThreshold == 0 {
			return fmt.Errorf("CATALOG_BREAKER_FAILURE_THRESHOLD must be positive")
		}
		if cat.BreakerTimeout <= 0 {
			return fmt.Errorf("CATALOG_BREAKER_TIMEOUT must be positive, got %v", cat.BreakerTimeout)
		}
	}

	if cat.ReloadInterval < 0 {
		return fmt.Errorf("CATALOG_RELOAD_INTERVAL must not be negative, got %v", cat.ReloadInterval)
	}
	if cat.MinReloadGap < 0 {
		return fmt.Errorf("CATALOG_MIN_RELOAD_GAP must not be negative, got %v", cat.MinReloadGap)
	}
	return nil
}
