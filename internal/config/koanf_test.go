// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolateConfigEnv points CONFIG_PATH at a missing file and runs from an
// empty directory so no stray config.yaml is picked up.
func isolateConfigEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.API.RateLimitReqs != 100 {
		t.Errorf("API.RateLimitReqs = %d, want 100", cfg.API.RateLimitReqs)
	}
	if cfg.API.CacheTTL != 5*time.Minute {
		t.Errorf("API.CacheTTL = %v, want 5m", cfg.API.CacheTTL)
	}
	if cfg.API.CacheMaxEntries != 10000 {
		t.Errorf("API.CacheMaxEntries = %d, want 10000", cfg.API.CacheMaxEntries)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Catalog.Path != "data/properties.json" {
		t.Errorf("Catalog.Path = %q, want data/properties.json", cfg.Catalog.Path)
	}
	if cfg.Recommend.Limits.DefaultK != 3 {
		t.Errorf("Recommend.Limits.DefaultK = %d, want 3", cfg.Recommend.Limits.DefaultK)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() = %v, want nil", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Recommend.Weights.Location != 0.30 {
		t.Errorf("Recommend.Weights.Location = %v, want 0.30", cfg.Recommend.Weights.Location)
	}
	if len(cfg.API.CORSOrigins) != 1 || cfg.API.CORSOrigins[0] != "*" {
		t.Errorf("API.CORSOrigins = %v, want [*]", cfg.API.CORSOrigins)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CATALOG_PATH", "/srv/listings.json")
	t.Setenv("CATALOG_RELOAD_INTERVAL", "90s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RECOMMEND_DEFAULT_K", "5")
	t.Setenv("CACHE_MAX_ENTRIES", "250")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Catalog.Path != "/srv/listings.json" {
		t.Errorf("Catalog.Path = %q, want /srv/listings.json", cfg.Catalog.Path)
	}
	if cfg.Catalog.ReloadInterval != 90*time.Second {
		t.Errorf("Catalog.ReloadInterval = %v, want 90s", cfg.Catalog.ReloadInterval)
	}
	if cfg.API.CacheMaxEntries != 250 {
		t.Errorf("API.CacheMaxEntries = %d, want 250", cfg.API.CacheMaxEntries)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.API.CORSOrigins) != len(want) {
		t.Fatalf("API.CORSOrigins = %v, want %v", cfg.API.CORSOrigins, want)
	}
	for i := range want {
		if cfg.API.CORSOrigins[i] != want[i] {
			t.Errorf("API.CORSOrigins[%d] = %q, want %q", i, cfg.API.CORSOrigins[i], want[i])
		}
	}
	if cfg.Recommend.Limits.DefaultK != 5 {
		t.Errorf("Recommend.Limits.DefaultK = %d, want 5", cfg.Recommend.Limits.DefaultK)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := isolateConfigEnv(t)
	path := filepath.Join(dir, "propmatch.yaml")
	writeFile(t, path, `
server:
  port: 7070
catalog:
  url: https://listings.example.com/properties.json
  http_timeout: 5s
recommend:
  limits:
    default_k: 4
    max_k: 20
`)
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
	if !cfg.Catalog.UsesURL() {
		t.Error("Catalog.UsesURL() = false, want true")
	}
	if cfg.Catalog.HTTPTimeout != 5*time.Second {
		t.Errorf("Catalog.HTTPTimeout = %v, want 5s", cfg.Catalog.HTTPTimeout)
	}
	if cfg.Recommend.Limits.DefaultK != 4 || cfg.Recommend.Limits.MaxK != 20 {
		t.Errorf("Recommend.Limits = %+v, want {4 20}", cfg.Recommend.Limits)
	}
	// Unset keys keep their defaults.
	if cfg.Recommend.Weights.Price != 0.25 {
		t.Errorf("Recommend.Weights.Price = %v, want 0.25", cfg.Recommend.Weights.Price)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolateConfigEnv(t)
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "server:\n  port: 7070\n")
	t.Setenv("HTTP_PORT", "6060")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Server.Port != 6060 {
		t.Errorf("Server.Port = %d, want 6060 from env", cfg.Server.Port)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("RECOMMEND_WEIGHT_LOCATION", "0.9")

	if _, err := Load(); err == nil {
		t.Error("Load() with weights summing above 1 should fail")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	isolateConfigEnv(t)

	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadFile(missing) error = nil, want error")
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := isolateConfigEnv(t)

	if got := FindConfigFile(); got != "" {
		t.Errorf("FindConfigFile() = %q, want empty", got)
	}

	writeFile(t, filepath.Join(dir, "config.yml"), "logging:\n  level: warn\n")
	if got := FindConfigFile(); got != "config.yml" {
		t.Errorf("FindConfigFile() = %q, want config.yml", got)
	}

	explicit := filepath.Join(dir, "explicit.yaml")
	writeFile(t, explicit, "")
	t.Setenv(ConfigPathEnvVar, explicit)
	if got := FindConfigFile(); got != explicit {
		t.Errorf("FindConfigFile() = %q, want %q", got, explicit)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"LOG_LEVEL", "logging.level"},
		{"CATALOG_URL", "catalog.url"},
		{"CACHE_MAX_ENTRIES", "api.cache_max_entries"},
		{"CATALOG_BREAKER_TIMEOUT", "catalog.breaker_timeout"},
		{"RECOMMEND_MAX_K", "recommend.limits.max_k"},
		{"RECOMMEND_WEIGHT_ROOMS", "recommend.weights.rooms"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.key); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
