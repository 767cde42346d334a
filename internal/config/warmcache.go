// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package config holds the run configuration for the warm-cache utility.
// Values come from built-in defaults, then an optional YAML file, then
// environment variables, in that order of precedence (environment wins).
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KyuubiYoru/docker-pihole-unbound/internal/logging"
)

// Environment variables recognized by Load.
const (
	EnvDays    = "WARM_CACHE_DAYS"
	EnvMax     = "WARM_CACHE_MAX"
	EnvPort    = "UNBOUND_PORT"
	EnvDelayMs = "WARM_CACHE_DELAY_MS"
	EnvDBPath  = "FTL_DB_PATH"
)

// DefaultDBPath is where Pi-hole FTL keeps its query database.
const DefaultDBPath = "/etc/pihole/pihole-FTL.db"

// Config is the fully resolved configuration for one warming run.
type Config struct {
	// DaysBack is the look-back window over the query log, in days.
	DaysBack int

	// MaxDomains caps how many domains are warmed per run.
	MaxDomains int

	// ResolverHost and ResolverPort locate the Unbound instance.
	ResolverHost string
	ResolverPort int

	// Delay is the pause between consecutive domains. Zero disables it.
	Delay time.Duration

	// DBPath is the FTL query database file.
	DBPath string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DaysBack:     3,
		MaxDomains:   500,
		ResolverHost: "127.0.0.1",
		ResolverPort: 5335,
		Delay:        10 * time.Millisecond,
		DBPath:       DefaultDBPath,
	}
}

// fileConfig mirrors the optional YAML config file. Pointer fields
// distinguish "absent" from zero values.
type fileConfig struct {
	DaysBack     *int    `yaml:"days_back"`
	MaxDomains   *int    `yaml:"max_domains"`
	ResolverHost *string `yaml:"resolver_host"`
	ResolverPort *int    `yaml:"resolver_port"`
	DelayMs      *int    `yaml:"delay_ms"`
	DBPath       *string `yaml:"db_path"`
}

// Load resolves the configuration. path names an optional YAML file; an
// empty path skips the file layer. A malformed file is a fatal error, but
// malformed individual environment values only warn and keep the previous
// value so a typo cannot abort a scheduled warming run.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return cfg, err
		}
	}
	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.DaysBack != nil {
		c.DaysBack = *fc.DaysBack
	}
	if fc.MaxDomains != nil {
		c.MaxDomains = *fc.MaxDomains
	}
	if fc.ResolverHost != nil {
		c.ResolverHost = *fc.ResolverHost
	}
	if fc.ResolverPort != nil {
		c.ResolverPort = *fc.ResolverPort
	}
	if fc.DelayMs != nil {
		c.Delay = time.Duration(*fc.DelayMs) * time.Millisecond
	}
	if fc.DBPath != nil {
		c.DBPath = *fc.DBPath
	}
	return nil
}

func (c *Config) applyEnv() {
	c.DaysBack = envInt(EnvDays, c.DaysBack)
	c.MaxDomains = envInt(EnvMax, c.MaxDomains)
	c.ResolverPort = envInt(EnvPort, c.ResolverPort)
	ms := envInt(EnvDelayMs, int(c.Delay/time.Millisecond))
	c.Delay = time.Duration(ms) * time.Millisecond
	if path := os.Getenv(EnvDBPath); path != "" {
		c.DBPath = path
	}
}

// envInt reads a non-negative integer from the environment, keeping the
// fallback on absence or bad input.
func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		logging.Warn("Ignoring invalid %s=%q, using %d", name, raw, fallback)
		return fallback
	}
	return n
}
