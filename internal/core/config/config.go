package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Source types for the three input collections.
const (
	SourcePostgres = "postgres"
	SourceRedis    = "redis"
	SourceFile     = "file"
)

// Config represents the top-level application config.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Source   SourceConfig   `koanf:"source"`
	Rollup   RollupConfig   `koanf:"rollup"`
}

type ServerConfig struct {
	Port          int    `koanf:"port"`
	Host          string `koanf:"host"`
	MaxBodySizeMB int    `koanf:"max_body_size_mb"`
	Mode          string `koanf:"mode"` // debug | release
}

type DatabaseConfig struct {
	Type         string `koanf:"type"`
	DSN          string `koanf:"dsn"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	AutoMigrate  bool   `koanf:"auto_migrate"`
}

// SourceConfig selects where bookings, vehicles and users are read from.
// postgres is the system of record; redis and file read the legacy
// browser-cache documents.
type SourceConfig struct {
	Type  string      `koanf:"type"`
	Dir   string      `koanf:"dir"` // file source: directory holding <key>.json
	Redis RedisConfig `koanf:"redis"`
	Keys  KeysConfig  `koanf:"keys"`
}

type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// KeysConfig names the document holding each collection.
type KeysConfig struct {
	Bookings string `koanf:"bookings"`
	Vehicles string `koanf:"vehicles"`
	Users    string `koanf:"users"`
}

type RollupConfig struct {
	Timezone       string `koanf:"timezone"`
	Enabled        bool   `koanf:"enabled"`          // background snapshot job
	Interval       string `koanf:"interval"`         // parsed and validated on startup
	SnapshotMaxAge string `koanf:"snapshot_max_age"` // older snapshots are recomputed live
	LoadTimeout    string `koanf:"load_timeout"`
	Retention      int    `koanf:"snapshot_retention"` // snapshots kept after each run
}

// Location resolves the bucketing timezone.
func (c RollupConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid rollup.timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c RollupConfig) IntervalDuration() time.Duration {
	d, _ := ParseInterval(c.Interval)
	return d
}

func (c RollupConfig) SnapshotMaxAgeDuration() time.Duration {
	d, _ := ParseInterval(c.SnapshotMaxAge)
	return d
}

func (c RollupConfig) LoadTimeoutDuration() time.Duration {
	d, _ := ParseInterval(c.LoadTimeout)
	return d
}

// ParseInterval parses a duration string.
// Supports Go duration syntax (e.g., "30s", "5m", "1h") plus "Xd" for days.
func ParseInterval(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("interval must not be empty")
	}

	// time.ParseDuration has no day unit.
	if len(s) > 1 && s[len(s)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(s, "%dd", &days); err != nil {
			return 0, fmt.Errorf("invalid interval %q: %w", s, err)
		}
		if days <= 0 {
			return 0, fmt.Errorf("interval must be positive, got %q", s)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid interval %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("interval must be positive, got %q", s)
	}
	return d, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.MaxBodySizeMB <= 0 {
		return fmt.Errorf("server.max_body_size_mb must be > 0")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}

	switch c.Source.Type {
	case SourcePostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required for source.type postgres")
		}
		if c.Database.MaxOpenConns <= 0 {
			return fmt.Errorf("database.max_open_conns must be > 0")
		}
		if c.Database.MaxIdleConns <= 0 {
			return fmt.Errorf("database.max_idle_conns must be > 0")
		}
		if c.Database.Type != "" && c.Database.Type != "postgres" {
			return fmt.Errorf("unsupported database.type %q", c.Database.Type)
		}
	case SourceRedis:
		if strings.TrimSpace(c.Source.Redis.Addr) == "" {
			return fmt.Errorf("source.redis.addr is required for source.type redis")
		}
		if c.Source.Redis.DB < 0 {
			return fmt.Errorf("source.redis.db must be >= 0")
		}
	case SourceFile:
		if strings.TrimSpace(c.Source.Dir) == "" {
			return fmt.Errorf("source.dir is required for source.type file")
		}
	default:
		return fmt.Errorf("unsupported source.type %q (must be postgres, redis or file)", c.Source.Type)
	}

	if c.Source.Keys.Bookings == "" || c.Source.Keys.Vehicles == "" || c.Source.Keys.Users == "" {
		return fmt.Errorf("source.keys.bookings, source.keys.vehicles and source.keys.users are required")
	}

	if _, err := c.Rollup.Location(); err != nil {
		return err
	}
	if _, err := ParseInterval(c.Rollup.Interval); err != nil {
		return fmt.Errorf("invalid rollup interval: %w", err)
	}
	if _, err := ParseInterval(c.Rollup.SnapshotMaxAge); err != nil {
		return fmt.Errorf("invalid rollup snapshot_max_age: %w", err)
	}
	if _, err := ParseInterval(c.Rollup.LoadTimeout); err != nil {
		return fmt.Errorf("invalid rollup load_timeout: %w", err)
	}
	if c.Rollup.Retention < 1 {
		return fmt.Errorf("rollup.snapshot_retention must be >= 1")
	}

	return nil
}

// Load parses config from defaults, an optional YAML file and RENTAL_ env vars,
// then validates it.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":               8080,
		"server.host":               "0.0.0.0",
		"server.max_body_size_mb":   1,
		"server.mode":               "release",
		"database.type":             "postgres",
		"database.dsn":              "",
		"database.max_open_conns":   25,
		"database.max_idle_conns":   25,
		"database.auto_migrate":     true,
		"source.type":               SourcePostgres,
		"source.dir":                "",
		"source.redis.addr":         "localhost:6379",
		"source.redis.password":     "",
		"source.redis.db":           0,
		"source.keys.bookings":      "bookings",
		"source.keys.vehicles":      "adminCars",
		"source.keys.users":         "adminUsers",
		"rollup.timezone":           "UTC",
		"rollup.enabled":            true,
		"rollup.interval":           "5m",
		"rollup.snapshot_max_age":   "15m",
		"rollup.load_timeout":       "30s",
		"rollup.snapshot_retention": 30,
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("RENTAL_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "RENTAL_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
