package config

import (
	"fmt"
	"time"
)

// Presence variants the server can run.
const (
	ModeRoom   = "room"   // room-scoped presence, duplicate names allowed
	ModeDirect = "direct" // flat directory, unique names, point-to-point routing
)

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	Mode              string        `mapstructure:"mode" yaml:"mode"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	AllowedOrigins    []string      `mapstructure:"allowed_origins" yaml:"allowed_origins"`
	EventRateLimit    int           `mapstructure:"event_rate_limit" yaml:"event_rate_limit"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":3000",
		Mode:              ModeRoom,
		LogLevel:          "info",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		AllowedOrigins:    []string{"*"},
		EventRateLimit:    0, // unlimited
	}
}

// Validate rejects configurations the server cannot run with.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeRoom, ModeDirect:
	default:
		return fmt.Errorf("unknown mode %q (want %q or %q)", c.Mode, ModeRoom, ModeDirect)
	}
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	return nil
}
