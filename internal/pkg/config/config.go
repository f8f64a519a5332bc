package config

import (
	"io"
	"time"
)

// TimeConfig defines helpers for retrieving time-based configuration values.
type TimeConfig interface {
	// GetSecond retrieves the configuration value associated with the given key as seconds.
	// If the key does not exist or the value cannot be converted to an integer,
	// the implementation should handle it accordingly (e.g., return a default value).
	GetSecond(key string) time.Duration
}

// Config is the read-only configuration used to wire the application.
type Config interface {
	io.Closer
	TimeConfig

	// GetBool retrieves the configuration value associated with the given key as a bool.
	GetBool(key string) bool

	// GetFloat64 retrieves the configuration value associated with the given key as a float64.
	GetFloat64(key string) float64

	// GetString retrieves the configuration value associated with the given key as a string.
	GetString(key string) string

	// GetArray retrieves a comma separated configuration value as a slice.
	// Items are trimmed and empty items are dropped.
	GetArray(key string) []string
}
