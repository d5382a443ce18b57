package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Strict makes the codec reject keys the DSL does not define instead
	// of ignoring them.
	Strict bool
	// Mostly used for log level.
	Development bool
}

// New returns a new Config with sensible defaults.
//
// The following environment variables are honored:
//
// - PAMSCHED_STRICT: reject unknown keys while parsing. Defaults to false,
// favoring forward compatibility.
// - PAMSCHED_DEVELOPMENT: whether to enable development mode.
//
// Both are optional booleans; unset or unparsable values fall back to false.
func New() (*Config, error) {
	strict := false
	if v := os.Getenv("PAMSCHED_STRICT"); v != "" {
		strict, _ = strconv.ParseBool(v)
	}

	development := false
	if v := os.Getenv("PAMSCHED_DEVELOPMENT"); v != "" {
		development, _ = strconv.ParseBool(v)
	}

	return &Config{
		Strict:      strict,
		Development: development,
	}, nil
}
