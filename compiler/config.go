package compiler

import (
	"fmt"
	"iter"
	"maps"
)

const (
	DEFAULT_CAPACITY = 30000 // Maximum instructions in a program.
	DEFAULT_NESTING  = 0     // Bracket nesting is bounded only by capacity.
)

var _compiler_defines = map[string]string{
	"DEFAULT_CAPACITY": fmt.Sprintf("%d", DEFAULT_CAPACITY),
	"DEFAULT_NESTING":  fmt.Sprintf("%d", DEFAULT_NESTING),
}

// Config holds the compiler limits. Zero values select the defaults.
type Config struct {
	Capacity int `toml:"capacity"` // Maximum number of instructions.
	Nesting  int `toml:"nesting"`  // Maximum loop nesting depth, 0 for unlimited.
}

// DefaultConfig returns the default compiler limits.
func DefaultConfig() Config {
	return Config{
		Capacity: DEFAULT_CAPACITY,
		Nesting:  DEFAULT_NESTING,
	}
}

// Defines returns the compiler constants for configuration scripts.
func Defines() iter.Seq2[string, string] {
	return maps.All(_compiler_defines)
}

// Normalize fills zero fields with defaults and checks the result.
func (cfg Config) Normalize() (out Config, err error) {
	out = cfg
	if out.Capacity == 0 {
		out.Capacity = DEFAULT_CAPACITY
	}

	if out.Capacity < 0 || out.Nesting < 0 {
		err = ErrConfigInvalid
	}

	return
}
