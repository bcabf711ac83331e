package config

import (
	"log/slog"
	"runtime"

	"github.com/leapstack-labs/pgparse/pkg/parser"
)

// Default configuration values.
const (
	DefaultStandardConformingStrings = true
	DefaultMaxDepth                  = parser.DefaultMaxDepth
	DefaultLogLevel                  = slog.LevelInfo
)

// DefaultParallelism is the batch parallelism used when none is set.
func DefaultParallelism() int {
	return runtime.GOMAXPROCS(0)
}

// Default returns the options used when nothing is configured.
func Default() Options {
	return Options{
		StandardConformingStrings: Bool(DefaultStandardConformingStrings),
		MaxDepth:                  DefaultMaxDepth,
		Parallelism:               DefaultParallelism(),
		LogLevel:                  DefaultLogLevel,
	}
}

// Bool returns a pointer to v, for setting StandardConformingStrings.
func Bool(v bool) *bool {
	return &v
}

// ApplyDefaults fills unset fields with their defaults.
func ApplyDefaults(o *Options) {
	if o == nil {
		return
	}
	if o.StandardConformingStrings == nil {
		o.StandardConformingStrings = Bool(DefaultStandardConformingStrings)
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Parallelism == 0 {
		o.Parallelism = DefaultParallelism()
	}
}

// defaultMap is the defaults layer loaded before file and environment.
func defaultMap() map[string]interface{} {
	return map[string]interface{}{
		"standard_conforming_strings": DefaultStandardConformingStrings,
		"max_depth":                   DefaultMaxDepth,
		"parallelism":                 DefaultParallelism(),
		"log_level":                   DefaultLogLevel.String(),
	}
}
