// Package config loads parser options from defaults, an optional YAML
// file and PGPARSE_ environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Options holds the settings shared by every parse call of an engine.
type Options struct {
	// StandardConformingStrings controls whether backslashes in plain
	// '...' literals are literal characters. Nil means on.
	StandardConformingStrings *bool `koanf:"standard_conforming_strings"`

	// MaxDepth bounds the nesting depth of the grammar parser.
	MaxDepth int `koanf:"max_depth"`

	// Parallelism bounds the number of inputs batch helpers process at once.
	Parallelism int `koanf:"parallelism"`

	LogLevel slog.Level `koanf:"log_level"`

	// Logger receives debug records. Not loaded from configuration.
	Logger *slog.Logger `koanf:"-"`
}

// StandardStrings reports the effective standard_conforming_strings
// setting.
func (o Options) StandardStrings() bool {
	return o.StandardConformingStrings == nil || *o.StandardConformingStrings
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks the numeric limits.
func (o Options) Validate() error {
	if o.MaxDepth <= 0 {
		return fmt.Errorf("%w: max_depth must be positive, got %d", ErrInvalid, o.MaxDepth)
	}
	if o.Parallelism <= 0 {
		return fmt.Errorf("%w: parallelism must be positive, got %d", ErrInvalid, o.Parallelism)
	}
	return nil
}

// NewLogger returns a text logger writing to w at the configured level.
func (o Options) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: o.LogLevel}))
}
