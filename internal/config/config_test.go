package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/pgparse/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ---------- Load Tests ----------

func TestLoadDefaults(t *testing.T) {
	opts, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.Default(), opts)
	require.NotNil(t, opts.StandardConformingStrings)
	assert.True(t, *opts.StandardConformingStrings)
	assert.Equal(t, 1000, opts.MaxDepth)
	assert.Positive(t, opts.Parallelism)
	assert.Equal(t, slog.LevelInfo, opts.LogLevel)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "pgparse.yaml", `
standard_conforming_strings: false
max_depth: 64
parallelism: 2
log_level: debug
`)

	opts, err := config.Load(path)
	require.NoError(t, err)

	require.NotNil(t, opts.StandardConformingStrings)
	assert.False(t, *opts.StandardConformingStrings)
	assert.Equal(t, 64, opts.MaxDepth)
	assert.Equal(t, 2, opts.Parallelism)
	assert.Equal(t, slog.LevelDebug, opts.LogLevel)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "pgparse.yaml", "max_depth: 10\n")

	opts, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, opts.MaxDepth)
	assert.True(t, opts.StandardStrings())
	assert.Equal(t, config.DefaultParallelism(), opts.Parallelism)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "pgparse.yaml", "max_depth: 10\nparallelism: 3\n")
	t.Setenv("PGPARSE_MAX_DEPTH", "20")
	t.Setenv("PGPARSE_LOG_LEVEL", "warn")

	opts, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20, opts.MaxDepth)
	assert.Equal(t, 3, opts.Parallelism)
	assert.Equal(t, slog.LevelWarn, opts.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{name: "zero depth", content: "max_depth: 0\n", invalid: true},
		{name: "negative parallelism", content: "parallelism: -1\n", invalid: true},
		{name: "bad level", content: "log_level: loud\n"},
		{name: "bad yaml", content: "max_depth: [1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), "pgparse.yaml", tt.content)
			_, err := config.Load(path)
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, config.ErrInvalid)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadFromDir(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "pgparse.yaml", "max_depth: 7\n")
		opts, err := config.LoadFromDir(dir)
		require.NoError(t, err)
		assert.Equal(t, 7, opts.MaxDepth)
	})

	t.Run("yml", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "pgparse.yml", "max_depth: 8\n")
		opts, err := config.LoadFromDir(dir)
		require.NoError(t, err)
		assert.Equal(t, 8, opts.MaxDepth)
	})

	t.Run("no file", func(t *testing.T) {
		opts, err := config.LoadFromDir(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, config.DefaultMaxDepth, opts.MaxDepth)
	})
}

// ---------- Options Tests ----------

func TestApplyDefaults(t *testing.T) {
	opts := config.Options{MaxDepth: 5}
	config.ApplyDefaults(&opts)
	assert.Equal(t, 5, opts.MaxDepth)
	assert.Equal(t, config.DefaultParallelism(), opts.Parallelism)
	require.NotNil(t, opts.StandardConformingStrings)
	assert.True(t, *opts.StandardConformingStrings)
	require.NoError(t, opts.Validate())

	off := config.Options{StandardConformingStrings: config.Bool(false)}
	config.ApplyDefaults(&off)
	assert.False(t, *off.StandardConformingStrings)

	config.ApplyDefaults(nil)
}

func TestStandardStrings(t *testing.T) {
	tests := []struct {
		name string
		opts config.Options
		want bool
	}{
		{name: "unset", opts: config.Options{}, want: true},
		{name: "on", opts: config.Options{StandardConformingStrings: config.Bool(true)}, want: true},
		{name: "off", opts: config.Options{StandardConformingStrings: config.Bool(false)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.StandardStrings())
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := config.Options{LogLevel: slog.LevelWarn}.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
