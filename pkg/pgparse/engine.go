package pgparse

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/pgparse/internal/config"
	"github.com/leapstack-labs/pgparse/pkg/ast"
	"github.com/leapstack-labs/pgparse/pkg/fingerprint"
	"github.com/leapstack-labs/pgparse/pkg/parser"
	"github.com/leapstack-labs/pgparse/pkg/plpgsql"
	"github.com/leapstack-labs/pgparse/pkg/scanner"
	"github.com/leapstack-labs/pgparse/pkg/splitter"
	"github.com/leapstack-labs/pgparse/pkg/token"
)

// Options configures an Engine.
type Options = config.Options

// DefaultOptions returns the options used by the package level functions.
func DefaultOptions() Options {
	return config.Default()
}

// Bool returns a pointer to v, for setting
// Options.StandardConformingStrings.
func Bool(v bool) *bool {
	return config.Bool(v)
}

// Engine parses with a fixed set of options. It is safe for concurrent use.
type Engine struct {
	opts       Options
	logger     *slog.Logger
	parserOpts []parser.Option
	scanOpts   []scanner.Option
}

// New creates an engine. Unset fields are replaced by their defaults, so
// the zero Options behaves like DefaultOptions, and a nil Logger discards
// output.
func New(opts Options) (*Engine, error) {
	config.ApplyDefaults(&opts)
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		opts:   opts,
		logger: logger,
		parserOpts: []parser.Option{
			parser.WithMaxDepth(opts.MaxDepth),
			parser.WithStandardConformingStrings(opts.StandardStrings()),
			parser.WithLogger(logger),
		},
		scanOpts: []scanner.Option{
			scanner.WithStandardConformingStrings(opts.StandardStrings()),
		},
	}, nil
}

// NewFromConfig creates an engine from the YAML file at path (or defaults
// when path is empty) and PGPARSE_ environment overrides. Logs go to
// stderr at the configured level.
func NewFromConfig(path string) (*Engine, error) {
	opts, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	opts.Logger = opts.NewLogger(os.Stderr)
	return New(opts)
}

// Options returns the engine's effective options.
func (e *Engine) Options() Options {
	return e.opts
}

// Parse parses sql into one RawStmt per statement.
func (e *Engine) Parse(sql string) ([]*ast.RawStmt, error) {
	return parser.Parse(sql, e.parserOpts...)
}

// ParsePLpgSQL parses every PL/pgSQL function, procedure and DO block in
// sql.
func (e *Engine) ParsePLpgSQL(sql string) ([]map[string]any, error) {
	return plpgsql.ParseFunctions(sql, e.plpgsqlOpts()...)
}

// ParsePLpgSQLBody parses a bare PL/pgSQL body. opts may declare
// parameters or trigger variables.
func (e *Engine) ParsePLpgSQLBody(body string, opts ...plpgsql.Option) (*plpgsql.Function, error) {
	return plpgsql.ParseBody(body, append(e.plpgsqlOpts(), opts...)...)
}

func (e *Engine) plpgsqlOpts() []plpgsql.Option {
	return []plpgsql.Option{
		plpgsql.WithLogger(e.logger),
		plpgsql.WithParserOptions(e.parserOpts...),
	}
}

// Fingerprint returns the fingerprint of sql as 16 hex digits.
func (e *Engine) Fingerprint(sql string) (string, error) {
	h, err := fingerprint.Fingerprint(sql, e.parserOpts...)
	if err != nil {
		return "", err
	}
	fp := h.String()
	e.logger.Debug("fingerprinted", "fingerprint", fp)
	return fp, nil
}

// Scan tokenizes sql, comments included.
func (e *Engine) Scan(sql string) ([]token.Token, error) {
	return scanner.Scan(sql, e.scanOpts...)
}

// Split cuts sql into statements. With onlySlices the byte ranges are
// returned and the strings are nil; otherwise the reverse.
func (e *Engine) Split(sql string, onlySlices bool) ([]string, []splitter.Range, error) {
	if onlySlices {
		ranges, err := e.SplitSlices(sql)
		return nil, ranges, err
	}
	stmts, err := e.SplitStrings(sql)
	return stmts, nil, err
}

// SplitStrings returns the text of every statement in sql.
func (e *Engine) SplitStrings(sql string) ([]string, error) {
	stmts, err := splitter.Split(sql, e.scanOpts...)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("split statements", "count", len(stmts))
	return stmts, nil
}

// SplitSlices returns the byte range of every statement in sql.
func (e *Engine) SplitSlices(sql string) ([]splitter.Range, error) {
	ranges, err := splitter.Slices(sql, e.scanOpts...)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("split statements", "count", len(ranges))
	return ranges, nil
}

// ---------- Batch ----------

// ParseAll parses independent inputs concurrently. Results are in input
// order. The first failure cancels the remaining work and is returned
// wrapped with its input index.
func (e *Engine) ParseAll(ctx context.Context, inputs []string) ([][]*ast.RawStmt, error) {
	out := make([][]*ast.RawStmt, len(inputs))
	err := e.each(ctx, len(inputs), func(i int) error {
		stmts, err := e.Parse(inputs[i])
		if err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
		out[i] = stmts
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FingerprintAll fingerprints independent inputs concurrently, in the
// manner of ParseAll.
func (e *Engine) FingerprintAll(ctx context.Context, inputs []string) ([]string, error) {
	out := make([]string, len(inputs))
	err := e.each(ctx, len(inputs), func(i int) error {
		fp, err := e.Fingerprint(inputs[i])
		if err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
		out[i] = fp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// each runs fn for 0..n-1 with at most Parallelism calls in flight.
func (e *Engine) each(ctx context.Context, n int, fn func(i int) error) error {
	e.logger.Debug("batch started", "inputs", n, "parallelism", e.opts.Parallelism)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Parallelism)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(i)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	// Cancellation before any work started leaves the group without error.
	return ctx.Err()
}
