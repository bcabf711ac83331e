package pgparse_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/pgparse/internal/testutil"
	"github.com/leapstack-labs/pgparse/pkg/ast"
	"github.com/leapstack-labs/pgparse/pkg/parser"
	"github.com/leapstack-labs/pgparse/pkg/pgparse"
	"github.com/leapstack-labs/pgparse/pkg/plpgsql"
	"github.com/leapstack-labs/pgparse/pkg/scanner"
	"github.com/leapstack-labs/pgparse/pkg/splitter"
	"github.com/leapstack-labs/pgparse/pkg/token"
)

type corpus struct {
	Equivalent []struct {
		Name    string   `yaml:"name"`
		Queries []string `yaml:"queries"`
	} `yaml:"equivalent"`
	Errors []struct {
		SQL      string `yaml:"sql"`
		Message  string `yaml:"message"`
		Location int    `yaml:"location"`
	} `yaml:"errors"`
	Statements []string `yaml:"statements"`
}

func loadCorpus(t *testing.T) corpus {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "corpus.yaml"))
	require.NoError(t, err)
	var c corpus
	require.NoError(t, yaml.Unmarshal(data, &c))
	require.NotEmpty(t, c.Equivalent)
	require.NotEmpty(t, c.Errors)
	require.NotEmpty(t, c.Statements)
	return c
}

func newEngine(t *testing.T, opts pgparse.Options) *pgparse.Engine {
	t.Helper()
	opts.Logger = testutil.NewTestLogger(t)
	e, err := pgparse.New(opts)
	require.NoError(t, err)
	return e
}

const addFunction = `CREATE FUNCTION add(a integer, b integer) RETURNS integer AS $$
BEGIN
  RETURN a + b;
END;
$$ LANGUAGE plpgsql;`

// ---------- Version Tests ----------

func TestVersion(t *testing.T) {
	major, minor := pgparse.Version()
	assert.Equal(t, 16, major)
	assert.Equal(t, 0, minor)
}

// ---------- Parse Tests ----------

func TestParseEmpty(t *testing.T) {
	for _, sql := range []string{"", "-- comment", "/* a */ ; ;"} {
		t.Run(sql, func(t *testing.T) {
			stmts, err := pgparse.Parse(sql)
			require.NoError(t, err)
			assert.Empty(t, stmts)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, tt := range loadCorpus(t).Errors {
		t.Run(tt.SQL, func(t *testing.T) {
			stmts, err := pgparse.Parse(tt.SQL)
			require.Error(t, err)
			assert.Nil(t, stmts)

			var perr *parser.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.Message, perr.Message)
			assert.Equal(t, tt.Location, perr.Location)
		})
	}
}

func TestParseUnicodeTargetName(t *testing.T) {
	stmts, err := pgparse.Parse(`SELECT 1 AS "Naïve"`)
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	sel, ok := stmts[0].Stmt.(*ast.SelectStmt)
	require.True(t, ok)
	assert.Equal(t, "Naïve", sel.TargetList[0].(*ast.ResTarget).Name)
}

func TestParseLexError(t *testing.T) {
	_, err := pgparse.Parse("SELECT 'open")
	require.Error(t, err)
	var lexErr *scanner.LexError
	assert.True(t, errors.As(err, &lexErr))
}

// ---------- Tree Tests ----------

func TestParsedTreesRoundTrip(t *testing.T) {
	for _, sql := range loadCorpus(t).Statements {
		t.Run(sql, func(t *testing.T) {
			stmts, err := pgparse.Parse(sql)
			require.NoError(t, err)
			require.Len(t, stmts, 1)
			raw := stmts[0]

			fromMap, err := ast.FromMap(ast.ToMap(raw))
			require.NoError(t, err)
			assert.True(t, ast.Equal(raw, fromMap), "map round trip changed %s", raw)

			data, err := ast.MarshalJSON(raw)
			require.NoError(t, err)
			fromJSON, err := ast.UnmarshalJSON(data)
			require.NoError(t, err)
			assert.True(t, ast.Equal(raw, fromJSON), "JSON round trip changed %s", data)
		})
	}
}

func TestParsedTreesClone(t *testing.T) {
	for _, sql := range loadCorpus(t).Statements {
		t.Run(sql, func(t *testing.T) {
			stmts, err := pgparse.Parse(sql)
			require.NoError(t, err)
			raw := stmts[0]

			c := ast.CloneStmt(raw)
			require.NotSame(t, raw, c)
			assert.True(t, ast.Equal(raw, c))
			assert.Equal(t, ast.ToMap(raw), ast.ToMap(c))
			assert.Equal(t, raw.String(), c.String())
		})
	}
}

// ---------- Scan Tests ----------

func TestScan(t *testing.T) {
	toks, err := pgparse.Scan("select /* something here */ 1")
	require.NoError(t, err)
	require.Len(t, toks, 3)

	want := []struct {
		kind       string
		keyword    token.KeywordKind
		start, end int
	}{
		{kind: "SELECT", keyword: token.ReservedKeyword, start: 0, end: 6},
		{kind: "C_COMMENT", keyword: token.NoKeyword, start: 7, end: 27},
		{kind: "ICONST", keyword: token.NoKeyword, start: 28, end: 29},
	}
	for i, w := range want {
		assert.Equal(t, w.kind, toks[i].Kind.String())
		assert.Equal(t, w.keyword, toks[i].Keyword)
		assert.Equal(t, w.start, toks[i].Start)
		assert.Equal(t, w.end, toks[i].End)
	}
}

// ---------- Split Tests ----------

func TestSplit(t *testing.T) {
	sql := `select 1; select 2;    select "x";   select 4`
	want := []string{"select 1", "select 2", `select "x"`, "select 4"}

	stmts, ranges, err := pgparse.Split(sql, false)
	require.NoError(t, err)
	assert.Equal(t, want, stmts)
	assert.Nil(t, ranges)

	stmts, ranges, err = pgparse.Split(sql, true)
	require.NoError(t, err)
	assert.Nil(t, stmts)
	require.Len(t, ranges, len(want))
	for i, r := range ranges {
		assert.Equal(t, want[i], sql[r.Start:r.End])
	}

	got, err := pgparse.SplitStrings(sql)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	slices, err := pgparse.SplitSlices(sql)
	require.NoError(t, err)
	assert.Equal(t, ranges, slices)
	assert.Equal(t, splitter.Range{Start: 0, End: 8}, slices[0])
}

func TestSplitLexError(t *testing.T) {
	_, _, err := pgparse.Split("SELECT 1; SELECT 'abc", false)
	var lexErr *scanner.LexError
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, 17, lexErr.Offset)
}

// ---------- Fingerprint Tests ----------

func TestFingerprintEquivalent(t *testing.T) {
	for _, group := range loadCorpus(t).Equivalent {
		t.Run(group.Name, func(t *testing.T) {
			first, err := pgparse.Fingerprint(group.Queries[0])
			require.NoError(t, err)
			assert.Len(t, first, 16)
			for _, q := range group.Queries[1:] {
				fp, err := pgparse.Fingerprint(q)
				require.NoError(t, err)
				assert.Equal(t, first, fp, "query: %s", q)
			}
		})
	}
}

func TestFingerprintDistinct(t *testing.T) {
	a, err := pgparse.Fingerprint("SELECT a FROM t")
	require.NoError(t, err)
	b, err := pgparse.Fingerprint("SELECT b FROM t")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestFingerprintError(t *testing.T) {
	_, parseErr := pgparse.Parse("SELECT foo FRON bar")
	fp, err := pgparse.Fingerprint("SELECT foo FRON bar")
	require.Error(t, err)
	assert.Empty(t, fp)
	assert.Equal(t, parseErr, err)
}

// ---------- PL/pgSQL Tests ----------

func TestParsePLpgSQL(t *testing.T) {
	out, err := pgparse.ParsePLpgSQL(addFunction)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0], 1)
	assert.Contains(t, out[0], "PLpgSQL_function")
}

func TestParsePLpgSQLError(t *testing.T) {
	_, err := pgparse.ParsePLpgSQL("CREATE FUMCTION add() RETURNS int AS $$ BEGIN END $$ LANGUAGE plpgsql")
	var perr *parser.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 8, perr.Location)
}

func TestParsePLpgSQLBody(t *testing.T) {
	fn, err := pgparse.ParsePLpgSQLBody("BEGIN RETURN a + b; END", plpgsql.WithParams(
		plpgsql.Param{Name: "a", Type: "integer"},
		plpgsql.Param{Name: "b", Type: "integer"},
	))
	require.NoError(t, err)
	require.Len(t, fn.Action.Body, 1)

	ret, ok := fn.Action.Body[0].(*plpgsql.Return)
	require.True(t, ok)
	assert.Equal(t, "a + b", ret.Expr.Query)
}

// ---------- Engine Tests ----------

func TestNewRejectsInvalidOptions(t *testing.T) {
	opts := pgparse.DefaultOptions()
	opts.MaxDepth = -1
	_, err := pgparse.New(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_depth")
}

func TestNewAppliesDefaults(t *testing.T) {
	e := newEngine(t, pgparse.Options{})
	assert.Equal(t, parser.DefaultMaxDepth, e.Options().MaxDepth)
	assert.Positive(t, e.Options().Parallelism)
	require.NotNil(t, e.Options().StandardConformingStrings)
	assert.True(t, *e.Options().StandardConformingStrings)

	// A zero Options parses like the package level functions: the
	// backslash does not escape the closing quote.
	stmts, err := e.Parse(`SELECT 'C:\'`)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	c := stmts[0].Stmt.(*ast.SelectStmt).TargetList[0].(*ast.ResTarget).Val.(*ast.A_Const)
	assert.Equal(t, `C:\`, c.Val.(*ast.String).Sval)

	fpZero, err := e.Fingerprint(`SELECT 'C:\'`)
	require.NoError(t, err)
	fpDefault, err := pgparse.Fingerprint(`SELECT 'C:\'`)
	require.NoError(t, err)
	assert.Equal(t, fpDefault, fpZero)
}

func TestEngineStandardConformingStrings(t *testing.T) {
	literal := func(t *testing.T, e *pgparse.Engine) string {
		t.Helper()
		stmts, err := e.Parse(`SELECT 'a\tb'`)
		require.NoError(t, err)
		sel := stmts[0].Stmt.(*ast.SelectStmt)
		c := sel.TargetList[0].(*ast.ResTarget).Val.(*ast.A_Const)
		return c.Val.(*ast.String).Sval
	}

	on := pgparse.DefaultOptions()
	assert.Equal(t, `a\tb`, literal(t, newEngine(t, on)))

	off := pgparse.DefaultOptions()
	off.StandardConformingStrings = pgparse.Bool(false)
	assert.Equal(t, "a\tb", literal(t, newEngine(t, off)))
}

func TestEngineMaxDepth(t *testing.T) {
	opts := pgparse.DefaultOptions()
	opts.MaxDepth = 20
	e := newEngine(t, opts)

	_, err := e.Parse("SELECT " + strings.Repeat("(", 50) + "1" + strings.Repeat(")", 50))
	var perr *parser.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, parser.ErrStackDepth, perr.Message)
}

func TestNewFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pgparse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_depth: 20\nparallelism: 2\n"), 0o600))

	e, err := pgparse.NewFromConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 20, e.Options().MaxDepth)
	assert.Equal(t, 2, e.Options().Parallelism)

	_, err = pgparse.NewFromConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

// ---------- Batch Tests ----------

func TestParseAll(t *testing.T) {
	opts := pgparse.DefaultOptions()
	opts.Parallelism = 2
	e := newEngine(t, opts)

	inputs := []string{"SELECT 1", "SELECT 1; SELECT 2", "", "SELECT a FROM t; SELECT 3; SELECT 4"}
	out, err := e.ParseAll(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, out, len(inputs))
	for i, want := range []int{1, 2, 0, 3} {
		assert.Len(t, out[i], want, "input %d", i)
	}
}

func TestParseAllError(t *testing.T) {
	e := newEngine(t, pgparse.DefaultOptions())

	out, err := e.ParseAll(context.Background(), []string{"SELECT 1", "foo", "SELECT 2"})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "input 1")

	var perr *parser.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 1, perr.Location)
}

func TestParseAllCanceled(t *testing.T) {
	e := newEngine(t, pgparse.DefaultOptions())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.ParseAll(ctx, []string{"SELECT 1", "SELECT 2"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFingerprintAll(t *testing.T) {
	e := newEngine(t, pgparse.DefaultOptions())

	out, err := e.FingerprintAll(context.Background(), []string{
		"SELECT a FROM t WHERE b = 1",
		"SELECT b FROM t",
		"SELECT a FROM t WHERE b = 2",
	})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, out[0], out[2])
	assert.NotEqual(t, out[0], out[1])

	single, err := e.Fingerprint("SELECT b FROM t")
	require.NoError(t, err)
	assert.Equal(t, single, out[1])

	empty, err := e.FingerprintAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// ---------- Logging Tests ----------

func TestEngineDebugLogging(t *testing.T) {
	logger, rec := testutil.NewRecordingLogger(t)
	opts := pgparse.DefaultOptions()
	opts.Logger = logger
	e, err := pgparse.New(opts)
	require.NoError(t, err)

	_, err = e.SplitStrings("SELECT 1; SELECT 2")
	require.NoError(t, err)
	assert.True(t, rec.Contains(`msg="split statements"`, "count=2"))

	fp, err := e.Fingerprint("SELECT 1")
	require.NoError(t, err)
	assert.True(t, rec.Contains("msg=fingerprinted", "fingerprint="+fp))

	_, err = e.ParseAll(context.Background(), []string{"SELECT 1", "SELECT 2", "SELECT 3"})
	require.NoError(t, err)
	assert.True(t, rec.Contains(`msg="batch started"`, "inputs=3"))
	assert.True(t, rec.Contains(`msg="parsed statement"`, "tag=SelectStmt"))
}
