package plpgsql_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/leapstack-labs/pgparse/internal/testutil"
	"github.com/leapstack-labs/pgparse/pkg/parser"
	"github.com/leapstack-labs/pgparse/pkg/plpgsql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseBody(t *testing.T, body string, opts ...plpgsql.Option) *plpgsql.Function {
	t.Helper()
	opts = append(opts, plpgsql.WithLogger(testutil.NewTestLogger(t)))
	fn, err := plpgsql.ParseBody(body, opts...)
	require.NoError(t, err, "body: %s", body)
	require.NotNil(t, fn.Action)
	return fn
}

func parseErr(t *testing.T, body string, opts ...plpgsql.Option) *parser.ParseError {
	t.Helper()
	_, err := plpgsql.ParseBody(body, opts...)
	require.Error(t, err, "body: %s", body)
	var perr *parser.ParseError
	require.True(t, errors.As(err, &perr), "expected *parser.ParseError, got %T", err)
	return perr
}

// ---------- Function Tests ----------

const addFunction = `CREATE FUNCTION add(a integer, b integer) RETURNS integer AS $$
BEGIN
  RETURN a + b;
END;
$$ LANGUAGE plpgsql;`

func TestParseFunctions(t *testing.T) {
	out, err := plpgsql.ParseFunctions(addFunction)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0], 1)

	fn, ok := out[0]["PLpgSQL_function"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, fn["datums"], 3)

	action := fn["action"].(map[string]any)["PLpgSQL_stmt_block"].(map[string]any)
	assert.Equal(t, 2, action["lineno"])
	body := action["body"].([]any)
	require.Len(t, body, 1)
	ret := body[0].(map[string]any)["PLpgSQL_stmt_return"].(map[string]any)
	assert.Equal(t, 3, ret["lineno"])
	assert.Equal(t, map[string]any{"PLpgSQL_expr": map[string]any{"query": "a + b", "parseMode": 2}}, ret["expr"])
}

func TestParseFunctionsGrammarError(t *testing.T) {
	_, err := plpgsql.ParseFunctions("CREATE FUMCTION add() RETURNS int AS $$ BEGIN END $$ LANGUAGE plpgsql")
	require.Error(t, err)
	var perr *parser.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 8, perr.Location)
}

func TestParseFunctionsSelectsPLpgSQL(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want int
	}{
		{name: "sql function skipped", sql: "CREATE FUNCTION f() RETURNS int LANGUAGE sql AS 'SELECT 1'", want: 0},
		{name: "plain statement skipped", sql: "SELECT 1", want: 0},
		{name: "do block", sql: "DO $$BEGIN PERFORM 1; END$$", want: 1},
		{name: "two functions", sql: addFunction + "\n" + addFunction, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := plpgsql.ParseFunctions(tt.sql)
			require.NoError(t, err)
			assert.Len(t, out, tt.want)
		})
	}
}

func TestParseBodyDatums(t *testing.T) {
	fn := parseBody(t, `
DECLARE
  total CONSTANT numeric NOT NULL := 0;
  r record;
  amount ALIAS FOR $1;
BEGIN
  RETURN total;
END`, plpgsql.WithParams(plpgsql.Param{Name: "qty", Type: "integer"}))

	require.Len(t, fn.Datums, 4)
	found := fn.Datums[0].(*plpgsql.Var)
	assert.Equal(t, "found", found.Refname)
	assert.Equal(t, "qty", fn.Datums[1].(*plpgsql.Var).Refname)

	total := fn.Datums[2].(*plpgsql.Var)
	assert.Equal(t, "total", total.Refname)
	assert.Equal(t, 3, total.Lineno)
	assert.Equal(t, "numeric", total.Datatype.Typname)
	assert.True(t, total.IsConst)
	assert.True(t, total.NotNull)
	require.NotNil(t, total.DefaultVal)
	assert.Equal(t, "0", total.DefaultVal.Query)

	rec := fn.Datums[3].(*plpgsql.Rec)
	assert.Equal(t, "r", rec.Refname)
	assert.Equal(t, 3, rec.Dno)
}

func TestParseBodyTrigger(t *testing.T) {
	fn := parseBody(t, "BEGIN NEW.updated := now(); RETURN NEW; END", plpgsql.WithTrigger())
	assert.Equal(t, 1, fn.NewVarno)
	assert.Equal(t, 2, fn.OldVarno)

	require.Len(t, fn.Action.Body, 2)
	assign := fn.Action.Body[0].(*plpgsql.Assign)
	assert.Equal(t, "NEW.updated := now()", assign.Expr.Query)
	assert.Equal(t, plpgsql.ParseAssign2, assign.Expr.ParseMode)

	field := fn.Datums[assign.Varno].(*plpgsql.RecField)
	assert.Equal(t, "updated", field.Fieldname)
	assert.Equal(t, fn.NewVarno, field.Recparentno)

	m := fn.ToMap()["PLpgSQL_function"].(map[string]any)
	assert.Equal(t, 1, m["new_varno"])
	assert.Equal(t, 2, m["old_varno"])
}

// ---------- Statement Tests ----------

func TestParseBodyControlFlow(t *testing.T) {
	fn := parseBody(t, `
<<outer>>
DECLARE
  i integer := 0;
BEGIN
  LOOP
    i := i + 1;
    EXIT outer WHEN i > 10;
    CONTINUE WHEN i < 5;
  END LOOP;
  WHILE i > 0 LOOP
    i := i - 1;
  END LOOP;
  IF i = 0 THEN
    NULL;
  ELSIF i = 1 THEN
    i := 2;
  ELSE
    RETURN;
  END IF;
END outer`)

	assert.Equal(t, "outer", fn.Action.Label)
	assert.Equal(t, 5, fn.Action.Lineno)
	require.Len(t, fn.Action.Body, 3)

	loop := fn.Action.Body[0].(*plpgsql.Loop)
	require.Len(t, loop.Body, 3)
	exit := loop.Body[1].(*plpgsql.Exit)
	assert.True(t, exit.IsExit)
	assert.Equal(t, "outer", exit.Label)
	assert.Equal(t, "i > 10", exit.Cond.Query)
	cont := loop.Body[2].(*plpgsql.Exit)
	assert.False(t, cont.IsExit)
	assert.Empty(t, cont.Label)

	while := fn.Action.Body[1].(*plpgsql.While)
	assert.Equal(t, "i > 0", while.Cond.Query)

	ifStmt := fn.Action.Body[2].(*plpgsql.If)
	assert.Empty(t, ifStmt.Then)
	require.Len(t, ifStmt.Elsif, 1)
	assert.Equal(t, "i = 1", ifStmt.Elsif[0].Cond.Query)
	require.Len(t, ifStmt.Else, 1)
	assert.IsType(t, &plpgsql.Return{}, ifStmt.Else[0])
}

func TestParseBodyForLoops(t *testing.T) {
	fn := parseBody(t, `
DECLARE
  r record;
  a int;
  b int;
  arr int[];
BEGIN
  FOR i IN REVERSE 10..1 BY 2 LOOP
    NULL;
  END LOOP;
  FOR r IN SELECT * FROM t LOOP
    NULL;
  END LOOP;
  FOR a, b IN EXECUTE 'SELECT 1, 2' LOOP
    NULL;
  END LOOP;
  FOREACH a IN ARRAY arr LOOP
    NULL;
  END LOOP;
END`)
	require.Len(t, fn.Action.Body, 4)

	fori := fn.Action.Body[0].(*plpgsql.ForI)
	assert.True(t, fori.Reverse)
	assert.Equal(t, "10", fori.Lower.Query)
	assert.Equal(t, "1", fori.Upper.Query)
	assert.Equal(t, "2", fori.Step.Query)
	assert.Equal(t, "i", fori.Var.Refname)
	assert.Equal(t, "integer", fori.Var.Datatype.Typname)

	fors := fn.Action.Body[1].(*plpgsql.ForS)
	assert.Equal(t, "SELECT * FROM t", fors.Query.Query)
	assert.Equal(t, plpgsql.ParseDefault, fors.Query.ParseMode)
	assert.IsType(t, &plpgsql.Rec{}, fors.Var)

	dyn := fn.Action.Body[2].(*plpgsql.DynFors)
	assert.Equal(t, "'SELECT 1, 2'", dyn.Query.Query)
	row := dyn.Var.(*plpgsql.Row)
	assert.Equal(t, "(unnamed row)", row.Refname)
	assert.Equal(t, []plpgsql.RowField{{Name: "a", Varno: 2}, {Name: "b", Varno: 3}}, row.Fields)

	each := fn.Action.Body[3].(*plpgsql.ForEachA)
	assert.Equal(t, 2, each.Varno)
	assert.Equal(t, "arr", each.Expr.Query)
}

func TestParseBodyCase(t *testing.T) {
	fn := parseBody(t, `BEGIN
  CASE x
    WHEN 1, 2 THEN NULL;
    ELSE RETURN;
  END CASE;
  CASE WHEN x > 0 THEN RETURN; END CASE;
END`, plpgsql.WithParams(plpgsql.Param{Name: "x", Type: "integer"}))
	require.Len(t, fn.Action.Body, 2)

	simple := fn.Action.Body[0].(*plpgsql.Case)
	assert.Equal(t, "x", simple.TExpr.Query)
	assert.Equal(t, 2, simple.TVarno)
	require.Len(t, simple.Whens, 1)
	assert.Equal(t, `"__Case__Variable_2__" IN (1, 2)`, simple.Whens[0].Expr.Query)
	assert.True(t, simple.HaveElse)

	searched := fn.Action.Body[1].(*plpgsql.Case)
	assert.Nil(t, searched.TExpr)
	assert.Equal(t, "x > 0", searched.Whens[0].Expr.Query)
	assert.False(t, searched.HaveElse)
}

func TestParseBodyExecSQL(t *testing.T) {
	tests := []struct {
		name   string
		stmt   string
		query  string
		into   bool
		strict bool
	}{
		{
			name:   "select into strict",
			stmt:   "SELECT count(*) INTO STRICT n FROM t;",
			query:  "SELECT count(*) " + strings.Repeat(" ", len("INTO STRICT n")) + " FROM t",
			into:   true,
			strict: true,
		},
		{
			name:  "insert into is not a target",
			stmt:  "INSERT INTO t VALUES (1);",
			query: "INSERT INTO t VALUES (1)",
		},
		{
			name:  "returning into",
			stmt:  "DELETE FROM t RETURNING id INTO n;",
			query: "DELETE FROM t RETURNING id " + strings.Repeat(" ", len("INTO n")),
			into:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := parseBody(t, "DECLARE n integer; BEGIN "+tt.stmt+" END")
			require.Len(t, fn.Action.Body, 1)
			s := fn.Action.Body[0].(*plpgsql.ExecSQL)
			assert.Equal(t, tt.query, s.SQLStmt.Query)
			assert.Equal(t, tt.into, s.Into)
			assert.Equal(t, tt.strict, s.Strict)
			if tt.into {
				row := s.Target.(*plpgsql.Row)
				assert.Equal(t, []plpgsql.RowField{{Name: "n", Varno: 1}}, row.Fields)
			}
		})
	}
}

func TestParseBodyRaise(t *testing.T) {
	fn := parseBody(t, `BEGIN
  RAISE NOTICE 'x = %, y = %%', 1;
  RAISE division_by_zero USING HINT = 'check input';
  RAISE SQLSTATE '22012';
  RAISE;
END`)
	require.Len(t, fn.Action.Body, 4)

	notice := fn.Action.Body[0].(*plpgsql.Raise)
	assert.Equal(t, plpgsql.LevelNotice, notice.ElogLevel)
	assert.Equal(t, "x = %, y = %%", notice.Message)
	require.Len(t, notice.Params, 1)

	cond := fn.Action.Body[1].(*plpgsql.Raise)
	assert.Equal(t, plpgsql.LevelException, cond.ElogLevel)
	assert.Equal(t, "division_by_zero", cond.Condname)
	require.Len(t, cond.Options, 1)
	assert.Equal(t, plpgsql.RaiseHint, cond.Options[0].OptType)

	assert.Equal(t, "22012", fn.Action.Body[2].(*plpgsql.Raise).Condname)
	assert.Equal(t, plpgsql.LevelException, fn.Action.Body[3].(*plpgsql.Raise).ElogLevel)
}

func TestParseBodyExceptions(t *testing.T) {
	fn := parseBody(t, `BEGIN
  PERFORM 1 / 0;
EXCEPTION
  WHEN division_by_zero OR SQLSTATE '22012' THEN
    RAISE;
  WHEN others THEN
    NULL;
END`)
	require.Len(t, fn.Action.Exceptions, 2)
	first := fn.Action.Exceptions[0]
	assert.Equal(t, 4, first.Lineno)
	assert.Equal(t, []string{"division_by_zero", "22012"}, first.Conditions)
	require.Len(t, first.Action, 1)
	assert.Empty(t, fn.Action.Exceptions[1].Action)

	perform := fn.Action.Body[0].(*plpgsql.Perform)
	assert.Equal(t, " SELECT 1 / 0", perform.Expr.Query)

	names := []string{}
	for _, d := range fn.Datums {
		names = append(names, d.(*plpgsql.Var).Refname)
	}
	assert.Equal(t, []string{"found", "sqlstate", "sqlerrm"}, names)
}

func TestParseBodyCursors(t *testing.T) {
	fn := parseBody(t, `
DECLARE
  c CURSOR FOR SELECT 1;
  r record;
BEGIN
  OPEN c;
  FETCH c INTO r;
  MOVE LAST FROM c;
  CLOSE c;
END`)
	cur := fn.Datums[1].(*plpgsql.Var)
	assert.Equal(t, "SELECT 1", cur.CursorExplicitExpr.Query)
	assert.Equal(t, -1, cur.CursorExplicitArgrow)
	assert.Equal(t, 256, cur.CursorOptions)

	require.Len(t, fn.Action.Body, 4)
	open := fn.Action.Body[0].(*plpgsql.Open)
	assert.Equal(t, 1, open.Curvar)

	fetch := fn.Action.Body[1].(*plpgsql.Fetch)
	assert.Equal(t, 1, fetch.Curvar)
	assert.Equal(t, 1, fetch.HowMany)
	assert.Same(t, fn.Datums[2], fetch.Target)

	move := fn.Action.Body[2].(*plpgsql.Fetch)
	assert.True(t, move.IsMove)
	assert.Equal(t, plpgsql.FetchAbsolute, move.Direction)
	assert.Equal(t, -1, move.HowMany)

	assert.Equal(t, 1, fn.Action.Body[3].(*plpgsql.Close).Curvar)
}

func TestParseBodyGetDiagnostics(t *testing.T) {
	fn := parseBody(t, "DECLARE n integer; BEGIN GET DIAGNOSTICS n = ROW_COUNT; END")
	diag := fn.Action.Body[0].(*plpgsql.GetDiag)
	assert.False(t, diag.IsStacked)
	assert.Equal(t, []plpgsql.DiagItem{{Kind: plpgsql.DiagRowCount, Target: 1}}, diag.Items)
}

func TestParseBodyTransactions(t *testing.T) {
	fn := parseBody(t, "BEGIN COMMIT; ROLLBACK AND CHAIN; CALL p(1); END")
	require.Len(t, fn.Action.Body, 3)
	assert.False(t, fn.Action.Body[0].(*plpgsql.Commit).Chain)
	assert.True(t, fn.Action.Body[1].(*plpgsql.Rollback).Chain)
	call := fn.Action.Body[2].(*plpgsql.Call)
	assert.True(t, call.IsCall)
	assert.Equal(t, "CALL p(1)", call.Expr.Query)
}

// ---------- Error Tests ----------

func TestParseBodyErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		message  string
		location int
	}{
		{
			name:     "unknown variable",
			body:     "BEGIN\n  x := 1;\nEND",
			message:  `"x" is not a known variable`,
			location: 9,
		},
		{
			name:     "exit outside loop",
			body:     "BEGIN EXIT; END",
			message:  "EXIT cannot be used outside a loop, unless it has a label",
			location: 7,
		},
		{
			name:     "continue outside loop",
			body:     "BEGIN CONTINUE; END",
			message:  "CONTINUE cannot be used outside a loop",
			location: 7,
		},
		{
			name:     "unknown label",
			body:     "BEGIN LOOP EXIT nope; END LOOP; END",
			message:  `there is no label "nope" attached to any block or loop enclosing this statement`,
			location: 17,
		},
		{
			name:     "end label differs",
			body:     "<<a>> BEGIN NULL; END b",
			message:  `end label "b" differs from block's label "a"`,
			location: 23,
		},
		{
			name:     "expression error is body relative",
			body:     "DECLARE x int; BEGIN x := 1 +; END",
			message:  parser.ErrSyntaxEOF,
			location: 30,
		},
		{
			name:     "raise too many params",
			body:     "BEGIN RAISE NOTICE 'x', 1; END",
			message:  "too many parameters specified for RAISE",
			location: 20,
		},
		{
			name:     "raise unknown option",
			body:     "BEGIN RAISE USING colour = 'red'; END",
			message:  `unrecognized RAISE statement option "colour"`,
			location: 19,
		},
		{
			name:     "into twice",
			body:     "DECLARE n int; BEGIN SELECT 1 INTO n INTO n; END",
			message:  "INTO specified more than once",
			location: 38,
		},
		{
			name:     "missing end",
			body:     "BEGIN NULL;",
			message:  parser.ErrSyntaxEOF,
			location: 12,
		},
		{
			name:     "stacked row count",
			body:     "DECLARE n int; BEGIN GET STACKED DIAGNOSTICS n = ROW_COUNT; END",
			message:  "diagnostics item ROW_COUNT is not allowed in GET STACKED DIAGNOSTICS",
			location: 50,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perr := parseErr(t, tt.body)
			assert.Equal(t, tt.message, perr.Message)
			assert.Equal(t, tt.location, perr.Location)
		})
	}
}

func TestParseBodyLexError(t *testing.T) {
	perr := parseErr(t, "BEGIN RAISE NOTICE 'oops; END")
	assert.Equal(t, 20, perr.Location)
	assert.NotNil(t, perr.Unwrap())
}

// ---------- Map Tests ----------

func TestToMapOmitsZeroFields(t *testing.T) {
	fn := parseBody(t, "BEGIN RETURN; END")
	m := fn.ToMap()
	require.Len(t, m, 1)
	inner := m["PLpgSQL_function"].(map[string]any)
	assert.NotContains(t, inner, "new_varno")

	block := inner["action"].(map[string]any)["PLpgSQL_stmt_block"].(map[string]any)
	assert.Equal(t, 1, block["lineno"])
	assert.NotContains(t, block, "label")
	ret := block["body"].([]any)[0].(map[string]any)["PLpgSQL_stmt_return"].(map[string]any)
	assert.Equal(t, map[string]any{"lineno": 1}, ret)

	found := inner["datums"].([]any)[0].(map[string]any)["PLpgSQL_var"].(map[string]any)
	assert.Equal(t, "found", found["refname"])
	assert.Equal(t, map[string]any{"PLpgSQL_type": map[string]any{"typname": "boolean"}}, found["datatype"])
}
