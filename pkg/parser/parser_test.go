package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/leapstack-labs/pgparse/internal/testutil"
	"github.com/leapstack-labs/pgparse/pkg/ast"
	"github.com/leapstack-labs/pgparse/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, sql string) ast.Node {
	t.Helper()
	stmts, err := parser.Parse(sql, parser.WithLogger(testutil.NewTestLogger(t)))
	require.NoError(t, err, "sql: %s", sql)
	require.Len(t, stmts, 1)
	return stmts[0].Stmt
}

func parseSelect(t *testing.T, sql string) *ast.SelectStmt {
	t.Helper()
	sel, ok := parseOne(t, sql).(*ast.SelectStmt)
	require.True(t, ok, "expected SelectStmt for %s", sql)
	return sel
}

// ---------- Statement List Tests ----------

func TestParseEmpty(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{name: "empty", sql: ""},
		{name: "line comment", sql: "-- nothing"},
		{name: "block comment", sql: "/* nothing */"},
		{name: "semicolons", sql: " ; ;; "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, err := parser.Parse(tt.sql)
			require.NoError(t, err)
			assert.Empty(t, stmts)
		})
	}
}

func TestParseStatementRanges(t *testing.T) {
	sql := "SELECT 1; SELECT 2;;  select 3 "
	stmts, err := parser.Parse(sql)
	require.NoError(t, err)
	require.Len(t, stmts, 3)

	want := []string{"SELECT 1", "SELECT 2", "select 3"}
	for i, s := range stmts {
		start, end := s.SourceSlice()
		assert.Equal(t, want[i], sql[start:end])
	}
	assert.Equal(t, 0, stmts[0].StmtLocation)
	assert.Equal(t, 8, stmts[0].StmtLen)
	assert.Equal(t, 10, stmts[1].StmtLocation)
}

func TestParseDeterministic(t *testing.T) {
	sql := "WITH x AS (SELECT 1) SELECT a, count(*) FROM t JOIN x USING (a) GROUP BY a ORDER BY 2 DESC"
	a, err := parser.Parse(sql)
	require.NoError(t, err)
	b, err := parser.Parse(sql)
	require.NoError(t, err)
	require.Len(t, a, 1)
	assert.True(t, ast.Equal(a[0], b[0]))
}

// ---------- Error Tests ----------

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		message  string
		location int
	}{
		{name: "bare identifier", sql: "foo", message: `syntax error at or near "foo"`, location: 1},
		{name: "misspelled keyword", sql: "SELECT foo FRON bar", message: `syntax error at or near "bar"`, location: 17},
		{name: "misspelled object type", sql: "CREATE FUMCTION", message: `syntax error at or near "FUMCTION"`, location: 8},
		{name: "premature end", sql: "SELECT (", message: "syntax error at end of input", location: 9},
		{name: "non associative comparison", sql: "SELECT a = b = c", message: `syntax error at or near "="`, location: 14},
		{name: "second statement", sql: "SELECT 1; SELEC 2", message: `syntax error at or near "SELEC"`, location: 11},
		{name: "generated by default stored", sql: "CREATE TABLE t (a int GENERATED BY DEFAULT AS (1) STORED)", message: parser.ErrGeneratedAlways, location: 33},
		{name: "bad partition strategy", sql: "CREATE TABLE t (a int) PARTITION BY foo (a)", message: `unrecognized partitioning strategy "foo"`, location: 37},
		{name: "trailing comma in table elements", sql: "CREATE TABLE t (a int,)", message: `syntax error at or near ")"`, location: 23},
		{name: "trailing comma in function parameters", sql: "CREATE FUNCTION f(a int,) RETURNS int AS 'select 1' LANGUAGE sql", message: `syntax error at or near ")"`, location: 25},
		{name: "trailing comma in enum labels", sql: "CREATE TYPE e AS ENUM ('a',)", message: `syntax error at or near ")"`, location: 28},
		{name: "trailing comma in column definition list", sql: "SELECT * FROM f() AS x(a int,)", message: `syntax error at or near ")"`, location: 30},
		{name: "trailing comma in composite type", sql: "CREATE TYPE c AS (a int,)", message: `syntax error at or near ")"`, location: 25},
		{name: "duplicate trigger event", sql: "CREATE TRIGGER tr AFTER INSERT OR INSERT ON t EXECUTE FUNCTION f()", message: "duplicate trigger events specified", location: 35},
		{name: "constraint trigger before", sql: "CREATE CONSTRAINT TRIGGER tr BEFORE INSERT ON t FOR EACH ROW EXECUTE FUNCTION f()", message: `syntax error at or near "BEFORE"`, location: 30},
		{name: "reserved role name", sql: "CREATE ROLE public", message: `role name "public" is reserved`, location: 13},
		{name: "unknown role option", sql: "CREATE ROLE r WITH SUPERDUPER", message: `unrecognized role option "superduper"`, location: 20},
		{name: "merge insert when matched", sql: "MERGE INTO t USING s ON t.id = s.id WHEN MATCHED THEN INSERT VALUES (1)", message: `syntax error at or near "INSERT"`, location: 55},
		{name: "merge without when", sql: "MERGE INTO t USING s ON t.id = s.id", message: "syntax error at end of input", location: 36},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, err := parser.Parse(tt.sql)
			require.Error(t, err)
			assert.Nil(t, stmts)

			var perr *parser.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.message, perr.Message)
			assert.Equal(t, tt.location, perr.Location)
		})
	}
}

func TestParseErrorString(t *testing.T) {
	_, err := parser.Parse("SELECT foo FRON bar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `syntax error at or near "bar"`)
	assert.Contains(t, err.Error(), "location 17")
}

func TestParseErrorPosition(t *testing.T) {
	sql := "SELECT 1;\nSELECT foo FRON bar"
	_, err := parser.Parse(sql)
	var perr *parser.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 27, perr.Location)

	pos := perr.Position(sql)
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 17, pos.Column)
	assert.False(t, (&parser.ParseError{Message: "x"}).Position(sql).IsValid())
}

func TestParseMaxDepth(t *testing.T) {
	sql := "SELECT " + strings.Repeat("(", 50) + "1" + strings.Repeat(")", 50)

	_, err := parser.Parse(sql)
	require.NoError(t, err)

	_, err = parser.Parse(sql, parser.WithMaxDepth(20))
	var perr *parser.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, parser.ErrStackDepth, perr.Message)
}

// ---------- SELECT Tests ----------

func TestParseQuotedIdentifierBytes(t *testing.T) {
	sel := parseSelect(t, `SELECT 1 AS "Naïve"`)
	require.Len(t, sel.TargetList, 1)
	assert.Equal(t, "Naïve", sel.TargetList[0].(*ast.ResTarget).Name)
}

func TestParseSelectBasics(t *testing.T) {
	sel := parseSelect(t, "SELECT a AS b FROM s.t x WHERE a = 1")

	require.Len(t, sel.TargetList, 1)
	rt := sel.TargetList[0].(*ast.ResTarget)
	assert.Equal(t, "b", rt.Name)
	assert.Equal(t, 7, rt.Location)

	require.Len(t, sel.FromClause, 1)
	rv := sel.FromClause[0].(*ast.RangeVar)
	assert.Equal(t, "s", rv.Schemaname)
	assert.Equal(t, "t", rv.Relname)
	assert.True(t, rv.Inh)
	assert.Equal(t, "p", rv.Relpersistence)
	require.NotNil(t, rv.Alias)
	assert.Equal(t, "x", rv.Alias.Aliasname)

	where := sel.WhereClause.(*ast.A_Expr)
	assert.Equal(t, ast.AEXPR_OP, where.Kind)
	assert.Equal(t, 33, where.Location)
}

func TestParseIntegerOverflow(t *testing.T) {
	sel := parseSelect(t, "SELECT 2147483647, 2147483648")
	first := sel.TargetList[0].(*ast.ResTarget).Val.(*ast.A_Const)
	second := sel.TargetList[1].(*ast.ResTarget).Val.(*ast.A_Const)
	assert.Equal(t, &ast.Integer{Ival: 2147483647}, first.Val)
	assert.Equal(t, &ast.Float{Fval: "2147483648"}, second.Val)
}

func TestParseSetOperations(t *testing.T) {
	sel := parseSelect(t, "SELECT 1 UNION SELECT 2 INTERSECT SELECT 3")
	assert.Equal(t, ast.SETOP_UNION, sel.Op)
	require.NotNil(t, sel.Rarg)
	assert.Equal(t, ast.SETOP_INTERSECT, sel.Rarg.Op)

	sel = parseSelect(t, "SELECT 1 EXCEPT ALL SELECT 2 UNION SELECT 3")
	assert.Equal(t, ast.SETOP_UNION, sel.Op)
	assert.Equal(t, ast.SETOP_EXCEPT, sel.Larg.Op)
	assert.True(t, sel.Larg.All)
}

func TestParseJoins(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		join    ast.JoinType
		natural bool
		using   int
	}{
		{name: "inner on", sql: "SELECT * FROM a JOIN b ON a.id = b.id", join: ast.JOIN_INNER},
		{name: "left outer", sql: "SELECT * FROM a LEFT OUTER JOIN b ON true", join: ast.JOIN_LEFT},
		{name: "full using", sql: "SELECT * FROM a FULL JOIN b USING (x, y)", join: ast.JOIN_FULL, using: 2},
		{name: "natural right", sql: "SELECT * FROM a NATURAL RIGHT JOIN b", join: ast.JOIN_RIGHT, natural: true},
		{name: "cross", sql: "SELECT * FROM a CROSS JOIN b", join: ast.JOIN_INNER},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := parseSelect(t, tt.sql)
			require.Len(t, sel.FromClause, 1)
			j, ok := sel.FromClause[0].(*ast.JoinExpr)
			require.True(t, ok)
			assert.Equal(t, tt.join, j.Jointype)
			assert.Equal(t, tt.natural, j.IsNatural)
			assert.Len(t, j.UsingClause, tt.using)
		})
	}
}

func TestParseFromItems(t *testing.T) {
	sel := parseSelect(t, "SELECT * FROM generate_series(1, 3) WITH ORDINALITY AS g(n, i), LATERAL (SELECT 1) s, ONLY p")
	require.Len(t, sel.FromClause, 3)

	rf := sel.FromClause[0].(*ast.RangeFunction)
	assert.True(t, rf.Ordinality)
	require.NotNil(t, rf.Alias)
	assert.Equal(t, "g", rf.Alias.Aliasname)
	assert.Len(t, rf.Alias.Colnames, 2)

	sub := sel.FromClause[1].(*ast.RangeSubselect)
	assert.True(t, sub.Lateral)
	assert.Equal(t, "s", sub.Alias.Aliasname)

	rv := sel.FromClause[2].(*ast.RangeVar)
	assert.False(t, rv.Inh)
}

// ---------- DML Tests ----------

func TestParseInsert(t *testing.T) {
	stmt := parseOne(t, "INSERT INTO t AS x (a, b) VALUES (1, 2) ON CONFLICT (a) DO UPDATE SET b = excluded.b RETURNING *")
	ins := stmt.(*ast.InsertStmt)
	assert.Equal(t, "t", ins.Relation.Relname)
	assert.Equal(t, "x", ins.Relation.Alias.Aliasname)
	assert.Len(t, ins.Cols, 2)
	require.NotNil(t, ins.OnConflictClause)
	assert.Equal(t, ast.ONCONFLICT_UPDATE, ins.OnConflictClause.Action)
	require.NotNil(t, ins.OnConflictClause.Infer)
	assert.Len(t, ins.OnConflictClause.Infer.IndexElems, 1)
	assert.Len(t, ins.ReturningList, 1)

	ins = parseOne(t, "INSERT INTO t DEFAULT VALUES").(*ast.InsertStmt)
	assert.Nil(t, ins.SelectStmt)

	ins = parseOne(t, "INSERT INTO t (SELECT * FROM u)").(*ast.InsertStmt)
	assert.Empty(t, ins.Cols)
	assert.NotNil(t, ins.SelectStmt)
}

func TestParseUpdateMultiAssign(t *testing.T) {
	upd := parseOne(t, "UPDATE t SET (a, b) = (1, 2), c = 3 WHERE CURRENT OF cur").(*ast.UpdateStmt)
	require.Len(t, upd.TargetList, 3)
	ref := upd.TargetList[1].(*ast.ResTarget).Val.(*ast.MultiAssignRef)
	assert.Equal(t, 2, ref.Colno)
	assert.Equal(t, 2, ref.Ncolumns)
	assert.Equal(t, &ast.CurrentOfExpr{CursorName: "cur"}, upd.WhereClause)
}

func TestParseDelete(t *testing.T) {
	del := parseOne(t, "DELETE FROM t USING u WHERE t.id = u.id RETURNING t.id").(*ast.DeleteStmt)
	assert.Len(t, del.UsingClause, 1)
	assert.NotNil(t, del.WhereClause)
	assert.Len(t, del.ReturningList, 1)
}

func TestParseMerge(t *testing.T) {
	stmt := parseOne(t, `WITH src AS (SELECT 1 AS id)
		MERGE INTO t AS x USING src s ON x.id = s.id
		WHEN MATCHED AND x.v > 0 THEN UPDATE SET v = s.v
		WHEN MATCHED THEN DELETE
		WHEN NOT MATCHED THEN INSERT (id, v) OVERRIDING SYSTEM VALUE VALUES (s.id, DEFAULT)
		WHEN NOT MATCHED THEN DO NOTHING`)
	merge := stmt.(*ast.MergeStmt)
	require.NotNil(t, merge.WithClause)
	assert.Equal(t, "t", merge.Relation.Relname)
	assert.Equal(t, "x", merge.Relation.Alias.Aliasname)
	assert.IsType(t, &ast.RangeVar{}, merge.SourceRelation)
	assert.IsType(t, &ast.A_Expr{}, merge.JoinCondition)
	require.Len(t, merge.MergeWhenClauses, 4)

	tests := []struct {
		name    string
		matched bool
		command ast.CmdType
		cond    bool
		targets int
		values  int
	}{
		{name: "update", matched: true, command: ast.CMD_UPDATE, cond: true, targets: 1},
		{name: "delete", matched: true, command: ast.CMD_DELETE},
		{name: "insert", matched: false, command: ast.CMD_INSERT, targets: 2, values: 2},
		{name: "do nothing", matched: false, command: ast.CMD_NOTHING},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mc := merge.MergeWhenClauses[i].(*ast.MergeWhenClause)
			assert.Equal(t, tt.matched, mc.Matched)
			assert.Equal(t, tt.command, mc.CommandType)
			assert.Equal(t, tt.cond, mc.Condition != nil)
			assert.Len(t, mc.TargetList, tt.targets)
			assert.Len(t, mc.Values, tt.values)
		})
	}
	insert := merge.MergeWhenClauses[2].(*ast.MergeWhenClause)
	assert.Equal(t, ast.OVERRIDING_SYSTEM_VALUE, insert.Override)
	assert.IsType(t, &ast.SetToDefault{}, insert.Values[1])

	plain := parseOne(t, "MERGE INTO t USING s ON t.id = s.id WHEN NOT MATCHED THEN INSERT DEFAULT VALUES").(*ast.MergeStmt)
	mc := plain.MergeWhenClauses[0].(*ast.MergeWhenClause)
	assert.Equal(t, ast.CMD_INSERT, mc.CommandType)
	assert.Nil(t, mc.Values)
}

// ---------- DDL Tests ----------

func TestParseCreateTable(t *testing.T) {
	sql := `CREATE UNLOGGED TABLE IF NOT EXISTS s.t (
		id bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		name text NOT NULL DEFAULT 'x' COLLATE "C",
		parent int REFERENCES p (id) ON DELETE CASCADE,
		total numeric GENERATED ALWAYS AS (id * 2) STORED,
		CONSTRAINT t_name_key UNIQUE (name),
		CHECK (id > 0) NOT VALID
	) PARTITION BY RANGE (id)`
	cs := parseOne(t, sql).(*ast.CreateStmt)
	assert.True(t, cs.IfNotExists)
	assert.Equal(t, "u", cs.Relation.Relpersistence)
	require.Len(t, cs.TableElts, 6)

	id := cs.TableElts[0].(*ast.ColumnDef)
	require.Len(t, id.Constraints, 2)
	identity := id.Constraints[0].(*ast.Constraint)
	assert.Equal(t, ast.CONSTR_IDENTITY, identity.Contype)
	assert.Equal(t, "a", identity.GeneratedWhen)
	assert.Equal(t, ast.CONSTR_PRIMARY, id.Constraints[1].(*ast.Constraint).Contype)

	name := cs.TableElts[1].(*ast.ColumnDef)
	require.NotNil(t, name.CollClause)
	assert.Len(t, name.Constraints, 2)

	fk := cs.TableElts[2].(*ast.ColumnDef).Constraints[0].(*ast.Constraint)
	assert.Equal(t, ast.CONSTR_FOREIGN, fk.Contype)
	assert.Equal(t, "c", fk.FkDelAction)
	assert.Equal(t, "a", fk.FkUpdAction)
	assert.Equal(t, "s", fk.FkMatchtype)

	gen := cs.TableElts[3].(*ast.ColumnDef).Constraints[0].(*ast.Constraint)
	assert.Equal(t, ast.CONSTR_GENERATED, gen.Contype)

	uniq := cs.TableElts[4].(*ast.Constraint)
	assert.Equal(t, "t_name_key", uniq.Conname)
	assert.Len(t, uniq.Keys, 1)

	check := cs.TableElts[5].(*ast.Constraint)
	assert.True(t, check.SkipValidation)
	assert.False(t, check.InitiallyValid)

	require.NotNil(t, cs.Partspec)
	assert.Equal(t, "r", cs.Partspec.Strategy)
}

func TestParseCreateTableAs(t *testing.T) {
	ctas := parseOne(t, "CREATE TEMP TABLE t (a, b) AS SELECT 1, 2 WITH NO DATA").(*ast.CreateTableAsStmt)
	assert.Equal(t, ast.OBJECT_TABLE, ctas.Objtype)
	assert.Equal(t, "t", ctas.Into.Rel.Relpersistence)
	assert.Len(t, ctas.Into.ColNames, 2)
	assert.True(t, ctas.Into.SkipData)

	mv := parseOne(t, "CREATE MATERIALIZED VIEW mv AS SELECT 1").(*ast.CreateTableAsStmt)
	assert.Equal(t, ast.OBJECT_MATVIEW, mv.Objtype)
}

func TestParseCreateFunction(t *testing.T) {
	sql := `CREATE OR REPLACE FUNCTION add(a integer, OUT b integer, c int DEFAULT 1)
		RETURNS TABLE (x int) LANGUAGE sql IMMUTABLE STRICT AS 'select 1'`
	fn := parseOne(t, sql).(*ast.CreateFunctionStmt)
	assert.True(t, fn.Replace)
	assert.False(t, fn.IsProcedure)
	require.Len(t, fn.Parameters, 4)

	b := fn.Parameters[1].(*ast.FunctionParameter)
	assert.Equal(t, "b", b.Name)
	assert.Equal(t, ast.FUNC_PARAM_OUT, b.Mode)
	assert.NotNil(t, fn.Parameters[2].(*ast.FunctionParameter).Defexpr)
	assert.Equal(t, ast.FUNC_PARAM_TABLE, fn.Parameters[3].(*ast.FunctionParameter).Mode)

	require.NotNil(t, fn.ReturnType)
	assert.True(t, fn.ReturnType.Setof)

	var names []string
	for _, o := range fn.Options {
		names = append(names, o.(*ast.DefElem).Defname)
	}
	assert.Equal(t, []string{"language", "volatility", "strict", "as"}, names)
}

func TestParseCreateFunctionAtomicBody(t *testing.T) {
	fn := parseOne(t, "CREATE FUNCTION f() RETURNS int LANGUAGE sql BEGIN ATOMIC SELECT 1; SELECT 2; END").(*ast.CreateFunctionStmt)
	body, ok := fn.SQLBody.(*ast.List)
	require.True(t, ok)
	require.Len(t, body.Items, 1)
	assert.Len(t, body.Items[0].(*ast.List).Items, 2)

	fn = parseOne(t, "CREATE FUNCTION g(int) RETURNS int RETURN $1 + 1").(*ast.CreateFunctionStmt)
	assert.IsType(t, &ast.ReturnStmt{}, fn.SQLBody)
}

func TestParseDDLStatementTypes(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want any
	}{
		{name: "index", sql: "CREATE UNIQUE INDEX CONCURRENTLY i ON t USING gin (lower(a), b DESC NULLS LAST) WHERE b > 0", want: &ast.IndexStmt{}},
		{name: "view", sql: "CREATE OR REPLACE VIEW v (a) AS SELECT 1 WITH LOCAL CHECK OPTION", want: &ast.ViewStmt{}},
		{name: "schema", sql: "CREATE SCHEMA IF NOT EXISTS s AUTHORIZATION CURRENT_USER", want: &ast.CreateSchemaStmt{}},
		{name: "sequence", sql: "CREATE SEQUENCE s INCREMENT BY 2 START WITH 10 NO CYCLE", want: &ast.CreateSeqStmt{}},
		{name: "extension", sql: "CREATE EXTENSION IF NOT EXISTS hstore WITH SCHEMA public CASCADE", want: &ast.CreateExtensionStmt{}},
		{name: "enum", sql: "CREATE TYPE mood AS ENUM ('sad', 'ok')", want: &ast.CreateEnumStmt{}},
		{name: "composite", sql: "CREATE TYPE pair AS (a int, b text)", want: &ast.CompositeTypeStmt{}},
		{name: "domain", sql: "CREATE DOMAIN posint AS int CHECK (VALUE > 0)", want: &ast.CreateDomainStmt{}},
		{name: "procedure", sql: "CREATE PROCEDURE p(INOUT x int) LANGUAGE plpgsql AS $$ begin end $$", want: &ast.CreateFunctionStmt{}},
		{name: "alter table", sql: "ALTER TABLE IF EXISTS t ADD COLUMN c int, DROP CONSTRAINT k CASCADE", want: &ast.AlterTableStmt{}},
		{name: "rename column", sql: "ALTER TABLE t RENAME COLUMN a TO b", want: &ast.RenameStmt{}},
		{name: "drop", sql: "DROP TABLE IF EXISTS a, s.b CASCADE", want: &ast.DropStmt{}},
		{name: "truncate", sql: "TRUNCATE TABLE a, b RESTART IDENTITY", want: &ast.TruncateStmt{}},
		{name: "comment", sql: "COMMENT ON COLUMN t.a IS 'x'", want: &ast.CommentStmt{}},
		{name: "grant", sql: "GRANT SELECT, UPDATE (a) ON TABLE t TO alice WITH GRANT OPTION", want: &ast.GrantStmt{}},
		{name: "revoke", sql: "REVOKE ALL ON ALL TABLES IN SCHEMA s FROM PUBLIC CASCADE", want: &ast.GrantStmt{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.want, parseOne(t, tt.sql))
		})
	}
}

func TestParseCreateTrigger(t *testing.T) {
	trig := parseOne(t, `CREATE OR REPLACE TRIGGER audit BEFORE INSERT OR UPDATE OF a, b ON s.t
		REFERENCING NEW TABLE AS added
		FOR EACH ROW WHEN (NEW.a IS DISTINCT FROM OLD.a)
		EXECUTE FUNCTION log_change('t', 42, 1.5, x)`).(*ast.CreateTrigStmt)
	assert.True(t, trig.Replace)
	assert.False(t, trig.Isconstraint)
	assert.Equal(t, "audit", trig.Trigname)
	assert.Equal(t, "s", trig.Relation.Schemaname)
	assert.Equal(t, ast.TriggerTypeBefore, trig.Timing)
	assert.Equal(t, ast.TriggerTypeInsert|ast.TriggerTypeUpdate, trig.Events)
	assert.Len(t, trig.Columns, 2)
	assert.True(t, trig.Row)
	assert.NotNil(t, trig.WhenClause)
	assert.Equal(t, []ast.Node{&ast.TriggerTransition{Name: "added", IsNew: true, IsTable: true}}, trig.TransitionRels)

	var args []string
	for _, a := range trig.Args {
		args = append(args, a.(*ast.String).Sval)
	}
	assert.Equal(t, []string{"t", "42", "1.5", "x"}, args)

	stmtLevel := parseOne(t, "CREATE TRIGGER tr INSTEAD OF DELETE ON v EXECUTE PROCEDURE f()").(*ast.CreateTrigStmt)
	assert.Equal(t, ast.TriggerTypeInstead, stmtLevel.Timing)
	assert.Equal(t, ast.TriggerTypeDelete, stmtLevel.Events)
	assert.False(t, stmtLevel.Row)
	assert.Empty(t, stmtLevel.Args)

	cons := parseOne(t, `CREATE CONSTRAINT TRIGGER ck AFTER TRUNCATE ON t FROM u
		DEFERRABLE INITIALLY DEFERRED FOR EACH ROW EXECUTE FUNCTION f()`).(*ast.CreateTrigStmt)
	assert.True(t, cons.Isconstraint)
	assert.Equal(t, 0, cons.Timing)
	assert.Equal(t, ast.TriggerTypeTruncate, cons.Events)
	assert.Equal(t, "u", cons.Constrrel.Relname)
	assert.True(t, cons.Deferrable)
	assert.True(t, cons.Initdeferred)
	assert.True(t, cons.Row)
}

func TestParseCreateRole(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		stmtType ast.RoleStmtType
		options  []string
	}{
		{name: "role", sql: "CREATE ROLE admin WITH LOGIN NOSUPERUSER PASSWORD 'x' CONNECTION LIMIT -1", stmtType: ast.ROLESTMT_ROLE, options: []string{"canlogin", "superuser", "password", "connectionlimit"}},
		{name: "user", sql: "CREATE USER bob IN ROLE staff, ops VALID UNTIL '2030-01-01'", stmtType: ast.ROLESTMT_USER, options: []string{"addroleto", "validUntil"}},
		{name: "group", sql: "CREATE GROUP devs ROLE alice ADMIN carol", stmtType: ast.ROLESTMT_GROUP, options: []string{"rolemembers", "adminmembers"}},
		{name: "no options", sql: "CREATE ROLE r", stmtType: ast.ROLESTMT_ROLE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role := parseOne(t, tt.sql).(*ast.CreateRoleStmt)
			assert.Equal(t, tt.stmtType, role.StmtType)
			var names []string
			for _, opt := range role.Options {
				names = append(names, opt.(*ast.DefElem).Defname)
			}
			assert.Equal(t, tt.options, names)
		})
	}

	role := parseOne(t, "CREATE ROLE r NOLOGIN PASSWORD NULL").(*ast.CreateRoleStmt)
	require.Len(t, role.Options, 2)
	assert.Equal(t, &ast.Boolean{Boolval: false}, role.Options[0].(*ast.DefElem).Arg)
	assert.Nil(t, role.Options[1].(*ast.DefElem).Arg)
}

func TestParseRefreshAndAlterSequence(t *testing.T) {
	refresh := parseOne(t, "REFRESH MATERIALIZED VIEW CONCURRENTLY s.mv WITH NO DATA").(*ast.RefreshMatViewStmt)
	assert.True(t, refresh.Concurrent)
	assert.True(t, refresh.SkipData)
	assert.Equal(t, "mv", refresh.Relation.Relname)

	refresh = parseOne(t, "REFRESH MATERIALIZED VIEW mv").(*ast.RefreshMatViewStmt)
	assert.False(t, refresh.Concurrent)
	assert.False(t, refresh.SkipData)

	seq := parseOne(t, "ALTER SEQUENCE IF EXISTS s RESTART WITH 5 INCREMENT BY 2 NO CYCLE").(*ast.AlterSeqStmt)
	assert.True(t, seq.MissingOk)
	assert.Equal(t, "s", seq.Sequence.Relname)
	require.Len(t, seq.Options, 3)
	assert.Equal(t, "restart", seq.Options[0].(*ast.DefElem).Defname)
	assert.Equal(t, &ast.Integer{Ival: 5}, seq.Options[0].(*ast.DefElem).Arg)

	// Table-style commands on a sequence stay ALTER TABLE.
	owner := parseOne(t, "ALTER SEQUENCE s OWNER TO bob").(*ast.AlterTableStmt)
	assert.Equal(t, ast.OBJECT_SEQUENCE, owner.Objtype)
}

func TestParseAlterTableCommands(t *testing.T) {
	stmt := parseOne(t, `ALTER TABLE t
		ALTER COLUMN a SET DATA TYPE bigint USING a::bigint,
		ALTER b DROP NOT NULL,
		ADD CONSTRAINT k UNIQUE (a),
		OWNER TO bob`).(*ast.AlterTableStmt)
	require.Len(t, stmt.Cmds, 4)

	want := []ast.AlterTableType{ast.AT_AlterColumnType, ast.AT_DropNotNull, ast.AT_AddConstraint, ast.AT_ChangeOwner}
	for i, cmd := range stmt.Cmds {
		assert.Equal(t, want[i], cmd.(*ast.AlterTableCmd).Subtype)
	}
	def := stmt.Cmds[0].(*ast.AlterTableCmd).Def.(*ast.ColumnDef)
	assert.NotNil(t, def.RawDefault)
}

func TestParseDropObjects(t *testing.T) {
	drop := parseOne(t, "DROP FUNCTION IF EXISTS f(int, OUT text), g").(*ast.DropStmt)
	assert.Equal(t, ast.OBJECT_FUNCTION, drop.RemoveType)
	assert.True(t, drop.MissingOk)
	require.Len(t, drop.Objects, 2)

	f := drop.Objects[0].(*ast.ObjectWithArgs)
	assert.Len(t, f.Objargs, 1)
	assert.True(t, drop.Objects[1].(*ast.ObjectWithArgs).ArgsUnspecified)

	trig := parseOne(t, "DROP TRIGGER tr ON s.t").(*ast.DropStmt)
	require.Len(t, trig.Objects, 1)
	assert.Len(t, trig.Objects[0].(*ast.List).Items, 3)
}

// ---------- Utility Tests ----------

func TestParseUtilityStatementTypes(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want any
	}{
		{name: "begin", sql: "BEGIN ISOLATION LEVEL SERIALIZABLE, READ ONLY", want: &ast.TransactionStmt{}},
		{name: "rollback to", sql: "ROLLBACK TO SAVEPOINT sp", want: &ast.TransactionStmt{}},
		{name: "set", sql: "SET LOCAL search_path TO a, b", want: &ast.VariableSetStmt{}},
		{name: "set time zone", sql: "SET TIME ZONE 'UTC'", want: &ast.VariableSetStmt{}},
		{name: "reset", sql: "RESET ALL", want: &ast.VariableSetStmt{}},
		{name: "show", sql: "SHOW work_mem", want: &ast.VariableShowStmt{}},
		{name: "explain", sql: "EXPLAIN (ANALYZE, FORMAT json) SELECT 1", want: &ast.ExplainStmt{}},
		{name: "prepare", sql: "PREPARE q (int) AS SELECT $1", want: &ast.PrepareStmt{}},
		{name: "execute", sql: "EXECUTE q (1)", want: &ast.ExecuteStmt{}},
		{name: "deallocate", sql: "DEALLOCATE ALL", want: &ast.DeallocateStmt{}},
		{name: "do", sql: "DO $$ begin null; end $$", want: &ast.DoStmt{}},
		{name: "call", sql: "CALL p(1, 2)", want: &ast.CallStmt{}},
		{name: "listen", sql: "LISTEN chan", want: &ast.ListenStmt{}},
		{name: "notify", sql: "NOTIFY chan, 'payload'", want: &ast.NotifyStmt{}},
		{name: "unlisten", sql: "UNLISTEN *", want: &ast.UnlistenStmt{}},
		{name: "vacuum", sql: "VACUUM (VERBOSE) t (a)", want: &ast.VacuumStmt{}},
		{name: "lock", sql: "LOCK TABLE t IN SHARE MODE NOWAIT", want: &ast.LockStmt{}},
		{name: "copy", sql: "COPY t (a) FROM STDIN WITH (FORMAT csv)", want: &ast.CopyStmt{}},
		{name: "declare", sql: "DECLARE c SCROLL CURSOR WITH HOLD FOR SELECT 1", want: &ast.DeclareCursorStmt{}},
		{name: "fetch", sql: "FETCH FORWARD 5 FROM c", want: &ast.FetchStmt{}},
		{name: "close", sql: "CLOSE ALL", want: &ast.ClosePortalStmt{}},
		{name: "discard", sql: "DISCARD TEMP", want: &ast.DiscardStmt{}},
		{name: "checkpoint", sql: "CHECKPOINT", want: &ast.CheckPointStmt{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.want, parseOne(t, tt.sql))
		})
	}
}

func TestParseCopyProgramStdin(t *testing.T) {
	_, err := parser.Parse("COPY t FROM PROGRAM STDIN")
	var perr *parser.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, parser.ErrCopyFromProgram, perr.Message)
}

func TestParseExplainLegacyOptions(t *testing.T) {
	ex := parseOne(t, "EXPLAIN ANALYZE VERBOSE DELETE FROM t").(*ast.ExplainStmt)
	require.Len(t, ex.Options, 2)
	assert.Equal(t, "analyze", ex.Options[0].(*ast.DefElem).Defname)
	assert.Equal(t, "verbose", ex.Options[1].(*ast.DefElem).Defname)
	assert.IsType(t, &ast.DeleteStmt{}, ex.Query)
}
