package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/pgparse/pkg/ast"
	"github.com/leapstack-labs/pgparse/pkg/token"
)

// DDL statements:
//
//	CREATE [OR REPLACE] (FUNCTION | PROCEDURE) ...
//	CREATE [OR REPLACE] [TEMP] VIEW ...
//	CREATE [TEMP | UNLOGGED] (TABLE | SEQUENCE | MATERIALIZED VIEW) ...
//	CREATE [UNIQUE] INDEX | SCHEMA | EXTENSION | TYPE | DOMAIN ...
//	CREATE [OR REPLACE] [CONSTRAINT] TRIGGER ...
//	CREATE (ROLE | USER | GROUP) ...
//	REFRESH MATERIALIZED VIEW ...
//	ALTER (TABLE | INDEX | SEQUENCE | VIEW | MATERIALIZED VIEW | SCHEMA) ...
//	DROP object_type [IF EXISTS] objects [CASCADE | RESTRICT]
//	TRUNCATE | COMMENT ON | GRANT | REVOKE

// LIKE option bits, as in PostgreSQL's TableLikeOption.
const (
	tableLikeComments = 1 << iota
	tableLikeCompression
	tableLikeConstraints
	tableLikeDefaults
	tableLikeGenerated
	tableLikeIdentity
	tableLikeIndexes
	tableLikeStatistics
	tableLikeStorage

	tableLikeAll = 1<<31 - 1
)

var tableLikeOptions = map[string]int{
	"comments":    tableLikeComments,
	"compression": tableLikeCompression,
	"constraints": tableLikeConstraints,
	"defaults":    tableLikeDefaults,
	"generated":   tableLikeGenerated,
	"identity":    tableLikeIdentity,
	"indexes":     tableLikeIndexes,
	"statistics":  tableLikeStatistics,
	"storage":     tableLikeStorage,
	"all":         tableLikeAll,
}

func (p *Parser) parseCreateStmt() ast.Node {
	p.expectKw("create")
	replace := p.acceptKw("or", "replace")
	if p.isKw("function") || p.isKw("procedure") {
		return p.parseCreateFunctionStmt(replace)
	}
	tempAt := p.pos
	persistence := p.parseOptTemp()
	hasTemp := p.pos != tempAt
	switch {
	case p.isKw("view"):
		return p.parseViewStmt(replace, persistence)
	case !hasTemp && (p.isKw("trigger") || p.isKwSeq("constraint", "trigger")):
		return p.parseCreateTrigStmt(replace)
	case replace:
		p.syntaxError()
	case p.isKw("table"):
		return p.parseCreateTableStmt(persistence)
	case p.isKw("sequence"):
		return p.parseCreateSeqStmt(persistence)
	case p.isKwSeq("materialized", "view") && persistence != "t":
		return p.parseCreateMatViewStmt(persistence)
	case hasTemp:
		p.syntaxError()
	case p.isKw("unique"), p.isKw("index"):
		return p.parseIndexStmt()
	case p.isKw("schema"):
		return p.parseCreateSchemaStmt()
	case p.isKw("extension"):
		return p.parseCreateExtensionStmt()
	case p.isKw("type"):
		return p.parseCreateTypeStmt()
	case p.isKw("domain"):
		return p.parseCreateDomainStmt()
	case p.isKw("role"), p.isKw("user"), p.isKw("group"):
		return p.parseCreateRoleStmt()
	}
	p.syntaxError()
	return nil
}

// ---------- CREATE TABLE ----------

// parseCreateTableStmt parses CREATE TABLE with a column list, or
// CREATE TABLE ... AS when the name is followed by a bare name list or
// no parentheses at all.
func (p *Parser) parseCreateTableStmt(persistence string) ast.Node {
	p.expectKw("table")
	ifNotExists := p.acceptKw("if", "not", "exists")
	rel := p.qualifiedName()
	rel.Relpersistence = persistence
	if !p.isChar('(') || p.isColumnNameList() {
		return p.parseCreateTableAs(rel, ifNotExists)
	}

	stmt := &ast.CreateStmt{Relation: rel, IfNotExists: ifNotExists}
	p.expectChar('(')
	if !p.isChar(')') {
		for {
			stmt.TableElts = append(stmt.TableElts, p.parseTableElement())
			if !p.acceptChar(',') {
				break
			}
		}
	}
	p.expectChar(')')
	if p.acceptKw("inherits") {
		p.expectChar('(')
		stmt.InhRelations = p.qualifiedNameList()
		p.expectChar(')')
	}
	if p.isKwSeq("partition", "by") {
		stmt.Partspec = p.parsePartitionSpec()
	}
	if p.acceptKw("using") {
		stmt.AccessMethod = p.colID()
	}
	stmt.Options = p.parseOptWith()
	stmt.Oncommit = p.parseOnCommit()
	if p.acceptKw("tablespace") {
		stmt.Tablespacename = p.colID()
	}
	return stmt
}

// isColumnNameList reports whether the '(' at the current token holds
// only a list of names.
func (p *Parser) isColumnNameList() bool {
	for i := 1; ; i += 2 {
		if !isColID(p.peekAt(i)) {
			return false
		}
		switch next := p.peekAt(i + 1); {
		case next.IsChar(')'):
			return true
		case !next.IsChar(','):
			return false
		}
	}
}

func (p *Parser) parseCreateTableAs(rel *ast.RangeVar, ifNotExists bool) *ast.CreateTableAsStmt {
	into := &ast.IntoClause{Rel: rel}
	if p.isChar('(') {
		into.ColNames = p.parenNameList()
	}
	if p.acceptKw("using") {
		into.AccessMethod = p.colID()
	}
	into.Options = p.parseOptWith()
	into.OnCommit = p.parseOnCommit()
	if p.acceptKw("tablespace") {
		into.TableSpaceName = p.colID()
	}
	p.expectKw("as")
	stmt := &ast.CreateTableAsStmt{Query: p.parseSelectStmt(), Into: into, Objtype: ast.OBJECT_TABLE, IfNotExists: ifNotExists}
	switch {
	case p.acceptKw("with", "data"):
	case p.acceptKw("with", "no", "data"):
		into.SkipData = true
	}
	return stmt
}

func (p *Parser) parseCreateMatViewStmt(persistence string) *ast.CreateTableAsStmt {
	p.expectKw("materialized", "view")
	ifNotExists := p.acceptKw("if", "not", "exists")
	rel := p.qualifiedName()
	rel.Relpersistence = persistence
	stmt := p.parseCreateTableAs(rel, ifNotExists)
	stmt.Objtype = ast.OBJECT_MATVIEW
	return stmt
}

func (p *Parser) parseTableElement() ast.Node {
	switch {
	case p.isKw("like"):
		return p.parseTableLikeClause()
	case p.isTableConstraintStart():
		return p.parseTableConstraint()
	}
	return p.parseColumnDef()
}

func (p *Parser) isTableConstraintStart() bool {
	return p.isKw("constraint") || p.isKw("check") || p.isKw("unique") ||
		p.isKwSeq("primary", "key") || p.isKwSeq("foreign", "key")
}

func (p *Parser) parseTableLikeClause() *ast.TableLikeClause {
	p.expectKw("like")
	like := &ast.TableLikeClause{Relation: p.qualifiedName()}
	for {
		including := p.acceptKw("including")
		if !including && !p.acceptKw("excluding") {
			return like
		}
		t := p.advance()
		bit, ok := tableLikeOptions[t.Value]
		if !ok || !t.Kind.IsKeyword() {
			p.syntaxErrorAt(t)
		}
		if including {
			like.Options |= bit
		} else {
			like.Options &^= bit
		}
	}
}

// parseColumnDef parses ColId Typename [COMPRESSION name] ColQualList.
func (p *Parser) parseColumnDef() *ast.ColumnDef {
	t := p.cur()
	col := &ast.ColumnDef{Colname: p.colID(), TypeName: p.parseTypename(), IsLocal: true, Location: t.Start}
	if p.acceptKw("compression") {
		col.Compression = p.colLabel()
	}
	col.Constraints, col.CollClause = p.parseColQualList()
	return col
}

// parseColQualList parses column constraints, constraint attributes and
// COLLATE; the collation is returned separately.
func (p *Parser) parseColQualList() ([]ast.Node, *ast.CollateClause) {
	var cons []ast.Node
	var coll *ast.CollateClause
	for {
		t := p.cur()
		switch {
		case p.acceptKw("collate"):
			coll = &ast.CollateClause{Collname: p.anyName(), Location: t.Start}
		case p.acceptKw("constraint"):
			name := p.colID()
			c := p.parseColConstraintElem()
			if c == nil {
				p.syntaxError()
			}
			c.Conname, c.Location = name, t.Start
			cons = append(cons, c)
		default:
			if c := p.parseConstraintAttr(); c != nil {
				cons = append(cons, c)
				continue
			}
			c := p.parseColConstraintElem()
			if c == nil {
				return cons, coll
			}
			cons = append(cons, c)
		}
	}
}

func (p *Parser) parseConstraintAttr() *ast.Constraint {
	t := p.cur()
	c := &ast.Constraint{Location: t.Start}
	switch {
	case p.acceptKw("deferrable"):
		c.Contype = ast.CONSTR_ATTR_DEFERRABLE
	case p.acceptKw("not", "deferrable"):
		c.Contype = ast.CONSTR_ATTR_NOT_DEFERRABLE
	case p.acceptKw("initially", "deferred"):
		c.Contype = ast.CONSTR_ATTR_DEFERRED
	case p.acceptKw("initially", "immediate"):
		c.Contype = ast.CONSTR_ATTR_IMMEDIATE
	default:
		return nil
	}
	return c
}

// parseColConstraintElem returns nil when no column constraint starts at
// the current token.
func (p *Parser) parseColConstraintElem() *ast.Constraint {
	t := p.cur()
	c := &ast.Constraint{Location: t.Start}
	switch {
	case p.acceptKw("not", "null"):
		c.Contype = ast.CONSTR_NOTNULL
	case p.acceptKw("null"):
		c.Contype = ast.CONSTR_NULL
	case p.acceptKw("unique"):
		c.Contype = ast.CONSTR_UNIQUE
		c.NullsNotDistinct = p.parseNullsDistinct()
		p.parseIndexOptions(c)
	case p.acceptKw("primary", "key"):
		c.Contype = ast.CONSTR_PRIMARY
		p.parseIndexOptions(c)
	case p.acceptKw("check"):
		c.Contype = ast.CONSTR_CHECK
		p.expectChar('(')
		c.RawExpr = p.parseExpr()
		p.expectChar(')')
		c.IsNoInherit = p.acceptKw("no", "inherit")
		c.InitiallyValid = true
	case p.acceptKw("default"):
		c.Contype = ast.CONSTR_DEFAULT
		c.RawExpr = p.parseBExpr()
	case p.acceptKw("generated"):
		whenTok := p.cur()
		switch {
		case p.acceptKw("always"):
			c.GeneratedWhen = "a"
		case p.acceptKw("by", "default"):
			c.GeneratedWhen = "d"
		default:
			p.syntaxError()
		}
		p.expectKw("as")
		if p.acceptKw("identity") {
			c.Contype = ast.CONSTR_IDENTITY
			if p.acceptChar('(') {
				c.Options = p.parseSeqOptList()
				p.expectChar(')')
			}
			break
		}
		c.Contype = ast.CONSTR_GENERATED
		p.expectChar('(')
		c.RawExpr = p.parseExpr()
		p.expectChar(')')
		p.expectKw("stored")
		if c.GeneratedWhen != "a" {
			p.errorAt(whenTok.Start, ErrGeneratedAlways)
		}
	case p.acceptKw("references"):
		c.Contype = ast.CONSTR_FOREIGN
		p.parseReferences(c)
	default:
		return nil
	}
	return c
}

// parseTableConstraint parses [CONSTRAINT name] (CHECK | UNIQUE |
// PRIMARY KEY | FOREIGN KEY) ... ConstraintAttributeSpec.
func (p *Parser) parseTableConstraint() *ast.Constraint {
	t := p.cur()
	c := &ast.Constraint{Location: t.Start}
	if p.acceptKw("constraint") {
		c.Conname = p.colID()
	}
	switch {
	case p.acceptKw("check"):
		c.Contype = ast.CONSTR_CHECK
		p.expectChar('(')
		c.RawExpr = p.parseExpr()
		p.expectChar(')')
	case p.acceptKw("unique"):
		c.Contype = ast.CONSTR_UNIQUE
		c.NullsNotDistinct = p.parseNullsDistinct()
		c.Keys = p.parenNameList()
		p.parseIndexOptions(c)
	case p.acceptKw("primary", "key"):
		c.Contype = ast.CONSTR_PRIMARY
		c.Keys = p.parenNameList()
		p.parseIndexOptions(c)
	case p.acceptKw("foreign", "key"):
		c.Contype = ast.CONSTR_FOREIGN
		c.FkAttrs = p.parenNameList()
		p.expectKw("references")
		p.parseReferences(c)
	default:
		p.syntaxError()
	}
	p.parseConstraintAttrSpec(c)
	if c.Contype == ast.CONSTR_CHECK || c.Contype == ast.CONSTR_FOREIGN {
		c.InitiallyValid = !c.SkipValidation
	}
	return c
}

func (p *Parser) parseConstraintAttrSpec(c *ast.Constraint) {
	for {
		switch {
		case p.acceptKw("deferrable"):
			c.Deferrable = true
		case p.acceptKw("not", "deferrable"):
			c.Deferrable = false
		case p.acceptKw("initially", "deferred"):
			c.Initdeferred = true
		case p.acceptKw("initially", "immediate"):
			c.Initdeferred = false
		case p.acceptKw("not", "valid"):
			c.SkipValidation = true
		case p.acceptKw("no", "inherit"):
			c.IsNoInherit = true
		default:
			return
		}
	}
}

// parseNullsDistinct parses [NULLS [NOT] DISTINCT] and reports NOT.
func (p *Parser) parseNullsDistinct() bool {
	switch {
	case p.acceptKw("nulls", "not", "distinct"):
		return true
	case p.acceptKw("nulls", "distinct"):
	}
	return false
}

// parseIndexOptions parses [INCLUDE '(' columns ')'] [WITH definition]
// [USING INDEX TABLESPACE name] of UNIQUE and PRIMARY KEY.
func (p *Parser) parseIndexOptions(c *ast.Constraint) {
	if p.acceptKw("include") {
		c.Including = p.parenNameList()
	}
	if p.isKw("with") && p.peekAt(1).IsChar('(') {
		p.advance()
		c.Options = p.parseRelOptions()
	}
	if p.acceptKw("using", "index", "tablespace") {
		c.Indexspace = p.colID()
	}
}

// parseReferences parses the part of a foreign key after REFERENCES.
func (p *Parser) parseReferences(c *ast.Constraint) {
	c.Pktable = p.qualifiedName()
	if p.isChar('(') {
		c.PkAttrs = p.parenNameList()
	}
	c.FkMatchtype = "s"
	switch {
	case p.acceptKw("match", "full"):
		c.FkMatchtype = "f"
	case p.acceptKw("match", "partial"):
		c.FkMatchtype = "p"
	case p.acceptKw("match", "simple"):
	}
	c.FkUpdAction, c.FkDelAction = "a", "a"
	for i := 0; i < 2; i++ {
		switch {
		case p.acceptKw("on", "update"):
			c.FkUpdAction = p.parseKeyAction()
		case p.acceptKw("on", "delete"):
			c.FkDelAction = p.parseKeyAction()
		}
	}
	c.InitiallyValid = true
}

func (p *Parser) parseKeyAction() string {
	switch {
	case p.acceptKw("no", "action"):
		return "a"
	case p.acceptKw("restrict"):
		return "r"
	case p.acceptKw("cascade"):
		return "c"
	case p.acceptKw("set", "null"):
		return "n"
	case p.acceptKw("set", "default"):
		return "d"
	}
	p.syntaxError()
	return ""
}

// parsePartitionSpec parses PARTITION BY strategy '(' part_elem (',' part_elem)* ')'.
func (p *Parser) parsePartitionSpec() *ast.PartitionSpec {
	spec := &ast.PartitionSpec{Location: p.expectKw("partition", "by").Start}
	t := p.cur()
	switch name := p.colID(); name {
	case "list":
		spec.Strategy = "l"
	case "range":
		spec.Strategy = "r"
	case "hash":
		spec.Strategy = "h"
	default:
		p.errorAt(t.Start, fmt.Sprintf(ErrPartitionStrategy, name))
	}
	p.expectChar('(')
	for {
		spec.PartParams = append(spec.PartParams, p.parsePartitionElem())
		if !p.acceptChar(',') {
			break
		}
	}
	p.expectChar(')')
	return spec
}

func (p *Parser) parsePartitionElem() *ast.PartitionElem {
	elem := &ast.PartitionElem{Location: p.cur().Start}
	switch {
	case p.acceptChar('('):
		elem.Expr = p.parseExpr()
		p.expectChar(')')
	case p.isFuncCallStart():
		elem.Expr = p.parsePrimary()
	default:
		elem.Name = p.colID()
	}
	if p.acceptKw("collate") {
		elem.Collation = p.anyName()
	}
	if isColID(p.cur()) {
		elem.Opclass = p.anyName()
	}
	return elem
}

// parseOptWith parses [WITH '(' reloptions ')' | WITHOUT OIDS].
func (p *Parser) parseOptWith() []ast.Node {
	switch {
	case p.isKw("with") && p.peekAt(1).IsChar('('):
		p.advance()
		return p.parseRelOptions()
	case p.acceptKw("without", "oids"):
	}
	return nil
}

func (p *Parser) parseOnCommit() ast.OnCommitAction {
	switch {
	case p.acceptKw("on", "commit", "drop"):
		return ast.ONCOMMIT_DROP
	case p.acceptKw("on", "commit", "delete", "rows"):
		return ast.ONCOMMIT_DELETE_ROWS
	case p.acceptKw("on", "commit", "preserve", "rows"):
		return ast.ONCOMMIT_PRESERVE_ROWS
	}
	return ast.ONCOMMIT_NOOP
}

// parseRelOptions parses '(' [ns '.'] name ['=' def_arg] (',' ...)* ')'.
func (p *Parser) parseRelOptions() []ast.Node {
	p.expectChar('(')
	var opts []ast.Node
	for {
		t := p.cur()
		def := &ast.DefElem{Defname: p.colLabel(), Location: t.Start}
		if p.acceptChar('.') {
			def.Defnamespace, def.Defname = def.Defname, p.colLabel()
		}
		if p.acceptChar('=') {
			def.Arg = p.parseDefArg()
		}
		opts = append(opts, def)
		if !p.acceptChar(',') {
			break
		}
	}
	p.expectChar(')')
	return opts
}

// parseDefArg parses a definition value: a number, a string, a reserved
// keyword or a type name.
func (p *Parser) parseDefArg() ast.Node {
	t := p.cur()
	switch {
	case p.isNumericStart():
		return p.parseNumericOnly()
	case t.Kind == token.SCONST, t.Keyword == token.ReservedKeyword, t.IsKeyword("none"):
		p.advance()
		return str(t.Value)
	}
	return p.parseTypename()
}

// ---------- CREATE INDEX / VIEW / SCHEMA / SEQUENCE ----------

// CREATE [UNIQUE] INDEX [CONCURRENTLY] [[IF NOT EXISTS] name] ON relation_expr
//
//	[USING method] '(' index_params ')' [INCLUDE '(' index_params ')']
//	[NULLS [NOT] DISTINCT] [WITH reloptions] [TABLESPACE name] [WHERE a_expr]
func (p *Parser) parseIndexStmt() *ast.IndexStmt {
	stmt := &ast.IndexStmt{AccessMethod: "btree"}
	stmt.Unique = p.acceptKw("unique")
	p.expectKw("index")
	stmt.Concurrent = p.acceptKw("concurrently")
	switch {
	case p.acceptKw("if", "not", "exists"):
		stmt.IfNotExists = true
		stmt.Idxname = p.colID()
	case !p.isKw("on"):
		stmt.Idxname = p.colID()
	}
	p.expectKw("on")
	stmt.Relation = p.parseRelationExpr()
	if p.acceptKw("using") {
		stmt.AccessMethod = p.colID()
	}
	p.expectChar('(')
	stmt.IndexParams = p.parseIndexParams()
	p.expectChar(')')
	if p.acceptKw("include") {
		p.expectChar('(')
		stmt.IndexIncludingParams = p.parseIndexParams()
		p.expectChar(')')
	}
	stmt.NullsNotDistinct = p.parseNullsDistinct()
	if p.isKw("with") && p.peekAt(1).IsChar('(') {
		p.advance()
		stmt.Options = p.parseRelOptions()
	}
	if p.acceptKw("tablespace") {
		stmt.TableSpace = p.colID()
	}
	if p.acceptKw("where") {
		stmt.WhereClause = p.parseExpr()
	}
	return stmt
}

// CREATE [OR REPLACE] [TEMP] VIEW name ['(' columns ')'] [WITH reloptions]
//
//	AS SelectStmt [WITH [CASCADED | LOCAL] CHECK OPTION]
func (p *Parser) parseViewStmt(replace bool, persistence string) *ast.ViewStmt {
	p.expectKw("view")
	stmt := &ast.ViewStmt{Replace: replace, View: p.qualifiedName()}
	stmt.View.Relpersistence = persistence
	if p.isChar('(') {
		stmt.Aliases = p.parenNameList()
	}
	if p.isKw("with") && p.peekAt(1).IsChar('(') {
		p.advance()
		stmt.Options = p.parseRelOptions()
	}
	p.expectKw("as")
	stmt.Query = p.parseSelectStmt()
	switch {
	case p.acceptKw("with", "check", "option"), p.acceptKw("with", "cascaded", "check", "option"):
		stmt.WithCheckOption = ast.CASCADED_CHECK_OPTION
	case p.acceptKw("with", "local", "check", "option"):
		stmt.WithCheckOption = ast.LOCAL_CHECK_OPTION
	}
	return stmt
}

// CREATE SCHEMA [IF NOT EXISTS] (name [AUTHORIZATION role] | AUTHORIZATION role) [schema_element ...]
func (p *Parser) parseCreateSchemaStmt() *ast.CreateSchemaStmt {
	p.expectKw("schema")
	stmt := &ast.CreateSchemaStmt{IfNotExists: p.acceptKw("if", "not", "exists")}
	if !p.isKw("authorization") {
		stmt.Schemaname = p.colID()
	}
	if p.acceptKw("authorization") {
		stmt.Authrole = p.roleSpec()
	}
	for p.isKw("create") || p.isKw("grant") {
		stmt.SchemaElts = append(stmt.SchemaElts, p.parseStmt())
	}
	return stmt
}

// CREATE [TEMP] SEQUENCE [IF NOT EXISTS] name [seq_options]
func (p *Parser) parseCreateSeqStmt(persistence string) *ast.CreateSeqStmt {
	p.expectKw("sequence")
	stmt := &ast.CreateSeqStmt{IfNotExists: p.acceptKw("if", "not", "exists"), Sequence: p.qualifiedName()}
	stmt.Sequence.Relpersistence = persistence
	stmt.Options = p.parseSeqOptList()
	return stmt
}

func (p *Parser) parseSeqOptList() []ast.Node {
	var opts []ast.Node
	for {
		opt := p.parseSeqOptElem()
		if opt == nil {
			return opts
		}
		opts = append(opts, opt)
	}
}

func (p *Parser) parseSeqOptElem() *ast.DefElem {
	t := p.cur()
	switch {
	case p.acceptKw("as"):
		return makeDefElem("as", p.parseSimpleTypename(), t.Start)
	case p.acceptKw("cache"):
		return makeDefElem("cache", p.parseNumericOnly(), t.Start)
	case p.acceptKw("cycle"):
		return makeDefElem("cycle", &ast.Boolean{Boolval: true}, t.Start)
	case p.acceptKw("no", "cycle"):
		return makeDefElem("cycle", &ast.Boolean{Boolval: false}, t.Start)
	case p.acceptKw("increment"):
		p.acceptKw("by")
		return makeDefElem("increment", p.parseNumericOnly(), t.Start)
	case p.acceptKw("maxvalue"):
		return makeDefElem("maxvalue", p.parseNumericOnly(), t.Start)
	case p.acceptKw("minvalue"):
		return makeDefElem("minvalue", p.parseNumericOnly(), t.Start)
	case p.acceptKw("no", "maxvalue"):
		return makeDefElem("maxvalue", nil, t.Start)
	case p.acceptKw("no", "minvalue"):
		return makeDefElem("minvalue", nil, t.Start)
	case p.acceptKw("owned", "by"):
		return makeDefElem("owned_by", &ast.List{Items: p.anyName()}, t.Start)
	case p.acceptKw("sequence", "name"):
		return makeDefElem("sequence_name", &ast.List{Items: p.anyName()}, t.Start)
	case p.acceptKw("start"):
		p.acceptKw("with")
		return makeDefElem("start", p.parseNumericOnly(), t.Start)
	case p.acceptKw("restart"):
		p.acceptKw("with")
		if p.isNumericStart() {
			return makeDefElem("restart", p.parseNumericOnly(), t.Start)
		}
		return makeDefElem("restart", nil, t.Start)
	}
	return nil
}

// REFRESH MATERIALIZED VIEW [CONCURRENTLY] qualified_name [WITH [NO] DATA]
func (p *Parser) parseRefreshMatViewStmt() *ast.RefreshMatViewStmt {
	p.expectKw("refresh", "materialized", "view")
	stmt := &ast.RefreshMatViewStmt{Concurrent: p.acceptKw("concurrently"), Relation: p.qualifiedName()}
	switch {
	case p.acceptKw("with", "no", "data"):
		stmt.SkipData = true
	case p.acceptKw("with", "data"):
	}
	return stmt
}

// ---------- CREATE TRIGGER ----------

// CREATE [OR REPLACE] TRIGGER name (BEFORE | AFTER | INSTEAD OF) events ON qualified_name
//
//	[REFERENCING (OLD | NEW) (TABLE | ROW) [AS] name ...] [FOR [EACH] (ROW | STATEMENT)]
//	[WHEN '(' a_expr ')'] EXECUTE (FUNCTION | PROCEDURE) func_name '(' [args] ')'
//
// The CONSTRAINT form is always AFTER ... FOR EACH ROW and takes
// [FROM qualified_name] and deferral attributes instead of REFERENCING.
func (p *Parser) parseCreateTrigStmt(replace bool) *ast.CreateTrigStmt {
	stmt := &ast.CreateTrigStmt{Replace: replace, Isconstraint: p.acceptKw("constraint")}
	p.expectKw("trigger")
	stmt.Trigname = p.colID()
	switch {
	case p.acceptKw("after"):
	case stmt.Isconstraint:
		p.syntaxError()
	case p.acceptKw("before"):
		stmt.Timing = ast.TriggerTypeBefore
	case p.acceptKw("instead", "of"):
		stmt.Timing = ast.TriggerTypeInstead
	default:
		p.syntaxError()
	}
	p.parseTriggerEvents(stmt)
	p.expectKw("on")
	stmt.Relation = p.qualifiedName()

	if stmt.Isconstraint {
		if p.acceptKw("from") {
			stmt.Constrrel = p.qualifiedName()
		}
		attrAt := p.cur().Start
		var attrs ast.Constraint
		p.parseConstraintAttrSpec(&attrs)
		switch {
		case attrs.SkipValidation:
			p.errorAt(attrAt, "TRIGGER constraints cannot be marked NOT VALID")
		case attrs.IsNoInherit:
			p.errorAt(attrAt, "TRIGGER constraints cannot be marked NO INHERIT")
		}
		stmt.Deferrable, stmt.Initdeferred = attrs.Deferrable, attrs.Initdeferred
		p.expectKw("for")
		p.acceptKw("each")
		p.expectKw("row")
		stmt.Row = true
	} else {
		if p.acceptKw("referencing") {
			stmt.TransitionRels = p.parseTriggerTransitions()
		}
		if p.acceptKw("for") {
			p.acceptKw("each")
			if !p.acceptKw("statement") {
				p.expectKw("row")
				stmt.Row = true
			}
		}
	}

	if p.acceptKw("when") {
		p.expectChar('(')
		stmt.WhenClause = p.parseExpr()
		p.expectChar(')')
	}
	p.expectKw("execute")
	if !p.acceptKw("function") {
		p.expectKw("procedure")
	}
	stmt.Funcname = p.funcName()
	p.expectChar('(')
	if !p.isChar(')') {
		for {
			stmt.Args = append(stmt.Args, str(p.parseTriggerFuncArg()))
			if !p.acceptChar(',') {
				break
			}
		}
	}
	p.expectChar(')')
	return stmt
}

// parseTriggerEvents parses event [OR event ...] into Events and the
// UPDATE OF column list. Naming an event twice is an error.
func (p *Parser) parseTriggerEvents(stmt *ast.CreateTrigStmt) {
	for {
		t := p.cur()
		var event int
		switch {
		case p.acceptKw("insert"):
			event = ast.TriggerTypeInsert
		case p.acceptKw("delete"):
			event = ast.TriggerTypeDelete
		case p.acceptKw("update"):
			event = ast.TriggerTypeUpdate
			if p.acceptKw("of") {
				stmt.Columns = append(stmt.Columns, p.nameList()...)
			}
		case p.acceptKw("truncate"):
			event = ast.TriggerTypeTruncate
		default:
			p.syntaxError()
		}
		if stmt.Events&event != 0 {
			p.errorAt(t.Start, "duplicate trigger events specified")
		}
		stmt.Events |= event
		if !p.acceptKw("or") {
			return
		}
	}
}

func (p *Parser) parseTriggerTransitions() []ast.Node {
	var rels []ast.Node
	for {
		tt := &ast.TriggerTransition{}
		switch {
		case p.acceptKw("new"):
			tt.IsNew = true
		case p.acceptKw("old"):
		default:
			p.syntaxError()
		}
		switch {
		case p.acceptKw("table"):
			tt.IsTable = true
		case p.acceptKw("row"):
		default:
			p.syntaxError()
		}
		p.acceptKw("as")
		tt.Name = p.colID()
		rels = append(rels, tt)
		if !p.isKw("new") && !p.isKw("old") {
			return rels
		}
	}
}

// parseTriggerFuncArg parses one trigger argument. Every argument is
// passed to the function as a string.
func (p *Parser) parseTriggerFuncArg() string {
	t := p.cur()
	switch t.Kind {
	case token.ICONST:
		p.advance()
		if v, ok := parseInt32(t.Value); ok {
			return strconv.Itoa(v)
		}
		return t.Value
	case token.FCONST:
		p.advance()
		return t.Value
	case token.SCONST:
		return p.sconst()
	}
	return p.colLabel()
}

// ---------- CREATE ROLE ----------

// roleFlags maps the identifier role options to their DefElem.
var roleFlags = map[string]struct {
	name string
	on   bool
}{
	"superuser":     {"superuser", true},
	"nosuperuser":   {"superuser", false},
	"createrole":    {"createrole", true},
	"nocreaterole":  {"createrole", false},
	"replication":   {"isreplication", true},
	"noreplication": {"isreplication", false},
	"createdb":      {"createdb", true},
	"nocreatedb":    {"createdb", false},
	"login":         {"canlogin", true},
	"nologin":       {"canlogin", false},
	"bypassrls":     {"bypassrls", true},
	"nobypassrls":   {"bypassrls", false},
	"noinherit":     {"inherit", false},
}

// CREATE (ROLE | USER | GROUP) name [WITH] [role_option ...]
func (p *Parser) parseCreateRoleStmt() *ast.CreateRoleStmt {
	stmt := &ast.CreateRoleStmt{}
	switch {
	case p.acceptKw("user"):
		stmt.StmtType = ast.ROLESTMT_USER
	case p.acceptKw("group"):
		stmt.StmtType = ast.ROLESTMT_GROUP
	default:
		p.expectKw("role")
	}
	stmt.Role = p.roleID()
	p.acceptKw("with")
	for {
		opt := p.parseCreateRoleOpt()
		if opt == nil {
			return stmt
		}
		stmt.Options = append(stmt.Options, opt)
	}
}

// roleID parses a role name being defined; PUBLIC and the CURRENT_ROLE
// style keywords are rejected.
func (p *Parser) roleID() string {
	t := p.cur()
	rs := p.roleSpec()
	switch rs.Roletype {
	case ast.ROLESPEC_CSTRING:
		return rs.Rolename
	case ast.ROLESPEC_PUBLIC:
		p.errorAt(t.Start, `role name "public" is reserved`)
	default:
		p.errorAt(t.Start, strings.ToUpper(t.Value)+" cannot be used as a role name here")
	}
	return ""
}

func (p *Parser) parseCreateRoleOpt() *ast.DefElem {
	t := p.cur()
	switch {
	case p.acceptKw("password"):
		if p.acceptKw("null") {
			return makeDefElem("password", nil, t.Start)
		}
		return makeDefElem("password", str(p.sconst()), t.Start)
	case p.acceptKw("encrypted", "password"):
		return makeDefElem("password", str(p.sconst()), t.Start)
	case p.isKwSeq("unencrypted", "password"):
		p.errorAt(t.Start, "UNENCRYPTED PASSWORD is no longer supported")
	case p.acceptKw("inherit"):
		return makeDefElem("inherit", &ast.Boolean{Boolval: true}, t.Start)
	case p.acceptKw("connection", "limit"):
		return makeDefElem("connectionlimit", &ast.Integer{Ival: p.signedIconst()}, t.Start)
	case p.acceptKw("valid", "until"):
		return makeDefElem("validUntil", str(p.sconst()), t.Start)
	case p.acceptKw("sysid"):
		return makeDefElem("sysid", &ast.Integer{Ival: p.iconst()}, t.Start)
	case p.acceptKw("admin"):
		return makeDefElem("adminmembers", &ast.List{Items: p.roleList()}, t.Start)
	case p.acceptKw("role"), p.acceptKw("user"):
		return makeDefElem("rolemembers", &ast.List{Items: p.roleList()}, t.Start)
	case p.acceptKw("in", "role"), p.acceptKw("in", "group"):
		return makeDefElem("addroleto", &ast.List{Items: p.roleList()}, t.Start)
	case t.Kind == token.IDENT:
		flag, ok := roleFlags[t.Value]
		if !ok {
			p.errorAt(t.Start, fmt.Sprintf("unrecognized role option \"%s\"", t.Value))
		}
		p.advance()
		return makeDefElem(flag.name, &ast.Boolean{Boolval: flag.on}, t.Start)
	}
	return nil
}

// ---------- CREATE FUNCTION / PROCEDURE ----------

// CREATE [OR REPLACE] (FUNCTION | PROCEDURE) func_name '(' [func_arg [DEFAULT a_expr] ...] ')'
//
//	[RETURNS func_type | RETURNS TABLE '(' columns ')'] [options] [routine_body]
func (p *Parser) parseCreateFunctionStmt(replace bool) *ast.CreateFunctionStmt {
	kw := p.advance()
	stmt := &ast.CreateFunctionStmt{IsProcedure: kw.Value == "procedure", Replace: replace}
	stmt.Funcname = p.funcName()
	stmt.Parameters = p.parseFuncParams(true)
	if !stmt.IsProcedure && p.isKw("returns") && !p.isKwAt(1, "null") {
		p.advance()
		if p.isKw("table") && p.peekAt(1).IsChar('(') {
			table := p.advance()
			cols := p.parseTableFuncColumns()
			stmt.Parameters = append(stmt.Parameters, cols...)
			stmt.ReturnType = tableFuncTypeName(cols, table.Start)
		} else {
			stmt.ReturnType = p.parseTypename()
		}
	}
	stmt.Options = p.parseCreateFuncOptList()
	stmt.SQLBody = p.parseRoutineBody()
	return stmt
}

// tableFuncTypeName is the result type of RETURNS TABLE: the single
// column's type, or record, as a set.
func tableFuncTypeName(cols []ast.Node, loc int) *ast.TypeName {
	var tn *ast.TypeName
	if len(cols) == 1 {
		tn = ast.Clone(cols[0].(*ast.FunctionParameter).ArgType).(*ast.TypeName)
	} else {
		tn = systemTypeName("record", -1)
	}
	tn.Setof = true
	tn.Location = loc
	return tn
}

// parseFuncParams parses '(' [func_arg (',' func_arg)*] ')', with defaults
// when allowed.
func (p *Parser) parseFuncParams(defaults bool) []ast.Node {
	p.expectChar('(')
	var params []ast.Node
	if !p.isChar(')') {
		for {
			fp := p.parseFuncParam()
			if defaults && (p.acceptKw("default") || p.acceptChar('=')) {
				fp.Defexpr = p.parseExpr()
			}
			params = append(params, fp)
			if !p.acceptChar(',') {
				break
			}
		}
	}
	p.expectChar(')')
	return params
}

// parseFuncParam parses [arg_class] [param_name] func_type or
// param_name arg_class func_type.
func (p *Parser) parseFuncParam() *ast.FunctionParameter {
	fp := &ast.FunctionParameter{Mode: ast.FUNC_PARAM_DEFAULT}
	mode, hasMode := p.parseArgClass()
	if hasMode {
		fp.Mode = mode
	}
	if p.isParamName() {
		fp.Name = p.advance().Value
		if !hasMode {
			if mode, ok := p.parseArgClass(); ok {
				fp.Mode = mode
			}
		}
	}
	fp.ArgType = p.parseTypename()
	return fp
}

func (p *Parser) parseArgClass() (ast.FunctionParameterMode, bool) {
	switch {
	case p.acceptKw("in", "out"), p.acceptKw("inout"):
		return ast.FUNC_PARAM_INOUT, true
	case p.acceptKw("in"):
		return ast.FUNC_PARAM_IN, true
	case p.acceptKw("out"):
		return ast.FUNC_PARAM_OUT, true
	case p.acceptKw("variadic"):
		return ast.FUNC_PARAM_VARIADIC, true
	}
	return ast.FUNC_PARAM_DEFAULT, false
}

// isParamName reports whether the current token names a parameter rather
// than starting its type.
func (p *Parser) isParamName() bool {
	t := p.cur()
	if !isTypeFuncName(t) {
		return false
	}
	next := p.peekAt(1)
	if isBuiltinTypeStart(t) {
		switch {
		case next.IsKeyword("precision"), next.IsKeyword("varying"),
			next.IsKeyword("with"), next.IsKeyword("without"):
			return false
		}
	}
	switch {
	case next.Kind == token.EOF, next.IsChar(','), next.IsChar(')'), next.IsChar('.'),
		next.IsChar('%'), next.IsChar('['), next.IsChar('('), next.IsChar('='),
		next.IsKeyword("default"), next.IsKeyword("array"):
		return false
	}
	return true
}

func (p *Parser) parseTableFuncColumns() []ast.Node {
	p.expectChar('(')
	var cols []ast.Node
	for {
		name := p.typeFuncName()
		cols = append(cols, &ast.FunctionParameter{Name: name, ArgType: p.parseTypename(), Mode: ast.FUNC_PARAM_TABLE})
		if !p.acceptChar(',') {
			break
		}
	}
	p.expectChar(')')
	return cols
}

func (p *Parser) parseCreateFuncOptList() []ast.Node {
	var opts []ast.Node
	for {
		t := p.cur()
		var opt *ast.DefElem
		switch {
		case p.acceptKw("as"):
			items := []ast.Node{str(p.sconst())}
			if p.acceptChar(',') {
				items = append(items, str(p.sconst()))
			}
			opt = makeDefElem("as", &ast.List{Items: items}, t.Start)
		case p.acceptKw("language"):
			opt = makeDefElem("language", str(p.nonReservedWordOrSconst()), t.Start)
		case p.acceptKw("window"):
			opt = makeDefElem("window", &ast.Boolean{Boolval: true}, t.Start)
		default:
			opt = p.parseCommonFuncOpt()
		}
		if opt == nil {
			return opts
		}
		opts = append(opts, opt)
	}
}

// parseCommonFuncOpt parses one option shared by CREATE and ALTER
// FUNCTION, or returns nil.
func (p *Parser) parseCommonFuncOpt() *ast.DefElem {
	t := p.cur()
	boolOpt := func(name string, v bool) *ast.DefElem {
		return makeDefElem(name, &ast.Boolean{Boolval: v}, t.Start)
	}
	switch {
	case p.acceptKw("called", "on", "null", "input"):
		return boolOpt("strict", false)
	case p.acceptKw("returns", "null", "on", "null", "input"), p.acceptKw("strict"):
		return boolOpt("strict", true)
	case p.acceptKw("immutable"), p.acceptKw("stable"), p.acceptKw("volatile"):
		return makeDefElem("volatility", str(t.Value), t.Start)
	case p.acceptKw("external", "security", "definer"), p.acceptKw("security", "definer"):
		return boolOpt("security", true)
	case p.acceptKw("external", "security", "invoker"), p.acceptKw("security", "invoker"):
		return boolOpt("security", false)
	case p.acceptKw("leakproof"):
		return boolOpt("leakproof", true)
	case p.acceptKw("not", "leakproof"):
		return boolOpt("leakproof", false)
	case p.acceptKw("cost"):
		return makeDefElem("cost", p.parseNumericOnly(), t.Start)
	case p.acceptKw("rows"):
		return makeDefElem("rows", p.parseNumericOnly(), t.Start)
	case p.acceptKw("support"):
		return makeDefElem("support", &ast.List{Items: p.anyName()}, t.Start)
	case p.acceptKw("parallel"):
		return makeDefElem("parallel", str(p.colID()), t.Start)
	case p.acceptKw("set"):
		return makeDefElem("set", p.parseSetRest(), t.Start)
	case p.isKw("reset"):
		return makeDefElem("set", p.parseResetStmt(), t.Start)
	}
	return nil
}

// parseRoutineBody parses RETURN a_expr or BEGIN ATOMIC stmt; ... END.
// The atomic form yields a List holding the list of statements.
func (p *Parser) parseRoutineBody() ast.Node {
	switch {
	case p.isKw("return"):
		return p.parseReturnStmt()
	case p.acceptKw("begin", "atomic"):
		stmts := &ast.List{}
		for !p.isKw("end") {
			if p.acceptChar(';') {
				continue
			}
			if p.isKw("return") {
				stmts.Items = append(stmts.Items, p.parseReturnStmt())
			} else {
				stmts.Items = append(stmts.Items, p.parseStmt())
			}
			p.expectChar(';')
		}
		p.expectKw("end")
		return &ast.List{Items: []ast.Node{stmts}}
	}
	return nil
}

func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	p.expectKw("return")
	return &ast.ReturnStmt{Returnval: p.parseExpr()}
}

// ---------- CREATE EXTENSION / TYPE / DOMAIN ----------

// CREATE EXTENSION [IF NOT EXISTS] name [WITH] [SCHEMA name | VERSION v | CASCADE]*
func (p *Parser) parseCreateExtensionStmt() *ast.CreateExtensionStmt {
	p.expectKw("extension")
	stmt := &ast.CreateExtensionStmt{IfNotExists: p.acceptKw("if", "not", "exists")}
	stmt.Extname = p.colID()
	p.acceptKw("with")
	for {
		t := p.cur()
		switch {
		case p.acceptKw("schema"):
			stmt.Options = append(stmt.Options, makeDefElem("schema", str(p.colID()), t.Start))
		case p.acceptKw("version"):
			stmt.Options = append(stmt.Options, makeDefElem("new_version", str(p.nonReservedWordOrSconst()), t.Start))
		case p.acceptKw("cascade"):
			stmt.Options = append(stmt.Options, makeDefElem("cascade", &ast.Boolean{Boolval: true}, t.Start))
		default:
			return stmt
		}
	}
}

// CREATE TYPE any_name AS ENUM '(' [labels] ')' | CREATE TYPE any_name AS '(' columns ')'
func (p *Parser) parseCreateTypeStmt() ast.Node {
	p.expectKw("type")
	start := p.cur()
	names := append([]string{p.colID()}, p.attrs()...)
	p.expectKw("as")
	if p.acceptKw("enum") {
		stmt := &ast.CreateEnumStmt{TypeName: stringList(names...)}
		p.expectChar('(')
		if !p.isChar(')') {
			for {
				stmt.Vals = append(stmt.Vals, str(p.sconst()))
				if !p.acceptChar(',') {
					break
				}
			}
		}
		p.expectChar(')')
		return stmt
	}
	return &ast.CompositeTypeStmt{Typevar: p.makeRangeVar(names, start.Start), Coldeflist: p.parseTableFuncElementList()}
}

// CREATE DOMAIN any_name [AS] Typename ColQualList
func (p *Parser) parseCreateDomainStmt() *ast.CreateDomainStmt {
	p.expectKw("domain")
	stmt := &ast.CreateDomainStmt{Domainname: p.anyName()}
	p.acceptKw("as")
	stmt.TypeName = p.parseTypename()
	stmt.Constraints, stmt.CollClause = p.parseColQualList()
	return stmt
}

// ---------- ALTER ----------

func (p *Parser) parseAlterStmt() ast.Node {
	p.expectKw("alter")
	var objtype ast.ObjectType
	switch {
	case p.acceptKw("table"):
		objtype = ast.OBJECT_TABLE
	case p.acceptKw("index"):
		objtype = ast.OBJECT_INDEX
	case p.acceptKw("sequence"):
		objtype = ast.OBJECT_SEQUENCE
	case p.acceptKw("view"):
		objtype = ast.OBJECT_VIEW
	case p.acceptKw("materialized", "view"):
		objtype = ast.OBJECT_MATVIEW
	case p.acceptKw("schema"):
		name := p.colID()
		p.expectKw("rename", "to")
		return &ast.RenameStmt{RenameType: ast.OBJECT_SCHEMA, Subname: name, Newname: p.colID()}
	default:
		p.syntaxError()
	}
	missingOk := p.acceptKw("if", "exists")
	var rel *ast.RangeVar
	if objtype == ast.OBJECT_TABLE {
		rel = p.parseRelationExpr()
	} else {
		rel = p.qualifiedName()
	}
	if p.acceptKw("rename") {
		return p.parseRenameRest(objtype, rel, missingOk)
	}
	if objtype == ast.OBJECT_SEQUENCE {
		if opts := p.parseSeqOptList(); len(opts) > 0 {
			return &ast.AlterSeqStmt{Sequence: rel, Options: opts, MissingOk: missingOk}
		}
	}
	stmt := &ast.AlterTableStmt{Relation: rel, Objtype: objtype, MissingOk: missingOk}
	for {
		stmt.Cmds = append(stmt.Cmds, p.parseAlterTableCmd())
		if !p.acceptChar(',') {
			return stmt
		}
	}
}

// parseRenameRest parses the part after RENAME: TO name,
// [COLUMN] name TO name, or CONSTRAINT name TO name.
func (p *Parser) parseRenameRest(objtype ast.ObjectType, rel *ast.RangeVar, missingOk bool) *ast.RenameStmt {
	stmt := &ast.RenameStmt{RenameType: objtype, Relation: rel, MissingOk: missingOk}
	switch {
	case p.acceptKw("to"):
		stmt.Newname = p.colID()
		return stmt
	case p.acceptKw("constraint"):
		stmt.RenameType = ast.OBJECT_TABCONSTRAINT
	default:
		p.acceptKw("column")
		stmt.RenameType = ast.OBJECT_COLUMN
		stmt.RelationType = objtype
	}
	stmt.Subname = p.colID()
	p.expectKw("to")
	stmt.Newname = p.colID()
	return stmt
}

func (p *Parser) parseAlterTableCmd() *ast.AlterTableCmd {
	cmd := &ast.AlterTableCmd{}
	switch {
	case p.acceptKw("add"):
		if p.isTableConstraintStart() {
			cmd.Subtype = ast.AT_AddConstraint
			cmd.Def = p.parseTableConstraint()
			break
		}
		p.acceptKw("column")
		cmd.Subtype = ast.AT_AddColumn
		cmd.MissingOk = p.acceptKw("if", "not", "exists")
		cmd.Def = p.parseColumnDef()
	case p.acceptKw("drop"):
		cmd.Subtype = ast.AT_DropColumn
		if p.acceptKw("constraint") {
			cmd.Subtype = ast.AT_DropConstraint
		} else {
			p.acceptKw("column")
		}
		cmd.MissingOk = p.acceptKw("if", "exists")
		cmd.Name = p.colID()
		cmd.Behavior = p.parseDropBehavior()
	case p.acceptKw("alter"):
		p.acceptKw("column")
		col := p.cur()
		cmd.Name = p.colID()
		switch {
		case p.acceptKw("set", "default"):
			cmd.Subtype = ast.AT_ColumnDefault
			cmd.Def = p.parseExpr()
		case p.acceptKw("drop", "default"):
			cmd.Subtype = ast.AT_ColumnDefault
		case p.acceptKw("set", "not", "null"):
			cmd.Subtype = ast.AT_SetNotNull
		case p.acceptKw("drop", "not", "null"):
			cmd.Subtype = ast.AT_DropNotNull
		case p.acceptKw("set", "data", "type"), p.acceptKw("type"):
			cmd.Subtype = ast.AT_AlterColumnType
			def := &ast.ColumnDef{TypeName: p.parseTypename(), Location: col.Start}
			if t := p.cur(); p.acceptKw("collate") {
				def.CollClause = &ast.CollateClause{Collname: p.anyName(), Location: t.Start}
			}
			if p.acceptKw("using") {
				def.RawDefault = p.parseExpr()
			}
			cmd.Def = def
		default:
			p.syntaxError()
		}
	case p.acceptKw("validate", "constraint"):
		cmd.Subtype = ast.AT_ValidateConstraint
		cmd.Name = p.colID()
	case p.acceptKw("owner", "to"):
		cmd.Subtype = ast.AT_ChangeOwner
		cmd.Newowner = p.roleSpec()
	case p.acceptKw("set", "tablespace"):
		cmd.Subtype = ast.AT_SetTableSpace
		cmd.Name = p.colID()
	default:
		p.syntaxError()
	}
	return cmd
}

// ---------- DROP / TRUNCATE / COMMENT ----------

// objectKind says how the names of an object type are written.
type objectKind int

const (
	kindAnyName  objectKind = iota // any_name: List of String
	kindName                       // name: String
	kindType                       // Typename
	kindFunction                   // function_with_argtypes
	kindOnTable                    // name ON any_name
)

var droppableObjects = []struct {
	words []string
	typ   ast.ObjectType
	kind  objectKind
}{
	{[]string{"table"}, ast.OBJECT_TABLE, kindAnyName},
	{[]string{"sequence"}, ast.OBJECT_SEQUENCE, kindAnyName},
	{[]string{"view"}, ast.OBJECT_VIEW, kindAnyName},
	{[]string{"materialized", "view"}, ast.OBJECT_MATVIEW, kindAnyName},
	{[]string{"index"}, ast.OBJECT_INDEX, kindAnyName},
	{[]string{"foreign", "table"}, ast.OBJECT_FOREIGN_TABLE, kindAnyName},
	{[]string{"schema"}, ast.OBJECT_SCHEMA, kindName},
	{[]string{"extension"}, ast.OBJECT_EXTENSION, kindName},
	{[]string{"type"}, ast.OBJECT_TYPE, kindType},
	{[]string{"domain"}, ast.OBJECT_DOMAIN, kindType},
	{[]string{"function"}, ast.OBJECT_FUNCTION, kindFunction},
	{[]string{"procedure"}, ast.OBJECT_PROCEDURE, kindFunction},
	{[]string{"routine"}, ast.OBJECT_ROUTINE, kindFunction},
	{[]string{"aggregate"}, ast.OBJECT_AGGREGATE, kindFunction},
	{[]string{"trigger"}, ast.OBJECT_TRIGGER, kindOnTable},
}

func (p *Parser) parseObjectType() (ast.ObjectType, objectKind) {
	for _, o := range droppableObjects {
		if p.acceptKw(o.words...) {
			return o.typ, o.kind
		}
	}
	p.syntaxError()
	return 0, 0
}

// parseObjectName parses one object name of the given kind.
func (p *Parser) parseObjectName(kind objectKind) ast.Node {
	switch kind {
	case kindName:
		return str(p.colID())
	case kindType:
		return p.parseTypename()
	case kindFunction:
		return p.parseFunctionWithArgtypes()
	case kindOnTable:
		name := p.colID()
		p.expectKw("on")
		return &ast.List{Items: append(p.anyName(), str(name))}
	}
	return &ast.List{Items: p.anyName()}
}

// parseFunctionWithArgtypes parses func_name ['(' func_args ')']. Only
// non-OUT argument types are kept.
func (p *Parser) parseFunctionWithArgtypes() *ast.ObjectWithArgs {
	owa := &ast.ObjectWithArgs{Objname: p.funcName()}
	if !p.isChar('(') {
		owa.ArgsUnspecified = true
		return owa
	}
	for _, n := range p.parseFuncParams(false) {
		if fp := n.(*ast.FunctionParameter); fp.Mode != ast.FUNC_PARAM_OUT {
			owa.Objargs = append(owa.Objargs, fp.ArgType)
		}
	}
	return owa
}

// DROP object_type [CONCURRENTLY] [IF EXISTS] name (',' name)* [CASCADE | RESTRICT]
func (p *Parser) parseDropStmt() *ast.DropStmt {
	p.expectKw("drop")
	typ, kind := p.parseObjectType()
	stmt := &ast.DropStmt{RemoveType: typ}
	if typ == ast.OBJECT_INDEX {
		stmt.Concurrent = p.acceptKw("concurrently")
	}
	stmt.MissingOk = p.acceptKw("if", "exists")
	for {
		stmt.Objects = append(stmt.Objects, p.parseObjectName(kind))
		if kind == kindOnTable || !p.acceptChar(',') {
			break
		}
	}
	stmt.Behavior = p.parseDropBehavior()
	return stmt
}

// TRUNCATE [TABLE] relation_expr_list [RESTART | CONTINUE IDENTITY] [CASCADE | RESTRICT]
func (p *Parser) parseTruncateStmt() *ast.TruncateStmt {
	p.expectKw("truncate")
	p.acceptKw("table")
	stmt := &ast.TruncateStmt{Relations: p.parseRelationExprList()}
	switch {
	case p.acceptKw("restart", "identity"):
		stmt.RestartSeqs = true
	case p.acceptKw("continue", "identity"):
	}
	stmt.Behavior = p.parseDropBehavior()
	return stmt
}

// COMMENT ON object IS (Sconst | NULL)
func (p *Parser) parseCommentStmt() *ast.CommentStmt {
	p.expectKw("comment", "on")
	stmt := &ast.CommentStmt{}
	switch {
	case p.acceptKw("column"):
		stmt.Objtype = ast.OBJECT_COLUMN
		stmt.Object = &ast.List{Items: p.anyName()}
	case p.acceptKw("constraint"):
		stmt.Objtype = ast.OBJECT_TABCONSTRAINT
		stmt.Object = p.parseObjectName(kindOnTable)
	case p.acceptKw("database"):
		stmt.Objtype = ast.OBJECT_DATABASE
		stmt.Object = str(p.colID())
	case p.acceptKw("role"):
		stmt.Objtype = ast.OBJECT_ROLE
		stmt.Object = str(p.colID())
	default:
		typ, kind := p.parseObjectType()
		stmt.Objtype = typ
		stmt.Object = p.parseObjectName(kind)
	}
	p.expectKw("is")
	if !p.acceptKw("null") {
		stmt.Comment = p.sconst()
	}
	return stmt
}

// ---------- GRANT / REVOKE ----------

// GRANT privileges ON target TO grantees [WITH GRANT OPTION] [GRANTED BY role]
// REVOKE [GRANT OPTION FOR] privileges ON target FROM grantees [GRANTED BY role] [CASCADE | RESTRICT]
func (p *Parser) parseGrantStmt() *ast.GrantStmt {
	t := p.advance()
	stmt := &ast.GrantStmt{IsGrant: t.Value == "grant"}
	if !stmt.IsGrant && p.acceptKw("grant", "option", "for") {
		stmt.GrantOption = true
	}
	stmt.Privileges = p.parsePrivileges()
	p.expectKw("on")
	p.parsePrivilegeTarget(stmt)
	if stmt.IsGrant {
		p.expectKw("to")
	} else {
		p.expectKw("from")
	}
	for {
		p.acceptKw("group")
		stmt.Grantees = append(stmt.Grantees, p.roleSpec())
		if !p.acceptChar(',') {
			break
		}
	}
	if stmt.IsGrant && p.acceptKw("with", "grant", "option") {
		stmt.GrantOption = true
	}
	if p.acceptKw("granted", "by") {
		stmt.Grantor = p.roleSpec()
	}
	if !stmt.IsGrant {
		stmt.Behavior = p.parseDropBehavior()
	}
	return stmt
}

// parsePrivileges returns nil for ALL [PRIVILEGES] without columns.
func (p *Parser) parsePrivileges() []ast.Node {
	if p.acceptKw("all") {
		p.acceptKw("privileges")
		if p.isChar('(') {
			return []ast.Node{&ast.AccessPriv{Cols: p.parenNameList()}}
		}
		return nil
	}
	var privs []ast.Node
	for {
		t := p.cur()
		priv := &ast.AccessPriv{}
		switch {
		case t.IsKeyword("select"), t.IsKeyword("references"), t.IsKeyword("create"):
			p.advance()
			priv.PrivName = t.Value
		default:
			priv.PrivName = p.colID()
		}
		if p.isChar('(') {
			priv.Cols = p.parenNameList()
		}
		privs = append(privs, priv)
		if !p.acceptChar(',') {
			return privs
		}
	}
}

var grantAllInSchema = []struct {
	word string
	typ  ast.ObjectType
}{
	{"tables", ast.OBJECT_TABLE},
	{"sequences", ast.OBJECT_SEQUENCE},
	{"functions", ast.OBJECT_FUNCTION},
	{"procedures", ast.OBJECT_PROCEDURE},
	{"routines", ast.OBJECT_ROUTINE},
}

func (p *Parser) parsePrivilegeTarget(stmt *ast.GrantStmt) {
	stmt.Targtype = ast.ACL_TARGET_OBJECT
	if p.isKw("all") {
		for _, o := range grantAllInSchema {
			if p.acceptKw("all", o.word, "in", "schema") {
				stmt.Targtype = ast.ACL_TARGET_ALL_IN_SCHEMA
				stmt.Objtype = o.typ
				stmt.Objects = p.nameList()
				return
			}
		}
		p.syntaxError()
	}
	kind := kindAnyName
	switch {
	case p.acceptKw("sequence"):
		stmt.Objtype = ast.OBJECT_SEQUENCE
	case p.acceptKw("function"):
		stmt.Objtype, kind = ast.OBJECT_FUNCTION, kindFunction
	case p.acceptKw("procedure"):
		stmt.Objtype, kind = ast.OBJECT_PROCEDURE, kindFunction
	case p.acceptKw("routine"):
		stmt.Objtype, kind = ast.OBJECT_ROUTINE, kindFunction
	case p.acceptKw("schema"):
		stmt.Objtype, kind = ast.OBJECT_SCHEMA, kindName
	case p.acceptKw("database"):
		stmt.Objtype, kind = ast.OBJECT_DATABASE, kindName
	case p.acceptKw("type"):
		stmt.Objtype = ast.OBJECT_TYPE
	case p.acceptKw("domain"):
		stmt.Objtype = ast.OBJECT_DOMAIN
	default:
		p.acceptKw("table")
		stmt.Objtype = ast.OBJECT_TABLE
		stmt.Objects = p.qualifiedNameList()
		return
	}
	if stmt.Objtype == ast.OBJECT_SEQUENCE {
		stmt.Objects = p.qualifiedNameList()
		return
	}
	for {
		stmt.Objects = append(stmt.Objects, p.parseObjectName(kind))
		if !p.acceptChar(',') {
			return
		}
	}
}
