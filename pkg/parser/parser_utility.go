package parser

import (
	"github.com/leapstack-labs/pgparse/pkg/ast"
	"github.com/leapstack-labs/pgparse/pkg/token"
)

// ---------- Transactions ----------

// parseTransactionStmt parses BEGIN, START TRANSACTION, COMMIT, END,
// ROLLBACK, ABORT, SAVEPOINT, RELEASE and the two-phase commit forms.
func (p *Parser) parseTransactionStmt() *ast.TransactionStmt {
	t := p.advance()
	stmt := &ast.TransactionStmt{}
	optWork := func() {
		if !p.acceptKw("work") {
			p.acceptKw("transaction")
		}
	}
	optChain := func() {
		switch {
		case p.acceptKw("and", "no", "chain"):
		case p.acceptKw("and", "chain"):
			stmt.Chain = true
		}
	}
	switch t.Value {
	case "begin":
		stmt.Kind = ast.TRANS_STMT_BEGIN
		optWork()
		stmt.Options = p.parseTransactionModes()
	case "start":
		stmt.Kind = ast.TRANS_STMT_START
		p.expectKw("transaction")
		stmt.Options = p.parseTransactionModes()
	case "commit", "end":
		if t.Value == "commit" && p.acceptKw("prepared") {
			stmt.Kind = ast.TRANS_STMT_COMMIT_PREPARED
			stmt.Gid = p.sconst()
			return stmt
		}
		stmt.Kind = ast.TRANS_STMT_COMMIT
		optWork()
		optChain()
	case "rollback", "abort":
		if t.Value == "rollback" && p.acceptKw("prepared") {
			stmt.Kind = ast.TRANS_STMT_ROLLBACK_PREPARED
			stmt.Gid = p.sconst()
			return stmt
		}
		stmt.Kind = ast.TRANS_STMT_ROLLBACK
		optWork()
		if t.Value == "rollback" && p.acceptKw("to") {
			stmt.Kind = ast.TRANS_STMT_ROLLBACK_TO
			p.acceptKw("savepoint")
			stmt.SavepointName = p.colID()
			return stmt
		}
		optChain()
	case "savepoint":
		stmt.Kind = ast.TRANS_STMT_SAVEPOINT
		stmt.SavepointName = p.colID()
	case "release":
		stmt.Kind = ast.TRANS_STMT_RELEASE
		p.acceptKw("savepoint")
		stmt.SavepointName = p.colID()
	case "prepare":
		p.expectKw("transaction")
		stmt.Kind = ast.TRANS_STMT_PREPARE
		stmt.Gid = p.sconst()
	}
	return stmt
}

// parseTransactionModes parses an optional transaction_mode_list; modes
// may be separated by commas or just whitespace.
func (p *Parser) parseTransactionModes() []ast.Node {
	var modes []ast.Node
	for {
		t := p.cur()
		switch {
		case p.acceptKw("isolation", "level"):
			levelTok := p.cur()
			var level string
			switch {
			case p.acceptKw("serializable"):
				level = "serializable"
			case p.acceptKw("repeatable", "read"):
				level = "repeatable read"
			case p.acceptKw("read", "committed"):
				level = "read committed"
			case p.acceptKw("read", "uncommitted"):
				level = "read uncommitted"
			default:
				p.syntaxError()
			}
			modes = append(modes, makeDefElem("transaction_isolation", makeStringConst(level, levelTok.Start), t.Start))
		case p.acceptKw("read", "only"):
			modes = append(modes, makeDefElem("transaction_read_only", makeIntConst(1, t.Start), t.Start))
		case p.acceptKw("read", "write"):
			modes = append(modes, makeDefElem("transaction_read_only", makeIntConst(0, t.Start), t.Start))
		case p.acceptKw("deferrable"):
			modes = append(modes, makeDefElem("transaction_deferrable", makeIntConst(1, t.Start), t.Start))
		case p.acceptKw("not", "deferrable"):
			modes = append(modes, makeDefElem("transaction_deferrable", makeIntConst(0, t.Start), t.Start))
		default:
			if len(modes) > 0 && p.prevIsComma() {
				p.syntaxError()
			}
			return modes
		}
		p.acceptChar(',')
	}
}

func (p *Parser) prevIsComma() bool {
	return p.pos > 0 && p.toks[p.pos-1].IsChar(',')
}

// ---------- SET / RESET / SHOW ----------

// parseVarName parses ColId ('.' ColId)* into a dotted name.
func (p *Parser) parseVarName() string {
	name := p.colID()
	for p.acceptChar('.') {
		name += "." + p.colID()
	}
	return name
}

// parseVarValue parses one value of a SET list.
func (p *Parser) parseVarValue() ast.Node {
	t := p.cur()
	if p.isNumericStart() {
		return &ast.A_Const{Val: p.parseNumericOnly(), Location: t.Start}
	}
	return makeStringConst(p.parseBooleanOrString(), t.Start)
}

func (p *Parser) parseVarList() []ast.Node {
	list := []ast.Node{p.parseVarValue()}
	for p.acceptChar(',') {
		list = append(list, p.parseVarValue())
	}
	return list
}

// SET [SESSION | LOCAL] set_rest
func (p *Parser) parseSetStmt() *ast.VariableSetStmt {
	p.expectKw("set")
	local := false
	switch {
	case p.isKwSeq("session", "characteristics"):
	case p.isKwSeq("session", "authorization"):
	case p.acceptKw("local"):
		local = true
	case p.acceptKw("session"):
	}
	stmt := p.parseSetRest()
	stmt.IsLocal = local
	return stmt
}

func (p *Parser) parseSetRest() *ast.VariableSetStmt {
	stmt := &ast.VariableSetStmt{Kind: ast.VAR_SET_VALUE}
	switch {
	case p.acceptKw("transaction"):
		stmt.Kind = ast.VAR_SET_MULTI
		stmt.Name = "TRANSACTION"
		stmt.Args = p.parseTransactionModes()
		if len(stmt.Args) == 0 {
			p.syntaxError()
		}
	case p.acceptKw("session", "characteristics", "as", "transaction"):
		stmt.Kind = ast.VAR_SET_MULTI
		stmt.Name = "SESSION CHARACTERISTICS"
		stmt.Args = p.parseTransactionModes()
		if len(stmt.Args) == 0 {
			p.syntaxError()
		}
	case p.acceptKw("time", "zone"):
		stmt.Name = "timezone"
		t := p.cur()
		switch {
		case p.acceptKw("default"), p.acceptKw("local"):
			stmt.Kind = ast.VAR_SET_DEFAULT
		case p.isNumericStart():
			stmt.Args = []ast.Node{&ast.A_Const{Val: p.parseNumericOnly(), Location: t.Start}}
		case t.Kind == token.SCONST || t.Kind == token.IDENT:
			p.advance()
			stmt.Args = []ast.Node{makeStringConst(t.Value, t.Start)}
		default:
			p.syntaxError()
		}
	case p.acceptSetKeyword("schema"):
		stmt.Name = "search_path"
		t := p.cur()
		stmt.Args = []ast.Node{makeStringConst(p.sconst(), t.Start)}
	case p.acceptSetKeyword("names"):
		stmt.Name = "client_encoding"
		t := p.cur()
		switch {
		case p.acceptKw("default"):
			stmt.Kind = ast.VAR_SET_DEFAULT
		case t.Kind == token.SCONST:
			stmt.Args = []ast.Node{makeStringConst(p.sconst(), t.Start)}
		}
	case p.acceptSetKeyword("role"):
		stmt.Name = "role"
		t := p.cur()
		stmt.Args = []ast.Node{makeStringConst(p.parseBooleanOrString(), t.Start)}
	case p.acceptKw("session", "authorization"):
		stmt.Name = "session_authorization"
		t := p.cur()
		if p.acceptKw("default") {
			stmt.Kind = ast.VAR_SET_DEFAULT
		} else {
			stmt.Args = []ast.Node{makeStringConst(p.parseBooleanOrString(), t.Start)}
		}
	default:
		stmt.Name = p.parseVarName()
		if p.acceptKw("from", "current") {
			stmt.Kind = ast.VAR_SET_CURRENT
			return stmt
		}
		if !p.acceptKw("to") {
			p.expectChar('=')
		}
		if p.acceptKw("default") {
			stmt.Kind = ast.VAR_SET_DEFAULT
		} else {
			stmt.Args = p.parseVarList()
		}
	}
	return stmt
}

// acceptSetKeyword consumes a SET keyword form such as SET ROLE r; when an
// assignment follows, the keyword is an ordinary variable name instead.
func (p *Parser) acceptSetKeyword(kw string) bool {
	if p.peekAt(1).IsChar('=') || p.isKwAt(1, "to") {
		return false
	}
	return p.acceptKw(kw)
}

// RESET (var_name | TIME ZONE | TRANSACTION ISOLATION LEVEL | SESSION AUTHORIZATION | ALL)
func (p *Parser) parseResetStmt() *ast.VariableSetStmt {
	p.expectKw("reset")
	if p.acceptKw("all") {
		return &ast.VariableSetStmt{Kind: ast.VAR_RESET_ALL}
	}
	return &ast.VariableSetStmt{Kind: ast.VAR_RESET, Name: p.parseSpecialVarName()}
}

// SHOW (var_name | TIME ZONE | TRANSACTION ISOLATION LEVEL | SESSION AUTHORIZATION | ALL)
func (p *Parser) parseShowStmt() *ast.VariableShowStmt {
	p.expectKw("show")
	if p.acceptKw("all") {
		return &ast.VariableShowStmt{Name: "all"}
	}
	return &ast.VariableShowStmt{Name: p.parseSpecialVarName()}
}

func (p *Parser) parseSpecialVarName() string {
	switch {
	case p.acceptKw("time", "zone"):
		return "timezone"
	case p.acceptKw("transaction", "isolation", "level"):
		return "transaction_isolation"
	case p.acceptKw("session", "authorization"):
		return "session_authorization"
	}
	return p.parseVarName()
}

// ---------- EXPLAIN / PREPARE / EXECUTE ----------

// EXPLAIN [ANALYZE] [VERBOSE] stmt | EXPLAIN '(' utility_option_list ')' stmt
func (p *Parser) parseExplainStmt() *ast.ExplainStmt {
	p.expectKw("explain")
	stmt := &ast.ExplainStmt{}
	if p.isChar('(') {
		stmt.Options = p.parseUtilityOptionList()
	} else {
		if t := p.cur(); p.acceptKw("analyze") || p.acceptKw("analyse") {
			stmt.Options = append(stmt.Options, makeDefElem("analyze", nil, t.Start))
		}
		if t := p.cur(); p.acceptKw("verbose") {
			stmt.Options = append(stmt.Options, makeDefElem("verbose", nil, t.Start))
		}
	}
	stmt.Query = p.parseExplainableStmt()
	return stmt
}

func (p *Parser) parseExplainableStmt() ast.Node {
	t := p.cur()
	switch {
	case t.IsChar('('), t.IsKeyword("select"), t.IsKeyword("values"), t.IsKeyword("table"),
		t.IsKeyword("with"), t.IsKeyword("insert"), t.IsKeyword("update"), t.IsKeyword("delete"),
		t.IsKeyword("merge"):
		return p.parsePreparableStmt()
	case t.IsKeyword("create"):
		stmt := p.parseCreateStmt()
		if _, ok := stmt.(*ast.CreateTableAsStmt); !ok {
			p.syntaxErrorAt(t)
		}
		return stmt
	case t.IsKeyword("execute"):
		return p.parseExecuteStmt()
	case t.IsKeyword("declare"):
		return p.parseDeclareCursorStmt()
	}
	p.syntaxError()
	return nil
}

// PREPARE name ['(' type_list ')'] AS PreparableStmt
func (p *Parser) parsePrepareStmt() *ast.PrepareStmt {
	p.expectKw("prepare")
	stmt := &ast.PrepareStmt{Name: p.colID()}
	if p.acceptChar('(') {
		stmt.Argtypes = p.typeList()
		p.expectChar(')')
	}
	p.expectKw("as")
	stmt.Query = p.parsePreparableStmt()
	return stmt
}

// EXECUTE name ['(' expr_list ')']
func (p *Parser) parseExecuteStmt() *ast.ExecuteStmt {
	p.expectKw("execute")
	stmt := &ast.ExecuteStmt{Name: p.colID()}
	if p.isChar('(') {
		stmt.Params = p.parenExprList()
	}
	return stmt
}

// DEALLOCATE [PREPARE] (name | ALL)
func (p *Parser) parseDeallocateStmt() *ast.DeallocateStmt {
	p.expectKw("deallocate")
	p.acceptKw("prepare")
	if p.acceptKw("all") {
		return &ast.DeallocateStmt{}
	}
	return &ast.DeallocateStmt{Name: p.colID()}
}

// ---------- DO / CALL / LISTEN / NOTIFY ----------

// DO [LANGUAGE lang] 'code' [LANGUAGE lang]
func (p *Parser) parseDoStmt() *ast.DoStmt {
	p.expectKw("do")
	stmt := &ast.DoStmt{}
	for {
		t := p.cur()
		switch {
		case t.Kind == token.SCONST:
			p.advance()
			stmt.Args = append(stmt.Args, makeDefElem("as", str(t.Value), t.Start))
		case p.acceptKw("language"):
			stmt.Args = append(stmt.Args, makeDefElem("language", str(p.nonReservedWordOrSconst()), t.Start))
		default:
			if len(stmt.Args) == 0 {
				p.syntaxError()
			}
			return stmt
		}
	}
}

func (p *Parser) nonReservedWordOrSconst() string {
	if p.cur().Kind == token.SCONST {
		return p.sconst()
	}
	return p.nonReservedWord()
}

// CALL func_application
func (p *Parser) parseCallStmt() *ast.CallStmt {
	p.expectKw("call")
	t := p.cur()
	if !p.isFuncCallStart() {
		p.syntaxError()
	}
	fc, ok := p.parsePrimary().(*ast.FuncCall)
	if !ok {
		p.syntaxErrorAt(t)
	}
	return &ast.CallStmt{Funccall: fc}
}

// LISTEN channel | UNLISTEN (channel | '*') | NOTIFY channel [',' payload]
func (p *Parser) parseNotifyStmt() ast.Node {
	t := p.advance()
	switch t.Value {
	case "listen":
		return &ast.ListenStmt{Conditionname: p.colID()}
	case "unlisten":
		if p.acceptChar('*') {
			return &ast.UnlistenStmt{}
		}
		return &ast.UnlistenStmt{Conditionname: p.colID()}
	}
	stmt := &ast.NotifyStmt{Conditionname: p.colID()}
	if p.acceptChar(',') {
		stmt.Payload = p.sconst()
	}
	return stmt
}

// ---------- VACUUM / ANALYZE / LOCK ----------

// VACUUM [FULL] [FREEZE] [VERBOSE] [ANALYZE] [rels]
// VACUUM '(' options ')' [rels]
// ANALYZE [VERBOSE] [rels] | ANALYZE '(' options ')' [rels]
func (p *Parser) parseVacuumStmt() *ast.VacuumStmt {
	t := p.advance()
	stmt := &ast.VacuumStmt{IsVacuumcmd: t.Value == "vacuum"}
	legacy := func(names ...string) {
		for _, name := range names {
			if o := p.cur(); p.acceptKw(name) || (name == "analyze" && p.acceptKw("analyse")) {
				stmt.Options = append(stmt.Options, makeDefElem(name, nil, o.Start))
			}
		}
	}
	switch {
	case p.isChar('('):
		stmt.Options = p.parseUtilityOptionList()
	case stmt.IsVacuumcmd:
		legacy("full", "freeze", "verbose", "analyze")
	default:
		legacy("verbose")
	}
	if isColID(p.cur()) {
		for {
			rel := &ast.VacuumRelation{Relation: p.qualifiedName()}
			if p.isChar('(') {
				rel.VaCols = p.parenNameList()
			}
			stmt.Rels = append(stmt.Rels, rel)
			if !p.acceptChar(',') {
				break
			}
		}
	}
	return stmt
}

// Lock modes, numbered as in PostgreSQL's lockdefs.h.
var lockModes = []struct {
	words []string
	mode  int
}{
	{[]string{"access", "share"}, 1},
	{[]string{"row", "share"}, 2},
	{[]string{"row", "exclusive"}, 3},
	{[]string{"share", "update", "exclusive"}, 4},
	{[]string{"share", "row", "exclusive"}, 6},
	{[]string{"share"}, 5},
	{[]string{"exclusive"}, 7},
	{[]string{"access", "exclusive"}, 8},
}

// LOCK [TABLE] relation_expr_list [IN lock_mode MODE] [NOWAIT]
func (p *Parser) parseLockStmt() *ast.LockStmt {
	p.expectKw("lock")
	p.acceptKw("table")
	stmt := &ast.LockStmt{Relations: p.parseRelationExprList(), Mode: 8}
	if p.acceptKw("in") {
		found := false
		for _, lm := range lockModes {
			if p.acceptKw(lm.words...) {
				stmt.Mode, found = lm.mode, true
				break
			}
		}
		if !found {
			p.syntaxError()
		}
		p.expectKw("mode")
	}
	stmt.Nowait = p.acceptKw("nowait")
	return stmt
}

// ---------- COPY ----------

// COPY [BINARY] qualified_name ['(' columns ')'] (FROM | TO) [PROGRAM] (file | STDIN | STDOUT)
//
//	[[USING] DELIMITERS 'c'] [WITH] copy_options [WHERE a_expr]
//
// COPY '(' PreparableStmt ')' TO [PROGRAM] (file | STDOUT) [WITH] copy_options
func (p *Parser) parseCopyStmt() *ast.CopyStmt {
	p.expectKw("copy")
	stmt := &ast.CopyStmt{}
	if p.acceptChar('(') {
		stmt.Query = p.parsePreparableStmt()
		p.expectChar(')')
		p.expectKw("to")
	} else {
		if t := p.cur(); p.acceptKw("binary") {
			stmt.Options = append(stmt.Options, makeDefElem("format", str("binary"), t.Start))
		}
		stmt.Relation = p.qualifiedName()
		if p.isChar('(') {
			stmt.Attlist = p.parenNameList()
		}
		switch {
		case p.acceptKw("from"):
			stmt.IsFrom = true
		default:
			p.expectKw("to")
		}
	}
	stmt.IsProgram = p.acceptKw("program")
	file := p.cur()
	switch {
	case p.acceptKw("stdin"), p.acceptKw("stdout"):
		if stmt.IsProgram {
			p.errorAt(file.Start, ErrCopyFromProgram)
		}
	default:
		stmt.Filename = p.sconst()
	}
	if stmt.Query == nil {
		if t := p.cur(); p.acceptKw("using", "delimiters") || p.acceptKw("delimiters") {
			stmt.Options = append(stmt.Options, makeDefElem("delimiter", str(p.sconst()), t.Start))
		}
	}
	p.acceptKw("with")
	if p.isChar('(') {
		stmt.Options = append(stmt.Options, p.parseUtilityOptionList()...)
	} else {
		stmt.Options = append(stmt.Options, p.parseLegacyCopyOptions()...)
	}
	if stmt.Query == nil && p.acceptKw("where") {
		stmt.WhereClause = p.parseExpr()
	}
	return stmt
}

// parseLegacyCopyOptions parses the pre-9.0 COPY option keywords.
func (p *Parser) parseLegacyCopyOptions() []ast.Node {
	var opts []ast.Node
	for {
		t := p.cur()
		switch {
		case p.acceptKw("binary"):
			opts = append(opts, makeDefElem("format", str("binary"), t.Start))
		case p.acceptKw("csv"):
			opts = append(opts, makeDefElem("format", str("csv"), t.Start))
		case p.acceptKw("header"):
			opts = append(opts, makeDefElem("header", &ast.Boolean{Boolval: true}, t.Start))
		case p.acceptKw("freeze"):
			opts = append(opts, makeDefElem("freeze", &ast.Boolean{Boolval: true}, t.Start))
		case p.acceptKw("delimiter"), p.acceptKw("null"), p.acceptKw("quote"),
			p.acceptKw("escape"), p.acceptKw("encoding"):
			p.acceptKw("as")
			opts = append(opts, makeDefElem(t.Value, str(p.sconst()), t.Start))
		case p.acceptKw("force", "quote"):
			var arg ast.Node = &ast.A_Star{}
			if !p.acceptChar('*') {
				arg = &ast.List{Items: p.nameList()}
			}
			opts = append(opts, makeDefElem("force_quote", arg, t.Start))
		case p.acceptKw("force", "not", "null"):
			opts = append(opts, makeDefElem("force_not_null", &ast.List{Items: p.nameList()}, t.Start))
		default:
			return opts
		}
	}
}

// ---------- Cursors ----------

// DECLARE name [options] CURSOR [WITH | WITHOUT HOLD] FOR SelectStmt
func (p *Parser) parseDeclareCursorStmt() *ast.DeclareCursorStmt {
	p.expectKw("declare")
	stmt := &ast.DeclareCursorStmt{Portalname: p.colID()}
	opts := 0
options:
	for {
		switch {
		case p.acceptKw("no", "scroll"):
			opts |= ast.CursorOptNoScroll
		case p.acceptKw("scroll"):
			opts |= ast.CursorOptScroll
		case p.acceptKw("binary"):
			opts |= ast.CursorOptBinary
		case p.acceptKw("asensitive"):
			opts |= ast.CursorOptAsensitive
		case p.acceptKw("insensitive"):
			opts |= ast.CursorOptInsensitive
		default:
			break options
		}
	}
	p.expectKw("cursor")
	switch {
	case p.acceptKw("with", "hold"):
		opts |= ast.CursorOptHold
	case p.acceptKw("without", "hold"):
	}
	p.expectKw("for")
	stmt.Options = opts | ast.CursorOptFastPlan
	stmt.Query = p.parseSelectStmt()
	return stmt
}

// FETCH / MOVE [direction] [FROM | IN] cursor
func (p *Parser) parseFetchStmt() *ast.FetchStmt {
	t := p.advance()
	stmt := &ast.FetchStmt{Ismove: t.Value == "move", Direction: ast.FETCH_FORWARD, HowMany: 1}
	count := func() int {
		if p.acceptKw("all") {
			return ast.FetchAll
		}
		if p.isSignedIconstStart() {
			return p.signedIconst()
		}
		return 1
	}
	switch {
	case p.acceptKw("next"):
	case p.acceptKw("prior"):
		stmt.Direction = ast.FETCH_BACKWARD
	case p.acceptKw("first"):
		stmt.Direction = ast.FETCH_ABSOLUTE
	case p.acceptKw("last"):
		stmt.Direction, stmt.HowMany = ast.FETCH_ABSOLUTE, -1
	case p.acceptKw("absolute"):
		stmt.Direction, stmt.HowMany = ast.FETCH_ABSOLUTE, p.signedIconst()
	case p.acceptKw("relative"):
		stmt.Direction, stmt.HowMany = ast.FETCH_RELATIVE, p.signedIconst()
	case p.acceptKw("all"):
		stmt.HowMany = ast.FetchAll
	case p.acceptKw("forward"):
		stmt.HowMany = count()
	case p.acceptKw("backward"):
		stmt.Direction = ast.FETCH_BACKWARD
		stmt.HowMany = count()
	case p.isSignedIconstStart():
		stmt.HowMany = p.signedIconst()
	}
	if !p.acceptKw("from") {
		p.acceptKw("in")
	}
	stmt.Portalname = p.colID()
	return stmt
}

func (p *Parser) isSignedIconstStart() bool {
	t := p.cur()
	if t.IsOp("-") || t.IsOp("+") {
		t = p.peekAt(1)
	}
	return t.Kind == token.ICONST
}

// CLOSE (cursor | ALL)
func (p *Parser) parseCloseStmt() *ast.ClosePortalStmt {
	p.expectKw("close")
	if p.acceptKw("all") {
		return &ast.ClosePortalStmt{}
	}
	return &ast.ClosePortalStmt{Portalname: p.colID()}
}

// DISCARD (ALL | TEMP | TEMPORARY | PLANS | SEQUENCES)
func (p *Parser) parseDiscardStmt() *ast.DiscardStmt {
	p.expectKw("discard")
	t := p.advance()
	switch t.Value {
	case "all":
		return &ast.DiscardStmt{Target: ast.DISCARD_ALL}
	case "temp", "temporary":
		return &ast.DiscardStmt{Target: ast.DISCARD_TEMP}
	case "plans":
		return &ast.DiscardStmt{Target: ast.DISCARD_PLANS}
	case "sequences":
		return &ast.DiscardStmt{Target: ast.DISCARD_SEQUENCES}
	}
	p.syntaxErrorAt(t)
	return nil
}
