package parser

import (
	"github.com/leapstack-labs/pgparse/pkg/ast"
	"github.com/leapstack-labs/pgparse/pkg/token"
)

// Queries:
//
//	SelectStmt         → [with_clause] set_expr [ORDER BY sortby_list] [select_limit] [for_locking]
//	set_expr           → set_term ((UNION | EXCEPT) [ALL | DISTINCT] set_term)*
//	set_term           → simple_select (INTERSECT [ALL | DISTINCT] simple_select)*
//	simple_select      → SELECT ... | VALUES ... | TABLE relation_expr | select_with_parens
//	select_with_parens → '(' SelectStmt ')'

// parseSelectStmt parses a complete query.
func (p *Parser) parseSelectStmt() *ast.SelectStmt {
	var with *ast.WithClause
	if p.isKw("with") {
		with = p.parseWithClause()
	}
	return p.parseSelectBody(with)
}

func (p *Parser) parseSelectBody(with *ast.WithClause) *ast.SelectStmt {
	p.enter()
	defer p.leave()
	stmt := p.parseSetExpr(false)
	p.parseSelectOptions(stmt, with)
	return stmt
}

// parseSelectWithParens parses '(' SelectStmt ')'. Extra parentheses
// around the query do not produce nodes.
func (p *Parser) parseSelectWithParens() *ast.SelectStmt {
	p.expectChar('(')
	stmt := p.parseSelectStmt()
	p.expectChar(')')
	return stmt
}

// parseSetExpr parses set operations. INTERSECT binds tighter than UNION
// and EXCEPT; all of them associate to the left.
func (p *Parser) parseSetExpr(term bool) *ast.SelectStmt {
	operand := func() *ast.SelectStmt {
		if term {
			return p.parseSimpleSelect()
		}
		return p.parseSetExpr(true)
	}
	left := operand()
	for {
		var op ast.SetOperation
		switch {
		case !term && p.isKw("union"):
			op = ast.SETOP_UNION
		case !term && p.isKw("except"):
			op = ast.SETOP_EXCEPT
		case term && p.isKw("intersect"):
			op = ast.SETOP_INTERSECT
		default:
			return left
		}
		p.advance()
		all := p.acceptKw("all")
		if !all {
			p.acceptKw("distinct")
		}
		left = &ast.SelectStmt{Op: op, All: all, Larg: left, Rarg: operand()}
	}
}

func (p *Parser) parseSimpleSelect() *ast.SelectStmt {
	t := p.cur()
	switch {
	case t.IsChar('('):
		return p.parseSelectWithParens()
	case t.IsKeyword("select"):
		return p.parseSelectCore()
	case t.IsKeyword("values"):
		return p.parseValuesClause()
	case t.IsKeyword("table"):
		p.advance()
		star := &ast.ColumnRef{Fields: []ast.Node{&ast.A_Star{}}, Location: -1}
		return &ast.SelectStmt{
			TargetList: []ast.Node{&ast.ResTarget{Val: star, Location: -1}},
			FromClause: []ast.Node{p.parseRelationExpr()},
		}
	}
	p.syntaxError()
	return nil
}

func (p *Parser) parseSelectCore() *ast.SelectStmt {
	p.expectKw("select")
	n := &ast.SelectStmt{}
	if p.acceptKw("distinct") {
		if p.acceptKw("on") {
			n.DistinctClause = p.parenExprList()
		} else {
			n.DistinctClause = []ast.Node{nil}
		}
		n.TargetList = p.parseTargetList()
	} else {
		p.acceptKw("all")
		if !p.targetListEnds() {
			n.TargetList = p.parseTargetList()
		}
	}
	if p.isKw("into") {
		n.IntoClause = p.parseIntoClause()
	}
	if p.acceptKw("from") {
		n.FromClause = p.parseFromList()
	}
	if p.acceptKw("where") {
		n.WhereClause = p.parseExpr()
	}
	if p.acceptKw("group", "by") {
		if p.acceptKw("distinct") {
			n.GroupDistinct = true
		} else {
			p.acceptKw("all")
		}
		n.GroupClause = p.parseGroupByList()
	}
	if p.acceptKw("having") {
		n.HavingClause = p.parseExpr()
	}
	if p.acceptKw("window") {
		n.WindowClause = p.parseWindowClause()
	}
	return n
}

// targetListEnds reports whether an optional target list is absent.
func (p *Parser) targetListEnds() bool {
	t := p.cur()
	switch t.Kind {
	case token.EOF, token.Char(';'), token.Char(')'):
		return true
	}
	if t.Keyword != token.ReservedKeyword {
		return false
	}
	switch t.Value {
	case "into", "from", "where", "group", "having", "window", "union", "intersect",
		"except", "order", "limit", "offset", "fetch", "for":
		return true
	}
	return false
}

func (p *Parser) parseTargetList() []ast.Node {
	list := []ast.Node{p.parseTargetEl()}
	for p.acceptChar(',') {
		list = append(list, p.parseTargetEl())
	}
	return list
}

// parseTargetEl parses a_expr [[AS] label] | '*'.
func (p *Parser) parseTargetEl() *ast.ResTarget {
	t := p.cur()
	if t.IsChar('*') {
		p.advance()
		star := &ast.ColumnRef{Fields: []ast.Node{&ast.A_Star{}}, Location: t.Start}
		return &ast.ResTarget{Val: star, Location: t.Start}
	}
	rt := &ast.ResTarget{Val: p.parseExpr(), Location: t.Start}
	switch {
	case p.acceptKw("as"):
		rt.Name = p.colLabel()
	case p.cur().BareLabel():
		rt.Name = p.advance().Value
	}
	return rt
}

func (p *Parser) parseIntoClause() *ast.IntoClause {
	p.expectKw("into")
	persistence := p.parseOptTemp()
	p.acceptKw("table")
	rel := p.qualifiedName()
	rel.Relpersistence = persistence
	return &ast.IntoClause{Rel: rel, OnCommit: ast.ONCOMMIT_NOOP}
}

// parseOptTemp parses the TEMP / UNLOGGED prefix of a relation definition
// and returns its persistence code.
func (p *Parser) parseOptTemp() string {
	switch {
	case p.acceptKw("temporary"), p.acceptKw("temp"),
		p.acceptKw("local", "temporary"), p.acceptKw("local", "temp"),
		p.acceptKw("global", "temporary"), p.acceptKw("global", "temp"):
		return "t"
	case p.acceptKw("unlogged"):
		return "u"
	}
	return "p"
}

func (p *Parser) parseValuesClause() *ast.SelectStmt {
	p.expectKw("values")
	n := &ast.SelectStmt{}
	for {
		n.ValuesLists = append(n.ValuesLists, &ast.List{Items: p.parenExprList()})
		if !p.acceptChar(',') {
			return n
		}
	}
}

func (p *Parser) parseGroupByList() []ast.Node {
	list := []ast.Node{p.parseGroupByItem()}
	for p.acceptChar(',') {
		list = append(list, p.parseGroupByItem())
	}
	return list
}

func (p *Parser) parseGroupByItem() ast.Node {
	t := p.cur()
	switch {
	case t.IsChar('(') && p.peekAt(1).IsChar(')'):
		p.pos += 2
		return &ast.GroupingSet{Kind: ast.GROUPING_SET_EMPTY, Location: t.Start}
	case (t.IsKeyword("rollup") || t.IsKeyword("cube")) && p.peekAt(1).IsChar('('):
		p.advance()
		kind := ast.GROUPING_SET_ROLLUP
		if t.IsKeyword("cube") {
			kind = ast.GROUPING_SET_CUBE
		}
		return &ast.GroupingSet{Kind: kind, Content: p.parenExprList(), Location: t.Start}
	case p.acceptKw("grouping", "sets"):
		p.expectChar('(')
		content := p.parseGroupByList()
		p.expectChar(')')
		return &ast.GroupingSet{Kind: ast.GROUPING_SET_SETS, Content: content, Location: t.Start}
	}
	return p.parseExpr()
}

// ---------- WITH ----------

func (p *Parser) parseWithClause() *ast.WithClause {
	w := &ast.WithClause{Location: p.expectKw("with").Start}
	w.Recursive = p.acceptKw("recursive")
	for {
		w.Ctes = append(w.Ctes, p.parseCommonTableExpr())
		if !p.acceptChar(',') {
			return w
		}
	}
}

func (p *Parser) parseCommonTableExpr() *ast.CommonTableExpr {
	t := p.cur()
	cte := &ast.CommonTableExpr{Ctename: p.colID(), Location: t.Start}
	if p.isChar('(') {
		cte.Aliascolnames = p.parenNameList()
	}
	p.expectKw("as")
	switch {
	case p.acceptKw("materialized"):
		cte.Ctematerialized = ast.CTEMaterializeAlways
	case p.acceptKw("not", "materialized"):
		cte.Ctematerialized = ast.CTEMaterializeNever
	}
	p.expectChar('(')
	cte.Ctequery = p.parsePreparableStmt()
	p.expectChar(')')
	return cte
}

// parsePreparableStmt parses SELECT, INSERT, UPDATE, DELETE or MERGE,
// each with an optional WITH clause.
func (p *Parser) parsePreparableStmt() ast.Node {
	var with *ast.WithClause
	if p.isKw("with") {
		with = p.parseWithClause()
	}
	switch {
	case p.isKw("insert"):
		return p.parseInsertStmt(with)
	case p.isKw("update"):
		return p.parseUpdateStmt(with)
	case p.isKw("delete"):
		return p.parseDeleteStmt(with)
	case p.isKw("merge"):
		return p.parseMergeStmt(with)
	}
	return p.parseSelectBody(with)
}

// ---------- ORDER BY / LIMIT / locking ----------

// selectLimit collects one select_limit production.
type selectLimit struct {
	offset, count ast.Node
	option        ast.LimitOption
	loc           int
}

// parseSelectOptions parses the clauses that follow the set expression and
// merges them into stmt, rejecting clauses already set inside parentheses.
func (p *Parser) parseSelectOptions(stmt *ast.SelectStmt, with *ast.WithClause) {
	if p.isKwSeq("order", "by") {
		loc := p.cur().Start
		p.pos += 2
		sort := p.parseSortList()
		if stmt.SortClause != nil {
			p.errorAt(loc, ErrMultipleOrderBy)
		}
		stmt.SortClause = sort
	}

	var limit *selectLimit
	var locking []ast.Node
	switch {
	case p.isKw("for"):
		locking = p.parseLockingClause()
		if p.isLimitStart() {
			limit = p.parseSelectLimit()
		}
	case p.isLimitStart():
		limit = p.parseSelectLimit()
		if p.isKw("for") {
			locking = p.parseLockingClause()
		}
	}
	stmt.LockingClause = append(stmt.LockingClause, locking...)

	if limit != nil {
		if limit.offset != nil {
			if stmt.LimitOffset != nil {
				p.errorAt(limit.loc, ErrMultipleOffset)
			}
			stmt.LimitOffset = limit.offset
		}
		if limit.count != nil {
			if stmt.LimitCount != nil {
				p.errorAt(limit.loc, ErrMultipleLimit)
			}
			stmt.LimitCount = limit.count
		}
		if limit.option != ast.LIMIT_OPTION_DEFAULT {
			if stmt.LimitOption != ast.LIMIT_OPTION_DEFAULT {
				p.errorAt(limit.loc, ErrMultipleLimitOptions)
			}
			stmt.LimitOption = limit.option
		}
		if limit.option == ast.LIMIT_OPTION_WITH_TIES && stmt.SortClause == nil {
			p.errorAt(limit.loc, ErrWithTiesNoOrder)
		}
	}

	if with != nil {
		if stmt.WithClause != nil {
			p.errorAt(with.Location, ErrMultipleWith)
		}
		stmt.WithClause = with
	}
}

func (p *Parser) isLimitStart() bool {
	return p.isKw("limit") || p.isKw("offset") || p.isKw("fetch")
}

// parseSelectLimit parses limit_clause [offset_clause] or
// offset_clause [limit_clause].
func (p *Parser) parseSelectLimit() *selectLimit {
	l := &selectLimit{loc: p.cur().Start}
	if p.isKw("offset") {
		l.offset = p.parseOffsetClause()
		l.option = ast.LIMIT_OPTION_COUNT
		if p.isKw("limit") || p.isKw("fetch") {
			l.count, l.option = p.parseLimitClause()
		}
		return l
	}
	l.count, l.option = p.parseLimitClause()
	if p.isKw("offset") {
		l.offset = p.parseOffsetClause()
	}
	return l
}

// parseLimitClause parses LIMIT (a_expr | ALL) or
// FETCH (FIRST | NEXT) [value] (ROW | ROWS) (ONLY | WITH TIES).
func (p *Parser) parseLimitClause() (ast.Node, ast.LimitOption) {
	if t := p.cur(); p.acceptKw("limit") {
		var count ast.Node
		if p.isKw("all") {
			count = makeNullAConst(p.advance().Start)
		} else {
			count = p.parseExpr()
		}
		if p.isChar(',') {
			p.errorAt(t.Start, ErrLimitComma)
		}
		return count, ast.LIMIT_OPTION_COUNT
	}

	p.expectKw("fetch")
	if !p.acceptKw("first") && !p.acceptKw("next") {
		p.syntaxError()
	}
	var count ast.Node = makeIntConst(1, -1)
	if !p.isKw("row") && !p.isKw("rows") {
		count = p.parseFetchFirstValue()
	}
	if !p.acceptKw("row") && !p.acceptKw("rows") {
		p.syntaxError()
	}
	switch {
	case p.acceptKw("only"):
		return count, ast.LIMIT_OPTION_COUNT
	case p.acceptKw("with", "ties"):
		return count, ast.LIMIT_OPTION_WITH_TIES
	}
	p.syntaxError()
	return nil, ast.LIMIT_OPTION_DEFAULT
}

// parseOffsetClause parses OFFSET a_expr or OFFSET value (ROW | ROWS).
func (p *Parser) parseOffsetClause() ast.Node {
	p.expectKw("offset")
	off := p.parseExpr()
	if !p.acceptKw("row") {
		p.acceptKw("rows")
	}
	return off
}

// parseFetchFirstValue parses c_expr | '+' I_or_F_const | '-' I_or_F_const.
func (p *Parser) parseFetchFirstValue() ast.Node {
	t := p.cur()
	if t.IsOp("+") || t.IsOp("-") {
		p.advance()
		num := p.cur()
		if num.Kind != token.ICONST && num.Kind != token.FCONST {
			p.syntaxError()
		}
		val := p.parsePrimary()
		if t.IsOp("-") {
			return doNegate(val, t.Start)
		}
		return makeSimpleAExpr(ast.AEXPR_OP, "+", nil, val, t.Start)
	}
	return p.parsePrimary()
}

// parseLockingClause parses FOR UPDATE / NO KEY UPDATE / SHARE / KEY SHARE
// items, or FOR READ ONLY which yields none.
func (p *Parser) parseLockingClause() []ast.Node {
	if p.acceptKw("for", "read", "only") {
		return nil
	}
	var out []ast.Node
	for p.isKw("for") {
		p.advance()
		lc := &ast.LockingClause{}
		switch {
		case p.acceptKw("update"):
			lc.Strength = ast.LCS_FORUPDATE
		case p.acceptKw("no", "key", "update"):
			lc.Strength = ast.LCS_FORNOKEYUPDATE
		case p.acceptKw("share"):
			lc.Strength = ast.LCS_FORSHARE
		case p.acceptKw("key", "share"):
			lc.Strength = ast.LCS_FORKEYSHARE
		default:
			p.syntaxError()
		}
		if p.acceptKw("of") {
			lc.LockedRels = p.qualifiedNameList()
		}
		switch {
		case p.acceptKw("nowait"):
			lc.WaitPolicy = ast.LockWaitError
		case p.acceptKw("skip", "locked"):
			lc.WaitPolicy = ast.LockWaitSkip
		}
		out = append(out, lc)
	}
	return out
}
