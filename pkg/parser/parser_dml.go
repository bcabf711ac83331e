package parser

import (
	"github.com/leapstack-labs/pgparse/pkg/ast"
)

// INSERT INTO qualified_name [AS ColId] ['(' insert_column_list ')']
//
//	[OVERRIDING (USER | SYSTEM) VALUE] (SelectStmt | DEFAULT VALUES)
//	[ON CONFLICT [conf_expr] DO (NOTHING | UPDATE SET set_clause_list [WHERE a_expr])]
//	[RETURNING target_list]
func (p *Parser) parseInsertStmt(with *ast.WithClause) *ast.InsertStmt {
	p.expectKw("insert")
	p.expectKw("into")
	stmt := &ast.InsertStmt{WithClause: with, Relation: p.qualifiedName()}
	if p.acceptKw("as") {
		stmt.Relation.Alias = &ast.Alias{Aliasname: p.colID()}
	}
	if p.isChar('(') && !isQueryStart(p.peekAt(1)) && !p.peekAt(1).IsChar('(') {
		stmt.Cols = p.parseInsertColumnList()
	}
	if p.acceptKw("overriding") {
		switch {
		case p.acceptKw("user"):
			stmt.Override = ast.OVERRIDING_USER_VALUE
		case p.acceptKw("system"):
			stmt.Override = ast.OVERRIDING_SYSTEM_VALUE
		default:
			p.syntaxError()
		}
		p.expectKw("value")
	}
	if !p.acceptKw("default", "values") {
		stmt.SelectStmt = p.parseSelectStmt()
	}
	if p.isKwSeq("on", "conflict") {
		stmt.OnConflictClause = p.parseOnConflict()
	}
	if p.acceptKw("returning") {
		stmt.ReturningList = p.parseTargetList()
	}
	return stmt
}

func (p *Parser) parseInsertColumnList() []ast.Node {
	p.expectChar('(')
	var cols []ast.Node
	for {
		cols = append(cols, p.parseSetTarget())
		if !p.acceptChar(',') {
			break
		}
	}
	p.expectChar(')')
	return cols
}

func (p *Parser) parseOnConflict() *ast.OnConflictClause {
	oc := &ast.OnConflictClause{Location: p.expectKw("on", "conflict").Start}
	switch {
	case p.isChar('('):
		infer := &ast.InferClause{Location: p.advance().Start}
		infer.IndexElems = p.parseIndexParams()
		p.expectChar(')')
		if p.acceptKw("where") {
			infer.WhereClause = p.parseExpr()
		}
		oc.Infer = infer
	case p.isKwSeq("on", "constraint"):
		infer := &ast.InferClause{Location: p.expectKw("on", "constraint").Start}
		infer.Conname = p.colID()
		oc.Infer = infer
	}
	p.expectKw("do")
	if p.acceptKw("nothing") {
		oc.Action = ast.ONCONFLICT_NOTHING
		return oc
	}
	p.expectKw("update", "set")
	oc.Action = ast.ONCONFLICT_UPDATE
	oc.TargetList = p.parseSetClauseList()
	if p.acceptKw("where") {
		oc.WhereClause = p.parseExpr()
	}
	return oc
}

// UPDATE relation_expr_opt_alias SET set_clause_list [FROM from_list]
//
//	[WHERE (a_expr | CURRENT OF cursor)] [RETURNING target_list]
func (p *Parser) parseUpdateStmt(with *ast.WithClause) *ast.UpdateStmt {
	p.expectKw("update")
	stmt := &ast.UpdateStmt{WithClause: with, Relation: p.parseRelationExprOptAlias()}
	p.expectKw("set")
	stmt.TargetList = p.parseSetClauseList()
	if p.acceptKw("from") {
		stmt.FromClause = p.parseFromList()
	}
	stmt.WhereClause = p.parseWhereOrCurrent()
	if p.acceptKw("returning") {
		stmt.ReturningList = p.parseTargetList()
	}
	return stmt
}

// DELETE FROM relation_expr_opt_alias [USING from_list]
//
//	[WHERE (a_expr | CURRENT OF cursor)] [RETURNING target_list]
func (p *Parser) parseDeleteStmt(with *ast.WithClause) *ast.DeleteStmt {
	p.expectKw("delete", "from")
	stmt := &ast.DeleteStmt{WithClause: with, Relation: p.parseRelationExprOptAlias()}
	if p.acceptKw("using") {
		stmt.UsingClause = p.parseFromList()
	}
	stmt.WhereClause = p.parseWhereOrCurrent()
	if p.acceptKw("returning") {
		stmt.ReturningList = p.parseTargetList()
	}
	return stmt
}

// MERGE INTO relation_expr_opt_alias USING table_ref ON a_expr
//
//	(WHEN [NOT] MATCHED [AND a_expr] THEN merge_action)...
func (p *Parser) parseMergeStmt(with *ast.WithClause) *ast.MergeStmt {
	p.expectKw("merge", "into")
	stmt := &ast.MergeStmt{WithClause: with, Relation: p.parseRelationExprOptAlias()}
	p.expectKw("using")
	stmt.SourceRelation = p.parseTableRef()
	p.expectKw("on")
	stmt.JoinCondition = p.parseExpr()
	for p.isKw("when") {
		stmt.MergeWhenClauses = append(stmt.MergeWhenClauses, p.parseMergeWhenClause())
	}
	if len(stmt.MergeWhenClauses) == 0 {
		p.syntaxError()
	}
	return stmt
}

func (p *Parser) parseMergeWhenClause() *ast.MergeWhenClause {
	p.expectKw("when")
	mc := &ast.MergeWhenClause{Matched: !p.acceptKw("not")}
	p.expectKw("matched")
	if p.acceptKw("and") {
		mc.Condition = p.parseExpr()
	}
	p.expectKw("then")
	switch {
	case p.acceptKw("do", "nothing"):
		mc.CommandType = ast.CMD_NOTHING
	case mc.Matched && p.acceptKw("update", "set"):
		mc.CommandType = ast.CMD_UPDATE
		mc.TargetList = p.parseSetClauseList()
	case mc.Matched && p.acceptKw("delete"):
		mc.CommandType = ast.CMD_DELETE
	case !mc.Matched && p.acceptKw("insert"):
		mc.CommandType = ast.CMD_INSERT
		p.parseMergeInsert(mc)
	default:
		p.syntaxError()
	}
	return mc
}

// INSERT ['(' insert_column_list ')'] [OVERRIDING (USER | SYSTEM) VALUE]
//
//	(VALUES '(' expr_list ')' | DEFAULT VALUES)
func (p *Parser) parseMergeInsert(mc *ast.MergeWhenClause) {
	if p.isChar('(') {
		mc.TargetList = p.parseInsertColumnList()
	}
	if p.acceptKw("overriding") {
		switch {
		case p.acceptKw("user"):
			mc.Override = ast.OVERRIDING_USER_VALUE
		case p.acceptKw("system"):
			mc.Override = ast.OVERRIDING_SYSTEM_VALUE
		default:
			p.syntaxError()
		}
		p.expectKw("value")
	}
	if p.acceptKw("default", "values") {
		return
	}
	p.expectKw("values")
	mc.Values = p.parenExprList()
}

func (p *Parser) parseWhereOrCurrent() ast.Node {
	if !p.acceptKw("where") {
		return nil
	}
	if p.acceptKw("current", "of") {
		return &ast.CurrentOfExpr{CursorName: p.colID()}
	}
	return p.parseExpr()
}

func (p *Parser) parseSetClauseList() []ast.Node {
	var list []ast.Node
	for {
		list = append(list, p.parseSetClause()...)
		if !p.acceptChar(',') {
			return list
		}
	}
}

// parseSetClause parses set_target '=' a_expr or
// '(' set_target_list ')' '=' a_expr. A multi-column assignment yields
// one ResTarget per column, each wrapping a MultiAssignRef to the source.
func (p *Parser) parseSetClause() []ast.Node {
	if !p.acceptChar('(') {
		target := p.parseSetTarget()
		p.expectChar('=')
		target.Val = p.parseExpr()
		return []ast.Node{target}
	}
	var targets []*ast.ResTarget
	for {
		targets = append(targets, p.parseSetTarget())
		if !p.acceptChar(',') {
			break
		}
	}
	p.expectChar(')')
	p.expectChar('=')
	source := p.parseExpr()
	out := make([]ast.Node, len(targets))
	for i, target := range targets {
		target.Val = &ast.MultiAssignRef{Source: source, Colno: i + 1, Ncolumns: len(targets)}
		out[i] = target
	}
	return out
}

func (p *Parser) parseSetTarget() *ast.ResTarget {
	t := p.cur()
	return &ast.ResTarget{Name: p.colID(), Indirection: p.parseOptIndirection(), Location: t.Start}
}

// ---------- Index elements ----------

func (p *Parser) parseIndexParams() []ast.Node {
	list := []ast.Node{p.parseIndexElem()}
	for p.acceptChar(',') {
		list = append(list, p.parseIndexElem())
	}
	return list
}

// parseIndexElem parses (ColId | func_expr | '(' a_expr ')') [COLLATE any_name]
// [opclass] [ASC | DESC] [NULLS FIRST | LAST].
func (p *Parser) parseIndexElem() *ast.IndexElem {
	elem := &ast.IndexElem{}
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
	if isColID(p.cur()) && !p.isKwSeq("nulls", "first") && !p.isKwSeq("nulls", "last") {
		elem.Opclass = p.anyName()
	}
	switch {
	case p.acceptKw("asc"):
		elem.Ordering = ast.SORTBY_ASC
	case p.acceptKw("desc"):
		elem.Ordering = ast.SORTBY_DESC
	}
	p.parseNullsOrder(&elem.NullsOrdering)
	return elem
}
