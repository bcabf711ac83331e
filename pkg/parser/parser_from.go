package parser

import (
	"github.com/leapstack-labs/pgparse/pkg/ast"
)

// FROM clause:
//
//	from_list     → table_ref (',' table_ref)*
//	table_ref     → table_primary (join)*
//	table_primary → relation_expr [alias] [TABLESAMPLE ...]
//	              | [LATERAL] func_table [WITH ORDINALITY] [func_alias]
//	              | [LATERAL] select_with_parens [alias]
//	              | '(' joined_table ')' [alias]
//	join          → CROSS JOIN table_primary
//	              | NATURAL [join_type] JOIN table_primary
//	              | [join_type] JOIN table_ref (ON a_expr | USING '(' name_list ')' [AS alias])

func (p *Parser) parseFromList() []ast.Node {
	list := []ast.Node{p.parseTableRef()}
	for p.acceptChar(',') {
		list = append(list, p.parseTableRef())
	}
	return list
}

func (p *Parser) parseTableRef() ast.Node {
	p.enter()
	defer p.leave()
	return p.parseJoins(p.parseTablePrimary())
}

func (p *Parser) isJoinStart() bool {
	t := p.cur()
	switch {
	case t.IsKeyword("join"), t.IsKeyword("natural"), t.IsKeyword("inner"):
		return true
	case t.IsKeyword("cross"):
		return p.isKwAt(1, "join")
	case t.IsKeyword("left"), t.IsKeyword("right"), t.IsKeyword("full"):
		return p.isKwAt(1, "join") || p.isKwAt(1, "outer")
	}
	return false
}

// parseJoins applies joins to left. CROSS and NATURAL joins associate to
// the left; a qualified join whose right side is itself followed by a
// join nests that join first, so "a JOIN b JOIN c ON x ON y" pairs ON x
// with b and c.
func (p *Parser) parseJoins(left ast.Node) ast.Node {
	for p.isJoinStart() {
		j := &ast.JoinExpr{Larg: left}
		switch {
		case p.acceptKw("cross", "join"):
			j.Rarg = p.parseTablePrimary()
		case p.acceptKw("natural"):
			j.IsNatural = true
			j.Jointype = p.parseJoinType()
			p.expectKw("join")
			j.Rarg = p.parseTablePrimary()
		default:
			j.Jointype = p.parseJoinType()
			p.expectKw("join")
			right := p.parseTablePrimary()
			if p.isJoinStart() {
				right = p.parseJoins(right)
			}
			j.Rarg = right
			p.parseJoinQual(j)
		}
		left = j
	}
	return left
}

func (p *Parser) parseJoinType() ast.JoinType {
	switch {
	case p.acceptKw("inner"):
		return ast.JOIN_INNER
	case p.acceptKw("left"):
		p.acceptKw("outer")
		return ast.JOIN_LEFT
	case p.acceptKw("right"):
		p.acceptKw("outer")
		return ast.JOIN_RIGHT
	case p.acceptKw("full"):
		p.acceptKw("outer")
		return ast.JOIN_FULL
	}
	return ast.JOIN_INNER
}

func (p *Parser) parseJoinQual(j *ast.JoinExpr) {
	switch {
	case p.acceptKw("using"):
		j.UsingClause = p.parenNameList()
		if p.acceptKw("as") {
			j.JoinUsingAlias = &ast.Alias{Aliasname: p.colID()}
		}
	case p.acceptKw("on"):
		j.Quals = p.parseExpr()
	default:
		p.syntaxError()
	}
}

func (p *Parser) parseTablePrimary() ast.Node {
	lateral := p.acceptKw("lateral")
	switch {
	case p.isChar('('):
		return p.parseParenTableRef(lateral)
	case p.isKwSeq("rows", "from"), p.isFuncCallStart():
		return p.parseRangeFunction(lateral)
	case lateral:
		p.syntaxError()
	}
	rel := p.parseRelationExpr()
	rel.Alias = p.parseOptAlias()
	if p.isKw("tablesample") {
		return p.parseTableSample(rel)
	}
	return rel
}

// isFuncCallStart reports whether a function call begins at the current
// token: a possibly qualified name, or a keyword with a function form,
// followed by '('.
func (p *Parser) isFuncCallStart() bool {
	t := p.cur()
	if !isColLabel(t) {
		return false
	}
	if t.Kind.IsKeyword() && !isTypeFuncName(t) && !isColID(t) {
		_, svf := sqlValueFunctions[t.Value]
		return svf
	}
	_, n := p.dottedName()
	return p.peekAt(n).IsChar('(')
}

func (p *Parser) parseParenTableRef(lateral bool) ast.Node {
	var out ast.Node
	p.parenQueryOr(func() {
		sub := &ast.RangeSubselect{Lateral: lateral, Subquery: p.parseSelectWithParens()}
		sub.Alias = p.parseOptAlias()
		out = sub
	}, func() {
		if lateral {
			p.syntaxError()
		}
		p.expectChar('(')
		ref := p.parseTableRef()
		j, ok := ref.(*ast.JoinExpr)
		if !ok {
			p.syntaxError()
		}
		p.expectChar(')')
		if alias := p.parseOptAlias(); alias != nil {
			j.Alias = alias
		}
		out = j
	})
	return out
}

// parseRangeFunction parses func_table [WITH ORDINALITY] [func_alias].
func (p *Parser) parseRangeFunction(lateral bool) ast.Node {
	rf := &ast.RangeFunction{Lateral: lateral}
	if p.acceptKw("rows", "from") {
		rf.IsRowsfrom = true
		p.expectChar('(')
		for {
			fn := p.parsePrimary()
			var coldefs ast.Node
			if p.isKw("as") && p.peekAt(1).IsChar('(') {
				p.advance()
				coldefs = &ast.List{Items: p.parseTableFuncElementList()}
			}
			rf.Functions = append(rf.Functions, &ast.List{Items: []ast.Node{fn, coldefs}})
			if !p.acceptChar(',') {
				break
			}
		}
		p.expectChar(')')
	} else {
		rf.Functions = []ast.Node{&ast.List{Items: []ast.Node{p.parsePrimary(), nil}}}
	}
	rf.Ordinality = p.acceptKw("with", "ordinality")

	hasAs := p.acceptKw("as")
	switch {
	case hasAs && p.isChar('('):
		rf.Coldeflist = p.parseTableFuncElementList()
	case isColID(p.cur()):
		rf.Alias = &ast.Alias{Aliasname: p.advance().Value}
		if p.isChar('(') {
			if p.isColumnDefList() {
				rf.Coldeflist = p.parseTableFuncElementList()
			} else {
				rf.Alias.Colnames = p.parenNameList()
			}
		}
	case hasAs:
		p.syntaxError()
	}
	return rf
}

// isColumnDefList reports whether the '(' at the current token opens
// column definitions (name type) rather than a list of names.
func (p *Parser) isColumnDefList() bool {
	after := p.peekAt(2)
	return !after.IsChar(',') && !after.IsChar(')')
}

// parseTableFuncElementList parses '(' [ColId Typename [COLLATE any_name] (',' ...)*] ')'.
func (p *Parser) parseTableFuncElementList() []ast.Node {
	p.expectChar('(')
	var list []ast.Node
	if !p.isChar(')') {
		for {
			t := p.cur()
			cd := &ast.ColumnDef{Colname: p.colID(), TypeName: p.parseTypename(), IsLocal: true, Location: t.Start}
			if c := p.cur(); p.acceptKw("collate") {
				cd.CollClause = &ast.CollateClause{Collname: p.anyName(), Location: c.Start}
			}
			list = append(list, cd)
			if !p.acceptChar(',') {
				break
			}
		}
	}
	p.expectChar(')')
	return list
}

// parseRelationExpr parses qualified_name ['*'] | ONLY ['('] qualified_name [')'].
func (p *Parser) parseRelationExpr() *ast.RangeVar {
	if p.acceptKw("only") {
		paren := p.acceptChar('(')
		rel := p.qualifiedName()
		if paren {
			p.expectChar(')')
		}
		rel.Inh = false
		return rel
	}
	rel := p.qualifiedName()
	p.acceptChar('*')
	return rel
}

func (p *Parser) parseRelationExprList() []ast.Node {
	list := []ast.Node{p.parseRelationExpr()}
	for p.acceptChar(',') {
		list = append(list, p.parseRelationExpr())
	}
	return list
}

// parseRelationExprOptAlias is the UPDATE / DELETE target: SET never
// starts an alias here.
func (p *Parser) parseRelationExprOptAlias() *ast.RangeVar {
	rel := p.parseRelationExpr()
	switch {
	case p.acceptKw("as"):
		rel.Alias = &ast.Alias{Aliasname: p.colID()}
	case isColID(p.cur()) && !p.isKw("set"):
		rel.Alias = &ast.Alias{Aliasname: p.advance().Value}
	}
	return rel
}

// parseOptAlias parses [AS] ColId ['(' name_list ')'].
func (p *Parser) parseOptAlias() *ast.Alias {
	if !p.acceptKw("as") && !isColID(p.cur()) {
		return nil
	}
	alias := &ast.Alias{Aliasname: p.colID()}
	if p.isChar('(') {
		alias.Colnames = p.parenNameList()
	}
	return alias
}

func (p *Parser) parseTableSample(rel *ast.RangeVar) ast.Node {
	t := p.expectKw("tablesample")
	ts := &ast.RangeTableSample{Relation: rel, Method: p.funcName(), Location: t.Start}
	ts.Args = p.parenExprList()
	if p.acceptKw("repeatable") {
		p.expectChar('(')
		ts.Repeatable = p.parseExpr()
		p.expectChar(')')
	}
	return ts
}
