package parser

import (
	"strings"

	"github.com/leapstack-labs/pgparse/pkg/ast"
	"github.com/leapstack-labs/pgparse/pkg/token"
)

// Expressions are parsed with precedence climbing over the operator table
// of gram.y, lowest first:
//
//	OR
//	AND
//	NOT                              (prefix)
//	IS ISNULL NOTNULL                (nonassoc)
//	< > = <= >= <>                   (nonassoc)
//	BETWEEN IN LIKE ILIKE SIMILAR    (nonassoc)
//	ESCAPE
//	Op OPERATOR(...)                 (any other operator)
//	+ -
//	* / %
//	^
//	AT TIME ZONE
//	COLLATE
//	unary + -
//	[ ]                              (subscripts, handled by primaries)
//	::
//
// b_expr is the restricted form used where AND, IN and friends would be
// ambiguous (BETWEEN bounds, column defaults).
const (
	precNone = iota
	precOr
	precAnd
	precNot
	precIs
	precCmp
	precLike
	precEscape
	precOp
	precAdd
	precMul
	precExp
	precAt
	precCollate
	precUminus
	precSubscript
	precTypecast
)

// parseExpr parses a_expr.
func (p *Parser) parseExpr() ast.Node {
	return p.parseExprPrec(precOr, false)
}

// parseBExpr parses b_expr.
func (p *Parser) parseBExpr() ast.Node {
	return p.parseExprPrec(precOr, true)
}

func (p *Parser) parseExprPrec(minPrec int, restricted bool) ast.Node {
	p.enter()
	defer p.leave()

	left := p.parsePrefix(restricted)
	lastNonAssoc := precNone
	for {
		prec := p.infixPrec(restricted)
		if prec == precNone || prec < minPrec {
			return left
		}
		if prec == lastNonAssoc {
			p.syntaxError()
		}
		left = p.parseInfix(left, prec, restricted)
		lastNonAssoc = precNone
		if prec == precIs || prec == precCmp || prec == precLike {
			lastNonAssoc = prec
		}
	}
}

func (p *Parser) parsePrefix(restricted bool) ast.Node {
	t := p.cur()
	switch {
	case t.IsKeyword("not") && !restricted:
		p.advance()
		return makeNotExpr(p.parseExprPrec(precNot, false), t.Start)
	case t.IsOp("-"):
		p.advance()
		return doNegate(p.parseExprPrec(precUminus, restricted), t.Start)
	case t.IsOp("+"):
		p.advance()
		return makeSimpleAExpr(ast.AEXPR_OP, "+", nil, p.parseExprPrec(precUminus, restricted), t.Start)
	case t.Kind == token.Op || (t.IsKeyword("operator") && p.peekAt(1).IsChar('(')):
		name := p.parseQualOp()
		arg := p.parseExprPrec(precOp+1, restricted)
		return &ast.A_Expr{Kind: ast.AEXPR_OP, Name: name, Rexpr: arg, Location: t.Start}
	}
	return p.parsePrimary()
}

// infixPrec returns the precedence of the operator at the current token,
// or precNone when it does not continue an expression.
func (p *Parser) infixPrec(restricted bool) int {
	t := p.cur()
	switch t.Kind {
	case token.Char('+'), token.Char('-'):
		return precAdd
	case token.Char('*'), token.Char('/'), token.Char('%'):
		return precMul
	case token.Char('^'):
		return precExp
	case token.Char('<'), token.Char('>'), token.Char('='),
		token.LESS_EQUALS, token.GREATER_EQUALS, token.NOT_EQUALS:
		return precCmp
	case token.Op:
		return precOp
	case token.TYPECAST:
		return precTypecast
	}
	if !t.Kind.IsKeyword() {
		return precNone
	}
	switch t.Value {
	case "operator":
		if p.peekAt(1).IsChar('(') {
			return precOp
		}
	case "is":
		if !restricted || p.isKwSeq("is", "distinct") || p.isKwSeq("is", "not", "distinct") {
			return precIs
		}
	}
	if restricted {
		return precNone
	}
	switch t.Value {
	case "or":
		return precOr
	case "and":
		return precAnd
	case "isnull", "notnull":
		return precIs
	case "between", "in", "like", "ilike":
		return precLike
	case "similar":
		if p.isKwAt(1, "to") {
			return precLike
		}
	case "not":
		next := p.peekAt(1)
		if next.IsKeyword("between") || next.IsKeyword("in") || next.IsKeyword("like") || next.IsKeyword("ilike") ||
			(next.IsKeyword("similar") && p.isKwAt(2, "to")) {
			return precLike
		}
	case "at":
		if p.isKwSeq("at", "time", "zone") {
			return precAt
		}
	case "collate":
		return precCollate
	}
	return precNone
}

func (p *Parser) parseInfix(left ast.Node, prec int, restricted bool) ast.Node {
	t := p.cur()
	loc := t.Start
	switch prec {
	case precOr:
		p.advance()
		return makeBoolExpr(ast.OR_EXPR, left, p.parseExprPrec(precOr+1, false), loc)
	case precAnd:
		p.advance()
		return makeBoolExpr(ast.AND_EXPR, left, p.parseExprPrec(precAnd+1, false), loc)
	case precIs:
		return p.parseIsExpr(left, restricted)
	case precLike:
		return p.parseLikeFamily(left)
	case precAt:
		p.pos += 3
		zone := p.parseExprPrec(precAt+1, restricted)
		return makeFuncCall(systemFuncName("timezone"), []ast.Node{zone, left}, ast.COERCE_SQL_SYNTAX, loc)
	case precCollate:
		p.advance()
		return &ast.CollateClause{Arg: left, Collname: p.anyName(), Location: loc}
	case precTypecast:
		p.advance()
		return &ast.TypeCast{Arg: left, TypeName: p.parseTypename(), Location: loc}
	}

	// Binary operators, optionally applied to ANY/ALL/SOME.
	var name []ast.Node
	if prec == precOp {
		name = p.parseQualOp()
	} else {
		name = stringList(p.advance().Value)
	}
	if p.cur().IsKeyword("any") || p.cur().IsKeyword("all") || p.cur().IsKeyword("some") {
		if p.peekAt(1).IsChar('(') {
			return p.parseSubqueryOp(left, name, loc)
		}
	}
	right := p.parseExprPrec(prec+1, restricted)
	return &ast.A_Expr{Kind: ast.AEXPR_OP, Name: name, Lexpr: left, Rexpr: right, Location: loc}
}

// parseSubqueryOp parses `op ANY|ALL|SOME (subquery | array_expr)`.
func (p *Parser) parseSubqueryOp(left ast.Node, name []ast.Node, loc int) ast.Node {
	all := p.advance().IsKeyword("all")
	var out ast.Node
	p.parenQueryOr(func() {
		link := &ast.SubLink{SubLinkType: ast.ANY_SUBLINK, Testexpr: left, OperName: name, Location: loc}
		if all {
			link.SubLinkType = ast.ALL_SUBLINK
		}
		link.Subselect = p.parseSelectWithParens()
		out = link
	}, func() {
		p.expectChar('(')
		arg := p.parseExpr()
		p.expectChar(')')
		kind := ast.AEXPR_OP_ANY
		if all {
			kind = ast.AEXPR_OP_ALL
		}
		out = &ast.A_Expr{Kind: kind, Name: name, Lexpr: left, Rexpr: arg, Location: loc}
	})
	return out
}

func (p *Parser) parseIsExpr(left ast.Node, restricted bool) ast.Node {
	t := p.advance()
	loc := t.Start
	switch {
	case t.IsKeyword("isnull"):
		return &ast.NullTest{Arg: left, Nulltesttype: ast.IS_NULL, Location: loc}
	case t.IsKeyword("notnull"):
		return &ast.NullTest{Arg: left, Nulltesttype: ast.IS_NOT_NULL, Location: loc}
	}
	not := p.acceptKw("not")
	switch {
	case p.acceptKw("distinct", "from"):
		right := p.parseExprPrec(precIs+1, restricted)
		kind := ast.AEXPR_DISTINCT
		if not {
			kind = ast.AEXPR_NOT_DISTINCT
		}
		return makeSimpleAExpr(kind, "=", left, right, loc)
	case restricted:
		p.syntaxError()
	case p.acceptKw("null"):
		nt := &ast.NullTest{Arg: left, Nulltesttype: ast.IS_NULL, Location: loc}
		if not {
			nt.Nulltesttype = ast.IS_NOT_NULL
		}
		return nt
	case p.acceptKw("true"):
		return boolTest(left, ast.IS_TRUE, ast.IS_NOT_TRUE, not, loc)
	case p.acceptKw("false"):
		return boolTest(left, ast.IS_FALSE, ast.IS_NOT_FALSE, not, loc)
	case p.acceptKw("unknown"):
		return boolTest(left, ast.IS_UNKNOWN, ast.IS_NOT_UNKNOWN, not, loc)
	}
	p.syntaxError()
	return nil
}

func boolTest(arg ast.Node, pos, neg ast.BoolTestType, not bool, loc int) *ast.BooleanTest {
	bt := &ast.BooleanTest{Arg: arg, Booltesttype: pos, Location: loc}
	if not {
		bt.Booltesttype = neg
	}
	return bt
}

// parseLikeFamily parses [NOT] BETWEEN / IN / LIKE / ILIKE / SIMILAR TO.
func (p *Parser) parseLikeFamily(left ast.Node) ast.Node {
	loc := p.cur().Start
	not := p.acceptKw("not")
	op := p.advance()
	switch op.Value {
	case "between":
		kind, name := ast.AEXPR_BETWEEN, "BETWEEN"
		if p.acceptKw("symmetric") {
			kind, name = ast.AEXPR_BETWEEN_SYM, "BETWEEN SYMMETRIC"
		} else {
			p.acceptKw("asymmetric")
		}
		if not {
			kind++
			name = "NOT " + name
		}
		lo := p.parseBExpr()
		p.expectKw("and")
		hi := p.parseExprPrec(precLike+1, false)
		return makeSimpleAExpr(kind, name, left, &ast.List{Items: []ast.Node{lo, hi}}, loc)

	case "in":
		var out ast.Node
		p.parenQueryOr(func() {
			link := &ast.SubLink{SubLinkType: ast.ANY_SUBLINK, Testexpr: left, Location: loc}
			link.Subselect = p.parseSelectWithParens()
			out = link
			if not {
				out = makeNotExpr(link, loc)
			}
		}, func() {
			p.expectChar('(')
			list := p.exprList()
			p.expectChar(')')
			opName := "="
			if not {
				opName = "<>"
			}
			out = makeSimpleAExpr(ast.AEXPR_IN, opName, left, &ast.List{Items: list}, loc)
		})
		return out

	case "like", "ilike":
		kind, opName := ast.AEXPR_LIKE, "~~"
		if op.Value == "ilike" {
			kind, opName = ast.AEXPR_ILIKE, "~~*"
		}
		if not {
			opName = "!" + opName
		}
		pattern := p.parseExprPrec(precLike+1, false)
		if p.acceptKw("escape") {
			esc := p.parseExprPrec(precLike+1, false)
			pattern = makeFuncCall(systemFuncName("like_escape"), []ast.Node{pattern, esc}, ast.COERCE_EXPLICIT_CALL, loc)
		}
		return makeSimpleAExpr(kind, opName, left, pattern, loc)

	case "similar":
		p.expectKw("to")
		opName := "~"
		if not {
			opName = "!~"
		}
		args := []ast.Node{p.parseExprPrec(precLike+1, false)}
		if p.acceptKw("escape") {
			args = append(args, p.parseExprPrec(precLike+1, false))
		}
		pattern := makeFuncCall(systemFuncName("similar_to_escape"), args, ast.COERCE_EXPLICIT_CALL, loc)
		return makeSimpleAExpr(ast.AEXPR_SIMILAR, opName, left, pattern, loc)
	}
	p.syntaxErrorAt(op)
	return nil
}

// parseQualOp parses Op | OPERATOR '(' any_operator ')'.
func (p *Parser) parseQualOp() []ast.Node {
	if !p.isKw("operator") {
		return stringList(p.advance().Value)
	}
	p.advance()
	p.expectChar('(')
	var names []string
	for isColID(p.cur()) && p.peekAt(1).IsChar('.') {
		names = append(names, p.advance().Value)
		p.advance()
	}
	if !isAllOp(p.cur()) {
		p.syntaxError()
	}
	names = append(names, p.advance().Value)
	p.expectChar(')')
	return stringList(names...)
}

func isMathOp(t token.Token) bool {
	switch t.Kind {
	case token.LESS_EQUALS, token.GREATER_EQUALS, token.NOT_EQUALS:
		return true
	}
	return t.Kind < 256 && t.Kind > 0 && strings.IndexByte("+-*/%^<>=", byte(t.Kind)) >= 0
}

func isAllOp(t token.Token) bool {
	return t.Kind == token.Op || isMathOp(t)
}

// doNegate folds a minus sign into a numeric constant.
func doNegate(n ast.Node, loc int) ast.Node {
	if c, ok := n.(*ast.A_Const); ok {
		c.Location = loc
		switch v := c.Val.(type) {
		case *ast.Integer:
			v.Ival = -v.Ival
			return c
		case *ast.Float:
			if strings.HasPrefix(v.Fval, "-") {
				v.Fval = v.Fval[1:]
			} else {
				v.Fval = "-" + v.Fval
			}
			return c
		}
	}
	return makeSimpleAExpr(ast.AEXPR_OP, "-", nil, n, loc)
}

// exprList parses a_expr (',' a_expr)*.
func (p *Parser) exprList() []ast.Node {
	list := []ast.Node{p.parseExpr()}
	for p.acceptChar(',') {
		list = append(list, p.parseExpr())
	}
	return list
}

// parenExprList parses '(' expr_list ')'.
func (p *Parser) parenExprList() []ast.Node {
	p.expectChar('(')
	list := p.exprList()
	p.expectChar(')')
	return list
}

// parenQueryOr parses a parenthesized query when the input holds one and
// calls alt otherwise. A run of opening parentheses is ambiguous and is
// resolved by trying the query first.
func (p *Parser) parenQueryOr(query, alt func()) {
	next := p.peekAt(1)
	if isQueryStart(next) {
		query()
		return
	}
	if !next.IsChar('(') {
		alt()
		return
	}
	errQuery := p.try(query)
	if errQuery == nil {
		return
	}
	errAlt := p.try(alt)
	if errAlt == nil {
		return
	}
	p.raise(furthest(errQuery, errAlt))
}

func isQueryStart(t token.Token) bool {
	return t.IsKeyword("select") || t.IsKeyword("values") || t.IsKeyword("with") || t.IsKeyword("table")
}
