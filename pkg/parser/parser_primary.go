package parser

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/pgparse/pkg/ast"
	"github.com/leapstack-labs/pgparse/pkg/token"
)

// Primary expressions (c_expr):
//
//	c_expr → columnref | AexprConst | PARAM [indirection]
//	       | '(' a_expr ')' [indirection] | case_expr | func_expr
//	       | select_with_parens [indirection] | EXISTS select_with_parens
//	       | ARRAY (select_with_parens | array_expr) | explicit_row
//	       | implicit_row | GROUPING '(' expr_list ')'

func (p *Parser) parsePrimary() ast.Node {
	p.enter()
	defer p.leave()

	t := p.cur()
	switch t.Kind {
	case token.ICONST:
		p.advance()
		return p.intConst(t)
	case token.FCONST:
		p.advance()
		return &ast.A_Const{Val: &ast.Float{Fval: t.Value}, Location: t.Start}
	case token.SCONST:
		p.advance()
		return makeStringConst(t.Value, t.Start)
	case token.BCONST, token.XCONST:
		p.advance()
		return &ast.A_Const{Val: &ast.BitString{Bsval: t.Value}, Location: t.Start}
	case token.PARAM:
		p.advance()
		n, _ := strconv.Atoi(t.Value)
		ref := &ast.ParamRef{Number: n, Location: t.Start}
		if ind := p.parseOptIndirection(); ind != nil {
			return &ast.A_Indirection{Arg: ref, Indirection: ind}
		}
		return ref
	case token.Char('('):
		return p.parseParenExpr()
	case token.IDENT:
		return p.parseNameExpr()
	}
	if t.Kind.IsKeyword() {
		return p.parseKeywordExpr(t)
	}
	p.syntaxError()
	return nil
}

// intConst turns an integer literal into an Integer constant, or a Float
// carrying the original text when it does not fit in 32 bits.
func (p *Parser) intConst(t token.Token) *ast.A_Const {
	if v, ok := parseInt32(t.Value); ok {
		return makeIntConst(v, t.Start)
	}
	return &ast.A_Const{Val: &ast.Float{Fval: t.Value}, Location: t.Start}
}

// parseInt32 parses a decimal, 0x, 0o or 0b integer literal that may carry
// '_' separators. ok is false when the value does not fit in an int32.
func parseInt32(s string) (int, bool) {
	s = strings.ReplaceAll(s, "_", "")
	base := 10
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			base, s = 16, s[2:]
		case 'o', 'O':
			base, s = 8, s[2:]
		case 'b', 'B':
			base, s = 2, s[2:]
		}
	}
	v, err := strconv.ParseInt(s, base, 32)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// parseParenExpr handles everything starting with '(': scalar subqueries,
// parenthesized expressions and implicit rows.
func (p *Parser) parseParenExpr() ast.Node {
	var out ast.Node
	p.parenQueryOr(func() {
		loc := p.cur().Start
		var n ast.Node = &ast.SubLink{SubLinkType: ast.EXPR_SUBLINK, Subselect: p.parseSelectWithParens(), Location: loc}
		if ind := p.parseOptIndirection(); ind != nil {
			n = &ast.A_Indirection{Arg: n, Indirection: ind}
		}
		out = n
	}, func() {
		out = p.parseParenExprBody()
	})
	return out
}

func (p *Parser) parseParenExprBody() ast.Node {
	open := p.expectChar('(')
	e := p.parseExpr()
	if p.isChar(',') {
		args := []ast.Node{e}
		for p.acceptChar(',') {
			args = append(args, p.parseExpr())
		}
		p.expectChar(')')
		return &ast.RowExpr{Args: args, RowFormat: ast.COERCE_IMPLICIT_CAST, Location: open.Start}
	}
	p.expectChar(')')
	if ind := p.parseOptIndirection(); ind != nil {
		return &ast.A_Indirection{Arg: e, Indirection: ind}
	}
	return e
}

// parseOptIndirection parses ('.' attr | '.' '*' | '[' subscript ']')*.
func (p *Parser) parseOptIndirection() []ast.Node {
	var out []ast.Node
	for {
		switch {
		case p.isChar('.'):
			p.advance()
			if p.acceptChar('*') {
				out = append(out, &ast.A_Star{})
			} else {
				out = append(out, str(p.colLabel()))
			}
		case p.isChar('['):
			p.advance()
			ind := &ast.A_Indices{}
			if !p.isChar(':') {
				ind.Uidx = p.parseExpr()
			}
			if p.acceptChar(':') {
				ind.IsSlice = true
				ind.Lidx, ind.Uidx = ind.Uidx, nil
				if !p.isChar(']') {
					ind.Uidx = p.parseExpr()
				}
			}
			p.expectChar(']')
			out = append(out, ind)
		default:
			return out
		}
	}
}

// dottedName looks ahead over name ('.' ColLabel)* and returns the names
// and the number of tokens they span.
func (p *Parser) dottedName() ([]string, int) {
	names := []string{p.cur().Value}
	n := 1
	for p.peekAt(n).IsChar('.') && isColLabel(p.peekAt(n+1)) {
		names = append(names, p.peekAt(n+1).Value)
		n += 2
	}
	return names, n
}

// parseNameExpr parses expressions that start with a name: column
// references, function calls and generic typed literals.
func (p *Parser) parseNameExpr() ast.Node {
	t := p.cur()
	names, n := p.dottedName()
	next := p.peekAt(n)

	switch {
	case next.IsChar('('):
		if (n == 1 && !isTypeFuncName(t)) || (n > 1 && !isColID(t)) {
			p.syntaxError()
		}
		p.pos += n
		return p.parseFuncCall(stringList(names...), t.Start)

	case next.Kind == token.SCONST && (isTypeFuncName(t) || (n > 1 && isColID(t))):
		p.pos += n
		s := p.advance()
		tn := &ast.TypeName{Names: stringList(names...), Typemod: -1, Location: t.Start}
		return &ast.TypeCast{Arg: makeStringConst(s.Value, s.Start), TypeName: tn, Location: -1}
	}

	if !isColID(t) {
		p.syntaxError()
	}
	p.advance()
	fields := []ast.Node{str(t.Value)}
	fields = append(fields, p.parseOptIndirection()...)
	return makeColumnRef(fields, t.Start)
}

// parseFuncCall parses the argument list and the trailing WITHIN GROUP,
// FILTER and OVER clauses of func_application.
func (p *Parser) parseFuncCall(name []ast.Node, loc int) *ast.FuncCall {
	p.expectChar('(')
	fc := makeFuncCall(name, nil, ast.COERCE_EXPLICIT_CALL, loc)
	switch {
	case p.isChar(')'):
	case p.isChar('*'):
		p.advance()
		fc.AggStar = true
	default:
		if p.acceptKw("distinct") {
			fc.AggDistinct = true
		} else {
			p.acceptKw("all")
		}
		for {
			if p.acceptKw("variadic") {
				fc.FuncVariadic = true
				fc.Args = append(fc.Args, p.parseFuncArg())
				break
			}
			fc.Args = append(fc.Args, p.parseFuncArg())
			if !p.acceptChar(',') {
				break
			}
		}
		if p.acceptKw("order", "by") {
			fc.AggOrder = p.parseSortList()
		}
	}
	p.expectChar(')')

	if p.acceptKw("within", "group") {
		p.expectChar('(')
		p.expectKw("order", "by")
		order := p.parseSortList()
		p.expectChar(')')
		switch {
		case fc.AggOrder != nil:
			p.errorAt(loc, ErrWithinGroupOrder)
		case fc.AggDistinct:
			p.errorAt(loc, ErrWithinGroupDistinct)
		case fc.FuncVariadic:
			p.errorAt(loc, ErrWithinGroupVariadic)
		}
		fc.AggOrder = order
		fc.AggWithinGroup = true
	}
	if p.isKw("filter") && p.peekAt(1).IsChar('(') {
		p.advance()
		p.advance()
		p.expectKw("where")
		fc.AggFilter = p.parseExpr()
		p.expectChar(')')
	}
	if p.acceptKw("over") {
		fc.Over = p.parseOverClause()
	}
	return fc
}

// parseFuncArg parses func_arg_expr: a_expr or a named argument.
func (p *Parser) parseFuncArg() ast.Node {
	t := p.cur()
	next := p.peekAt(1)
	if isTypeFuncName(t) && (next.Kind == token.COLON_EQUALS || next.Kind == token.EQUALS_GREATER) {
		p.pos += 2
		return &ast.NamedArgExpr{Arg: p.parseExpr(), Name: t.Value, Argnumber: -1, Location: t.Start}
	}
	return p.parseExpr()
}

var sqlValueFunctions = map[string]ast.SQLValueFunctionOp{
	"current_date":      ast.SVFOP_CURRENT_DATE,
	"current_time":      ast.SVFOP_CURRENT_TIME,
	"current_timestamp": ast.SVFOP_CURRENT_TIMESTAMP,
	"localtime":         ast.SVFOP_LOCALTIME,
	"localtimestamp":    ast.SVFOP_LOCALTIMESTAMP,
	"current_role":      ast.SVFOP_CURRENT_ROLE,
	"current_user":      ast.SVFOP_CURRENT_USER,
	"user":              ast.SVFOP_USER,
	"session_user":      ast.SVFOP_SESSION_USER,
	"current_catalog":   ast.SVFOP_CURRENT_CATALOG,
	"current_schema":    ast.SVFOP_CURRENT_SCHEMA,
}

// parseKeywordExpr parses primaries introduced by a keyword.
func (p *Parser) parseKeywordExpr(t token.Token) ast.Node {
	loc := t.Start
	paren := p.peekAt(1).IsChar('(')

	switch t.Value {
	case "true", "false":
		p.advance()
		return makeBoolAConst(t.Value == "true", loc)
	case "null":
		p.advance()
		return makeNullAConst(loc)
	case "default":
		p.advance()
		return &ast.SetToDefault{Location: loc}
	case "case":
		return p.parseCaseExpr()
	case "cast":
		p.advance()
		p.expectChar('(')
		arg := p.parseExpr()
		p.expectKw("as")
		tn := p.parseTypename()
		p.expectChar(')')
		return &ast.TypeCast{Arg: arg, TypeName: tn, Location: loc}
	case "exists":
		if paren {
			p.advance()
			return &ast.SubLink{SubLinkType: ast.EXISTS_SUBLINK, Subselect: p.parseSelectWithParens(), Location: loc}
		}
	case "array":
		p.advance()
		if p.isChar('(') {
			return &ast.SubLink{SubLinkType: ast.ARRAY_SUBLINK, Subselect: p.parseSelectWithParens(), Location: loc}
		}
		return p.parseArrayExpr(loc)
	case "row":
		if paren {
			p.advance()
			p.advance()
			row := &ast.RowExpr{RowFormat: ast.COERCE_EXPLICIT_CALL, Location: loc}
			if !p.isChar(')') {
				row.Args = p.exprList()
			}
			p.expectChar(')')
			return row
		}
	case "grouping":
		if paren {
			p.advance()
			return &ast.GroupingFunc{Args: p.parenExprList(), Location: loc}
		}
	case "coalesce":
		if paren {
			p.advance()
			return &ast.CoalesceExpr{Args: p.parenExprList(), Location: loc}
		}
	case "greatest", "least":
		if paren {
			p.advance()
			op := ast.IS_GREATEST
			if t.Value == "least" {
				op = ast.IS_LEAST
			}
			return &ast.MinMaxExpr{Op: op, Args: p.parenExprList(), Location: loc}
		}
	case "nullif":
		if paren {
			p.advance()
			p.advance()
			a := p.parseExpr()
			p.expectChar(',')
			b := p.parseExpr()
			p.expectChar(')')
			return makeSimpleAExpr(ast.AEXPR_NULLIF, "=", a, b, loc)
		}
	case "extract", "position", "substring", "trim", "overlay", "normalize":
		if paren {
			return p.parseSpecialFunc(t)
		}
	case "collation":
		if p.isKwAt(1, "for") {
			p.pos += 2
			p.expectChar('(')
			arg := p.parseExpr()
			p.expectChar(')')
			return makeFuncCall(systemFuncName("pg_collation_for"), []ast.Node{arg}, ast.COERCE_SQL_SYNTAX, loc)
		}
	case "system_user":
		p.advance()
		return makeFuncCall(systemFuncName("system_user"), nil, ast.COERCE_SQL_SYNTAX, loc)
	}

	if op, ok := sqlValueFunctions[t.Value]; ok && !(t.Value == "current_schema" && paren) {
		p.advance()
		svf := &ast.SQLValueFunction{Op: op, Typmod: -1, Location: loc}
		switch op {
		case ast.SVFOP_CURRENT_TIME, ast.SVFOP_CURRENT_TIMESTAMP, ast.SVFOP_LOCALTIME, ast.SVFOP_LOCALTIMESTAMP:
			if p.acceptChar('(') {
				svf.Op++
				svf.Typmod = p.iconst()
				p.expectChar(')')
			}
		}
		return svf
	}

	if isBuiltinTypeStart(t) {
		var lit ast.Node
		if err := p.try(func() { lit = p.parseConstTypeLiteral() }); err == nil {
			return lit
		}
	}
	if isColID(t) || isTypeFuncName(t) {
		return p.parseNameExpr()
	}
	p.syntaxError()
	return nil
}

// parseConstTypeLiteral parses ConstTypename Sconst, as in
// TIMESTAMP WITH TIME ZONE '...' or INTERVAL '1' DAY.
func (p *Parser) parseConstTypeLiteral() ast.Node {
	tn := p.parseBuiltinType(true)
	if tn == nil {
		p.syntaxError()
	}
	s := p.expectKind(token.SCONST)
	if tn.Typmods == nil && len(tn.Names) == 2 && tn.Names[1].(*ast.String).Sval == "interval" {
		tn.Typmods = p.parseOptInterval()
	}
	return &ast.TypeCast{Arg: makeStringConst(s.Value, s.Start), TypeName: tn, Location: -1}
}

// parseCaseExpr parses CASE [arg] WHEN ... THEN ... [ELSE ...] END.
func (p *Parser) parseCaseExpr() ast.Node {
	c := &ast.CaseExpr{Location: p.advance().Start}
	if !p.isKw("when") {
		c.Arg = p.parseExpr()
	}
	for p.isKw("when") {
		w := p.advance()
		cond := p.parseExpr()
		p.expectKw("then")
		c.Args = append(c.Args, &ast.CaseWhen{Expr: cond, Result: p.parseExpr(), Location: w.Start})
	}
	if len(c.Args) == 0 {
		p.syntaxError()
	}
	if p.acceptKw("else") {
		c.Defresult = p.parseExpr()
	}
	p.expectKw("end")
	return c
}

// parseArrayExpr parses '[' [expr_list | array_expr_list] ']'.
func (p *Parser) parseArrayExpr(loc int) *ast.A_ArrayExpr {
	p.expectChar('[')
	arr := &ast.A_ArrayExpr{Location: loc}
	switch {
	case p.isChar(']'):
	case p.isChar('['):
		for {
			arr.Elements = append(arr.Elements, p.parseArrayExpr(p.cur().Start))
			if !p.acceptChar(',') {
				break
			}
		}
	default:
		arr.Elements = p.exprList()
	}
	p.expectChar(']')
	return arr
}
