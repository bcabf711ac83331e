package parser

import (
	"strings"

	"github.com/leapstack-labs/pgparse/pkg/ast"
	"github.com/leapstack-labs/pgparse/pkg/token"
)

// SQL-standard function syntaxes. Each becomes a FuncCall on the
// pg_catalog function with Funcformat COERCE_SQL_SYNTAX, except where the
// plain call form is used (substring(a, b), overlay(a, b, c)).
//
//	EXTRACT '(' extract_arg FROM a_expr ')'
//	POSITION '(' b_expr IN b_expr ')'
//	SUBSTRING '(' a_expr [FROM a_expr] [FOR a_expr] | a_expr SIMILAR a_expr ESCAPE a_expr ')'
//	TRIM '(' [BOTH | LEADING | TRAILING] trim_list ')'
//	OVERLAY '(' a_expr PLACING a_expr FROM a_expr [FOR a_expr] ')'
//	NORMALIZE '(' a_expr [',' NFC | NFD | NFKC | NFKD] ')'

func (p *Parser) parseSpecialFunc(t token.Token) ast.Node {
	loc := t.Start
	p.advance()
	p.expectChar('(')

	sqlCall := func(name string, args ...ast.Node) ast.Node {
		p.expectChar(')')
		return makeFuncCall(systemFuncName(name), args, ast.COERCE_SQL_SYNTAX, loc)
	}
	plainCall := func(args []ast.Node) ast.Node {
		for p.acceptChar(',') {
			args = append(args, p.parseFuncArg())
		}
		p.expectChar(')')
		return makeFuncCall(stringList(t.Value), args, ast.COERCE_EXPLICIT_CALL, loc)
	}

	switch t.Value {
	case "extract":
		field := p.cur()
		var name string
		switch {
		case field.Kind == token.IDENT, field.Kind == token.SCONST:
			name = field.Value
		case field.Kind.IsKeyword() && isExtractField(field.Value):
			name = field.Value
		default:
			p.syntaxError()
		}
		p.advance()
		p.expectKw("from")
		return sqlCall("extract", makeStringConst(name, field.Start), p.parseExpr())

	case "position":
		needle := p.parseBExpr()
		p.expectKw("in")
		haystack := p.parseBExpr()
		return sqlCall("position", haystack, needle)

	case "substring":
		if p.isChar(')') {
			return plainCall(nil)
		}
		src := p.parseExpr()
		switch {
		case p.acceptKw("from"):
			from := p.parseExpr()
			if p.acceptKw("for") {
				return sqlCall("substring", src, from, p.parseExpr())
			}
			return sqlCall("substring", src, from)
		case p.acceptKw("for"):
			count := p.parseExpr()
			if p.acceptKw("from") {
				return sqlCall("substring", src, p.parseExpr(), count)
			}
			return sqlCall("substring", src, makeIntConst(1, -1), count)
		case p.acceptKw("similar"):
			pattern := p.parseExpr()
			p.expectKw("escape")
			return sqlCall("substring", src, pattern, p.parseExpr())
		}
		return plainCall([]ast.Node{src})

	case "trim":
		name := "btrim"
		switch {
		case p.acceptKw("both"):
		case p.acceptKw("leading"):
			name = "ltrim"
		case p.acceptKw("trailing"):
			name = "rtrim"
		}
		if p.acceptKw("from") {
			return sqlCall(name, p.exprList()...)
		}
		first := p.parseExpr()
		if p.acceptKw("from") {
			args := append(p.exprList(), first)
			return sqlCall(name, args...)
		}
		args := []ast.Node{first}
		for p.acceptChar(',') {
			args = append(args, p.parseExpr())
		}
		return sqlCall(name, args...)

	case "overlay":
		if p.isChar(')') {
			return plainCall(nil)
		}
		src := p.parseExpr()
		if !p.acceptKw("placing") {
			return plainCall([]ast.Node{src})
		}
		repl := p.parseExpr()
		p.expectKw("from")
		from := p.parseExpr()
		if p.acceptKw("for") {
			return sqlCall("overlay", src, repl, from, p.parseExpr())
		}
		return sqlCall("overlay", src, repl, from)

	case "normalize":
		arg := p.parseExpr()
		if p.acceptChar(',') {
			form := p.cur()
			switch {
			case form.IsKeyword("nfc"), form.IsKeyword("nfd"), form.IsKeyword("nfkc"), form.IsKeyword("nfkd"):
			default:
				p.syntaxError()
			}
			p.advance()
			return sqlCall("normalize", arg, makeStringConst(strings.ToUpper(form.Value), form.Start))
		}
		return sqlCall("normalize", arg)
	}
	p.syntaxErrorAt(t)
	return nil
}

func isExtractField(kw string) bool {
	switch kw {
	case "year", "month", "day", "hour", "minute", "second":
		return true
	}
	return false
}
