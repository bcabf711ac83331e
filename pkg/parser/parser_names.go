package parser

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/pgparse/pkg/ast"
	"github.com/leapstack-labs/pgparse/pkg/token"
)

// Name classes, as in gram.y:
//
//	ColId              → IDENT | unreserved_keyword | col_name_keyword
//	type_function_name → IDENT | unreserved_keyword | type_func_name_keyword
//	NonReservedWord    → IDENT | unreserved | col_name | type_func_name
//	ColLabel           → IDENT | any keyword
//	BareColLabel       → IDENT | bare_label_keyword

func isColID(t token.Token) bool {
	return t.Kind == token.IDENT || t.Keyword == token.UnreservedKeyword || t.Keyword == token.ColNameKeyword
}

func isTypeFuncName(t token.Token) bool {
	return t.Kind == token.IDENT || t.Keyword == token.UnreservedKeyword || t.Keyword == token.TypeFuncNameKeyword
}

func isNonReservedWord(t token.Token) bool {
	return t.Kind == token.IDENT || (t.Kind.IsKeyword() && t.Keyword != token.ReservedKeyword)
}

func isColLabel(t token.Token) bool {
	return t.Kind == token.IDENT || t.Kind.IsKeyword()
}

func (p *Parser) colID() string {
	if !isColID(p.cur()) {
		p.syntaxError()
	}
	return p.advance().Value
}

func (p *Parser) typeFuncName() string {
	if !isTypeFuncName(p.cur()) {
		p.syntaxError()
	}
	return p.advance().Value
}

func (p *Parser) nonReservedWord() string {
	if !isNonReservedWord(p.cur()) {
		p.syntaxError()
	}
	return p.advance().Value
}

func (p *Parser) colLabel() string {
	if !isColLabel(p.cur()) {
		p.syntaxError()
	}
	return p.advance().Value
}

// attrs parses ('.' attr_name)*.
func (p *Parser) attrs() []string {
	var out []string
	for p.isChar('.') {
		p.advance()
		out = append(out, p.colLabel())
	}
	return out
}

// anyName parses ColId attrs.
func (p *Parser) anyName() []ast.Node {
	names := []string{p.colID()}
	names = append(names, p.attrs()...)
	return stringList(names...)
}

func (p *Parser) anyNameList() [][]ast.Node {
	list := [][]ast.Node{p.anyName()}
	for p.acceptChar(',') {
		list = append(list, p.anyName())
	}
	return list
}

// nameList parses name (',' name)* as a list of String nodes.
func (p *Parser) nameList() []ast.Node {
	list := []ast.Node{str(p.colID())}
	for p.acceptChar(',') {
		list = append(list, str(p.colID()))
	}
	return list
}

// parenNameList parses '(' name_list ')'.
func (p *Parser) parenNameList() []ast.Node {
	p.expectChar('(')
	list := p.nameList()
	p.expectChar(')')
	return list
}

// qualifiedName parses ColId [indirection] into a RangeVar.
func (p *Parser) qualifiedName() *ast.RangeVar {
	start := p.cur()
	names := []string{p.colID()}
	names = append(names, p.attrs()...)
	return p.makeRangeVar(names, start.Start)
}

func (p *Parser) qualifiedNameList() []ast.Node {
	list := []ast.Node{p.qualifiedName()}
	for p.acceptChar(',') {
		list = append(list, p.qualifiedName())
	}
	return list
}

func (p *Parser) makeRangeVar(names []string, loc int) *ast.RangeVar {
	rv := &ast.RangeVar{Inh: true, Relpersistence: "p", Location: loc}
	switch len(names) {
	case 1:
		rv.Relname = names[0]
	case 2:
		rv.Schemaname, rv.Relname = names[0], names[1]
	case 3:
		rv.Catalogname, rv.Schemaname, rv.Relname = names[0], names[1], names[2]
	default:
		p.errorAt(loc, fmt.Sprintf(ErrImproperQualified, strings.Join(names, ".")))
	}
	return rv
}

// funcName parses type_function_name | ColId indirection.
func (p *Parser) funcName() []ast.Node {
	t := p.cur()
	if isTypeFuncName(t) && !p.peekAt(1).IsChar('.') {
		p.advance()
		return stringList(t.Value)
	}
	return p.anyName()
}

// roleSpec parses a role name or CURRENT_USER and friends.
func (p *Parser) roleSpec() *ast.RoleSpec {
	t := p.cur()
	rs := &ast.RoleSpec{Location: t.Start}
	switch {
	case t.IsKeyword("current_role"):
		rs.Roletype = ast.ROLESPEC_CURRENT_ROLE
	case t.IsKeyword("current_user"):
		rs.Roletype = ast.ROLESPEC_CURRENT_USER
	case t.IsKeyword("session_user"):
		rs.Roletype = ast.ROLESPEC_SESSION_USER
	case t.Kind == token.IDENT && t.Value == "public":
		rs.Roletype = ast.ROLESPEC_PUBLIC
	case isNonReservedWord(t):
		rs.Roletype = ast.ROLESPEC_CSTRING
		rs.Rolename = t.Value
	default:
		p.syntaxError()
	}
	p.advance()
	return rs
}

func (p *Parser) roleList() []ast.Node {
	list := []ast.Node{p.roleSpec()}
	for p.acceptChar(',') {
		list = append(list, p.roleSpec())
	}
	return list
}

// sconst consumes a string constant.
func (p *Parser) sconst() string {
	return p.expectKind(token.SCONST).Value
}

// iconst consumes an integer constant.
func (p *Parser) iconst() int {
	t := p.expectKind(token.ICONST)
	v, ok := parseInt32(t.Value)
	if !ok {
		p.syntaxErrorAt(t)
	}
	return v
}

// signedIconst parses ['+'|'-'] Iconst.
func (p *Parser) signedIconst() int {
	switch {
	case p.cur().IsOp("-"):
		p.advance()
		return -p.iconst()
	case p.cur().IsOp("+"):
		p.advance()
	}
	return p.iconst()
}

// ---------- Node Helpers ----------

func str(s string) *ast.String {
	return &ast.String{Sval: s}
}

func stringList(names ...string) []ast.Node {
	out := make([]ast.Node, len(names))
	for i, n := range names {
		out[i] = str(n)
	}
	return out
}

func systemFuncName(name string) []ast.Node {
	return stringList("pg_catalog", name)
}

func makeIntConst(v, loc int) *ast.A_Const {
	return &ast.A_Const{Val: &ast.Integer{Ival: v}, Location: loc}
}

func makeStringConst(s string, loc int) *ast.A_Const {
	return &ast.A_Const{Val: str(s), Location: loc}
}

func makeBoolAConst(b bool, loc int) *ast.A_Const {
	return &ast.A_Const{Val: &ast.Boolean{Boolval: b}, Location: loc}
}

func makeNullAConst(loc int) *ast.A_Const {
	return &ast.A_Const{Isnull: true, Location: loc}
}

func makeSimpleAExpr(kind ast.A_Expr_Kind, op string, l, r ast.Node, loc int) *ast.A_Expr {
	return &ast.A_Expr{Kind: kind, Name: stringList(op), Lexpr: l, Rexpr: r, Location: loc}
}

func makeDefElem(name string, arg ast.Node, loc int) *ast.DefElem {
	return &ast.DefElem{Defname: name, Arg: arg, Location: loc}
}

func makeFuncCall(name []ast.Node, args []ast.Node, format ast.CoercionForm, loc int) *ast.FuncCall {
	return &ast.FuncCall{Funcname: name, Args: args, Funcformat: format, Location: loc}
}

// makeBoolExpr builds AND/OR, flattening a left operand of the same kind.
func makeBoolExpr(op ast.BoolExprType, l, r ast.Node, loc int) ast.Node {
	if be, ok := l.(*ast.BoolExpr); ok && be.Boolop == op {
		be.Args = append(be.Args, r)
		return be
	}
	return &ast.BoolExpr{Boolop: op, Args: []ast.Node{l, r}, Location: loc}
}

func makeNotExpr(arg ast.Node, loc int) *ast.BoolExpr {
	return &ast.BoolExpr{Boolop: ast.NOT_EXPR, Args: []ast.Node{arg}, Location: loc}
}

// makeColumnRef splits fields at the first subscript: the leading names
// form the ColumnRef, the rest an A_Indirection on top of it.
func makeColumnRef(fields []ast.Node, loc int) ast.Node {
	for i, f := range fields {
		if _, ok := f.(*ast.A_Indices); ok {
			ref := &ast.ColumnRef{Fields: fields[:i:i], Location: loc}
			return &ast.A_Indirection{Arg: ref, Indirection: fields[i:]}
		}
	}
	return &ast.ColumnRef{Fields: fields, Location: loc}
}
