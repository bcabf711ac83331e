package parser

import (
	"github.com/leapstack-labs/pgparse/pkg/ast"
	"github.com/leapstack-labs/pgparse/pkg/token"
)

// parseStmtMulti parses the whole input. Empty statements are skipped.
func (p *Parser) parseStmtMulti() []*ast.RawStmt {
	stmts := []*ast.RawStmt{}
	for {
		for p.acceptChar(';') {
		}
		if p.atEOF() {
			return stmts
		}
		start := p.cur().Start
		stmt := p.parseStmt()
		stmts = append(stmts, &ast.RawStmt{Stmt: stmt, StmtLocation: start, StmtLen: p.prevEnd() - start})
		if !p.isChar(';') && !p.atEOF() {
			p.syntaxError()
		}
	}
}

// parseStmt dispatches on the leading keyword of a statement.
func (p *Parser) parseStmt() ast.Node {
	t := p.cur()
	if t.IsChar('(') {
		return p.parseSelectStmt()
	}
	if !t.Kind.IsKeyword() {
		p.syntaxError()
	}
	switch t.Value {
	case "select", "values", "table", "with":
		return p.parsePreparableStmt()
	case "insert":
		return p.parseInsertStmt(nil)
	case "update":
		return p.parseUpdateStmt(nil)
	case "delete":
		return p.parseDeleteStmt(nil)
	case "merge":
		return p.parseMergeStmt(nil)
	case "create":
		return p.parseCreateStmt()
	case "alter":
		return p.parseAlterStmt()
	case "drop":
		return p.parseDropStmt()
	case "truncate":
		return p.parseTruncateStmt()
	case "comment":
		return p.parseCommentStmt()
	case "grant", "revoke":
		return p.parseGrantStmt()
	case "begin", "start", "commit", "end", "rollback", "abort", "savepoint", "release":
		return p.parseTransactionStmt()
	case "prepare":
		if p.isKwAt(1, "transaction") {
			return p.parseTransactionStmt()
		}
		return p.parsePrepareStmt()
	case "set":
		return p.parseSetStmt()
	case "reset":
		return p.parseResetStmt()
	case "show":
		return p.parseShowStmt()
	case "explain":
		return p.parseExplainStmt()
	case "execute":
		return p.parseExecuteStmt()
	case "deallocate":
		return p.parseDeallocateStmt()
	case "do":
		return p.parseDoStmt()
	case "call":
		return p.parseCallStmt()
	case "listen", "unlisten", "notify":
		return p.parseNotifyStmt()
	case "vacuum", "analyze", "analyse":
		return p.parseVacuumStmt()
	case "lock":
		return p.parseLockStmt()
	case "copy":
		return p.parseCopyStmt()
	case "declare":
		return p.parseDeclareCursorStmt()
	case "fetch", "move":
		return p.parseFetchStmt()
	case "close":
		return p.parseCloseStmt()
	case "discard":
		return p.parseDiscardStmt()
	case "refresh":
		return p.parseRefreshMatViewStmt()
	case "checkpoint":
		p.advance()
		return &ast.CheckPointStmt{}
	}
	p.syntaxError()
	return nil
}

// ---------- Shared option forms ----------

// parseBooleanOrString parses opt_boolean_or_string: TRUE, FALSE, ON, a
// non-reserved word or a string constant.
func (p *Parser) parseBooleanOrString() string {
	t := p.cur()
	switch {
	case t.IsKeyword("true"), t.IsKeyword("false"), t.IsKeyword("on"):
		p.advance()
		return t.Value
	case t.Kind == token.SCONST:
		return p.sconst()
	}
	return p.nonReservedWord()
}

// parseNumericOnly parses ['+' | '-'] (Iconst | Fconst) into an Integer
// or Float value.
func (p *Parser) parseNumericOnly() ast.Node {
	sign := ""
	switch {
	case p.cur().IsOp("-"):
		p.advance()
		sign = "-"
	case p.cur().IsOp("+"):
		p.advance()
	}
	t := p.cur()
	switch t.Kind {
	case token.FCONST:
		p.advance()
		return &ast.Float{Fval: sign + t.Value}
	case token.ICONST:
		p.advance()
		if v, ok := parseInt32(sign + t.Value); ok {
			return &ast.Integer{Ival: v}
		}
		return &ast.Float{Fval: sign + t.Value}
	}
	p.syntaxError()
	return nil
}

func (p *Parser) isNumericStart() bool {
	t := p.cur()
	if t.IsOp("-") || t.IsOp("+") {
		t = p.peekAt(1)
	}
	return t.Kind == token.ICONST || t.Kind == token.FCONST
}

// parseUtilityOptionList parses '(' name [arg] (',' name [arg])* ')' as
// used by EXPLAIN, VACUUM and COPY. Names are lower-cased keywords or
// identifiers; args are String, numeric values, '*' or a list.
func (p *Parser) parseUtilityOptionList() []ast.Node {
	p.expectChar('(')
	var opts []ast.Node
	for {
		t := p.cur()
		name := p.colLabel()
		var arg ast.Node
		switch {
		case p.isChar(',') || p.isChar(')'):
		case p.isNumericStart():
			arg = p.parseNumericOnly()
		case p.acceptChar('*'):
			arg = &ast.A_Star{}
		case p.acceptChar('('):
			list := &ast.List{}
			for {
				list.Items = append(list.Items, str(p.parseBooleanOrString()))
				if !p.acceptChar(',') {
					break
				}
			}
			p.expectChar(')')
			arg = list
		default:
			arg = str(p.parseBooleanOrString())
		}
		opts = append(opts, makeDefElem(name, arg, t.Start))
		if !p.acceptChar(',') {
			break
		}
	}
	p.expectChar(')')
	return opts
}

// parseDropBehavior parses [CASCADE | RESTRICT].
func (p *Parser) parseDropBehavior() ast.DropBehavior {
	if p.acceptKw("cascade") {
		return ast.DROP_CASCADE
	}
	p.acceptKw("restrict")
	return ast.DROP_RESTRICT
}
