// Package parser implements the PostgreSQL 16 grammar as a hand-written
// recursive descent parser producing raw parse trees.
//
// # Usage
//
//	stmts, err := parser.Parse("SELECT a FROM t; SELECT 2")
//	if err != nil {
//	    var perr *parser.ParseError
//	    errors.As(err, &perr) // perr.Location is 1-based
//	}
//
// # Grammar Overview
//
//	stmtmulti   → [stmt] (';' [stmt])*
//	stmt        → select_stmt | insert | update | delete | ddl | utility
//	select_stmt → [WITH ctes] select_clause [ORDER BY] [LIMIT/OFFSET/FETCH] [FOR ...]
//	a_expr      → Pratt parser over PostgreSQL's precedence table
//
// See each file for the grammar rules of that section. Node shapes follow
// PostgreSQL's raw parse trees, including defaults such as RangeVar.Inh and
// pg_catalog type names for SQL-standard type syntax.
package parser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/pgparse/pkg/ast"
	"github.com/leapstack-labs/pgparse/pkg/scanner"
	"github.com/leapstack-labs/pgparse/pkg/token"
)

// DefaultMaxDepth is the default nesting limit for expressions and
// subqueries.
const DefaultMaxDepth = 1000

// Option configures a parse.
type Option func(*Parser)

// WithMaxDepth limits expression and statement nesting.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// WithLogger sets the logger for debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithStandardConformingStrings controls whether backslashes in plain
// '...' literals are escapes (off) or literal characters (on, the default).
func WithStandardConformingStrings(on bool) Option {
	return func(p *Parser) {
		p.standardStrings = on
	}
}

// Parser parses one input text. It is not safe for concurrent use; Parse
// creates a fresh one per call.
type Parser struct {
	src    string
	toks   []token.Token
	lexErr *scanner.LexError // raised when the parser reaches len(toks)
	pos    int

	depth           int
	maxDepth        int
	standardStrings bool
	logger          *slog.Logger
}

// bailout carries a ParseError up the stack. Fatal errors are not
// swallowed by speculative parsing.
type bailout struct {
	err   *ParseError
	fatal bool
}

// kindLexError marks the lookahead position of a pending lexical error.
const kindLexError token.Kind = -1

func newParser(sql string, opts ...Option) *Parser {
	p := &Parser{
		src:             sql,
		maxDepth:        DefaultMaxDepth,
		standardStrings: true,
		logger:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.tokenize()
	return p
}

// Parse parses sql into one RawStmt per statement. Empty statements are
// skipped, so empty or comment-only input yields an empty slice.
func Parse(sql string, opts ...Option) ([]*ast.RawStmt, error) {
	p := newParser(sql, opts...)
	stmts, err := p.run()
	if err != nil {
		p.logger.Debug("parse failed", "error", err)
		return nil, err
	}
	if p.logger.Enabled(context.Background(), slog.LevelDebug) {
		for i, s := range stmts {
			start, end := s.SourceSlice()
			p.logger.Debug("parsed statement", "index", i, "tag", ast.Tag(s.Stmt), "start", start, "end", end)
		}
	}
	return stmts, nil
}

func (p *Parser) run() (stmts []*ast.RawStmt, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			stmts, err = nil, b.err
		}
	}()
	return p.parseStmtMulti(), nil
}

// ---------- Token Stream ----------

// tokenize scans the whole input, dropping comments and folding
// U&'...' / U&"..." tokens with their optional UESCAPE clause.
func (p *Parser) tokenize() {
	s := scanner.New(p.src, scanner.WithStandardConformingStrings(p.standardStrings))
	for {
		tok, err := s.Next()
		if err != nil {
			var lexErr *scanner.LexError
			if !errors.As(err, &lexErr) {
				lexErr = &scanner.LexError{Message: err.Error(), Offset: len(p.src)}
			}
			p.lexErr = lexErr
			break
		}
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind.IsComment() {
			continue
		}
		p.toks = append(p.toks, tok)
	}
	p.foldUnicodeTokens()
}

func (p *Parser) foldUnicodeTokens() {
	out := p.toks[:0]
	for i := 0; i < len(p.toks); i++ {
		tok := p.toks[i]
		if tok.Kind != token.USCONST && tok.Kind != token.UIDENT {
			out = append(out, tok)
			continue
		}
		esc := byte('\\')
		if i+1 < len(p.toks) && p.toks[i+1].IsKeyword("uescape") {
			if i+2 >= len(p.toks) || p.toks[i+2].Kind != token.SCONST || !scanner.CheckUnicodeEscapeChar(p.toks[i+2].Value) {
				at := p.toks[i+1]
				if i+2 < len(p.toks) {
					at = p.toks[i+2]
				}
				p.truncateAt(out, &scanner.LexError{Message: ErrUEscapeChar, Offset: at.Start, Near: at.Text(p.src)})
				return
			}
			esc = p.toks[i+2].Value[0]
			tok.End = p.toks[i+2].End
			i += 2
		}
		val, off, err := scanner.DecodeUnicodeEscapes(tok.Value, esc)
		if err != nil {
			var lexErr *scanner.LexError
			if errors.As(err, &lexErr) {
				lexErr.Offset = tok.Start + 3 + off
				lexErr.Near = p.src[lexErr.Offset:tok.End]
			}
			p.truncateAt(out, lexErr)
			return
		}
		if tok.Kind == token.USCONST {
			tok.Kind = token.SCONST
		} else {
			tok.Kind = token.IDENT
			val = scanner.TruncateIdentifier(val)
		}
		tok.Value = val
		out = append(out, tok)
	}
	p.toks = out
}

func (p *Parser) truncateAt(out []token.Token, err *scanner.LexError) {
	p.toks = out
	p.lexErr = err
}

// peekAt returns the token n positions ahead. Reaching a pending lexical
// error at n == 0 raises it.
func (p *Parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i < len(p.toks) {
		return p.toks[i]
	}
	if p.lexErr != nil {
		if n == 0 && i == len(p.toks) {
			p.failLex()
		}
		return token.Token{Kind: kindLexError, Start: p.lexErr.Offset, End: p.lexErr.Offset}
	}
	return token.Token{Kind: token.EOF, Start: len(p.src), End: len(p.src)}
}

func (p *Parser) cur() token.Token {
	return p.peekAt(0)
}

func (p *Parser) advance() token.Token {
	tok := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return tok
}

// prevEnd returns the end offset of the last consumed token.
func (p *Parser) prevEnd() int {
	if p.pos == 0 {
		return 0
	}
	return p.toks[p.pos-1].End
}

func (p *Parser) atEOF() bool {
	return p.cur().Kind == token.EOF
}

func (p *Parser) isKw(name string) bool {
	return p.cur().IsKeyword(name)
}

func (p *Parser) isKwAt(n int, name string) bool {
	return p.peekAt(n).IsKeyword(name)
}

// isKwSeq reports whether the next tokens are the given keywords.
func (p *Parser) isKwSeq(names ...string) bool {
	for i, name := range names {
		if !p.peekAt(i).IsKeyword(name) {
			return false
		}
	}
	return true
}

// acceptKw consumes the keyword sequence if present.
func (p *Parser) acceptKw(names ...string) bool {
	if !p.isKwSeq(names...) {
		return false
	}
	p.pos += len(names)
	return true
}

func (p *Parser) expectKw(names ...string) token.Token {
	first := p.cur()
	for _, name := range names {
		if !p.isKw(name) {
			p.syntaxError()
		}
		p.advance()
	}
	return first
}

func (p *Parser) isChar(c byte) bool {
	return p.cur().IsChar(c)
}

func (p *Parser) acceptChar(c byte) bool {
	if p.isChar(c) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expectChar(c byte) token.Token {
	if !p.isChar(c) {
		p.syntaxError()
	}
	return p.advance()
}

func (p *Parser) expectKind(k token.Kind) token.Token {
	if p.cur().Kind != k {
		p.syntaxError()
	}
	return p.advance()
}

// ---------- Errors ----------

func (p *Parser) syntaxError() {
	p.syntaxErrorAt(p.cur())
}

func (p *Parser) syntaxErrorAt(tok token.Token) {
	if tok.Kind == kindLexError {
		p.failLex()
	}
	if tok.Kind == token.EOF {
		panic(bailout{err: &ParseError{Message: ErrSyntaxEOF, Location: len(p.src) + 1}})
	}
	text := tok.Text(p.src)
	panic(bailout{err: &ParseError{Message: fmt.Sprintf(ErrSyntaxNear, text), Location: tok.Start + 1, Token: text}})
}

// errorAt reports a grammar-level error at a byte offset; offset < 0
// means no position.
func (p *Parser) errorAt(offset int, msg string) {
	perr := &ParseError{Message: msg}
	if offset >= 0 {
		perr.Location = offset + 1
	}
	panic(bailout{err: perr})
}

func (p *Parser) failLex() {
	e := p.lexErr
	panic(bailout{err: &ParseError{Message: e.Summary(), Location: e.Offset + 1, Token: e.Near, Err: e}, fatal: true})
}

// enter tracks nesting depth; every enter must be paired with leave.
func (p *Parser) enter() {
	p.depth++
	if p.depth > p.maxDepth {
		panic(bailout{err: &ParseError{Message: ErrStackDepth}, fatal: true})
	}
}

func (p *Parser) leave() {
	p.depth--
}

// try runs fn speculatively. On a non-fatal error the token position and
// depth are restored and the error is returned.
func (p *Parser) try(fn func()) (perr *ParseError) {
	pos, depth := p.pos, p.depth
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok || b.fatal {
				panic(r)
			}
			p.pos, p.depth = pos, depth
			perr = b.err
		}
	}()
	fn()
	return nil
}

// furthest picks the error that got further into the input.
func furthest(a, b *ParseError) *ParseError {
	la, lb := a.Location, b.Location
	if la == 0 {
		la = int(^uint(0) >> 1)
	}
	if lb == 0 {
		lb = int(^uint(0) >> 1)
	}
	if lb > la {
		return b
	}
	return a
}

func (p *Parser) raise(err *ParseError) {
	panic(bailout{err: err})
}
