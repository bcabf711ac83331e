package plpgsql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/pgparse/pkg/parser"
	"github.com/leapstack-labs/pgparse/pkg/scanner"
	"github.com/leapstack-labs/pgparse/pkg/token"
)

// Error messages of the procedural layer.
const (
	ErrUnknownVariable     = "\"%s\" is not a known variable"
	ErrExitOutsideLoop     = "EXIT cannot be used outside a loop, unless it has a label"
	ErrContinueOutsideLoop = "CONTINUE cannot be used outside a loop"
	ErrUnknownLabel        = "there is no label \"%s\" attached to any block or loop enclosing this statement"
	ErrContinueBlockLabel  = "block label \"%s\" cannot be used in CONTINUE"
	ErrEndLabelDiffers     = "end label \"%s\" differs from block's label \"%s\""
	ErrEndLabelUnlabeled   = "end label \"%s\" specified for unlabeled block"
	ErrIntoTwice           = "INTO specified more than once"
	ErrUsingTwice          = "USING specified more than once"
	ErrRaiseOption         = "unrecognized RAISE statement option \"%s\""
	ErrRaiseTooFew         = "too few parameters specified for RAISE"
	ErrRaiseTooMany        = "too many parameters specified for RAISE"
	ErrInvalidSQLState     = "invalid SQLSTATE code"
	ErrNotCursor           = "\"%s\" must be of type cursor or refcursor"
	ErrFetchMultiple       = "FETCH statement cannot return multiple rows"
	ErrLoopVariable        = "loop variable of loop over rows must be a record variable or list of scalar variables"
	ErrDiagItem            = "unrecognized GET DIAGNOSTICS item"
	ErrDiagNotInCurrent    = "diagnostics item %s is not allowed in GET CURRENT DIAGNOSTICS"
	ErrDiagNotInStacked    = "diagnostics item %s is not allowed in GET STACKED DIAGNOSTICS"
	ErrMissingExpression   = "missing expression"
)

// Cursor option bits, as in PostgreSQL's parsenodes.h.
const (
	cursorOptScroll   = 0x0002
	cursorOptNoScroll = 0x0004
	cursorOptFastPlan = 0x0100
)

// bodyParser is a recursive descent parser over the body's tokens.
type bodyParser struct {
	src  string
	toks []token.Token
	pos  int
	cfg  *config
	fn   *Function
	ns   *scope
}

type bailout struct {
	err *parser.ParseError
}

func newParser(body string, cfg *config) (*bodyParser, error) {
	p := &bodyParser{src: body, cfg: cfg, fn: &Function{}}
	s := scanner.New(body)
	for {
		tok, err := s.Next()
		if err != nil {
			var lexErr *scanner.LexError
			if !errors.As(err, &lexErr) {
				return nil, &parser.ParseError{Message: err.Error(), Location: len(body) + 1, Err: err}
			}
			return nil, &parser.ParseError{Message: lexErr.Summary(), Location: lexErr.Offset + 1, Token: lexErr.Near, Err: lexErr}
		}
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind.IsComment() {
			continue
		}
		p.toks = append(p.toks, tok)
	}
	return p, nil
}

func (p *bodyParser) run() (fn *Function, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			fn, err = nil, b.err
		}
	}()
	p.ns = &scope{}
	p.declareImplicit()
	label := p.parseOptLabel()
	p.fn.Action = p.parseBlock(label)
	p.acceptChar(';')
	if !p.atEOF() {
		p.syntaxError()
	}
	return p.fn, nil
}

// declareImplicit creates FOUND, the parameters and, for triggers, the
// trigger variables.
func (p *bodyParser) declareImplicit() {
	p.addVar(&Var{Refname: "found", Datatype: &Type{Typname: "boolean"}})
	for i, prm := range p.cfg.params {
		argName := fmt.Sprintf("$%d", i+1)
		refname := prm.Name
		if refname == "" {
			refname = argName
		}
		dno := p.addNamed(refname, prm.Type, 0)
		p.ns.add(argName, dno)
	}
	if !p.cfg.trigger {
		return
	}
	p.fn.NewVarno = p.addRec(&Rec{Refname: "new"})
	p.fn.OldVarno = p.addRec(&Rec{Refname: "old"})
	for _, v := range []struct{ name, typ string }{
		{"tg_name", "name"},
		{"tg_when", "text"},
		{"tg_level", "text"},
		{"tg_op", "text"},
		{"tg_relid", "oid"},
		{"tg_relname", "name"},
		{"tg_table_name", "name"},
		{"tg_table_schema", "name"},
		{"tg_nargs", "integer"},
		{"tg_argv", "text[]"},
	} {
		p.addVar(&Var{Refname: v.name, Datatype: &Type{Typname: v.typ}})
	}
}

// ---------- Datums ----------

func (p *bodyParser) addDatum(d Datum) int {
	p.fn.Datums = append(p.fn.Datums, d)
	return len(p.fn.Datums) - 1
}

// addVar appends a scalar variable and makes it visible in the current
// scope.
func (p *bodyParser) addVar(v *Var) int {
	dno := p.addDatum(v)
	p.ns.add(v.Refname, dno)
	return dno
}

func (p *bodyParser) addRec(r *Rec) int {
	r.Dno = len(p.fn.Datums)
	p.addDatum(r)
	p.ns.add(r.Refname, r.Dno)
	return r.Dno
}

// addNamed declares name with the given type: RECORD and %ROWTYPE types
// become records, everything else a scalar.
func (p *bodyParser) addNamed(name, typ string, lineno int) int {
	lower := strings.ToLower(typ)
	if lower == "record" || strings.HasSuffix(lower, "%rowtype") {
		return p.addRec(&Rec{Refname: name, Lineno: lineno, Datatype: &Type{Typname: typ}})
	}
	return p.addVar(&Var{Refname: name, Lineno: lineno, Datatype: &Type{Typname: typ}})
}

func (p *bodyParser) pushScope(label string, isLoop bool) {
	p.ns = &scope{parent: p.ns, label: label, isLoop: isLoop}
}

func (p *bodyParser) popScope() {
	p.ns = p.ns.parent
}

// resolve looks up a variable by name, raising an error at tok when it
// is unknown.
func (p *bodyParser) resolve(tok token.Token) int {
	dno, ok := p.ns.lookup(tok.Value)
	if !ok {
		p.errorAt(tok.Start, fmt.Sprintf(ErrUnknownVariable, tok.Value))
	}
	return dno
}

// ---------- Token Stream ----------

func (p *bodyParser) peekAt(n int) token.Token {
	if i := p.pos + n; i < len(p.toks) {
		return p.toks[i]
	}
	return token.Token{Kind: token.EOF, Start: len(p.src), End: len(p.src)}
}

func (p *bodyParser) cur() token.Token {
	return p.peekAt(0)
}

func (p *bodyParser) advance() token.Token {
	tok := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return tok
}

func (p *bodyParser) atEOF() bool {
	return p.cur().Kind == token.EOF
}

// word returns the lower case text of an unquoted identifier or keyword
// token, or "" for anything else.
func (p *bodyParser) word(tok token.Token) string {
	if tok.Kind.IsKeyword() {
		return tok.Value
	}
	if tok.Kind == token.IDENT && p.src[tok.Start] != '"' {
		return tok.Value
	}
	return ""
}

func (p *bodyParser) isWord(names ...string) bool {
	for i, name := range names {
		if p.word(p.peekAt(i)) != name {
			return false
		}
	}
	return true
}

func (p *bodyParser) isAnyWord(names ...string) bool {
	w := p.word(p.cur())
	for _, name := range names {
		if w == name {
			return true
		}
	}
	return false
}

func (p *bodyParser) acceptWord(names ...string) bool {
	if !p.isWord(names...) {
		return false
	}
	p.pos += len(names)
	return true
}

func (p *bodyParser) expectWord(names ...string) token.Token {
	first := p.cur()
	for _, name := range names {
		if !p.isWord(name) {
			p.syntaxError()
		}
		p.advance()
	}
	return first
}

func (p *bodyParser) isChar(c byte) bool {
	return p.cur().IsChar(c)
}

func (p *bodyParser) acceptChar(c byte) bool {
	if p.isChar(c) {
		p.advance()
		return true
	}
	return false
}

func (p *bodyParser) expectChar(c byte) token.Token {
	if !p.isChar(c) {
		p.syntaxError()
	}
	return p.advance()
}

// isName reports whether tok can name a variable or label.
func isName(tok token.Token) bool {
	return tok.Kind == token.IDENT || tok.Kind.IsKeyword()
}

func (p *bodyParser) expectName() token.Token {
	if !isName(p.cur()) {
		p.syntaxError()
	}
	return p.advance()
}

// lineno returns the 1-based line of a body offset.
func (p *bodyParser) lineno(offset int) int {
	return token.Locate(p.src, offset).Line
}

// ---------- Errors ----------

func (p *bodyParser) syntaxError() {
	p.syntaxErrorAt(p.cur())
}

func (p *bodyParser) syntaxErrorAt(tok token.Token) {
	if tok.Kind == token.EOF {
		panic(bailout{err: &parser.ParseError{Message: parser.ErrSyntaxEOF, Location: len(p.src) + 1}})
	}
	text := tok.Text(p.src)
	panic(bailout{err: &parser.ParseError{Message: fmt.Sprintf(parser.ErrSyntaxNear, text), Location: tok.Start + 1, Token: text}})
}

func (p *bodyParser) errorAt(offset int, msg string) {
	panic(bailout{err: &parser.ParseError{Message: msg, Location: offset + 1}})
}

// ---------- Embedded SQL ----------

// span is a run of tokens collected for an embedded expression.
type span struct {
	first, last int // token indexes, last exclusive
}

func (s span) empty() bool {
	return s.first == s.last
}

func (p *bodyParser) spanText(s span) string {
	if s.empty() {
		return ""
	}
	return p.src[p.toks[s.first].Start:p.toks[s.last-1].End]
}

func (p *bodyParser) spanStart(s span) int {
	if s.empty() {
		return p.cur().Start
	}
	return p.toks[s.first].Start
}

// isTerm reports whether tok matches one of the terminators: a single
// punctuation character, ".." or a word.
func (p *bodyParser) isTerm(tok token.Token, terms []string) bool {
	for _, t := range terms {
		switch {
		case t == "..":
			if tok.Kind == token.DOT_DOT {
				return true
			}
		case len(t) == 1 && !isLetter(t[0]):
			if tok.IsChar(t[0]) {
				return true
			}
		case t == ":=":
			if tok.Kind == token.COLON_EQUALS {
				return true
			}
		default:
			if p.word(tok) == t {
				return true
			}
		}
	}
	return false
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// collect consumes tokens up to the first terminator outside parentheses,
// brackets and CASE ... END. The terminator itself is not consumed.
func (p *bodyParser) collect(terms ...string) span {
	s := span{first: p.pos}
	depth, cases := 0, 0
	for {
		tok := p.cur()
		if tok.Kind == token.EOF {
			p.syntaxError()
		}
		if depth == 0 && cases == 0 && p.isTerm(tok, terms) {
			break
		}
		switch {
		case tok.IsChar('(') || tok.IsChar('['):
			depth++
		case tok.IsChar(')') || tok.IsChar(']'):
			depth--
			if depth < 0 {
				p.syntaxError()
			}
		case p.word(tok) == "case":
			cases++
		case p.word(tok) == "end" && cases > 0:
			cases--
		}
		p.advance()
	}
	s.last = p.pos
	return s
}

// readExpr reads a required expression up to a terminator and checks it.
func (p *bodyParser) readExpr(terms ...string) *Expr {
	s := p.collect(terms...)
	if s.empty() {
		p.errorAt(p.cur().Start, ErrMissingExpression)
	}
	return p.exprOf(s)
}

// readOptExpr reads an expression that may be absent.
func (p *bodyParser) readOptExpr(terms ...string) *Expr {
	s := p.collect(terms...)
	if s.empty() {
		return nil
	}
	return p.exprOf(s)
}

func (p *bodyParser) exprOf(s span) *Expr {
	text := p.spanText(s)
	start := p.spanStart(s)
	p.check("SELECT "+text, len("SELECT "), func(off int) int { return start + off })
	return &Expr{Query: text, ParseMode: ParseExpr}
}

// readSQL reads a complete SQL statement up to a terminator and checks it.
func (p *bodyParser) readSQL(terms ...string) *Expr {
	s := p.collect(terms...)
	if s.empty() {
		p.syntaxError()
	}
	text := p.spanText(s)
	start := p.spanStart(s)
	p.check(text, 0, func(off int) int { return start + off })
	return &Expr{Query: text, ParseMode: ParseDefault}
}

// readExprList reads comma separated expressions until one of terms.
func (p *bodyParser) readExprList(terms ...string) []*Expr {
	stop := append([]string{","}, terms...)
	var out []*Expr
	for {
		out = append(out, p.readExpr(stop...))
		if !p.acceptChar(',') {
			return out
		}
	}
}

// check parses text with the grammar parser. A failure is reported at
// the body offset remap returns for the error's offset past skip.
func (p *bodyParser) check(text string, skip int, remap func(int) int) {
	_, err := parser.Parse(text, p.cfg.parserOpts...)
	if err == nil {
		return
	}
	var perr *parser.ParseError
	if !errors.As(err, &perr) {
		panic(bailout{err: &parser.ParseError{Message: err.Error(), Err: err}})
	}
	out := *perr
	if perr.Location > 0 {
		off := perr.Location - 1 - skip
		if off < 0 {
			off = 0
		}
		out.Location = remap(off) + 1
	}
	p.cfg.logger.Debug("embedded statement rejected", "query", text, "error", perr.Message)
	panic(bailout{err: &out})
}
