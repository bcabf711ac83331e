package plpgsql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/pgparse/pkg/token"
)

// ---------- Blocks ----------

// parseOptLabel reads an optional <<label>>.
func (p *bodyParser) parseOptLabel() string {
	if !p.cur().IsOp("<<") {
		return ""
	}
	p.advance()
	name := p.expectName()
	if !p.cur().IsOp(">>") {
		p.syntaxError()
	}
	p.advance()
	return name.Value
}

// parseBlock parses [DECLARE decls] BEGIN stmts [EXCEPTION arms] END [label].
func (p *bodyParser) parseBlock(label string) *Block {
	p.pushScope(label, false)
	defer p.popScope()

	if p.acceptWord("declare") {
		p.parseDeclarations()
	}
	begin := p.expectWord("begin")
	block := &Block{Lineno: p.lineno(begin.Start), Label: label}
	block.Body = p.parseStmtList("exception", "end")
	if p.isWord("exception") {
		exc := p.advance()
		p.pushScope("", false)
		p.addVar(&Var{Refname: "sqlstate", Lineno: p.lineno(exc.Start), Datatype: &Type{Typname: "text"}})
		p.addVar(&Var{Refname: "sqlerrm", Lineno: p.lineno(exc.Start), Datatype: &Type{Typname: "text"}})
		for p.isWord("when") {
			block.Exceptions = append(block.Exceptions, p.parseExceptionArm())
		}
		if len(block.Exceptions) == 0 {
			p.syntaxError()
		}
		p.popScope()
	}
	p.expectWord("end")
	p.parseEndLabel(label)
	return block
}

func (p *bodyParser) parseExceptionArm() *Exception {
	when := p.expectWord("when")
	exc := &Exception{Lineno: p.lineno(when.Start)}
	for {
		if p.acceptWord("sqlstate") {
			code := p.cur()
			if code.Kind != token.SCONST {
				p.syntaxError()
			}
			p.advance()
			if !validSQLState(code.Value) {
				p.errorAt(code.Start, ErrInvalidSQLState)
			}
			exc.Conditions = append(exc.Conditions, code.Value)
		} else {
			exc.Conditions = append(exc.Conditions, p.expectName().Value)
		}
		if !p.acceptWord("or") {
			break
		}
	}
	p.expectWord("then")
	exc.Action = p.parseStmtList("when", "end")
	return exc
}

// parseEndLabel checks the optional label after END or END LOOP.
func (p *bodyParser) parseEndLabel(label string) {
	tok := p.cur()
	if !isName(tok) {
		return
	}
	p.advance()
	if label == "" {
		p.errorAt(tok.Start, fmt.Sprintf(ErrEndLabelUnlabeled, tok.Value))
	}
	if tok.Value != label {
		p.errorAt(tok.Start, fmt.Sprintf(ErrEndLabelDiffers, tok.Value, label))
	}
}

func validSQLState(code string) bool {
	if len(code) != 5 {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// ---------- Declarations ----------

func (p *bodyParser) parseDeclarations() {
	for !p.isWord("begin") {
		if p.atEOF() {
			p.syntaxError()
		}
		if p.acceptWord("declare") {
			continue
		}
		p.parseDeclaration()
	}
}

func (p *bodyParser) parseDeclaration() {
	nameTok := p.expectName()
	name := nameTok.Value
	lineno := p.lineno(nameTok.Start)

	if p.acceptWord("alias", "for") {
		target := p.cur()
		if target.Kind != token.PARAM && !isName(target) {
			p.syntaxError()
		}
		p.advance()
		key := target.Value
		if target.Kind == token.PARAM {
			key = target.Text(p.src)
		}
		dno, ok := p.ns.lookup(key)
		if !ok {
			p.errorAt(target.Start, fmt.Sprintf(ErrUnknownVariable, key))
		}
		p.ns.add(name, dno)
		p.expectChar(';')
		return
	}

	if p.isWord("cursor") || p.isWord("scroll", "cursor") || p.isWord("no", "scroll", "cursor") {
		p.parseCursorDecl(name, lineno)
		return
	}

	isConst := p.acceptWord("constant")
	typ := p.collect(";", ":=", "=", "default", "not", "collate")
	if typ.empty() {
		p.syntaxError()
	}
	typname := p.spanText(typ)
	if p.acceptWord("collate") {
		p.expectName()
		for p.acceptChar('.') {
			p.expectName()
		}
	}
	notNull := p.acceptWord("not", "null")

	var def *Expr
	if p.cur().Kind == token.COLON_EQUALS || p.isChar('=') || p.isWord("default") {
		p.advance()
		def = p.readExpr(";")
	}
	p.expectChar(';')

	lower := strings.ToLower(typname)
	if lower == "record" || strings.HasSuffix(lower, "%rowtype") {
		p.addRec(&Rec{Refname: name, Lineno: lineno, Datatype: &Type{Typname: typname}, DefaultVal: def})
		return
	}
	p.addVar(&Var{
		Refname:    name,
		Lineno:     lineno,
		Datatype:   &Type{Typname: typname},
		IsConst:    isConst,
		NotNull:    notNull,
		DefaultVal: def,
	})
}

// parseCursorDecl parses [NO] SCROLL CURSOR [(args)] {FOR | IS} query.
func (p *bodyParser) parseCursorDecl(name string, lineno int) {
	opts := cursorOptFastPlan
	switch {
	case p.acceptWord("no", "scroll"):
		opts |= cursorOptNoScroll
	case p.acceptWord("scroll"):
		opts |= cursorOptScroll
	}
	p.expectWord("cursor")

	argrow := -1
	if p.acceptChar('(') {
		row := &Row{Refname: "(unnamed row)", Lineno: lineno}
		p.pushScope("", false)
		for {
			argTok := p.expectName()
			typ := p.collect(",", ")")
			if typ.empty() {
				p.syntaxError()
			}
			dno := p.addVar(&Var{Refname: argTok.Value, Lineno: p.lineno(argTok.Start), Datatype: &Type{Typname: p.spanText(typ)}})
			row.Fields = append(row.Fields, RowField{Name: argTok.Value, Varno: dno})
			if !p.acceptChar(',') {
				break
			}
		}
		p.popScope()
		p.expectChar(')')
		argrow = p.addDatum(row)
	}
	if !p.acceptWord("for") {
		p.expectWord("is")
	}
	query := p.readSQL(";")
	p.expectChar(';')
	p.addVar(&Var{
		Refname:              name,
		Lineno:               lineno,
		Datatype:             &Type{Typname: "refcursor"},
		CursorExplicitExpr:   query,
		CursorExplicitArgrow: argrow,
		CursorOptions:        opts,
	})
}

// ---------- Statement Lists ----------

// parseStmtList parses statements until one of the stop words.
func (p *bodyParser) parseStmtList(stop ...string) []Stmt {
	var out []Stmt
	for !p.isAnyWord(stop...) {
		if p.atEOF() {
			p.syntaxError()
		}
		if s := p.parseStmt(); s != nil {
			out = append(out, s)
		}
	}
	return out
}

// parseStmt parses one statement including its terminating semicolon.
// NULL yields nil.
func (p *bodyParser) parseStmt() Stmt {
	label := p.parseOptLabel()
	if label != "" {
		switch p.word(p.cur()) {
		case "declare", "begin":
			block := p.parseBlock(label)
			p.expectChar(';')
			return block
		case "loop", "while", "for", "foreach":
		default:
			p.syntaxErrorAt(p.cur())
		}
	}

	tok := p.cur()
	switch p.word(tok) {
	case "declare", "begin":
		block := p.parseBlock("")
		p.expectChar(';')
		return block
	case "if":
		return p.parseIf()
	case "case":
		return p.parseCase()
	case "loop":
		return p.parseLoop(label)
	case "while":
		return p.parseWhile(label)
	case "for":
		return p.parseFor(label)
	case "foreach":
		return p.parseForeach(label)
	case "exit", "continue":
		return p.parseExit()
	case "return":
		return p.parseReturn()
	case "raise":
		return p.parseRaise()
	case "assert":
		return p.parseAssert()
	case "perform":
		return p.parsePerform()
	case "execute":
		return p.parseDynExecute()
	case "get":
		if p.isWord("get", "diagnostics") || p.isWord("get", "current", "diagnostics") || p.isWord("get", "stacked", "diagnostics") {
			return p.parseGetDiag()
		}
	case "open":
		return p.parseOpen()
	case "fetch", "move":
		return p.parseFetch()
	case "close":
		return p.parseClose()
	case "null":
		p.advance()
		p.expectChar(';')
		return nil
	case "commit", "rollback":
		if p.peekAt(1).IsChar(';') || p.word(p.peekAt(1)) == "and" {
			return p.parseTransaction()
		}
	case "call", "do":
		return p.parseCall()
	}
	if n := p.assignTargetLen(); n > 0 {
		return p.parseAssign(n)
	}
	return p.parseExecSQL()
}

// ---------- Assignment ----------

// assignTargetLen returns the number of tokens of an assignment target
// name[.name...][subscripts] followed by := or =, or 0.
func (p *bodyParser) assignTargetLen() int {
	if !isName(p.cur()) {
		return 0
	}
	i := 1
	for {
		t := p.peekAt(i)
		switch {
		case t.IsChar('.') && isName(p.peekAt(i+1)):
			i += 2
			continue
		case t.IsChar('['):
			depth := 0
			for {
				t = p.peekAt(i)
				if t.Kind == token.EOF || t.IsChar(';') {
					return 0
				}
				if t.IsChar('[') {
					depth++
				} else if t.IsChar(']') {
					depth--
				}
				i++
				if depth == 0 {
					break
				}
			}
			continue
		}
		if t.Kind == token.COLON_EQUALS || t.IsChar('=') {
			return i
		}
		return 0
	}
}

func (p *bodyParser) parseAssign(n int) Stmt {
	first := p.cur()
	parts := 1
	var names []token.Token
	names = append(names, first)
	for i := 1; i < n; i++ {
		t := p.peekAt(i)
		if t.IsChar('.') && isName(p.peekAt(i+1)) {
			parts++
			names = append(names, p.peekAt(i+1))
		}
		if t.IsChar('[') {
			break
		}
	}
	varno := p.assignTarget(names)
	p.pos += n
	p.advance() // := or =
	valueStart := p.cur().Start
	value := p.collect(";")
	if value.empty() {
		p.errorAt(p.cur().Start, ErrMissingExpression)
	}
	p.check("SELECT "+p.spanText(value), len("SELECT "), func(off int) int { return valueStart + off })
	query := p.src[first.Start:p.toks[value.last-1].End]
	p.expectChar(';')
	mode := ParseAssign1 + ParseMode(min(parts, 3)-1)
	return &Assign{Lineno: p.lineno(first.Start), Varno: varno, Expr: &Expr{Query: query, ParseMode: mode}}
}

// assignTarget resolves the datum an assignment writes to: a variable,
// a label-qualified variable or a record field.
func (p *bodyParser) assignTarget(names []token.Token) int {
	if dno, ok := p.ns.lookup(names[0].Value); ok {
		if rec, isRec := p.fn.Datums[dno].(*Rec); isRec && len(names) > 1 {
			return p.addDatum(&RecField{Fieldname: names[1].Value, Recparentno: rec.Dno})
		}
		return dno
	}
	if len(names) > 1 {
		if s := p.ns.labeled(names[0].Value); s != nil {
			if dno, ok := s.names[names[1].Value]; ok {
				return dno
			}
		}
	}
	p.errorAt(names[0].Start, fmt.Sprintf(ErrUnknownVariable, names[0].Value))
	return 0
}

// ---------- Conditionals ----------

func (p *bodyParser) parseIf() Stmt {
	kw := p.expectWord("if")
	s := &If{Lineno: p.lineno(kw.Start)}
	s.Cond = p.readExpr("then")
	p.expectWord("then")
	s.Then = p.parseStmtList("elsif", "elseif", "else", "end")
	for p.isAnyWord("elsif", "elseif") {
		at := p.advance()
		arm := &Elsif{Lineno: p.lineno(at.Start)}
		arm.Cond = p.readExpr("then")
		p.expectWord("then")
		arm.Stmts = p.parseStmtList("elsif", "elseif", "else", "end")
		s.Elsif = append(s.Elsif, arm)
	}
	if p.acceptWord("else") {
		s.Else = p.parseStmtList("end")
	}
	p.expectWord("end", "if")
	p.expectChar(';')
	return s
}

func (p *bodyParser) parseCase() Stmt {
	kw := p.expectWord("case")
	s := &Case{Lineno: p.lineno(kw.Start)}
	var hidden string
	if !p.isWord("when") {
		s.TExpr = p.readExpr("when")
		s.TVarno = len(p.fn.Datums)
		hidden = fmt.Sprintf("__Case__Variable_%d__", s.TVarno)
		p.addDatum(&Var{Refname: hidden, Lineno: s.Lineno, Datatype: &Type{Typname: "integer"}})
	}
	for p.isWord("when") {
		at := p.advance()
		arm := &CaseWhen{Lineno: p.lineno(at.Start)}
		arm.Expr = p.readExpr("then")
		if hidden != "" {
			arm.Expr.Query = fmt.Sprintf("\"%s\" IN (%s)", hidden, arm.Expr.Query)
		}
		p.expectWord("then")
		arm.Stmts = p.parseStmtList("when", "else", "end")
		s.Whens = append(s.Whens, arm)
	}
	if len(s.Whens) == 0 {
		p.syntaxError()
	}
	if p.acceptWord("else") {
		s.HaveElse = true
		s.Else = p.parseStmtList("end")
	}
	p.expectWord("end", "case")
	p.expectChar(';')
	return s
}

// ---------- Loops ----------

// parseLoopBody parses stmts END LOOP [label] ; inside a loop scope.
func (p *bodyParser) parseLoopBody(label string) []Stmt {
	body := p.parseStmtList("end")
	p.expectWord("end", "loop")
	p.parseEndLabel(label)
	p.expectChar(';')
	return body
}

func (p *bodyParser) parseLoop(label string) Stmt {
	kw := p.expectWord("loop")
	p.pushScope(label, true)
	defer p.popScope()
	return &Loop{Lineno: p.lineno(kw.Start), Label: label, Body: p.parseLoopBody(label)}
}

func (p *bodyParser) parseWhile(label string) Stmt {
	kw := p.expectWord("while")
	s := &While{Lineno: p.lineno(kw.Start), Label: label}
	s.Cond = p.readExpr("loop")
	p.expectWord("loop")
	p.pushScope(label, true)
	defer p.popScope()
	s.Body = p.parseLoopBody(label)
	return s
}

// parseFor parses the integer, query, cursor and dynamic FOR loops.
func (p *bodyParser) parseFor(label string) Stmt {
	kw := p.expectWord("for")
	lineno := p.lineno(kw.Start)
	targetStart := p.pos
	var targets []token.Token
	for {
		targets = append(targets, p.expectName())
		if !p.acceptChar(',') {
			break
		}
	}
	p.expectWord("in")

	p.pushScope(label, true)
	defer p.popScope()

	if p.acceptWord("execute") {
		s := &DynFors{Lineno: lineno, Label: label}
		s.Query = p.readExpr("using", "loop")
		if p.acceptWord("using") {
			s.Params = p.readExprList("loop")
		}
		s.Var = p.rowTarget(targets)
		p.expectWord("loop")
		s.Body = p.parseLoopBody(label)
		return s
	}

	if len(targets) == 1 && isName(p.cur()) {
		if dno, ok := p.ns.lookup(p.cur().Value); ok && isCursor(p.fn.Datums[dno]) {
			p.advance()
			s := &ForC{Lineno: lineno, Label: label, Curvar: dno}
			if p.isChar('(') {
				s.Argquery = p.readCursorArgs()
			}
			rec := &Rec{Refname: targets[0].Value, Lineno: p.lineno(targets[0].Start)}
			p.addRec(rec)
			s.Var = rec
			p.expectWord("loop")
			s.Body = p.parseLoopBody(label)
			return s
		}
	}

	reverse := false
	if p.isWord("reverse") {
		reverse = true
		p.advance()
	}
	first := p.collect("..", "loop")
	if p.cur().Kind == token.DOT_DOT {
		if len(targets) != 1 {
			p.syntaxErrorAt(p.toks[targetStart])
		}
		if first.empty() {
			p.errorAt(p.cur().Start, ErrMissingExpression)
		}
		s := &ForI{Lineno: lineno, Label: label, Reverse: reverse}
		s.Lower = p.exprOf(first)
		p.advance()
		s.Upper = p.readExpr("by", "loop")
		if p.acceptWord("by") {
			s.Step = p.readExpr("loop")
		}
		v := &Var{Refname: targets[0].Value, Lineno: p.lineno(targets[0].Start), Datatype: &Type{Typname: "integer"}}
		p.addVar(v)
		s.Var = v
		p.expectWord("loop")
		s.Body = p.parseLoopBody(label)
		return s
	}
	if reverse {
		p.syntaxErrorAt(p.toks[first.first-1])
	}
	if first.empty() {
		p.syntaxError()
	}
	s := &ForS{Lineno: lineno, Label: label}
	start := p.spanStart(first)
	text := p.spanText(first)
	p.check(text, 0, func(off int) int { return start + off })
	s.Query = &Expr{Query: text, ParseMode: ParseDefault}
	s.Var = p.rowTarget(targets)
	p.expectWord("loop")
	s.Body = p.parseLoopBody(label)
	return s
}

// readCursorArgs reads (args) of a bound cursor as a SELECT.
func (p *bodyParser) readCursorArgs() *Expr {
	p.expectChar('(')
	args := p.collect(")")
	if args.empty() {
		p.syntaxError()
	}
	p.expectChar(')')
	text := p.spanText(args)
	start := p.spanStart(args)
	p.check("SELECT "+text, len("SELECT "), func(off int) int { return start + off })
	return &Expr{Query: "SELECT " + text, ParseMode: ParseDefault}
}

func (p *bodyParser) parseForeach(label string) Stmt {
	kw := p.expectWord("foreach")
	s := &ForEachA{Lineno: p.lineno(kw.Start), Label: label}
	var targets []token.Token
	for {
		targets = append(targets, p.expectName())
		if !p.acceptChar(',') {
			break
		}
	}
	if len(targets) == 1 {
		s.Varno = p.resolve(targets[0])
	} else {
		s.Varno = p.addDatum(p.scalarRow(targets))
	}
	if p.acceptWord("slice") {
		n := p.cur()
		if n.Kind != token.ICONST {
			p.syntaxError()
		}
		p.advance()
		s.Slice, _ = strconv.Atoi(n.Value)
	}
	p.expectWord("in", "array")
	s.Expr = p.readExpr("loop")
	p.expectWord("loop")
	p.pushScope(label, true)
	defer p.popScope()
	s.Body = p.parseLoopBody(label)
	return s
}

// ---------- Targets ----------

// rowTarget resolves a loop or INTO target: a single record is used
// as is, scalars are gathered into a new row.
func (p *bodyParser) rowTarget(names []token.Token) Datum {
	if len(names) == 1 {
		dno, ok := p.ns.lookup(names[0].Value)
		if !ok {
			p.errorAt(names[0].Start, ErrLoopVariable)
		}
		switch d := p.fn.Datums[dno].(type) {
		case *Rec, *Row:
			return d
		}
	}
	row := p.scalarRow(names)
	p.addDatum(row)
	return row
}

func (p *bodyParser) scalarRow(names []token.Token) *Row {
	row := &Row{Refname: "(unnamed row)", Lineno: p.lineno(names[0].Start)}
	for _, n := range names {
		dno := p.resolve(n)
		if _, ok := p.fn.Datums[dno].(*Var); !ok {
			p.errorAt(n.Start, ErrLoopVariable)
		}
		row.Fields = append(row.Fields, RowField{Name: n.Value, Varno: dno})
	}
	return row
}

// parseInto reads INTO [STRICT] target[, ...] after the INTO keyword.
func (p *bodyParser) parseInto() (Datum, bool) {
	strict := p.acceptWord("strict")
	var names []token.Token
	for {
		names = append(names, p.expectName())
		if !p.acceptChar(',') {
			break
		}
	}
	for _, n := range names {
		p.resolve(n)
	}
	return p.rowTarget(names), strict
}

// ---------- Control Flow ----------

func (p *bodyParser) parseExit() Stmt {
	kw := p.advance()
	s := &Exit{Lineno: p.lineno(kw.Start), IsExit: p.word(kw) == "exit"}
	if isName(p.cur()) && !p.isWord("when") {
		lbl := p.advance()
		target := p.ns.labeled(lbl.Value)
		if target == nil {
			p.errorAt(lbl.Start, fmt.Sprintf(ErrUnknownLabel, lbl.Value))
		}
		if !s.IsExit && !target.isLoop {
			p.errorAt(lbl.Start, fmt.Sprintf(ErrContinueBlockLabel, lbl.Value))
		}
		s.Label = lbl.Value
	} else if !p.ns.inLoop() {
		if s.IsExit {
			p.errorAt(kw.Start, ErrExitOutsideLoop)
		}
		p.errorAt(kw.Start, ErrContinueOutsideLoop)
	}
	if p.acceptWord("when") {
		s.Cond = p.readExpr(";")
	}
	p.expectChar(';')
	return s
}

func (p *bodyParser) parseReturn() Stmt {
	kw := p.expectWord("return")
	lineno := p.lineno(kw.Start)
	switch {
	case p.acceptWord("next"):
		s := &ReturnNext{Lineno: lineno, Expr: p.readOptExpr(";")}
		p.expectChar(';')
		return s
	case p.acceptWord("query"):
		s := &ReturnQuery{Lineno: lineno}
		if p.acceptWord("execute") {
			s.DynQuery = p.readExpr("using", ";")
			if p.acceptWord("using") {
				s.Params = p.readExprList(";")
			}
		} else {
			s.Query = p.readSQL(";")
		}
		p.expectChar(';')
		return s
	}
	s := &Return{Lineno: lineno, Expr: p.readOptExpr(";")}
	p.expectChar(';')
	return s
}

var raiseLevels = map[string]int{
	"debug":     LevelDebug,
	"log":       LevelLog,
	"info":      LevelInfo,
	"notice":    LevelNotice,
	"warning":   LevelWarning,
	"exception": LevelException,
}

func (p *bodyParser) parseRaise() Stmt {
	kw := p.expectWord("raise")
	s := &Raise{Lineno: p.lineno(kw.Start), ElogLevel: LevelException}
	if p.acceptChar(';') {
		return s
	}
	if lvl, ok := raiseLevels[p.word(p.cur())]; ok {
		s.ElogLevel = lvl
		p.advance()
	}
	switch tok := p.cur(); {
	case tok.Kind == token.SCONST:
		p.advance()
		s.Message = tok.Value
		if p.acceptChar(',') {
			s.Params = p.readExprList("using", ";")
		}
		if want := countPlaceholders(s.Message); want != len(s.Params) {
			if want > len(s.Params) {
				p.errorAt(tok.Start, ErrRaiseTooFew)
			}
			p.errorAt(tok.Start, ErrRaiseTooMany)
		}
	case p.isWord("sqlstate"):
		p.advance()
		code := p.cur()
		if code.Kind != token.SCONST {
			p.syntaxError()
		}
		p.advance()
		if !validSQLState(code.Value) {
			p.errorAt(code.Start, ErrInvalidSQLState)
		}
		s.Condname = code.Value
	case p.isWord("using") || p.isChar(';'):
	case isName(tok):
		p.advance()
		s.Condname = tok.Value
	default:
		p.syntaxError()
	}
	if p.acceptWord("using") {
		for {
			opt := p.expectName()
			typ, ok := raiseOptions[opt.Value]
			if !ok {
				p.errorAt(opt.Start, fmt.Sprintf(ErrRaiseOption, opt.Value))
			}
			if p.cur().Kind != token.COLON_EQUALS && !p.isChar('=') {
				p.syntaxError()
			}
			p.advance()
			s.Options = append(s.Options, &RaiseOption{OptType: typ, Expr: p.readExpr(",", ";")})
			if !p.acceptChar(',') {
				break
			}
		}
	}
	p.expectChar(';')
	return s
}

// countPlaceholders counts % markers in a RAISE format; %% is a literal.
func countPlaceholders(format string) int {
	n := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			i++
			continue
		}
		n++
	}
	return n
}

func (p *bodyParser) parseAssert() Stmt {
	kw := p.expectWord("assert")
	s := &Assert{Lineno: p.lineno(kw.Start)}
	s.Cond = p.readExpr(",", ";")
	if p.acceptChar(',') {
		s.Message = p.readExpr(";")
	}
	p.expectChar(';')
	return s
}

// parsePerform turns PERFORM query into SELECT query, keeping offsets.
func (p *bodyParser) parsePerform() Stmt {
	kw := p.expectWord("perform")
	rest := p.collect(";")
	if rest.empty() {
		p.syntaxError()
	}
	query := " SELECT" + p.src[kw.End:p.toks[rest.last-1].End]
	p.check(query, 0, func(off int) int { return kw.Start + off })
	p.expectChar(';')
	return &Perform{Lineno: p.lineno(kw.Start), Expr: &Expr{Query: query, ParseMode: ParseDefault}}
}

func (p *bodyParser) parseCall() Stmt {
	kw := p.cur()
	s := &Call{Lineno: p.lineno(kw.Start), IsCall: p.word(kw) == "call"}
	s.Expr = p.readSQL(";")
	p.expectChar(';')
	return s
}

func (p *bodyParser) parseTransaction() Stmt {
	kw := p.advance()
	chain := false
	if p.acceptWord("and") {
		chain = !p.acceptWord("no")
		p.expectWord("chain")
	}
	p.expectChar(';')
	if p.word(kw) == "commit" {
		return &Commit{Lineno: p.lineno(kw.Start), Chain: chain}
	}
	return &Rollback{Lineno: p.lineno(kw.Start), Chain: chain}
}

// ---------- SQL Statements ----------

// parseExecSQL reads an embedded SQL statement. A top level INTO clause
// is taken out and replaced by spaces so offsets still line up.
func (p *bodyParser) parseExecSQL() Stmt {
	first := p.cur()
	s := &ExecSQL{Lineno: p.lineno(first.Start)}
	firstWord := p.word(first)

	var b strings.Builder
	copied := first.Start
	depth, cases := 0, 0
	var prev token.Token
	for {
		tok := p.cur()
		if tok.Kind == token.EOF {
			p.syntaxError()
		}
		if depth == 0 && cases == 0 && tok.IsChar(';') {
			break
		}
		w := p.word(tok)
		switch {
		case tok.IsChar('(') || tok.IsChar('['):
			depth++
		case tok.IsChar(')') || tok.IsChar(']'):
			depth--
		case w == "case":
			cases++
		case w == "end" && cases > 0:
			cases--
		case w == "into" && depth == 0 && firstWord != "import" &&
			p.word(prev) != "insert" && p.word(prev) != "merge":
			if s.Into {
				p.errorAt(tok.Start, ErrIntoTwice)
			}
			p.advance()
			s.Target, s.Strict = p.parseInto()
			s.Into = true
			b.WriteString(p.src[copied:tok.Start])
			b.WriteString(strings.Repeat(" ", p.toks[p.pos-1].End-tok.Start))
			copied = p.toks[p.pos-1].End
			prev = p.toks[p.pos-1]
			continue
		}
		prev = p.advance()
	}
	if p.pos == 0 || p.toks[p.pos-1].End <= first.Start {
		p.syntaxError()
	}
	b.WriteString(p.src[copied:p.toks[p.pos-1].End])
	query := b.String()
	p.check(query, 0, func(off int) int { return first.Start + off })
	p.expectChar(';')
	s.SQLStmt = &Expr{Query: query, ParseMode: ParseDefault}
	return s
}

func (p *bodyParser) parseDynExecute() Stmt {
	kw := p.expectWord("execute")
	s := &DynExecute{Lineno: p.lineno(kw.Start)}
	s.Query = p.readExpr("into", "using", ";")
	for !p.isChar(';') {
		switch {
		case p.isWord("into"):
			if s.Into {
				p.errorAt(p.cur().Start, ErrIntoTwice)
			}
			p.advance()
			s.Target, s.Strict = p.parseInto()
			s.Into = true
		case p.isWord("using"):
			if s.Params != nil {
				p.errorAt(p.cur().Start, ErrUsingTwice)
			}
			p.advance()
			s.Params = p.readExprList("into", ";")
		default:
			p.syntaxError()
		}
	}
	p.expectChar(';')
	return s
}

func (p *bodyParser) parseGetDiag() Stmt {
	kw := p.expectWord("get")
	s := &GetDiag{Lineno: p.lineno(kw.Start)}
	switch {
	case p.acceptWord("stacked"):
		s.IsStacked = true
	case p.acceptWord("current"):
	}
	p.expectWord("diagnostics")
	for {
		target := p.expectName()
		varno := p.resolve(target)
		if p.cur().Kind != token.COLON_EQUALS && !p.isChar('=') {
			p.syntaxError()
		}
		p.advance()
		itemTok := p.expectName()
		kind, ok := diagItems[itemTok.Value]
		if !ok {
			p.errorAt(itemTok.Start, ErrDiagItem)
		}
		currentOnly := kind == DiagRowCount || kind == DiagRoutineOid
		stackedOnly := kind != DiagRowCount && kind != DiagRoutineOid && kind != DiagContext
		if s.IsStacked && currentOnly {
			p.errorAt(itemTok.Start, fmt.Sprintf(ErrDiagNotInStacked, strings.ToUpper(itemTok.Value)))
		}
		if !s.IsStacked && stackedOnly {
			p.errorAt(itemTok.Start, fmt.Sprintf(ErrDiagNotInCurrent, strings.ToUpper(itemTok.Value)))
		}
		s.Items = append(s.Items, DiagItem{Kind: kind, Target: varno})
		if !p.acceptChar(',') {
			break
		}
	}
	p.expectChar(';')
	return s
}

// ---------- Cursors ----------

// cursorVar resolves a cursor variable name.
func (p *bodyParser) cursorVar() (int, *Var) {
	tok := p.expectName()
	dno := p.resolve(tok)
	if !isCursor(p.fn.Datums[dno]) {
		p.errorAt(tok.Start, fmt.Sprintf(ErrNotCursor, tok.Value))
	}
	return dno, p.fn.Datums[dno].(*Var)
}

func (p *bodyParser) parseOpen() Stmt {
	kw := p.expectWord("open")
	s := &Open{Lineno: p.lineno(kw.Start), CursorOptions: cursorOptFastPlan}
	var cur *Var
	s.Curvar, cur = p.cursorVar()
	if cur.CursorExplicitExpr != nil {
		if p.isChar('(') {
			s.Argquery = p.readCursorArgs()
		}
		p.expectChar(';')
		return s
	}
	switch {
	case p.acceptWord("no", "scroll"):
		s.CursorOptions |= cursorOptNoScroll
	case p.acceptWord("scroll"):
		s.CursorOptions |= cursorOptScroll
	}
	p.expectWord("for")
	if p.acceptWord("execute") {
		s.DynQuery = p.readExpr("using", ";")
		if p.acceptWord("using") {
			s.Params = p.readExprList(";")
		}
	} else {
		s.Query = p.readSQL(";")
	}
	p.expectChar(';')
	return s
}

// parseFetch parses FETCH and MOVE with their direction clause.
func (p *bodyParser) parseFetch() Stmt {
	kw := p.advance()
	s := &Fetch{Lineno: p.lineno(kw.Start), IsMove: p.word(kw) == "move", HowMany: 1}
	directed := true
	switch p.word(p.cur()) {
	case "next":
		p.advance()
	case "prior":
		p.advance()
		s.Direction = FetchBackward
	case "first":
		p.advance()
		s.Direction = FetchAbsolute
	case "last":
		p.advance()
		s.Direction = FetchAbsolute
		s.HowMany = -1
	case "absolute", "relative":
		if p.word(p.advance()) == "absolute" {
			s.Direction = FetchAbsolute
		} else {
			s.Direction = FetchRelative
		}
		s.Expr = p.readExpr("from", "in")
	case "all":
		p.advance()
		s.HowMany = FetchAll
		s.ReturnsMultipleRows = true
	case "forward", "backward":
		if p.word(p.advance()) == "backward" {
			s.Direction = FetchBackward
		}
		switch {
		case p.acceptWord("all"):
			s.HowMany = FetchAll
			s.ReturnsMultipleRows = true
		case p.isAnyWord("from", "in"):
		case p.isNextCursor():
			directed = false
		default:
			s.Expr = p.readExpr("from", "in")
			s.ReturnsMultipleRows = true
		}
	default:
		if p.isNextCursor() {
			directed = false
		} else {
			s.Expr = p.readExpr("from", "in")
		}
	}
	if directed && !p.acceptWord("from") {
		p.acceptWord("in")
	}
	s.Curvar, _ = p.cursorVar()
	if !s.IsMove {
		if s.ReturnsMultipleRows {
			p.errorAt(kw.Start, ErrFetchMultiple)
		}
		p.expectWord("into")
		s.Target, _ = p.parseInto()
	}
	p.expectChar(';')
	return s
}

// isNextCursor reports whether the next token names a cursor variable
// directly followed by INTO or a semicolon.
func (p *bodyParser) isNextCursor() bool {
	tok := p.cur()
	if !isName(tok) {
		return false
	}
	dno, ok := p.ns.lookup(tok.Value)
	if !ok || !isCursor(p.fn.Datums[dno]) {
		return false
	}
	next := p.peekAt(1)
	return next.IsChar(';') || p.word(next) == "into"
}

func (p *bodyParser) parseClose() Stmt {
	kw := p.expectWord("close")
	s := &Close{Lineno: p.lineno(kw.Start)}
	s.Curvar, _ = p.cursorVar()
	p.expectChar(';')
	return s
}
