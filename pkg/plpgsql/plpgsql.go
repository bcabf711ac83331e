// Package plpgsql parses PL/pgSQL function bodies into a block tree.
//
// The body is tokenized with the SQL scanner and parsed by a small
// recursive descent parser for the procedural statements. Every embedded
// expression and SQL statement is kept as text in an Expr and checked with
// the grammar parser, so errors carry positions relative to the body.
//
// # Usage
//
//	fn, err := plpgsql.ParseBody("BEGIN RETURN a + b; END", plpgsql.WithParams(
//	    plpgsql.Param{Name: "a", Type: "integer"},
//	    plpgsql.Param{Name: "b", Type: "integer"},
//	))
//	m := fn.ToMap() // {"PLpgSQL_function": {...}}
package plpgsql

import (
	"context"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/pgparse/pkg/ast"
	"github.com/leapstack-labs/pgparse/pkg/parser"
)

// ParseMode says how an embedded expression is parsed, numbered as
// PostgreSQL's RawParseMode.
type ParseMode int

const (
	ParseDefault  ParseMode = iota // a complete SQL statement
	ParseTypeName                  // a type name
	ParseExpr                      // an expression, checked as SELECT <expr>
	ParseAssign1                   // var := expr
	ParseAssign2                   // a.b := expr
	ParseAssign3                   // a.b.c := expr
)

// Expr is an embedded SQL expression or statement.
type Expr struct {
	Query     string
	ParseMode ParseMode
}

// Function is a parsed function body. Datums are addressed by index
// (dno); datum 0 is the implicit "found" variable.
type Function struct {
	Datums   []Datum
	Action   *Block
	NewVarno int // trigger functions only
	OldVarno int // trigger functions only
}

// Param describes a function parameter visible in the body. Unnamed
// parameters are only reachable as $n.
type Param struct {
	Name string
	Type string
}

type config struct {
	params     []Param
	trigger    bool
	logger     *slog.Logger
	parserOpts []parser.Option
}

// Option configures ParseBody.
type Option func(*config)

// WithParams declares the function parameters in order.
func WithParams(params ...Param) Option {
	return func(c *config) {
		c.params = append(c.params, params...)
	}
}

// WithTrigger declares the trigger variables NEW, OLD and TG_*.
func WithTrigger() Option {
	return func(c *config) {
		c.trigger = true
	}
}

// WithLogger sets the logger for debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithParserOptions passes options to the grammar parser used for
// embedded SQL and, in ParseFunctions, for the enclosing statements.
func WithParserOptions(opts ...parser.Option) Option {
	return func(c *config) {
		c.parserOpts = append(c.parserOpts, opts...)
	}
}

// ParseBody parses a PL/pgSQL function body. Errors are *parser.ParseError
// with locations relative to the start of body.
func ParseBody(body string, opts ...Option) (*Function, error) {
	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	p, err := newParser(body, &cfg)
	if err != nil {
		return nil, err
	}
	fn, err := p.run()
	if err != nil {
		cfg.logger.Debug("plpgsql parse failed", "error", err)
		return nil, err
	}
	if cfg.logger.Enabled(context.Background(), slog.LevelDebug) {
		cfg.logger.Debug("parsed plpgsql body", "datums", len(fn.Datums), "statements", len(fn.Action.Body))
	}
	return fn, nil
}

// ParseFunctions parses sql with the grammar parser and then the body of
// every PL/pgSQL function, procedure and DO block in it. Each result is
// the ToMap form of one body, in statement order.
func ParseFunctions(sql string, opts ...Option) ([]map[string]any, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	stmts, err := parser.Parse(sql, cfg.parserOpts...)
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	for _, raw := range stmts {
		body, fnOpts, ok := functionBody(raw.Stmt)
		if !ok {
			continue
		}
		fn, err := ParseBody(body, append(fnOpts, opts...)...)
		if err != nil {
			return nil, err
		}
		out = append(out, fn.ToMap())
	}
	return out, nil
}

// functionBody extracts the PL/pgSQL body of a CREATE FUNCTION or DO
// statement along with the options describing its parameters.
func functionBody(stmt ast.Node) (string, []Option, bool) {
	switch n := stmt.(type) {
	case *ast.CreateFunctionStmt:
		var body, lang string
		for _, o := range n.Options {
			def := o.(*ast.DefElem)
			switch def.Defname {
			case "language":
				lang = stringArg(def.Arg)
			case "as":
				if list, ok := def.Arg.(*ast.List); ok && len(list.Items) > 0 {
					body = stringArg(list.Items[0])
				}
			}
		}
		if !strings.EqualFold(lang, "plpgsql") || n.SQLBody != nil {
			return "", nil, false
		}
		var opts []Option
		for _, p := range n.Parameters {
			fp := p.(*ast.FunctionParameter)
			if fp.Mode == ast.FUNC_PARAM_TABLE {
				continue
			}
			opts = append(opts, WithParams(Param{Name: fp.Name, Type: typeString(fp.ArgType)}))
		}
		if n.ReturnType != nil && typeString(n.ReturnType) == "trigger" {
			opts = append(opts, WithTrigger())
		}
		return body, opts, true
	case *ast.DoStmt:
		var body string
		lang := "plpgsql"
		for _, a := range n.Args {
			def := a.(*ast.DefElem)
			switch def.Defname {
			case "language":
				lang = stringArg(def.Arg)
			case "as":
				body = stringArg(def.Arg)
			}
		}
		return body, nil, strings.EqualFold(lang, "plpgsql")
	}
	return "", nil, false
}

func stringArg(n ast.Node) string {
	if s, ok := n.(*ast.String); ok {
		return s.Sval
	}
	return ""
}

// typeString renders a type name as its dotted name with array marks.
func typeString(tn *ast.TypeName) string {
	if tn == nil {
		return ""
	}
	parts := make([]string, 0, len(tn.Names))
	for _, n := range tn.Names {
		if s, ok := n.(*ast.String); ok && s.Sval != "pg_catalog" {
			parts = append(parts, s.Sval)
		}
	}
	name := strings.Join(parts, ".")
	if tn.PctType {
		name += "%TYPE"
	}
	return name + strings.Repeat("[]", len(tn.ArrayBounds))
}

// ToMap returns the function as {"PLpgSQL_function": {...}} with one
// single-key map per datum and statement.
func (f *Function) ToMap() map[string]any {
	datums := make([]any, len(f.Datums))
	for i, d := range f.Datums {
		datums[i] = datumMap(d)
	}
	m := fields{}
	m.set("new_varno", f.NewVarno)
	m.set("old_varno", f.OldVarno)
	m["datums"] = datums
	m["action"] = stmtMap(f.Action)
	return map[string]any{"PLpgSQL_function": map[string]any(m)}
}

func (e *Expr) toMap() map[string]any {
	return map[string]any{"PLpgSQL_expr": map[string]any{
		"query":     e.Query,
		"parseMode": int(e.ParseMode),
	}}
}

// fields holds the members of one node map. Zero values are left out.
type fields map[string]any

func (m fields) set(key string, v any) {
	switch x := v.(type) {
	case nil:
		return
	case string:
		if x == "" {
			return
		}
	case int:
		if x == 0 {
			return
		}
	case bool:
		if !x {
			return
		}
	case *Expr:
		if x == nil {
			return
		}
		v = x.toMap()
	case []Stmt:
		if len(x) == 0 {
			return
		}
		v = stmtList(x)
	case []*Expr:
		if len(x) == 0 {
			return
		}
		list := make([]any, len(x))
		for i, e := range x {
			list[i] = e.toMap()
		}
		v = list
	case []any:
		if len(x) == 0 {
			return
		}
	case Datum:
		if x == nil {
			return
		}
		v = datumMap(x)
	}
	m[key] = v
}

func stmtList(stmts []Stmt) []any {
	out := make([]any, len(stmts))
	for i, s := range stmts {
		out[i] = stmtMap(s)
	}
	return out
}
