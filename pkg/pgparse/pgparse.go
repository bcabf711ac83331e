// Package pgparse parses PostgreSQL 16 SQL text and PL/pgSQL function
// bodies.
//
// The package level functions use default options. An Engine bundles
// options loaded from configuration and adds batch helpers.
//
// # Usage
//
//	stmts, err := pgparse.Parse("SELECT a FROM t WHERE b = 1")
//	if err != nil {
//	    var perr *parser.ParseError
//	    if errors.As(err, &perr) {
//	        fmt.Println(perr.Location)
//	    }
//	}
//
//	fp, _ := pgparse.Fingerprint("SELECT a FROM t WHERE b = 2") // same as b = 1
package pgparse

import (
	"github.com/leapstack-labs/pgparse/pkg/ast"
	"github.com/leapstack-labs/pgparse/pkg/plpgsql"
	"github.com/leapstack-labs/pgparse/pkg/splitter"
	"github.com/leapstack-labs/pgparse/pkg/token"
)

// PostgreSQL grammar version targeted by the parser.
const (
	MajorVersion = 16
	MinorVersion = 0
)

// Version returns the PostgreSQL major and minor version whose grammar is
// implemented.
func Version() (major, minor int) {
	return MajorVersion, MinorVersion
}

var defaultEngine = mustDefaultEngine()

func mustDefaultEngine() *Engine {
	e, err := New(DefaultOptions())
	if err != nil {
		panic(err)
	}
	return e
}

// Parse parses sql into one RawStmt per statement. Errors are
// *parser.ParseError; lexical errors wrap a *scanner.LexError.
func Parse(sql string) ([]*ast.RawStmt, error) {
	return defaultEngine.Parse(sql)
}

// ParsePLpgSQL parses every PL/pgSQL function, procedure and DO block in
// sql and returns the body trees as maps keyed by "PLpgSQL_function".
func ParsePLpgSQL(sql string) ([]map[string]any, error) {
	return defaultEngine.ParsePLpgSQL(sql)
}

// ParsePLpgSQLBody parses a bare PL/pgSQL body.
func ParsePLpgSQLBody(body string, opts ...plpgsql.Option) (*plpgsql.Function, error) {
	return defaultEngine.ParsePLpgSQLBody(body, opts...)
}

// Fingerprint returns the 16 hex digit fingerprint of sql. Invalid input
// fails with the same error as Parse.
func Fingerprint(sql string) (string, error) {
	return defaultEngine.Fingerprint(sql)
}

// Scan tokenizes sql, comments included.
func Scan(sql string) ([]token.Token, error) {
	return defaultEngine.Scan(sql)
}

// Split cuts sql into statements. With onlySlices the byte ranges are
// returned and the strings are nil; otherwise the reverse.
func Split(sql string, onlySlices bool) ([]string, []splitter.Range, error) {
	return defaultEngine.Split(sql, onlySlices)
}

// SplitStrings returns the text of every statement in sql.
func SplitStrings(sql string) ([]string, error) {
	return defaultEngine.SplitStrings(sql)
}

// SplitSlices returns the byte range of every statement in sql.
func SplitSlices(sql string) ([]splitter.Range, error) {
	return defaultEngine.SplitSlices(sql)
}
