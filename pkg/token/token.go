// Package token defines the lexical tokens of the PostgreSQL SQL dialect.
//
// Single-character tokens use their byte value as Kind (1-255), mirroring the
// grammar's convention. Named tokens start at 258 and keywords are allocated
// after keywordBase in keyword table order.
package token

import (
	"fmt"
	"strings"
)

// Kind identifies the grammar symbol of a token.
type Kind int32

//nolint:revive // grammar symbol names are intentionally ALL_CAPS
const (
	// EOF marks the end of the input.
	EOF Kind = 0

	IDENT Kind = iota + 257
	UIDENT
	FCONST
	SCONST
	USCONST
	BCONST
	XCONST
	Op
	ICONST
	PARAM
	TYPECAST
	DOT_DOT
	COLON_EQUALS
	EQUALS_GREATER
	LESS_EQUALS
	GREATER_EQUALS
	NOT_EQUALS
	SQL_COMMENT
	C_COMMENT

	keywordBase Kind = 1000
)

var namedKinds = map[Kind]string{
	EOF:            "EOF",
	IDENT:          "IDENT",
	UIDENT:         "UIDENT",
	FCONST:         "FCONST",
	SCONST:         "SCONST",
	USCONST:        "USCONST",
	BCONST:         "BCONST",
	XCONST:         "XCONST",
	Op:             "Op",
	ICONST:         "ICONST",
	PARAM:          "PARAM",
	TYPECAST:       "TYPECAST",
	DOT_DOT:        "DOT_DOT",
	COLON_EQUALS:   "COLON_EQUALS",
	EQUALS_GREATER: "EQUALS_GREATER",
	LESS_EQUALS:    "LESS_EQUALS",
	GREATER_EQUALS: "GREATER_EQUALS",
	NOT_EQUALS:     "NOT_EQUALS",
	SQL_COMMENT:    "SQL_COMMENT",
	C_COMMENT:      "C_COMMENT",
}

// String returns the grammar name of the token kind.
func (k Kind) String() string {
	if k > 0 && k < 256 {
		return fmt.Sprintf("ASCII_%d", int(k))
	}
	if name, ok := namedKinds[k]; ok {
		return name
	}
	if kw, ok := keywordByKind(k); ok {
		return kw.Token
	}
	return fmt.Sprintf("TOKEN(%d)", int(k))
}

// IsKeyword reports whether the kind is a keyword.
func (k Kind) IsKeyword() bool {
	return k >= keywordBase
}

// IsComment reports whether the kind is one of the comment kinds.
func (k Kind) IsComment() bool {
	return k == SQL_COMMENT || k == C_COMMENT
}

// Char returns the kind used for a single-character token.
func Char(c byte) Kind {
	return Kind(c)
}

// Token is a single lexical token with its byte range in the source.
type Token struct {
	Kind    Kind
	Keyword KeywordKind
	Start   int // 0-based offset of the first byte
	End     int // exclusive end offset
	// Value is the processed token text: downcased identifier or keyword,
	// decoded string body, number text without underscores, operator text.
	Value string
}

// IsKeyword reports whether the token is the given (lower case) keyword.
func (t Token) IsKeyword(name string) bool {
	return t.Kind >= keywordBase && t.Value == name
}

// BareLabel reports whether the token may be used as a column label
// without AS. Identifiers always can.
func (t Token) BareLabel() bool {
	if t.Kind == IDENT {
		return true
	}
	kw, ok := keywordByKind(t.Kind)
	return ok && kw.BareLabel
}

// IsChar reports whether the token is the given single-character token.
func (t Token) IsChar(c byte) bool {
	return t.Kind == Kind(c)
}

// IsOp reports whether the token is an operator with the given text.
func (t Token) IsOp(text string) bool {
	switch t.Kind {
	case Op, LESS_EQUALS, GREATER_EQUALS, NOT_EQUALS:
		return t.Value == text
	}
	return len(text) == 1 && t.Kind == Kind(text[0]) && strings.IndexByte(selfOps, text[0]) >= 0
}

// Text returns the raw source slice covered by the token.
func (t Token) Text(src string) string {
	if t.Start < 0 || t.End > len(src) || t.Start > t.End {
		return ""
	}
	return src[t.Start:t.End]
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%d,%d,%q)", t.Kind, t.Start, t.End, t.Value)
}

// selfOps are the single-character operators returned as their own kind.
const selfOps = "+-*/%^<>="
