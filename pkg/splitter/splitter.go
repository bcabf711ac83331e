// Package splitter cuts SQL text into statements without parsing it.
//
// Statements are separated by top level semicolons found by the scanner,
// so semicolons inside literals, quoted identifiers, dollar quotes and
// comments never split. Semicolons inside BEGIN ATOMIC ... END bodies are
// kept as well.
package splitter

import (
	"errors"

	"github.com/leapstack-labs/pgparse/pkg/scanner"
	"github.com/leapstack-labs/pgparse/pkg/token"
)

// Range is the byte range [Start, End) of one statement.
type Range = token.Span

// Slices returns the range of every non-empty statement in sql. A range
// starts at the statement's first token and ends after its last token,
// so leading and trailing whitespace and comments are excluded. Lexical
// errors are returned as *scanner.LexError.
func Slices(sql string, opts ...scanner.Option) ([]Range, error) {
	s := scanner.New(sql, opts...)
	var (
		out   []Range
		cur   = Range{Start: -1}
		depth int
		prev  token.Token
	)
	flush := func() {
		if cur.Start >= 0 {
			out = append(out, cur)
		}
		cur = Range{Start: -1}
		depth = 0
	}
	for {
		tok, err := s.Next()
		if err != nil {
			var lexErr *scanner.LexError
			if errors.As(err, &lexErr) {
				return nil, lexErr
			}
			return nil, err
		}
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind.IsComment() {
			continue
		}
		if tok.IsChar(';') && depth == 0 {
			flush()
			prev = tok
			continue
		}
		switch {
		case tok.IsKeyword("atomic") && prev.IsKeyword("begin"):
			depth++
		case tok.IsKeyword("case") && depth > 0:
			depth++
		case tok.IsKeyword("end") && depth > 0:
			depth--
		}
		if cur.Start < 0 {
			cur.Start = tok.Start
		}
		cur.End = tok.End
		prev = tok
	}
	flush()
	return out, nil
}

// Split returns the text of every non-empty statement in sql. Each
// string equals sql[r.Start:r.End] for the matching range of Slices.
func Split(sql string, opts ...scanner.Option) ([]string, error) {
	ranges, err := Slices(sql, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(ranges))
	for i, r := range ranges {
		out[i] = sql[r.Start:r.End]
	}
	return out, nil
}
