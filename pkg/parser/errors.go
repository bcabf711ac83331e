package parser

import (
	"fmt"

	"github.com/leapstack-labs/pgparse/pkg/token"
)

// ParseError reports the first error found in the input. Location is the
// 1-based byte position of the offending token, len(input)+1 for a
// premature end of input, or 0 when the error has no position.
type ParseError struct {
	Message  string
	Location int
	Token    string // source text of the offending token
	Err      error  // underlying *scanner.LexError, if any
}

func (e *ParseError) Error() string {
	if e.Location > 0 {
		return fmt.Sprintf("%s, at location %d", e.Message, e.Location)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Position converts Location into a line and column of sql, the input
// that produced the error.
func (e *ParseError) Position(sql string) token.Position {
	if e.Location <= 0 {
		return token.Position{}
	}
	return token.Locate(sql, e.Location-1)
}

// Common error messages
const (
	ErrSyntaxNear  = "syntax error at or near \"%s\""
	ErrSyntaxEOF   = "syntax error at end of input"
	ErrStackDepth  = "stack depth limit exceeded"
	ErrUEscapeChar = "invalid Unicode escape character"

	ErrMultipleOrderBy      = "multiple ORDER BY clauses not allowed"
	ErrMultipleLimit        = "multiple LIMIT clauses not allowed"
	ErrMultipleOffset       = "multiple OFFSET clauses not allowed"
	ErrMultipleWith         = "multiple WITH clauses not allowed"
	ErrMultipleLimitOptions = "multiple limit options not allowed"
	ErrWithTiesNoOrder      = "WITH TIES cannot be specified without ORDER BY clause"
	ErrLimitComma           = "LIMIT #,# syntax is not supported"

	ErrWithinGroupOrder    = "cannot use multiple ORDER BY clauses with WITHIN GROUP"
	ErrWithinGroupDistinct = "cannot use DISTINCT with WITHIN GROUP"
	ErrWithinGroupVariadic = "cannot use VARIADIC with WITHIN GROUP"

	ErrPrecisionTooSmall = "precision for type float must be at least 1 bit"
	ErrPrecisionTooLarge = "precision for type float must be less than 54 bits"
	ErrImproperQualified = "improper qualified name (too many dotted names): %s"

	ErrFrameStartFollowing     = "frame start cannot be UNBOUNDED FOLLOWING"
	ErrFrameEndPreceding       = "frame end cannot be UNBOUNDED PRECEDING"
	ErrFrameStartAfterEnd      = "frame starting from following row cannot end with current row"
	ErrFrameCurrentPreceding   = "frame starting from current row cannot have preceding rows"
	ErrFrameFollowingPreceding = "frame starting from following row cannot have preceding rows"

	ErrGeneratedAlways   = "for a generated column, GENERATED ALWAYS must be specified"
	ErrPartitionStrategy = "unrecognized partitioning strategy \"%s\""
	ErrCopyFromProgram   = "STDIN/STDOUT not allowed with PROGRAM"
)
