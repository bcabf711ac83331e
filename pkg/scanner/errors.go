package scanner

import "fmt"

// Lexer error messages.
const (
	ErrUnterminatedComment      = "unterminated /* comment"
	ErrUnterminatedString       = "unterminated quoted string"
	ErrUnterminatedIdentifier   = "unterminated quoted identifier"
	ErrUnterminatedDollar       = "unterminated dollar-quoted string"
	ErrUnterminatedBitString    = "unterminated bit string literal"
	ErrUnterminatedHexString    = "unterminated hexadecimal string literal"
	ErrZeroLengthIdentifier     = "zero-length delimited identifier"
	ErrTrailingJunkNumber       = "trailing junk after numeric literal"
	ErrTrailingJunkParam        = "trailing junk after parameter"
	ErrInvalidHexInteger        = "invalid hexadecimal integer"
	ErrInvalidOctalInteger      = "invalid octal integer"
	ErrInvalidBinaryInteger     = "invalid binary integer"
	ErrInvalidUnicodeEscape     = "invalid Unicode escape value"
	ErrInvalidUnicodeSurrogate  = "invalid Unicode surrogate pair"
	ErrInvalidUnicodeEscapeSeq  = "invalid Unicode escape"
	ErrInvalidUnicodeEscapeChar = "invalid Unicode escape character"
	ErrInvalidByteSequence      = "invalid byte sequence for encoding \"UTF8\""
)

// LexError is returned when the input cannot be tokenized.
type LexError struct {
	Message string
	Offset  int    // 0-based byte offset of the offending token
	Near    string // source text at the error; empty at end of input
}

// Summary renders the message with the offending text but without the
// location.
func (e *LexError) Summary() string {
	if e.Near == "" {
		return fmt.Sprintf("%s at end of input", e.Message)
	}
	return fmt.Sprintf("%s at or near \"%s\"", e.Message, e.Near)
}

// Error renders Summary followed by the 1-based location, in the same
// form as a parse error.
func (e *LexError) Error() string {
	return fmt.Sprintf("%s, at location %d", e.Summary(), e.Offset+1)
}
