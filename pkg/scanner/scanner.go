// Package scanner tokenizes PostgreSQL SQL text.
//
// The scanner works on bytes and reports every token with its byte range in
// the input. Comments are returned as tokens; callers that only want
// grammar symbols filter them out.
package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/pgparse/pkg/token"
)

// NameDataLen bounds identifier length: names are truncated to
// NameDataLen-1 bytes.
const NameDataLen = 64

// Option configures a Scanner.
type Option func(*Scanner)

// WithStandardConformingStrings controls whether backslashes in plain
// '...' literals are literal characters (true, the default) or escapes.
func WithStandardConformingStrings(on bool) Option {
	return func(s *Scanner) {
		s.standardStrings = on
	}
}

// Scanner produces tokens from SQL input.
type Scanner struct {
	input           string
	pos             int // offset of the next unread byte
	standardStrings bool
}

// New creates a Scanner for the given input.
func New(input string, opts ...Option) *Scanner {
	s := &Scanner{input: input, standardStrings: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan tokenizes the whole input, comments included. The EOF token is not
// part of the result.
func Scan(input string, opts ...Option) ([]token.Token, error) {
	s := New(input, opts...)
	var toks []token.Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// Input returns the text being scanned.
func (s *Scanner) Input() string {
	return s.input
}

// peek returns the byte n positions ahead of the cursor, or 0.
func (s *Scanner) peek(n int) byte {
	if s.pos+n >= len(s.input) {
		return 0
	}
	return s.input[s.pos+n]
}

func (s *Scanner) at(i int) byte {
	if i >= len(s.input) {
		return 0
	}
	return s.input[i]
}

// Next returns the next token. At end of input it returns a token of kind
// token.EOF positioned at len(input).
func (s *Scanner) Next() (token.Token, error) {
	s.skipWhitespace()

	start := s.pos
	if start >= len(s.input) {
		return token.Token{Kind: token.EOF, Start: start, End: start}, nil
	}

	ch := s.input[start]
	switch {
	case ch == '-' && s.peek(1) == '-':
		return s.readLineComment(start), nil
	case ch == '/' && s.peek(1) == '*':
		return s.readBlockComment(start)
	case ch == '\'':
		return s.readString(start, start+1, !s.standardStrings)
	case ch == '"':
		return s.readQuotedIdentifier(start, start+1, token.IDENT)
	case ch == '$':
		return s.readDollar(start)
	case isDigit(ch) || (ch == '.' && isDigit(s.peek(1))):
		return s.readNumber(start)
	case ch == '.':
		if s.peek(1) == '.' {
			return s.emit(token.DOT_DOT, start, start+2, ".."), nil
		}
		return s.emit(token.Char('.'), start, start+1, "."), nil
	case ch == ':':
		switch s.peek(1) {
		case ':':
			return s.emit(token.TYPECAST, start, start+2, "::"), nil
		case '=':
			return s.emit(token.COLON_EQUALS, start, start+2, ":="), nil
		}
		return s.emit(token.Char(':'), start, start+1, ":"), nil
	case isIdentStart(ch):
		return s.readWord(start)
	case isOpChar(ch):
		return s.readOperator(start), nil
	default:
		return s.emit(token.Char(ch), start, start+1, string(ch)), nil
	}
}

func (s *Scanner) emit(kind token.Kind, start, end int, value string) token.Token {
	s.pos = end
	return token.Token{Kind: kind, Start: start, End: end, Value: value}
}

func (s *Scanner) errorAt(msg string, start, end int) *LexError {
	if end > len(s.input) {
		end = len(s.input)
	}
	if start >= len(s.input) {
		return &LexError{Message: msg, Offset: start}
	}
	return &LexError{Message: msg, Offset: start, Near: s.input[start:end]}
}

// skipWhitespace advances past spaces, tabs, newlines and form feeds.
func (s *Scanner) skipWhitespace() {
	for s.pos < len(s.input) && isSpace(s.input[s.pos]) {
		s.pos++
	}
}

func (s *Scanner) readLineComment(start int) token.Token {
	i := start + 2
	for i < len(s.input) && s.input[i] != '\n' && s.input[i] != '\r' {
		i++
	}
	return s.emit(token.SQL_COMMENT, start, i, s.input[start:i])
}

// readBlockComment reads a possibly nested /* */ comment.
func (s *Scanner) readBlockComment(start int) (token.Token, error) {
	depth := 0
	i := start
	for i < len(s.input) {
		switch {
		case s.input[i] == '/' && s.at(i+1) == '*':
			depth++
			i += 2
		case s.input[i] == '*' && s.at(i+1) == '/':
			depth--
			i += 2
			if depth == 0 {
				return s.emit(token.C_COMMENT, start, i, s.input[start:i]), nil
			}
		default:
			i++
		}
	}
	return token.Token{}, s.errorAt(ErrUnterminatedComment, start, len(s.input))
}

// readWord reads an identifier or keyword, or one of the prefixed literals
// B'...', X'...', E'...', N'...', U&'...' and U&"...".
func (s *Scanner) readWord(start int) (token.Token, error) {
	ch := s.input[start]
	next := s.peek(1)
	if next == '\'' {
		switch ch {
		case 'b', 'B':
			return s.readBitString(start, token.BCONST, 'b', ErrUnterminatedBitString)
		case 'x', 'X':
			return s.readBitString(start, token.XCONST, 'x', ErrUnterminatedHexString)
		case 'e', 'E':
			return s.readString(start, start+2, true)
		case 'n', 'N':
			// National character literal: the keyword comes first, the
			// string is scanned by the next call.
			kw, _ := token.LookupKeyword("nchar")
			tok := s.emit(kw.Kind, start, start+1, kw.Name)
			tok.Keyword = kw.Class
			return tok, nil
		}
	}
	if (ch == 'u' || ch == 'U') && next == '&' {
		switch s.peek(2) {
		case '\'':
			return s.readUnicodeString(start)
		case '"':
			return s.readQuotedIdentifier(start, start+3, token.UIDENT)
		}
	}

	i := start + 1
	for i < len(s.input) && isIdentCont(s.input[i]) {
		i++
	}
	word := s.input[start:i]
	if kw, ok := token.LookupKeyword(word); ok {
		tok := s.emit(kw.Kind, start, i, kw.Name)
		tok.Keyword = kw.Class
		return tok, nil
	}
	return s.emit(token.IDENT, start, i, TruncateIdentifier(token.Downcase(word))), nil
}

// readString reads a '...' literal whose body starts at bodyStart. With
// extended set, backslash escapes are processed.
func (s *Scanner) readString(start, bodyStart int, extended bool) (token.Token, error) {
	var b strings.Builder
	i := bodyStart
	for {
		if i >= len(s.input) {
			return token.Token{}, s.errorAt(ErrUnterminatedString, start, len(s.input))
		}
		c := s.input[i]
		if c == '\'' {
			if s.at(i+1) == '\'' {
				b.WriteByte('\'')
				i += 2
				continue
			}
			if next, ok := s.continuation(i + 1); ok {
				i = next
				continue
			}
			i++
			break
		}
		if extended && c == '\\' {
			next, err := s.unescape(&b, i, start)
			if err != nil {
				return token.Token{}, err
			}
			i = next
			continue
		}
		b.WriteByte(c)
		i++
	}
	val := b.String()
	if extended && !utf8.ValidString(val) {
		return token.Token{}, s.errorAt(ErrInvalidByteSequence, start, i)
	}
	return s.emit(token.SCONST, start, i, val), nil
}

// continuation reports whether a string literal continues after a closing
// quote at i: whitespace containing a newline followed by another quote.
// It returns the offset just past the reopening quote.
func (s *Scanner) continuation(i int) (int, bool) {
	sawNewline := false
	for i < len(s.input) {
		c := s.input[i]
		switch {
		case c == '\n' || c == '\r':
			sawNewline = true
			i++
		case isSpace(c):
			i++
		case sawNewline && c == '-' && s.at(i+1) == '-':
			for i < len(s.input) && s.input[i] != '\n' && s.input[i] != '\r' {
				i++
			}
		default:
			if sawNewline && c == '\'' {
				return i + 1, true
			}
			return 0, false
		}
	}
	return 0, false
}

// unescape decodes the backslash escape at i and writes the result to b.
// It returns the offset after the escape.
func (s *Scanner) unescape(b *strings.Builder, i, start int) (int, error) {
	if i+1 >= len(s.input) {
		return 0, s.errorAt(ErrUnterminatedString, start, len(s.input))
	}
	c := s.input[i+1]
	switch c {
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case '0', '1', '2', '3', '4', '5', '6', '7':
		j, v := i+1, 0
		for j < len(s.input) && j < i+4 && s.input[j] >= '0' && s.input[j] <= '7' {
			v = v*8 + int(s.input[j]-'0')
			j++
		}
		b.WriteByte(byte(v))
		return j, nil
	case 'x':
		if !isHexDigit(s.at(i + 2)) {
			b.WriteByte('x')
			break
		}
		j, v := i+2, 0
		for j < len(s.input) && j < i+4 && isHexDigit(s.input[j]) {
			v = v*16 + hexValue(s.input[j])
			j++
		}
		b.WriteByte(byte(v))
		return j, nil
	case 'u', 'U':
		return s.unescapeUnicode(b, i)
	default:
		b.WriteByte(c)
	}
	return i + 2, nil
}

// unescapeUnicode decodes \uXXXX or \UXXXXXXXX at i, combining surrogate
// pairs.
func (s *Scanner) unescapeUnicode(b *strings.Builder, i int) (int, error) {
	r, next, err := s.readUnicodeEscape(i)
	if err != nil {
		return 0, err
	}
	switch {
	case isHighSurrogate(r):
		if s.at(next) != '\\' || (s.at(next+1) != 'u' && s.at(next+1) != 'U') {
			return 0, s.errorAt(ErrInvalidUnicodeSurrogate, i, next)
		}
		lo, after, err := s.readUnicodeEscape(next)
		if err != nil {
			return 0, err
		}
		if !isLowSurrogate(lo) {
			return 0, s.errorAt(ErrInvalidUnicodeSurrogate, i, after)
		}
		b.WriteRune(combineSurrogates(r, lo))
		return after, nil
	case isLowSurrogate(r):
		return 0, s.errorAt(ErrInvalidUnicodeSurrogate, i, next)
	}
	b.WriteRune(r)
	return next, nil
}

func (s *Scanner) readUnicodeEscape(i int) (rune, int, error) {
	n := 4
	if s.at(i+1) == 'U' {
		n = 8
	}
	j := i + 2
	var v uint32
	for k := 0; k < n; k++ {
		if !isHexDigit(s.at(j + k)) {
			return 0, 0, s.errorAt(ErrInvalidUnicodeEscapeSeq, i, j+k)
		}
		v = v*16 + uint32(hexValue(s.input[j+k]))
	}
	if v == 0 || v > utf8.MaxRune {
		return 0, 0, s.errorAt(ErrInvalidUnicodeEscape, i, j+n)
	}
	return rune(v), j + n, nil
}

// readBitString reads B'...' or X'...'; the value keeps a lower case
// prefix letter in front of the digits.
func (s *Scanner) readBitString(start int, kind token.Kind, prefix byte, unterminated string) (token.Token, error) {
	var b strings.Builder
	b.WriteByte(prefix)
	i := start + 2
	for {
		if i >= len(s.input) {
			return token.Token{}, s.errorAt(unterminated, start, len(s.input))
		}
		c := s.input[i]
		if c == '\'' {
			if next, ok := s.continuation(i + 1); ok {
				i = next
				continue
			}
			i++
			break
		}
		b.WriteByte(c)
		i++
	}
	return s.emit(kind, start, i, b.String()), nil
}

// readUnicodeString reads U&'...'. Escapes are left for the parser,
// which knows the UESCAPE character.
func (s *Scanner) readUnicodeString(start int) (token.Token, error) {
	var b strings.Builder
	i := start + 3
	for {
		if i >= len(s.input) {
			return token.Token{}, s.errorAt(ErrUnterminatedString, start, len(s.input))
		}
		c := s.input[i]
		if c == '\'' {
			if s.at(i+1) == '\'' {
				b.WriteByte('\'')
				i += 2
				continue
			}
			if next, ok := s.continuation(i + 1); ok {
				i = next
				continue
			}
			i++
			break
		}
		b.WriteByte(c)
		i++
	}
	return s.emit(token.USCONST, start, i, b.String()), nil
}

// readQuotedIdentifier reads "..." or U&"..." with the body at bodyStart.
func (s *Scanner) readQuotedIdentifier(start, bodyStart int, kind token.Kind) (token.Token, error) {
	var b strings.Builder
	i := bodyStart
	for {
		if i >= len(s.input) {
			return token.Token{}, s.errorAt(ErrUnterminatedIdentifier, start, len(s.input))
		}
		c := s.input[i]
		if c == '"' {
			if s.at(i+1) == '"' {
				b.WriteByte('"')
				i += 2
				continue
			}
			i++
			break
		}
		b.WriteByte(c)
		i++
	}
	if b.Len() == 0 {
		return token.Token{}, s.errorAt(ErrZeroLengthIdentifier, start, i)
	}
	val := b.String()
	if kind == token.IDENT {
		val = TruncateIdentifier(val)
	}
	return s.emit(kind, start, i, val), nil
}

// readDollar reads a $n parameter, a dollar-quoted string, or a lone '$'.
func (s *Scanner) readDollar(start int) (token.Token, error) {
	if isDigit(s.peek(1)) {
		i := readDigits(s.input, start+1, isDigit)
		if i < len(s.input) && isIdentStart(s.input[i]) {
			return token.Token{}, s.junk(ErrTrailingJunkParam, start, i)
		}
		return s.emit(token.PARAM, start, i, stripUnderscores(s.input[start+1:i])), nil
	}

	j := start + 1
	if j < len(s.input) && isDollarTagStart(s.input[j]) {
		j++
		for j < len(s.input) && isDollarTagCont(s.input[j]) {
			j++
		}
	}
	if s.at(j) != '$' {
		return s.emit(token.Char('$'), start, start+1, "$"), nil
	}
	delim := s.input[start : j+1]
	bodyStart := j + 1
	idx := strings.Index(s.input[bodyStart:], delim)
	if idx < 0 {
		return token.Token{}, s.errorAt(ErrUnterminatedDollar, start, len(s.input))
	}
	end := bodyStart + idx + len(delim)
	return s.emit(token.SCONST, start, end, s.input[bodyStart:bodyStart+idx]), nil
}

// readNumber reads integer and numeric literals, including the 0x, 0o
// and 0b forms and underscore separators.
func (s *Scanner) readNumber(start int) (token.Token, error) {
	if s.input[start] == '0' {
		var isD func(byte) bool
		var msg string
		switch s.peek(1) {
		case 'x', 'X':
			isD, msg = isHexDigit, ErrInvalidHexInteger
		case 'o', 'O':
			isD, msg = isOctDigit, ErrInvalidOctalInteger
		case 'b', 'B':
			isD, msg = isBinDigit, ErrInvalidBinaryInteger
		}
		if isD != nil {
			j := start + 2
			if s.at(j) == '_' && isD(s.at(j+1)) {
				j++
			}
			if !isD(s.at(j)) {
				if s.at(j) == '_' {
					j++
				}
				return token.Token{}, s.errorAt(msg, start, j)
			}
			i := readDigits(s.input, j, isD)
			if i < len(s.input) && isIdentCont(s.input[i]) {
				return token.Token{}, s.junk(ErrTrailingJunkNumber, start, i)
			}
			return s.emit(token.ICONST, start, i, stripUnderscores(s.input[start:i])), nil
		}
	}

	kind := token.ICONST
	i := start
	if s.input[i] != '.' {
		i = readDigits(s.input, i, isDigit)
	}
	if s.at(i) == '.' && s.at(i+1) != '.' {
		kind = token.FCONST
		i++
		if isDigit(s.at(i)) {
			i = readDigits(s.input, i, isDigit)
		}
	}
	if c := s.at(i); c == 'e' || c == 'E' {
		j := i + 1
		if s.at(j) == '+' || s.at(j) == '-' {
			j++
		}
		if !isDigit(s.at(j)) {
			return token.Token{}, s.junk(ErrTrailingJunkNumber, start, i)
		}
		kind = token.FCONST
		i = readDigits(s.input, j, isDigit)
	}
	if i < len(s.input) && isIdentStart(s.input[i]) {
		return token.Token{}, s.junk(ErrTrailingJunkNumber, start, i)
	}
	return s.emit(kind, start, i, stripUnderscores(s.input[start:i])), nil
}

// junk reports a literal followed by identifier characters.
func (s *Scanner) junk(msg string, start, i int) *LexError {
	for i < len(s.input) && isIdentCont(s.input[i]) {
		i++
	}
	return s.errorAt(msg, start, i)
}

// readOperator reads the longest operator, trimming a trailing + or - that
// cannot belong to a built-in operator.
func (s *Scanner) readOperator(start int) token.Token {
	i := start
	for i < len(s.input) && isOpChar(s.input[i]) {
		if i > start && ((s.input[i] == '-' && s.at(i+1) == '-') || (s.input[i] == '/' && s.at(i+1) == '*')) {
			break
		}
		i++
	}
	op := s.input[start:i]
	if len(op) > 1 && (op[len(op)-1] == '+' || op[len(op)-1] == '-') && !strings.ContainsAny(op, "~!@#^&|`?%") {
		for len(op) > 1 && (op[len(op)-1] == '+' || op[len(op)-1] == '-') {
			op = op[:len(op)-1]
		}
	}
	end := start + len(op)

	if len(op) == 1 && strings.IndexByte("+-*/%^<>=", op[0]) >= 0 {
		return s.emit(token.Char(op[0]), start, end, op)
	}
	switch op {
	case "=>":
		return s.emit(token.EQUALS_GREATER, start, end, op)
	case ">=":
		return s.emit(token.GREATER_EQUALS, start, end, op)
	case "<=":
		return s.emit(token.LESS_EQUALS, start, end, op)
	case "<>", "!=":
		return s.emit(token.NOT_EQUALS, start, end, "<>")
	}
	return s.emit(token.Op, start, end, op)
}

// TruncateIdentifier shortens an identifier to NameDataLen-1 bytes without
// splitting a multibyte character.
func TruncateIdentifier(s string) string {
	if len(s) < NameDataLen {
		return s
	}
	n := NameDataLen - 1
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func readDigits(s string, i int, isD func(byte) bool) int {
	for i < len(s) && isD(s[i]) {
		i++
		if i+1 < len(s) && s[i] == '_' && isD(s[i+1]) {
			i++
		}
	}
	return i
}

func stripUnderscores(s string) string {
	if strings.IndexByte(s, '_') < 0 {
		return s
	}
	return strings.ReplaceAll(s, "_", "")
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isOctDigit(ch byte) bool {
	return ch >= '0' && ch <= '7'
}

func isBinDigit(ch byte) bool {
	return ch == '0' || ch == '1'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func hexValue(ch byte) int {
	switch {
	case ch >= 'a':
		return int(ch-'a') + 10
	case ch >= 'A':
		return int(ch-'A') + 10
	}
	return int(ch - '0')
}

// isIdentStart matches [A-Za-z\200-\377_].
func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch >= 0x80
}

// isIdentCont matches [A-Za-z\200-\377_0-9\$].
func isIdentCont(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '$'
}

func isDollarTagStart(ch byte) bool {
	return isIdentStart(ch)
}

func isDollarTagCont(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isOpChar(ch byte) bool {
	return strings.IndexByte("~!@#^&|`?+-*/%<>=", ch) >= 0
}
