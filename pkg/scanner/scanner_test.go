package scanner_test

import (
	"errors"
	"testing"

	"github.com/leapstack-labs/pgparse/pkg/scanner"
	"github.com/leapstack-labs/pgparse/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tok struct {
	start, end int
	kind       string
	value      string
}

func scanAll(t *testing.T, sql string, opts ...scanner.Option) []tok {
	t.Helper()
	toks, err := scanner.Scan(sql, opts...)
	require.NoError(t, err)
	out := make([]tok, len(toks))
	for i, tk := range toks {
		out[i] = tok{tk.Start, tk.End, tk.Kind.String(), tk.Value}
	}
	return out
}

// ---------- Basic Token Tests ----------

func TestScanSelectWithComment(t *testing.T) {
	toks, err := scanner.Scan("select /* something here */ 1")
	require.NoError(t, err)
	require.Len(t, toks, 3)

	assert.Equal(t, 0, toks[0].Start)
	assert.Equal(t, 6, toks[0].End)
	assert.Equal(t, "SELECT", toks[0].Kind.String())
	assert.Equal(t, token.ReservedKeyword, toks[0].Keyword)

	assert.Equal(t, 7, toks[1].Start)
	assert.Equal(t, 27, toks[1].End)
	assert.Equal(t, "C_COMMENT", toks[1].Kind.String())
	assert.Equal(t, token.NoKeyword, toks[1].Keyword)

	assert.Equal(t, 28, toks[2].Start)
	assert.Equal(t, 29, toks[2].End)
	assert.Equal(t, "ICONST", toks[2].Kind.String())
}

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want []tok
	}{
		{
			name: "identifiers are downcased",
			sql:  "FooBar",
			want: []tok{{0, 6, "IDENT", "foobar"}},
		},
		{
			name: "quoted identifier keeps case",
			sql:  `"FooBar"`,
			want: []tok{{0, 8, "IDENT", "FooBar"}},
		},
		{
			name: "quoted identifier with doubled quote",
			sql:  `"a""b"`,
			want: []tok{{0, 6, "IDENT", `a"b`}},
		},
		{
			name: "multibyte identifier",
			sql:  "Naïve",
			want: []tok{{0, 6, "IDENT", "naïve"}},
		},
		{
			name: "dollar inside identifier",
			sql:  "a$b",
			want: []tok{{0, 3, "IDENT", "a$b"}},
		},
		{
			name: "line comment",
			sql:  "-- hi\n1",
			want: []tok{{0, 5, "SQL_COMMENT", "-- hi"}, {6, 7, "ICONST", "1"}},
		},
		{
			name: "nested block comment",
			sql:  "/* a /* b */ c */x",
			want: []tok{{0, 17, "C_COMMENT", "/* a /* b */ c */"}, {17, 18, "IDENT", "x"}},
		},
		{
			name: "typecast and param",
			sql:  "$1::int",
			want: []tok{{0, 2, "PARAM", "1"}, {2, 4, "TYPECAST", "::"}, {4, 7, "INT", "int"}},
		},
		{
			name: "range dots after integer",
			sql:  "1..10",
			want: []tok{{0, 1, "ICONST", "1"}, {1, 3, "DOT_DOT", ".."}, {3, 5, "ICONST", "10"}},
		},
		{
			name: "assignment",
			sql:  "x := 1",
			want: []tok{{0, 1, "IDENT", "x"}, {2, 4, "COLON_EQUALS", ":="}, {5, 6, "ICONST", "1"}},
		},
		{
			name: "single char tokens",
			sql:  "(a,b);",
			want: []tok{
				{0, 1, "ASCII_40", "("}, {1, 2, "IDENT", "a"}, {2, 3, "ASCII_44", ","},
				{3, 4, "IDENT", "b"}, {4, 5, "ASCII_41", ")"}, {5, 6, "ASCII_59", ";"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanAll(t, tt.sql))
		})
	}
}

// ---------- Number Tests ----------

func TestScanNumbers(t *testing.T) {
	tests := []struct {
		sql   string
		kind  string
		value string
	}{
		{"42", "ICONST", "42"},
		{"1_000_000", "ICONST", "1000000"},
		{"0x1F", "ICONST", "0x1F"},
		{"0o17", "ICONST", "0o17"},
		{"0b1010", "ICONST", "0b1010"},
		{"3.14", "FCONST", "3.14"},
		{".5", "FCONST", ".5"},
		{"5.", "FCONST", "5."},
		{"1e10", "FCONST", "1e10"},
		{"2.5E-3", "FCONST", "2.5E-3"},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			toks := scanAll(t, tt.sql)
			require.Len(t, toks, 1)
			assert.Equal(t, tt.kind, toks[0].kind)
			assert.Equal(t, tt.value, toks[0].value)
			assert.Equal(t, len(tt.sql), toks[0].end)
		})
	}
}

// ---------- String Tests ----------

func TestScanStrings(t *testing.T) {
	tests := []struct {
		name  string
		sql   string
		kind  string
		value string
		opts  []scanner.Option
	}{
		{name: "plain", sql: "'abc'", kind: "SCONST", value: "abc"},
		{name: "doubled quote", sql: "'it''s'", kind: "SCONST", value: "it's"},
		{name: "backslash is literal", sql: `'a\nb'`, kind: "SCONST", value: `a\nb`},
		{name: "escape string", sql: `E'a\nb\'c'`, kind: "SCONST", value: "a\nb'c"},
		{name: "escape octal and hex", sql: `E'\101\x42'`, kind: "SCONST", value: "AB"},
		{name: "escape unicode", sql: `E'\u00e9'`, kind: "SCONST", value: "é"},
		{name: "escape surrogate pair", sql: `E'\uD83D\uDE00'`, kind: "SCONST", value: "\U0001F600"},
		{name: "continuation", sql: "'foo'\n  'bar'", kind: "SCONST", value: "foobar"},
		{name: "dollar quoted", sql: "$$it's$$", kind: "SCONST", value: "it's"},
		{name: "tagged dollar quoted", sql: "$fn$ a $$ b $fn$", kind: "SCONST", value: " a $$ b "},
		{name: "bit string", sql: "B'1010'", kind: "BCONST", value: "b1010"},
		{name: "hex string", sql: "X'1F'", kind: "XCONST", value: "x1F"},
		{name: "unicode string", sql: `U&'d\0061t'`, kind: "USCONST", value: `d\0061t`},
		{
			name:  "non-standard strings process backslashes",
			sql:   `'a\tb'`,
			kind:  "SCONST",
			value: "a\tb",
			opts:  []scanner.Option{scanner.WithStandardConformingStrings(false)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := scanAll(t, tt.sql, tt.opts...)
			require.Len(t, toks, 1)
			assert.Equal(t, tt.kind, toks[0].kind)
			assert.Equal(t, tt.value, toks[0].value)
			assert.Equal(t, len(tt.sql), toks[0].end)
		})
	}
}

func TestScanNationalString(t *testing.T) {
	toks := scanAll(t, "N'abc'")
	require.Len(t, toks, 2)
	assert.Equal(t, tok{0, 1, "NCHAR", "nchar"}, toks[0])
	assert.Equal(t, tok{1, 6, "SCONST", "abc"}, toks[1])
}

func TestScanNoContinuationWithoutNewline(t *testing.T) {
	toks := scanAll(t, "'foo' 'bar'")
	require.Len(t, toks, 2)
}

// ---------- Operator Tests ----------

func TestScanOperators(t *testing.T) {
	tests := []struct {
		sql  string
		want []tok
	}{
		{"a<=b", []tok{{0, 1, "IDENT", "a"}, {1, 3, "LESS_EQUALS", "<="}, {3, 4, "IDENT", "b"}}},
		{"a!=b", []tok{{0, 1, "IDENT", "a"}, {1, 3, "NOT_EQUALS", "<>"}, {3, 4, "IDENT", "b"}}},
		{"a||b", []tok{{0, 1, "IDENT", "a"}, {1, 3, "Op", "||"}, {3, 4, "IDENT", "b"}}},
		{"a=>b", []tok{{0, 1, "IDENT", "a"}, {1, 3, "EQUALS_GREATER", "=>"}, {3, 4, "IDENT", "b"}}},
		// A trailing minus is split off unless the operator has a non-SQL char.
		{"a=-1", []tok{{0, 1, "IDENT", "a"}, {1, 2, "ASCII_61", "="}, {2, 3, "ASCII_45", "-"}, {3, 4, "ICONST", "1"}}},
		{"a@-b", []tok{{0, 1, "IDENT", "a"}, {1, 3, "Op", "@-"}, {3, 4, "IDENT", "b"}}},
		// Comment starts end an operator.
		{"a+--c", []tok{{0, 1, "IDENT", "a"}, {1, 2, "ASCII_43", "+"}, {2, 5, "SQL_COMMENT", "--c"}}},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			assert.Equal(t, tt.want, scanAll(t, tt.sql))
		})
	}
}

// ---------- Error Tests ----------

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		message string
		offset  int
	}{
		{"unterminated string", "select 'abc", scanner.ErrUnterminatedString, 7},
		{"unterminated identifier", `select "abc`, scanner.ErrUnterminatedIdentifier, 7},
		{"unterminated comment", "select /* x", scanner.ErrUnterminatedComment, 7},
		{"unterminated dollar", "select $a$ x $b$", scanner.ErrUnterminatedDollar, 7},
		{"zero length identifier", `select ""`, scanner.ErrZeroLengthIdentifier, 7},
		{"trailing junk", "select 123abc", scanner.ErrTrailingJunkNumber, 7},
		{"trailing junk after param", "select $1a", scanner.ErrTrailingJunkParam, 7},
		{"bad hex", "select 0x", scanner.ErrInvalidHexInteger, 7},
		{"bad unicode escape", `select E'\u12'`, scanner.ErrInvalidUnicodeEscapeSeq, 9},
		{"lone low surrogate", `select E'\uDE00'`, scanner.ErrInvalidUnicodeSurrogate, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scanner.Scan(tt.sql)
			require.Error(t, err)
			var lexErr *scanner.LexError
			require.ErrorAs(t, err, &lexErr)
			assert.Equal(t, tt.message, lexErr.Message)
			assert.Equal(t, tt.offset, lexErr.Offset)
		})
	}
}

func TestLexErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{name: "near text", sql: "select 'abc", want: `unterminated quoted string at or near "'abc", at location 8`},
		{name: "second statement", sql: "select 1; select 'abc", want: `unterminated quoted string at or near "'abc", at location 18`},
		{name: "comment", sql: "select /* open", want: `unterminated /* comment at or near "/* open", at location 8`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scanner.Scan(tt.sql)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())

			var lexErr *scanner.LexError
			require.True(t, errors.As(err, &lexErr))
			assert.NotContains(t, lexErr.Summary(), "location")
		})
	}

	eof := &scanner.LexError{Message: "unexpected end", Offset: 3}
	assert.Equal(t, "unexpected end at end of input, at location 4", eof.Error())
}

func TestTruncateIdentifier(t *testing.T) {
	long := ""
	for i := 0; i < 70; i++ {
		long += "a"
	}
	assert.Len(t, scanner.TruncateIdentifier(long), 63)

	// A two-byte character straddling the limit is dropped entirely.
	name := long[:62] + "é"
	assert.Equal(t, long[:62], scanner.TruncateIdentifier(name))

	toks := scanAll(t, long)
	assert.Len(t, toks[0].value, 63)
}

func TestDecodeUnicodeEscapes(t *testing.T) {
	got, _, err := scanner.DecodeUnicodeEscapes(`d\0061t\+000061`, '\\')
	require.NoError(t, err)
	assert.Equal(t, "data", got)

	got, _, err = scanner.DecodeUnicodeEscapes(`d!0061t!!`, '!')
	require.NoError(t, err)
	assert.Equal(t, "dat!", got)

	_, off, err := scanner.DecodeUnicodeEscapes(`ab\00zz`, '\\')
	require.Error(t, err)
	assert.Equal(t, 2, off)

	assert.True(t, scanner.CheckUnicodeEscapeChar("!"))
	assert.False(t, scanner.CheckUnicodeEscapeChar("a"))
	assert.False(t, scanner.CheckUnicodeEscapeChar("+"))
}
