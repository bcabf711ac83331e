package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{EOF, "EOF"},
		{IDENT, "IDENT"},
		{C_COMMENT, "C_COMMENT"},
		{Char(';'), "ASCII_59"},
		{Char('('), "ASCII_40"},
		{Kind(99999), "TOKEN(99999)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestLookupKeyword(t *testing.T) {
	kw, ok := LookupKeyword("SELECT")
	require.True(t, ok)
	assert.Equal(t, "select", kw.Name)
	assert.Equal(t, "SELECT", kw.Kind.String())
	assert.Equal(t, ReservedKeyword, kw.Class)
	assert.True(t, kw.Kind.IsKeyword())

	kw, ok = LookupKeyword("null")
	require.True(t, ok)
	assert.Equal(t, "NULL_P", kw.Kind.String())

	kw, ok = LookupKeyword("between")
	require.True(t, ok)
	assert.Equal(t, ColNameKeyword, kw.Class)

	kw, ok = LookupKeyword("left")
	require.True(t, ok)
	assert.Equal(t, TypeFuncNameKeyword, kw.Class)

	_, ok = LookupKeyword("foo")
	assert.False(t, ok)

	// Only ASCII letters fold: the Kelvin sign must not match "key".
	_, ok = LookupKeyword("\u212Aey")
	assert.False(t, ok)
}

func TestKeywordTableSorted(t *testing.T) {
	kws := Keywords()
	require.NotEmpty(t, kws)
	for i := 1; i < len(kws); i++ {
		assert.Less(t, kws[i-1].Name, kws[i].Name)
	}
}

func TestBareLabel(t *testing.T) {
	kw, _ := LookupKeyword("over")
	assert.False(t, kw.BareLabel)
	kw, _ = LookupKeyword("name")
	assert.True(t, kw.BareLabel)
	kw, _ = LookupKeyword("from")
	assert.False(t, kw.BareLabel)

	assert.False(t, Token{Kind: kw.Kind, Keyword: kw.Class, Value: "from"}.BareLabel())
	assert.True(t, Token{Kind: IDENT, Value: "x"}.BareLabel())
	assert.False(t, Token{Kind: ICONST, Value: "1"}.BareLabel())
}

func TestKeywordKindString(t *testing.T) {
	assert.Equal(t, "NO_KEYWORD", NoKeyword.String())
	assert.Equal(t, "RESERVED_KEYWORD", ReservedKeyword.String())
	assert.Equal(t, "TYPE_FUNC_NAME_KEYWORD", TypeFuncNameKeyword.String())
}

func TestTokenHelpers(t *testing.T) {
	kw, _ := LookupKeyword("from")
	tok := Token{Kind: kw.Kind, Keyword: kw.Class, Start: 0, End: 4, Value: "from"}
	assert.True(t, tok.IsKeyword("from"))
	assert.False(t, tok.IsKeyword("select"))
	assert.Equal(t, "FROM", tok.Text("FROM x"))

	plus := Token{Kind: Char('+'), Value: "+"}
	assert.True(t, plus.IsOp("+"))
	assert.True(t, plus.IsChar('+'))

	ne := Token{Kind: NOT_EQUALS, Value: "<>"}
	assert.True(t, ne.IsOp("<>"))
	assert.False(t, Token{Kind: Char(','), Value: ","}.IsOp(","))
}

func TestDowncase(t *testing.T) {
	assert.Equal(t, "foo", Downcase("FoO"))
	assert.Equal(t, "naïve", Downcase("NAïVE"))
	assert.Equal(t, "already", Downcase("already"))
}

func TestLocate(t *testing.T) {
	src := "select\n  1,\n  é2"
	pos := Locate(src, 0)
	assert.Equal(t, Position{Line: 1, Column: 1, Offset: 0}, pos)

	pos = Locate(src, 9)
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 3, pos.Column)

	// 'é' is two bytes but one column.
	pos = Locate(src, len(src)-1)
	assert.Equal(t, 3, pos.Line)
	assert.Equal(t, 4, pos.Column)

	assert.False(t, Locate(src, -1).IsValid())
	assert.Equal(t, len(src), Locate(src, 1000).Offset)
}

func TestSpan(t *testing.T) {
	s := Span{Start: 2, End: 5}
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(5))
	assert.Equal(t, 3, s.Len())
}
