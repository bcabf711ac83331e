package splitter_test

import (
	"errors"
	"testing"

	"github.com/leapstack-labs/pgparse/pkg/scanner"
	"github.com/leapstack-labs/pgparse/pkg/splitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- Split Tests ----------

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want []string
	}{
		{
			name: "four statements",
			sql:  `select 1; select 2;    select "x";   select 4`,
			want: []string{"select 1", "select 2", `select "x"`, "select 4"},
		},
		{
			name: "empty input",
			sql:  "",
			want: []string{},
		},
		{
			name: "only separators and comments",
			sql:  " ;; -- nothing\n/* still nothing */ ;",
			want: []string{},
		},
		{
			name: "semicolons in literals",
			sql:  `SELECT ';', "a;b", $tag$ ; $tag$, E'\';'; SELECT 2`,
			want: []string{`SELECT ';', "a;b", $tag$ ; $tag$, E'\';'`, "SELECT 2"},
		},
		{
			name: "semicolons in comments",
			sql:  "SELECT 1 -- ; not here\n + 1; /* ; /* nested ; */ */ SELECT 2",
			want: []string{"SELECT 1 -- ; not here\n + 1", "SELECT 2"},
		},
		{
			name: "leading and trailing comments trimmed",
			sql:  "/* head */ SELECT 1 /* tail */; -- end",
			want: []string{"SELECT 1"},
		},
		{
			name: "begin atomic body",
			sql:  "CREATE FUNCTION f() RETURNS int BEGIN ATOMIC SELECT 1; SELECT CASE WHEN true THEN 2 END; END; SELECT 3",
			want: []string{
				"CREATE FUNCTION f() RETURNS int BEGIN ATOMIC SELECT 1; SELECT CASE WHEN true THEN 2 END; END",
				"SELECT 3",
			},
		},
		{
			name: "transaction block",
			sql:  "BEGIN; UPDATE t SET a = 1; END;",
			want: []string{"BEGIN", "UPDATE t SET a = 1", "END"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitter.Split(tt.sql)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ---------- Slices Tests ----------

func TestSlicesReproduceStatements(t *testing.T) {
	sql := `select 1; select 2;    select "x";   select 4`
	ranges, err := splitter.Slices(sql)
	require.NoError(t, err)
	stmts, err := splitter.Split(sql)
	require.NoError(t, err)
	require.Len(t, ranges, len(stmts))

	assert.Equal(t, splitter.Range{Start: 0, End: 8}, ranges[0])
	for i, r := range ranges {
		assert.Equal(t, stmts[i], sql[r.Start:r.End])
		assert.Equal(t, len(stmts[i]), r.Len())
	}
}

func TestSlicesLexError(t *testing.T) {
	tests := []struct {
		name   string
		sql    string
		offset int
	}{
		{name: "unterminated string", sql: "SELECT 1; SELECT 'abc", offset: 17},
		{name: "unterminated comment", sql: "SELECT 1; /* open", offset: 10},
		{name: "unterminated dollar quote", sql: "SELECT $$ body", offset: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := splitter.Slices(tt.sql)
			require.Error(t, err)
			var lexErr *scanner.LexError
			require.True(t, errors.As(err, &lexErr))
			assert.Equal(t, tt.offset, lexErr.Offset)
		})
	}
}
