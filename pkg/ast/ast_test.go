package ast_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/leapstack-labs/pgparse/pkg/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleSelect builds the tree of: SELECT a AS b FROM s.t x WHERE a = 1
func sampleSelect() *ast.RawStmt {
	return &ast.RawStmt{
		Stmt: &ast.SelectStmt{
			TargetList: []ast.Node{
				&ast.ResTarget{
					Name:     "b",
					Val:      &ast.ColumnRef{Fields: []ast.Node{&ast.String{Sval: "a"}}, Location: 7},
					Location: 7,
				},
			},
			FromClause: []ast.Node{
				&ast.RangeVar{
					Schemaname:     "s",
					Relname:        "t",
					Inh:            true,
					Relpersistence: "p",
					Alias:          &ast.Alias{Aliasname: "x"},
					Location:       19,
				},
			},
			WhereClause: &ast.A_Expr{
				Kind:     ast.AEXPR_OP,
				Name:     []ast.Node{&ast.String{Sval: "="}},
				Lexpr:    &ast.ColumnRef{Fields: []ast.Node{&ast.String{Sval: "a"}}, Location: 31},
				Rexpr:    &ast.A_Const{Val: &ast.Integer{Ival: 1}, Location: 35},
				Location: 33,
			},
			Op: ast.SETOP_NONE,
		},
		StmtLen: 36,
	}
}

// ---------- Equality Tests ----------

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a    ast.Node
		b    ast.Node
		want bool
	}{
		{name: "both nil", a: nil, b: nil, want: true},
		{name: "nil vs node", a: nil, b: &ast.String{}, want: false},
		{name: "same scalar", a: &ast.String{Sval: "x"}, b: &ast.String{Sval: "x"}, want: true},
		{name: "different scalar", a: &ast.String{Sval: "x"}, b: &ast.String{Sval: "y"}, want: false},
		{name: "different tags", a: &ast.String{Sval: "1"}, b: &ast.Float{Fval: "1"}, want: false},
		{
			name: "nil list equals empty list",
			a:    &ast.ColumnRef{Fields: nil},
			b:    &ast.ColumnRef{Fields: []ast.Node{}},
			want: true,
		},
		{
			name: "list length differs",
			a:    &ast.ColumnRef{Fields: []ast.Node{&ast.String{Sval: "a"}}},
			b:    &ast.ColumnRef{Fields: []ast.Node{&ast.String{Sval: "a"}, &ast.A_Star{}}},
			want: false,
		},
		{
			name: "nested difference",
			a:    &ast.A_Const{Val: &ast.Integer{Ival: 1}},
			b:    &ast.A_Const{Val: &ast.Integer{Ival: 2}},
			want: false,
		},
		{name: "whole statements", a: sampleSelect(), b: sampleSelect(), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ast.Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, ast.Equal(tt.b, tt.a))
		})
	}
}

func TestEqualLists(t *testing.T) {
	a := &ast.String{Sval: "a"}
	tests := []struct {
		name string
		a    []ast.Node
		b    []ast.Node
		want bool
	}{
		{name: "nil and empty", a: nil, b: []ast.Node{}, want: true},
		{name: "equal copies", a: []ast.Node{a, &ast.A_Star{}}, b: []ast.Node{&ast.String{Sval: "a"}, &ast.A_Star{}}, want: true},
		{name: "length differs", a: []ast.Node{a}, b: []ast.Node{a, a}, want: false},
		{name: "element differs", a: []ast.Node{a}, b: []ast.Node{&ast.String{Sval: "b"}}, want: false},
		{name: "order matters", a: []ast.Node{a, &ast.A_Star{}}, b: []ast.Node{&ast.A_Star{}, a}, want: false},
		{name: "nil element", a: []ast.Node{nil}, b: []ast.Node{nil}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ast.EqualLists(tt.a, tt.b))
		})
	}
}

// ---------- Clone Tests ----------

func TestClone(t *testing.T) {
	orig := sampleSelect()
	c := ast.CloneStmt(orig)

	require.NotSame(t, orig, c)
	assert.True(t, ast.Equal(orig, c))
	assert.Equal(t, orig.String(), c.String())
	assert.Equal(t, ast.ToMap(orig), ast.ToMap(c))

	// Mutating the clone leaves the original alone.
	sel := c.Stmt.(*ast.SelectStmt)
	sel.FromClause[0].(*ast.RangeVar).Alias.Aliasname = "y"
	sel.TargetList = append(sel.TargetList, &ast.ResTarget{Val: &ast.A_Star{}})

	origSel := orig.Stmt.(*ast.SelectStmt)
	assert.Equal(t, "x", origSel.FromClause[0].(*ast.RangeVar).Alias.Aliasname)
	assert.Len(t, origSel.TargetList, 1)
	assert.False(t, ast.Equal(orig, c))
}

func TestCloneNil(t *testing.T) {
	assert.Nil(t, ast.Clone(nil))
	assert.Nil(t, ast.CloneStmt(nil))
}

// ---------- Canonical Form Tests ----------

func TestToMap(t *testing.T) {
	m := ast.ToMap(&ast.SelectStmt{
		TargetList: []ast.Node{&ast.ResTarget{Val: &ast.A_Const{Val: &ast.Integer{Ival: 1}, Location: 7}, Location: 7}},
		Op:         ast.SETOP_UNION,
	})

	assert.Equal(t, "SelectStmt", m[ast.TagKey])
	assert.Equal(t, "SETOP_UNION", m["op"])
	assert.NotContains(t, m, "fromClause")
	assert.NotContains(t, m, "all")

	targets, ok := m["targetList"].([]any)
	require.True(t, ok)
	require.Len(t, targets, 1)
	target := targets[0].(map[string]any)
	assert.Equal(t, "ResTarget", target[ast.TagKey])
	assert.Equal(t, 7, target["location"])

	val := target["val"].(map[string]any)
	assert.Equal(t, map[string]any{"@": "Integer", "ival": 1}, val["val"])
}

func TestRoundTrip(t *testing.T) {
	nodes := []ast.Node{
		sampleSelect(),
		&ast.A_Const{Isnull: true, Location: 3},
		&ast.TypeCast{
			Arg:      &ast.A_Const{Val: &ast.String{Sval: "2024-01-01"}},
			TypeName: &ast.TypeName{Names: []ast.Node{&ast.String{Sval: "date"}}, Typemod: -1},
		},
		&ast.SelectStmt{DistinctClause: []ast.Node{nil}, TargetList: []ast.Node{&ast.ResTarget{Val: &ast.A_Star{}}}},
		&ast.CreateStmt{
			Relation: &ast.RangeVar{Relname: "t", Inh: true, Relpersistence: "t"},
			TableElts: []ast.Node{&ast.ColumnDef{
				Colname:     "id",
				TypeName:    &ast.TypeName{Names: []ast.Node{&ast.String{Sval: "pg_catalog"}, &ast.String{Sval: "int4"}}, Typemod: -1},
				IsLocal:     true,
				Constraints: []ast.Node{&ast.Constraint{Contype: ast.CONSTR_PRIMARY}},
			}},
			Oncommit: ast.ONCOMMIT_DROP,
		},
	}

	for _, n := range nodes {
		t.Run(ast.Tag(n), func(t *testing.T) {
			back, err := ast.FromMap(ast.ToMap(n))
			require.NoError(t, err)
			assert.True(t, ast.Equal(n, back), "got %s", back)

			data, err := ast.MarshalJSON(n)
			require.NoError(t, err)
			decoded, err := ast.UnmarshalJSON(data)
			require.NoError(t, err)
			assert.True(t, ast.Equal(n, decoded), "got %s", decoded)
		})
	}
}

func TestFromMapNumberForms(t *testing.T) {
	tests := []struct {
		name string
		val  any
	}{
		{name: "int", val: 42},
		{name: "int64", val: int64(42)},
		{name: "integral float64", val: float64(42)},
		{name: "json.Number", val: json.Number("42")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ast.FromMap(map[string]any{"@": "ParamRef", "number": tt.val})
			require.NoError(t, err)
			assert.Equal(t, 42, n.(*ast.ParamRef).Number)
		})
	}
}

func TestFromMapListForms(t *testing.T) {
	items := []map[string]any{{"@": "String", "sval": "a"}, {"@": "A_Star"}}
	n, err := ast.FromMap(map[string]any{"@": "ColumnRef", "fields": items})
	require.NoError(t, err)

	want := &ast.ColumnRef{Fields: []ast.Node{&ast.String{Sval: "a"}, &ast.A_Star{}}}
	assert.True(t, ast.Equal(want, n))
}

// ---------- Construction Tests ----------

func TestNew(t *testing.T) {
	n, err := ast.New("RangeVar", map[string]any{
		"relname": "users",
		"inh":     true,
		"alias":   &ast.Alias{Aliasname: "u"},
	})
	require.NoError(t, err)

	rv := n.(*ast.RangeVar)
	assert.Equal(t, "users", rv.Relname)
	assert.True(t, rv.Inh)
	assert.Equal(t, "u", rv.Alias.Aliasname)
	assert.Empty(t, rv.Schemaname)
}

func TestNewStructuralErrors(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		fields   map[string]any
		wantPath string
		unknown  bool
	}{
		{
			name:     "unknown tag",
			tag:      "NoSuchStmt",
			wantPath: "NoSuchStmt",
			unknown:  true,
		},
		{
			name:     "unknown field",
			tag:      "RangeVar",
			fields:   map[string]any{"relnam": "x"},
			wantPath: "RangeVar.relnam",
		},
		{
			name:     "scalar where list expected",
			tag:      "SelectStmt",
			fields:   map[string]any{"targetList": "a"},
			wantPath: "SelectStmt.targetList",
		},
		{
			name:     "wrong scalar kind",
			tag:      "RangeVar",
			fields:   map[string]any{"relname": 12},
			wantPath: "RangeVar.relname",
		},
		{
			name:     "non integral float",
			tag:      "ParamRef",
			fields:   map[string]any{"number": 1.5},
			wantPath: "ParamRef.number",
		},
		{
			name:     "wrong node variant",
			tag:      "InsertStmt",
			fields:   map[string]any{"relation": map[string]any{"@": "Alias", "aliasname": "x"}},
			wantPath: "InsertStmt.relation",
		},
		{
			name:     "unknown enum name",
			tag:      "SelectStmt",
			fields:   map[string]any{"op": "SETOP_MERGE"},
			wantPath: "SelectStmt.op",
		},
		{
			name: "nested path",
			tag:  "SelectStmt",
			fields: map[string]any{"targetList": []any{
				map[string]any{"@": "ResTarget", "val": "oops"},
			}},
			wantPath: "SelectStmt.targetList[0].val",
		},
		{
			name: "nested unknown tag",
			tag:  "SelectStmt",
			fields: map[string]any{"targetList": []any{
				map[string]any{"@": "Bogus"},
			}},
			wantPath: "SelectStmt.targetList[0]",
			unknown:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ast.New(tt.tag, tt.fields)
			require.Error(t, err)

			var serr *ast.StructuralError
			require.True(t, errors.As(err, &serr), "got %T", err)
			assert.Equal(t, tt.wantPath, serr.Path)
			assert.Equal(t, tt.unknown, errors.Is(err, ast.ErrUnknownTag))
		})
	}
}

func TestFromMapMissingTag(t *testing.T) {
	_, err := ast.FromMap(map[string]any{"relname": "x"})
	var serr *ast.StructuralError
	require.ErrorAs(t, err, &serr)
	assert.Contains(t, serr.Message, "missing node tag")
}

// ---------- Schema Tests ----------

func TestSchema(t *testing.T) {
	fields, err := ast.Schema("InsertStmt")
	require.NoError(t, err)

	byName := make(map[string]ast.Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}

	assert.Equal(t, ast.ShapeTypedNode, byName["relation"].Shape)
	assert.Equal(t, "RangeVar", byName["relation"].Variant)
	assert.Equal(t, ast.ShapeList, byName["cols"].Shape)
	assert.Equal(t, ast.ShapeNode, byName["selectStmt"].Shape)
	assert.Equal(t, ast.ShapeEnum, byName["override"].Shape)
	assert.Equal(t, "OverridingKind", byName["override"].Variant)

	_, err = ast.Schema("Nope")
	assert.ErrorIs(t, err, ast.ErrUnknownTag)
}

func TestTags(t *testing.T) {
	tags := ast.Tags()
	assert.Contains(t, tags, "RawStmt")
	assert.Contains(t, tags, "SelectStmt")
	assert.Contains(t, tags, "A_Const")
	assert.IsNonDecreasing(t, tags)

	assert.Equal(t, "SelectStmt", ast.Tag(&ast.SelectStmt{}))
	assert.Empty(t, ast.Tag(nil))
}

func TestEnumNames(t *testing.T) {
	names := ast.EnumNames("BoolExprType")
	assert.Equal(t, []string{"AND_EXPR", "OR_EXPR", "NOT_EXPR"}, names)
	assert.Nil(t, ast.EnumNames("Missing"))
	assert.Equal(t, "OR_EXPR", ast.OR_EXPR.String())
}

// ---------- Walk Tests ----------

func TestWalk(t *testing.T) {
	var tags []string
	ast.Walk(sampleSelect(), func(n ast.Node) bool {
		tags = append(tags, ast.Tag(n))
		return true
	})

	assert.Equal(t, []string{
		"RawStmt", "SelectStmt",
		"ResTarget", "ColumnRef", "String",
		"RangeVar", "Alias",
		"A_Expr", "String", "ColumnRef", "String", "A_Const", "Integer",
	}, tags)
}

func TestWalkSkipsChildren(t *testing.T) {
	var tags []string
	ast.Walk(sampleSelect(), func(n ast.Node) bool {
		tags = append(tags, ast.Tag(n))
		_, isExpr := n.(*ast.A_Expr)
		_, isTarget := n.(*ast.ResTarget)
		return !isExpr && !isTarget
	})

	assert.Equal(t, []string{"RawStmt", "SelectStmt", "ResTarget", "RangeVar", "Alias", "A_Expr"}, tags)
}

func TestCollect(t *testing.T) {
	stmt := sampleSelect()
	assert.Len(t, ast.CollectColumnRefs(stmt), 2)
	assert.Len(t, ast.CollectRangeVars(stmt), 1)
	assert.Empty(t, ast.CollectFuncCalls(stmt))
	assert.Len(t, ast.Collect[*ast.String](stmt), 3)
}

// ---------- Repr Tests ----------

func TestRepr(t *testing.T) {
	n := &ast.ResTarget{
		Val:      &ast.ColumnRef{Fields: []ast.Node{&ast.String{Sval: "a"}}},
		Location: 7,
	}
	assert.Equal(t, `<ResTarget val=<ColumnRef fields=[<String sval="a">]> location=7>`, n.String())
	assert.Equal(t, "<A_Star>", (&ast.A_Star{}).String())
	assert.Equal(t, `<SelectStmt distinctClause=[None] op=SETOP_UNION>`,
		(&ast.SelectStmt{DistinctClause: []ast.Node{nil}, Op: ast.SETOP_UNION}).String())
}

func TestRawStmtSourceSlice(t *testing.T) {
	s := &ast.RawStmt{StmtLocation: 10, StmtLen: 8}
	start, end := s.SourceSlice()
	assert.Equal(t, 10, start)
	assert.Equal(t, 18, end)
}
