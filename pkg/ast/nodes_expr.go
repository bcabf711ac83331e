package ast

// ---------- Value nodes ----------

// Integer is an integral constant that fits in 32 bits.
type Integer struct {
	Ival int `json:"ival"`
}

// Float holds a numeric constant as text, including integers too large
// for Integer.
type Float struct {
	Fval string `json:"fval"`
}

// Boolean is a TRUE/FALSE constant.
type Boolean struct {
	Boolval bool `json:"boolval"`
}

// String is a string value: a literal's contents or a name component.
type String struct {
	Sval string `json:"sval"`
}

// BitString holds a B'...' or X'...' literal with its b/x prefix.
type BitString struct {
	Bsval string `json:"bsval"`
}

// List is a list used where PostgreSQL nests lists, such as VALUES rows.
type List struct {
	Items []Node `json:"items"`
}

// ---------- Expressions ----------

// A_Const is a literal constant. Val is one of the value nodes, or nil
// when Isnull is set.
type A_Const struct {
	Val      Node `json:"val"`
	Isnull   bool `json:"isnull"`
	Location int  `json:"location"`
}

// ColumnRef is a possibly qualified column reference; Fields holds String
// nodes and an optional trailing A_Star.
type ColumnRef struct {
	Fields   []Node `json:"fields"`
	Location int    `json:"location"`
}

// ParamRef is a positional parameter $n.
type ParamRef struct {
	Number   int `json:"number"`
	Location int `json:"location"`
}

// A_Expr is an operator expression.
type A_Expr struct {
	Kind     A_Expr_Kind `json:"kind"`
	Name     []Node      `json:"name"`
	Lexpr    Node        `json:"lexpr"`
	Rexpr    Node        `json:"rexpr"`
	Location int         `json:"location"`
}

// BoolExpr is AND, OR or NOT.
type BoolExpr struct {
	Boolop   BoolExprType `json:"boolop"`
	Args     []Node       `json:"args"`
	Location int          `json:"location"`
}

// TypeCast is CAST(arg AS type), arg::type or a typed literal.
type TypeCast struct {
	Arg      Node      `json:"arg"`
	TypeName *TypeName `json:"typeName"`
	Location int       `json:"location"`
}

// CollateClause is expr COLLATE name.
type CollateClause struct {
	Arg      Node   `json:"arg"`
	Collname []Node `json:"collname"`
	Location int    `json:"location"`
}

// FuncCall is a function or aggregate call as written.
type FuncCall struct {
	Funcname       []Node       `json:"funcname"`
	Args           []Node       `json:"args"`
	AggOrder       []Node       `json:"agg_order"`
	AggFilter      Node         `json:"agg_filter"`
	Over           *WindowDef   `json:"over"`
	AggWithinGroup bool         `json:"agg_within_group"`
	AggStar        bool         `json:"agg_star"`
	AggDistinct    bool         `json:"agg_distinct"`
	FuncVariadic   bool         `json:"func_variadic"`
	Funcformat     CoercionForm `json:"funcformat"`
	Location       int          `json:"location"`
}

// A_Star is the * in a column reference or select list.
type A_Star struct{}

// A_Indices is a subscript [i] or slice [l:u].
type A_Indices struct {
	IsSlice bool `json:"is_slice"`
	Lidx    Node `json:"lidx"`
	Uidx    Node `json:"uidx"`
}

// A_Indirection applies subscripts or field selections to an expression.
type A_Indirection struct {
	Arg         Node   `json:"arg"`
	Indirection []Node `json:"indirection"`
}

// A_ArrayExpr is ARRAY[...].
type A_ArrayExpr struct {
	Elements []Node `json:"elements"`
	Location int    `json:"location"`
}

// ResTarget is a select list item, an INSERT target column, or an UPDATE
// SET target.
type ResTarget struct {
	Name        string `json:"name"`
	Indirection []Node `json:"indirection"`
	Val         Node   `json:"val"`
	Location    int    `json:"location"`
}

// MultiAssignRef is one column of UPDATE ... SET (a, b) = source.
type MultiAssignRef struct {
	Source   Node `json:"source"`
	Colno    int  `json:"colno"`
	Ncolumns int  `json:"ncolumns"`
}

// SubLink is a subquery in an expression.
type SubLink struct {
	SubLinkType SubLinkType `json:"subLinkType"`
	SubLinkID   int         `json:"subLinkId"`
	Testexpr    Node        `json:"testexpr"`
	OperName    []Node      `json:"operName"`
	Subselect   Node        `json:"subselect"`
	Location    int         `json:"location"`
}

// CaseExpr is CASE [arg] WHEN ... END.
type CaseExpr struct {
	Arg       Node   `json:"arg"`
	Args      []Node `json:"args"`
	Defresult Node   `json:"defresult"`
	Location  int    `json:"location"`
}

// CaseWhen is one WHEN arm of a CaseExpr.
type CaseWhen struct {
	Expr     Node `json:"expr"`
	Result   Node `json:"result"`
	Location int  `json:"location"`
}

// RowExpr is ROW(...) or an implicit row (a, b).
type RowExpr struct {
	Args      []Node       `json:"args"`
	RowFormat CoercionForm `json:"row_format"`
	Colnames  []Node       `json:"colnames"`
	Location  int          `json:"location"`
}

// CoalesceExpr is COALESCE(...).
type CoalesceExpr struct {
	Args     []Node `json:"args"`
	Location int    `json:"location"`
}

// MinMaxExpr is GREATEST(...) or LEAST(...).
type MinMaxExpr struct {
	Op       MinMaxOp `json:"op"`
	Args     []Node   `json:"args"`
	Location int      `json:"location"`
}

// SQLValueFunction is CURRENT_DATE, CURRENT_USER and the like.
type SQLValueFunction struct {
	Op       SQLValueFunctionOp `json:"op"`
	Typmod   int                `json:"typmod"`
	Location int                `json:"location"`
}

// NullTest is IS [NOT] NULL.
type NullTest struct {
	Arg          Node         `json:"arg"`
	Nulltesttype NullTestType `json:"nulltesttype"`
	Argisrow     bool         `json:"argisrow"`
	Location     int          `json:"location"`
}

// BooleanTest is IS [NOT] TRUE, FALSE or UNKNOWN.
type BooleanTest struct {
	Arg          Node         `json:"arg"`
	Booltesttype BoolTestType `json:"booltesttype"`
	Location     int          `json:"location"`
}

// SetToDefault is DEFAULT used as a value in INSERT or UPDATE.
type SetToDefault struct {
	Location int `json:"location"`
}

// CurrentOfExpr is WHERE CURRENT OF cursor.
type CurrentOfExpr struct {
	CursorName string `json:"cursor_name"`
}

// GroupingSet is ROLLUP, CUBE, GROUPING SETS or ().
type GroupingSet struct {
	Kind     GroupingSetKind `json:"kind"`
	Content  []Node          `json:"content"`
	Location int             `json:"location"`
}

// GroupingFunc is GROUPING(...).
type GroupingFunc struct {
	Args     []Node `json:"args"`
	Location int    `json:"location"`
}

// NamedArgExpr is a name => value function argument.
type NamedArgExpr struct {
	Arg       Node   `json:"arg"`
	Name      string `json:"name"`
	Argnumber int    `json:"argnumber"`
	Location  int    `json:"location"`
}

// TypeName names a type with its modifiers. Typemod is -1 when unset.
type TypeName struct {
	Names       []Node `json:"names"`
	Setof       bool   `json:"setof"`
	PctType     bool   `json:"pct_type"`
	Typmods     []Node `json:"typmods"`
	Typemod     int    `json:"typemod"`
	ArrayBounds []Node `json:"arrayBounds"`
	Location    int    `json:"location"`
}

// SortBy is an ORDER BY item.
type SortBy struct {
	Node        Node        `json:"node"`
	SortbyDir   SortByDir   `json:"sortby_dir"`
	SortbyNulls SortByNulls `json:"sortby_nulls"`
	UseOp       []Node      `json:"useOp"`
	Location    int         `json:"location"`
}

// WindowDef is an OVER clause or a WINDOW clause entry.
type WindowDef struct {
	Name            string `json:"name"`
	Refname         string `json:"refname"`
	PartitionClause []Node `json:"partitionClause"`
	OrderClause     []Node `json:"orderClause"`
	FrameOptions    int    `json:"frameOptions"`
	StartOffset     Node   `json:"startOffset"`
	EndOffset       Node   `json:"endOffset"`
	Location        int    `json:"location"`
}
