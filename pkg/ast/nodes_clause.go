package ast

// ---------- FROM clause ----------

// RangeVar names a relation. Inh is false for ONLY; Relpersistence is
// "p" (permanent), "u" (unlogged) or "t" (temporary).
type RangeVar struct {
	Catalogname    string `json:"catalogname"`
	Schemaname     string `json:"schemaname"`
	Relname        string `json:"relname"`
	Inh            bool   `json:"inh"`
	Relpersistence string `json:"relpersistence"`
	Alias          *Alias `json:"alias"`
	Location       int    `json:"location"`
}

// Alias is an AS name with optional column aliases.
type Alias struct {
	Aliasname string `json:"aliasname"`
	Colnames  []Node `json:"colnames"`
}

// JoinExpr is a JOIN between two FROM items.
type JoinExpr struct {
	Jointype       JoinType `json:"jointype"`
	IsNatural      bool     `json:"isNatural"`
	Larg           Node     `json:"larg"`
	Rarg           Node     `json:"rarg"`
	UsingClause    []Node   `json:"usingClause"`
	JoinUsingAlias *Alias   `json:"join_using_alias"`
	Quals          Node     `json:"quals"`
	Alias          *Alias   `json:"alias"`
}

// RangeSubselect is a subquery in FROM.
type RangeSubselect struct {
	Lateral  bool   `json:"lateral"`
	Subquery Node   `json:"subquery"`
	Alias    *Alias `json:"alias"`
}

// RangeFunction is a function call in FROM. Each Functions item is a List
// of the call and its column definition list.
type RangeFunction struct {
	Lateral    bool   `json:"lateral"`
	Ordinality bool   `json:"ordinality"`
	IsRowsfrom bool   `json:"is_rowsfrom"`
	Functions  []Node `json:"functions"`
	Alias      *Alias `json:"alias"`
	Coldeflist []Node `json:"coldeflist"`
}

// RangeTableSample is FROM rel TABLESAMPLE method (args) [REPEATABLE (seed)].
type RangeTableSample struct {
	Relation   Node   `json:"relation"`
	Method     []Node `json:"method"`
	Args       []Node `json:"args"`
	Repeatable Node   `json:"repeatable"`
	Location   int    `json:"location"`
}

// ---------- Query clauses ----------

// WithClause is WITH [RECURSIVE] and its CTEs.
type WithClause struct {
	Ctes      []Node `json:"ctes"`
	Recursive bool   `json:"recursive"`
	Location  int    `json:"location"`
}

// CommonTableExpr is one WITH query.
type CommonTableExpr struct {
	Ctename         string         `json:"ctename"`
	Aliascolnames   []Node         `json:"aliascolnames"`
	Ctematerialized CTEMaterialize `json:"ctematerialized"`
	Ctequery        Node           `json:"ctequery"`
	Location        int            `json:"location"`
}

// IntoClause is the target of SELECT INTO and CREATE TABLE AS.
type IntoClause struct {
	Rel            *RangeVar      `json:"rel"`
	ColNames       []Node         `json:"colNames"`
	AccessMethod   string         `json:"accessMethod"`
	Options        []Node         `json:"options"`
	OnCommit       OnCommitAction `json:"onCommit"`
	TableSpaceName string         `json:"tableSpaceName"`
	SkipData       bool           `json:"skipData"`
}

// OnConflictClause is INSERT ... ON CONFLICT.
type OnConflictClause struct {
	Action      OnConflictAction `json:"action"`
	Infer       *InferClause     `json:"infer"`
	TargetList  []Node           `json:"targetList"`
	WhereClause Node             `json:"whereClause"`
	Location    int              `json:"location"`
}

// InferClause is the conflict target of ON CONFLICT.
type InferClause struct {
	IndexElems  []Node `json:"indexElems"`
	WhereClause Node   `json:"whereClause"`
	Conname     string `json:"conname"`
	Location    int    `json:"location"`
}

// LockingClause is FOR UPDATE / FOR SHARE.
type LockingClause struct {
	LockedRels []Node             `json:"lockedRels"`
	Strength   LockClauseStrength `json:"strength"`
	WaitPolicy LockWaitPolicy     `json:"waitPolicy"`
}

// ---------- DDL pieces ----------

// ColumnDef is a column definition in CREATE TABLE or ALTER TABLE ADD.
type ColumnDef struct {
	Colname     string         `json:"colname"`
	TypeName    *TypeName      `json:"typeName"`
	Compression string         `json:"compression"`
	IsLocal     bool           `json:"is_local"`
	IsNotNull   bool           `json:"is_not_null"`
	RawDefault  Node           `json:"raw_default"`
	Identity    string         `json:"identity"`
	Generated   string         `json:"generated"`
	CollClause  *CollateClause `json:"collClause"`
	Constraints []Node         `json:"constraints"`
	Location    int            `json:"location"`
}

// Constraint is a column or table constraint. Foreign key actions and
// match types use PostgreSQL's one-letter codes.
type Constraint struct {
	Contype          ConstrType `json:"contype"`
	Conname          string     `json:"conname"`
	Deferrable       bool       `json:"deferrable"`
	Initdeferred     bool       `json:"initdeferred"`
	Location         int        `json:"location"`
	IsNoInherit      bool       `json:"is_no_inherit"`
	RawExpr          Node       `json:"raw_expr"`
	GeneratedWhen    string     `json:"generated_when"`
	NullsNotDistinct bool       `json:"nulls_not_distinct"`
	Keys             []Node     `json:"keys"`
	Including        []Node     `json:"including"`
	Options          []Node     `json:"options"`
	Indexname        string     `json:"indexname"`
	Indexspace       string     `json:"indexspace"`
	WhereClause      Node       `json:"where_clause"`
	Pktable          *RangeVar  `json:"pktable"`
	FkAttrs          []Node     `json:"fk_attrs"`
	PkAttrs          []Node     `json:"pk_attrs"`
	FkMatchtype      string     `json:"fk_matchtype"`
	FkUpdAction      string     `json:"fk_upd_action"`
	FkDelAction      string     `json:"fk_del_action"`
	SkipValidation   bool       `json:"skip_validation"`
	InitiallyValid   bool       `json:"initially_valid"`
}

// IndexElem is one index column or expression.
type IndexElem struct {
	Name          string      `json:"name"`
	Expr          Node        `json:"expr"`
	Indexcolname  string      `json:"indexcolname"`
	Collation     []Node      `json:"collation"`
	Opclass       []Node      `json:"opclass"`
	Ordering      SortByDir   `json:"ordering"`
	NullsOrdering SortByNulls `json:"nulls_ordering"`
}

// DefElem is a generic name = value option.
type DefElem struct {
	Defnamespace string        `json:"defnamespace"`
	Defname      string        `json:"defname"`
	Arg          Node          `json:"arg"`
	Defaction    DefElemAction `json:"defaction"`
	Location     int           `json:"location"`
}

// PartitionSpec is PARTITION BY strategy (elems).
type PartitionSpec struct {
	Strategy   string `json:"strategy"`
	PartParams []Node `json:"partParams"`
	Location   int    `json:"location"`
}

// PartitionElem is one partition key column or expression.
type PartitionElem struct {
	Name      string `json:"name"`
	Expr      Node   `json:"expr"`
	Collation []Node `json:"collation"`
	Opclass   []Node `json:"opclass"`
	Location  int    `json:"location"`
}

// TableLikeClause is LIKE source_table inside CREATE TABLE.
type TableLikeClause struct {
	Relation *RangeVar `json:"relation"`
	Options  int       `json:"options"`
}

// FunctionParameter is one parameter of CREATE FUNCTION.
type FunctionParameter struct {
	Name    string                `json:"name"`
	ArgType *TypeName             `json:"argType"`
	Mode    FunctionParameterMode `json:"mode"`
	Defexpr Node                  `json:"defexpr"`
}

// ObjectWithArgs names a function-like object with an optional signature.
type ObjectWithArgs struct {
	Objname         []Node `json:"objname"`
	Objargs         []Node `json:"objargs"`
	ArgsUnspecified bool   `json:"args_unspecified"`
}

// RoleSpec names a role or one of the special role keywords.
type RoleSpec struct {
	Roletype RoleSpecType `json:"roletype"`
	Rolename string       `json:"rolename"`
	Location int          `json:"location"`
}

// AccessPriv is one privilege of GRANT/REVOKE; a nil list means ALL.
type AccessPriv struct {
	PrivName string `json:"priv_name"`
	Cols     []Node `json:"cols"`
}

// VacuumRelation is one table of VACUUM or ANALYZE.
type VacuumRelation struct {
	Relation *RangeVar `json:"relation"`
	VaCols   []Node    `json:"va_cols"`
}
