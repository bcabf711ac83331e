package ast

// ---------- DML ----------

// SelectStmt is a SELECT, VALUES, or a set operation. For set operations
// Op is set and Larg/Rarg hold the operands.
type SelectStmt struct {
	DistinctClause []Node       `json:"distinctClause"`
	IntoClause     *IntoClause  `json:"intoClause"`
	TargetList     []Node       `json:"targetList"`
	FromClause     []Node       `json:"fromClause"`
	WhereClause    Node         `json:"whereClause"`
	GroupClause    []Node       `json:"groupClause"`
	GroupDistinct  bool         `json:"groupDistinct"`
	HavingClause   Node         `json:"havingClause"`
	WindowClause   []Node       `json:"windowClause"`
	ValuesLists    []Node       `json:"valuesLists"`
	SortClause     []Node       `json:"sortClause"`
	LimitOffset    Node         `json:"limitOffset"`
	LimitCount     Node         `json:"limitCount"`
	LimitOption    LimitOption  `json:"limitOption"`
	LockingClause  []Node       `json:"lockingClause"`
	WithClause     *WithClause  `json:"withClause"`
	Op             SetOperation `json:"op"`
	All            bool         `json:"all"`
	Larg           *SelectStmt  `json:"larg"`
	Rarg           *SelectStmt  `json:"rarg"`
}

// InsertStmt is INSERT INTO; SelectStmt is nil for DEFAULT VALUES.
type InsertStmt struct {
	Relation         *RangeVar         `json:"relation"`
	Cols             []Node            `json:"cols"`
	SelectStmt       Node              `json:"selectStmt"`
	OnConflictClause *OnConflictClause `json:"onConflictClause"`
	ReturningList    []Node            `json:"returningList"`
	WithClause       *WithClause       `json:"withClause"`
	Override         OverridingKind    `json:"override"`
}

// UpdateStmt is UPDATE ... SET; TargetList holds ResTargets naming the columns.
type UpdateStmt struct {
	Relation      *RangeVar   `json:"relation"`
	TargetList    []Node      `json:"targetList"`
	WhereClause   Node        `json:"whereClause"`
	FromClause    []Node      `json:"fromClause"`
	ReturningList []Node      `json:"returningList"`
	WithClause    *WithClause `json:"withClause"`
}

// DeleteStmt is DELETE FROM.
type DeleteStmt struct {
	Relation      *RangeVar   `json:"relation"`
	UsingClause   []Node      `json:"usingClause"`
	WhereClause   Node        `json:"whereClause"`
	ReturningList []Node      `json:"returningList"`
	WithClause    *WithClause `json:"withClause"`
}

// MergeStmt is MERGE INTO relation USING source ON condition.
type MergeStmt struct {
	Relation         *RangeVar   `json:"relation"`
	SourceRelation   Node        `json:"sourceRelation"`
	JoinCondition    Node        `json:"joinCondition"`
	MergeWhenClauses []Node      `json:"mergeWhenClauses"`
	WithClause       *WithClause `json:"withClause"`
}

// MergeWhenClause is one WHEN [NOT] MATCHED arm of a MERGE. TargetList
// holds SET targets for UPDATE and the column list for INSERT.
type MergeWhenClause struct {
	Matched     bool           `json:"matched"`
	CommandType CmdType        `json:"commandType"`
	Override    OverridingKind `json:"override"`
	Condition   Node           `json:"condition"`
	TargetList  []Node         `json:"targetList"`
	Values      []Node         `json:"values"`
}

// ---------- DDL ----------

// CreateStmt is CREATE TABLE with a column list.
type CreateStmt struct {
	Relation       *RangeVar      `json:"relation"`
	TableElts      []Node         `json:"tableElts"`
	InhRelations   []Node         `json:"inhRelations"`
	Partspec       *PartitionSpec `json:"partspec"`
	Options        []Node         `json:"options"`
	Oncommit       OnCommitAction `json:"oncommit"`
	Tablespacename string         `json:"tablespacename"`
	AccessMethod   string         `json:"accessMethod"`
	IfNotExists    bool           `json:"if_not_exists"`
}

// CreateTableAsStmt is CREATE TABLE AS, SELECT INTO's DDL form, and
// CREATE MATERIALIZED VIEW.
type CreateTableAsStmt struct {
	Query        Node        `json:"query"`
	Into         *IntoClause `json:"into"`
	Objtype      ObjectType  `json:"objtype"`
	IsSelectInto bool        `json:"is_select_into"`
	IfNotExists  bool        `json:"if_not_exists"`
}

// RefreshMatViewStmt is REFRESH MATERIALIZED VIEW.
type RefreshMatViewStmt struct {
	Concurrent bool      `json:"concurrent"`
	SkipData   bool      `json:"skipData"`
	Relation   *RangeVar `json:"relation"`
}

// IndexStmt is CREATE INDEX.
type IndexStmt struct {
	Idxname              string    `json:"idxname"`
	Relation             *RangeVar `json:"relation"`
	AccessMethod         string    `json:"accessMethod"`
	TableSpace           string    `json:"tableSpace"`
	IndexParams          []Node    `json:"indexParams"`
	IndexIncludingParams []Node    `json:"indexIncludingParams"`
	Options              []Node    `json:"options"`
	WhereClause          Node      `json:"whereClause"`
	Unique               bool      `json:"unique"`
	NullsNotDistinct     bool      `json:"nulls_not_distinct"`
	Concurrent           bool      `json:"concurrent"`
	IfNotExists          bool      `json:"if_not_exists"`
}

// ViewStmt is CREATE [OR REPLACE] VIEW.
type ViewStmt struct {
	View            *RangeVar       `json:"view"`
	Aliases         []Node          `json:"aliases"`
	Query           Node            `json:"query"`
	Replace         bool            `json:"replace"`
	Options         []Node          `json:"options"`
	WithCheckOption ViewCheckOption `json:"withCheckOption"`
}

// CreateSchemaStmt is CREATE SCHEMA with any nested element statements.
type CreateSchemaStmt struct {
	Schemaname  string    `json:"schemaname"`
	Authrole    *RoleSpec `json:"authrole"`
	SchemaElts  []Node    `json:"schemaElts"`
	IfNotExists bool      `json:"if_not_exists"`
}

// CreateSeqStmt is CREATE SEQUENCE; Options are DefElems.
type CreateSeqStmt struct {
	Sequence    *RangeVar `json:"sequence"`
	Options     []Node    `json:"options"`
	IfNotExists bool      `json:"if_not_exists"`
}

// AlterSeqStmt is ALTER SEQUENCE with sequence options.
type AlterSeqStmt struct {
	Sequence    *RangeVar `json:"sequence"`
	Options     []Node    `json:"options"`
	ForIdentity bool      `json:"for_identity"`
	MissingOk   bool      `json:"missing_ok"`
}

// CreateTrigStmt is CREATE [CONSTRAINT] TRIGGER. Timing and Events are
// TriggerType bit sets.
type CreateTrigStmt struct {
	Replace        bool      `json:"replace"`
	Isconstraint   bool      `json:"isconstraint"`
	Trigname       string    `json:"trigname"`
	Relation       *RangeVar `json:"relation"`
	Funcname       []Node    `json:"funcname"`
	Args           []Node    `json:"args"`
	Row            bool      `json:"row"`
	Timing         int       `json:"timing"`
	Events         int       `json:"events"`
	Columns        []Node    `json:"columns"`
	WhenClause     Node      `json:"whenClause"`
	TransitionRels []Node    `json:"transitionRels"`
	Deferrable     bool      `json:"deferrable"`
	Initdeferred   bool      `json:"initdeferred"`
	Constrrel      *RangeVar `json:"constrrel"`
}

// TriggerTransition is one REFERENCING OLD|NEW TABLE AS name item.
type TriggerTransition struct {
	Name    string `json:"name"`
	IsNew   bool   `json:"isNew"`
	IsTable bool   `json:"isTable"`
}

// CreateRoleStmt is CREATE ROLE, CREATE USER or CREATE GROUP.
type CreateRoleStmt struct {
	StmtType RoleStmtType `json:"stmt_type"`
	Role     string       `json:"role"`
	Options  []Node       `json:"options"`
}

// CreateFunctionStmt is CREATE FUNCTION or CREATE PROCEDURE.
type CreateFunctionStmt struct {
	IsProcedure bool      `json:"is_procedure"`
	Replace     bool      `json:"replace"`
	Funcname    []Node    `json:"funcname"`
	Parameters  []Node    `json:"parameters"`
	ReturnType  *TypeName `json:"returnType"`
	Options     []Node    `json:"options"`
	SQLBody     Node      `json:"sql_body"`
}

// ReturnStmt is RETURN expr in a SQL-standard function body.
type ReturnStmt struct {
	Returnval Node `json:"returnval"`
}

// DoStmt is an anonymous code block; Args are DefElems "as" and "language".
type DoStmt struct {
	Args []Node `json:"args"`
}

// CallStmt is CALL procedure(args).
type CallStmt struct {
	Funccall *FuncCall `json:"funccall"`
}

// CreateExtensionStmt is CREATE EXTENSION.
type CreateExtensionStmt struct {
	Extname     string `json:"extname"`
	IfNotExists bool   `json:"if_not_exists"`
	Options     []Node `json:"options"`
}

// CreateEnumStmt is CREATE TYPE name AS ENUM (labels).
type CreateEnumStmt struct {
	TypeName []Node `json:"typeName"`
	Vals     []Node `json:"vals"`
}

// CompositeTypeStmt is CREATE TYPE name AS (columns).
type CompositeTypeStmt struct {
	Typevar    *RangeVar `json:"typevar"`
	Coldeflist []Node    `json:"coldeflist"`
}

// CreateDomainStmt is CREATE DOMAIN.
type CreateDomainStmt struct {
	Domainname  []Node         `json:"domainname"`
	TypeName    *TypeName      `json:"typeName"`
	CollClause  *CollateClause `json:"collClause"`
	Constraints []Node         `json:"constraints"`
}

// AlterTableStmt is ALTER TABLE, INDEX, SEQUENCE, VIEW or MATERIALIZED VIEW
// with a list of AlterTableCmds.
type AlterTableStmt struct {
	Relation  *RangeVar  `json:"relation"`
	Cmds      []Node     `json:"cmds"`
	Objtype   ObjectType `json:"objtype"`
	MissingOk bool       `json:"missing_ok"`
}

// AlterTableCmd is one subcommand of an AlterTableStmt.
type AlterTableCmd struct {
	Subtype   AlterTableType `json:"subtype"`
	Name      string         `json:"name"`
	Num       int            `json:"num"`
	Newowner  *RoleSpec      `json:"newowner"`
	Def       Node           `json:"def"`
	Behavior  DropBehavior   `json:"behavior"`
	MissingOk bool           `json:"missing_ok"`
}

// RenameStmt is ALTER ... RENAME.
type RenameStmt struct {
	RenameType   ObjectType   `json:"renameType"`
	RelationType ObjectType   `json:"relationType"`
	Relation     *RangeVar    `json:"relation"`
	Object       Node         `json:"object"`
	Subname      string       `json:"subname"`
	Newname      string       `json:"newname"`
	Behavior     DropBehavior `json:"behavior"`
	MissingOk    bool         `json:"missing_ok"`
}

// DropStmt is DROP object_type.
type DropStmt struct {
	Objects    []Node       `json:"objects"`
	RemoveType ObjectType   `json:"removeType"`
	Behavior   DropBehavior `json:"behavior"`
	MissingOk  bool         `json:"missing_ok"`
	Concurrent bool         `json:"concurrent"`
}

// TruncateStmt is TRUNCATE.
type TruncateStmt struct {
	Relations   []Node       `json:"relations"`
	RestartSeqs bool         `json:"restart_seqs"`
	Behavior    DropBehavior `json:"behavior"`
}

// CommentStmt is COMMENT ON; Comment is empty for IS NULL.
type CommentStmt struct {
	Objtype ObjectType `json:"objtype"`
	Object  Node       `json:"object"`
	Comment string     `json:"comment"`
}

// GrantStmt is GRANT or REVOKE on objects. Privileges is nil for ALL.
type GrantStmt struct {
	IsGrant     bool            `json:"is_grant"`
	Targtype    GrantTargetType `json:"targtype"`
	Objtype     ObjectType      `json:"objtype"`
	Objects     []Node          `json:"objects"`
	Privileges  []Node          `json:"privileges"`
	Grantees    []Node          `json:"grantees"`
	GrantOption bool            `json:"grant_option"`
	Grantor     *RoleSpec       `json:"grantor"`
	Behavior    DropBehavior    `json:"behavior"`
}

// ---------- Utility ----------

// TransactionStmt is BEGIN, COMMIT, ROLLBACK, SAVEPOINT and the other
// transaction control statements.
type TransactionStmt struct {
	Kind          TransactionStmtKind `json:"kind"`
	Options       []Node              `json:"options"`
	SavepointName string              `json:"savepoint_name"`
	Gid           string              `json:"gid"`
	Chain         bool                `json:"chain"`
}

// VariableSetStmt is SET or RESET.
type VariableSetStmt struct {
	Kind    VariableSetKind `json:"kind"`
	Name    string          `json:"name"`
	Args    []Node          `json:"args"`
	IsLocal bool            `json:"is_local"`
}

// VariableShowStmt is SHOW.
type VariableShowStmt struct {
	Name string `json:"name"`
}

// ExplainStmt is EXPLAIN; Options are DefElems.
type ExplainStmt struct {
	Query   Node   `json:"query"`
	Options []Node `json:"options"`
}

// PrepareStmt is PREPARE name AS query.
type PrepareStmt struct {
	Name     string `json:"name"`
	Argtypes []Node `json:"argtypes"`
	Query    Node   `json:"query"`
}

// ExecuteStmt is EXECUTE name(params).
type ExecuteStmt struct {
	Name   string `json:"name"`
	Params []Node `json:"params"`
}

// DeallocateStmt releases a prepared statement; Name is empty for ALL.
type DeallocateStmt struct {
	Name string `json:"name"`
}

// ListenStmt is LISTEN.
type ListenStmt struct {
	Conditionname string `json:"conditionname"`
}

// UnlistenStmt stops listening; Conditionname is empty for UNLISTEN *.
type UnlistenStmt struct {
	Conditionname string `json:"conditionname"`
}

// NotifyStmt is NOTIFY with an optional payload.
type NotifyStmt struct {
	Conditionname string `json:"conditionname"`
	Payload       string `json:"payload"`
}

// VacuumStmt is VACUUM or ANALYZE.
type VacuumStmt struct {
	Options     []Node `json:"options"`
	Rels        []Node `json:"rels"`
	IsVacuumcmd bool   `json:"is_vacuumcmd"`
}

// LockStmt is LOCK TABLE; Mode is the lock mode number 1-8.
type LockStmt struct {
	Relations []Node `json:"relations"`
	Mode      int    `json:"mode"`
	Nowait    bool   `json:"nowait"`
}

// CopyStmt is COPY to or from a file, program or STDIN/STDOUT.
type CopyStmt struct {
	Relation    *RangeVar `json:"relation"`
	Query       Node      `json:"query"`
	Attlist     []Node    `json:"attlist"`
	IsFrom      bool      `json:"is_from"`
	IsProgram   bool      `json:"is_program"`
	Filename    string    `json:"filename"`
	Options     []Node    `json:"options"`
	WhereClause Node      `json:"whereClause"`
}

// DeclareCursorStmt is DECLARE ... CURSOR; Options holds CursorOpt bits.
type DeclareCursorStmt struct {
	Portalname string `json:"portalname"`
	Options    int    `json:"options"`
	Query      Node   `json:"query"`
}

// FetchStmt is FETCH or MOVE (Ismove).
type FetchStmt struct {
	Direction  FetchDirection `json:"direction"`
	HowMany    int            `json:"howMany"`
	Portalname string         `json:"portalname"`
	Ismove     bool           `json:"ismove"`
}

// ClosePortalStmt closes a cursor; Portalname is empty for CLOSE ALL.
type ClosePortalStmt struct {
	Portalname string `json:"portalname"`
}

// DiscardStmt is DISCARD.
type DiscardStmt struct {
	Target DiscardMode `json:"target"`
}

// CheckPointStmt is CHECKPOINT.
type CheckPointStmt struct{}
