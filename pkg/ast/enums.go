package ast

import "reflect"

// Enumerated field types. The zero value of each is the PostgreSQL
// default, so it is omitted from the canonical form.

type SetOperation int

const (
	SETOP_NONE SetOperation = iota
	SETOP_UNION
	SETOP_INTERSECT
	SETOP_EXCEPT
)

var setOperationNames = []string{"SETOP_NONE", "SETOP_UNION", "SETOP_INTERSECT", "SETOP_EXCEPT"}

func (v SetOperation) String() string { return enumString(setOperationNames, int(v)) }

type LimitOption int

const (
	LIMIT_OPTION_DEFAULT LimitOption = iota
	LIMIT_OPTION_COUNT
	LIMIT_OPTION_WITH_TIES
)

var limitOptionNames = []string{"LIMIT_OPTION_DEFAULT", "LIMIT_OPTION_COUNT", "LIMIT_OPTION_WITH_TIES"}

func (v LimitOption) String() string { return enumString(limitOptionNames, int(v)) }

type A_Expr_Kind int

const (
	AEXPR_OP A_Expr_Kind = iota
	AEXPR_OP_ANY
	AEXPR_OP_ALL
	AEXPR_DISTINCT
	AEXPR_NOT_DISTINCT
	AEXPR_NULLIF
	AEXPR_IN
	AEXPR_LIKE
	AEXPR_ILIKE
	AEXPR_SIMILAR
	AEXPR_BETWEEN
	AEXPR_NOT_BETWEEN
	AEXPR_BETWEEN_SYM
	AEXPR_NOT_BETWEEN_SYM
)

var aExprKindNames = []string{"AEXPR_OP", "AEXPR_OP_ANY", "AEXPR_OP_ALL", "AEXPR_DISTINCT", "AEXPR_NOT_DISTINCT", "AEXPR_NULLIF", "AEXPR_IN", "AEXPR_LIKE", "AEXPR_ILIKE", "AEXPR_SIMILAR", "AEXPR_BETWEEN", "AEXPR_NOT_BETWEEN", "AEXPR_BETWEEN_SYM", "AEXPR_NOT_BETWEEN_SYM"}

func (v A_Expr_Kind) String() string { return enumString(aExprKindNames, int(v)) }

type BoolExprType int

const (
	AND_EXPR BoolExprType = iota
	OR_EXPR
	NOT_EXPR
)

var boolExprTypeNames = []string{"AND_EXPR", "OR_EXPR", "NOT_EXPR"}

func (v BoolExprType) String() string { return enumString(boolExprTypeNames, int(v)) }

type SubLinkType int

const (
	EXISTS_SUBLINK SubLinkType = iota
	ALL_SUBLINK
	ANY_SUBLINK
	ROWCOMPARE_SUBLINK
	EXPR_SUBLINK
	MULTIEXPR_SUBLINK
	ARRAY_SUBLINK
	CTE_SUBLINK
)

var subLinkTypeNames = []string{"EXISTS_SUBLINK", "ALL_SUBLINK", "ANY_SUBLINK", "ROWCOMPARE_SUBLINK", "EXPR_SUBLINK", "MULTIEXPR_SUBLINK", "ARRAY_SUBLINK", "CTE_SUBLINK"}

func (v SubLinkType) String() string { return enumString(subLinkTypeNames, int(v)) }

type NullTestType int

const (
	IS_NULL NullTestType = iota
	IS_NOT_NULL
)

var nullTestTypeNames = []string{"IS_NULL", "IS_NOT_NULL"}

func (v NullTestType) String() string { return enumString(nullTestTypeNames, int(v)) }

type BoolTestType int

const (
	IS_TRUE BoolTestType = iota
	IS_NOT_TRUE
	IS_FALSE
	IS_NOT_FALSE
	IS_UNKNOWN
	IS_NOT_UNKNOWN
)

var boolTestTypeNames = []string{"IS_TRUE", "IS_NOT_TRUE", "IS_FALSE", "IS_NOT_FALSE", "IS_UNKNOWN", "IS_NOT_UNKNOWN"}

func (v BoolTestType) String() string { return enumString(boolTestTypeNames, int(v)) }

type JoinType int

const (
	JOIN_INNER JoinType = iota
	JOIN_LEFT
	JOIN_FULL
	JOIN_RIGHT
)

var joinTypeNames = []string{"JOIN_INNER", "JOIN_LEFT", "JOIN_FULL", "JOIN_RIGHT"}

func (v JoinType) String() string { return enumString(joinTypeNames, int(v)) }

type SortByDir int

const (
	SORTBY_DEFAULT SortByDir = iota
	SORTBY_ASC
	SORTBY_DESC
	SORTBY_USING
)

var sortByDirNames = []string{"SORTBY_DEFAULT", "SORTBY_ASC", "SORTBY_DESC", "SORTBY_USING"}

func (v SortByDir) String() string { return enumString(sortByDirNames, int(v)) }

type SortByNulls int

const (
	SORTBY_NULLS_DEFAULT SortByNulls = iota
	SORTBY_NULLS_FIRST
	SORTBY_NULLS_LAST
)

var sortByNullsNames = []string{"SORTBY_NULLS_DEFAULT", "SORTBY_NULLS_FIRST", "SORTBY_NULLS_LAST"}

func (v SortByNulls) String() string { return enumString(sortByNullsNames, int(v)) }

type MinMaxOp int

const (
	IS_GREATEST MinMaxOp = iota
	IS_LEAST
)

var minMaxOpNames = []string{"IS_GREATEST", "IS_LEAST"}

func (v MinMaxOp) String() string { return enumString(minMaxOpNames, int(v)) }

type SQLValueFunctionOp int

const (
	SVFOP_CURRENT_DATE SQLValueFunctionOp = iota
	SVFOP_CURRENT_TIME
	SVFOP_CURRENT_TIME_N
	SVFOP_CURRENT_TIMESTAMP
	SVFOP_CURRENT_TIMESTAMP_N
	SVFOP_LOCALTIME
	SVFOP_LOCALTIME_N
	SVFOP_LOCALTIMESTAMP
	SVFOP_LOCALTIMESTAMP_N
	SVFOP_CURRENT_ROLE
	SVFOP_CURRENT_USER
	SVFOP_USER
	SVFOP_SESSION_USER
	SVFOP_CURRENT_CATALOG
	SVFOP_CURRENT_SCHEMA
)

var sqlValueFunctionOpNames = []string{"SVFOP_CURRENT_DATE", "SVFOP_CURRENT_TIME", "SVFOP_CURRENT_TIME_N", "SVFOP_CURRENT_TIMESTAMP", "SVFOP_CURRENT_TIMESTAMP_N", "SVFOP_LOCALTIME", "SVFOP_LOCALTIME_N", "SVFOP_LOCALTIMESTAMP", "SVFOP_LOCALTIMESTAMP_N", "SVFOP_CURRENT_ROLE", "SVFOP_CURRENT_USER", "SVFOP_USER", "SVFOP_SESSION_USER", "SVFOP_CURRENT_CATALOG", "SVFOP_CURRENT_SCHEMA"}

func (v SQLValueFunctionOp) String() string { return enumString(sqlValueFunctionOpNames, int(v)) }

type CoercionForm int

const (
	COERCE_EXPLICIT_CALL CoercionForm = iota
	COERCE_EXPLICIT_CAST
	COERCE_IMPLICIT_CAST
	COERCE_SQL_SYNTAX
)

var coercionFormNames = []string{"COERCE_EXPLICIT_CALL", "COERCE_EXPLICIT_CAST", "COERCE_IMPLICIT_CAST", "COERCE_SQL_SYNTAX"}

func (v CoercionForm) String() string { return enumString(coercionFormNames, int(v)) }

type ObjectType int

const (
	OBJECT_ACCESS_METHOD ObjectType = iota
	OBJECT_AGGREGATE
	OBJECT_COLUMN
	OBJECT_DATABASE
	OBJECT_DOMAIN
	OBJECT_EXTENSION
	OBJECT_FOREIGN_TABLE
	OBJECT_FUNCTION
	OBJECT_INDEX
	OBJECT_MATVIEW
	OBJECT_PROCEDURE
	OBJECT_ROLE
	OBJECT_ROUTINE
	OBJECT_SCHEMA
	OBJECT_SEQUENCE
	OBJECT_TABCONSTRAINT
	OBJECT_TABLE
	OBJECT_TRIGGER
	OBJECT_TYPE
	OBJECT_VIEW
)

var objectTypeNames = []string{"OBJECT_ACCESS_METHOD", "OBJECT_AGGREGATE", "OBJECT_COLUMN", "OBJECT_DATABASE", "OBJECT_DOMAIN", "OBJECT_EXTENSION", "OBJECT_FOREIGN_TABLE", "OBJECT_FUNCTION", "OBJECT_INDEX", "OBJECT_MATVIEW", "OBJECT_PROCEDURE", "OBJECT_ROLE", "OBJECT_ROUTINE", "OBJECT_SCHEMA", "OBJECT_SEQUENCE", "OBJECT_TABCONSTRAINT", "OBJECT_TABLE", "OBJECT_TRIGGER", "OBJECT_TYPE", "OBJECT_VIEW"}

func (v ObjectType) String() string { return enumString(objectTypeNames, int(v)) }

type DropBehavior int

const (
	DROP_RESTRICT DropBehavior = iota
	DROP_CASCADE
)

var dropBehaviorNames = []string{"DROP_RESTRICT", "DROP_CASCADE"}

func (v DropBehavior) String() string { return enumString(dropBehaviorNames, int(v)) }

type ConstrType int

const (
	CONSTR_NULL ConstrType = iota
	CONSTR_NOTNULL
	CONSTR_DEFAULT
	CONSTR_IDENTITY
	CONSTR_GENERATED
	CONSTR_CHECK
	CONSTR_PRIMARY
	CONSTR_UNIQUE
	CONSTR_EXCLUSION
	CONSTR_FOREIGN
	CONSTR_ATTR_DEFERRABLE
	CONSTR_ATTR_NOT_DEFERRABLE
	CONSTR_ATTR_DEFERRED
	CONSTR_ATTR_IMMEDIATE
)

var constrTypeNames = []string{"CONSTR_NULL", "CONSTR_NOTNULL", "CONSTR_DEFAULT", "CONSTR_IDENTITY", "CONSTR_GENERATED", "CONSTR_CHECK", "CONSTR_PRIMARY", "CONSTR_UNIQUE", "CONSTR_EXCLUSION", "CONSTR_FOREIGN", "CONSTR_ATTR_DEFERRABLE", "CONSTR_ATTR_NOT_DEFERRABLE", "CONSTR_ATTR_DEFERRED", "CONSTR_ATTR_IMMEDIATE"}

func (v ConstrType) String() string { return enumString(constrTypeNames, int(v)) }

type AlterTableType int

const (
	AT_AddColumn AlterTableType = iota
	AT_ColumnDefault
	AT_DropNotNull
	AT_SetNotNull
	AT_DropColumn
	AT_AddConstraint
	AT_ValidateConstraint
	AT_DropConstraint
	AT_AlterColumnType
	AT_ChangeOwner
	AT_SetTableSpace
)

var alterTableTypeNames = []string{"AT_AddColumn", "AT_ColumnDefault", "AT_DropNotNull", "AT_SetNotNull", "AT_DropColumn", "AT_AddConstraint", "AT_ValidateConstraint", "AT_DropConstraint", "AT_AlterColumnType", "AT_ChangeOwner", "AT_SetTableSpace"}

func (v AlterTableType) String() string { return enumString(alterTableTypeNames, int(v)) }

type TransactionStmtKind int

const (
	TRANS_STMT_BEGIN TransactionStmtKind = iota
	TRANS_STMT_START
	TRANS_STMT_COMMIT
	TRANS_STMT_ROLLBACK
	TRANS_STMT_SAVEPOINT
	TRANS_STMT_RELEASE
	TRANS_STMT_ROLLBACK_TO
	TRANS_STMT_PREPARE
	TRANS_STMT_COMMIT_PREPARED
	TRANS_STMT_ROLLBACK_PREPARED
)

var transactionStmtKindNames = []string{"TRANS_STMT_BEGIN", "TRANS_STMT_START", "TRANS_STMT_COMMIT", "TRANS_STMT_ROLLBACK", "TRANS_STMT_SAVEPOINT", "TRANS_STMT_RELEASE", "TRANS_STMT_ROLLBACK_TO", "TRANS_STMT_PREPARE", "TRANS_STMT_COMMIT_PREPARED", "TRANS_STMT_ROLLBACK_PREPARED"}

func (v TransactionStmtKind) String() string { return enumString(transactionStmtKindNames, int(v)) }

type VariableSetKind int

const (
	VAR_SET_VALUE VariableSetKind = iota
	VAR_SET_DEFAULT
	VAR_SET_CURRENT
	VAR_SET_MULTI
	VAR_RESET
	VAR_RESET_ALL
)

var variableSetKindNames = []string{"VAR_SET_VALUE", "VAR_SET_DEFAULT", "VAR_SET_CURRENT", "VAR_SET_MULTI", "VAR_RESET", "VAR_RESET_ALL"}

func (v VariableSetKind) String() string { return enumString(variableSetKindNames, int(v)) }

type OnConflictAction int

const (
	ONCONFLICT_NONE OnConflictAction = iota
	ONCONFLICT_NOTHING
	ONCONFLICT_UPDATE
)

var onConflictActionNames = []string{"ONCONFLICT_NONE", "ONCONFLICT_NOTHING", "ONCONFLICT_UPDATE"}

func (v OnConflictAction) String() string { return enumString(onConflictActionNames, int(v)) }

type OnCommitAction int

const (
	ONCOMMIT_NOOP OnCommitAction = iota
	ONCOMMIT_PRESERVE_ROWS
	ONCOMMIT_DELETE_ROWS
	ONCOMMIT_DROP
)

var onCommitActionNames = []string{"ONCOMMIT_NOOP", "ONCOMMIT_PRESERVE_ROWS", "ONCOMMIT_DELETE_ROWS", "ONCOMMIT_DROP"}

func (v OnCommitAction) String() string { return enumString(onCommitActionNames, int(v)) }

type FunctionParameterMode int

const (
	FUNC_PARAM_IN FunctionParameterMode = iota
	FUNC_PARAM_OUT
	FUNC_PARAM_INOUT
	FUNC_PARAM_VARIADIC
	FUNC_PARAM_TABLE
	FUNC_PARAM_DEFAULT
)

var functionParameterModeNames = []string{"FUNC_PARAM_IN", "FUNC_PARAM_OUT", "FUNC_PARAM_INOUT", "FUNC_PARAM_VARIADIC", "FUNC_PARAM_TABLE", "FUNC_PARAM_DEFAULT"}

func (v FunctionParameterMode) String() string { return enumString(functionParameterModeNames, int(v)) }

type DefElemAction int

const (
	DEFELEM_UNSPEC DefElemAction = iota
	DEFELEM_SET
	DEFELEM_ADD
	DEFELEM_DROP
)

var defElemActionNames = []string{"DEFELEM_UNSPEC", "DEFELEM_SET", "DEFELEM_ADD", "DEFELEM_DROP"}

func (v DefElemAction) String() string { return enumString(defElemActionNames, int(v)) }

type LockClauseStrength int

const (
	LCS_NONE LockClauseStrength = iota
	LCS_FORKEYSHARE
	LCS_FORSHARE
	LCS_FORNOKEYUPDATE
	LCS_FORUPDATE
)

var lockClauseStrengthNames = []string{"LCS_NONE", "LCS_FORKEYSHARE", "LCS_FORSHARE", "LCS_FORNOKEYUPDATE", "LCS_FORUPDATE"}

func (v LockClauseStrength) String() string { return enumString(lockClauseStrengthNames, int(v)) }

type LockWaitPolicy int

const (
	LockWaitBlock LockWaitPolicy = iota
	LockWaitSkip
	LockWaitError
)

var lockWaitPolicyNames = []string{"LockWaitBlock", "LockWaitSkip", "LockWaitError"}

func (v LockWaitPolicy) String() string { return enumString(lockWaitPolicyNames, int(v)) }

type RoleSpecType int

const (
	ROLESPEC_CSTRING RoleSpecType = iota
	ROLESPEC_CURRENT_ROLE
	ROLESPEC_CURRENT_USER
	ROLESPEC_SESSION_USER
	ROLESPEC_PUBLIC
)

var roleSpecTypeNames = []string{"ROLESPEC_CSTRING", "ROLESPEC_CURRENT_ROLE", "ROLESPEC_CURRENT_USER", "ROLESPEC_SESSION_USER", "ROLESPEC_PUBLIC"}

func (v RoleSpecType) String() string { return enumString(roleSpecTypeNames, int(v)) }

type GrantTargetType int

const (
	ACL_TARGET_OBJECT GrantTargetType = iota
	ACL_TARGET_ALL_IN_SCHEMA
	ACL_TARGET_DEFAULTS
)

var grantTargetTypeNames = []string{"ACL_TARGET_OBJECT", "ACL_TARGET_ALL_IN_SCHEMA", "ACL_TARGET_DEFAULTS"}

func (v GrantTargetType) String() string { return enumString(grantTargetTypeNames, int(v)) }

type FetchDirection int

const (
	FETCH_FORWARD FetchDirection = iota
	FETCH_BACKWARD
	FETCH_ABSOLUTE
	FETCH_RELATIVE
)

var fetchDirectionNames = []string{"FETCH_FORWARD", "FETCH_BACKWARD", "FETCH_ABSOLUTE", "FETCH_RELATIVE"}

func (v FetchDirection) String() string { return enumString(fetchDirectionNames, int(v)) }

type DiscardMode int

const (
	DISCARD_ALL DiscardMode = iota
	DISCARD_PLANS
	DISCARD_SEQUENCES
	DISCARD_TEMP
)

var discardModeNames = []string{"DISCARD_ALL", "DISCARD_PLANS", "DISCARD_SEQUENCES", "DISCARD_TEMP"}

func (v DiscardMode) String() string { return enumString(discardModeNames, int(v)) }

type CTEMaterialize int

const (
	CTEMaterializeDefault CTEMaterialize = iota
	CTEMaterializeAlways
	CTEMaterializeNever
)

var cteMaterializeNames = []string{"CTEMaterializeDefault", "CTEMaterializeAlways", "CTEMaterializeNever"}

func (v CTEMaterialize) String() string { return enumString(cteMaterializeNames, int(v)) }

type GroupingSetKind int

const (
	GROUPING_SET_EMPTY GroupingSetKind = iota
	GROUPING_SET_SIMPLE
	GROUPING_SET_ROLLUP
	GROUPING_SET_CUBE
	GROUPING_SET_SETS
)

var groupingSetKindNames = []string{"GROUPING_SET_EMPTY", "GROUPING_SET_SIMPLE", "GROUPING_SET_ROLLUP", "GROUPING_SET_CUBE", "GROUPING_SET_SETS"}

func (v GroupingSetKind) String() string { return enumString(groupingSetKindNames, int(v)) }

type ViewCheckOption int

const (
	NO_CHECK_OPTION ViewCheckOption = iota
	LOCAL_CHECK_OPTION
	CASCADED_CHECK_OPTION
)

var viewCheckOptionNames = []string{"NO_CHECK_OPTION", "LOCAL_CHECK_OPTION", "CASCADED_CHECK_OPTION"}

func (v ViewCheckOption) String() string { return enumString(viewCheckOptionNames, int(v)) }

type OverridingKind int

const (
	OVERRIDING_NOT_SET OverridingKind = iota
	OVERRIDING_USER_VALUE
	OVERRIDING_SYSTEM_VALUE
)

var overridingKindNames = []string{"OVERRIDING_NOT_SET", "OVERRIDING_USER_VALUE", "OVERRIDING_SYSTEM_VALUE"}

func (v OverridingKind) String() string { return enumString(overridingKindNames, int(v)) }

type CmdType int

const (
	CMD_UNKNOWN CmdType = iota
	CMD_SELECT
	CMD_UPDATE
	CMD_INSERT
	CMD_DELETE
	CMD_MERGE
	CMD_UTILITY
	CMD_NOTHING
)

var cmdTypeNames = []string{"CMD_UNKNOWN", "CMD_SELECT", "CMD_UPDATE", "CMD_INSERT", "CMD_DELETE", "CMD_MERGE", "CMD_UTILITY", "CMD_NOTHING"}

func (v CmdType) String() string { return enumString(cmdTypeNames, int(v)) }

type RoleStmtType int

const (
	ROLESTMT_ROLE RoleStmtType = iota
	ROLESTMT_USER
	ROLESTMT_GROUP
)

var roleStmtTypeNames = []string{"ROLESTMT_ROLE", "ROLESTMT_USER", "ROLESTMT_GROUP"}

func (v RoleStmtType) String() string { return enumString(roleStmtTypeNames, int(v)) }

// enumTables maps each enum type to its names, indexed by value.
var enumTables = map[reflect.Type][]string{
	reflect.TypeFor[SetOperation]():          setOperationNames,
	reflect.TypeFor[LimitOption]():           limitOptionNames,
	reflect.TypeFor[A_Expr_Kind]():           aExprKindNames,
	reflect.TypeFor[BoolExprType]():          boolExprTypeNames,
	reflect.TypeFor[SubLinkType]():           subLinkTypeNames,
	reflect.TypeFor[NullTestType]():          nullTestTypeNames,
	reflect.TypeFor[BoolTestType]():          boolTestTypeNames,
	reflect.TypeFor[JoinType]():              joinTypeNames,
	reflect.TypeFor[SortByDir]():             sortByDirNames,
	reflect.TypeFor[SortByNulls]():           sortByNullsNames,
	reflect.TypeFor[MinMaxOp]():              minMaxOpNames,
	reflect.TypeFor[SQLValueFunctionOp]():    sqlValueFunctionOpNames,
	reflect.TypeFor[CoercionForm]():          coercionFormNames,
	reflect.TypeFor[ObjectType]():            objectTypeNames,
	reflect.TypeFor[DropBehavior]():          dropBehaviorNames,
	reflect.TypeFor[ConstrType]():            constrTypeNames,
	reflect.TypeFor[AlterTableType]():        alterTableTypeNames,
	reflect.TypeFor[TransactionStmtKind]():   transactionStmtKindNames,
	reflect.TypeFor[VariableSetKind]():       variableSetKindNames,
	reflect.TypeFor[OnConflictAction]():      onConflictActionNames,
	reflect.TypeFor[OnCommitAction]():        onCommitActionNames,
	reflect.TypeFor[FunctionParameterMode](): functionParameterModeNames,
	reflect.TypeFor[DefElemAction]():         defElemActionNames,
	reflect.TypeFor[LockClauseStrength]():    lockClauseStrengthNames,
	reflect.TypeFor[LockWaitPolicy]():        lockWaitPolicyNames,
	reflect.TypeFor[RoleSpecType]():          roleSpecTypeNames,
	reflect.TypeFor[GrantTargetType]():       grantTargetTypeNames,
	reflect.TypeFor[FetchDirection]():        fetchDirectionNames,
	reflect.TypeFor[DiscardMode]():           discardModeNames,
	reflect.TypeFor[CTEMaterialize]():        cteMaterializeNames,
	reflect.TypeFor[GroupingSetKind]():       groupingSetKindNames,
	reflect.TypeFor[ViewCheckOption]():       viewCheckOptionNames,
	reflect.TypeFor[OverridingKind]():        overridingKindNames,
	reflect.TypeFor[CmdType]():               cmdTypeNames,
	reflect.TypeFor[RoleStmtType]():          roleStmtTypeNames,
}

func enumString(names []string, v int) string {
	if v >= 0 && v < len(names) {
		return names[v]
	}
	return "UNKNOWN"
}

// enumValue resolves an enum name for the given type.
func enumValue(t reflect.Type, name string) (int, bool) {
	for i, n := range enumTables[t] {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// Window frame option bits carried in WindowDef.FrameOptions.
const (
	FrameOptionNonDefault              = 0x00001
	FrameOptionRange                   = 0x00002
	FrameOptionRows                    = 0x00004
	FrameOptionGroups                  = 0x00008
	FrameOptionBetween                 = 0x00010
	FrameOptionStartUnboundedPreceding = 0x00020
	FrameOptionEndUnboundedPreceding   = 0x00040
	FrameOptionStartUnboundedFollowing = 0x00080
	FrameOptionEndUnboundedFollowing   = 0x00100
	FrameOptionStartCurrentRow         = 0x00200
	FrameOptionEndCurrentRow           = 0x00400
	FrameOptionStartOffsetPreceding    = 0x00800
	FrameOptionEndOffsetPreceding      = 0x01000
	FrameOptionStartOffsetFollowing    = 0x02000
	FrameOptionEndOffsetFollowing      = 0x04000
	FrameOptionExcludeCurrentRow       = 0x08000
	FrameOptionExcludeGroup            = 0x10000
	FrameOptionExcludeTies             = 0x20000

	FrameOptionDefaults = FrameOptionRange | FrameOptionStartUnboundedPreceding | FrameOptionEndCurrentRow
)

// Cursor option bits carried in DeclareCursorStmt.Options.
const (
	CursorOptBinary      = 0x0001
	CursorOptScroll      = 0x0002
	CursorOptNoScroll    = 0x0004
	CursorOptInsensitive = 0x0008
	CursorOptAsensitive  = 0x0010
	CursorOptHold        = 0x0020
	CursorOptFastPlan    = 0x0100
)

// FetchAll is the HowMany value of FETCH ALL.
const FetchAll = 1<<63 - 1

// Interval field mask bits used as INTERVAL type modifiers.
const (
	IntervalMonth     = 1 << 1
	IntervalYear      = 1 << 2
	IntervalDay       = 1 << 3
	IntervalHour      = 1 << 10
	IntervalMinute    = 1 << 11
	IntervalSecond    = 1 << 12
	IntervalFullRange = 0x7FFF
)

// Trigger type bits carried in CreateTrigStmt.Timing and Events. AFTER
// is the absence of BEFORE and INSTEAD.
const (
	TriggerTypeRow      = 1 << 0
	TriggerTypeBefore   = 1 << 1
	TriggerTypeInsert   = 1 << 2
	TriggerTypeDelete   = 1 << 3
	TriggerTypeUpdate   = 1 << 4
	TriggerTypeTruncate = 1 << 5
	TriggerTypeInstead  = 1 << 6
)
