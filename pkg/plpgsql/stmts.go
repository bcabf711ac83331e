package plpgsql

// Stmt is a PL/pgSQL statement node.
type Stmt interface {
	// Tag is the node name used as the single key of its map form.
	Tag() string
	fields() fields
}

func stmtMap(s Stmt) map[string]any {
	return map[string]any{s.Tag(): map[string]any(s.fields())}
}

// Raise levels, numbered as PostgreSQL's elog levels.
const (
	LevelDebug     = 14
	LevelLog       = 15
	LevelInfo      = 17
	LevelNotice    = 18
	LevelWarning   = 19
	LevelException = 21
)

// RaiseOptionType names a USING option of RAISE.
type RaiseOptionType int

const (
	RaiseErrcode RaiseOptionType = iota
	RaiseMessage
	RaiseDetail
	RaiseHint
	RaiseColumn
	RaiseConstraint
	RaiseDatatype
	RaiseTable
	RaiseSchema
)

var raiseOptions = map[string]RaiseOptionType{
	"errcode":    RaiseErrcode,
	"message":    RaiseMessage,
	"detail":     RaiseDetail,
	"hint":       RaiseHint,
	"column":     RaiseColumn,
	"constraint": RaiseConstraint,
	"datatype":   RaiseDatatype,
	"table":      RaiseTable,
	"schema":     RaiseSchema,
}

// DiagKind is an item of GET DIAGNOSTICS.
type DiagKind int

const (
	DiagRowCount DiagKind = iota
	DiagRoutineOid
	DiagContext
	DiagErrorContext
	DiagErrorDetail
	DiagErrorHint
	DiagReturnedSQLState
	DiagColumnName
	DiagConstraintName
	DiagDatatypeName
	DiagMessageText
	DiagTableName
	DiagSchemaName
)

var diagItems = map[string]DiagKind{
	"row_count":            DiagRowCount,
	"pg_routine_oid":       DiagRoutineOid,
	"pg_context":           DiagContext,
	"pg_exception_context": DiagErrorContext,
	"pg_exception_detail":  DiagErrorDetail,
	"pg_exception_hint":    DiagErrorHint,
	"returned_sqlstate":    DiagReturnedSQLState,
	"column_name":          DiagColumnName,
	"constraint_name":      DiagConstraintName,
	"pg_datatype_name":     DiagDatatypeName,
	"message_text":         DiagMessageText,
	"table_name":           DiagTableName,
	"schema_name":          DiagSchemaName,
}

// FetchDirection is the direction of FETCH and MOVE.
type FetchDirection int

const (
	FetchForward FetchDirection = iota
	FetchBackward
	FetchAbsolute
	FetchRelative
)

// FetchAll is the row count of FETCH ALL.
const FetchAll = int(^uint(0) >> 1)

// ---------- Blocks ----------

// Block is BEGIN ... [EXCEPTION ...] END with its declarations already
// moved into the function's datums.
type Block struct {
	Lineno     int
	Label      string
	Body       []Stmt
	Exceptions []*Exception
}

// Exception is one WHEN arm of an EXCEPTION section.
type Exception struct {
	Lineno     int
	Conditions []string // condition names or SQLSTATE codes
	Action     []Stmt
}

func (s *Block) Tag() string { return "PLpgSQL_stmt_block" }

func (s *Block) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("label", s.Label)
	m.set("body", s.Body)
	if len(s.Exceptions) > 0 {
		list := make([]any, len(s.Exceptions))
		for i, e := range s.Exceptions {
			conds := make([]any, len(e.Conditions))
			for j, c := range e.Conditions {
				conds[j] = map[string]any{"PLpgSQL_condition": map[string]any{"condname": c}}
			}
			ef := fields{}
			ef.set("lineno", e.Lineno)
			ef.set("conditions", conds)
			ef.set("action", e.Action)
			list[i] = map[string]any{"PLpgSQL_exception": map[string]any(ef)}
		}
		m["exceptions"] = map[string]any{"PLpgSQL_exception_block": map[string]any{"exc_list": list}}
	}
	return m
}

// ---------- Simple Statements ----------

// Assign is target := expr. The expression text includes the target.
type Assign struct {
	Lineno int
	Varno  int
	Expr   *Expr
}

func (s *Assign) Tag() string { return "PLpgSQL_stmt_assign" }

func (s *Assign) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("varno", s.Varno)
	m.set("expr", s.Expr)
	return m
}

// If is IF ... ELSIF ... ELSE ... END IF.
type If struct {
	Lineno int
	Cond   *Expr
	Then   []Stmt
	Elsif  []*Elsif
	Else   []Stmt
}

// Elsif is one ELSIF arm.
type Elsif struct {
	Lineno int
	Cond   *Expr
	Stmts  []Stmt
}

func (s *If) Tag() string { return "PLpgSQL_stmt_if" }

func (s *If) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("cond", s.Cond)
	m.set("then_body", s.Then)
	if len(s.Elsif) > 0 {
		list := make([]any, len(s.Elsif))
		for i, e := range s.Elsif {
			ef := fields{}
			ef.set("lineno", e.Lineno)
			ef.set("cond", e.Cond)
			ef.set("stmts", e.Stmts)
			list[i] = map[string]any{"PLpgSQL_if_elsif": map[string]any(ef)}
		}
		m["elsif_list"] = list
	}
	m.set("else_body", s.Else)
	return m
}

// Case is a simple or searched CASE statement. A simple CASE stores its
// operand in a hidden variable referenced by every WHEN expression.
type Case struct {
	Lineno   int
	TExpr    *Expr
	TVarno   int
	Whens    []*CaseWhen
	HaveElse bool
	Else     []Stmt
}

// CaseWhen is one WHEN arm.
type CaseWhen struct {
	Lineno int
	Expr   *Expr
	Stmts  []Stmt
}

func (s *Case) Tag() string { return "PLpgSQL_stmt_case" }

func (s *Case) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("t_expr", s.TExpr)
	m.set("t_varno", s.TVarno)
	list := make([]any, len(s.Whens))
	for i, w := range s.Whens {
		wf := fields{}
		wf.set("lineno", w.Lineno)
		wf.set("expr", w.Expr)
		wf.set("stmts", w.Stmts)
		list[i] = map[string]any{"PLpgSQL_case_when": map[string]any(wf)}
	}
	m.set("case_when_list", list)
	m.set("have_else", s.HaveElse)
	m.set("else_stmts", s.Else)
	return m
}

// ---------- Loops ----------

// Loop is an unconditional LOOP.
type Loop struct {
	Lineno int
	Label  string
	Body   []Stmt
}

func (s *Loop) Tag() string { return "PLpgSQL_stmt_loop" }

func (s *Loop) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("label", s.Label)
	m.set("body", s.Body)
	return m
}

// While is WHILE cond LOOP.
type While struct {
	Lineno int
	Label  string
	Cond   *Expr
	Body   []Stmt
}

func (s *While) Tag() string { return "PLpgSQL_stmt_while" }

func (s *While) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("label", s.Label)
	m.set("cond", s.Cond)
	m.set("body", s.Body)
	return m
}

// ForI is an integer FOR loop over lower .. upper.
type ForI struct {
	Lineno  int
	Label   string
	Var     *Var
	Lower   *Expr
	Upper   *Expr
	Step    *Expr
	Reverse bool
	Body    []Stmt
}

func (s *ForI) Tag() string { return "PLpgSQL_stmt_fori" }

func (s *ForI) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("label", s.Label)
	m.set("var", s.Var)
	m.set("lower", s.Lower)
	m.set("upper", s.Upper)
	m.set("step", s.Step)
	m.set("reverse", s.Reverse)
	m.set("body", s.Body)
	return m
}

// ForS loops over the rows of a query.
type ForS struct {
	Lineno int
	Label  string
	Var    Datum
	Body   []Stmt
	Query  *Expr
}

func (s *ForS) Tag() string { return "PLpgSQL_stmt_fors" }

func (s *ForS) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("label", s.Label)
	m.set("var", s.Var)
	m.set("body", s.Body)
	m.set("query", s.Query)
	return m
}

// ForC loops over the rows of a bound cursor.
type ForC struct {
	Lineno   int
	Label    string
	Var      Datum
	Body     []Stmt
	Curvar   int
	Argquery *Expr
}

func (s *ForC) Tag() string { return "PLpgSQL_stmt_forc" }

func (s *ForC) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("label", s.Label)
	m.set("var", s.Var)
	m.set("body", s.Body)
	m.set("curvar", s.Curvar)
	m.set("argquery", s.Argquery)
	return m
}

// DynFors loops over the rows of FOR ... IN EXECUTE.
type DynFors struct {
	Lineno int
	Label  string
	Var    Datum
	Body   []Stmt
	Query  *Expr
	Params []*Expr
}

func (s *DynFors) Tag() string { return "PLpgSQL_stmt_dynfors" }

func (s *DynFors) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("label", s.Label)
	m.set("var", s.Var)
	m.set("body", s.Body)
	m.set("query", s.Query)
	m.set("params", s.Params)
	return m
}

// ForEachA is FOREACH target [SLICE n] IN ARRAY expr.
type ForEachA struct {
	Lineno int
	Label  string
	Varno  int
	Slice  int
	Expr   *Expr
	Body   []Stmt
}

func (s *ForEachA) Tag() string { return "PLpgSQL_stmt_foreach_a" }

func (s *ForEachA) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("label", s.Label)
	m.set("varno", s.Varno)
	m.set("slice", s.Slice)
	m.set("expr", s.Expr)
	m.set("body", s.Body)
	return m
}

// ---------- Control Flow ----------

// Exit is EXIT or CONTINUE.
type Exit struct {
	Lineno int
	IsExit bool
	Label  string
	Cond   *Expr
}

func (s *Exit) Tag() string { return "PLpgSQL_stmt_exit" }

func (s *Exit) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("is_exit", s.IsExit)
	m.set("label", s.Label)
	m.set("cond", s.Cond)
	return m
}

// Return is RETURN [expr].
type Return struct {
	Lineno int
	Expr   *Expr
}

func (s *Return) Tag() string { return "PLpgSQL_stmt_return" }

func (s *Return) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("expr", s.Expr)
	return m
}

// ReturnNext is RETURN NEXT [expr].
type ReturnNext struct {
	Lineno int
	Expr   *Expr
}

func (s *ReturnNext) Tag() string { return "PLpgSQL_stmt_return_next" }

func (s *ReturnNext) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("expr", s.Expr)
	return m
}

// ReturnQuery is RETURN QUERY query or RETURN QUERY EXECUTE.
type ReturnQuery struct {
	Lineno   int
	Query    *Expr
	DynQuery *Expr
	Params   []*Expr
}

func (s *ReturnQuery) Tag() string { return "PLpgSQL_stmt_return_query" }

func (s *ReturnQuery) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("query", s.Query)
	m.set("dynquery", s.DynQuery)
	m.set("params", s.Params)
	return m
}

// Raise is RAISE with its level, format and USING options.
type Raise struct {
	Lineno    int
	ElogLevel int
	Condname  string
	Message   string
	Params    []*Expr
	Options   []*RaiseOption
}

// RaiseOption is one USING option = expr.
type RaiseOption struct {
	OptType RaiseOptionType
	Expr    *Expr
}

func (s *Raise) Tag() string { return "PLpgSQL_stmt_raise" }

func (s *Raise) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("elog_level", s.ElogLevel)
	m.set("condname", s.Condname)
	m.set("message", s.Message)
	m.set("params", s.Params)
	if len(s.Options) > 0 {
		list := make([]any, len(s.Options))
		for i, o := range s.Options {
			of := fields{}
			of.set("opt_type", int(o.OptType))
			of.set("expr", o.Expr)
			list[i] = map[string]any{"PLpgSQL_raise_option": map[string]any(of)}
		}
		m["options"] = list
	}
	return m
}

// Assert is ASSERT cond [, message].
type Assert struct {
	Lineno  int
	Cond    *Expr
	Message *Expr
}

func (s *Assert) Tag() string { return "PLpgSQL_stmt_assert" }

func (s *Assert) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("cond", s.Cond)
	m.set("message", s.Message)
	return m
}

// Perform evaluates a query and discards the result.
type Perform struct {
	Lineno int
	Expr   *Expr
}

func (s *Perform) Tag() string { return "PLpgSQL_stmt_perform" }

func (s *Perform) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("expr", s.Expr)
	return m
}

// ExecSQL is an embedded SQL statement with an optional INTO target.
type ExecSQL struct {
	Lineno  int
	SQLStmt *Expr
	Into    bool
	Strict  bool
	Target  Datum
}

func (s *ExecSQL) Tag() string { return "PLpgSQL_stmt_execsql" }

func (s *ExecSQL) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("sqlstmt", s.SQLStmt)
	m.set("into", s.Into)
	m.set("strict", s.Strict)
	m.set("target", s.Target)
	return m
}

// DynExecute is EXECUTE query [INTO target] [USING params].
type DynExecute struct {
	Lineno int
	Query  *Expr
	Into   bool
	Strict bool
	Target Datum
	Params []*Expr
}

func (s *DynExecute) Tag() string { return "PLpgSQL_stmt_dynexecute" }

func (s *DynExecute) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("query", s.Query)
	m.set("into", s.Into)
	m.set("strict", s.Strict)
	m.set("target", s.Target)
	m.set("params", s.Params)
	return m
}

// Call is CALL or DO.
type Call struct {
	Lineno int
	Expr   *Expr
	IsCall bool
}

func (s *Call) Tag() string { return "PLpgSQL_stmt_call" }

func (s *Call) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("expr", s.Expr)
	m.set("is_call", s.IsCall)
	return m
}

// GetDiag is GET [CURRENT | STACKED] DIAGNOSTICS.
type GetDiag struct {
	Lineno    int
	IsStacked bool
	Items     []DiagItem
}

// DiagItem assigns one diagnostics item to a variable.
type DiagItem struct {
	Kind   DiagKind
	Target int
}

func (s *GetDiag) Tag() string { return "PLpgSQL_stmt_getdiag" }

func (s *GetDiag) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("is_stacked", s.IsStacked)
	list := make([]any, len(s.Items))
	for i, it := range s.Items {
		itf := fields{}
		itf.set("kind", int(it.Kind))
		itf.set("target", it.Target)
		list[i] = map[string]any{"PLpgSQL_diag_item": map[string]any(itf)}
	}
	m.set("diag_items", list)
	return m
}

// ---------- Cursors ----------

// Open is OPEN cursor, bound or unbound.
type Open struct {
	Lineno        int
	Curvar        int
	CursorOptions int
	Argquery      *Expr
	Query         *Expr
	DynQuery      *Expr
	Params        []*Expr
}

func (s *Open) Tag() string { return "PLpgSQL_stmt_open" }

func (s *Open) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("curvar", s.Curvar)
	m.set("cursor_options", s.CursorOptions)
	m.set("argquery", s.Argquery)
	m.set("query", s.Query)
	m.set("dynquery", s.DynQuery)
	m.set("params", s.Params)
	return m
}

// Fetch is FETCH or MOVE.
type Fetch struct {
	Lineno              int
	Target              Datum
	Curvar              int
	Direction           FetchDirection
	HowMany             int
	Expr                *Expr
	IsMove              bool
	ReturnsMultipleRows bool
}

func (s *Fetch) Tag() string { return "PLpgSQL_stmt_fetch" }

func (s *Fetch) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("target", s.Target)
	m.set("curvar", s.Curvar)
	m.set("direction", int(s.Direction))
	m.set("how_many", s.HowMany)
	m.set("expr", s.Expr)
	m.set("is_move", s.IsMove)
	m.set("returns_multiple_rows", s.ReturnsMultipleRows)
	return m
}

// Close is CLOSE cursor.
type Close struct {
	Lineno int
	Curvar int
}

func (s *Close) Tag() string { return "PLpgSQL_stmt_close" }

func (s *Close) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("curvar", s.Curvar)
	return m
}

// ---------- Transactions ----------

// Commit is COMMIT [AND [NO] CHAIN].
type Commit struct {
	Lineno int
	Chain  bool
}

func (s *Commit) Tag() string { return "PLpgSQL_stmt_commit" }

func (s *Commit) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("chain", s.Chain)
	return m
}

// Rollback is ROLLBACK [AND [NO] CHAIN].
type Rollback struct {
	Lineno int
	Chain  bool
}

func (s *Rollback) Tag() string { return "PLpgSQL_stmt_rollback" }

func (s *Rollback) fields() fields {
	m := fields{}
	m.set("lineno", s.Lineno)
	m.set("chain", s.Chain)
	return m
}
