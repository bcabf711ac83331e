package ast

// nodeTypes lists every node kind; the schema is built from it.
var nodeTypes = []Node{
	(*RawStmt)(nil),
	(*RangeVar)(nil),
	(*Alias)(nil),
	(*JoinExpr)(nil),
	(*RangeSubselect)(nil),
	(*RangeFunction)(nil),
	(*RangeTableSample)(nil),
	(*WithClause)(nil),
	(*CommonTableExpr)(nil),
	(*IntoClause)(nil),
	(*OnConflictClause)(nil),
	(*InferClause)(nil),
	(*LockingClause)(nil),
	(*ColumnDef)(nil),
	(*Constraint)(nil),
	(*IndexElem)(nil),
	(*DefElem)(nil),
	(*PartitionSpec)(nil),
	(*PartitionElem)(nil),
	(*TableLikeClause)(nil),
	(*FunctionParameter)(nil),
	(*ObjectWithArgs)(nil),
	(*RoleSpec)(nil),
	(*AccessPriv)(nil),
	(*VacuumRelation)(nil),
	(*Integer)(nil),
	(*Float)(nil),
	(*Boolean)(nil),
	(*String)(nil),
	(*BitString)(nil),
	(*List)(nil),
	(*A_Const)(nil),
	(*ColumnRef)(nil),
	(*ParamRef)(nil),
	(*A_Expr)(nil),
	(*BoolExpr)(nil),
	(*TypeCast)(nil),
	(*CollateClause)(nil),
	(*FuncCall)(nil),
	(*A_Star)(nil),
	(*A_Indices)(nil),
	(*A_Indirection)(nil),
	(*A_ArrayExpr)(nil),
	(*ResTarget)(nil),
	(*MultiAssignRef)(nil),
	(*SubLink)(nil),
	(*CaseExpr)(nil),
	(*CaseWhen)(nil),
	(*RowExpr)(nil),
	(*CoalesceExpr)(nil),
	(*MinMaxExpr)(nil),
	(*SQLValueFunction)(nil),
	(*NullTest)(nil),
	(*BooleanTest)(nil),
	(*SetToDefault)(nil),
	(*CurrentOfExpr)(nil),
	(*GroupingSet)(nil),
	(*GroupingFunc)(nil),
	(*NamedArgExpr)(nil),
	(*TypeName)(nil),
	(*SortBy)(nil),
	(*WindowDef)(nil),
	(*SelectStmt)(nil),
	(*InsertStmt)(nil),
	(*UpdateStmt)(nil),
	(*DeleteStmt)(nil),
	(*MergeStmt)(nil),
	(*MergeWhenClause)(nil),
	(*CreateStmt)(nil),
	(*CreateTableAsStmt)(nil),
	(*RefreshMatViewStmt)(nil),
	(*IndexStmt)(nil),
	(*ViewStmt)(nil),
	(*CreateSchemaStmt)(nil),
	(*CreateSeqStmt)(nil),
	(*AlterSeqStmt)(nil),
	(*CreateTrigStmt)(nil),
	(*TriggerTransition)(nil),
	(*CreateRoleStmt)(nil),
	(*CreateFunctionStmt)(nil),
	(*ReturnStmt)(nil),
	(*DoStmt)(nil),
	(*CallStmt)(nil),
	(*CreateExtensionStmt)(nil),
	(*CreateEnumStmt)(nil),
	(*CompositeTypeStmt)(nil),
	(*CreateDomainStmt)(nil),
	(*AlterTableStmt)(nil),
	(*AlterTableCmd)(nil),
	(*RenameStmt)(nil),
	(*DropStmt)(nil),
	(*TruncateStmt)(nil),
	(*CommentStmt)(nil),
	(*GrantStmt)(nil),
	(*TransactionStmt)(nil),
	(*VariableSetStmt)(nil),
	(*VariableShowStmt)(nil),
	(*ExplainStmt)(nil),
	(*PrepareStmt)(nil),
	(*ExecuteStmt)(nil),
	(*DeallocateStmt)(nil),
	(*ListenStmt)(nil),
	(*UnlistenStmt)(nil),
	(*NotifyStmt)(nil),
	(*VacuumStmt)(nil),
	(*LockStmt)(nil),
	(*CopyStmt)(nil),
	(*DeclareCursorStmt)(nil),
	(*FetchStmt)(nil),
	(*ClosePortalStmt)(nil),
	(*DiscardStmt)(nil),
	(*CheckPointStmt)(nil),
}

func (*RawStmt) node()             {}
func (*RangeVar) node()            {}
func (*Alias) node()               {}
func (*JoinExpr) node()            {}
func (*RangeSubselect) node()      {}
func (*RangeFunction) node()       {}
func (*RangeTableSample) node()    {}
func (*WithClause) node()          {}
func (*CommonTableExpr) node()     {}
func (*IntoClause) node()          {}
func (*OnConflictClause) node()    {}
func (*InferClause) node()         {}
func (*LockingClause) node()       {}
func (*ColumnDef) node()           {}
func (*Constraint) node()          {}
func (*IndexElem) node()           {}
func (*DefElem) node()             {}
func (*PartitionSpec) node()       {}
func (*PartitionElem) node()       {}
func (*TableLikeClause) node()     {}
func (*FunctionParameter) node()   {}
func (*ObjectWithArgs) node()      {}
func (*RoleSpec) node()            {}
func (*AccessPriv) node()          {}
func (*VacuumRelation) node()      {}
func (*Integer) node()             {}
func (*Float) node()               {}
func (*Boolean) node()             {}
func (*String) node()              {}
func (*BitString) node()           {}
func (*List) node()                {}
func (*A_Const) node()             {}
func (*ColumnRef) node()           {}
func (*ParamRef) node()            {}
func (*A_Expr) node()              {}
func (*BoolExpr) node()            {}
func (*TypeCast) node()            {}
func (*CollateClause) node()       {}
func (*FuncCall) node()            {}
func (*A_Star) node()              {}
func (*A_Indices) node()           {}
func (*A_Indirection) node()       {}
func (*A_ArrayExpr) node()         {}
func (*ResTarget) node()           {}
func (*MultiAssignRef) node()      {}
func (*SubLink) node()             {}
func (*CaseExpr) node()            {}
func (*CaseWhen) node()            {}
func (*RowExpr) node()             {}
func (*CoalesceExpr) node()        {}
func (*MinMaxExpr) node()          {}
func (*SQLValueFunction) node()    {}
func (*NullTest) node()            {}
func (*BooleanTest) node()         {}
func (*SetToDefault) node()        {}
func (*CurrentOfExpr) node()       {}
func (*GroupingSet) node()         {}
func (*GroupingFunc) node()        {}
func (*NamedArgExpr) node()        {}
func (*TypeName) node()            {}
func (*SortBy) node()              {}
func (*WindowDef) node()           {}
func (*SelectStmt) node()          {}
func (*InsertStmt) node()          {}
func (*UpdateStmt) node()          {}
func (*DeleteStmt) node()          {}
func (*MergeStmt) node()           {}
func (*MergeWhenClause) node()     {}
func (*CreateStmt) node()          {}
func (*CreateTableAsStmt) node()   {}
func (*RefreshMatViewStmt) node()  {}
func (*IndexStmt) node()           {}
func (*ViewStmt) node()            {}
func (*CreateSchemaStmt) node()    {}
func (*CreateSeqStmt) node()       {}
func (*AlterSeqStmt) node()        {}
func (*CreateTrigStmt) node()      {}
func (*TriggerTransition) node()   {}
func (*CreateRoleStmt) node()      {}
func (*CreateFunctionStmt) node()  {}
func (*ReturnStmt) node()          {}
func (*DoStmt) node()              {}
func (*CallStmt) node()            {}
func (*CreateExtensionStmt) node() {}
func (*CreateEnumStmt) node()      {}
func (*CompositeTypeStmt) node()   {}
func (*CreateDomainStmt) node()    {}
func (*AlterTableStmt) node()      {}
func (*AlterTableCmd) node()       {}
func (*RenameStmt) node()          {}
func (*DropStmt) node()            {}
func (*TruncateStmt) node()        {}
func (*CommentStmt) node()         {}
func (*GrantStmt) node()           {}
func (*TransactionStmt) node()     {}
func (*VariableSetStmt) node()     {}
func (*VariableShowStmt) node()    {}
func (*ExplainStmt) node()         {}
func (*PrepareStmt) node()         {}
func (*ExecuteStmt) node()         {}
func (*DeallocateStmt) node()      {}
func (*ListenStmt) node()          {}
func (*UnlistenStmt) node()        {}
func (*NotifyStmt) node()          {}
func (*VacuumStmt) node()          {}
func (*LockStmt) node()            {}
func (*CopyStmt) node()            {}
func (*DeclareCursorStmt) node()   {}
func (*FetchStmt) node()           {}
func (*ClosePortalStmt) node()     {}
func (*DiscardStmt) node()         {}
func (*CheckPointStmt) node()      {}

func (n *RawStmt) String() string             { return Repr(n) }
func (n *RangeVar) String() string            { return Repr(n) }
func (n *Alias) String() string               { return Repr(n) }
func (n *JoinExpr) String() string            { return Repr(n) }
func (n *RangeSubselect) String() string      { return Repr(n) }
func (n *RangeFunction) String() string       { return Repr(n) }
func (n *RangeTableSample) String() string    { return Repr(n) }
func (n *WithClause) String() string          { return Repr(n) }
func (n *CommonTableExpr) String() string     { return Repr(n) }
func (n *IntoClause) String() string          { return Repr(n) }
func (n *OnConflictClause) String() string    { return Repr(n) }
func (n *InferClause) String() string         { return Repr(n) }
func (n *LockingClause) String() string       { return Repr(n) }
func (n *ColumnDef) String() string           { return Repr(n) }
func (n *Constraint) String() string          { return Repr(n) }
func (n *IndexElem) String() string           { return Repr(n) }
func (n *DefElem) String() string             { return Repr(n) }
func (n *PartitionSpec) String() string       { return Repr(n) }
func (n *PartitionElem) String() string       { return Repr(n) }
func (n *TableLikeClause) String() string     { return Repr(n) }
func (n *FunctionParameter) String() string   { return Repr(n) }
func (n *ObjectWithArgs) String() string      { return Repr(n) }
func (n *RoleSpec) String() string            { return Repr(n) }
func (n *AccessPriv) String() string          { return Repr(n) }
func (n *VacuumRelation) String() string      { return Repr(n) }
func (n *Integer) String() string             { return Repr(n) }
func (n *Float) String() string               { return Repr(n) }
func (n *Boolean) String() string             { return Repr(n) }
func (n *String) String() string              { return Repr(n) }
func (n *BitString) String() string           { return Repr(n) }
func (n *List) String() string                { return Repr(n) }
func (n *A_Const) String() string             { return Repr(n) }
func (n *ColumnRef) String() string           { return Repr(n) }
func (n *ParamRef) String() string            { return Repr(n) }
func (n *A_Expr) String() string              { return Repr(n) }
func (n *BoolExpr) String() string            { return Repr(n) }
func (n *TypeCast) String() string            { return Repr(n) }
func (n *CollateClause) String() string       { return Repr(n) }
func (n *FuncCall) String() string            { return Repr(n) }
func (n *A_Star) String() string              { return Repr(n) }
func (n *A_Indices) String() string           { return Repr(n) }
func (n *A_Indirection) String() string       { return Repr(n) }
func (n *A_ArrayExpr) String() string         { return Repr(n) }
func (n *ResTarget) String() string           { return Repr(n) }
func (n *MultiAssignRef) String() string      { return Repr(n) }
func (n *SubLink) String() string             { return Repr(n) }
func (n *CaseExpr) String() string            { return Repr(n) }
func (n *CaseWhen) String() string            { return Repr(n) }
func (n *RowExpr) String() string             { return Repr(n) }
func (n *CoalesceExpr) String() string        { return Repr(n) }
func (n *MinMaxExpr) String() string          { return Repr(n) }
func (n *SQLValueFunction) String() string    { return Repr(n) }
func (n *NullTest) String() string            { return Repr(n) }
func (n *BooleanTest) String() string         { return Repr(n) }
func (n *SetToDefault) String() string        { return Repr(n) }
func (n *CurrentOfExpr) String() string       { return Repr(n) }
func (n *GroupingSet) String() string         { return Repr(n) }
func (n *GroupingFunc) String() string        { return Repr(n) }
func (n *NamedArgExpr) String() string        { return Repr(n) }
func (n *TypeName) String() string            { return Repr(n) }
func (n *SortBy) String() string              { return Repr(n) }
func (n *WindowDef) String() string           { return Repr(n) }
func (n *SelectStmt) String() string          { return Repr(n) }
func (n *InsertStmt) String() string          { return Repr(n) }
func (n *UpdateStmt) String() string          { return Repr(n) }
func (n *DeleteStmt) String() string          { return Repr(n) }
func (n *MergeStmt) String() string           { return Repr(n) }
func (n *MergeWhenClause) String() string     { return Repr(n) }
func (n *CreateStmt) String() string          { return Repr(n) }
func (n *CreateTableAsStmt) String() string   { return Repr(n) }
func (n *RefreshMatViewStmt) String() string  { return Repr(n) }
func (n *IndexStmt) String() string           { return Repr(n) }
func (n *ViewStmt) String() string            { return Repr(n) }
func (n *CreateSchemaStmt) String() string    { return Repr(n) }
func (n *CreateSeqStmt) String() string       { return Repr(n) }
func (n *AlterSeqStmt) String() string        { return Repr(n) }
func (n *CreateTrigStmt) String() string      { return Repr(n) }
func (n *TriggerTransition) String() string   { return Repr(n) }
func (n *CreateRoleStmt) String() string      { return Repr(n) }
func (n *CreateFunctionStmt) String() string  { return Repr(n) }
func (n *ReturnStmt) String() string          { return Repr(n) }
func (n *DoStmt) String() string              { return Repr(n) }
func (n *CallStmt) String() string            { return Repr(n) }
func (n *CreateExtensionStmt) String() string { return Repr(n) }
func (n *CreateEnumStmt) String() string      { return Repr(n) }
func (n *CompositeTypeStmt) String() string   { return Repr(n) }
func (n *CreateDomainStmt) String() string    { return Repr(n) }
func (n *AlterTableStmt) String() string      { return Repr(n) }
func (n *AlterTableCmd) String() string       { return Repr(n) }
func (n *RenameStmt) String() string          { return Repr(n) }
func (n *DropStmt) String() string            { return Repr(n) }
func (n *TruncateStmt) String() string        { return Repr(n) }
func (n *CommentStmt) String() string         { return Repr(n) }
func (n *GrantStmt) String() string           { return Repr(n) }
func (n *TransactionStmt) String() string     { return Repr(n) }
func (n *VariableSetStmt) String() string     { return Repr(n) }
func (n *VariableShowStmt) String() string    { return Repr(n) }
func (n *ExplainStmt) String() string         { return Repr(n) }
func (n *PrepareStmt) String() string         { return Repr(n) }
func (n *ExecuteStmt) String() string         { return Repr(n) }
func (n *DeallocateStmt) String() string      { return Repr(n) }
func (n *ListenStmt) String() string          { return Repr(n) }
func (n *UnlistenStmt) String() string        { return Repr(n) }
func (n *NotifyStmt) String() string          { return Repr(n) }
func (n *VacuumStmt) String() string          { return Repr(n) }
func (n *LockStmt) String() string            { return Repr(n) }
func (n *CopyStmt) String() string            { return Repr(n) }
func (n *DeclareCursorStmt) String() string   { return Repr(n) }
func (n *FetchStmt) String() string           { return Repr(n) }
func (n *ClosePortalStmt) String() string     { return Repr(n) }
func (n *DiscardStmt) String() string         { return Repr(n) }
func (n *CheckPointStmt) String() string      { return Repr(n) }
