package plpgsql

// Datum is a variable slot of a function: a scalar Var, a Row of
// scalars, a record Rec or a field of a record.
type Datum interface {
	datumTag() string
	datumFields() fields
}

// Type is a declared data type, kept as written.
type Type struct {
	Typname string
}

// Var is a scalar variable. Cursor variables carry their query.
type Var struct {
	Refname              string
	Lineno               int
	Datatype             *Type
	IsConst              bool
	NotNull              bool
	DefaultVal           *Expr
	CursorExplicitExpr   *Expr
	CursorExplicitArgrow int
	CursorOptions        int
}

// Row is a list of scalar variables used as one target.
type Row struct {
	Refname string
	Lineno  int
	Fields  []RowField
}

// RowField names one member of a Row by datum number.
type RowField struct {
	Name  string
	Varno int
}

// Rec is a composite variable (RECORD or %ROWTYPE).
type Rec struct {
	Refname    string
	Lineno     int
	Dno        int
	Datatype   *Type
	DefaultVal *Expr
}

// RecField is a field reference into a Rec.
type RecField struct {
	Fieldname   string
	Recparentno int
}

func (v *Var) datumTag() string { return "PLpgSQL_var" }

func (v *Var) datumFields() fields {
	m := fields{}
	m.set("refname", v.Refname)
	m.set("lineno", v.Lineno)
	if v.Datatype != nil {
		m["datatype"] = v.Datatype.toMap()
	}
	m.set("isconst", v.IsConst)
	m.set("notnull", v.NotNull)
	m.set("default_val", v.DefaultVal)
	m.set("cursor_explicit_expr", v.CursorExplicitExpr)
	m.set("cursor_explicit_argrow", v.CursorExplicitArgrow)
	m.set("cursor_options", v.CursorOptions)
	return m
}

func (r *Row) datumTag() string { return "PLpgSQL_row" }

func (r *Row) datumFields() fields {
	m := fields{}
	m.set("refname", r.Refname)
	m.set("lineno", r.Lineno)
	list := make([]any, len(r.Fields))
	for i, f := range r.Fields {
		list[i] = map[string]any{"name": f.Name, "varno": f.Varno}
	}
	m.set("fields", list)
	return m
}

func (r *Rec) datumTag() string { return "PLpgSQL_rec" }

func (r *Rec) datumFields() fields {
	m := fields{}
	m.set("refname", r.Refname)
	m.set("dno", r.Dno)
	m.set("lineno", r.Lineno)
	if r.Datatype != nil {
		m["datatype"] = r.Datatype.toMap()
	}
	m.set("default_val", r.DefaultVal)
	return m
}

func (f *RecField) datumTag() string { return "PLpgSQL_recfield" }

func (f *RecField) datumFields() fields {
	m := fields{}
	m.set("fieldname", f.Fieldname)
	m.set("recparentno", f.Recparentno)
	return m
}

func (t *Type) toMap() map[string]any {
	return map[string]any{"PLpgSQL_type": map[string]any{"typname": t.Typname}}
}

func datumMap(d Datum) map[string]any {
	return map[string]any{d.datumTag(): map[string]any(d.datumFields())}
}

// isCursor reports whether the datum is a cursor variable.
func isCursor(d Datum) bool {
	v, ok := d.(*Var)
	return ok && (v.CursorExplicitExpr != nil || v.Datatype != nil && v.Datatype.Typname == "refcursor")
}

// ---------- Namespace ----------

// scope is one level of the name lookup chain: a block, a loop or the
// function itself.
type scope struct {
	parent *scope
	label  string
	isLoop bool
	names  map[string]int
}

func (s *scope) add(name string, dno int) {
	if s.names == nil {
		s.names = map[string]int{}
	}
	s.names[name] = dno
}

// lookup finds name in the innermost scope that declares it.
func (s *scope) lookup(name string) (int, bool) {
	for ; s != nil; s = s.parent {
		if dno, ok := s.names[name]; ok {
			return dno, true
		}
	}
	return 0, false
}

// labeled finds the innermost enclosing scope with the given label.
func (s *scope) labeled(label string) *scope {
	for ; s != nil; s = s.parent {
		if s.label == label {
			return s
		}
	}
	return nil
}

// inLoop reports whether any enclosing scope is a loop.
func (s *scope) inLoop() bool {
	for ; s != nil; s = s.parent {
		if s.isLoop {
			return true
		}
	}
	return false
}
