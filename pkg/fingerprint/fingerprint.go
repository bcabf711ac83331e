// Package fingerprint computes a stable hash of a statement's shape.
//
// Two statements get the same fingerprint when they differ only in
// literal values, parameter numbers, aliases, output column names, the
// length of all-constant lists, or the names of prepared statements,
// savepoints and cursors. Locations never affect the result.
package fingerprint

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/zeebo/xxh3"

	"github.com/leapstack-labs/pgparse/pkg/ast"
	"github.com/leapstack-labs/pgparse/pkg/parser"
)

// Hash is the XXH3-64 digest of a canonicalized statement list.
type Hash uint64

// String renders the hash as 16 lower case hex digits.
func (h Hash) String() string {
	return fmt.Sprintf("%016x", uint64(h))
}

// Fingerprint parses sql and fingerprints the result. Parse errors are
// returned unchanged.
func Fingerprint(sql string, opts ...parser.Option) (Hash, error) {
	stmts, err := parser.Parse(sql, opts...)
	if err != nil {
		return 0, err
	}
	return Tree(stmts), nil
}

// Tree fingerprints already parsed statements. The input is not modified.
func Tree(stmts []*ast.RawStmt) Hash {
	h := xxh3.New()
	for _, raw := range stmts {
		_, _ = h.Write(Canonical(raw.Stmt))
		_, _ = h.Write([]byte{0})
	}
	return Hash(h.Sum64())
}

// Canonical returns the bytes hashed for one statement: the JSON form of
// a canonicalized clone with sorted keys and no locations.
func Canonical(stmt ast.Node) []byte {
	clone := ast.Clone(stmt)
	ast.Walk(clone, canonicalize)
	data, err := json.Marshal(stripLocations(ast.ToMap(clone)))
	if err != nil {
		// The canonical form holds only strings, numbers, bools, maps
		// and slices.
		panic(fmt.Sprintf("fingerprint: failed to encode %s: %v", ast.Tag(stmt), err))
	}
	return data
}

// canonicalize rewrites one node in place before its children are
// visited.
func canonicalize(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.A_Const:
		n.Val = nil
		n.Isnull = false
	case *ast.ParamRef:
		n.Number = 0
	case *ast.SelectStmt:
		dropNames(n.TargetList)
		n.ValuesLists = collapseRows(n.ValuesLists)
	case *ast.InsertStmt:
		dropNames(n.ReturningList)
	case *ast.UpdateStmt:
		dropNames(n.ReturningList)
	case *ast.DeleteStmt:
		dropNames(n.ReturningList)
	case *ast.A_Expr:
		if list, ok := n.Rexpr.(*ast.List); ok && n.Kind == ast.AEXPR_IN {
			list.Items = collapse(list.Items)
		}
	case *ast.A_ArrayExpr:
		n.Elements = collapse(n.Elements)
	case *ast.RangeVar:
		n.Alias = nil
	case *ast.RangeSubselect:
		n.Alias = nil
	case *ast.RangeFunction:
		n.Alias = nil
	case *ast.JoinExpr:
		n.Alias = nil
		n.JoinUsingAlias = nil
	case *ast.PrepareStmt:
		n.Name = ""
	case *ast.ExecuteStmt:
		n.Name = ""
	case *ast.DeallocateStmt:
		n.Name = ""
	case *ast.TransactionStmt:
		n.SavepointName = ""
	case *ast.DeclareCursorStmt:
		n.Portalname = ""
	case *ast.FetchStmt:
		n.Portalname = ""
	case *ast.ClosePortalStmt:
		n.Portalname = ""
	}
	return true
}

func dropNames(targets []ast.Node) {
	for _, t := range targets {
		if rt, ok := t.(*ast.ResTarget); ok {
			rt.Name = ""
		}
	}
}

// isConst reports whether n is a literal, a parameter or a cast of one.
func isConst(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.A_Const, *ast.ParamRef:
		return true
	case *ast.TypeCast:
		return isConst(n.Arg)
	}
	return false
}

// collapse replaces a non-empty all-constant list by one placeholder.
func collapse(items []ast.Node) []ast.Node {
	if len(items) == 0 {
		return items
	}
	for _, it := range items {
		if !isConst(it) {
			return items
		}
	}
	return []ast.Node{&ast.A_Const{}}
}

// collapseRows collapses each VALUES row and merges rows whose
// canonical forms became identical.
func collapseRows(rows []ast.Node) []ast.Node {
	if len(rows) == 0 {
		return rows
	}
	out := make([]ast.Node, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		if list, ok := r.(*ast.List); ok {
			list.Items = collapse(list.Items)
		}
		key := string(Canonical(r))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}

// stripLocations drops every "location" key from a canonical form.
func stripLocations(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			if k == "location" {
				continue
			}
			out[k] = stripLocations(val)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = stripLocations(val)
		}
		return out
	}
	return v
}
