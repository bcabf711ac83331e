// Package ast defines the PostgreSQL raw parse tree.
//
// Every node kind is a Go struct whose type name is the node tag used by
// PostgreSQL (SelectStmt, A_Const, RangeVar, ...). Fields hold scalars,
// named enums, a nested Node, a []Node list, or nothing. Generic operations
// (Equal, Clone, ToMap, FromMap, Walk) are driven by a reflected schema so
// every node kind supports them uniformly.
//
// Trees returned by the parser are not modified by this module. Callers
// that want to edit a tree should work on a Clone.
package ast

import (
	"errors"
	"fmt"
)

// Node is implemented by every parse node.
type Node interface {
	node()
}

// ErrUnknownTag is returned when a tag names no node kind.
var ErrUnknownTag = errors.New("unknown node tag")

// StructuralError reports a mapping that does not describe a valid node.
type StructuralError struct {
	Path    string // e.g. SelectStmt.targetList[0].val
	Message string
	Err     error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

// TagKey is the map key holding the node tag in the canonical form.
const TagKey = "@"

// Tag returns the tag of a node, or "" for nil.
func Tag(n Node) string {
	if isNil(n) {
		return ""
	}
	info, err := typeInfoFor(n)
	if err != nil {
		return ""
	}
	return info.tag
}

// RawStmt wraps one top-level statement with its source range.
type RawStmt struct {
	Stmt         Node `json:"stmt"`
	StmtLocation int  `json:"stmt_location"`
	// StmtLen is the byte length up to the end of the last token; the
	// terminating semicolon is not included.
	StmtLen int `json:"stmt_len"`
}

// SourceSlice returns the byte range of the statement in its source.
func (s *RawStmt) SourceSlice() (start, end int) {
	return s.StmtLocation, s.StmtLocation + s.StmtLen
}
