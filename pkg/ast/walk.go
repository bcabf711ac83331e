package ast

import "reflect"

// Walk traverses a tree depth-first, calling fn for each node in field
// order. If fn returns false the node's children are skipped.
func Walk(node Node, fn func(Node) bool) {
	if isNil(node) {
		return
	}
	if !fn(node) {
		return
	}
	walkChildren(node, fn)
}

func walkChildren(node Node, fn func(Node) bool) {
	info := mustInfo(node)
	v := reflect.ValueOf(node).Elem()
	for _, f := range info.fields {
		fv := v.Field(f.index)
		switch f.Shape {
		case ShapeNode, ShapeTypedNode:
			Walk(nodeOf(fv), fn)
		case ShapeList:
			for i := 0; i < fv.Len(); i++ {
				Walk(nodeOf(fv.Index(i)), fn)
			}
		}
	}
}

// Collect returns every node of type T in the tree, in walk order.
func Collect[T Node](node Node) []T {
	var out []T
	Walk(node, func(n Node) bool {
		if t, ok := n.(T); ok {
			out = append(out, t)
		}
		return true
	})
	return out
}

// CollectFuncCalls returns all function calls in a tree.
func CollectFuncCalls(node Node) []*FuncCall {
	return Collect[*FuncCall](node)
}

// CollectColumnRefs returns all column references in a tree.
func CollectColumnRefs(node Node) []*ColumnRef {
	return Collect[*ColumnRef](node)
}

// CollectRangeVars returns all relation references in a tree.
func CollectRangeVars(node Node) []*RangeVar {
	return Collect[*RangeVar](node)
}
