package ast

import "reflect"

// Clone returns a deep copy of n sharing no pointers or slices with it.
func Clone(n Node) Node {
	if isNil(n) {
		return nil
	}
	info := mustInfo(n)
	src := reflect.ValueOf(n).Elem()
	dst := reflect.New(info.typ)
	d := dst.Elem()
	for _, f := range info.fields {
		sf, df := src.Field(f.index), d.Field(f.index)
		switch f.Shape {
		case ShapeNode, ShapeTypedNode:
			if c := Clone(nodeOf(sf)); c != nil {
				df.Set(reflect.ValueOf(c))
			}
		case ShapeList:
			if sf.IsNil() {
				continue
			}
			list := make([]Node, sf.Len())
			for i := range list {
				list[i] = Clone(nodeOf(sf.Index(i)))
			}
			df.Set(reflect.ValueOf(list))
		default:
			df.Set(sf)
		}
	}
	return dst.Interface().(Node)
}

// CloneStmt deep-copies a raw statement.
func CloneStmt(s *RawStmt) *RawStmt {
	if s == nil {
		return nil
	}
	return Clone(s).(*RawStmt)
}
