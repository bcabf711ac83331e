package ast

import "reflect"

// Equal reports whether two trees have the same tags and recursively equal
// fields. A nil list equals an empty one.
func Equal(a, b Node) bool {
	an, bn := isNil(a), isNil(b)
	if an || bn {
		return an == bn
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	info := mustInfo(a)
	va, vb := reflect.ValueOf(a).Elem(), reflect.ValueOf(b).Elem()
	for _, f := range info.fields {
		fa, fb := va.Field(f.index), vb.Field(f.index)
		switch f.Shape {
		case ShapeInt, ShapeEnum:
			if fa.Int() != fb.Int() {
				return false
			}
		case ShapeString:
			if fa.String() != fb.String() {
				return false
			}
		case ShapeBool:
			if fa.Bool() != fb.Bool() {
				return false
			}
		case ShapeNode, ShapeTypedNode:
			if !Equal(nodeOf(fa), nodeOf(fb)) {
				return false
			}
		case ShapeList:
			if !EqualLists(fa.Interface().([]Node), fb.Interface().([]Node)) {
				return false
			}
		}
	}
	return true
}

// EqualLists compares two node lists element-wise with Equal. A nil list
// equals an empty one.
func EqualLists(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
