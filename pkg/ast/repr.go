package ast

import (
	"reflect"
	"strconv"
	"strings"
)

// Repr renders a node in a compact text form, e.g.
//
//	<ResTarget val=<ColumnRef fields=[<String sval="a">]> location=7>
//
// Zero fields are omitted, so clones render identically.
func Repr(n Node) string {
	var sb strings.Builder
	writeRepr(&sb, n)
	return sb.String()
}

func writeRepr(sb *strings.Builder, n Node) {
	if isNil(n) {
		sb.WriteString("None")
		return
	}
	info := mustInfo(n)
	v := reflect.ValueOf(n).Elem()
	sb.WriteByte('<')
	sb.WriteString(info.tag)
	for _, f := range info.fields {
		fv := v.Field(f.index)
		if fv.IsZero() || (f.Shape == ShapeList && fv.Len() == 0) {
			continue
		}
		if (f.Shape == ShapeNode || f.Shape == ShapeTypedNode) && fv.IsNil() {
			continue
		}
		sb.WriteByte(' ')
		sb.WriteString(f.Name)
		sb.WriteByte('=')
		switch f.Shape {
		case ShapeInt:
			sb.WriteString(strconv.FormatInt(fv.Int(), 10))
		case ShapeEnum:
			sb.WriteString(enumString(enumTables[f.typ], int(fv.Int())))
		case ShapeString:
			sb.WriteString(strconv.Quote(fv.String()))
		case ShapeBool:
			sb.WriteString("true")
		case ShapeNode, ShapeTypedNode:
			writeRepr(sb, nodeOf(fv))
		case ShapeList:
			sb.WriteByte('[')
			for i := 0; i < fv.Len(); i++ {
				if i > 0 {
					sb.WriteString(", ")
				}
				writeRepr(sb, nodeOf(fv.Index(i)))
			}
			sb.WriteByte(']')
		}
	}
	sb.WriteByte('>')
}
