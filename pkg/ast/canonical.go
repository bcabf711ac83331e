package ast

import (
	"fmt"
	"math"
	"reflect"
	"sort"
)

// ToMap returns the canonical form of a node: a map holding the tag under
// TagKey and one entry per non-zero field. Nested nodes are maps, lists are
// []any and enums are their symbolic names. ToMap(nil) is nil.
func ToMap(n Node) map[string]any {
	if isNil(n) {
		return nil
	}
	info := mustInfo(n)
	v := reflect.ValueOf(n).Elem()
	m := map[string]any{TagKey: info.tag}
	for _, f := range info.fields {
		fv := v.Field(f.index)
		if fv.IsZero() {
			continue
		}
		switch f.Shape {
		case ShapeInt:
			m[f.Name] = int(fv.Int())
		case ShapeEnum:
			m[f.Name] = enumString(enumTables[f.typ], int(fv.Int()))
		case ShapeString:
			m[f.Name] = fv.String()
		case ShapeBool:
			m[f.Name] = true
		case ShapeNode, ShapeTypedNode:
			if child := nodeOf(fv); !isNil(child) {
				m[f.Name] = ToMap(child)
			}
		case ShapeList:
			if fv.Len() == 0 {
				continue
			}
			items := make([]any, fv.Len())
			for i := range items {
				if child := nodeOf(fv.Index(i)); !isNil(child) {
					items[i] = ToMap(child)
				}
			}
			m[f.Name] = items
		}
	}
	return m
}

// FromMap rebuilds a node from its canonical form.
func FromMap(m map[string]any) (Node, error) {
	tag, ok := m[TagKey].(string)
	if !ok {
		return nil, &StructuralError{Path: TagKey, Message: "missing node tag"}
	}
	return build(tag, m, tag)
}

// New builds a node of the given kind from a partial field mapping. Absent
// fields keep their zero value. Field values may be canonical-form maps or
// Node values.
func New(tag string, fields map[string]any) (Node, error) {
	return build(tag, fields, tag)
}

func build(tag string, fields map[string]any, path string) (Node, error) {
	loadSchema()
	info, ok := infoByTag[tag]
	if !ok {
		return nil, &StructuralError{Path: path, Message: fmt.Sprintf("unknown node tag %q", tag), Err: ErrUnknownTag}
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ptr := reflect.New(info.typ)
	v := ptr.Elem()
	for _, key := range keys {
		val := fields[key]
		if key == TagKey {
			if s, ok := val.(string); !ok || s != tag {
				return nil, &StructuralError{Path: path, Message: fmt.Sprintf("tag %v does not match %s", val, tag)}
			}
			continue
		}
		idx, ok := info.byName[key]
		if !ok {
			return nil, &StructuralError{Path: path + "." + key, Message: fmt.Sprintf("%s has no field %q", tag, key)}
		}
		f := info.fields[idx]
		if err := setField(v.Field(f.index), f, val, path+"."+key); err != nil {
			return nil, err
		}
	}
	return ptr.Interface().(Node), nil
}

func setField(fv reflect.Value, f Field, val any, path string) error {
	if val == nil {
		return nil
	}
	switch f.Shape {
	case ShapeInt:
		i, ok := toInt(val)
		if !ok {
			return &StructuralError{Path: path, Message: fmt.Sprintf("expected integer, got %T", val)}
		}
		fv.SetInt(i)

	case ShapeEnum:
		switch x := val.(type) {
		case string:
			i, ok := enumValue(f.typ, x)
			if !ok {
				return &StructuralError{Path: path, Message: fmt.Sprintf("unknown %s value %q", f.Variant, x)}
			}
			fv.SetInt(int64(i))
		default:
			i, ok := toInt(val)
			if !ok || i < 0 || i >= int64(len(enumTables[f.typ])) {
				return &StructuralError{Path: path, Message: fmt.Sprintf("invalid %s value %v", f.Variant, val)}
			}
			fv.SetInt(i)
		}

	case ShapeString:
		s, ok := val.(string)
		if !ok {
			return &StructuralError{Path: path, Message: fmt.Sprintf("expected string, got %T", val)}
		}
		fv.SetString(s)

	case ShapeBool:
		b, ok := val.(bool)
		if !ok {
			return &StructuralError{Path: path, Message: fmt.Sprintf("expected bool, got %T", val)}
		}
		fv.SetBool(b)

	case ShapeNode, ShapeTypedNode:
		child, err := toNode(val, path)
		if err != nil {
			return err
		}
		if child == nil {
			return nil
		}
		if f.Shape == ShapeTypedNode && reflect.TypeOf(child) != f.typ {
			return &StructuralError{Path: path, Message: fmt.Sprintf("expected %s, got %s", f.Variant, Tag(child))}
		}
		fv.Set(reflect.ValueOf(child))

	case ShapeList:
		items, ok := toList(val)
		if !ok {
			return &StructuralError{Path: path, Message: fmt.Sprintf("expected list, got %T", val)}
		}
		list := make([]Node, len(items))
		for i, item := range items {
			child, err := toNode(item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return err
			}
			list[i] = child
		}
		fv.Set(reflect.ValueOf(list))
	}
	return nil
}

func toNode(val any, path string) (Node, error) {
	switch x := val.(type) {
	case nil:
		return nil, nil
	case Node:
		if isNil(x) {
			return nil, nil
		}
		if _, err := typeInfoFor(x); err != nil {
			return nil, &StructuralError{Path: path, Message: err.Error(), Err: ErrUnknownTag}
		}
		return x, nil
	case map[string]any:
		tag, ok := x[TagKey].(string)
		if !ok {
			return nil, &StructuralError{Path: path, Message: "missing node tag"}
		}
		return build(tag, x, path)
	default:
		return nil, &StructuralError{Path: path, Message: fmt.Sprintf("expected node, got %T", val)}
	}
}

func toList(val any) ([]any, bool) {
	switch x := val.(type) {
	case []any:
		return x, true
	case []map[string]any:
		out := make([]any, len(x))
		for i, m := range x {
			out[i] = m
		}
		return out, true
	case []Node:
		out := make([]any, len(x))
		for i, n := range x {
			out[i] = n
		}
		return out, true
	}
	return nil, false
}

// int64er matches json.Number from encoding/json and goccy/go-json.
type int64er interface {
	Int64() (int64, error)
}

func toInt(val any) (int64, bool) {
	switch x := val.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		if x > math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	case float64:
		if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	case float32:
		return toInt(float64(x))
	case int64er:
		i, err := x.Int64()
		return i, err == nil
	}
	return 0, false
}
