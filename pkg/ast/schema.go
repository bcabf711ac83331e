package ast

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// FieldShape describes what a node field may hold.
type FieldShape int

// Field shapes.
const (
	ShapeInt FieldShape = iota
	ShapeString
	ShapeBool
	ShapeEnum
	ShapeNode      // any node
	ShapeTypedNode // one specific node kind, see Field.Variant
	ShapeList      // list of nodes
)

var shapeNames = [...]string{"int", "string", "bool", "enum", "node", "typed node", "list"}

func (s FieldShape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// Field describes one declared field of a node kind.
type Field struct {
	Name    string // canonical name, e.g. targetList
	GoName  string
	Shape   FieldShape
	Variant string // node tag for ShapeTypedNode, type name for ShapeEnum

	index int
	typ   reflect.Type
}

type typeInfo struct {
	tag    string
	typ    reflect.Type // struct type
	fields []Field
	byName map[string]int
}

var (
	schemaOnce sync.Once
	infoByTag  map[string]*typeInfo
	infoByType map[reflect.Type]*typeInfo
	nodeIface  = reflect.TypeFor[Node]()
)

func loadSchema() {
	schemaOnce.Do(func() {
		infoByTag = make(map[string]*typeInfo, len(nodeTypes))
		infoByType = make(map[reflect.Type]*typeInfo, len(nodeTypes))
		for _, n := range nodeTypes {
			ptr := reflect.TypeOf(n)
			info := buildTypeInfo(ptr.Elem())
			infoByTag[info.tag] = info
			infoByType[ptr] = info
		}
	})
}

func buildTypeInfo(t reflect.Type) *typeInfo {
	info := &typeInfo{tag: t.Name(), typ: t, byName: make(map[string]int)}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		f := Field{Name: name, GoName: sf.Name, index: i, typ: sf.Type}
		switch {
		case sf.Type == nodeIface:
			f.Shape = ShapeNode
		case sf.Type.Kind() == reflect.Pointer && sf.Type.Implements(nodeIface):
			f.Shape = ShapeTypedNode
			f.Variant = sf.Type.Elem().Name()
		case sf.Type.Kind() == reflect.Slice && sf.Type.Elem() == nodeIface:
			f.Shape = ShapeList
		case sf.Type.Kind() == reflect.Int:
			if _, ok := enumTables[sf.Type]; ok {
				f.Shape = ShapeEnum
				f.Variant = sf.Type.Name()
			} else {
				f.Shape = ShapeInt
			}
		case sf.Type.Kind() == reflect.String:
			f.Shape = ShapeString
		case sf.Type.Kind() == reflect.Bool:
			f.Shape = ShapeBool
		default:
			panic(fmt.Sprintf("ast: unsupported field %s.%s of type %s", t.Name(), sf.Name, sf.Type))
		}
		info.byName[name] = len(info.fields)
		info.fields = append(info.fields, f)
	}
	return info
}

func typeInfoFor(n Node) (*typeInfo, error) {
	loadSchema()
	info, ok := infoByType[reflect.TypeOf(n)]
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnknownTag, n)
	}
	return info, nil
}

func mustInfo(n Node) *typeInfo {
	info, err := typeInfoFor(n)
	if err != nil {
		panic(err)
	}
	return info
}

// Schema returns the declared fields of a node kind in declaration order.
func Schema(tag string) ([]Field, error) {
	loadSchema()
	info, ok := infoByTag[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTag, tag)
	}
	out := make([]Field, len(info.fields))
	copy(out, info.fields)
	return out, nil
}

// Tags returns every node tag, sorted.
func Tags() []string {
	loadSchema()
	tags := make([]string, 0, len(infoByTag))
	for tag := range infoByTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// EnumNames returns the symbolic names of an enum type, indexed by value.
func EnumNames(typeName string) []string {
	for t, names := range enumTables {
		if t.Name() == typeName {
			return append([]string(nil), names...)
		}
	}
	return nil
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// nodeOf extracts a node from a Node or *T field value.
func nodeOf(v reflect.Value) Node {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(Node)
}
