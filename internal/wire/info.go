// Package wire encodes tagged Go structs as protocol buffer messages.
//
// A message is a struct whose exported fields carry a tag of the form
//
//	`protobuf:"<number>,<proto_name>"`
//
// The Go type of the field decides the proto type: bool, int32, int64,
// uint32, uint64, float32, float64, string and []byte map to the matching
// scalars, named int32 types implementing Enum are enums, pointers to tagged
// structs are nested messages, pointers to scalars are proto3 optional fields,
// slices are repeated fields and map[string]string is a string map. Fields
// holding a proto.Message (the well-known types) are delegated to the
// protobuf runtime.
//
// A third tag option `oneof=<group>` puts message or optional fields into a
// oneof: decoding a member clears the other members of its group.
package wire

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

type kind int

const (
	boolKind kind = iota + 1
	int32Kind
	int64Kind
	uint32Kind
	uint64Kind
	floatKind
	doubleKind
	stringKind
	bytesKind
	enumKind
	messageKind
	protoKind
	mapKind
)

type fieldInfo struct {
	num      protowire.Number
	name     string
	jsonName string
	index    int
	kind     kind
	// elem is the element type of repeated fields, the pointee of optional
	// scalars and the field type itself otherwise.
	elem     reflect.Type
	repeated bool
	optional bool
	// oneof is the group name of oneof members.
	oneof string
}

type messageInfo struct {
	typ    reflect.Type
	fields []*fieldInfo
	byNum  map[protowire.Number]*fieldInfo
	byName map[string]*fieldInfo
	oneofs map[string][]*fieldInfo
}

var (
	infoCache sync.Map

	protoMessageType = reflect.TypeOf((*proto.Message)(nil)).Elem()
	enumType         = reflect.TypeOf((*Enum)(nil)).Elem()
	bytesType        = reflect.TypeOf([]byte(nil))
)

func infoOf(t reflect.Type) *messageInfo {
	if mi, ok := infoCache.Load(t); ok {
		return mi.(*messageInfo)
	}
	mi := buildInfo(t)
	actual, _ := infoCache.LoadOrStore(t, mi)
	return actual.(*messageInfo)
}

func buildInfo(t reflect.Type) *messageInfo {
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("wire: %v is not a struct", t))
	}
	mi := &messageInfo{
		typ:    t,
		byNum:  make(map[protowire.Number]*fieldInfo),
		byName: make(map[string]*fieldInfo),
		oneofs: make(map[string][]*fieldInfo),
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup("protobuf")
		if !ok || !sf.IsExported() {
			continue
		}
		f, err := parseField(sf, tag)
		if err != nil {
			panic(fmt.Sprintf("wire: %v.%s: %v", t, sf.Name, err))
		}
		f.index = i
		if _, dup := mi.byNum[f.num]; dup {
			panic(fmt.Sprintf("wire: %v: duplicate field number %d", t, f.num))
		}
		mi.fields = append(mi.fields, f)
		mi.byNum[f.num] = f
		mi.byName[f.name] = f
		mi.byName[f.jsonName] = f
		if f.oneof != "" {
			mi.oneofs[f.oneof] = append(mi.oneofs[f.oneof], f)
		}
	}
	return mi
}

// clearOneof zeroes the members of f's oneof other than f.
func (mi *messageInfo) clearOneof(f *fieldInfo, v reflect.Value) {
	for _, o := range mi.oneofs[f.oneof] {
		if o != f {
			fv := v.Field(o.index)
			fv.Set(reflect.Zero(fv.Type()))
		}
	}
}

func parseField(sf reflect.StructField, tag string) (*fieldInfo, error) {
	parts := strings.Split(tag, ",")
	if len(parts) < 2 {
		return nil, fmt.Errorf("malformed tag %q", tag)
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil || !protowire.Number(n).IsValid() {
		return nil, fmt.Errorf("invalid field number %q", parts[0])
	}
	f := &fieldInfo{
		num:      protowire.Number(n),
		name:     parts[1],
		jsonName: jsonName(parts[1]),
	}

	ft := sf.Type
	switch {
	case ft == bytesType:
		f.kind, f.elem = bytesKind, ft
	case ft.Kind() == reflect.Map:
		if ft.Key().Kind() != reflect.String || ft.Elem().Kind() != reflect.String {
			return nil, fmt.Errorf("only map[string]string is supported, got %v", ft)
		}
		f.kind, f.elem = mapKind, ft.Elem()
	case ft.Kind() == reflect.Slice:
		f.repeated, f.elem = true, ft.Elem()
		f.kind, err = kindOf(ft.Elem())
	case ft.Kind() == reflect.Ptr && !ft.Implements(protoMessageType) && ft.Elem().Kind() != reflect.Struct:
		f.optional, f.elem = true, ft.Elem()
		f.kind, err = kindOf(ft.Elem())
	default:
		f.elem = ft
		f.kind, err = kindOf(ft)
	}
	if err != nil {
		return nil, err
	}
	for _, opt := range parts[2:] {
		group, ok := strings.CutPrefix(opt, "oneof=")
		if !ok || group == "" {
			return nil, fmt.Errorf("unknown tag option %q", opt)
		}
		if f.repeated || !(f.optional || f.kind == messageKind || f.kind == protoKind) {
			return nil, fmt.Errorf("oneof member must be a message or optional field")
		}
		f.oneof = group
	}
	return f, nil
}

func kindOf(t reflect.Type) (kind, error) {
	switch {
	case t == bytesType:
		return bytesKind, nil
	case t.Implements(protoMessageType):
		return protoKind, nil
	case t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Struct:
		return messageKind, nil
	}
	switch t.Kind() {
	case reflect.Bool:
		return boolKind, nil
	case reflect.Int32:
		if t.Implements(enumType) {
			return enumKind, nil
		}
		return int32Kind, nil
	case reflect.Int64:
		return int64Kind, nil
	case reflect.Uint32:
		return uint32Kind, nil
	case reflect.Uint64:
		return uint64Kind, nil
	case reflect.Float32:
		return floatKind, nil
	case reflect.Float64:
		return doubleKind, nil
	case reflect.String:
		return stringKind, nil
	}
	return 0, fmt.Errorf("unsupported type %v", t)
}

// jsonName converts a proto field name to its lowerCamelCase JSON name.
func jsonName(name string) string {
	var b strings.Builder
	upper := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_':
			upper = true
		case upper && 'a' <= c && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
			upper = false
		default:
			b.WriteByte(c)
			upper = false
		}
	}
	return b.String()
}

func wireType(k kind) protowire.Type {
	switch k {
	case boolKind, int32Kind, int64Kind, uint32Kind, uint64Kind, enumKind:
		return protowire.VarintType
	case floatKind:
		return protowire.Fixed32Type
	case doubleKind:
		return protowire.Fixed64Type
	}
	return protowire.BytesType
}

func packable(k kind) bool {
	return wireType(k) != protowire.BytesType
}

func isEmpty(f *fieldInfo, v reflect.Value) bool {
	switch f.kind {
	case messageKind, protoKind:
		return v.IsNil()
	case bytesKind:
		return v.Len() == 0
	}
	return v.IsZero()
}

func messageValue(m any) (reflect.Value, error) {
	v := reflect.ValueOf(m)
	if v.Kind() != reflect.Ptr || v.Type().Elem().Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("wire: %T is not a pointer to a message struct", m)
	}
	return v, nil
}
