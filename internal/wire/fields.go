package wire

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"google.golang.org/protobuf/proto"
)

// walk resolves a dotted field path below v. Intermediate messages are
// allocated when alloc is set; otherwise a nil intermediate yields an invalid
// value and a nil error.
func walk(v reflect.Value, path string, alloc bool) (reflect.Value, *fieldInfo, error) {
	parts := strings.Split(path, ".")
	for i, part := range parts {
		mi := infoOf(v.Type())
		f := mi.byName[part]
		if f == nil {
			return reflect.Value{}, nil, fmt.Errorf("wire: %s has no field %q", mi.typ.Name(), part)
		}
		fv := v.Field(f.index)
		if i == len(parts)-1 {
			return fv, f, nil
		}
		if f.kind != messageKind || f.repeated {
			return reflect.Value{}, nil, fmt.Errorf("wire: field %q of %s is not a message", part, mi.typ.Name())
		}
		if fv.IsNil() {
			if !alloc {
				return reflect.Value{}, f, nil
			}
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		v = fv.Elem()
	}
	return reflect.Value{}, nil, fmt.Errorf("wire: empty field path")
}

// HasField reports whether the message type of m declares the dotted path.
func HasField(m any, path string) bool {
	v, err := messageValue(m)
	if err != nil {
		return false
	}
	_, _, err = walk(reflect.New(v.Type().Elem()).Elem(), path, true)
	return err == nil
}

// GetString returns the string field at path, or false when the path does
// not name a string field or an intermediate message is unset.
func GetString(m any, path string) (string, bool) {
	v, err := messageValue(m)
	if err != nil || v.IsNil() {
		return "", false
	}
	fv, f, err := walk(v.Elem(), path, false)
	if err != nil || !fv.IsValid() || f.kind != stringKind || f.repeated {
		return "", false
	}
	if f.optional {
		if fv.IsNil() {
			return "", false
		}
		fv = fv.Elem()
	}
	return fv.String(), true
}

// SetField parses value according to the type of the field at path and
// stores it, allocating intermediate messages. Repeated scalar fields are
// appended to. Well-known message types take their JSON string form, e.g. a
// comma separated FieldMask or an RFC 3339 Timestamp.
func SetField(m any, path, value string) error {
	v, err := messageValue(m)
	if err != nil {
		return err
	}
	fv, f, err := walk(v.Elem(), path, true)
	if err != nil {
		return err
	}
	if f.kind == mapKind || f.kind == messageKind {
		return fmt.Errorf("wire: field %q cannot be set from a string", path)
	}
	target := fv
	if f.repeated || f.optional {
		target = reflect.New(f.elem).Elem()
	}
	if f.kind == boolKind {
		x, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("wire: field %q: %w", path, err)
		}
		target.SetBool(x)
	} else {
		raw, _ := json.Marshal(value)
		if err := readValue(raw, f.kind, target); err != nil {
			return fmt.Errorf("wire: field %q: %w", path, err)
		}
	}
	switch {
	case f.repeated:
		fv.Set(reflect.Append(fv, target))
	case f.optional:
		ptr := reflect.New(f.elem)
		ptr.Elem().Set(target)
		fv.Set(ptr)
	}
	return nil
}

// Merge copies the fields named by paths from src into dst. Both must be
// pointers to the same message type. A path may descend into nested
// messages with dots; an unset source message clears the destination field.
func Merge(dst, src any, paths []string) error {
	dv, err := messageValue(dst)
	if err != nil {
		return err
	}
	sv, err := messageValue(src)
	if err != nil {
		return err
	}
	if dv.Type() != sv.Type() {
		return fmt.Errorf("wire: cannot merge %T into %T", src, dst)
	}
	if dv.IsNil() {
		return fmt.Errorf("wire: Merge into nil %T", dst)
	}
	se := sv.Elem()
	if sv.IsNil() {
		se = reflect.New(sv.Type().Elem()).Elem()
	}
	for _, p := range paths {
		if err := mergePath(dv.Elem(), se, strings.Split(p, ".")); err != nil {
			return fmt.Errorf("wire: path %q: %w", p, err)
		}
	}
	return nil
}

func mergePath(dst, src reflect.Value, parts []string) error {
	mi := infoOf(dst.Type())
	f := mi.byName[parts[0]]
	if f == nil {
		return fmt.Errorf("unknown field %q", parts[0])
	}
	df, sf := dst.Field(f.index), src.Field(f.index)
	if len(parts) == 1 {
		df.Set(copyValue(sf))
		if f.oneof != "" && !sf.IsNil() {
			mi.clearOneof(f, dst)
		}
		return nil
	}
	if f.kind != messageKind || f.repeated {
		return fmt.Errorf("field %q is not a message", parts[0])
	}
	se := reflect.New(f.elem.Elem()).Elem()
	if !sf.IsNil() {
		se = sf.Elem()
	}
	if df.IsNil() {
		df.Set(reflect.New(f.elem.Elem()))
		if f.oneof != "" {
			mi.clearOneof(f, dst)
		}
	}
	return mergePath(df.Elem(), se, parts[1:])
}

// Clone returns a deep copy of m.
func Clone[T any](m *T) *T {
	if m == nil {
		return nil
	}
	return copyValue(reflect.ValueOf(m)).Interface().(*T)
}

// CloneAny is Clone for callers holding a message as an interface value.
func CloneAny(m any) any {
	if pm, ok := m.(proto.Message); ok {
		return proto.Clone(pm)
	}
	if _, err := messageValue(m); err != nil {
		return m
	}
	return copyValue(reflect.ValueOf(m)).Interface()
}

func copyValue(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		if m, ok := v.Interface().(proto.Message); ok {
			return reflect.ValueOf(proto.Clone(m))
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(copyValue(v.Elem()))
		return out
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		for _, f := range infoOf(v.Type()).fields {
			out.Field(f.index).Set(copyValue(v.Field(f.index)))
		}
		return out
	case reflect.Slice:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(copyValue(v.Index(i)))
		}
		return out
	case reflect.Map:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), iter.Value())
		}
		return out
	}
	return v
}

// Equal reports whether a and b have the same binary encoding.
func Equal(a, b any) bool {
	x, err := Marshal(a)
	if err != nil {
		return false
	}
	y, err := Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(x, y)
}

// ClearFields zeroes every field whose proto name is in names, in m and in
// all nested messages.
func ClearFields(m any, names ...string) {
	v, err := messageValue(m)
	if err != nil || v.IsNil() {
		return
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	clearFields(v.Elem(), set)
}

func clearFields(v reflect.Value, names map[string]bool) {
	for _, f := range infoOf(v.Type()).fields {
		fv := v.Field(f.index)
		if names[f.name] {
			fv.Set(reflect.Zero(fv.Type()))
			continue
		}
		if f.kind != messageKind {
			continue
		}
		if f.repeated {
			for i := 0; i < fv.Len(); i++ {
				if e := fv.Index(i); !e.IsNil() {
					clearFields(e.Elem(), names)
				}
			}
		} else if !fv.IsNil() {
			clearFields(fv.Elem(), names)
		}
	}
}
