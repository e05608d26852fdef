package wire

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

var errInvalidUTF8 = errors.New("string field contains invalid UTF-8")

var protoMarshal = proto.MarshalOptions{Deterministic: true}

// Marshal returns the proto3 binary encoding of m. Map entries are written in
// key order so equal messages produce equal bytes.
func Marshal(m any) ([]byte, error) {
	v, err := messageValue(m)
	if err != nil {
		return nil, err
	}
	if v.IsNil() {
		return nil, nil
	}
	return appendMessage(nil, v.Elem())
}

func appendMessage(b []byte, v reflect.Value) ([]byte, error) {
	mi := infoOf(v.Type())
	for _, f := range mi.fields {
		fv := v.Field(f.index)
		var err error
		switch {
		case f.kind == mapKind:
			b, err = appendMap(b, f, fv)
		case f.repeated:
			b, err = appendRepeated(b, f, fv)
		case f.optional:
			if fv.IsNil() {
				continue
			}
			b, err = appendField(b, f, fv.Elem())
		default:
			if isEmpty(f, fv) {
				continue
			}
			b, err = appendField(b, f, fv)
		}
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", mi.typ.Name(), f.name, err)
		}
	}
	return b, nil
}

func appendField(b []byte, f *fieldInfo, v reflect.Value) ([]byte, error) {
	b = protowire.AppendTag(b, f.num, wireType(f.kind))
	return appendValue(b, f.kind, v)
}

func appendValue(b []byte, k kind, v reflect.Value) ([]byte, error) {
	switch k {
	case boolKind:
		return protowire.AppendVarint(b, protowire.EncodeBool(v.Bool())), nil
	case int32Kind, int64Kind, enumKind:
		return protowire.AppendVarint(b, uint64(v.Int())), nil
	case uint32Kind, uint64Kind:
		return protowire.AppendVarint(b, v.Uint()), nil
	case floatKind:
		return protowire.AppendFixed32(b, math.Float32bits(float32(v.Float()))), nil
	case doubleKind:
		return protowire.AppendFixed64(b, math.Float64bits(v.Float())), nil
	case stringKind:
		s := v.String()
		if !utf8.ValidString(s) {
			return nil, errInvalidUTF8
		}
		return protowire.AppendString(b, s), nil
	case bytesKind:
		return protowire.AppendBytes(b, v.Bytes()), nil
	case messageKind:
		var nested []byte
		if !v.IsNil() {
			var err error
			if nested, err = appendMessage(nil, v.Elem()); err != nil {
				return nil, err
			}
		}
		return protowire.AppendBytes(b, nested), nil
	case protoKind:
		var nested []byte
		if !v.IsNil() {
			var err error
			if nested, err = protoMarshal.Marshal(v.Interface().(proto.Message)); err != nil {
				return nil, err
			}
		}
		return protowire.AppendBytes(b, nested), nil
	}
	return nil, fmt.Errorf("unhandled kind %d", k)
}

func appendRepeated(b []byte, f *fieldInfo, v reflect.Value) ([]byte, error) {
	n := v.Len()
	if n == 0 {
		return b, nil
	}
	if packable(f.kind) {
		var packed []byte
		for i := 0; i < n; i++ {
			var err error
			if packed, err = appendValue(packed, f.kind, v.Index(i)); err != nil {
				return nil, err
			}
		}
		b = protowire.AppendTag(b, f.num, protowire.BytesType)
		return protowire.AppendBytes(b, packed), nil
	}
	for i := 0; i < n; i++ {
		var err error
		if b, err = appendField(b, f, v.Index(i)); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func appendMap(b []byte, f *fieldInfo, v reflect.Value) ([]byte, error) {
	if v.Len() == 0 {
		return b, nil
	}
	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	for _, k := range keys {
		key, val := k.String(), v.MapIndex(k).String()
		if !utf8.ValidString(key) || !utf8.ValidString(val) {
			return nil, errInvalidUTF8
		}
		var entry []byte
		entry = protowire.AppendTag(entry, 1, protowire.BytesType)
		entry = protowire.AppendString(entry, key)
		entry = protowire.AppendTag(entry, 2, protowire.BytesType)
		entry = protowire.AppendString(entry, val)
		b = protowire.AppendTag(b, f.num, protowire.BytesType)
		b = protowire.AppendBytes(b, entry)
	}
	return b, nil
}
