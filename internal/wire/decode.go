package wire

import (
	"fmt"
	"math"
	"reflect"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

var protoUnmarshal = proto.UnmarshalOptions{Merge: true}

// Unmarshal parses the proto3 binary encoding in b into m, which is reset
// first. Fields whose numbers m does not declare are skipped.
func Unmarshal(b []byte, m any) error {
	v, err := messageValue(m)
	if err != nil {
		return err
	}
	if v.IsNil() {
		return fmt.Errorf("wire: Unmarshal into nil %T", m)
	}
	e := v.Elem()
	e.Set(reflect.Zero(e.Type()))
	return consumeMessage(b, e)
}

func consumeMessage(b []byte, v reflect.Value) error {
	mi := infoOf(v.Type())
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		f := mi.byNum[num]
		if f == nil {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
			continue
		}
		n, err := consumeField(b, typ, f, v.Field(f.index))
		if err != nil {
			return fmt.Errorf("%s.%s: %w", mi.typ.Name(), f.name, err)
		}
		if f.oneof != "" {
			mi.clearOneof(f, v)
		}
		b = b[n:]
	}
	return nil
}

func consumeField(b []byte, typ protowire.Type, f *fieldInfo, fv reflect.Value) (int, error) {
	switch {
	case f.kind == mapKind:
		if typ != protowire.BytesType {
			return 0, wireTypeError(typ)
		}
		entry, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		key, val, err := consumeMapEntry(entry)
		if err != nil {
			return 0, err
		}
		if fv.IsNil() {
			fv.Set(reflect.MakeMap(fv.Type()))
		}
		fv.SetMapIndex(reflect.ValueOf(key).Convert(fv.Type().Key()), reflect.ValueOf(val).Convert(f.elem))
		return n, nil

	case f.repeated:
		if typ == protowire.BytesType && packable(f.kind) {
			buf, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return 0, protowire.ParseError(n)
			}
			for len(buf) > 0 {
				elem := reflect.New(f.elem).Elem()
				m, err := consumeValue(buf, wireType(f.kind), f.kind, elem)
				if err != nil {
					return 0, err
				}
				buf = buf[m:]
				fv.Set(reflect.Append(fv, elem))
			}
			return n, nil
		}
		elem := reflect.New(f.elem).Elem()
		n, err := consumeValue(b, typ, f.kind, elem)
		if err != nil {
			return 0, err
		}
		fv.Set(reflect.Append(fv, elem))
		return n, nil

	case f.optional:
		ptr := reflect.New(f.elem)
		n, err := consumeValue(b, typ, f.kind, ptr.Elem())
		if err != nil {
			return 0, err
		}
		fv.Set(ptr)
		return n, nil
	}
	return consumeValue(b, typ, f.kind, fv)
}

func consumeValue(b []byte, typ protowire.Type, k kind, v reflect.Value) (int, error) {
	if typ != wireType(k) {
		return 0, wireTypeError(typ)
	}
	switch typ {
	case protowire.VarintType:
		x, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		switch k {
		case boolKind:
			v.SetBool(protowire.DecodeBool(x))
		case int32Kind, enumKind:
			v.SetInt(int64(int32(x)))
		case int64Kind:
			v.SetInt(int64(x))
		case uint32Kind:
			v.SetUint(uint64(uint32(x)))
		case uint64Kind:
			v.SetUint(x)
		}
		return n, nil
	case protowire.Fixed32Type:
		x, n := protowire.ConsumeFixed32(b)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		v.SetFloat(float64(math.Float32frombits(x)))
		return n, nil
	case protowire.Fixed64Type:
		x, n := protowire.ConsumeFixed64(b)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		v.SetFloat(math.Float64frombits(x))
		return n, nil
	}

	x, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	switch k {
	case stringKind:
		if !utf8.Valid(x) {
			return 0, errInvalidUTF8
		}
		v.SetString(string(x))
	case bytesKind:
		v.SetBytes(append([]byte{}, x...))
	case messageKind:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		if err := consumeMessage(x, v.Elem()); err != nil {
			return 0, err
		}
	case protoKind:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		if err := protoUnmarshal.Unmarshal(x, v.Interface().(proto.Message)); err != nil {
			return 0, err
		}
	}
	return n, nil
}

func consumeMapEntry(b []byte) (key, val string, err error) {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return "", "", protowire.ParseError(n)
		}
		b = b[n:]
		if (num == 1 || num == 2) && typ == protowire.BytesType {
			x, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return "", "", protowire.ParseError(m)
			}
			if !utf8.Valid(x) {
				return "", "", errInvalidUTF8
			}
			if num == 1 {
				key = string(x)
			} else {
				val = string(x)
			}
			b = b[m:]
			continue
		}
		m := protowire.ConsumeFieldValue(num, typ, b)
		if m < 0 {
			return "", "", protowire.ParseError(m)
		}
		b = b[m:]
	}
	return key, val, nil
}

func wireTypeError(typ protowire.Type) error {
	return fmt.Errorf("unexpected wire type %d", typ)
}
