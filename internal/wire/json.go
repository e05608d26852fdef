package wire

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"

	"github.com/goccy/go-json"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// MarshalJSON returns the canonical JSON form of m: lowerCamelCase keys,
// default values omitted, 64-bit integers as strings, enums by name and bytes
// as standard base64.
func MarshalJSON(m any) ([]byte, error) {
	if pm, ok := m.(proto.Message); ok {
		return protojson.Marshal(pm)
	}
	v, err := messageValue(m)
	if err != nil {
		return nil, err
	}
	if v.IsNil() {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	if err := writeMessage(&buf, v.Elem()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeMessage(buf *bytes.Buffer, v reflect.Value) error {
	mi := infoOf(v.Type())
	buf.WriteByte('{')
	first := true
	for _, f := range mi.fields {
		fv := v.Field(f.index)
		switch {
		case f.kind == mapKind || f.repeated:
			if fv.Len() == 0 {
				continue
			}
		case f.optional:
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		default:
			if isEmpty(f, fv) {
				continue
			}
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		writeString(buf, f.jsonName)
		buf.WriteByte(':')

		var err error
		switch {
		case f.kind == mapKind:
			err = writeMap(buf, fv)
		case f.repeated:
			buf.WriteByte('[')
			for i := 0; i < fv.Len(); i++ {
				if i > 0 {
					buf.WriteByte(',')
				}
				if err = writeValue(buf, f.kind, fv.Index(i)); err != nil {
					break
				}
			}
			buf.WriteByte(']')
		default:
			err = writeValue(buf, f.kind, fv)
		}
		if err != nil {
			return fmt.Errorf("%s.%s: %w", mi.typ.Name(), f.name, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeValue(buf *bytes.Buffer, k kind, v reflect.Value) error {
	switch k {
	case boolKind:
		buf.WriteString(strconv.FormatBool(v.Bool()))
	case int32Kind:
		buf.WriteString(strconv.FormatInt(v.Int(), 10))
	case uint32Kind:
		buf.WriteString(strconv.FormatUint(v.Uint(), 10))
	case int64Kind:
		buf.WriteByte('"')
		buf.WriteString(strconv.FormatInt(v.Int(), 10))
		buf.WriteByte('"')
	case uint64Kind:
		buf.WriteByte('"')
		buf.WriteString(strconv.FormatUint(v.Uint(), 10))
		buf.WriteByte('"')
	case floatKind, doubleKind:
		writeFloat(buf, v.Float(), k)
	case stringKind:
		writeString(buf, v.String())
	case bytesKind:
		buf.WriteByte('"')
		buf.WriteString(base64.StdEncoding.EncodeToString(v.Bytes()))
		buf.WriteByte('"')
	case enumKind:
		e := v.Interface().(Enum)
		name := e.String()
		if _, ok := e.EnumValues()[name]; ok {
			writeString(buf, name)
		} else {
			buf.WriteString(strconv.FormatInt(v.Int(), 10))
		}
	case messageKind:
		if v.IsNil() {
			buf.WriteString("{}")
			return nil
		}
		return writeMessage(buf, v.Elem())
	case protoKind:
		if v.IsNil() {
			buf.WriteString("null")
			return nil
		}
		b, err := protojson.Marshal(v.Interface().(proto.Message))
		if err != nil {
			return err
		}
		buf.Write(b)
	}
	return nil
}

func writeFloat(buf *bytes.Buffer, f float64, k kind) {
	switch {
	case math.IsNaN(f):
		buf.WriteString(`"NaN"`)
	case math.IsInf(f, 1):
		buf.WriteString(`"Infinity"`)
	case math.IsInf(f, -1):
		buf.WriteString(`"-Infinity"`)
	default:
		bits := 64
		if k == floatKind {
			bits = 32
		}
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, bits))
	}
}

func writeString(buf *bytes.Buffer, s string) {
	b, _ := json.MarshalNoEscape(s)
	buf.Write(b)
}

func writeMap(buf *bytes.Buffer, v reflect.Value) error {
	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeString(buf, k.String())
		buf.WriteByte(':')
		writeString(buf, v.MapIndex(k).String())
	}
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSON parses JSON produced by MarshalJSON (or any protojson
// encoder) into m, which is reset first. Keys may use either the JSON or the
// proto field name. Absent keys and null values leave the field at its zero
// value; unrecognized keys are ignored.
func UnmarshalJSON(b []byte, m any) error {
	if pm, ok := m.(proto.Message); ok {
		return protojson.UnmarshalOptions{DiscardUnknown: true}.Unmarshal(b, pm)
	}
	v, err := messageValue(m)
	if err != nil {
		return err
	}
	if v.IsNil() {
		return fmt.Errorf("wire: UnmarshalJSON into nil %T", m)
	}
	e := v.Elem()
	e.Set(reflect.Zero(e.Type()))
	return readMessage(b, e)
}

// UnmarshalJSONField parses b into the message-typed field named by path,
// merging with whatever the field already holds.
func UnmarshalJSONField(b []byte, m any, path string) error {
	v, err := messageValue(m)
	if err != nil {
		return err
	}
	fv, f, err := walk(v.Elem(), path, true)
	if err != nil {
		return err
	}
	if f.repeated || f.kind == mapKind {
		return fmt.Errorf("wire: field %q cannot be bound to a request body", path)
	}
	return readValue(b, f.kind, fv)
}

func readMessage(b []byte, v reflect.Value) error {
	if isNull(b) {
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("wire: %w", err)
	}
	mi := infoOf(v.Type())
	oneofs := make(map[string]string)
	for key, val := range raw {
		f := mi.byName[key]
		if f == nil || isNull(val) {
			continue
		}
		if f.oneof != "" {
			if other, ok := oneofs[f.oneof]; ok && other != f.name {
				return fmt.Errorf("wire: fields %q and %q of oneof %q are both set", other, f.name, f.oneof)
			}
			oneofs[f.oneof] = f.name
		}
		if err := readField(val, f, v.Field(f.index)); err != nil {
			return fmt.Errorf("wire: field %q: %w", key, err)
		}
	}
	return nil
}

func readField(raw []byte, f *fieldInfo, fv reflect.Value) error {
	switch {
	case f.kind == mapKind:
		var obj map[string]string
		if err := json.Unmarshal(raw, &obj); err != nil {
			return err
		}
		if fv.IsNil() {
			fv.Set(reflect.MakeMapWithSize(fv.Type(), len(obj)))
		}
		for k, s := range obj {
			fv.SetMapIndex(reflect.ValueOf(k).Convert(fv.Type().Key()), reflect.ValueOf(s).Convert(f.elem))
		}
		return nil
	case f.repeated:
		var arr []json.RawMessage
		if err := json.Unmarshal(raw, &arr); err != nil {
			return err
		}
		for _, item := range arr {
			elem := reflect.New(f.elem).Elem()
			if err := readValue(item, f.kind, elem); err != nil {
				return err
			}
			fv.Set(reflect.Append(fv, elem))
		}
		return nil
	case f.optional:
		ptr := reflect.New(f.elem)
		if err := readValue(raw, f.kind, ptr.Elem()); err != nil {
			return err
		}
		fv.Set(ptr)
		return nil
	}
	return readValue(raw, f.kind, fv)
}

func readValue(raw []byte, k kind, v reflect.Value) error {
	switch k {
	case boolKind:
		var x bool
		if err := json.Unmarshal(raw, &x); err != nil {
			return err
		}
		v.SetBool(x)
	case int32Kind, int64Kind:
		s, err := numberText(raw)
		if err != nil {
			return err
		}
		bits := 64
		if k == int32Kind {
			bits = 32
		}
		x, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return err
		}
		v.SetInt(x)
	case uint32Kind, uint64Kind:
		s, err := numberText(raw)
		if err != nil {
			return err
		}
		bits := 64
		if k == uint32Kind {
			bits = 32
		}
		x, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			return err
		}
		v.SetUint(x)
	case floatKind, doubleKind:
		s, err := numberText(raw)
		if err != nil {
			return err
		}
		var x float64
		switch s {
		case "NaN":
			x = math.NaN()
		case "Infinity":
			x = math.Inf(1)
		case "-Infinity":
			x = math.Inf(-1)
		default:
			if x, err = strconv.ParseFloat(s, 64); err != nil {
				return err
			}
		}
		v.SetFloat(x)
	case stringKind:
		var x string
		if err := json.Unmarshal(raw, &x); err != nil {
			return err
		}
		v.SetString(x)
	case bytesKind:
		var x string
		if err := json.Unmarshal(raw, &x); err != nil {
			return err
		}
		b, err := decodeBase64(x)
		if err != nil {
			return err
		}
		v.SetBytes(b)
	case enumKind:
		if len(raw) > 0 && raw[0] == '"' {
			var name string
			if err := json.Unmarshal(raw, &name); err != nil {
				return err
			}
			values := reflect.Zero(v.Type()).Interface().(Enum).EnumValues()
			x, ok := values[name]
			if !ok {
				return fmt.Errorf("invalid value %q for enum %s", name, v.Type().Name())
			}
			v.SetInt(int64(x))
			return nil
		}
		x, err := strconv.ParseInt(string(raw), 10, 32)
		if err != nil {
			return err
		}
		v.SetInt(x)
	case messageKind:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return readMessage(raw, v.Elem())
	case protoKind:
		msg := reflect.New(v.Type().Elem())
		if err := protojson.Unmarshal(raw, msg.Interface().(proto.Message)); err != nil {
			return err
		}
		v.Set(msg)
	}
	return nil
}

// numberText returns the literal of a JSON number, or the contents of a
// JSON string holding one.
func numberText(raw []byte) (string, error) {
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	return string(raw), nil
}

func decodeBase64(s string) ([]byte, error) {
	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.URLEncoding, base64.RawStdEncoding, base64.RawURLEncoding} {
		if b, err := enc.DecodeString(s); err == nil {
			return b, nil
		}
	}
	return nil, fmt.Errorf("invalid base64 value")
}

func isNull(b []byte) bool {
	return len(bytes.TrimSpace(b)) == 0 || string(bytes.TrimSpace(b)) == "null"
}
