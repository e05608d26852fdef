package filter

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/common/types/traits"
)

var (
	objectType = types.NewObjectType("dbconsole.filter.Object")
	absentType = types.NewObjectType("dbconsole.filter.Unset", traits.ComparerType)
	timeType   = types.NewObjectType("dbconsole.filter.Time", traits.ComparerType)

	errNoConversion = errors.New("filter: value has no native form")
)

func stringVal(s string) ref.Val { return types.String(s) }

// value lifts a decoded JSON value into CEL.
func value(v any) ref.Val {
	switch x := v.(type) {
	case nil:
		return absent{}
	case string:
		if t, err := time.Parse(time.RFC3339Nano, x); err == nil {
			return timeVal{t: t, s: x}
		}
		return types.String(x)
	case float64:
		return types.Double(x)
	case bool:
		return types.Bool(x)
	case []any:
		elems := make([]ref.Val, len(x))
		for i, el := range x {
			elems[i] = value(el)
		}
		return types.NewRefValList(types.DefaultTypeAdapter, elems)
	case map[string]any:
		return object(x)
	}
	return types.NewErr("filter: unsupported value %T", v)
}

// object is a JSON object whose keys resolve in proto or JSON spelling.
// Missing keys read as unset.
type object map[string]any

func (o object) find(key string) (any, bool) {
	if v, ok := o[key]; ok {
		return v, true
	}
	v, ok := o[camel(key)]
	return v, ok
}

func (o object) Get(index ref.Val) ref.Val {
	key, ok := index.(types.String)
	if !ok {
		return types.MaybeNoSuchOverloadErr(index)
	}
	v, _ := o.find(string(key))
	return value(v)
}

func (o object) IsSet(field ref.Val) ref.Val {
	key, ok := field.(types.String)
	if !ok {
		return types.MaybeNoSuchOverloadErr(field)
	}
	v, found := o.find(string(key))
	return types.Bool(found && v != nil)
}

func (o object) ConvertToNative(typeDesc reflect.Type) (any, error) {
	if typeDesc.Kind() == reflect.Map || typeDesc.Kind() == reflect.Interface {
		return map[string]any(o), nil
	}
	return nil, errNoConversion
}

func (o object) ConvertToType(t ref.Type) ref.Val {
	if t == types.TypeType {
		return objectType
	}
	return types.NewErr("filter: cannot convert object to %s", t.TypeName())
}

func (o object) Equal(other ref.Val) ref.Val {
	if _, ok := other.(absent); ok {
		return types.Bool(len(o) == 0)
	}
	ov, ok := other.(object)
	return types.Bool(ok && reflect.DeepEqual(map[string]any(o), map[string]any(ov)))
}

func (o object) Type() ref.Type { return objectType }
func (o object) Value() any     { return map[string]any(o) }

// absent stands in for unset fields. It equals any zero value and orders
// as the zero value of whatever it is compared with.
type absent struct{}

func (absent) Get(ref.Val) ref.Val   { return absent{} }
func (absent) IsSet(ref.Val) ref.Val { return types.False }
func (absent) IsZeroValue() bool     { return true }

func (absent) Compare(other ref.Val) ref.Val {
	var zero ref.Val
	switch other.(type) {
	case absent:
		return types.IntZero
	case types.String:
		zero = types.String("")
	case types.Double:
		zero = types.Double(0)
	case types.Int:
		zero = types.Int(0)
	case types.Uint:
		zero = types.Uint(0)
	case types.Bool:
		zero = types.False
	case timeVal:
		zero = timeVal{}
	default:
		return types.MaybeNoSuchOverloadErr(other)
	}
	return zero.(traits.Comparer).Compare(other)
}

func (absent) Equal(other ref.Val) ref.Val {
	if z, ok := other.(traits.Zeroer); ok {
		return types.Bool(z.IsZeroValue())
	}
	return types.False
}

func (absent) ConvertToNative(reflect.Type) (any, error) { return nil, errNoConversion }

func (absent) ConvertToType(t ref.Type) ref.Val {
	if t == types.TypeType {
		return absentType
	}
	return types.NewErr("filter: cannot convert unset value to %s", t.TypeName())
}

func (absent) Type() ref.Type { return absentType }
func (absent) Value() any     { return nil }

// timeVal is an RFC 3339 string that orders chronologically against other
// times and against string literals that parse as times.
type timeVal struct {
	t time.Time
	s string
}

func (v timeVal) IsZeroValue() bool { return v.t.IsZero() }

func (v timeVal) other(o ref.Val) (time.Time, bool) {
	switch x := o.(type) {
	case timeVal:
		return x.t, true
	case absent:
		return time.Time{}, true
	case types.String:
		t, err := time.Parse(time.RFC3339Nano, string(x))
		return t, err == nil
	}
	return time.Time{}, false
}

func (v timeVal) Compare(o ref.Val) ref.Val {
	if t, ok := v.other(o); ok {
		return types.Int(v.t.Compare(t))
	}
	if s, ok := o.(types.String); ok {
		return types.Int(strings.Compare(v.s, string(s)))
	}
	return types.MaybeNoSuchOverloadErr(o)
}

func (v timeVal) Equal(o ref.Val) ref.Val {
	if t, ok := v.other(o); ok {
		return types.Bool(v.t.Equal(t))
	}
	if s, ok := o.(types.String); ok {
		return types.Bool(v.s == string(s))
	}
	return types.False
}

func (v timeVal) ConvertToNative(typeDesc reflect.Type) (any, error) {
	switch typeDesc {
	case reflect.TypeFor[time.Time]():
		return v.t, nil
	case reflect.TypeFor[string]():
		return v.s, nil
	}
	return nil, errNoConversion
}

func (v timeVal) ConvertToType(t ref.Type) ref.Val {
	switch t {
	case types.TypeType:
		return timeType
	case types.StringType:
		return types.String(v.s)
	case types.TimestampType:
		return types.Timestamp{Time: v.t}
	}
	return types.NewErr("filter: cannot convert time to %s", t.TypeName())
}

func (v timeVal) Type() ref.Type { return timeType }
func (v timeVal) Value() any     { return v.t }

func camel(s string) string {
	parts := strings.Split(s, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
