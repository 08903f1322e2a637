package argdef

import (
	"encoding"
	"reflect"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Types an argument's value can be parsed as. Named types are parsed by their
// underlying kind, unless they implement encoding.TextUnmarshaler through a
// pointer, or have a parse function registered, as time.Duration does.
type Primitive interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Returns the argument's value parsed as T, or _default if it's an optional
// value argument that wasn't given.
func ParseAs[T Primitive](p *Parser, name string, _default T) (ret T, err error) {
	d, v, err := p.lookup(name)
	if err != nil {
		return
	}
	if !v.present {
		return _default, nil
	}
	rv := reflect.ValueOf(&ret).Elem()
	if perr := parseValue(rv, v.literal); perr != nil {
		var zero T
		return zero, typeParseError(d, v.literal, rv.Type(), perr)
	}
	return
}

func typeParseError(d Definition, literal string, t reflect.Type, err error) TypeParseError {
	return TypeParseError{
		Name:  d.Name,
		Usage: d.Usage,
		Value: literal,
		Type:  t,
		Err:   errors.WithStack(err),
	}
}

var typeParseFuncs = map[reflect.Type]func(settee reflect.Value, s string) error{}

// Registers f, a func(string) T or func(string) (T, error), for values of T.
func addParseFunc(f interface{}) {
	v := reflect.ValueOf(f)
	t := v.Type()
	typeParseFuncs[t.Out(0)] = func(settee reflect.Value, s string) error {
		out := v.Call([]reflect.Value{reflect.ValueOf(s)})
		if len(out) > 1 {
			if i := out[1].Interface(); i != nil {
				return i.(error)
			}
		}
		settee.Set(out[0])
		return nil
	}
}

func init() {
	addParseFunc(time.ParseDuration)
}

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

func canParse(t reflect.Type) bool {
	if _, ok := typeParseFuncs[t]; ok {
		return true
	}
	if reflect.PtrTo(t).Implements(textUnmarshalerType) {
		return true
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Sets v, which must be addressable, from s.
func parseValue(v reflect.Value, s string) error {
	if f, ok := typeParseFuncs[v.Type()]; ok {
		return f(v, s)
	}
	if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return errors.Errorf("can't parse type %s", v.Type())
	}
	return nil
}
