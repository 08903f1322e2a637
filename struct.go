package argdef

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/bradfitz/iter"
	"github.com/huandu/xstrings"
	"golang.org/x/xerrors"
)

// Derives definitions from the exported fields of the struct cmd points to.
// Bool fields are flags. Fields of struct type that can't be parsed are
// walked for more fields.
func StructDefinitions(cmd interface{}) (defs []Definition, err error) {
	st, err := structValue(cmd)
	if err != nil {
		return
	}
	err = foreachArgField(st, func(fv reflect.Value, sf reflect.StructField) error {
		d, err := fieldDefinition(fv, sf)
		if err != nil {
			return xerrors.Errorf("field %s: %w", sf.Name, err)
		}
		defs = append(defs, d)
		return nil
	})
	return
}

// Sets the fields of the struct cmd points to from the resolved values, using
// the same names as StructDefinitions. Fields of optional value arguments that
// weren't given are left as they are.
func (p *Parser) Fill(cmd interface{}) error {
	st, err := structValue(cmd)
	if err != nil {
		return err
	}
	return foreachArgField(st, func(fv reflect.Value, sf reflect.StructField) error {
		d, v, err := p.lookup(structFieldName(sf))
		if err != nil {
			return err
		}
		if !v.present {
			return nil
		}
		if err := parseValue(fv, v.literal); err != nil {
			return typeParseError(d, v.literal, fv.Type(), err)
		}
		return nil
	})
}

func structValue(cmd interface{}) (st reflect.Value, err error) {
	v := reflect.ValueOf(cmd)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		err = xerrors.Errorf("expected pointer to struct, got %T", cmd)
		return
	}
	st = v.Elem()
	return
}

func fieldDefinition(fv reflect.Value, sf reflect.StructField) (d Definition, err error) {
	d = Definition{
		Name:        structFieldName(sf),
		Description: sf.Tag.Get("help"),
		Usage:       sf.Tag.Get("usage"),
		Flag:        fv.Kind() == reflect.Bool,
	}
	if s := sf.Tag.Get("required"); s != "" {
		d.Required, err = strconv.ParseBool(s)
		if err != nil {
			err = xerrors.Errorf("parsing required tag: %w", err)
			return
		}
	}
	if d.Usage == "" {
		d.Usage = flagPrefix + d.Name
		if !d.Flag {
			d.Usage += " " + strings.ToUpper(xstrings.ToSnakeCase(sf.Name))
		}
	}
	return
}

func foreachArgField(st reflect.Value, f func(fv reflect.Value, sf reflect.StructField) error) error {
	t := st.Type()
	for i := range iter.N(t.NumField()) {
		sf := t.Field(i)
		fv := st.Field(i)
		if sf.PkgPath != "" || sf.Tag.Get("name") == "-" {
			continue
		}
		if !canParse(fv.Type()) {
			if fv.Kind() == reflect.Struct {
				if err := foreachArgField(fv, f); err != nil {
					return err
				}
				continue
			}
			return xerrors.Errorf("field %s.%s has bad type: %v", t, sf.Name, fv.Type())
		}
		if err := f(fv, sf); err != nil {
			return err
		}
	}
	return nil
}

func structFieldName(sf reflect.StructField) string {
	name := sf.Tag.Get("name")
	if name != "" {
		return name
	}
	return fieldFlagName(sf.Name)
}

var (
	// TCP
	allUpperRegexp = regexp.MustCompile("^[[:upper:]]{2,}$")
	// TCPAddr
	leadingAcronymRegexp = regexp.MustCompile("^([[:upper:]]+)([[:upper:]][^[:upper:]].*?)$")
)

// Turn a struct field name into an argument name. In particular this lower
// cases leading acronyms, and the first capital letter.
func fieldFlagName(fieldName string) string {
	if allUpperRegexp.MatchString(fieldName) {
		return strings.ToLower(fieldName)
	}
	if ss := leadingAcronymRegexp.FindStringSubmatch(fieldName); ss != nil {
		return strings.ToLower(ss[1]) + ss[2]
	}
	// Addr
	return xstrings.FirstRuneToLower(fieldName)
}
