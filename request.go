package argparser

import (
	"reflect"
	"unicode/utf8"

	"github.com/AlekSi/pointer"
	"github.com/muir/reflectutils"
)

// argTag is the content of an "arg" struct tag:
//
//	arg:"name n,min=1,positional"
type argTag struct {
	Name       []string `pt:"0,split=space"`
	Min        *int     `pt:"min"`
	Positional bool     `pt:"positional"`
}

// Request declares options from the struct tags of model, which must be a
// non-nil pointer to a struct.  Each field with an "arg" tag becomes an
// option bound to that field.
//
//	type Options struct {
//		Numbers []int  `arg:"numbers N,min=1,positional" help:"numbers to add up"`
//		Sum     bool   `arg:"sum s" help:"add args"`
//		Name    string `arg:"name" default:"total" validate:"alpha"`
//	}
//
// Field types map to options: int and []int are Integer, string and []string
// are String, bool is Flag.  Slices are multi-valued and may set min.
// Names of one character are short names, longer names are long names; a
// long name is required.  The "help" tag provides the description, the
// "default" tag a default, and the "validate" tag a validation (see
// Option.Validate).
func (p *Parser) Request(model interface{}) error {
	v := reflect.ValueOf(model)
	if !v.IsValid() || v.Type().Kind() != reflect.Ptr || v.IsNil() || v.Type().Elem().Kind() != reflect.Struct {
		return programmerError(ErrTypeMismatch, "Request needs a non-nil pointer to a struct, not %T", model)
	}
	var walkErr error
	reflectutils.WalkStructElements(v.Type().Elem(), func(f reflect.StructField) bool {
		if walkErr != nil {
			return false
		}
		tags := reflectutils.SplitTag(f.Tag).Set()
		tag := tags.Get("arg")
		if tag.Tag == "" {
			return true
		}
		if !f.IsExported() {
			walkErr = programmerError(ErrUnsupportedOperation, "field %s is not exported and cannot be an option", f.Name)
			return false
		}
		var at argTag
		err := tag.Fill(&at)
		if err != nil {
			walkErr = programmerError(ErrTypeMismatch, "arg tag on field %s: %s", f.Name, err)
			return false
		}
		walkErr = p.requestField(f, v.Elem().FieldByIndex(f.Index), at, tags)
		return false
	})
	return walkErr
}

func (p *Parser) requestField(f reflect.StructField, field reflect.Value, at argTag, tags reflectutils.TagSet) error {
	short := NoShortName
	var long string
	for _, n := range at.Name {
		switch utf8.RuneCountInString(n) {
		case 0:
			continue
		case 1:
			if short != NoShortName {
				return programmerError(ErrNameCollision, "field %s has more than one short name", f.Name)
			}
			short, _ = utf8.DecodeRuneInString(n)
		default:
			if long != "" {
				return programmerError(ErrNameCollision, "field %s has more than one long name", f.Name)
			}
			long = n
		}
	}
	if long == "" {
		return programmerError(ErrUnsupportedOperation, "field %s needs a long name in its arg tag", f.Name)
	}

	ptr := field.Addr().Interface()
	var vt ValueType
	var multi bool
	switch ptr.(type) {
	case *int:
		vt = Integer
	case *[]int:
		vt, multi = Integer, true
	case *string:
		vt = String
	case *[]string:
		vt, multi = String, true
	case *bool:
		vt = Flag
	default:
		return programmerError(ErrTypeMismatch, "field %s has type %s which cannot be an option", f.Name, f.Type)
	}
	if at.Min != nil && !multi {
		return programmerError(ErrTypeMismatch, "min=%d on field %s requires a slice type", *at.Min, f.Name)
	}

	o := p.declare(vt, short, long, tags.Get("help").Value)
	if multi {
		o.MultiValue(pointer.GetInt(at.Min))
	}
	if d := tags.Get("default"); d.Tag != "" {
		err := checkText(vt, d.Value)
		if err != nil {
			return programmerError(ErrTypeMismatch, "default %q for field %s is not a valid %s: %s", d.Value, f.Name, vt, err)
		}
		if vt == Flag {
			b, _ := decodeFlag(d.Value)
			o.setDefaults([]string{encodeFlag(b)})
		} else {
			o.setDefaults([]string{d.Value})
		}
	}
	if at.Positional {
		o.Positional()
	}
	if vtag := tags.Get("validate"); vtag.Tag != "" {
		o.Validate(vtag.Value)
	}
	o.StoreValue(ptr)
	return o.Err()
}
