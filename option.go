package argparser

import (
	"strings"

	"github.com/mohae/deepcopy"
)

// ValueType is the kind of value an Option holds.  It is fixed when
// the option is declared.
type ValueType int

const (
	Integer ValueType = iota + 1
	String
	Flag
)

func (vt ValueType) String() string {
	switch vt {
	case Integer:
		return "int"
	case String:
		return "string"
	case Flag:
		return "flag"
	}
	return "undefined"
}

// NoShortName is used when an option can only be given in long form.
const NoShortName rune = 0

// Option is one declared argument.  Options are created by the Add*
// methods of Parser and configured with the builder methods below.
// Builder methods never return errors directly: the first problem is
// remembered and reported by Err() and by Parser.Parse().
type Option struct {
	valueType   ValueType
	shortName   rune
	longName    string
	description string
	values      []string
	defaults    []string
	hasDefault  bool
	fromDefault bool // values hold only the defaults
	multiValue  bool
	minCount    int
	positional  bool
	sink        Sink
	validateTag string
	delayedErr  error
}

func (o *Option) fail(err error) *Option {
	if o.delayedErr == nil {
		o.delayedErr = err
	}
	return o
}

// Err returns the first error encountered while declaring and
// configuring this option.
func (o *Option) Err() error { return o.delayedErr }

func (o *Option) Type() ValueType     { return o.valueType }
func (o *Option) ShortName() rune     { return o.shortName }
func (o *Option) LongName() string    { return o.longName }
func (o *Option) Description() string { return o.description }
func (o *Option) IsMultiValue() bool  { return o.multiValue }
func (o *Option) IsPositional() bool  { return o.positional }

// Len is the number of values currently collected, including defaults
// that have not been overridden.
func (o *Option) Len() int { return len(o.values) }

// Values returns a copy of the raw collected values
func (o *Option) Values() []string {
	return append([]string(nil), o.values...)
}

// Default pre-seeds the option's values.  The type of value must match
// the option: int, int32, int64, or []int for Integer; string or []string for
// String; bool for Flag.  Flags are stored as "0" or "1".
//
// The defaults are used only when nothing is given for the option on the
// command line: the first occurrence replaces them.
func (o *Option) Default(value interface{}) *Option {
	var vt ValueType
	var texts []string
	switch d := value.(type) {
	case int:
		vt, texts = Integer, []string{encodeInt(d)}
	case int32:
		vt, texts = Integer, []string{encodeInt(int(d))}
	case int64:
		vt, texts = Integer, []string{encodeInt(int(d))}
	case []int:
		vt = Integer
		for _, i := range d {
			texts = append(texts, encodeInt(i))
		}
	case string:
		vt, texts = String, []string{d}
	case []string:
		vt, texts = String, append([]string(nil), d...)
	case bool:
		vt, texts = Flag, []string{encodeFlag(d)}
	default:
		return o.fail(programmerError(ErrTypeMismatch,
			"default for --%s must be a %s value, not %T", o.longName, o.valueType, value))
	}
	if vt != o.valueType {
		return o.fail(programmerError(ErrTypeMismatch,
			"default for --%s must be a %s value, not %T", o.longName, o.valueType, value))
	}
	o.setDefaults(texts)
	return o
}

func (o *Option) setDefaults(texts []string) {
	o.defaults = texts
	o.hasDefault = true
	o.reset()
}

// MultiValue allows the option to be given more than once.  The
// option is satisfied only when it has strictly more than minCount values.
func (o *Option) MultiValue(minCount int) *Option {
	if minCount < 0 {
		return o.fail(programmerError(ErrOutOfRange,
			"minimum count for --%s cannot be negative (%d)", o.longName, minCount))
	}
	o.multiValue = true
	o.minCount = minCount
	if o.sink != nil && !o.sink.sinkKind().isSequence() {
		return o.fail(programmerError(ErrTypeMismatch,
			"--%s is bound to a %s and cannot become multi-valued", o.longName, o.sink.sinkKind()))
	}
	return o
}

// Positional lets the option absorb command line arguments that are
// not options.  If more than one option is positional, the last one
// declared gets the arguments.
func (o *Option) Positional() *Option {
	o.positional = true
	return o
}

// Validate attaches a github.com/go-playground/validator tag that each
// converted value must pass.  A failure makes Parse return Invalid.
func (o *Option) Validate(tag string) *Option {
	o.validateTag = tag
	return o
}

// Bind attaches storage that will receive the option's final value(s)
// when Parse succeeds.  Multi-valued options need a sequence sink
// (IntsVar, StringsVar), others need a scalar sink.
func (o *Option) Bind(sink Sink) *Option {
	if sink == nil {
		return o.fail(programmerError(ErrTypeMismatch, "nil sink for --%s", o.longName))
	}
	kind := sink.sinkKind()
	if kind.valueType() != o.valueType {
		return o.fail(programmerError(ErrTypeMismatch,
			"cannot store %s option --%s into a %s", o.valueType, o.longName, kind))
	}
	if kind.isSequence() != o.multiValue {
		if o.multiValue {
			return o.fail(programmerError(ErrTypeMismatch,
				"multi-valued option --%s needs a sequence, not a %s", o.longName, kind))
		}
		return o.fail(programmerError(ErrTypeMismatch,
			"single-valued option --%s cannot be stored into a %s", o.longName, kind))
	}
	o.sink = sink
	return o
}

// StoreValue is Bind for plain pointers: *int, *string, *bool, *[]int, or *[]string.
func (o *Option) StoreValue(ptr interface{}) *Option {
	sink, err := sinkFor(ptr)
	if err != nil {
		return o.fail(programmerError(ErrTypeMismatch, "--%s: %s", o.longName, err))
	}
	return o.Bind(sink)
}

func (o *Option) addValue(text string) {
	// a flag holds exactly one value, overwritten in place
	if o.valueType == Flag && len(o.values) == 1 {
		o.values[0] = text
		o.fromDefault = false
		return
	}
	if o.fromDefault {
		o.values = nil
		o.fromDefault = false
	}
	o.values = append(o.values, text)
}

// Satisfied reports if enough values were collected.  Note that the
// comparison is strict: an option with a minimum count of zero needs one
// value.
func (o *Option) Satisfied() bool {
	return len(o.values) > o.minCount
}

func (o *Option) checkIndex(want ValueType, index int) error {
	if o.valueType != want {
		return programmerError(ErrTypeMismatch, "--%s is a %s option, not %s", o.longName, o.valueType, want)
	}
	if index < 0 || index >= len(o.values) {
		return programmerError(ErrOutOfRange, "--%s has %d value(s), no value at index %d", o.longName, len(o.values), index)
	}
	return nil
}

// StringValue returns the value at index of a String option
func (o *Option) StringValue(index int) (string, error) {
	if err := o.checkIndex(String, index); err != nil {
		return "", err
	}
	return o.values[index], nil
}

// IntValue converts the value at index of an Integer option
func (o *Option) IntValue(index int) (int, error) {
	if err := o.checkIndex(Integer, index); err != nil {
		return 0, err
	}
	i, err := decodeInt(o.values[index])
	if err != nil {
		return 0, o.conversionError(o.values[index], err)
	}
	return i, nil
}

// FlagValue converts the value of a Flag option
func (o *Option) FlagValue() (bool, error) {
	if err := o.checkIndex(Flag, 0); err != nil {
		return false, err
	}
	b, err := decodeFlag(o.values[0])
	if err != nil {
		return false, o.conversionError(o.values[0], err)
	}
	return b, nil
}

func (o *Option) conversionError(text string, err error) error {
	return usageError(ErrTypeMismatch, "--%s: %q is not a valid %s value: %s", o.longName, text, o.valueType, err)
}

// typedValues converts all the values so they can be handed to
// a validator
func (o *Option) typedValues() ([]interface{}, error) {
	typed := make([]interface{}, len(o.values))
	for i, text := range o.values {
		switch o.valueType {
		case Integer:
			v, err := decodeInt(text)
			if err != nil {
				return nil, o.conversionError(text, err)
			}
			typed[i] = v
		case Flag:
			v, err := decodeFlag(text)
			if err != nil {
				return nil, o.conversionError(text, err)
			}
			typed[i] = v
		default:
			typed[i] = text
		}
	}
	return typed, nil
}

// absorbPositionals replaces the collected values with the positional
// arguments.  An empty list leaves the values alone so that defaults
// survive.
func (o *Option) absorbPositionals(tokens []string) error {
	if !o.positional {
		return nil
	}
	if o.valueType == Flag {
		return programmerError(ErrUnsupportedOperation, "flag --%s cannot take positional arguments", o.longName)
	}
	if len(tokens) == 0 {
		return nil
	}
	o.values = append([]string(nil), tokens...)
	o.fromDefault = false
	return nil
}

// commit writes into the bound sink, if any.  Values must already
// have been checked with typedValues.
func (o *Option) commit() error {
	if o.sink == nil {
		return nil
	}
	if o.valueType == Flag && o.multiValue {
		return libraryError("flag --%s cannot have multiple values", o.longName)
	}
	if len(o.values) == 0 {
		return libraryError("committing --%s without any values", o.longName)
	}
	switch s := o.sink.(type) {
	case intVar:
		i, err := decodeInt(o.values[0])
		if err != nil {
			return o.conversionError(o.values[0], err)
		}
		*s.p = i
	case stringVar:
		*s.p = o.values[0]
	case flagVar:
		b, err := decodeFlag(o.values[0])
		if err != nil {
			return o.conversionError(o.values[0], err)
		}
		*s.p = b
	case intsVar:
		ints := make([]int, len(o.values))
		for i, text := range o.values {
			v, err := decodeInt(text)
			if err != nil {
				return o.conversionError(text, err)
			}
			ints[i] = v
		}
		*s.p = ints
	case stringsVar:
		*s.p = append([]string(nil), o.values...)
	default:
		return libraryError("--%s has an unknown sink %T", o.longName, o.sink)
	}
	return nil
}

// reset restores the option to its declared state
func (o *Option) reset() {
	if o.hasDefault {
		o.values = deepcopy.Copy(o.defaults).([]string)
		o.fromDefault = true
	} else {
		o.values = nil
		o.fromDefault = false
	}
}

func (o *Option) defaultText() string {
	return strings.Join(o.defaults, ",")
}
