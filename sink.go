package argparser

import (
	"github.com/pkg/errors"
)

// Sink is caller-owned storage that receives an option's final
// value(s) when Parse succeeds.  Sinks are written exactly once per
// successful Parse and never on failure.
//
// The set of sinks is closed: use IntVar, StringVar, FlagVar, IntsVar,
// or StringsVar.
type Sink interface {
	sinkKind() sinkKind
}

type sinkKind int

const (
	intScalar sinkKind = iota + 1
	stringScalar
	flagScalar
	intSequence
	stringSequence
)

type intVar struct{ p *int }
type stringVar struct{ p *string }
type flagVar struct{ p *bool }
type intsVar struct{ p *[]int }
type stringsVar struct{ p *[]string }

func (intVar) sinkKind() sinkKind     { return intScalar }
func (stringVar) sinkKind() sinkKind  { return stringScalar }
func (flagVar) sinkKind() sinkKind    { return flagScalar }
func (intsVar) sinkKind() sinkKind    { return intSequence }
func (stringsVar) sinkKind() sinkKind { return stringSequence }

// IntVar binds a scalar Integer option.
func IntVar(p *int) Sink { return intVar{p: p} }

// StringVar binds a scalar String option.
func StringVar(p *string) Sink { return stringVar{p: p} }

// FlagVar binds a Flag option.
func FlagVar(p *bool) Sink { return flagVar{p: p} }

// IntsVar binds a multi-value Integer option.  The slice is replaced, not
// appended to.
func IntsVar(p *[]int) Sink { return intsVar{p: p} }

// StringsVar binds a multi-value String option.
func StringsVar(p *[]string) Sink { return stringsVar{p: p} }

// sinkFor converts a plain pointer into a Sink
func sinkFor(ptr interface{}) (Sink, error) {
	switch p := ptr.(type) {
	case *int:
		return IntVar(p), nil
	case *string:
		return StringVar(p), nil
	case *bool:
		return FlagVar(p), nil
	case *[]int:
		return IntsVar(p), nil
	case *[]string:
		return StringsVar(p), nil
	default:
		return nil, errors.Errorf("cannot store into %T, supported are *int, *string, *bool, *[]int, *[]string", ptr)
	}
}

func (k sinkKind) valueType() ValueType {
	switch k {
	case intScalar, intSequence:
		return Integer
	case stringScalar, stringSequence:
		return String
	case flagScalar:
		return Flag
	}
	return 0
}

func (k sinkKind) isSequence() bool {
	return k == intSequence || k == stringSequence
}

func (k sinkKind) String() string {
	switch k {
	case intScalar:
		return "int variable"
	case stringScalar:
		return "string variable"
	case flagScalar:
		return "bool variable"
	case intSequence:
		return "[]int variable"
	case stringSequence:
		return "[]string variable"
	}
	return "unknown sink"
}
