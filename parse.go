package argparser

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// presentValue is the value an option gets when it is given
// without "=value"
const presentValue = "1"

// Parse processes a command line.  The first element is the program
// name and is skipped.
//
//	prog -ab --name=value -n=3 positional1 positional2
//
// Long options are given as --name or --name=value.  Short options are
// given as -x or -x=value and can be combined: -xyz=value gives value
// to each of x, y, and z.  An option without a value gets "1", which is
// how flags get set.  Everything that does not start with "-" is positional.
//
// Parse returns an error for problems with the declarations and for
// command lines that cannot be understood (use IsUsageError to tell them
// apart).  Not having enough values is not an error: the result is
// Invalid and Failures() explains.  Bound storage is written only when
// the result is Success.  Flags imported with ImportFlagSet are set just
// before bound storage is written; when one of them rejects its value,
// the imported flags before it have already been set.
func (p *Parser) Parse(args []string) (Result, error) {
	if err := p.Err(); err != nil {
		return Invalid, err
	}
	if len(args) == 0 {
		return Invalid, usageError(ErrEmptyInput, "no arguments provided, expected at least the program name")
	}
	p.debugf("beginning parse of %d arguments", len(args)-1)
	if p.parsed {
		p.debug("clearing values from previous parse")
		p.reset()
	}
	p.parsed = true

	if p.helpRequested(args[1:]) {
		p.debug("help requested")
		return Help, nil
	}

	for i, arg := range args[1:] {
		err := p.parseToken(arg)
		if err != nil {
			p.debugf("at %d, failed on %s", i+1, arg)
			return Invalid, err
		}
	}

	for _, o := range p.options {
		err := o.absorbPositionals(p.positionals)
		if err != nil {
			return Invalid, err
		}
	}

	if !p.checkCounts() {
		return Invalid, nil
	}
	ok, err := p.checkValues()
	if err != nil {
		return Invalid, err
	}
	if !ok {
		return Invalid, nil
	}

	err = p.importFlags()
	if err != nil {
		return Invalid, err
	}
	for _, o := range p.options {
		err := o.commit()
		if err != nil {
			return Invalid, err
		}
	}
	if debugging {
		for _, o := range p.options {
			p.debugf("--%s = %v", o.longName, o.Values())
		}
	}
	p.debug("parse succeeded, storage written")

	if p.onSuccess != nil {
		err := p.onSuccess(p, p.Positionals())
		if err != nil {
			return Invalid, errors.Wrap(err, "on success")
		}
	}
	return Success, nil
}

// helpRequested looks for the help switch anywhere in the arguments.
// It wins over everything else, including arguments that would
// otherwise be errors.
func (p *Parser) helpRequested(args []string) bool {
	if !p.hasHelp() {
		return false
	}
	for _, arg := range args {
		if len(arg) < 2 || arg[0] != '-' {
			continue
		}
		name, _, _ := strings.Cut(arg, "=")
		if strings.HasPrefix(name, "--") {
			if p.helpLong != "" && name[2:] == p.helpLong {
				return true
			}
			continue
		}
		if p.helpShort != NoShortName && strings.ContainsRune(name[1:], p.helpShort) {
			return true
		}
	}
	return false
}

func (p *Parser) parseToken(arg string) error {
	if !strings.HasPrefix(arg, "-") {
		p.debugf("positional %s", arg)
		p.positionals = append(p.positionals, arg)
		return nil
	}
	if len(arg) < 2 {
		return usageError(ErrMalformedToken, "%q is not a valid argument", arg)
	}
	name, value, hasValue := strings.Cut(arg, "=")
	if hasValue && value == "" {
		return usageError(ErrMalformedToken, "%q is missing a value after '='", arg)
	}
	if !hasValue {
		value = presentValue
	}

	if arg[1] == '-' {
		long := name[2:]
		if long == "" {
			return usageError(ErrMalformedToken, "%q is missing an option name", arg)
		}
		i, ok := p.longIndex[long]
		if !ok {
			return usageError(ErrUnknownOption, "option --%s not defined", long)
		}
		p.debugf("long option --%s = %s", long, value)
		p.options[i].addValue(value)
		return nil
	}

	shorts := name[1:]
	if shorts == "" {
		return usageError(ErrMalformedToken, "%q is missing an option name", arg)
	}
	for len(shorts) > 0 {
		r, size := utf8.DecodeRuneInString(shorts)
		i, ok := p.shortIndex[r]
		if !ok {
			return usageError(ErrUnknownOption, "option -%c (in %s) not defined", r, arg)
		}
		p.debugf("short option -%c = %s", r, value)
		p.options[i].addValue(value)
		shorts = shorts[size:]
	}
	return nil
}

// checkCounts verifies that every option has enough values
func (p *Parser) checkCounts() bool {
	ok := true
	for _, o := range p.options {
		if o.Satisfied() {
			continue
		}
		ok = false
		if o.multiValue {
			p.addFailure(errors.Errorf("--%s needs more than %d value(s), got %d", o.longName, o.minCount, len(o.values)))
		} else {
			p.addFailure(errors.Errorf("--%s is required", o.longName))
		}
	}
	return ok
}

// checkValues converts every value and applies validation tags.  Values
// that cannot be converted are errors; values that fail validation make
// the parse Invalid.
func (p *Parser) checkValues() (bool, error) {
	ok := true
	for _, o := range p.options {
		typed, err := o.typedValues()
		if err != nil {
			return false, err
		}
		if o.validateTag == "" {
			continue
		}
		if p.validator == nil {
			p.validator = validator.New()
		}
		for i, v := range typed {
			err := p.validator.Var(v, o.validateTag)
			if err != nil {
				ok = false
				p.addFailure(errors.Wrapf(err, "--%s value %q", o.longName, o.values[i]))
			}
		}
	}
	return ok, nil
}
