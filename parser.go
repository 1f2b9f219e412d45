package argparser

import (
	"github.com/muir/nject"
)

// Result is the outcome of a Parse that did not return an error
type Result int

const (
	// Invalid means that some option did not get enough values or
	// failed validation.  Failures() says why.  Nothing was stored.
	Invalid Result = iota
	// Help means the help switch was given.  Nothing was stored.
	Help
	// Success means all options validated and bound storage was written.
	Success
)

func (r Result) String() string {
	switch r {
	case Invalid:
		return "invalid"
	case Help:
		return "help"
	case Success:
		return "success"
	}
	return "undefined"
}

// Validate is the subset of the Validate provided by
// https://github.com/go-playground/validator that is used to check
// option values, allowing other implementations to be provided if desired
type Validate interface {
	Var(field interface{}, tag string) error
}

// Parser holds a set of declared options and parses command lines
// against them.  A Parser is not safe for concurrent use.  Parse may be
// called more than once: each call starts over from the declared defaults.
type Parser struct {
	name        string
	description string
	options     []*Option
	shortIndex  map[rune]int
	longIndex   map[string]int
	positionals []string
	helpShort   rune
	helpLong    string
	validator   Validate
	onSuccess   func(*Parser, []string) error
	imported    []importedFlag
	failures    []error
	delayedErr  error
	parsed      bool
}

// ParserOpt are functional arguments for NewParser
type ParserOpt func(*Parser) error

// NewParser creates a parser.  The name is shown at the top of the usage text.
func NewParser(name string, opts ...ParserOpt) *Parser {
	p := &Parser{
		name:       name,
		shortIndex: make(map[rune]int),
		longIndex:  make(map[string]int),
	}
	for _, f := range opts {
		if err := f(p); err != nil {
			p.fail(err)
		}
	}
	return p
}

// WithDescription sets the program description shown in the usage text
func WithDescription(description string) ParserOpt {
	return func(p *Parser) error {
		p.description = description
		return nil
	}
}

// WithHelp reserves a help switch.  Use NoShortName for long-form only
// or "" for short-form only.
func WithHelp(short rune, long string) ParserOpt {
	return func(p *Parser) error {
		return p.AddHelp(short, long, p.description)
	}
}

// WithValidate overrides the validator used for Option.Validate tags.  By
// default, validator.New() is used.
func WithValidate(v Validate) ParserOpt {
	return func(p *Parser) error {
		p.validator = v
		return nil
	}
}

// OnSuccess is called after a successful Parse has written all bound
// storage.  The chain is an nject chain: the final function can take
// *Parser and []string (the positional arguments) and may return error.
func OnSuccess(chain ...interface{}) ParserOpt {
	return func(p *Parser) error {
		return nject.Sequence("default-error-responder",
			nject.Provide("default-error", func() nject.TerminalError {
				return nil
			})).Append("on-success", chain...).Bind(&p.onSuccess, nil)
	}
}

func (p *Parser) fail(err error) {
	if p.delayedErr == nil {
		p.delayedErr = err
	}
}

// Err returns the first error encountered while declaring and
// configuring options.  Parse returns the same error.
func (p *Parser) Err() error {
	if p.delayedErr != nil {
		return p.delayedErr
	}
	for _, o := range p.options {
		if o.delayedErr != nil {
			return o.delayedErr
		}
	}
	return nil
}

func (p *Parser) Name() string { return p.name }

// AddHelp reserves a help switch and sets the program description.
// Giving the switch anywhere on the command line makes Parse return Help.
// Either name may be left out (NoShortName or ""), but not both.
func (p *Parser) AddHelp(short rune, long string, description string) error {
	var err error
	switch {
	case short == NoShortName && long == "":
		err = programmerError(ErrUnsupportedOperation, "help switch needs a short or a long name")
	case long == "":
		err = p.checkShort(short, "help")
	default:
		err = p.checkNames(short, long)
	}
	if err != nil {
		p.fail(err)
		return err
	}
	p.helpShort = short
	p.helpLong = long
	p.description = description
	return nil
}

func (p *Parser) checkNames(short rune, long string) error {
	if long == "" {
		return programmerError(ErrUnsupportedOperation, "options need a long name")
	}
	if _, ok := p.longIndex[long]; ok || long == p.helpLong {
		return programmerError(ErrNameCollision, "--%s is already defined", long)
	}
	return p.checkShort(short, long)
}

func (p *Parser) checkShort(short rune, long string) error {
	if short == NoShortName {
		return nil
	}
	if _, ok := p.shortIndex[short]; ok || short == p.helpShort {
		return programmerError(ErrNameCollision, "-%c (for --%s) is already defined", short, long)
	}
	return nil
}

func (p *Parser) hasHelp() bool {
	return p.helpShort != NoShortName || p.helpLong != ""
}

func (p *Parser) declare(vt ValueType, short rune, long string, description string) *Option {
	o := &Option{
		valueType:   vt,
		shortName:   short,
		longName:    long,
		description: description,
	}
	if err := p.checkNames(short, long); err != nil {
		// the option is returned so that chained calls work, but it
		// is not registered
		p.fail(err)
		return o.fail(err)
	}
	p.options = append(p.options, o)
	p.longIndex[long] = len(p.options) - 1
	if short != NoShortName {
		p.shortIndex[short] = len(p.options) - 1
	}
	if vt == Flag {
		o.Default(false)
	}
	p.debugf("declared %s option --%s", vt, long)
	return o
}

// AddString declares a String option, -short and --long
func (p *Parser) AddString(short rune, long string, description string) *Option {
	return p.declare(String, short, long, description)
}

func (p *Parser) AddLongString(long string, description string) *Option {
	return p.declare(String, NoShortName, long, description)
}

// AddInt declares an Integer option, -short and --long
func (p *Parser) AddInt(short rune, long string, description string) *Option {
	return p.declare(Integer, short, long, description)
}

func (p *Parser) AddLongInt(long string, description string) *Option {
	return p.declare(Integer, NoShortName, long, description)
}

// AddFlag declares a Flag option, -short and --long.  Flags default to false
// and are set to true by being given.  An explicit value can be given with
// --long=false or -s=0.
func (p *Parser) AddFlag(short rune, long string, description string) *Option {
	return p.declare(Flag, short, long, description)
}

func (p *Parser) AddLongFlag(long string, description string) *Option {
	return p.declare(Flag, NoShortName, long, description)
}

// Options returns the declared options in declaration order
func (p *Parser) Options() []*Option {
	return append([]*Option(nil), p.options...)
}

// Lookup finds an option by its long name
func (p *Parser) Lookup(long string) (*Option, error) {
	i, ok := p.longIndex[long]
	if !ok {
		return nil, programmerError(ErrUnknownOption, "no such option as --%s", long)
	}
	return p.options[i], nil
}

func (p *Parser) StringValue(long string, index int) (string, error) {
	o, err := p.Lookup(long)
	if err != nil {
		return "", err
	}
	return o.StringValue(index)
}

func (p *Parser) IntValue(long string, index int) (int, error) {
	o, err := p.Lookup(long)
	if err != nil {
		return 0, err
	}
	return o.IntValue(index)
}

func (p *Parser) FlagValue(long string) (bool, error) {
	o, err := p.Lookup(long)
	if err != nil {
		return false, err
	}
	return o.FlagValue()
}

// Positionals returns the arguments from the last Parse that were
// not options
func (p *Parser) Positionals() []string {
	return append([]string(nil), p.positionals...)
}

// Failures explains why the last Parse returned Invalid
func (p *Parser) Failures() []error {
	return append([]error(nil), p.failures...)
}

func (p *Parser) reset() {
	for _, o := range p.options {
		o.reset()
	}
	p.positionals = nil
	p.failures = nil
}

func (p *Parser) addFailure(err error) {
	p.failures = append(p.failures, err)
}
