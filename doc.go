// Obligatory // comment

/*
Package argparser declares command line options and parses argument
lists against them.

Start with NewParser().  Declare options with AddString, AddInt, and AddFlag
(or their AddLong* variants when there is no short name) and configure them
with the builder methods on Option.  Then call Parse() with os.Args.

	var numbers []int
	var sum bool
	p := argparser.NewParser("accumulate", argparser.WithHelp('h', "help"))
	p.AddLongInt("N", "numbers").MultiValue(1).Positional().StoreValue(&numbers)
	p.AddFlag('s', "sum", "add args").StoreValue(&sum)
	result, err := p.Parse(os.Args)

Parse returns one of three results: Success, Help, or Invalid.  Storage bound
with Bind() or StoreValue() is only written on Success.  Invalid means that
some option did not get enough values: options that are not multi-valued
must be given once (flags and options with defaults always have a value) and
multi-valued options must be given more than their minimum count.

Options can also be declared from struct tags with Request():

	type Options struct {
		Numbers []int `arg:"numbers N,min=1,positional" help:"numbers"`
		Sum     bool  `arg:"sum s" help:"add args"`
	}

Flags defined with the standard "flag" package can be brought in with
ImportFlagSet(flag.CommandLine).

The command line syntax is:

	--name             long option, value is "1"
	--name=value       long option with a value
	-x                 short option, value is "1"
	-xyz               three short options, each with value "1"
	-xyz=value         three short options, each with value
	anything-else      positional argument

Only the first "=" separates the name from the value.

Errors returned by this package match one of the Err* kinds with errors.Is.
IsUsageError reports if the problem is with the command line rather than with
the declarations.

Known bugs / limitations:

There is no "--" terminator: a positional argument cannot start with "-".

Integer values are converted during Parse, even for options that are not
bound to storage: "--count=lots" makes Parse return an ErrTypeMismatch usage
error rather than failing later in IntValue.
*/
package argparser
