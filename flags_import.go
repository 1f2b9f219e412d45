package argparser

import (
	"flag"
	"strconv"
	"unicode/utf8"
)

type hasIsBool interface {
	IsBoolFlag() bool
}

type importedFlag struct {
	option *Option
	flag   *flag.Flag
}

// ImportFlagSet pulls in flags defined with the standard "flag"
// package.  This is useful when there are libaries being used
// that define flags.
//
// flag.CommandLine is the default FlagSet.
//
// Boolean flags become Flag options and everything else becomes a String
// option whose default is the flag's default.  A flag with a one character
// name gets that character as both its short and long name.  Once the
// command line has validated, and before bound storage is written, each
// value given on the command line is passed to the flag's Set method.
func ImportFlagSet(fs *flag.FlagSet) ParserOpt {
	return func(p *Parser) error {
		if fs.Parsed() {
			return programmerError(ErrUnsupportedOperation, "cannot import FlagSets that have been parsed")
		}
		var err error
		fs.VisitAll(func(f *flag.Flag) {
			if err != nil {
				return
			}
			var isBool bool
			if hib, ok := f.Value.(hasIsBool); ok {
				isBool = hib.IsBoolFlag()
			}
			short := NoShortName
			switch utf8.RuneCountInString(f.Name) {
			case 0:
				err = programmerError(ErrUnsupportedOperation, "invalid flag in FlagSet with no Name")
				return
			case 1:
				short, _ = utf8.DecodeRuneInString(f.Name)
			}
			var o *Option
			if isBool {
				o = p.AddFlag(short, f.Name, f.Usage)
				if b, perr := strconv.ParseBool(f.DefValue); perr == nil {
					o.Default(b)
				}
			} else {
				o = p.AddString(short, f.Name, f.Usage)
				o.setDefaults([]string{f.DefValue})
			}
			if o.Err() != nil {
				err = o.Err()
				return
			}
			p.imported = append(p.imported, importedFlag{option: o, flag: f})
		})
		return err
	}
}

// importFlags deals with setting values for standard "flags" that have been
// imported.  Values that only came from defaults are left alone.
func (p *Parser) importFlags() error {
	for _, imp := range p.imported {
		if imp.option.fromDefault {
			continue
		}
		for _, value := range imp.option.values {
			if imp.option.valueType == Flag {
				b, err := decodeFlag(value)
				if err != nil {
					return imp.option.conversionError(value, err)
				}
				value = strconv.FormatBool(b)
			}
			err := imp.flag.Value.Set(value)
			if err != nil {
				return usageError(ErrTypeMismatch, "cannot set value for flag '%s': %s", imp.flag.Name, err)
			}
		}
	}
	return nil
}
