package argparser

import (
	"fmt"
	"strings"
)

const helpLineFormat = "    %-30s %s\n"

// Usage renders the help text: the program name, the description, one
// line per option in declaration order, and the help switch.
//
//	Program
//	Program accumulate arguments
//
//	    -n, --number=<int>             numbers to use [repeated, min args = 1] [takes positional arguments]
//	        --sum                      add args
//
//	    -h, --help                     Display this help and exit
func (p *Parser) Usage() string {
	var b strings.Builder
	b.WriteString(p.name)
	b.WriteString("\n")
	if p.description != "" {
		b.WriteString(p.description)
		b.WriteString("\n")
	}
	if len(p.options) > 0 {
		b.WriteString("\n")
		for _, o := range p.options {
			b.WriteString(helpLine(
				formatNames(o.shortName, o.longName)+o.argName(),
				strings.Join(notEmpty(o.description, o.annotations()...), " ")))
		}
	}
	if p.hasHelp() {
		b.WriteString("\n")
		b.WriteString(helpLine(
			formatNames(p.helpShort, p.helpLong),
			"Display this help and exit"))
	}
	return b.String()
}

func helpLine(names string, text string) string {
	if text == "" {
		return "    " + names + "\n"
	}
	return fmt.Sprintf(helpLineFormat, names, text)
}

func formatNames(short rune, long string) string {
	if long == "" {
		return fmt.Sprintf("-%c", short)
	}
	if short == NoShortName {
		return "    --" + long
	}
	return fmt.Sprintf("-%c, --%s", short, long)
}

func (o *Option) argName() string {
	switch o.valueType {
	case Integer:
		return "=<int>"
	case String:
		return "=<string>"
	}
	return ""
}

func (o *Option) annotations() []string {
	var a []string
	if o.multiValue {
		a = append(a, fmt.Sprintf("[repeated, min args = %d]", o.minCount))
	}
	if o.hasDefault {
		if o.valueType == Flag {
			// false is the natural state of a flag and not worth mentioning
			if o.defaultText() == encodeFlag(true) {
				a = append(a, "[default = true]")
			}
		} else if text := o.defaultText(); text != "" {
			a = append(a, "[default = "+text+"]")
		}
	}
	if o.positional {
		a = append(a, "[takes positional arguments]")
	}
	return a
}
