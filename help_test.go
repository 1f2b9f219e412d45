package argparser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestUsage(t *testing.T) {
	p := NewParser("Program",
		WithDescription("Program accumulate arguments"),
		WithHelp('h', "help"))
	p.AddLongInt("N", "numbers").MultiValue(1).Positional()
	p.AddFlag('s', "sum", "add args")
	p.AddLongFlag("mult", "multiply args").Default(true)
	p.AddString('o', "output", "where to write").Default("out.txt")

	want := "Program\n" +
		"Program accumulate arguments\n" +
		"\n" +
		"        --N=<int>                  numbers [repeated, min args = 1] [takes positional arguments]\n" +
		"    -s, --sum                      add args\n" +
		"        --mult                     multiply args [default = true]\n" +
		"    -o, --output=<string>          where to write [default = out.txt]\n" +
		"\n" +
		"    -h, --help                     Display this help and exit\n"
	if diff := cmp.Diff(want, p.Usage()); diff != "" {
		t.Errorf("usage mismatch (-want +got):\n%s", diff)
	}
}

func TestUsageMinimal(t *testing.T) {
	p := NewParser("bare")
	assert.Equal(t, "bare\n", p.Usage(), "no options")

	p.AddLongString("name", "")
	assert.Equal(t, "bare\n\n        --name=<string>\n", p.Usage(), "no description")
}

func TestUsageMultiDefault(t *testing.T) {
	p := NewParser("prog", WithHelp(NoShortName, "usage"))
	p.AddInt('n', "num", "numbers").MultiValue(0).Default([]int{3, 4})
	want := "prog\n" +
		"\n" +
		"    -n, --num=<int>                numbers [repeated, min args = 0] [default = 3,4]\n" +
		"\n" +
		"        --usage                    Display this help and exit\n"
	if diff := cmp.Diff(want, p.Usage()); diff != "" {
		t.Errorf("usage mismatch (-want +got):\n%s", diff)
	}
}

func TestUsageShortOnlyHelp(t *testing.T) {
	p := NewParser("prog", WithHelp('h', ""))
	assert.Equal(t, "prog\n\n    -h                             Display this help and exit\n", p.Usage())
}
