// Command accumulate adds up or multiplies the integers given to it.
//
//	accumulate --sum 1 2 3
//	accumulate -m 2 3 4
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/muir/argparser"
)

type options struct {
	Numbers []int `arg:"numbers N,min=0,positional" help:"numbers to accumulate"`
	Sum     bool  `arg:"sum s" help:"add args"`
	Mult    bool  `arg:"mult m" help:"multiply args"`
}

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	var opts options
	p := argparser.NewParser("accumulate",
		argparser.WithDescription("Program accumulate arguments"),
		argparser.WithHelp('h', "help"))
	if err := p.Request(&opts); err != nil {
		color.Red("%s", err)
		return 2
	}

	result, err := p.Parse(args)
	switch {
	case err != nil:
		color.Red("%s", err)
		if argparser.IsUsageError(err) {
			fmt.Print(p.Usage())
		}
		return 1
	case result == argparser.Help:
		fmt.Print(p.Usage())
		return 0
	case result == argparser.Invalid:
		for _, failure := range p.Failures() {
			color.Red("%s", failure)
		}
		fmt.Print(p.Usage())
		return 1
	}

	switch {
	case opts.Sum:
		total := 0
		for _, n := range opts.Numbers {
			total += n
		}
		color.Green("Result: %d", total)
	case opts.Mult:
		total := 1
		for _, n := range opts.Numbers {
			total *= n
		}
		color.Green("Result: %d", total)
	default:
		color.Yellow("Neither --sum nor --mult was given")
		fmt.Print(p.Usage())
		return 1
	}
	return 0
}
