//go:build debugArgparser
// +build debugArgparser

package argparser

import (
	"log"
)

const debugging = true

func (p *Parser) debugf(format string, args ...interface{}) {
	log.Printf("argparser(%s): "+format, append([]interface{}{p.name}, args...)...)
}

func (p *Parser) debug(args ...interface{}) {
	log.Println(append([]interface{}{"argparser(" + p.name + "):"}, args...)...)
}
