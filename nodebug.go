//go:build !debugArgparser
// +build !debugArgparser

package argparser

const debugging = false

func (p *Parser) debugf(string, ...interface{}) {}
func (p *Parser) debug(...interface{})          {}
