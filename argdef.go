package argdef

import (
	"fmt"
	"os"
	"path/filepath"
)

// Parses os.Args[1:]. If help is requested, the usage listing is written and
// the program exits with status 0. Errors are written to stderr, and the
// program exits with status 2 for bad arguments, or 1 for bad definitions.
func Argv(defs []Definition, opts ...parseOpt) *Parser {
	return argv(defs, os.Args[1:], append([]parseOpt{
		Program(filepath.Base(os.Args[0])),
	}, opts...)...)
}

// Returns nil only if the exit function returns.
func argv(defs []Definition, args []string, opts ...parseOpt) *Parser {
	p := newParser(opts...)
	err := p.parse(defs, args)
	if err == nil {
		return p
	}
	if err == ErrDefaultHelp {
		return nil
	}
	fmt.Fprintf(p.errorWriter, "argdef: %s\n", err)
	if isUserError(err) {
		p.exit(2)
	} else {
		p.exit(1)
	}
	return nil
}
