package argdef

import (
	"io"
)

type parseOpt func(p *Parser)

// Sets how argument names are compared. The default is CaseSensitive.
func WithComparison(c Comparison) parseOpt {
	return func(p *Parser) {
		p.comparison = c
	}
}

// Where the usage listing is written when help is requested. Defaults to
// os.Stdout.
func HelpWriter(w io.Writer) parseOpt {
	return func(p *Parser) {
		p.helpWriter = w
	}
}

// Where Argv writes errors before exiting. Defaults to os.Stderr.
func ErrorWriter(w io.Writer) parseOpt {
	return func(p *Parser) {
		p.errorWriter = w
	}
}

// Called with the exit status after the usage listing is written, and by Argv
// on error. Defaults to os.Exit.
func Exit(exit func(code int)) parseOpt {
	return func(p *Parser) {
		p.exit = exit
	}
}

// Sets the program name shown at the top of the usage listing.
func Program(program string) parseOpt {
	return func(p *Parser) {
		p.program = program
	}
}

// Writes program description between the program name and the argument help.
func Description(desc string) parseOpt {
	return func(p *Parser) {
		p.description = desc
	}
}
