package argdef

import (
	"fmt"
	"io"

	"github.com/anacrolix/missinggo/v2"
)

// Writes the usage listing: each definition's usage, bracketed if it's
// optional, followed by its description and a blank line.
func (p *Parser) WriteUsage(w io.Writer) {
	if p.program != "" {
		fmt.Fprintf(w, "Usage:\n  %s [OPTIONS...]\n\n", p.program)
	}
	if p.description != "" {
		fmt.Fprintf(w, "%s\n", missinggo.Unchomp(p.description))
	}
	for _, d := range p.defs {
		fmt.Fprintf(w, "%s\n%s\n", usageLine(d), missinggo.Unchomp(d.Description))
	}
}

func usageLine(d Definition) string {
	if d.Required {
		return d.Usage
	}
	return "[" + d.Usage + "]"
}
