package argdef

import (
	"io"
	"os"
)

// Holds every definition's resolved value. It's read-only once returned by
// New, and lookups are safe for concurrent use.
type Parser struct {
	comparison  Comparison
	helpWriter  io.Writer
	errorWriter io.Writer
	exit        func(code int)
	program     string
	description string

	// In declaration order, including help.
	defs   []Definition
	byName map[string]Definition
	values map[string]value
}

// Validates the definitions and resolves each of them against args. If help
// is requested, the usage listing is written, the exit function is called with
// status 0, and ErrDefaultHelp is returned should it return.
func New(defs []Definition, args []string, opts ...parseOpt) (p *Parser, err error) {
	p = newParser(opts...)
	err = p.parse(defs, args)
	if err != nil {
		p = nil
	}
	return
}

func newParser(opts ...parseOpt) *Parser {
	p := &Parser{
		helpWriter:  os.Stdout,
		errorWriter: os.Stderr,
		exit:        os.Exit,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) parse(defs []Definition, args []string) error {
	if err := validateDefinitions(defs, p.comparison); err != nil {
		return err
	}
	defs, helpIndex := withHelp(defs)
	p.defs = defs
	help := defs[helpIndex]
	hv, err := search(args, help, p.comparison)
	if err != nil {
		return err
	}
	if given(help, hv) {
		p.WriteUsage(p.helpWriter)
		p.exit(0)
		return ErrDefaultHelp
	}
	p.byName = make(map[string]Definition, len(defs))
	p.values = make(map[string]value, len(defs))
	p.add(help, hv)
	for i, d := range defs {
		if i == helpIndex {
			continue
		}
		v, err := search(args, d, p.comparison)
		if err != nil {
			return err
		}
		p.add(d, v)
	}
	return nil
}

func (p *Parser) add(d Definition, v value) {
	key := normalize(d.Name, p.comparison)
	p.byName[key] = d
	p.values[key] = v
}

func given(d Definition, v value) bool {
	if d.Flag {
		return v.literal == "true"
	}
	return v.present
}

func (p *Parser) lookup(name string) (d Definition, v value, err error) {
	key := normalize(name, p.comparison)
	v, ok := p.values[key]
	if !ok {
		err = UndefinedArgument{name}
		return
	}
	d = p.byName[key]
	return
}

// Returns the argument's value as it was given, or _default if it's an
// optional value argument that wasn't. Flags are "true" or "false".
func (p *Parser) String(name, _default string) (string, error) {
	_, v, err := p.lookup(name)
	if err != nil {
		return "", err
	}
	if !v.present {
		return _default, nil
	}
	return v.literal, nil
}

// Reports whether the argument appeared on the command line.
func (p *Parser) Has(name string) (bool, error) {
	d, v, err := p.lookup(name)
	if err != nil {
		return false, err
	}
	return given(d, v), nil
}

// Returns the definitions in declaration order, including help.
func (p *Parser) Definitions() []Definition {
	return append([]Definition(nil), p.defs...)
}
