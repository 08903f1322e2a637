package argdef

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type parseCase struct {
	args []string
	err  error
	// Raw values looked up with String after parsing.
	expected map[string]string
}

func noErrorCase(expected map[string]string, args ...string) parseCase {
	return parseCase{args: args, expected: expected}
}

func errorCase(err error, args ...string) parseCase {
	return parseCase{args: args, err: err}
}

func (me parseCase) Run(t *testing.T, defs []Definition, opts ...parseOpt) {
	p, err := New(defs, me.args, opts...)
	assert.EqualValues(t, me.err, err, "%v", me.args)
	if me.err != nil {
		assert.Nil(t, p)
		return
	}
	for name, expected := range me.expected {
		actual, err := p.String(name, "<default>")
		assert.NoError(t, err)
		assert.EqualValues(t, expected, actual, "%v: %s", me.args, name)
	}
}

func RunCases(t *testing.T, cases []parseCase, defs []Definition, opts ...parseOpt) {
	for _, _case := range cases {
		_case.Run(t, defs, opts...)
	}
}

// Records exit statuses instead of exiting.
func recordExit(codes *[]int) parseOpt {
	return Exit(func(code int) {
		*codes = append(*codes, code)
	})
}
