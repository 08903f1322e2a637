package argdef

import (
	"strconv"
	"strings"

	"github.com/bradfitz/iter"
)

// The resolved state of a definition. The zero value is an optional value
// argument that wasn't given.
type value struct {
	present bool
	literal string
}

func flagValue(b bool) value {
	return value{present: true, literal: strconv.FormatBool(b)}
}

// Index of the first token naming the argument, or -1.
func indexToken(args []string, token string, c Comparison) int {
	for i := range iter.N(len(args)) {
		if c.equal(args[i], token) {
			return i
		}
	}
	return -1
}

// Resolves one definition against the arguments. Only the first occurrence of
// an argument is considered.
func search(args []string, d Definition, c Comparison) (v value, err error) {
	i := indexToken(args, d.token(), c)
	if i == -1 {
		if d.Required {
			err = RequiredArgumentMissing{d.Name}
			return
		}
		if d.Flag {
			v = flagValue(false)
		}
		return
	}
	if d.Flag {
		v = flagValue(true)
		return
	}
	if i+1 == len(args) || strings.HasPrefix(args[i+1], flagPrefix) {
		err = MissingValueForArgument{d.Name}
		return
	}
	v = value{present: true, literal: args[i+1]}
	return
}
