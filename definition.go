package argdef

import (
	"strings"
)

const flagPrefix = "--"

const (
	helpName        = "help"
	helpDescription = "Displays the help page."
	helpUsage       = flagPrefix + helpName
)

// Declares an argument recognized on the command line as "--Name".
type Definition struct {
	Name        string
	Description string
	// Shown in the usage listing, for example "--count N".
	Usage string
	// Flags are true when present, and never take a value.
	Flag     bool
	Required bool
}

func (me Definition) token() string {
	return flagPrefix + me.Name
}

func (me Definition) validate() error {
	switch {
	case me.Name == "":
		return DefinitionError{Field: "name"}
	case me.Description == "":
		return DefinitionError{Name: me.Name, Field: "description"}
	case me.Usage == "":
		return DefinitionError{Name: me.Name, Field: "usage"}
	}
	return nil
}

// How argument names are compared, both in the argument slice and in lookups.
type Comparison int

const (
	CaseSensitive Comparison = iota
	CaseInsensitive
)

func normalize(name string, c Comparison) string {
	if c == CaseInsensitive {
		return strings.ToLower(name)
	}
	return name
}

func (c Comparison) equal(a, b string) bool {
	return normalize(a, c) == normalize(b, c)
}

var defaultHelp = Definition{
	Name:        helpName,
	Description: helpDescription,
	Usage:       helpUsage,
	Flag:        true,
}

// Returns the definitions, with the default help definition appended if none
// is named help in any case, and the index of the help definition. The input
// slice is not modified.
func withHelp(defs []Definition) (ret []Definition, help int) {
	for i, d := range defs {
		if CaseInsensitive.equal(d.Name, helpName) {
			return defs, i
		}
	}
	ret = make([]Definition, 0, len(defs)+1)
	ret = append(ret, defs...)
	ret = append(ret, defaultHelp)
	return ret, len(defs)
}

// Checks every definition's shape, and that no two definitions have the same
// name under the comparison.
func validateDefinitions(defs []Definition, c Comparison) error {
	seen := make(map[string]struct{}, len(defs))
	for _, d := range defs {
		if err := d.validate(); err != nil {
			return err
		}
		key := normalize(d.Name, c)
		if _, ok := seen[key]; ok {
			return DefinitionError{Name: d.Name}
		}
		seen[key] = struct{}{}
	}
	return nil
}
