package argdef

import (
	"errors"
	"fmt"
	"reflect"
)

// Default help flag was provided, and the usage listing has been written.
var ErrDefaultHelp = errors.New("help flag")

// A Definition is malformed. These are programmer errors, and are returned
// before any argument is resolved.
type DefinitionError struct {
	// The definition's name, if it has one.
	Name string
	// The empty field: "name", "description" or "usage". Unset when Name is
	// defined more than once.
	Field string
}

func (me DefinitionError) Error() string {
	if me.Field == "" {
		return fmt.Sprintf("argument %q defined more than once", me.Name)
	}
	if me.Name == "" {
		return fmt.Sprintf("argument definition has empty %s", me.Field)
	}
	return fmt.Sprintf("argument %q has empty %s", me.Name, me.Field)
}

type RequiredArgumentMissing struct {
	Name string
}

func (me RequiredArgumentMissing) Error() string {
	return fmt.Sprintf("missing argument: %q", flagPrefix+me.Name)
}

type MissingValueForArgument struct {
	Name string
}

func (me MissingValueForArgument) Error() string {
	return fmt.Sprintf("missing value for argument: %q", flagPrefix+me.Name)
}

// A lookup named an argument that was never defined.
type UndefinedArgument struct {
	Name string
}

func (me UndefinedArgument) Error() string {
	return fmt.Sprintf("undefined argument: %q", me.Name)
}

// The resolved value of an argument couldn't be parsed to the requested type.
type TypeParseError struct {
	Name  string
	Usage string
	Value string
	Type  reflect.Type
	Err   error
}

func (me TypeParseError) Error() string {
	return fmt.Sprintf("bad value %q for %s (usage: %s): %s", me.Value, me.Type, me.Usage, me.Err)
}

func (me TypeParseError) Unwrap() error {
	return me.Err
}

// Errors a user can cause by what they passed on the command line, as opposed
// to errors in how the program declared its arguments.
func isUserError(err error) bool {
	var (
		rm RequiredArgumentMissing
		mv MissingValueForArgument
	)
	return errors.As(err, &rm) || errors.As(err, &mv)
}
