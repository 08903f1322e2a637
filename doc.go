// Package argdef parses a process's arguments against an explicitly declared
// set of definitions, and looks up their values on demand.
//
// For example:
//  p := argdef.Argv([]argdef.Definition{
//      {Name: "port", Required: true, Usage: "--port N", Description: "port to listen on"},
//      {Name: "verbose", Flag: true, Usage: "--verbose", Description: "log more"},
//  })
//  port, err := argdef.ParseAs(p, "port", 0)
//
// Arguments are only recognized in the "--name" form. A flag is true when
// present and false when not, and never consumes the following token. Any
// other argument takes the token that follows it as its value. A "--help"
// flag is added when no definition named help exists; when it's given, the
// usage listing is printed and the program exits with status 0.
//
// Every definition is resolved once, when the Parser is created. Lookups after
// that only read the resolved table, and are safe for concurrent use.
//
// Definitions can also be derived from struct fields with StructDefinitions.
// Supported tags include:
//  name: overrides the name derived from the field name
//  help: the description shown in the usage listing
//  usage: overrides the derived usage text, such as "--count N"
//  required: "true" if the argument must be given
package argdef
