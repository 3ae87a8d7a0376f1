// Package types provides the built-in prototypes for input.Input.
//
// A prototype coerces raw values into a Go type and knows a set of named
// modifiers, so inputs can be configured from data:
//
//	in := input.Must(types.Text(), input.WithName("username"))
//	_ = in.AddNamed("trim", nil)
//	_ = in.AddNamed("length", map[string]any{"min": 3, "max": 32})
//	_ = in.AddNamed("text", map[string]any{"alphabetical": true, "numerical": true})
//
// Modifier properties are decoded with mapstructure in weakly typed mode,
// so {"min": "3"} works as well as {"min": 3}.
//
// Available prototypes and their modifiers:
//
//	Text      length text pattern email uri token choice language_tag
//	          trim lowercase uppercase title whitespace normalize truncate slug strip
//	Integer   range choice multiple clamp abs
//	Float     range choice clamp round abs
//	Boolean   (none)
//	DateTime  range utc truncate
//	UUID      version not_nil
//	Enum      choice
package types
