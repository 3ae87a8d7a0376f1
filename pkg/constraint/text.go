package constraint

import (
	"unicode"

	"github.com/dmitrymomot/kit/pkg/text"
)

// Text restricts the characters of a string.
//
// The class flags (Alphabetical, Numerical, Whitespace) list the allowed
// character classes; when none is set, any class is allowed. Lowercase and
// Uppercase require every letter to have that case. Without Unicode every
// character must be ASCII.
type Text struct {
	Alphabetical bool `mapstructure:"alphabetical"`
	Numerical    bool `mapstructure:"numerical"`
	Whitespace   bool `mapstructure:"whitespace"`
	Lowercase    bool `mapstructure:"lowercase"`
	Uppercase    bool `mapstructure:"uppercase"`
	Unicode      bool `mapstructure:"unicode"`
}

func (Text) Name() string { return "text" }

func (c Text) restrictsClasses() bool {
	return c.Alphabetical || c.Numerical || c.Whitespace
}

func (c Text) Check(s string) bool {
	for _, r := range s {
		if !c.Unicode && r > unicode.MaxASCII {
			return false
		}
		isLetter := unicode.IsLetter(r)
		if c.restrictsClasses() {
			allowed := (c.Alphabetical && isLetter) ||
				(c.Numerical && unicode.IsDigit(r)) ||
				(c.Whitespace && unicode.IsSpace(r))
			if !allowed {
				return false
			}
		}
		if isLetter {
			if c.Lowercase && !unicode.IsLower(r) {
				return false
			}
			if c.Uppercase && !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return true
}

func (c Text) Message() text.Text {
	var key, fallback string
	switch {
	case c.Alphabetical && c.Numerical:
		key, fallback = "constraint.text.alphanumeric", "must contain only letters and digits"
	case c.Alphabetical:
		key, fallback = "constraint.text.alphabetical", "must contain only letters"
	case c.Numerical:
		key, fallback = "constraint.text.numerical", "must contain only digits"
	case !c.Unicode:
		key, fallback = "constraint.text.ascii", "must contain only ASCII characters"
	default:
		key, fallback = "constraint.text.invalid", "contains characters that are not allowed"
	}
	switch {
	case c.Lowercase:
		key, fallback = key+"_lowercase", fallback+" in lowercase"
	case c.Uppercase:
		key, fallback = key+"_uppercase", fallback+" in uppercase"
	}
	return text.New(key, fallback)
}
