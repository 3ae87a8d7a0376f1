package constraint

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/kit/pkg/text"
)

// Pattern matches a string against a regular expression. With Negate the
// string must not match.
type Pattern struct {
	re          *regexp.Regexp
	negate      bool
	description string
}

// PatternOptions is the property form of Pattern.
type PatternOptions struct {
	Expr        string `mapstructure:"expr"`
	Negate      bool   `mapstructure:"negate"`
	Description string `mapstructure:"description"`
}

// NewPattern compiles expr. The expression is not anchored implicitly.
func NewPattern(expr string, negate bool) (*Pattern, error) {
	return PatternFrom(PatternOptions{Expr: expr, Negate: negate})
}

// PatternFrom builds a Pattern from options.
func PatternFrom(opts PatternOptions) (*Pattern, error) {
	if opts.Expr == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidPattern)
	}
	re, err := regexp.Compile(opts.Expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	desc := opts.Description
	if desc == "" {
		desc = opts.Expr
	}
	return &Pattern{re: re, negate: opts.Negate, description: desc}, nil
}

// MustPattern is like NewPattern but panics on a bad expression.
func MustPattern(expr string) *Pattern {
	p, err := NewPattern(expr, false)
	if err != nil {
		panic(err)
	}
	return p
}

func (*Pattern) Name() string { return "pattern" }

func (c *Pattern) Check(s string) bool {
	return c.re.MatchString(s) != c.negate
}

func (c *Pattern) Message() text.Text {
	if c.negate {
		return text.New("constraint.pattern.negate", "must not match %{pattern}", "pattern", c.description)
	}
	return text.New("constraint.pattern.match", "must match %{pattern}", "pattern", c.description)
}
