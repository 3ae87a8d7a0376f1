package constraint

import (
	"fmt"
	"unicode/utf8"

	"github.com/dmitrymomot/kit/pkg/text"
)

// Length bounds the length of a string. Max == 0 means no upper bound.
// With Unicode set, length counts code points; otherwise bytes.
type Length struct {
	Min     int  `mapstructure:"min"`
	Max     int  `mapstructure:"max"`
	Unicode bool `mapstructure:"unicode"`
}

// NewLength returns a byte-counting Length.
func NewLength(min, max int) Length {
	return Length{Min: min, Max: max}
}

// Validate reports inconsistent bounds.
func (c Length) Validate() error {
	if c.Min < 0 || c.Max < 0 {
		return fmt.Errorf("%w: negative length", ErrInvalidBounds)
	}
	if c.Max > 0 && c.Max < c.Min {
		return fmt.Errorf("%w: max %d < min %d", ErrInvalidBounds, c.Max, c.Min)
	}
	return nil
}

// WithUnicode returns a copy that counts code points.
func (c Length) WithUnicode() Length {
	c.Unicode = true
	return c
}

func (Length) Name() string { return "length" }

func (Length) Priority() int { return PriorityStructural }

// Count returns the length of s as measured by c.
func (c Length) Count(s string) int {
	if c.Unicode {
		return utf8.RuneCountInString(s)
	}
	return len(s)
}

func (c Length) Check(s string) bool {
	n := c.Count(s)
	if n < c.Min {
		return false
	}
	return c.Max == 0 || n <= c.Max
}

func (c Length) Message() text.Text {
	switch {
	case c.Max > 0 && c.Min == c.Max:
		return text.New("constraint.length.exact", "must be exactly %{length} characters long", "length", c.Min)
	case c.Max > 0 && c.Min > 0:
		return text.New("constraint.length.range", "must be between %{min} and %{max} characters long", "min", c.Min, "max", c.Max)
	case c.Max > 0:
		return text.New("constraint.length.max", "must be at most %{max} characters long", "max", c.Max)
	default:
		return text.New("constraint.length.min", "must be at least %{min} characters long", "min", c.Min)
	}
}
