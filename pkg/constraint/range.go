package constraint

import (
	"cmp"
	"fmt"

	"github.com/dmitrymomot/kit/pkg/text"
)

// Range bounds an ordered value inclusively. Nil bounds are open.
type Range[T cmp.Ordered] struct {
	Min *T `mapstructure:"min"`
	Max *T `mapstructure:"max"`
}

// Between returns a closed range.
func Between[T cmp.Ordered](min, max T) Range[T] {
	return Range[T]{Min: &min, Max: &max}
}

// AtLeast returns a range with only a lower bound.
func AtLeast[T cmp.Ordered](min T) Range[T] {
	return Range[T]{Min: &min}
}

// AtMost returns a range with only an upper bound.
func AtMost[T cmp.Ordered](max T) Range[T] {
	return Range[T]{Max: &max}
}

func (c Range[T]) Validate() error {
	if c.Min != nil && c.Max != nil && *c.Max < *c.Min {
		return fmt.Errorf("%w: max %v < min %v", ErrInvalidBounds, *c.Max, *c.Min)
	}
	return nil
}

func (Range[T]) Name() string { return "range" }

func (c Range[T]) Check(v T) bool {
	if c.Min != nil && v < *c.Min {
		return false
	}
	if c.Max != nil && v > *c.Max {
		return false
	}
	return true
}

func (c Range[T]) Message() text.Text {
	switch {
	case c.Min != nil && c.Max != nil:
		return text.New("constraint.range.between", "must be between %{min} and %{max}", "min", *c.Min, "max", *c.Max)
	case c.Min != nil:
		return text.New("constraint.range.min", "must be at least %{min}", "min", *c.Min)
	case c.Max != nil:
		return text.New("constraint.range.max", "must be at most %{max}", "max", *c.Max)
	default:
		return text.New("constraint.range.invalid", "is out of range")
	}
}

// Multiple requires an integer to be a multiple of Of.
type Multiple struct {
	Of int64 `mapstructure:"of"`
}

func (c Multiple) Validate() error {
	if c.Of == 0 {
		return fmt.Errorf("%w: multiple of zero", ErrInvalidBounds)
	}
	return nil
}

func (Multiple) Name() string { return "multiple" }

func (c Multiple) Check(v int64) bool {
	return c.Of != 0 && v%c.Of == 0
}

func (c Multiple) Message() text.Text {
	return text.New("constraint.multiple", "must be a multiple of %{of}", "of", c.Of)
}
