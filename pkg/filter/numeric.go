package filter

import (
	"cmp"
	"fmt"
	"math"

	"github.com/dmitrymomot/kit/pkg/text"
)

// Number is the set of types the numeric filters accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Clamp moves a value into [Min, Max]. Nil bounds are open.
type Clamp[T cmp.Ordered] struct {
	Min *T `mapstructure:"min"`
	Max *T `mapstructure:"max"`
}

// ClampTo returns a closed Clamp.
func ClampTo[T cmp.Ordered](min, max T) Clamp[T] {
	return Clamp[T]{Min: &min, Max: &max}
}

func (f Clamp[T]) Validate() error {
	if f.Min != nil && f.Max != nil && *f.Max < *f.Min {
		return fmt.Errorf("%w: max %v < min %v", ErrInvalidBounds, *f.Max, *f.Min)
	}
	return nil
}

func (Clamp[T]) Name() string       { return "clamp" }
func (Clamp[T]) Message() text.Text { return msgInvalid }

func (f Clamp[T]) Filter(v T) (T, bool) {
	if f.Min != nil && v < *f.Min {
		v = *f.Min
	}
	if f.Max != nil && v > *f.Max {
		v = *f.Max
	}
	return v, true
}

// Abs replaces a value with its absolute value. The minimum value of a
// signed integer type has no positive counterpart and is rejected.
type Abs[T Number] struct{}

func (Abs[T]) Name() string { return "abs" }

func (Abs[T]) Message() text.Text {
	return text.New("filter.abs", "has no absolute value")
}

func (Abs[T]) Filter(v T) (T, bool) {
	if v >= 0 {
		return v, true
	}
	if -v < 0 {
		return v, false
	}
	return -v, true
}

// Round rounds a float to Places decimal places, half away from zero.
type Round struct {
	Places int `mapstructure:"places"`
}

func (f Round) Validate() error {
	if f.Places < 0 || f.Places > 15 {
		return fmt.Errorf("%w: places must be within [0, 15]", ErrInvalidBounds)
	}
	return nil
}

func (Round) Name() string       { return "round" }
func (Round) Message() text.Text { return msgInvalid }

func (f Round) Filter(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v, false
	}
	p := math.Pow10(f.Places)
	return math.Round(v*p) / p, true
}
