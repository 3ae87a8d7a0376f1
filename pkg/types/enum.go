package types

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/kit/pkg/constraint"
	"github.com/dmitrymomot/kit/pkg/enum"
	"github.com/dmitrymomot/kit/pkg/input"
	"github.com/dmitrymomot/kit/pkg/text"
)

// EnumChoice is the property form of the enum "choice" constraint.
// Values are entry names.
type EnumChoice struct {
	Values []string `mapstructure:"values"`
}

// Enum returns a prototype for values of e. A raw value is accepted when
// it is a declared name, or a declared value of type V. Names win when V
// is string and a raw value is both.
func Enum[V comparable](e *enum.Enumeration[V]) *Prototype[V] {
	msg := text.New("types.enum", "must be one of: %{values}",
		"values", strings.Join(e.Names(), ", "))

	p := NewPrototype("enum:"+e.EnumName(), msg, func(raw any) (V, bool) {
		if name, ok := raw.(string); ok {
			if v, err := e.Value(name); err == nil {
				return v, true
			}
		}
		if v, ok := raw.(V); ok && e.HasValue(v) {
			return v, true
		}
		var zero V
		return zero, false
	})
	p.Register("choice", input.ConstraintFactory(func(o EnumChoice) (input.Constraint[V], error) {
		if len(o.Values) == 0 {
			return nil, constraint.ErrEmptyChoice
		}
		values := make([]V, 0, len(o.Values))
		for _, name := range o.Values {
			v, err := e.Value(name)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", constraint.ErrInvalidOption, err)
			}
			values = append(values, v)
		}
		return constraint.Choice[V]{Values: values}, nil
	}))
	return p
}
