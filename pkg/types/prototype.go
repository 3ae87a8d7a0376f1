package types

import (
	"github.com/dmitrymomot/kit/pkg/input"
	"github.com/dmitrymomot/kit/pkg/text"
)

// Coercer converts a non-nil raw value into T.
type Coercer[T any] func(raw any) (T, bool)

// Prototype is an input.Prototype assembled from a coercer and a modifier
// registry. Register adds custom modifiers by name.
type Prototype[T any] struct {
	*input.Registry[T]

	name    string
	message text.Text
	coerce  Coercer[T]
}

// NewPrototype builds a prototype with an empty modifier registry.
func NewPrototype[T any](name string, message text.Text, coerce Coercer[T]) *Prototype[T] {
	return &Prototype[T]{
		Registry: input.NewRegistry[T](),
		name:     name,
		message:  message,
		coerce:   coerce,
	}
}

func (p *Prototype[T]) Name() string { return p.name }

func (p *Prototype[T]) Message() text.Text { return p.message }

func (p *Prototype[T]) Evaluate(raw any) (T, bool) {
	return p.coerce(raw)
}

type validator interface {
	Validate() error
}

func validate(v any) error {
	if val, ok := v.(validator); ok {
		return val.Validate()
	}
	return nil
}

// constraintOf decodes props straight into the constraint struct C.
func constraintOf[T any, C input.Constraint[T]]() input.Factory[T] {
	return input.ConstraintFactory(func(c C) (input.Constraint[T], error) {
		if err := validate(c); err != nil {
			return nil, err
		}
		return c, nil
	})
}

// filterOf decodes props straight into the filter struct F.
func filterOf[T any, F input.Filter[T]]() input.Factory[T] {
	return input.FilterFactory(func(f F) (input.Filter[T], error) {
		if err := validate(f); err != nil {
			return nil, err
		}
		return f, nil
	})
}
