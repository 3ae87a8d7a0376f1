package constraint

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/kit/pkg/text"
)

// Choice requires the value to be one of Values.
type Choice[T comparable] struct {
	Values []T `mapstructure:"values"`
}

// OneOf returns a Choice over values.
func OneOf[T comparable](values ...T) Choice[T] {
	return Choice[T]{Values: values}
}

func (c Choice[T]) Validate() error {
	if len(c.Values) == 0 {
		return ErrEmptyChoice
	}
	return nil
}

func (Choice[T]) Name() string { return "choice" }

func (c Choice[T]) Check(v T) bool {
	return slices.Contains(c.Values, v)
}

func (c Choice[T]) Message() text.Text {
	parts := make([]string, len(c.Values))
	for i, v := range c.Values {
		parts[i] = fmt.Sprint(v)
	}
	return text.New("constraint.choice", "must be one of: %{values}", "values", strings.Join(parts, ", "))
}
