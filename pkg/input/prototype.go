package input

import (
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"

	"github.com/dmitrymomot/kit/pkg/text"
)

// Prototype defines the base semantics of a value type.
type Prototype[T any] interface {
	Name() string
	// Evaluate coerces a raw, non-nil value into T.
	Evaluate(raw any) (T, bool)
	// Message describes a failed evaluation.
	Message() text.Text
	// Modifier builds a modifier known to the prototype by name.
	Modifier(name string, props map[string]any) (Modifier[T], error)
}

// Factory builds a modifier from properties.
type Factory[T any] func(props map[string]any) (Modifier[T], error)

// Registry maps modifier names to factories. Prototypes embed one to
// implement Prototype.Modifier.
type Registry[T any] struct {
	factories map[string]Factory[T]
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{factories: make(map[string]Factory[T])}
}

// Register adds a factory. It panics on duplicate names.
func (r *Registry[T]) Register(name string, f Factory[T]) *Registry[T] {
	if _, ok := r.factories[name]; ok {
		panic(fmt.Errorf("input: modifier %q registered twice", name))
	}
	r.factories[name] = f
	return r
}

// Modifier builds the modifier registered under name.
func (r *Registry[T]) Modifier(name string, props map[string]any) (Modifier[T], error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModifier, name)
	}
	m, err := f(props)
	if err != nil {
		return nil, fmt.Errorf("modifier %q: %w", name, err)
	}
	if m == nil {
		return nil, fmt.Errorf("modifier %q: %w", name, ErrNilModifier)
	}
	return m, nil
}

// Names returns the registered modifier names, sorted.
func (r *Registry[T]) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DecodeProps decodes modifier properties into out, a pointer to a struct
// with mapstructure tags. Input is weakly typed so string properties from
// the command line ("5", "true") decode into numbers and booleans.
// Unknown keys are rejected.
func DecodeProps(props map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "mapstructure",
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc("2006-01-02T15:04:05Z07:00"),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProps, err)
	}
	if err := dec.Decode(props); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProps, err)
	}
	return nil
}

// ConstraintFactory adapts a constructor taking decoded options.
func ConstraintFactory[T any, O any](build func(O) (Constraint[T], error)) Factory[T] {
	return func(props map[string]any) (Modifier[T], error) {
		var opts O
		if err := DecodeProps(props, &opts); err != nil {
			return nil, err
		}
		c, err := build(opts)
		if err != nil {
			return nil, err
		}
		return NewConstraint(c), nil
	}
}

// FilterFactory adapts a constructor taking decoded options.
func FilterFactory[T any, O any](build func(O) (Filter[T], error)) Factory[T] {
	return func(props map[string]any) (Modifier[T], error) {
		var opts O
		if err := DecodeProps(props, &opts); err != nil {
			return nil, err
		}
		f, err := build(opts)
		if err != nil {
			return nil, err
		}
		return NewFilter(f), nil
	}
}
