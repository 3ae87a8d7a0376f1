package input

import "github.com/dmitrymomot/kit/pkg/text"

// Modifier is a single pipeline stage attached to an Input.
type Modifier[T any] interface {
	Name() string
	// Priority orders stages; higher runs first.
	Priority() int
	// Modify returns the (possibly transformed) value and whether it passed.
	Modify(value T) (T, bool)
	Message() text.Text
}

// Constraint is a pass/fail predicate.
type Constraint[T any] interface {
	Name() string
	Check(value T) bool
	Message() text.Text
}

// Filter transforms a value. It reports false when it cannot process it.
type Filter[T any] interface {
	Name() string
	Filter(value T) (T, bool)
	Message() text.Text
}

// Prioritized is implemented by constraints and filters that carry a
// default priority.
type Prioritized interface {
	Priority() int
}

// ModifierOption overrides modifier attributes at attach time.
type ModifierOption func(*modifierConfig)

type modifierConfig struct {
	priority    int
	hasPriority bool
	message     text.Text
}

// WithPriority sets the priority, overriding any default.
func WithPriority(p int) ModifierOption {
	return func(c *modifierConfig) {
		c.priority = p
		c.hasPriority = true
	}
}

// WithMessage replaces the failure message.
func WithMessage(msg text.Text) ModifierOption {
	return func(c *modifierConfig) {
		c.message = msg
	}
}

func applyModifierOptions(opts []ModifierOption) modifierConfig {
	var cfg modifierConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

type modifier[T any] struct {
	name     string
	priority int
	message  text.Text
	fn       func(T) (T, bool)
}

func (m *modifier[T]) Name() string         { return m.name }
func (m *modifier[T]) Priority() int        { return m.priority }
func (m *modifier[T]) Message() text.Text   { return m.message }
func (m *modifier[T]) Modify(v T) (T, bool) { return m.fn(v) }

func defaultPriority(v any) int {
	if p, ok := v.(Prioritized); ok {
		return p.Priority()
	}
	return 0
}

// NewConstraint wraps c as a Modifier.
func NewConstraint[T any](c Constraint[T], opts ...ModifierOption) Modifier[T] {
	cfg := applyModifierOptions(opts)
	m := &modifier[T]{
		name:     c.Name(),
		priority: defaultPriority(c),
		message:  c.Message(),
		fn: func(v T) (T, bool) {
			return v, c.Check(v)
		},
	}
	return configured(cfg, m)
}

// NewFilter wraps f as a Modifier.
func NewFilter[T any](f Filter[T], opts ...ModifierOption) Modifier[T] {
	cfg := applyModifierOptions(opts)
	m := &modifier[T]{
		name:     f.Name(),
		priority: defaultPriority(f),
		message:  f.Message(),
		fn:       f.Filter,
	}
	return configured(cfg, m)
}

// Configure returns m with opts applied. Without options m is returned as is.
func Configure[T any](m Modifier[T], opts ...ModifierOption) Modifier[T] {
	if len(opts) == 0 {
		return m
	}
	return configured(applyModifierOptions(opts), &modifier[T]{
		name:     m.Name(),
		priority: m.Priority(),
		message:  m.Message(),
		fn:       m.Modify,
	})
}

func configured[T any](cfg modifierConfig, m *modifier[T]) Modifier[T] {
	if cfg.hasPriority {
		m.priority = cfg.priority
	}
	if !cfg.message.IsZero() {
		m.message = cfg.message
	}
	return m
}

// ConstraintFunc adapts a predicate to a Constraint.
func ConstraintFunc[T any](name string, msg text.Text, fn func(T) bool) Constraint[T] {
	return &funcConstraint[T]{name: name, msg: msg, fn: fn}
}

type funcConstraint[T any] struct {
	name string
	msg  text.Text
	fn   func(T) bool
}

func (c *funcConstraint[T]) Name() string       { return c.name }
func (c *funcConstraint[T]) Message() text.Text { return c.msg }
func (c *funcConstraint[T]) Check(v T) bool     { return c.fn(v) }

// FilterFunc adapts a transform to a Filter that never fails.
func FilterFunc[T any](name string, fn func(T) T) Filter[T] {
	return &funcFilter[T]{name: name, fn: func(v T) (T, bool) { return fn(v), true }}
}

type funcFilter[T any] struct {
	name string
	fn   func(T) (T, bool)
}

func (f *funcFilter[T]) Name() string         { return f.name }
func (f *funcFilter[T]) Message() text.Text   { return MsgInvalid }
func (f *funcFilter[T]) Filter(v T) (T, bool) { return f.fn(v) }
