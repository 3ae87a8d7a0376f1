package input

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/dmitrymomot/kit/pkg/component"
	"github.com/dmitrymomot/kit/pkg/logger"
	"github.com/dmitrymomot/kit/pkg/text"
)

// Stage selects where a custom evaluator runs relative to the modifiers.
type Stage int

const (
	StageBefore Stage = iota
	StageAfter
)

func (s Stage) String() string {
	if s == StageAfter {
		return "after"
	}
	return "before"
}

// Evaluator is a custom pipeline stage.
type Evaluator[T any] func(value T) (T, bool)

// Option configures an Input.
type Option func(*config)

type config struct {
	name     string
	nullable bool
	logger   *slog.Logger
}

// WithName names the input for messages and logs.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithNullable lets SetValue accept nil.
func WithNullable(nullable bool) Option {
	return func(c *config) { c.nullable = nullable }
}

// WithLogger logs rejected values at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Input is a component that validates and stores a single value.
type Input[T any] struct {
	component.Component[Prototype[T]]

	name     string
	nullable bool
	logger   *slog.Logger

	value       T
	null        bool
	initialized bool
	err         *Error

	modifiers tree[T]
	before    tree[T]
	after     tree[T]
}

// New creates an Input backed by prototype.
func New[T any](prototype Prototype[T], opts ...Option) (*Input[T], error) {
	c, err := component.New(prototype)
	if err != nil {
		return nil, err
	}

	cfg := config{logger: logger.Discard()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Input[T]{
		Component: c,
		name:      cfg.name,
		nullable:  cfg.nullable,
		logger:    cfg.logger,
	}, nil
}

// Must is like New but panics on error.
func Must[T any](prototype Prototype[T], opts ...Option) *Input[T] {
	in, err := New(prototype, opts...)
	if err != nil {
		panic(err)
	}
	return in
}

func (in *Input[T]) Name() string { return in.name }

func (in *Input[T]) Nullable() bool { return in.nullable }

// AddModifier attaches m. Options override its priority or message.
func (in *Input[T]) AddModifier(m Modifier[T], opts ...ModifierOption) *Input[T] {
	m = Configure(m, opts...)
	in.modifiers.add(stage[T]{
		name:     m.Name(),
		priority: m.Priority(),
		message:  m.Message(),
		fn:       m.Modify,
	})
	return in
}

// AddConstraint attaches a constraint instance.
func (in *Input[T]) AddConstraint(c Constraint[T], opts ...ModifierOption) *Input[T] {
	return in.AddModifier(NewConstraint(c, opts...))
}

// AddFilter attaches a filter instance.
func (in *Input[T]) AddFilter(f Filter[T], opts ...ModifierOption) *Input[T] {
	return in.AddModifier(NewFilter(f, opts...))
}

// AddNamed builds a modifier through the prototype factory and attaches it.
func (in *Input[T]) AddNamed(name string, props map[string]any, opts ...ModifierOption) error {
	m, err := in.Prototype().Modifier(name, props)
	if err != nil {
		return err
	}
	in.AddModifier(m, opts...)
	return nil
}

// AddFactory builds a modifier with factory and attaches it.
func (in *Input[T]) AddFactory(factory Factory[T], props map[string]any, opts ...ModifierOption) error {
	m, err := factory(props)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrNilModifier
	}
	in.AddModifier(m, opts...)
	return nil
}

// AddEvaluator attaches a custom stage before or after the modifiers.
func (in *Input[T]) AddEvaluator(s Stage, name string, fn Evaluator[T], opts ...ModifierOption) *Input[T] {
	cfg := applyModifierOptions(opts)
	st := stage[T]{name: name, priority: cfg.priority, message: cfg.message, fn: fn}
	if s == StageAfter {
		in.after.add(st)
	} else {
		in.before.add(st)
	}
	return in
}

// Modifiers returns the modifier names in execution order.
func (in *Input[T]) Modifiers() []string {
	names := make([]string, 0, in.modifiers.len())
	for _, tier := range in.modifiers.ordered() {
		for _, s := range tier {
			names = append(names, s.name)
		}
	}
	return names
}

// Evaluate runs the pipeline on raw without touching the input state.
// A nil error with null=true means raw was nil and the input is nullable.
func (in *Input[T]) Evaluate(raw any) (value T, null bool, err *Error) {
	if isNull(raw) {
		if in.nullable {
			return value, true, nil
		}
		return value, false, newError(raw, stageMessenger("input", "required", 0, MsgRequired, raw))
	}

	proto := in.Prototype()
	v, ok := proto.Evaluate(raw)
	if !ok {
		return value, false, newError(raw, stageMessenger("prototype", proto.Name(), 0, proto.Message(), raw))
	}

	for _, step := range []struct {
		kind string
		tree *tree[T]
	}{
		{"before", &in.before},
		{"modifier", &in.modifiers},
		{"after", &in.after},
	} {
		var failed []Messenger
		v, failed = step.tree.run(step.kind, v, raw)
		if len(failed) > 0 {
			return value, false, newError(raw, failed...)
		}
	}
	return v, false, nil
}

// SetValue runs the pipeline on raw and stores the result on success.
// On failure the previous value is kept and Error describes the rejection.
func (in *Input[T]) SetValue(raw any) bool {
	in.err = nil

	v, null, err := in.Evaluate(raw)
	if err != nil {
		in.err = err
		in.logger.Debug("input rejected value",
			logger.Input(in.name),
			logger.Prototype(in.PrototypeName()),
			logger.Value(raw),
			logger.Failures(err.Len()),
		)
		return false
	}

	in.value = v
	in.null = null
	in.initialized = true
	return true
}

// Value returns the stored value. For a null value it returns the zero T.
func (in *Input[T]) Value() (T, error) {
	if !in.initialized {
		var zero T
		if in.name != "" {
			return zero, fmt.Errorf("%w: %s", ErrNotInitialized, in.name)
		}
		return zero, ErrNotInitialized
	}
	return in.value, nil
}

// MustValue is like Value but panics when the input is not initialized.
func (in *Input[T]) MustValue() T {
	v, err := in.Value()
	if err != nil {
		panic(err)
	}
	return v
}

func (in *Input[T]) IsNull() bool { return in.initialized && in.null }

func (in *Input[T]) Initialized() bool { return in.initialized }

// Valid reports whether the last SetValue succeeded.
func (in *Input[T]) Valid() bool { return in.err == nil }

// Error returns the failure of the last SetValue, or nil.
func (in *Input[T]) Error() *Error { return in.err }

// ErrorMessage renders the last failure. It falls back to the prototype
// message and then to the generic "invalid value" message. It returns ""
// when the last SetValue succeeded.
func (in *Input[T]) ErrorMessage(opts text.Options) string {
	if in.err == nil {
		return ""
	}
	if msg := in.err.Message(opts); msg != "" {
		return msg
	}
	if msg := in.Prototype().Message(); !msg.IsZero() {
		if s := opts.Render(msg); s != "" {
			return s
		}
	}
	return opts.Render(MsgInvalid)
}

// Reset drops the stored value and the last error.
func (in *Input[T]) Reset() {
	var zero T
	in.value = zero
	in.null = false
	in.initialized = false
	in.err = nil
}

func isNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
