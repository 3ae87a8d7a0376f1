package property

import (
	"fmt"
	"sync"

	"github.com/dmitrymomot/kit/pkg/input"
	"github.com/dmitrymomot/kit/pkg/logger"
)

// Option configures a Property.
type Option[T any] func(*Property[T])

// Default sets the value returned before the property is written.
func Default[T any](v T) Option[T] {
	return DefaultFunc(func() (T, error) { return v, nil })
}

// DefaultFunc sets a provider called on the first read of an unwritten
// property. Its result is cached.
func DefaultFunc[T any](fn func() (T, error)) Option[T] {
	return func(p *Property[T]) {
		p.defaultFn = fn
	}
}

// Required makes the property mandatory in Manager.Initialize and ignores
// any default.
func Required[T any]() Option[T] {
	return func(p *Property[T]) {
		p.required = true
	}
}

// WithEvaluator validates and transforms written values.
func WithEvaluator[T any](fn func(T) (T, bool)) Option[T] {
	return func(p *Property[T]) {
		p.evaluate = func(v T) (T, error) {
			out, ok := fn(v)
			if !ok {
				return v, ErrInvalidValue
			}
			return out, nil
		}
		p.coerce = p.assertThenEvaluate
	}
}

// WithInput runs written values through in. Untyped writes made through
// the Manager are coerced by the input's prototype.
func WithInput[T any](in *input.Input[T]) Option[T] {
	run := func(raw any) (T, error) {
		v, _, err := in.Evaluate(raw)
		if err != nil {
			return v, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		return v, nil
	}
	return func(p *Property[T]) {
		p.evaluate = func(v T) (T, error) { return run(v) }
		p.coerce = run
	}
}

// WithBinding stores the value through get and set instead of inside the
// property.
func WithBinding[T any](get func() T, set func(T)) Option[T] {
	return func(p *Property[T]) {
		p.get = get
		p.set = set
	}
}

// BindField stores the value in *ptr.
func BindField[T any](ptr *T) Option[T] {
	return WithBinding(
		func() T { return *ptr },
		func(v T) { *ptr = v },
	)
}

// Property is a single managed value.
type Property[T any] struct {
	manager  *Manager
	name     string
	declared Mode
	required bool

	defaultFn func() (T, error)
	evaluate  func(T) (T, error)
	coerce    func(any) (T, error)
	get       func() T
	set       func(T)

	mu          sync.Mutex
	value       T
	defaulted   bool
	initialized bool
}

func (p *Property[T]) Name() string { return p.name }

// DeclaredMode returns the mode given at registration.
func (p *Property[T]) DeclaredMode() Mode { return p.declared }

// Mode returns the effective mode, capped by the manager mode.
func (p *Property[T]) Mode() Mode {
	return p.declared.Intersect(p.manager.Mode())
}

// IsInitialized reports whether a value has been written. Cached defaults
// do not count.
func (p *Property[T]) IsInitialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Get returns the written value, or the default when nothing was written.
func (p *Property[T]) Get() (T, error) {
	phase, mode := p.manager.state()
	if phase != PhaseInitializing && !p.declared.Intersect(mode).CanRead() {
		var zero T
		return zero, newError(p.name, "get", ErrNotReadable)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.load()
}

func (p *Property[T]) load() (T, error) {
	var zero T
	if p.initialized || p.defaulted {
		return p.current(), nil
	}
	if p.required || p.defaultFn == nil {
		return zero, newError(p.name, "get", ErrRequired)
	}
	v, err := p.defaultFn()
	if err != nil {
		return zero, newError(p.name, "default", err)
	}
	p.store(v)
	p.defaulted = true
	return v, nil
}

// Set evaluates v and stores the result.
func (p *Property[T]) Set(v T) error {
	return p.write(func() (T, error) { return p.evaluate(v) })
}

func (p *Property[T]) write(eval func() (T, error)) error {
	phase, mode := p.manager.state()
	log := p.manager.logger

	p.mu.Lock()
	defer p.mu.Unlock()

	if phase != PhaseInitializing {
		eff := p.declared.Intersect(mode)
		if !eff.CanWrite() {
			return newError(p.name, "set", ErrNotWritable)
		}
		if eff.Once() && p.initialized {
			return newError(p.name, "set", ErrNotMutable)
		}
	}

	v, err := eval()
	if err != nil {
		log.Debug("property rejected value", logger.Property(p.name), logger.Error(err))
		return newError(p.name, "set", err)
	}

	p.store(v)
	p.initialized = true
	p.defaulted = false
	log.Debug("property set", logger.Property(p.name), logger.Phase(phase))
	return nil
}

func (p *Property[T]) current() T {
	if p.get != nil {
		return p.get()
	}
	return p.value
}

func (p *Property[T]) store(v T) {
	p.value = v
	if p.set != nil {
		p.set(v)
	}
}

func (p *Property[T]) identity(v T) (T, error) { return v, nil }

func (p *Property[T]) assertThenEvaluate(raw any) (T, error) {
	v, ok := raw.(T)
	if !ok {
		return v, fmt.Errorf("%w: got %T, want %T", ErrTypeMismatch, raw, v)
	}
	return p.evaluate(v)
}

// entry is the untyped view the manager keeps of a Property.
type entry interface {
	Name() string
	DeclaredMode() Mode
	IsInitialized() bool
	isRequired() bool
	getAny() (any, error)
	setAny(raw any) error
	reset()
}

func (p *Property[T]) isRequired() bool { return p.required }

func (p *Property[T]) getAny() (any, error) {
	return p.Get()
}

func (p *Property[T]) setAny(raw any) error {
	return p.write(func() (T, error) { return p.coerce(raw) })
}

func (p *Property[T]) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	var zero T
	p.value = zero
	p.defaulted = false
	p.initialized = false
}
