package property

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/kit/pkg/logger"
)

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger logs phase transitions and writes at debug level.
func WithLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger.OrDiscard(l)
	}
}

// Manager owns a set of properties and their shared mode and phase.
type Manager struct {
	mu     sync.RWMutex
	mode   Mode
	phase  lifecycle
	props  map[string]entry
	order  []string
	logger *slog.Logger
}

// NewManager creates a manager with the given global mode.
func NewManager(mode Mode, opts ...ManagerOption) *Manager {
	m := &Manager{
		mode:   mode.normalize(),
		props:  make(map[string]entry),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Register adds a property named name with the declared mode.
// Without a default, reading the property before it is written fails with
// ErrRequired. Without an evaluator or input, untyped writes must carry a T.
func Register[T any](m *Manager, name string, mode Mode, opts ...Option[T]) (*Property[T], error) {
	p := &Property[T]{manager: m, name: name, declared: mode.normalize()}
	p.evaluate = p.identity
	p.coerce = p.assertThenEvaluate
	for _, opt := range opts {
		opt(p)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.props[name]; ok {
		return nil, newError(name, "register", ErrAlreadyRegistered)
	}
	m.props[name] = p
	m.order = append(m.order, name)
	return p, nil
}

// MustRegister is like Register but panics on error.
func MustRegister[T any](m *Manager, name string, mode Mode, opts ...Option[T]) *Property[T] {
	p, err := Register(m, name, mode, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Lookup returns the typed property registered under name.
func Lookup[T any](m *Manager, name string) (*Property[T], error) {
	e, err := m.entry(name, "lookup")
	if err != nil {
		return nil, err
	}
	p, ok := e.(*Property[T])
	if !ok {
		var zero T
		return nil, newError(name, "lookup", fmt.Errorf("%w: want %T", ErrTypeMismatch, zero))
	}
	return p, nil
}

func (m *Manager) entry(name, op string) (entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.props[name]
	if !ok {
		return nil, newError(name, op, ErrUnknownProperty)
	}
	return e, nil
}

func (m *Manager) state() (Phase, Mode) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.phase.current, m.mode
}

func (m *Manager) Mode() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mode
}

func (m *Manager) Phase() Phase {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.phase.current
}

// Names returns property names in registration order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Get reads a property without knowing its type.
func (m *Manager) Get(name string) (any, error) {
	e, err := m.entry(name, "get")
	if err != nil {
		return nil, err
	}
	return e.getAny()
}

// Set writes a property without knowing its type. Properties with an
// input coerce v through its prototype; others require a value of their
// own type.
func (m *Manager) Set(name string, v any) error {
	e, err := m.entry(name, "set")
	if err != nil {
		return err
	}
	return e.setAny(v)
}

// Restrict narrows the global mode. Widening fails with
// ErrInvalidModeTransition.
func (m *Manager) Restrict(mode Mode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !mode.Narrows(m.mode) {
		return newError("", "restrict", fmt.Errorf("%w: %s to %s", ErrInvalidModeTransition, m.mode, mode))
	}
	old := m.mode
	m.mode = mode.normalize()
	m.logger.Debug("property mode restricted", logger.Group("mode",
		slog.String("from", old.String()),
		slog.String("to", m.mode.String()),
	))
	return nil
}

// Initialize writes the initial values. Access modes are not enforced
// while it runs, so read-only properties can be set. Every key must name
// a registered property and every required property must be present.
//
// On failure the written properties are reset and Initialize may be
// called again. Bound fields keep what was written to them.
// On success later calls fail with ErrAlreadyInitialized.
func (m *Manager) Initialize(values map[string]any) error {
	m.mu.Lock()
	if err := m.fire(eventBegin); err != nil {
		m.mu.Unlock()
		return newError("", "initialize", fmt.Errorf("%w: %w", ErrAlreadyInitialized, err))
	}
	entries := make([]entry, len(m.order))
	for i, name := range m.order {
		entries[i] = m.props[name]
	}
	m.mu.Unlock()

	if err := m.initialize(entries, values); err != nil {
		m.mu.Lock()
		_ = m.fire(eventAbort)
		m.mu.Unlock()
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fire(eventComplete)
}

func (m *Manager) initialize(entries []entry, values map[string]any) error {
	known := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		known[e.Name()] = struct{}{}
	}
	for name := range values {
		if _, ok := known[name]; !ok {
			return newError(name, "initialize", ErrUnknownProperty)
		}
	}
	for _, e := range entries {
		if _, ok := values[e.Name()]; !ok && e.isRequired() {
			return newError(e.Name(), "initialize", ErrRequired)
		}
	}

	written := make([]entry, 0, len(values))
	for _, e := range entries {
		raw, ok := values[e.Name()]
		if !ok {
			continue
		}
		if err := e.setAny(raw); err != nil {
			for _, w := range written {
				w.reset()
			}
			return err
		}
		written = append(written, e)
	}
	return nil
}

// fire must be called with m.mu held.
func (m *Manager) fire(e event) error {
	from, to, err := m.phase.fire(e)
	if err != nil {
		return err
	}
	m.logger.Debug("property phase changed",
		slog.String("from", from.String()),
		logger.Phase(to),
	)
	return nil
}
