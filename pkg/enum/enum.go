package enum

import (
	"fmt"
	"sync"
)

// Entry is a single named constant.
type Entry[V comparable] struct {
	Name  string
	Value V
}

// Enumeration is an ordered, closed set of named constants.
type Enumeration[V comparable] struct {
	name    string
	entries []Entry[V]

	once    sync.Once
	byName  map[string]V
	byValue map[V]string
}

// New declares an enumeration. It panics on empty or duplicate names.
func New[V comparable](name string, entries ...Entry[V]) *Enumeration[V] {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			panic(fmt.Errorf("enum %s: empty entry name", name))
		}
		if _, dup := seen[e.Name]; dup {
			panic(fmt.Errorf("enum %s: duplicate entry name %q", name, e.Name))
		}
		seen[e.Name] = struct{}{}
	}

	cp := make([]Entry[V], len(entries))
	copy(cp, entries)
	return &Enumeration[V]{name: name, entries: cp}
}

// FromMap declares an enumeration from a map. Entries are ordered by name.
func FromMap[V comparable](name string, m map[string]V) *Enumeration[V] {
	entries := make([]Entry[V], 0, len(m))
	for n, v := range m {
		entries = append(entries, Entry[V]{Name: n, Value: v})
	}
	sortEntries(entries)
	return New(name, entries...)
}

func (e *Enumeration[V]) build() {
	e.once.Do(func() {
		e.byName = make(map[string]V, len(e.entries))
		e.byValue = make(map[V]string, len(e.entries))
		for _, entry := range e.entries {
			e.byName[entry.Name] = entry.Value
			if _, ok := e.byValue[entry.Value]; !ok {
				e.byValue[entry.Value] = entry.Name
			}
		}
	})
}

// EnumName returns the name the enumeration was declared with.
func (e *Enumeration[V]) EnumName() string {
	return e.name
}

// Value returns the value declared under name.
func (e *Enumeration[V]) Value(name string) (V, error) {
	e.build()
	v, ok := e.byName[name]
	if !ok {
		var zero V
		return zero, &LookupError{Enumeration: e.name, Key: name, Err: ErrUnknownName}
	}
	return v, nil
}

// Name returns the first name declared for value.
func (e *Enumeration[V]) Name(value V) (string, error) {
	e.build()
	n, ok := e.byValue[value]
	if !ok {
		return "", &LookupError{Enumeration: e.name, Key: value, Err: ErrUnknownValue}
	}
	return n, nil
}

// MustValue is like Value but panics on unknown names.
func (e *Enumeration[V]) MustValue(name string) V {
	v, err := e.Value(name)
	if err != nil {
		panic(err)
	}
	return v
}

// MustName is like Name but panics on unknown values.
func (e *Enumeration[V]) MustName(value V) string {
	n, err := e.Name(value)
	if err != nil {
		panic(err)
	}
	return n
}

func (e *Enumeration[V]) HasName(name string) bool {
	e.build()
	_, ok := e.byName[name]
	return ok
}

func (e *Enumeration[V]) HasValue(value V) bool {
	e.build()
	_, ok := e.byValue[value]
	return ok
}

// Names returns the names in declaration order.
func (e *Enumeration[V]) Names() []string {
	names := make([]string, len(e.entries))
	for i, entry := range e.entries {
		names[i] = entry.Name
	}
	return names
}

// Values returns the values in declaration order, including repeats.
func (e *Enumeration[V]) Values() []V {
	values := make([]V, len(e.entries))
	for i, entry := range e.entries {
		values[i] = entry.Value
	}
	return values
}

// Entries returns a copy of the declared entries.
func (e *Enumeration[V]) Entries() []Entry[V] {
	cp := make([]Entry[V], len(e.entries))
	copy(cp, e.entries)
	return cp
}

func (e *Enumeration[V]) Len() int {
	return len(e.entries)
}

// Describe lists entries as name/value strings for tooling.
func (e *Enumeration[V]) Describe() []Entry[string] {
	out := make([]Entry[string], len(e.entries))
	for i, entry := range e.entries {
		out[i] = Entry[string]{Name: entry.Name, Value: fmt.Sprint(entry.Value)}
	}
	return out
}

// Lookup resolves a name to its formatted value for tooling.
func (e *Enumeration[V]) Lookup(name string) (string, error) {
	v, err := e.Value(name)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(v), nil
}
