package enum

import (
	"fmt"
	"sort"
	"sync"
)

// Descriptor is the type-erased view of an Enumeration used by the registry.
type Descriptor interface {
	EnumName() string
	Len() int
	Names() []string
	Describe() []Entry[string]
	Lookup(name string) (string, error)
}

var registry = struct {
	mu    sync.RWMutex
	enums map[string]Descriptor
}{enums: make(map[string]Descriptor)}

// Register adds d to the process-wide registry under its name.
func Register(d Descriptor) error {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	name := d.EnumName()
	if _, ok := registry.enums[name]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}
	registry.enums[name] = d
	return nil
}

// MustRegister is like Register but panics on error. It returns d so it can
// wrap package-level declarations.
func MustRegister[D Descriptor](d D) D {
	if err := Register(d); err != nil {
		panic(err)
	}
	return d
}

// Lookup returns the registered enumeration named name.
func Lookup(name string) (Descriptor, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	d, ok := registry.enums[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEnumeration, name)
	}
	return d, nil
}

// Registered returns the sorted names of all registered enumerations.
func Registered() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	names := make([]string, 0, len(registry.enums))
	for name := range registry.enums {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortEntries[V comparable](entries []Entry[V]) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
}
