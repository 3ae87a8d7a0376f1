// Package property implements lazily initialized, access-controlled
// properties grouped under a Manager.
//
// Each property declares a Mode. The manager carries a global mode as well,
// and the effective mode of a property is the intersection of the two, so a
// manager restricted to ReadOnly caps every property to ReadOnly.
//
//	m := property.NewManager(property.ReadWrite)
//	name, _ := property.Register[string](m, "name", property.WriteOnce)
//	port, _ := property.Register(m, "port", property.ReadWrite,
//		property.Default(8080),
//		property.WithInput(input.Must(types.Integer())),
//	)
//
//	_ = m.Initialize(map[string]any{"name": "api"})
//	v, _ := port.Get() // 8080
//	_ = name.Set("other") // ErrNotMutable
//
// The manager moves through three phases: uninitialized, initializing and
// initialized. While Initialize runs, writes ignore access modes so that
// read-only properties can receive their initial values; evaluators still
// apply. Initialize runs at most once.
//
// Errors returned by this package are programmer errors. They are *Error
// values wrapping one of the sentinel errors, so errors.Is works as usual.
package property
