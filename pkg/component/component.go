// Package component implements the component/prototype object model.
//
// A prototype carries the actual behaviour of a component: how a value type
// is evaluated, which modifiers it knows, and so on. A Component owns exactly
// one prototype and is the stable, public-facing API on top of it, so
// prototypes can be swapped without changing call sites.
package component

import (
	"errors"
	"reflect"
)

// ErrNilPrototype is returned when a component is built without a prototype.
var ErrNilPrototype = errors.New("component: prototype is nil")

// Prototype is the minimal contract of anything pluggable into a Component.
type Prototype interface {
	Name() string
}

// Component owns a single prototype.
type Component[P Prototype] struct {
	prototype P
}

// New wraps prototype. Nil interfaces and typed nil pointers are rejected.
func New[P Prototype](prototype P) (Component[P], error) {
	if isNil(prototype) {
		return Component[P]{}, ErrNilPrototype
	}
	return Component[P]{prototype: prototype}, nil
}

// Must is like New but panics on error.
func Must[P Prototype](prototype P) Component[P] {
	c, err := New(prototype)
	if err != nil {
		panic(err)
	}
	return c
}

// Prototype returns the owned prototype.
func (c Component[P]) Prototype() P {
	return c.prototype
}

// PrototypeName returns the name of the owned prototype.
func (c Component[P]) PrototypeName() string {
	if isNil(c.prototype) {
		return ""
	}
	return c.prototype.Name()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
