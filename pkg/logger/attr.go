package logger

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". Nil yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Input records the input name. Empty names yield an empty Attr.
func Input(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("input", name)
}

// Prototype records the prototype backing a component.
func Prototype(name string) slog.Attr {
	return slog.String("prototype", name)
}

func Modifier(name string) slog.Attr {
	return slog.String("modifier", name)
}

func Priority(p int) slog.Attr {
	return slog.Int("priority", p)
}

// Stage records a pipeline stage (evaluate, before, modifiers, after).
func Stage(name string) slog.Attr {
	return slog.String("stage", name)
}

// Value records a raw value in %#v form, which keeps its Go type visible.
func Value(v any) slog.Attr {
	return slog.String("value", fmt.Sprintf("%#v", v))
}

// Failures records how many stages rejected a value.
func Failures(n int) slog.Attr {
	return slog.Int("failures", n)
}

func Property(name string) slog.Attr {
	return slog.String("property", name)
}

// Phase records a property manager lifecycle phase.
func Phase(name fmt.Stringer) slog.Attr {
	return slog.String("phase", name.String())
}

// Mode records an access mode.
func Mode(name fmt.Stringer) slog.Attr {
	return slog.String("mode", name.String())
}

// Enumeration records an enumeration name.
func Enumeration(name string) slog.Attr {
	return slog.String("enum", name)
}

// Lang records a language tag.
func Lang(tag string) slog.Attr {
	return slog.String("lang", tag)
}
