package input_test

import (
	"strconv"

	"github.com/dmitrymomot/kit/pkg/input"
	"github.com/dmitrymomot/kit/pkg/text"
)

var msgNumber = text.New("test.number", "must be a number")

// numberProto is a minimal integer prototype used across the package tests.
type numberProto struct {
	*input.Registry[int]
}

func newNumberProto() *numberProto {
	return &numberProto{Registry: input.NewRegistry[int]()}
}

func (p *numberProto) Name() string { return "number" }

func (p *numberProto) Message() text.Text { return msgNumber }

func (p *numberProto) Evaluate(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	default:
		return 0, false
	}
}

// silentProto has no message so fallbacks can be observed.
type silentProto struct {
	*numberProto
}

func (silentProto) Message() text.Text { return text.Text{} }

func positive() input.Constraint[int] {
	return input.ConstraintFunc("positive", text.New("test.positive", "must be positive"), func(v int) bool { return v > 0 })
}

func below(n int) input.Constraint[int] {
	return input.ConstraintFunc("below", text.New("test.below", "must be below %{n}", "n", n), func(v int) bool { return v < n })
}

func even() input.Constraint[int] {
	return input.ConstraintFunc("even", text.New("test.even", "must be even"), func(v int) bool { return v%2 == 0 })
}

func double() input.Filter[int] {
	return input.FilterFunc("double", func(v int) int { return v * 2 })
}

type dict map[string]string

func (d dict) HasTranslation(lang, key string) bool {
	_, ok := d[lang+":"+key]
	return ok
}

func (d dict) T(lang, key string, _ ...string) string {
	return d[lang+":"+key]
}
