package types

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/kit/pkg/text"
)

var MsgBoolean = text.New("types.boolean", "must be a boolean")

var boolWords = map[string]bool{
	"true": true, "1": true, "yes": true, "on": true, "y": true, "t": true,
	"false": false, "0": false, "no": false, "off": false, "n": false, "f": false,
}

// Boolean returns the bool prototype. It has no modifiers.
func Boolean() *Prototype[bool] {
	return NewPrototype("boolean", MsgBoolean, coerceBoolean)
}

func coerceBoolean(raw any) (bool, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		b, ok := boolWords[strings.ToLower(strings.TrimSpace(v))]
		return b, ok
	}
	n, err := cast.ToFloat64E(raw)
	if err != nil {
		return false, false
	}
	switch n {
	case 0:
		return false, true
	case 1:
		return true, true
	}
	return false, false
}
