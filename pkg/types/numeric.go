package types

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/kit/pkg/constraint"
	"github.com/dmitrymomot/kit/pkg/filter"
	"github.com/dmitrymomot/kit/pkg/text"
)

var (
	MsgInteger = text.New("types.integer", "must be an integer")
	MsgFloat   = text.New("types.float", "must be a number")
)

// Integer returns the int64 prototype. It accepts integer types, floats
// without a fractional part and decimal strings ("42", "42.0").
func Integer() *Prototype[int64] {
	p := NewPrototype("integer", MsgInteger, coerceInteger)
	p.Register("range", constraintOf[int64, constraint.Range[int64]]()).
		Register("choice", constraintOf[int64, constraint.Choice[int64]]()).
		Register("multiple", constraintOf[int64, constraint.Multiple]()).
		Register("clamp", filterOf[int64, filter.Clamp[int64]]()).
		Register("abs", filterOf[int64, filter.Abs[int64]]())
	return p
}

// Float returns the float64 prototype. NaN and infinities are rejected.
func Float() *Prototype[float64] {
	p := NewPrototype("float", MsgFloat, coerceFloat)
	p.Register("range", constraintOf[float64, constraint.Range[float64]]()).
		Register("choice", constraintOf[float64, constraint.Choice[float64]]()).
		Register("clamp", filterOf[float64, filter.Clamp[float64]]()).
		Register("round", filterOf[float64, filter.Round]()).
		Register("abs", filterOf[float64, filter.Abs[float64]]())
	return p
}

func coerceInteger(raw any) (int64, bool) {
	switch v := raw.(type) {
	case bool:
		return 0, false
	case uint, uint64, uintptr:
		u, err := cast.ToUint64E(v)
		if err != nil || u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case float32:
		return integralFloat(float64(v))
	case float64:
		return integralFloat(v)
	case json.Number:
		return parseInteger(v.String())
	case string:
		return parseInteger(v)
	}
	n, err := cast.ToInt64E(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseInteger(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return integralFloat(f)
}

func integralFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	// 2^63 is the first float64 beyond the int64 range.
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func coerceFloat(raw any) (float64, bool) {
	var (
		f   float64
		err error
	)
	switch v := raw.(type) {
	case bool:
		return 0, false
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		f, err = cast.ToFloat64E(raw)
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
