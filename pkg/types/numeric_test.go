package types_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kit/pkg/constraint"
	"github.com/dmitrymomot/kit/pkg/input"
	"github.com/dmitrymomot/kit/pkg/types"
)

func TestInteger_Evaluate(t *testing.T) {
	t.Parallel()

	p := types.Integer()

	tests := []struct {
		name string
		raw  any
		want int64
		ok   bool
	}{
		{"int", 42, 42, true},
		{"int8", int8(-3), -3, true},
		{"uint", uint(7), 7, true},
		{"uint64 overflow", uint64(math.MaxUint64), 0, false},
		{"integral float", 12.0, 12, true},
		{"fractional float", 12.5, 0, false},
		{"decimal string", "123", 123, true},
		{"padded string", " -5 ", -5, true},
		{"float string", "10.0", 10, true},
		{"fractional string", "10.5", 0, false},
		{"leading zero is decimal", "010", 10, true},
		{"json number", json.Number("99"), 99, true},
		{"not a number", "abc", 0, false},
		{"bool", true, 0, false},
		{"nan", math.NaN(), 0, false},
		{"huge float", 1e20, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.Evaluate(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestInteger_NamedModifiers(t *testing.T) {
	t.Parallel()

	in := input.Must(types.Integer())
	require.NoError(t, in.AddNamed("abs", nil, input.WithPriority(10)))
	require.NoError(t, in.AddNamed("range", map[string]any{"min": 1, "max": "100"}))
	require.NoError(t, in.AddNamed("multiple", map[string]any{"of": 5}))

	require.True(t, in.SetValue("-25"))
	assert.Equal(t, int64(25), in.MustValue())

	assert.False(t, in.SetValue(7))
	assert.Equal(t, 1, in.Error().Len())

	assert.False(t, in.SetValue(103))
	assert.Equal(t, 2, in.Error().Len(), "both same-tier constraints report")

	assert.ErrorIs(t, in.AddNamed("multiple", map[string]any{"of": 0}), constraint.ErrInvalidBounds)
}

func TestFloat(t *testing.T) {
	t.Parallel()

	p := types.Float()

	for raw, want := range map[any]float64{
		1.25:               1.25,
		float32(0.5):       0.5,
		3:                  3,
		" 2.5e3 ":          2500,
		json.Number("1.1"): 1.1,
	} {
		got, ok := p.Evaluate(raw)
		require.True(t, ok, "%#v", raw)
		assert.Equal(t, want, got)
	}

	for _, raw := range []any{"x", true, math.Inf(1), "NaN"} {
		_, ok := p.Evaluate(raw)
		assert.False(t, ok, "%#v", raw)
	}

	in := input.Must(types.Float())
	require.NoError(t, in.AddNamed("round", map[string]any{"places": 1}, input.WithPriority(10)))
	require.NoError(t, in.AddNamed("clamp", map[string]any{"max": 10}, input.WithPriority(10)))
	require.NoError(t, in.AddNamed("range", map[string]any{"min": 0}))

	require.True(t, in.SetValue(3.14159))
	assert.Equal(t, 3.1, in.MustValue())

	require.True(t, in.SetValue(99.0))
	assert.Equal(t, 10.0, in.MustValue())

	assert.False(t, in.SetValue(-1))
}
