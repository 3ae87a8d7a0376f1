package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/kit/pkg/types"
)

func TestBoolean(t *testing.T) {
	t.Parallel()

	p := types.Boolean()

	for _, raw := range []any{true, "true", "YES", "on", "1", 1, 1.0} {
		got, ok := p.Evaluate(raw)
		assert.True(t, ok, "%#v", raw)
		assert.True(t, got, "%#v", raw)
	}
	for _, raw := range []any{false, "false", "No", "off", "0", 0, uint8(0)} {
		got, ok := p.Evaluate(raw)
		assert.True(t, ok, "%#v", raw)
		assert.False(t, got, "%#v", raw)
	}
	for _, raw := range []any{"maybe", 2, -1, 0.5, []byte("true")} {
		_, ok := p.Evaluate(raw)
		assert.False(t, ok, "%#v", raw)
	}

	assert.Empty(t, p.Names())
}
