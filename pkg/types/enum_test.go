package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kit/pkg/enum"
	"github.com/dmitrymomot/kit/pkg/input"
	"github.com/dmitrymomot/kit/pkg/text"
	"github.com/dmitrymomot/kit/pkg/types"
)

type status int

var statuses = enum.New("status",
	enum.Entry[status]{Name: "draft", Value: 1},
	enum.Entry[status]{Name: "published", Value: 2},
	enum.Entry[status]{Name: "archived", Value: 3},
)

func TestEnum(t *testing.T) {
	t.Parallel()

	p := types.Enum(statuses)
	assert.Equal(t, "enum:status", p.Name())

	got, ok := p.Evaluate("published")
	require.True(t, ok)
	assert.Equal(t, status(2), got)

	got, ok = p.Evaluate(status(3))
	require.True(t, ok)
	assert.Equal(t, status(3), got)

	_, ok = p.Evaluate(status(9))
	assert.False(t, ok)
	_, ok = p.Evaluate("deleted")
	assert.False(t, ok)
	_, ok = p.Evaluate(2)
	assert.False(t, ok, "untyped ints are not status values")

	in := input.Must(p)
	require.NoError(t, in.AddNamed("choice", map[string]any{"values": []string{"draft", "published"}}))
	assert.True(t, in.SetValue("draft"))
	assert.False(t, in.SetValue("archived"))

	assert.False(t, in.SetValue("deleted"))
	assert.Equal(t, "must be one of: draft, published, archived", in.ErrorMessage(text.Options{}))

	assert.ErrorIs(t, in.AddNamed("choice", map[string]any{"values": "deleted"}), enum.ErrUnknownName)
}
