package property_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kit/pkg/constraint"
	"github.com/dmitrymomot/kit/pkg/input"
	"github.com/dmitrymomot/kit/pkg/property"
	"github.com/dmitrymomot/kit/pkg/types"
)

func TestProperty_WriteOnce(t *testing.T) {
	t.Parallel()

	m := property.NewManager(property.ReadWrite)
	p := property.MustRegister[string](m, "id", property.WriteOnce)

	require.NoError(t, p.Set("first"))
	assert.True(t, p.IsInitialized())

	err := p.Set("second")
	assert.ErrorIs(t, err, property.ErrNotMutable)
	assert.True(t, property.IsError(err))

	v, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, "first", v)
}

func TestProperty_Defaults(t *testing.T) {
	t.Parallel()

	m := property.NewManager(property.ReadWrite)

	calls := 0
	lazy := property.MustRegister(m, "lazy", property.ReadWrite, property.DefaultFunc(func() (int, error) {
		calls++
		return 42, nil
	}))
	plain := property.MustRegister(m, "plain", property.ReadWrite, property.Default("x"))
	none := property.MustRegister[int](m, "none", property.ReadWrite)

	assert.Equal(t, 0, calls, "defaults are lazy")

	for range 3 {
		v, err := lazy.Get()
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	}
	assert.Equal(t, 1, calls, "default is evaluated once")
	assert.False(t, lazy.IsInitialized(), "a cached default is not a write")

	v, err := plain.Get()
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	_, err = none.Get()
	assert.ErrorIs(t, err, property.ErrRequired)

	failing := property.MustRegister(m, "failing", property.ReadWrite, property.DefaultFunc(func() (int, error) {
		return 0, errors.New("boom")
	}))
	_, err = failing.Get()
	assert.EqualError(t, err, "property failing: default: boom")
}

func TestProperty_Evaluator(t *testing.T) {
	t.Parallel()

	m := property.NewManager(property.ReadWrite)
	p := property.MustRegister(m, "even", property.ReadWrite, property.WithEvaluator(func(v int) (int, bool) {
		return v, v%2 == 0
	}))

	require.NoError(t, p.Set(2))
	assert.ErrorIs(t, p.Set(3), property.ErrInvalidValue)

	v, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	q := property.MustRegister(m, "never", property.ReadWrite, property.WithEvaluator(func(v int) (int, bool) {
		return v, false
	}))
	assert.ErrorIs(t, q.Set(1), property.ErrInvalidValue)
	assert.False(t, q.IsInitialized(), "a rejected value never initializes")
}

func TestProperty_Input(t *testing.T) {
	t.Parallel()

	in := input.Must(types.Integer())
	in.AddConstraint(constraint.Between[int64](1, 65535))

	m := property.NewManager(property.ReadWrite)
	port := property.MustRegister(m, "port", property.ReadWrite,
		property.WithInput(in),
		property.Default[int64](8080),
	)

	v, err := port.Get()
	require.NoError(t, err)
	assert.Equal(t, int64(8080), v)

	require.NoError(t, m.Set("port", "9000"), "untyped writes are coerced by the prototype")
	v, err = port.Get()
	require.NoError(t, err)
	assert.Equal(t, int64(9000), v)

	err = port.Set(70000)
	require.ErrorIs(t, err, property.ErrInvalidValue)
	var inErr *input.Error
	require.ErrorAs(t, err, &inErr)
	assert.Equal(t, "must be between 1 and 65535", inErr.Error())

	assert.ErrorIs(t, m.Set("port", "abc"), property.ErrInvalidValue)
}

func TestProperty_Binding(t *testing.T) {
	t.Parallel()

	type server struct {
		host string
	}
	srv := &server{}

	m := property.NewManager(property.ReadWrite)
	host := property.MustRegister(m, "host", property.ReadWrite,
		property.BindField(&srv.host),
		property.Default("localhost"),
	)

	v, err := host.Get()
	require.NoError(t, err)
	assert.Equal(t, "localhost", v)
	assert.Equal(t, "localhost", srv.host, "defaults are written through")

	require.NoError(t, host.Set("example.com"))
	assert.Equal(t, "example.com", srv.host)

	srv.host = "changed"
	v, err = host.Get()
	require.NoError(t, err)
	assert.Equal(t, "changed", v, "reads go through the binding")
}

func TestManager_ModeCapsProperties(t *testing.T) {
	t.Parallel()

	m := property.NewManager(property.ReadOnly)
	p := property.MustRegister(m, "name", property.ReadWrite, property.Default("n"))

	assert.Equal(t, property.ReadOnly, p.Mode())
	assert.Equal(t, property.ReadWrite, p.DeclaredMode())
	assert.ErrorIs(t, p.Set("x"), property.ErrNotWritable)

	v, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, "n", v)

	w := property.MustRegister[string](m, "secret", property.WriteOnly)
	_, err = w.Get()
	assert.ErrorIs(t, err, property.ErrNotReadable)
}

func TestManager_Initialize(t *testing.T) {
	t.Parallel()

	newManager := func() (*property.Manager, *property.Property[string], *property.Property[int]) {
		m := property.NewManager(property.ReadWrite)
		id := property.MustRegister(m, "id", property.ReadOnly, property.Required[string]())
		retries := property.MustRegister(m, "retries", property.WriteOnce, property.Default(3))
		return m, id, retries
	}

	t.Run("writes read-only properties", func(t *testing.T) {
		m, id, retries := newManager()
		assert.Equal(t, property.PhaseUninitialized, m.Phase())

		require.NoError(t, m.Initialize(map[string]any{"id": "abc"}))
		assert.Equal(t, property.PhaseInitialized, m.Phase())

		v, err := id.Get()
		require.NoError(t, err)
		assert.Equal(t, "abc", v)
		assert.ErrorIs(t, id.Set("other"), property.ErrNotWritable)

		r, err := retries.Get()
		require.NoError(t, err)
		assert.Equal(t, 3, r)
		require.NoError(t, retries.Set(5), "write-once still allows the first write")
		assert.ErrorIs(t, retries.Set(6), property.ErrNotMutable)
	})

	t.Run("runs once", func(t *testing.T) {
		m, _, _ := newManager()
		require.NoError(t, m.Initialize(map[string]any{"id": "abc"}))
		assert.ErrorIs(t, m.Initialize(map[string]any{"id": "abc"}), property.ErrAlreadyInitialized)
	})

	t.Run("requires required properties", func(t *testing.T) {
		m, id, _ := newManager()
		assert.ErrorIs(t, m.Initialize(nil), property.ErrRequired)
		assert.Equal(t, property.PhaseUninitialized, m.Phase())

		_, err := id.Get()
		assert.ErrorIs(t, err, property.ErrRequired)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		m, _, _ := newManager()
		assert.ErrorIs(t, m.Initialize(map[string]any{"id": "abc", "nope": 1}), property.ErrUnknownProperty)
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		m, id, _ := newManager()
		err := m.Initialize(map[string]any{"id": "abc", "retries": "three"})
		require.ErrorIs(t, err, property.ErrTypeMismatch)
		assert.False(t, id.IsInitialized())
		assert.Equal(t, property.PhaseUninitialized, m.Phase())

		require.NoError(t, m.Initialize(map[string]any{"id": "abc", "retries": 1}))
	})
}

func TestManager_Restrict(t *testing.T) {
	t.Parallel()

	m := property.NewManager(property.ReadWrite)
	p := property.MustRegister[string](m, "name", property.ReadWrite)

	require.NoError(t, m.Restrict(property.WriteOnce))
	assert.Equal(t, property.WriteOnce, p.Mode())

	require.NoError(t, p.Set("a"))
	assert.ErrorIs(t, p.Set("b"), property.ErrNotMutable)

	assert.ErrorIs(t, m.Restrict(property.ReadWrite), property.ErrInvalidModeTransition)
	require.NoError(t, m.Restrict(property.ReadOnly))
	assert.ErrorIs(t, m.Restrict(property.WriteOnly), property.ErrInvalidModeTransition)
}

func TestManager_Registry(t *testing.T) {
	t.Parallel()

	m := property.NewManager(property.ReadWrite)
	property.MustRegister[string](m, "b", property.ReadWrite)
	property.MustRegister[int](m, "a", property.ReadWrite, property.Default(1))

	assert.Equal(t, []string{"b", "a"}, m.Names())

	_, err := property.Register[string](m, "b", property.ReadWrite)
	assert.ErrorIs(t, err, property.ErrAlreadyRegistered)

	p, err := property.Lookup[int](m, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", p.Name())

	_, err = property.Lookup[string](m, "a")
	assert.ErrorIs(t, err, property.ErrTypeMismatch)

	_, err = property.Lookup[string](m, "zzz")
	assert.ErrorIs(t, err, property.ErrUnknownProperty)

	v, err := m.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	assert.ErrorIs(t, m.Set("a", "not an int"), property.ErrTypeMismatch)
	assert.ErrorIs(t, m.Set("zzz", 1), property.ErrUnknownProperty)
	_, err = m.Get("zzz")
	assert.ErrorIs(t, err, property.ErrUnknownProperty)
}
