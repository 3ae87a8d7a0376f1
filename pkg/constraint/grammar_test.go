package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kit/pkg/constraint"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"user@example.com",
		"first.last+tag@sub.example.org",
		"user@localhost",
		`"quoted user"@example.com`,
		"user@[192.168.0.1]",
	}
	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@@example.com",
		"user name@example.com",
		".user@example.com",
		"user.@example.com",
	}

	c := constraint.Email{}
	for _, s := range valid {
		assert.True(t, c.Check(s), s)
	}
	for _, s := range invalid {
		assert.False(t, c.Check(s), s)
	}
	assert.Equal(t, constraint.PrioritySemantic, c.Priority())
}

func TestURI(t *testing.T) {
	t.Parallel()

	t.Run("any scheme", func(t *testing.T) {
		c := constraint.URI{}
		assert.True(t, c.Check("https://example.com/path?q=1#frag"))
		assert.True(t, c.Check("mailto:user@example.com"))
		assert.True(t, c.Check("urn:isbn:0451450523"))
		assert.False(t, c.Check("example.com"))
		assert.False(t, c.Check("http://exa mple.com"))
		assert.False(t, c.Check(""))
	})

	t.Run("restricted schemes", func(t *testing.T) {
		c := constraint.URI{Schemes: []string{"https"}}
		assert.True(t, c.Check("https://example.com"))
		assert.True(t, c.Check("HTTPS://example.com"))
		assert.False(t, c.Check("http://example.com"))
		assert.Equal(t, "must be a valid URI with scheme https", c.Message().String())
	})
}

func TestToken(t *testing.T) {
	t.Parallel()

	c := constraint.Token{}
	assert.True(t, c.Check("Content-Type"))
	assert.True(t, c.Check("x_custom.header!"))
	assert.False(t, c.Check("bad header"))
	assert.False(t, c.Check("a:b"))
	assert.False(t, c.Check(""))
}

func TestLanguageTag(t *testing.T) {
	t.Parallel()

	c := constraint.LanguageTag{}
	assert.True(t, c.Check("en"))
	assert.True(t, c.Check("de-CH"))
	assert.True(t, c.Check("zh-Hant-TW"))
	assert.False(t, c.Check("english language"))
}

func TestPattern(t *testing.T) {
	t.Parallel()

	t.Run("match", func(t *testing.T) {
		c := constraint.MustPattern(`^[a-z]+-[0-9]+$`)
		assert.True(t, c.Check("abc-12"))
		assert.False(t, c.Check("abc"))
		assert.Equal(t, "constraint.pattern.match", c.Message().Key())
	})

	t.Run("negate", func(t *testing.T) {
		c, err := constraint.NewPattern(`admin`, true)
		require.NoError(t, err)
		assert.True(t, c.Check("user"))
		assert.False(t, c.Check("superadmin"))
		assert.Equal(t, "must not match admin", c.Message().String())
	})

	t.Run("description", func(t *testing.T) {
		c, err := constraint.PatternFrom(constraint.PatternOptions{Expr: `^\d+$`, Description: "digits"})
		require.NoError(t, err)
		assert.Equal(t, "must match digits", c.Message().String())
	})

	t.Run("invalid expression", func(t *testing.T) {
		_, err := constraint.NewPattern(`(`, false)
		assert.ErrorIs(t, err, constraint.ErrInvalidPattern)

		_, err = constraint.NewPattern("", false)
		assert.ErrorIs(t, err, constraint.ErrInvalidPattern)
	})
}
