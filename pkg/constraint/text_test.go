package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/kit/pkg/constraint"
)

func TestText_Check(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		c     constraint.Text
		value string
		want  bool
	}{
		{"lowercase letters", constraint.Text{Alphabetical: true, Lowercase: true}, "abc", true},
		{"uppercase rejected", constraint.Text{Alphabetical: true, Lowercase: true}, "ABC", false},
		{"digit rejected", constraint.Text{Alphabetical: true, Lowercase: true}, "abc1", false},
		{"alphanumeric", constraint.Text{Alphabetical: true, Numerical: true}, "abc123", true},
		{"alphanumeric rejects space", constraint.Text{Alphabetical: true, Numerical: true}, "abc 123", false},
		{"whitespace allowed", constraint.Text{Alphabetical: true, Whitespace: true}, "hello world", true},
		{"digits only", constraint.Text{Numerical: true}, "0123", true},
		{"uppercase required", constraint.Text{Uppercase: true}, "ABC-1", true},
		{"uppercase violated", constraint.Text{Uppercase: true}, "AbC", false},
		{"ascii rejects umlaut", constraint.Text{Alphabetical: true}, "straße", false},
		{"unicode accepts umlaut", constraint.Text{Alphabetical: true, Unicode: true}, "straße", true},
		{"no flags accepts ascii", constraint.Text{}, "any thing!", true},
		{"empty string", constraint.Text{Alphabetical: true}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Check(tt.value))
		})
	}
}

func TestText_Message(t *testing.T) {
	t.Parallel()

	msg := constraint.Text{Alphabetical: true, Lowercase: true}.Message()
	assert.Equal(t, "constraint.text.alphabetical_lowercase", msg.Key())
	assert.Equal(t, "must contain only letters in lowercase", msg.String())

	msg = constraint.Text{Alphabetical: true, Numerical: true}.Message()
	assert.Equal(t, "constraint.text.alphanumeric", msg.Key())

	msg = constraint.Text{Unicode: true, Uppercase: true}.Message()
	assert.Equal(t, "constraint.text.invalid_uppercase", msg.Key())
}
