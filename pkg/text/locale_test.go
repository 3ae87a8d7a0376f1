package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/kit/pkg/text"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	supported := []string{"en", "de", "pt-BR"}

	tests := []struct {
		name      string
		requested string
		want      string
	}{
		{"exact", "de", "de"},
		{"region", "de-CH", "de"},
		{"accept-language", "fr;q=0.9, de;q=0.8", "de"},
		{"regional variant", "pt", "pt-BR"},
		{"no match", "ja", "fallback"},
		{"empty", "", "fallback"},
		{"garbage", "!!", "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, text.Match(tt.requested, supported, "fallback"))
		})
	}

	assert.Equal(t, "fallback", text.Match("en", nil, "fallback"))
}
