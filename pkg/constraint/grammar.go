package constraint

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/kit/pkg/abnf"
	"github.com/dmitrymomot/kit/pkg/text"
)

// Email requires an RFC 5322 addr-spec.
type Email struct{}

func (Email) Name() string { return "email" }

func (Email) Priority() int { return PrioritySemantic }

func (Email) Check(s string) bool {
	return abnf.Match(abnf.RFC5322, "addr-spec", s)
}

func (Email) Message() text.Text {
	return text.New("constraint.email", "must be a valid email address")
}

// URI requires an RFC 3986 URI. When Schemes is set, the scheme must be
// one of them (case-insensitive).
type URI struct {
	Schemes []string `mapstructure:"schemes"`
}

func (URI) Name() string { return "uri" }

func (URI) Priority() int { return PrioritySemantic }

func (c URI) Check(s string) bool {
	if !abnf.Match(abnf.RFC3986, "URI", s) {
		return false
	}
	if len(c.Schemes) == 0 {
		return true
	}
	scheme, _, _ := strings.Cut(s, ":")
	return slices.ContainsFunc(c.Schemes, func(allowed string) bool {
		return strings.EqualFold(allowed, scheme)
	})
}

func (c URI) Message() text.Text {
	if len(c.Schemes) > 0 {
		return text.New("constraint.uri.scheme", "must be a valid URI with scheme %{schemes}",
			"schemes", strings.Join(c.Schemes, ", "))
	}
	return text.New("constraint.uri.invalid", "must be a valid URI")
}

// Token requires an RFC 7230 token, as used in HTTP header names.
type Token struct{}

func (Token) Name() string { return "token" }

func (Token) Check(s string) bool {
	return abnf.Match(abnf.RFC7230, "token", s)
}

func (Token) Message() text.Text {
	return text.New("constraint.token", "must be a valid token")
}

// LanguageTag requires an RFC 5646 language tag.
type LanguageTag struct{}

func (LanguageTag) Name() string { return "language_tag" }

func (LanguageTag) Check(s string) bool {
	return abnf.Match(abnf.RFC5646, "Language-Tag", s)
}

func (LanguageTag) Message() text.Text {
	return text.New("constraint.language_tag", "must be a valid language tag")
}
