package types

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/kit/pkg/constraint"
	"github.com/dmitrymomot/kit/pkg/filter"
	"github.com/dmitrymomot/kit/pkg/input"
	"github.com/dmitrymomot/kit/pkg/text"
)

// MsgText is reported when a value cannot be read as a string.
var MsgText = text.New("types.text", "must be a string")

// Text returns the string prototype. Strings, byte slices, fmt.Stringer
// values and numbers are accepted; booleans and composite values are not.
func Text() *Prototype[string] {
	p := NewPrototype("text", MsgText, coerceText)
	p.Register("length", constraintOf[string, constraint.Length]()).
		Register("text", constraintOf[string, constraint.Text]()).
		Register("pattern", input.ConstraintFactory(func(o constraint.PatternOptions) (input.Constraint[string], error) {
			return constraint.PatternFrom(o)
		})).
		Register("email", constraintOf[string, constraint.Email]()).
		Register("uri", constraintOf[string, constraint.URI]()).
		Register("token", constraintOf[string, constraint.Token]()).
		Register("language_tag", constraintOf[string, constraint.LanguageTag]()).
		Register("choice", constraintOf[string, constraint.Choice[string]]()).
		Register("trim", filterOf[string, filter.Trim]()).
		Register("lowercase", filterOf[string, filter.Lowercase]()).
		Register("uppercase", filterOf[string, filter.Uppercase]()).
		Register("title", input.FilterFactory(func(o filter.TitleOptions) (input.Filter[string], error) {
			return filter.NewTitle(o.Lang)
		})).
		Register("whitespace", filterOf[string, filter.Whitespace]()).
		Register("normalize", input.FilterFactory(func(o filter.NormalizeOptions) (input.Filter[string], error) {
			form, err := filter.ParseForm(o.Form)
			if err != nil {
				return nil, err
			}
			return filter.Normalize{Form: form}, nil
		})).
		Register("truncate", filterOf[string, filter.Truncate]()).
		Register("slug", filterOf[string, filter.Slug]()).
		Register("strip", filterOf[string, filter.Strip]())
	return p
}

func coerceText(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case fmt.Stringer:
		return v.String(), true
	case bool:
		return "", false
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		return "", false
	}
	return s, true
}
