package text

import (
	"fmt"
	"regexp"
)

// Translator resolves translation keys for a language.
// Catalog is the canonical implementation.
type Translator interface {
	T(lang, key string, args ...string) string
	HasTranslation(lang, key string) bool
}

// Text is a lazily rendered, localizable message.
type Text struct {
	key      string
	fallback string
	args     []string
}

// New creates a Text. Params are name/value pairs; values are formatted with
// fmt.Sprint. A trailing name without a value is ignored.
func New(key, fallback string, params ...any) Text {
	args := make([]string, 0, len(params))
	for i := 0; i+1 < len(params); i += 2 {
		args = append(args, fmt.Sprint(params[i]), fmt.Sprint(params[i+1]))
	}
	return Text{key: key, fallback: fallback, args: args}
}

// Plain creates a Text without a translation key.
func Plain(s string) Text {
	return Text{fallback: s}
}

func (t Text) Key() string { return t.key }

func (t Text) Fallback() string { return t.fallback }

// IsZero reports whether t carries neither a key nor a fallback.
func (t Text) IsZero() bool {
	return t.key == "" && t.fallback == ""
}

// Params returns the parameters as a name/value map.
func (t Text) Params() map[string]string {
	return buildParams(t.args)
}

// With returns a copy of t with an additional parameter.
func (t Text) With(name string, value any) Text {
	args := make([]string, len(t.args), len(t.args)+2)
	copy(args, t.args)
	t.args = append(args, name, fmt.Sprint(value))
	return t
}

// String renders the fallback template.
func (t Text) String() string {
	if t.fallback == "" {
		return t.key
	}
	return sprintf(t.fallback, t.args)
}

// Render resolves t for lang. The translation wins when tr has one,
// otherwise the fallback template is used.
func (t Text) Render(tr Translator, lang string) string {
	if tr != nil && t.key != "" && tr.HasTranslation(lang, t.key) {
		return tr.T(lang, t.key, t.args...)
	}
	return t.String()
}

// buildParams converts name/value pairs into a map.
// If the number of arguments is odd, the last one is ignored.
func buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

func sprintf(tmpl string, args []string) string {
	return namedSprintf(tmpl, buildParams(args))
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf substitutes %{name} placeholders, keeping unknown ones as is.
func namedSprintf(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
