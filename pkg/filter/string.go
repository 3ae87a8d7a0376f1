package filter

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/kit/pkg/text"
)

var msgInvalid = text.New("filter.invalid", "cannot be processed")

// Trim removes leading and trailing whitespace.
type Trim struct{}

func (Trim) Name() string                   { return "trim" }
func (Trim) Message() text.Text             { return msgInvalid }
func (Trim) Filter(s string) (string, bool) { return strings.TrimSpace(s), true }

// Lowercase maps letters to lower case.
type Lowercase struct{}

func (Lowercase) Name() string                   { return "lowercase" }
func (Lowercase) Message() text.Text             { return msgInvalid }
func (Lowercase) Filter(s string) (string, bool) { return strings.ToLower(s), true }

// Uppercase maps letters to upper case.
type Uppercase struct{}

func (Uppercase) Name() string                   { return "uppercase" }
func (Uppercase) Message() text.Text             { return msgInvalid }
func (Uppercase) Filter(s string) (string, bool) { return strings.ToUpper(s), true }

// Title capitalizes words using the casing rules of a language.
type Title struct {
	caser cases.Caser
}

// TitleOptions is the property form of Title.
type TitleOptions struct {
	Lang string `mapstructure:"lang"`
}

// NewTitle returns a Title for lang. An empty lang uses language.Und.
func NewTitle(lang string) (*Title, error) {
	tag := language.Und
	if lang != "" {
		var err error
		if tag, err = language.Parse(lang); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
		}
	}
	return &Title{caser: cases.Title(tag)}, nil
}

func (*Title) Name() string       { return "title" }
func (*Title) Message() text.Text { return msgInvalid }

// Filter is not safe for concurrent use because cases.Caser keeps state.
func (f *Title) Filter(s string) (string, bool) {
	return f.caser.String(s), true
}

// Whitespace collapses runs of whitespace into a single space and trims
// the ends.
type Whitespace struct{}

func (Whitespace) Name() string       { return "whitespace" }
func (Whitespace) Message() text.Text { return msgInvalid }

func (Whitespace) Filter(s string) (string, bool) {
	return strings.Join(strings.Fields(s), " "), true
}

// Normalize applies a Unicode normalization form.
type Normalize struct {
	Form norm.Form
}

// NormalizeOptions is the property form of Normalize.
type NormalizeOptions struct {
	Form string `mapstructure:"form"`
}

// ParseForm maps "NFC", "NFD", "NFKC" and "NFKD" to a norm.Form.
// The empty string means NFC.
func ParseForm(s string) (norm.Form, error) {
	switch strings.ToUpper(s) {
	case "", "NFC":
		return norm.NFC, nil
	case "NFD":
		return norm.NFD, nil
	case "NFKC":
		return norm.NFKC, nil
	case "NFKD":
		return norm.NFKD, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidForm, s)
}

func (Normalize) Name() string       { return "normalize" }
func (Normalize) Message() text.Text { return text.New("filter.normalize", "must be valid UTF-8") }

func (f Normalize) Filter(s string) (string, bool) {
	if !utf8.ValidString(s) {
		return s, false
	}
	return f.Form.String(s), true
}

// Truncate cuts a string to at most Max bytes, or Max code points with
// Unicode set. Byte truncation never splits a code point.
type Truncate struct {
	Max     int  `mapstructure:"max"`
	Unicode bool `mapstructure:"unicode"`
}

func (f Truncate) Validate() error {
	if f.Max <= 0 {
		return fmt.Errorf("%w: truncate max must be positive", ErrInvalidBounds)
	}
	return nil
}

func (Truncate) Name() string       { return "truncate" }
func (Truncate) Message() text.Text { return msgInvalid }

func (f Truncate) Filter(s string) (string, bool) {
	if f.Max <= 0 {
		return s, true
	}
	if f.Unicode {
		if utf8.RuneCountInString(s) <= f.Max {
			return s, true
		}
		return string([]rune(s)[:f.Max]), true
	}
	if len(s) <= f.Max {
		return s, true
	}
	cut := f.Max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut], true
}

// Slug turns a string into a lowercase, separator-joined identifier.
// Letters and digits are kept; every other run of characters becomes a
// single separator.
type Slug struct {
	Separator string `mapstructure:"separator"`
}

func (Slug) Name() string       { return "slug" }
func (Slug) Message() text.Text { return msgInvalid }

func (f Slug) Filter(s string) (string, bool) {
	sep := f.Separator
	if sep == "" {
		sep = "-"
	}

	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(norm.NFKD.String(s)) {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining marks left by decomposition
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pending && b.Len() > 0 {
				b.WriteString(sep)
			}
			pending = false
			b.WriteRune(r)
		default:
			pending = true
		}
	}
	return b.String(), true
}

// Strip removes every occurrence of the characters in Chars.
// An empty Chars strips control characters.
type Strip struct {
	Chars string `mapstructure:"chars"`
}

func (Strip) Name() string       { return "strip" }
func (Strip) Message() text.Text { return msgInvalid }

func (f Strip) Filter(s string) (string, bool) {
	return strings.Map(func(r rune) rune {
		if f.Chars == "" {
			if unicode.IsControl(r) {
				return -1
			}
			return r
		}
		if strings.ContainsRune(f.Chars, r) {
			return -1
		}
		return r
	}, s), true
}
