package text

import (
	"fmt"
	"strings"
)

// Level selects how much detail a rendered message carries.
type Level int

const (
	// LevelUser is for messages shown to end users.
	LevelUser Level = iota
	// LevelTechnical adds the name of the failing stage.
	LevelTechnical
	// LevelInternal adds priorities and raw values; meant for logs.
	LevelInternal
)

func (l Level) String() string {
	switch l {
	case LevelUser:
		return "user"
	case LevelTechnical:
		return "technical"
	case LevelInternal:
		return "internal"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel parses the names returned by Level.String.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "user":
		return LevelUser, nil
	case "technical", "tech":
		return LevelTechnical, nil
	case "internal":
		return LevelInternal, nil
	default:
		return LevelUser, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}

// Options describes how a message is rendered.
// The zero value renders English fallbacks at user level.
type Options struct {
	Lang       string
	Level      Level
	Translator Translator
}

// Render resolves t with the configured translator and language.
func (o Options) Render(t Text) string {
	return t.Render(o.Translator, o.lang())
}

func (o Options) lang() string {
	if o.Lang == "" {
		return DefaultLanguage
	}
	return o.Lang
}
