package text

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language is requested or negotiation fails.
const DefaultLanguage = "en"

// Match negotiates the best supported language for requested.
// requested may be a single tag or an Accept-Language style list.
// Returns fallback when nothing matches with at least low confidence.
func Match(requested string, supported []string, fallback string) string {
	if len(supported) == 0 {
		return fallback
	}
	requested = strings.TrimSpace(requested)
	if requested == "" {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, s)
	}
	if len(tags) == 0 {
		return fallback
	}

	want, _, err := language.ParseAcceptLanguage(requested)
	if err != nil || len(want) == 0 {
		return fallback
	}

	_, idx, conf := language.NewMatcher(tags).Match(want...)
	if conf < language.Low {
		return fallback
	}
	return names[idx]
}
