package text

import (
	"log/slog"

	"github.com/dmitrymomot/kit/pkg/logger"
)

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when negotiation finds no match.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithFallbackToKey determines whether T returns the key when a
// translation is missing. Default is true.
func WithFallbackToKey(fallback bool) Option {
	return func(c *Catalog) {
		c.fallbackToKey = fallback
	}
}

// WithLogger sets the catalog logger. A discard logger is used by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMissingTranslationsLogging controls whether missing translations are logged.
func WithMissingTranslationsLogging(log bool) Option {
	return func(c *Catalog) {
		c.missingLogMode = log
	}
}

// WithNoLogging disables all catalog logging.
func WithNoLogging() Option {
	return func(c *Catalog) {
		c.logger = logger.Discard()
		c.missingLogMode = false
	}
}
