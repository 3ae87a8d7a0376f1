package config

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/kit/pkg/logger"
	"github.com/dmitrymomot/kit/pkg/text"
)

// Kit holds the settings shared by the kit command and by applications
// that render kit messages.
type Kit struct {
	// Lang is the preferred message language, as a BCP 47 tag or an
	// Accept-Language header value.
	Lang string `env:"KIT_LANG" envDefault:"en"`
	// InfoLevel selects the detail of rendered messages: user, technical
	// or internal.
	InfoLevel string `env:"KIT_INFO_LEVEL" envDefault:"user"`
	LogLevel  string `env:"KIT_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"KIT_LOG_FORMAT" envDefault:"text"`
	// TranslationsDir, when set, holds extra YAML or JSON translation
	// files merged over the built-in catalog.
	TranslationsDir string `env:"KIT_TRANSLATIONS_DIR"`
}

// LoadKit loads and validates the Kit config.
func LoadKit() (Kit, error) {
	var cfg Kit
	if err := Load(&cfg); err != nil {
		return Kit{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Kit{}, err
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (k Kit) Validate() error {
	var errs []error
	if _, _, err := language.ParseAcceptLanguage(k.Lang); err != nil || k.Lang == "" {
		errs = append(errs, fmt.Errorf("KIT_LANG: invalid language %q", k.Lang))
	}
	if _, err := text.ParseLevel(k.InfoLevel); err != nil {
		errs = append(errs, fmt.Errorf("KIT_INFO_LEVEL: %w", err))
	}
	if _, err := logger.ParseLevel(k.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("KIT_LOG_LEVEL: %w", err))
	}
	if _, err := logger.ParseFormat(k.LogFormat); err != nil {
		errs = append(errs, fmt.Errorf("KIT_LOG_FORMAT: %w", err))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

// Level returns the parsed InfoLevel. Invalid values mean text.LevelUser.
func (k Kit) Level() text.Level {
	l, _ := text.ParseLevel(k.InfoLevel)
	return l
}

// Logger builds a logger from LogLevel and LogFormat. Invalid values fall
// back to info and text.
func (k Kit) Logger(opts ...logger.Option) *slog.Logger {
	level, err := logger.ParseLevel(k.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	format, err := logger.ParseFormat(k.LogFormat)
	if err != nil {
		format = logger.FormatText
	}
	return logger.New(append([]logger.Option{
		logger.WithLevel(level),
		logger.WithFormat(format),
	}, opts...)...)
}
