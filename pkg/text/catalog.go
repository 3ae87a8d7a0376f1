package text

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrymomot/kit/pkg/logger"
)

// Catalog holds translations for a set of languages and implements Translator.
type Catalog struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewCatalog loads translations through adapter and returns a ready catalog.
func NewCatalog(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Catalog, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	c := &Catalog{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, option := range options {
		option(c)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.validate(translations); err != nil {
		return nil, err
	}

	c.translations = translations
	c.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", c.supportedLanguages()))
	return c, nil
}

func (c *Catalog) validate(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		c.logger.Warn("no translations provided")
		return nil
	}
	for lang, messages := range trans {
		if lang == "" {
			return fmt.Errorf("empty language code found")
		}
		if messages == nil {
			return fmt.Errorf("nil translations map for language: %s", lang)
		}
	}
	return nil
}

// Merge adds translations from other on top of the catalog's own.
// Keys in other win on conflict.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil || other == c {
		return
	}
	other.mu.RLock()
	defer other.mu.RUnlock()
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.translations == nil {
		c.translations = make(map[string]map[string]any, len(other.translations))
	}
	for lang, messages := range other.translations {
		if c.translations[lang] == nil {
			c.translations[lang] = make(map[string]any, len(messages))
		}
		mergeTree(c.translations[lang], messages)
	}
}

func mergeTree(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeTree(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			cp := make(map[string]any, len(srcMap))
			maps.Copy(cp, srcMap)
			dst[k] = cp
			continue
		}
		dst[k] = v
	}
}

func (c *Catalog) supportedLanguages() []string {
	langs := make([]string, 0, len(c.translations))
	for lang := range c.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the sorted language codes that have translations.
func (c *Catalog) SupportedLanguages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.supportedLanguages()
}

// DefaultLanguage returns the language used when negotiation fails.
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

// Resolve is like Negotiate but fails with *ErrLanguageNotSupported
// instead of falling back to the default language.
func (c *Catalog) Resolve(lang string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if _, ok := c.translations[lang]; ok {
		return lang, nil
	}
	if m := Match(lang, c.supportedLanguages(), ""); m != "" {
		return m, nil
	}
	return "", &ErrLanguageNotSupported{Lang: lang}
}

// Negotiate returns the supported language that best matches lang.
func (c *Catalog) Negotiate(lang string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.negotiate(lang)
}

func (c *Catalog) negotiate(lang string) string {
	if _, ok := c.translations[lang]; ok {
		return lang
	}
	return Match(lang, c.supportedLanguages(), c.defaultLang)
}

// lookup traverses the nested map using dot-separated keys.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}

	return nil, false
}

// HasTranslation reports whether a string translation exists for key in the
// language negotiated from lang.
func (c *Catalog) HasTranslation(lang, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	langMap, ok := c.translations[c.negotiate(lang)]
	if !ok {
		return false
	}
	val, ok := lookup(langMap, key)
	if !ok {
		return false
	}
	_, isString := val.(string)
	return isString
}

func (c *Catalog) missing(lang, key string, args []string) string {
	if c.missingLogMode {
		c.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	if c.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

// T translates key for lang, substituting %{name} placeholders from the
// name/value pairs in args.
//
//	// With translation "welcome": "Hello, %{name}!"
//	msg := cat.T("en", "welcome", "name", "John") // "Hello, John!"
func (c *Catalog) T(lang, key string, args ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resolved := c.negotiate(lang)
	langMap, ok := c.translations[resolved]
	if !ok {
		return c.missing(lang, key, args)
	}

	val, ok := lookup(langMap, key)
	if !ok {
		return c.missing(resolved, key, args)
	}

	switch v := val.(type) {
	case string:
		return sprintf(v, args)
	case fmt.Stringer:
		return sprintf(v.String(), args)
	default:
		return c.missing(resolved, key, args)
	}
}

// N translates key with pluralization. For n=0 it tries key.zero then
// key.other, for n=1 key.one, otherwise key.other, and finally the key
// itself. A "count" parameter is added unless already present.
func (c *Catalog) N(lang, key string, n int, args ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resolved := c.negotiate(lang)
	langMap, ok := c.translations[resolved]
	if !ok {
		return c.missing(lang, key, args)
	}

	var forms []string
	switch n {
	case 0:
		forms = []string{key + ".zero", key + ".other"}
	case 1:
		forms = []string{key + ".one"}
	default:
		forms = []string{key + ".other"}
	}
	forms = append(forms, key)

	for _, form := range forms {
		val, ok := lookup(langMap, form)
		if !ok {
			continue
		}
		s, ok := val.(string)
		if !ok {
			continue
		}
		if _, has := buildParams(args)["count"]; !has {
			args = append(args[:len(args):len(args)], "count", strconv.Itoa(n))
		}
		return sprintf(s, args)
	}

	return c.missing(resolved, key, args)
}
