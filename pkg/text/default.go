package text

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sync"
)

//go:embed locales/*.yaml
var locales embed.FS

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog of built-in messages. It is loaded once from
// the translations embedded in the package and shared afterwards; callers
// that add their own messages should build a new catalog and Merge into it.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := NewCatalog(context.Background(), NewFSAdapter(NewYAMLParser(), locales, "locales"))
		if err != nil {
			panic(fmt.Errorf("text: embedded translations are broken: %w", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// NewDefault returns a private copy of the built-in catalog with options applied.
func NewDefault(options ...Option) *Catalog {
	c, err := NewCatalog(context.Background(), NewFSAdapter(NewYAMLParser(), locales, "locales"), options...)
	if err != nil {
		panic(fmt.Errorf("text: embedded translations are broken: %w", err))
	}
	return c
}

// Locales returns the embedded translation files. They live under
// "locales/", one YAML file per language.
func Locales() fs.FS {
	return locales
}
