// Package text provides a localizable Text primitive and the Catalog that
// resolves it into a target language.
//
// A Text is a translation key paired with an English fallback template and
// a set of named parameters. Nothing is rendered until the caller asks for
// it, so values such as validation failures can carry their messages around
// and defer localization to the point where the language is known.
//
// # Templates
//
// Templates use named placeholders of the form %{name}:
//
//	t := text.New("constraint.length.range", "must be between %{min} and %{max} characters long",
//	    "min", 5, "max", 10)
//	t.String() // "must be between 5 and 10 characters long"
//
// Unknown placeholders are kept verbatim.
//
// # Catalog
//
// Catalog loads translations through a TranslationAdapter (in-memory map,
// single file, directory or fs.FS) and a Parser (JSON or YAML). Keys may be
// nested and are addressed with dots. Requested languages are negotiated
// against the supported set using golang.org/x/text/language, so "de-AT"
// resolves to "de" when only German is available.
//
//	cat, err := text.NewCatalog(ctx, text.NewFileAdapter(text.NewYAMLParser(), "locales/app.yaml"),
//	    text.WithDefaultLanguage("en"),
//	)
//	msg := t.Render(cat, "de")
//
// Default returns a catalog built from the translations embedded in this
// package. It covers every message produced by the built-in prototypes,
// constraints and filters.
//
// # Info levels
//
// Options carries the language, the translator and a Level. The level lets
// producers decide how much detail goes into a message: LevelUser for end
// users, LevelTechnical for developers and LevelInternal for logs.
package text
