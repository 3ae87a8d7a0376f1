package text

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
)

// TranslationAdapter loads translations from a source.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads a single translation file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter returns nil if parser is nil or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: file %q is empty", ErrFailedToParseFile, a.path)
	}

	translations, err := a.parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return translations, nil
}

// NewDirectoryAdapter loads every supported file in a directory on disk.
func NewDirectoryAdapter(parser Parser, dir string) *FSAdapter {
	if parser == nil || dir == "" {
		return nil
	}
	return &FSAdapter{parser: parser, fsys: os.DirFS(dir), dir: "."}
}

// FSAdapter loads every supported file in dir of an fs.FS, typically an embed.FS.
// Files are merged in name order; later files win on conflicting keys.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter returns nil if parser or fsys is nil.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if parser == nil || fsys == nil {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	all := make(map[string]map[string]any)
	processed := 0
	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, fmt.Errorf("%s: %w", name, err))
		}
		translations, err := a.parser.Parse(ctx, content)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
		}

		for lang, messages := range translations {
			if all[lang] == nil {
				all[lang] = make(map[string]any, len(messages))
			}
			mergeTree(all[lang], messages)
		}
		processed++
	}

	if processed == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationsFound, a.dir)
	}
	return all, nil
}
