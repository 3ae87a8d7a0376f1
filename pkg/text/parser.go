package text

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser turns file content into a language → messages map.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)
	// SupportsFileExtension accepts extensions with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// JSONParser parses JSON translation files.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrJSONParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return splitLanguages(data)
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

// YAMLParser parses YAML translation files.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return splitLanguages(data)
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

func splitLanguages(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		messages, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid structure for language %q: expected map, got %T", lang, val)
		}
		result[lang] = messages
	}
	if len(result) == 0 {
		return nil, ErrNoTranslationsFound
	}
	return result, nil
}
