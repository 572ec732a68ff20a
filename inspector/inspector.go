package inspector

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/viant/solemn/inspector/golang"
	"github.com/viant/solemn/inspector/java"
	"github.com/viant/solemn/inspector/javascript"
	"github.com/viant/solemn/inspector/syntax"
)

// Parser turns source code into a syntax tree
type Parser interface {
	// Language returns the language name
	Language() string

	// Parse parses source code, malformed input fails with *syntax.ParseError
	Parse(ctx context.Context, src []byte) (*syntax.Tree, error)
}

// Factory creates appropriate parsers based on file extension
type Factory struct {
	extensions map[string]string
	parsers    map[string]Parser
}

// NewFactory creates a factory with JavaScript, Java and Go support
func NewFactory() *Factory {
	f := &Factory{
		extensions: map[string]string{},
		parsers:    map[string]Parser{},
	}
	f.Register(javascript.NewParser(), ".js", ".jsx", ".mjs", ".cjs")
	f.Register(java.NewParser(), ".java")
	f.Register(golang.NewParser(), ".go")
	return f
}

// Register adds or replaces a parser for the supplied extensions
func (f *Factory) Register(parser Parser, extensions ...string) {
	language := parser.Language()
	f.parsers[language] = parser
	for _, ext := range extensions {
		f.extensions[strings.ToLower(ext)] = language
	}
}

// Extensions returns supported file extensions
func (f *Factory) Extensions() []string {
	ret := make([]string, 0, len(f.extensions))
	for ext := range f.extensions {
		ret = append(ret, ext)
	}
	sort.Strings(ret)
	return ret
}

// Supports returns true if a parser is registered for the file extension
func (f *Factory) Supports(filename string) bool {
	_, ok := f.extensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// GetParser returns an appropriate parser based on file extension
func (f *Factory) GetParser(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	language, ok := f.extensions[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}
	return f.parsers[language], nil
}

// Language returns a parser by language name
func (f *Factory) Language(name string) (Parser, error) {
	parser, ok := f.parsers[name]
	if !ok {
		return nil, fmt.Errorf("unsupported language: %s", name)
	}
	return parser, nil
}
