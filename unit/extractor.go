package unit

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/solemn/inspector"
	"github.com/viant/solemn/inspector/syntax"
)

// SourceReadError reports a source file that could not be read
type SourceReadError struct {
	Path string
	Err  error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("failed to read file %s: %v", e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}

// Extract collects identifiers, literals and comments of a syntax tree
func Extract(tree *syntax.Tree) *Collection {
	ret := NewCollection()
	syntax.Traverse(tree, func(node *syntax.Node) bool {
		addComments(ret, node.Leading)
		addComments(ret, node.Trailing)
		switch node.Kind {
		case syntax.KindIdentifier:
			ret.Add(&TextUnit{Kind: KindIdentifier, Position: node.Position, Text: node.Text})
		case syntax.KindLiteral:
			ret.Add(&TextUnit{Kind: KindLiteral, Position: node.Position, Text: node.Text})
		}
		return true
	})
	return ret
}

func addComments(collection *Collection, comments []*syntax.Comment) {
	for _, comment := range comments {
		collection.Add(&TextUnit{Kind: KindComment, Position: comment.Position, Text: comment.Text})
	}
}

// Extractor parses sources and extracts their text units
type Extractor struct {
	parser inspector.Parser
	fs     afs.Service
}

// NewExtractor creates an extractor for the supplied parser
func NewExtractor(parser inspector.Parser, fs afs.Service) *Extractor {
	if fs == nil {
		fs = afs.New()
	}
	return &Extractor{parser: parser, fs: fs}
}

// ExtractSource parses source code and extracts its text units, parse errors are returned as is
func (e *Extractor) ExtractSource(ctx context.Context, src []byte) (*Collection, error) {
	tree, err := e.parser.Parse(ctx, src)
	if err != nil {
		return nil, err
	}
	return Extract(tree), nil
}

// ExtractFile reads a source file and extracts its text units
func (e *Extractor) ExtractFile(ctx context.Context, location string) (*Collection, error) {
	src, err := e.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, &SourceReadError{Path: location, Err: err}
	}
	return e.ExtractSource(ctx, src)
}
