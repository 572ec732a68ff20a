package detector

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/solemn/inspector"
	"github.com/viant/solemn/inspector/javascript"
	"github.com/viant/solemn/lexicon"
	"github.com/viant/solemn/unit"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultExcludes lists directory names skipped when walking paths
var DefaultExcludes = []string{".git", "node_modules", "vendor", "bower_components"}

// Detector finds offensive vocabulary in source code
type Detector struct {
	mu          sync.RWMutex
	lexicon     lexicon.Lexicon
	factory     *inspector.Factory
	fs          afs.Service
	logger      *zap.Logger
	language    string
	concurrency int
	excludes    map[string]bool
	extensions  map[string]bool
}

// New creates a detector, the built-in corpus is active unless WithLexicon is supplied
func New(options ...Option) *Detector {
	ret := &Detector{
		language:    javascript.Name,
		concurrency: runtime.NumCPU(),
	}
	WithExcludes(DefaultExcludes...)(ret)
	for _, option := range options {
		option(ret)
	}
	if ret.lexicon == nil {
		ret.lexicon = lexicon.Default()
	}
	if ret.factory == nil {
		ret.factory = inspector.NewFactory()
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.logger == nil {
		ret.logger = zap.NewNop()
	}
	return ret
}

// Lexicon returns the active lexicon
func (d *Detector) Lexicon() lexicon.Lexicon {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lexicon
}

// SetLexicon replaces the active lexicon for subsequent scans, scans in progress keep their lexicon.
// A nil lexicon matches nothing
func (d *Detector) SetLexicon(lex lexicon.Lexicon) {
	if lex == nil {
		lex = lexicon.New(nil)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lexicon = lex
}

// Detect reads, parses and scans a source file, the parser is selected by file extension
// with the default language for files without a supported one
func (d *Detector) Detect(ctx context.Context, filePath string) ([]*Violation, error) {
	return d.detectFile(ctx, d.Lexicon(), filePath)
}

// DetectInText scans source text, fileName is copied into every violation and
// its extension selects the parser, otherwise the default language is used
func (d *Detector) DetectInText(ctx context.Context, text string, fileName string) ([]*Violation, error) {
	lex := d.Lexicon()
	parser, err := d.parser(fileName)
	if err != nil {
		return nil, err
	}
	collection, err := unit.NewExtractor(parser, d.fs).ExtractSource(ctx, []byte(text))
	if err != nil {
		return nil, err
	}
	return detect(lex, fileName, collection), nil
}

// DetectUnits matches extracted text units against the active lexicon.
// Violations are ordered identifiers first, then literals, then comments
func (d *Detector) DetectUnits(fileName string, collection *unit.Collection) []*Violation {
	return detect(d.Lexicon(), fileName, collection)
}

// DetectPaths scans files and directories concurrently, results are sorted by path.
// Per file errors are reported in FileResult.Err
func (d *Detector) DetectPaths(ctx context.Context, paths ...string) ([]*FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lex := d.Lexicon()
	files, failed := d.collectFiles(ctx, paths)
	results := make([]*FileResult, len(files))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(d.concurrency)
	for i, file := range files {
		i, file := i, file
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			violations, err := d.detectFile(ctx, lex, file)
			results[i] = &FileResult{Path: file, Violations: violations, Err: err}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	results = append(results, failed...)
	sort.SliceStable(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

func (d *Detector) detectFile(ctx context.Context, lex lexicon.Lexicon, filePath string) ([]*Violation, error) {
	parser, err := d.parser(filePath)
	if err != nil {
		return nil, err
	}
	collection, err := unit.NewExtractor(parser, d.fs).ExtractFile(ctx, filePath)
	if err != nil {
		d.logger.Debug("scan failed", zap.String("path", filePath), zap.Error(err))
		return nil, err
	}
	violations := detect(lex, filePath, collection)
	d.logger.Debug("scanned file",
		zap.String("path", filePath),
		zap.String("language", parser.Language()),
		zap.Int("units", collection.Len()),
		zap.Int("violations", len(violations)))
	return violations, nil
}

func (d *Detector) parser(fileName string) (inspector.Parser, error) {
	if fileName != "" && d.factory.Supports(fileName) {
		return d.factory.GetParser(fileName)
	}
	return d.factory.Language(d.language)
}

func (d *Detector) collectFiles(ctx context.Context, paths []string) ([]string, []*FileResult) {
	var files []string
	var failed []*FileResult
	seen := map[string]bool{}
	add := func(location string) {
		if !seen[location] {
			seen[location] = true
			files = append(files, location)
		}
	}
	for _, location := range paths {
		object, err := d.fs.Object(ctx, location)
		if err != nil {
			failed = append(failed, &FileResult{Path: location, Err: &unit.SourceReadError{Path: location, Err: err}})
			continue
		}
		if !object.IsDir() {
			add(location)
			continue
		}
		var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
			if info.IsDir() {
				return !d.excludes[info.Name()], nil
			}
			if d.accepts(info.Name()) {
				add(joinLocation(location, parent, info.Name()))
			}
			return true, nil
		}
		if err = d.fs.Walk(ctx, location, visitor); err != nil {
			failed = append(failed, &FileResult{Path: location, Err: fmt.Errorf("error walking directory %s: %w", location, err)})
		}
	}
	return files, failed
}

// joinLocation keeps the caller's form of location, relative paths stay relative
func joinLocation(location, parent, name string) string {
	if parent == "" {
		return url.Join(location, name)
	}
	return url.Join(location, parent, name)
}

func (d *Detector) accepts(name string) bool {
	if !d.factory.Supports(name) {
		return false
	}
	if len(d.extensions) == 0 {
		return true
	}
	return d.extensions[strings.ToLower(path.Ext(name))]
}

func detect(lex lexicon.Lexicon, fileName string, collection *unit.Collection) []*Violation {
	var violations []*Violation
	for _, group := range [][]*unit.TextUnit{collection.Identifiers, collection.Literals, collection.Comments} {
		for _, u := range group {
			issues := lex.CategoryCounts(u.Text)
			if len(issues) == 0 {
				continue
			}
			violations = append(violations, NewViolation(fileName, u, issues))
		}
	}
	return violations
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
