package detector

import (
	"github.com/viant/afs"
	"github.com/viant/solemn/inspector"
	"github.com/viant/solemn/lexicon"
	"go.uber.org/zap"
)

type Option func(*Detector)

// WithLexicon sets the initially active lexicon
func WithLexicon(lex lexicon.Lexicon) Option {
	return func(d *Detector) {
		d.lexicon = lex
	}
}

// WithFactory sets the parser factory
func WithFactory(factory *inspector.Factory) Option {
	return func(d *Detector) {
		d.factory = factory
	}
}

// WithFS sets the file system used to read sources
func WithFS(fs afs.Service) Option {
	return func(d *Detector) {
		d.fs = fs
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(d *Detector) {
		d.logger = logger
	}
}

// WithDefaultLanguage sets the language used for text without a recognizable file name
func WithDefaultLanguage(name string) Option {
	return func(d *Detector) {
		d.language = name
	}
}

// WithConcurrency limits the number of files scanned in parallel
func WithConcurrency(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.concurrency = n
		}
	}
}

// WithExcludes sets directory names skipped when walking paths
func WithExcludes(names ...string) Option {
	return func(d *Detector) {
		d.excludes = map[string]bool{}
		for _, name := range names {
			d.excludes[name] = true
		}
	}
}

// WithExtensions restricts walked files to the supplied extensions
func WithExtensions(extensions ...string) Option {
	return func(d *Detector) {
		d.extensions = map[string]bool{}
		for _, ext := range extensions {
			d.extensions[normalizeExt(ext)] = true
		}
	}
}
