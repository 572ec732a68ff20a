package lexicon

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCorpus []byte

// Default returns the built-in categorized corpus
func Default() *Corpus {
	ret, err := Decode(defaultCorpus)
	if err != nil {
		panic(fmt.Sprintf("invalid embedded corpus: %v", err))
	}
	return ret.(*Corpus)
}

// Load reads a lexicon file (YAML or JSON).
// A mapping of word to categories produces a *Corpus, a plain sequence of words produces a *WordList
func Load(ctx context.Context, fs afs.Service, URL string) (Lexicon, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon %s: %w", URL, err)
	}
	ret, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode lexicon %s: %w", URL, err)
	}
	return ret, nil
}

// Decode decodes lexicon content
func Decode(data []byte) (Lexicon, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	switch actual := raw.(type) {
	case nil:
		return New(nil), nil
	case []interface{}:
		words, err := toStrings(actual)
		if err != nil {
			return nil, err
		}
		return NewWordList(words...), nil
	case map[string]interface{}:
		words := make(map[string][]string, len(actual))
		for word, value := range actual {
			switch categories := value.(type) {
			case nil:
				words[word] = nil
			case string:
				words[word] = []string{categories}
			case []interface{}:
				values, err := toStrings(categories)
				if err != nil {
					return nil, fmt.Errorf("word %q: %w", word, err)
				}
				words[word] = values
			default:
				return nil, fmt.Errorf("word %q: unsupported categories type %T", word, value)
			}
		}
		return New(words), nil
	}
	return nil, fmt.Errorf("unsupported lexicon type %T", raw)
}

func toStrings(values []interface{}) ([]string, error) {
	ret := make([]string, 0, len(values))
	for _, value := range values {
		text, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, but had %T", value)
		}
		ret = append(ret, text)
	}
	return ret, nil
}
