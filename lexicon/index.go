package lexicon

import (
	"sort"
	"strings"
	"unicode"
)

type entry struct {
	word       string
	tokens     []string
	categories []string
}

// index matches single words by lookup and phrases by scanning token windows
type index struct {
	words   map[string]*entry
	phrases []*entry
}

func newIndex() *index {
	return &index{words: map[string]*entry{}}
}

func (x *index) add(word string, categories []string) {
	tokens := Tokenize(strings.Map(unicode.ToLower, word))
	if len(tokens) == 0 {
		return
	}
	key := strings.Join(tokens, " ")
	if len(tokens) == 1 {
		if existing, ok := x.words[key]; ok {
			existing.categories = mergeCategories(existing.categories, categories)
			return
		}
		x.words[key] = &entry{word: key, tokens: tokens, categories: mergeCategories(nil, categories)}
		return
	}
	for _, existing := range x.phrases {
		if existing.word == key {
			existing.categories = mergeCategories(existing.categories, categories)
			return
		}
	}
	x.phrases = append(x.phrases, &entry{word: key, tokens: tokens, categories: mergeCategories(nil, categories)})
}

func (x *index) len() int {
	return len(x.words) + len(x.phrases)
}

func (x *index) entries() []*entry {
	ret := make([]*entry, 0, x.len())
	for _, e := range x.words {
		ret = append(ret, e)
	}
	ret = append(ret, x.phrases...)
	sort.Slice(ret, func(i, j int) bool { return ret[i].word < ret[j].word })
	return ret
}

// match calls fn for every occurrence of a corpus entry in text.
// A word matches a whole letter/digit run or one of its camel case parts,
// a run made of a single part is looked up once
func (x *index) match(text string, fn func(e *entry)) {
	if x.len() == 0 {
		return
	}
	var tokens []string
	for _, r := range runs(text) {
		tokens = append(tokens, r.parts...)
		if e, ok := x.words[r.word]; ok {
			fn(e)
		}
		if len(r.parts) < 2 {
			continue
		}
		for _, part := range r.parts {
			if e, ok := x.words[part]; ok {
				fn(e)
			}
		}
	}
	for _, phrase := range x.phrases {
		for i := range tokens {
			if hasPrefix(tokens[i:], phrase.tokens) {
				fn(phrase)
			}
		}
	}
}

func (x *index) matchedWords(text string) []string {
	seen := map[string]bool{}
	var ret []string
	x.match(text, func(e *entry) {
		if !seen[e.word] {
			seen[e.word] = true
			ret = append(ret, e.word)
		}
	})
	sort.Strings(ret)
	return ret
}

func hasPrefix(tokens, prefix []string) bool {
	if len(tokens) < len(prefix) {
		return false
	}
	for i := range prefix {
		if tokens[i] != prefix[i] {
			return false
		}
	}
	return true
}

func mergeCategories(categories []string, more []string) []string {
	for _, category := range more {
		category = strings.TrimSpace(category)
		if category == "" {
			continue
		}
		found := false
		for _, existing := range categories {
			if existing == category {
				found = true
				break
			}
		}
		if !found {
			categories = append(categories, category)
		}
	}
	if len(categories) == 0 {
		categories = []string{DefaultCategory}
	}
	return categories
}
