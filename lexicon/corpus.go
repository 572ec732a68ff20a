package lexicon

// Corpus is a categorized lexicon, every word carries one or more categories
type Corpus struct {
	index *index
}

// New creates a corpus from a word to categories mapping
func New(words map[string][]string) *Corpus {
	ret := &Corpus{index: newIndex()}
	for word, categories := range words {
		ret.index.add(word, categories)
	}
	return ret
}

// MatchedWords returns the distinct corpus words found in text
func (c *Corpus) MatchedWords(text string) []string {
	return c.index.matchedWords(text)
}

// CategoryCounts counts every word occurrence once per category of the word
func (c *Corpus) CategoryCounts(text string) Issues {
	ret := Issues{}
	c.index.match(text, func(e *entry) {
		for _, category := range e.categories {
			ret[category]++
		}
	})
	return ret
}

// Len returns the number of corpus words
func (c *Corpus) Len() int {
	return c.index.len()
}

// Words returns the corpus as a word to categories mapping
func (c *Corpus) Words() map[string][]string {
	ret := make(map[string][]string, c.index.len())
	for _, e := range c.index.entries() {
		ret[e.word] = append([]string(nil), e.categories...)
	}
	return ret
}

// Categories returns the number of words per category
func (c *Corpus) Categories() Issues {
	ret := Issues{}
	for _, e := range c.index.entries() {
		for _, category := range e.categories {
			ret[category]++
		}
	}
	return ret
}
