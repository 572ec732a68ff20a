package lexicon

// WordList is a flat lexicon without categories.
// Its category counts collapse into DefaultCategory with the number of distinct matched words
type WordList struct {
	index *index
}

// NewWordList creates a flat lexicon
func NewWordList(words ...string) *WordList {
	ret := &WordList{index: newIndex()}
	for _, word := range words {
		ret.index.add(word, nil)
	}
	return ret
}

// MatchedWords returns the distinct words found in text
func (w *WordList) MatchedWords(text string) []string {
	return w.index.matchedWords(text)
}

// CategoryCounts returns {DefaultCategory: distinct matches} or an empty result
func (w *WordList) CategoryCounts(text string) Issues {
	ret := Issues{}
	if matched := w.MatchedWords(text); len(matched) > 0 {
		ret[DefaultCategory] = len(matched)
	}
	return ret
}

// Len returns the number of words
func (w *WordList) Len() int {
	return w.index.len()
}

// Words returns all words in ascending order
func (w *WordList) Words() []string {
	entries := w.index.entries()
	ret := make([]string, 0, len(entries))
	for _, e := range entries {
		ret = append(ret, e.word)
	}
	return ret
}
