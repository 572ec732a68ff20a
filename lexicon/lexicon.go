package lexicon

import (
	"sort"
	"strconv"
	"strings"
)

// DefaultCategory is used for words without a category and for flat word lists
const DefaultCategory = "profanity"

// Lexicon matches text against a corpus of offensive vocabulary.
// Implementations must be safe for concurrent use and never fail on empty or non alphabetic input
type Lexicon interface {
	// MatchedWords returns the distinct corpus entries found in text, sorted
	MatchedWords(text string) []string

	// CategoryCounts returns the number of matches per category
	CategoryCounts(text string) Issues
}

// Issues maps a category to its match count
type Issues map[string]int

// Categories returns category names in ascending order
func (i Issues) Categories() []string {
	ret := make([]string, 0, len(i))
	for category := range i {
		ret = append(ret, category)
	}
	sort.Strings(ret)
	return ret
}

// Total returns the sum of all counts
func (i Issues) Total() int {
	total := 0
	for _, count := range i {
		total += count
	}
	return total
}

// String renders space separated category=count pairs ordered by category
func (i Issues) String() string {
	builder := strings.Builder{}
	for j, category := range i.Categories() {
		if j > 0 {
			builder.WriteString(" ")
		}
		builder.WriteString(category)
		builder.WriteString("=")
		builder.WriteString(strconv.Itoa(i[category]))
	}
	return builder.String()
}
