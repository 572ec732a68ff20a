package lexicon

import (
	"strings"
	"unicode"
)

// run is a maximal sequence of letters and digits with its camel case parts, all lower case
type run struct {
	word  string
	parts []string
}

// Tokenize splits text into lower case words.
// Words are maximal runs of letters and digits, camel case humps start a new word
func Tokenize(text string) []string {
	var tokens []string
	for _, r := range runs(text) {
		tokens = append(tokens, r.parts...)
	}
	return tokens
}

func runs(text string) []run {
	var ret []run
	var parts []string
	var current []rune
	flushPart := func() {
		if len(current) > 0 {
			parts = append(parts, string(current))
			current = current[:0]
		}
	}
	flushRun := func() {
		flushPart()
		if len(parts) > 0 {
			ret = append(ret, run{word: strings.Join(parts, ""), parts: parts})
			parts = nil
		}
	}
	runes := []rune(text)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flushRun()
			continue
		}
		if len(current) > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			switch {
			case unicode.IsLower(prev), unicode.IsDigit(prev):
				flushPart()
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				flushPart()
			}
		}
		current = append(current, unicode.ToLower(r))
	}
	flushRun()
	return ret
}
