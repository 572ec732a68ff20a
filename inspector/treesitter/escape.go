package treesitter

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

var simpleEscapes = map[byte]rune{
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
	'`':  '`',
}

// Unescape decodes C style escape sequences of a string literal body:
// single character escapes, octal, \xHH, \uXXXX (surrogate pairs combined) and \u{X...}.
// Escaped line breaks are removed, extra maps additional single character escapes,
// any other escaped character stands for itself
func Unescape(content string, extra map[byte]rune) string {
	if strings.IndexByte(content, '\\') == -1 {
		return content
	}
	builder := strings.Builder{}
	builder.Grow(len(content))
	for i := 0; i < len(content); {
		c := content[i]
		if c != '\\' || i+1 == len(content) {
			builder.WriteByte(c)
			i++
			continue
		}
		r, size := unescapeOne(content[i+1:], extra)
		if r >= 0 {
			builder.WriteRune(r)
		}
		i += 1 + size
	}
	return builder.String()
}

// unescapeOne decodes the sequence following a backslash, it returns -1 for sequences producing no text
func unescapeOne(s string, extra map[byte]rune) (rune, int) {
	c := s[0]
	if r, ok := extra[c]; ok {
		return r, 1
	}
	if r, ok := simpleEscapes[c]; ok {
		return r, 1
	}
	switch {
	case c == '\n':
		return -1, 1
	case c == '\r':
		if len(s) > 1 && s[1] == '\n' {
			return -1, 2
		}
		return -1, 1
	case c >= '0' && c <= '7':
		limit := 3
		if c > '3' {
			limit = 2
		}
		n := 1
		for n < limit && n < len(s) && s[n] >= '0' && s[n] <= '7' {
			n++
		}
		value, _ := strconv.ParseUint(s[:n], 8, 32)
		return rune(value), n
	case c == 'x':
		if value, ok := parseHex(s, 1, 3); ok {
			return value, 3
		}
	case c == 'u':
		if len(s) > 1 && s[1] == '{' {
			if end := strings.IndexByte(s, '}'); end > 2 {
				if value, ok := parseHex(s, 2, end); ok && utf8.ValidRune(value) {
					return value, end + 1
				}
			}
			break
		}
		value, ok := parseHex(s, 1, 5)
		if !ok {
			break
		}
		if utf16.IsSurrogate(value) && len(s) >= 11 && s[5] == '\\' && s[6] == 'u' {
			if low, ok := parseHex(s, 7, 11); ok {
				if combined := utf16.DecodeRune(value, low); combined != utf8.RuneError {
					return combined, 11
				}
			}
		}
		return value, 5
	}
	r, size := utf8.DecodeRuneInString(s)
	return r, size
}

func parseHex(s string, from, to int) (rune, bool) {
	if to > len(s) {
		return 0, false
	}
	value, err := strconv.ParseUint(s[from:to], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(value), true
}
