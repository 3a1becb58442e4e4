// Package sanitize cleans editor exported HTML before it is displayed.
//
// HTML is a best effort, pattern based sanitizer. It removes script blocks,
// javascript: scheme prefixes and inline event handler assignments but it does not
// parse the document, so entity encoded or otherwise obfuscated markup can survive
// it. It is NOT a security boundary. Use Audit to find what it missed and a
// policy based sanitizer where untrusted markup must be rendered.
package sanitize

import (
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

var (
	scriptRe     = regexp2.MustCompile(`<script\b[^<]*(?:(?!</script>)<[^<]*)*</script>`, regexp2.IgnoreCase|regexp2.ECMAScript)
	jsSchemeRe   = regexp2.MustCompile(`javascript:`, regexp2.IgnoreCase|regexp2.ECMAScript)
	eventAttrRe  = regexp2.MustCompile(`on\w+\s*=`, regexp2.IgnoreCase|regexp2.ECMAScript)
	replacements = []*regexp2.Regexp{scriptRe, jsSchemeRe, eventAttrRe}
)

// HTML removes, in order and case-insensitively: <script> elements up to the first
// closing tag, every "javascript:" and every on<word>= attribute assignment. Bytes
// outside the removed text are kept as is, invalid UTF-8 included.
func HTML(s string) string {
	for _, re := range replacements {
		out, err := remove(re, s)
		if err != nil {
			// Only a match timeout errors and none is configured.
			continue
		}
		s = out
	}
	return s
}

// remove deletes every match of re from s. re matches against the runes of s, one
// per invalid byte, so matches are mapped back to byte offsets and the text between
// them is copied from s.
func remove(re *regexp2.Regexp, s string) (string, error) {
	m, err := re.FindStringMatch(s)
	if err != nil || m == nil {
		return s, err
	}
	offsets := runeOffsets(s)

	var b strings.Builder
	last := 0
	for m != nil {
		b.WriteString(s[last:offsets[m.Index]])
		last = offsets[m.Index+m.Length]
		m, err = re.FindNextMatch(m)
		if err != nil {
			return s, err
		}
	}
	b.WriteString(s[last:])
	return b.String(), nil
}

// runeOffsets returns the byte offset of every rune of s followed by len(s).
func runeOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := 0; i < len(s); {
		offsets = append(offsets, i)
		_, w := utf8.DecodeRuneInString(s[i:])
		i += w
	}
	return append(offsets, len(s))
}
