package search

import (
	"regexp"
	"strings"
)

// Range is a half-open [Start, End) byte span of a match.
type Range struct {
	Start int
	End   int
}

// MatchRanges returns every case-insensitive occurrence of term in
// text. The term is treated as a literal: regex metacharacters in the
// search text match themselves.
func MatchRanges(text, term string) []Range {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(term))
	if err != nil {
		return nil
	}
	idx := re.FindAllStringIndex(text, -1)
	if idx == nil {
		return nil
	}
	ranges := make([]Range, len(idx))
	for i, m := range idx {
		ranges[i] = Range{Start: m[0], End: m[1]}
	}
	return ranges
}

// Highlight wraps every occurrence of term in text with the open and
// close markers, preserving the original casing of the matched spans.
// Empty markers default to <mark> tags.
func Highlight(text, term, open, close string) string {
	if open == "" && close == "" {
		open, close = "<mark>", "</mark>"
	}
	ranges := MatchRanges(text, term)
	if len(ranges) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(ranges)*(len(open)+len(close)))
	last := 0
	for _, r := range ranges {
		b.WriteString(text[last:r.Start])
		b.WriteString(open)
		b.WriteString(text[r.Start:r.End])
		b.WriteString(close)
		last = r.End
	}
	b.WriteString(text[last:])
	return b.String()
}
