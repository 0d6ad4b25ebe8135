// Package hashtag implements the hashtag generation core: parsing root and
// suffix word lists out of freeform text, building the deduplicated
// cross-product of hashtags, and slicing the result into presentation blocks.
package hashtag

import (
	"regexp"
	"strings"
)

// Label patterns recognized in user input. A label is the word "корни"/"roots"
// or "суффиксы"/"suffixes" in any casing, followed by a colon.
var (
	rootsLabel    = regexp.MustCompile(`(?i)(?:корни|roots)\s*:`)
	suffixesLabel = regexp.MustCompile(`(?i)(?:суффиксы|suffixes)\s*:`)
)

// ParseInput extracts the root and suffix word lists from freeform text.
//
// Whitespace runs (including newlines) are collapsed first, so labelled
// segments may share a line or span several. Each segment runs from its label
// to the next label occurrence or the end of the input, whichever comes first,
// and is split on commas with empty entries dropped. Labels are matched
// case-insensitively and may appear in either order. A missing label yields an
// empty list for that side; ParseInput never fails.
func ParseInput(text string) (roots, suffixes []string) {
	text = strings.Join(strings.Fields(text), " ")

	roots = splitWords(segmentAfter(text, rootsLabel, suffixesLabel))
	suffixes = splitWords(segmentAfter(text, suffixesLabel, rootsLabel))
	return roots, suffixes
}

// segmentAfter returns the text between the first match of label and the next
// label occurrence (of either kind) or the end of text. Empty if label is not
// present.
func segmentAfter(text string, label, other *regexp.Regexp) string {
	loc := label.FindStringIndex(text)
	if loc == nil {
		return ""
	}

	rest := text[loc[1]:]
	end := len(rest)
	if next := label.FindStringIndex(rest); next != nil && next[0] < end {
		end = next[0]
	}
	if next := other.FindStringIndex(rest); next != nil && next[0] < end {
		end = next[0]
	}
	return rest[:end]
}

// splitWords splits a captured segment on commas, trimming each entry and
// dropping empty ones. Order is preserved; duplicates are kept.
func splitWords(segment string) []string {
	if segment == "" {
		return nil
	}

	parts := strings.Split(segment, ",")
	words := make([]string, 0, len(parts))
	for _, part := range parts {
		if word := strings.TrimSpace(part); word != "" {
			words = append(words, word)
		}
	}
	if len(words) == 0 {
		return nil
	}
	return words
}
