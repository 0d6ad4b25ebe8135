package hashtag

import (
	"errors"
	"sort"
)

// Validation outcomes for a generation request. The core functions never
// return these themselves; Process classifies empty parser/generator output.
var (
	ErrMissingRoots    = errors.New("no roots found in input")
	ErrMissingSuffixes = errors.New("no suffixes found in input")
	ErrEmptyResult     = errors.New("no hashtags could be built")
)

// Result holds everything a presenter needs for one generation request.
type Result struct {
	Roots    []string
	Suffixes []string
	Hashtags []string   // sorted lexicographically
	Blocks   [][]string // contiguous slices of Hashtags
}

// Process runs the full pipeline on one inbound message: parse the word
// lists, validate them, build the combinations, and partition into blocks of
// blockSize. Hashtags are sorted before partitioning so output is stable for
// identical input. Returns ErrMissingRoots, ErrMissingSuffixes or
// ErrEmptyResult when there is nothing to present.
func Process(text string, blockSize int) (*Result, error) {
	roots, suffixes := ParseInput(text)
	if len(roots) == 0 {
		return nil, ErrMissingRoots
	}
	if len(suffixes) == 0 {
		return nil, ErrMissingSuffixes
	}

	tags := Combine(roots, suffixes)
	if len(tags) == 0 {
		return nil, ErrEmptyResult
	}
	sort.Strings(tags)

	return &Result{
		Roots:    roots,
		Suffixes: suffixes,
		Hashtags: tags,
		Blocks:   SplitBlocks(tags, blockSize),
	}, nil
}
