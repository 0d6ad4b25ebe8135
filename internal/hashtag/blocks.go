package hashtag

import "strings"

// SplitBlocks slices tags left to right into contiguous blocks of size
// elements; the last block holds the remainder. Empty input yields zero
// blocks, not one empty block. size must be positive; a non-positive size
// returns nil.
func SplitBlocks(tags []string, size int) [][]string {
	if size < 1 || len(tags) == 0 {
		return nil
	}

	blocks := make([][]string, 0, (len(tags)+size-1)/size)
	for start := 0; start < len(tags); start += size {
		end := min(start+size, len(tags))
		blocks = append(blocks, tags[start:end])
	}
	return blocks
}

// FormatBlock renders a block as a single copy-paste line: members joined by
// one space, no trailing separator.
func FormatBlock(block []string) string {
	return strings.Join(block, " ")
}
