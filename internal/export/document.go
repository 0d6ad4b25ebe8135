// Package export renders a generation result as the downloadable text file.
package export

import (
	"fmt"
	"strings"

	"github.com/tagmix/tagmix/internal/hashtag"
)

// Filename is the name under which the document is offered for download.
const Filename = "hashtags.txt"

// separatorWidth is the length of the "=" rule between the header and the blocks.
const separatorWidth = 40

// Document renders the downloadable UTF-8 file for one generation result: a
// header line with the total count, the echoed roots and suffixes, a
// separator rule, a blank line, then every block under a numbered "Блок i:"
// heading with blank lines between blocks. The layout is a compatibility
// contract; change it only together with whatever parses these files
// downstream.
func Document(res *hashtag.Result) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "Хэштеги (всего: %d)\n", len(res.Hashtags))
	fmt.Fprintf(&b, "Корни: %s\n", strings.Join(res.Roots, ", "))
	fmt.Fprintf(&b, "Суффиксы: %s\n", strings.Join(res.Suffixes, ", "))
	b.WriteString(strings.Repeat("=", separatorWidth))
	b.WriteString("\n\n")

	for i, block := range res.Blocks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Блок %d:\n%s", i+1, hashtag.FormatBlock(block))
	}

	return []byte(b.String())
}
