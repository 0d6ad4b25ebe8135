package hashtag

import "strings"

// Combine builds every hashtag of the form "#" + root + suffix, lowercased,
// for the cross-product of the two word lists. Entries that trim to empty are
// skipped. The returned slice contains no duplicates; no ordering is
// guaranteed, so consumers that need a stable order must sort.
//
// Empty roots or suffixes produce an empty result, not an error: classifying
// emptiness is the caller's job.
func Combine(roots, suffixes []string) []string {
	seen := make(map[string]struct{}, len(roots)*len(suffixes))
	tags := make([]string, 0, len(roots)*len(suffixes))

	for _, root := range roots {
		root = strings.TrimSpace(root)
		if root == "" {
			continue
		}
		for _, suffix := range suffixes {
			suffix = strings.TrimSpace(suffix)
			if suffix == "" {
				continue
			}

			tag := strings.ToLower("#" + root + suffix)
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags
}
