package domain

import "strings"

// SearchTokens derives the deduplicated lowercase word tokens of a title.
// The stored keyword set backs whole-token search: "Jord" will not match a
// listing titled "Air Jordan 1".
func SearchTokens(title string) []string {
	fields := strings.Fields(strings.ToLower(title))
	seen := make(map[string]bool, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,;:!?\"'()[]")
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// FoldTitle returns the lowercase form of a title used for prefix-range
// matching and title sorts.
func FoldTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
