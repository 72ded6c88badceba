package prompts

import "unicode/utf8"

// DefaultMinCandidateLength is the length a candidate must exceed to survive.
// Shorter segments are usually headers, page numbers or list bullets.
const DefaultMinCandidateLength = 30

// Filter keeps candidates whose character count is strictly greater than
// minLength. Order is preserved and duplicates are kept.
func Filter(candidates []string, minLength int) []string {
	kept := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if utf8.RuneCountInString(c) > minLength {
			kept = append(kept, c)
		}
	}
	return kept
}
