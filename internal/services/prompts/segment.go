package prompts

import "regexp"

// sentenceDelimiter matches ". ", "? " or "! ", or a terminator at the very
// end of the text. Alternation is leftmost-first, so at most one delimiter
// is consumed per position. "?! " only splits at the "! ".
var sentenceDelimiter = regexp.MustCompile(`[.?!](?: |$)`)

// Segment splits normalized text into candidate sentences in their original
// order. Delimiters are consumed, so no candidate keeps its terminal
// punctuation. Text without a delimiter comes back as a single candidate;
// empty text yields no candidates.
func Segment(text string) []string {
	if text == "" {
		return []string{}
	}

	parts := sentenceDelimiter.Split(text, -1)

	// A terminator at end of text leaves an empty tail behind.
	if n := len(parts); n > 1 && parts[n-1] == "" {
		parts = parts[:n-1]
	}
	return parts
}
