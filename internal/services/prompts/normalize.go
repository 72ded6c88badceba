// Package prompts turns extracted document text into review-style study prompts.
//
// The pipeline is a straight line of pure functions:
//
//	JoinPages → Normalize → Segment → Filter → Synthesize
//
// Each stage consumes the previous stage's complete output. The patterns
// below are heuristics, not language understanding: abbreviations such as
// "Dr. Smith" split into two candidates, and multi-column pages may arrive
// interleaved from the extractor.
package prompts

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// disallowedChars matches anything outside letters, digits, space,
	// newline and the punctuation . , ! ?
	disallowedChars = regexp.MustCompile(`[^\p{L}\p{N} \n.,!?]`)

	// whitespaceRun matches a maximal run of whitespace, newlines included.
	whitespaceRun = regexp.MustCompile(`\s+`)

	// newlineRun matches a maximal run of newlines.
	newlineRun = regexp.MustCompile(`\n+`)
)

// JoinPages concatenates page texts in order, each followed by a single newline.
// No pages yields "".
func JoinPages(pages []string) string {
	var b strings.Builder
	for _, p := range pages {
		b.WriteString(p)
		b.WriteByte('\n')
	}
	return b.String()
}

// Normalize reduces text to the allow-list and canonical single spaces.
// The result has no newlines, no runs of spaces, and no leading or trailing
// space. Normalize is total and idempotent.
func Normalize(text string) string {
	// Compose first so "e" + combining acute counts as one letter.
	text = norm.NFC.String(text)

	text = disallowedChars.ReplaceAllString(text, " ")
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = newlineRun.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
