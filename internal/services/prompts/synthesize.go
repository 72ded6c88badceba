package prompts

import (
	"fmt"
	"strings"
)

// DefaultMaxPrompts caps how many prompts one document produces.
const DefaultMaxPrompts = 5

// promptTemplate is fixed and not grammar-aware: a "?" is appended
// whatever the sentence originally ended with.
const promptTemplate = "Q%d: What does this mean? → \"%s?\""

// Synthesize wraps the first maxPrompts candidates, in order, into prompts.
// An empty input gives an empty (non-nil) slice.
func Synthesize(candidates []string, maxPrompts int) []string {
	n := min(len(candidates), maxPrompts)
	if n < 0 {
		n = 0
	}

	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fmt.Sprintf(promptTemplate, i+1, strings.TrimSpace(candidates[i])))
	}
	return out
}
