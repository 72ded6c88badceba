package prompts

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// EmptyStateMessage is what a presentation layer shows when a document
// decoded fine but produced no prompts.
const EmptyStateMessage = "No questions could be generated from this document."

// TextExtractor decodes a document into ordered per-page text.
// *pdf.Extractor satisfies it.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) ([]string, error)
}

// Options tunes the length filter and the prompt cap. Zero values mean the defaults.
type Options struct {
	MinCandidateLength int
	MaxPrompts         int
	Logger             *zerolog.Logger
}

// Result holds the two independent outputs of one run.
type Result struct {
	Text      string   `json:"text"`       // DocumentText, before normalization
	Prompts   []string `json:"prompts"`    // never nil
	PageCount int      `json:"page_count"`
}

// Empty reports whether the run found no usable content.
func (r *Result) Empty() bool {
	return len(r.Prompts) == 0
}

// Generator runs the document-to-prompt pipeline for one document at a time.
// It holds no per-run state, so a single Generator can serve concurrent runs.
type Generator struct {
	extractor  TextExtractor
	minLength  int
	maxPrompts int
	logger     zerolog.Logger
}

// NewGenerator creates a Generator around the given extractor.
func NewGenerator(ext TextExtractor, opts Options) *Generator {
	g := &Generator{
		extractor:  ext,
		minLength:  opts.MinCandidateLength,
		maxPrompts: opts.MaxPrompts,
		logger:     zerolog.Nop(),
	}
	if g.minLength <= 0 {
		g.minLength = DefaultMinCandidateLength
	}
	if g.maxPrompts <= 0 {
		g.maxPrompts = DefaultMaxPrompts
	}
	if opts.Logger != nil {
		g.logger = *opts.Logger
	}
	return g
}

// Generate decodes data and derives prompts from its text.
//
// Decode failures are returned as-is (a *pdf.DecodeError from the default
// extractor) with a nil Result; there is no partial success. An empty or
// zero-page document is a valid Result with no prompts.
func (g *Generator) Generate(ctx context.Context, data []byte) (*Result, error) {
	start := time.Now()

	pages, err := g.extractor.Extract(ctx, data)
	if err != nil {
		return nil, err
	}

	text := JoinPages(pages)
	candidates := Segment(Normalize(text))
	kept := Filter(candidates, g.minLength)
	prompts := Synthesize(kept, g.maxPrompts)

	g.logger.Debug().
		Int("pages", len(pages)).
		Int("candidates", len(candidates)).
		Int("kept", len(kept)).
		Int("prompts", len(prompts)).
		Dur("elapsed", time.Since(start)).
		Msg("prompt pipeline finished")

	return &Result{
		Text:      text,
		Prompts:   prompts,
		PageCount: len(pages),
	}, nil
}
