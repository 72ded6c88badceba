package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Shimizu-Technology/study-prompts-api/internal/observability"
	"github.com/Shimizu-Technology/study-prompts-api/internal/services/pdf"
	"github.com/Shimizu-Technology/study-prompts-api/internal/services/prompts"
)

var extractFlags struct {
	minLength  int
	maxPrompts int
	strict     bool
	maxPages   int
	timeout    time.Duration
	jsonOut    bool
	textOnly   bool
	verbose    bool
}

var extractCmd = &cobra.Command{
	Use:   "extract <file.pdf>",
	Short: "Print a PDF's text and the prompts generated from it",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	f := extractCmd.Flags()
	f.IntVar(&extractFlags.minLength, "min-length", prompts.DefaultMinCandidateLength, "sentences must be longer than this many characters")
	f.IntVar(&extractFlags.maxPrompts, "max-prompts", prompts.DefaultMaxPrompts, "maximum number of prompts")
	f.BoolVar(&extractFlags.strict, "strict", false, "validate the PDF structure with pdfcpu before decoding")
	f.IntVar(&extractFlags.maxPages, "max-pages", 0, "reject documents with more pages (0 = unlimited)")
	f.DurationVar(&extractFlags.timeout, "timeout", 30*time.Second, "stop waiting for a result after this long")
	f.BoolVar(&extractFlags.jsonOut, "json", false, "print the result as JSON")
	f.BoolVar(&extractFlags.textOnly, "prompts-only", false, "skip the extracted text")
	f.BoolVar(&extractFlags.verbose, "verbose", false, "log pipeline details to stderr")
}

func runExtract(cmd *cobra.Command, args []string) error {
	path := args[0]

	// The file picker's job: refuse anything not presented as a PDF.
	if strings.ToLower(filepath.Ext(path)) != ".pdf" {
		return fmt.Errorf("%s: only .pdf files are accepted", path)
	}

	if extractFlags.minLength < 1 || extractFlags.maxPrompts < 1 {
		return fmt.Errorf("--min-length and --max-prompts must be at least 1")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	level := "disabled"
	if extractFlags.verbose {
		level = "debug"
	}
	logger := observability.NewLogger(observability.LogConfig{
		Level:       level,
		Format:      "console",
		Output:      cmd.ErrOrStderr(),
		ServiceName: "prompts-cli",
	})

	gen := prompts.NewGenerator(
		pdf.NewExtractor(pdf.Config{StrictValidation: extractFlags.strict, MaxPages: extractFlags.maxPages}),
		prompts.Options{
			MinCandidateLength: extractFlags.minLength,
			MaxPrompts:         extractFlags.maxPrompts,
			Logger:             &logger,
		},
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), extractFlags.timeout)
	defer cancel()

	res, err := generate(ctx, gen, data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if extractFlags.jsonOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	printResult(cmd.OutOrStdout(), res, !extractFlags.textOnly)
	return nil
}

// generate runs the pipeline in its own goroutine so a page that never
// returns to the between-pages ctx check still can't hold the command past
// its deadline. The worker pool waits on results the same way.
func generate(ctx context.Context, gen *prompts.Generator, data []byte) (*prompts.Result, error) {
	type outcome struct {
		res *prompts.Result
		err error
	}
	done := make(chan outcome, 1)

	go func() {
		res, err := gen.Generate(ctx, data)
		done <- outcome{res, err}
	}()

	select {
	case out := <-done:
		return out.res, out.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// printResult renders the text and prompts, or the empty-state message.
func printResult(w io.Writer, res *prompts.Result, withText bool) {
	heading := color.New(color.Bold, color.FgCyan)

	if withText {
		heading.Fprintf(w, "Extracted text (%d pages)\n", res.PageCount)
		fmt.Fprintln(w, strings.TrimRight(res.Text, "\n"))
		fmt.Fprintln(w)
	}

	heading.Fprintln(w, "Generated questions")
	if res.Empty() {
		color.New(color.FgYellow).Fprintln(w, prompts.EmptyStateMessage)
		return
	}
	for _, p := range res.Prompts {
		fmt.Fprintln(w, p)
	}
}
