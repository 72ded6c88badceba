// Package main is the entry point for the prompts CLI: the same pipeline
// the server runs, fed from a file on disk and printed to the terminal.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the prompts CLI.
var rootCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Generate study prompts from a PDF",
	Long: `prompts extracts the text of a PDF and turns its longer sentences into
review questions. The heuristics are purely length-based: there is no
language understanding involved.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
