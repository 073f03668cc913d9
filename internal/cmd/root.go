// Package cmd contains the CLI commands for cohrep.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the current version of cohrep.
var Version = "0.1.0"

// Global flags
var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cohrep",
	Short: "Class cohesion report generator for Java codebases",
	Long: `cohrep measures class-level cohesion across a Java codebase and renders
the results as a static report bundle.

It parses every Java source file under the input directory, runs a fixed
set of cohesion metrics (CAMC, LCOM, OCC, NHD, LCOM2, LCOM3) over every
class, aggregates the per-class scores into an index and a class-by-metric
matrix, and derives one aggregate project score.

The output bundle contains XML documents, styled HTML views, an SVG
scorecard badge, and the presentation templates for offline re-rendering.

Examples:
  cohrep analyze ./src ./cohesion-report
  cohrep analyze . report --exclude "src/test/**"`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// logf prints progress output when --verbose is set.
func logf(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
