package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cohrep/cohrep/internal/app"
	"github.com/cohrep/cohrep/internal/config"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <input> <output>",
	Short: "Analyze a codebase and write the cohesion report bundle",
	Long: `Analyze parses the Java sources under <input>, computes every cohesion
metric for every class, and writes the report bundle to <output>.

<output> must not already exist: refusing to reuse a directory is the
guard against silently mixing artifacts from different runs.

The input directory may carry a .cohrep.yaml file configuring exclude
patterns and the skeleton cache; --exclude and --no-cache override it.

Examples:
  cohrep analyze ./src ./cohesion-report
  cohrep analyze . report --exclude "src/test/**" --exclude "**/generated/**"
  cohrep analyze . report --no-cache`,
	Args: cobra.ExactArgs(2),
	RunE: runAnalyze,
}

// Command-line flags
var (
	analyzeExclude []string
	analyzeNoCache bool
	analyzeConfig  string
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringSliceVar(&analyzeExclude, "exclude", nil, "Exclude patterns (glob, relative to input)")
	analyzeCmd.Flags().BoolVar(&analyzeNoCache, "no-cache", false, "Disable the skeleton cache")
	analyzeCmd.Flags().StringVar(&analyzeConfig, "config", "", "Path to config file (default: <input>/.cohrep.yaml)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	input, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving input path: %w", err)
	}
	output, err := filepath.Abs(args[1])
	if err != nil {
		return fmt.Errorf("resolving output path: %w", err)
	}

	var cfg *config.Config
	if analyzeConfig != "" {
		cfg, err = config.LoadFromPath(analyzeConfig)
	} else {
		cfg, err = config.Load(input)
	}
	if err != nil {
		return err
	}

	// CLI excludes extend the configured ones.
	cfg.Analysis.Exclude = append(cfg.Analysis.Exclude, analyzeExclude...)

	opts := []app.Option{
		app.WithConfig(cfg),
		app.WithLogf(logf),
	}
	if analyzeNoCache {
		opts = append(opts, app.WithoutCache())
	}

	a, err := app.New(input, output, opts...)
	if err != nil {
		return err
	}
	if err := a.Analyze(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", output)
	return nil
}
