package cmd

import (
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	configPath string
	verbose    bool
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var rootCmd = &cobra.Command{
	Use:   "mcpcatalog",
	Short: "MCP server repository analyzer and catalog generator",
	Long: `A CLI tool that analyzes MCP (Model Context Protocol) server
repositories and generates structured catalog configuration records.

Given a repository URL and a server identifier it:
- Resolves the repository reference
- Ingests the repository summary, tree, and key files
- Delegates analysis to the best available AI agent (gemini, codex, claude)
- Extracts the generated configuration from the agent's response
- Falls back to the template record whenever a stage fails
- Writes one JSON record per server identifier`,
}

func Execute() error {
	return rootCmd.Execute()
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath, "config", "c", "",
		"Path to config file (default: search standard locations)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false,
		"Enable verbose output",
	)
}
