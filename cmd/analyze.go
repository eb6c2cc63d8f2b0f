package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/mcpcatalog/application"
)

const spinnerInterval = 100 * time.Millisecond

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	outputPath       string
	agentOverride    string
	ingesterOverride string
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var analyzeCmd = &cobra.Command{
	Use:   "analyze <repository-url> <server-id>",
	Short: "Analyze an MCP server repository and generate its catalog record",
	Long: `Analyze an MCP server repository and generate a catalog
configuration record.

The repository is ingested (summary, tree, key files), the gathered
context is handed to the best available AI agent, and the agent's JSON
output becomes the record. If ingestion degrades or the agent fails,
the record is derived from the template instead — the run still
succeeds with a less accurate record.`,
	Args: cobra.ExactArgs(2),
	RunE: runAnalyze,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	analyzeCmd.Flags().StringVarP(
		&outputPath, "output", "o", "",
		"Output file path (default: <output-dir>/<server-id>.json)",
	)
	analyzeCmd.Flags().StringVar(
		&agentOverride, "agent", "",
		"Force a specific AI agent (gemini, codex, claude); ignored when unavailable",
	)
	analyzeCmd.Flags().StringVar(
		&ingesterOverride, "ingester", "",
		"Force the ingestion strategy (gitingest, local)",
	)
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	repositoryURL, serverID := args[0], args[1]

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	container, err := buildContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to assemble services: %w", err)
	}

	fmt.Printf("🚀 Starting analysis of %s\n", serverID)
	fmt.Printf("🔗 Repository: %s\n", repositoryURL)
	fmt.Println()

	var indicator *spinner.Spinner
	if !verbose {
		indicator = spinner.New(spinner.CharSets[14], spinnerInterval)
		indicator.Suffix = " analyzing repository..."
		indicator.Start()
	}

	var result *application.RunResult
	invokeErr := container.Invoke(func(svc *application.AnalyzerService) error {
		var runErr error
		result, runErr = svc.Run(ctx, repositoryURL, serverID, application.RunOptions{
			OutputPath:    outputPath,
			AgentOverride: agentOverride,
			Verbose:       verbose,
		})
		return runErr
	})

	if indicator != nil {
		indicator.Stop()
	}

	if invokeErr != nil {
		return invokeErr
	}

	fmt.Println()
	fmt.Printf("✅ Analysis complete! Configuration saved to: %s\n", result.OutputPath)
	fmt.Printf("🤖 AI agent: %s (ingested via %s)\n", result.AgentName, result.IngesterName)
	if result.FellBack {
		fmt.Println("⚠️  Record derived from template fallback — review before use")
	}
	fmt.Printf("📊 Tools found: %d\n", result.ToolCount)
	fmt.Printf("🏷️  Tags: %s\n", strings.Join(result.Tags, ", "))
	fmt.Printf("🚀 Priority deployment: %s\n", result.PriorityDeployment)

	logger.Debugf("Run finished for %s", serverID)
	return nil
}
