package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List AI agent backends and their availability",
	Long: `Probe the host for the configured AI agent backends and show
which one an analysis run would select.`,
	RunE: runAgents,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(agentsCmd)
}

func runAgents(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	registry := buildAgentRegistry(cfg)
	availability := registry.Probe()

	selectedName := ""
	if selected, selectErr := registry.Select(availability, ""); selectErr == nil {
		selectedName = selected.Name()
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Agent", "Available", "Selected"})

	for _, name := range registry.Order() {
		if registry.Get(name) == nil {
			continue
		}

		available := "no"
		if availability[name] {
			available = "yes"
		}
		selected := ""
		if name == selectedName {
			selected = "✓"
		}
		t.AppendRow(table.Row{name, available, selected})
	}

	t.Render()
	return nil
}
