package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/toolscout/internal/analyzer"
	"github.com/jakoblorz/toolscout/internal/filesystem"
	"github.com/jakoblorz/toolscout/internal/models"
	"github.com/jakoblorz/toolscout/internal/recommend"
	"github.com/jakoblorz/toolscout/internal/report"
	"github.com/jakoblorz/toolscout/internal/tui"
	"github.com/jakoblorz/toolscout/internal/tui/picker"
)

// RecommendCommand handles the recommend command
type RecommendCommand struct {
	fs filesystem.FileSystem
}

// NewRecommendCommand creates a new recommend command
func NewRecommendCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &RecommendCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "recommend [path]",
		Short: "Recommend tools for a project",
		Long: `Fingerprints a project directory, scores every catalog entry
against it and prints the best matches.

Scores combine language, framework, dependency, file and keyword
signals with quality multipliers for official and well-audited entries.`,
		Example: `  # Recommend for the current directory
  toolscout recommend

  # Only skills and MCP servers, as JSON
  toolscout recommend --types skill,mcp-server --format json

  # Pick tools interactively and print install commands
  toolscout recommend -i

  # Write a markdown report
  toolscout recommend --report RECOMMENDATIONS.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("format", "text", "Output format: text or json")
	cobraCmd.Flags().String("description", "", "Project description used for keyword matching")
	cobraCmd.Flags().StringSlice("types", nil, "Entry types to include (plugin, mcp-server, skill, workflow, hook, command, agent)")
	cobraCmd.Flags().Int("max-results", 20, "Maximum number of recommendations")
	cobraCmd.Flags().BoolP("interactive", "i", false, "Select tools interactively and print install commands")
	cobraCmd.Flags().String("report", "", "Write a markdown report to the given file")
	cobraCmd.Flags().Bool("gitignore", false, "Respect the project's root .gitignore during the scan")

	return cobraCmd
}

// Run executes the recommend command
func (c *RecommendCommand) Run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	description, _ := cmd.Flags().GetString("description")
	typeNames, _ := cmd.Flags().GetStringSlice("types")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	interactive, _ := cmd.Flags().GetBool("interactive")
	reportPath, _ := cmd.Flags().GetString("report")
	useGitignore, _ := cmd.Flags().GetBool("gitignore")

	types, err := models.ParseRecommendationTypes(typeNames)
	if err != nil {
		return err
	}
	if maxResults < 1 {
		return fmt.Errorf("max-results must be at least 1")
	}

	path, err := resolveProjectPath(c.fs, args)
	if err != nil {
		return err
	}

	fingerprint := analyzer.New(c.fs, analyzer.WithGitignore(useGitignore)).Analyze(path)
	if description != "" {
		fingerprint.Description = description
	}

	cat := loadCatalog(cmd, c.fs)
	results := recommend.Score(cat.Entries(), fingerprint, fingerprint.Description, recommend.DefaultConfig(), recommend.Options{
		MaxResults: maxResults,
		Types:      types,
	})

	if reportPath != "" {
		markdown, err := report.NewGenerator(c.fs).Render(fingerprint, results)
		if err != nil {
			return err
		}
		if err := c.fs.WriteFile(reportPath, []byte(markdown), 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", reportPath)
		return nil
	}

	if interactive {
		return c.runInteractive(cmd, results)
	}

	if format == "json" {
		return printJSON(cmd, results)
	}

	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(out, "No matching tools found.")
		return nil
	}

	for i, r := range results {
		fmt.Fprintf(out, "%d. %s (%s) %.2f\n", i+1, r.Item.Name, r.Item.Type, r.Score)
		if r.Item.Description != "" {
			fmt.Fprintf(out, "   %s\n", r.Item.Description)
		}
		if len(r.Reasons) > 0 {
			fmt.Fprintf(out, "   matched: %s\n", strings.Join(r.Reasons, ", "))
		}
	}

	return nil
}

func (c *RecommendCommand) runInteractive(cmd *cobra.Command, results []models.ScoredEntry) error {
	out := cmd.OutOrStdout()

	result, err := picker.NewFlow().Run(results)
	if err != nil {
		return err
	}
	if result == nil {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}
	if len(result.Selected) == 0 {
		fmt.Fprintln(out, "Nothing selected.")
		return nil
	}

	fmt.Fprintln(out, tui.TitleStyle.Render("Install instructions"))
	for _, line := range picker.InstallInstructions(result.Selected) {
		fmt.Fprintln(out, line)
	}
	return nil
}
