package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/toolscout/internal/filesystem"
	"github.com/jakoblorz/toolscout/internal/models"
	"github.com/jakoblorz/toolscout/internal/recommend"
)

// SearchCommand handles the search command
type SearchCommand struct {
	fs filesystem.FileSystem
}

// NewSearchCommand creates a new search command
func NewSearchCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &SearchCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog by keyword",
		Example: `  # Find database tooling
  toolscout search postgres

  # Only MCP servers, as JSON
  toolscout search postgres --types mcp-server --format json`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("format", "text", "Output format: text or json")
	cobraCmd.Flags().StringSlice("types", nil, "Entry types to include")
	cobraCmd.Flags().Int("max-results", 20, "Maximum number of results")

	return cobraCmd
}

// Run executes the search command
func (c *SearchCommand) Run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	typeNames, _ := cmd.Flags().GetStringSlice("types")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	query := strings.TrimSpace(args[0])
	if query == "" {
		return fmt.Errorf("query must not be empty")
	}

	types, err := models.ParseRecommendationTypes(typeNames)
	if err != nil {
		return err
	}
	if maxResults < 1 {
		return fmt.Errorf("max-results must be at least 1")
	}

	cat := loadCatalog(cmd, c.fs)
	results := recommend.Search(cat.Entries(), query, recommend.DefaultConfig(), recommend.Options{
		MaxResults: maxResults,
		Types:      types,
	})

	if format == "json" {
		return printJSON(cmd, results)
	}

	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintf(out, "No tools matching %q.\n", query)
		return nil
	}

	for i, r := range results {
		fmt.Fprintf(out, "%d. %s (%s) %.1f\n", i+1, r.Item.Name, r.Item.Type, r.Score)
		if r.Item.Description != "" {
			fmt.Fprintf(out, "   %s\n", r.Item.Description)
		}
	}

	return nil
}
