package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/toolscout/internal/filesystem"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	fs filesystem.FileSystem
}

// NewStatsCommand creates a new stats command
func NewStatsCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &StatsCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog statistics",
		Args:  cobra.NoArgs,
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().String("format", "text", "Output format: text or json")

	return cobraCmd
}

// Run executes the stats command
func (c *StatsCommand) Run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cat := loadCatalog(cmd, c.fs)
	stats := cat.Stats()

	if format == "json" {
		return printJSON(cmd, stats)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Entries: %d (official: %d)\n", stats.Total, stats.OfficialCount)

	fmt.Fprintln(out, "By type:")
	for _, key := range sortedKeys(stats.ByType) {
		fmt.Fprintf(out, "  %s: %d\n", key, stats.ByType[key])
	}

	fmt.Fprintln(out, "By category:")
	for _, key := range sortedKeys(stats.ByCategory) {
		fmt.Fprintf(out, "  %s: %d\n", key, stats.ByCategory[key])
	}

	fmt.Fprintln(out, "By source:")
	for _, key := range sortedKeys(stats.BySource) {
		fmt.Fprintf(out, "  %s: %d\n", key, stats.BySource[key])
	}

	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
