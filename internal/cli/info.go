package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/toolscout/internal/filesystem"
)

// InfoCommand handles the info command
type InfoCommand struct {
	fs filesystem.FileSystem
}

// NewInfoCommand creates a new info command
func NewInfoCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &InfoCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "info <name>",
		Short: "Show a catalog entry by name or id",
		Args:  cobra.ExactArgs(1),
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().String("format", "text", "Output format: text or json")

	return cobraCmd
}

// Run executes the info command
func (c *InfoCommand) Run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cat := loadCatalog(cmd, c.fs)
	entry, ok := cat.Get(args[0])
	if !ok {
		return fmt.Errorf("tool %q not found", args[0])
	}

	if format == "json" {
		return printJSON(cmd, entry)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", entry.Name, entry.Type)
	if entry.Description != "" {
		fmt.Fprintln(out, entry.Description)
	}
	if entry.Category != "" {
		fmt.Fprintf(out, "Category: %s\n", entry.Category)
	}
	if len(entry.Tags) > 0 {
		fmt.Fprintf(out, "Tags: %s\n", strings.Join(entry.Tags, ", "))
	}
	if entry.URL != "" {
		fmt.Fprintf(out, "URL: %s\n", entry.URL)
	}
	if entry.Author.Name != "" {
		fmt.Fprintf(out, "Author: %s\n", entry.Author.Name)
	}
	if entry.Metrics.Stars > 0 {
		fmt.Fprintf(out, "Stars: %d\n", entry.Metrics.Stars)
	}
	if entry.Official() {
		fmt.Fprintln(out, "Official: yes")
	}
	if entry.Install.Command != "" {
		fmt.Fprintf(out, "Install: %s\n", entry.Install.Command)
	}

	return nil
}
