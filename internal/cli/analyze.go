package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/toolscout/internal/analyzer"
	"github.com/jakoblorz/toolscout/internal/filesystem"
)

// AnalyzeCommand handles the analyze command
type AnalyzeCommand struct {
	fs filesystem.FileSystem
}

// NewAnalyzeCommand creates a new analyze command
func NewAnalyzeCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &AnalyzeCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Fingerprint a project directory",
		Long: `Scans a project directory and prints its fingerprint: detected
languages, frameworks, dependencies and notable files.

Manifest files (package.json, go.mod, requirements.txt and others) are
parsed for dependencies; unreadable or malformed files are skipped.`,
		Example: `  # Fingerprint the current directory
  toolscout analyze

  # Fingerprint a specific project as JSON
  toolscout analyze ~/src/shop --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("format", "text", "Output format: text or json")
	cobraCmd.Flags().Bool("gitignore", false, "Respect the project's root .gitignore during the scan")

	return cobraCmd
}

// Run executes the analyze command
func (c *AnalyzeCommand) Run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	useGitignore, _ := cmd.Flags().GetBool("gitignore")

	path, err := resolveProjectPath(c.fs, args)
	if err != nil {
		return err
	}

	fingerprint := analyzer.New(c.fs, analyzer.WithGitignore(useGitignore)).Analyze(path)

	if format == "json" {
		return printJSON(cmd, fingerprint)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Project: %s\n", fingerprint.Path)
	fmt.Fprintf(out, "Languages: %s\n", joinOrNone(fingerprint.Languages))
	fmt.Fprintf(out, "Frameworks: %s\n", joinOrNone(fingerprint.Frameworks))
	fmt.Fprintf(out, "Dependencies: %d\n", len(fingerprint.Dependencies))
	fmt.Fprintf(out, "Files scanned: %d\n", len(fingerprint.Files))
	if fingerprint.Description != "" {
		fmt.Fprintf(out, "Description: %s\n", fingerprint.Description)
	}

	return nil
}

func resolveProjectPath(fs filesystem.FileSystem, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	cwd, err := fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to determine working directory: %w", err)
	}
	return cwd, nil
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}
