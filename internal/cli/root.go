package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/toolscout/internal/catalog"
	"github.com/jakoblorz/toolscout/internal/filesystem"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, repoClient catalog.RepoClient) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "toolscout",
		Short: "Recommend agent tooling for a project",
		Long: `A CLI tool that fingerprints a project directory and recommends
matching plugins, MCP servers, skills and other agent tooling from a catalog.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("catalog", "", "Path to the catalog file (defaults to $TOOLSCOUT_CATALOG, then catalog.json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(NewAnalyzeCommand(fs))
	rootCmd.AddCommand(NewRecommendCommand(fs))
	rootCmd.AddCommand(NewSearchCommand(fs))
	rootCmd.AddCommand(NewInfoCommand(fs))
	rootCmd.AddCommand(NewStatsCommand(fs))
	rootCmd.AddCommand(NewServeCommand(fs))
	rootCmd.AddCommand(NewCatalogCommand(fs, repoClient))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	var repoClient catalog.RepoClient
	if client, err := catalog.NewGitHubClientFromEnv(); err == nil {
		repoClient = client
	} else {
		repoClient = catalog.NewGitHubClientWithoutAuth()
	}

	rootCmd := NewRootCommand(fs, repoClient)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}

// resolveCatalogPath picks the catalog location: flag, then env, then
// the default file name in the working directory.
func resolveCatalogPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("catalog"); path != "" {
		return path
	}
	if path := os.Getenv("TOOLSCOUT_CATALOG"); path != "" {
		return path
	}
	return "catalog.json"
}

func loadCatalog(cmd *cobra.Command, fs filesystem.FileSystem) *catalog.Catalog {
	return catalog.LoadFile(fs, resolveCatalogPath(cmd))
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
