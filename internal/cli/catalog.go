package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/toolscout/internal/catalog"
	"github.com/jakoblorz/toolscout/internal/filesystem"
)

// NewCatalogCommand creates the catalog command group
func NewCatalogCommand(fs filesystem.FileSystem, repoClient catalog.RepoClient) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Build and maintain the tool catalog",
	}

	catalogCmd.AddCommand(NewCatalogBuildCommand(fs))
	catalogCmd.AddCommand(NewCatalogEnrichCommand(fs, repoClient))

	return catalogCmd
}

// CatalogBuildCommand handles the catalog build command
type CatalogBuildCommand struct {
	fs filesystem.FileSystem
}

// NewCatalogBuildCommand creates a new catalog build command
func NewCatalogBuildCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &CatalogBuildCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "build <root>",
		Short: "Build a catalog from a marketplace tree",
		Long: `Scans a directory tree for SKILL.md files and for markdown files
under commands/ and agents/ directories, and writes them as catalog
entries. Frontmatter supplies names, descriptions and detection
signals; entries without an id get a generated one.`,
		Example: `  # Build a catalog from a cloned marketplace repo
  toolscout catalog build ~/src/marketplace --output catalog.json`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("output", "catalog.json", "Where to write the catalog file")

	return cobraCmd
}

// Run executes the catalog build command
func (c *CatalogBuildCommand) Run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	builder := catalog.NewBuilder(c.fs)
	doc := builder.Build(args[0])

	if err := builder.Write(doc, output); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d entries to %s\n", len(doc.Items), output)
	return nil
}

// CatalogEnrichCommand handles the catalog enrich command
type CatalogEnrichCommand struct {
	fs         filesystem.FileSystem
	repoClient catalog.RepoClient
}

// NewCatalogEnrichCommand creates a new catalog enrich command
func NewCatalogEnrichCommand(fs filesystem.FileSystem, repoClient catalog.RepoClient) *cobra.Command {
	cmd := &CatalogEnrichCommand{fs: fs, repoClient: repoClient}

	cobraCmd := &cobra.Command{
		Use:   "enrich",
		Short: "Fill star counts and update timestamps from GitHub",
		Long: `Looks up every catalog entry whose URL points at a GitHub
repository and records its star count and last push time. Entries
without a GitHub URL and failed lookups are skipped.

Uses GH_TOKEN or GITHUB_TOKEN when set; anonymous requests are rate
limited.`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the catalog enrich command
func (c *CatalogEnrichCommand) Run(cmd *cobra.Command, args []string) error {
	if c.repoClient == nil {
		return fmt.Errorf("no GitHub client available")
	}

	path := resolveCatalogPath(cmd)
	data, err := c.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var doc catalog.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	enriched := catalog.NewEnricher(c.repoClient).Enrich(cmd.Context(), &doc)

	if err := catalog.NewBuilder(c.fs).Write(&doc, path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Enriched %d of %d entries\n", enriched, len(doc.Items))
	return nil
}
