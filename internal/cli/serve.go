package cli

import (
	"github.com/spf13/cobra"

	"github.com/jakoblorz/toolscout/internal/filesystem"
	"github.com/jakoblorz/toolscout/internal/logging"
	"github.com/jakoblorz/toolscout/internal/mcpserver"
	"github.com/jakoblorz/toolscout/internal/recommend"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	fs filesystem.FileSystem
}

// NewServeCommand creates a new serve command
func NewServeCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &ServeCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdio",
		Long: `Exposes recommend_tools, search_tools, get_tool_details and
get_catalog_stats as Model Context Protocol tools over stdio.

Logs go to stderr; stdout carries the protocol stream.`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the serve command
func (c *ServeCommand) Run(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	logger, err := logging.New(verbose)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	cat := loadCatalog(cmd, c.fs)

	server := mcpserver.NewServer(c.fs, cat, recommend.DefaultConfig(), logger)
	return server.Serve()
}
