// Package mcpserver exposes the analyzer, scorers and catalog over the
// Model Context Protocol so agent hosts can call them as tools.
package mcpserver

import (
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/jakoblorz/toolscout/internal/analyzer"
	"github.com/jakoblorz/toolscout/internal/catalog"
	"github.com/jakoblorz/toolscout/internal/filesystem"
	"github.com/jakoblorz/toolscout/internal/recommend"
)

const (
	serverName    = "toolscout"
	serverVersion = "1.0.0"
)

// Server wires the catalog and analyzer into an MCP stdio server.
type Server struct {
	mcpServer *mcpserver.MCPServer
	analyzer  *analyzer.Analyzer
	catalog   *catalog.Catalog
	cfg       recommend.Config
	logger    *zap.Logger
}

// NewServer creates a Server over an already loaded catalog.
func NewServer(fs filesystem.FileSystem, cat *catalog.Catalog, cfg recommend.Config, logger *zap.Logger) *Server {
	s := &Server{
		mcpServer: mcpserver.NewMCPServer(serverName, serverVersion, mcpserver.WithToolCapabilities(false)),
		analyzer:  analyzer.New(fs),
		catalog:   cat,
		cfg:       cfg,
		logger:    logger,
	}
	s.registerTools()
	return s
}

// Serve blocks on the stdio transport until the client disconnects.
func (s *Server) Serve() error {
	s.logger.Info("starting mcp server",
		zap.String("name", serverName),
		zap.Int("catalog_entries", s.catalog.Len()))
	return mcpserver.ServeStdio(s.mcpServer)
}
