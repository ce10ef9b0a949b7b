package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/jakoblorz/toolscout/internal/models"
	"github.com/jakoblorz/toolscout/internal/recommend"
)

const (
	defaultMaxResults = 20
	maxMaxResults     = 50
)

// registerTools registers all MCP tools on the server.
func (s *Server) registerTools() {
	s.mcpServer.AddTools(
		s.recommendTool(),
		s.searchTool(),
		s.detailsTool(),
		s.statsTool(),
	)
}

func (s *Server) recommendTool() mcpserver.ServerTool {
	tool := mcplib.NewTool("recommend_tools",
		mcplib.WithDescription("Analyze a project directory and recommend matching tools from the catalog"),
		mcplib.WithString("project_path",
			mcplib.Required(),
			mcplib.Description("Absolute path of the project to analyze"),
		),
		mcplib.WithString("description",
			mcplib.Description("Free-text project description used for keyword matching"),
		),
		mcplib.WithString("types",
			mcplib.Description("Comma-separated entry types to include (plugin, mcp-server, skill, workflow, hook, command, agent)"),
		),
		mcplib.WithNumber("max_results",
			mcplib.Description("Maximum number of recommendations, between 1 and 50 (default 20)"),
		),
	)
	return mcpserver.ServerTool{
		Tool:    tool,
		Handler: s.handleRecommend,
	}
}

func (s *Server) searchTool() mcpserver.ServerTool {
	tool := mcplib.NewTool("search_tools",
		mcplib.WithDescription("Search the tool catalog by keyword"),
		mcplib.WithString("query",
			mcplib.Required(),
			mcplib.Description("Search term matched against name, description, category and tags"),
		),
		mcplib.WithString("types",
			mcplib.Description("Comma-separated entry types to include"),
		),
		mcplib.WithNumber("max_results",
			mcplib.Description("Maximum number of results, between 1 and 50 (default 20)"),
		),
	)
	return mcpserver.ServerTool{
		Tool:    tool,
		Handler: s.handleSearch,
	}
}

func (s *Server) detailsTool() mcpserver.ServerTool {
	tool := mcplib.NewTool("get_tool_details",
		mcplib.WithDescription("Look a catalog entry up by name or id"),
		mcplib.WithString("name",
			mcplib.Required(),
			mcplib.Description("Entry name or id, matched case-insensitively"),
		),
	)
	return mcpserver.ServerTool{
		Tool:    tool,
		Handler: s.handleDetails,
	}
}

func (s *Server) statsTool() mcpserver.ServerTool {
	tool := mcplib.NewTool("get_catalog_stats",
		mcplib.WithDescription("Aggregate catalog counts by category, type and source"),
	)
	return mcpserver.ServerTool{
		Tool:    tool,
		Handler: s.handleStats,
	}
}

// recommendationView is the wire projection of a scored entry.
type recommendationView struct {
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Score       float64        `json:"score"`
	Reasons     []string       `json:"reasons"`
	URL         string         `json:"url"`
	Install     models.Install `json:"install"`
	IsOfficial  bool           `json:"isOfficial,omitempty"`
	Category    string         `json:"category,omitempty"`
}

type projectView struct {
	Path            string   `json:"path"`
	Languages       []string `json:"languages"`
	Frameworks      []string `json:"frameworks"`
	DependencyCount int      `json:"dependencyCount"`
}

type recommendOutput struct {
	Project         projectView          `json:"project"`
	Recommendations []recommendationView `json:"recommendations"`
	TotalFound      int                  `json:"totalFound"`
}

type searchOutput struct {
	Query      string               `json:"query"`
	Results    []recommendationView `json:"results"`
	TotalFound int                  `json:"totalFound"`
}

func (s *Server) handleRecommend(_ context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	args := req.GetArguments()

	projectPath, ok := args["project_path"].(string)
	if !ok || projectPath == "" {
		return mcplib.NewToolResultError("project_path is required"), nil
	}

	description, _ := args["description"].(string)

	types, err := parseTypesArg(args)
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}

	maxResults, err := parseMaxResults(args)
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}

	fingerprint := s.analyzer.Analyze(projectPath)
	if description != "" {
		fingerprint.Description = description
	}

	s.logger.Debug("recommend request",
		zap.String("path", projectPath),
		zap.Int("languages", len(fingerprint.Languages)))

	results := recommend.Score(s.catalog.Entries(), fingerprint, fingerprint.Description, s.cfg, recommend.Options{
		MaxResults: maxResults,
		Types:      types,
	})

	out := recommendOutput{
		Project: projectView{
			Path:            fingerprint.Path,
			Languages:       fingerprint.Languages,
			Frameworks:      fingerprint.Frameworks,
			DependencyCount: len(fingerprint.Dependencies),
		},
		Recommendations: toViews(results, false),
		TotalFound:      len(results),
	}
	return toolResultJSON(out)
}

func (s *Server) handleSearch(_ context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	args := req.GetArguments()

	query, ok := args["query"].(string)
	if !ok || strings.TrimSpace(query) == "" {
		return mcplib.NewToolResultError("query is required"), nil
	}

	types, err := parseTypesArg(args)
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}

	maxResults, err := parseMaxResults(args)
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}

	results := recommend.Search(s.catalog.Entries(), query, s.cfg, recommend.Options{
		MaxResults: maxResults,
		Types:      types,
	})

	out := searchOutput{
		Query:      query,
		Results:    toViews(results, true),
		TotalFound: len(results),
	}
	return toolResultJSON(out)
}

func (s *Server) handleDetails(_ context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	args := req.GetArguments()

	name, ok := args["name"].(string)
	if !ok || name == "" {
		return mcplib.NewToolResultError("name is required"), nil
	}

	entry, found := s.catalog.Get(name)
	if !found {
		return mcplib.NewToolResultError(fmt.Sprintf("tool %q not found", name)), nil
	}
	return toolResultJSON(entry)
}

func (s *Server) handleStats(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	return toolResultJSON(s.catalog.Stats())
}

func toViews(results []models.ScoredEntry, includeCategory bool) []recommendationView {
	views := make([]recommendationView, 0, len(results))
	for _, r := range results {
		view := recommendationView{
			Name:        r.Item.Name,
			Type:        string(r.Item.Type),
			Description: r.Item.Description,
			Score:       r.Score,
			Reasons:     r.Reasons,
			URL:         r.Item.URL,
			Install:     r.Item.Install,
			IsOfficial:  r.Item.Official(),
		}
		if includeCategory {
			view.Category = r.Item.Category
		}
		views = append(views, view)
	}
	return views
}

func parseTypesArg(args map[string]any) ([]models.RecommendationType, error) {
	raw, ok := args["types"].(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return models.ParseRecommendationTypes(values)
}

func parseMaxResults(args map[string]any) (int, error) {
	raw, ok := args["max_results"]
	if !ok {
		return defaultMaxResults, nil
	}

	n, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("max_results must be a number")
	}

	maxResults := int(n)
	if maxResults < 1 || maxResults > maxMaxResults {
		return 0, fmt.Errorf("max_results must be between 1 and %d", maxMaxResults)
	}
	return maxResults, nil
}

func toolResultJSON(v any) (*mcplib.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcplib.NewToolResultErrorFromErr("failed to marshal result", err), nil
	}
	return mcplib.NewToolResultText(string(data)), nil
}
