package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/toolscout/internal/models"
)

func TestRecommendCommand_JSON(t *testing.T) {
	fs := newTestFS()

	out, err := executeCommand(t, fs, nil,
		"recommend", "/proj", "--catalog", "/data/catalog.json", "--format", "json")
	require.NoError(t, err)

	var results []models.ScoredEntry
	require.NoError(t, json.Unmarshal([]byte(out), &results))

	require.Len(t, results, 1)
	require.Equal(t, "Jest Helper", results[0].Item.Name)
	require.InDelta(t, 0.13, results[0].Score, 0.001)
	require.Contains(t, results[0].Reasons, "language match: javascript")
}

func TestRecommendCommand_Text(t *testing.T) {
	fs := newTestFS()

	out, err := executeCommand(t, fs, nil,
		"recommend", "/proj", "--catalog", "/data/catalog.json")
	require.NoError(t, err)

	require.Contains(t, out, "1. Jest Helper (skill)")
	require.Contains(t, out, "language match: javascript")
}

func TestRecommendCommand_NoMatches(t *testing.T) {
	fs := newTestFS()

	out, err := executeCommand(t, fs, nil,
		"recommend", "/empty-dir", "--catalog", "/data/catalog.json")
	require.NoError(t, err)
	require.Contains(t, out, "No matching tools found.")
}

func TestRecommendCommand_TypeFilter(t *testing.T) {
	fs := newTestFS()

	out, err := executeCommand(t, fs, nil,
		"recommend", "/proj", "--catalog", "/data/catalog.json", "--types", "mcp-server")
	require.NoError(t, err)
	require.Contains(t, out, "No matching tools found.")
}

func TestRecommendCommand_InvalidType(t *testing.T) {
	fs := newTestFS()

	_, err := executeCommand(t, fs, nil,
		"recommend", "/proj", "--catalog", "/data/catalog.json", "--types", "nonsense")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid type")
}

func TestRecommendCommand_MissingCatalogYieldsEmpty(t *testing.T) {
	fs := newTestFS()

	out, err := executeCommand(t, fs, nil,
		"recommend", "/proj", "--catalog", "/nope.json")
	require.NoError(t, err)
	require.Contains(t, out, "No matching tools found.")
}

func TestRecommendCommand_Report(t *testing.T) {
	fs := newTestFS()

	out, err := executeCommand(t, fs, nil,
		"recommend", "/proj", "--catalog", "/data/catalog.json", "--report", "/proj/TOOLS.md")
	require.NoError(t, err)
	require.Contains(t, out, "Report written to /proj/TOOLS.md")

	data, err := fs.ReadFile("/proj/TOOLS.md")
	require.NoError(t, err)
	require.Contains(t, string(data), "Jest Helper")
	require.Contains(t, string(data), "# Tool Recommendations")
}
