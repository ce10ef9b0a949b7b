package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/toolscout/internal/catalog"
)

func TestStatsCommand_Text(t *testing.T) {
	fs := newTestFS()

	out, err := executeCommand(t, fs, nil,
		"stats", "--catalog", "/data/catalog.json")
	require.NoError(t, err)

	require.Contains(t, out, "Entries: 2 (official: 1)")
	require.Contains(t, out, "skill: 1")
	require.Contains(t, out, "database: 1")
}

func TestStatsCommand_JSON(t *testing.T) {
	fs := newTestFS()

	out, err := executeCommand(t, fs, nil,
		"stats", "--catalog", "/data/catalog.json", "--format", "json")
	require.NoError(t, err)

	var stats catalog.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	require.Equal(t, 2, stats.Total)
	require.Equal(t, 1, stats.ByType["mcp-server"])
}
