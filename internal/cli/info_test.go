package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/toolscout/internal/models"
)

func TestInfoCommand_Text(t *testing.T) {
	fs := newTestFS()

	out, err := executeCommand(t, fs, nil,
		"info", "Jest Helper", "--catalog", "/data/catalog.json")
	require.NoError(t, err)

	require.Contains(t, out, "Jest Helper (skill)")
	require.Contains(t, out, "Official: yes")
	require.Contains(t, out, "Install: plugin install jest-helper")
}

func TestInfoCommand_ByIDCaseInsensitive(t *testing.T) {
	fs := newTestFS()

	out, err := executeCommand(t, fs, nil,
		"info", "POSTGRES-HELPER", "--catalog", "/data/catalog.json", "--format", "json")
	require.NoError(t, err)

	var entry models.CatalogEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entry))
	require.Equal(t, "Postgres Helper", entry.Name)
}

func TestInfoCommand_NotFound(t *testing.T) {
	fs := newTestFS()

	_, err := executeCommand(t, fs, nil,
		"info", "unknown", "--catalog", "/data/catalog.json")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}
