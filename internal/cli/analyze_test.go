package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/toolscout/internal/models"
)

func TestAnalyzeCommand_JSON(t *testing.T) {
	fs := newTestFS()

	out, err := executeCommand(t, fs, nil, "analyze", "/proj", "--format", "json")
	require.NoError(t, err)

	var fingerprint models.ProjectFingerprint
	require.NoError(t, json.Unmarshal([]byte(out), &fingerprint))
	require.Equal(t, "/proj", fingerprint.Path)
	require.Contains(t, fingerprint.Languages, "javascript")
	require.Contains(t, fingerprint.Dependencies, "jest")
	require.Contains(t, fingerprint.Frameworks, "jest")
}

func TestAnalyzeCommand_Text(t *testing.T) {
	fs := newTestFS()

	out, err := executeCommand(t, fs, nil, "analyze", "/proj")
	require.NoError(t, err)

	require.Contains(t, out, "Project: /proj")
	require.Contains(t, out, "javascript")
	require.Contains(t, out, "Dependencies: 1")
}

func TestAnalyzeCommand_DefaultsToWorkingDirectory(t *testing.T) {
	fs := newTestFS()
	fs.SetCurrentDir("/proj")

	out, err := executeCommand(t, fs, nil, "analyze")
	require.NoError(t, err)
	require.Contains(t, out, "Project: /proj")
}

func TestAnalyzeCommand_NonexistentPathStillSucceeds(t *testing.T) {
	fs := newTestFS()

	out, err := executeCommand(t, fs, nil, "analyze", "/nope")
	require.NoError(t, err)
	require.Contains(t, out, "Languages: (none)")
}
