package cli

import (
	"bytes"
	"testing"

	"github.com/jakoblorz/toolscout/internal/catalog"
	"github.com/jakoblorz/toolscout/internal/filesystem"
)

const testCatalogJSON = `{
	"version": "1",
	"lastUpdated": "2026-08-01T00:00:00Z",
	"items": [
		{
			"id": "jest-helper",
			"name": "Jest Helper",
			"type": "skill",
			"category": "testing",
			"description": "Generates Jest test suites",
			"detection": {"languages": ["javascript"]},
			"metrics": {"source": "official", "isOfficial": true},
			"install": {"method": "plugin-install", "command": "plugin install jest-helper"}
		},
		{
			"id": "postgres-helper",
			"name": "Postgres Helper",
			"type": "mcp-server",
			"category": "database",
			"description": "database helper",
			"url": "https://github.com/acme/pg-tools",
			"metrics": {"source": "community"}
		}
	]
}`

func newTestFS() *filesystem.MockFileSystem {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/proj/package.json", []byte(`{"dependencies": {"jest": "^29.0.0"}}`))
	fs.AddFile("/data/catalog.json", []byte(testCatalogJSON))
	return fs
}

func executeCommand(t *testing.T, fs filesystem.FileSystem, repoClient catalog.RepoClient, args ...string) (string, error) {
	t.Helper()

	rootCmd := NewRootCommand(fs, repoClient)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}
