package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/toolscout/internal/filesystem"
	"github.com/jakoblorz/toolscout/internal/models"
)

func newTestBuilder(fs filesystem.FileSystem) *Builder {
	b := NewBuilder(fs)
	b.now = func() time.Time { return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC) }
	b.newID = func() (string, error) { return "abcd1234", nil }
	return b
}

func TestBuild_SkillsCommandsAgents(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/market/.claude/skills/review/SKILL.md", []byte(`---
name: Code Review
description: reviews pull requests
tags: [review, quality]
languages: [go]
official: true
---
Body text.
`))
	fs.AddFile("/market/commands/deploy.md", []byte(`---
description: deploys the project
---
`))
	fs.AddFile("/market/agents/researcher.md", []byte(`---
name: Researcher
---
`))
	fs.AddFile("/market/plugins/linter/plugin.json", []byte(`{
		"name": "Linter",
		"description": "lints everything",
		"tags": ["quality"]
	}`))
	fs.AddFile("/market/README.md", []byte("not a component"))

	doc := newTestBuilder(fs).Build("/market")

	require.Len(t, doc.Items, 4)

	byType := map[models.RecommendationType]*models.CatalogEntry{}
	for _, item := range doc.Items {
		byType[item.Type] = item
	}

	skill := byType[models.TypeSkill]
	require.Equal(t, "Code Review", skill.Name)
	require.Equal(t, "code-review-abcd1234", skill.ID)
	require.Equal(t, models.SourceOfficial, skill.Metrics.Source)
	require.True(t, skill.Metrics.IsOfficial)
	require.Equal(t, []string{"go"}, skill.Detection.Languages)

	command := byType[models.TypeCommand]
	require.Equal(t, "deploy", command.Name)

	agent := byType[models.TypeAgent]
	require.Equal(t, "Researcher", agent.Name)

	plugin := byType[models.TypePlugin]
	require.Equal(t, "Linter", plugin.Name)
	require.Equal(t, models.InstallPluginInstall, plugin.Install.Method)
	require.Equal(t, "plugin install linter", plugin.Install.Command)
}

func TestBuild_UnreadableRootYieldsEmptyDocument(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	doc := newTestBuilder(fs).Build("/missing")

	require.Empty(t, doc.Items)
	require.Equal(t, "2026-08-01T00:00:00Z", doc.LastUpdated)
}

func TestBuild_SkipsMalformedFrontmatter(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/market/skills/bad/SKILL.md", []byte("---\nname: [unclosed\n---\n"))
	fs.AddFile("/market/skills/good/SKILL.md", []byte("---\nname: Good\n---\n"))

	doc := newTestBuilder(fs).Build("/market")

	require.Len(t, doc.Items, 1)
	require.Equal(t, "Good", doc.Items[0].Name)
}

func TestWrite_RoundTripsThroughLoadFile(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/market/skills/review/SKILL.md", []byte("---\nname: Review\n---\n"))

	b := newTestBuilder(fs)
	doc := b.Build("/market")
	require.NoError(t, b.Write(doc, "/data/catalog.json"))

	c := LoadFile(fs, "/data/catalog.json")
	require.Equal(t, 1, c.Len())
	require.Equal(t, "Review", c.Entries()[0].Name)
}
