package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/toolscout/internal/filesystem"
)

func TestAnalyze_LanguagesAndConfigFiles(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/proj/main.go", []byte("package main"))
	fs.AddFile("/proj/go.mod", []byte("module example.com/proj\n\ngo 1.22\n"))
	fs.AddFile("/proj/web/app.tsx", []byte(""))
	fs.AddFile("/proj/Dockerfile", []byte("FROM scratch"))

	fp := New(fs).Analyze("/proj")

	require.Contains(t, fp.Languages, "go")
	require.Contains(t, fp.Languages, "typescript")
	require.Contains(t, fp.Frameworks, "docker")
	require.Contains(t, fp.Files, "main.go")
	require.Contains(t, fp.Files, "web/app.tsx")
}

func TestAnalyze_SkipsDependencyAndDotDirectories(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/proj/index.js", []byte(""))
	fs.AddFile("/proj/node_modules/react/index.js", []byte(""))
	fs.AddFile("/proj/.cache/blob.js", []byte(""))
	fs.AddFile("/proj/.github/workflows/ci.yml", []byte(""))

	fp := New(fs).Analyze("/proj")

	for _, f := range fp.Files {
		require.False(t, strings.Contains(f, "node_modules/"), "file inside skip-listed dir: %s", f)
		require.False(t, strings.HasPrefix(f, "."), "file inside dot dir: %s", f)
	}
	// .github is skipped for files but still counts as a config dir.
	require.Contains(t, fp.Frameworks, "github-actions")
}

func TestAnalyze_MaxFilesCapStillDetectsLanguages(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/proj/a.js", []byte(""))
	fs.AddFile("/proj/b.js", []byte(""))
	fs.AddFile("/proj/z.py", []byte(""))

	fp := New(fs, WithMaxFiles(1)).Analyze("/proj")

	require.Len(t, fp.Files, 1)
	// The walk continued past the cap for detection.
	require.Contains(t, fp.Languages, "python")
	require.Contains(t, fp.Languages, "javascript")
}

func TestAnalyze_MaxDepthBoundsRecursion(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/proj/a/b/c/deep.go", []byte(""))
	fs.AddFile("/proj/top.go", []byte(""))

	fp := New(fs, WithMaxDepth(1)).Analyze("/proj")

	require.Contains(t, fp.Files, "top.go")
	require.NotContains(t, fp.Files, "a/b/c/deep.go")
}

func TestAnalyze_MergesManifestContributions(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/proj/package.json", []byte(`{
		"description": "storefront",
		"dependencies": {"react": "18.0.0"}
	}`))
	fs.AddFile("/proj/requirements.txt", []byte("django==4.2\n"))

	fp := New(fs).Analyze("/proj")

	require.Contains(t, fp.Dependencies, "react")
	require.Contains(t, fp.Dependencies, "django")
	require.Contains(t, fp.Frameworks, "react")
	require.Contains(t, fp.Frameworks, "django")
	require.Equal(t, "storefront", fp.Description)
}

func TestAnalyze_NoDuplicates(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/proj/a.go", []byte(""))
	fs.AddFile("/proj/b.go", []byte(""))
	fs.AddFile("/proj/go.mod", []byte("module example.com/proj\n\ngo 1.22\n"))

	fp := New(fs).Analyze("/proj")

	require.Equal(t, uniqueCount(fp.Languages), len(fp.Languages))
	require.Equal(t, uniqueCount(fp.Frameworks), len(fp.Frameworks))
	require.Equal(t, uniqueCount(fp.Dependencies), len(fp.Dependencies))
}

func TestAnalyze_NonexistentPathReturnsEmptyFingerprint(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	fp := New(fs).Analyze("/nonexistent")

	require.NotNil(t, fp)
	require.Empty(t, fp.Languages)
	require.Empty(t, fp.Frameworks)
	require.Empty(t, fp.Dependencies)
	require.Empty(t, fp.Files)
}

func TestAnalyze_RespectsGitignoreWhenEnabled(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/proj/.gitignore", []byte("generated/\n"))
	fs.AddFile("/proj/generated/out.js", []byte(""))
	fs.AddFile("/proj/src/app.js", []byte(""))

	fp := New(fs, WithGitignore(true)).Analyze("/proj")

	require.Contains(t, fp.Files, "src/app.js")
	require.NotContains(t, fp.Files, "generated/out.js")
}

func uniqueCount(values []string) int {
	seen := make(map[string]struct{})
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}
