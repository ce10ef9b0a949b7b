package recommend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{".claude/skills/**", ".claude/skills/foo/SKILL.md", true},
		{".claude/skills/**", ".claude/other/SKILL.md", false},
		{"*.go", "main.go", true},
		{"*.go", "cmd/main.go", false},
		{"**/*.go", "cmd/main.go", true},
		{"Dockerfile", "dockerfile", true},
		{"src/?.js", "src/a.js", true},
		{"src/?.js", "src/ab.js", false},
		{"docs/*.md", "docs/readme.md", true},
		{"docs/*.md", "docs/sub/readme.md", false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, MatchGlob(tt.pattern, tt.path), "pattern %q path %q", tt.pattern, tt.path)
	}
}
