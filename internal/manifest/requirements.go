package manifest

import (
	"path/filepath"
	"strings"

	"github.com/jakoblorz/toolscout/internal/filesystem"
)

// pythonFrameworks maps PyPI distribution names to framework
// identifiers. Shared by the requirements.txt and pyproject.toml
// readers. Matching is exact-name after extras are stripped.
var pythonFrameworks = map[string]string{
	"django":     "django",
	"flask":      "flask",
	"fastapi":    "fastapi",
	"celery":     "celery",
	"pytest":     "pytest",
	"numpy":      "numpy",
	"pandas":     "pandas",
	"torch":      "pytorch",
	"tensorflow": "tensorflow",
	"sqlalchemy": "sqlalchemy",
}

// ReadRequirementsTxt reads requirements.txt, one requirement per line.
// Besides the exact name, the `name[extra]` extras convention is
// stripped before lookup, so "uvicorn[standard]" contributes "uvicorn".
func ReadRequirementsTxt(fs filesystem.FileSystem, root string) Contribution {
	data, err := fs.ReadFile(filepath.Join(root, "requirements.txt"))
	if err != nil {
		return Contribution{}
	}

	var deps []string
	for _, line := range strings.Split(string(data), "\n") {
		name := parseRequirementLine(line)
		if name != "" {
			deps = append(deps, name)
		}
	}

	return Contribution{
		Dependencies: deps,
		Frameworks:   mapFrameworks(deps, pythonFrameworks),
	}
}

// parseRequirementLine extracts the distribution name from a single
// requirements.txt line. pip treats names case-insensitively, so names
// are lower-cased here.
func parseRequirementLine(line string) string {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
		return ""
	}

	// Cut at the first version operator or environment marker.
	for _, sep := range []string{"==", ">=", "<=", "~=", "!=", ">", "<", ";", " "} {
		if idx := strings.Index(line, sep); idx >= 0 {
			line = line[:idx]
		}
	}

	// Strip extras: name[extra1,extra2]
	if idx := strings.Index(line, "["); idx >= 0 {
		line = line[:idx]
	}

	return strings.ToLower(strings.TrimSpace(line))
}
