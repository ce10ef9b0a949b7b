package manifest

import (
	"encoding/json"
	"path/filepath"
	"sort"

	"github.com/jakoblorz/toolscout/internal/filesystem"
)

// nodeFrameworks maps npm package names to framework identifiers.
// Matching is exact-name only.
var nodeFrameworks = map[string]string{
	"react":            "react",
	"react-dom":        "react",
	"next":             "nextjs",
	"vue":              "vue",
	"nuxt":             "nuxt",
	"svelte":           "svelte",
	"@angular/core":    "angular",
	"express":          "express",
	"fastify":          "fastify",
	"@nestjs/core":     "nestjs",
	"electron":         "electron",
	"jest":             "jest",
	"vitest":           "vitest",
	"tailwindcss":      "tailwind",
	"@remix-run/react": "remix",
	"astro":            "astro",
}

type packageJSON struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Workspaces      interface{}       `json:"workspaces"`
}

// ReadPackageJSON reads package.json. Dependencies and devDependencies
// both contribute; a workspaces field additionally contributes the
// monorepo framework marker.
func ReadPackageJSON(fs filesystem.FileSystem, root string) Contribution {
	data, err := fs.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return Contribution{}
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return Contribution{}
	}

	deps := make([]string, 0, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for name := range pkg.Dependencies {
		deps = append(deps, name)
	}
	for name := range pkg.DevDependencies {
		deps = append(deps, name)
	}
	sort.Strings(deps)

	frameworks := mapFrameworks(deps, nodeFrameworks)
	if pkg.Workspaces != nil {
		frameworks = append(frameworks, "monorepo")
	}

	return Contribution{
		Dependencies: deps,
		Frameworks:   frameworks,
		Description:  pkg.Description,
	}
}
