package manifest

import (
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/jakoblorz/toolscout/internal/filesystem"
)

// rustFrameworks maps crate names to framework identifiers.
var rustFrameworks = map[string]string{
	"actix-web": "actix",
	"rocket":    "rocket",
	"axum":      "axum",
	"tokio":     "tokio",
	"serde":     "serde",
	"bevy":      "bevy",
	"tauri":     "tauri",
}

type cargoTOML struct {
	Package struct {
		Description string `toml:"description"`
	} `toml:"package"`
	Dependencies    map[string]interface{} `toml:"dependencies"`
	DevDependencies map[string]interface{} `toml:"dev-dependencies"`
}

// ReadCargoTOML reads Cargo.toml. Both the dependencies and
// dev-dependencies tables contribute.
func ReadCargoTOML(fs filesystem.FileSystem, root string) Contribution {
	data, err := fs.ReadFile(filepath.Join(root, "Cargo.toml"))
	if err != nil {
		return Contribution{}
	}

	var cargo cargoTOML
	if err := toml.Unmarshal(data, &cargo); err != nil {
		return Contribution{}
	}

	deps := make([]string, 0, len(cargo.Dependencies)+len(cargo.DevDependencies))
	for name := range cargo.Dependencies {
		deps = append(deps, name)
	}
	for name := range cargo.DevDependencies {
		deps = append(deps, name)
	}
	sort.Strings(deps)

	return Contribution{
		Dependencies: deps,
		Frameworks:   mapFrameworks(deps, rustFrameworks),
		Description:  cargo.Package.Description,
	}
}
