package manifest

import (
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/jakoblorz/toolscout/internal/filesystem"
)

type pyprojectTOML struct {
	Project struct {
		Description  string   `toml:"description"`
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Description  string                 `toml:"description"`
			Dependencies map[string]interface{} `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// ReadPyprojectTOML reads pyproject.toml, covering both PEP 621
// `project.dependencies` requirement strings and the poetry dependency
// table. Requirement strings reuse the requirements.txt line parser.
func ReadPyprojectTOML(fs filesystem.FileSystem, root string) Contribution {
	data, err := fs.ReadFile(filepath.Join(root, "pyproject.toml"))
	if err != nil {
		return Contribution{}
	}

	var py pyprojectTOML
	if err := toml.Unmarshal(data, &py); err != nil {
		return Contribution{}
	}

	var deps []string
	for _, req := range py.Project.Dependencies {
		if name := parseRequirementLine(req); name != "" {
			deps = append(deps, name)
		}
	}

	if len(py.Tool.Poetry.Dependencies) > 0 {
		poetry := make([]string, 0, len(py.Tool.Poetry.Dependencies))
		for name := range py.Tool.Poetry.Dependencies {
			if name == "python" {
				continue
			}
			if parsed := parseRequirementLine(name); parsed != "" {
				poetry = append(poetry, parsed)
			}
		}
		sort.Strings(poetry)
		deps = append(deps, poetry...)
	}

	description := py.Project.Description
	if description == "" {
		description = py.Tool.Poetry.Description
	}

	return Contribution{
		Dependencies: deps,
		Frameworks:   mapFrameworks(deps, pythonFrameworks),
		Description:  description,
	}
}
