package manifest

import (
	"encoding/json"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jakoblorz/toolscout/internal/filesystem"
)

// phpFrameworks maps composer package names to framework identifiers.
var phpFrameworks = map[string]string{
	"laravel/framework":        "laravel",
	"symfony/framework-bundle": "symfony",
	"symfony/symfony":          "symfony",
	"slim/slim":                "slim",
	"cakephp/cakephp":          "cakephp",
	"phpunit/phpunit":          "phpunit",
}

type composerJSON struct {
	Description string            `json:"description"`
	Require     map[string]string `json:"require"`
	RequireDev  map[string]string `json:"require-dev"`
}

// ReadComposerJSON reads composer.json. Platform requirements (php
// itself and ext-*) are not dependencies and are skipped.
func ReadComposerJSON(fs filesystem.FileSystem, root string) Contribution {
	data, err := fs.ReadFile(filepath.Join(root, "composer.json"))
	if err != nil {
		return Contribution{}
	}

	var composer composerJSON
	if err := json.Unmarshal(data, &composer); err != nil {
		return Contribution{}
	}

	var deps []string
	for name := range composer.Require {
		if isPlatformRequirement(name) {
			continue
		}
		deps = append(deps, name)
	}
	for name := range composer.RequireDev {
		if isPlatformRequirement(name) {
			continue
		}
		deps = append(deps, name)
	}
	sort.Strings(deps)

	return Contribution{
		Dependencies: deps,
		Frameworks:   mapFrameworks(deps, phpFrameworks),
		Description:  composer.Description,
	}
}

func isPlatformRequirement(name string) bool {
	return name == "php" || strings.HasPrefix(name, "ext-") || strings.HasPrefix(name, "lib-")
}
