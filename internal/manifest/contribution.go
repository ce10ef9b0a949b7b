// Package manifest contains one reader per ecosystem manifest file.
// Every reader inspects at most one well-known file under the project
// root and fails soft: missing or malformed files yield an empty
// contribution, never an error. The analyzer merges all contributions
// into a single fingerprint.
package manifest

import (
	"github.com/jakoblorz/toolscout/internal/filesystem"
)

// Contribution is the partial fingerprint a single reader produces.
type Contribution struct {
	Dependencies []string
	Frameworks   []string
	Description  string
}

// Empty reports whether the reader found nothing.
func (c Contribution) Empty() bool {
	return len(c.Dependencies) == 0 && len(c.Frameworks) == 0 && c.Description == ""
}

// Reader reads one manifest file from the project root.
type Reader func(fs filesystem.FileSystem, root string) Contribution

// Readers returns all manifest readers in evaluation order. Order
// matters for the first-description-wins rule only.
func Readers() []Reader {
	return []Reader{
		ReadPackageJSON,
		ReadRequirementsTxt,
		ReadPyprojectTOML,
		ReadGoMod,
		ReadCargoTOML,
		ReadGemfile,
		ReadComposerJSON,
		ReadDockerCompose,
	}
}

// mapFrameworks translates dependency names to canonical framework
// identifiers via a fixed exact-name table.
func mapFrameworks(deps []string, table map[string]string) []string {
	var frameworks []string
	seen := make(map[string]struct{})
	for _, dep := range deps {
		fw, ok := table[dep]
		if !ok {
			continue
		}
		if _, dup := seen[fw]; dup {
			continue
		}
		seen[fw] = struct{}{}
		frameworks = append(frameworks, fw)
	}
	return frameworks
}
