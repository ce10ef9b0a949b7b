package manifest

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jakoblorz/toolscout/internal/filesystem"
)

// rubyFrameworks maps gem names to framework identifiers.
var rubyFrameworks = map[string]string{
	"rails":   "rails",
	"sinatra": "sinatra",
	"rspec":   "rspec",
	"hanami":  "hanami",
	"jekyll":  "jekyll",
}

var gemLineRegex = regexp.MustCompile(`^\s*gem\s+['"]([^'"]+)['"]`)

// ReadGemfile reads a Gemfile line by line; only `gem "name"`
// declarations count, groups and conditionals are ignored.
func ReadGemfile(fs filesystem.FileSystem, root string) Contribution {
	data, err := fs.ReadFile(filepath.Join(root, "Gemfile"))
	if err != nil {
		return Contribution{}
	}

	var deps []string
	for _, line := range strings.Split(string(data), "\n") {
		if m := gemLineRegex.FindStringSubmatch(line); m != nil {
			deps = append(deps, m[1])
		}
	}

	return Contribution{
		Dependencies: deps,
		Frameworks:   mapFrameworks(deps, rubyFrameworks),
	}
}
