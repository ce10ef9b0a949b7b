package manifest

import (
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jakoblorz/toolscout/internal/filesystem"
)

// composeFileNames are tried in order; the first existing file wins.
var composeFileNames = []string{
	"docker-compose.yml",
	"docker-compose.yaml",
	"compose.yml",
	"compose.yaml",
}

type composeFile struct {
	Services map[string]struct {
		Image string `yaml:"image"`
	} `yaml:"services"`
}

// ReadDockerCompose reads a compose file. Service image names (tag and
// registry stripped) contribute as dependencies, and any compose file
// at all contributes the docker framework marker.
func ReadDockerCompose(fs filesystem.FileSystem, root string) Contribution {
	var data []byte
	found := false
	for _, name := range composeFileNames {
		var err error
		data, err = fs.ReadFile(filepath.Join(root, name))
		if err == nil {
			found = true
			break
		}
	}
	if !found {
		return Contribution{}
	}

	var compose composeFile
	if err := yaml.Unmarshal(data, &compose); err != nil {
		return Contribution{}
	}

	var deps []string
	for _, service := range compose.Services {
		if name := imageName(service.Image); name != "" {
			deps = append(deps, name)
		}
	}
	sort.Strings(deps)

	return Contribution{
		Dependencies: deps,
		Frameworks:   []string{"docker"},
	}
}

// imageName reduces "registry.example.com/library/postgres:16" to
// "postgres".
func imageName(image string) string {
	image = strings.TrimSpace(image)
	if image == "" {
		return ""
	}
	if idx := strings.LastIndex(image, "/"); idx >= 0 {
		image = image[idx+1:]
	}
	if idx := strings.Index(image, ":"); idx >= 0 {
		image = image[:idx]
	}
	if idx := strings.Index(image, "@"); idx >= 0 {
		image = image[:idx]
	}
	return image
}
